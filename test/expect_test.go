// This file is part of memscope.
//
// memscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// memscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with memscope.  If not, see <https://www.gnu.org/licenses/>.

package test_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/memscope/test"
)

func TestExpectSuccessAndFailure(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)

	var err error
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("failure"))
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, uint64(0x1040), 0x1040)
	test.ExpectEquality(t, "abc", "abc")
	test.ExpectInequality(t, 1, 2)
}

func TestExpectImplements(t *testing.T) {
	var w test.Writer
	test.ExpectImplements[io.Writer](t, &w)
}

func TestWriter(t *testing.T) {
	var w test.Writer
	test.ExpectSuccess(t, w.Compare(""))
	test.ExpectEquality(t, len(w.Lines()), 0)

	_, _ = w.Write([]byte("foo\nbar\n"))
	test.ExpectSuccess(t, w.Compare("foo\nbar\n"))
	test.ExpectSuccess(t, w.Contains("bar"))
	test.DemandEquality(t, len(w.Lines()), 2)
	test.ExpectEquality(t, w.Lines()[1], "bar")

	w.Clear()
	test.ExpectEquality(t, w.String(), "")
}
