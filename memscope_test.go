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

package main

import (
	"testing"

	"github.com/jetsetilly/memscope/modalflag"
	"github.com/jetsetilly/memscope/test"
)

func TestOptions(t *testing.T) {
	md := &modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"sim", "-lines", "8", "-term", "color"})
	md.NewMode()
	md.AddSubModes("SIM", "ATTACH")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "SIM")

	md.NewMode()
	opts := addOptions(md, "600000")

	p, err = md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *opts.lines, 8)
	test.ExpectEquality(t, *opts.term, "color")
	test.ExpectEquality(t, *opts.address, "600000")
	test.ExpectEquality(t, *opts.log, false)
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestDefaultMode(t *testing.T) {
	md := &modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"1234"})
	md.NewMode()
	md.AddSubModes("SIM", "ATTACH")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "SIM")
	test.ExpectEquality(t, md.GetArg(0), "1234")
}
