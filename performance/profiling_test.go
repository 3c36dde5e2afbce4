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

package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/memscope/performance"
	"github.com/jetsetilly/memscope/test"
)

func TestProfileCPU(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cpu.profile")

	var ran bool
	err := performance.ProfileCPU(fn, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)

	// errors from the profiled function are returned unchanged
	errRun := errors.New("run failed")
	err = performance.ProfileCPU(filepath.Join(t.TempDir(), "cpu.profile"), func() error {
		return errRun
	})
	test.ExpectSuccess(t, errors.Is(err, errRun))
}

func TestProfileMem(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "mem.profile")
	test.ExpectSuccess(t, performance.ProfileMem(fn))

	info, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.Size() > 0)

	// directory does not exist
	test.ExpectFailure(t, performance.ProfileMem(filepath.Join(t.TempDir(), "missing", "mem.profile")))
}
