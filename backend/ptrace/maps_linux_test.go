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

//go:build linux && (amd64 || arm64)

package ptrace

import (
	"errors"
	"os"
	"testing"
	"unsafe"

	"github.com/jetsetilly/memscope/test"
)

// the memory map of the test process itself is always readable
func TestFindRegionSelf(t *testing.T) {
	v := new(uint64)
	address := uint64(uintptr(unsafe.Pointer(v)))

	r, err := findRegion(os.Getpid(), address)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, r.Contains(address))
	test.ExpectInequality(t, r.Size, 0)

	_, err = findRegion(os.Getpid(), 0)
	test.ExpectSuccess(t, errors.Is(err, ErrNoRegion))
}

func TestNotAttached(t *testing.T) {
	var p Process
	test.ExpectFailure(t, p.Live())
	test.ExpectSuccess(t, errors.Is(p.ReadMemory(0, make([]uint8, 1)), ErrNotAttached))
	test.ExpectSuccess(t, errors.Is(p.Detach(), ErrNotAttached))
}
