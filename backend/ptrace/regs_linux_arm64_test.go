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

package ptrace

import (
	"testing"

	"github.com/jetsetilly/memscope/test"
	"golang.org/x/sys/unix"
)

func TestStackPointerRegister(t *testing.T) {
	var regs unix.PtraceRegs
	regs.Sp = 0x00007fffff001f00
	test.ExpectEquality(t, stackPointer(&regs), uint64(0x00007fffff001f00))
}
