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

// Package backend defines the capabilities a debug session must provide for
// its memory to be viewed and edited.
//
// Implementations are found in the sub-packages. The simulated package
// provides an in-process target made up of memory regions and the ptrace
// package attaches to a real process on linux.
package backend

import "fmt"

// Region is a contiguous span of a process's address space.
type Region struct {
	Start uint64
	Size  uint64
}

// Contains returns true if address is inside the region. A region with a
// size of zero contains nothing.
func (r Region) Contains(address uint64) bool {
	return address >= r.Start && address-r.Start < r.Size
}

// End returns the address immediately after the last address in the region.
func (r Region) End() uint64 {
	return r.Start + r.Size
}

func (r Region) String() string {
	return fmt.Sprintf("%016x-%016x (%#x bytes)", r.Start, r.End(), r.Size)
}

// Backend is the debug session as seen by the memory views.
//
// None of the functions are expected to block for long and none are retried
// by the caller when they fail.
type Backend interface {
	// ReadMemory fills the buffer with the memory at address. Returns an
	// error if the entire buffer cannot be filled.
	ReadMemory(address uint64, buffer []uint8) error

	// WriteMemory writes data to address. A partial write returns an error.
	WriteMemory(address uint64, data []uint8) error

	// FindRegion returns the region containing address.
	FindRegion(address uint64) (Region, error)

	// StackPointer returns the stack pointer of the stopped process.
	StackPointer() (uint64, error)

	// Live returns false once the session has ended. A backend that is no
	// longer live must be treated as though there was no backend at all.
	Live() bool
}
