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

//go:build !(linux && (amd64 || arm64))

package ptrace

import (
	"github.com/jetsetilly/memscope/backend"
)

// Process is not available on this platform.
type Process struct{}

// Attach always fails on this platform.
func Attach(pid int) (*Process, error) {
	return nil, ErrUnsupported
}

// Detach implements the same function as the linux version.
func (p *Process) Detach() error {
	return ErrUnsupported
}

// Pid implements the same function as the linux version.
func (p *Process) Pid() int {
	return 0
}

// Live implements the backend.Backend interface.
func (p *Process) Live() bool {
	return false
}

// ReadMemory implements the backend.Backend interface.
func (p *Process) ReadMemory(address uint64, buffer []uint8) error {
	return ErrUnsupported
}

// WriteMemory implements the backend.Backend interface.
func (p *Process) WriteMemory(address uint64, data []uint8) error {
	return ErrUnsupported
}

// FindRegion implements the backend.Backend interface.
func (p *Process) FindRegion(address uint64) (backend.Region, error) {
	return backend.Region{}, ErrUnsupported
}

// StackPointer implements the backend.Backend interface.
func (p *Process) StackPointer() (uint64, error) {
	return 0, ErrUnsupported
}
