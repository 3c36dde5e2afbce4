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
	"fmt"
	"runtime"

	"github.com/jetsetilly/memscope/backend"
	"github.com/jetsetilly/memscope/logger"
	"golang.org/x/sys/unix"
)

// Process is an attached process. Implements the backend.Backend interface.
type Process struct {
	pid      int
	attached bool
}

// Attach to the process with the specified pid. The process is stopped once
// Attach() returns.
func Attach(pid int) (*Process, error) {
	runtime.LockOSThread()

	err := unix.PtraceAttach(pid)
	if err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("ptrace: attach %d: %w", pid, err)
	}

	var ws unix.WaitStatus
	_, err = unix.Wait4(pid, &ws, 0, nil)
	if err != nil {
		_ = unix.PtraceDetach(pid)
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("ptrace: wait %d: %w", pid, err)
	}

	if ws.Exited() {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("ptrace: process %d exited during attach", pid)
	}

	logger.Logf(logger.Allow, "ptrace", "attached to %d", pid)

	return &Process{pid: pid, attached: true}, nil
}

// Detach from the process. The process continues running.
func (p *Process) Detach() error {
	if !p.attached {
		return ErrNotAttached
	}
	p.attached = false
	defer runtime.UnlockOSThread()

	if err := unix.PtraceDetach(p.pid); err != nil {
		return fmt.Errorf("ptrace: detach %d: %w", p.pid, err)
	}

	logger.Logf(logger.Allow, "ptrace", "detached from %d", p.pid)

	return nil
}

// Pid returns the process ID of the attached process.
func (p *Process) Pid() int {
	return p.pid
}

// Live implements the backend.Backend interface.
func (p *Process) Live() bool {
	if !p.attached {
		return false
	}
	if err := unix.Kill(p.pid, 0); err != nil {
		p.attached = false
		logger.Logf(logger.Allow, "ptrace", "process %d has gone: %v", p.pid, err)
		return false
	}
	return true
}

// ReadMemory implements the backend.Backend interface.
func (p *Process) ReadMemory(address uint64, buffer []uint8) error {
	if !p.attached {
		return ErrNotAttached
	}
	if len(buffer) == 0 {
		return nil
	}

	n, err := unix.PtracePeekData(p.pid, uintptr(address), buffer)
	if err != nil {
		return fmt.Errorf("ptrace: peek %#x: %w", address, err)
	}
	if n != len(buffer) {
		return fmt.Errorf("%w: %d of %d bytes at %#x", ErrShortRead, n, len(buffer), address)
	}

	return nil
}

// WriteMemory implements the backend.Backend interface.
func (p *Process) WriteMemory(address uint64, data []uint8) error {
	if !p.attached {
		return ErrNotAttached
	}
	if len(data) == 0 {
		return nil
	}

	n, err := unix.PtracePokeData(p.pid, uintptr(address), data)
	if err != nil {
		return fmt.Errorf("ptrace: poke %#x: %w", address, err)
	}
	if n != len(data) {
		return fmt.Errorf("%w: %d of %d bytes at %#x", ErrShortWrite, n, len(data), address)
	}

	return nil
}

// FindRegion implements the backend.Backend interface.
func (p *Process) FindRegion(address uint64) (backend.Region, error) {
	if !p.attached {
		return backend.Region{}, ErrNotAttached
	}
	return findRegion(p.pid, address)
}

// StackPointer implements the backend.Backend interface.
func (p *Process) StackPointer() (uint64, error) {
	if !p.attached {
		return 0, ErrNotAttached
	}

	var regs unix.PtraceRegs
	if err := unix.PtraceGetRegs(p.pid, &regs); err != nil {
		return 0, fmt.Errorf("ptrace: getregs: %w", err)
	}

	return stackPointer(&regs), nil
}
