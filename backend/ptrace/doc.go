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

// Package ptrace implements the backend.Backend interface for a running
// process on linux amd64 and arm64. The process is attached to with
// PTRACE_ATTACH and its memory accessed with PTRACE_PEEKDATA and
// PTRACE_POKEDATA. Regions are found by consulting /proc/<pid>/maps.
//
// The ptrace system call requires that every request for a traced process
// comes from the thread that attached to it. Attach() therefore locks the
// calling goroutine to its OS thread and every function of the returned
// Process must be called from that same goroutine. Detach() releases the
// lock.
//
// On other platforms Attach() returns ErrUnsupported.
package ptrace
