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

	"github.com/jetsetilly/memscope/backend"
	"github.com/prometheus/procfs"
)

// findRegion searches the memory map of the process for the mapping that
// contains address.
func findRegion(pid int, address uint64) (backend.Region, error) {
	proc, err := procfs.NewProc(pid)
	if err != nil {
		return backend.Region{}, fmt.Errorf("ptrace: %w", err)
	}

	maps, err := proc.ProcMaps()
	if err != nil {
		return backend.Region{}, fmt.Errorf("ptrace: maps: %w", err)
	}

	for _, m := range maps {
		start := uint64(m.StartAddr)
		end := uint64(m.EndAddr)
		if address >= start && address < end {
			return backend.Region{Start: start, Size: end - start}, nil
		}
	}

	return backend.Region{}, fmt.Errorf("%w: %#x", ErrNoRegion, address)
}
