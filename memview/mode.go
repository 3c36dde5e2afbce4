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

package memview

import (
	"fmt"
	"strings"
)

// Mode specifies how line data is presented.
type Mode int

// List of valid Mode values.
const (
	// sixteen bytes per line shown as hex and ASCII
	ByteGrid Mode = iota

	// eight bytes per line shown as a single little-endian 64 bit value
	WordGrid
)

// Stride returns the number of bytes represented by one line.
func (m Mode) Stride() uint64 {
	if m == WordGrid {
		return 8
	}
	return 16
}

func (m Mode) String() string {
	switch m {
	case ByteGrid:
		return "BYTE"
	case WordGrid:
		return "WORD"
	}
	return fmt.Sprintf("unknown mode (%d)", int(m))
}

// ParseMode converts the string to a Mode. The comparison is case
// insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BYTE":
		return ByteGrid, nil
	case "WORD":
		return WordGrid, nil
	}
	return ByteGrid, fmt.Errorf("memview: unknown mode (%s)", s)
}
