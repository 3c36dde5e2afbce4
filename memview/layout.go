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
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/jetsetilly/memscope/backend"
	"github.com/jetsetilly/memscope/curated"
)

// Filler is the value of every byte in a line that could not be read.
const Filler = uint8('?')

// geometry of a line in character cells. the hex band begins after the
// label, the label separator and the band separator
const (
	labelWidth    = 16
	labelBand     = labelWidth + 1
	hexBandStart  = labelBand + 1
	byteCellWidth = 3
)

// Highlight is the address selected by the most recent successful click. The
// zero value is no highlight.
type Highlight struct {
	Address uint64
	Set     bool
}

// LineRecord is the layout of a single line. It is produced on every repaint
// and never cached.
type LineRecord struct {
	Address uint64
	ReadOK  bool
	Bytes   []uint8

	// address label. sixteen zero padded hex digits
	Label string

	// the hex cells. sixteen cells of two digits in ByteGrid mode or a single
	// cell of sixteen digits in WordGrid mode
	Cells []string

	// printable representation of Bytes. always empty in WordGrid mode
	ASCII string

	// the line address is equal to the current address of the window
	Current bool

	// index into Cells of the highlighted address. -1 if the highlighted
	// address is not on this line
	Highlight int
}

func (rec LineRecord) String() string {
	s := strings.Builder{}
	s.WriteString(rec.Label)
	s.WriteString(" |")
	s.WriteString(strings.Join(rec.Cells, " "))
	if len(rec.Cells) > 1 {
		s.WriteString(" |")
		s.WriteString(rec.ASCII)
	}
	return s.String()
}

// CellColumn returns the character column of the numbered cell in the text
// returned by LineRecord.String().
func CellColumn(cell int) int {
	return hexBandStart + cell*byteCellWidth
}

// Layout the bytes of a single line. The data slice should have the length
// of the stride for the mode. The function has no state and the same
// arguments will always produce the same LineRecord.
func Layout(address uint64, mode Mode, data []uint8, readOK bool, current uint64, highlight Highlight) LineRecord {
	rec := LineRecord{
		Address:   address,
		ReadOK:    readOK,
		Bytes:     append([]uint8{}, data...),
		Label:     fmt.Sprintf("%016x", address),
		Current:   address == current,
		Highlight: -1,
	}

	switch mode {
	case WordGrid:
		var word [8]uint8
		copy(word[:], data)
		rec.Cells = []string{fmt.Sprintf("%016x", binary.LittleEndian.Uint64(word[:]))}
		if highlight.Set && highlight.Address == address {
			rec.Highlight = 0
		}

	default:
		rec.Cells = make([]string, len(data))
		ascii := make([]uint8, len(data))
		for i, v := range data {
			rec.Cells[i] = fmt.Sprintf("%02x", v)
			if v < 0x20 || v > 0x7e {
				ascii[i] = '.'
			} else {
				ascii[i] = v
			}
			if highlight.Set && highlight.Address == address+uint64(i) {
				rec.Highlight = i
			}
		}
		rec.ASCII = string(ascii)
	}

	return rec
}

// ReadLine reads one line of the mode's stride from the backend. If the read
// fails every byte is set to Filler and a ReadFailed error is returned along
// with the data.
func ReadLine(b backend.Backend, address uint64, mode Mode) ([]uint8, error) {
	data := make([]uint8, mode.Stride())
	if err := b.ReadMemory(address, data); err != nil {
		for i := range data {
			data[i] = Filler
		}
		return data, curated.Errorf(ReadFailed, address, err)
	}
	return data, nil
}
