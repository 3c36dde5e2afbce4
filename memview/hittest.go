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

// Metrics are the dimensions of a character cell in the units of the pointer
// coordinates.
type Metrics struct {
	CellWidth  int
	CellHeight int
}

// HitTest returns the address under the pointer position. The second return
// value is false if the position does not select an address.
//
// In WordGrid mode the entire line selects the line address. In ByteGrid mode
// a position in the address label or past the hex cells does not select
// anything. Nor does a line outside the window's region.
func HitTest(y, x int, win *Window, m Metrics) (uint64, bool) {
	if m.CellWidth <= 0 || m.CellHeight <= 0 || x < 0 || y < 0 {
		return 0, false
	}

	line := uint64(y/m.CellHeight) + win.ScrollLine()
	base := win.CurrentRegion().Start + line*win.Stride()

	// lines past the end of the region are never drawn
	if !win.CurrentRegion().Contains(base) {
		return 0, false
	}

	if win.Mode() == WordGrid {
		return base, true
	}

	if x < labelBand*m.CellWidth {
		return 0, false
	}

	stride := int(win.Stride())
	if x >= (hexBandStart+stride*byteCellWidth)*m.CellWidth {
		return 0, false
	}

	// the separator before the hex band resolves to the first byte
	var idx int
	if x >= hexBandStart*m.CellWidth {
		idx = (x - hexBandStart*m.CellWidth) / (byteCellWidth * m.CellWidth)
	}

	return base + uint64(idx), true
}
