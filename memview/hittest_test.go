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

package memview_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/memscope/memview"
	"github.com/jetsetilly/memscope/test"
)

// pixel metrics of a typical monospaced font
var fontMetrics = memview.Metrics{CellWidth: 7, CellHeight: 13}

func TestHitTestByteColumns(t *testing.T) {
	tgt := newTarget(t)
	win := memview.NewWindow(memview.ByteGrid)
	test.DemandSuccess(t, win.NavigateTo(tgt, 0x1000))

	for line := 0; line < 4; line++ {
		for i := 0; i < 16; i++ {
			// every pixel of the three cells belonging to the column
			left := memview.CellColumn(i) * fontMetrics.CellWidth
			for x := left; x < left+3*fontMetrics.CellWidth; x++ {
				y := line*fontMetrics.CellHeight + fontMetrics.CellHeight/2
				a, ok := memview.HitTest(y, x, win, fontMetrics)
				tag := fmt.Sprintf("line %d column %d x %d", line, i, x)
				test.ExpectSuccess(t, ok, tag)
				test.ExpectEquality(t, a, 0x1000+uint64(line*16+i), tag)
			}
		}
	}
}

func TestHitTestScrolled(t *testing.T) {
	tgt := newTarget(t)
	win := memview.NewWindow(memview.ByteGrid)
	test.DemandSuccess(t, win.NavigateTo(tgt, 0x1040))

	a, ok := memview.HitTest(0, memview.CellColumn(3)*fontMetrics.CellWidth, win, fontMetrics)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint64(0x1043))

	a, ok = memview.HitTest(2*fontMetrics.CellHeight, memview.CellColumn(15)*fontMetrics.CellWidth, win, fontMetrics)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint64(0x106f))
}

func TestHitTestNonDataColumns(t *testing.T) {
	tgt := newTarget(t)
	win := memview.NewWindow(memview.ByteGrid)
	test.DemandSuccess(t, win.NavigateTo(tgt, 0x1000))

	// address label and the separator following it
	for x := 0; x < 17*fontMetrics.CellWidth; x++ {
		_, ok := memview.HitTest(0, x, win, fontMetrics)
		test.ExpectFailure(t, ok, x)
	}

	// the separator cell before the hex cells selects the first byte
	a, ok := memview.HitTest(0, 17*fontMetrics.CellWidth, win, fontMetrics)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint64(0x1000))

	// the last pixel of the hex band and the first pixel past it
	a, ok = memview.HitTest(0, 66*fontMetrics.CellWidth-1, win, fontMetrics)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint64(0x100f))

	_, ok = memview.HitTest(0, 66*fontMetrics.CellWidth, win, fontMetrics)
	test.ExpectFailure(t, ok)

	_, ok = memview.HitTest(0, 80*fontMetrics.CellWidth, win, fontMetrics)
	test.ExpectFailure(t, ok)

	_, ok = memview.HitTest(-1, 20*fontMetrics.CellWidth, win, fontMetrics)
	test.ExpectFailure(t, ok)

	_, ok = memview.HitTest(0, 20, win, memview.Metrics{})
	test.ExpectFailure(t, ok)
}

func TestHitTestWordGrid(t *testing.T) {
	tgt := newTarget(t)
	win := memview.NewWindow(memview.WordGrid)
	test.DemandSuccess(t, win.NavigateTo(tgt, 0x1040))

	// any horizontal position selects the word
	for _, x := range []int{0, 50, 200, 1000} {
		a, ok := memview.HitTest(fontMetrics.CellHeight, x, win, fontMetrics)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, a, uint64(0x1048))
	}
}

func TestHitTestPastRegion(t *testing.T) {
	tgt := newTarget(t)
	win := memview.NewWindow(memview.ByteGrid)
	test.DemandSuccess(t, win.NavigateTo(tgt, 0x10f0))
	test.ExpectEquality(t, win.ScrollLine(), uint64(15))

	// the top line is the last line of the region
	a, ok := memview.HitTest(0, memview.CellColumn(0)*fontMetrics.CellWidth, win, fontMetrics)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint64(0x10f0))

	// the line below it is outside the region
	_, ok = memview.HitTest(fontMetrics.CellHeight, memview.CellColumn(0)*fontMetrics.CellWidth, win, fontMetrics)
	test.ExpectFailure(t, ok)

	win.SetMode(memview.WordGrid)
	_, ok = memview.HitTest(100*fontMetrics.CellHeight, 0, win, fontMetrics)
	test.ExpectFailure(t, ok)

	// nothing can be selected in a window without a region
	_, ok = memview.HitTest(0, memview.CellColumn(0)*fontMetrics.CellWidth, memview.NewWindow(memview.ByteGrid), fontMetrics)
	test.ExpectFailure(t, ok)
}
