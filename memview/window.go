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

	"github.com/jetsetilly/memscope/backend"
	"github.com/jetsetilly/memscope/curated"
)

// Window is the scroll model of a view. It caches the region containing the
// most recently navigated address and the line that is at the top of the
// view.
//
// The value of scrollLine multiplied by the stride never exceeds the size of
// the cached region.
type Window struct {
	currentAddress uint64
	region         backend.Region
	scrollLine     uint64
	maxScrollLine  uint64
	mode           Mode
}

// NewWindow is the preferred method of initialisation for the Window type.
// The window starts with an empty region so the first navigation will
// always query the backend.
func NewWindow(mode Mode) *Window {
	return &Window{
		mode: mode,
	}
}

// NavigateTo makes address the current address and scrolls so that the line
// containing it is at the top of the window.
//
// If the address is not in the cached region the backend is asked for the
// region containing it. If the backend fails, or returns a region that does
// not contain the address, the cached region and the scroll position are
// unchanged and a RegionLookupFailed error is returned.
// The current address is changed in all cases.
//
// A nil backend means that only the current address is recorded.
func (win *Window) NavigateTo(b backend.Backend, address uint64) error {
	win.currentAddress = address

	if b == nil {
		return nil
	}

	if !win.region.Contains(address) {
		r, err := b.FindRegion(address)
		if err != nil {
			return curated.Errorf(RegionLookupFailed, address, err)
		}
		if !r.Contains(address) {
			return curated.Errorf(RegionLookupFailed, address, fmt.Errorf("region %s does not contain address", r))
		}
		win.region = r
		win.maxScrollLine = win.region.Size / win.mode.Stride()
	}

	win.scrollLine = (address - win.region.Start) / win.mode.Stride()

	return nil
}

// ScrollToLine sets the line at the top of the window. The value is clamped
// to the range zero to MaxScrollLine(). The current address is not changed.
func (win *Window) ScrollToLine(line uint64) {
	win.scrollLine = min(line, win.maxScrollLine)
}

// ScrollBy moves the top of the window by delta lines. The result is clamped
// in the same way as ScrollToLine().
func (win *Window) ScrollBy(delta int64) {
	if delta < 0 {
		d := uint64(-delta)
		if d > win.scrollLine {
			win.scrollLine = 0
		} else {
			win.scrollLine -= d
		}
		return
	}
	win.ScrollToLine(win.scrollLine + uint64(delta))
}

// SetMode changes the stride of the window. The cached region is not
// changed and the backend is not consulted. The line at the top of the
// window is recalculated so that the address previously at the top of the
// window remains visible.
func (win *Window) SetMode(mode Mode) {
	top := win.TopAddress()
	win.mode = mode
	win.maxScrollLine = win.region.Size / win.mode.Stride()

	if win.region.Size == 0 {
		win.scrollLine = 0
		return
	}

	win.ScrollToLine((top - win.region.Start) / win.mode.Stride())
}

// CurrentRegion returns the cached region.
func (win *Window) CurrentRegion() backend.Region {
	return win.region
}

// MaxScrollLine returns the largest value that ScrollLine() can return for the
// cached region and current mode.
func (win *Window) MaxScrollLine() uint64 {
	return win.maxScrollLine
}

// ScrollLine returns the line at the top of the window.
func (win *Window) ScrollLine() uint64 {
	return win.scrollLine
}

// CurrentAddress returns the address most recently navigated to.
func (win *Window) CurrentAddress() uint64 {
	return win.currentAddress
}

// TopAddress returns the address of the line at the top of the window.
func (win *Window) TopAddress() uint64 {
	return win.region.Start + win.scrollLine*win.mode.Stride()
}

// Stride returns the number of bytes per line for the current mode.
func (win *Window) Stride() uint64 {
	return win.mode.Stride()
}

// Mode returns the current mode.
func (win *Window) Mode() Mode {
	return win.mode
}
