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

	"github.com/jetsetilly/memscope/assert"
	"github.com/jetsetilly/memscope/backend"
	"github.com/jetsetilly/memscope/curated"
	"github.com/jetsetilly/memscope/logger"
)

// MemoryView is a view of a process's memory. It is either detached, with no
// backend or a backend that is no longer live, or attached.
//
// When detached nothing is rendered but the window state is kept so that
// the view resumes where it left off when a backend is attached again.
type MemoryView struct {
	owner assert.Owner

	// used for the log tag
	tag string

	backend   backend.Backend
	win       *Window
	highlight Highlight
	prefs     *Preferences

	// called whenever the view would like to be redrawn
	repaint func()
}

// NewMemoryView is the preferred method of initialisation for the MemoryView
// type. The repaint function is called whenever the view needs to be redrawn
// and can be nil.
func NewMemoryView(p *Preferences, repaint func()) *MemoryView {
	return newView("memview", p, repaint)
}

func newView(tag string, p *Preferences, repaint func()) *MemoryView {
	if p == nil {
		p = DefaultPreferences()
	}

	mode := ByteGrid
	if p.WordMode.Get().(bool) {
		mode = WordGrid
	}

	return &MemoryView{
		tag:     tag,
		win:     NewWindow(mode),
		prefs:   p,
		repaint: repaint,
	}
}

func (vw *MemoryView) String() string {
	r := vw.win.CurrentRegion()
	return fmt.Sprintf("%s %s current=%016x top=%016x line=%d/%d", vw.win.Mode(), r,
		vw.win.CurrentAddress(), vw.win.TopAddress(), vw.win.ScrollLine(), vw.win.MaxScrollLine())
}

func (vw *MemoryView) requestRepaint() {
	if vw.repaint != nil {
		vw.repaint()
	}
}

// live returns the backend if it is present and live. otherwise nil
func (vw *MemoryView) live() backend.Backend {
	if vw.backend == nil || !vw.backend.Live() {
		return nil
	}
	return vw.backend
}

// Attached returns true if the view has a live backend.
func (vw *MemoryView) Attached() bool {
	vw.owner.SameGoroutine(vw.tag)
	return vw.live() != nil
}

// Attach the backend to the view. A nil backend detaches the view.
func (vw *MemoryView) Attach(b backend.Backend) {
	vw.owner.SameGoroutine(vw.tag)
	vw.backend = b
	vw.requestRepaint()
}

// Window returns the scroll model of the view.
func (vw *MemoryView) Window() *Window {
	return vw.win
}

// Highlight returns the highlighted address.
func (vw *MemoryView) Highlight() Highlight {
	return vw.highlight
}

// Navigate to the address. Without a live backend only the current address is
// recorded. A failed region lookup is logged and returned.
func (vw *MemoryView) Navigate(address uint64) error {
	vw.owner.SameGoroutine(vw.tag)

	err := vw.win.NavigateTo(vw.live(), address)
	if err != nil {
		logger.Log(logger.Allow, vw.tag, err)
		return err
	}

	vw.requestRepaint()
	return nil
}

// Scroll the window so that the line is at the top of the view.
func (vw *MemoryView) Scroll(line uint64) {
	vw.owner.SameGoroutine(vw.tag)
	vw.win.ScrollToLine(line)
	vw.requestRepaint()
}

// ScrollBy moves the window by the number of lines.
func (vw *MemoryView) ScrollBy(delta int64) {
	vw.owner.SameGoroutine(vw.tag)
	vw.win.ScrollBy(delta)
	vw.requestRepaint()
}

// SetMode changes the presentation of the view.
func (vw *MemoryView) SetMode(mode Mode) {
	vw.owner.SameGoroutine(vw.tag)
	vw.win.SetMode(mode)
	vw.requestRepaint()
}

// ToggleMode switches between ByteGrid and WordGrid mode.
func (vw *MemoryView) ToggleMode() {
	if vw.win.Mode() == ByteGrid {
		vw.SetMode(WordGrid)
	} else {
		vw.SetMode(ByteGrid)
	}
}

// Render returns the layout of up to the number of lines, starting with the
// line at the top of the window. Rendering stops at the end of the cached
// region. Nothing is returned if the view has no live backend.
//
// A line that cannot be read is still returned, with filler bytes. The read
// failure is logged.
func (vw *MemoryView) Render(lines int) []LineRecord {
	vw.owner.SameGoroutine(vw.tag)

	b := vw.live()
	if b == nil {
		return nil
	}

	region := vw.win.CurrentRegion()
	mode := vw.win.Mode()
	address := vw.win.TopAddress()

	recs := make([]LineRecord, 0, lines)
	for i := 0; i < lines; i++ {
		if !region.Contains(address) {
			break // for loop
		}

		data, err := ReadLine(b, address, mode)
		if err != nil {
			logger.Log(logger.Allow, vw.tag, err)
		}

		recs = append(recs, Layout(address, mode, data, err == nil, vw.win.CurrentAddress(), vw.highlight))
		address += mode.Stride()
	}

	return recs
}

// Click selects the address under the pointer position. The highlight is only
// changed if the position selects an address. A repaint is requested in all
// cases.
func (vw *MemoryView) Click(y, x int) (uint64, bool) {
	vw.owner.SameGoroutine(vw.tag)
	defer vw.requestRepaint()

	a, ok := HitTest(y, x, vw.win, vw.prefs.metrics())
	if !ok {
		return 0, false
	}

	vw.highlight = Highlight{Address: a, Set: true}
	return a, true
}

// EditDefaults returns the text to populate an edit request with. The address
// is the highlighted address or, if there is no highlight, the current
// address.
func (vw *MemoryView) EditDefaults() (addressText string, hexText string) {
	if vw.highlight.Set {
		return fmt.Sprintf("%x", vw.highlight.Address), ""
	}
	return fmt.Sprintf("%x", vw.win.CurrentAddress()), ""
}

// Edit writes the bytes described by hexText to the address. The view is
// repainted after the write, even if the write failed, so that the memory
// as the backend sees it is shown.
func (vw *MemoryView) Edit(addressText string, hexText string) (EditRequest, error) {
	vw.owner.SameGoroutine(vw.tag)

	b := vw.live()
	if b == nil {
		return EditRequest{}, curated.Errorf(BackendUnavailable)
	}

	limit := vw.prefs.EditCap.Get().(int)
	if limit > 0 && len(hexText) > limit {
		return EditRequest{}, curated.Errorf(HexInvalid, fmt.Sprintf("more than %d characters", limit))
	}

	req, err := Commit(b, addressText, hexText)
	if err != nil {
		if !curated.Is(err, WriteFailed) {
			return req, err
		}
		logger.Log(logger.Allow, vw.tag, err)
	}

	vw.requestRepaint()
	return req, err
}

// BackendAttached implements the notifications.Subscriber interface.
func (vw *MemoryView) BackendAttached(b backend.Backend) {
	vw.Attach(b)
}

// StateChanged implements the notifications.Subscriber interface.
func (vw *MemoryView) StateChanged() {
	vw.owner.SameGoroutine(vw.tag)
	vw.requestRepaint()
}

// NavigateTo implements the notifications.Subscriber interface.
func (vw *MemoryView) NavigateTo(address uint64) {
	_ = vw.Navigate(address)
}

// StackAddress implements the notifications.Subscriber interface. Stack
// addresses are of no interest to a MemoryView.
func (vw *MemoryView) StackAddress(_ uint64) {
}
