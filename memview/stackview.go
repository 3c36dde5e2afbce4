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
	"github.com/jetsetilly/memscope/curated"
	"github.com/jetsetilly/memscope/logger"
)

// error pattern for a stack pointer that could not be read
const StackPointerFailed = "memview: stack pointer: %v"

// StackView is a MemoryView that follows the stack pointer. Whenever the
// state of the process changes the view navigates to the stack pointer,
// regardless of where the user had scrolled to.
type StackView struct {
	*MemoryView
}

// NewStackView is the preferred method of initialisation for the StackView
// type. The view is in WordGrid mode.
func NewStackView(p *Preferences, repaint func()) *StackView {
	vw := &StackView{
		MemoryView: newView("stackview", p, repaint),
	}
	vw.win.SetMode(WordGrid)
	return vw
}

// Follow navigates the view to the stack pointer. A failure to read the
// stack pointer is logged and the view is not moved.
func (vw *StackView) Follow() error {
	vw.owner.SameGoroutine(vw.tag)

	b := vw.live()
	if b == nil {
		return curated.Errorf(BackendUnavailable)
	}

	sp, err := b.StackPointer()
	if err != nil {
		err = curated.Errorf(StackPointerFailed, err)
		logger.Log(logger.Allow, vw.tag, err)
		return err
	}

	return vw.Navigate(sp)
}

// StateChanged implements the notifications.Subscriber interface. A
// successful Follow() requests its own repaint.
func (vw *StackView) StateChanged() {
	if err := vw.Follow(); err != nil {
		vw.requestRepaint()
	}
}

// NavigateTo implements the notifications.Subscriber interface. General
// navigation requests are meant for the memory view and are ignored.
func (vw *StackView) NavigateTo(_ uint64) {
}

// StackAddress implements the notifications.Subscriber interface.
func (vw *StackView) StackAddress(address uint64) {
	_ = vw.Navigate(address)
}
