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

package debugger

import (
	"fmt"

	"github.com/jetsetilly/memscope/backend"
	"github.com/jetsetilly/memscope/debugger/terminal"
	"github.com/jetsetilly/memscope/logger"
	"github.com/jetsetilly/memscope/memview"
	"github.com/jetsetilly/memscope/notifications"
)

// AttachFunc returns the backend the views should attach to. It is called
// every time the ATTACH command is used.
type AttachFunc func() (backend.Backend, error)

// the views that can have focus
type focus int

const (
	focusMemory focus = iota
	focusStack
)

func (f focus) String() string {
	switch f {
	case focusMemory:
		return "memory"
	case focusStack:
		return "stack"
	}
	return "unknown view"
}

// DefaultLines is the number of lines drawn for a view if no other value is
// given to SetLines().
const DefaultLines = 16

// Debugger is the basic debugging frontend for memscope.
type Debugger struct {
	term   terminal.Terminal
	prefs  *memview.Preferences
	attach AttachFunc

	// the views are subscribed to the bus in the order memory then stack
	bus    notifications.Bus
	memory *memview.MemoryView
	stack  *memview.StackView
	focus  focus

	// the backend most recently published to the views. nil if the views
	// are detached
	backend backend.Backend

	// number of lines drawn for a view
	lines int

	// a view has requested a repaint. the view with focus is redrawn before
	// the next prompt
	dirty bool

	running bool
}

// NewDebugger creates and initialises everything required for a new
// debugging session. The attach function can be nil in which case the ATTACH
// command always fails. The preferences can also be nil, in which case the
// default memview preferences are used.
func NewDebugger(term terminal.Terminal, prefs *memview.Preferences, attach AttachFunc) *Debugger {
	if prefs == nil {
		prefs = memview.DefaultPreferences()
	}

	dbg := &Debugger{
		term:   term,
		prefs:  prefs,
		attach: attach,
		lines:  DefaultLines,
	}

	repaint := func() {
		dbg.dirty = true
	}

	dbg.memory = memview.NewMemoryView(prefs, repaint)
	dbg.stack = memview.NewStackView(prefs, repaint)
	dbg.bus.Subscribe(dbg.memory)
	dbg.bus.Subscribe(dbg.stack)

	return dbg
}

// SetLines changes the number of lines drawn for a view. Values less than one
// are ignored.
func (dbg *Debugger) SetLines(lines int) {
	if lines > 0 {
		dbg.lines = lines
	}
}

// Start the main debugger sequence. The commands are run in order before the
// first prompt. An error in one of the commands is printed and the remaining
// commands are still run.
func (dbg *Debugger) Start(commands []string) error {
	err := dbg.term.Initialise()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	dbg.running = true
	defer dbg.detach()

	for _, c := range commands {
		if !dbg.running {
			return nil
		}
		dbg.printLine(terminal.StyleEcho, c)
		if err := dbg.parseCommand(c); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return dbg.inputLoop()
}

// focused returns the view that has focus
func (dbg *Debugger) focused() *memview.MemoryView {
	if dbg.focus == focusStack {
		return dbg.stack.MemoryView
	}
	return dbg.memory
}

func (dbg *Debugger) prompt() terminal.Prompt {
	vw := dbg.focused()
	return terminal.Prompt{
		View:     dbg.focus.String(),
		Address:  vw.Window().CurrentAddress(),
		Attached: vw.Attached(),
	}
}

// draw the view with focus
func (dbg *Debugger) draw() {
	dbg.dirty = false

	vw := dbg.focused()
	if !vw.Attached() {
		dbg.printLine(terminal.StyleInstrument, "%s: detached", dbg.focus)
		return
	}

	dbg.printLine(terminal.StyleInstrument, "%s: %s", dbg.focus, vw)
	for _, rec := range vw.Render(dbg.lines) {
		dbg.term.TermPrintRecord(rec)
	}
}

// publish a notice to the views. the bus only fails for badly formed notices
// which would mean a programming error in the debugger
func (dbg *Debugger) publish(notice notifications.Notice, args ...any) {
	if err := dbg.bus.Publish(notice, args...); err != nil {
		logger.Log(logger.Allow, "debugger", err)
	}
}

// detacher is implemented by backends that need to release the process when
// the views are detached
type detacher interface {
	Detach() error
}

// detach the views from the backend. the backend is released if necessary
func (dbg *Debugger) detach() {
	if dbg.backend == nil {
		return
	}
	if d, ok := dbg.backend.(detacher); ok {
		if err := d.Detach(); err != nil {
			logger.Log(logger.Allow, "debugger", err)
		}
	}
	dbg.backend = nil
	dbg.publish(notifications.NotifyBackendAttached, nil)
}
