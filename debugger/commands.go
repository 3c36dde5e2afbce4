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
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/memscope/curated"
	"github.com/jetsetilly/memscope/debugger/terminal"
	"github.com/jetsetilly/memscope/hexcodec"
	"github.com/jetsetilly/memscope/logger"
	"github.com/jetsetilly/memscope/memview"
	"github.com/jetsetilly/memscope/notifications"
)

// number of log entries printed by the LOG command if no number is given
const defaultLogTail = 10

// parseCommand tokenises the user input and acts upon it. the empty string
// does nothing
func (dbg *Debugger) parseCommand(userInput string) error {
	tk := tokeniseInput(userInput)

	command, err := validateTokens(tk)
	if err != nil {
		return err
	}

	switch command {
	case "":
		// user pressed return
		return nil

	case cmdQuit:
		dbg.running = false

	case cmdHelp:
		keyword, ok := tk.get()
		if ok {
			dbg.printLine(terminal.StyleHelp, help(keyword))
		} else {
			dbg.printLine(terminal.StyleHelp, helpOverview())
		}

	case cmdGoto:
		arg, _ := tk.get()
		address, err := memview.ParseAddress(arg)
		if err != nil {
			return err
		}

		if dbg.focus == focusStack {
			dbg.publish(notifications.NotifyStackAddress, address)
		} else {
			dbg.publish(notifications.NotifyNavigate, address)
		}

		// the views log navigation failures but the user should be told
		// directly
		vw := dbg.focused()
		if vw.Attached() && !vw.Window().CurrentRegion().Contains(address) {
			return fmt.Errorf("no region contains %016x", address)
		}

	case cmdMode:
		arg, ok := tk.get()
		if !ok {
			dbg.focused().ToggleMode()
		} else {
			mode, err := memview.ParseMode(arg)
			if err != nil {
				return err
			}
			dbg.focused().SetMode(mode)
		}
		dbg.printLine(terminal.StyleFeedback, "%s mode", dbg.focused().Window().Mode())

	case cmdScroll:
		arg, _ := tk.get()
		vw := dbg.focused()

		switch strings.ToUpper(arg) {
		case "PAGEUP":
			vw.ScrollBy(-int64(dbg.lines))
		case "PAGEDOWN":
			vw.ScrollBy(int64(dbg.lines))
		default:
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("scroll value must be a decimal number (%s)", arg)
			}
			if arg[0] == '+' || arg[0] == '-' {
				vw.ScrollBy(n)
			} else {
				vw.Scroll(uint64(n))
			}
		}

	case cmdClick:
		line, _ := tk.get()
		col, _ := tk.get()

		y, err := strconv.Atoi(line)
		if err != nil || y < 0 {
			return fmt.Errorf("line must be a positive decimal number (%s)", line)
		}
		x, err := strconv.Atoi(col)
		if err != nil || x < 0 {
			return fmt.Errorf("column must be a positive decimal number (%s)", col)
		}

		// the terminal has a cell size of one. the position is converted to
		// pointer units for the hit test
		y *= dbg.prefs.CellHeight.Get().(int)
		x *= dbg.prefs.CellWidth.Get().(int)

		address, ok := dbg.focused().Click(y, x)
		if !ok {
			dbg.printLine(terminal.StyleFeedback, "no address at that position")
		} else {
			dbg.printLine(terminal.StyleFeedback, "highlight %016x", address)
		}

	case cmdEdit:
		vw := dbg.focused()

		// an explicit address is marked with @. without one every token is
		// hex and the default address is used
		addressText, _ := vw.EditDefaults()
		if arg, _ := tk.peek(); strings.HasPrefix(arg, "@") {
			tk.get()
			addressText = strings.TrimPrefix(arg, "@")
			if addressText == "" {
				addressText, _ = tk.get()
			}
		}

		req, err := vw.Edit(addressText, tk.remainder())
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%016x <- %s", req.Address, hexcodec.Format(req.Bytes, " "))

	case cmdRefresh:
		dbg.publish(notifications.NotifyStateChanged)

	case cmdView:
		arg, ok := tk.get()
		if ok {
			switch strings.ToUpper(arg) {
			case "MEMORY":
				dbg.focus = focusMemory
			case "STACK":
				dbg.focus = focusStack
			default:
				return fmt.Errorf("unknown view (%s)", arg)
			}
			dbg.dirty = true
		}
		dbg.printLine(terminal.StyleFeedback, "%s view has focus", dbg.focus)

	case cmdAttach:
		if dbg.attach == nil {
			return fmt.Errorf("nothing to attach to")
		}

		// a process can only be traced once so any existing backend is
		// released first
		dbg.detach()

		b, err := dbg.attach()
		if err != nil {
			return fmt.Errorf("attach: %w", err)
		}

		dbg.backend = b
		dbg.publish(notifications.NotifyBackendAttached, b)

		// the memory view returns to the address it was showing before. the
		// stack view moves to the stack pointer
		dbg.publish(notifications.NotifyNavigate, dbg.memory.Window().CurrentAddress())
		dbg.publish(notifications.NotifyStateChanged)

		dbg.printLine(terminal.StyleFeedback, "attached")

	case cmdDetach:
		if dbg.backend == nil {
			return curated.Errorf(memview.BackendUnavailable)
		}
		dbg.detach()
		dbg.printLine(terminal.StyleFeedback, "detached")

	case cmdLog:
		arg, ok := tk.get()
		if !ok {
			logger.Tail(dbg.printStyle(terminal.StyleLog), defaultLogTail)
			return nil
		}

		if strings.ToUpper(arg) == "CLEAR" {
			logger.Clear()
			dbg.printLine(terminal.StyleFeedback, "log cleared")
			return nil
		}

		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return fmt.Errorf("log argument must be CLEAR or a positive decimal number (%s)", arg)
		}
		logger.Tail(dbg.printStyle(terminal.StyleLog), n)

	case cmdMemViz:
		fn, _ := tk.get()

		f, err := os.Create(fn)
		if err != nil {
			return fmt.Errorf("memviz: %w", err)
		}
		defer f.Close()

		// the scroll model and highlight of the view. the backend is not
		// included
		vw := dbg.focused()
		h := vw.Highlight()
		memviz.Map(f, vw.Window(), &h)
		dbg.printLine(terminal.StyleFeedback, "memviz written to %s", fn)

	case cmdPrefs:
		arg, ok := tk.get()
		if ok {
			var err error
			switch strings.ToUpper(arg) {
			case "SAVE":
				err = dbg.prefs.Save()
			case "LOAD":
				err = dbg.prefs.Load()
			case "DEFAULTS":
				dbg.prefs.SetDefaults()
			default:
				return fmt.Errorf("unknown prefs option (%s)", arg)
			}
			if err != nil {
				return err
			}
		}

		s := dbg.prefs.String()
		if s == "" {
			s = "preferences are not stored on disk"
		}
		dbg.printLine(terminal.StyleFeedback, s)
	}

	return nil
}

// isQuit returns true for errors that should end the input loop
func isQuit(err error) bool {
	return curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserAbort)
}
