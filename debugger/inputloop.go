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
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/memscope/debugger/terminal"
)

// inputLoop reads and runs commands until the QUIT command or the end of
// input.
func (dbg *Debugger) inputLoop() error {
	for dbg.running {
		if dbg.dirty {
			dbg.draw()
		}

		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || isQuit(err) {
				dbg.running = false
				return nil
			}
			return fmt.Errorf("debugger: %w", err)
		}

		dbg.printLine(terminal.StyleEcho, input)

		if err := dbg.parseCommand(input); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}
