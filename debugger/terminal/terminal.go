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

package terminal

import (
	"github.com/jetsetilly/memscope/memview"
)

// Sentinal errors. Returned by TermRead() if caught whilst waiting for input.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// RecordPrefix is the number of characters printed before the address label
// of a LineRecord.
const RecordPrefix = 2

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input. Implementations that support
	// single key presses may return a complete command in response to a key
	// press. For example, the cursor up key returns the string "SCROLL -1".
	//
	// Returns io.EOF when there is no more input.
	TermRead(prompt Prompt) (string, error)

	// IsInteractive returns true for implementations that expect user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(style Style, s string)
	TermPrintRecord(rec memview.LineRecord)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
