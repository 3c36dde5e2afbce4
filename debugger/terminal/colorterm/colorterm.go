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

// Package colorterm implements the Terminal interface for the memscope
// debugger. It supports colour output and single key presses for scrolling
// the memory view.
//
// The terminal is put into cbreak mode for the duration of the session.
// Cursor up and cursor down scroll the view by one line and page up and page
// down scroll by a page. These keys only have an effect when the input line
// is empty.
package colorterm

import (
	"bufio"
	"io"
	"os"

	"github.com/jetsetilly/memscope/debugger/terminal"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	input  *os.File
	output io.Writer

	// platform specific terminal attributes
	attr attributes

	reader  *bufio.Reader
	history []string

	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	ct.input = os.Stdin
	ct.output = os.Stdout

	if err := ct.attr.cbreak(ct.input); err != nil {
		return err
	}

	ct.reader = bufio.NewReader(ct.input)
	ct.history = make([]string, 0)

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	io.WriteString(ct.output, "\r")
	ct.attr.restore(ct.input)
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	ed := editor{
		input:   ct.reader,
		output:  ct.output,
		history: &ct.history,
	}
	return ed.readLine(prompt.String())
}
