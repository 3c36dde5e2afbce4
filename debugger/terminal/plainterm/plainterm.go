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

// Package plainterm implements the Terminal interface for the memscope
// debugger. It's a simple as simple can be and offers no special features.
//
// Records are printed with a '>' before the current line. A highlighted cell
// is marked by a line of carets underneath it.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/memscope/debugger/terminal"
	"github.com/jetsetilly/memscope/memview"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode.
type PlainTerminal struct {
	input     *bufio.Reader
	output    io.Writer
	realInput bool
	silenced  bool
}

// NewPlainTerminal returns a PlainTerminal using the reader and writer.
// Either can be nil in which case os.Stdin and os.Stdout are used when the
// terminal is initialised.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	pt := &PlainTerminal{output: output}
	if input != nil {
		pt.input = bufio.NewReader(input)
	}
	return pt
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	if pt.input == nil {
		pt.input = bufio.NewReader(os.Stdin)
		pt.realInput = term.IsTerminal(int(os.Stdin.Fd()))
	}
	if pt.output == nil {
		pt.output = os.Stdout
	}
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	io.WriteString(pt.output, s)
	io.WriteString(pt.output, "\n")
}

// TermPrintRecord implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintRecord(rec memview.LineRecord) {
	if pt.silenced {
		return
	}

	if rec.Current {
		io.WriteString(pt.output, "> ")
	} else {
		io.WriteString(pt.output, "  ")
	}
	io.WriteString(pt.output, rec.String())
	io.WriteString(pt.output, "\n")

	if rec.Highlight >= 0 && rec.Highlight < len(rec.Cells) {
		col := terminal.RecordPrefix + memview.CellColumn(rec.Highlight)
		io.WriteString(pt.output, strings.Repeat(" ", col))
		io.WriteString(pt.output, strings.Repeat("^", len(rec.Cells[rec.Highlight])))
		io.WriteString(pt.output, "\n")
	}
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	// insert prompt into output stream
	if pt.realInput && !pt.silenced {
		io.WriteString(pt.output, prompt.String())
	}

	s, err := pt.input.ReadString('\n')
	if err != nil {
		if err == io.EOF && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput
}
