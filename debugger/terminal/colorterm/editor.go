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

package colorterm

import (
	"bufio"
	"io"

	"github.com/jetsetilly/memscope/curated"
	"github.com/jetsetilly/memscope/debugger/terminal"
	"github.com/jetsetilly/memscope/debugger/terminal/ansi"
)

// commands returned by readLine() in response to scrolling keys
const (
	scrollUp       = "SCROLL -1"
	scrollDown     = "SCROLL +1"
	scrollPageUp   = "SCROLL PAGEUP"
	scrollPageDown = "SCROLL PAGEDOWN"
)

// maximum number of entries in the input history
const maxHistory = 50

// editor is a simple line editor. the terminal must be in cbreak mode (no
// echo and no line buffering) for the editor to work correctly
type editor struct {
	input   *bufio.Reader
	output  io.Writer
	history *[]string
}

func (ed *editor) redraw(prompt string, line []byte) {
	io.WriteString(ed.output, "\r")
	io.WriteString(ed.output, ansi.ClearLine)
	io.WriteString(ed.output, prompt)
	ed.output.Write(line)
}

// readLine returns the next line of input. scrolling keys pressed on an empty
// line return a SCROLL command
func (ed *editor) readLine(prompt string) (string, error) {
	var line []byte

	// position in the history. equal to the length of the history when the
	// user is not browsing it
	hist := len(*ed.history)

	io.WriteString(ed.output, prompt)

	for {
		c, err := ed.input.ReadByte()
		if err != nil {
			return "", err
		}

		switch c {
		case keyCarriageReturn, keyLineFeed:
			io.WriteString(ed.output, "\n")
			s := string(line)
			if s != "" {
				*ed.history = append(*ed.history, s)
				if len(*ed.history) > maxHistory {
					*ed.history = (*ed.history)[len(*ed.history)-maxHistory:]
				}
			}
			return s, nil

		case keyInterrupt:
			io.WriteString(ed.output, "\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case keyEndOfFile:
			if len(line) == 0 {
				io.WriteString(ed.output, "\n")
				return "", io.EOF
			}

		case keyBackspace, keyDelete:
			if len(line) > 0 {
				line = line[:len(line)-1]
				io.WriteString(ed.output, "\b \b")
			}

		case keyEsc:
			cmd, ok := ed.escape(prompt, &line, &hist)
			if ok {
				io.WriteString(ed.output, "\r")
				io.WriteString(ed.output, ansi.ClearLine)
				return cmd, nil
			}

		default:
			if c >= 0x20 && c <= 0x7e {
				line = append(line, c)
				ed.output.Write([]byte{c})
			}
		}
	}
}

// escape handles an escape sequence. returns true if the sequence is a
// scrolling key that should be returned as a command
func (ed *editor) escape(prompt string, line *[]byte, hist *int) (string, bool) {
	c, err := ed.input.ReadByte()
	if err != nil || c != escCursor {
		return "", false
	}

	c, err = ed.input.ReadByte()
	if err != nil {
		return "", false
	}

	switch c {
	case cursorUp:
		if len(*line) == 0 && *hist == len(*ed.history) {
			return scrollUp, true
		}
		if *hist > 0 {
			*hist--
			*line = []byte((*ed.history)[*hist])
			ed.redraw(prompt, *line)
		}

	case cursorDown:
		if len(*line) == 0 && *hist == len(*ed.history) {
			return scrollDown, true
		}
		if *hist < len(*ed.history) {
			*hist++
			if *hist == len(*ed.history) {
				*line = (*line)[:0]
			} else {
				*line = []byte((*ed.history)[*hist])
			}
			ed.redraw(prompt, *line)
		}

	case pageUp, pageDown:
		t, err := ed.input.ReadByte()
		if err != nil || t != tilde {
			return "", false
		}
		if len(*line) == 0 {
			if c == pageUp {
				return scrollPageUp, true
			}
			return scrollPageDown, true
		}
	}

	return "", false
}
