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
	"io"
	"strings"

	"github.com/jetsetilly/memscope/debugger/terminal"
	"github.com/jetsetilly/memscope/debugger/terminal/ansi"
	"github.com/jetsetilly/memscope/memview"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// the editor echoes input as it is typed
	if style == terminal.StyleEcho {
		return
	}

	io.WriteString(ct.output, "\r")

	switch style {
	case terminal.StyleHelp:
		io.WriteString(ct.output, ansi.DimPens["white"])
	case terminal.StyleFeedback:
		io.WriteString(ct.output, ansi.DimPens["white"])
	case terminal.StyleLog:
		io.WriteString(ct.output, ansi.DimPens["yellow"])
	case terminal.StyleInstrument:
		io.WriteString(ct.output, ansi.Pens["cyan"])
	case terminal.StyleError:
		io.WriteString(ct.output, ansi.Pens["red"])
		io.WriteString(ct.output, "* ")
	}

	io.WriteString(ct.output, s)
	io.WriteString(ct.output, ansi.NormalPen)
	io.WriteString(ct.output, "\n")
}

// TermPrintRecord implements the terminal.Output interface. The label of the
// current line is red and the highlighted cell is printed in inverse.
func (ct *ColorTerminal) TermPrintRecord(rec memview.LineRecord) {
	if ct.silenced {
		return
	}

	s := strings.Builder{}
	s.WriteString("\r  ")

	if rec.Current {
		s.WriteString(ansi.Pens["red"])
		s.WriteString(rec.Label)
		s.WriteString(ansi.NormalPen)
	} else {
		s.WriteString(rec.Label)
	}
	s.WriteString(" |")

	// lines that could not be read are dimmed
	cellPen := ansi.NormalPen
	if !rec.ReadOK {
		cellPen = ansi.DimPens["white"]
	}

	s.WriteString(cellPen)
	for i, c := range rec.Cells {
		if i > 0 {
			s.WriteString(" ")
		}
		if i == rec.Highlight {
			s.WriteString(ansi.PenStyles["inverse"])
			s.WriteString(c)
			s.WriteString(ansi.NormalPen)
			s.WriteString(cellPen)
		} else {
			s.WriteString(c)
		}
	}

	if len(rec.Cells) > 1 {
		s.WriteString(" |")
		s.WriteString(rec.ASCII)
	}

	s.WriteString(ansi.NormalPen)
	s.WriteString("\n")

	io.WriteString(ct.output, s.String())
}
