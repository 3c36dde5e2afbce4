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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/memscope/debugger/terminal"
	"github.com/jetsetilly/memscope/debugger/terminal/plainterm"
	"github.com/jetsetilly/memscope/memview"
	"github.com/jetsetilly/memscope/test"
)

func TestImplements(t *testing.T) {
	test.ExpectImplements[terminal.Terminal](t, plainterm.NewPlainTerminal(nil, nil))
}

func TestRead(t *testing.T) {
	pt := plainterm.NewPlainTerminal(strings.NewReader("goto 1040\r\nmode word\nquit"), &test.Writer{})
	test.DemandSuccess(t, pt.Initialise())
	test.ExpectFailure(t, pt.IsInteractive())

	for _, want := range []string{"goto 1040", "mode word", "quit"} {
		s, err := pt.TermRead(terminal.Prompt{})
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, s, want)
	}

	_, err := pt.TermRead(terminal.Prompt{})
	test.ExpectEquality(t, err, io.EOF)
}

func TestPrintLine(t *testing.T) {
	tw := &test.Writer{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), tw)
	test.DemandSuccess(t, pt.Initialise())

	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleEcho, "not shown")
	pt.TermPrintLine(terminal.StyleError, "bad")

	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "silenced")
	pt.TermPrintLine(terminal.StyleError, "still bad")

	test.ExpectEquality(t, tw.String(), "hello\n* bad\n* still bad\n")
}

func TestPrintRecord(t *testing.T) {
	tw := &test.Writer{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), tw)
	test.DemandSuccess(t, pt.Initialise())

	data := []uint8("0123456789abcdef")
	hl := memview.Highlight{Address: 0x1042, Set: true}

	pt.TermPrintRecord(memview.Layout(0x1040, memview.ByteGrid, data, true, 0x1040, hl))
	pt.TermPrintRecord(memview.Layout(0x1050, memview.ByteGrid, data, true, 0x1040, hl))

	lines := tw.Lines()
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "> 0000000000001040 |30 31 32 33 34 35 36 37 38 39 61 62 63 64 65 66 |0123456789abcdef")
	test.ExpectEquality(t, lines[1], strings.Repeat(" ", 26)+"^^")
	test.ExpectEquality(t, lines[2], "  0000000000001050 |30 31 32 33 34 35 36 37 38 39 61 62 63 64 65 66 |0123456789abcdef")

	// the carets are under the highlighted cell
	test.ExpectEquality(t, lines[0][26:28], "32")

	tw.Clear()
	hl = memview.Highlight{Address: 0x1040, Set: true}
	pt.TermPrintRecord(memview.Layout(0x1040, memview.WordGrid, data[:8], true, 0, hl))
	lines = tw.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "  0000000000001040 |3736353433323130")
	test.ExpectEquality(t, lines[1], strings.Repeat(" ", 20)+strings.Repeat("^", 16))
}
