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

package debugger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/memscope/backend"
	"github.com/jetsetilly/memscope/backend/simulated"
	"github.com/jetsetilly/memscope/debugger"
	"github.com/jetsetilly/memscope/debugger/terminal/plainterm"
	"github.com/jetsetilly/memscope/test"
)

// run the debugger with the input and return the output. the same simulated
// target is attached to every time
func run(t *testing.T, tgt *simulated.Target, input ...string) *test.Writer {
	t.Helper()

	w := &test.Writer{}
	trm := plainterm.NewPlainTerminal(strings.NewReader(strings.Join(input, "\n")+"\n"), w)

	dbg := debugger.NewDebugger(trm, nil, func() (backend.Backend, error) {
		return tgt, nil
	})
	dbg.SetLines(4)

	err := dbg.Start(nil)
	test.DemandSuccess(t, err)

	return w
}

func TestDetached(t *testing.T) {
	w := run(t, simulated.NewExampleTarget(), "GOTO 600000", "MODE WORD")
	test.ExpectSuccess(t, w.Contains("memory: detached"))
	test.ExpectSuccess(t, w.Contains("WORD mode"))
	test.ExpectFailure(t, w.Contains("0000000000600000 |"))
}

func TestGoto(t *testing.T) {
	w := run(t, simulated.NewExampleTarget(), "ATTACH", "GOTO 600000", "QUIT")
	test.ExpectSuccess(t, w.Contains("attached"))
	test.ExpectSuccess(t, w.Contains("> 0000000000600000 |6d 65 6d 73 63 6f 70 65 20 65 78 61 6d 70 6c 65 |memscope example\n"))
	test.ExpectSuccess(t, w.Contains("  0000000000600010 |20 74 61 72 67 65 74 00 00 00 00 00 00 00 00 00 | target.........\n"))

	// four lines are drawn
	test.ExpectSuccess(t, w.Contains("  0000000000600030 |"))
	test.ExpectFailure(t, w.Contains("  0000000000600040 |"))

	// hex notation with a dollar sign
	w = run(t, simulated.NewExampleTarget(), "ATTACH", "GOTO $600040")
	test.ExpectSuccess(t, w.Contains("> 0000000000600040 |74 68 65 20"))
}

func TestGotoErrors(t *testing.T) {
	w := run(t, simulated.NewExampleTarget(), "ATTACH", "GOTO 600000", "GOTO 12345678901234567", "GOTO 10")
	test.ExpectSuccess(t, w.Contains("* memview: invalid address"))
	test.ExpectSuccess(t, w.Contains("* no region contains 0000000000000010"))
}

func TestScroll(t *testing.T) {
	w := run(t, simulated.NewExampleTarget(), "ATTACH", "GOTO 600000", "SCROLL +2")
	test.ExpectSuccess(t, w.Contains("\n  0000000000600020 |"))

	// the current line is still marked after scrolling back
	w = run(t, simulated.NewExampleTarget(), "ATTACH", "GOTO 600000", "SCROLL 10", "SCROLL PAGEUP", "SCROLL -10")
	test.ExpectSuccess(t, w.Contains("line=10/128"))
	test.ExpectSuccess(t, w.Contains("line=6/128"))
	test.ExpectSuccess(t, w.Contains("line=0/128"))

	w = run(t, simulated.NewExampleTarget(), "ATTACH", "GOTO 600000", "SCROLL foo")
	test.ExpectSuccess(t, w.Contains("* scroll value must be a decimal number (foo)"))
}

func TestClickAndEdit(t *testing.T) {
	tgt := simulated.NewExampleTarget()
	w := run(t, tgt, "ATTACH", "GOTO 600000", "CLICK 0 21", "EDIT 4142")
	test.ExpectSuccess(t, w.Contains("highlight 0000000000600001"))
	test.ExpectSuccess(t, w.Contains("0000000000600001 <- 41 42"))
	test.ExpectSuccess(t, w.Contains("> 0000000000600000 |6d 41 42 73 63 6f 70 65 20 65 78 61 6d 70 6c 65 |mABscope example\n"))

	// the caret line marks the highlighted cell
	test.ExpectSuccess(t, w.Contains("\n"+strings.Repeat(" ", 23)+"^^\n"))

	// spaced hex is written to the highlighted address
	w = run(t, simulated.NewExampleTarget(), "ATTACH", "GOTO 600000", "CLICK 0 21", "EDIT de ad be ef")
	test.ExpectSuccess(t, w.Contains("0000000000600001 <- de ad be ef"))
	test.ExpectSuccess(t, w.Contains("> 0000000000600000 |6d de ad be ef 6f 70 65 20 65 78 61 6d 70 6c 65 |m....ope example\n"))
	test.ExpectFailure(t, w.Contains("write failed"))

	// without a highlight the current address is used
	w = run(t, simulated.NewExampleTarget(), "ATTACH", "GOTO 600008", "EDIT 10 20")
	test.ExpectSuccess(t, w.Contains("0000000000600008 <- 10 20"))

	// an explicit address may be separated from the marker
	w = run(t, simulated.NewExampleTarget(), "ATTACH", "GOTO 600000", "EDIT @ 60000a 21")
	test.ExpectSuccess(t, w.Contains("000000000060000a <- 21"))

	// the label does not select an address
	w = run(t, tgt, "ATTACH", "GOTO 600000", "CLICK 0 5")
	test.ExpectSuccess(t, w.Contains("no address at that position"))

	// explicit address
	w = run(t, tgt, "ATTACH", "GOTO 600000", "EDIT @600004 58 59")
	test.ExpectSuccess(t, w.Contains("0000000000600004 <- 58 59"))
	test.ExpectSuccess(t, w.Contains("|mABsXYpe example"))

	w = run(t, tgt, "ATTACH", "GOTO 400000", "EDIT @400000 00")
	test.ExpectSuccess(t, w.Contains("* memview: write failed"))

	w = run(t, tgt, "ATTACH", "EDIT @600000 4x")
	test.ExpectSuccess(t, w.Contains("* memview: invalid hex"))
}

func TestEditNotAttached(t *testing.T) {
	w := run(t, simulated.NewExampleTarget(), "EDIT @600000 41")
	test.ExpectSuccess(t, w.Contains("* memview: no backend available"))
}

func TestStackView(t *testing.T) {
	tgt := simulated.NewExampleTarget()
	w := run(t, tgt, "ATTACH", "VIEW STACK")
	test.ExpectSuccess(t, w.Contains("stack view has focus"))
	test.ExpectSuccess(t, w.Contains("> 00007fffff001f00 |0000000000400000\n"))

	// the stack view follows the stack pointer on refresh
	tgt.SetStackPointer(simulated.ExampleStack + 0x1f10)
	w = run(t, tgt, "ATTACH", "VIEW STACK", "GOTO 7fffff000000", "REFRESH")
	test.ExpectSuccess(t, w.Contains("> 00007fffff000000 |"))
	test.ExpectSuccess(t, w.Contains("> 00007fffff001f10 |"))
}

func TestDetach(t *testing.T) {
	w := run(t, simulated.NewExampleTarget(), "ATTACH", "GOTO 600000", "DETACH", "DETACH")
	test.ExpectSuccess(t, w.Contains("detached\nmemory: detached\n"))
	test.ExpectSuccess(t, w.Contains("* memview: no backend available"))
}

func TestAttachFailure(t *testing.T) {
	w := &test.Writer{}
	trm := plainterm.NewPlainTerminal(strings.NewReader("ATTACH\n"), w)
	dbg := debugger.NewDebugger(trm, nil, nil)
	test.DemandSuccess(t, dbg.Start(nil))
	test.ExpectSuccess(t, w.Contains("* nothing to attach to"))
}

func TestStartCommands(t *testing.T) {
	w := &test.Writer{}
	trm := plainterm.NewPlainTerminal(strings.NewReader(""), w)

	tgt := simulated.NewExampleTarget()
	dbg := debugger.NewDebugger(trm, nil, func() (backend.Backend, error) {
		return tgt, nil
	})
	dbg.SetLines(1)

	test.DemandSuccess(t, dbg.Start([]string{"ATTACH", "GOTO 600040", "FOO"}))
	test.ExpectSuccess(t, w.Contains("* FOO is not a debugger command"))
	test.ExpectSuccess(t, w.Contains("> 0000000000600040 |"))
}

func TestHelp(t *testing.T) {
	w := run(t, nil, "HELP", "HELP GOTO")
	test.ExpectSuccess(t, w.Contains("ATTACH"))
	test.ExpectSuccess(t, w.Contains("Usage: GOTO <address>"))
}

func TestLogAndPrefs(t *testing.T) {
	w := run(t, simulated.NewExampleTarget(), "ATTACH", "GOTO 10", "LOG 1", "LOG CLEAR", "PREFS")
	test.ExpectSuccess(t, w.Contains("memview: memview: region lookup failed"))
	test.ExpectSuccess(t, w.Contains("log cleared"))
	test.ExpectSuccess(t, w.Contains("preferences are not stored on disk"))

	w = run(t, nil, "PREFS FOO")
	test.ExpectSuccess(t, w.Contains("* unknown prefs option (FOO)"))
}

func TestMemViz(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "view.dot")
	w := run(t, simulated.NewExampleTarget(), "ATTACH", "GOTO 600000", "MEMVIZ "+fn)
	test.ExpectSuccess(t, w.Contains("memviz written to"))

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}
