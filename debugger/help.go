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
	"strings"
)

var helps = map[string]string{
	cmdGoto:    "Show the address in the focused view. Address is one to sixteen hex digits with an optional 0x or $ prefix",
	cmdMode:    "Switch between the byte grid and the word grid. Toggles the mode if no argument is given",
	cmdScroll:  "Scroll the focused view to the line in the current region, or by a number of lines or a page",
	cmdClick:   "Select the address at the line and column of the most recent view. The column counts from the first character of the address label",
	cmdEdit:    "Write bytes to memory. An address is given with the @ prefix. If no address is given the highlighted address is used, or the current address if there is no highlight. Hex may contain spaces",
	cmdRefresh: "Tell the views that the state of the process has changed. The stack view moves to the stack pointer",
	cmdView:    "Change which view has focus. Prints the focused view if no argument is given",
	cmdAttach:  "Attach the views to the process",
	cmdDetach:  "Detach the views from the process",
	cmdLog:     "Print the most recent log entries or clear the log",
	cmdMemViz:  "Write a graphviz description of the scroll model of the focused view to a file",
	cmdPrefs:   "Print, save, load or reset the memory view preferences",
	cmdHelp:    "Lists commands and provides help for individual commands",
	cmdQuit:    "Exits the debugger",
}

// helpOverview returns the keywords in columns
func helpOverview() string {
	const cols = 5

	longest := 0
	for k := range commandTemplate {
		longest = max(longest, len(k))
	}
	f := fmt.Sprintf("%%-%ds", longest+3)

	s := strings.Builder{}
	for i, k := range keywords() {
		s.WriteString(fmt.Sprintf(f, k))
		if i%cols == cols-1 {
			s.WriteString("\n")
		}
	}
	return strings.TrimRight(s.String(), " \n")
}

// help returns the help and usage for a keyword
func help(keyword string) string {
	keyword = strings.ToUpper(keyword)
	txt, ok := helps[keyword]
	if !ok {
		return fmt.Sprintf("no help for %s", keyword)
	}
	return fmt.Sprintf("%s\n\n  Usage: %s", txt, usageString(keyword))
}
