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
	"sort"
	"strings"
)

// debugger keywords
const (
	cmdGoto    = "GOTO"
	cmdMode    = "MODE"
	cmdScroll  = "SCROLL"
	cmdClick   = "CLICK"
	cmdEdit    = "EDIT"
	cmdRefresh = "REFRESH"
	cmdView    = "VIEW"

	cmdAttach = "ATTACH"
	cmdDetach = "DETACH"

	// meta
	cmdLog    = "LOG"
	cmdMemViz = "MEMVIZ"
	cmdPrefs  = "PREFS"
	cmdHelp   = "HELP"
	cmdQuit   = "QUIT"
)

// command describes the arguments accepted by a keyword. max is -1 for
// commands that accept any number of arguments
type command struct {
	usage    string
	min, max int
}

var commandTemplate = map[string]command{
	cmdGoto:    {usage: "<address>", min: 1, max: 1},
	cmdMode:    {usage: "(BYTE|WORD)", min: 0, max: 1},
	cmdScroll:  {usage: "[<line>|+<lines>|-<lines>|PAGEUP|PAGEDOWN]", min: 1, max: 1},
	cmdClick:   {usage: "<line> <column>", min: 2, max: 2},
	cmdEdit:    {usage: "(@<address>) <hex>", min: 1, max: -1},
	cmdRefresh: {usage: "", min: 0, max: 0},
	cmdView:    {usage: "(MEMORY|STACK)", min: 0, max: 1},

	cmdAttach: {usage: "", min: 0, max: 0},
	cmdDetach: {usage: "", min: 0, max: 0},

	cmdLog:    {usage: "(<number>|CLEAR)", min: 0, max: 1},
	cmdMemViz: {usage: "<file>", min: 1, max: 1},
	cmdPrefs:  {usage: "(SAVE|LOAD|DEFAULTS)", min: 0, max: 1},
	cmdHelp:   {usage: "(<command>)", min: 0, max: 1},
	cmdQuit:   {usage: "", min: 0, max: 0},
}

// validateTokens checks that the command is known and that the number of
// arguments is acceptable. the tokens are left ready for the first argument
// to be retrieved with get()
func validateTokens(tk *tokens) (string, error) {
	keyword, ok := tk.get()
	if !ok {
		return "", nil
	}
	keyword = strings.ToUpper(keyword)

	cmd, ok := commandTemplate[keyword]
	if !ok {
		return "", fmt.Errorf("%s is not a debugger command", keyword)
	}

	n := tk.remaining()
	if n < cmd.min {
		return "", fmt.Errorf("%s: too few arguments: usage: %s", keyword, usageString(keyword))
	}
	if cmd.max >= 0 && n > cmd.max {
		return "", fmt.Errorf("%s: too many arguments: usage: %s", keyword, usageString(keyword))
	}

	return keyword, nil
}

func usageString(keyword string) string {
	cmd := commandTemplate[keyword]
	if cmd.usage == "" {
		return keyword
	}
	return fmt.Sprintf("%s %s", keyword, cmd.usage)
}

// sorted list of keywords
func keywords() []string {
	k := make([]string, 0, len(commandTemplate))
	for c := range commandTemplate {
		k = append(k, c)
	}
	sort.Strings(k)
	return k
}
