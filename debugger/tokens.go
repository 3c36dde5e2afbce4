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

// tokens is the user input divided into space separated words.
type tokens struct {
	tokens []string
	curr   int
}

func (tk tokens) remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

func (tk tokens) remaining() int {
	return len(tk.tokens) - tk.curr
}

func (tk tokens) peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

func (tk *tokens) get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

func tokeniseInput(input string) *tokens {
	tk := new(tokens)

	// divide user input into tokens. strings.Fields() removes leading and
	// trailing space
	tk.tokens = strings.Fields(input)

	// normalise hex notation. ParseAddress() accepts the 0x prefix
	for i := range tk.tokens {
		if tk.tokens[i][0] == '$' {
			tk.tokens[i] = fmt.Sprintf("0x%s", tk.tokens[i][1:])
		}
	}

	return tk
}
