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
	"fmt"
	"strings"
)

// Prompt specifies the content of the prompt.
type Prompt struct {
	// name of the view that has focus
	View string

	// current address of the view
	Address uint64

	// whether the view has a live backend
	Attached bool
}

// String returns the prompt with "standard" decoration.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	s.WriteString(p.View)
	if p.Attached {
		s.WriteString(fmt.Sprintf(" %016x", p.Address))
	} else {
		s.WriteString(" (detached)")
	}
	s.WriteString(" ] > ")
	return s.String()
}
