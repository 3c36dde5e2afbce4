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

//go:build assertions

package assert

import "fmt"

// Enabled is true when the assertions build tag has been specified.
const Enabled = true

// SameGoroutine panics if the calling goroutine is not the owner.
func (o *Owner) SameGoroutine(resource string) {
	if !o.Check() {
		panic(fmt.Sprintf("%s used from goroutine %d but is owned by goroutine %d", resource, GetGoRoutineID(), o.id))
	}
}
