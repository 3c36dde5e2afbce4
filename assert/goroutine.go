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

// Package assert contains checks that are only of interest while developing.
//
// The memory views are not safe for use from more than one goroutine. The
// Owner type records the goroutine that first uses a view and, when the
// program is built with the "assertions" build tag, panics if any other
// goroutine uses it afterwards. Without the tag the check does nothing.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It is undoubtedly useful for but it should only ever be used for
// debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that owns a resource. The zero value is an
// Owner that has not yet been claimed.
type Owner struct {
	id uint64
}

// Check claims the resource for the calling goroutine if it is unclaimed.
// Returns false if the resource belongs to another goroutine.
func (o *Owner) Check() bool {
	id := GetGoRoutineID()
	if o.id == 0 {
		o.id = id
		return true
	}
	return o.id == id
}

// Release forgets the owning goroutine.
func (o *Owner) Release() {
	o.id = 0
}
