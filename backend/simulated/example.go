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

package simulated

import (
	"encoding/binary"
)

// addresses of the segments created by NewExampleTarget()
const (
	ExampleText  = 0x0000000000400000
	ExampleData  = 0x0000000000600000
	ExampleStack = 0x00007fffff000000
)

// sizes of the segments created by NewExampleTarget()
const (
	exampleTextSize  = 0x1000
	exampleDataSize  = 0x800
	exampleStackSize = 0x2000
)

// NewExampleTarget creates a Target with a read-only text segment, a data
// segment containing some strings and a stack segment with a handful of
// plausible looking frames. The stack pointer points into the stack segment.
func NewExampleTarget() *Target {
	tgt := NewTarget()

	text := make([]uint8, exampleTextSize)
	for i := range text {
		// a repeating nop slide with the occasional 'ret'
		if i%32 == 31 {
			text[i] = 0xc3
		} else {
			text[i] = 0x90
		}
	}

	data := make([]uint8, exampleDataSize)
	copy(data, "memscope example target\x00")
	copy(data[0x40:], "the quick brown fox jumps over the lazy dog\x00")
	for i := 0x100; i < len(data); i++ {
		data[i] = uint8(i)
	}

	stack := make([]uint8, exampleStackSize)
	sp := uint64(exampleStackSize - 0x100)
	for i := uint64(0); i < 0x100; i += 8 {
		// return addresses into the text segment interleaved with frame
		// pointers further up the stack
		var v uint64
		if i%16 == 0 {
			v = ExampleText + i*4
		} else {
			v = ExampleStack + sp + i + 0x10
		}
		binary.LittleEndian.PutUint64(stack[sp+i:], v)
	}

	// these segments never overlap so errors are not possible
	_ = tgt.AddSegment("text", ExampleText, text, true)
	_ = tgt.AddSegment("data", ExampleData, data, false)
	_ = tgt.AddSegment("stack", ExampleStack, stack, false)

	tgt.SetStackPointer(ExampleStack + sp)

	return tgt
}
