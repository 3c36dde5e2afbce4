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

// Package memview maps a scrollable window of display lines onto the address
// space of a debugged process. It is the engine behind the memory and stack
// panels of the debugger and knows nothing about how lines are drawn or how
// pointer events are delivered.
//
// A Window caches the region of the address space that contains the most
// recently navigated address. Navigating inside the cached region never
// consults the backend. Navigating outside of it asks the backend for the new
// region exactly once.
//
// Layout() produces one LineRecord per display line. A line is an address
// label followed by either sixteen byte cells and an ASCII column (ByteGrid
// mode) or a single little-endian 64 bit word (WordGrid mode). In text form
// the columns are arranged like so:
//
//	0000000000001040 |de ad be ef 00 00 00 00 00 00 00 00 00 00 00 00 |................
//	0000000000001040 |00000000efbeadde
//
// HitTest() reverses the layout and turns a pointer position into an
// address. Commit() parses and writes the bytes typed into an edit request.
//
// MemoryView and StackView compose these parts and implement the
// notifications.Subscriber interface. A view must only be used from the
// goroutine that first used it. With the assertions build tag this is
// checked on every call.
package memview
