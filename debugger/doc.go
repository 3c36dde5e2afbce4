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

// Package debugger drives a memory view and a stack view from a terminal.
// Commands are read from the terminal one line at a time and either act on
// the view that has focus or are published as notices on a
// notifications.Bus, to which both views are subscribed.
//
// The debugger does not control the debugged process. The backend is
// obtained with the AttachFunc given to NewDebugger() and the REFRESH
// command is how the user tells the views that the state of the process has
// changed.
//
// Start() takes a list of commands to run before the first prompt. For
// example:
//
//	dbg := debugger.NewDebugger(term, prefs, attach)
//	err := dbg.Start([]string{"ATTACH", "GOTO 600000"})
package debugger
