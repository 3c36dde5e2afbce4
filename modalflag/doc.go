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

// Package modalflag wraps the flag package in the Go standard library. It
// adds program modes to the command line, each mode with its own set of flags.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments. After parsing, non-flag arguments are available through
// RemainingArgs() and GetArg().
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("sim", "attach")
//	logging := md.AddBool("log", false, "echo log to stderr")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default and is chosen when the first non-flag
// argument does not name a sub-mode. Sub-mode comparisons are case
// insensitive and Mode() always returns the upper-case name.
//
// Once the mode has been decided, NewMode() starts a new set of flags and
// sub-modes for the arguments that follow the mode selector.
//
//	md.NewMode()
//	pid := md.AddInt("pid", 0, "process to attach to")
//	_, _ = md.Parse()
package modalflag
