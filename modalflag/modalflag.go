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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes handles command line arguments and program modes. The Output field
// should be set before calling Parse() or help messages will not be seen.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// flags for the current mode. a new flagset is created on every call
	// to NewMode()
	flags *flag.FlagSet

	// the arguments given to NewArgs() and the index of the first argument
	// that has not been consumed by a mode selector
	args    []string
	argsIdx int

	// sub-modes given to AddSubModes() since the last NewMode()
	subModes []string

	// arguments that are not flags or a mode selector
	remaining []string

	// every mode selected by Parse() since NewArgs()
	path []string

	parsed bool
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes selected so far, separated by forward-slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs starts parsing of a new list of arguments.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that further arguments belong to a new mode.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.remaining = nil
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.parsed = false
}

// Parsed returns true if Parse() has been called since the last NewMode().
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// ParseContinue means the caller should continue. If sub-modes have
	// been added the Mode() function will return the selected mode.
	ParseContinue ParseResult = iota

	// ParseHelp means help was requested and has been printed.
	ParseHelp

	// ParseError means the arguments could not be parsed. The error is
	// returned alongside.
	ParseError
)

// Parse the arguments for the current mode.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	var usage strings.Builder
	md.flags.SetOutput(&usage)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.help(usage.String())
			return ParseHelp, nil
		}
		return ParseError, fmt.Errorf("modalflag: %w", err)
	}

	if len(md.subModes) == 0 {
		md.remaining = md.flags.Args()
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m == arg {
			mode = m
			break // for loop
		}
	}

	// consume the flags and the mode selector, if there was one, so that
	// the next Parse() begins with the arguments that follow
	md.argsIdx = len(md.args) - md.flags.NArg()
	if mode == arg {
		md.argsIdx++
	}
	md.remaining = md.args[md.argsIdx:]

	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// help writes the usage output of the flag package, supplemented with the
// mode path and the list of sub-modes.
func (md *Modes) help(usage string) {
	if md.Output == nil {
		return
	}

	lines := strings.SplitN(usage, "\n", 2)

	if len(lines) < 2 || lines[1] == "" {
		if len(md.subModes) == 0 {
			if md.Path() == "" {
				io.WriteString(md.Output, "No help available\n")
			} else {
				fmt.Fprintf(md.Output, "No help available for %s\n", md.Path())
			}
			return
		}
	}

	if md.Path() == "" {
		fmt.Fprintf(md.Output, "%s\n", lines[0])
	} else {
		fmt.Fprintf(md.Output, "%s for %s mode\n", lines[0], md.Path())
	}

	if len(lines) > 1 && lines[1] != "" {
		io.WriteString(md.Output, lines[1])
		if len(md.subModes) > 0 {
			io.WriteString(md.Output, "\n")
		}
	}

	if len(md.subModes) > 0 {
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}
}

// RemainingArgs returns the arguments that are not flags or a sub-mode
// selector.
func (md *Modes) RemainingArgs() []string {
	return md.remaining
}

// GetArg returns the numbered argument that is not a flag or a sub-mode
// selector.
func (md *Modes) GetArg(i int) string {
	if i < 0 || i >= len(md.remaining) {
		return ""
	}
	return md.remaining[i]
}

// AddSubModes for the next call to Parse(). The first sub-mode is the
// default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn for every flag that has been set, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
