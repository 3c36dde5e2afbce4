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

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit. The most likely treatment is to print different
// styles in different colours.
type Style int

// List of terminal styles.
const (
	// the text the user has typed. terminals that echo input themselves
	// should not print this style
	StyleEcho Style = iota

	// information in response to a command
	StyleFeedback

	// information about a command's usage
	StyleHelp

	// an entry from the log
	StyleLog

	// a notice describing what the view is showing
	StyleInstrument

	// an error message. should be shown even if the terminal is silenced
	StyleError
)

func (s Style) String() string {
	switch s {
	case StyleEcho:
		return "echo"
	case StyleFeedback:
		return "feedback"
	case StyleHelp:
		return "help"
	case StyleLog:
		return "log"
	case StyleInstrument:
		return "instrument"
	case StyleError:
		return "error"
	}
	return "unknown style"
}
