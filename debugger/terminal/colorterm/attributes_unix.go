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

//go:build linux || darwin

package colorterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

type attributes struct {
	canAttr    unix.Termios
	cbreakAttr unix.Termios
	valid      bool
}

// cbreak puts the terminal into cbreak mode. the original attributes are
// kept so that the terminal can be restored
func (attr *attributes) cbreak(f *os.File) error {
	can, err := termios.Tcgetattr(f.Fd())
	if err != nil {
		return fmt.Errorf("colorterm: %w", err)
	}

	attr.canAttr = *can
	attr.cbreakAttr = *can
	termios.Cfmakecbreak(&attr.cbreakAttr)

	// ctrl-c is read as a key press rather than raising a signal
	attr.cbreakAttr.Lflag &^= unix.ISIG

	if err := termios.Tcsetattr(f.Fd(), termios.TCSANOW, &attr.cbreakAttr); err != nil {
		return fmt.Errorf("colorterm: %w", err)
	}

	attr.valid = true

	return nil
}

// restore the terminal to the attributes it had before cbreak() was called
func (attr *attributes) restore(f *os.File) {
	if !attr.valid {
		return
	}
	_ = termios.Tcflush(f.Fd(), termios.TCIFLUSH)
	_ = termios.Tcsetattr(f.Fd(), termios.TCSANOW, &attr.canAttr)
	attr.valid = false
}
