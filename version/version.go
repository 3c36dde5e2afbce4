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

// Package version reports the version and VCS revision of the memscope
// binary.
//
// A release build sets the version number with the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/memscope/version.number=v0.1.0"
//
// Other builds report "unreleased" if VCS information was embedded by the Go
// toolchain and "local" if it was not (eg. with "go run .").
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "memscope"

// set by the linker for release builds
var number string

// Info describes the build of the running binary.
type Info struct {
	Version  string
	Revision string

	// Version is a numbered release
	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

var info Info

func init() {
	var settings []debug.BuildSetting
	if bi, ok := debug.ReadBuildInfo(); ok {
		settings = bi.Settings
	}
	info = fromSettings(number, settings)
}

// fromSettings builds an Info from the release number and the settings
// embedded in the binary by the Go toolchain.
func fromSettings(number string, settings []debug.BuildSetting) Info {
	var vcs, modified bool
	var revision string

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	inf := Info{Revision: "no revision information"}
	if revision != "" {
		inf.Revision = revision
		if modified {
			inf.Revision += "+dirty"
		}
	}

	switch {
	case number != "":
		inf.Version = number
		inf.Release = true
	case vcs:
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}

// Version returns the build information of the running binary.
func Version() Info {
	return info
}
