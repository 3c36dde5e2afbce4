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

// Package paths prepares paths to memscope resources, the prefs file being
// the main example.
//
// The policy of ResourcePath() is simple: if the base resource directory,
// defined to be ".memscope", is present in the current working directory
// then that is the base path. Otherwise the user's config directory, as
// reported by os.UserConfigDir(), is used.
//
// On a modern Linux system the following will return the path
// /home/user/.config/memscope/prefs
//
//	p, err := paths.ResourcePath("", "prefs")
package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources. it should not be used directly except by
// the baseDir() function
const baseResourcePath = ".memscope"

// ResourcePath returns the path to the named resource in the subdirectory of
// the base resource path. The subdirectory is created if it does not exist.
// The resource itself is not checked.
//
// An empty subPth means the resource is in the base directory.
func ResourcePath(subPth string, file string) (string, error) {
	dir := filepath.Join(baseDir(), subPth)

	if _, err := os.Stat(dir); err != nil {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", err
		}
	}

	return filepath.Join(dir, file), nil
}

// baseDir returns baseResourcePath if it can be found in the current
// directory. otherwise the directory in the user's config directory is
// returned, without the leading dot.
func baseDir() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}

	return filepath.Join(cfg, baseResourcePath[1:])
}
