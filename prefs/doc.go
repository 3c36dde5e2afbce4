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

// Package prefs facilitates the storage of preferrences to disk. Values are
// registered with a Disk instance under a key and saved as one "key :: value"
// line per preference.
//
// Preference values can also be given on the command line. See
// PushCommandLineStack() for details. A value from the command line is
// applied when the preference is added to the Disk and takes priority over
// the value on disk.
package prefs
