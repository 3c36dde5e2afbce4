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

package memview

import (
	"github.com/jetsetilly/memscope/paths"
	"github.com/jetsetilly/memscope/prefs"
)

// PrefsFile is the name of the preferences file in the resource directory.
const PrefsFile = "prefs"

// Preferences for the memory views.
type Preferences struct {
	dsk *prefs.Disk

	// memory view begins in WordGrid mode
	WordMode prefs.Bool

	// size of a character cell in pointer units. the terminal uses a cell
	// size of one
	CellWidth  prefs.Int
	CellHeight prefs.Int

	// maximum number of characters accepted in the hex text of an edit
	EditCap prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// DefaultPreferences returns preferences with the default values and no file
// on disk. Save() and Load() do nothing for these preferences.
func DefaultPreferences() *Preferences {
	p := &Preferences{}
	p.CellWidth.SetRange(1, 256)
	p.CellHeight.SetRange(1, 256)
	p.EditCap.SetRange(0, 4096)
	p.SetDefaults()
	return p
}

// NewPreferences loads the preferences from the named file. If the path is
// empty the default prefs file in the resource directory is used.
func NewPreferences(path string) (*Preferences, error) {
	p := DefaultPreferences()

	if path == "" {
		var err error
		path, err = paths.ResourcePath("", PrefsFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("memview.wordmode", &p.WordMode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memview.cellwidth", &p.CellWidth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memview.cellheight", &p.CellHeight)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memview.editcap", &p.EditCap)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	// the prefs values are ranged so that the defaults can never fail
	_ = p.WordMode.Set(false)
	_ = p.CellWidth.Set(1)
	_ = p.CellHeight.Set(1)
	_ = p.EditCap.Set(16)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// metrics returns the cell dimensions as a Metrics value.
func (p *Preferences) metrics() Metrics {
	return Metrics{
		CellWidth:  p.CellWidth.Get().(int),
		CellHeight: p.CellHeight.Get().(int),
	}
}
