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

// error patterns used by the package. test for them with curated.Is() or
// curated.Has()
const (
	RegionLookupFailed = "memview: region lookup failed: %016x: %v"
	ReadFailed         = "memview: read failed: %016x: %v"
	AddressInvalid     = "memview: invalid address: %s"
	HexInvalid         = "memview: invalid hex: %v"
	WriteFailed        = "memview: write failed: %016x: %v"
	BackendUnavailable = "memview: no backend available"
)
