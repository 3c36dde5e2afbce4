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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is what distinguishes
// one curated error from another and so patterns are usually declared as
// constants next to the code that raises them:
//
//	const WriteFailed = "write failed: %v"
//
//	err := curated.Errorf(WriteFailed, address)
//	if curated.Is(err, WriteFailed) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("lookup: %v", io.EOF)
//	f := curated.Errorf("navigation: %v", e)
//
//	if curated.Has(f, "lookup: %v") {
//		fmt.Println("true")
//	}
//
// Any error in the values list is also reachable with the errors.Is() and
// errors.As() functions from the standard library. In the example above,
// errors.Is(f, io.EOF) is true.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. Code is free to wrap an error with the same
// context as the error it received without the message repeating itself:
//
//	memview: memview: region lookup failed
//
// becomes
//
//	memview: region lookup failed
package curated
