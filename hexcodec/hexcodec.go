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

// Package hexcodec converts text typed by the user into the byte sequence it
// represents. Input is a string of hexadecimal digit pairs, optionally
// separated by whitespace:
//
//	de ad be ef
//	DEADbeef
//
// Validation happens in full before any decoding takes place. The nibble
// decoder therefore only ever sees characters from the validated digit set.
package hexcodec

import (
	"strings"

	"github.com/jetsetilly/memscope/curated"
)

// Invalid is the curated error pattern returned by Parse() for any input that
// does not describe at least one byte.
const Invalid = "hexcodec: invalid hex text: %s"

// reasons given in the Invalid error
const (
	reasonEmpty    = "no digits"
	reasonOdd      = "odd number of digits"
	reasonNotDigit = "not a hex digit"
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// nibble is only called with characters for which isDigit() is true.
func nibble(c byte) uint8 {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	}
	return c - '0'
}

// Parse strips whitespace from the text and decodes the remaining digit pairs
// into bytes, preserving order. Each pair is decoded with the first digit as
// the high nibble.
//
// Returns an Invalid error if a character other than a hex digit or
// whitespace is present, if the number of digits is odd or if there are no
// digits at all. There is no upper limit on the length of the text.
func Parse(text string) ([]uint8, error) {
	digits := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isSpace(c) {
			continue
		}
		if !isDigit(c) {
			return nil, curated.Errorf(Invalid, reasonNotDigit)
		}
		digits = append(digits, c)
	}

	if len(digits) == 0 {
		return nil, curated.Errorf(Invalid, reasonEmpty)
	}

	if len(digits)%2 != 0 {
		return nil, curated.Errorf(Invalid, reasonOdd)
	}

	bin := make([]uint8, 0, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		bin = append(bin, nibble(digits[i])<<4|nibble(digits[i+1]))
	}

	return bin, nil
}

// Format is the inverse of Parse(). Bytes are rendered as lowercase digit
// pairs joined by the separator string.
func Format(data []uint8, sep string) string {
	const digits = "0123456789abcdef"

	s := strings.Builder{}
	for i, b := range data {
		if i > 0 {
			s.WriteString(sep)
		}
		s.WriteByte(digits[b>>4])
		s.WriteByte(digits[b&0x0f])
	}
	return s.String()
}
