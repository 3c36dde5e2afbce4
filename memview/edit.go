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
	"strconv"
	"strings"

	"github.com/jetsetilly/memscope/backend"
	"github.com/jetsetilly/memscope/curated"
	"github.com/jetsetilly/memscope/hexcodec"
)

// EditRequest is the address and bytes of a single edit.
type EditRequest struct {
	Address uint64
	Bytes   []uint8
}

// ParseAddress converts the text to an address. The text is hexadecimal of
// between one and sixteen digits, with an optional 0x prefix.
func ParseAddress(text string) (uint64, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	if len(s) == 0 || len(s) > 16 {
		return 0, curated.Errorf(AddressInvalid, text)
	}

	a, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, curated.Errorf(AddressInvalid, text)
	}

	return a, nil
}

// Commit parses the address and hex text and writes the bytes to the
// backend with a single call to WriteMemory(). A failed write is not
// retried.
//
// Returns the request that was sent to the backend, even when the write
// failed.
func Commit(b backend.Backend, addressText string, hexText string) (EditRequest, error) {
	if b == nil || !b.Live() {
		return EditRequest{}, curated.Errorf(BackendUnavailable)
	}

	address, err := ParseAddress(addressText)
	if err != nil {
		return EditRequest{}, err
	}

	data, err := hexcodec.Parse(hexText)
	if err != nil {
		return EditRequest{}, curated.Errorf(HexInvalid, err)
	}

	req := EditRequest{Address: address, Bytes: data}

	if err := b.WriteMemory(req.Address, req.Bytes); err != nil {
		return req, curated.Errorf(WriteFailed, req.Address, err)
	}

	return req, nil
}
