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

package memview_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/memscope/backend/simulated"
	"github.com/jetsetilly/memscope/curated"
	"github.com/jetsetilly/memscope/hexcodec"
	"github.com/jetsetilly/memscope/memview"
	"github.com/jetsetilly/memscope/test"
)

var errRejected = errors.New("rejected")

// recorder is a backend that records every write and optionally fails them
type recorder struct {
	*simulated.Target
	writes []memview.EditRequest
	fail   bool
}

func (rec *recorder) WriteMemory(address uint64, data []uint8) error {
	rec.writes = append(rec.writes, memview.EditRequest{Address: address, Bytes: append([]uint8{}, data...)})
	if rec.fail {
		return errRejected
	}
	return rec.Target.WriteMemory(address, data)
}

func newRecorder(t *testing.T) *recorder {
	t.Helper()
	tgt := simulated.NewTarget()
	test.DemandSuccess(t, tgt.AddSegment("edit", 0x2000, make([]uint8, 0x100), false))
	return &recorder{Target: tgt}
}

func TestCommit(t *testing.T) {
	b := newRecorder(t)

	req, err := memview.Commit(b, "2000", "de ad be ef")
	test.ExpectSuccess(t, err)

	want := []memview.EditRequest{{Address: 0x2000, Bytes: []uint8{0xde, 0xad, 0xbe, 0xef}}}
	if diff := cmp.Diff(want, b.writes); diff != "" {
		t.Errorf("unexpected writes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want[0], req); diff != "" {
		t.Errorf("unexpected request (-want +got):\n%s", diff)
	}

	data := make([]uint8, 4)
	test.ExpectSuccess(t, b.ReadMemory(0x2000, data))
	test.ExpectEquality(t, hexcodec.Format(data, ""), "deadbeef")
}

func TestCommitWriteFailed(t *testing.T) {
	b := newRecorder(t)
	b.fail = true

	req, err := memview.Commit(b, "0x2000", "de ad be ef")
	test.ExpectSuccess(t, curated.Is(err, memview.WriteFailed))
	test.ExpectSuccess(t, errors.Is(err, errRejected))
	test.ExpectEquality(t, req.Address, uint64(0x2000))

	// a failed write is never retried
	test.ExpectEquality(t, len(b.writes), 1)
}

func TestCommitPartialWrite(t *testing.T) {
	b := newRecorder(t)
	b.FaultWrite(0x2002, true)

	_, err := memview.Commit(b, "2000", "11 22 33 44")
	test.ExpectSuccess(t, curated.Is(err, memview.WriteFailed))
	test.ExpectSuccess(t, errors.Is(err, simulated.ErrPartialWrite))

	// the bytes before the fault were written
	data := make([]uint8, 4)
	test.ExpectSuccess(t, b.ReadMemory(0x2000, data))
	test.ExpectEquality(t, hexcodec.Format(data, " "), "11 22 00 00")
}

func TestCommitInvalidInput(t *testing.T) {
	b := newRecorder(t)

	_, err := memview.Commit(b, "zz", "de ad")
	test.ExpectSuccess(t, curated.Is(err, memview.AddressInvalid))

	_, err = memview.Commit(b, "2000", "abc")
	test.ExpectSuccess(t, curated.Is(err, memview.HexInvalid))
	test.ExpectSuccess(t, curated.Has(err, hexcodec.Invalid))

	_, err = memview.Commit(b, "2000", "")
	test.ExpectSuccess(t, curated.Is(err, memview.HexInvalid))

	// no write is attempted for invalid input
	test.ExpectEquality(t, len(b.writes), 0)
}

func TestCommitBackendUnavailable(t *testing.T) {
	_, err := memview.Commit(nil, "2000", "00")
	test.ExpectSuccess(t, curated.Is(err, memview.BackendUnavailable))

	b := newRecorder(t)
	b.Kill()
	_, err = memview.Commit(b, "2000", "00")
	test.ExpectSuccess(t, curated.Is(err, memview.BackendUnavailable))
	test.ExpectEquality(t, len(b.writes), 0)
}

func TestParseAddress(t *testing.T) {
	good := map[string]uint64{
		"2000":               0x2000,
		"0x2000":             0x2000,
		"0X2000":             0x2000,
		"  ffff ":            0xffff,
		"0":                  0,
		"DeadBeef":           0xdeadbeef,
		"ffffffffffffffff":   0xffffffffffffffff,
		"0x7fffffffffffffff": 0x7fffffffffffffff,
	}
	for s, v := range good {
		a, err := memview.ParseAddress(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, a, v, s)
	}

	bad := []string{"", "0x", "zz", "-1", "12 34", strings.Repeat("f", 17), "0x10000000000000000"}
	for _, s := range bad {
		_, err := memview.ParseAddress(s)
		test.ExpectSuccess(t, curated.Is(err, memview.AddressInvalid), s)
	}
}
