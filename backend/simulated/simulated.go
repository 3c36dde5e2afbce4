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

// Package simulated implements an in-process debug target. The target's
// address space is a list of non-overlapping regions, each backed by a byte
// slice. It is used by the SIM mode of memscope and by tests throughout the
// project.
//
// Faults can be injected at specific addresses to exercise the failure paths
// of the memory views. A read that touches a faulted address fails in its
// entirety. A write stops at the faulted address, leaving the bytes before it
// written.
package simulated

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jetsetilly/memscope/backend"
)

// Sentinal errors returned by the Target.
var (
	ErrUnmapped     = errors.New("address not mapped")
	ErrReadFault    = errors.New("read fault")
	ErrWriteFault   = errors.New("write fault")
	ErrPartialWrite = errors.New("partial write")
	ErrReadOnly     = errors.New("region is read-only")
	ErrOverlap      = errors.New("region overlaps existing region")
	ErrDead         = errors.New("target is not live")
)

// Segment is a single region of the target's address space.
type Segment struct {
	Label    string
	Start    uint64
	Data     []uint8
	ReadOnly bool
}

func (seg *Segment) region() backend.Region {
	return backend.Region{Start: seg.Start, Size: uint64(len(seg.Data))}
}

// Stats counts the number of calls made to each of the backend functions.
// Tests use them to check how often the backend is consulted.
type Stats struct {
	Reads   int
	Writes  int
	Lookups int
	Stack   int
}

// Target implements the backend.Backend interface.
type Target struct {
	segments []*Segment
	sp       uint64
	dead     bool

	readFaults  map[uint64]bool
	writeFaults map[uint64]bool

	Stats Stats
}

// NewTarget is the preferred method of initialisation for the Target type.
func NewTarget() *Target {
	return &Target{
		readFaults:  make(map[uint64]bool),
		writeFaults: make(map[uint64]bool),
	}
}

// AddSegment maps data at the start address. The data slice is used directly
// and is not copied.
func (tgt *Target) AddSegment(label string, start uint64, data []uint8, readOnly bool) error {
	if len(data) == 0 {
		return fmt.Errorf("simulated: segment %s has no data", label)
	}

	seg := &Segment{Label: label, Start: start, Data: data, ReadOnly: readOnly}
	r := seg.region()
	if r.End() <= r.Start {
		return fmt.Errorf("simulated: segment %s wraps address space", label)
	}

	for _, s := range tgt.segments {
		o := s.region()
		if r.Start < o.End() && o.Start < r.End() {
			return fmt.Errorf("%w: %s and %s", ErrOverlap, label, s.Label)
		}
	}

	tgt.segments = append(tgt.segments, seg)
	sort.Slice(tgt.segments, func(i, j int) bool {
		return tgt.segments[i].Start < tgt.segments[j].Start
	})

	return nil
}

// Segments returns the list of segments in address order.
func (tgt *Target) Segments() []*Segment {
	return tgt.segments
}

// SetStackPointer changes the value returned by StackPointer().
func (tgt *Target) SetStackPointer(sp uint64) {
	tgt.sp = sp
}

// Kill ends the target. Once killed the target is no longer live.
func (tgt *Target) Kill() {
	tgt.dead = true
}

// Revive undoes the effect of Kill().
func (tgt *Target) Revive() {
	tgt.dead = false
}

// FaultRead causes any read that includes address to fail.
func (tgt *Target) FaultRead(address uint64, fault bool) {
	if fault {
		tgt.readFaults[address] = true
	} else {
		delete(tgt.readFaults, address)
	}
}

// FaultWrite causes any write that includes address to fail. Bytes before the
// faulted address are written, so a fault in the middle of a write results in
// a partial write.
func (tgt *Target) FaultWrite(address uint64, fault bool) {
	if fault {
		tgt.writeFaults[address] = true
	} else {
		delete(tgt.writeFaults, address)
	}
}

func (tgt *Target) find(address uint64) *Segment {
	for _, seg := range tgt.segments {
		if seg.region().Contains(address) {
			return seg
		}
	}
	return nil
}

// ReadMemory implements the backend.Backend interface.
func (tgt *Target) ReadMemory(address uint64, buffer []uint8) error {
	tgt.Stats.Reads++

	if tgt.dead {
		return ErrDead
	}

	seg := tgt.find(address)
	if seg == nil {
		return fmt.Errorf("%w: %#x", ErrUnmapped, address)
	}

	offset := address - seg.Start
	if uint64(len(buffer)) > uint64(len(seg.Data))-offset {
		return fmt.Errorf("%w: %#x", ErrUnmapped, seg.region().End())
	}

	for i := range buffer {
		if tgt.readFaults[address+uint64(i)] {
			return fmt.Errorf("%w: %#x", ErrReadFault, address+uint64(i))
		}
	}

	copy(buffer, seg.Data[offset:])

	return nil
}

// WriteMemory implements the backend.Backend interface.
func (tgt *Target) WriteMemory(address uint64, data []uint8) error {
	tgt.Stats.Writes++

	if tgt.dead {
		return ErrDead
	}

	seg := tgt.find(address)
	if seg == nil {
		return fmt.Errorf("%w: %#x", ErrUnmapped, address)
	}

	if seg.ReadOnly {
		return fmt.Errorf("%w: %s", ErrReadOnly, seg.Label)
	}

	offset := address - seg.Start
	for i, b := range data {
		a := address + uint64(i)
		if tgt.writeFaults[a] {
			return fmt.Errorf("%w: %w at %#x", ErrPartialWrite, ErrWriteFault, a)
		}
		if offset+uint64(i) >= uint64(len(seg.Data)) {
			return fmt.Errorf("%w: %w at %#x", ErrPartialWrite, ErrUnmapped, a)
		}
		seg.Data[offset+uint64(i)] = b
	}

	return nil
}

// FindRegion implements the backend.Backend interface.
func (tgt *Target) FindRegion(address uint64) (backend.Region, error) {
	tgt.Stats.Lookups++

	if tgt.dead {
		return backend.Region{}, ErrDead
	}

	seg := tgt.find(address)
	if seg == nil {
		return backend.Region{}, fmt.Errorf("%w: %#x", ErrUnmapped, address)
	}

	return seg.region(), nil
}

// StackPointer implements the backend.Backend interface.
func (tgt *Target) StackPointer() (uint64, error) {
	tgt.Stats.Stack++

	if tgt.dead {
		return 0, ErrDead
	}

	return tgt.sp, nil
}

// Live implements the backend.Backend interface.
func (tgt *Target) Live() bool {
	return !tgt.dead
}
