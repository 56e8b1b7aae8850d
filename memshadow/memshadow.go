// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package memshadow reproduces record-time mapped-memory semantics
// during replay, even when the replay driver's allocation behavior
// (alignment, allocation granularity, coherency) differs from the
// one that produced the trace.
package memshadow

import (
	"errors"
	"fmt"

	"github.com/gviegas/vkreplay/driverapi"
)

// ErrNoRecord is returned by operations addressing a recorded memory
// handle with no allocation record.
var ErrNoRecord = errors.New("memshadow: no allocation record")

// ErrNoActiveMapping is returned by OnUnmap, and by OnFlushRange for a
// record that is not pending, when no mapping window is active for
// the addressed record.
var ErrNoActiveMapping = errors.New("memshadow: no active mapping")

// window describes the currently active mapped range for a record.
type window struct {
	offset uint64
	size   uint64
	// host is the real driver-mapped pointer's backing slice, present
	// only when the record is not pending.
	host []byte
}

// record is the per-allocation bookkeeping for one recorded memory
// allocation.
type record struct {
	live    driverapi.Handle
	size    uint64
	shadow  []byte
	win     *window
	pending bool
}

// Shadow tracks one record per recorded device-memory handle. The
// zero value is ready to use.
type Shadow struct {
	adjustForGPU bool
	records      map[driverapi.Handle]*record
}

// New creates a Shadow. adjustForGPU selects deferred allocation
// mode: allocations are marked pending instead of materialized
// immediately.
func New(adjustForGPU bool) *Shadow {
	return &Shadow{
		adjustForGPU: adjustForGPU,
		records:      make(map[driverapi.Handle]*record),
	}
}

func (s *Shadow) get(recorded driverapi.Handle) *record {
	if s.records == nil {
		s.records = make(map[driverapi.Handle]*record)
	}
	return s.records[recorded]
}

// OnAllocate creates a record for recorded. If the Shadow is in
// adjust-for-GPU mode, the record is marked pending and live is
// ignored by later operations until MaterializePending is called;
// otherwise live is stored as the backing allocation immediately.
func (s *Shadow) OnAllocate(recorded driverapi.Handle, size uint64, live driverapi.Handle) {
	r := &record{size: size, pending: s.adjustForGPU}
	if !s.adjustForGPU {
		r.live = live
	}
	if s.records == nil {
		s.records = make(map[driverapi.Handle]*record)
	}
	s.records[recorded] = r
}

// IsPending reports whether recorded's allocation has been deferred.
func (s *Shadow) IsPending(recorded driverapi.Handle) bool {
	r := s.get(recorded)
	return r != nil && r.pending
}

// MaterializePending records that a deferred allocation finally
// obtained a live handle, no later than the first binding call that
// references it. Any shadow buffer content accumulated while pending
// is left in place; callers are expected to flush it through
// OnFlushRange against the newly live allocation.
func (s *Shadow) MaterializePending(recorded, live driverapi.Handle) error {
	r := s.get(recorded)
	if r == nil {
		return fmt.Errorf("memshadow: MaterializePending(%#x): %w", recorded, ErrNoRecord)
	}
	r.pending = false
	r.live = live
	return nil
}

// LiveHandle returns the live allocation handle backing recorded, or
// NullHandle if recorded has no record or is still pending.
func (s *Shadow) LiveHandle(recorded driverapi.Handle) driverapi.Handle {
	r := s.get(recorded)
	if r == nil || r.pending {
		return driverapi.NullHandle
	}
	return r.live
}

// OnMap stashes the parameters of a mapping request. hostPtr is the
// pointer the driver returned for a non-pending record; it must be
// nil for a pending one.
func (s *Shadow) OnMap(recorded driverapi.Handle, offset, size uint64, hostPtr []byte) error {
	r := s.get(recorded)
	if r == nil {
		return fmt.Errorf("memshadow: OnMap(%#x): %w", recorded, ErrNoRecord)
	}
	w := &window{offset: offset, size: size}
	if !r.pending {
		w.host = hostPtr
	}
	r.win = w
	return nil
}

// OnUnmap writes recordedBytes through to driver-visible memory and
// clears the active mapping window.
//
// If the record is not pending, recordedBytes is copied directly
// into the host-mapped pointer recorded by OnMap. If the record is
// pending, a shadow buffer sized to the mapping window is allocated
// (if not already present) and recordedBytes is copied into it,
// retained for a later real mapping once the allocation is
// materialized.
func (s *Shadow) OnUnmap(recorded driverapi.Handle, recordedBytes []byte) error {
	r := s.get(recorded)
	if r == nil {
		return fmt.Errorf("memshadow: OnUnmap(%#x): %w", recorded, ErrNoRecord)
	}
	if r.win == nil {
		return fmt.Errorf("memshadow: OnUnmap(%#x): %w", recorded, ErrNoActiveMapping)
	}
	if r.pending {
		if r.shadow == nil {
			r.shadow = make([]byte, r.win.size)
		}
		copy(r.shadow, recordedBytes)
	} else {
		copy(r.win.host, recordedBytes)
	}
	r.win = nil
	return nil
}

// OnFlushRange copies recordedBytes into driver-visible memory at
// [offset, offset+len(recordedBytes)) relative to the allocation,
// either into the active mapping's host pointer or into the shadow
// buffer if the record is pending.
func (s *Shadow) OnFlushRange(recorded driverapi.Handle, offset uint64, recordedBytes []byte) error {
	r := s.get(recorded)
	if r == nil {
		return fmt.Errorf("memshadow: OnFlushRange(%#x): %w", recorded, ErrNoRecord)
	}
	if r.pending {
		need := offset + uint64(len(recordedBytes))
		if uint64(len(r.shadow)) < need {
			grown := make([]byte, need)
			copy(grown, r.shadow)
			r.shadow = grown
		}
		copy(r.shadow[offset:], recordedBytes)
		return nil
	}
	if r.win == nil {
		return fmt.Errorf("memshadow: OnFlushRange(%#x): %w", recorded, ErrNoActiveMapping)
	}
	rel := offset - r.win.offset
	copy(r.win.host[rel:], recordedBytes)
	return nil
}

// ShadowBytes returns the bytes staged for a still-pending record,
// for use once the allocation is materialized and the caller wants
// to replay the staged writes through a real mapping.
func (s *Shadow) ShadowBytes(recorded driverapi.Handle) []byte {
	r := s.get(recorded)
	if r == nil {
		return nil
	}
	return r.shadow
}

// OnFree releases recorded's record entirely. It does not itself
// call the driver; callers are expected to free the live allocation
// (if any) before or after calling OnFree.
func (s *Shadow) OnFree(recorded driverapi.Handle) {
	delete(s.records, recorded)
}

// Len reports the number of tracked records, for teardown
// diagnostics.
func (s *Shadow) Len() int {
	return len(s.records)
}
