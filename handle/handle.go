// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package handle implements the bidirectional mapping between
// recorded and live driver handles that every replay entry handler
// consults before forwarding a call to the driver.
package handle

import (
	"fmt"

	"github.com/gviegas/vkreplay/driverapi"
)

// Map holds one table per object kind. The zero value is ready to
// use.
type Map struct {
	tables [driverapi.KindCount]map[driverapi.Handle]driverapi.Handle
}

// NewMap creates a Map with every kind-specific table allocated.
func NewMap() *Map {
	m := &Map{}
	for i := range m.tables {
		m.tables[i] = make(map[driverapi.Handle]driverapi.Handle)
	}
	return m
}

// table returns the table for k, allocating it lazily so a Map
// obtained as a zero value still works.
func (m *Map) table(k driverapi.Kind) map[driverapi.Handle]driverapi.Handle {
	t := m.tables[k]
	if t == nil {
		t = make(map[driverapi.Handle]driverapi.Handle)
		m.tables[k] = t
	}
	return t
}

// Insert records that recorded maps to live under kind k.
//
// Both handles must be non-null and recorded must not already be
// present; Insert panics otherwise, since either condition indicates
// a bug in the calling handler or a malformed trace rather than a
// recoverable runtime condition.
func (m *Map) Insert(k driverapi.Kind, recorded, live driverapi.Handle) {
	if recorded == driverapi.NullHandle || live == driverapi.NullHandle {
		panic(fmt.Sprintf("handle: Insert(%s): null handle (recorded=%#x live=%#x)", k, recorded, live))
	}
	t := m.table(k)
	if _, ok := t[recorded]; ok {
		panic(fmt.Sprintf("handle: Insert(%s): recorded handle %#x already mapped", k, recorded))
	}
	t[recorded] = live
}

// Lookup returns the live handle mapped from recorded under kind k.
// A null recorded handle always yields NullHandle. An unmapped
// non-null recorded handle also yields NullHandle; the caller must
// treat that as an invalid-remap error.
func (m *Map) Lookup(k driverapi.Kind, recorded driverapi.Handle) driverapi.Handle {
	if recorded == driverapi.NullHandle {
		return driverapi.NullHandle
	}
	return m.table(k)[recorded]
}

// Remove deletes the mapping for recorded under kind k. It is a
// no-op if recorded is not present.
func (m *Map) Remove(k driverapi.Kind, recorded driverapi.Handle) {
	delete(m.table(k), recorded)
}

// Len returns the number of live mappings under kind k.
func (m *Map) Len(k driverapi.Kind) int {
	return len(m.table(k))
}

// Empty reports whether every kind-specific table is empty. Replay
// teardown uses this to decide whether the driver library can be
// safely unloaded.
func (m *Map) Empty() bool {
	for k := range m.tables {
		if len(m.tables[k]) != 0 {
			return false
		}
	}
	return true
}

// NonEmptyKinds returns the kinds that still hold mappings, along
// with their counts, for diagnostic logging at teardown.
func (m *Map) NonEmptyKinds() map[driverapi.Kind]int {
	var out map[driverapi.Kind]int
	for k := range m.tables {
		if n := len(m.tables[k]); n != 0 {
			if out == nil {
				out = make(map[driverapi.Kind]int)
			}
			out[driverapi.Kind(k)] = n
		}
	}
	return out
}
