// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package memshadow

import (
	"bytes"
	"testing"

	"github.com/gviegas/vkreplay/driverapi"
)

func ramp(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestWriteThroughImmediate(t *testing.T) {
	s := New(false)
	const rec driverapi.Handle = 1
	s.OnAllocate(rec, 4096, 0xBEEF)

	backing := make([]byte, 4096)
	if err := s.OnMap(rec, 0, 4096, backing); err != nil {
		t.Fatal(err)
	}
	data := ramp(4096)
	if err := s.OnUnmap(rec, data); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(backing, data) {
		t.Fatal("backing memory does not equal the ramp bytes after unmap")
	}
}

func TestFlushRangesWriteThrough(t *testing.T) {
	s := New(false)
	const rec driverapi.Handle = 1
	s.OnAllocate(rec, 256, 0xBEEF)
	backing := make([]byte, 256)
	if err := s.OnMap(rec, 0, 256, backing); err != nil {
		t.Fatal(err)
	}
	payload := []byte{1, 2, 3, 4}
	if err := s.OnFlushRange(rec, 16, payload); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(backing[16:20], payload) {
		t.Fatal("flush range did not write through at the recorded offset")
	}
}

func TestPendingAllocationStaging(t *testing.T) {
	s := New(true)
	const rec driverapi.Handle = 1
	s.OnAllocate(rec, 64, 0) // live ignored while adjust-for-GPU
	if !s.IsPending(rec) {
		t.Fatal("allocation should be pending in adjust-for-GPU mode")
	}
	if err := s.OnMap(rec, 0, 64, nil); err != nil {
		t.Fatal(err)
	}
	data := ramp(64)
	if err := s.OnUnmap(rec, data); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(s.ShadowBytes(rec), data) {
		t.Fatal("shadow buffer does not hold the staged bytes")
	}

	if err := s.MaterializePending(rec, 0xCAFE); err != nil {
		t.Fatal(err)
	}
	if s.IsPending(rec) {
		t.Fatal("record should no longer be pending after MaterializePending")
	}
	if got := s.LiveHandle(rec); got != 0xCAFE {
		t.Fatalf("LiveHandle = %#x, want 0xCAFE", got)
	}
}

func TestOnFreeRemovesRecord(t *testing.T) {
	s := New(false)
	const rec driverapi.Handle = 1
	s.OnAllocate(rec, 64, 1)
	s.OnFree(rec)
	if err := s.OnMap(rec, 0, 64, nil); err == nil {
		t.Fatal("expected ErrNoRecord after OnFree")
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestUnmapWithoutMapFails(t *testing.T) {
	s := New(false)
	const rec driverapi.Handle = 1
	s.OnAllocate(rec, 64, 1)
	if err := s.OnUnmap(rec, ramp(64)); err == nil {
		t.Fatal("expected ErrNoActiveMapping")
	}
}
