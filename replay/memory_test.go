// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"testing"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/internal/mockdrv"
	"github.com/gviegas/vkreplay/packet"
)

func TestAllocateMapUnmapWriteThrough(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryAllocateMemory,
		Args: packet.AllocateMemoryArgs{
			Device:         1,
			Info:           driverapi.MemoryAllocateInfo{AllocationSize: 64},
			RecordedMemory: 5,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("AllocateMemory status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindDeviceMemory, 5) == driverapi.NullHandle {
		t.Fatal("recorded memory 5 was not mapped")
	}

	status = d.Dispatch(packet.Packet{
		Entry:          packet.EntryMapMemory,
		Args:           packet.MapMemoryArgs{Device: 1, Memory: 5, Offset: 0, Size: 64},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("MapMemory status = %s, want success", status)
	}

	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i)
	}
	status = d.Dispatch(packet.Packet{
		Entry: packet.EntryUnmapMemory,
		Args:  packet.UnmapMemoryArgs{Device: 1, Memory: 5, Data: data},
	})
	if status != StatusSuccess {
		t.Fatalf("UnmapMemory status = %s, want success", status)
	}

	for _, c := range []string{"MapMemory", "UnmapMemory"} {
		found := false
		for _, call := range tbl.Calls {
			if call == c {
				found = true
			}
		}
		if !found {
			t.Fatalf("driver was never called for %s", c)
		}
	}
}

func TestMapMemoryAbortsOnUnmappedDevice(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	d.Dispatch(packet.Packet{
		Entry: packet.EntryAllocateMemory,
		Args: packet.AllocateMemoryArgs{
			Device:         1,
			Info:           driverapi.MemoryAllocateInfo{AllocationSize: 64},
			RecordedMemory: 5,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryMapMemory,
		Args:  packet.MapMemoryArgs{Device: 99, Memory: 5, Offset: 0, Size: 64},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error (device 99 has no live mapping)", status)
	}
}

func TestFreeMemory(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	d.Dispatch(packet.Packet{
		Entry: packet.EntryAllocateMemory,
		Args: packet.AllocateMemoryArgs{
			Device:         1,
			Info:           driverapi.MemoryAllocateInfo{AllocationSize: 64},
			RecordedMemory: 5,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryFreeMemory,
		Args:  packet.FreeMemoryArgs{Device: 1, Memory: 5},
	})
	if status != StatusSuccess {
		t.Fatalf("FreeMemory status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindDeviceMemory, 5) != driverapi.NullHandle {
		t.Fatal("memory 5 still mapped after FreeMemory")
	}
}

func TestFlushMappedMemoryRanges(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	d.Dispatch(packet.Packet{
		Entry: packet.EntryAllocateMemory,
		Args: packet.AllocateMemoryArgs{
			Device:         1,
			Info:           driverapi.MemoryAllocateInfo{AllocationSize: 64},
			RecordedMemory: 5,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	d.Dispatch(packet.Packet{
		Entry:          packet.EntryMapMemory,
		Args:           packet.MapMemoryArgs{Device: 1, Memory: 5, Offset: 0, Size: 64},
		RecordedResult: driverapi.ResultSuccess,
	})

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryFlushMappedMemoryRanges,
		Args: packet.FlushMappedMemoryRangesArgs{
			Device: 1,
			Ranges: []driverapi.MappedMemoryRange{{Memory: 5, Offset: 0, Size: 64}},
			Data:   [][]byte{make([]byte, 64)},
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("FlushMappedMemoryRanges status = %s, want success", status)
	}
	found := false
	for _, c := range tbl.Calls {
		if c == "FlushMappedMemoryRanges" {
			found = true
		}
	}
	if !found {
		t.Fatal("driver was never called for FlushMappedMemoryRanges")
	}
}

func TestFlushMappedMemoryRangesAbortsOnUnmappedDevice(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	d.Dispatch(packet.Packet{
		Entry: packet.EntryAllocateMemory,
		Args: packet.AllocateMemoryArgs{
			Device:         1,
			Info:           driverapi.MemoryAllocateInfo{AllocationSize: 64},
			RecordedMemory: 5,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	d.Dispatch(packet.Packet{
		Entry:          packet.EntryMapMemory,
		Args:           packet.MapMemoryArgs{Device: 1, Memory: 5, Offset: 0, Size: 64},
		RecordedResult: driverapi.ResultSuccess,
	})

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryFlushMappedMemoryRanges,
		Args: packet.FlushMappedMemoryRangesArgs{
			Device: 99,
			Ranges: []driverapi.MappedMemoryRange{{Memory: 5, Offset: 0, Size: 64}},
			Data:   [][]byte{make([]byte, 64)},
		},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}

func TestAllocateMemoryDeferredUnderAdjustForGPU(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{AdjustForGPU: true})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryAllocateMemory,
		Args: packet.AllocateMemoryArgs{
			Device:         1,
			Info:           driverapi.MemoryAllocateInfo{AllocationSize: 64},
			RecordedMemory: 5,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
	for _, c := range tbl.Calls {
		if c == "AllocateMemory" {
			t.Fatal("AllocateMemory must not reach the driver in adjust-for-GPU mode")
		}
	}
	// A deferred allocation is deliberately kept out of the Handle
	// Map too, since there is no live handle yet to remap to.
	if d.maps.Lookup(driverapi.KindDeviceMemory, 5) != driverapi.NullHandle {
		t.Fatal("deferred allocation must not be inserted into the handle map")
	}
}
