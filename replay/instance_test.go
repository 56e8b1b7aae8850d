// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"testing"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/internal/mockdrv"
	"github.com/gviegas/vkreplay/packet"
)

func newTestDriver(t *mockdrv.Table, settings Settings) *Driver {
	return NewDriver(t, nil, settings)
}

func TestCreateInstanceInsertsMapping(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateInstance,
		Args: packet.CreateInstanceArgs{
			Info:             driverapi.InstanceCreateInfo{},
			RecordedInstance: 1,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
	if live := d.maps.Lookup(driverapi.KindInstance, 1); live == driverapi.NullHandle {
		t.Fatal("recorded instance 1 was not inserted into the handle map")
	}
}

func TestCreateInstanceFiltersForeignSurfaceExtension(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})

	d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateInstance,
		Args: packet.CreateInstanceArgs{
			Info: driverapi.InstanceCreateInfo{
				EnabledExtensionNames: []string{"VK_KHR_win32_surface", "VK_KHR_surface"},
			},
			RecordedInstance: 1,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	// No Display Adapter is installed in this test (disp is nil), so
	// hostSurfaceExtension is "" and the foreign win32 extension must
	// be dropped outright rather than kept or substituted.
	got := tbl.LastInstanceInfo.EnabledExtensionNames
	for _, ext := range got {
		if ext == "VK_KHR_win32_surface" {
			t.Fatalf("EnabledExtensionNames = %v, foreign surface extension was not filtered out", got)
		}
	}
	found := false
	for _, ext := range got {
		if ext == "VK_KHR_surface" {
			found = true
		}
	}
	if !found {
		t.Fatalf("EnabledExtensionNames = %v, expected VK_KHR_surface to survive filtering", got)
	}
}

func TestDestroyInstanceAbortsOnUnmappedHandle(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryDestroyInstance,
		Args:  packet.DestroyInstanceArgs{Instance: 99},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}

func TestEnumeratePhysicalDevicesGPUIndexSwapsPrimarySlot(t *testing.T) {
	tbl := &mockdrv.Table{Devices: []driverapi.Handle{10, 20, 30}}
	d := newTestDriver(tbl, Settings{GPUIndex: 2})
	d.maps.Insert(driverapi.KindInstance, 1, 1000)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryEnumeratePhysicalDevices,
		Args: packet.EnumeratePhysicalDevicesArgs{
			Instance:        1,
			RecordedDevices: []driverapi.Handle{100, 200, 300},
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
	// After the swap, live[0] is what the fake originally reported as
	// Devices[2] (30), so recorded slot 100 must now map to it.
	if got := d.maps.Lookup(driverapi.KindPhysicalDevice, 100); got != 30 {
		t.Fatalf("recorded device 100 maps to %#x, want the swapped primary slot (30)", got)
	}
	if got := d.maps.Lookup(driverapi.KindPhysicalDevice, 300); got != 10 {
		t.Fatalf("recorded device 300 maps to %#x, want the displaced slot (10)", got)
	}
}

func TestEnumeratePhysicalDevicesCountMismatchTruncates(t *testing.T) {
	tbl := &mockdrv.Table{Devices: []driverapi.Handle{10, 20}}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindInstance, 1, 1000)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryEnumeratePhysicalDevices,
		Args: packet.EnumeratePhysicalDevicesArgs{
			Instance:        1,
			RecordedDevices: []driverapi.Handle{100, 200, 300},
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success (mismatch is a warning, not an abort)", status)
	}
	// Recorded slot 300 has no live counterpart; the fake reports no
	// queue families, so the selection fallback finds no qualifying
	// device and leaves it unmapped.
	if d.maps.Len(driverapi.KindPhysicalDevice) != 2 {
		t.Fatalf("mapped %d devices, want 2 (truncated to live count)", d.maps.Len(driverapi.KindPhysicalDevice))
	}
}

func TestEnumeratePhysicalDevicesFallsBackToScoringForOutOfRangeIndex(t *testing.T) {
	tbl := &mockdrv.Table{
		Devices: []driverapi.Handle{10, 20},
		DeviceProperties: map[driverapi.Handle]driverapi.PhysicalDeviceProperties{
			10: {DeviceType: driverapi.PhysicalDeviceTypeIntegratedGPU},
			20: {DeviceType: driverapi.PhysicalDeviceTypeDiscreteGPU},
		},
		QueueFamilies: map[driverapi.Handle][]driverapi.QueueFamilyProperties{
			10: {{QueueFlags: driverapi.QueueGraphics | driverapi.QueueCompute}},
			20: {{QueueFlags: driverapi.QueueGraphics | driverapi.QueueCompute}},
		},
	}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindInstance, 1, 1000)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryEnumeratePhysicalDevices,
		Args: packet.EnumeratePhysicalDevicesArgs{
			Instance:        1,
			RecordedDevices: []driverapi.Handle{100, 200, 300},
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
	// Recorded slot 300 has no live counterpart (only 2 live devices
	// for 3 recorded), so it must fall back to the scoring heuristic,
	// which prefers the discrete GPU (20) over the integrated one (10).
	if got := d.maps.Lookup(driverapi.KindPhysicalDevice, 300); got != 20 {
		t.Fatalf("recorded device 300 maps to %#x, want the discrete GPU fallback (20)", got)
	}
}

func TestEnumeratePhysicalDevicesFallbackSkipsDeviceWithoutGraphicsComputeFamily(t *testing.T) {
	tbl := &mockdrv.Table{
		Devices: []driverapi.Handle{10},
		QueueFamilies: map[driverapi.Handle][]driverapi.QueueFamilyProperties{
			10: {{QueueFlags: driverapi.QueueTransfer}},
		},
	}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindInstance, 1, 1000)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryEnumeratePhysicalDevices,
		Args: packet.EnumeratePhysicalDevicesArgs{
			Instance:        1,
			RecordedDevices: []driverapi.Handle{100, 200},
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
	if got := d.maps.Lookup(driverapi.KindPhysicalDevice, 200); got != driverapi.NullHandle {
		t.Fatalf("recorded device 200 maps to %#x, want unmapped (no qualifying device)", got)
	}
}
