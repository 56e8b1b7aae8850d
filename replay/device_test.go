// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"testing"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/internal/mockdrv"
	"github.com/gviegas/vkreplay/packet"
)

func TestCreateDeviceSkipsScreenshotLayerWhenUnavailable(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{ScreenshotList: "0,10,20"})
	d.maps.Insert(driverapi.KindPhysicalDevice, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateDevice,
		Args: packet.CreateDeviceArgs{
			PhysicalDevice: 1,
			RecordedDevice: 2,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
	// The fake's layer lister returns nothing, so the screenshot layer
	// is never reported available and must not be injected.
	for _, l := range tbl.LastDeviceInfo.EnabledLayerNames {
		if l == ScreenshotLayerName {
			t.Fatal("screenshot layer was injected despite not being reported available")
		}
	}
}

func TestGetDeviceQueueMapsRecordedQueue(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryGetDeviceQueue,
		Args: packet.GetDeviceQueueArgs{
			Device:           1,
			QueueFamilyIndex: 0,
			QueueIndex:       0,
			RecordedQueue:    7,
		},
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindQueue, 7) == driverapi.NullHandle {
		t.Fatal("recorded queue 7 was not mapped")
	}
}

func TestCreateDestroyDeviceClearsPrimaryDevice(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindPhysicalDevice, 1, 100)

	d.Dispatch(packet.Packet{
		Entry:          packet.EntryCreateDevice,
		Args:           packet.CreateDeviceArgs{PhysicalDevice: 1, RecordedDevice: 2},
		RecordedResult: driverapi.ResultSuccess,
	})
	if d.device == driverapi.NullHandle {
		t.Fatal("device was not recorded as the primary device after creation")
	}
	d.Dispatch(packet.Packet{
		Entry: packet.EntryDestroyDevice,
		Args:  packet.DestroyDeviceArgs{Device: 2},
	})
	if d.device != driverapi.NullHandle {
		t.Fatal("primary device was not cleared after DestroyDevice")
	}
}
