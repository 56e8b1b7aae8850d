// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"testing"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/internal/mockdrv"
	"github.com/gviegas/vkreplay/packet"
)

func TestCreateSurfaceFailsWithNoDisplayAdapter(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindInstance, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateXcbSurface,
		Args:  packet.CreateSurfaceArgs{Instance: 1, RecordedSurface: 2},
	})
	if status != StatusError {
		t.Fatalf("status = %s, want error (no Display Adapter is installed in this test)", status)
	}
	for _, c := range tbl.Calls {
		if c == "CreateSurface" {
			t.Fatal("CreateSurface must not reach the driver with no display adapter")
		}
	}
}

func TestGetPhysicalDeviceSurfaceSupport(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindPhysicalDevice, 1, 100)
	d.maps.Insert(driverapi.KindSurface, 2, 200)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryGetPhysicalDeviceSurfaceSupport,
		Args: packet.GetPhysicalDeviceSurfaceSupportArgs{
			PhysicalDevice:   1,
			Surface:          2,
			QueueFamilyIndex: 0,
		},
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
}

func TestGetPhysicalDeviceSurfaceSupportDetectsReturnMismatch(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindPhysicalDevice, 1, 100)
	d.maps.Insert(driverapi.KindSurface, 2, 200)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryGetPhysicalDeviceSurfaceSupport,
		Args: packet.GetPhysicalDeviceSurfaceSupportArgs{
			PhysicalDevice:   1,
			Surface:          2,
			QueueFamilyIndex: 0,
		},
		RecordedResult: driverapi.ResultErrorSurfaceLost,
	})
	if status != StatusBadReturn {
		t.Fatalf("status = %s, want bad-return (driver succeeded, trace recorded a failure)", status)
	}
}

func TestGetPhysicalDeviceSurfaceCapabilitiesDetectsReturnMismatch(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindPhysicalDevice, 1, 100)
	d.maps.Insert(driverapi.KindSurface, 2, 200)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryGetPhysicalDeviceSurfaceCapabilities,
		Args: packet.GetPhysicalDeviceSurfaceCapabilitiesArgs{
			PhysicalDevice: 1,
			Surface:        2,
		},
		RecordedResult: driverapi.ResultErrorSurfaceLost,
	})
	if status != StatusBadReturn {
		t.Fatalf("status = %s, want bad-return (driver succeeded, trace recorded a failure)", status)
	}
}

func TestGetPhysicalDeviceSurfaceCapabilitiesAbortsOnUnmappedSurface(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindPhysicalDevice, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryGetPhysicalDeviceSurfaceCapabilities,
		Args: packet.GetPhysicalDeviceSurfaceCapabilitiesArgs{
			PhysicalDevice: 1,
			Surface:        99,
		},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}

func TestDestroySurfaceAbortsOnUnmappedInstance(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryDestroySurface,
		Args:  packet.DestroySurfaceArgs{Instance: 99, Surface: 1},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}
