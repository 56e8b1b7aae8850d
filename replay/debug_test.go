// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"testing"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/internal/mockdrv"
	"github.com/gviegas/vkreplay/packet"
)

func TestCreateDebugReportCallbackInsertsMapping(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindInstance, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateDebugReportCallback,
		Args: packet.CreateDebugReportCallbackArgs{
			Instance:         1,
			RecordedCallback: 7,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindDebugCallback, 7) == driverapi.NullHandle {
		t.Fatal("recorded callback 7 was not mapped")
	}
}

func TestCreateDebugReportCallbackDiscardedNeverMaps(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{DiscardDebugCallbacks: true})
	d.maps.Insert(driverapi.KindInstance, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateDebugReportCallback,
		Args: packet.CreateDebugReportCallbackArgs{
			Instance:         1,
			RecordedCallback: 7,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindDebugCallback, 7) != driverapi.NullHandle {
		t.Fatal("discarded callback must not be inserted into the handle map")
	}
	for _, c := range tbl.Calls {
		if c == "CreateDebugReportCallback" {
			t.Fatal("discarded callback must never reach the driver")
		}
	}
}

func TestDestroyDebugReportCallbackOnDiscardedHandleIsNoOp(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{DiscardDebugCallbacks: true})
	d.maps.Insert(driverapi.KindInstance, 1, 100)

	d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateDebugReportCallback,
		Args: packet.CreateDebugReportCallbackArgs{
			Instance:         1,
			RecordedCallback: 7,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryDestroyDebugReportCallback,
		Args:  packet.DestroyDebugReportCallbackArgs{Instance: 1, Callback: 7},
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success (no-op on a handle never inserted)", status)
	}
	for _, c := range tbl.Calls {
		if c == "DestroyDebugReportCallback" {
			t.Fatal("destroy on a discarded callback must not reach the driver")
		}
	}
}
