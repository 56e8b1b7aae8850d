// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"testing"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/internal/mockdrv"
	"github.com/gviegas/vkreplay/packet"
)

func TestCloseUnloadsLibraryAfterDisplay(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})

	if err := d.Close(); err != nil {
		t.Fatalf("Close() = %v, want nil", err)
	}
	want := []string{"SetValidationCallback", "Close"}
	if len(tbl.Calls) != len(want) {
		t.Fatalf("Calls = %v, want %v", tbl.Calls, want)
	}
	for i, c := range want {
		if tbl.Calls[i] != c {
			t.Fatalf("Calls = %v, want %v", tbl.Calls, want)
		}
	}
}

func TestCloseWithLiveObjectsStillUnloads(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindFence, 1, 100)

	if err := d.Close(); err != nil {
		t.Fatalf("Close() = %v, want nil (a non-empty handle map only warns)", err)
	}
}

func TestDispatchUnknownEntryReturnsError(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})

	status := d.Dispatch(packet.Packet{Entry: packet.EntryUnknown})
	if status != StatusError {
		t.Fatalf("status = %s, want error", status)
	}
}

func TestFrameStartsAtZero(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	if d.Frame() != 0 {
		t.Fatalf("Frame() = %d, want 0", d.Frame())
	}
}
