// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"testing"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/internal/mockdrv"
	"github.com/gviegas/vkreplay/packet"
)

func TestWarningMessageDoesNotFailTheCall(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	tbl.Deliver(driverapi.ValidationMessage{Severity: driverapi.SeverityWarning, Message: "minor"})
	status := d.Dispatch(packet.Packet{
		Entry:          packet.EntryCreateFence,
		Args:           packet.CreateFenceArgs{Device: 1, RecordedFence: 5},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success (only error-severity messages fail a call)", status)
	}
}

func TestErrorMessagePromotesToValidationError(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	tbl.Deliver(driverapi.ValidationMessage{Severity: driverapi.SeverityError, Message: "bad"})
	status := d.Dispatch(packet.Packet{
		Entry:          packet.EntryCreateFence,
		Args:           packet.CreateFenceArgs{Device: 1, RecordedFence: 5},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}

func TestValidationQueueDrainsBetweenCalls(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	tbl.Deliver(driverapi.ValidationMessage{Severity: driverapi.SeverityError, Message: "bad"})
	d.Dispatch(packet.Packet{
		Entry:          packet.EntryCreateFence,
		Args:           packet.CreateFenceArgs{Device: 1, RecordedFence: 5},
		RecordedResult: driverapi.ResultSuccess,
	})
	// The queue was drained by the previous call; a second call with
	// no new message must not inherit the stale error.
	status := d.Dispatch(packet.Packet{
		Entry:          packet.EntryCreateFence,
		Args:           packet.CreateFenceArgs{Device: 1, RecordedFence: 6},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success (a drained message must not reappear on a later call)", status)
	}
}
