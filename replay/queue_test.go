// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"testing"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/internal/mockdrv"
	"github.com/gviegas/vkreplay/packet"
)

func TestQueueSubmitRemapsEveryHandle(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindQueue, 1, 100)
	d.maps.Insert(driverapi.KindFence, 2, 200)
	d.maps.Insert(driverapi.KindSemaphore, 3, 300)
	d.maps.Insert(driverapi.KindCommandBuffer, 4, 400)
	d.maps.Insert(driverapi.KindSemaphore, 5, 500)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryQueueSubmit,
		Args: packet.QueueSubmitArgs{
			Queue: 1,
			Fence: 2,
			Submits: []driverapi.SubmitInfo{
				{
					WaitSemaphores:   []driverapi.Handle{3},
					CommandBuffers:   []driverapi.Handle{4},
					SignalSemaphores: []driverapi.Handle{5},
				},
			},
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
}

func TestQueueSubmitAbortsOnUnmappedCommandBuffer(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindQueue, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryQueueSubmit,
		Args: packet.QueueSubmitArgs{
			Queue: 1,
			Submits: []driverapi.SubmitInfo{
				{CommandBuffers: []driverapi.Handle{99}},
			},
		},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}
