// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"testing"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/internal/mockdrv"
	"github.com/gviegas/vkreplay/packet"
)

// TestCmdPipelineBarrierIndependentCounts exercises the resolved
// image-memory-barrier restore bug: a call recording more buffer
// barriers than image barriers (or vice versa) must remap exactly as
// many of each as were actually given, never borrowing one array's
// length for the other.
func TestCmdPipelineBarrierIndependentCounts(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindCommandBuffer, 1, 100)
	d.maps.Insert(driverapi.KindBuffer, 2, 200)
	d.maps.Insert(driverapi.KindBuffer, 3, 300)
	d.maps.Insert(driverapi.KindBuffer, 4, 400)
	d.maps.Insert(driverapi.KindImage, 5, 500)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCmdPipelineBarrier,
		Args: packet.CmdPipelineBarrierArgs{
			CommandBuffer: 1,
			BufferBarriers: []driverapi.BufferMemoryBarrier{
				{Buffer: 2}, {Buffer: 3}, {Buffer: 4},
			},
			ImageBarriers: []driverapi.ImageMemoryBarrier{
				{Image: 5},
			},
		},
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
	if len(tbl.LastBufferBarriers) != 3 {
		t.Fatalf("CmdPipelineBarrier saw %d buffer barriers, want 3", len(tbl.LastBufferBarriers))
	}
	if len(tbl.LastImageBarriers) != 1 {
		t.Fatalf("CmdPipelineBarrier saw %d image barriers, want 1 (independent of the buffer-barrier count)", len(tbl.LastImageBarriers))
	}
}

func TestCmdPipelineBarrierAbortsOnUnmappedImage(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindCommandBuffer, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCmdPipelineBarrier,
		Args: packet.CmdPipelineBarrierArgs{
			CommandBuffer: 1,
			ImageBarriers: []driverapi.ImageMemoryBarrier{
				{Image: 99},
			},
		},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}

func TestCmdWaitEventsRemapsEventsAndBarriers(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindCommandBuffer, 1, 100)
	d.maps.Insert(driverapi.KindEvent, 2, 200)
	d.maps.Insert(driverapi.KindBuffer, 3, 300)
	d.maps.Insert(driverapi.KindImage, 4, 400)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCmdWaitEvents,
		Args: packet.CmdWaitEventsArgs{
			CommandBuffer:  1,
			Events:         []driverapi.Handle{2},
			BufferBarriers: []driverapi.BufferMemoryBarrier{{Buffer: 3}},
			ImageBarriers:  []driverapi.ImageMemoryBarrier{{Image: 4}},
		},
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
	if len(tbl.LastBufferBarriers) != 1 || len(tbl.LastImageBarriers) != 1 {
		t.Fatalf("LastBufferBarriers=%d LastImageBarriers=%d, want 1 and 1",
			len(tbl.LastBufferBarriers), len(tbl.LastImageBarriers))
	}
}

func TestCmdWaitEventsAbortsOnUnmappedEvent(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindCommandBuffer, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCmdWaitEvents,
		Args: packet.CmdWaitEventsArgs{
			CommandBuffer: 1,
			Events:        []driverapi.Handle{99},
		},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}

func TestAllocateFreeCommandBuffers(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)
	d.maps.Insert(driverapi.KindCommandPool, 2, 200)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryAllocateCommandBuffers,
		Args: packet.AllocateCommandBuffersArgs{
			Device: 1,
			Info: driverapi.CommandBufferAllocateInfo{
				CommandPool: 2,
				Count:       2,
			},
			RecordedBuffers: []driverapi.Handle{10, 11},
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("AllocateCommandBuffers status = %s, want success", status)
	}
	if d.maps.Len(driverapi.KindCommandBuffer) != 2 {
		t.Fatalf("mapped %d command buffers, want 2", d.maps.Len(driverapi.KindCommandBuffer))
	}

	status = d.Dispatch(packet.Packet{
		Entry: packet.EntryFreeCommandBuffers,
		Args: packet.FreeCommandBuffersArgs{
			Device:  1,
			Pool:    2,
			Buffers: []driverapi.Handle{10, 11},
		},
	})
	if status != StatusSuccess {
		t.Fatalf("FreeCommandBuffers status = %s, want success", status)
	}
	if d.maps.Len(driverapi.KindCommandBuffer) != 0 {
		t.Fatalf("command buffers still mapped after Free: %d", d.maps.Len(driverapi.KindCommandBuffer))
	}
}

func TestCreateDestroyCommandPool(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateCommandPool,
		Args: packet.CreateCommandPoolArgs{
			Device:       1,
			RecordedPool: 2,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("CreateCommandPool status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindCommandPool, 2) == driverapi.NullHandle {
		t.Fatal("recorded pool 2 was not mapped")
	}

	status = d.Dispatch(packet.Packet{
		Entry: packet.EntryDestroyCommandPool,
		Args:  packet.DestroyCommandPoolArgs{Device: 1, Pool: 2},
	})
	if status != StatusSuccess {
		t.Fatalf("DestroyCommandPool status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindCommandPool, 2) != driverapi.NullHandle {
		t.Fatal("pool 2 still mapped after DestroyCommandPool")
	}
}

func TestBeginEndCommandBuffer(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindCommandBuffer, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryBeginCommandBuffer,
		Args:  packet.BeginCommandBufferArgs{CommandBuffer: 1},
	})
	if status != StatusSuccess {
		t.Fatalf("BeginCommandBuffer status = %s, want success", status)
	}

	status = d.Dispatch(packet.Packet{
		Entry: packet.EntryEndCommandBuffer,
		Args:  packet.EndCommandBufferArgs{CommandBuffer: 1},
	})
	if status != StatusSuccess {
		t.Fatalf("EndCommandBuffer status = %s, want success", status)
	}
}

func TestBeginCommandBufferRemapsInheritance(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindCommandBuffer, 1, 100)
	d.maps.Insert(driverapi.KindRenderPass, 2, 200)
	d.maps.Insert(driverapi.KindFramebuffer, 3, 300)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryBeginCommandBuffer,
		Args: packet.BeginCommandBufferArgs{
			CommandBuffer: 1,
			Inheritance: &driverapi.CommandBufferInheritanceInfo{
				RenderPass:  2,
				Framebuffer: 3,
			},
		},
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
}

func TestBeginCommandBufferAbortsOnUnmappedInheritedRenderPass(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindCommandBuffer, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryBeginCommandBuffer,
		Args: packet.BeginCommandBufferArgs{
			CommandBuffer: 1,
			Inheritance:   &driverapi.CommandBufferInheritanceInfo{RenderPass: 99},
		},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}

func TestCmdBindDescriptorSetsRemapsSets(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindCommandBuffer, 1, 100)
	d.maps.Insert(driverapi.KindPipelineLayout, 2, 200)
	d.maps.Insert(driverapi.KindDescriptorSet, 3, 300)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCmdBindDescriptorSets,
		Args: packet.CmdBindDescriptorSetsArgs{
			CommandBuffer: 1,
			Layout:        2,
			Sets:          []driverapi.Handle{3},
		},
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
}

func TestCmdBindDescriptorSetsAbortsOnUnmappedSet(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindCommandBuffer, 1, 100)
	d.maps.Insert(driverapi.KindPipelineLayout, 2, 200)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCmdBindDescriptorSets,
		Args: packet.CmdBindDescriptorSetsArgs{
			CommandBuffer: 1,
			Layout:        2,
			Sets:          []driverapi.Handle{99},
		},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}

func TestCmdBindVertexBuffersRemapsBuffers(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindCommandBuffer, 1, 100)
	d.maps.Insert(driverapi.KindBuffer, 2, 200)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCmdBindVertexBuffers,
		Args: packet.CmdBindVertexBuffersArgs{
			CommandBuffer: 1,
			Buffers:       []driverapi.Handle{2},
			Offsets:       []uint64{0},
		},
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
}

func TestCmdBeginRenderPassRemapsPassAndFramebuffer(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindCommandBuffer, 1, 100)
	d.maps.Insert(driverapi.KindRenderPass, 2, 200)
	d.maps.Insert(driverapi.KindFramebuffer, 3, 300)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCmdBeginRenderPass,
		Args: packet.CmdBeginRenderPassArgs{
			CommandBuffer: 1,
			Info: driverapi.RenderPassBeginInfo{
				RenderPass:  2,
				Framebuffer: 3,
			},
		},
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
}

func TestCmdBeginRenderPassAbortsOnUnmappedFramebuffer(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindCommandBuffer, 1, 100)
	d.maps.Insert(driverapi.KindRenderPass, 2, 200)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCmdBeginRenderPass,
		Args: packet.CmdBeginRenderPassArgs{
			CommandBuffer: 1,
			Info: driverapi.RenderPassBeginInfo{
				RenderPass:  2,
				Framebuffer: 99,
			},
		},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}
