// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"testing"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/internal/mockdrv"
	"github.com/gviegas/vkreplay/packet"
)

func TestCreateDestroyRenderPass(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateRenderPass,
		Args: packet.CreateRenderPassArgs{
			Device: 1,
			Info: driverapi.RenderPassCreateInfo{
				Attachments: []driverapi.AttachmentDescription{{Format: 1}},
			},
			RecordedRenderPass: 2,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("CreateRenderPass status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindRenderPass, 2) == driverapi.NullHandle {
		t.Fatal("recorded render pass 2 was not mapped")
	}

	status = d.Dispatch(packet.Packet{
		Entry: packet.EntryDestroyRenderPass,
		Args:  packet.DestroyRenderPassArgs{Device: 1, RenderPass: 2},
	})
	if status != StatusSuccess {
		t.Fatalf("DestroyRenderPass status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindRenderPass, 2) != driverapi.NullHandle {
		t.Fatal("render pass 2 still mapped after DestroyRenderPass")
	}
}

func TestDestroyFramebuffer(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)
	d.maps.Insert(driverapi.KindFramebuffer, 2, 200)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryDestroyFramebuffer,
		Args:  packet.DestroyFramebufferArgs{Device: 1, Framebuffer: 2},
	})
	if status != StatusSuccess {
		t.Fatalf("DestroyFramebuffer status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindFramebuffer, 2) != driverapi.NullHandle {
		t.Fatal("framebuffer 2 still mapped after DestroyFramebuffer")
	}
}

func TestCreateFramebufferRemapsAttachments(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)
	d.maps.Insert(driverapi.KindRenderPass, 2, 200)
	d.maps.Insert(driverapi.KindImageView, 3, 300)
	d.maps.Insert(driverapi.KindImageView, 4, 400)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateFramebuffer,
		Args: packet.CreateFramebufferArgs{
			Device: 1,
			Info: driverapi.FramebufferCreateInfo{
				RenderPass:  2,
				Attachments: []driverapi.Handle{3, 4},
				Width:       640,
				Height:      480,
			},
			RecordedFramebuffer: 5,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindFramebuffer, 5) == driverapi.NullHandle {
		t.Fatal("recorded framebuffer 5 was not mapped")
	}
}

func TestCreateFramebufferAbortsOnUnmappedAttachment(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)
	d.maps.Insert(driverapi.KindRenderPass, 2, 200)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateFramebuffer,
		Args: packet.CreateFramebufferArgs{
			Device: 1,
			Info: driverapi.FramebufferCreateInfo{
				RenderPass:  2,
				Attachments: []driverapi.Handle{999},
			},
		},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}
