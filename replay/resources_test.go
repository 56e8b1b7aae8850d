// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"testing"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/internal/mockdrv"
	"github.com/gviegas/vkreplay/packet"
)

func TestCreateDestroyBuffer(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateBuffer,
		Args: packet.CreateBufferArgs{
			Device:         1,
			Info:           driverapi.BufferCreateInfo{Size: 1024},
			RecordedBuffer: 5,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("CreateBuffer status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindBuffer, 5) == driverapi.NullHandle {
		t.Fatal("recorded buffer 5 was not mapped")
	}

	status = d.Dispatch(packet.Packet{
		Entry: packet.EntryDestroyBuffer,
		Args:  packet.DestroyBufferArgs{Device: 1, Buffer: 5},
	})
	if status != StatusSuccess {
		t.Fatalf("DestroyBuffer status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindBuffer, 5) != driverapi.NullHandle {
		t.Fatal("buffer 5 still mapped after DestroyBuffer")
	}
}

func TestCreateImageViewRemapsEmbeddedImage(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)
	d.maps.Insert(driverapi.KindImage, 2, 200)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateImageView,
		Args: packet.CreateImageViewArgs{
			Device:       1,
			Info:         driverapi.ImageViewCreateInfo{Image: 2},
			RecordedView: 3,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("CreateImageView status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindImageView, 3) == driverapi.NullHandle {
		t.Fatal("recorded view 3 was not mapped")
	}
}

func TestDestroyImageView(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)
	d.maps.Insert(driverapi.KindImageView, 2, 200)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryDestroyImageView,
		Args:  packet.DestroyImageViewArgs{Device: 1, View: 2},
	})
	if status != StatusSuccess {
		t.Fatalf("DestroyImageView status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindImageView, 2) != driverapi.NullHandle {
		t.Fatal("view 2 still mapped after DestroyImageView")
	}
}

func TestCreateDestroyImage(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateImage,
		Args: packet.CreateImageArgs{
			Device:        1,
			RecordedImage: 2,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("CreateImage status = %s, want success", status)
	}

	status = d.Dispatch(packet.Packet{
		Entry: packet.EntryDestroyImage,
		Args:  packet.DestroyImageArgs{Device: 1, Image: 2},
	})
	if status != StatusSuccess {
		t.Fatalf("DestroyImage status = %s, want success", status)
	}
}

func TestCreateDestroyBufferView(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)
	d.maps.Insert(driverapi.KindBuffer, 2, 200)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateBufferView,
		Args: packet.CreateBufferViewArgs{
			Device:       1,
			Info:         driverapi.BufferViewCreateInfo{Buffer: 2},
			RecordedView: 3,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("CreateBufferView status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindBufferView, 3) == driverapi.NullHandle {
		t.Fatal("recorded view 3 was not mapped")
	}

	status = d.Dispatch(packet.Packet{
		Entry: packet.EntryDestroyBufferView,
		Args:  packet.DestroyBufferViewArgs{Device: 1, View: 3},
	})
	if status != StatusSuccess {
		t.Fatalf("DestroyBufferView status = %s, want success", status)
	}
}

func TestCreateBufferViewAbortsOnUnmappedBuffer(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateBufferView,
		Args: packet.CreateBufferViewArgs{
			Device: 1,
			Info:   driverapi.BufferViewCreateInfo{Buffer: 99},
		},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}

func TestCreateDestroySampler(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateSampler,
		Args: packet.CreateSamplerArgs{
			Device:          1,
			RecordedSampler: 2,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("CreateSampler status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindSampler, 2) == driverapi.NullHandle {
		t.Fatal("recorded sampler 2 was not mapped")
	}

	status = d.Dispatch(packet.Packet{
		Entry: packet.EntryDestroySampler,
		Args:  packet.DestroySamplerArgs{Device: 1, Sampler: 2},
	})
	if status != StatusSuccess {
		t.Fatalf("DestroySampler status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindSampler, 2) != driverapi.NullHandle {
		t.Fatal("sampler 2 still mapped after DestroySampler")
	}
}

func TestCreateImageViewAbortsOnUnmappedImage(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateImageView,
		Args: packet.CreateImageViewArgs{
			Device: 1,
			Info:   driverapi.ImageViewCreateInfo{Image: 999},
		},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}
