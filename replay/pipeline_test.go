// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"testing"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/internal/mockdrv"
	"github.com/gviegas/vkreplay/packet"
)

func TestCreateGraphicsPipelinesRemapsStageAndBasePipeline(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)
	d.maps.Insert(driverapi.KindShaderModule, 2, 200)
	d.maps.Insert(driverapi.KindPipelineLayout, 3, 300)
	d.maps.Insert(driverapi.KindRenderPass, 4, 400)
	d.maps.Insert(driverapi.KindPipeline, 5, 500)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateGraphicsPipelines,
		Args: packet.CreateGraphicsPipelinesArgs{
			Device: 1,
			Infos: []driverapi.GraphicsPipelineCreateInfo{
				{
					Stages:             []driverapi.ShaderStage{{Module: 2}},
					Layout:             3,
					RenderPass:         4,
					BasePipelineHandle: 5,
				},
			},
			RecordedPipelines: []driverapi.Handle{6},
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindPipeline, 6) == driverapi.NullHandle {
		t.Fatal("recorded pipeline 6 was not mapped")
	}
}

func TestCreateGraphicsPipelinesAbortsOnUnmappedShaderModule(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)
	d.maps.Insert(driverapi.KindPipelineLayout, 3, 300)
	d.maps.Insert(driverapi.KindRenderPass, 4, 400)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateGraphicsPipelines,
		Args: packet.CreateGraphicsPipelinesArgs{
			Device: 1,
			Infos: []driverapi.GraphicsPipelineCreateInfo{
				{
					Stages:     []driverapi.ShaderStage{{Module: 999}},
					Layout:     3,
					RenderPass: 4,
				},
			},
		},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}

func TestDestroyPipelineLayout(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)
	d.maps.Insert(driverapi.KindPipelineLayout, 2, 200)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryDestroyPipelineLayout,
		Args:  packet.DestroyPipelineLayoutArgs{Device: 1, Layout: 2},
	})
	if status != StatusSuccess {
		t.Fatalf("DestroyPipelineLayout status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindPipelineLayout, 2) != driverapi.NullHandle {
		t.Fatal("layout 2 still mapped after DestroyPipelineLayout")
	}
}

func TestCreateDestroyPipelineCache(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreatePipelineCache,
		Args: packet.CreatePipelineCacheArgs{
			Device:        1,
			RecordedCache: 2,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("CreatePipelineCache status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindPipelineCache, 2) == driverapi.NullHandle {
		t.Fatal("recorded cache 2 was not mapped")
	}

	status = d.Dispatch(packet.Packet{
		Entry: packet.EntryGetPipelineCacheData,
		Args:  packet.GetPipelineCacheDataArgs{Device: 1, Cache: 2},
	})
	if status != StatusSuccess {
		t.Fatalf("GetPipelineCacheData status = %s, want success", status)
	}

	status = d.Dispatch(packet.Packet{
		Entry: packet.EntryDestroyPipelineCache,
		Args:  packet.DestroyPipelineCacheArgs{Device: 1, Cache: 2},
	})
	if status != StatusSuccess {
		t.Fatalf("DestroyPipelineCache status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindPipelineCache, 2) != driverapi.NullHandle {
		t.Fatal("cache 2 still mapped after DestroyPipelineCache")
	}
}

func TestCreateComputePipelinesRemapsStageAndLayout(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)
	d.maps.Insert(driverapi.KindShaderModule, 2, 200)
	d.maps.Insert(driverapi.KindPipelineLayout, 3, 300)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateComputePipelines,
		Args: packet.CreateComputePipelinesArgs{
			Device: 1,
			Infos: []driverapi.ComputePipelineCreateInfo{
				{Stage: driverapi.ShaderStage{Module: 2}, Layout: 3},
			},
			RecordedPipelines: []driverapi.Handle{4},
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindPipeline, 4) == driverapi.NullHandle {
		t.Fatal("recorded pipeline 4 was not mapped")
	}

	status = d.Dispatch(packet.Packet{
		Entry: packet.EntryDestroyPipeline,
		Args:  packet.DestroyPipelineArgs{Device: 1, Pipeline: 4},
	})
	if status != StatusSuccess {
		t.Fatalf("DestroyPipeline status = %s, want success", status)
	}
}

func TestCreateComputePipelinesAbortsOnUnmappedLayout(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)
	d.maps.Insert(driverapi.KindShaderModule, 2, 200)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreateComputePipelines,
		Args: packet.CreateComputePipelinesArgs{
			Device: 1,
			Infos: []driverapi.ComputePipelineCreateInfo{
				{Stage: driverapi.ShaderStage{Module: 2}, Layout: 99},
			},
		},
	})
	if status != StatusValidationError {
		t.Fatalf("status = %s, want validation-error", status)
	}
}

func TestCreatePipelineLayoutRemapsSetLayouts(t *testing.T) {
	tbl := &mockdrv.Table{}
	d := newTestDriver(tbl, Settings{})
	d.maps.Insert(driverapi.KindDevice, 1, 100)
	d.maps.Insert(driverapi.KindDescriptorSetLayout, 2, 200)

	status := d.Dispatch(packet.Packet{
		Entry: packet.EntryCreatePipelineLayout,
		Args: packet.CreatePipelineLayoutArgs{
			Device:         1,
			Info:           driverapi.PipelineLayoutCreateInfo{SetLayouts: []driverapi.Handle{2}},
			RecordedLayout: 3,
		},
		RecordedResult: driverapi.ResultSuccess,
	})
	if status != StatusSuccess {
		t.Fatalf("status = %s, want success", status)
	}
	if d.maps.Lookup(driverapi.KindPipelineLayout, 3) == driverapi.NullHandle {
		t.Fatal("recorded layout 3 was not mapped")
	}
}
