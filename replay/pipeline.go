// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

func (d *Driver) createPipelineLayout(p packet.Packet) Status {
	args := p.Args.(packet.CreatePipelineLayoutArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	info := args.Info
	info.SetLayouts = make([]driverapi.Handle, len(args.Info.SetLayouts))
	for i, l := range args.Info.SetLayouts {
		live, abort := d.remapOrAbort(driverapi.KindDescriptorSetLayout, l)
		if abort {
			return StatusValidationError
		}
		info.SetLayouts[i] = live
	}
	live, result := d.table.CreatePipelineLayout(dev, info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindPipelineLayout, args.RecordedLayout, live)
	}
	return status
}

func (d *Driver) destroyPipelineLayout(p packet.Packet) Status {
	args := p.Args.(packet.DestroyPipelineLayoutArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	layout, abort := d.remapOrAbort(driverapi.KindPipelineLayout, args.Layout)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyPipelineLayout(dev, layout)
	d.maps.Remove(driverapi.KindPipelineLayout, args.Layout)
	return StatusSuccess
}

func (d *Driver) createPipelineCache(p packet.Packet) Status {
	args := p.Args.(packet.CreatePipelineCacheArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	live, result := d.table.CreatePipelineCache(dev)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindPipelineCache, args.RecordedCache, live)
	}
	return status
}

func (d *Driver) destroyPipelineCache(p packet.Packet) Status {
	args := p.Args.(packet.DestroyPipelineCacheArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	cache, abort := d.remapOrAbort(driverapi.KindPipelineCache, args.Cache)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyPipelineCache(dev, cache)
	d.maps.Remove(driverapi.KindPipelineCache, args.Cache)
	return StatusSuccess
}

func (d *Driver) getPipelineCacheData(p packet.Packet) Status {
	args := p.Args.(packet.GetPipelineCacheDataArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	cache, abort := d.remapOrAbort(driverapi.KindPipelineCache, args.Cache)
	if abort {
		return StatusValidationError
	}
	_, result := d.table.GetPipelineCacheData(dev, cache)
	return d.finish(result, p.RecordedResult)
}

// createGraphicsPipelines deep-copies the create-info array and
// rewrites each entry's stage-shader-module handles, pipeline layout,
// render pass and base-pipeline handle. The viewport/scissor and
// sample-mask sub-array rebinding the source performs from
// packet-relative offsets has no analog here: this module represents
// those counts directly rather than as offsets into a packet buffer,
// so there is nothing left to rebind once the struct is decoded.
func (d *Driver) createGraphicsPipelines(p packet.Packet) Status {
	args := p.Args.(packet.CreateGraphicsPipelinesArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	var cache driverapi.Handle
	if args.Cache != driverapi.NullHandle {
		cache, abort = d.remapOrAbort(driverapi.KindPipelineCache, args.Cache)
		if abort {
			return StatusValidationError
		}
	}
	infos := make([]driverapi.GraphicsPipelineCreateInfo, len(args.Infos))
	for i, in := range args.Infos {
		ni := in
		ni.Stages = make([]driverapi.ShaderStage, len(in.Stages))
		for j, s := range in.Stages {
			ns := s
			mod, abort := d.remapOrAbort(driverapi.KindShaderModule, s.Module)
			if abort {
				return StatusValidationError
			}
			ns.Module = mod
			ni.Stages[j] = ns
		}
		layout, abort := d.remapOrAbort(driverapi.KindPipelineLayout, in.Layout)
		if abort {
			return StatusValidationError
		}
		ni.Layout = layout
		pass, abort := d.remapOrAbort(driverapi.KindRenderPass, in.RenderPass)
		if abort {
			return StatusValidationError
		}
		ni.RenderPass = pass
		if in.BasePipelineHandle != driverapi.NullHandle {
			base, abort := d.remapOrAbort(driverapi.KindPipeline, in.BasePipelineHandle)
			if abort {
				return StatusValidationError
			}
			ni.BasePipelineHandle = base
		}
		infos[i] = ni
	}
	live, result := d.table.CreateGraphicsPipelines(dev, cache, infos)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() {
		for i, l := range live {
			if i < len(args.RecordedPipelines) && l != driverapi.NullHandle {
				d.maps.Insert(driverapi.KindPipeline, args.RecordedPipelines[i], l)
			}
		}
	}
	return status
}

func (d *Driver) createComputePipelines(p packet.Packet) Status {
	args := p.Args.(packet.CreateComputePipelinesArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	var cache driverapi.Handle
	if args.Cache != driverapi.NullHandle {
		cache, abort = d.remapOrAbort(driverapi.KindPipelineCache, args.Cache)
		if abort {
			return StatusValidationError
		}
	}
	infos := make([]driverapi.ComputePipelineCreateInfo, len(args.Infos))
	for i, in := range args.Infos {
		ni := in
		mod, abort := d.remapOrAbort(driverapi.KindShaderModule, in.Stage.Module)
		if abort {
			return StatusValidationError
		}
		ni.Stage.Module = mod
		layout, abort := d.remapOrAbort(driverapi.KindPipelineLayout, in.Layout)
		if abort {
			return StatusValidationError
		}
		ni.Layout = layout
		if in.BasePipelineHandle != driverapi.NullHandle {
			base, abort := d.remapOrAbort(driverapi.KindPipeline, in.BasePipelineHandle)
			if abort {
				return StatusValidationError
			}
			ni.BasePipelineHandle = base
		}
		infos[i] = ni
	}
	live, result := d.table.CreateComputePipelines(dev, cache, infos)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() {
		for i, l := range live {
			if i < len(args.RecordedPipelines) && l != driverapi.NullHandle {
				d.maps.Insert(driverapi.KindPipeline, args.RecordedPipelines[i], l)
			}
		}
	}
	return status
}

func (d *Driver) destroyPipeline(p packet.Packet) Status {
	args := p.Args.(packet.DestroyPipelineArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	pipe, abort := d.remapOrAbort(driverapi.KindPipeline, args.Pipeline)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyPipeline(dev, pipe)
	d.maps.Remove(driverapi.KindPipeline, args.Pipeline)
	return StatusSuccess
}
