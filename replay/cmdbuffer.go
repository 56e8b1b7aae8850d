// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

func (d *Driver) createCommandPool(p packet.Packet) Status {
	args := p.Args.(packet.CreateCommandPoolArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	live, result := d.table.CreateCommandPool(dev, args.Info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindCommandPool, args.RecordedPool, live)
	}
	return status
}

func (d *Driver) destroyCommandPool(p packet.Packet) Status {
	args := p.Args.(packet.DestroyCommandPoolArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	pool, abort := d.remapOrAbort(driverapi.KindCommandPool, args.Pool)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyCommandPool(dev, pool)
	d.maps.Remove(driverapi.KindCommandPool, args.Pool)
	return StatusSuccess
}

func (d *Driver) allocateCommandBuffers(p packet.Packet) Status {
	args := p.Args.(packet.AllocateCommandBuffersArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	info := args.Info
	pool, abort := d.remapOrAbort(driverapi.KindCommandPool, args.Info.CommandPool)
	if abort {
		return StatusValidationError
	}
	info.CommandPool = pool
	live, result := d.table.AllocateCommandBuffers(dev, info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() {
		for i, l := range live {
			if i < len(args.RecordedBuffers) && l != driverapi.NullHandle {
				d.maps.Insert(driverapi.KindCommandBuffer, args.RecordedBuffers[i], l)
			}
		}
	}
	return status
}

func (d *Driver) freeCommandBuffers(p packet.Packet) Status {
	args := p.Args.(packet.FreeCommandBuffersArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	pool, abort := d.remapOrAbort(driverapi.KindCommandPool, args.Pool)
	if abort {
		return StatusValidationError
	}
	live := make([]driverapi.Handle, len(args.Buffers))
	for i, b := range args.Buffers {
		l, abort := d.remapOrAbort(driverapi.KindCommandBuffer, b)
		if abort {
			return StatusValidationError
		}
		live[i] = l
	}
	d.table.FreeCommandBuffers(dev, pool, live)
	for _, b := range args.Buffers {
		d.maps.Remove(driverapi.KindCommandBuffer, b)
	}
	return StatusSuccess
}

// beginCommandBuffer remaps the inheritance info's render-pass and
// framebuffer handles, matching manually_replay_vkBeginCommandBuffer.
func (d *Driver) beginCommandBuffer(p packet.Packet) Status {
	args := p.Args.(packet.BeginCommandBufferArgs)
	cb, abort := d.remapOrAbort(driverapi.KindCommandBuffer, args.CommandBuffer)
	if abort {
		return StatusValidationError
	}
	var inh *driverapi.CommandBufferInheritanceInfo
	if args.Inheritance != nil {
		ni := *args.Inheritance
		pass, abort := d.remapOrAbort(driverapi.KindRenderPass, args.Inheritance.RenderPass)
		if abort {
			return StatusValidationError
		}
		ni.RenderPass = pass
		fb, abort := d.remapOrAbort(driverapi.KindFramebuffer, args.Inheritance.Framebuffer)
		if abort {
			return StatusValidationError
		}
		ni.Framebuffer = fb
		inh = &ni
	}
	result := d.table.BeginCommandBuffer(cb, inh)
	return d.finish(result, p.RecordedResult)
}

func (d *Driver) endCommandBuffer(p packet.Packet) Status {
	args := p.Args.(packet.EndCommandBufferArgs)
	cb, abort := d.remapOrAbort(driverapi.KindCommandBuffer, args.CommandBuffer)
	if abort {
		return StatusValidationError
	}
	result := d.table.EndCommandBuffer(cb)
	return d.finish(result, p.RecordedResult)
}

func (d *Driver) cmdBindDescriptorSets(p packet.Packet) Status {
	args := p.Args.(packet.CmdBindDescriptorSetsArgs)
	cb, abort := d.remapOrAbort(driverapi.KindCommandBuffer, args.CommandBuffer)
	if abort {
		return StatusValidationError
	}
	layout, abort := d.remapOrAbort(driverapi.KindPipelineLayout, args.Layout)
	if abort {
		return StatusValidationError
	}
	sets := make([]driverapi.Handle, len(args.Sets))
	for i, s := range args.Sets {
		l, abort := d.remapOrAbort(driverapi.KindDescriptorSet, s)
		if abort {
			return StatusValidationError
		}
		sets[i] = l
	}
	d.table.CmdBindDescriptorSets(cb, layout, args.FirstSet, sets, args.DynamicOffsets)
	return StatusSuccess
}

func (d *Driver) cmdBindVertexBuffers(p packet.Packet) Status {
	args := p.Args.(packet.CmdBindVertexBuffersArgs)
	cb, abort := d.remapOrAbort(driverapi.KindCommandBuffer, args.CommandBuffer)
	if abort {
		return StatusValidationError
	}
	buffers := make([]driverapi.Handle, len(args.Buffers))
	for i, b := range args.Buffers {
		l, abort := d.remapOrAbort(driverapi.KindBuffer, b)
		if abort {
			return StatusValidationError
		}
		buffers[i] = l
	}
	d.table.CmdBindVertexBuffers(cb, args.FirstBinding, buffers, args.Offsets)
	return StatusSuccess
}

func (d *Driver) cmdBeginRenderPass(p packet.Packet) Status {
	args := p.Args.(packet.CmdBeginRenderPassArgs)
	cb, abort := d.remapOrAbort(driverapi.KindCommandBuffer, args.CommandBuffer)
	if abort {
		return StatusValidationError
	}
	info := args.Info
	pass, abort := d.remapOrAbort(driverapi.KindRenderPass, args.Info.RenderPass)
	if abort {
		return StatusValidationError
	}
	info.RenderPass = pass
	fb, abort := d.remapOrAbort(driverapi.KindFramebuffer, args.Info.Framebuffer)
	if abort {
		return StatusValidationError
	}
	info.Framebuffer = fb
	d.table.CmdBeginRenderPass(cb, info)
	return StatusSuccess
}

// remapBufferBarriers and remapImageBarriers are shared by
// vkCmdWaitEvents and vkCmdPipelineBarrier. Each barrier's target
// handle is remapped into a freshly built slice; because the
// replayer represents packets as Go values rather than C buffers,
// the save-and-restore-in-place discipline the source implements
// with raw pointer writes is naturally satisfied by building new
// slices instead of mutating the packet's. Unlike the source's
// manually_replay_vkCmdWaitEvents, the two arrays are walked with
// their own counts (len of each slice), so there is no possibility
// of the image-barrier restore ever being driven by the buffer-
// barrier count.
func (d *Driver) remapBufferBarriers(barriers []driverapi.BufferMemoryBarrier) ([]driverapi.BufferMemoryBarrier, bool) {
	out := make([]driverapi.BufferMemoryBarrier, len(barriers))
	for i, b := range barriers {
		nb := b
		live, abort := d.remapOrAbort(driverapi.KindBuffer, b.Buffer)
		if abort {
			return nil, true
		}
		nb.Buffer = live
		out[i] = nb
	}
	return out, false
}

func (d *Driver) remapImageBarriers(barriers []driverapi.ImageMemoryBarrier) ([]driverapi.ImageMemoryBarrier, bool) {
	out := make([]driverapi.ImageMemoryBarrier, len(barriers))
	for i, b := range barriers {
		nb := b
		live, abort := d.remapOrAbort(driverapi.KindImage, b.Image)
		if abort {
			return nil, true
		}
		nb.Image = live
		out[i] = nb
	}
	return out, false
}

func (d *Driver) cmdWaitEvents(p packet.Packet) Status {
	args := p.Args.(packet.CmdWaitEventsArgs)
	cb, abort := d.remapOrAbort(driverapi.KindCommandBuffer, args.CommandBuffer)
	if abort {
		return StatusValidationError
	}
	events := make([]driverapi.Handle, len(args.Events))
	for i, e := range args.Events {
		l, abort := d.remapOrAbort(driverapi.KindEvent, e)
		if abort {
			return StatusValidationError
		}
		events[i] = l
	}
	bufBarriers, abort := d.remapBufferBarriers(args.BufferBarriers)
	if abort {
		return StatusValidationError
	}
	imgBarriers, abort := d.remapImageBarriers(args.ImageBarriers)
	if abort {
		return StatusValidationError
	}
	d.table.CmdWaitEvents(cb, events, bufBarriers, imgBarriers)
	return StatusSuccess
}

func (d *Driver) cmdPipelineBarrier(p packet.Packet) Status {
	args := p.Args.(packet.CmdPipelineBarrierArgs)
	cb, abort := d.remapOrAbort(driverapi.KindCommandBuffer, args.CommandBuffer)
	if abort {
		return StatusValidationError
	}
	bufBarriers, abort := d.remapBufferBarriers(args.BufferBarriers)
	if abort {
		return StatusValidationError
	}
	imgBarriers, abort := d.remapImageBarriers(args.ImageBarriers)
	if abort {
		return StatusValidationError
	}
	d.table.CmdPipelineBarrier(cb, bufBarriers, imgBarriers)
	return StatusSuccess
}
