// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

func (d *Driver) allocateMemory(p packet.Packet) Status {
	args := p.Args.(packet.AllocateMemoryArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}

	var live driverapi.Handle
	var result driverapi.Result
	if d.settings.AdjustForGPU {
		// Real allocation is deferred; report success to the trace
		// without touching the driver yet.
		result = driverapi.ResultSuccess
	} else {
		live, result = d.table.AllocateMemory(dev, args.Info)
	}
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() {
		d.mem.OnAllocate(args.RecordedMemory, args.Info.AllocationSize, live)
		if !d.settings.AdjustForGPU && live != driverapi.NullHandle {
			d.maps.Insert(driverapi.KindDeviceMemory, args.RecordedMemory, live)
		}
	}
	return status
}

func (d *Driver) freeMemory(p packet.Packet) Status {
	args := p.Args.(packet.FreeMemoryArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	if live := d.mem.LiveHandle(args.Memory); live != driverapi.NullHandle {
		d.table.FreeMemory(dev, live)
	}
	d.mem.OnFree(args.Memory)
	d.maps.Remove(driverapi.KindDeviceMemory, args.Memory)
	return StatusSuccess
}

// mapMemory mirrors manually_replay_vkMapMemory: if the backing
// allocation is not pending, it calls the driver and records the
// returned host pointer as the active mapping window; if pending, it
// stashes the window parameters without calling the driver at all.
func (d *Driver) mapMemory(p packet.Packet) Status {
	args := p.Args.(packet.MapMemoryArgs)
	if d.mem.IsPending(args.Memory) {
		if err := d.mem.OnMap(args.Memory, args.Offset, args.Size, nil); err != nil {
			return d.errorf("vkMapMemory: %v", err)
		}
		return StatusSuccess
	}
	live := d.mem.LiveHandle(args.Memory)
	if live == driverapi.NullHandle {
		return d.errorf("vkMapMemory: invalid-remap: recorded memory %#x has no live allocation", args.Memory)
	}
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	host, result := d.table.MapMemory(dev, live, args.Offset, args.Size)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() {
		if err := d.mem.OnMap(args.Memory, args.Offset, args.Size, host); err != nil {
			return d.errorf("vkMapMemory: %v", err)
		}
	}
	return status
}

// unmapMemory mirrors manually_replay_vkUnmapMemory: copy the
// packet's recorded bytes into driver-visible memory (or a shadow
// buffer, if pending) before releasing the mapping.
func (d *Driver) unmapMemory(p packet.Packet) Status {
	args := p.Args.(packet.UnmapMemoryArgs)
	if err := d.mem.OnUnmap(args.Memory, args.Data); err != nil {
		return d.errorf("vkUnmapMemory: %v", err)
	}
	if d.mem.IsPending(args.Memory) {
		return StatusSuccess
	}
	live := d.mem.LiveHandle(args.Memory)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	d.table.UnmapMemory(dev, live)
	return StatusSuccess
}

// flushMappedMemoryRanges mirrors manually_replay_vkFlushMappedMemoryRanges:
// for each range, copy the recorded bytes into the already-mapped
// driver pointer (or the shadow buffer, if pending), then forward the
// remapped range list to the driver only for the ranges that are not
// pending.
func (d *Driver) flushMappedMemoryRanges(p packet.Packet) Status {
	args := p.Args.(packet.FlushMappedMemoryRangesArgs)
	var live []driverapi.MappedMemoryRange
	for i, r := range args.Ranges {
		if err := d.mem.OnFlushRange(r.Memory, r.Offset, args.Data[i]); err != nil {
			return d.errorf("vkFlushMappedMemoryRanges: %v", err)
		}
		if d.mem.IsPending(r.Memory) {
			continue
		}
		lr := r
		lr.Memory = d.mem.LiveHandle(r.Memory)
		if lr.Memory == driverapi.NullHandle {
			return d.errorf("vkFlushMappedMemoryRanges: invalid-remap: recorded memory %#x", r.Memory)
		}
		live = append(live, lr)
	}
	if len(live) == 0 {
		return StatusSuccess
	}
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	result := d.table.FlushMappedMemoryRanges(dev, live)
	return d.finish(result, p.RecordedResult)
}
