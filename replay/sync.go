// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

func (d *Driver) createSemaphore(p packet.Packet) Status {
	args := p.Args.(packet.CreateSemaphoreArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	live, result := d.table.CreateSemaphore(dev)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindSemaphore, args.RecordedSemaphore, live)
	}
	return status
}

func (d *Driver) destroySemaphore(p packet.Packet) Status {
	args := p.Args.(packet.DestroySemaphoreArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	sem, abort := d.remapOrAbort(driverapi.KindSemaphore, args.Semaphore)
	if abort {
		return StatusValidationError
	}
	d.table.DestroySemaphore(dev, sem)
	d.maps.Remove(driverapi.KindSemaphore, args.Semaphore)
	return StatusSuccess
}

func (d *Driver) createFence(p packet.Packet) Status {
	args := p.Args.(packet.CreateFenceArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	live, result := d.table.CreateFence(dev)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindFence, args.RecordedFence, live)
	}
	return status
}

func (d *Driver) destroyFence(p packet.Packet) Status {
	args := p.Args.(packet.DestroyFenceArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	fence, abort := d.remapOrAbort(driverapi.KindFence, args.Fence)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyFence(dev, fence)
	d.maps.Remove(driverapi.KindFence, args.Fence)
	return StatusSuccess
}

// waitForFences remaps the fence array into scratch; the array is
// read-only from the driver's perspective so no restore is needed,
// matching manually_replay_vkWaitForFences.
func (d *Driver) waitForFences(p packet.Packet) Status {
	args := p.Args.(packet.WaitForFencesArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	live := make([]driverapi.Handle, len(args.Fences))
	for i, f := range args.Fences {
		l, abort := d.remapOrAbort(driverapi.KindFence, f)
		if abort {
			return StatusValidationError
		}
		live[i] = l
	}
	result := d.table.WaitForFences(dev, live, args.WaitAll, args.Timeout)
	return d.finish(result, p.RecordedResult)
}

func (d *Driver) createEvent(p packet.Packet) Status {
	args := p.Args.(packet.CreateEventArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	live, result := d.table.CreateEvent(dev)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindEvent, args.RecordedEvent, live)
	}
	return status
}

func (d *Driver) destroyEvent(p packet.Packet) Status {
	args := p.Args.(packet.DestroyEventArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	ev, abort := d.remapOrAbort(driverapi.KindEvent, args.Event)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyEvent(dev, ev)
	d.maps.Remove(driverapi.KindEvent, args.Event)
	return StatusSuccess
}
