// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

// createSwapchain remaps the surface and any chained old swapchain,
// then resizes the Display Adapter's window to the recorded extent
// before creating the live swapchain, so the live surface matches
// what the driver is about to be asked to present into.
func (d *Driver) createSwapchain(p packet.Packet) Status {
	args := p.Args.(packet.CreateSwapchainArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	info := args.Info
	surface, abort := d.remapOrAbort(driverapi.KindSurface, args.Info.Surface)
	if abort {
		return StatusValidationError
	}
	info.Surface = surface
	if args.Info.OldSwapchain != driverapi.NullHandle {
		old, abort := d.remapOrAbort(driverapi.KindSwapchain, args.Info.OldSwapchain)
		if abort {
			return StatusValidationError
		}
		info.OldSwapchain = old
	}
	if d.disp != nil {
		if err := d.disp.Resize(int(info.Width), int(info.Height)); err != nil {
			return d.errorf("vkCreateSwapchainKHR: %v", err)
		}
	}
	live, result := d.table.CreateSwapchain(dev, info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindSwapchain, args.RecordedSwapchain, live)
	}
	return status
}

func (d *Driver) destroySwapchain(p packet.Packet) Status {
	args := p.Args.(packet.DestroySwapchainArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	sc, abort := d.remapOrAbort(driverapi.KindSwapchain, args.Swapchain)
	if abort {
		return StatusValidationError
	}
	d.table.DestroySwapchain(dev, sc)
	d.maps.Remove(driverapi.KindSwapchain, args.Swapchain)
	return StatusSuccess
}

// getSwapchainImages correlates the live image array with the
// recorded one by index, the same way enumeratePhysicalDevices does.
func (d *Driver) getSwapchainImages(p packet.Packet) Status {
	args := p.Args.(packet.GetSwapchainImagesArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	sc, abort := d.remapOrAbort(driverapi.KindSwapchain, args.Swapchain)
	if abort {
		return StatusValidationError
	}
	live, result := d.table.GetSwapchainImages(dev, sc)
	status := d.finish(result, p.RecordedResult)
	if !result.Succeeded() {
		return status
	}
	n := len(live)
	if len(args.RecordedImages) < n {
		n = len(args.RecordedImages)
	}
	for i := 0; i < n; i++ {
		if args.RecordedImages[i] == driverapi.NullHandle || live[i] == driverapi.NullHandle {
			continue
		}
		d.maps.Insert(driverapi.KindImage, args.RecordedImages[i], live[i])
	}
	return status
}

// queuePresent remaps the wait semaphores and swapchains into fresh
// local arrays, invokes the driver, and compares per-swapchain results
// against the recorded ones when the packet requested that comparison.
// The frame counter advances only once the driver has actually been
// asked to present, not when an unmapped handle aborts the call first.
func (d *Driver) queuePresent(p packet.Packet) Status {
	args := p.Args.(packet.QueuePresentArgs)

	queue, abort := d.remapOrAbort(driverapi.KindQueue, args.Queue)
	if abort {
		return StatusValidationError
	}
	info := args.Info
	info.WaitSemaphores = make([]driverapi.Handle, len(args.Info.WaitSemaphores))
	for i, s := range args.Info.WaitSemaphores {
		live, abort := d.remapOrAbort(driverapi.KindSemaphore, s)
		if abort {
			return StatusValidationError
		}
		info.WaitSemaphores[i] = live
	}
	info.Swapchains = make([]driverapi.Handle, len(args.Info.Swapchains))
	for i, s := range args.Info.Swapchains {
		live, abort := d.remapOrAbort(driverapi.KindSwapchain, s)
		if abort {
			return StatusValidationError
		}
		info.Swapchains[i] = live
	}

	results, result := d.table.QueuePresent(queue, info)
	d.frame++
	status := d.finish(result, p.RecordedResult)

	if args.RecordedResults != nil {
		n := len(results)
		if len(args.RecordedResults) < n {
			n = len(args.RecordedResults)
		}
		for i := 0; i < n; i++ {
			if results[i] != args.RecordedResults[i] {
				status = StatusBadReturn
			}
		}
	}
	return status
}
