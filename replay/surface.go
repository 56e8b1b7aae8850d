// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

func (d *Driver) getPhysicalDeviceSurfaceSupport(p packet.Packet) Status {
	args := p.Args.(packet.GetPhysicalDeviceSurfaceSupportArgs)
	pdev, abort := d.remapOrAbort(driverapi.KindPhysicalDevice, args.PhysicalDevice)
	if abort {
		return StatusValidationError
	}
	surface, abort := d.remapOrAbort(driverapi.KindSurface, args.Surface)
	if abort {
		return StatusValidationError
	}
	_, result := d.table.GetPhysicalDeviceSurfaceSupport(pdev, surface, args.QueueFamilyIndex)
	return d.finish(result, p.RecordedResult)
}

// getPhysicalDeviceSurfaceCapabilities resizes the Display Adapter's
// window to the recorded extent before querying, so that the live
// capabilities the driver reports match what the trace expects to see,
// the same ordering createSwapchain uses.
func (d *Driver) getPhysicalDeviceSurfaceCapabilities(p packet.Packet) Status {
	args := p.Args.(packet.GetPhysicalDeviceSurfaceCapabilitiesArgs)
	pdev, abort := d.remapOrAbort(driverapi.KindPhysicalDevice, args.PhysicalDevice)
	if abort {
		return StatusValidationError
	}
	surface, abort := d.remapOrAbort(driverapi.KindSurface, args.Surface)
	if abort {
		return StatusValidationError
	}
	if d.disp != nil && (args.RecordedWidth != 0 || args.RecordedHeight != 0) {
		if err := d.disp.Resize(int(args.RecordedWidth), int(args.RecordedHeight)); err != nil {
			return d.errorf("vkGetPhysicalDeviceSurfaceCapabilitiesKHR: %v", err)
		}
	}
	_, _, result := d.table.GetPhysicalDeviceSurfaceCapabilities(pdev, surface)
	return d.finish(result, p.RecordedResult)
}

// createSurface substitutes the Display Adapter's own descriptor for
// whatever platform parameters the trace recorded, the same policy
// regardless of which of vkCreateXcbSurfaceKHR, vkCreateXlibSurfaceKHR
// or vkCreateWin32SurfaceKHR produced the packet.
func (d *Driver) createSurface(p packet.Packet) Status {
	args := p.Args.(packet.CreateSurfaceArgs)
	instance, abort := d.remapOrAbort(driverapi.KindInstance, args.Instance)
	if abort {
		return StatusValidationError
	}
	if d.disp == nil {
		return d.errorf("vkCreateSurface: no display adapter available")
	}
	descriptor, err := d.disp.Descriptor()
	if err != nil {
		return d.errorf("vkCreateSurface: %v", err)
	}
	live, result := d.table.CreateSurface(instance, descriptor)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindSurface, args.RecordedSurface, live)
	}
	return status
}

func (d *Driver) destroySurface(p packet.Packet) Status {
	args := p.Args.(packet.DestroySurfaceArgs)
	instance, abort := d.remapOrAbort(driverapi.KindInstance, args.Instance)
	if abort {
		return StatusValidationError
	}
	surface, abort := d.remapOrAbort(driverapi.KindSurface, args.Surface)
	if abort {
		return StatusValidationError
	}
	d.table.DestroySurface(instance, surface)
	d.maps.Remove(driverapi.KindSurface, args.Surface)
	return StatusSuccess
}
