// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

// createDevice applies the same screenshot-layer policy as instance
// creation, scoped to device-level layer enumeration, after remapping
// the physical device dispatch object.
func (d *Driver) createDevice(p packet.Packet) Status {
	args := p.Args.(packet.CreateDeviceArgs)
	pdev, abort := d.remapOrAbort(driverapi.KindPhysicalDevice, args.PhysicalDevice)
	if abort {
		return StatusValidationError
	}

	info := args.Info
	available, _ := d.table.EnumerateDeviceLayerProperties(pdev)
	info.EnabledLayerNames = injectScreenshotLayer(args.Info.EnabledLayerNames, d.settings.ScreenshotList, available)

	live, result := d.table.CreateDevice(pdev, info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindDevice, args.RecordedDevice, live)
		d.device = live
	}
	return status
}

func (d *Driver) destroyDevice(p packet.Packet) Status {
	args := p.Args.(packet.DestroyDeviceArgs)
	live, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyDevice(live)
	d.maps.Remove(driverapi.KindDevice, args.Device)
	if d.device == live {
		d.device = driverapi.NullHandle
	}
	return StatusSuccess
}

func (d *Driver) getDeviceQueue(p packet.Packet) Status {
	args := p.Args.(packet.GetDeviceQueueArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	live := d.table.GetDeviceQueue(dev, args.QueueFamilyIndex, args.QueueIndex)
	if live != driverapi.NullHandle && args.RecordedQueue != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindQueue, args.RecordedQueue, live)
	}
	return StatusSuccess
}
