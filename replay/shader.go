// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

func (d *Driver) createShaderModule(p packet.Packet) Status {
	args := p.Args.(packet.CreateShaderModuleArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	live, result := d.table.CreateShaderModule(dev, args.Code)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindShaderModule, args.RecordedModule, live)
	}
	return status
}

func (d *Driver) destroyShaderModule(p packet.Packet) Status {
	args := p.Args.(packet.DestroyShaderModuleArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	mod, abort := d.remapOrAbort(driverapi.KindShaderModule, args.Module)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyShaderModule(dev, mod)
	d.maps.Remove(driverapi.KindShaderModule, args.Module)
	return StatusSuccess
}
