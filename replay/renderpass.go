// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

// createRenderPass carries no embedded handles (attachments and
// subpasses reference each other by index, not by handle), so it is
// a pure pass-through once the dispatch object is remapped.
func (d *Driver) createRenderPass(p packet.Packet) Status {
	args := p.Args.(packet.CreateRenderPassArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	live, result := d.table.CreateRenderPass(dev, args.Info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindRenderPass, args.RecordedRenderPass, live)
	}
	return status
}

func (d *Driver) destroyRenderPass(p packet.Packet) Status {
	args := p.Args.(packet.DestroyRenderPassArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	pass, abort := d.remapOrAbort(driverapi.KindRenderPass, args.RenderPass)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyRenderPass(dev, pass)
	d.maps.Remove(driverapi.KindRenderPass, args.RenderPass)
	return StatusSuccess
}

// createFramebuffer clones the attachments array and rewrites the
// embedded render-pass and image-view handles.
func (d *Driver) createFramebuffer(p packet.Packet) Status {
	args := p.Args.(packet.CreateFramebufferArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	info := args.Info
	pass, abort := d.remapOrAbort(driverapi.KindRenderPass, args.Info.RenderPass)
	if abort {
		return StatusValidationError
	}
	info.RenderPass = pass
	info.Attachments = make([]driverapi.Handle, len(args.Info.Attachments))
	for i, a := range args.Info.Attachments {
		live, abort := d.remapOrAbort(driverapi.KindImageView, a)
		if abort {
			return StatusValidationError
		}
		info.Attachments[i] = live
	}
	live, result := d.table.CreateFramebuffer(dev, info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindFramebuffer, args.RecordedFramebuffer, live)
	}
	return status
}

func (d *Driver) destroyFramebuffer(p packet.Packet) Status {
	args := p.Args.(packet.DestroyFramebufferArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	fb, abort := d.remapOrAbort(driverapi.KindFramebuffer, args.Framebuffer)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyFramebuffer(dev, fb)
	d.maps.Remove(driverapi.KindFramebuffer, args.Framebuffer)
	return StatusSuccess
}
