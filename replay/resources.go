// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

func (d *Driver) createBuffer(p packet.Packet) Status {
	args := p.Args.(packet.CreateBufferArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	live, result := d.table.CreateBuffer(dev, args.Info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindBuffer, args.RecordedBuffer, live)
	}
	return status
}

func (d *Driver) destroyBuffer(p packet.Packet) Status {
	args := p.Args.(packet.DestroyBufferArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	buf, abort := d.remapOrAbort(driverapi.KindBuffer, args.Buffer)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyBuffer(dev, buf)
	d.maps.Remove(driverapi.KindBuffer, args.Buffer)
	return StatusSuccess
}

func (d *Driver) createImage(p packet.Packet) Status {
	args := p.Args.(packet.CreateImageArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	live, result := d.table.CreateImage(dev, args.Info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindImage, args.RecordedImage, live)
	}
	return status
}

func (d *Driver) destroyImage(p packet.Packet) Status {
	args := p.Args.(packet.DestroyImageArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	img, abort := d.remapOrAbort(driverapi.KindImage, args.Image)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyImage(dev, img)
	d.maps.Remove(driverapi.KindImage, args.Image)
	return StatusSuccess
}

// createImageView deep-copies Info (a value already, per Go's
// assignment semantics) and rewrites the embedded image handle
// before forwarding; the caller's packet is unaffected because args
// is a local copy obtained from the type assertion below.
func (d *Driver) createImageView(p packet.Packet) Status {
	args := p.Args.(packet.CreateImageViewArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	info := args.Info
	img, abort := d.remapOrAbort(driverapi.KindImage, args.Info.Image)
	if abort {
		return StatusValidationError
	}
	info.Image = img
	live, result := d.table.CreateImageView(dev, info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindImageView, args.RecordedView, live)
	}
	return status
}

func (d *Driver) destroyImageView(p packet.Packet) Status {
	args := p.Args.(packet.DestroyImageViewArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	view, abort := d.remapOrAbort(driverapi.KindImageView, args.View)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyImageView(dev, view)
	d.maps.Remove(driverapi.KindImageView, args.View)
	return StatusSuccess
}

func (d *Driver) createBufferView(p packet.Packet) Status {
	args := p.Args.(packet.CreateBufferViewArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	info := args.Info
	buf, abort := d.remapOrAbort(driverapi.KindBuffer, args.Info.Buffer)
	if abort {
		return StatusValidationError
	}
	info.Buffer = buf
	live, result := d.table.CreateBufferView(dev, info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindBufferView, args.RecordedView, live)
	}
	return status
}

func (d *Driver) destroyBufferView(p packet.Packet) Status {
	args := p.Args.(packet.DestroyBufferViewArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	view, abort := d.remapOrAbort(driverapi.KindBufferView, args.View)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyBufferView(dev, view)
	d.maps.Remove(driverapi.KindBufferView, args.View)
	return StatusSuccess
}

// createSampler carries no embedded handles, so it is a pure
// pass-through once the dispatch object is remapped.
func (d *Driver) createSampler(p packet.Packet) Status {
	args := p.Args.(packet.CreateSamplerArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	live, result := d.table.CreateSampler(dev, args.Info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindSampler, args.RecordedSampler, live)
	}
	return status
}

func (d *Driver) destroySampler(p packet.Packet) Status {
	args := p.Args.(packet.DestroySamplerArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	sampler, abort := d.remapOrAbort(driverapi.KindSampler, args.Sampler)
	if abort {
		return StatusValidationError
	}
	d.table.DestroySampler(dev, sampler)
	d.maps.Remove(driverapi.KindSampler, args.Sampler)
	return StatusSuccess
}
