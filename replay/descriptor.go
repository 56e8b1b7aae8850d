// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"log"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

func (d *Driver) createDescriptorSetLayout(p packet.Packet) Status {
	args := p.Args.(packet.CreateDescriptorSetLayoutArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	info := args.Info
	info.Bindings = make([]driverapi.DescriptorSetLayoutBinding, len(args.Info.Bindings))
	for i, b := range args.Info.Bindings {
		nb := b
		if len(b.ImmutableSamplers) > 0 {
			nb.ImmutableSamplers = make([]driverapi.Handle, len(b.ImmutableSamplers))
			for j, s := range b.ImmutableSamplers {
				live, abort := d.remapOrAbort(driverapi.KindSampler, s)
				if abort {
					return StatusValidationError
				}
				nb.ImmutableSamplers[j] = live
			}
		}
		info.Bindings[i] = nb
	}
	live, result := d.table.CreateDescriptorSetLayout(dev, info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindDescriptorSetLayout, args.RecordedLayout, live)
	}
	return status
}

func (d *Driver) destroyDescriptorSetLayout(p packet.Packet) Status {
	args := p.Args.(packet.DestroyDescriptorSetLayoutArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	layout, abort := d.remapOrAbort(driverapi.KindDescriptorSetLayout, args.Layout)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyDescriptorSetLayout(dev, layout)
	d.maps.Remove(driverapi.KindDescriptorSetLayout, args.Layout)
	return StatusSuccess
}

func (d *Driver) createDescriptorPool(p packet.Packet) Status {
	args := p.Args.(packet.CreateDescriptorPoolArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	live, result := d.table.CreateDescriptorPool(dev, args.Info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindDescriptorPool, args.RecordedPool, live)
	}
	return status
}

func (d *Driver) destroyDescriptorPool(p packet.Packet) Status {
	args := p.Args.(packet.DestroyDescriptorPoolArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	pool, abort := d.remapOrAbort(driverapi.KindDescriptorPool, args.Pool)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyDescriptorPool(dev, pool)
	d.maps.Remove(driverapi.KindDescriptorPool, args.Pool)
	return StatusSuccess
}

func (d *Driver) allocateDescriptorSets(p packet.Packet) Status {
	args := p.Args.(packet.AllocateDescriptorSetsArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	info := args.Info
	pool, abort := d.remapOrAbort(driverapi.KindDescriptorPool, args.Info.Pool)
	if abort {
		return StatusValidationError
	}
	info.Pool = pool
	info.Layouts = make([]driverapi.Handle, len(args.Info.Layouts))
	for i, l := range args.Info.Layouts {
		live, abort := d.remapOrAbort(driverapi.KindDescriptorSetLayout, l)
		if abort {
			return StatusValidationError
		}
		info.Layouts[i] = live
	}
	live, result := d.table.AllocateDescriptorSets(dev, info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() {
		for i, l := range live {
			if i < len(args.RecordedSets) && l != driverapi.NullHandle {
				d.maps.Insert(driverapi.KindDescriptorSet, args.RecordedSets[i], l)
			}
		}
	}
	return status
}

func (d *Driver) freeDescriptorSets(p packet.Packet) Status {
	args := p.Args.(packet.FreeDescriptorSetsArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}
	pool, abort := d.remapOrAbort(driverapi.KindDescriptorPool, args.Pool)
	if abort {
		return StatusValidationError
	}
	live := make([]driverapi.Handle, len(args.Sets))
	for i, s := range args.Sets {
		l, abort := d.remapOrAbort(driverapi.KindDescriptorSet, s)
		if abort {
			return StatusValidationError
		}
		live[i] = l
	}
	result := d.table.FreeDescriptorSets(dev, pool, live)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() {
		for _, s := range args.Sets {
			d.maps.Remove(driverapi.KindDescriptorSet, s)
		}
	}
	return status
}

// updateDescriptorSets clones the image-info / buffer-info /
// texel-buffer-view array for each write (sized by the write's
// descriptor count) and remaps the embedded handles by descriptor
// type. Any unmapped handle aborts the whole call, matching
// manually_replay_vkUpdateDescriptorSets.
func (d *Driver) updateDescriptorSets(p packet.Packet) Status {
	args := p.Args.(packet.UpdateDescriptorSetsArgs)
	dev, abort := d.remapOrAbort(driverapi.KindDevice, args.Device)
	if abort {
		return StatusValidationError
	}

	writes := make([]driverapi.WriteDescriptorSet, len(args.Writes))
	for i, w := range args.Writes {
		nw := w
		dst, abort := d.remapOrAbort(driverapi.KindDescriptorSet, w.DstSet)
		if abort {
			return StatusValidationError
		}
		nw.DstSet = dst

		switch w.Type {
		case driverapi.DescriptorSampler, driverapi.DescriptorSampledImage,
			driverapi.DescriptorStorageImage, driverapi.DescriptorInputAttachment,
			driverapi.DescriptorCombinedImageSampler:
			nw.ImageInfo = make([]driverapi.DescriptorImageInfo, len(w.ImageInfo))
			for j, ii := range w.ImageInfo {
				nii := ii
				if w.Type == driverapi.DescriptorSampler || w.Type == driverapi.DescriptorCombinedImageSampler {
					s, abort := d.remapOrAbort(driverapi.KindSampler, ii.Sampler)
					if abort {
						return StatusValidationError
					}
					nii.Sampler = s
				}
				if w.Type != driverapi.DescriptorSampler {
					v, abort := d.remapOrAbort(driverapi.KindImageView, ii.ImageView)
					if abort {
						return StatusValidationError
					}
					nii.ImageView = v
				}
				nw.ImageInfo[j] = nii
			}
		case driverapi.DescriptorUniformTexelBuffer, driverapi.DescriptorStorageTexelBuffer:
			nw.TexelBufferView = make([]driverapi.Handle, len(w.TexelBufferView))
			for j, v := range w.TexelBufferView {
				live, abort := d.remapOrAbort(driverapi.KindBufferView, v)
				if abort {
					return StatusValidationError
				}
				nw.TexelBufferView[j] = live
			}
		case driverapi.DescriptorUniformBuffer, driverapi.DescriptorStorageBuffer,
			driverapi.DescriptorUniformBufferDynamic, driverapi.DescriptorStorageBufferDynamic:
			nw.BufferInfo = make([]driverapi.DescriptorBufferInfo, len(w.BufferInfo))
			for j, bi := range w.BufferInfo {
				nbi := bi
				buf, abort := d.remapOrAbort(driverapi.KindBuffer, bi.Buffer)
				if abort {
					return StatusValidationError
				}
				nbi.Buffer = buf
				nw.BufferInfo[j] = nbi
			}
		default:
			log.Printf("replay: vkUpdateDescriptorSets: unrecognized descriptor type %d", w.Type)
		}
		writes[i] = nw
	}

	copies := make([]driverapi.CopyDescriptorSet, len(args.Copies))
	for i, c := range args.Copies {
		src, abort := d.remapOrAbort(driverapi.KindDescriptorSet, c.SrcSet)
		if abort {
			return StatusValidationError
		}
		dst, abort := d.remapOrAbort(driverapi.KindDescriptorSet, c.DstSet)
		if abort {
			return StatusValidationError
		}
		copies[i] = driverapi.CopyDescriptorSet{SrcSet: src, DstSet: dst}
	}

	d.table.UpdateDescriptorSets(dev, writes, copies)
	return StatusSuccess
}
