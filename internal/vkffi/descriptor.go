// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkffi

// #include "proc.h"
import "C"

import (
	"unsafe"

	"github.com/gviegas/vkreplay/driverapi"
)

func descType(d driverapi.DescriptorType) C.VkDescriptorType {
	switch d {
	case driverapi.DescriptorSampler:
		return C.VK_DESCRIPTOR_TYPE_SAMPLER
	case driverapi.DescriptorCombinedImageSampler:
		return C.VK_DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER
	case driverapi.DescriptorSampledImage:
		return C.VK_DESCRIPTOR_TYPE_SAMPLED_IMAGE
	case driverapi.DescriptorStorageImage:
		return C.VK_DESCRIPTOR_TYPE_STORAGE_IMAGE
	case driverapi.DescriptorUniformTexelBuffer:
		return C.VK_DESCRIPTOR_TYPE_UNIFORM_TEXEL_BUFFER
	case driverapi.DescriptorStorageTexelBuffer:
		return C.VK_DESCRIPTOR_TYPE_STORAGE_TEXEL_BUFFER
	case driverapi.DescriptorUniformBuffer:
		return C.VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER
	case driverapi.DescriptorStorageBuffer:
		return C.VK_DESCRIPTOR_TYPE_STORAGE_BUFFER
	case driverapi.DescriptorUniformBufferDynamic:
		return C.VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC
	case driverapi.DescriptorStorageBufferDynamic:
		return C.VK_DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC
	case driverapi.DescriptorInputAttachment:
		return C.VK_DESCRIPTOR_TYPE_INPUT_ATTACHMENT
	}
	return C.VK_DESCRIPTOR_TYPE_SAMPLER
}

// CreateDescriptorSetLayout implements driverapi.Table.
func (t *Table) CreateDescriptorSetLayout(device driverapi.Handle, info driverapi.DescriptorSetLayoutCreateInfo) (driverapi.Handle, driverapi.Result) {
	bindings := make([]C.VkDescriptorSetLayoutBinding, len(info.Bindings))
	var samplerArrays [][]C.VkSampler
	for i, b := range info.Bindings {
		var samplers *C.VkSampler
		if len(b.ImmutableSamplers) > 0 {
			arr := make([]C.VkSampler, len(b.ImmutableSamplers))
			for j, h := range b.ImmutableSamplers {
				arr[j] = C.VkSampler(toPtr(h))
			}
			samplerArrays = append(samplerArrays, arr)
			samplers = &arr[0]
		}
		bindings[i] = C.VkDescriptorSetLayoutBinding{
			binding:         C.uint32_t(b.Binding),
			descriptorType:  descType(b.Type),
			descriptorCount: C.uint32_t(b.Count),
			stageFlags:      C.VK_SHADER_STAGE_ALL,
			pImmutableSamplers: samplers,
		}
	}
	cinfo := C.VkDescriptorSetLayoutCreateInfo{sType: C.VK_STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_CREATE_INFO, bindingCount: C.uint32_t(len(bindings))}
	if len(bindings) > 0 {
		cinfo.pBindings = &bindings[0]
	}
	var layout C.VkDescriptorSetLayout
	r := C.vkffiCreateDescriptorSetLayout(C.VkDevice(toPtr(device)), &cinfo, &layout)
	return fromPtr(unsafe.Pointer(layout)), checkResult(r)
}

// DestroyDescriptorSetLayout implements driverapi.Table.
func (t *Table) DestroyDescriptorSetLayout(device, layout driverapi.Handle) {
	C.vkffiDestroyDescriptorSetLayout(C.VkDevice(toPtr(device)), C.VkDescriptorSetLayout(toPtr(layout)))
}

// CreateDescriptorPool implements driverapi.Table.
func (t *Table) CreateDescriptorPool(device driverapi.Handle, info driverapi.DescriptorPoolCreateInfo) (driverapi.Handle, driverapi.Result) {
	sizes := make([]C.VkDescriptorPoolSize, len(info.PoolSizes))
	for i, s := range info.PoolSizes {
		sizes[i] = C.VkDescriptorPoolSize{_type: descType(s.Type), descriptorCount: C.uint32_t(s.Count)}
	}
	cinfo := C.VkDescriptorPoolCreateInfo{
		sType:         C.VK_STRUCTURE_TYPE_DESCRIPTOR_POOL_CREATE_INFO,
		flags:         C.VK_DESCRIPTOR_POOL_CREATE_FREE_DESCRIPTOR_SET_BIT,
		maxSets:       C.uint32_t(info.MaxSets),
		poolSizeCount: C.uint32_t(len(sizes)),
	}
	if len(sizes) > 0 {
		cinfo.pPoolSizes = &sizes[0]
	}
	var pool C.VkDescriptorPool
	r := C.vkffiCreateDescriptorPool(C.VkDevice(toPtr(device)), &cinfo, &pool)
	return fromPtr(unsafe.Pointer(pool)), checkResult(r)
}

// DestroyDescriptorPool implements driverapi.Table.
func (t *Table) DestroyDescriptorPool(device, pool driverapi.Handle) {
	C.vkffiDestroyDescriptorPool(C.VkDevice(toPtr(device)), C.VkDescriptorPool(toPtr(pool)))
}

// AllocateDescriptorSets implements driverapi.Table.
func (t *Table) AllocateDescriptorSets(device driverapi.Handle, info driverapi.DescriptorSetAllocateInfo) ([]driverapi.Handle, driverapi.Result) {
	if len(info.Layouts) == 0 {
		return nil, driverapi.ResultSuccess
	}
	layouts := make([]C.VkDescriptorSetLayout, len(info.Layouts))
	for i, h := range info.Layouts {
		layouts[i] = C.VkDescriptorSetLayout(toPtr(h))
	}
	cinfo := C.VkDescriptorSetAllocateInfo{
		sType:              C.VK_STRUCTURE_TYPE_DESCRIPTOR_SET_ALLOCATE_INFO,
		descriptorPool:     C.VkDescriptorPool(toPtr(info.Pool)),
		descriptorSetCount: C.uint32_t(len(layouts)),
		pSetLayouts:        &layouts[0],
	}
	sets := make([]C.VkDescriptorSet, len(layouts))
	r := C.vkffiAllocateDescriptorSets(C.VkDevice(toPtr(device)), &cinfo, &sets[0])
	if checkResult(r) != driverapi.ResultSuccess {
		return nil, checkResult(r)
	}
	out := make([]driverapi.Handle, len(sets))
	for i, s := range sets {
		out[i] = fromPtr(unsafe.Pointer(s))
	}
	return out, checkResult(r)
}

// FreeDescriptorSets implements driverapi.Table.
func (t *Table) FreeDescriptorSets(device, pool driverapi.Handle, sets []driverapi.Handle) driverapi.Result {
	if len(sets) == 0 {
		return driverapi.ResultSuccess
	}
	csets := make([]C.VkDescriptorSet, len(sets))
	for i, h := range sets {
		csets[i] = C.VkDescriptorSet(toPtr(h))
	}
	return checkResult(C.vkffiFreeDescriptorSets(C.VkDevice(toPtr(device)), C.VkDescriptorPool(toPtr(pool)), C.uint32_t(len(csets)), &csets[0]))
}

// UpdateDescriptorSets implements driverapi.Table.
func (t *Table) UpdateDescriptorSets(device driverapi.Handle, writes []driverapi.WriteDescriptorSet, copies []driverapi.CopyDescriptorSet) {
	cwrites := make([]C.VkWriteDescriptorSet, len(writes))
	for i, w := range writes {
		cw := C.VkWriteDescriptorSet{
			sType:           C.VK_STRUCTURE_TYPE_WRITE_DESCRIPTOR_SET,
			dstSet:          C.VkDescriptorSet(toPtr(w.DstSet)),
			dstBinding:      C.uint32_t(w.DstBinding),
			dstArrayElement: C.uint32_t(w.DstArrayElement),
			descriptorType:  descType(w.Type),
		}
		switch {
		case len(w.ImageInfo) > 0:
			imgs := make([]C.VkDescriptorImageInfo, len(w.ImageInfo))
			for j, ii := range w.ImageInfo {
				imgs[j] = C.VkDescriptorImageInfo{
					sampler:     C.VkSampler(toPtr(ii.Sampler)),
					imageView:   C.VkImageView(toPtr(ii.ImageView)),
					imageLayout: C.VK_IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL,
				}
			}
			cw.descriptorCount = C.uint32_t(len(imgs))
			cw.pImageInfo = &imgs[0]
		case len(w.BufferInfo) > 0:
			bufs := make([]C.VkDescriptorBufferInfo, len(w.BufferInfo))
			for j, bi := range w.BufferInfo {
				bufs[j] = C.VkDescriptorBufferInfo{
					buffer: C.VkBuffer(toPtr(bi.Buffer)),
					offset: C.VkDeviceSize(bi.Offset),
					_range: C.VkDeviceSize(bi.Range),
				}
			}
			cw.descriptorCount = C.uint32_t(len(bufs))
			cw.pBufferInfo = &bufs[0]
		case len(w.TexelBufferView) > 0:
			views := make([]C.VkBufferView, len(w.TexelBufferView))
			for j, h := range w.TexelBufferView {
				views[j] = C.VkBufferView(toPtr(h))
			}
			cw.descriptorCount = C.uint32_t(len(views))
			cw.pTexelBufferView = &views[0]
		}
		cwrites[i] = cw
	}
	ccopies := make([]C.VkCopyDescriptorSet, len(copies))
	for i, c := range copies {
		ccopies[i] = C.VkCopyDescriptorSet{
			sType:  C.VK_STRUCTURE_TYPE_COPY_DESCRIPTOR_SET,
			srcSet: C.VkDescriptorSet(toPtr(c.SrcSet)),
			dstSet: C.VkDescriptorSet(toPtr(c.DstSet)),
		}
	}
	var pw *C.VkWriteDescriptorSet
	if len(cwrites) > 0 {
		pw = &cwrites[0]
	}
	var pc *C.VkCopyDescriptorSet
	if len(ccopies) > 0 {
		pc = &ccopies[0]
	}
	C.vkffiUpdateDescriptorSets(C.VkDevice(toPtr(device)), C.uint32_t(len(cwrites)), pw, C.uint32_t(len(ccopies)), pc)
}
