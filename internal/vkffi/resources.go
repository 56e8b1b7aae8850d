// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkffi

// #include "proc.h"
import "C"

import (
	"unsafe"

	"github.com/gviegas/vkreplay/driverapi"
)

// CreateBuffer implements driverapi.Table.
func (t *Table) CreateBuffer(device driverapi.Handle, info driverapi.BufferCreateInfo) (driverapi.Handle, driverapi.Result) {
	cinfo := C.VkBufferCreateInfo{
		sType: C.VK_STRUCTURE_TYPE_BUFFER_CREATE_INFO,
		size:  C.VkDeviceSize(info.Size),
		usage: C.VkBufferUsageFlags(info.Usage),
	}
	var buf C.VkBuffer
	r := C.vkffiCreateBuffer(C.VkDevice(toPtr(device)), &cinfo, &buf)
	return fromPtr(unsafe.Pointer(buf)), checkResult(r)
}

// DestroyBuffer implements driverapi.Table.
func (t *Table) DestroyBuffer(device, buffer driverapi.Handle) {
	C.vkffiDestroyBuffer(C.VkDevice(toPtr(device)), C.VkBuffer(toPtr(buffer)))
}

// CreateImage implements driverapi.Table.
func (t *Table) CreateImage(device driverapi.Handle, info driverapi.ImageCreateInfo) (driverapi.Handle, driverapi.Result) {
	cinfo := C.VkImageCreateInfo{
		sType:     C.VK_STRUCTURE_TYPE_IMAGE_CREATE_INFO,
		imageType: C.VK_IMAGE_TYPE_2D,
		format:    C.VkFormat(info.Format),
		extent: C.VkExtent3D{
			width:  C.uint32_t(info.Width),
			height: C.uint32_t(info.Height),
			depth:  C.uint32_t(info.Depth),
		},
		mipLevels:     1,
		arrayLayers:   1,
		samples:       C.VK_SAMPLE_COUNT_1_BIT,
		tiling:        C.VK_IMAGE_TILING_OPTIMAL,
		usage:         C.VkImageUsageFlags(info.Usage),
		initialLayout: C.VK_IMAGE_LAYOUT_UNDEFINED,
	}
	var img C.VkImage
	r := C.vkffiCreateImage(C.VkDevice(toPtr(device)), &cinfo, &img)
	return fromPtr(unsafe.Pointer(img)), checkResult(r)
}

// DestroyImage implements driverapi.Table.
func (t *Table) DestroyImage(device, image driverapi.Handle) {
	C.vkffiDestroyImage(C.VkDevice(toPtr(device)), C.VkImage(toPtr(image)))
}

// CreateImageView implements driverapi.Table.
func (t *Table) CreateImageView(device driverapi.Handle, info driverapi.ImageViewCreateInfo) (driverapi.Handle, driverapi.Result) {
	cinfo := C.VkImageViewCreateInfo{
		sType:    C.VK_STRUCTURE_TYPE_IMAGE_VIEW_CREATE_INFO,
		image:    C.VkImage(toPtr(info.Image)),
		viewType: C.VK_IMAGE_VIEW_TYPE_2D,
		format:   C.VkFormat(info.Format),
		subresourceRange: C.VkImageSubresourceRange{
			aspectMask: C.VK_IMAGE_ASPECT_COLOR_BIT,
			levelCount: 1,
			layerCount: 1,
		},
	}
	var view C.VkImageView
	r := C.vkffiCreateImageView(C.VkDevice(toPtr(device)), &cinfo, &view)
	return fromPtr(unsafe.Pointer(view)), checkResult(r)
}

// DestroyImageView implements driverapi.Table.
func (t *Table) DestroyImageView(device, view driverapi.Handle) {
	C.vkffiDestroyImageView(C.VkDevice(toPtr(device)), C.VkImageView(toPtr(view)))
}

// CreateBufferView implements driverapi.Table.
func (t *Table) CreateBufferView(device driverapi.Handle, info driverapi.BufferViewCreateInfo) (driverapi.Handle, driverapi.Result) {
	cinfo := C.VkBufferViewCreateInfo{
		sType:  C.VK_STRUCTURE_TYPE_BUFFER_VIEW_CREATE_INFO,
		buffer: C.VkBuffer(toPtr(info.Buffer)),
		format: C.VkFormat(info.Format),
		offset:  C.VkDeviceSize(info.Offset),
		_range:  C.VkDeviceSize(info.Range),
	}
	var view C.VkBufferView
	r := C.vkffiCreateBufferView(C.VkDevice(toPtr(device)), &cinfo, &view)
	return fromPtr(unsafe.Pointer(view)), checkResult(r)
}

// DestroyBufferView implements driverapi.Table.
func (t *Table) DestroyBufferView(device, view driverapi.Handle) {
	C.vkffiDestroyBufferView(C.VkDevice(toPtr(device)), C.VkBufferView(toPtr(view)))
}

// CreateSampler implements driverapi.Table.
func (t *Table) CreateSampler(device driverapi.Handle, info driverapi.SamplerCreateInfo) (driverapi.Handle, driverapi.Result) {
	cinfo := C.VkSamplerCreateInfo{
		sType:     C.VK_STRUCTURE_TYPE_SAMPLER_CREATE_INFO,
		magFilter: C.VkFilter(info.MagFilter),
		minFilter: C.VkFilter(info.MinFilter),
	}
	var sampler C.VkSampler
	r := C.vkffiCreateSampler(C.VkDevice(toPtr(device)), &cinfo, &sampler)
	return fromPtr(unsafe.Pointer(sampler)), checkResult(r)
}

// DestroySampler implements driverapi.Table.
func (t *Table) DestroySampler(device, sampler driverapi.Handle) {
	C.vkffiDestroySampler(C.VkDevice(toPtr(device)), C.VkSampler(toPtr(sampler)))
}
