// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkffi

// #include "proc.h"
import "C"

import (
	"unsafe"

	"github.com/gviegas/vkreplay/driverapi"
)

// CreateSwapchain implements driverapi.Table.
func (t *Table) CreateSwapchain(device driverapi.Handle, info driverapi.SwapchainCreateInfo) (driverapi.Handle, driverapi.Result) {
	cinfo := C.VkSwapchainCreateInfoKHR{
		sType:           C.VK_STRUCTURE_TYPE_SWAPCHAIN_CREATE_INFO_KHR,
		surface:         C.VkSurfaceKHR(toPtr(info.Surface)),
		minImageCount:   C.uint32_t(info.MinImageCount),
		imageFormat:     C.VkFormat(info.ImageFormat),
		imageColorSpace: C.VK_COLOR_SPACE_SRGB_NONLINEAR_KHR,
		imageExtent:     C.VkExtent2D{width: C.uint32_t(info.Width), height: C.uint32_t(info.Height)},
		imageArrayLayers: 1,
		imageUsage:      C.VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT,
		preTransform:    C.VK_SURFACE_TRANSFORM_IDENTITY_BIT_KHR,
		compositeAlpha:  C.VK_COMPOSITE_ALPHA_OPAQUE_BIT_KHR,
		presentMode:     C.VK_PRESENT_MODE_FIFO_KHR,
		clipped:         1,
		oldSwapchain:    C.VkSwapchainKHR(toPtr(info.OldSwapchain)),
	}
	var sc C.VkSwapchainKHR
	r := C.vkffiCreateSwapchainKHR(C.VkDevice(toPtr(device)), &cinfo, &sc)
	return fromPtr(unsafe.Pointer(sc)), checkResult(r)
}

// DestroySwapchain implements driverapi.Table.
func (t *Table) DestroySwapchain(device, swapchain driverapi.Handle) {
	C.vkffiDestroySwapchainKHR(C.VkDevice(toPtr(device)), C.VkSwapchainKHR(toPtr(swapchain)))
}

// GetSwapchainImages implements driverapi.Table.
func (t *Table) GetSwapchainImages(device, swapchain driverapi.Handle) ([]driverapi.Handle, driverapi.Result) {
	var n C.uint32_t
	r := C.vkffiGetSwapchainImagesKHR(C.VkDevice(toPtr(device)), C.VkSwapchainKHR(toPtr(swapchain)), &n, nil)
	if checkResult(r) != driverapi.ResultSuccess || n == 0 {
		return nil, checkResult(r)
	}
	imgs := make([]C.VkImage, n)
	r = C.vkffiGetSwapchainImagesKHR(C.VkDevice(toPtr(device)), C.VkSwapchainKHR(toPtr(swapchain)), &n, &imgs[0])
	out := make([]driverapi.Handle, n)
	for i, img := range imgs {
		out[i] = fromPtr(unsafe.Pointer(img))
	}
	return out, checkResult(r)
}

// AcquireNextImage implements driverapi.Table.
func (t *Table) AcquireNextImage(device, swapchain driverapi.Handle, timeout uint64, semaphore, fence driverapi.Handle) (uint32, driverapi.Result) {
	var idx C.uint32_t
	r := C.vkffiAcquireNextImageKHR(C.VkDevice(toPtr(device)), C.VkSwapchainKHR(toPtr(swapchain)), C.uint64_t(timeout), C.VkSemaphore(toPtr(semaphore)), C.VkFence(toPtr(fence)), &idx)
	return uint32(idx), checkResult(r)
}

// QueuePresent implements driverapi.Table.
func (t *Table) QueuePresent(queue driverapi.Handle, info driverapi.PresentInfo) ([]driverapi.Result, driverapi.Result) {
	waits := make([]C.VkSemaphore, len(info.WaitSemaphores))
	for i, h := range info.WaitSemaphores {
		waits[i] = C.VkSemaphore(toPtr(h))
	}
	scs := make([]C.VkSwapchainKHR, len(info.Swapchains))
	for i, h := range info.Swapchains {
		scs[i] = C.VkSwapchainKHR(toPtr(h))
	}
	idxs := make([]C.uint32_t, len(info.ImageIndices))
	for i, v := range info.ImageIndices {
		idxs[i] = C.uint32_t(v)
	}
	cinfo := C.VkPresentInfoKHR{
		sType:              C.VK_STRUCTURE_TYPE_PRESENT_INFO_KHR,
		waitSemaphoreCount: C.uint32_t(len(waits)),
		swapchainCount:     C.uint32_t(len(scs)),
	}
	if len(waits) > 0 {
		cinfo.pWaitSemaphores = &waits[0]
	}
	if len(scs) > 0 {
		cinfo.pSwapchains = &scs[0]
		cinfo.pImageIndices = &idxs[0]
	}
	results := make([]C.VkResult, len(scs))
	var pr *C.VkResult
	if len(results) > 0 {
		pr = &results[0]
	}
	r := C.vkffiQueuePresentKHR(C.VkQueue(toPtr(queue)), &cinfo, pr)
	out := make([]driverapi.Result, len(results))
	for i, cr := range results {
		out[i] = checkResult(cr)
	}
	return out, checkResult(r)
}
