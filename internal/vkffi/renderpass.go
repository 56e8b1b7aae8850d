// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkffi

// #include "proc.h"
import "C"

import (
	"unsafe"

	"github.com/gviegas/vkreplay/driverapi"
)

// CreateRenderPass implements driverapi.Table.
func (t *Table) CreateRenderPass(device driverapi.Handle, info driverapi.RenderPassCreateInfo) (driverapi.Handle, driverapi.Result) {
	atts := make([]C.VkAttachmentDescription, len(info.Attachments))
	for i, a := range info.Attachments {
		atts[i] = C.VkAttachmentDescription{
			format:        C.VkFormat(a.Format),
			samples:       C.VK_SAMPLE_COUNT_1_BIT,
			loadOp:        C.VkAttachmentLoadOp(a.LoadOp),
			storeOp:       C.VkAttachmentStoreOp(a.StoreOp),
			stencilLoadOp: C.VK_ATTACHMENT_LOAD_OP_DONT_CARE,
			stencilStoreOp: C.VK_ATTACHMENT_STORE_OP_DONT_CARE,
			initialLayout: C.VK_IMAGE_LAYOUT_UNDEFINED,
			finalLayout:   C.VK_IMAGE_LAYOUT_GENERAL,
		}
	}

	subpasses := make([]C.VkSubpassDescription, len(info.Subpasses))
	var refArrays [][]C.VkAttachmentReference
	var depthRefs []C.VkAttachmentReference
	for i, s := range info.Subpasses {
		refs := make([]C.VkAttachmentReference, len(s.ColorAttachments))
		for j, idx := range s.ColorAttachments {
			refs[j] = C.VkAttachmentReference{attachment: C.uint32_t(idx), layout: C.VK_IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL}
		}
		refArrays = append(refArrays, refs)
		sp := C.VkSubpassDescription{
			pipelineBindPoint: C.VK_PIPELINE_BIND_POINT_GRAPHICS,
			colorAttachmentCount: C.uint32_t(len(refs)),
		}
		if len(refs) > 0 {
			sp.pColorAttachments = &refs[0]
		}
		if s.DepthAttachment >= 0 {
			depthRefs = append(depthRefs, C.VkAttachmentReference{
				attachment: C.uint32_t(s.DepthAttachment),
				layout:     C.VK_IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL,
			})
			sp.pDepthStencilAttachment = &depthRefs[len(depthRefs)-1]
		}
		subpasses[i] = sp
	}

	cinfo := C.VkRenderPassCreateInfo{
		sType:           C.VK_STRUCTURE_TYPE_RENDER_PASS_CREATE_INFO,
		attachmentCount: C.uint32_t(len(atts)),
		subpassCount:    C.uint32_t(len(subpasses)),
	}
	if len(atts) > 0 {
		cinfo.pAttachments = &atts[0]
	}
	if len(subpasses) > 0 {
		cinfo.pSubpasses = &subpasses[0]
	}

	var pass C.VkRenderPass
	r := C.vkffiCreateRenderPass(C.VkDevice(toPtr(device)), &cinfo, &pass)
	return fromPtr(unsafe.Pointer(pass)), checkResult(r)
}

// DestroyRenderPass implements driverapi.Table.
func (t *Table) DestroyRenderPass(device, pass driverapi.Handle) {
	C.vkffiDestroyRenderPass(C.VkDevice(toPtr(device)), C.VkRenderPass(toPtr(pass)))
}

// CreateFramebuffer implements driverapi.Table.
func (t *Table) CreateFramebuffer(device driverapi.Handle, info driverapi.FramebufferCreateInfo) (driverapi.Handle, driverapi.Result) {
	views := make([]C.VkImageView, len(info.Attachments))
	for i, h := range info.Attachments {
		views[i] = C.VkImageView(toPtr(h))
	}
	cinfo := C.VkFramebufferCreateInfo{
		sType:           C.VK_STRUCTURE_TYPE_FRAMEBUFFER_CREATE_INFO,
		renderPass:      C.VkRenderPass(toPtr(info.RenderPass)),
		attachmentCount: C.uint32_t(len(views)),
		width:           C.uint32_t(info.Width),
		height:          C.uint32_t(info.Height),
		layers:          C.uint32_t(info.Layers),
	}
	if len(views) > 0 {
		cinfo.pAttachments = &views[0]
	}
	var fb C.VkFramebuffer
	r := C.vkffiCreateFramebuffer(C.VkDevice(toPtr(device)), &cinfo, &fb)
	return fromPtr(unsafe.Pointer(fb)), checkResult(r)
}

// DestroyFramebuffer implements driverapi.Table.
func (t *Table) DestroyFramebuffer(device, fb driverapi.Handle) {
	C.vkffiDestroyFramebuffer(C.VkDevice(toPtr(device)), C.VkFramebuffer(toPtr(fb)))
}
