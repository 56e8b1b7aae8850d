// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkffi

// #include "proc.h"
import "C"

import (
	"unsafe"

	"github.com/gviegas/vkreplay/driverapi"
)

// CreateCommandPool implements driverapi.Table.
func (t *Table) CreateCommandPool(device driverapi.Handle, info driverapi.CommandPoolCreateInfo) (driverapi.Handle, driverapi.Result) {
	cinfo := C.VkCommandPoolCreateInfo{
		sType:            C.VK_STRUCTURE_TYPE_COMMAND_POOL_CREATE_INFO,
		flags:            C.VK_COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT,
		queueFamilyIndex: C.uint32_t(info.QueueFamilyIndex),
	}
	var pool C.VkCommandPool
	r := C.vkffiCreateCommandPool(C.VkDevice(toPtr(device)), &cinfo, &pool)
	return fromPtr(unsafe.Pointer(pool)), checkResult(r)
}

// DestroyCommandPool implements driverapi.Table.
func (t *Table) DestroyCommandPool(device, pool driverapi.Handle) {
	C.vkffiDestroyCommandPool(C.VkDevice(toPtr(device)), C.VkCommandPool(toPtr(pool)))
}

// AllocateCommandBuffers implements driverapi.Table.
func (t *Table) AllocateCommandBuffers(device driverapi.Handle, info driverapi.CommandBufferAllocateInfo) ([]driverapi.Handle, driverapi.Result) {
	if info.Count == 0 {
		return nil, driverapi.ResultSuccess
	}
	cinfo := C.VkCommandBufferAllocateInfo{
		sType:              C.VK_STRUCTURE_TYPE_COMMAND_BUFFER_ALLOCATE_INFO,
		commandPool:        C.VkCommandPool(toPtr(info.CommandPool)),
		level:              C.VkCommandBufferLevel(info.Level),
		commandBufferCount: C.uint32_t(info.Count),
	}
	bufs := make([]C.VkCommandBuffer, info.Count)
	r := C.vkffiAllocateCommandBuffers(C.VkDevice(toPtr(device)), &cinfo, &bufs[0])
	if checkResult(r) != driverapi.ResultSuccess {
		return nil, checkResult(r)
	}
	out := make([]driverapi.Handle, len(bufs))
	for i, b := range bufs {
		out[i] = fromPtr(unsafe.Pointer(b))
	}
	return out, checkResult(r)
}

// FreeCommandBuffers implements driverapi.Table.
func (t *Table) FreeCommandBuffers(device, pool driverapi.Handle, buffers []driverapi.Handle) {
	if len(buffers) == 0 {
		return
	}
	cbufs := make([]C.VkCommandBuffer, len(buffers))
	for i, h := range buffers {
		cbufs[i] = C.VkCommandBuffer(toPtr(h))
	}
	C.vkffiFreeCommandBuffers(C.VkDevice(toPtr(device)), C.VkCommandPool(toPtr(pool)), C.uint32_t(len(cbufs)), &cbufs[0])
}

// BeginCommandBuffer implements driverapi.Table.
func (t *Table) BeginCommandBuffer(cb driverapi.Handle, inheritance *driverapi.CommandBufferInheritanceInfo) driverapi.Result {
	cinfo := C.VkCommandBufferBeginInfo{sType: C.VK_STRUCTURE_TYPE_COMMAND_BUFFER_BEGIN_INFO}
	if inheritance != nil {
		inh := C.VkCommandBufferInheritanceInfo{
			sType:       C.VK_STRUCTURE_TYPE_COMMAND_BUFFER_INHERITANCE_INFO,
			renderPass:  C.VkRenderPass(toPtr(inheritance.RenderPass)),
			subpass:     C.uint32_t(inheritance.Subpass),
			framebuffer: C.VkFramebuffer(toPtr(inheritance.Framebuffer)),
		}
		cinfo.flags = C.VK_COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT
		cinfo.pInheritanceInfo = &inh
		return checkResult(C.vkffiBeginCommandBuffer(C.VkCommandBuffer(toPtr(cb)), &cinfo))
	}
	return checkResult(C.vkffiBeginCommandBuffer(C.VkCommandBuffer(toPtr(cb)), &cinfo))
}

// EndCommandBuffer implements driverapi.Table.
func (t *Table) EndCommandBuffer(cb driverapi.Handle) driverapi.Result {
	return checkResult(C.vkffiEndCommandBuffer(C.VkCommandBuffer(toPtr(cb))))
}

// ResetCommandBuffer implements driverapi.Table.
func (t *Table) ResetCommandBuffer(cb driverapi.Handle) driverapi.Result {
	return checkResult(C.vkffiResetCommandBuffer(C.VkCommandBuffer(toPtr(cb))))
}

// CmdBindDescriptorSets implements driverapi.Table.
func (t *Table) CmdBindDescriptorSets(cb, layout driverapi.Handle, firstSet uint32, sets []driverapi.Handle, dynamicOffsets []uint32) {
	csets := make([]C.VkDescriptorSet, len(sets))
	for i, h := range sets {
		csets[i] = C.VkDescriptorSet(toPtr(h))
	}
	var ps *C.VkDescriptorSet
	if len(csets) > 0 {
		ps = &csets[0]
	}
	coffs := make([]C.uint32_t, len(dynamicOffsets))
	for i, o := range dynamicOffsets {
		coffs[i] = C.uint32_t(o)
	}
	var po *C.uint32_t
	if len(coffs) > 0 {
		po = &coffs[0]
	}
	C.vkffiCmdBindDescriptorSets(C.VkCommandBuffer(toPtr(cb)), C.VkPipelineLayout(toPtr(layout)), C.uint32_t(firstSet), C.uint32_t(len(csets)), ps, C.uint32_t(len(coffs)), po)
}

// CmdBindVertexBuffers implements driverapi.Table.
func (t *Table) CmdBindVertexBuffers(cb driverapi.Handle, firstBinding uint32, buffers []driverapi.Handle, offsets []uint64) {
	if len(buffers) == 0 {
		return
	}
	cbufs := make([]C.VkBuffer, len(buffers))
	for i, h := range buffers {
		cbufs[i] = C.VkBuffer(toPtr(h))
	}
	coffs := make([]C.VkDeviceSize, len(offsets))
	for i, o := range offsets {
		coffs[i] = C.VkDeviceSize(o)
	}
	C.vkffiCmdBindVertexBuffers(C.VkCommandBuffer(toPtr(cb)), C.uint32_t(firstBinding), C.uint32_t(len(cbufs)), &cbufs[0], &coffs[0])
}

// CmdBindIndexBuffer implements driverapi.Table.
func (t *Table) CmdBindIndexBuffer(cb, buffer driverapi.Handle, offset uint64) {
	C.vkffiCmdBindIndexBuffer(C.VkCommandBuffer(toPtr(cb)), C.VkBuffer(toPtr(buffer)), C.VkDeviceSize(offset))
}

// CmdBindPipeline implements driverapi.Table.
func (t *Table) CmdBindPipeline(cb, pipeline driverapi.Handle, bindPoint uint32) {
	C.vkffiCmdBindPipeline(C.VkCommandBuffer(toPtr(cb)), C.VkPipeline(toPtr(pipeline)), C.uint32_t(bindPoint))
}

// CmdBeginRenderPass implements driverapi.Table.
func (t *Table) CmdBeginRenderPass(cb driverapi.Handle, info driverapi.RenderPassBeginInfo) {
	cinfo := C.VkRenderPassBeginInfo{
		sType:       C.VK_STRUCTURE_TYPE_RENDER_PASS_BEGIN_INFO,
		renderPass:  C.VkRenderPass(toPtr(info.RenderPass)),
		framebuffer: C.VkFramebuffer(toPtr(info.Framebuffer)),
	}
	C.vkffiCmdBeginRenderPass(C.VkCommandBuffer(toPtr(cb)), &cinfo)
}

// CmdEndRenderPass implements driverapi.Table.
func (t *Table) CmdEndRenderPass(cb driverapi.Handle) {
	C.vkffiCmdEndRenderPass(C.VkCommandBuffer(toPtr(cb)))
}

func cBufferBarriers(bs []driverapi.BufferMemoryBarrier) []C.VkBufferMemoryBarrier {
	out := make([]C.VkBufferMemoryBarrier, len(bs))
	for i, b := range bs {
		out[i] = C.VkBufferMemoryBarrier{
			sType:               C.VK_STRUCTURE_TYPE_BUFFER_MEMORY_BARRIER,
			srcQueueFamilyIndex: C.VK_QUEUE_FAMILY_IGNORED,
			dstQueueFamilyIndex: C.VK_QUEUE_FAMILY_IGNORED,
			buffer:              C.VkBuffer(toPtr(b.Buffer)),
			offset:              C.VkDeviceSize(b.Offset),
			size:                C.VkDeviceSize(b.Size),
		}
	}
	return out
}

func cImageBarriers(bs []driverapi.ImageMemoryBarrier) []C.VkImageMemoryBarrier {
	out := make([]C.VkImageMemoryBarrier, len(bs))
	for i, b := range bs {
		out[i] = C.VkImageMemoryBarrier{
			sType:               C.VK_STRUCTURE_TYPE_IMAGE_MEMORY_BARRIER,
			oldLayout:           C.VkImageLayout(b.OldLayout),
			newLayout:           C.VkImageLayout(b.NewLayout),
			srcQueueFamilyIndex: C.VK_QUEUE_FAMILY_IGNORED,
			dstQueueFamilyIndex: C.VK_QUEUE_FAMILY_IGNORED,
			image:               C.VkImage(toPtr(b.Image)),
			subresourceRange: C.VkImageSubresourceRange{
				aspectMask: C.VK_IMAGE_ASPECT_COLOR_BIT,
				levelCount: 1,
				layerCount: 1,
			},
		}
	}
	return out
}

// CmdWaitEvents implements driverapi.Table.
func (t *Table) CmdWaitEvents(cb driverapi.Handle, events []driverapi.Handle, bufferBarriers []driverapi.BufferMemoryBarrier, imageBarriers []driverapi.ImageMemoryBarrier) {
	cevents := make([]C.VkEvent, len(events))
	for i, h := range events {
		cevents[i] = C.VkEvent(toPtr(h))
	}
	var pe *C.VkEvent
	if len(cevents) > 0 {
		pe = &cevents[0]
	}
	cbufs := cBufferBarriers(bufferBarriers)
	var pb *C.VkBufferMemoryBarrier
	if len(cbufs) > 0 {
		pb = &cbufs[0]
	}
	cimgs := cImageBarriers(imageBarriers)
	var pi *C.VkImageMemoryBarrier
	if len(cimgs) > 0 {
		pi = &cimgs[0]
	}
	C.vkffiCmdWaitEvents(C.VkCommandBuffer(toPtr(cb)), C.uint32_t(len(cevents)), pe, C.uint32_t(len(cbufs)), pb, C.uint32_t(len(cimgs)), pi)
}

// CmdPipelineBarrier implements driverapi.Table.
func (t *Table) CmdPipelineBarrier(cb driverapi.Handle, bufferBarriers []driverapi.BufferMemoryBarrier, imageBarriers []driverapi.ImageMemoryBarrier) {
	cbufs := cBufferBarriers(bufferBarriers)
	var pb *C.VkBufferMemoryBarrier
	if len(cbufs) > 0 {
		pb = &cbufs[0]
	}
	cimgs := cImageBarriers(imageBarriers)
	var pi *C.VkImageMemoryBarrier
	if len(cimgs) > 0 {
		pi = &cimgs[0]
	}
	C.vkffiCmdPipelineBarrier(C.VkCommandBuffer(toPtr(cb)), C.uint32_t(len(cbufs)), pb, C.uint32_t(len(cimgs)), pi)
}

// CmdDraw implements driverapi.Table.
func (t *Table) CmdDraw(cb driverapi.Handle, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	C.vkffiCmdDraw(C.VkCommandBuffer(toPtr(cb)), C.uint32_t(vertexCount), C.uint32_t(instanceCount), C.uint32_t(firstVertex), C.uint32_t(firstInstance))
}

// CmdDrawIndexed implements driverapi.Table.
func (t *Table) CmdDrawIndexed(cb driverapi.Handle, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	C.vkffiCmdDrawIndexed(C.VkCommandBuffer(toPtr(cb)), C.uint32_t(indexCount), C.uint32_t(instanceCount), C.uint32_t(firstIndex), C.int32_t(vertexOffset), C.uint32_t(firstInstance))
}

// CmdDispatch implements driverapi.Table.
func (t *Table) CmdDispatch(cb driverapi.Handle, x, y, z uint32) {
	C.vkffiCmdDispatch(C.VkCommandBuffer(toPtr(cb)), C.uint32_t(x), C.uint32_t(y), C.uint32_t(z))
}

// CmdCopyBuffer implements driverapi.Table.
func (t *Table) CmdCopyBuffer(cb, src, dst driverapi.Handle) {
	C.vkffiCmdCopyBuffer(C.VkCommandBuffer(toPtr(cb)), C.VkBuffer(toPtr(src)), C.VkBuffer(toPtr(dst)))
}

// CmdCopyImage implements driverapi.Table.
func (t *Table) CmdCopyImage(cb, src, dst driverapi.Handle) {
	C.vkffiCmdCopyImage(C.VkCommandBuffer(toPtr(cb)), C.VkImage(toPtr(src)), C.VkImage(toPtr(dst)))
}
