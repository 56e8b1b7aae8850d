// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkffi

// #include "proc.h"
import "C"

import (
	"github.com/gviegas/vkreplay/driverapi"
)

// QueueSubmit implements driverapi.Table.
func (t *Table) QueueSubmit(queue driverapi.Handle, submits []driverapi.SubmitInfo, fence driverapi.Handle) driverapi.Result {
	if len(submits) == 0 {
		return checkResult(C.vkffiQueueSubmit(C.VkQueue(toPtr(queue)), 0, nil, C.VkFence(toPtr(fence))))
	}
	csubmits := make([]C.VkSubmitInfo, len(submits))
	for i, s := range submits {
		waits := make([]C.VkSemaphore, len(s.WaitSemaphores))
		stages := make([]C.VkPipelineStageFlags, len(s.WaitSemaphores))
		for j, h := range s.WaitSemaphores {
			waits[j] = C.VkSemaphore(toPtr(h))
			stages[j] = C.VK_PIPELINE_STAGE_ALL_COMMANDS_BIT
		}
		cbufs := make([]C.VkCommandBuffer, len(s.CommandBuffers))
		for j, h := range s.CommandBuffers {
			cbufs[j] = C.VkCommandBuffer(toPtr(h))
		}
		signals := make([]C.VkSemaphore, len(s.SignalSemaphores))
		for j, h := range s.SignalSemaphores {
			signals[j] = C.VkSemaphore(toPtr(h))
		}
		cs := C.VkSubmitInfo{
			sType:                C.VK_STRUCTURE_TYPE_SUBMIT_INFO,
			waitSemaphoreCount:   C.uint32_t(len(waits)),
			commandBufferCount:   C.uint32_t(len(cbufs)),
			signalSemaphoreCount: C.uint32_t(len(signals)),
		}
		if len(waits) > 0 {
			cs.pWaitSemaphores = &waits[0]
			cs.pWaitDstStageMask = &stages[0]
		}
		if len(cbufs) > 0 {
			cs.pCommandBuffers = &cbufs[0]
		}
		if len(signals) > 0 {
			cs.pSignalSemaphores = &signals[0]
		}
		csubmits[i] = cs
	}
	return checkResult(C.vkffiQueueSubmit(C.VkQueue(toPtr(queue)), C.uint32_t(len(csubmits)), &csubmits[0], C.VkFence(toPtr(fence))))
}

// QueueWaitIdle implements driverapi.Table.
func (t *Table) QueueWaitIdle(queue driverapi.Handle) driverapi.Result {
	return checkResult(C.vkffiQueueWaitIdle(C.VkQueue(toPtr(queue))))
}
