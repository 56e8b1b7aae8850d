// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkffi

// #include "proc.h"
import "C"

import (
	"unsafe"

	"github.com/gviegas/vkreplay/driverapi"
)

// CreateSemaphore implements driverapi.Table.
func (t *Table) CreateSemaphore(device driverapi.Handle) (driverapi.Handle, driverapi.Result) {
	var sem C.VkSemaphore
	r := C.vkffiCreateSemaphore(C.VkDevice(toPtr(device)), &sem)
	return fromPtr(unsafe.Pointer(sem)), checkResult(r)
}

// DestroySemaphore implements driverapi.Table.
func (t *Table) DestroySemaphore(device, semaphore driverapi.Handle) {
	C.vkffiDestroySemaphore(C.VkDevice(toPtr(device)), C.VkSemaphore(toPtr(semaphore)))
}

// CreateFence implements driverapi.Table.
func (t *Table) CreateFence(device driverapi.Handle) (driverapi.Handle, driverapi.Result) {
	var fence C.VkFence
	r := C.vkffiCreateFence(C.VkDevice(toPtr(device)), &fence)
	return fromPtr(unsafe.Pointer(fence)), checkResult(r)
}

// DestroyFence implements driverapi.Table.
func (t *Table) DestroyFence(device, fence driverapi.Handle) {
	C.vkffiDestroyFence(C.VkDevice(toPtr(device)), C.VkFence(toPtr(fence)))
}

// WaitForFences implements driverapi.Table.
func (t *Table) WaitForFences(device driverapi.Handle, fences []driverapi.Handle, waitAll bool, timeout uint64) driverapi.Result {
	if len(fences) == 0 {
		return driverapi.ResultSuccess
	}
	cfences := make([]C.VkFence, len(fences))
	for i, h := range fences {
		cfences[i] = C.VkFence(toPtr(h))
	}
	wa := C.VkBool32(0)
	if waitAll {
		wa = 1
	}
	return checkResult(C.vkffiWaitForFences(C.VkDevice(toPtr(device)), C.uint32_t(len(cfences)), &cfences[0], wa, C.uint64_t(timeout)))
}

// ResetFences implements driverapi.Table.
func (t *Table) ResetFences(device driverapi.Handle, fences []driverapi.Handle) driverapi.Result {
	if len(fences) == 0 {
		return driverapi.ResultSuccess
	}
	cfences := make([]C.VkFence, len(fences))
	for i, h := range fences {
		cfences[i] = C.VkFence(toPtr(h))
	}
	return checkResult(C.vkffiResetFences(C.VkDevice(toPtr(device)), C.uint32_t(len(cfences)), &cfences[0]))
}

// CreateEvent implements driverapi.Table.
func (t *Table) CreateEvent(device driverapi.Handle) (driverapi.Handle, driverapi.Result) {
	var event C.VkEvent
	r := C.vkffiCreateEvent(C.VkDevice(toPtr(device)), &event)
	return fromPtr(unsafe.Pointer(event)), checkResult(r)
}

// DestroyEvent implements driverapi.Table.
func (t *Table) DestroyEvent(device, event driverapi.Handle) {
	C.vkffiDestroyEvent(C.VkDevice(toPtr(device)), C.VkEvent(toPtr(event)))
}
