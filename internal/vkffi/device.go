// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkffi

// #include <stdlib.h>
// #include "proc.h"
import "C"

import (
	"unsafe"

	"github.com/gviegas/vkreplay/driverapi"
)

// CreateDevice implements driverapi.Table.
func (t *Table) CreateDevice(physicalDevice driverapi.Handle, info driverapi.DeviceCreateInfo) (driverapi.Handle, driverapi.Result) {
	queues := make([]C.VkDeviceQueueCreateInfo, len(info.QueueCreateInfos))
	var prioPtrs []*C.float
	for i, q := range info.QueueCreateInfos {
		prios := make([]C.float, len(q.QueuePriorities))
		for j, p := range q.QueuePriorities {
			prios[j] = C.float(p)
		}
		var pp *C.float
		if len(prios) > 0 {
			pp = &prios[0]
		}
		prioPtrs = append(prioPtrs, pp)
		queues[i] = C.VkDeviceQueueCreateInfo{
			sType:            C.VK_STRUCTURE_TYPE_DEVICE_QUEUE_CREATE_INFO,
			queueFamilyIndex: C.uint32_t(q.QueueFamilyIndex),
			queueCount:       C.uint32_t(len(q.QueuePriorities)),
			pQueuePriorities: pp,
		}
	}

	layers, freeLayers := cStrings(info.EnabledLayerNames)
	defer freeLayers()
	exts, freeExts := cStrings(info.EnabledExtensionNames)
	defer freeExts()

	cinfo := C.VkDeviceCreateInfo{
		sType:                   C.VK_STRUCTURE_TYPE_DEVICE_CREATE_INFO,
		queueCreateInfoCount:    C.uint32_t(len(queues)),
		enabledLayerCount:       C.uint32_t(len(info.EnabledLayerNames)),
		ppEnabledLayerNames:     layers,
		enabledExtensionCount:   C.uint32_t(len(info.EnabledExtensionNames)),
		ppEnabledExtensionNames: exts,
	}
	if len(queues) > 0 {
		cinfo.pQueueCreateInfos = &queues[0]
	}

	var device C.VkDevice
	r := C.vkffiCreateDevice(C.VkPhysicalDevice(toPtr(physicalDevice)), &cinfo, &device)
	if checkResult(r) != driverapi.ResultSuccess {
		return driverapi.NullHandle, checkResult(r)
	}
	C.vkffiLoadDevice(device)
	return fromPtr(unsafe.Pointer(device)), checkResult(r)
}

// DestroyDevice implements driverapi.Table.
func (t *Table) DestroyDevice(device driverapi.Handle) {
	C.vkffiDestroyDevice(C.VkDevice(toPtr(device)))
}

// GetDeviceQueue implements driverapi.Table.
func (t *Table) GetDeviceQueue(device driverapi.Handle, queueFamilyIndex, queueIndex uint32) driverapi.Handle {
	var queue C.VkQueue
	C.vkffiGetDeviceQueue(C.VkDevice(toPtr(device)), C.uint32_t(queueFamilyIndex), C.uint32_t(queueIndex), &queue)
	return fromPtr(unsafe.Pointer(queue))
}

// DeviceWaitIdle implements driverapi.Table.
func (t *Table) DeviceWaitIdle(device driverapi.Handle) driverapi.Result {
	return checkResult(C.vkffiDeviceWaitIdle(C.VkDevice(toPtr(device))))
}
