// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkffi

// #include "proc.h"
import "C"

import (
	"unsafe"

	"github.com/gviegas/vkreplay/driverapi"
)

// AllocateMemory implements driverapi.Table.
func (t *Table) AllocateMemory(device driverapi.Handle, info driverapi.MemoryAllocateInfo) (driverapi.Handle, driverapi.Result) {
	cinfo := C.VkMemoryAllocateInfo{
		sType:           C.VK_STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO,
		allocationSize:  C.VkDeviceSize(info.AllocationSize),
		memoryTypeIndex: C.uint32_t(info.MemoryTypeIndex),
	}
	var mem C.VkDeviceMemory
	r := C.vkffiAllocateMemory(C.VkDevice(toPtr(device)), &cinfo, &mem)
	return fromPtr(unsafe.Pointer(mem)), checkResult(r)
}

// FreeMemory implements driverapi.Table.
func (t *Table) FreeMemory(device, memory driverapi.Handle) {
	C.vkffiFreeMemory(C.VkDevice(toPtr(device)), C.VkDeviceMemory(toPtr(memory)))
}

// MapMemory implements driverapi.Table.
func (t *Table) MapMemory(device, memory driverapi.Handle, offset, size uint64) ([]byte, driverapi.Result) {
	var data unsafe.Pointer
	r := C.vkffiMapMemory(C.VkDevice(toPtr(device)), C.VkDeviceMemory(toPtr(memory)), C.VkDeviceSize(offset), C.VkDeviceSize(size), &data)
	if checkResult(r) != driverapi.ResultSuccess {
		return nil, checkResult(r)
	}
	return unsafe.Slice((*byte)(data), size), checkResult(r)
}

// UnmapMemory implements driverapi.Table.
func (t *Table) UnmapMemory(device, memory driverapi.Handle) {
	C.vkffiUnmapMemory(C.VkDevice(toPtr(device)), C.VkDeviceMemory(toPtr(memory)))
}

// FlushMappedMemoryRanges implements driverapi.Table.
func (t *Table) FlushMappedMemoryRanges(device driverapi.Handle, ranges []driverapi.MappedMemoryRange) driverapi.Result {
	if len(ranges) == 0 {
		return driverapi.ResultSuccess
	}
	crs := make([]C.VkMappedMemoryRange, len(ranges))
	for i, r := range ranges {
		crs[i] = C.VkMappedMemoryRange{
			sType:  C.VK_STRUCTURE_TYPE_MAPPED_MEMORY_RANGE,
			memory: C.VkDeviceMemory(toPtr(r.Memory)),
			offset: C.VkDeviceSize(r.Offset),
			size:   C.VkDeviceSize(r.Size),
		}
	}
	return checkResult(C.vkffiFlushMappedMemoryRanges(C.VkDevice(toPtr(device)), C.uint32_t(len(crs)), &crs[0]))
}
