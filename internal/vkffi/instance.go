// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkffi

// #include <stdlib.h>
// #include "proc.h"
import "C"

import (
	"unsafe"

	"github.com/gviegas/vkreplay/driverapi"
)

// cStrings allocates a NUL-terminated C string per element of ss and
// returns the array alongside a closer that frees every element.
func cStrings(ss []string) (**C.char, func()) {
	if len(ss) == 0 {
		return nil, func() {}
	}
	arr := C.malloc(C.size_t(len(ss)) * C.size_t(unsafe.Sizeof(uintptr(0))))
	p := unsafe.Slice((**C.char)(arr), len(ss))
	for i, s := range ss {
		p[i] = C.CString(s)
	}
	return (**C.char)(arr), func() {
		for i := range ss {
			C.free(unsafe.Pointer(p[i]))
		}
		C.free(arr)
	}
}

// CreateInstance implements driverapi.Table.
func (t *Table) CreateInstance(info driverapi.InstanceCreateInfo) (driverapi.Handle, driverapi.Result) {
	appName := C.CString(info.Application.ApplicationName)
	defer C.free(unsafe.Pointer(appName))
	engName := C.CString(info.Application.EngineName)
	defer C.free(unsafe.Pointer(engName))

	app := C.VkApplicationInfo{
		sType:              C.VK_STRUCTURE_TYPE_APPLICATION_INFO,
		pApplicationName:   appName,
		applicationVersion: C.uint32_t(info.Application.ApplicationVersion),
		pEngineName:        engName,
		engineVersion:      C.uint32_t(info.Application.EngineVersion),
		apiVersion:         C.uint32_t(info.Application.APIVersion),
	}

	layers, freeLayers := cStrings(info.EnabledLayerNames)
	defer freeLayers()
	exts, freeExts := cStrings(info.EnabledExtensionNames)
	defer freeExts()

	cinfo := C.VkInstanceCreateInfo{
		sType:                   C.VK_STRUCTURE_TYPE_INSTANCE_CREATE_INFO,
		pApplicationInfo:        &app,
		enabledLayerCount:       C.uint32_t(len(info.EnabledLayerNames)),
		ppEnabledLayerNames:     layers,
		enabledExtensionCount:   C.uint32_t(len(info.EnabledExtensionNames)),
		ppEnabledExtensionNames: exts,
	}

	var instance C.VkInstance
	r := C.vkffiCreateInstance(&cinfo, &instance)
	if checkResult(r) != driverapi.ResultSuccess {
		return driverapi.NullHandle, checkResult(r)
	}
	C.vkffiLoadInstance(instance)
	return fromPtr(unsafe.Pointer(instance)), checkResult(r)
}

// DestroyInstance implements driverapi.Table.
func (t *Table) DestroyInstance(instance driverapi.Handle) {
	C.vkffiDestroyInstance(C.VkInstance(toPtr(instance)))
}

// EnumeratePhysicalDevices implements driverapi.Table.
func (t *Table) EnumeratePhysicalDevices(instance driverapi.Handle) ([]driverapi.Handle, driverapi.Result) {
	var n C.uint32_t
	r := C.vkffiEnumeratePhysicalDevices(C.VkInstance(toPtr(instance)), &n, nil)
	if checkResult(r) != driverapi.ResultSuccess || n == 0 {
		return nil, checkResult(r)
	}
	pdevs := make([]C.VkPhysicalDevice, n)
	r = C.vkffiEnumeratePhysicalDevices(C.VkInstance(toPtr(instance)), &n, &pdevs[0])
	if checkResult(r) != driverapi.ResultSuccess {
		return nil, checkResult(r)
	}
	out := make([]driverapi.Handle, n)
	for i, p := range pdevs {
		out[i] = fromPtr(unsafe.Pointer(p))
	}
	return out, checkResult(r)
}

// layerNames drains the fixed VkLayerProperties array layout into a
// slice of layer names.
func layerNames(n C.uint32_t, props []C.VkLayerProperties) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = C.GoString(&props[i].layerName[0])
	}
	return out
}

func extNames(n C.uint32_t, props []C.VkExtensionProperties) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = C.GoString(&props[i].extensionName[0])
	}
	return out
}

// EnumerateInstanceLayerProperties implements driverapi.Table.
func (t *Table) EnumerateInstanceLayerProperties() ([]string, driverapi.Result) {
	var n C.uint32_t
	r := C.vkffiEnumerateInstanceLayerProperties(&n, nil)
	if checkResult(r) != driverapi.ResultSuccess || n == 0 {
		return nil, checkResult(r)
	}
	props := make([]C.VkLayerProperties, n)
	r = C.vkffiEnumerateInstanceLayerProperties(&n, &props[0])
	return layerNames(n, props), checkResult(r)
}

// EnumerateDeviceLayerProperties implements driverapi.Table.
func (t *Table) EnumerateDeviceLayerProperties(physicalDevice driverapi.Handle) ([]string, driverapi.Result) {
	pdev := C.VkPhysicalDevice(toPtr(physicalDevice))
	var n C.uint32_t
	r := C.vkffiEnumerateDeviceLayerProperties(pdev, &n, nil)
	if checkResult(r) != driverapi.ResultSuccess || n == 0 {
		return nil, checkResult(r)
	}
	props := make([]C.VkLayerProperties, n)
	r = C.vkffiEnumerateDeviceLayerProperties(pdev, &n, &props[0])
	return layerNames(n, props), checkResult(r)
}

// EnumerateInstanceExtensionProperties implements driverapi.Table.
func (t *Table) EnumerateInstanceExtensionProperties() ([]string, driverapi.Result) {
	var n C.uint32_t
	r := C.vkffiEnumerateInstanceExtensionProperties(&n, nil)
	if checkResult(r) != driverapi.ResultSuccess || n == 0 {
		return nil, checkResult(r)
	}
	props := make([]C.VkExtensionProperties, n)
	r = C.vkffiEnumerateInstanceExtensionProperties(&n, &props[0])
	return extNames(n, props), checkResult(r)
}

// EnumerateDeviceExtensionProperties implements driverapi.Table.
func (t *Table) EnumerateDeviceExtensionProperties(physicalDevice driverapi.Handle) ([]string, driverapi.Result) {
	pdev := C.VkPhysicalDevice(toPtr(physicalDevice))
	var n C.uint32_t
	r := C.vkffiEnumerateDeviceExtensionProperties(pdev, &n, nil)
	if checkResult(r) != driverapi.ResultSuccess || n == 0 {
		return nil, checkResult(r)
	}
	props := make([]C.VkExtensionProperties, n)
	r = C.vkffiEnumerateDeviceExtensionProperties(pdev, &n, &props[0])
	return extNames(n, props), checkResult(r)
}

// GetPhysicalDeviceProperties implements driverapi.Table.
func (t *Table) GetPhysicalDeviceProperties(physicalDevice driverapi.Handle) driverapi.PhysicalDeviceProperties {
	var props C.VkPhysicalDeviceProperties
	C.vkffiGetPhysicalDeviceProperties(C.VkPhysicalDevice(toPtr(physicalDevice)), &props)
	return driverapi.PhysicalDeviceProperties{
		DeviceType: driverapi.PhysicalDeviceType(props.deviceType),
	}
}

// GetPhysicalDeviceQueueFamilyProperties implements driverapi.Table.
func (t *Table) GetPhysicalDeviceQueueFamilyProperties(physicalDevice driverapi.Handle) []driverapi.QueueFamilyProperties {
	pdev := C.VkPhysicalDevice(toPtr(physicalDevice))
	var n C.uint32_t
	C.vkffiGetPhysicalDeviceQueueFamilyProperties(pdev, &n, nil)
	if n == 0 {
		return nil
	}
	fams := make([]C.VkQueueFamilyProperties, n)
	C.vkffiGetPhysicalDeviceQueueFamilyProperties(pdev, &n, &fams[0])
	out := make([]driverapi.QueueFamilyProperties, n)
	for i, f := range fams {
		out[i] = driverapi.QueueFamilyProperties{QueueFlags: driverapi.QueueFlags(f.queueFlags)}
	}
	return out
}
