// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkffi

// #include "proc.h"
import "C"

import (
	"unsafe"

	"github.com/gviegas/vkreplay/display"
	"github.com/gviegas/vkreplay/driverapi"
)

// GetPhysicalDeviceSurfaceSupport implements driverapi.Table.
func (t *Table) GetPhysicalDeviceSurfaceSupport(physicalDevice, surface driverapi.Handle, queueFamilyIndex uint32) (bool, driverapi.Result) {
	var supported C.VkBool32
	r := C.vkffiGetPhysicalDeviceSurfaceSupportKHR(C.VkPhysicalDevice(toPtr(physicalDevice)), C.uint32_t(queueFamilyIndex), C.VkSurfaceKHR(toPtr(surface)), &supported)
	return supported != 0, checkResult(r)
}

// GetPhysicalDeviceSurfaceCapabilities implements driverapi.Table.
func (t *Table) GetPhysicalDeviceSurfaceCapabilities(physicalDevice, surface driverapi.Handle) (width, height uint32, result driverapi.Result) {
	var caps C.VkSurfaceCapabilitiesKHR
	r := C.vkffiGetPhysicalDeviceSurfaceCapabilitiesKHR(C.VkPhysicalDevice(toPtr(physicalDevice)), C.VkSurfaceKHR(toPtr(surface)), &caps)
	return uint32(caps.currentExtent.width), uint32(caps.currentExtent.height), checkResult(r)
}

// GetPhysicalDeviceSurfaceFormats implements driverapi.Table.
func (t *Table) GetPhysicalDeviceSurfaceFormats(physicalDevice, surface driverapi.Handle) ([]uint32, driverapi.Result) {
	pdev := C.VkPhysicalDevice(toPtr(physicalDevice))
	surf := C.VkSurfaceKHR(toPtr(surface))
	var n C.uint32_t
	r := C.vkffiGetPhysicalDeviceSurfaceFormatsKHR(pdev, surf, &n, nil)
	if checkResult(r) != driverapi.ResultSuccess || n == 0 {
		return nil, checkResult(r)
	}
	formats := make([]C.VkSurfaceFormatKHR, n)
	r = C.vkffiGetPhysicalDeviceSurfaceFormatsKHR(pdev, surf, &n, &formats[0])
	out := make([]uint32, n)
	for i, f := range formats {
		out[i] = uint32(f.format)
	}
	return out, checkResult(r)
}

// GetPhysicalDeviceSurfacePresentModes implements driverapi.Table.
func (t *Table) GetPhysicalDeviceSurfacePresentModes(physicalDevice, surface driverapi.Handle) ([]uint32, driverapi.Result) {
	pdev := C.VkPhysicalDevice(toPtr(physicalDevice))
	surf := C.VkSurfaceKHR(toPtr(surface))
	var n C.uint32_t
	r := C.vkffiGetPhysicalDeviceSurfacePresentModesKHR(pdev, surf, &n, nil)
	if checkResult(r) != driverapi.ResultSuccess || n == 0 {
		return nil, checkResult(r)
	}
	modes := make([]C.VkPresentModeKHR, n)
	r = C.vkffiGetPhysicalDeviceSurfacePresentModesKHR(pdev, surf, &n, &modes[0])
	out := make([]uint32, n)
	for i, m := range modes {
		out[i] = uint32(m)
	}
	return out, checkResult(r)
}

// DestroySurface implements driverapi.Table.
func (t *Table) DestroySurface(instance, surface driverapi.Handle) {
	C.vkffiDestroySurfaceKHR(C.VkInstance(toPtr(instance)), C.VkSurfaceKHR(toPtr(surface)))
}

// CreateSurface implements driverapi.Table. descriptor is whatever
// display.Adapter.Descriptor returned, one of display.XcbDescriptor,
// display.XlibDescriptor or display.Win32Descriptor.
func (t *Table) CreateSurface(instance driverapi.Handle, descriptor any) (driverapi.Handle, driverapi.Result) {
	var surf C.VkSurfaceKHR
	var r C.VkResult
	switch d := descriptor.(type) {
	case display.XcbDescriptor:
		cinfo := C.VkXcbSurfaceCreateInfoKHR{
			sType:      C.VK_STRUCTURE_TYPE_XCB_SURFACE_CREATE_INFO_KHR,
			connection: (*C.xcb_connection_t)(unsafe.Pointer(d.Connection)),
			window:     C.xcb_window_t(d.Window),
		}
		r = C.vkffiCreateXcbSurfaceKHR(C.VkInstance(toPtr(instance)), &cinfo, &surf)
	case display.XlibDescriptor:
		cinfo := C.VkXlibSurfaceCreateInfoKHR{
			sType:  C.VK_STRUCTURE_TYPE_XLIB_SURFACE_CREATE_INFO_KHR,
			dpy:    (*C.Display)(unsafe.Pointer(d.Display)),
			window: C.Window(d.Window),
		}
		r = C.vkffiCreateXlibSurfaceKHR(C.VkInstance(toPtr(instance)), &cinfo, &surf)
	case display.Win32Descriptor:
		cinfo := C.VkWin32SurfaceCreateInfoKHR{
			sType:     C.VK_STRUCTURE_TYPE_WIN32_SURFACE_CREATE_INFO_KHR,
			hinstance: C.HINSTANCE(unsafe.Pointer(d.Hinstance)),
			hwnd:      C.HWND(unsafe.Pointer(d.Hwnd)),
		}
		r = C.vkffiCreateWin32SurfaceKHR(C.VkInstance(toPtr(instance)), &cinfo, &surf)
	default:
		return driverapi.NullHandle, driverapi.ResultErrorInitFailed
	}
	return fromPtr(unsafe.Pointer(surf)), checkResult(r)
}
