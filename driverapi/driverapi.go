// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package driverapi defines the interface through which replay
// handlers invoke the native graphics driver.
//
// The interface is deliberately expressed in Go-native argument
// structs rather than raw C layouts: the packet-replay engine only
// ever needs to read and rewrite the handful of fields a handler
// cares about (embedded handles, counts, byte ranges), not reproduce
// a C ABI in Go. A concrete Table is free to translate these structs
// into whatever the underlying driver expects.
package driverapi

import "errors"

// Handle is an opaque 64-bit value produced by the driver. The zero
// value is the reserved null handle.
type Handle uint64

// NullHandle is the reserved null handle. Every Table method treats
// NullHandle as "no object" rather than an error.
const NullHandle Handle = 0

// Result is the status a driver call reports.
type Result int32

// Driver-reported results.
//
// The numeric values deliberately mirror VkResult so a Table
// implementation backed by a real driver can pass them through
// without translation.
const (
	ResultSuccess       Result = 0
	ResultNotReady      Result = 1
	ResultTimeout        Result = 2
	ResultEventSet       Result = 3
	ResultEventReset     Result = 4
	ResultIncomplete     Result = 5
	ResultErrorUnknown         Result = -1
	ResultErrorOutOfHostMemory Result = -2
	ResultErrorOutOfDeviceMemory Result = -3
	ResultErrorInitFailed      Result = -4
	ResultErrorDeviceLost      Result = -5
	ResultErrorLayerNotPresent Result = -6
	ResultErrorExtNotPresent   Result = -7
	ResultErrorFeatureNotPresent Result = -8
	ResultErrorIncompatibleDriver Result = -9
	ResultErrorTooManyObjects  Result = -10
	ResultErrorFormatNotSupported Result = -11
	ResultErrorSurfaceLost     Result = -1000
	ResultErrorNativeWindowInUse Result = -1001
	ResultErrorOutOfDate       Result = -1004
)

// Succeeded reports whether r represents forward progress rather than
// an error (VK_SUCCESS or VK_NOT_READY, matching the source's
// handle_replay_errors leniency).
func (r Result) Succeeded() bool {
	return r == ResultSuccess || r == ResultNotReady
}

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "SUCCESS"
	case ResultNotReady:
		return "NOT_READY"
	case ResultIncomplete:
		return "INCOMPLETE"
	case ResultErrorOutOfDate:
		return "ERROR_OUT_OF_DATE"
	case ResultErrorSurfaceLost:
		return "ERROR_SURFACE_LOST"
	}
	if r < 0 {
		return "ERROR"
	}
	return "UNKNOWN"
}

// ErrNotOpened reports use of a driver table that has not been
// opened. No Table method returns it: Table methods report failures
// as Result values.
var ErrNotOpened = errors.New("driverapi: table not opened")

// Kind identifies the object kind a Handle belongs to. It exists so
// that callers of the Handle Map never have to guess which
// kind-specific table a given recorded value was inserted under.
type Kind int

// Object kinds, one per Handle Map table.
const (
	KindInstance Kind = iota
	KindPhysicalDevice
	KindDevice
	KindQueue
	KindCommandBuffer
	KindBuffer
	KindImage
	KindImageView
	KindBufferView
	KindSampler
	KindDescriptorSetLayout
	KindDescriptorPool
	KindDescriptorSet
	KindPipelineLayout
	KindPipelineCache
	KindPipeline
	// KindShaderModule gets its own table rather than being folded
	// into KindPipeline: pipeline creation must remap a stage's
	// shader-module handle the same way it remaps layout/render-pass/
	// base-pipeline handles.
	KindShaderModule
	KindRenderPass
	KindFramebuffer
	KindSemaphore
	KindFence
	KindEvent
	KindCommandPool
	KindDeviceMemory
	KindSwapchain
	KindSurface
	KindDebugCallback

	// KindCount is the number of distinct kinds above. It is used to
	// size fixed-length arrays of per-kind maps and must be kept last.
	KindCount
)

func (k Kind) String() string {
	names := [...]string{
		"Instance", "PhysicalDevice", "Device", "Queue", "CommandBuffer",
		"Buffer", "Image", "ImageView", "BufferView", "Sampler",
		"DescriptorSetLayout", "DescriptorPool", "DescriptorSet",
		"PipelineLayout", "PipelineCache", "Pipeline", "ShaderModule", "RenderPass",
		"Framebuffer", "Semaphore", "Fence", "Event", "CommandPool",
		"DeviceMemory", "Swapchain", "Surface", "DebugCallback",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "Kind(?)"
	}
	return names[k]
}
