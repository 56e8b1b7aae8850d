// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package packet defines the replay engine's view of a recorded
// trace packet. Trace file parsing and packet iteration are outside
// this module's scope; a packet.Source is whatever collaborator
// materializes Packet values from a trace file, a socket, or (in
// tests) a canned slice.
package packet

import "github.com/gviegas/vkreplay/driverapi"

// EntryID identifies the graphics-API entry point a Packet records a
// call to.
type EntryID int

// Entry points the replay handlers understand. This is not an
// exhaustive catalogue of every possible trace entry point — simple
// pass-through entries that need only dispatch-handle remapping are
// represented here only far enough to exercise the common rewrite
// policy; the interesting, structurally-rewriting entries are covered
// in full.
const (
	EntryUnknown EntryID = iota

	EntryCreateInstance
	EntryDestroyInstance
	EntryEnumeratePhysicalDevices
	EntryCreateDevice
	EntryDestroyDevice
	EntryGetDeviceQueue

	EntryAllocateMemory
	EntryFreeMemory
	EntryMapMemory
	EntryUnmapMemory
	EntryFlushMappedMemoryRanges

	EntryCreateBuffer
	EntryDestroyBuffer
	EntryCreateImage
	EntryDestroyImage
	EntryCreateImageView
	EntryDestroyImageView
	EntryCreateBufferView
	EntryDestroyBufferView
	EntryCreateSampler
	EntryDestroySampler

	EntryCreateDescriptorSetLayout
	EntryDestroyDescriptorSetLayout
	EntryCreateDescriptorPool
	EntryDestroyDescriptorPool
	EntryAllocateDescriptorSets
	EntryFreeDescriptorSets
	EntryUpdateDescriptorSets

	EntryCreateShaderModule
	EntryDestroyShaderModule
	EntryCreatePipelineLayout
	EntryDestroyPipelineLayout
	EntryCreatePipelineCache
	EntryDestroyPipelineCache
	EntryGetPipelineCacheData
	EntryCreateGraphicsPipelines
	EntryCreateComputePipelines
	EntryDestroyPipeline

	EntryCreateRenderPass
	EntryDestroyRenderPass
	EntryCreateFramebuffer
	EntryDestroyFramebuffer

	EntryCreateSemaphore
	EntryDestroySemaphore
	EntryCreateFence
	EntryDestroyFence
	EntryWaitForFences
	EntryCreateEvent
	EntryDestroyEvent

	EntryCreateCommandPool
	EntryDestroyCommandPool
	EntryAllocateCommandBuffers
	EntryFreeCommandBuffers
	EntryBeginCommandBuffer
	EntryEndCommandBuffer

	EntryCmdBindDescriptorSets
	EntryCmdBindVertexBuffers
	EntryCmdBeginRenderPass
	EntryCmdWaitEvents
	EntryCmdPipelineBarrier

	EntryQueueSubmit

	EntryCreateSwapchain
	EntryDestroySwapchain
	EntryGetSwapchainImages
	EntryQueuePresent

	EntryGetPhysicalDeviceSurfaceSupport
	EntryGetPhysicalDeviceSurfaceCapabilities
	EntryCreateXcbSurface
	EntryCreateXlibSurface
	EntryCreateWin32Surface
	EntryDestroySurface

	EntryCreateDebugReportCallback
	EntryDestroyDebugReportCallback
)

func (e EntryID) String() string {
	if s, ok := entryNames[e]; ok {
		return s
	}
	return "EntryUnknown"
}

var entryNames = map[EntryID]string{
	EntryCreateInstance:                       "vkCreateInstance",
	EntryDestroyInstance:                      "vkDestroyInstance",
	EntryEnumeratePhysicalDevices:              "vkEnumeratePhysicalDevices",
	EntryCreateDevice:                         "vkCreateDevice",
	EntryDestroyDevice:                        "vkDestroyDevice",
	EntryGetDeviceQueue:                       "vkGetDeviceQueue",
	EntryAllocateMemory:                       "vkAllocateMemory",
	EntryFreeMemory:                           "vkFreeMemory",
	EntryMapMemory:                            "vkMapMemory",
	EntryUnmapMemory:                          "vkUnmapMemory",
	EntryFlushMappedMemoryRanges:               "vkFlushMappedMemoryRanges",
	EntryCreateBuffer:                         "vkCreateBuffer",
	EntryDestroyBuffer:                        "vkDestroyBuffer",
	EntryCreateImage:                          "vkCreateImage",
	EntryDestroyImage:                         "vkDestroyImage",
	EntryCreateImageView:                      "vkCreateImageView",
	EntryDestroyImageView:                     "vkDestroyImageView",
	EntryCreateBufferView:                     "vkCreateBufferView",
	EntryDestroyBufferView:                    "vkDestroyBufferView",
	EntryCreateSampler:                        "vkCreateSampler",
	EntryDestroySampler:                       "vkDestroySampler",
	EntryCreateDescriptorSetLayout:             "vkCreateDescriptorSetLayout",
	EntryDestroyDescriptorSetLayout:            "vkDestroyDescriptorSetLayout",
	EntryCreateDescriptorPool:                  "vkCreateDescriptorPool",
	EntryDestroyDescriptorPool:                 "vkDestroyDescriptorPool",
	EntryAllocateDescriptorSets:                "vkAllocateDescriptorSets",
	EntryFreeDescriptorSets:                    "vkFreeDescriptorSets",
	EntryUpdateDescriptorSets:                  "vkUpdateDescriptorSets",
	EntryCreateShaderModule:                    "vkCreateShaderModule",
	EntryDestroyShaderModule:                   "vkDestroyShaderModule",
	EntryCreatePipelineLayout:                  "vkCreatePipelineLayout",
	EntryDestroyPipelineLayout:                 "vkDestroyPipelineLayout",
	EntryCreatePipelineCache:                   "vkCreatePipelineCache",
	EntryDestroyPipelineCache:                  "vkDestroyPipelineCache",
	EntryGetPipelineCacheData:                  "vkGetPipelineCacheData",
	EntryCreateGraphicsPipelines:                "vkCreateGraphicsPipelines",
	EntryCreateComputePipelines:                 "vkCreateComputePipelines",
	EntryDestroyPipeline:                        "vkDestroyPipeline",
	EntryCreateRenderPass:                       "vkCreateRenderPass",
	EntryDestroyRenderPass:                      "vkDestroyRenderPass",
	EntryCreateFramebuffer:                      "vkCreateFramebuffer",
	EntryDestroyFramebuffer:                     "vkDestroyFramebuffer",
	EntryCreateSemaphore:                        "vkCreateSemaphore",
	EntryDestroySemaphore:                       "vkDestroySemaphore",
	EntryCreateFence:                            "vkCreateFence",
	EntryDestroyFence:                           "vkDestroyFence",
	EntryWaitForFences:                          "vkWaitForFences",
	EntryCreateEvent:                            "vkCreateEvent",
	EntryDestroyEvent:                           "vkDestroyEvent",
	EntryCreateCommandPool:                      "vkCreateCommandPool",
	EntryDestroyCommandPool:                     "vkDestroyCommandPool",
	EntryAllocateCommandBuffers:                 "vkAllocateCommandBuffers",
	EntryFreeCommandBuffers:                     "vkFreeCommandBuffers",
	EntryBeginCommandBuffer:                     "vkBeginCommandBuffer",
	EntryEndCommandBuffer:                       "vkEndCommandBuffer",
	EntryCmdBindDescriptorSets:                  "vkCmdBindDescriptorSets",
	EntryCmdBindVertexBuffers:                   "vkCmdBindVertexBuffers",
	EntryCmdBeginRenderPass:                     "vkCmdBeginRenderPass",
	EntryCmdWaitEvents:                          "vkCmdWaitEvents",
	EntryCmdPipelineBarrier:                     "vkCmdPipelineBarrier",
	EntryQueueSubmit:                            "vkQueueSubmit",
	EntryCreateSwapchain:                        "vkCreateSwapchainKHR",
	EntryDestroySwapchain:                       "vkDestroySwapchainKHR",
	EntryGetSwapchainImages:                     "vkGetSwapchainImagesKHR",
	EntryQueuePresent:                           "vkQueuePresentKHR",
	EntryGetPhysicalDeviceSurfaceSupport:        "vkGetPhysicalDeviceSurfaceSupportKHR",
	EntryGetPhysicalDeviceSurfaceCapabilities:   "vkGetPhysicalDeviceSurfaceCapabilitiesKHR",
	EntryCreateXcbSurface:                       "vkCreateXcbSurfaceKHR",
	EntryCreateXlibSurface:                      "vkCreateXlibSurfaceKHR",
	EntryCreateWin32Surface:                     "vkCreateWin32SurfaceKHR",
	EntryDestroySurface:                         "vkDestroySurfaceKHR",
	EntryCreateDebugReportCallback:               "vkCreateDebugReportCallbackEXT",
	EntryDestroyDebugReportCallback:              "vkDestroyDebugReportCallbackEXT",
}

// Packet is one recorded call. Args holds one of the argument structs
// declared in this package, as a value (e.g. CreateInstanceArgs),
// selected by Entry; RecordedResult is the return code observed at
// record time, used by the Replay Driver's return-mismatch check.
//
// A Packet is treated as immutable by handlers: a handler that must
// substitute live handles does so in copies it allocates itself and
// never writes to the Packet, so the same Packet can be replayed
// again idempotently.
type Packet struct {
	Entry          EntryID
	Args           any
	RecordedResult driverapi.Result
}

// Source yields Packets in recorded order. Trace decoding (the
// mechanism that turns a trace file's byte stream into Packet
// values, including resolving packet-relative buffer offsets into
// real byte slices) is a collaborator outside this module's scope;
// Source is the seam at which that collaborator hands off.
type Source interface {
	// Next returns the next Packet, or ok=false when the stream is
	// exhausted.
	Next() (p Packet, ok bool)
}

// SliceSource is a Source backed by an in-memory slice, used by
// tests and by any embedder that has already materialized a trace.
type SliceSource struct {
	packets []Packet
	pos     int
}

// NewSliceSource creates a SliceSource over packets.
func NewSliceSource(packets []Packet) *SliceSource {
	return &SliceSource{packets: packets}
}

// Next implements Source.
func (s *SliceSource) Next() (Packet, bool) {
	if s.pos >= len(s.packets) {
		return Packet{}, false
	}
	p := s.packets[s.pos]
	s.pos++
	return p, true
}
