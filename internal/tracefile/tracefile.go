// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package tracefile decodes a trace file into packet.Packet values.
// The wire format is a JSON array of entries; it is a convenience
// encoding for this module's own command-line tool, not a
// specification of any recorder's on-disk format.
package tracefile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

// entry is the on-disk shape of one recorded call.
type entry struct {
	Entry          string          `json:"entry"`
	Args           json.RawMessage `json:"args"`
	RecordedResult int32           `json:"recorded_result"`
}

// entryByName maps an EntryID's String() back to the EntryID,
// derived from packet's own naming rather than duplicated by hand.
var entryByName = func() map[string]packet.EntryID {
	m := make(map[string]packet.EntryID)
	for i := packet.EntryID(1); ; i++ {
		name := i.String()
		if name == "EntryUnknown" {
			break
		}
		m[name] = i
	}
	return m
}()

// Decode reads a JSON-encoded trace from r and returns it as a
// packet.Source backed by a packet.SliceSource.
func Decode(r io.Reader) (packet.Source, error) {
	var entries []entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("tracefile: %w", err)
	}
	packets := make([]packet.Packet, len(entries))
	for i, e := range entries {
		id, ok := entryByName[e.Entry]
		if !ok {
			return nil, fmt.Errorf("tracefile: entry %d: unknown entry %q", i, e.Entry)
		}
		args, err := decodeArgs(id, e.Args)
		if err != nil {
			return nil, fmt.Errorf("tracefile: entry %d (%s): %w", i, e.Entry, err)
		}
		packets[i] = packet.Packet{
			Entry:          id,
			Args:           args,
			RecordedResult: driverapi.Result(e.RecordedResult),
		}
	}
	return packet.NewSliceSource(packets), nil
}

func decode[T any](raw json.RawMessage) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	err := json.Unmarshal(raw, &v)
	return v, err
}

// decodeArgs unmarshals raw into the packet.XxxArgs struct that
// corresponds to id, returning it as an any the way packet.Packet.Args
// is stored.
func decodeArgs(id packet.EntryID, raw json.RawMessage) (any, error) {
	switch id {
	case packet.EntryCreateInstance:
		return decode[packet.CreateInstanceArgs](raw)
	case packet.EntryDestroyInstance:
		return decode[packet.DestroyInstanceArgs](raw)
	case packet.EntryEnumeratePhysicalDevices:
		return decode[packet.EnumeratePhysicalDevicesArgs](raw)
	case packet.EntryCreateDevice:
		return decode[packet.CreateDeviceArgs](raw)
	case packet.EntryDestroyDevice:
		return decode[packet.DestroyDeviceArgs](raw)
	case packet.EntryGetDeviceQueue:
		return decode[packet.GetDeviceQueueArgs](raw)

	case packet.EntryAllocateMemory:
		return decode[packet.AllocateMemoryArgs](raw)
	case packet.EntryFreeMemory:
		return decode[packet.FreeMemoryArgs](raw)
	case packet.EntryMapMemory:
		return decode[packet.MapMemoryArgs](raw)
	case packet.EntryUnmapMemory:
		return decode[packet.UnmapMemoryArgs](raw)
	case packet.EntryFlushMappedMemoryRanges:
		return decode[packet.FlushMappedMemoryRangesArgs](raw)

	case packet.EntryCreateBuffer:
		return decode[packet.CreateBufferArgs](raw)
	case packet.EntryDestroyBuffer:
		return decode[packet.DestroyBufferArgs](raw)
	case packet.EntryCreateImage:
		return decode[packet.CreateImageArgs](raw)
	case packet.EntryDestroyImage:
		return decode[packet.DestroyImageArgs](raw)
	case packet.EntryCreateImageView:
		return decode[packet.CreateImageViewArgs](raw)
	case packet.EntryDestroyImageView:
		return decode[packet.DestroyImageViewArgs](raw)
	case packet.EntryCreateBufferView:
		return decode[packet.CreateBufferViewArgs](raw)
	case packet.EntryDestroyBufferView:
		return decode[packet.DestroyBufferViewArgs](raw)
	case packet.EntryCreateSampler:
		return decode[packet.CreateSamplerArgs](raw)
	case packet.EntryDestroySampler:
		return decode[packet.DestroySamplerArgs](raw)

	case packet.EntryCreateDescriptorSetLayout:
		return decode[packet.CreateDescriptorSetLayoutArgs](raw)
	case packet.EntryDestroyDescriptorSetLayout:
		return decode[packet.DestroyDescriptorSetLayoutArgs](raw)
	case packet.EntryCreateDescriptorPool:
		return decode[packet.CreateDescriptorPoolArgs](raw)
	case packet.EntryDestroyDescriptorPool:
		return decode[packet.DestroyDescriptorPoolArgs](raw)
	case packet.EntryAllocateDescriptorSets:
		return decode[packet.AllocateDescriptorSetsArgs](raw)
	case packet.EntryFreeDescriptorSets:
		return decode[packet.FreeDescriptorSetsArgs](raw)
	case packet.EntryUpdateDescriptorSets:
		return decode[packet.UpdateDescriptorSetsArgs](raw)

	case packet.EntryCreateShaderModule:
		return decode[packet.CreateShaderModuleArgs](raw)
	case packet.EntryDestroyShaderModule:
		return decode[packet.DestroyShaderModuleArgs](raw)
	case packet.EntryCreatePipelineLayout:
		return decode[packet.CreatePipelineLayoutArgs](raw)
	case packet.EntryDestroyPipelineLayout:
		return decode[packet.DestroyPipelineLayoutArgs](raw)
	case packet.EntryCreatePipelineCache:
		return decode[packet.CreatePipelineCacheArgs](raw)
	case packet.EntryDestroyPipelineCache:
		return decode[packet.DestroyPipelineCacheArgs](raw)
	case packet.EntryGetPipelineCacheData:
		return decode[packet.GetPipelineCacheDataArgs](raw)
	case packet.EntryCreateGraphicsPipelines:
		return decode[packet.CreateGraphicsPipelinesArgs](raw)
	case packet.EntryCreateComputePipelines:
		return decode[packet.CreateComputePipelinesArgs](raw)
	case packet.EntryDestroyPipeline:
		return decode[packet.DestroyPipelineArgs](raw)

	case packet.EntryCreateRenderPass:
		return decode[packet.CreateRenderPassArgs](raw)
	case packet.EntryDestroyRenderPass:
		return decode[packet.DestroyRenderPassArgs](raw)
	case packet.EntryCreateFramebuffer:
		return decode[packet.CreateFramebufferArgs](raw)
	case packet.EntryDestroyFramebuffer:
		return decode[packet.DestroyFramebufferArgs](raw)

	case packet.EntryCreateSemaphore:
		return decode[packet.CreateSemaphoreArgs](raw)
	case packet.EntryDestroySemaphore:
		return decode[packet.DestroySemaphoreArgs](raw)
	case packet.EntryCreateFence:
		return decode[packet.CreateFenceArgs](raw)
	case packet.EntryDestroyFence:
		return decode[packet.DestroyFenceArgs](raw)
	case packet.EntryWaitForFences:
		return decode[packet.WaitForFencesArgs](raw)
	case packet.EntryCreateEvent:
		return decode[packet.CreateEventArgs](raw)
	case packet.EntryDestroyEvent:
		return decode[packet.DestroyEventArgs](raw)

	case packet.EntryCreateCommandPool:
		return decode[packet.CreateCommandPoolArgs](raw)
	case packet.EntryDestroyCommandPool:
		return decode[packet.DestroyCommandPoolArgs](raw)
	case packet.EntryAllocateCommandBuffers:
		return decode[packet.AllocateCommandBuffersArgs](raw)
	case packet.EntryFreeCommandBuffers:
		return decode[packet.FreeCommandBuffersArgs](raw)
	case packet.EntryBeginCommandBuffer:
		return decode[packet.BeginCommandBufferArgs](raw)
	case packet.EntryEndCommandBuffer:
		return decode[packet.EndCommandBufferArgs](raw)

	case packet.EntryCmdBindDescriptorSets:
		return decode[packet.CmdBindDescriptorSetsArgs](raw)
	case packet.EntryCmdBindVertexBuffers:
		return decode[packet.CmdBindVertexBuffersArgs](raw)
	case packet.EntryCmdBeginRenderPass:
		return decode[packet.CmdBeginRenderPassArgs](raw)
	case packet.EntryCmdWaitEvents:
		return decode[packet.CmdWaitEventsArgs](raw)
	case packet.EntryCmdPipelineBarrier:
		return decode[packet.CmdPipelineBarrierArgs](raw)

	case packet.EntryQueueSubmit:
		return decode[packet.QueueSubmitArgs](raw)

	case packet.EntryCreateSwapchain:
		return decode[packet.CreateSwapchainArgs](raw)
	case packet.EntryDestroySwapchain:
		return decode[packet.DestroySwapchainArgs](raw)
	case packet.EntryGetSwapchainImages:
		return decode[packet.GetSwapchainImagesArgs](raw)
	case packet.EntryQueuePresent:
		return decode[packet.QueuePresentArgs](raw)

	case packet.EntryGetPhysicalDeviceSurfaceSupport:
		return decode[packet.GetPhysicalDeviceSurfaceSupportArgs](raw)
	case packet.EntryGetPhysicalDeviceSurfaceCapabilities:
		return decode[packet.GetPhysicalDeviceSurfaceCapabilitiesArgs](raw)
	case packet.EntryCreateXcbSurface, packet.EntryCreateXlibSurface, packet.EntryCreateWin32Surface:
		return decode[packet.CreateSurfaceArgs](raw)
	case packet.EntryDestroySurface:
		return decode[packet.DestroySurfaceArgs](raw)

	case packet.EntryCreateDebugReportCallback:
		return decode[packet.CreateDebugReportCallbackArgs](raw)
	case packet.EntryDestroyDebugReportCallback:
		return decode[packet.DestroyDebugReportCallbackArgs](raw)
	}
	return nil, fmt.Errorf("unhandled entry id %d", id)
}
