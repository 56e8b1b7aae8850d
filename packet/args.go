// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package packet

import "github.com/gviegas/vkreplay/driverapi"

// Each Args type names the dispatch object the handler must remap
// first (step 1 of the common rewrite policy), the recorded
// composite arguments the handler walks (step 2), and the recorded
// output handle slot(s) the handler fills in on success (step 4).
// Handlers do not write to these structs; any field a handler
// rewrites is rewritten in a copy the handler allocates.

type CreateInstanceArgs struct {
	Info            driverapi.InstanceCreateInfo
	RecordedInstance driverapi.Handle // output slot
}

type DestroyInstanceArgs struct {
	Instance driverapi.Handle
}

type EnumeratePhysicalDevicesArgs struct {
	Instance          driverapi.Handle
	RecordedDevices   []driverapi.Handle // output slots, index-correlated
}

type CreateDeviceArgs struct {
	PhysicalDevice driverapi.Handle
	Info           driverapi.DeviceCreateInfo
	RecordedDevice driverapi.Handle
}

type DestroyDeviceArgs struct {
	Device driverapi.Handle
}

type GetDeviceQueueArgs struct {
	Device           driverapi.Handle
	QueueFamilyIndex uint32
	QueueIndex       uint32
	RecordedQueue    driverapi.Handle
}

type AllocateMemoryArgs struct {
	Device         driverapi.Handle
	Info           driverapi.MemoryAllocateInfo
	RecordedMemory driverapi.Handle
}

type FreeMemoryArgs struct {
	Device driverapi.Handle
	Memory driverapi.Handle
}

type MapMemoryArgs struct {
	Device driverapi.Handle
	Memory driverapi.Handle
	Offset uint64
	Size   uint64
}

type UnmapMemoryArgs struct {
	Device driverapi.Handle
	Memory driverapi.Handle
	// Data holds the packet-recorded bytes written while mapped.
	Data []byte
}

type FlushMappedMemoryRangesArgs struct {
	Device driverapi.Handle
	Ranges []driverapi.MappedMemoryRange
	// Data[i] is the packet-recorded bytes for Ranges[i].
	Data [][]byte
}

type CreateBufferArgs struct {
	Device         driverapi.Handle
	Info           driverapi.BufferCreateInfo
	RecordedBuffer driverapi.Handle
}

type DestroyBufferArgs struct {
	Device driverapi.Handle
	Buffer driverapi.Handle
}

type CreateImageArgs struct {
	Device        driverapi.Handle
	Info          driverapi.ImageCreateInfo
	RecordedImage driverapi.Handle
}

type DestroyImageArgs struct {
	Device driverapi.Handle
	Image  driverapi.Handle
}

type CreateImageViewArgs struct {
	Device       driverapi.Handle
	Info         driverapi.ImageViewCreateInfo
	RecordedView driverapi.Handle
}

type DestroyImageViewArgs struct {
	Device driverapi.Handle
	View   driverapi.Handle
}

type CreateBufferViewArgs struct {
	Device       driverapi.Handle
	Info         driverapi.BufferViewCreateInfo
	RecordedView driverapi.Handle
}

type DestroyBufferViewArgs struct {
	Device driverapi.Handle
	View   driverapi.Handle
}

type CreateSamplerArgs struct {
	Device          driverapi.Handle
	Info            driverapi.SamplerCreateInfo
	RecordedSampler driverapi.Handle
}

type DestroySamplerArgs struct {
	Device  driverapi.Handle
	Sampler driverapi.Handle
}

type CreateDescriptorSetLayoutArgs struct {
	Device        driverapi.Handle
	Info          driverapi.DescriptorSetLayoutCreateInfo
	RecordedLayout driverapi.Handle
}

type DestroyDescriptorSetLayoutArgs struct {
	Device driverapi.Handle
	Layout driverapi.Handle
}

type CreateDescriptorPoolArgs struct {
	Device       driverapi.Handle
	Info         driverapi.DescriptorPoolCreateInfo
	RecordedPool driverapi.Handle
}

type DestroyDescriptorPoolArgs struct {
	Device driverapi.Handle
	Pool   driverapi.Handle
}

type AllocateDescriptorSetsArgs struct {
	Device        driverapi.Handle
	Info          driverapi.DescriptorSetAllocateInfo
	RecordedSets  []driverapi.Handle
}

type FreeDescriptorSetsArgs struct {
	Device driverapi.Handle
	Pool   driverapi.Handle
	Sets   []driverapi.Handle
}

type UpdateDescriptorSetsArgs struct {
	Device  driverapi.Handle
	Writes  []driverapi.WriteDescriptorSet
	Copies  []driverapi.CopyDescriptorSet
}

type CreateShaderModuleArgs struct {
	Device         driverapi.Handle
	Code           []byte
	RecordedModule driverapi.Handle
}

type DestroyShaderModuleArgs struct {
	Device driverapi.Handle
	Module driverapi.Handle
}

type CreatePipelineLayoutArgs struct {
	Device         driverapi.Handle
	Info           driverapi.PipelineLayoutCreateInfo
	RecordedLayout driverapi.Handle
}

type DestroyPipelineLayoutArgs struct {
	Device driverapi.Handle
	Layout driverapi.Handle
}

type CreatePipelineCacheArgs struct {
	Device        driverapi.Handle
	RecordedCache driverapi.Handle
}

type DestroyPipelineCacheArgs struct {
	Device driverapi.Handle
	Cache  driverapi.Handle
}

type GetPipelineCacheDataArgs struct {
	Device driverapi.Handle
	Cache  driverapi.Handle
}

type CreateGraphicsPipelinesArgs struct {
	Device           driverapi.Handle
	Cache            driverapi.Handle
	Infos            []driverapi.GraphicsPipelineCreateInfo
	RecordedPipelines []driverapi.Handle
}

type CreateComputePipelinesArgs struct {
	Device           driverapi.Handle
	Cache            driverapi.Handle
	Infos            []driverapi.ComputePipelineCreateInfo
	RecordedPipelines []driverapi.Handle
}

type DestroyPipelineArgs struct {
	Device   driverapi.Handle
	Pipeline driverapi.Handle
}

type CreateRenderPassArgs struct {
	Device            driverapi.Handle
	Info              driverapi.RenderPassCreateInfo
	RecordedRenderPass driverapi.Handle
}

type DestroyRenderPassArgs struct {
	Device     driverapi.Handle
	RenderPass driverapi.Handle
}

type CreateFramebufferArgs struct {
	Device             driverapi.Handle
	Info               driverapi.FramebufferCreateInfo
	RecordedFramebuffer driverapi.Handle
}

type DestroyFramebufferArgs struct {
	Device      driverapi.Handle
	Framebuffer driverapi.Handle
}

type CreateSemaphoreArgs struct {
	Device          driverapi.Handle
	RecordedSemaphore driverapi.Handle
}

type DestroySemaphoreArgs struct {
	Device    driverapi.Handle
	Semaphore driverapi.Handle
}

type CreateFenceArgs struct {
	Device       driverapi.Handle
	RecordedFence driverapi.Handle
}

type DestroyFenceArgs struct {
	Device driverapi.Handle
	Fence  driverapi.Handle
}

type WaitForFencesArgs struct {
	Device  driverapi.Handle
	Fences  []driverapi.Handle
	WaitAll bool
	Timeout uint64
}

type CreateEventArgs struct {
	Device       driverapi.Handle
	RecordedEvent driverapi.Handle
}

type DestroyEventArgs struct {
	Device driverapi.Handle
	Event  driverapi.Handle
}

type CreateCommandPoolArgs struct {
	Device      driverapi.Handle
	Info        driverapi.CommandPoolCreateInfo
	RecordedPool driverapi.Handle
}

type DestroyCommandPoolArgs struct {
	Device driverapi.Handle
	Pool   driverapi.Handle
}

type AllocateCommandBuffersArgs struct {
	Device          driverapi.Handle
	Info            driverapi.CommandBufferAllocateInfo
	RecordedBuffers []driverapi.Handle
}

type FreeCommandBuffersArgs struct {
	Device  driverapi.Handle
	Pool    driverapi.Handle
	Buffers []driverapi.Handle
}

type BeginCommandBufferArgs struct {
	CommandBuffer driverapi.Handle
	Inheritance   *driverapi.CommandBufferInheritanceInfo
}

type EndCommandBufferArgs struct {
	CommandBuffer driverapi.Handle
}

type CmdBindDescriptorSetsArgs struct {
	CommandBuffer  driverapi.Handle
	Layout         driverapi.Handle
	FirstSet       uint32
	Sets           []driverapi.Handle
	DynamicOffsets []uint32
}

type CmdBindVertexBuffersArgs struct {
	CommandBuffer driverapi.Handle
	FirstBinding  uint32
	Buffers       []driverapi.Handle
	Offsets       []uint64
}

type CmdBeginRenderPassArgs struct {
	CommandBuffer driverapi.Handle
	Info          driverapi.RenderPassBeginInfo
}

type CmdWaitEventsArgs struct {
	CommandBuffer  driverapi.Handle
	Events         []driverapi.Handle
	BufferBarriers []driverapi.BufferMemoryBarrier
	ImageBarriers  []driverapi.ImageMemoryBarrier
}

type CmdPipelineBarrierArgs struct {
	CommandBuffer  driverapi.Handle
	BufferBarriers []driverapi.BufferMemoryBarrier
	ImageBarriers  []driverapi.ImageMemoryBarrier
}

type QueueSubmitArgs struct {
	Queue   driverapi.Handle
	Submits []driverapi.SubmitInfo
	Fence   driverapi.Handle
}

type CreateSwapchainArgs struct {
	Device            driverapi.Handle
	Info              driverapi.SwapchainCreateInfo
	RecordedSwapchain driverapi.Handle
}

type DestroySwapchainArgs struct {
	Device    driverapi.Handle
	Swapchain driverapi.Handle
}

type GetSwapchainImagesArgs struct {
	Device          driverapi.Handle
	Swapchain       driverapi.Handle
	RecordedImages  []driverapi.Handle
}

type QueuePresentArgs struct {
	Queue             driverapi.Handle
	Info              driverapi.PresentInfo
	RecordedResults   []driverapi.Result // nil if the packet did not request per-swapchain results
}

type GetPhysicalDeviceSurfaceSupportArgs struct {
	PhysicalDevice   driverapi.Handle
	Surface          driverapi.Handle
	QueueFamilyIndex uint32
}

type GetPhysicalDeviceSurfaceCapabilitiesArgs struct {
	PhysicalDevice driverapi.Handle
	Surface        driverapi.Handle
	RecordedWidth  uint32
	RecordedHeight uint32
}

// CreateSurfaceArgs covers all platform surface-creation entries
// (vkCreateXcbSurfaceKHR / vkCreateXlibSurfaceKHR /
// vkCreateWin32SurfaceKHR): the recorded platform parameters are
// discarded wholesale and replaced with the Display Adapter's live
// descriptor, so they are not represented here at all.
type CreateSurfaceArgs struct {
	Instance        driverapi.Handle
	RecordedSurface driverapi.Handle
}

type DestroySurfaceArgs struct {
	Instance driverapi.Handle
	Surface  driverapi.Handle
}

type CreateDebugReportCallbackArgs struct {
	Instance         driverapi.Handle
	Info             driverapi.DebugReportCallbackCreateInfo
	RecordedCallback driverapi.Handle
}

type DestroyDebugReportCallbackArgs struct {
	Instance driverapi.Handle
	Callback driverapi.Handle
}
