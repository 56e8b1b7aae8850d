// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driverapi

// DescriptorType identifies the kind of resource a descriptor-set
// write or copy targets. Only the types the replay handlers must
// branch on are enumerated.
type DescriptorType int

// Descriptor types.
const (
	DescriptorSampler DescriptorType = iota
	DescriptorCombinedImageSampler
	DescriptorSampledImage
	DescriptorStorageImage
	DescriptorUniformTexelBuffer
	DescriptorStorageTexelBuffer
	DescriptorUniformBuffer
	DescriptorStorageBuffer
	DescriptorUniformBufferDynamic
	DescriptorStorageBufferDynamic
	DescriptorInputAttachment
)

// ApplicationInfo mirrors VkApplicationInfo's replay-relevant fields.
type ApplicationInfo struct {
	ApplicationName string
	ApplicationVersion uint32
	EngineName      string
	EngineVersion   uint32
	APIVersion      uint32
}

// InstanceCreateInfo mirrors VkInstanceCreateInfo.
type InstanceCreateInfo struct {
	Application         ApplicationInfo
	EnabledLayerNames    []string
	EnabledExtensionNames []string
}

// DeviceQueueCreateInfo mirrors VkDeviceQueueCreateInfo.
type DeviceQueueCreateInfo struct {
	QueueFamilyIndex uint32
	QueuePriorities  []float32
}

// DeviceCreateInfo mirrors VkDeviceCreateInfo.
type DeviceCreateInfo struct {
	QueueCreateInfos      []DeviceQueueCreateInfo
	EnabledLayerNames     []string
	EnabledExtensionNames []string
}

// MemoryAllocateInfo mirrors VkMemoryAllocateInfo.
type MemoryAllocateInfo struct {
	AllocationSize  uint64
	MemoryTypeIndex uint32
}

// MappedMemoryRange mirrors VkMappedMemoryRange.
type MappedMemoryRange struct {
	Memory Handle
	Offset uint64
	Size   uint64
}

// BufferCreateInfo mirrors VkBufferCreateInfo.
type BufferCreateInfo struct {
	Size  uint64
	Usage uint32
}

// ImageCreateInfo mirrors VkImageCreateInfo.
type ImageCreateInfo struct {
	Format uint32
	Width  uint32
	Height uint32
	Depth  uint32
	Usage  uint32
}

// ImageViewCreateInfo mirrors VkImageViewCreateInfo.
type ImageViewCreateInfo struct {
	Image  Handle
	Format uint32
}

// BufferViewCreateInfo mirrors VkBufferViewCreateInfo.
type BufferViewCreateInfo struct {
	Buffer Handle
	Format uint32
	Offset uint64
	Range  uint64
}

// SamplerCreateInfo mirrors VkSamplerCreateInfo. It carries no
// embedded handles, so replay forwards it unchanged.
type SamplerCreateInfo struct {
	MagFilter int
	MinFilter int
}

// DescriptorSetLayoutBinding mirrors VkDescriptorSetLayoutBinding.
type DescriptorSetLayoutBinding struct {
	Binding         uint32
	Type            DescriptorType
	Count           uint32
	ImmutableSamplers []Handle
}

// DescriptorSetLayoutCreateInfo mirrors VkDescriptorSetLayoutCreateInfo.
type DescriptorSetLayoutCreateInfo struct {
	Bindings []DescriptorSetLayoutBinding
}

// DescriptorPoolCreateInfo mirrors VkDescriptorPoolCreateInfo.
type DescriptorPoolCreateInfo struct {
	MaxSets   uint32
	PoolSizes []struct {
		Type  DescriptorType
		Count uint32
	}
}

// DescriptorSetAllocateInfo mirrors VkDescriptorSetAllocateInfo.
type DescriptorSetAllocateInfo struct {
	Pool    Handle
	Layouts []Handle
}

// DescriptorImageInfo mirrors VkDescriptorImageInfo.
type DescriptorImageInfo struct {
	Sampler   Handle
	ImageView Handle
}

// DescriptorBufferInfo mirrors VkDescriptorBufferInfo.
type DescriptorBufferInfo struct {
	Buffer Handle
	Offset uint64
	Range  uint64
}

// WriteDescriptorSet mirrors VkWriteDescriptorSet.
type WriteDescriptorSet struct {
	DstSet          Handle
	DstBinding      uint32
	DstArrayElement uint32
	Type            DescriptorType
	ImageInfo       []DescriptorImageInfo
	BufferInfo      []DescriptorBufferInfo
	TexelBufferView []Handle
}

// CopyDescriptorSet mirrors VkCopyDescriptorSet.
type CopyDescriptorSet struct {
	SrcSet Handle
	DstSet Handle
}

// PipelineLayoutCreateInfo mirrors VkPipelineLayoutCreateInfo.
type PipelineLayoutCreateInfo struct {
	SetLayouts []Handle
}

// ShaderStage mirrors a VkPipelineShaderStageCreateInfo entry.
type ShaderStage struct {
	Stage  uint32
	Module Handle
	Entry  string
}

// GraphicsPipelineCreateInfo mirrors VkGraphicsPipelineCreateInfo.
type GraphicsPipelineCreateInfo struct {
	Stages             []ShaderStage
	Layout             Handle
	RenderPass         Handle
	Subpass            uint32
	BasePipelineHandle Handle
	BasePipelineIndex  int32
	ViewportCount      uint32
	ScissorCount       uint32
}

// ComputePipelineCreateInfo mirrors VkComputePipelineCreateInfo.
type ComputePipelineCreateInfo struct {
	Stage              ShaderStage
	Layout             Handle
	BasePipelineHandle Handle
	BasePipelineIndex  int32
}

// AttachmentDescription mirrors VkAttachmentDescription.
type AttachmentDescription struct {
	Format  uint32
	LoadOp  uint32
	StoreOp uint32
}

// SubpassDescription mirrors VkSubpassDescription (attachment
// indices only; the replayer never rewrites these since they are
// indices, not handles).
type SubpassDescription struct {
	ColorAttachments []uint32
	DepthAttachment  int32
}

// RenderPassCreateInfo mirrors VkRenderPassCreateInfo.
type RenderPassCreateInfo struct {
	Attachments []AttachmentDescription
	Subpasses   []SubpassDescription
}

// FramebufferCreateInfo mirrors VkFramebufferCreateInfo.
type FramebufferCreateInfo struct {
	RenderPass  Handle
	Attachments []Handle
	Width       uint32
	Height      uint32
	Layers      uint32
}

// CommandPoolCreateInfo mirrors VkCommandPoolCreateInfo.
type CommandPoolCreateInfo struct {
	QueueFamilyIndex uint32
}

// CommandBufferAllocateInfo mirrors VkCommandBufferAllocateInfo.
type CommandBufferAllocateInfo struct {
	CommandPool Handle
	Level       uint32
	Count       uint32
}

// CommandBufferInheritanceInfo mirrors VkCommandBufferInheritanceInfo.
type CommandBufferInheritanceInfo struct {
	RenderPass  Handle
	Subpass     uint32
	Framebuffer Handle
}

// RenderPassBeginInfo mirrors VkRenderPassBeginInfo.
type RenderPassBeginInfo struct {
	RenderPass  Handle
	Framebuffer Handle
}

// BufferMemoryBarrier mirrors VkBufferMemoryBarrier.
type BufferMemoryBarrier struct {
	Buffer Handle
	Offset uint64
	Size   uint64
}

// ImageMemoryBarrier mirrors VkImageMemoryBarrier.
type ImageMemoryBarrier struct {
	Image     Handle
	OldLayout uint32
	NewLayout uint32
}

// SubmitInfo mirrors VkSubmitInfo.
type SubmitInfo struct {
	WaitSemaphores   []Handle
	CommandBuffers   []Handle
	SignalSemaphores []Handle
}

// SwapchainCreateInfo mirrors VkSwapchainCreateInfoKHR.
type SwapchainCreateInfo struct {
	Surface       Handle
	MinImageCount uint32
	ImageFormat   uint32
	Width, Height uint32
	OldSwapchain  Handle
}

// PresentInfo mirrors VkPresentInfoKHR.
type PresentInfo struct {
	WaitSemaphores []Handle
	Swapchains     []Handle
	ImageIndices   []uint32
}

// DebugReportCallbackCreateInfo mirrors VkDebugReportCallbackCreateInfoEXT.
type DebugReportCallbackCreateInfo struct {
	Flags uint32
}

// ValidationMessage is a diagnostic record produced by a layer and
// routed through the debug-report callback.
type ValidationMessage struct {
	Severity    Severity
	ObjectType  uint32
	SrcObject   Handle
	Location    uint64
	Code        int32
	LayerPrefix string
	Message     string
}

// Severity classifies a ValidationMessage.
type Severity int

// Message severities, ordered from least to most severe.
const (
	SeverityInfo Severity = iota
	SeverityPerf
	SeverityWarning
	SeverityError
)

// PhysicalDeviceType mirrors VkPhysicalDeviceType.
type PhysicalDeviceType uint32

// Physical-device types, in VkPhysicalDeviceType's numeric order.
const (
	PhysicalDeviceTypeOther PhysicalDeviceType = iota
	PhysicalDeviceTypeIntegratedGPU
	PhysicalDeviceTypeDiscreteGPU
	PhysicalDeviceTypeVirtualGPU
	PhysicalDeviceTypeCPU
)

// PhysicalDeviceProperties mirrors the subset of VkPhysicalDeviceProperties
// the device-selection heuristic needs.
type PhysicalDeviceProperties struct {
	DeviceType PhysicalDeviceType
}

// QueueFlags mirrors VkQueueFlagBits.
type QueueFlags uint32

// Queue capability bits, matching VkQueueFlagBits' values.
const (
	QueueGraphics      QueueFlags = 0x1
	QueueCompute       QueueFlags = 0x2
	QueueTransfer      QueueFlags = 0x4
	QueueSparseBinding QueueFlags = 0x8
)

// QueueFamilyProperties mirrors the subset of VkQueueFamilyProperties the
// device-selection heuristic needs.
type QueueFamilyProperties struct {
	QueueFlags QueueFlags
}

// Table is the function-pointer table a Driver Loader resolves and
// every entry handler calls through. Implementations must be safe to
// call only from the replay thread, except that nothing on Table
// prevents a driver from delivering validation messages on its own
// thread via a side channel registered through
// SetValidationCallback.
type Table interface {
	// CreateInstance forwards an already-filtered create-info (the
	// handler owns extension/layer list rewriting).
	CreateInstance(info InstanceCreateInfo) (Handle, Result)
	DestroyInstance(instance Handle)

	EnumeratePhysicalDevices(instance Handle) ([]Handle, Result)
	EnumerateInstanceLayerProperties() ([]string, Result)
	EnumerateDeviceLayerProperties(physicalDevice Handle) ([]string, Result)
	EnumerateInstanceExtensionProperties() ([]string, Result)
	EnumerateDeviceExtensionProperties(physicalDevice Handle) ([]string, Result)
	GetPhysicalDeviceProperties(physicalDevice Handle) PhysicalDeviceProperties
	GetPhysicalDeviceQueueFamilyProperties(physicalDevice Handle) []QueueFamilyProperties

	CreateDevice(physicalDevice Handle, info DeviceCreateInfo) (Handle, Result)
	DestroyDevice(device Handle)
	GetDeviceQueue(device Handle, queueFamilyIndex, queueIndex uint32) Handle
	DeviceWaitIdle(device Handle) Result

	AllocateMemory(device Handle, info MemoryAllocateInfo) (Handle, Result)
	FreeMemory(device, memory Handle)
	MapMemory(device, memory Handle, offset, size uint64) ([]byte, Result)
	UnmapMemory(device, memory Handle)
	FlushMappedMemoryRanges(device Handle, ranges []MappedMemoryRange) Result

	CreateBuffer(device Handle, info BufferCreateInfo) (Handle, Result)
	DestroyBuffer(device, buffer Handle)
	CreateImage(device Handle, info ImageCreateInfo) (Handle, Result)
	DestroyImage(device, image Handle)
	CreateImageView(device Handle, info ImageViewCreateInfo) (Handle, Result)
	DestroyImageView(device, view Handle)
	CreateBufferView(device Handle, info BufferViewCreateInfo) (Handle, Result)
	DestroyBufferView(device, view Handle)
	CreateSampler(device Handle, info SamplerCreateInfo) (Handle, Result)
	DestroySampler(device, sampler Handle)

	CreateDescriptorSetLayout(device Handle, info DescriptorSetLayoutCreateInfo) (Handle, Result)
	DestroyDescriptorSetLayout(device, layout Handle)
	CreateDescriptorPool(device Handle, info DescriptorPoolCreateInfo) (Handle, Result)
	DestroyDescriptorPool(device, pool Handle)
	AllocateDescriptorSets(device Handle, info DescriptorSetAllocateInfo) ([]Handle, Result)
	FreeDescriptorSets(device, pool Handle, sets []Handle) Result
	UpdateDescriptorSets(device Handle, writes []WriteDescriptorSet, copies []CopyDescriptorSet)

	CreatePipelineLayout(device Handle, info PipelineLayoutCreateInfo) (Handle, Result)
	DestroyPipelineLayout(device, layout Handle)
	CreatePipelineCache(device Handle) (Handle, Result)
	DestroyPipelineCache(device, cache Handle)
	GetPipelineCacheData(device, cache Handle) ([]byte, Result)
	CreateGraphicsPipelines(device, cache Handle, infos []GraphicsPipelineCreateInfo) ([]Handle, Result)
	CreateComputePipelines(device, cache Handle, infos []ComputePipelineCreateInfo) ([]Handle, Result)
	DestroyPipeline(device, pipeline Handle)
	CreateShaderModule(device Handle, code []byte) (Handle, Result)
	DestroyShaderModule(device, module Handle)

	CreateRenderPass(device Handle, info RenderPassCreateInfo) (Handle, Result)
	DestroyRenderPass(device, pass Handle)
	CreateFramebuffer(device Handle, info FramebufferCreateInfo) (Handle, Result)
	DestroyFramebuffer(device, fb Handle)

	CreateSemaphore(device Handle) (Handle, Result)
	DestroySemaphore(device, semaphore Handle)
	CreateFence(device Handle) (Handle, Result)
	DestroyFence(device, fence Handle)
	WaitForFences(device Handle, fences []Handle, waitAll bool, timeout uint64) Result
	ResetFences(device Handle, fences []Handle) Result
	CreateEvent(device Handle) (Handle, Result)
	DestroyEvent(device, event Handle)

	CreateCommandPool(device Handle, info CommandPoolCreateInfo) (Handle, Result)
	DestroyCommandPool(device, pool Handle)
	AllocateCommandBuffers(device Handle, info CommandBufferAllocateInfo) ([]Handle, Result)
	FreeCommandBuffers(device, pool Handle, buffers []Handle)
	BeginCommandBuffer(cb Handle, inheritance *CommandBufferInheritanceInfo) Result
	EndCommandBuffer(cb Handle) Result
	ResetCommandBuffer(cb Handle) Result

	CmdBindDescriptorSets(cb, layout Handle, firstSet uint32, sets []Handle, dynamicOffsets []uint32)
	CmdBindVertexBuffers(cb Handle, firstBinding uint32, buffers []Handle, offsets []uint64)
	CmdBindIndexBuffer(cb, buffer Handle, offset uint64)
	CmdBindPipeline(cb, pipeline Handle, bindPoint uint32)
	CmdBeginRenderPass(cb Handle, info RenderPassBeginInfo)
	CmdEndRenderPass(cb Handle)
	CmdWaitEvents(cb Handle, events []Handle, bufferBarriers []BufferMemoryBarrier, imageBarriers []ImageMemoryBarrier)
	CmdPipelineBarrier(cb Handle, bufferBarriers []BufferMemoryBarrier, imageBarriers []ImageMemoryBarrier)
	CmdDraw(cb Handle, vertexCount, instanceCount, firstVertex, firstInstance uint32)
	CmdDrawIndexed(cb Handle, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32)
	CmdDispatch(cb Handle, x, y, z uint32)
	CmdCopyBuffer(cb, src, dst Handle)
	CmdCopyImage(cb, src, dst Handle)

	QueueSubmit(queue Handle, submits []SubmitInfo, fence Handle) Result
	QueueWaitIdle(queue Handle) Result

	CreateSwapchain(device Handle, info SwapchainCreateInfo) (Handle, Result)
	DestroySwapchain(device, swapchain Handle)
	GetSwapchainImages(device, swapchain Handle) ([]Handle, Result)
	AcquireNextImage(device, swapchain Handle, timeout uint64, semaphore, fence Handle) (uint32, Result)
	QueuePresent(queue Handle, info PresentInfo) ([]Result, Result)

	GetPhysicalDeviceSurfaceSupport(physicalDevice, surface Handle, queueFamilyIndex uint32) (bool, Result)
	GetPhysicalDeviceSurfaceCapabilities(physicalDevice, surface Handle) (width, height uint32, result Result)
	GetPhysicalDeviceSurfaceFormats(physicalDevice, surface Handle) ([]uint32, Result)
	GetPhysicalDeviceSurfacePresentModes(physicalDevice, surface Handle) ([]uint32, Result)
	DestroySurface(instance, surface Handle)
	// CreateSurface forwards a descriptor obtained from the Display
	// Adapter; the caller has already substituted it for whatever the
	// packet recorded.
	CreateSurface(instance Handle, descriptor any) (Handle, Result)

	CreateDebugReportCallback(instance Handle, info DebugReportCallbackCreateInfo) (Handle, Result)
	DestroyDebugReportCallback(instance, callback Handle)
	// SetValidationCallback installs the sink that receives
	// ValidationMessage records. Passing nil disables delivery.
	SetValidationCallback(func(ValidationMessage))

	// Close releases the underlying driver library. Callers must
	// ensure every object created through the table has already been
	// destroyed.
	Close() error
}
