// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package mockdrv provides a pure-Go driverapi.Table fake for tests.
// It never touches a real driver: every Create call mints a new
// Handle and records it as live; every Destroy call removes it. Tests
// that need a specific call to fail set NextResult before invoking
// the Driver method that reaches it.
package mockdrv

import (
	"sync"

	"github.com/gviegas/vkreplay/driverapi"
)

// Table is the fake. The zero value is ready to use.
type Table struct {
	mu   sync.Mutex
	next uint64
	live map[driverapi.Handle]bool

	// Calls records every method invoked, in order, for tests that
	// need to assert on call sequence rather than just outcome.
	Calls []string

	// NextResult, if non-zero (ResultSuccess), is returned by the next
	// call that reports a Result (creates, physical-device
	// enumeration, maps, waits, submits, presents, surface queries and
	// the like) and then reset to ResultSuccess; layer and extension
	// enumeration ignore it. It lets a test force a single call to
	// fail without a bespoke fake.
	NextResult driverapi.Result

	// Devices, if non-nil, is returned by EnumeratePhysicalDevices
	// instead of a freshly minted handle.
	Devices []driverapi.Handle

	// DeviceProperties and QueueFamilies, if non-nil, key the replies
	// GetPhysicalDeviceProperties and GetPhysicalDeviceQueueFamilyProperties
	// give for a given physical device handle. A handle absent from the
	// map gets the zero value.
	DeviceProperties map[driverapi.Handle]driverapi.PhysicalDeviceProperties
	QueueFamilies    map[driverapi.Handle][]driverapi.QueueFamilyProperties

	// MapData, if non-nil, is returned by MapMemory.
	MapData []byte

	// LastInstanceInfo captures the create-info CreateInstance was
	// last invoked with, for tests asserting on handler-side rewrites
	// (extension filtering, layer injection) rather than outcomes.
	LastInstanceInfo driverapi.InstanceCreateInfo

	// LastDeviceInfo captures the create-info CreateDevice was last
	// invoked with, for the same reason.
	LastDeviceInfo driverapi.DeviceCreateInfo

	// LastBufferBarriers and LastImageBarriers capture the slices
	// CmdPipelineBarrier/CmdWaitEvents were last invoked with, so
	// tests can assert on their independent lengths.
	LastBufferBarriers []driverapi.BufferMemoryBarrier
	LastImageBarriers  []driverapi.ImageMemoryBarrier

	cb func(driverapi.ValidationMessage)
}

func (t *Table) record(name string) {
	t.Calls = append(t.Calls, name)
}

func (t *Table) newHandle() driverapi.Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	h := driverapi.Handle(t.next)
	if t.live == nil {
		t.live = make(map[driverapi.Handle]bool)
	}
	t.live[h] = true
	return h
}

func (t *Table) destroy(h driverapi.Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.live, h)
}

// Live reports whether h is currently tracked as a live object.
func (t *Table) Live(h driverapi.Handle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live[h]
}

func (t *Table) takeResult() driverapi.Result {
	if t.NextResult != driverapi.ResultSuccess {
		r := t.NextResult
		t.NextResult = driverapi.ResultSuccess
		return r
	}
	return driverapi.ResultSuccess
}

// Deliver pushes msg through the installed validation callback, the
// way a real driver would from its own thread.
func (t *Table) Deliver(msg driverapi.ValidationMessage) {
	if t.cb != nil {
		t.cb(msg)
	}
}

func (t *Table) CreateInstance(info driverapi.InstanceCreateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("CreateInstance")
	t.LastInstanceInfo = info
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyInstance(instance driverapi.Handle) {
	t.record("DestroyInstance")
	t.destroy(instance)
}

func (t *Table) EnumeratePhysicalDevices(instance driverapi.Handle) ([]driverapi.Handle, driverapi.Result) {
	t.record("EnumeratePhysicalDevices")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return nil, r
	}
	if t.Devices != nil {
		return t.Devices, driverapi.ResultSuccess
	}
	return []driverapi.Handle{t.newHandle()}, driverapi.ResultSuccess
}

func (t *Table) EnumerateInstanceLayerProperties() ([]string, driverapi.Result) {
	t.record("EnumerateInstanceLayerProperties")
	return nil, driverapi.ResultSuccess
}

func (t *Table) EnumerateDeviceLayerProperties(driverapi.Handle) ([]string, driverapi.Result) {
	t.record("EnumerateDeviceLayerProperties")
	return nil, driverapi.ResultSuccess
}

func (t *Table) EnumerateInstanceExtensionProperties() ([]string, driverapi.Result) {
	t.record("EnumerateInstanceExtensionProperties")
	return nil, driverapi.ResultSuccess
}

func (t *Table) EnumerateDeviceExtensionProperties(driverapi.Handle) ([]string, driverapi.Result) {
	t.record("EnumerateDeviceExtensionProperties")
	return nil, driverapi.ResultSuccess
}

func (t *Table) GetPhysicalDeviceProperties(physicalDevice driverapi.Handle) driverapi.PhysicalDeviceProperties {
	t.record("GetPhysicalDeviceProperties")
	return t.DeviceProperties[physicalDevice]
}

func (t *Table) GetPhysicalDeviceQueueFamilyProperties(physicalDevice driverapi.Handle) []driverapi.QueueFamilyProperties {
	t.record("GetPhysicalDeviceQueueFamilyProperties")
	return t.QueueFamilies[physicalDevice]
}

func (t *Table) CreateDevice(physicalDevice driverapi.Handle, info driverapi.DeviceCreateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("CreateDevice")
	t.LastDeviceInfo = info
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyDevice(device driverapi.Handle) {
	t.record("DestroyDevice")
	t.destroy(device)
}

func (t *Table) GetDeviceQueue(device driverapi.Handle, queueFamilyIndex, queueIndex uint32) driverapi.Handle {
	t.record("GetDeviceQueue")
	return t.newHandle()
}

func (t *Table) DeviceWaitIdle(device driverapi.Handle) driverapi.Result {
	t.record("DeviceWaitIdle")
	return t.takeResult()
}

func (t *Table) AllocateMemory(device driverapi.Handle, info driverapi.MemoryAllocateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("AllocateMemory")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) FreeMemory(device, memory driverapi.Handle) {
	t.record("FreeMemory")
	t.destroy(memory)
}

func (t *Table) MapMemory(device, memory driverapi.Handle, offset, size uint64) ([]byte, driverapi.Result) {
	t.record("MapMemory")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return nil, r
	}
	if t.MapData != nil {
		return t.MapData, driverapi.ResultSuccess
	}
	return make([]byte, size), driverapi.ResultSuccess
}

func (t *Table) UnmapMemory(device, memory driverapi.Handle) {
	t.record("UnmapMemory")
}

func (t *Table) FlushMappedMemoryRanges(device driverapi.Handle, ranges []driverapi.MappedMemoryRange) driverapi.Result {
	t.record("FlushMappedMemoryRanges")
	return t.takeResult()
}

func (t *Table) CreateBuffer(device driverapi.Handle, info driverapi.BufferCreateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("CreateBuffer")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyBuffer(device, buffer driverapi.Handle) {
	t.record("DestroyBuffer")
	t.destroy(buffer)
}

func (t *Table) CreateImage(device driverapi.Handle, info driverapi.ImageCreateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("CreateImage")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyImage(device, image driverapi.Handle) {
	t.record("DestroyImage")
	t.destroy(image)
}

func (t *Table) CreateImageView(device driverapi.Handle, info driverapi.ImageViewCreateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("CreateImageView")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyImageView(device, view driverapi.Handle) {
	t.record("DestroyImageView")
	t.destroy(view)
}

func (t *Table) CreateBufferView(device driverapi.Handle, info driverapi.BufferViewCreateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("CreateBufferView")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyBufferView(device, view driverapi.Handle) {
	t.record("DestroyBufferView")
	t.destroy(view)
}

func (t *Table) CreateSampler(device driverapi.Handle, info driverapi.SamplerCreateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("CreateSampler")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroySampler(device, sampler driverapi.Handle) {
	t.record("DestroySampler")
	t.destroy(sampler)
}

func (t *Table) CreateDescriptorSetLayout(device driverapi.Handle, info driverapi.DescriptorSetLayoutCreateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("CreateDescriptorSetLayout")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyDescriptorSetLayout(device, layout driverapi.Handle) {
	t.record("DestroyDescriptorSetLayout")
	t.destroy(layout)
}

func (t *Table) CreateDescriptorPool(device driverapi.Handle, info driverapi.DescriptorPoolCreateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("CreateDescriptorPool")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyDescriptorPool(device, pool driverapi.Handle) {
	t.record("DestroyDescriptorPool")
	t.destroy(pool)
}

func (t *Table) AllocateDescriptorSets(device driverapi.Handle, info driverapi.DescriptorSetAllocateInfo) ([]driverapi.Handle, driverapi.Result) {
	t.record("AllocateDescriptorSets")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return nil, r
	}
	sets := make([]driverapi.Handle, len(info.Layouts))
	for i := range sets {
		sets[i] = t.newHandle()
	}
	return sets, driverapi.ResultSuccess
}

func (t *Table) FreeDescriptorSets(device, pool driverapi.Handle, sets []driverapi.Handle) driverapi.Result {
	t.record("FreeDescriptorSets")
	for _, s := range sets {
		t.destroy(s)
	}
	return t.takeResult()
}

func (t *Table) UpdateDescriptorSets(device driverapi.Handle, writes []driverapi.WriteDescriptorSet, copies []driverapi.CopyDescriptorSet) {
	t.record("UpdateDescriptorSets")
}

func (t *Table) CreatePipelineLayout(device driverapi.Handle, info driverapi.PipelineLayoutCreateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("CreatePipelineLayout")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyPipelineLayout(device, layout driverapi.Handle) {
	t.record("DestroyPipelineLayout")
	t.destroy(layout)
}

func (t *Table) CreatePipelineCache(device driverapi.Handle) (driverapi.Handle, driverapi.Result) {
	t.record("CreatePipelineCache")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyPipelineCache(device, cache driverapi.Handle) {
	t.record("DestroyPipelineCache")
	t.destroy(cache)
}

func (t *Table) GetPipelineCacheData(device, cache driverapi.Handle) ([]byte, driverapi.Result) {
	t.record("GetPipelineCacheData")
	return nil, t.takeResult()
}

func (t *Table) CreateGraphicsPipelines(device, cache driverapi.Handle, infos []driverapi.GraphicsPipelineCreateInfo) ([]driverapi.Handle, driverapi.Result) {
	t.record("CreateGraphicsPipelines")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return nil, r
	}
	out := make([]driverapi.Handle, len(infos))
	for i := range out {
		out[i] = t.newHandle()
	}
	return out, driverapi.ResultSuccess
}

func (t *Table) CreateComputePipelines(device, cache driverapi.Handle, infos []driverapi.ComputePipelineCreateInfo) ([]driverapi.Handle, driverapi.Result) {
	t.record("CreateComputePipelines")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return nil, r
	}
	out := make([]driverapi.Handle, len(infos))
	for i := range out {
		out[i] = t.newHandle()
	}
	return out, driverapi.ResultSuccess
}

func (t *Table) DestroyPipeline(device, pipeline driverapi.Handle) {
	t.record("DestroyPipeline")
	t.destroy(pipeline)
}

func (t *Table) CreateShaderModule(device driverapi.Handle, code []byte) (driverapi.Handle, driverapi.Result) {
	t.record("CreateShaderModule")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyShaderModule(device, module driverapi.Handle) {
	t.record("DestroyShaderModule")
	t.destroy(module)
}

func (t *Table) CreateRenderPass(device driverapi.Handle, info driverapi.RenderPassCreateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("CreateRenderPass")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyRenderPass(device, pass driverapi.Handle) {
	t.record("DestroyRenderPass")
	t.destroy(pass)
}

func (t *Table) CreateFramebuffer(device driverapi.Handle, info driverapi.FramebufferCreateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("CreateFramebuffer")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyFramebuffer(device, fb driverapi.Handle) {
	t.record("DestroyFramebuffer")
	t.destroy(fb)
}

func (t *Table) CreateSemaphore(device driverapi.Handle) (driverapi.Handle, driverapi.Result) {
	t.record("CreateSemaphore")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroySemaphore(device, semaphore driverapi.Handle) {
	t.record("DestroySemaphore")
	t.destroy(semaphore)
}

func (t *Table) CreateFence(device driverapi.Handle) (driverapi.Handle, driverapi.Result) {
	t.record("CreateFence")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyFence(device, fence driverapi.Handle) {
	t.record("DestroyFence")
	t.destroy(fence)
}

func (t *Table) WaitForFences(device driverapi.Handle, fences []driverapi.Handle, waitAll bool, timeout uint64) driverapi.Result {
	t.record("WaitForFences")
	return t.takeResult()
}

func (t *Table) ResetFences(device driverapi.Handle, fences []driverapi.Handle) driverapi.Result {
	t.record("ResetFences")
	return t.takeResult()
}

func (t *Table) CreateEvent(device driverapi.Handle) (driverapi.Handle, driverapi.Result) {
	t.record("CreateEvent")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyEvent(device, event driverapi.Handle) {
	t.record("DestroyEvent")
	t.destroy(event)
}

func (t *Table) CreateCommandPool(device driverapi.Handle, info driverapi.CommandPoolCreateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("CreateCommandPool")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyCommandPool(device, pool driverapi.Handle) {
	t.record("DestroyCommandPool")
	t.destroy(pool)
}

func (t *Table) AllocateCommandBuffers(device driverapi.Handle, info driverapi.CommandBufferAllocateInfo) ([]driverapi.Handle, driverapi.Result) {
	t.record("AllocateCommandBuffers")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return nil, r
	}
	out := make([]driverapi.Handle, info.Count)
	for i := range out {
		out[i] = t.newHandle()
	}
	return out, driverapi.ResultSuccess
}

func (t *Table) FreeCommandBuffers(device, pool driverapi.Handle, buffers []driverapi.Handle) {
	t.record("FreeCommandBuffers")
	for _, b := range buffers {
		t.destroy(b)
	}
}

func (t *Table) BeginCommandBuffer(cb driverapi.Handle, inheritance *driverapi.CommandBufferInheritanceInfo) driverapi.Result {
	t.record("BeginCommandBuffer")
	return t.takeResult()
}

func (t *Table) EndCommandBuffer(cb driverapi.Handle) driverapi.Result {
	t.record("EndCommandBuffer")
	return t.takeResult()
}

func (t *Table) ResetCommandBuffer(cb driverapi.Handle) driverapi.Result {
	t.record("ResetCommandBuffer")
	return t.takeResult()
}

func (t *Table) CmdBindDescriptorSets(cb, layout driverapi.Handle, firstSet uint32, sets []driverapi.Handle, dynamicOffsets []uint32) {
	t.record("CmdBindDescriptorSets")
}

func (t *Table) CmdBindVertexBuffers(cb driverapi.Handle, firstBinding uint32, buffers []driverapi.Handle, offsets []uint64) {
	t.record("CmdBindVertexBuffers")
}

func (t *Table) CmdBindIndexBuffer(cb, buffer driverapi.Handle, offset uint64) {
	t.record("CmdBindIndexBuffer")
}

func (t *Table) CmdBindPipeline(cb, pipeline driverapi.Handle, bindPoint uint32) {
	t.record("CmdBindPipeline")
}

func (t *Table) CmdBeginRenderPass(cb driverapi.Handle, info driverapi.RenderPassBeginInfo) {
	t.record("CmdBeginRenderPass")
}

func (t *Table) CmdEndRenderPass(cb driverapi.Handle) {
	t.record("CmdEndRenderPass")
}

func (t *Table) CmdWaitEvents(cb driverapi.Handle, events []driverapi.Handle, bufferBarriers []driverapi.BufferMemoryBarrier, imageBarriers []driverapi.ImageMemoryBarrier) {
	t.record("CmdWaitEvents")
	t.LastBufferBarriers = bufferBarriers
	t.LastImageBarriers = imageBarriers
}

func (t *Table) CmdPipelineBarrier(cb driverapi.Handle, bufferBarriers []driverapi.BufferMemoryBarrier, imageBarriers []driverapi.ImageMemoryBarrier) {
	t.record("CmdPipelineBarrier")
	t.LastBufferBarriers = bufferBarriers
	t.LastImageBarriers = imageBarriers
}

func (t *Table) CmdDraw(cb driverapi.Handle, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	t.record("CmdDraw")
}

func (t *Table) CmdDrawIndexed(cb driverapi.Handle, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	t.record("CmdDrawIndexed")
}

func (t *Table) CmdDispatch(cb driverapi.Handle, x, y, z uint32) {
	t.record("CmdDispatch")
}

func (t *Table) CmdCopyBuffer(cb, src, dst driverapi.Handle) {
	t.record("CmdCopyBuffer")
}

func (t *Table) CmdCopyImage(cb, src, dst driverapi.Handle) {
	t.record("CmdCopyImage")
}

func (t *Table) QueueSubmit(queue driverapi.Handle, submits []driverapi.SubmitInfo, fence driverapi.Handle) driverapi.Result {
	t.record("QueueSubmit")
	return t.takeResult()
}

func (t *Table) QueueWaitIdle(queue driverapi.Handle) driverapi.Result {
	t.record("QueueWaitIdle")
	return t.takeResult()
}

func (t *Table) CreateSwapchain(device driverapi.Handle, info driverapi.SwapchainCreateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("CreateSwapchain")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroySwapchain(device, swapchain driverapi.Handle) {
	t.record("DestroySwapchain")
	t.destroy(swapchain)
}

func (t *Table) GetSwapchainImages(device, swapchain driverapi.Handle) ([]driverapi.Handle, driverapi.Result) {
	t.record("GetSwapchainImages")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return nil, r
	}
	return []driverapi.Handle{t.newHandle(), t.newHandle()}, driverapi.ResultSuccess
}

func (t *Table) AcquireNextImage(device, swapchain driverapi.Handle, timeout uint64, semaphore, fence driverapi.Handle) (uint32, driverapi.Result) {
	t.record("AcquireNextImage")
	return 0, t.takeResult()
}

func (t *Table) QueuePresent(queue driverapi.Handle, info driverapi.PresentInfo) ([]driverapi.Result, driverapi.Result) {
	t.record("QueuePresent")
	results := make([]driverapi.Result, len(info.Swapchains))
	return results, t.takeResult()
}

func (t *Table) GetPhysicalDeviceSurfaceSupport(physicalDevice, surface driverapi.Handle, queueFamilyIndex uint32) (bool, driverapi.Result) {
	t.record("GetPhysicalDeviceSurfaceSupport")
	return true, t.takeResult()
}

func (t *Table) GetPhysicalDeviceSurfaceCapabilities(physicalDevice, surface driverapi.Handle) (uint32, uint32, driverapi.Result) {
	t.record("GetPhysicalDeviceSurfaceCapabilities")
	return 0, 0, t.takeResult()
}

func (t *Table) GetPhysicalDeviceSurfaceFormats(physicalDevice, surface driverapi.Handle) ([]uint32, driverapi.Result) {
	t.record("GetPhysicalDeviceSurfaceFormats")
	return nil, t.takeResult()
}

func (t *Table) GetPhysicalDeviceSurfacePresentModes(physicalDevice, surface driverapi.Handle) ([]uint32, driverapi.Result) {
	t.record("GetPhysicalDeviceSurfacePresentModes")
	return nil, t.takeResult()
}

func (t *Table) DestroySurface(instance, surface driverapi.Handle) {
	t.record("DestroySurface")
	t.destroy(surface)
}

func (t *Table) CreateSurface(instance driverapi.Handle, descriptor any) (driverapi.Handle, driverapi.Result) {
	t.record("CreateSurface")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) CreateDebugReportCallback(instance driverapi.Handle, info driverapi.DebugReportCallbackCreateInfo) (driverapi.Handle, driverapi.Result) {
	t.record("CreateDebugReportCallback")
	if r := t.takeResult(); r != driverapi.ResultSuccess {
		return driverapi.NullHandle, r
	}
	return t.newHandle(), driverapi.ResultSuccess
}

func (t *Table) DestroyDebugReportCallback(instance, callback driverapi.Handle) {
	t.record("DestroyDebugReportCallback")
	t.destroy(callback)
}

func (t *Table) SetValidationCallback(cb func(driverapi.ValidationMessage)) {
	t.record("SetValidationCallback")
	t.cb = cb
}

func (t *Table) Close() error {
	t.record("Close")
	return nil
}
