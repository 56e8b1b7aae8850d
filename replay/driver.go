// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package replay implements the Replay Driver and the per-entry
// handlers that rewrite recorded handles and pointers before
// forwarding a call to the loaded driver.
package replay

import (
	"fmt"
	"log"

	"github.com/gviegas/vkreplay/display"
	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/handle"
	"github.com/gviegas/vkreplay/memshadow"
	"github.com/gviegas/vkreplay/packet"
)

// Driver iterates packets, dispatches them to entry handlers,
// compares recorded and live return codes, and aggregates validation
// messages. It owns the Handle Map and Memory Shadow; handlers touch
// both only from the replay thread, so neither needs locking.
type Driver struct {
	table    driverapi.Table
	disp     *display.Adapter
	settings Settings
	maps     *handle.Map
	mem      *memshadow.Shadow
	vq       validationQueue
	frame    uint64

	// instance and device are the most recently created live instance
	// and device. The handlers that create and destroy those objects
	// set and clear them; no other handler reads them.
	instance driverapi.Handle
	device   driverapi.Handle
}

// NewDriver constructs a Driver around an already-opened Table and
// Display Adapter. table must not be nil. disp may be nil on a host
// with no window system; surface-creation handlers then fail their
// calls with StatusError, while swapchain creation and
// surface-capability queries skip the window resize and proceed.
func NewDriver(table driverapi.Table, disp *display.Adapter, settings Settings) *Driver {
	d := &Driver{
		table:    table,
		disp:     disp,
		settings: settings,
		maps:     handle.NewMap(),
		mem:      memshadow.New(settings.AdjustForGPU),
	}
	table.SetValidationCallback(d.vq.push)
	return d
}

// Frame returns the replay frame counter, incremented on every
// present call regardless of whether its result comparison passed.
func (d *Driver) Frame() uint64 {
	return d.frame
}

// Close releases the display and the driver library, in that order,
// resolving the open question of library/display teardown ordering by
// always unloading the display first. Close itself does not destroy
// any driver object; it is meant to be called once every object the
// replayed trace created has already been destroyed, and only logs a
// warning, rather than refusing to proceed, if the Handle Map is not
// empty at that point.
func (d *Driver) Close() error {
	if !d.maps.Empty() {
		for k, n := range d.maps.NonEmptyKinds() {
			log.Printf("replay: Close: %d %s handle(s) still mapped at teardown", n, k)
		}
	}
	d.disp.Close()
	return d.table.Close()
}

// Dispatch replays one packet and returns its outcome.
func (d *Driver) Dispatch(p packet.Packet) Status {
	switch p.Entry {
	case packet.EntryCreateInstance:
		return d.createInstance(p)
	case packet.EntryDestroyInstance:
		return d.destroyInstance(p)
	case packet.EntryEnumeratePhysicalDevices:
		return d.enumeratePhysicalDevices(p)
	case packet.EntryCreateDevice:
		return d.createDevice(p)
	case packet.EntryDestroyDevice:
		return d.destroyDevice(p)
	case packet.EntryGetDeviceQueue:
		return d.getDeviceQueue(p)

	case packet.EntryAllocateMemory:
		return d.allocateMemory(p)
	case packet.EntryFreeMemory:
		return d.freeMemory(p)
	case packet.EntryMapMemory:
		return d.mapMemory(p)
	case packet.EntryUnmapMemory:
		return d.unmapMemory(p)
	case packet.EntryFlushMappedMemoryRanges:
		return d.flushMappedMemoryRanges(p)

	case packet.EntryCreateBuffer:
		return d.createBuffer(p)
	case packet.EntryDestroyBuffer:
		return d.destroyBuffer(p)
	case packet.EntryCreateImage:
		return d.createImage(p)
	case packet.EntryDestroyImage:
		return d.destroyImage(p)
	case packet.EntryCreateImageView:
		return d.createImageView(p)
	case packet.EntryDestroyImageView:
		return d.destroyImageView(p)
	case packet.EntryCreateBufferView:
		return d.createBufferView(p)
	case packet.EntryDestroyBufferView:
		return d.destroyBufferView(p)
	case packet.EntryCreateSampler:
		return d.createSampler(p)
	case packet.EntryDestroySampler:
		return d.destroySampler(p)

	case packet.EntryCreateDescriptorSetLayout:
		return d.createDescriptorSetLayout(p)
	case packet.EntryDestroyDescriptorSetLayout:
		return d.destroyDescriptorSetLayout(p)
	case packet.EntryCreateDescriptorPool:
		return d.createDescriptorPool(p)
	case packet.EntryDestroyDescriptorPool:
		return d.destroyDescriptorPool(p)
	case packet.EntryAllocateDescriptorSets:
		return d.allocateDescriptorSets(p)
	case packet.EntryFreeDescriptorSets:
		return d.freeDescriptorSets(p)
	case packet.EntryUpdateDescriptorSets:
		return d.updateDescriptorSets(p)

	case packet.EntryCreateShaderModule:
		return d.createShaderModule(p)
	case packet.EntryDestroyShaderModule:
		return d.destroyShaderModule(p)
	case packet.EntryCreatePipelineLayout:
		return d.createPipelineLayout(p)
	case packet.EntryDestroyPipelineLayout:
		return d.destroyPipelineLayout(p)
	case packet.EntryCreatePipelineCache:
		return d.createPipelineCache(p)
	case packet.EntryDestroyPipelineCache:
		return d.destroyPipelineCache(p)
	case packet.EntryGetPipelineCacheData:
		return d.getPipelineCacheData(p)
	case packet.EntryCreateGraphicsPipelines:
		return d.createGraphicsPipelines(p)
	case packet.EntryCreateComputePipelines:
		return d.createComputePipelines(p)
	case packet.EntryDestroyPipeline:
		return d.destroyPipeline(p)

	case packet.EntryCreateRenderPass:
		return d.createRenderPass(p)
	case packet.EntryDestroyRenderPass:
		return d.destroyRenderPass(p)
	case packet.EntryCreateFramebuffer:
		return d.createFramebuffer(p)
	case packet.EntryDestroyFramebuffer:
		return d.destroyFramebuffer(p)

	case packet.EntryCreateSemaphore:
		return d.createSemaphore(p)
	case packet.EntryDestroySemaphore:
		return d.destroySemaphore(p)
	case packet.EntryCreateFence:
		return d.createFence(p)
	case packet.EntryDestroyFence:
		return d.destroyFence(p)
	case packet.EntryWaitForFences:
		return d.waitForFences(p)
	case packet.EntryCreateEvent:
		return d.createEvent(p)
	case packet.EntryDestroyEvent:
		return d.destroyEvent(p)

	case packet.EntryCreateCommandPool:
		return d.createCommandPool(p)
	case packet.EntryDestroyCommandPool:
		return d.destroyCommandPool(p)
	case packet.EntryAllocateCommandBuffers:
		return d.allocateCommandBuffers(p)
	case packet.EntryFreeCommandBuffers:
		return d.freeCommandBuffers(p)
	case packet.EntryBeginCommandBuffer:
		return d.beginCommandBuffer(p)
	case packet.EntryEndCommandBuffer:
		return d.endCommandBuffer(p)

	case packet.EntryCmdBindDescriptorSets:
		return d.cmdBindDescriptorSets(p)
	case packet.EntryCmdBindVertexBuffers:
		return d.cmdBindVertexBuffers(p)
	case packet.EntryCmdBeginRenderPass:
		return d.cmdBeginRenderPass(p)
	case packet.EntryCmdWaitEvents:
		return d.cmdWaitEvents(p)
	case packet.EntryCmdPipelineBarrier:
		return d.cmdPipelineBarrier(p)

	case packet.EntryQueueSubmit:
		return d.queueSubmit(p)

	case packet.EntryCreateSwapchain:
		return d.createSwapchain(p)
	case packet.EntryDestroySwapchain:
		return d.destroySwapchain(p)
	case packet.EntryGetSwapchainImages:
		return d.getSwapchainImages(p)
	case packet.EntryQueuePresent:
		return d.queuePresent(p)

	case packet.EntryGetPhysicalDeviceSurfaceSupport:
		return d.getPhysicalDeviceSurfaceSupport(p)
	case packet.EntryGetPhysicalDeviceSurfaceCapabilities:
		return d.getPhysicalDeviceSurfaceCapabilities(p)
	case packet.EntryCreateXcbSurface, packet.EntryCreateXlibSurface, packet.EntryCreateWin32Surface:
		return d.createSurface(p)
	case packet.EntryDestroySurface:
		return d.destroySurface(p)

	case packet.EntryCreateDebugReportCallback:
		return d.createDebugReportCallback(p)
	case packet.EntryDestroyDebugReportCallback:
		return d.destroyDebugReportCallback(p)
	}
	log.Printf("replay: Dispatch: unhandled entry %s", p.Entry)
	return StatusError
}

// remapOrAbort is step 1 of the common rewrite policy: it remaps a
// dispatch object and reports whether the call must be aborted.
func (d *Driver) remapOrAbort(k driverapi.Kind, recorded driverapi.Handle) (live driverapi.Handle, abort bool) {
	if recorded == driverapi.NullHandle {
		return driverapi.NullHandle, false
	}
	live = d.maps.Lookup(k, recorded)
	if live == driverapi.NullHandle {
		log.Printf("replay: invalid-remap: %s handle %#x has no live mapping", k, recorded)
		return driverapi.NullHandle, true
	}
	return live, false
}

// finish is steps 5-6 of the common rewrite policy: compare the
// live and recorded return codes, drain and fold in validation
// messages, and produce the call's final Status. It must be called
// on every exit path that actually invoked the driver.
func (d *Driver) finish(got, want driverapi.Result) Status {
	status := StatusSuccess
	if got != want {
		status = StatusBadReturn
		log.Printf("replay: return-mismatch: driver returned %s, trace recorded %s", got, want)
	}
	if !got.Succeeded() {
		log.Printf("replay: driver-failure: driver returned %s", got)
	}
	msgs := d.vq.drain()
	for _, m := range msgs {
		log.Printf("replay: validation: [%s] %s", m.LayerPrefix, m.Message)
	}
	if hasError(msgs) && status == StatusSuccess {
		status = StatusValidationError
	}
	return status
}

// errorf logs and returns StatusError, used for setup-failure-class
// conditions that abort a single call outright (display unavailable,
// and similar host-side prerequisites).
func (d *Driver) errorf(format string, args ...any) Status {
	log.Print(fmt.Sprintf("replay: "+format, args...))
	return StatusError
}
