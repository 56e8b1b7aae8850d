// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"log"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

// platformSurfaceExtensions lists the platform-specific windowing
// extensions. vkCreateInstance keeps only the one matching the replay
// host's platform and drops the others (see filterExtensions).
var platformSurfaceExtensions = map[string]bool{
	"VK_KHR_win32_surface":   true,
	"VK_KHR_xcb_surface":     true,
	"VK_KHR_xlib_surface":    true,
	"VK_KHR_wayland_surface": true,
	"VK_KHR_android_surface": true,
}

// hostSurfaceExtension returns the windowing extension name for the
// platform wsi is actually using, or "" if none applies.
func (d *Driver) hostSurfaceExtension() string {
	if d.disp == nil {
		return ""
	}
	return d.disp.HostSurfaceExtensionName()
}

// filterExtensions drops every platform-surface extension other than
// hostSurface from a recorded extension list and appends hostSurface
// if the recorded list does not already contain it. With hostSurface
// empty, every platform-surface extension is dropped and none added.
func filterExtensions(recorded []string, hostSurface string) []string {
	out := make([]string, 0, len(recorded)+1)
	hasHostSurface := false
	for _, ext := range recorded {
		if platformSurfaceExtensions[ext] {
			if ext == hostSurface {
				hasHostSurface = true
				out = append(out, ext)
			}
			continue
		}
		out = append(out, ext)
	}
	if hostSurface != "" && !hasHostSurface {
		out = append(out, hostSurface)
	}
	return out
}

// injectScreenshotLayer appends ScreenshotLayerName to layers if the
// replay settings request it, it is not already present, and it is
// reported available by the lister.
func injectScreenshotLayer(layers []string, screenshotList string, available []string) []string {
	if screenshotList == "" {
		return layers
	}
	for _, l := range layers {
		if l == ScreenshotLayerName {
			return layers
		}
	}
	for _, a := range available {
		if a == ScreenshotLayerName {
			out := make([]string, len(layers), len(layers)+1)
			copy(out, layers)
			return append(out, ScreenshotLayerName)
		}
	}
	return layers
}

func (d *Driver) createInstance(p packet.Packet) Status {
	args := p.Args.(packet.CreateInstanceArgs)

	info := args.Info
	info.EnabledExtensionNames = filterExtensions(args.Info.EnabledExtensionNames, d.hostSurfaceExtension())

	available, _ := d.table.EnumerateInstanceLayerProperties()
	info.EnabledLayerNames = injectScreenshotLayer(args.Info.EnabledLayerNames, d.settings.ScreenshotList, available)

	live, result := d.table.CreateInstance(info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindInstance, args.RecordedInstance, live)
		d.instance = live
	}
	return status
}

func (d *Driver) destroyInstance(p packet.Packet) Status {
	args := p.Args.(packet.DestroyInstanceArgs)
	live, abort := d.remapOrAbort(driverapi.KindInstance, args.Instance)
	if abort {
		return StatusValidationError
	}
	d.table.DestroyInstance(live)
	d.maps.Remove(driverapi.KindInstance, args.Instance)
	if d.instance == live {
		d.instance = driverapi.NullHandle
	}
	return StatusSuccess
}

// requiredQueueFlags is the minimum capability a queue family must
// expose for selectPhysicalDevice to consider its device at all.
const requiredQueueFlags = driverapi.QueueGraphics | driverapi.QueueCompute

// selectPhysicalDevice picks the best-scoring entry of live, mirroring
// vk.Driver.initDevice's weighting: a queue family exposing both
// graphics and compute is required, an integrated GPU adds 1 to the
// base weight of 1, a discrete GPU adds 2, and supporting the
// swapchain extension adds another 2; ties go to the earlier entry of
// live. It returns NullHandle if no device in live qualifies.
func (d *Driver) selectPhysicalDevice(live []driverapi.Handle) driverapi.Handle {
	best := driverapi.NullHandle
	bestWeight := -1
	for _, pdev := range live {
		if pdev == driverapi.NullHandle {
			continue
		}
		qualifies := false
		for _, fam := range d.table.GetPhysicalDeviceQueueFamilyProperties(pdev) {
			if fam.QueueFlags&requiredQueueFlags == requiredQueueFlags {
				qualifies = true
				break
			}
		}
		if !qualifies {
			continue
		}
		weight := 1
		switch d.table.GetPhysicalDeviceProperties(pdev).DeviceType {
		case driverapi.PhysicalDeviceTypeIntegratedGPU:
			weight++
		case driverapi.PhysicalDeviceTypeDiscreteGPU:
			weight += 2
		}
		if exts, result := d.table.EnumerateDeviceExtensionProperties(pdev); result.Succeeded() {
			for _, ext := range exts {
				if ext == "VK_KHR_swapchain" {
					weight += 2
					break
				}
			}
		}
		if weight > bestWeight {
			bestWeight = weight
			best = pdev
		}
	}
	return best
}

// enumeratePhysicalDevices correlates the real enumeration with the
// recorded list by index, warning (not aborting) on a count mismatch.
// A recorded index beyond the live count has no direct counterpart;
// rather than leave it unmapped, it falls back to
// selectPhysicalDevice's scoring heuristic.
func (d *Driver) enumeratePhysicalDevices(p packet.Packet) Status {
	args := p.Args.(packet.EnumeratePhysicalDevicesArgs)
	instance, abort := d.remapOrAbort(driverapi.KindInstance, args.Instance)
	if abort {
		return StatusValidationError
	}
	live, result := d.table.EnumeratePhysicalDevices(instance)
	status := d.finish(result, p.RecordedResult)
	if !result.Succeeded() {
		return status
	}
	if gi := d.settings.GPUIndex; gi > 0 && gi < len(live) {
		live[0], live[gi] = live[gi], live[0]
	}
	n := len(live)
	if len(args.RecordedDevices) != n {
		log.Printf("replay: vkEnumeratePhysicalDevices: recorded %d devices, host has %d", len(args.RecordedDevices), n)
		if len(args.RecordedDevices) < n {
			n = len(args.RecordedDevices)
		}
	}
	for i := 0; i < n; i++ {
		if args.RecordedDevices[i] == driverapi.NullHandle || live[i] == driverapi.NullHandle {
			continue
		}
		d.maps.Insert(driverapi.KindPhysicalDevice, args.RecordedDevices[i], live[i])
	}
	for i := n; i < len(args.RecordedDevices); i++ {
		if args.RecordedDevices[i] == driverapi.NullHandle {
			continue
		}
		if sel := d.selectPhysicalDevice(live); sel != driverapi.NullHandle {
			d.maps.Insert(driverapi.KindPhysicalDevice, args.RecordedDevices[i], sel)
		}
	}
	return status
}
