// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

// Settings is a read-only configuration value passed into NewDriver.
// It is never exposed as ambient global state; handlers reach it only
// through the Driver they are methods of.
type Settings struct {
	// ScreenshotList, when non-empty, turns on injection of the
	// screenshot layer into instance/device creation when the layer is
	// available on the host but absent from the recorded layer list.
	// Only its emptiness is consulted; its content is not passed to
	// the layer.
	ScreenshotList string

	// AdjustForGPU selects deferred allocation mode in the Memory
	// Shadow: allocations are staged through a shadow buffer instead
	// of being materialized immediately.
	AdjustForGPU bool

	// Width and Height size the window the Display Adapter creates at
	// initialization, used as the fallback extent before any
	// swapchain-creation or surface-capability packet requests a
	// resize.
	Width, Height int

	// GPUIndex selects which live physical device the replay driver
	// treats as primary: when it is greater than zero and less than
	// the live device count, that device is swapped into slot 0 of the
	// live enumeration before recorded devices are correlated by
	// index. Other values leave the live order unchanged.
	GPUIndex int

	// DiscardDebugCallbacks mirrors the original replayer's
	// g_fpDbgMsgCallback being unset: when true, a recorded
	// vkCreateDebugReportCallbackEXT is accepted and reported as
	// successful but never actually created, and the corresponding
	// vkDestroyDebugReportCallbackEXT is a no-op. Validation messages
	// still flow to the Driver's own queue either way, since that path
	// does not depend on the trace's own callback objects.
	DiscardDebugCallbacks bool
}

// ScreenshotLayerName is the fixed, case-sensitive identifier the
// replay driver looks for in layer enumeration results.
const ScreenshotLayerName = "VK_LAYER_LUNARG_screenshot"
