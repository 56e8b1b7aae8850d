// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package display implements the Display Adapter: it owns the
// native window opened at replay initialization and exposes the
// platform-specific surface descriptor that surface-creation
// handlers substitute for whatever the trace recorded.
package display

import (
	"fmt"

	"github.com/gviegas/vkreplay/wsi"
)

// XcbDescriptor is the surface descriptor on an XCB host.
type XcbDescriptor struct {
	Connection uintptr
	Window     uint32
}

// XlibDescriptor is the surface descriptor on an Xlib host.
type XlibDescriptor struct {
	Display uintptr
	Window  uintptr
}

// Win32Descriptor is the surface descriptor on a Win32 host.
type Win32Descriptor struct {
	Hinstance uintptr
	Hwnd      uintptr
}

// Adapter owns the single native window the replay driver presents
// into. A nil *Adapter is valid and behaves as if no window system is
// available (every Descriptor call returns an error); this lets the
// replay driver run traces that never touch presentation on a host
// with no wsi implementation.
type Adapter struct {
	win wsi.Window
}

// Open creates a new window sized width x height, unless win is
// non-nil, in which case the embedding environment's pre-existing
// window is adopted instead.
func Open(width, height int, title string, win wsi.Window) (*Adapter, error) {
	if win != nil {
		return &Adapter{win: win}, nil
	}
	if wsi.PlatformInUse() == wsi.None {
		return &Adapter{}, nil
	}
	w, err := wsi.NewWindow(width, height, title)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	if err := w.Map(); err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	return &Adapter{win: w}, nil
}

// Close closes the owned window, if any.
func (a *Adapter) Close() {
	if a == nil || a.win == nil {
		return
	}
	a.win.Close()
}

// Resize matches the window to the recorded extent, called from
// surface-capability and swapchain-creation handlers.
func (a *Adapter) Resize(width, height int) error {
	if a == nil || a.win == nil {
		return fmt.Errorf("display: no window")
	}
	return a.win.Resize(width, height)
}

// Extent returns the window's current width and height.
func (a *Adapter) Extent() (width, height int) {
	if a == nil || a.win == nil {
		return 0, 0
	}
	return a.win.Width(), a.win.Height()
}

// HostSurfaceExtensionName returns the windowing extension name for
// the platform wsi is actually using ("" if none applies), for
// instance-creation extension filtering.
func (a *Adapter) HostSurfaceExtensionName() string {
	if a == nil {
		return ""
	}
	switch wsi.PlatformInUse() {
	case wsi.XCB:
		return "VK_KHR_xcb_surface"
	case wsi.Win32:
		return "VK_KHR_win32_surface"
	default:
		return ""
	}
}

// Descriptor returns the platform-specific surface descriptor for
// the owned window, or an error if no window system is available.
// The concrete type is one of XcbDescriptor, XlibDescriptor or
// Win32Descriptor depending on wsi.PlatformInUse.
func (a *Adapter) Descriptor() (any, error) {
	if a == nil || a.win == nil {
		return nil, fmt.Errorf("display: no window")
	}
	switch wsi.PlatformInUse() {
	case wsi.XCB:
		return XcbDescriptor{
			Connection: uintptr(wsi.ConnXCB()),
			Window:     wsi.WindowXCB(a.win),
		}, nil
	case wsi.Wayland:
		// Wayland exposes no stable KHR surface extension in this
		// module's supported entry points; callers fall back to
		// dropping the surface-creation call, matching the source's
		// handling of platforms with no matching VK_USE_PLATFORM_*.
		return nil, fmt.Errorf("display: no surface extension for wayland")
	case wsi.Win32:
		return Win32Descriptor{
			Hinstance: uintptr(wsi.HinstanceWin32()),
			Hwnd:      uintptr(wsi.HwndWin32(a.win)),
		}, nil
	default:
		return nil, fmt.Errorf("display: unsupported platform")
	}
}
