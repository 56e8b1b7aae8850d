// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package display

import "testing"

func TestNilAdapter(t *testing.T) {
	var a *Adapter

	a.Close() // must not panic

	if err := a.Resize(640, 480); err == nil {
		t.Error("Resize: expected an error on a nil Adapter")
	}
	if w, h := a.Extent(); w != 0 || h != 0 {
		t.Errorf("Extent = (%d, %d), want (0, 0)", w, h)
	}
	if name := a.HostSurfaceExtensionName(); name != "" {
		t.Errorf("HostSurfaceExtensionName = %q, want \"\"", name)
	}
	if _, err := a.Descriptor(); err == nil {
		t.Error("Descriptor: expected an error on a nil Adapter")
	}
}

func TestAdapterNoWindow(t *testing.T) {
	a := &Adapter{}

	if err := a.Resize(640, 480); err == nil {
		t.Error("Resize: expected an error when no window is owned")
	}
	if w, h := a.Extent(); w != 0 || h != 0 {
		t.Errorf("Extent = (%d, %d), want (0, 0)", w, h)
	}
	if _, err := a.Descriptor(); err == nil {
		t.Error("Descriptor: expected an error when no window is owned")
	}

	a.Close() // must not panic
}
