// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkffi

// #include <windows.h>
// #include <stdlib.h>
// #include "proc.h"
import "C"

import (
	"errors"
	"unsafe"
)

// ErrNotInstalled is returned by Open when the Vulkan loader library
// cannot be found on the host.
var ErrNotInstalled = errors.New("vkffi: vulkan loader not installed")

// lib is responsible for loading and unloading the Vulkan library,
// the same LoadLibrary/GetProcAddress sequence driver/vk's
// proc_windows.go uses.
type lib struct {
	h C.HMODULE
}

func (l *lib) open() error {
	name := C.CString("vulkan-1.dll")
	defer C.free(unsafe.Pointer(name))
	h := C.LoadLibrary(name)
	if h == nil {
		return ErrNotInstalled
	}
	sym := C.CString("vkGetInstanceProcAddr")
	defer C.free(unsafe.Pointer(sym))
	f := C.GetProcAddress(h, sym)
	if f == nil {
		C.FreeLibrary(h)
		return ErrNotInstalled
	}
	l.h = h
	C.vkffiGetInstanceProcAddr = C.PFN_vkGetInstanceProcAddr(f)
	C.vkffiLoadGlobal()
	return nil
}

func (l *lib) close() {
	if l.h != nil {
		C.FreeLibrary(l.h)
	}
	C.vkffiClear()
	*l = lib{}
}
