// Copyright 2022 Gustavo C. Viegas. All rights reserved.

//go:build !windows

package vkffi

// #cgo linux LDFLAGS: -ldl
// #include <dlfcn.h>
// #include <stdlib.h>
// #include "proc.h"
import "C"

import (
	"errors"
	"runtime"
	"unsafe"
)

// ErrNotInstalled is returned by Open when the Vulkan loader library
// cannot be found on the host.
var ErrNotInstalled = errors.New("vkffi: vulkan loader not installed")

// lib is responsible for loading and unloading the Vulkan library,
// the same dlopen/dlsym sequence driver/vk's proc_posix.go uses.
type lib struct {
	h unsafe.Pointer
}

func (l *lib) open() error {
	var name *C.char
	switch runtime.GOOS {
	case "android":
		name = C.CString("libvulkan.so")
	default:
		name = C.CString("libvulkan.so.1")
	}
	defer C.free(unsafe.Pointer(name))
	h := C.dlopen(name, C.RTLD_LAZY|C.RTLD_GLOBAL)
	if h == nil {
		return ErrNotInstalled
	}
	sym := C.CString("vkGetInstanceProcAddr")
	defer C.free(unsafe.Pointer(sym))
	f := C.dlsym(h, sym)
	if f == nil {
		C.dlclose(h)
		return ErrNotInstalled
	}
	l.h = h
	C.vkffiGetInstanceProcAddr = C.PFN_vkGetInstanceProcAddr(f)
	C.vkffiLoadGlobal()
	return nil
}

func (l *lib) close() {
	if l.h != nil {
		C.dlclose(l.h)
	}
	C.vkffiClear()
	*l = lib{}
}
