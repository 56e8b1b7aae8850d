// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package vkffi implements driverapi.Table by loading the Vulkan
// loader library and calling through its exported function table,
// the same dlopen/dlsym-then-vkGetInstanceProcAddr sequence
// driver/vk uses, but narrowed to the entry points a replay driver
// needs rather than a full rendering engine's surface.
package vkffi

// #include "proc.h"
import "C"

import (
	"sync"
	"unsafe"

	"github.com/gviegas/vkreplay/driverapi"
)

// Table is a driverapi.Table backed by a real Vulkan loader library.
type Table struct {
	lib
	mu     sync.Mutex
	cb     func(driverapi.ValidationMessage)
	sinkID uintptr
}

// Open loads the Vulkan library and resolves global-level procedures.
// Instance- and device-level procedures are resolved lazily, once
// CreateInstance and CreateDevice supply the objects they are scoped
// to, mirroring driver/vk's initInstance/initDevice split.
func Open() (*Table, error) {
	t := &Table{}
	if err := t.lib.open(); err != nil {
		return nil, err
	}
	return t, nil
}

// Close releases the Vulkan library. Callers must ensure every object
// created through t has already been destroyed.
func (t *Table) Close() error {
	t.lib.close()
	return nil
}

// SetValidationCallback implements driverapi.Table.
func (t *Table) SetValidationCallback(cb func(driverapi.ValidationMessage)) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()
	registerSink(t)
}

func (t *Table) deliver(m driverapi.ValidationMessage) {
	t.mu.Lock()
	cb := t.cb
	t.mu.Unlock()
	if cb != nil {
		cb(m)
	}
}

// checkResult translates a VkResult into a driverapi.Result. The two
// types share numeric encodings by construction (see driverapi's
// Result doc comment), so this is a plain conversion, not a lookup
// table, unlike driver/vk's checkResult which maps VkResult onto a
// set of named Go errors for a caller that wants error values instead
// of status codes.
func checkResult(r C.VkResult) driverapi.Result {
	return driverapi.Result(int32(r))
}

// toPtr and fromPtr convert between a driverapi.Handle and the
// pointer-sized value every Vulkan handle type (dispatchable or not)
// is defined as on a 64-bit host. Call sites cast the unsafe.Pointer
// to the specific C.VkXxx type they need.
func toPtr(h driverapi.Handle) unsafe.Pointer {
	return unsafe.Pointer(uintptr(h))
}

func fromPtr(p unsafe.Pointer) driverapi.Handle {
	return driverapi.Handle(uintptr(p))
}
