// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkffi

// #include "proc.h"
import "C"

import (
	"sync"
	"unsafe"

	"github.com/gviegas/vkreplay/driverapi"
)

// sinks maps the opaque id handed to Vulkan as pUserData back to the
// Table whose SetValidationCallback sink should receive the message.
// A plain integer id, rather than a Go pointer, crosses the cgo
// boundary because Vulkan retains pUserData for the callback's
// lifetime and cgo forbids C code from holding on to a Go pointer
// past the call that produced it.
var (
	sinksMu sync.Mutex
	sinks   = map[uintptr]*Table{}
	nextID  uintptr = 1
)

func registerSink(t *Table) {
	sinksMu.Lock()
	defer sinksMu.Unlock()
	if t.sinkID != 0 {
		return
	}
	t.sinkID = nextID
	nextID++
	sinks[t.sinkID] = t
}

//export goDebugCallback
func goDebugCallback(flags, objectType uint32, object, location uint64, messageCode int32, layerPrefix, message *C.char, userData unsafe.Pointer) {
	sinksMu.Lock()
	t := sinks[uintptr(userData)]
	sinksMu.Unlock()
	if t == nil {
		return
	}
	sev := driverapi.SeverityInfo
	switch {
	case flags&C.VK_DEBUG_REPORT_ERROR_BIT_EXT != 0:
		sev = driverapi.SeverityError
	case flags&C.VK_DEBUG_REPORT_WARNING_BIT_EXT != 0:
		sev = driverapi.SeverityWarning
	case flags&C.VK_DEBUG_REPORT_PERFORMANCE_WARNING_BIT_EXT != 0:
		sev = driverapi.SeverityPerf
	}
	t.deliver(driverapi.ValidationMessage{
		Severity:    sev,
		ObjectType:  objectType,
		SrcObject:   driverapi.Handle(object),
		Location:    location,
		Code:        messageCode,
		LayerPrefix: C.GoString(layerPrefix),
		Message:     C.GoString(message),
	})
}

// CreateDebugReportCallback implements driverapi.Table.
func (t *Table) CreateDebugReportCallback(instance driverapi.Handle, info driverapi.DebugReportCallbackCreateInfo) (driverapi.Handle, driverapi.Result) {
	registerSink(t)
	var cb C.VkDebugReportCallbackEXT
	r := C.vkffiCreateDebugReportCallbackEXT(C.VkInstance(toPtr(instance)), C.VkDebugReportFlagsEXT(info.Flags), unsafe.Pointer(t.sinkID), &cb)
	return fromPtr(unsafe.Pointer(cb)), checkResult(r)
}

// DestroyDebugReportCallback implements driverapi.Table.
func (t *Table) DestroyDebugReportCallback(instance, callback driverapi.Handle) {
	C.vkffiDestroyDebugReportCallbackEXT(C.VkInstance(toPtr(instance)), C.VkDebugReportCallbackEXT(toPtr(callback)))
}
