// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

// createDebugReportCallback mirrors manually_replay_vkCreateDebugReportCallbackEXT's
// accept-and-discard branch: when the driver has no validation sink to
// forward into (Settings.DiscardDebugCallbacks), the call is reported
// as successful but no live object is created and nothing is inserted
// into the Handle Map, so destroyDebugReportCallback later sees an
// unmapped handle and likewise no-ops rather than aborting.
func (d *Driver) createDebugReportCallback(p packet.Packet) Status {
	args := p.Args.(packet.CreateDebugReportCallbackArgs)
	instance, abort := d.remapOrAbort(driverapi.KindInstance, args.Instance)
	if abort {
		return StatusValidationError
	}
	if d.settings.DiscardDebugCallbacks {
		return d.finish(driverapi.ResultSuccess, p.RecordedResult)
	}
	live, result := d.table.CreateDebugReportCallback(instance, args.Info)
	status := d.finish(result, p.RecordedResult)
	if result.Succeeded() && live != driverapi.NullHandle {
		d.maps.Insert(driverapi.KindDebugCallback, args.RecordedCallback, live)
	}
	return status
}

func (d *Driver) destroyDebugReportCallback(p packet.Packet) Status {
	args := p.Args.(packet.DestroyDebugReportCallbackArgs)
	instance, abort := d.remapOrAbort(driverapi.KindInstance, args.Instance)
	if abort {
		return StatusValidationError
	}
	live := d.maps.Lookup(driverapi.KindDebugCallback, args.Callback)
	if live == driverapi.NullHandle {
		// Either a null handle or one that was accepted-and-discarded
		// at creation time; either way there is nothing live to tear
		// down.
		return StatusSuccess
	}
	d.table.DestroyDebugReportCallback(instance, live)
	d.maps.Remove(driverapi.KindDebugCallback, args.Callback)
	return StatusSuccess
}
