// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

// queueSubmit rebuilds the submit array with every embedded handle
// remapped: command buffers and both semaphore arrays per batch. A
// single unmapped handle anywhere in the batch aborts the whole call,
// matching manually_replay_vkQueueSubmit's all-or-nothing rewrite.
func (d *Driver) queueSubmit(p packet.Packet) Status {
	args := p.Args.(packet.QueueSubmitArgs)
	queue, abort := d.remapOrAbort(driverapi.KindQueue, args.Queue)
	if abort {
		return StatusValidationError
	}
	fence, abort := d.remapOrAbort(driverapi.KindFence, args.Fence)
	if abort {
		return StatusValidationError
	}
	submits := make([]driverapi.SubmitInfo, len(args.Submits))
	for i, s := range args.Submits {
		ns := driverapi.SubmitInfo{}
		ns.WaitSemaphores = make([]driverapi.Handle, len(s.WaitSemaphores))
		for j, h := range s.WaitSemaphores {
			live, abort := d.remapOrAbort(driverapi.KindSemaphore, h)
			if abort {
				return StatusValidationError
			}
			ns.WaitSemaphores[j] = live
		}
		ns.CommandBuffers = make([]driverapi.Handle, len(s.CommandBuffers))
		for j, h := range s.CommandBuffers {
			live, abort := d.remapOrAbort(driverapi.KindCommandBuffer, h)
			if abort {
				return StatusValidationError
			}
			ns.CommandBuffers[j] = live
		}
		ns.SignalSemaphores = make([]driverapi.Handle, len(s.SignalSemaphores))
		for j, h := range s.SignalSemaphores {
			live, abort := d.remapOrAbort(driverapi.KindSemaphore, h)
			if abort {
				return StatusValidationError
			}
			ns.SignalSemaphores[j] = live
		}
		submits[i] = ns
	}
	result := d.table.QueueSubmit(queue, submits, fence)
	return d.finish(result, p.RecordedResult)
}
