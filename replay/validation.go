// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package replay

import (
	"sync"

	"github.com/gviegas/vkreplay/driverapi"
)

// validationQueue is the one structure in this package that may be
// appended to from a driver-owned callback thread (the Table's
// ValidationMessage sink); every other field of Driver is touched
// only from the replay thread and needs no locking.
type validationQueue struct {
	mu   sync.Mutex
	msgs []driverapi.ValidationMessage
}

func (q *validationQueue) push(m driverapi.ValidationMessage) {
	q.mu.Lock()
	q.msgs = append(q.msgs, m)
	q.mu.Unlock()
}

// drain removes and returns every queued message. It runs from the
// replay thread after each driver call.
func (q *validationQueue) drain() []driverapi.ValidationMessage {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.msgs) == 0 {
		return nil
	}
	out := q.msgs
	q.msgs = nil
	return out
}

// hasError reports whether any message in msgs is error-severity.
// Only error-severity messages promote a call's status to
// validation-error; lower-severity messages are logged but otherwise
// do not affect the call outcome.
func hasError(msgs []driverapi.ValidationMessage) bool {
	for _, m := range msgs {
		if m.Severity == driverapi.SeverityError {
			return true
		}
	}
	return false
}
