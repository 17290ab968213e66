// SPDX-License-Identifier: EPL-2.0

package audwave

import "time"

// Timer is a pending single-shot callback.
type Timer interface {
	// Stop reports whether the call was prevented.
	Stop() bool
}

// Clock schedules the status message auto-clear.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
