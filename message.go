// SPDX-License-Identifier: EPL-2.0

package audwave

import "time"

// ShowMessage puts msg on the status layer. A positive timeout clears it
// afterwards unless a newer message replaced it first. An empty msg clears
// the layer. Nothing happens when the overlay is disabled.
func (w *Waveform) ShowMessage(msg string, timeout time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.disposed {
		return
	}
	w.showMessage(msg, timeout)
}

// Message returns the status text currently shown.
func (w *Waveform) Message() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.message
}

// showMessage must be called with w.mu held.
func (w *Waveform) showMessage(msg string, timeout time.Duration) {
	if w.engine.Config().TextOverlay <= 0 {
		return
	}

	w.stopTimer()
	w.message = msg
	w.engine.SetMessage(msg)

	if msg == "" || timeout <= 0 {
		return
	}

	gen := w.messageGen
	w.timer = w.clock.AfterFunc(timeout, func() { w.expireMessage(gen) })
}

func (w *Waveform) expireMessage(gen uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.disposed || gen != w.messageGen {
		return
	}

	w.timer = nil
	w.message = ""
	w.engine.SetMessage("")
}

// stopTimer cancels the pending auto-clear. The generation bump makes a
// callback that already fired a no-op.
func (w *Waveform) stopTimer() {
	w.messageGen++
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
