// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"math"

	"github.com/ik5/audwave/bus"
)

// onPlaying is the lifetime handler deciding whether this waveform is the
// one playing.
func (w *Waveform) onPlaying(args ...any) {
	track, ok := trackArg(args)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.disposed {
		return
	}
	if !ok || w.track.ID == "" {
		w.log.Debug("ignoring malformed playing event", "track", w.track.ID, "args", len(args))
		return
	}

	mine := track.ID == w.track.ID
	w.playing = mine

	switch {
	case mine && w.state == Detached:
		w.attach()
	case !mine && w.state == Attached:
		w.detach()
	}
}

func (w *Waveform) onStop(...any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.disposed {
		return
	}

	w.playing = false
	if w.state == Attached {
		w.detach()
	}
}

// onProgress runs only while attached.
func (w *Waveform) onProgress(args ...any) {
	track, ok := trackArg(args)
	info, hasInfo := infoArg(args)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.disposed || w.state != Attached {
		return
	}
	if !ok || !hasInfo {
		w.log.Debug("ignoring malformed progress event", "track", w.track.ID, "args", len(args))
		return
	}
	if track.ID != w.track.ID {
		return
	}

	w.playing = !info.Paused
	w.engine.SetPosition(info.CurrentTime)

	s := w.engine.Scales()
	buffered := min(max(info.Buffered, 0), 1)
	if math.IsNaN(buffered) {
		buffered = 0
	}
	end := s.Index.Invert(s.Time.Map(buffered * w.data.Duration))
	w.engine.Update(0, int(math.Ceil(end)))
}

func (w *Waveform) onPause(...any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.disposed || w.state != Attached {
		return
	}

	w.playing = false
	w.showMessage(PauseMessage, MessageTimeout)
}

// attach must be called with w.mu held.
func (w *Waveform) attach() {
	w.player = []bus.Handle{
		w.ch.Subscribe(bus.TopicPlaying, w.onProgress),
		w.ch.Subscribe(bus.TopicPause, w.onPause),
	}
	w.unbind = w.surface.Bind(w.onPointer)
	w.state = Attached

	w.redraw()
	w.engine.Update(0, 1)

	w.log.Debug("waveform attached", "track", w.track.ID)
}

// detach must be called with w.mu held.
func (w *Waveform) detach() {
	w.release()
	w.state = Detached
	w.redraw()

	w.log.Debug("waveform detached", "track", w.track.ID)
}

// release drops the player subscriptions and pointer binding. It is safe
// to call when nothing is attached.
func (w *Waveform) release() {
	for _, h := range w.player {
		w.ch.Unsubscribe(h)
	}
	w.player = nil

	if w.unbind != nil {
		w.unbind()
		w.unbind = nil
	}

	w.machine.Leave()
}
