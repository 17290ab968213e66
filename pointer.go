// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"github.com/ik5/audwave/bus"
	"github.com/ik5/audwave/interact"
	"github.com/ik5/audwave/surface"
	"github.com/ik5/audwave/zone"
)

// onPointer is bound to the surface while attached. The seek event is
// published after the lock is released so subscribers may call back into
// the waveform.
func (w *Waveform) onPointer(ev surface.PointerEvent) {
	seek, seconds := w.handlePointer(ev)
	if !seek {
		return
	}

	w.log.Debug("seek", "track", w.track.ID, "seconds", seconds)
	w.ch.Publish(bus.TopicSeek, w.track, seconds)
}

func (w *Waveform) handlePointer(ev surface.PointerEvent) (bool, float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.disposed || w.state != Attached {
		return false, 0
	}

	l := w.engine.Layout()
	g := l.Geometry()
	x, y := ev.PageX-l.Left, ev.PageY-l.Top

	switch ev.Kind {
	case surface.PointerMove:
		w.apply(w.machine.Move(x, y, g))

	case surface.PointerLeave:
		w.apply(w.machine.Leave())

	case surface.PointerDown:
		w.apply(w.machine.Press(x, y, g))

	case surface.PointerUp:
		tx := w.engine.Scales().Time
		out := w.machine.Release(w.playing, tx.Invert)

		if out.Committed {
			w.log.Debug("zone committed", "track", w.track.ID, "zone", out.Zone.ID,
				"start", out.Zone.StartTime, "end", out.Zone.EndTime)
			w.engine.DrawZones(w.zones.Zones())
		}
		if out.Discarded {
			w.log.Debug("zone discarded", "track", w.track.ID)
		}
		if out.Committed || out.Discarded {
			w.engine.DrawActiveZone(nil)
		}
		if out.Seek {
			return true, tx.Invert(out.SeekX)
		}
	}

	return false, 0
}

func (w *Waveform) apply(eff interact.Effect) {
	switch {
	case eff.ShowSeek:
		w.engine.ShowSeek(eff.SeekX)
	case eff.HideSeek:
		w.engine.HideSeek()
	}

	if !eff.ActiveZone {
		return
	}

	var pending *zone.Pending
	if p, ok := w.zones.Pending(); ok {
		pending = &p
	}
	w.engine.DrawActiveZone(pending)
}
