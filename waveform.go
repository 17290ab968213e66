// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ik5/audwave/bus"
	"github.com/ik5/audwave/config"
	"github.com/ik5/audwave/interact"
	"github.com/ik5/audwave/render"
	"github.com/ik5/audwave/surface"
	"github.com/ik5/audwave/zone"
)

// PauseMessage is shown for MessageTimeout when the player pauses.
const (
	PauseMessage   = "Paused..."
	MessageTimeout = time.Second
)

// State tells whether the interactive listeners are live.
type State int

const (
	Detached State = iota
	Attached
)

func (s State) String() string {
	switch s {
	case Detached:
		return "detached"
	case Attached:
		return "attached"
	default:
		return "unknown"
	}
}

// Waveform is one rendered track. It is safe for concurrent use; handlers
// run to completion one at a time.
type Waveform struct {
	mu sync.Mutex

	ch      bus.Channel
	surface surface.Surface
	data    Data
	track   Track
	log     *slog.Logger
	clock   Clock

	zoneOpts []zone.Option
	zones    *zone.Store
	machine  *interact.Machine
	engine   *render.Engine

	state    State
	playing  bool
	disposed bool

	lifetime []bus.Handle
	player   []bus.Handle
	unbind   func()

	message    string
	timer      Timer
	messageGen uint64
}

// New draws data onto s and starts listening for playback on ch.
func New(ch bus.Channel, s surface.Surface, data Data, cfg config.Config, opts ...Option) *Waveform {
	w := &Waveform{
		ch:      ch,
		surface: s,
		data:    data,
		track:   Track{ID: data.ID},
		log:     slog.Default(),
		clock:   systemClock{},
	}
	for _, o := range opts {
		o(w)
	}

	w.zones = zone.NewStore(w.zoneOpts...)
	w.machine = interact.New(w.zones)
	w.engine = render.New(s, cfg)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.redraw()
	w.lifetime = []bus.Handle{
		ch.Subscribe(bus.TopicPlaying, w.onPlaying),
		ch.Subscribe(bus.TopicStop, w.onStop),
	}

	return w
}

// Dispose releases every subscription and pointer binding. Events arriving
// afterwards are ignored. Calling it again does nothing.
func (w *Waveform) Dispose() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.disposed {
		return
	}
	w.disposed = true

	w.release()
	w.state = Detached
	w.playing = false

	for _, h := range w.lifetime {
		w.ch.Unsubscribe(h)
	}
	w.lifetime = nil

	w.stopTimer()
	w.log.Debug("waveform disposed", "track", w.track.ID)
}

// Reconfigure replaces the configuration and redraws.
func (w *Waveform) Reconfigure(cfg config.Config) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.engine.SetConfig(cfg)
	w.redraw()
}

// Redraw rebuilds the whole shape, typically after the surface was resized.
func (w *Waveform) Redraw() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.redraw()
}

func (w *Waveform) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

// Playing reports the last known playback state of the bound track.
func (w *Waveform) Playing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.playing
}

// Mode is the current pointer intent.
func (w *Waveform) Mode() interact.Mode {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.machine.Mode()
}

func (w *Waveform) Track() Track { return w.track }

// Layout returns the geometry of the last redraw.
func (w *Waveform) Layout() render.Layout {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.engine.Layout()
}

// Zones returns the committed zones ordered by start.
func (w *Waveform) Zones() []zone.Zone {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.zones.Zones()
}

// RemoveZone deletes a committed zone and reports whether it existed.
func (w *Waveform) RemoveZone(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.zones.Remove(id) {
		return false
	}
	w.engine.DrawZones(w.zones.Zones())

	return true
}

// ClearZones drops every committed zone and the pending one.
func (w *Waveform) ClearZones() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.zones.Clear()
	w.engine.DrawZones(nil)
	w.engine.DrawActiveZone(nil)
}

// redraw must be called with w.mu held.
func (w *Waveform) redraw() {
	var pending *zone.Pending
	if p, ok := w.zones.Pending(); ok {
		pending = &p
	}

	w.engine.Redraw(render.Frame{
		Samples:     w.data.Values(),
		Duration:    w.data.Duration,
		Interactive: w.state == Attached,
		Zones:       w.zones.Zones(),
		Pending:     pending,
		Message:     w.message,
	})
	w.zones.Rescale(w.engine.Scales().Time.Map)
}
