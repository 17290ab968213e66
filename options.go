// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"log/slog"

	"github.com/ik5/audwave/zone"
)

// Option configures a Waveform.
type Option func(*Waveform)

// WithLogger sets the logger used for lifecycle debug records.
func WithLogger(l *slog.Logger) Option {
	return func(w *Waveform) { w.log = l }
}

// WithClock replaces the scheduler used by status messages.
func WithClock(c Clock) Option {
	return func(w *Waveform) { w.clock = c }
}

// WithTrack binds the waveform to t instead of a track named after the
// data ID. The bound track is matched against playing events and sent with
// seek events.
func WithTrack(t Track) Option {
	return func(w *Waveform) { w.track = t }
}

// WithZoneOptions passes options to the zone store.
func WithZoneOptions(opts ...zone.Option) Option {
	return func(w *Waveform) { w.zoneOpts = append(w.zoneOpts, opts...) }
}
