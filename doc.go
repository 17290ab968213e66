// SPDX-License-Identifier: EPL-2.0

// Package audwave renders an audio waveform from a precomputed peak array,
// keeps it in step with an external player and turns pointer activity over
// it into seeks and highlighted zones.
//
// A Waveform draws onto a surface.Surface and talks to the player over a
// bus.Channel. It never decodes or plays audio itself; the peaks package and
// its formats produce the input data and a host-owned player publishes
// playback progress.
//
// # Quick Start
//
//	ch := bus.New()
//	doc := surface.NewDocument(surface.Box{Width: 800})
//
//	w := audwave.New(ch, doc, audwave.Data{
//		ID:       "42",
//		Duration: 180,
//		Peaks:    values,
//	}, config.Default())
//	defer w.Dispose()
//
//	// The player announces the track: the waveform attaches.
//	ch.Publish(bus.TopicPlaying, audwave.Track{ID: "42"}, audwave.PlaybackInfo{CurrentTime: 3, Buffered: 0.2})
//
// # Player Synchronisation
//
// Every waveform holds two lifetime subscriptions, to bus.TopicPlaying and
// bus.TopicStop. When a playing event names the waveform's own track the
// waveform becomes Attached: it subscribes to progress and pause events,
// binds pointer handlers to its surface and redraws with the interactive
// overlay. When another track plays, or playback stops, it detaches and
// releases all of those again. Repeated events never attach twice.
//
// While attached, a release in the seek band publishes bus.TopicSeek with
// the bound Track and the target time in seconds. With highlight mode on,
// dragging across the zone band during playback commits a highlighted zone.
package audwave
