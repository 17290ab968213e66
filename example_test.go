// SPDX-License-Identifier: EPL-2.0

package audwave_test

import (
	"fmt"

	"github.com/ik5/audwave"
	"github.com/ik5/audwave/bus"
	"github.com/ik5/audwave/config"
	"github.com/ik5/audwave/scale"
	"github.com/ik5/audwave/surface"
)

// Example shows a waveform following a player and turning a click into a
// seek event.
func Example() {
	ch := bus.New()
	doc := surface.NewDocument(surface.Box{Width: 600})

	data := audwave.Data{
		ID:       "42",
		Duration: 60,
		Peaks:    scale.Scalars(0.2, 0.8, -0.4, 1, 0.6, -0.1),
	}

	w := audwave.New(ch, doc, data, config.Default())
	defer w.Dispose()

	ch.Subscribe(bus.TopicSeek, func(args ...any) {
		track := args[0].(audwave.Track)
		fmt.Printf("seek %s to %s\n", track.ID, audwave.FormatDuration(args[1].(float64)))
	})

	ch.Publish(bus.TopicPlaying, audwave.Track{ID: "42"}, audwave.PlaybackInfo{CurrentTime: 5, Buffered: 0.5})
	fmt.Println(w.State())

	doc.Dispatch(surface.PointerEvent{Kind: surface.PointerMove, PageX: 450, PageY: 30})
	doc.Dispatch(surface.PointerEvent{Kind: surface.PointerUp})

	ch.Publish(bus.TopicStop)
	fmt.Println(w.State())

	// Output:
	// attached
	// seek 42 to 00:45
	// detached
}

// ExampleFormatDuration formats a track length for a status overlay.
func ExampleFormatDuration() {
	fmt.Println(audwave.FormatDuration(187.4))
	// Output: 03:07
}
