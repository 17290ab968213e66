// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"fmt"
	"math"

	"github.com/ik5/audwave/scale"
)

// Track identifies the audio a player is working on.
type Track struct {
	ID string `json:"id"`
}

// PlaybackInfo is the progress a player reports with every playing event.
// The zero value describes a track playing from the start.
type PlaybackInfo struct {
	// CurrentTime is the playback position in seconds.
	CurrentTime float64 `json:"currentTime"`
	// Buffered is the playable fraction of the track, in [0, 1].
	Buffered float64 `json:"buffered"`
	Paused   bool    `json:"paused"`
}

// Data is the input a waveform renders. Peaks takes precedence over
// Samples when both are set.
type Data struct {
	ID       string         `json:"id"`
	Duration float64        `json:"duration"`
	Peaks    []scale.Sample `json:"peaks,omitempty"`
	Samples  []scale.Sample `json:"samples,omitempty"`
}

// Values returns the amplitude sequence to plot.
func (d Data) Values() []scale.Sample {
	if d.Peaks != nil {
		return d.Peaks
	}
	return d.Samples
}

// FormatDuration renders seconds as mm:ss, rounding to the nearest second.
// Minutes are not wrapped into hours.
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}

	total := int64(math.Round(seconds))

	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func trackArg(args []any) (Track, bool) {
	if len(args) == 0 {
		return Track{}, false
	}

	switch t := args[0].(type) {
	case Track:
		return t, t.ID != ""
	case *Track:
		if t == nil {
			return Track{}, false
		}
		return *t, t.ID != ""
	}

	return Track{}, false
}

func infoArg(args []any) (PlaybackInfo, bool) {
	if len(args) < 2 {
		return PlaybackInfo{}, false
	}

	switch p := args[1].(type) {
	case PlaybackInfo:
		return p, true
	case *PlaybackInfo:
		if p == nil {
			return PlaybackInfo{}, false
		}
		return *p, true
	}

	return PlaybackInfo{}, false
}
