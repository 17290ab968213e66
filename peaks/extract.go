// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audwave/scale"
)

// maxEmptyReads bounds how many (0, nil) reads Extract tolerates in a row.
const maxEmptyReads = 100

// Peaks is a reduced stream ready to plot.
type Peaks struct {
	Duration float64        `json:"duration"`
	Values   []scale.Sample `json:"peaks"`
}

// Extract reads src to the end and returns one [positive, negative] pair
// per samplesPerPeak mono frames. The last bucket may be shorter. It does
// not close src.
func Extract(src Source, samplesPerPeak int) (Peaks, error) {
	if samplesPerPeak <= 0 {
		return Peaks{}, ErrInvalidBucketSize
	}
	rate := src.SampleRate()
	if rate <= 0 {
		return Peaks{}, fmt.Errorf("%w: %d", ErrInvalidSampleRate, rate)
	}

	mono := NewMono(src)
	buf := make([]float32, max(src.BufSize(), 1024))

	var (
		out      []scale.Sample
		frames   int
		inBucket int
		pos, neg float64
		empty    int
	)

	for {
		n, err := mono.ReadSamples(buf)

		for _, v := range buf[:n] {
			if f := float64(v); f > pos {
				pos = f
			} else if -f > neg {
				neg = -f
			}

			inBucket++
			if inBucket == samplesPerPeak {
				out = append(out, scale.PairOf(pos, neg))
				inBucket, pos, neg = 0, 0, 0
			}
		}
		frames += n

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Peaks{}, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return Peaks{}, ErrNoProgress
			}
			continue
		}
		empty = 0
	}

	if inBucket > 0 {
		out = append(out, scale.PairOf(pos, neg))
	}
	if frames == 0 {
		return Peaks{}, ErrNoSamples
	}

	return Peaks{
		Duration: float64(frames) / float64(rate),
		Values:   out,
	}, nil
}
