// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audwave/peaks"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader the source uses.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	// length in frames, 0 when unknown
	length int64
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// Duration is the stream length in seconds, or 0 when unknown.
func (s *source) Duration() float64 {
	if s.length <= 0 || s.sampleRate <= 0 {
		return 0
	}
	return float64(s.length) / float64(s.sampleRate)
}

// ReadSamples reads whole frames into dst. oggvorbis counts interleaved
// values, not frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	frames := len(dst) / s.channels
	if frames == 0 {
		return 0, io.ErrShortBuffer
	}

	n, err := s.dec.Read(dst[:frames*s.channels])
	if n == 0 && err == nil {
		return 0, nil
	}

	return n, err
}

type Decoder struct{}

var _ peaks.Decoder = Decoder{}

func (Decoder) Decode(r io.Reader) (peaks.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding vorbis: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		length:     dec.Length(),
	}, nil
}
