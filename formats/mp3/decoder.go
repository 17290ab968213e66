// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audwave/peaks"
)

// mp3Reader is the part of gomp3.Decoder the source uses.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// partial holds bytes of a frame split across reads.
	partial []byte
	length  int64
}

// go-mp3 decodes to 16-bit stereo.
const (
	channels   = 2
	frameBytes = 2 * channels
)

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

// Duration is the stream length in seconds, or 0 when unknown.
func (s *source) Duration() float64 {
	if s.length <= 0 || s.sampleRate <= 0 {
		return 0
	}
	return float64(s.length) / float64(frameBytes*s.sampleRate)
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Whole frames only, so a mono mix never splits one.
	frames := len(dst) / channels
	if frames == 0 {
		return 0, io.ErrShortBuffer
	}
	need := frames * frameBytes
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	carried := copy(s.buf, s.partial)
	s.partial = s.partial[:0]

	n, err := s.dec.Read(s.buf[carried:])
	n += carried

	whole := n - n%frameBytes
	s.partial = append(s.partial, s.buf[whole:n]...)
	samples := whole / 2

	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(v) / 32768
	}

	if samples == 0 && err == nil {
		return 0, nil
	}
	return samples, err
}

type Decoder struct{}

var _ peaks.Decoder = Decoder{}

func (Decoder) Decode(r io.Reader) (peaks.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
		length:     dec.Length(),
	}, nil
}
