// SPDX-License-Identifier: EPL-2.0

package peaks

import "fmt"

// Mono averages the channels of a Source into one.
type Mono struct {
	src Source
	tmp []float32
}

func NewMono(src Source) *Mono {
	return &Mono{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *Mono) SampleRate() int { return m.src.SampleRate() }
func (m *Mono) Channels() int   { return 1 }
func (m *Mono) BufSize() int    { return m.src.BufSize() }

func (m *Mono) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing source: %w", err)
	}
	return nil
}

// ReadSamples fills dst with up to len(dst) mono frames.
func (m *Mono) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels <= 1 {
		return m.src.ReadSamples(dst)
	}

	needed := len(dst) * channels
	if cap(m.tmp) < needed {
		m.tmp = make([]float32, max(needed, 8192))
	}
	m.tmp = m.tmp[:needed]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	default:
		inv := float32(1) / float32(channels)
		for f := range frames {
			var sum float32
			base := f * channels
			for c := range channels {
				sum += m.tmp[base+c]
			}
			dst[f] = sum * inv
		}
	}

	return frames, err
}
