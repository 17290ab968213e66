// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds test sources and fixtures shared by the decoding
// packages. It does not import them, so their internal tests can use it.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrBroken is returned by a FailingSource.
var ErrBroken = errors.New("broken source")

// MockSource generates interleaved samples from a function of the frame
// index and channel. It satisfies peaks.Source.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	read       int
	closed     bool
	waveform   func(frame, channel int) float32
}

func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSilentSource generates zeros.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewSliceSource plays back values, already interleaved.
func NewSliceSource(sampleRate, channels int, values []float32) *MockSource {
	return NewMockSource(sampleRate, channels, len(values)/channels, func(frame, channel int) float32 {
		return values[frame*channels+channel]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.read >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.read)
	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.read+f, ch)
		}
	}
	m.read += n

	if m.read >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}

// FailingSource returns some samples, then ErrBroken.
type FailingSource struct {
	MockSource
}

func NewFailingSource(sampleRate, frames int) *FailingSource {
	return &FailingSource{MockSource: *NewConstantSource(sampleRate, 1, frames, 0.5)}
}

func (f *FailingSource) ReadSamples(dst []float32) (int, error) {
	n, err := f.MockSource.ReadSamples(dst)
	if err != nil {
		return n, ErrBroken
	}
	return n, nil
}

// StalledSource never produces samples nor ends.
type StalledSource struct{}

func (StalledSource) SampleRate() int                   { return 8000 }
func (StalledSource) Channels() int                     { return 1 }
func (StalledSource) BufSize() int                      { return 16 }
func (StalledSource) Close() error                      { return nil }
func (StalledSource) ReadSamples([]float32) (int, error) { return 0, nil }
