// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audwave/internal/audiotest"
	"github.com/ik5/audwave/peaks"
)

// onlyReader hides Seek to exercise the in-memory fallback.
type onlyReader struct{ io.Reader }

func readAll(t *testing.T, src peaks.Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 3)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768, 8192}
	want := []float32{0, 0.5, -0.5, 1, -1, 0.25}

	tests := []struct {
		name string
		r    func([]byte) io.Reader
	}{
		{name: "seeker", r: func(b []byte) io.Reader { return bytes.NewReader(b) }},
		{name: "plain reader", r: func(b []byte) io.Reader { return onlyReader{bytes.NewReader(b)} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := Decoder{}.Decode(tt.r(audiotest.WAV16(8000, 2, samples)))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			defer src.Close()

			if src.SampleRate() != 8000 || src.Channels() != 2 {
				t.Errorf("format = %d Hz, %d ch, want 8000 Hz, 2 ch", src.SampleRate(), src.Channels())
			}

			got := readAll(t, src)
			if len(got) != len(want) {
				t.Fatalf("read %d samples, want %d", len(got), len(want))
			}
			for i, w := range want {
				if math.Abs(float64(got[i]-w)) > 1e-4 {
					t.Errorf("sample %d = %v, want %v", i, got[i], w)
				}
			}
		})
	}
}

func TestDecoder_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "text", data: []byte("this is not a wav file at all, just some text")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotWavFile) {
				t.Errorf("Decode() error = %v, want %v", err, ErrNotWavFile)
			}
		})
	}
}

func TestDecoder_Peaks(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 4000)
	for i := range samples {
		samples[i] = int16((i%2)*2 - 1) * 16384
	}

	src, err := Decoder{}.Decode(bytes.NewReader(audiotest.WAV16(4000, 1, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	p, err := peaks.Extract(src, 400)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if p.Duration != 1 || len(p.Values) != 10 {
		t.Fatalf("Extract() = %v s, %d peaks, want 1 s, 10 peaks", p.Duration, len(p.Values))
	}
	if v := p.Values[0]; math.Abs(v.Pos-0.5) > 1e-4 || math.Abs(v.Neg-0.5) > 1e-4 {
		t.Errorf("Values[0] = %+v, want 0.5 on both sides", v)
	}
}
