// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audwave/peaks"
)

// mockMP3Reader simulates gomp3.Decoder, returning at most chunk bytes per
// Read so samples can be split across reads.
type mockMP3Reader struct {
	sampleRate int
	pcm        []byte
	offset     int
	chunk      int
	err        error
}

func newMockReader(rate, chunk int, samples ...int16) *mockMP3Reader {
	pcm := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(s))
	}
	return &mockMP3Reader{sampleRate: rate, pcm: pcm, chunk: chunk}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.pcm) {
		return 0, io.EOF
	}

	n := min(len(buf), len(m.pcm)-m.offset)
	if m.chunk > 0 {
		n = min(n, m.chunk)
	}
	copy(buf, m.pcm[m.offset:m.offset+n])
	m.offset += n

	if m.offset >= len(m.pcm) {
		return n, io.EOF
	}
	return n, nil
}

func newSource(r *mockMP3Reader, length int64) *source {
	return &source{dec: r, sampleRate: r.sampleRate, buf: make([]byte, 8192), length: length}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"empty": nil,
		"text":  []byte("This is not MP3 data"),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0}
	want := []float32{0, 0.5, 1, -0.5, -1, 0.25, -0.25, 0}

	// An odd chunk splits samples across reads.
	for _, chunk := range []int{0, 3} {
		src := newSource(newMockReader(8000, chunk, samples...), 0)

		var got []float32
		dst := make([]float32, 4)
		for {
			n, err := src.ReadSamples(dst)
			got = append(got, dst[:n]...)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				t.Fatalf("chunk %d: ReadSamples() error = %v", chunk, err)
			}
		}

		if len(got) != len(want) {
			t.Fatalf("chunk %d: read %d samples, want %d", chunk, len(got), len(want))
		}
		for i, w := range want {
			if math.Abs(float64(got[i]-w)) > 1e-3 {
				t.Errorf("chunk %d: sample %d = %v, want %v", chunk, i, got[i], w)
			}
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(newMockReader(44100, 0), 44100*4*3)

	if src.SampleRate() != 44100 || src.Channels() != 2 {
		t.Errorf("format = %d Hz, %d ch", src.SampleRate(), src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
	if got := src.Duration(); got != 3 {
		t.Errorf("Duration() = %v, want 3", got)
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v", n, err)
	}
	if _, err := src.ReadSamples(make([]float32, 1)); !errors.Is(err, io.ErrShortBuffer) {
		t.Errorf("ReadSamples() with half a frame error = %v, want %v", err, io.ErrShortBuffer)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	r := newMockReader(8000, 0, 1, 2)
	r.err = io.ErrUnexpectedEOF

	if _, err := newSource(r, 0).ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestSource_Peaks(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 2*800)
	for i := range samples {
		samples[i] = -16384
	}

	p, err := peaks.Extract(newSource(newMockReader(800, 500, samples...), 0), 400)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if p.Duration != 1 || len(p.Values) != 2 {
		t.Fatalf("Extract() = %v s, %d peaks, want 1 s, 2 peaks", p.Duration, len(p.Values))
	}
	if v := p.Values[1]; v.Pos != 0 || math.Abs(v.Neg-0.5) > 1e-4 {
		t.Errorf("Values[1] = %+v, want -0.5", v)
	}
}
