// SPDX-License-Identifier: EPL-2.0

package scale

import (
	"math"
	"testing"
)

func alternating(n int) []Sample {
	pattern := []float64{1, -1, 0.5, -0.5}
	out := make([]Sample, n)
	for i := range n {
		out[i] = Scalar(pattern[i%len(pattern)])
	}
	return out
}

func TestStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		count     int
		maxPoints int
		want      int
	}{
		{name: "fits", count: 100, maxPoints: 100, want: 1},
		{name: "smaller", count: 10, maxPoints: 100, want: 1},
		{name: "exact multiple", count: 240, maxPoints: 60, want: 4},
		{name: "rounds down", count: 130, maxPoints: 60, want: 2},
		{name: "rounds half up", count: 150, maxPoints: 60, want: 3},
		{name: "no limit", count: 1000, maxPoints: 0, want: 1},
		{name: "negative limit", count: 1000, maxPoints: -5, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Step(tt.count, tt.maxPoints); got != tt.want {
				t.Errorf("Step(%d, %d) = %d, want %d", tt.count, tt.maxPoints, got, tt.want)
			}
		})
	}
}

func TestProcess_NoReduction(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 7, 60, 600} {
		samples := alternating(n)
		res := Process(samples, 10, 600, DefaultCentreBias)

		if res.Step != 1 {
			t.Errorf("n=%d: Step = %d, want 1", n, res.Step)
		}
		if len(res.Points) != n {
			t.Errorf("n=%d: len(Points) = %d, want %d", n, len(res.Points), n)
		}
	}
}

func TestProcess_Reduction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count     int
		maxPoints int
	}{
		{count: 240, maxPoints: 60},
		{count: 1000, maxPoints: 333},
		{count: 44100, maxPoints: 800},
		{count: 61, maxPoints: 60},
	}

	for _, tt := range tests {
		res := Process(alternating(tt.count), 30, tt.maxPoints, DefaultCentreBias)

		// Rounding the stride can overshoot by at most half a stride's worth.
		if len(res.Points) > tt.maxPoints*3/2+1 {
			t.Errorf("count=%d max=%d: got %d points (step %d)", tt.count, tt.maxPoints, len(res.Points), res.Step)
		}
		if res.Points[0].T != 0 {
			t.Errorf("count=%d: first point T = %v, want 0", tt.count, res.Points[0].T)
		}
		if want := (tt.count + res.Step - 1) / res.Step; len(res.Points) != want {
			t.Errorf("count=%d: len(Points) = %d, want %d", tt.count, len(res.Points), want)
		}
	}
}

func TestProcess_Scenario(t *testing.T) {
	t.Parallel()

	const bias = 0.5
	res := Process(alternating(240), 120, 60, bias)

	if res.Step != 4 {
		t.Fatalf("Step = %d, want 4", res.Step)
	}
	if len(res.Points) != 60 {
		t.Fatalf("len(Points) = %d, want 60", len(res.Points))
	}

	first := res.Points[0]
	if first.Y0 != 1*bias {
		t.Errorf("Points[0].Y0 = %v, want %v", first.Y0, 1*bias)
	}
	if first.Y1 != -1*(1-bias) {
		t.Errorf("Points[0].Y1 = %v, want %v", first.Y1, -(1 - bias))
	}

	// Every fourth sample of the pattern is 1, so time advances by 2s per point.
	if got := res.Points[1].T; math.Abs(got-2) > 1e-9 {
		t.Errorf("Points[1].T = %v, want 2", got)
	}

	d0, d1 := res.Scales.Time.Domain()
	if d0 != 0 || d1 != 120 {
		t.Errorf("Time domain = [%v, %v], want [0, 120]", d0, d1)
	}
	i0, i1 := res.Scales.Index.Domain()
	if i0 != 0 || i1 != 60 {
		t.Errorf("Index domain = [%v, %v], want [0, 60]", i0, i1)
	}
	a0, a1 := res.Scales.Amp.Domain()
	if a0 != -0.5 || a1 != 0.5 {
		t.Errorf("Amp domain = [%v, %v], want [-0.5, 0.5]", a0, a1)
	}
}

func TestProcess_CentreBias(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sample Sample
		bias   float64
		wantY0 float64
		wantY1 float64
	}{
		{name: "scalar even", sample: Scalar(0.8), bias: 0.5, wantY0: 0.4, wantY1: -0.4},
		{name: "scalar all positive", sample: Scalar(0.8), bias: 1, wantY0: 0.8, wantY1: 0},
		{name: "scalar all negative", sample: Scalar(0.8), bias: 0, wantY0: 0, wantY1: -0.8},
		{name: "scalar zero", sample: Scalar(0), bias: 0.3, wantY0: 0, wantY1: 0},
		{name: "pair", sample: PairOf(0.6, 0.2), bias: 0.5, wantY0: 0.3, wantY1: -0.1},
		{name: "pair biased", sample: PairOf(1, 1), bias: 0.75, wantY0: 0.75, wantY1: -0.25},
		{name: "missing", sample: Scalar(math.NaN()), bias: 0.5, wantY0: 0, wantY1: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Process([]Sample{tt.sample}, 1, 10, tt.bias)
			p := res.Points[0]

			if math.Abs(p.Y0-tt.wantY0) > 1e-9 {
				t.Errorf("Y0 = %v, want %v", p.Y0, tt.wantY0)
			}
			if math.Abs(p.Y1-tt.wantY1) > 1e-9 {
				t.Errorf("Y1 = %v, want %v", p.Y1, tt.wantY1)
			}
		})
	}
}

func TestProcess_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	samples := alternating(100)
	before := make([]Sample, len(samples))
	copy(before, samples)

	Process(samples, 5, 10, 0.7)

	for i := range samples {
		if samples[i] != before[i] {
			t.Fatalf("samples[%d] changed: %v -> %v", i, before[i], samples[i])
		}
	}
}

func TestProcess_Deterministic(t *testing.T) {
	t.Parallel()

	samples := alternating(999)
	a := Process(samples, 42, 120, 0.4)
	b := Process(samples, 42, 120, 0.4)

	if len(a.Points) != len(b.Points) {
		t.Fatalf("lengths differ: %d vs %d", len(a.Points), len(b.Points))
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("Points[%d] differ: %v vs %v", i, a.Points[i], b.Points[i])
		}
	}
}

func TestProcess_EmptyWaveform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		samples  []Sample
		duration float64
	}{
		{name: "no samples", samples: nil, duration: 10},
		{name: "zero duration", samples: alternating(10), duration: 0},
		{name: "negative duration", samples: alternating(10), duration: -3},
		{name: "NaN duration", samples: alternating(10), duration: math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Process(tt.samples, tt.duration, 100, DefaultCentreBias)
			if len(res.Points) != 0 {
				t.Errorf("len(Points) = %d, want 0", len(res.Points))
			}

			tx := res.Scales.Time.WithRange(0, 100)
			if got := tx.Map(5); got != 0 {
				t.Errorf("Time.Map(5) = %v, want 0", got)
			}
			if got := tx.Invert(50); got != 0 {
				t.Errorf("Time.Invert(50) = %v, want 0", got)
			}
		})
	}
}
