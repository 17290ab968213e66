// SPDX-License-Identifier: EPL-2.0

package scale

import "math"

// DefaultCentreBias splits amplitude evenly between both lobes.
const DefaultCentreBias = 0.5

// PlotPoint is one plottable bucket: T is the time offset in seconds, Y0 the
// positive lobe and Y1 the negative lobe.
type PlotPoint struct {
	T  float64
	Y0 float64
	Y1 float64
}

// Set groups the three transforms of a rendered waveform.
type Set struct {
	Time  Linear
	Index Linear
	Amp   Linear
}

// Result is the output of Process.
type Result struct {
	Points []PlotPoint
	Step   int
	Scales Set
}

// Step returns the index stride used to reduce sampleCount samples to at
// most about maxPoints points. A non-positive maxPoints disables reduction.
func Step(sampleCount, maxPoints int) int {
	if maxPoints <= 0 || sampleCount <= maxPoints {
		return 1
	}

	step := int(math.Round(float64(sampleCount) / float64(maxPoints)))
	if step < 1 {
		return 1
	}

	return step
}

// Process downsamples samples into plot points and derives the scale
// domains. The input slice is never modified.
//
// Empty input, or a duration that is zero, negative or not finite, yields an
// empty waveform: no points, and degenerate domains that map every value to
// the start of their range.
func Process(samples []Sample, duration float64, maxPoints int, centreBias float64) Result {
	if math.IsNaN(centreBias) {
		centreBias = DefaultCentreBias
	}

	n := len(samples)
	if n == 0 || !(duration > 0) || math.IsInf(duration, 0) {
		return Result{
			Step: 1,
			Scales: Set{
				Time:  NewLinear(0, 0),
				Index: NewLinear(0, 0),
				Amp:   NewLinear(0, 0),
			},
		}
	}

	step := Step(n, maxPoints)
	perSample := duration / float64(n)
	b0, b1 := centreBias, 1-centreBias

	points := make([]PlotPoint, 0, (n+step-1)/step)
	minY, maxY := math.Inf(1), math.Inf(-1)

	for k := 0; k*step < n; k++ {
		s := samples[k*step]
		p := PlotPoint{T: float64(k) * perSample * float64(step)}

		if s.Pair {
			p.Y0 = finite(s.Pos) * b0
			p.Y1 = -finite(s.Neg) * b1
		} else {
			v := finite(s.Pos)
			p.Y0 = v * b0
			if v != 0 {
				p.Y1 = -v * b1
			}
		}

		minY = min(minY, p.Y1)
		maxY = max(maxY, p.Y0)
		points = append(points, p)
	}

	return Result{
		Points: points,
		Step:   step,
		Scales: Set{
			Time:  NewLinear(0, duration),
			Index: NewLinear(0, float64(len(points))),
			Amp:   NewLinear(minY, maxY),
		},
	}
}
