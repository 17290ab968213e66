// SPDX-License-Identifier: EPL-2.0

package scale

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Sample is one entry of a raw amplitude array. A scalar sample carries a
// single amplitude in Pos; a pair sample carries a positive and a negative
// peak, both expressed as magnitudes.
type Sample struct {
	Pos  float64
	Neg  float64
	Pair bool
}

// Scalar returns a single-amplitude sample.
func Scalar(v float64) Sample { return Sample{Pos: v} }

// PairOf returns a sample holding separate positive and negative peaks.
func PairOf(pos, neg float64) Sample { return Sample{Pos: pos, Neg: neg, Pair: true} }

// Scalars wraps plain amplitudes.
func Scalars(vs ...float64) []Sample {
	out := make([]Sample, len(vs))
	for i, v := range vs {
		out[i] = Scalar(v)
	}
	return out
}

// UnmarshalJSON accepts a number, a two element array or null. Null and
// arrays of any other length decode to a zero amplitude.
func (s *Sample) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*s = Sample{}

	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	if b[0] == '[' {
		var pair []*float64
		if err := json.Unmarshal(b, &pair); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSample, err)
		}
		if len(pair) == 2 {
			*s = PairOf(deref(pair[0]), deref(pair[1]))
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSample, err)
	}
	*s = Scalar(v)

	return nil
}

// MarshalJSON writes scalars as numbers and pairs as two element arrays.
func (s Sample) MarshalJSON() ([]byte, error) {
	if s.Pair {
		return json.Marshal([2]float64{finite(s.Pos), finite(s.Neg)})
	}
	return json.Marshal(finite(s.Pos))
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// finite maps NaN and infinities to zero, the amplitude used for missing
// samples.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
