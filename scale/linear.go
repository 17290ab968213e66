// SPDX-License-Identifier: EPL-2.0

package scale

// Linear is a continuous linear transform from a domain to a range. The
// zero value maps everything to 0.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear returns a scale over [d0, d1] with the unit range [0, 1].
func NewLinear(d0, d1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: 0, r1: 1}
}

// WithRange returns a copy of l mapping onto [r0, r1].
func (l Linear) WithRange(r0, r1 float64) Linear {
	l.r0, l.r1 = r0, r1
	return l
}

func (l Linear) Domain() (float64, float64) { return l.d0, l.d1 }
func (l Linear) Range() (float64, float64)  { return l.r0, l.r1 }

// Map transforms a domain value into the range. A degenerate domain maps
// every value to the start of the range.
func (l Linear) Map(x float64) float64 {
	span := l.d1 - l.d0
	if span == 0 {
		return l.r0
	}
	return l.r0 + (x-l.d0)/span*(l.r1-l.r0)
}

// Invert transforms a range value back into the domain. A degenerate range
// inverts every value to the start of the domain.
func (l Linear) Invert(y float64) float64 {
	span := l.r1 - l.r0
	if span == 0 {
		return l.d0
	}
	return l.d0 + (y-l.r0)/span*(l.d1-l.d0)
}
