// SPDX-License-Identifier: EPL-2.0

package render

import (
	"strings"

	"github.com/ik5/audwave/scale"
	"github.com/ik5/audwave/surface"
)

// AreaPath returns the SVG path of the filled area between the positive and
// negative lobes of points. offset is the index of points[0] in the full
// sequence so partial paths line up with the whole shape.
//
// Interpolation is step-after: each bucket is held flat across its slot and
// jumps at the next one. The last bucket extends to the end of its slot.
func AreaPath(points []scale.PlotPoint, offset int, s scale.Set) string {
	n := len(points)
	if n == 0 {
		return ""
	}

	x := func(i int) string { return surface.FormatNumber(s.Index.Map(float64(offset + i))) }
	top := func(i int) string { return surface.FormatNumber(s.Amp.Map(points[i].Y0)) }
	bottom := func(i int) string { return surface.FormatNumber(s.Amp.Map(points[i].Y1)) }

	var b strings.Builder
	b.Grow(n * 24)

	b.WriteString("M" + x(0) + "," + top(0))
	for i := 1; i < n; i++ {
		b.WriteString("H" + x(i) + "V" + top(i))
	}
	b.WriteString("H" + x(n) + "V" + bottom(n-1))
	for i := n - 1; i >= 1; i-- {
		b.WriteString("H" + x(i) + "V" + bottom(i-1))
	}
	b.WriteString("H" + x(0) + "Z")

	return b.String()
}
