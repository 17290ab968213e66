// SPDX-License-Identifier: EPL-2.0

// Package scale converts raw amplitude arrays into plottable points and
// provides the linear coordinate transforms used to place them.
//
// # Downsampling
//
// Process walks the sample array with a fixed step so that no more than
// roughly maxPoints points are produced:
//
//	res := scale.Process(samples, 120, 600, scale.DefaultCentreBias)
//	// res.Points[0].T == 0, len(res.Points) <= ~600
//
// The first sample is always kept. Each point carries a positive lobe (Y0)
// and a negative lobe (Y1); the centre bias decides how much of a sample's
// amplitude goes to each lobe.
//
// # Scales
//
// A Set holds three Linear transforms:
//   - Time maps seconds to pixels, domain [0, duration]
//   - Index maps point indices to pixels, domain [0, len(points)]
//   - Amp maps amplitudes to pixels, domain [min Y1, max Y0]
//
// Domains are fixed by Process. Ranges are pixel extents and are assigned by
// the caller at layout time with WithRange.
package scale
