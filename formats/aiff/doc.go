// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files into a peaks.Source.
//
// This package uses github.com/go-audio/aiff to decode AIFF files. Sample
// depths of 8, 16, 24 and 32 bits are accepted.
package aiff
