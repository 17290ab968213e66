// SPDX-License-Identifier: EPL-2.0

// Package peaks turns decoded audio into the peak arrays a waveform plots.
//
// A Source is a stream of interleaved float32 samples in [-1, 1]. Format
// decoders under formats/ implement Decoder and can be looked up by name
// through a Registry:
//
//	reg := peaks.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//
//	src, err := reg.Decode("wav", file)
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//
//	p, err := peaks.Extract(src, 1024)
//
// Extract mixes the stream down to mono and reduces every bucket of
// samplesPerPeak frames to a [positive, negative] pair holding the largest
// excursion on each side of zero. The result carries the stream duration
// in seconds.
package peaks
