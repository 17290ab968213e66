// SPDX-License-Identifier: EPL-2.0

// Package wav decodes PCM WAV files into a peaks.Source.
//
// It uses github.com/go-audio/wav for chunk parsing. Integer PCM at 8, 16,
// 24 and 32 bits is supported, with any channel count and sample rate:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//		return err
//	}
//	p, err := peaks.Extract(src, 1024)
//
// go-audio needs to seek; readers that cannot are buffered in memory
// first.
package wav
