// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into a peaks.Source using
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit little-endian stereo, so the source
// reports two channels whatever the file holds.
package mp3
