// SPDX-License-Identifier: EPL-2.0

// Command audwave turns audio files into peak data and renders peak data
// to SVG.
//
//	audwave peaks song.mp3 > song.json
//	audwave render --width 1200 --set highlightMode=true song.json > song.svg
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
