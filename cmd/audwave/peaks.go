// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audwave"
	"github.com/ik5/audwave/formats/aiff"
	"github.com/ik5/audwave/formats/mp3"
	"github.com/ik5/audwave/formats/vorbis"
	"github.com/ik5/audwave/formats/wav"
	"github.com/ik5/audwave/peaks"
	"github.com/spf13/cobra"
)

type peaksOptions struct {
	perPeak int
	format  string
	id      string
}

func registry() *peaks.Registry {
	r := peaks.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	return r
}

// formatOf guesses the registry key from a file name.
func formatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func newPeaksCmd(root *rootOptions) *cobra.Command {
	opts := &peaksOptions{}

	cmd := &cobra.Command{
		Use:   "peaks <audio file>",
		Short: "Decode an audio file and print its peaks as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			format := opts.format
			if format == "" {
				format = formatOf(path)
			}
			id := opts.id
			if id == "" {
				id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open audio: %w", err)
			}
			defer f.Close()

			data, err := extract(root, f, format, id, opts.perPeak)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(data); err != nil {
				return fmt.Errorf("write peaks: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.perPeak, "per-peak", "n", 1024, "audio frames reduced into each peak")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format (default: from the file extension)")
	cmd.Flags().StringVar(&opts.id, "id", "", "track id written to the output (default: file name)")

	return cmd
}

func extract(root *rootOptions, f *os.File, format, id string, perPeak int) (audwave.Data, error) {
	src, err := registry().Decode(format, f)
	if err != nil {
		return audwave.Data{}, err
	}
	defer src.Close()

	if d, ok := src.(interface{ Duration() float64 }); ok {
		root.logger.Debug("stream header", "format", format, "duration", d.Duration())
	}

	p, err := peaks.Extract(src, perPeak)
	if err != nil {
		return audwave.Data{}, fmt.Errorf("extract peaks: %w", err)
	}

	root.logger.Info("extracted peaks", "id", id, "duration", p.Duration,
		"peaks", len(p.Values), "rate", src.SampleRate(), "channels", src.Channels())

	return audwave.Data{ID: id, Duration: p.Duration, Peaks: p.Values}, nil
}
