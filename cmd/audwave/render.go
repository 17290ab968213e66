// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ik5/audwave"
	"github.com/ik5/audwave/bus"
	"github.com/ik5/audwave/config"
	"github.com/ik5/audwave/surface"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	width      float64
	configPath string
	set        []string
	playing    bool
	at         float64
	buffered   float64
	message    string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <peaks.json>",
		Short: "Render peak data to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath, opts.set)
			if err != nil {
				return err
			}

			data, err := readData(args[0])
			if err != nil {
				return err
			}

			ch := bus.New(bus.WithLogger(root.logger))
			doc := surface.NewDocument(surface.Box{Width: opts.width})

			w := audwave.New(ch, doc, data, cfg, audwave.WithLogger(root.logger))
			defer w.Dispose()

			if opts.playing {
				ch.Publish(bus.TopicPlaying, w.Track(), audwave.PlaybackInfo{
					CurrentTime: opts.at,
					Buffered:    opts.buffered,
				})
				// The first event only attaches; progress arrives with the next.
				ch.Publish(bus.TopicPlaying, w.Track(), audwave.PlaybackInfo{
					CurrentTime: opts.at,
					Buffered:    opts.buffered,
				})
			}
			if opts.message != "" {
				w.ShowMessage(opts.message, 0)
			}

			if err := doc.WriteSVG(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("write svg: %w", err)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64VarP(&opts.width, "width", "w", 800, "surface width in pixels")
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	f.StringArrayVar(&opts.set, "set", nil, "override a config option, key=value (repeatable)")
	f.BoolVar(&opts.playing, "playing", false, "render as the currently playing track")
	f.Float64Var(&opts.at, "at", 0, "playback position in seconds, with --playing")
	f.Float64Var(&opts.buffered, "buffered", 1, "buffered fraction in [0,1], with --playing")
	f.StringVar(&opts.message, "message", "", "status text to overlay")

	return cmd
}

func loadConfig(path string, set []string) (config.Config, error) {
	cfg := config.Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		if cfg, err = config.Load(f); err != nil {
			return cfg, err
		}
	}

	if len(set) == 0 {
		return cfg, nil
	}

	values := make(map[string]string, len(set))
	for _, kv := range set {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return cfg, fmt.Errorf("invalid --set %q: want key=value", kv)
		}
		values[strings.TrimSpace(k)] = v
	}

	return cfg.Apply(values), nil
}

func readData(path string) (audwave.Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return audwave.Data{}, fmt.Errorf("read peaks: %w", err)
	}

	var data audwave.Data
	if err := json.Unmarshal(b, &data); err != nil {
		return audwave.Data{}, fmt.Errorf("decode peaks: %w", err)
	}

	return data, nil
}
