// SPDX-License-Identifier: EPL-2.0

// Package config holds the recognised waveform options, their defaults and
// the parse steps that normalise loosely typed input.
package config

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config enumerates every recognised option.
type Config struct {
	// Detail is reserved; it is carried but not used by rendering.
	Detail int `yaml:"detail"`
	// CentreBias splits amplitude between the positive and negative lobes.
	CentreBias float64 `yaml:"centreBias"`
	// Padding is the horizontal inset in pixels.
	Padding int `yaml:"padding"`
	// HeightPercent derives the height as width / HeightPercent when Height
	// is not set.
	HeightPercent int `yaml:"heightPercent"`
	// Height overrides the derived height when positive.
	Height int `yaml:"height"`
	// Controls is reserved.
	Controls bool `yaml:"controls"`
	// HighlightMode enables the zone band and zone interaction.
	HighlightMode bool `yaml:"highlightMode"`
	// TextOverlay enables the status message layer when positive.
	TextOverlay int `yaml:"textOverlay"`
}

const (
	DefaultDetail        = 5
	DefaultCentreBias    = 0.5
	DefaultHeightPercent = 10
	DefaultTextOverlay   = 10
)

func Default() Config {
	return Config{
		Detail:        DefaultDetail,
		CentreBias:    DefaultCentreBias,
		Padding:       0,
		HeightPercent: DefaultHeightPercent,
		Height:        0,
		Controls:      false,
		HighlightMode: false,
		TextOverlay:   DefaultTextOverlay,
	}
}

// Normalize maps out of range values onto safe ones. It never fails.
func (c Config) Normalize() Config {
	if c.Detail <= 0 {
		c.Detail = DefaultDetail
	}

	switch {
	case math.IsNaN(c.CentreBias) || math.IsInf(c.CentreBias, 0):
		c.CentreBias = DefaultCentreBias
	case c.CentreBias < 0:
		c.CentreBias = 0
	case c.CentreBias > 1:
		c.CentreBias = 1
	}

	c.Padding = max(c.Padding, 0)
	c.Height = max(c.Height, 0)

	if c.HeightPercent <= 0 {
		c.HeightPercent = DefaultHeightPercent
	}

	c.TextOverlay = max(c.TextOverlay, 0)

	return c
}

// Parse decodes YAML over the defaults. Keys left out keep their default.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}

	return cfg.Normalize(), nil
}

// Load reads YAML from r and parses it.
func Load(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// FromValues builds a Config from string attributes such as HTML data
// attributes or CLI key=value pairs. Keys are matched case-insensitively.
// Values that do not parse leave the default in place.
func FromValues(values map[string]string) Config {
	return Default().Apply(values)
}

// Apply overrides c with loosely typed values, as FromValues does. Unknown
// keys are ignored.
func (c Config) Apply(values map[string]string) Config {
	cfg := c

	for k, v := range values {
		v = strings.TrimSpace(v)

		switch strings.ToLower(k) {
		case "detail":
			cfg.Detail = parseInt(v, cfg.Detail)
		case "centrebias", "centre_bias", "centerbias":
			cfg.CentreBias = parseFloat(v, cfg.CentreBias)
		case "padding":
			cfg.Padding = parseInt(v, cfg.Padding)
		case "heightpercent", "height_percent":
			cfg.HeightPercent = parseInt(v, cfg.HeightPercent)
		case "height":
			cfg.Height = parseInt(v, cfg.Height)
		case "controls":
			cfg.Controls = parseBool(v, cfg.Controls)
		case "highlightmode", "highlight_mode":
			cfg.HighlightMode = parseBool(v, cfg.HighlightMode)
		case "textoverlay", "text_overlay":
			cfg.TextOverlay = parseInt(v, cfg.TextOverlay)
		}
	}

	return cfg.Normalize()
}

// parseInt reads the leading integer of s ("12px" gives 12).
func parseInt(s string, fallback int) int {
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && (s[end] == '-' || s[end] == '+')) {
		end++
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return fallback
	}
	return n
}

// parseFloat reads the longest numeric prefix of s.
func parseFloat(s string, fallback float64) float64 {
	for end := len(s); end > 0; end-- {
		if f, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return f
		}
	}
	return fallback
}

func parseBool(s string, fallback bool) bool {
	if s == "" {
		return fallback
	}

	switch strings.ToLower(s) {
	case "0", "false", "no", "off":
		return false
	}
	return true
}
