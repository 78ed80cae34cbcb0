// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aamcrae/imvi/internal/ports"
)

// Backends
const (
	BackendFyne = "fyne"
	BackendTerm = "term"
)

// Decoders
const (
	DecoderAuto = "auto" // libvips, then the standard library
	DecoderStd  = "std"
	DecoderVips = "vips"
)

// Config is the viewer configuration.
type Config struct {
	Backend    string `yaml:"backend"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
	FullScreen bool   `yaml:"fullscreen"`

	Decoder            string `yaml:"decoder"`
	MaxSize            int    `yaml:"max_size"` // Shrink decoded images to this side length, 0 for none
	EmbeddedThumbnails bool   `yaml:"embedded_thumbnails"`

	InvertWheel bool   `yaml:"invert_wheel"`
	LogLevel    string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Backend:    BackendFyne,
		Width:      800,
		Height:     600,
		Background: "#17242a",
		Decoder:    DecoderAuto,
		LogLevel:   "info",
	}
}

// LoadFromFile overlays the YAML file at path on the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFyne, BackendTerm:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	switch c.Decoder {
	case DecoderAuto, DecoderStd, DecoderVips:
	default:
		return fmt.Errorf("unknown decoder %q", c.Decoder)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %d x %d", c.Width, c.Height)
	}
	if c.MaxSize < 0 {
		return fmt.Errorf("invalid max_size %d", c.MaxSize)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "quiet":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Level returns the configured log level.
func (c Config) Level() ports.LogLevel {
	return ports.ParseLogLevel(c.LogLevel)
}

// BackgroundColor returns the parsed background colour, black if invalid.
func (c Config) BackgroundColor() color.RGBA {
	col, err := ParseColor(c.Background)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return col
}

// ParseColor parses a "#rrggbb" hex colour. The '#' is optional.
func ParseColor(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q", hex)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
