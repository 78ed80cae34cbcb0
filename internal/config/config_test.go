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

package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aamcrae/imvi/internal/ports"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendFyne, cfg.Backend)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, color.RGBA{R: 23, G: 36, B: 42, A: 255}, cfg.BackgroundColor())
	assert.Equal(t, ports.LevelInfo, cfg.Level())
}

func TestLoadFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "imvi.yaml")
	require.NoError(t, os.WriteFile(p, []byte("backend: term\nwidth: 1024\ninvert_wheel: true\nlog_level: debug\n"), 0o644))

	cfg, err := LoadFromFile(p)
	require.NoError(t, err)
	assert.Equal(t, BackendTerm, cfg.Backend)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.True(t, cfg.InvertWheel)
	assert.Equal(t, ports.LevelDebug, cfg.Level())
	assert.Equal(t, DecoderAuto, cfg.Decoder)
}

func TestLoadFromFileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	p := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(p, []byte("width: [1, 2"), 0o644))
	_, err = LoadFromFile(p)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*Config)
	}{
		{"backend", func(c *Config) { c.Backend = "sdl" }},
		{"decoder", func(c *Config) { c.Decoder = "magick" }},
		{"width", func(c *Config) { c.Width = 0 }},
		{"height", func(c *Config) { c.Height = -1 }},
		{"max size", func(c *Config) { c.MaxSize = -5 }},
		{"background", func(c *Config) { c.Background = "blue" }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.apply(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 128, A: 255}, c)

	c, err = ParseColor("0a0b0c")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 10, G: 11, B: 12, A: 255}, c)

	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}

	cfg := Defaults()
	cfg.Background = "nope"
	assert.Equal(t, color.RGBA{A: 255}, cfg.BackgroundColor())
}
