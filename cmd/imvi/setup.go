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

package main

import (
	"github.com/urfave/cli/v2"

	"github.com/aamcrae/imvi/internal/adapters/decoder"
	"github.com/aamcrae/imvi/internal/adapters/fyneplatform"
	"github.com/aamcrae/imvi/internal/adapters/logger"
	"github.com/aamcrae/imvi/internal/adapters/termplatform"
	"github.com/aamcrae/imvi/internal/config"
	"github.com/aamcrae/imvi/internal/gallery"
	"github.com/aamcrae/imvi/internal/host"
	"github.com/aamcrae/imvi/internal/ports"
)

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML configuration file"},
		&cli.StringFlag{Name: "backend", Aliases: []string{"b"}, Usage: "display backend (fyne or term)"},
		&cli.IntFlag{Name: "width", Usage: "window width"},
		&cli.IntFlag{Name: "height", Usage: "window height"},
		&cli.BoolFlag{Name: "fullscreen", Usage: "start in full-screen mode"},
		&cli.StringFlag{Name: "background", Usage: "background colour (hex, e.g. #17242a)"},
		&cli.StringFlag{Name: "decoder", Usage: "image decoder (auto, std or vips)"},
		&cli.IntFlag{Name: "max-size", Usage: "shrink images longer than this on either side (0 for no limit)"},
		&cli.BoolFlag{Name: "invert-wheel", Usage: "reverse the mouse wheel direction"},
		&cli.BoolFlag{Name: "embedded-thumbnails", Usage: "use EXIF thumbnails when a preview is missing"},
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: "log level (debug, info, warn, error, quiet)"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "verbose tracing, same as --log-level=debug"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "suppress all log output"},
	}
}

// loadConfig reads the configuration file, if any, and applies the
// flags set on the command line.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return cfg, err
		}
	}
	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("fullscreen") {
		cfg.FullScreen = c.Bool("fullscreen")
	}
	if c.IsSet("background") {
		cfg.Background = c.String("background")
	}
	if c.IsSet("decoder") {
		cfg.Decoder = c.String("decoder")
	}
	if c.IsSet("max-size") {
		cfg.MaxSize = c.Int("max-size")
	}
	if c.IsSet("invert-wheel") {
		cfg.InvertWheel = c.Bool("invert-wheel")
	}
	if c.IsSet("embedded-thumbnails") {
		cfg.EmbeddedThumbnails = c.Bool("embedded-thumbnails")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.Bool("verbose") {
		cfg.LogLevel = ports.LevelDebug.String()
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config, quiet bool) ports.Logger {
	if quiet || cfg.Level() == ports.LevelQuiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(cfg.Level())
}

// newDecoder returns the configured decoder and a function that
// releases it.
func newDecoder(cfg config.Config, log ports.Logger) (ports.Decoder, func()) {
	switch cfg.Decoder {
	case config.DecoderStd:
		return decoder.NewStd(), func() {}
	case config.DecoderVips:
		v := decoder.NewVips(cfg.MaxSize)
		return v, v.Close
	}
	log.Debug("Decoding with libvips, falling back to the standard library")
	v := decoder.NewVips(cfg.MaxSize)
	return decoder.Chain{v, decoder.NewStd()}, v.Close
}

func newPlatform(cfg config.Config, log ports.Logger) (host.Platform, error) {
	log.Debug("Using the %s backend", cfg.Backend)
	if cfg.Backend == config.BackendTerm {
		return termplatform.New(termplatform.Options{
			Background:  cfg.BackgroundColor(),
			InvertWheel: cfg.InvertWheel,
			Logger:      log,
		})
	}
	return fyneplatform.New(fyneplatform.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Background:  cfg.BackgroundColor(),
		InvertWheel: cfg.InvertWheel,
		FullScreen:  cfg.FullScreen,
		Logger:      log,
	})
}

func galleryOptions(cfg config.Config, log ports.Logger) []gallery.Option {
	opts := []gallery.Option{gallery.WithLogger(log)}
	if cfg.EmbeddedThumbnails {
		opts = append(opts, gallery.WithThumbnailFallback(decoder.ExifThumbnail{}))
	}
	return opts
}
