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
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/aamcrae/imvi/internal/adapters/raster"
	"github.com/aamcrae/imvi/internal/gallery"
	"github.com/aamcrae/imvi/internal/host"
	"github.com/aamcrae/imvi/internal/viewer"
)

var version = "dev"

const keyHelp = `Shortcut keys are:
  'N' <right-arrow> <space>        Next image
  'P' <left-arrow> <back-space>    Previous image
  <wheel>                          Next/previous image, or scroll the grid
  <Home>                           First image
  <End>                            Last image
  <down-arrow> <page-down>         Jump forward 10 images
  <up-arrow> <page-up>             Jump back 10 images
  'G' <right-click>                Toggle the thumbnail grid
  <left-click>                     Toggle 1:1 zoom, or select a grid tile
  'Z'                              Toggle 1:1 zoom
  'F'                              Toggle full-screen
  'Q' <escape>                     Quit`

// placeholderSize is the side of the image drawn for entries with nothing loaded.
const placeholderSize = 256

func main() {
	app := &cli.App{
		Name:        "imvi",
		Usage:       "view the images in a directory",
		UsageText:   "imvi [options] [directory]",
		Description: keyHelp,
		Version:     version,
		Flags:       flags(),
		Action:      run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run shows the images in the directory given as the argument, or
// the current directory.
func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	log := newLogger(cfg, c.Bool("quiet"))

	dir := "."
	if c.NArg() > 0 {
		dir = c.Args().First()
	}

	dec, closeDecoder := newDecoder(cfg, log)
	defer closeDecoder()

	platform, err := newPlatform(cfg, log)
	if err != nil {
		log.Error("Cannot open window: %v", err)
		return cli.Exit(err.Error(), 1)
	}
	defer platform.Close()

	coll, err := gallery.Load(dir, dec, galleryOptions(cfg, log)...)
	if err != nil {
		log.Error("Cannot read %s: %v", dir, err)
		platform.ShowError(err)
		return cli.Exit(err.Error(), 1)
	}
	log.Info("%d images in %s", coll.Len(), dir)

	v := viewer.New(coll, viewer.WithLogger(log), viewer.WithPlaceholder(raster.Placeholder(placeholderSize)))
	defer v.Release()

	w := host.New(platform, host.WithLogger(log))
	if err := w.Run(v); err != nil {
		log.Error("Viewer stopped: %v", err)
		return cli.Exit(err.Error(), 1)
	}
	log.Debug("Exiting after %d frames", w.Frames())
	return nil
}
