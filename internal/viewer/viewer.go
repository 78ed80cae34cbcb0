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

// Package viewer is the image browsing application driven by a host.Window.
package viewer

import (
	"errors"
	"fmt"
	"image"

	"github.com/aamcrae/imvi/internal/gallery"
	"github.com/aamcrae/imvi/internal/host"
	"github.com/aamcrae/imvi/internal/ports"
	"github.com/aamcrae/imvi/internal/viewport"
)

// AppName is shown in the window title.
const AppName = "imvi"

// JumpSize is the number of images skipped by Up/Down and PageUp/PageDown.
const JumpSize = 10

type mode int

const (
	modeFit  mode = iota // Image fitted to the window
	modeZoom             // Full image at natural size, panned by the pointer
	modeGrid             // Thumbnail grid
)

// Viewer shows the images of a Collection one at a time.
type Viewer struct {
	coll  *gallery.Collection
	log   ports.Logger
	mode  mode
	dirty bool // Selection changed since the last Update

	fit  viewport.Rect // Current image fitted to the window
	zoom viewport.Rect // Current image at natural size
	grid viewport.Grid

	pointerX, pointerY float64

	placeholderImg image.Image
	placeholder    ports.Texture
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithLogger sets the logger.
func WithLogger(l ports.Logger) Option {
	return func(v *Viewer) {
		v.log = l.WithComponent("viewer")
	}
}

// WithPlaceholder sets the image drawn for entries that have nothing loaded.
func WithPlaceholder(img image.Image) Option {
	return func(v *Viewer) {
		v.placeholderImg = img
	}
}

// New creates a Viewer over coll.
func New(coll *gallery.Collection, opts ...Option) *Viewer {
	v := &Viewer{coll: coll, log: ports.Discard}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Load uploads the thumbnails and the placeholder.
func (v *Viewer) Load(w *host.Window) error {
	if err := v.coll.EnsureThumbnails(w); err != nil {
		return err
	}
	if v.placeholderImg != nil {
		t, err := w.Upload(v.placeholderImg)
		if err != nil {
			return fmt.Errorf("placeholder: %w", err)
		}
		v.placeholder = t
	}
	v.dirty = true
	return nil
}

// Update loads the full image after a selection change.
func (v *Viewer) Update(w *host.Window) error {
	if !v.dirty {
		return nil
	}
	v.dirty = false
	if err := v.coll.EnsureFull(w); err != nil {
		var le *gallery.LoadError
		if !errors.As(err, &le) {
			return err
		}
		v.log.Warn("Cannot load %s: %v", le.Path, le.Err)
	}
	v.layout(w)
	return w.SetTitle(v.Title())
}

// Title returns the window title for the current selection.
func (v *Viewer) Title() string {
	e := v.coll.Current()
	if e == nil {
		return AppName
	}
	return fmt.Sprintf("[%d/%d] %s - %s", v.coll.Index()+1, v.coll.Len(), e.Name(), AppName)
}

// Viewport returns the rectangle the current image is drawn in.
func (v *Viewer) Viewport() viewport.Rect {
	if v.mode == modeZoom {
		return v.zoom
	}
	return v.fit
}

// Draw draws the grid or the current image.
func (v *Viewer) Draw(w *host.Window) error {
	if v.coll.Empty() {
		return nil
	}
	if v.mode == modeGrid {
		return v.drawGrid(w)
	}
	if t := v.coll.Active(); t != nil {
		return w.Draw(t, v.Viewport())
	}
	if v.placeholder != nil {
		return w.Draw(v.placeholder, v.fit)
	}
	return nil
}

func (v *Viewer) drawGrid(w *host.Window) error {
	first, last := v.grid.Visible()
	for i := first; i < last; i++ {
		e := v.coll.At(i)
		t := e.Active()
		if t == nil {
			t = v.placeholder
		}
		if t == nil {
			continue
		}
		if err := w.Draw(t, v.grid.Tile(i, e.AspectRatio())); err != nil {
			return err
		}
	}
	return nil
}

// Scroll steps through the images, or scrolls the grid.
func (v *Viewer) Scroll(w *host.Window, down bool) {
	if v.mode == modeGrid {
		v.grid.Scroll(down)
		return
	}
	if down {
		v.selected(v.coll.Next())
	} else {
		v.selected(v.coll.Prev())
	}
}

// KeyDown handles navigation and mode keys.
func (v *Viewer) KeyDown(w *host.Window, key host.Key) {
	v.log.Debug("Key: %s", key)
	switch key {
	case host.KeyUp, host.KeyPageUp:
		v.selected(v.coll.Step(-JumpSize))
	case host.KeyDown, host.KeyPageDown:
		v.selected(v.coll.Step(JumpSize))
	case host.KeyRight, host.KeySpace:
		v.selected(v.coll.Next())
	case host.KeyLeft, host.KeyBackspace:
		v.selected(v.coll.Prev())
	case host.KeyHome:
		v.selected(v.coll.Jump(0))
	case host.KeyEnd:
		v.selected(v.coll.Jump(v.coll.Len() - 1))
	case host.KeyG:
		v.toggleGrid(w)
	case host.KeyEnter:
		if v.mode == modeGrid {
			v.toggleGrid(w)
		}
	case host.KeyZ:
		v.toggleZoom(w)
	case host.KeyF:
		w.ToggleFullScreen()
	case host.KeyQ:
		w.RequestExit()
	}
}

// MouseDown selects a grid tile, toggles zoom or toggles the grid.
func (v *Viewer) MouseDown(w *host.Window, button host.Button, x, y float64) {
	v.pointerX, v.pointerY = x, y
	switch button {
	case host.ButtonLeft:
		if v.mode != modeGrid {
			v.toggleZoom(w)
			return
		}
		if i, ok := v.grid.At(x, y); ok {
			v.selected(v.coll.Jump(i))
			v.mode = modeFit
			v.layout(w)
		}
	case host.ButtonRight:
		v.toggleGrid(w)
	}
}

// MouseMove pans a zoomed image.
func (v *Viewer) MouseMove(w *host.Window, x, y float64) {
	v.pointerX, v.pointerY = x, y
	if v.mode == modeZoom {
		v.layoutZoom(w)
	}
}

// Resized recomputes the layout for the new window size.
func (v *Viewer) Resized(w *host.Window, width, height int) {
	v.grid.Layout(v.coll.Len(), width, height)
	v.layout(w)
}

// Release frees the placeholder and every texture of the collection.
func (v *Viewer) Release() {
	if v.placeholder != nil {
		v.placeholder.Release()
		v.placeholder = nil
	}
	v.coll.Release()
}

// selected records a selection change.
func (v *Viewer) selected(moved bool) {
	if !moved {
		return
	}
	if v.mode == modeZoom {
		v.mode = modeFit
	}
	v.dirty = true
}

func (v *Viewer) toggleGrid(w *host.Window) {
	if v.mode == modeGrid {
		v.mode = modeFit
	} else {
		v.mode = modeGrid
		v.grid.Layout(v.coll.Len(), w.Width(), w.Height())
	}
	v.layout(w)
}

// toggleZoom switches between the fitted and natural size. Only a
// fully loaded image can be zoomed.
func (v *Viewer) toggleZoom(w *host.Window) {
	switch v.mode {
	case modeZoom:
		v.mode = modeFit
	case modeFit:
		if e := v.coll.Current(); e != nil && e.Full() != nil {
			v.mode = modeZoom
			v.layoutZoom(w)
		}
	}
}

// layout fits the current image to the window.
func (v *Viewer) layout(w *host.Window) {
	v.fit = viewport.Rect{}
	e := v.coll.Current()
	if e == nil {
		return
	}
	aspect, width, height := e.AspectRatio(), float64(w.Width()), float64(w.Height())
	if !viewport.Valid(aspect, width, height) {
		aspect = 1.0
	}
	v.fit = viewport.Fit(aspect, width, height)
	if v.mode == modeZoom {
		v.layoutZoom(w)
	}
}

func (v *Viewer) layoutZoom(w *host.Window) {
	e := v.coll.Current()
	if e == nil || e.Full() == nil {
		v.mode = modeFit
		return
	}
	t := e.Full()
	v.zoom = viewport.Zoom(v.fit, float64(t.Width()), float64(t.Height()),
		float64(w.Width()), float64(w.Height()), v.pointerX, v.pointerY)
}

var (
	_ host.Handler = (*Viewer)(nil)
	_ host.Resizer = (*Viewer)(nil)
)
