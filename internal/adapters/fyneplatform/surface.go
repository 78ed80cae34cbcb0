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

package fyneplatform

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/aamcrae/imvi/internal/host"
)

// surface fills the window with the presented frame and turns pointer
// and size changes into host events.
type surface struct {
	widget.BaseWidget
	p      *Platform
	raster *canvas.Raster

	mu    sync.Mutex
	shown *image.RGBA // Last presented frame, never written once shown
}

func newSurface(p *Platform, frame *image.RGBA) *surface {
	s := &surface{p: p, shown: clone(frame)}
	s.raster = canvas.NewRaster(s.generate)
	s.raster.ScaleMode = canvas.ImageScalePixels
	s.ExtendBaseWidget(s)
	return s
}

func (s *surface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.raster)
}

// generate is called by the painter for the image to draw.
func (s *surface) generate(w, h int) image.Image {
	return s.frame()
}

// frame returns the last presented frame.
func (s *surface) frame() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shown
}

// show replaces the presented frame with a copy of img and asks for a repaint.
func (s *surface) show(img *image.RGBA) {
	out := clone(img)
	s.mu.Lock()
	s.shown = out
	s.mu.Unlock()
	canvas.Refresh(s.raster)
}

func clone(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	return out
}

// Resize reports the new size in pixels.
func (s *surface) Resize(size fyne.Size) {
	s.BaseWidget.Resize(size)
	w, h := s.p.pixels(size.Width, size.Height)
	s.p.push(host.Event{Kind: host.EventResize, W: int(w), H: int(h)})
}

func (s *surface) Scrolled(ev *fyne.ScrollEvent) {
	s.p.push(host.Event{Kind: host.EventWheel, WheelY: float64(ev.Scrolled.DY), Flipped: s.p.invertWheel})
}

func (s *surface) MouseDown(ev *desktop.MouseEvent) {
	x, y := s.p.pixels(ev.Position.X, ev.Position.Y)
	s.p.push(host.Event{Kind: host.EventMouseDown, Button: button(ev.Button), X: x, Y: y})
}

func (s *surface) MouseUp(*desktop.MouseEvent) {}

func (s *surface) MouseIn(ev *desktop.MouseEvent) {
	s.MouseMoved(ev)
}

func (s *surface) MouseMoved(ev *desktop.MouseEvent) {
	x, y := s.p.pixels(ev.Position.X, ev.Position.Y)
	s.p.push(host.Event{Kind: host.EventMouseMove, X: x, Y: y})
}

func (s *surface) MouseOut() {}

func button(b desktop.MouseButton) host.Button {
	switch b {
	case desktop.MouseButtonPrimary:
		return host.ButtonLeft
	case desktop.MouseButtonSecondary:
		return host.ButtonRight
	case desktop.MouseButtonTertiary:
		return host.ButtonMiddle
	}
	return host.ButtonUnknown
}

var (
	_ fyne.Scrollable   = (*surface)(nil)
	_ desktop.Mouseable = (*surface)(nil)
	_ desktop.Hoverable = (*surface)(nil)
)
