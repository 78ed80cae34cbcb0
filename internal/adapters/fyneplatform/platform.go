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

// Package fyneplatform is a desktop window for the host, built on fyne.
package fyneplatform

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/aamcrae/imvi/internal/adapters/logger"
	"github.com/aamcrae/imvi/internal/adapters/raster"
	"github.com/aamcrae/imvi/internal/host"
	"github.com/aamcrae/imvi/internal/ports"
	"github.com/aamcrae/imvi/internal/viewport"
)

// Name identifies the backend.
const Name = "fyne"

// Options configures the window.
type Options struct {
	Width, Height int
	Background    color.Color
	InvertWheel   bool
	FullScreen    bool
	Logger        ports.Logger
}

// Platform is a fyne window with a software frame buffer.
type Platform struct {
	app         fyne.App
	win         fyne.Window
	surface     *surface
	pool        *raster.Pool
	frame       *raster.Frame
	invertWheel bool
	log         ports.Logger

	mu     sync.Mutex
	events []host.Event
}

// New creates the application and its window.
func New(opts Options) (*Platform, error) {
	return NewWithApp(app.New(), opts)
}

// NewWithApp creates the window on an existing fyne application.
func NewWithApp(a fyne.App, opts Options) (*Platform, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, &host.InitError{Platform: Name, Err: fmt.Errorf("invalid window size %d x %d", opts.Width, opts.Height)}
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}
	p := &Platform{
		app:         a,
		pool:        raster.NewPool(),
		frame:       raster.NewFrame(opts.Width, opts.Height, opts.Background),
		invertWheel: opts.InvertWheel,
		log:         logger.NewNoop(),
	}
	if opts.Logger != nil {
		p.log = opts.Logger.WithComponent(Name)
	}
	p.win = a.NewWindow("imvi")
	p.win.SetMaster()
	p.win.SetPadded(false)
	p.surface = newSurface(p, p.frame.Image())
	p.win.SetContent(p.surface)
	if opts.FullScreen {
		p.win.SetFullScreen(true)
	} else {
		p.win.Resize(fyne.NewSize(float32(opts.Width), float32(opts.Height)))
	}
	p.win.SetCloseIntercept(func() {
		p.push(host.Event{Kind: host.EventQuit})
	})
	if deskCanvas, ok := p.win.Canvas().(desktop.Canvas); ok {
		deskCanvas.SetOnKeyDown(p.keyDown)
	}
	return p, nil
}

// keyDown maps a fyne key onto a host key event.
func (p *Platform) keyDown(ev *fyne.KeyEvent) {
	p.log.Debug("Key: %s", ev.Name)
	var k host.Key
	switch ev.Name {
	case fyne.KeyEscape:
		k = host.KeyEscape
	case fyne.KeyReturn, fyne.KeyEnter:
		k = host.KeyEnter
	case fyne.KeyUp:
		k = host.KeyUp
	case fyne.KeyDown:
		k = host.KeyDown
	case fyne.KeyPageUp:
		k = host.KeyPageUp
	case fyne.KeyPageDown:
		k = host.KeyPageDown
	case "N", fyne.KeyRight:
		k = host.KeyRight
	case "P", fyne.KeyLeft:
		k = host.KeyLeft
	case fyne.KeySpace:
		k = host.KeySpace
	case fyne.KeyBackspace:
		k = host.KeyBackspace
	case fyne.KeyHome:
		k = host.KeyHome
	case fyne.KeyEnd:
		k = host.KeyEnd
	case fyne.KeyF:
		k = host.KeyF
	case fyne.KeyG:
		k = host.KeyG
	case fyne.KeyQ:
		k = host.KeyQ
	case fyne.KeyZ:
		k = host.KeyZ
	default:
		return
	}
	p.push(host.Event{Kind: host.EventKeyDown, Key: k})
}

func (p *Platform) push(ev host.Event) {
	p.mu.Lock()
	p.events = append(p.events, ev)
	p.mu.Unlock()
}

// pixels converts window units to frame buffer pixels.
func (p *Platform) pixels(x, y float32) (float64, float64) {
	scale := p.win.Canvas().Scale()
	return float64(x * scale), float64(y * scale)
}

// Main shows the window and runs loop on a separate goroutine, since
// fyne must own the calling goroutine.
func (p *Platform) Main(loop func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- loop()
		p.app.Quit()
	}()
	p.win.ShowAndRun()
	// The window may have gone away without the loop noticing.
	p.push(host.Event{Kind: host.EventQuit})
	return <-done
}

func (p *Platform) PollEvent() (host.Event, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.events) == 0 {
		return host.Event{}, false
	}
	ev := p.events[0]
	p.events = p.events[1:]
	if ev.Kind == host.EventResize {
		p.frame.Resize(ev.W, ev.H)
	}
	return ev, true
}

func (p *Platform) Size() (int, int) {
	return p.frame.Size()
}

func (p *Platform) Upload(img image.Image) (ports.Texture, error) {
	return p.pool.Upload(img)
}

func (p *Platform) Clear() {
	p.frame.Clear()
}

func (p *Platform) Draw(tex ports.Texture, dst viewport.Rect) error {
	return p.frame.Draw(tex, dst)
}

// Present hands a copy of the frame to the window.
func (p *Platform) Present() error {
	p.surface.show(p.frame.Image())
	return nil
}

func (p *Platform) SetTitle(title string) error {
	p.win.SetTitle(title)
	return nil
}

// ToggleFullScreen switches between full screen and windowed mode.
func (p *Platform) ToggleFullScreen() {
	p.win.SetFullScreen(!p.win.FullScreen())
}

// ShowError shows err in a dialog and waits for it to be dismissed.
// It must not be called once Main has started.
func (p *Platform) ShowError(err error) {
	d := dialog.NewError(err, p.win)
	d.SetOnClosed(func() {
		p.app.Quit()
	})
	d.Show()
	p.win.ShowAndRun()
}

// Live returns the number of textures not yet released.
func (p *Platform) Live() int {
	return p.pool.Live()
}

func (p *Platform) Close() error {
	if n := p.pool.Live(); n != 0 {
		p.log.Debug("%d textures still live at close", n)
	}
	return nil
}

var (
	_ host.Platform     = (*Platform)(nil)
	_ host.FullScreener = (*Platform)(nil)
)
