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

// Package termplatform shows images on a terminal using half block
// characters, two pixels to a cell.
package termplatform

import (
	"image"
	"image/color"
	"sync"

	"github.com/gdamore/tcell"

	"github.com/aamcrae/imvi/internal/adapters/logger"
	"github.com/aamcrae/imvi/internal/adapters/raster"
	"github.com/aamcrae/imvi/internal/host"
	"github.com/aamcrae/imvi/internal/ports"
	"github.com/aamcrae/imvi/internal/viewport"
)

// Name identifies the backend.
const Name = "term"

// Options configures the terminal.
type Options struct {
	Background  color.Color
	InvertWheel bool
	Logger      ports.Logger
}

var titleStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

// Platform draws on a tcell screen. The first row holds the title;
// every other row shows two rows of pixels.
type Platform struct {
	screen      tcell.Screen
	pool        *raster.Pool
	frame       *raster.Frame
	title       string
	invertWheel bool
	log         ports.Logger

	mu      sync.Mutex
	events  []host.Event
	buttons tcell.ButtonMask // Buttons held at the last mouse event
	mouseX  int
	mouseY  int
}

// New opens the terminal.
func New(opts Options) (*Platform, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, &host.InitError{Platform: Name, Err: err}
	}
	if err := s.Init(); err != nil {
		return nil, &host.InitError{Platform: Name, Err: err}
	}
	return NewWithScreen(s, opts), nil
}

// NewWithScreen uses an initialised screen.
func NewWithScreen(s tcell.Screen, opts Options) *Platform {
	if opts.Background == nil {
		opts.Background = color.Black
	}
	p := &Platform{
		screen:      s,
		pool:        raster.NewPool(),
		invertWheel: opts.InvertWheel,
		log:         logger.NewNoop(),
		mouseX:      -1,
		mouseY:      -1,
	}
	if opts.Logger != nil {
		p.log = opts.Logger.WithComponent(Name)
	}
	s.EnableMouse()
	s.SetStyle(tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack))
	s.Clear()
	cols, rows := s.Size()
	w, h := pixels(cols, rows)
	p.frame = raster.NewFrame(w, h, opts.Background)
	return p
}

// pixels returns the frame size for a terminal of cols x rows.
func pixels(cols, rows int) (int, int) {
	h := (rows - 1) * 2
	if h < 1 {
		h = 1
	}
	if cols < 1 {
		cols = 1
	}
	return cols, h
}

// Main runs loop while a goroutine feeds it terminal events.
func (p *Platform) Main(loop func() error) error {
	go p.pump()
	return loop()
}

// pump reads events until the screen is closed.
func (p *Platform) pump() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		p.handle(ev)
	}
}

// handle converts a terminal event into host events.
func (p *Platform) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			p.push(host.Event{Kind: host.EventQuit})
			return
		}
		if k := key(ev); k != host.KeyUnknown {
			p.push(host.Event{Kind: host.EventKeyDown, Key: k})
		}
	case *tcell.EventResize:
		w, h := pixels(ev.Size())
		p.push(host.Event{Kind: host.EventResize, W: w, H: h})
	case *tcell.EventMouse:
		p.mouse(ev)
	case *tcell.EventInterrupt:
		p.push(host.Event{Kind: host.EventQuit})
	}
}

func (p *Platform) mouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x, y := float64(cx), float64((cy-1)*2)
	if cx != p.mouseX || cy != p.mouseY {
		p.mouseX, p.mouseY = cx, cy
		p.push(host.Event{Kind: host.EventMouseMove, X: x, Y: y})
	}
	b := ev.Buttons()
	switch {
	case b&tcell.WheelUp != 0:
		p.push(host.Event{Kind: host.EventWheel, WheelY: 1, Flipped: p.invertWheel})
	case b&tcell.WheelDown != 0:
		p.push(host.Event{Kind: host.EventWheel, WheelY: -1, Flipped: p.invertWheel})
	}
	pressed := b &^ p.buttons
	for _, m := range []struct {
		mask   tcell.ButtonMask
		button host.Button
	}{
		{tcell.Button1, host.ButtonLeft},
		{tcell.Button2, host.ButtonRight},
		{tcell.Button3, host.ButtonMiddle},
	} {
		if pressed&m.mask != 0 {
			p.push(host.Event{Kind: host.EventMouseDown, Button: m.button, X: x, Y: y})
		}
	}
	p.buttons = b &^ (tcell.WheelUp | tcell.WheelDown)
}

func key(ev *tcell.EventKey) host.Key {
	switch ev.Key() {
	case tcell.KeyEscape:
		return host.KeyEscape
	case tcell.KeyEnter:
		return host.KeyEnter
	case tcell.KeyLeft:
		return host.KeyLeft
	case tcell.KeyRight:
		return host.KeyRight
	case tcell.KeyUp:
		return host.KeyUp
	case tcell.KeyDown:
		return host.KeyDown
	case tcell.KeyPgUp:
		return host.KeyPageUp
	case tcell.KeyPgDn:
		return host.KeyPageDown
	case tcell.KeyHome:
		return host.KeyHome
	case tcell.KeyEnd:
		return host.KeyEnd
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return host.KeyBackspace
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return host.KeySpace
		case 'n':
			return host.KeyRight
		case 'p':
			return host.KeyLeft
		case 'f', 'F':
			return host.KeyF
		case 'g', 'G':
			return host.KeyG
		case 'q', 'Q':
			return host.KeyQ
		case 'z', 'Z':
			return host.KeyZ
		}
	}
	return host.KeyUnknown
}

func (p *Platform) push(ev host.Event) {
	p.mu.Lock()
	p.events = append(p.events, ev)
	p.mu.Unlock()
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

// Present copies the frame to the screen. The top pixel of each cell
// is the background colour and the bottom pixel the foreground of a
// lower half block.
func (p *Platform) Present() error {
	img := p.frame.Image()
	w, h := p.frame.Size()
	for y := 0; y+1 < h; y += 2 {
		for x := 0; x < w; x++ {
			bg := rgb(img.RGBAAt(x, y))
			fg := rgb(img.RGBAAt(x, y+1))
			p.screen.SetContent(x, y/2+1, '▄', nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
	p.drawTitle()
	p.screen.Show()
	return nil
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (p *Platform) drawTitle() {
	cols, _ := p.screen.Size()
	runes := []rune(p.title)
	for c := 0; c < cols; c++ {
		r := ' '
		if c < len(runes) {
			r = runes[c]
		}
		p.screen.SetContent(c, 0, r, nil, titleStyle)
	}
}

func (p *Platform) SetTitle(title string) error {
	p.title = title
	return nil
}

// ShowError writes the message and waits for Escape, Enter or q.
// It must not be called once Main has started.
func (p *Platform) ShowError(err error) {
	cols, _ := p.screen.Size()
	if cols < 1 {
		cols = 1
	}
	p.screen.Clear()
	r, c := 0, 0
	for _, ch := range err.Error() {
		p.screen.SetContent(c, r, ch, nil, titleStyle)
		c++
		if c >= cols {
			c = 0
			r++
		}
	}
	p.screen.Show()
	for {
		switch ev := p.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyCtrlC:
				return
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return
				}
			}
		}
	}
}

// Live returns the number of textures not yet released.
func (p *Platform) Live() int {
	return p.pool.Live()
}

// Close restores the terminal.
func (p *Platform) Close() error {
	p.screen.Fini()
	return nil
}

var _ host.Platform = (*Platform)(nil)
