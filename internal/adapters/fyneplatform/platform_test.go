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
	"errors"
	"image"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aamcrae/imvi/internal/host"
	"github.com/aamcrae/imvi/internal/viewport"
)

func newTestPlatform(t *testing.T, invert bool) *Platform {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	p, err := NewWithApp(a, Options{Width: 64, Height: 48, Background: color.Black, InvertWheel: invert})
	require.NoError(t, err)
	// Discard the events raised while the window was laid out.
	for {
		if _, ok := p.PollEvent(); !ok {
			break
		}
	}
	return p
}

func drain(p *Platform) []host.Event {
	var evs []host.Event
	for {
		ev, ok := p.PollEvent()
		if !ok {
			return evs
		}
		evs = append(evs, ev)
	}
}

func TestNewRejectsBadSize(t *testing.T) {
	_, err := NewWithApp(test.NewApp(), Options{Width: 0, Height: 10})
	var ie *host.InitError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, Name, ie.Platform)
}

func TestKeys(t *testing.T) {
	p := newTestPlatform(t, false)
	for _, name := range []fyne.KeyName{fyne.KeyRight, "N", fyne.KeyEscape, fyne.KeyReturn, fyne.KeyG, fyne.KeyF1} {
		p.keyDown(&fyne.KeyEvent{Name: name})
	}
	evs := drain(p)
	var keys []host.Key
	for _, ev := range evs {
		require.Equal(t, host.EventKeyDown, ev.Kind)
		keys = append(keys, ev.Key)
	}
	assert.Equal(t, []host.Key{host.KeyRight, host.KeyRight, host.KeyEscape, host.KeyEnter, host.KeyG}, keys)
}

func TestPointerAndWheel(t *testing.T) {
	p := newTestPlatform(t, true)
	p.surface.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, 2)})
	p.surface.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 20)},
		Button:     desktop.MouseButtonSecondary,
	})
	p.surface.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(3, 4)}})

	evs := drain(p)
	require.Len(t, evs, 3)
	assert.Equal(t, host.Event{Kind: host.EventWheel, WheelY: 2, Flipped: true}, evs[0])
	assert.Equal(t, host.Event{Kind: host.EventMouseDown, Button: host.ButtonRight, X: 10, Y: 20}, evs[1])
	assert.Equal(t, host.Event{Kind: host.EventMouseMove, X: 3, Y: 4}, evs[2])
}

func TestResizeEvent(t *testing.T) {
	p := newTestPlatform(t, false)
	p.surface.Resize(fyne.NewSize(100, 50))

	evs := drain(p)
	require.NotEmpty(t, evs)
	last := evs[len(evs)-1]
	assert.Equal(t, host.Event{Kind: host.EventResize, W: 100, H: 50}, last)
	w, h := p.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)
}

func TestDrawAndPresent(t *testing.T) {
	p := newTestPlatform(t, false)
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	tex, err := p.Upload(src)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Live())

	w, h := p.Size()
	p.Clear()
	require.NoError(t, p.Draw(tex, viewport.Rect{Width: float64(w), Height: float64(h)}))
	require.NoError(t, p.Present())

	shown := p.surface.frame()
	assert.NotSame(t, p.frame.Image(), shown)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, shown.RGBAAt(0, 0))

	// Drawing the next frame leaves the shown one alone.
	p.Clear()
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, shown.RGBAAt(0, 0))
	assert.Same(t, shown, p.surface.generate(w, h))

	require.NoError(t, p.SetTitle("[1/1] x.png - imvi"))
	assert.Equal(t, "[1/1] x.png - imvi", p.win.Title())

	tex.Release()
	assert.Zero(t, p.Live())
	require.NoError(t, p.Close())
}

// Run with -race: frames are presented on the loop goroutine while the
// window is painted on another.
func TestPresentWhilePainting(t *testing.T) {
	p := newTestPlatform(t, false)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			p.Clear()
			assert.NoError(t, p.Present())
		}
	}()
	for i := 0; i < 50; i++ {
		assert.NotNil(t, p.win.Canvas().Capture())
	}
	<-done
	w, h := p.Size()
	assert.Equal(t, image.Rect(0, 0, w, h), p.surface.frame().Rect)
}
