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

package termplatform

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aamcrae/imvi/internal/host"
	"github.com/aamcrae/imvi/internal/viewport"
)

func newSim(t *testing.T, cols, rows int) (*Platform, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(cols, rows)
	p := NewWithScreen(s, Options{Background: color.Black})
	t.Cleanup(func() { p.Close() })
	return p, s
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

func TestSize(t *testing.T) {
	p, _ := newSim(t, 20, 11)
	w, h := p.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 20, h)

	p.handle(tcell.NewEventResize(40, 6))
	evs := drain(p)
	require.Len(t, evs, 1)
	assert.Equal(t, host.Event{Kind: host.EventResize, W: 40, H: 10}, evs[0])
	w, h = p.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 10, h)
}

func TestKeys(t *testing.T) {
	p, _ := newSim(t, 10, 5)
	p.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	p.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	p.handle(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone))
	p.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	p.handle(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	p.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	p.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))

	evs := drain(p)
	require.Len(t, evs, 6)
	var keys []host.Key
	for _, ev := range evs[:5] {
		keys = append(keys, ev.Key)
	}
	assert.Equal(t, []host.Key{host.KeyRight, host.KeySpace, host.KeyG, host.KeyPageDown, host.KeyEscape}, keys)
	assert.Equal(t, host.EventQuit, evs[5].Kind)
}

func TestMouse(t *testing.T) {
	p, _ := newSim(t, 10, 5)
	p.handle(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	// Still held: no second press.
	p.handle(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	p.handle(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone))
	p.handle(tcell.NewEventMouse(4, 2, tcell.Button2, tcell.ModNone))
	p.handle(tcell.NewEventMouse(4, 2, tcell.WheelDown, tcell.ModNone))

	evs := drain(p)
	require.Len(t, evs, 5)
	assert.Equal(t, host.Event{Kind: host.EventMouseMove, X: 3, Y: 2}, evs[0])
	assert.Equal(t, host.Event{Kind: host.EventMouseDown, Button: host.ButtonLeft, X: 3, Y: 2}, evs[1])
	assert.Equal(t, host.Event{Kind: host.EventMouseMove, X: 4, Y: 2}, evs[2])
	assert.Equal(t, host.Event{Kind: host.EventMouseDown, Button: host.ButtonRight, X: 4, Y: 2}, evs[3])
	assert.Equal(t, host.Event{Kind: host.EventWheel, WheelY: -1}, evs[4])
}

func TestPresent(t *testing.T) {
	p, s := newSim(t, 4, 3)
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.RGBA{255, 0, 0, 255})
	tex, err := p.Upload(src)
	require.NoError(t, err)

	p.Clear()
	// Top half of the first cell row only.
	require.NoError(t, p.Draw(tex, viewport.Rect{X: 0, Y: 0, Width: 2, Height: 1}))
	require.NoError(t, p.SetTitle("ab"))
	require.NoError(t, p.Present())

	cells, w, h := s.GetContents()
	require.Equal(t, 4, w)
	require.Equal(t, 3, h)
	assert.Equal(t, []rune{'a'}, cells[0].Runes)
	assert.Equal(t, []rune{' '}, cells[3].Runes)

	c := cells[w*1+0]
	assert.Equal(t, []rune{'▄'}, c.Runes)
	fg, bg, _ := c.Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), bg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), fg)

	fg, bg, _ = cells[w*1+2].Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), fg)

	tex.Release()
	assert.Zero(t, p.Live())
}

func TestShowErrorWaitsForKey(t *testing.T) {
	p, s := newSim(t, 8, 3)
	done := make(chan struct{})
	go func() {
		p.ShowError(assert.AnError)
		close(done)
	}()
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	<-done

	cells, _, _ := s.GetContents()
	assert.Equal(t, []rune{'a'}, cells[0].Runes)
}
