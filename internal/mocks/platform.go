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

package mocks

import (
	"image"
	"time"

	"github.com/aamcrae/imvi/internal/host"
	"github.com/aamcrae/imvi/internal/ports"
	"github.com/aamcrae/imvi/internal/viewport"
)

// DrawCall records one Platform.Draw.
type DrawCall struct {
	Texture ports.Texture
	Dst     viewport.Rect
}

// Platform is a mock implementation of host.Platform. Events are
// returned by PollEvent in order; Frames, if set, supplies a fresh
// batch of events for each frame instead.
type Platform struct {
	Uploader

	W, H   int
	Events []host.Event
	Frames [][]host.Event

	DrawFunc    func(tex ports.Texture, dst viewport.Rect) error
	PresentFunc func() error

	Titles     []string
	Draws      []DrawCall
	Calls      []string // "clear", "draw", "present" in call order
	Presents   int
	Errors     []error
	FullScreen bool
	Closed     bool

	frame int
}

func (m *Platform) Main(loop func() error) error {
	return loop()
}

func (m *Platform) PollEvent() (host.Event, bool) {
	if len(m.Events) == 0 {
		return host.Event{}, false
	}
	ev := m.Events[0]
	m.Events = m.Events[1:]
	return ev, true
}

func (m *Platform) Size() (int, int) {
	return m.W, m.H
}

func (m *Platform) Upload(img image.Image) (ports.Texture, error) {
	return m.Uploader.Upload(img)
}

func (m *Platform) Clear() {
	m.Calls = append(m.Calls, "clear")
}

func (m *Platform) Draw(tex ports.Texture, dst viewport.Rect) error {
	m.Calls = append(m.Calls, "draw")
	if m.DrawFunc != nil {
		if err := m.DrawFunc(tex, dst); err != nil {
			return err
		}
	}
	m.Draws = append(m.Draws, DrawCall{Texture: tex, Dst: dst})
	return nil
}

// Present records the call and queues the next batch from Frames.
func (m *Platform) Present() error {
	m.Calls = append(m.Calls, "present")
	m.Presents++
	if m.frame < len(m.Frames) {
		m.Events = append(m.Events, m.Frames[m.frame]...)
		m.frame++
	}
	if m.PresentFunc != nil {
		return m.PresentFunc()
	}
	return nil
}

func (m *Platform) SetTitle(title string) error {
	m.Titles = append(m.Titles, title)
	return nil
}

// Title returns the most recent title, or "".
func (m *Platform) Title() string {
	if len(m.Titles) == 0 {
		return ""
	}
	return m.Titles[len(m.Titles)-1]
}

func (m *Platform) ShowError(err error) {
	m.Errors = append(m.Errors, err)
}

func (m *Platform) ToggleFullScreen() {
	m.FullScreen = !m.FullScreen
}

func (m *Platform) Close() error {
	m.Closed = true
	return nil
}

var (
	_ host.Platform     = (*Platform)(nil)
	_ host.FullScreener = (*Platform)(nil)
)

// Clock is a manual host.Clock. Sleep advances the time.
type Clock struct {
	T      time.Time
	Sleeps []time.Duration
}

func (c *Clock) Now() time.Time {
	return c.T
}

func (c *Clock) Sleep(d time.Duration) {
	c.Sleeps = append(c.Sleeps, d)
	c.T = c.T.Add(d)
}

// Advance simulates work taking d.
func (c *Clock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}

var _ host.Clock = (*Clock)(nil)
