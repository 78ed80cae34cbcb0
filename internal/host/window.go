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

// Package host runs the frame loop that turns platform events into
// calls on an application Handler.
package host

import (
	"fmt"
	"image"
	"time"

	"github.com/aamcrae/imvi/internal/ports"
	"github.com/aamcrae/imvi/internal/viewport"
)

// FrameBudget is the time allotted to one frame.
const FrameBudget = time.Second / 60

// Window owns the platform for the lifetime of the process.
type Window struct {
	platform    Platform
	clock       Clock
	log         ports.Logger
	width       int
	height      int
	aspectRatio float64
	running     bool
	frames      uint64
}

// Option configures a Window.
type Option func(*Window)

// WithClock replaces the clock used for frame pacing.
func WithClock(c Clock) Option {
	return func(w *Window) {
		w.clock = c
	}
}

// WithLogger sets the logger.
func WithLogger(l ports.Logger) Option {
	return func(w *Window) {
		w.log = l.WithComponent("host")
	}
}

// New creates a Window over platform.
func New(platform Platform, opts ...Option) *Window {
	w := &Window{
		platform: platform,
		clock:    systemClock{},
		log:      ports.Discard,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.setSize(platform.Size())
	return w
}

// Width returns the window width in pixels.
func (w *Window) Width() int {
	return w.width
}

// Height returns the window height in pixels.
func (w *Window) Height() int {
	return w.height
}

// AspectRatio returns width/height of the window.
func (w *Window) AspectRatio() float64 {
	return w.aspectRatio
}

// Running reports whether the frame loop is active.
func (w *Window) Running() bool {
	return w.running
}

// Frames returns the number of completed frames.
func (w *Window) Frames() uint64 {
	return w.frames
}

// RequestExit ends the frame loop after the current frame.
func (w *Window) RequestExit() {
	w.running = false
}

// Upload makes a decoded image drawable. Window satisfies ports.Uploader.
func (w *Window) Upload(img image.Image) (ports.Texture, error) {
	return w.platform.Upload(img)
}

// Draw copies tex into dst on the current frame.
func (w *Window) Draw(tex ports.Texture, dst viewport.Rect) error {
	if err := w.platform.Draw(tex, dst); err != nil {
		return fmt.Errorf("draw %v: %w", dst, err)
	}
	return nil
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) error {
	return w.platform.SetTitle(title)
}

// ToggleFullScreen switches full screen mode if the platform supports it.
func (w *Window) ToggleFullScreen() {
	if fs, ok := w.platform.(FullScreener); ok {
		fs.ToggleFullScreen()
	}
}

// Run loads h and then runs frames until an exit is requested or a
// callback fails.
func (w *Window) Run(h Handler) error {
	return w.platform.Main(func() error {
		if err := h.Load(w); err != nil {
			return fmt.Errorf("load: %w", err)
		}
		w.running = true
		for w.running {
			start := w.clock.Now()
			if err := w.frame(h); err != nil {
				w.running = false
				return err
			}
			w.frames++
			if !w.running {
				break
			}
			if elapsed := w.clock.Now().Sub(start); elapsed < FrameBudget {
				w.clock.Sleep(FrameBudget - elapsed)
			}
		}
		w.log.Debug("Frame loop stopped after %d frames", w.frames)
		return nil
	})
}

// frame runs one input, update, draw cycle.
func (w *Window) frame(h Handler) error {
	w.input(h)
	if err := h.Update(w); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	w.platform.Clear()
	if err := h.Draw(w); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if err := w.platform.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// input drains the pending events. A quit request stops the drain;
// the events behind it are discarded.
func (w *Window) input(h Handler) {
	for {
		ev, ok := w.platform.PollEvent()
		if !ok {
			return
		}
		switch ev.Kind {
		case EventQuit:
			w.log.Debug("Quit requested")
			w.running = false
			return
		case EventResize:
			width, height := clampSize(ev.W, ev.H)
			if width == w.width && height == w.height {
				continue
			}
			w.log.Debug("Resize to %d x %d (current %d x %d)", width, height, w.width, w.height)
			w.setSize(width, height)
			if r, ok := h.(Resizer); ok {
				r.Resized(w, w.width, w.height)
			}
		case EventKeyDown:
			if ev.Key == KeyEscape {
				w.running = false
				return
			}
			h.KeyDown(w, ev.Key)
		case EventWheel:
			if ev.WheelY == 0 {
				continue
			}
			down := ev.WheelY < 0
			if ev.Flipped {
				down = !down
			}
			h.Scroll(w, down)
		case EventMouseDown:
			h.MouseDown(w, ev.Button, ev.X, ev.Y)
		case EventMouseMove:
			h.MouseMove(w, ev.X, ev.Y)
		}
	}
}

// clampSize limits a size to at least one pixel each way.
func clampSize(width, height int) (int, int) {
	return max(width, 1), max(height, 1)
}

func (w *Window) setSize(width, height int) {
	width, height = clampSize(width, height)
	w.width, w.height = width, height
	w.aspectRatio = float64(width) / float64(height)
}

// Close releases the platform.
func (w *Window) Close() error {
	return w.platform.Close()
}

var _ ports.Uploader = (*Window)(nil)
