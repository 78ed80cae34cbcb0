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

package host

import (
	"fmt"
	"image"
	"time"

	"github.com/aamcrae/imvi/internal/ports"
	"github.com/aamcrae/imvi/internal/viewport"
)

// Platform is a window on some display system.
type Platform interface {
	// Main runs loop to completion. Platforms whose toolkit must own
	// the calling goroutine run loop on another goroutine.
	Main(loop func() error) error

	// PollEvent returns the next pending event without blocking.
	PollEvent() (Event, bool)

	// Size returns the size of the frame buffer in pixels.
	Size() (width, height int)

	// Upload makes a decoded image drawable.
	Upload(img image.Image) (ports.Texture, error)

	// Clear fills the frame buffer with the background colour.
	Clear()

	// Draw copies tex, scaled, into dst on the frame buffer.
	Draw(tex ports.Texture, dst viewport.Rect) error

	// Present shows the frame buffer.
	Present() error

	SetTitle(title string) error

	// ShowError notifies the user of err and blocks until acknowledged.
	ShowError(err error)

	Close() error
}

// FullScreener is implemented by platforms that can toggle full screen.
type FullScreener interface {
	ToggleFullScreen()
}

// Handler receives the semantic events and per-frame callbacks of a Window.
// Callbacks are made on a single goroutine, in platform delivery order.
type Handler interface {
	Load(w *Window) error
	Update(w *Window) error
	Draw(w *Window) error

	Scroll(w *Window, down bool)
	KeyDown(w *Window, key Key)
	MouseDown(w *Window, button Button, x, y float64)
	MouseMove(w *Window, x, y float64)
}

// Resizer is implemented by handlers that want to know when the
// window size changes. The Window dimensions are updated before the call.
type Resizer interface {
	Resized(w *Window, width, height int)
}

// Clock paces the frame loop.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// InitError reports a platform that could not be created.
type InitError struct {
	Platform string
	Err      error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%s: init: %v", e.Platform, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }
