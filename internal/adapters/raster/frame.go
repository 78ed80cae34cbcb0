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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/aamcrae/imvi/internal/ports"
	"github.com/aamcrae/imvi/internal/viewport"
)

// Frame is an RGBA frame buffer.
type Frame struct {
	img *image.RGBA
	bg  *image.Uniform
}

// NewFrame returns a w x h frame filled with bg.
func NewFrame(w, h int, bg color.Color) *Frame {
	f := &Frame{bg: image.NewUniform(bg)}
	f.Resize(w, h)
	return f
}

// Resize replaces the buffer if the size has changed, and clears it.
func (f *Frame) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if f.img == nil || f.img.Rect.Dx() != w || f.img.Rect.Dy() != h {
		f.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	f.Clear()
}

// Size returns the frame dimensions.
func (f *Frame) Size() (int, int) {
	return f.img.Rect.Dx(), f.img.Rect.Dy()
}

// Clear fills the frame with the background colour.
func (f *Frame) Clear() {
	draw.Draw(f.img, f.img.Rect, f.bg, image.Point{}, draw.Src)
}

// Draw scales tex into dst. Parts of dst outside the frame are clipped.
func (f *Frame) Draw(tex ports.Texture, dst viewport.Rect) error {
	t, ok := tex.(*Texture)
	if !ok {
		return fmt.Errorf("foreign texture %T", tex)
	}
	r := image.Rect(
		int(math.Round(dst.X)),
		int(math.Round(dst.Y)),
		int(math.Round(dst.X+dst.Width)),
		int(math.Round(dst.Y+dst.Height)))
	if r.Empty() {
		return nil
	}
	src, err := t.Scaled(r.Dx(), r.Dy())
	if err != nil {
		return err
	}
	draw.Draw(f.img, r, src, image.Point{}, draw.Over)
	return nil
}

// Image returns the frame buffer.
func (f *Frame) Image() *image.RGBA {
	return f.img
}
