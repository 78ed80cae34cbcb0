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

// Package viewport computes where images are drawn inside a window.
package viewport

import (
	"fmt"
	"math"
)

// Rect is a destination rectangle in window coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g) [%g x %g]", r.X, r.Y, r.Width, r.Height)
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Translate returns the rectangle moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Fit returns the largest rectangle with the given aspect ratio
// (width/height) that fits in a window of the given size, centred
// along the axis that has spare room.
// aspect, width and height must be positive and finite.
func Fit(aspect, width, height float64) Rect {
	if aspect < width/height {
		// Taller than the window: full height, margins left and right.
		w := height * aspect
		return Rect{X: (width - w) / 2, Y: 0, Width: w, Height: height}
	}
	h := width / aspect
	return Rect{X: 0, Y: (height - h) / 2, Width: width, Height: h}
}

// Valid reports whether the arguments are acceptable to Fit.
func Valid(aspect, width, height float64) bool {
	for _, v := range []float64{aspect, width, height} {
		if !(v > 0) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Zoom returns the rectangle that shows a texW x texH image at its
// natural size in a winW x winH window. The pointer position, taken
// relative to the fitted rectangle, selects which part is visible.
func Zoom(fit Rect, texW, texH, winW, winH, pointerX, pointerY float64) Rect {
	fx := clamp01((pointerX - fit.X) / fit.Width)
	fy := clamp01((pointerY - fit.Y) / fit.Height)
	return Rect{
		X:      -fx * (texW - winW),
		Y:      -fy * (texH - winH),
		Width:  texW,
		Height: texH,
	}
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
