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

package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestFit_Examples(t *testing.T) {
	tests := []struct {
		name   string
		aspect float64
		w, h   float64
		want   Rect
	}{
		{"wide image", 2.0, 800, 600, Rect{X: 0, Y: 100, Width: 800, Height: 400}},
		{"tall image", 0.5, 800, 600, Rect{X: 250, Y: 0, Width: 300, Height: 600}},
		{"same aspect", 800.0 / 600.0, 800, 600, Rect{X: 0, Y: 0, Width: 800, Height: 600}},
		{"square in portrait", 1.0, 300, 500, Rect{X: 0, Y: 100, Width: 300, Height: 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(tt.aspect, tt.w, tt.h)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
			assert.InDelta(t, tt.want.Width, got.Width, eps)
			assert.InDelta(t, tt.want.Height, got.Height, eps)
		})
	}
}

func TestFit_ContainedAndCentred(t *testing.T) {
	aspects := []float64{0.1, 0.33, 0.75, 1, 1.3333, 1.7778, 2.5, 10}
	sizes := [][2]float64{{1, 1}, {800, 600}, {600, 800}, {1920, 1080}, {37, 999}}
	for _, ar := range aspects {
		for _, sz := range sizes {
			w, h := sz[0], sz[1]
			r := Fit(ar, w, h)
			tol := 1e-6 * math.Max(w, h)

			assert.GreaterOrEqual(t, r.X, -tol)
			assert.GreaterOrEqual(t, r.Y, -tol)
			assert.LessOrEqual(t, r.X+r.Width, w+tol)
			assert.LessOrEqual(t, r.Y+r.Height, h+tol)
			assert.InDelta(t, ar, r.Width/r.Height, 1e-6*ar)

			// One axis is filled, the other has equal margins.
			if math.Abs(r.Width-w) < tol {
				assert.InDelta(t, h-r.Y-r.Height, r.Y, tol)
			} else {
				assert.InDelta(t, h, r.Height, tol)
				assert.InDelta(t, w-r.X-r.Width, r.X, tol)
			}
		}
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(1, 800, 600))
	assert.False(t, Valid(0, 800, 600))
	assert.False(t, Valid(-1, 800, 600))
	assert.False(t, Valid(1, 800, 0))
	assert.False(t, Valid(math.NaN(), 800, 600))
	assert.False(t, Valid(math.Inf(1), 800, 600))
}

func TestZoom_FollowsPointer(t *testing.T) {
	fit := Fit(2.0, 800, 600) // (0,100) 800x400
	// Pointer at the top-left of the fitted image shows the top-left corner.
	r := Zoom(fit, 4000, 2000, 800, 600, 0, 100)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 4000, Height: 2000}, r)

	// Pointer at the bottom-right shows the bottom-right corner.
	r = Zoom(fit, 4000, 2000, 800, 600, 800, 500)
	assert.InDelta(t, -3200, r.X, eps)
	assert.InDelta(t, -1400, r.Y, eps)

	// Outside the image the position is clamped.
	r = Zoom(fit, 4000, 2000, 800, 600, -50, 10000)
	assert.InDelta(t, 0, r.X, eps)
	assert.InDelta(t, -1400, r.Y, eps)
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 5, Height: 5}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(14.9, 14.9))
	assert.False(t, r.Contains(15, 12))
	assert.False(t, r.Contains(9, 12))
}
