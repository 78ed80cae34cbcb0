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
	"image"

	"github.com/fogleman/gg"
)

// Placeholder draws the square shown for an image with nothing loaded:
// a grey box crossed from corner to corner.
func Placeholder(size int) image.Image {
	if size < 4 {
		size = 4
	}
	s := float64(size)
	dc := gg.NewContext(size, size)
	dc.SetRGB255(60, 60, 60)
	dc.Clear()
	dc.SetRGB255(140, 140, 140)
	dc.SetLineWidth(lineWidth(s))
	dc.DrawRectangle(0, 0, s, s)
	dc.DrawLine(0, 0, s, s)
	dc.DrawLine(s, 0, 0, s)
	dc.Stroke()
	return dc.Image()
}

func lineWidth(s float64) float64 {
	if w := s / 64; w > 2 {
		return w
	}
	return 2
}
