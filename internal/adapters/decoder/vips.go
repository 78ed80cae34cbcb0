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

package decoder

import (
	"image"
	"sync"

	"github.com/davidbyttow/govips/v2/vips"

	"github.com/aamcrae/imvi/internal/ports"
)

var vipsOnce sync.Once

// Vips decodes through libvips, which reads the formats the standard
// library cannot (xcf, pnm, tga and others depending on the build).
type Vips struct {
	maxSize int // 0 for no limit
}

// NewVips starts libvips if required. Images with a side longer than
// maxSize are shrunk, keeping their aspect ratio; 0 disables shrinking.
func NewVips(maxSize int) *Vips {
	vipsOnce.Do(func() {
		vips.LoggingSettings(nil, vips.LogLevelError)
		vips.Startup(nil)
	})
	return &Vips{maxSize: maxSize}
}

func (v *Vips) Decode(path string) (image.Image, error) {
	vimg, err := vips.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	defer vimg.Close()
	if v.maxSize > 0 {
		long := vimg.Width()
		if vimg.Height() > long {
			long = vimg.Height()
		}
		if long > v.maxSize {
			if err := vimg.Resize(float64(v.maxSize)/float64(long), vips.KernelAuto); err != nil {
				return nil, err
			}
		}
	}
	return vimg.ToImage(vips.NewDefaultExportParams())
}

// Close shuts libvips down. No Vips decoder may be used afterwards.
func (v *Vips) Close() {
	vips.Shutdown()
}

var _ ports.Decoder = (*Vips)(nil)
