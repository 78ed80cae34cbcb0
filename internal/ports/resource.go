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

// Package ports defines the interfaces between the viewer core and
// the decoding, rendering and logging layers.
package ports

import (
	"image"
)

// Texture is a decoded image that has been uploaded to the rendering
// context and is ready to draw.
type Texture interface {
	// Width returns the width of the texture in pixels.
	Width() int

	// Height returns the height of the texture in pixels.
	Height() int

	// Release frees the texture. Calling Release more than once is a no-op.
	Release()
}

// Uploader converts a decoded pixel surface into a resident Texture.
type Uploader interface {
	Upload(img image.Image) (Texture, error)
}

// Decoder reads an image file into a generic pixel surface.
type Decoder interface {
	Decode(path string) (image.Image, error)
}
