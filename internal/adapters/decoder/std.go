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

// Package decoder turns image files into pixel surfaces.
package decoder

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/aamcrae/imvi/internal/ports"
)

// Std decodes the formats registered with the image package:
// gif, jpeg, png, bmp, tiff and webp.
type Std struct{}

// NewStd returns a Std decoder.
func NewStd() *Std {
	return &Std{}
}

func (Std) Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Chain tries each decoder in turn and returns the first success.
type Chain []ports.Decoder

func (c Chain) Decode(path string) (image.Image, error) {
	var errs []error
	for _, d := range c {
		img, err := d.Decode(path)
		if err == nil {
			return img, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, errors.New("no decoders")
	}
	return nil, errors.Join(errs...)
}

var (
	_ ports.Decoder = Std{}
	_ ports.Decoder = Chain(nil)
)
