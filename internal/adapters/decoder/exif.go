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
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/aamcrae/imvi/internal/ports"
)

// ExifThumbnail decodes the JPEG thumbnail embedded in a file's EXIF data.
type ExifThumbnail struct{}

func (ExifThumbnail) Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	x, err := exif.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: no EXIF data: %w", path, err)
	}
	b, err := x.JpegThumbnail()
	if err != nil {
		return nil, fmt.Errorf("%s: no EXIF thumbnail: %w", path, err)
	}
	return jpeg.Decode(bytes.NewReader(b))
}

var _ ports.Decoder = ExifThumbnail{}
