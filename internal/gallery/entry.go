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

package gallery

import (
	"path/filepath"

	"github.com/aamcrae/imvi/internal/ports"
)

// PreviewDir is the sub-directory holding the precomputed thumbnails.
const PreviewDir = "_preview"

// Entry represents one image file.
type Entry struct {
	path      string        // Filename of picture
	name      string        // short name
	thumbPath string        // Filename of the preview
	thumb     ports.Texture // Thumbnail, nil if unloaded
	full      ports.Texture // Full resolution image, nil if unloaded
}

// NewEntry creates an Entry for the image at path with nothing loaded.
func NewEntry(path string) *Entry {
	dir, name := filepath.Split(path)
	return &Entry{
		path:      path,
		name:      name,
		thumbPath: filepath.Join(dir, PreviewDir, name),
	}
}

// Path returns the location of the original image.
func (e *Entry) Path() string {
	return e.path
}

// Name returns the file name for display.
func (e *Entry) Name() string {
	return e.name
}

// ThumbnailPath returns the location of the preview image.
func (e *Entry) ThumbnailPath() string {
	return e.thumbPath
}

// Thumbnail returns the loaded thumbnail, or nil.
func (e *Entry) Thumbnail() ports.Texture {
	return e.thumb
}

// Full returns the loaded full resolution image, or nil.
func (e *Entry) Full() ports.Texture {
	return e.full
}

// Active returns the texture to draw for this entry: the full image
// once loaded, otherwise the thumbnail, otherwise nil.
func (e *Entry) Active() ports.Texture {
	if e.full != nil {
		return e.full
	}
	return e.thumb
}

// AspectRatio returns width/height of the active texture, or 1 when
// nothing usable is loaded.
func (e *Entry) AspectRatio() float64 {
	t := e.Active()
	if t == nil || t.Width() <= 0 || t.Height() <= 0 {
		return 1.0
	}
	return float64(t.Width()) / float64(t.Height())
}

// setFull replaces the full image, releasing the old one first.
func (e *Entry) setFull(t ports.Texture) {
	e.releaseFull()
	e.full = t
}

// setThumbnail replaces the thumbnail, releasing the old one first.
func (e *Entry) setThumbnail(t ports.Texture) {
	e.releaseThumbnail()
	e.thumb = t
}

func (e *Entry) releaseFull() bool {
	if e.full == nil {
		return false
	}
	e.full.Release()
	e.full = nil
	return true
}

func (e *Entry) releaseThumbnail() {
	if e.thumb != nil {
		e.thumb.Release()
		e.thumb = nil
	}
}
