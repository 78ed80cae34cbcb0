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

// Package gallery holds the ordered set of images being browsed, the
// current selection, and the lazily loaded textures of each image.
package gallery

import (
	"errors"
	"fmt"
	"image"

	"github.com/aamcrae/imvi/internal/ports"
)

// Collection is an ordered list of entries with a current selection.
// At most one entry holds a full resolution texture at any time.
type Collection struct {
	entries  []*Entry
	index    int           // Current picture index
	holder   int           // Index of the entry holding a full texture, -1 if none
	decoder  ports.Decoder // Reads both originals and previews
	fallback ports.Decoder // Optional thumbnail source when a preview is missing
	log      ports.Logger
}

// Option configures a Collection.
type Option func(*Collection)

// WithLogger sets the logger used to report per-image failures.
func WithLogger(l ports.Logger) Option {
	return func(c *Collection) {
		c.log = l.WithComponent("gallery")
	}
}

// WithThumbnailFallback sets a decoder that is given the original
// image path when its preview cannot be decoded.
func WithThumbnailFallback(d ports.Decoder) Option {
	return func(c *Collection) {
		c.fallback = d
	}
}

// Load scans dir and returns a collection of the images found.
// An empty collection is not an error.
func Load(dir string, decoder ports.Decoder, opts ...Option) (*Collection, error) {
	entries, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	c := New(entries, decoder, opts...)
	c.log.Debug("%d images found in %s", len(entries), dir)
	return c, nil
}

// New creates a collection over entries, selecting the first one.
func New(entries []*Entry, decoder ports.Decoder, opts ...Option) *Collection {
	c := &Collection{
		entries: entries,
		holder:  -1,
		decoder: decoder,
		log:     ports.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return len(c.entries)
}

// Empty reports whether the collection has no entries.
func (c *Collection) Empty() bool {
	return len(c.entries) == 0
}

// Index returns the current selection.
func (c *Collection) Index() int {
	return c.index
}

// At returns the entry at index i.
func (c *Collection) At(i int) *Entry {
	return c.entries[i]
}

// Current returns the selected entry, or nil if the collection is empty.
func (c *Collection) Current() *Entry {
	if c.Empty() {
		return nil
	}
	return c.entries[c.index]
}

// Next selects the following entry and reports whether the selection moved.
func (c *Collection) Next() bool {
	return c.Jump(c.index + 1)
}

// Prev selects the preceding entry and reports whether the selection moved.
func (c *Collection) Prev() bool {
	return c.Jump(c.index - 1)
}

// Step moves the selection by n entries, stopping at either end.
func (c *Collection) Step(n int) bool {
	return c.Jump(clamp(c.index+n, 0, len(c.entries)-1))
}

// Jump selects entry i. It does nothing and returns false if i is out
// of range or already selected. The full texture of the previously
// selected entry is released.
func (c *Collection) Jump(i int) bool {
	if i < 0 || i >= len(c.entries) || i == c.index {
		return false
	}
	c.releaseHolder()
	c.index = i
	return true
}

// Active returns the texture to draw for the current entry, or nil.
func (c *Collection) Active() ports.Texture {
	if e := c.Current(); e != nil {
		return e.Active()
	}
	return nil
}

// EnsureFull loads the full resolution image of the current entry if
// it is not already loaded. Any other entry's full texture is released
// before the new one is decoded. A *LoadError leaves the entry showing
// its thumbnail; an *UploadError means the rendering context failed.
func (c *Collection) EnsureFull(up ports.Uploader) error {
	e := c.Current()
	if e == nil || e.full != nil {
		return nil
	}
	c.releaseHolder()
	c.log.Debug("%s (index %d): loading...", e.name, c.index)
	img, err := decode(c.decoder, e.path)
	if err != nil {
		return &LoadError{Path: e.path, Err: err}
	}
	t, err := up.Upload(img)
	if err != nil {
		return &UploadError{Path: e.path, Err: err}
	}
	e.setFull(t)
	c.holder = c.index
	c.log.Debug("%s (index %d): loaded %d x %d", e.name, c.index, t.Width(), t.Height())
	return nil
}

// EnsureThumbnails loads every missing thumbnail. A preview that cannot
// be decoded is logged and skipped; the entry is left without one.
// Only an upload failure stops the scan.
func (c *Collection) EnsureThumbnails(up ports.Uploader) error {
	failed := 0
	for _, e := range c.entries {
		if e.thumb != nil {
			continue
		}
		img, err := c.decodeThumbnail(e)
		if err != nil {
			failed++
			c.log.Warn("No preview for %s: %v", e.name, err)
			continue
		}
		t, err := up.Upload(img)
		if err != nil {
			return &UploadError{Path: e.thumbPath, Err: err}
		}
		e.setThumbnail(t)
	}
	c.log.Debug("%d previews loaded, %d missing", len(c.entries)-failed, failed)
	return nil
}

func (c *Collection) decodeThumbnail(e *Entry) (image.Image, error) {
	img, err := decode(c.decoder, e.thumbPath)
	if err == nil || c.fallback == nil {
		return img, err
	}
	if alt, ferr := decode(c.fallback, e.path); ferr == nil {
		c.log.Debug("%s: using embedded thumbnail", e.name)
		return alt, nil
	}
	return nil, err
}

// ErrEmptyImage is returned for a file that decodes to an image with no pixels.
var ErrEmptyImage = errors.New("empty image")

// decode reads path with d and rejects images that cannot be drawn.
func decode(d ports.Decoder, path string) (image.Image, error) {
	img, err := d.Decode(path)
	if err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyImage)
	}
	return img, nil
}

// ResidentFull returns the number of entries holding a full texture.
func (c *Collection) ResidentFull() int {
	n := 0
	for _, e := range c.entries {
		if e.full != nil {
			n++
		}
	}
	return n
}

// Release frees every texture held by the collection.
func (c *Collection) Release() {
	for _, e := range c.entries {
		e.releaseFull()
		e.releaseThumbnail()
	}
	c.holder = -1
}

func (c *Collection) releaseHolder() {
	if c.holder < 0 {
		return
	}
	e := c.entries[c.holder]
	if e.releaseFull() {
		c.log.Debug("Unloading %s, index %d", e.name, c.holder)
	}
	c.holder = -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
