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

// Package raster provides software textures and a frame buffer that
// platforms without a GPU surface draw into.
package raster

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/aamcrae/imvi/internal/ports"
)

// ErrReleased is returned when a released texture is drawn.
var ErrReleased = errors.New("texture released")

// Pool creates textures and counts the ones not yet released.
type Pool struct {
	mu   sync.Mutex
	live int
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// Upload copies img into a new texture.
func (p *Pool) Upload(img image.Image) (ports.Texture, error) {
	if img == nil {
		return nil, errors.New("upload: nil image")
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("upload: empty image %v", b)
	}
	t := &Texture{pool: p, img: imaging.Clone(img)}
	p.mu.Lock()
	p.live++
	p.mu.Unlock()
	return t, nil
}

// Live returns the number of textures not yet released.
func (p *Pool) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.live
}

// Texture is an image held in memory, with the last scaled copy cached.
type Texture struct {
	pool   *Pool
	img    *image.NRGBA
	scaled *image.NRGBA
}

func (t *Texture) Width() int {
	if t.img == nil {
		return 0
	}
	return t.img.Bounds().Dx()
}

func (t *Texture) Height() int {
	if t.img == nil {
		return 0
	}
	return t.img.Bounds().Dy()
}

// Release frees the pixels. Further calls do nothing.
func (t *Texture) Release() {
	if t.img == nil {
		return
	}
	t.img = nil
	t.scaled = nil
	t.pool.mu.Lock()
	t.pool.live--
	t.pool.mu.Unlock()
}

// Released reports whether Release has been called.
func (t *Texture) Released() bool {
	return t.img == nil
}

// Scaled returns the texture resized to w x h.
func (t *Texture) Scaled(w, h int) (*image.NRGBA, error) {
	if t.img == nil {
		return nil, ErrReleased
	}
	if w == t.Width() && h == t.Height() {
		return t.img, nil
	}
	if t.scaled == nil || t.scaled.Bounds().Dx() != w || t.scaled.Bounds().Dy() != h {
		t.scaled = imaging.Resize(t.img, w, h, imaging.Linear)
	}
	return t.scaled, nil
}

var (
	_ ports.Uploader = (*Pool)(nil)
	_ ports.Texture  = (*Texture)(nil)
)
