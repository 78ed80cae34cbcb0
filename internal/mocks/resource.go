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

// Package mocks provides test doubles for the ports and host interfaces.
package mocks

import (
	"errors"
	"image"
	"sync"

	"github.com/aamcrae/imvi/internal/ports"
)

// Texture is a mock implementation of ports.Texture.
type Texture struct {
	Name     string
	W, H     int
	Releases int
	owner    *Uploader
}

func (t *Texture) Width() int  { return t.W }
func (t *Texture) Height() int { return t.H }

// Release counts the call. Only the first call frees the texture.
func (t *Texture) Release() {
	t.Releases++
	if t.Releases == 1 && t.owner != nil {
		t.owner.mu.Lock()
		t.owner.live--
		t.owner.mu.Unlock()
	}
}

// Released reports whether Release has been called.
func (t *Texture) Released() bool {
	return t.Releases > 0
}

var _ ports.Texture = (*Texture)(nil)

// Uploader is a mock implementation of ports.Uploader that tracks the
// number of live textures.
type Uploader struct {
	UploadFunc func(img image.Image) (ports.Texture, error)

	mu       sync.Mutex
	live     int
	Uploaded []*Texture
}

func (m *Uploader) Upload(img image.Image) (ports.Texture, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(img)
	}
	if img == nil {
		return nil, errors.New("nil image")
	}
	b := img.Bounds()
	t := &Texture{W: b.Dx(), H: b.Dy(), owner: m}
	if n, ok := img.(named); ok {
		t.Name = n.name
	}
	m.mu.Lock()
	m.live++
	m.Uploaded = append(m.Uploaded, t)
	m.mu.Unlock()
	return t, nil
}

// Live returns the number of uploaded textures not yet released.
func (m *Uploader) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.live
}

var _ ports.Uploader = (*Uploader)(nil)

// named is an image that remembers which file it came from.
type named struct {
	*image.RGBA
	name string
}

// NewImage returns a w x h image tagged with name. Textures uploaded
// from it carry the name.
func NewImage(name string, w, h int) image.Image {
	return named{RGBA: image.NewRGBA(image.Rect(0, 0, w, h)), name: name}
}

// Decoder is a mock implementation of ports.Decoder. Paths not in
// Images fail with ErrNotFound.
type Decoder struct {
	DecodeFunc func(path string) (image.Image, error)
	Images     map[string]image.Image
	Errors     map[string]error
	Calls      []string
}

// ErrNotFound is returned by Decoder for unknown paths.
var ErrNotFound = errors.New("mock: no such image")

func (m *Decoder) Decode(path string) (image.Image, error) {
	m.Calls = append(m.Calls, path)
	if m.DecodeFunc != nil {
		return m.DecodeFunc(path)
	}
	if err, ok := m.Errors[path]; ok {
		return nil, err
	}
	if img, ok := m.Images[path]; ok {
		return img, nil
	}
	return nil, ErrNotFound
}

var _ ports.Decoder = (*Decoder)(nil)
