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
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aamcrae/imvi/internal/mocks"
	"github.com/aamcrae/imvi/internal/viewport"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestPoolLifecycle(t *testing.T) {
	p := NewPool()
	a, err := p.Upload(solid(4, 2, red))
	require.NoError(t, err)
	b, err := p.Upload(solid(3, 3, red))
	require.NoError(t, err)
	assert.Equal(t, 2, p.Live())
	assert.Equal(t, 4, a.Width())
	assert.Equal(t, 2, a.Height())

	a.Release()
	a.Release()
	assert.Equal(t, 1, p.Live())
	assert.True(t, a.(*Texture).Released())
	assert.Zero(t, a.Width())

	b.Release()
	assert.Zero(t, p.Live())
}

func TestPoolRejects(t *testing.T) {
	p := NewPool()
	_, err := p.Upload(nil)
	assert.Error(t, err)
	_, err = p.Upload(image.NewRGBA(image.Rect(0, 0, 0, 5)))
	assert.Error(t, err)
	assert.Zero(t, p.Live())
}

func TestPoolCopiesPixels(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	p := NewPool()
	tex, err := p.Upload(src)
	require.NoError(t, err)
	src.Set(0, 0, red)

	img, err := tex.(*Texture).Scaled(2, 2)
	require.NoError(t, err)
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a)
}

func TestFrameClearAndDraw(t *testing.T) {
	f := NewFrame(10, 10, black)
	p := NewPool()
	tex, err := p.Upload(solid(2, 2, red))
	require.NoError(t, err)

	require.NoError(t, f.Draw(tex, viewport.Rect{X: 2, Y: 3, Width: 4, Height: 5}))
	img := f.Image()
	assert.Equal(t, color.RGBA(red), img.RGBAAt(2, 3))
	assert.Equal(t, color.RGBA(red), img.RGBAAt(5, 7))
	assert.Equal(t, black, img.RGBAAt(6, 7))
	assert.Equal(t, black, img.RGBAAt(2, 8))

	f.Clear()
	assert.Equal(t, black, img.RGBAAt(3, 4))
}

func TestFrameDrawClips(t *testing.T) {
	f := NewFrame(10, 10, black)
	tex, err := NewPool().Upload(solid(8, 8, red))
	require.NoError(t, err)

	require.NoError(t, f.Draw(tex, viewport.Rect{X: -20, Y: -20, Width: 40, Height: 40}))
	assert.Equal(t, color.RGBA(red), f.Image().RGBAAt(0, 0))
	assert.Equal(t, color.RGBA(red), f.Image().RGBAAt(9, 9))

	require.NoError(t, f.Draw(tex, viewport.Rect{X: 1, Y: 1, Width: 0, Height: 4}))
}

func TestFrameDrawErrors(t *testing.T) {
	f := NewFrame(10, 10, black)
	tex, err := NewPool().Upload(solid(2, 2, red))
	require.NoError(t, err)
	tex.Release()
	assert.ErrorIs(t, f.Draw(tex, viewport.Rect{Width: 2, Height: 2}), ErrReleased)

	assert.Error(t, f.Draw(&mocks.Texture{W: 2, H: 2}, viewport.Rect{Width: 2, Height: 2}))
}

func TestFrameResize(t *testing.T) {
	f := NewFrame(0, -3, black)
	w, h := f.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)

	f.Resize(16, 9)
	w, h = f.Size()
	assert.Equal(t, 16, w)
	assert.Equal(t, 9, h)
	assert.Equal(t, black, f.Image().RGBAAt(15, 8))
}

func TestScaledCache(t *testing.T) {
	tex, err := NewPool().Upload(solid(4, 4, red))
	require.NoError(t, err)
	tx := tex.(*Texture)

	a, err := tx.Scaled(8, 8)
	require.NoError(t, err)
	b, err := tx.Scaled(8, 8)
	require.NoError(t, err)
	assert.Same(t, a, b)
	c, err := tx.Scaled(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Bounds().Dx())
}

func TestPlaceholder(t *testing.T) {
	img := Placeholder(64)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
	// The centre is on both diagonals.
	r, g, b, _ := img.At(32, 32).RGBA()
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
	assert.Greater(t, r>>8, uint32(100))

	assert.Equal(t, 4, Placeholder(0).Bounds().Dx())
}
