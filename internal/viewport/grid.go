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

package viewport

const (
	// TileSize is the side of one square grid cell in pixels.
	TileSize = 200
	// ScrollStep is how far one wheel notch scrolls the grid.
	ScrollStep = 100
)

// Grid lays out a vertically scrolling grid of square tiles.
type Grid struct {
	count       int
	cols        int
	rows        int
	visibleRows int
	xOffset     int // left margin that centres the columns
	yOffset     int // scroll position
	maxYOffset  int
}

// Layout recomputes the grid for count tiles in a width x height
// window, and scrolls back to the top.
func (g *Grid) Layout(count, width, height int) {
	g.count = count
	g.cols = width / TileSize
	if g.cols < 1 {
		g.cols = 1
	}
	g.rows = (count + g.cols - 1) / g.cols
	g.visibleRows = (height+TileSize-1)/TileSize + 1
	g.xOffset = (width - TileSize*g.cols) / 2
	if g.xOffset < 0 {
		g.xOffset = 0
	}
	g.yOffset = 0
	g.maxYOffset = g.rows*TileSize - height
	if g.maxYOffset < 0 {
		g.maxYOffset = 0
	}
}

// Columns returns the number of tiles per row.
func (g *Grid) Columns() int {
	return g.cols
}

// Offset returns the current scroll position.
func (g *Grid) Offset() int {
	return g.yOffset
}

// Scroll moves the grid one step and reports whether it moved.
func (g *Grid) Scroll(down bool) bool {
	old := g.yOffset
	if down {
		g.yOffset += ScrollStep
		if g.yOffset > g.maxYOffset {
			g.yOffset = g.maxYOffset
		}
	} else {
		g.yOffset -= ScrollStep
		if g.yOffset < 0 {
			g.yOffset = 0
		}
	}
	return g.yOffset != old
}

// Visible returns the half-open range of tile indices that can be on screen.
func (g *Grid) Visible() (first, last int) {
	if g.cols == 0 {
		return 0, 0
	}
	first = (g.yOffset / TileSize) * g.cols
	last = first + g.visibleRows*g.cols
	if last > g.count {
		last = g.count
	}
	if first > last {
		first = last
	}
	return first, last
}

// Cell returns the square cell of the tile at index.
func (g *Grid) Cell(index int) Rect {
	col, row := index%g.cols, index/g.cols
	return Rect{
		X:      float64(g.xOffset + col*TileSize),
		Y:      float64(row*TileSize - g.yOffset),
		Width:  TileSize,
		Height: TileSize,
	}
}

// Tile returns the rectangle of an image with the given aspect ratio
// fitted inside the cell at index.
func (g *Grid) Tile(index int, aspect float64) Rect {
	c := g.Cell(index)
	return Fit(aspect, TileSize, TileSize).Translate(c.X, c.Y)
}

// At returns the index of the tile under the point.
func (g *Grid) At(x, y float64) (int, bool) {
	if g.cols == 0 || x < float64(g.xOffset) || y < 0 {
		return 0, false
	}
	col := (int(x) - g.xOffset) / TileSize
	row := (int(y) + g.yOffset) / TileSize
	if col >= g.cols {
		return 0, false
	}
	index := row*g.cols + col
	if index >= g.count {
		return 0, false
	}
	return index, true
}
