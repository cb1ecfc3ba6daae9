// seehuhn.de/go/contour - a 2D contouring library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package contour

// side is the state of one cell side: absent, or present with one of
// the two possible orientations.
type side uint8

const (
	sideNone side = iota
	sideTop
	sideLeft
	sideRight
	sideBottom
)

// FlipGrid tracks the four sides of every grid cell with the same
// even-inserts-cancel rule as a FlipSet. Most cell sides are shared
// with an adjacent cell and are flipped either twice or not at all, so
// a dense array beats hashing every side through a FlipSet; only the
// surviving sides are converted to edges when the grid is flushed.
//
// For world-wrap grids the grid is widened by one cell column: the
// sides flipped by the wrap cell i = width-1 are stored separately
// from those of cell i = 0, so the two copies of the seam meridian do
// not cancel even though they represent the same geographic line.
type FlipGrid struct {
	cellsX, cellsY int
	horizontal     []side // (cellsY+1) rows of cellsX sides
	vertical       []side // cellsY rows of (cellsX+1) sides
	n              int    // number of surviving sides
}

// NewFlipGrid creates a FlipGrid for a grid with the given number of
// corner columns and rows. Both must be at least 2.
func NewFlipGrid(width, height int, worldWrap bool) (*FlipGrid, error) {
	if width < 2 || height < 2 {
		return nil, ErrGridTooSmall
	}
	cx := width - 1
	if worldWrap {
		cx++
	}
	cy := height - 1
	return &FlipGrid{
		cellsX:     cx,
		cellsY:     cy,
		horizontal: make([]side, (cy+1)*cx),
		vertical:   make([]side, cy*(cx+1)),
	}, nil
}

// Len returns the number of currently surviving sides.
func (g *FlipGrid) Len() int { return g.n }

func (g *FlipGrid) flipH(i, row int, s side) {
	idx := row*g.cellsX + i
	if g.horizontal[idx] == sideNone {
		g.horizontal[idx] = s
		g.n++
	} else {
		g.horizontal[idx] = sideNone
		g.n--
	}
}

func (g *FlipGrid) flipV(col, j int, s side) {
	idx := j*(g.cellsX+1) + col
	if g.vertical[idx] == sideNone {
		g.vertical[idx] = s
		g.n++
	} else {
		g.vertical[idx] = sideNone
		g.n--
	}
}

// FlipTop toggles the top side of cell (i, j).
func (g *FlipGrid) FlipTop(i, j int) { g.flipH(i, j+1, sideTop) }

// FlipBottom toggles the bottom side of cell (i, j).
func (g *FlipGrid) FlipBottom(i, j int) { g.flipH(i, j, sideBottom) }

// FlipLeft toggles the left side of cell (i, j).
func (g *FlipGrid) FlipLeft(i, j int) { g.flipV(i, j, sideLeft) }

// FlipRight toggles the right side of cell (i, j).
func (g *FlipGrid) FlipRight(i, j int) { g.flipV(i+1, j, sideRight) }

// Copy flushes every surviving side into dst as a directed edge, using
// world coordinates from the grid. The orientation is chosen so that
// the interior of the filled region lies to the right of each edge:
//
//	Bottom: (x(i+1,j), y(i+1,j)) -> (x(i,j), y(i,j))
//	Top:    (x(i,j+1), y(i,j+1)) -> (x(i+1,j+1), y(i+1,j+1))
//	Left:   (x(i,j), y(i,j)) -> (x(i,j+1), y(i,j+1))
//	Right:  (x(i+1,j+1), y(i+1,j+1)) -> (x(i+1,j), y(i+1,j))
//
// Edges are delivered via EFlip since projected coordinates may be
// identical at the poles.
func (g *FlipGrid) Copy(grid Grid, dst *FlipSet) {
	if g.n == 0 {
		return
	}

	for row := 0; row <= g.cellsY; row++ {
		for i := 0; i < g.cellsX; i++ {
			switch g.horizontal[row*g.cellsX+i] {
			case sideTop:
				dst.EFlip(Edge{
					X1: grid.X(i, row), Y1: grid.Y(i, row),
					X2: grid.X(i+1, row), Y2: grid.Y(i+1, row),
				})
			case sideBottom:
				dst.EFlip(Edge{
					X1: grid.X(i+1, row), Y1: grid.Y(i+1, row),
					X2: grid.X(i, row), Y2: grid.Y(i, row),
				})
			}
		}
	}

	for j := 0; j < g.cellsY; j++ {
		for col := 0; col <= g.cellsX; col++ {
			switch g.vertical[j*(g.cellsX+1)+col] {
			case sideLeft:
				dst.EFlip(Edge{
					X1: grid.X(col, j), Y1: grid.Y(col, j),
					X2: grid.X(col, j+1), Y2: grid.Y(col, j+1),
				})
			case sideRight:
				dst.EFlip(Edge{
					X1: grid.X(col, j+1), Y1: grid.Y(col, j+1),
					X2: grid.X(col, j), Y2: grid.Y(col, j),
				})
			}
		}
	}
}
