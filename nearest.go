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

import "seehuhn.de/go/geom/vec"

// nearest assigns each corner the rectangular area closest to it,
// placing all vertices on edge midpoints and cell centres. The output
// is blocky but uses the same cancellation discipline as the other
// strategies.
type nearest struct {
	miss Missing
}

// NewNearest returns the nearest-neighbour fill strategy. Line mode
// produces no output.
func NewNearest(missing Missing) Interpolation {
	if missing == nil {
		missing = NotMissing
	}
	return &nearest{miss: missing}
}

func (n *nearest) place(z, lo, hi float64) place {
	if !n.miss(lo) && z < lo {
		return below
	}
	if !n.miss(hi) && z >= hi {
		return above
	}
	return inside
}

func mid(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// FillTriangle implements the Interpolation interface.
func (n *nearest) FillTriangle(c1, c2, c3 Corner, lo, hi float64, fs *FlipSet) {
	if n.miss(c1.Z) || n.miss(c2.Z) || n.miss(c3.Z) {
		return
	}

	p1 := n.place(c1.Z, lo, hi)
	p2 := n.place(c2.Z, lo, hi)
	p3 := n.place(c3.Z, lo, hi)

	m12 := mid(c1.P, c2.P)
	m23 := mid(c2.P, c3.P)
	m31 := mid(c3.P, c1.P)
	c0 := vec.Vec2{
		X: (c1.P.X + c2.P.X + c3.P.X) / 3,
		Y: (c1.P.Y + c2.P.Y + c3.P.Y) / 3,
	}

	if p1 == inside {
		fs.EFlip(edgeFrom(m31, c1.P))
		fs.EFlip(edgeFrom(c1.P, m12))
	}
	if p2 == inside {
		fs.EFlip(edgeFrom(m12, c2.P))
		fs.EFlip(edgeFrom(c2.P, m23))
	}
	if p3 == inside {
		fs.EFlip(edgeFrom(m23, c3.P))
		fs.EFlip(edgeFrom(c3.P, m31))
	}

	if p1 == inside && p2 != inside {
		fs.EFlip(edgeFrom(m12, c0))
	}
	if p2 == inside && p1 != inside {
		fs.EFlip(edgeFrom(c0, m12))
	}
	if p2 == inside && p3 != inside {
		fs.EFlip(edgeFrom(m23, c0))
	}
	if p3 == inside && p2 != inside {
		fs.EFlip(edgeFrom(c0, m23))
	}
	if p3 == inside && p1 != inside {
		fs.EFlip(edgeFrom(m31, c0))
	}
	if p1 == inside && p3 != inside {
		fs.EFlip(edgeFrom(c0, m31))
	}
}

// FillRectangle implements the Interpolation interface.
func (n *nearest) FillRectangle(c1, c2, c3, c4 Corner, gx, gy int, lo, hi float64, fs *FlipSet, fg *FlipGrid) {
	// With one missing corner the remaining triangle is contoured,
	// with two or more the cell is skipped.
	switch {
	case n.miss(c1.Z):
		if !n.miss(c2.Z) && !n.miss(c3.Z) && !n.miss(c4.Z) {
			n.FillTriangle(c2, c3, c4, lo, hi, fs)
		}
		return
	case n.miss(c2.Z):
		if !n.miss(c3.Z) && !n.miss(c4.Z) {
			n.FillTriangle(c1, c3, c4, lo, hi, fs)
		}
		return
	case n.miss(c3.Z):
		if !n.miss(c4.Z) {
			n.FillTriangle(c1, c2, c4, lo, hi, fs)
		}
		return
	case n.miss(c4.Z):
		n.FillTriangle(c1, c2, c3, lo, hi, fs)
		return
	}

	p1 := n.place(c1.Z, lo, hi)
	p2 := n.place(c2.Z, lo, hi)
	p3 := n.place(c3.Z, lo, hi)
	p4 := n.place(c4.Z, lo, hi)

	m12 := mid(c1.P, c2.P)
	m23 := mid(c2.P, c3.P)
	m34 := mid(c3.P, c4.P)
	m41 := mid(c4.P, c1.P)
	c0 := mid(m12, m34)

	if p1 == inside {
		fs.EFlip(edgeFrom(m41, c1.P))
		fs.EFlip(edgeFrom(c1.P, m12))
	}
	if p2 == inside {
		fs.EFlip(edgeFrom(m12, c2.P))
		fs.EFlip(edgeFrom(c2.P, m23))
	}
	if p3 == inside {
		fs.EFlip(edgeFrom(m23, c3.P))
		fs.EFlip(edgeFrom(c3.P, m34))
	}
	if p4 == inside {
		fs.EFlip(edgeFrom(m34, c4.P))
		fs.EFlip(edgeFrom(c4.P, m41))
	}

	if p1 == inside && p2 != inside {
		fs.EFlip(edgeFrom(m12, c0))
	}
	if p2 == inside && p1 != inside {
		fs.EFlip(edgeFrom(c0, m12))
	}
	if p2 == inside && p3 != inside {
		fs.EFlip(edgeFrom(m23, c0))
	}
	if p3 == inside && p2 != inside {
		fs.EFlip(edgeFrom(c0, m23))
	}
	if p3 == inside && p4 != inside {
		fs.EFlip(edgeFrom(m34, c0))
	}
	if p4 == inside && p3 != inside {
		fs.EFlip(edgeFrom(c0, m34))
	}
	if p4 == inside && p1 != inside {
		fs.EFlip(edgeFrom(m41, c0))
	}
	if p1 == inside && p4 != inside {
		fs.EFlip(edgeFrom(c0, m41))
	}
}

// LineRectangle implements the Interpolation interface. Isolines are
// not defined for piecewise-constant data.
func (n *nearest) LineRectangle(c1, c2, c3, c4 Corner, v float64, fs *FlipSet) {}

// LineTriangle implements the Interpolation interface.
func (n *nearest) LineTriangle(c1, c2, c3 Corner, v float64, fs *FlipSet) {}
