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

// discrete is nearest-neighbour interpolation with one refinement:
// a rectangle holding exactly two distinct values, one of which occurs
// in a single corner, cuts that corner with a straight diagonal
// between the edge midpoints instead of routing through the cell
// centre, giving rounder contours for classified data.
type discrete struct {
	nearest
}

// NewDiscrete returns the discrete fill strategy. Line mode produces
// no output.
func NewDiscrete(missing Missing) Interpolation {
	if missing == nil {
		missing = NotMissing
	}
	return &discrete{nearest{miss: missing}}
}

// FillRectangle implements the Interpolation interface.
func (d *discrete) FillRectangle(c1, c2, c3, c4 Corner, gx, gy int, lo, hi float64, fs *FlipSet, fg *FlipGrid) {
	switch {
	case d.miss(c1.Z):
		if !d.miss(c2.Z) && !d.miss(c3.Z) && !d.miss(c4.Z) {
			d.FillTriangle(c2, c3, c4, lo, hi, fs)
		}
		return
	case d.miss(c2.Z):
		if !d.miss(c3.Z) && !d.miss(c4.Z) {
			d.FillTriangle(c1, c3, c4, lo, hi, fs)
		}
		return
	case d.miss(c3.Z):
		if !d.miss(c4.Z) {
			d.FillTriangle(c1, c2, c4, lo, hi, fs)
		}
		return
	case d.miss(c4.Z):
		d.FillTriangle(c1, c2, c3, lo, hi, fs)
		return
	}

	p1 := d.place(c1.Z, lo, hi)
	p2 := d.place(c2.Z, lo, hi)
	p3 := d.place(c3.Z, lo, hi)
	p4 := d.place(c4.Z, lo, hi)

	m12 := mid(c1.P, c2.P)
	m23 := mid(c2.P, c3.P)
	m34 := mid(c3.P, c4.P)
	m41 := mid(c4.P, c1.P)
	c0 := mid(m12, m34)

	// The cell sides are common to both variants.
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

	z1, z2, z3, z4 := c1.Z, c2.Z, c3.Z, c4.Z
	switch {
	case z2 == z3 && z3 == z4 && z1 != z2:
		if p1 == inside && p2 != inside {
			fs.EFlip(edgeFrom(m12, m41))
		}
		if p2 == inside && p1 != inside {
			fs.EFlip(edgeFrom(m41, m12))
		}
	case z1 == z3 && z3 == z4 && z2 != z1:
		if p2 == inside && p3 != inside {
			fs.EFlip(edgeFrom(m23, m12))
		}
		if p3 == inside && p2 != inside {
			fs.EFlip(edgeFrom(m12, m23))
		}
	case z1 == z2 && z2 == z4 && z3 != z1:
		if p3 == inside && p4 != inside {
			fs.EFlip(edgeFrom(m34, m23))
		}
		if p4 == inside && p3 != inside {
			fs.EFlip(edgeFrom(m23, m34))
		}
	case z1 == z2 && z2 == z3 && z4 != z1:
		if p4 == inside && p1 != inside {
			fs.EFlip(edgeFrom(m41, m34))
		}
		if p1 == inside && p4 != inside {
			fs.EFlip(edgeFrom(m34, m41))
		}
	default:
		// All four corner quadrants are handled separately.
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
}
