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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Edge is a directed line segment between two contour vertices.
//
// Contouring emits every interior edge of a filled region twice, once in
// each direction by the two adjacent cells. A match during cancellation
// can therefore only ever be a reversed copy, and the cancellation key
// sorts the endpoints so that an edge and its reverse collide. The
// original orientation is kept: lexicographic sorting and ring assembly
// use (X1, Y1, X2, Y2) as written.
type Edge struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Start returns the source endpoint of the edge.
func (e Edge) Start() vec.Vec2 { return vec.Vec2{X: e.X1, Y: e.Y1} }

// End returns the destination endpoint of the edge.
func (e Edge) End() vec.Vec2 { return vec.Vec2{X: e.X2, Y: e.Y2} }

// Empty reports whether both endpoints coincide. Empty edges are never
// inserted into a FlipSet.
func (e Edge) Empty() bool {
	return e.X1 == e.X2 && e.Y1 == e.Y2
}

// Reversed returns the edge with its endpoints swapped.
func (e Edge) Reversed() Edge {
	return Edge{X1: e.X2, Y1: e.Y2, X2: e.X1, Y2: e.Y1}
}

// ReversedEqual reports whether o is the same segment traversed in the
// opposite direction.
func (e Edge) ReversedEqual(o Edge) bool {
	return e.X1 == o.X2 && e.Y1 == o.Y2 && e.X2 == o.X1 && e.Y2 == o.Y1
}

// Angle returns the direction of the edge in degrees.
func (e Edge) Angle() float64 {
	return math.Atan2(e.Y2-e.Y1, e.X2-e.X1) * (180 / math.Pi)
}

// key returns the orientation-independent form used for cancellation:
// the endpoints in lexicographic order.
func (e Edge) key() Edge {
	if e.X2 < e.X1 || (e.X1 == e.X2 && e.Y2 < e.Y1) {
		return e.Reversed()
	}
	return e
}

// compare orders edges lexicographically by (X1, Y1, X2, Y2), so that
// all edges leaving the same vertex are consecutive when sorted.
func (e Edge) compare(o Edge) int {
	switch {
	case e.X1 != o.X1:
		if e.X1 < o.X1 {
			return -1
		}
		return 1
	case e.Y1 != o.Y1:
		if e.Y1 < o.Y1 {
			return -1
		}
		return 1
	case e.X2 != o.X2:
		if e.X2 < o.X2 {
			return -1
		}
		return 1
	case e.Y2 != o.Y2:
		if e.Y2 < o.Y2 {
			return -1
		}
		return 1
	}
	return 0
}

// cmpStart compares the edge's source endpoint with the vertex p.
func (e Edge) cmpStart(p vec.Vec2) int {
	switch {
	case e.X1 != p.X:
		if e.X1 < p.X {
			return -1
		}
		return 1
	case e.Y1 != p.Y:
		if e.Y1 < p.Y {
			return -1
		}
		return 1
	}
	return 0
}
