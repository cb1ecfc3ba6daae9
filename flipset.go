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

import "slices"

// FlipSet is a set of edges where inserting a value a second time
// removes the first instance instead. Any edge inserted an even number
// of times does not survive. Since adjacent cells emit their shared
// edge in opposite directions, membership is keyed on the
// orientation-independent form of each edge, and the interior of a
// filled region cancels away, leaving only its true boundary.
type FlipSet struct {
	edges map[Edge]Edge // canonical key -> edge as first inserted
}

// NewFlipSet returns an empty FlipSet.
func NewFlipSet() *FlipSet {
	return &FlipSet{edges: make(map[Edge]Edge)}
}

// Len returns the number of surviving edges.
func (s *FlipSet) Len() int { return len(s.edges) }

// Flip toggles the presence of the edge: inserting when absent,
// removing when the edge or its reverse is already present.
func (s *FlipSet) Flip(e Edge) {
	k := e.key()
	if _, ok := s.edges[k]; ok {
		delete(s.edges, k)
	} else {
		s.edges[k] = e
	}
}

// EFlip is Flip, except that empty edges are silently ignored.
// Projected coordinates may collapse to a point at the poles, and such
// degenerate edges must not disturb the cancellation.
func (s *FlipSet) EFlip(e Edge) {
	if !e.Empty() {
		s.Flip(e)
	}
}

// Finalize returns the surviving edges sorted lexicographically by
// (X1, Y1, X2, Y2). The set itself is left unchanged.
func (s *FlipSet) Finalize() []Edge {
	out := make([]Edge, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, e)
	}
	slices.SortFunc(out, Edge.compare)
	return out
}
