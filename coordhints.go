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

import "seehuhn.de/go/geom/rect"

// CoordRect is a CellRect annotated with the world-coordinate bounding
// box of the corners inside. Valid is false when every corner of the
// subgrid has missing coordinates.
type CoordRect struct {
	CellRect
	Bounds rect.Rect
	Valid  bool
}

// CoordHints is a binary partition of the grid indexed by the
// world-coordinate bounding box of each subgrid. Like ValueHints it is
// immutable after construction and safe for concurrent readers.
type CoordHints struct {
	miss  Missing
	nodes []coordNode
}

type coordNode struct {
	rect        CoordRect
	left, right int32 // -1 for leaves
}

// NewCoordHints builds the hint tree. The missing predicate applies to
// coordinates, not field values; nil treats all coordinates as valid.
func NewCoordHints(g Grid, missing Missing, maxLeaf int) (*CoordHints, error) {
	if g.Width() == 0 || g.Height() == 0 {
		return nil, ErrEmptyGrid
	}
	if missing == nil {
		missing = NotMissing
	}
	if maxLeaf < 1 {
		maxLeaf = DefaultMaxLeaf
	}
	h := &CoordHints{miss: missing}
	h.build(g, maxLeaf, 0, 0, g.Width()-1, g.Height()-1)
	return h, nil
}

func (h *CoordHints) build(g Grid, maxLeaf, x1, y1, x2, y2 int) int32 {
	idx := int32(len(h.nodes))
	h.nodes = append(h.nodes, coordNode{left: -1, right: -1})

	r := CoordRect{CellRect: CellRect{X1: x1, Y1: y1, X2: x2, Y2: y2}}

	gw := x2 - x1
	gh := y2 - y1
	if (gw <= maxLeaf && gh <= maxLeaf) || gw <= 1 || gh <= 1 {
		for j := y1; j <= y2; j++ {
			for i := x1; i <= x2; i++ {
				x := g.X(i, j)
				y := g.Y(i, j)
				if h.miss(x) || h.miss(y) {
					continue
				}
				if !r.Valid {
					r.Valid = true
					r.Bounds = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
				} else {
					r.Bounds.LLx = min(r.Bounds.LLx, x)
					r.Bounds.LLy = min(r.Bounds.LLy, y)
					r.Bounds.URx = max(r.Bounds.URx, x)
					r.Bounds.URy = max(r.Bounds.URy, y)
				}
			}
		}
		h.nodes[idx].rect = r
		return idx
	}

	var left, right int32
	if gw > gh {
		x := (x1 + x2) / 2
		left = h.build(g, maxLeaf, x1, y1, x, y2)
		right = h.build(g, maxLeaf, x, y1, x2, y2)
	} else {
		y := (y1 + y2) / 2
		left = h.build(g, maxLeaf, x1, y1, x2, y)
		right = h.build(g, maxLeaf, x1, y, x2, y2)
	}

	lr := h.nodes[left].rect
	rr := h.nodes[right].rect
	switch {
	case lr.Valid && rr.Valid:
		r.Valid = true
		r.Bounds = rect.Rect{
			LLx: min(lr.Bounds.LLx, rr.Bounds.LLx),
			LLy: min(lr.Bounds.LLy, rr.Bounds.LLy),
			URx: max(lr.Bounds.URx, rr.Bounds.URx),
			URy: max(lr.Bounds.URy, rr.Bounds.URy),
		}
	case lr.Valid:
		r.Valid = true
		r.Bounds = lr.Bounds
	case rr.Valid:
		r.Valid = true
		r.Bounds = rr.Bounds
	}

	h.nodes[idx].rect = r
	h.nodes[idx].left = left
	h.nodes[idx].right = right
	return idx
}

// Rectangles returns the minimal set of subgrids whose coordinate
// bounding box overlaps the query box. If both children of a node
// match, the node itself is returned instead of its subtrees.
func (h *CoordHints) Rectangles(query rect.Rect) []CoordRect {
	var out []CoordRect
	if h.find(&out, 0, query) {
		out = append(out, h.nodes[0].rect)
	}
	return out
}

func (h *CoordHints) find(out *[]CoordRect, n int32, query rect.Rect) bool {
	node := &h.nodes[n]
	if !overlaps(&node.rect, query) {
		return false
	}
	if node.left < 0 {
		return true
	}
	leftOK := h.find(out, node.left, query)
	rightOK := h.find(out, node.right, query)
	if leftOK && rightOK {
		return true
	}
	if leftOK {
		*out = append(*out, h.nodes[node.left].rect)
	}
	if rightOK {
		*out = append(*out, h.nodes[node.right].rect)
	}
	return false
}

func overlaps(r *CoordRect, q rect.Rect) bool {
	if !r.Valid {
		return false
	}
	noOverlap := q.LLx > r.Bounds.URx || q.LLy > r.Bounds.URy ||
		r.Bounds.LLx > q.URx || r.Bounds.LLy > q.URy
	return !noOverlap
}
