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

// DefaultMaxLeaf is the default upper bound on hint tree leaf size.
const DefaultMaxLeaf = 10

// CellRect is a rectangle of grid corner indices, (X1,Y1) to (X2,Y2)
// inclusive. The cells covered have lower-left corners in
// [X1, X2) x [Y1, Y2); adjacent rectangles share their boundary
// column or row so that no cell is covered twice.
type CellRect struct {
	X1, Y1 int
	X2, Y2 int
}

// ValueRect is a CellRect annotated with the value range found inside.
type ValueRect struct {
	CellRect
	Min, Max   float64
	HasMissing bool
}

// ValueHints is a binary partition of the grid indexed by the minimum
// and maximum field value of each subgrid. It is built once per grid
// and may be shared by any number of contour requests; after
// construction it is immutable and safe for concurrent readers.
type ValueHints struct {
	miss  Missing
	nodes []valueNode // nodes[0] is the root
}

type valueNode struct {
	rect        ValueRect
	left, right int32 // -1 for leaves
}

// NewValueHints builds the hint tree. Leaves cover at most maxLeaf
// cells per dimension, except that a subgrid only one cell wide or
// high is not split further; maxLeaf < 1 selects DefaultMaxLeaf. A nil
// missing predicate treats all values as valid.
func NewValueHints(g Grid, missing Missing, maxLeaf int) (*ValueHints, error) {
	if g.Width() == 0 || g.Height() == 0 {
		return nil, ErrEmptyGrid
	}
	if missing == nil {
		missing = NotMissing
	}
	if maxLeaf < 1 {
		maxLeaf = DefaultMaxLeaf
	}
	h := &ValueHints{miss: missing}
	h.build(g, maxLeaf, 0, 0, g.Width()-1, g.Height()-1)
	return h, nil
}

func (h *ValueHints) build(g Grid, maxLeaf, x1, y1, x2, y2 int) int32 {
	idx := int32(len(h.nodes))
	h.nodes = append(h.nodes, valueNode{left: -1, right: -1})

	rect := ValueRect{CellRect: CellRect{X1: x1, Y1: y1, X2: x2, Y2: y2}}

	gw := x2 - x1
	gh := y2 - y1
	if (gw <= maxLeaf && gh <= maxLeaf) || gw <= 1 || gh <= 1 {
		// Small enough, scan for the extrema. If every value is
		// missing, Min keeps a missing value so that queries can
		// detect the situation.
		rect.Min = g.Z(x1, y1)
		rect.Max = rect.Min
		valid := false
		for j := y1; j <= y2; j++ {
			for i := x1; i <= x2; i++ {
				v := g.Z(i, j)
				if h.miss(v) {
					rect.HasMissing = true
					continue
				}
				if !valid {
					rect.Min, rect.Max = v, v
					valid = true
				} else {
					rect.Min = min(rect.Min, v)
					rect.Max = max(rect.Max, v)
				}
			}
		}
		h.nodes[idx].rect = rect
		return idx
	}

	// Split the longer dimension; children share the boundary index.
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
	rect.HasMissing = lr.HasMissing || rr.HasMissing
	switch {
	case h.miss(lr.Min):
		rect.Min, rect.Max = rr.Min, rr.Max
	case h.miss(rr.Min):
		rect.Min, rect.Max = lr.Min, lr.Max
	default:
		rect.Min = min(lr.Min, rr.Min)
		rect.Max = max(lr.Max, rr.Max)
	}

	h.nodes[idx].rect = rect
	h.nodes[idx].left = left
	h.nodes[idx].right = right
	return idx
}

// Rectangles returns the minimal set of subgrids whose value interval
// contains v. If both children of a node match, the node itself is
// returned instead of its subtrees.
func (h *ValueHints) Rectangles(v float64) []ValueRect {
	var out []ValueRect
	if h.findValue(&out, 0, v) {
		out = append(out, h.nodes[0].rect)
	}
	return out
}

// RectanglesRange returns the minimal set of subgrids whose value
// interval overlaps [lo, hi]. A missing limit means unbounded on that
// side; a node containing only missing data matches only when both
// limits are missing.
func (h *ValueHints) RectanglesRange(lo, hi float64) []ValueRect {
	var out []ValueRect
	if h.findRange(&out, 0, lo, hi) {
		out = append(out, h.nodes[0].rect)
	}
	return out
}

func (h *ValueHints) findValue(out *[]ValueRect, n int32, v float64) bool {
	node := &h.nodes[n]
	if !h.intersectsValue(&node.rect, v) {
		return false
	}
	if node.left < 0 {
		return true
	}
	leftOK := h.findValue(out, node.left, v)
	rightOK := h.findValue(out, node.right, v)
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

func (h *ValueHints) findRange(out *[]ValueRect, n int32, lo, hi float64) bool {
	node := &h.nodes[n]
	if !h.intersectsRange(&node.rect, lo, hi) {
		return false
	}
	if node.left < 0 {
		return true
	}
	leftOK := h.findRange(out, node.left, lo, hi)
	rightOK := h.findRange(out, node.right, lo, hi)
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

func (h *ValueHints) intersectsValue(r *ValueRect, v float64) bool {
	nodeMissing := h.miss(r.Min) // no valid values at all?
	if h.miss(v) {
		return nodeMissing
	}
	if nodeMissing {
		return false
	}
	return r.Min <= v && v <= r.Max
}

func (h *ValueHints) intersectsRange(r *ValueRect, lo, hi float64) bool {
	nodeMissing := h.miss(r.Min)
	loMissing := h.miss(lo)
	hiMissing := h.miss(hi)

	if loMissing && hiMissing { // searched range: -inf..inf
		return !nodeMissing
	}
	if nodeMissing {
		return false
	}
	switch {
	case hiMissing: // searched range: lo..inf
		return r.Max >= lo
	case loMissing: // searched range: -inf..hi
		return r.Min <= hi
	default:
		return max(lo, r.Min) <= min(hi, r.Max)
	}
}
