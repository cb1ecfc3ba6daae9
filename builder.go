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
	"fmt"
	"math"
	"sort"

	"seehuhn.de/go/geom/vec"
)

// Builder assembles a lexicographically sorted edge list into closed
// rings and polylines, classifies rings as shells or holes by winding,
// and assigns each hole to its enclosing shell.
//
// The interpolators direct every edge so that the filled region lies
// to its right, so shells come out clockwise and holes counter-
// clockwise without any explicit orientation fixing.
type Builder struct {
	// Diagnostics receives warnings about recoverable degeneracies,
	// such as holes that cannot be matched to a shell. Nil means
	// silent.
	Diagnostics func(msg string)
}

func (b *Builder) diagf(format string, args ...any) {
	if b.Diagnostics != nil {
		b.Diagnostics(fmt.Sprintf(format, args...))
	}
}

// Fill assembles polygons from the edges and delivers each shell with
// its holes to the sink. The edges must be sorted as produced by
// FlipSet.Finalize.
func (b *Builder) Fill(edges []Edge, sink GeometrySink) error {
	return b.build(edges, true, sink)
}

// Line assembles polylines from the edges and delivers each one to the
// sink as a linestring. Polylines are not required to close.
func (b *Builder) Line(edges []Edge, sink GeometrySink) error {
	return b.build(edges, false, sink)
}

// pickFreeEdge returns the next unassigned edge at or after start, or
// -1 if none remain.
func pickFreeEdge(targets []int, start int) int {
	for i := start; i < len(targets); i++ {
		if targets[i] < 0 {
			return i
		}
	}
	return -1
}

// findFirstMatch locates the first edge whose source equals the last
// vertex of the polyline, or returns -1. The search starts from a
// positional guess: the edge found last time, advanced by the stride
// of the previous step, tends to be close to the right place in the
// sorted list.
func findFirstMatch(polyline *Ring, edges []Edge, pos, lastPos int) int {
	n := len(edges)
	end := polyline.pts[len(polyline.pts)-1]

	pos += pos - lastPos
	if pos < 0 {
		pos = 0
	}
	if pos >= n {
		pos = n - 1
	}

	// The edge at the hint may itself start at the last vertex, so a
	// match there also searches left, for the first edge of that source.
	if edges[pos].cmpStart(end) >= 0 {
		// Search left for a smaller source, then test whether the next
		// edge matches.
		for pos--; ; pos-- {
			if pos < 0 || edges[pos].cmpStart(end) < 0 {
				pos++
				if edges[pos].cmpStart(end) == 0 {
					return pos
				}
				return -1
			}
		}
	}
	// Search right for the first match or a greater source.
	for pos++; pos < n; pos++ {
		switch edges[pos].cmpStart(end) {
		case -1:
			// Still before the match, the most common case.
		case 0:
			return pos
		default:
			return -1
		}
	}
	return -1
}

// pickBestMatch chooses among all edges leaving the polyline's end
// vertex. Unassigned edges and edges of still-open polylines are
// candidates; an edge already assigned to the current polyline marks a
// self-touch. With several candidates, the edge turning most clockwise
// relative to the incoming direction wins. The returned isoExt flag
// reports that the winner belongs to an open polyline which the
// current one can be attached to.
func pickBestMatch(polylines []*Ring, polyline *Ring, edges []Edge, targets []int, pos, cur int) (best int, selfTouch, isoExt bool) {
	if pos < 0 {
		return pos, false, false
	}

	end := polyline.pts[len(polyline.pts)-1]

	var available []int
	for i := pos; i < len(edges); i++ {
		if edges[i].cmpStart(end) != 0 {
			break
		}
		switch {
		case targets[i] < 0:
			available = append(available, i)
		case targets[i] == cur:
			selfTouch = true
		case !polylines[targets[i]].Closed():
			// Open polylines are viable candidates for continuation.
			available = append(available, i)
		}
	}

	if len(available) == 0 {
		return -1, selfTouch, false
	}

	best = available[0]
	if len(available) > 1 {
		// Pick the edge that turns most clockwise with respect to the
		// end of the polyline: the most negative symmetric modulo in
		// (-180, +180].
		bestAngle := math.Inf(1)
		alpha1 := polyline.endAngle()
		for _, i := range available {
			alpha2 := edges[i].Angle()
			angle := 180 - math.Mod(180-(alpha2-alpha1)+720, 360)
			if angle < bestAngle {
				bestAngle = angle
				best = i
			}
		}
	}

	// We are extending an old isoline if the best match belongs to an
	// unclosed polyline. It will never close on its own, or the
	// assembly would already have closed it.
	if targets[best] >= 0 && targets[best] < len(polylines) {
		isoExt = !polylines[targets[best]].Closed()
	}
	return best, selfTouch, isoExt
}

// reindex assigns all listed edges to the given polyline index.
func reindex(targets []int, edgeIndexes []int, to int) {
	for _, i := range edgeIndexes {
		targets[i] = to
	}
}

// representativeEdge returns a non-vertical edge of the ring, searched
// backwards through the edges assigned to it. Such an edge always
// exists for a polygon with nonzero area.
func representativeEdge(edges []Edge, edgeIndexes []int) int {
	for i := len(edgeIndexes) - 1; i > 0; i-- {
		idx := edgeIndexes[i]
		if edges[idx].X1 != edges[idx].X2 {
			return idx
		}
	}
	return 0
}

// maximumEdgeWidth returns the largest |X1-X2| over all edges. It
// bounds the horizontal reach of any single edge during the ray-cast
// search for enclosing shells.
func maximumEdgeWidth(edges []Edge) float64 {
	maxWidth := -1.0
	for i := range edges {
		maxWidth = max(maxWidth, math.Abs(edges[i].X1-edges[i].X2))
	}
	return maxWidth
}

// findShell locates the shell enclosing the hole whose representative
// edge is edges[edgeIndex], by casting a vertical ray up from the
// middle of that edge. The middle is used because polygons are
// guaranteed not to touch there, so a strict ordering of crossings
// exists. The enclosing shell is the polyline with the lowest crossing
// above the hole and an odd crossing count.
func findShell(targets []int, edges []Edge, edgeIndex, holeIndex int, maxEdgeWidth float64) (int, bool) {
	x := (edges[edgeIndex].X1 + edges[edgeIndex].X2) / 2
	y := (edges[edgeIndex].Y1 + edges[edgeIndex].Y2) / 2

	// Skip forward over the edges which could still reach x, then scan
	// backwards collecting ray crossings until no edge can reach.
	pos := edgeIndex + 1
	for pos < len(edges) && edges[pos].X1-maxEdgeWidth <= x {
		pos++
	}

	counts := make(map[int]int)
	type crossing struct {
		y        float64
		polyline int
	}
	var crossings []crossing

	for pos > 0 {
		pos--
		e := &edges[pos]
		x1, y1, x2, y2 := e.X1, e.Y1, e.X2, e.Y2

		switch {
		case x1+maxEdgeWidth < x:
			// No remaining edge can reach x.
			pos = 0
		case y1 < y && y2 < y:
			// below the ray origin
		case x1 >= x && x2 >= x:
			// to the right
		case x1 < x && x2 < x:
			// to the left
		case targets[pos] == holeIndex:
			// the hole itself
		case x1 == x2:
			// vertical, cannot span x strictly
		default:
			alpha := (y2 - y1) / (x2 - x1)
			ySect := alpha*(x-x1) + y1
			if y < ySect {
				p := targets[pos]
				counts[p]++
				crossings = append(crossings, crossing{ySect, p})
			}
		}
	}

	sort.SliceStable(crossings, func(i, j int) bool {
		return crossings[i].y < crossings[j].y
	})
	for _, c := range crossings {
		if counts[c.polyline]%2 != 0 {
			return c.polyline, true
		}
	}
	return 0, false
}

func (b *Builder) build(edges []Edge, fill bool, sink GeometrySink) error {
	var polylines []*Ring

	// Edge assignments to polylines; -1 means unassigned.
	targets := make([]int, len(edges))
	for i := range targets {
		targets[i] = -1
	}

	// A representative non-vertical edge for each finished ring.
	var ringEdge []int

	edgeIndex := -1
	for {
		edgeIndex = pickFreeEdge(targets, edgeIndex+1)
		if edgeIndex < 0 {
			break
		}

		// Start a new polyline from the chosen edge. Its index is
		// always len(polylines): finished polylines are appended in
		// index order.
		e := edges[edgeIndex]
		polyline := &Ring{pts: []vec.Vec2{e.Start(), e.End()}}
		cur := len(polylines)
		targets[edgeIndex] = cur

		// Selected edges, kept for reindexing on self-touches.
		edgeIndexes := []int{edgeIndex}

		index := edgeIndex
		lastIndex := edgeIndex

		for {
			tmp := index
			index = findFirstMatch(polyline, edges, index, lastIndex)
			var selfTouch, isoExt bool
			index, selfTouch, isoExt = pickBestMatch(polylines, polyline, edges, targets, index, cur)
			lastIndex = tmp

			// No more matches: the polyline is final.
			if index < 0 {
				ringEdge = append(ringEdge, 0)
				polylines = append(polylines, polyline)
				break
			}

			// Extract the ring created by a self-touch before
			// continuing with the remainder.
			if selfTouch {
				cut, ok := polyline.removeSelfTouch()
				if !ok {
					return fmt.Errorf("contour: %w: failed to extract self-touching ring", ErrInvalidExtension)
				}
				if cut.SignedArea() != 0 {
					polylines = append(polylines, &cut)
					ringEdge = append(ringEdge, representativeEdge(edges, edgeIndexes))
					edgeIndexes = edgeIndexes[:polyline.Len()-1]
					cur = len(polylines)
					reindex(targets, edgeIndexes, cur)
				} else {
					b.diagf("discarding empty cut ring")
				}
			}

			if isoExt {
				if polylines[targets[index]].extendStart(polyline) {
					// The current edges now belong to the old
					// polyline; the current index is reused by the
					// next polyline.
					reindex(targets, edgeIndexes, targets[index])
					break
				}
				// Touching an old polyline somewhere beside its start
				// point; finish the current polyline here.
				ringEdge = append(ringEdge, representativeEdge(edges, edgeIndexes))
				polylines = append(polylines, polyline)
				break
			}

			if targets[index] >= 0 {
				return fmt.Errorf("contour: %w: self-touching isoline not handled", ErrInvalidExtension)
			}
			if !polyline.extendEnd(edges[index]) {
				return fmt.Errorf("contour: %w: edge does not continue the polyline", ErrInvalidExtension)
			}
			targets[index] = len(polylines)
			edgeIndexes = append(edgeIndexes, index)

			if polyline.Closed() {
				ringEdge = append(ringEdge, representativeEdge(edges, edgeIndexes))
				polylines = append(polylines, polyline)
				break
			}
		}
	}

	if len(polylines) == 0 {
		return nil
	}

	if !fill {
		for _, polyline := range polylines {
			if !polyline.Empty() {
				sink.LineString(polyline.Points())
			}
		}
		return nil
	}

	for i, polyline := range polylines {
		if !polyline.Closed() {
			b.diagf("polyline %d/%d is not closed", i, len(polylines))
		}
	}

	maxEdgeWidth := maximumEdgeWidth(edges)

	// Shells first, in polyline order, to keep the output
	// deterministic.
	shellSlot := make(map[int]int)
	type polygon struct {
		shell []vec.Vec2
		holes [][]vec.Vec2
	}
	var polygons []polygon

	for i, polyline := range polylines {
		if !polyline.Closed() {
			continue
		}
		if polyline.IsClockwise() {
			shellSlot[i] = len(polygons)
			polygons = append(polygons, polygon{shell: polyline.Points()})
		}
	}

	// Assign each hole to its enclosing shell.
	for i, polyline := range polylines {
		if !polyline.Closed() || polyline.IsClockwise() {
			continue
		}
		idx, ok := findShell(targets, edges, ringEdge[i], i, maxEdgeWidth)
		if !ok {
			// Possible when the grid coordinates are not topologically
			// sound, for example with duplicate projected coordinates
			// at the poles.
			b.diagf("dropping hole %d: no enclosing shell found", i)
			continue
		}
		slot, ok := shellSlot[idx]
		if !ok {
			b.diagf("dropping hole %d: enclosing polyline %d is not a shell", i, idx)
			continue
		}
		polygons[slot].holes = append(polygons[slot].holes, polyline.Points())
	}

	for _, p := range polygons {
		sink.Polygon(p.shell, p.holes)
	}
	return nil
}
