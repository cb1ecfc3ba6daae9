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

// Corner couples a cell corner position with its sampled value.
type Corner struct {
	P vec.Vec2
	Z float64
}

// vec2 is a helper to create a vec.Vec2 from x, y coordinates.
func vec2(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// Interpolation is the per-cell contouring strategy. Fill mode emits
// the boundary of the cell's intersection with the band [lo, hi) into
// the FlipSet (cell sides may go through the FlipGrid instead); line
// mode emits segments of the isoline z = v.
//
// Triangle variants handle 3-corner cells, used when exactly one
// corner of a rectangle carries a missing value.
type Interpolation interface {
	FillRectangle(c1, c2, c3, c4 Corner, gx, gy int, lo, hi float64, edges *FlipSet, sides *FlipGrid)
	FillTriangle(c1, c2, c3 Corner, lo, hi float64, edges *FlipSet)
	LineRectangle(c1, c2, c3, c4 Corner, v float64, edges *FlipSet)
	LineTriangle(c1, c2, c3 Corner, v float64, edges *FlipSet)
}

// place classifies a corner value against the contour limits.
type place uint8

const (
	below place = iota
	inside
	above
)

// gradient is the shared implementation behind the linear and
// log-linear strategies. The two capabilities that differ are the
// crossing-point solver and the saddle-centre value.
type gradient struct {
	miss     Missing
	crossing func(a, b Corner, v float64) vec.Vec2
	centre   func(z1, z2, z3, z4 float64) float64
}

// NewLinear returns the linear interpolation strategy. A nil missing
// predicate treats all values as valid.
func NewLinear(missing Missing) Interpolation {
	if missing == nil {
		missing = NotMissing
	}
	return &gradient{miss: missing, crossing: linearCrossing, centre: arithmeticCentre}
}

// NewLogLinear returns the logarithmic interpolation strategy. All
// values and limits must be nonnegative; negative inputs are a usage
// error and are silently ignored at the cell level.
func NewLogLinear(missing Missing) Interpolation {
	if missing == nil {
		missing = NotMissing
	}
	return &gradient{miss: missing, crossing: logCrossing, centre: logCentre}
}

func lexLess(a, b vec.Vec2) bool {
	return a.X < b.X || (a.X == b.X && a.Y < b.Y)
}

// linearCrossing interpolates the point where the value v is reached
// between two corners. The arithmetic is performed with the endpoints
// in lexicographic order so that the two cells sharing an edge obtain
// bit-identical results; any disagreement would leave uncancelled
// slivers. The equality tests are required to handle z == limit cases
// without rounding errors.
func linearCrossing(a, b Corner, v float64) vec.Vec2 {
	switch {
	case a.Z == v:
		return a.P
	case b.Z == v:
		return b.P
	}
	if lexLess(a.P, b.P) {
		s := (v - b.Z) / (a.Z - b.Z)
		return vec.Vec2{X: b.P.X + s*(a.P.X-b.P.X), Y: b.P.Y + s*(a.P.Y-b.P.Y)}
	}
	s := (v - a.Z) / (b.Z - a.Z)
	return vec.Vec2{X: a.P.X + s*(b.P.X-a.P.X), Y: a.P.Y + s*(b.P.Y-a.P.Y)}
}

// logCrossing is linearCrossing in log1p space. Note that
// log1p(a)-log1p(b) differs from log1p(a/b) when b is zero, so the
// expression cannot be simplified. The base cancels in the division
// and is therefore irrelevant.
func logCrossing(a, b Corner, v float64) vec.Vec2 {
	if a.Z == b.Z {
		return a.P
	}
	if a.Z < 0 || b.Z < 0 || v < 0 {
		// Usage error, data must be nonnegative. The position of the
		// first corner is returned in place of a crossing.
		return a.P
	}
	if lexLess(a.P, b.P) {
		s := (math.Log1p(v) - math.Log1p(b.Z)) / (math.Log1p(a.Z) - math.Log1p(b.Z))
		return vec.Vec2{X: b.P.X + s*(a.P.X-b.P.X), Y: b.P.Y + s*(a.P.Y-b.P.Y)}
	}
	s := (math.Log1p(v) - math.Log1p(a.Z)) / (math.Log1p(b.Z) - math.Log1p(a.Z))
	return vec.Vec2{X: a.P.X + s*(b.P.X-a.P.X), Y: a.P.Y + s*(b.P.Y-a.P.Y)}
}

func arithmeticCentre(z1, z2, z3, z4 float64) float64 {
	return (z1 + z2 + z3 + z4) / 4
}

func logCentre(z1, z2, z3, z4 float64) float64 {
	m := (math.Log1p(z1) + math.Log1p(z2) + math.Log1p(z3) + math.Log1p(z4)) / 4
	return math.Expm1(m)
}

// fillPlace classifies a value against the band [lo, hi). A missing
// limit means unbounded on that side, which also covers -inf..inf
// contouring where every valid value is inside.
func (g *gradient) fillPlace(z, lo, hi float64) place {
	if !g.miss(lo) && z < lo {
		return below
	}
	if !g.miss(hi) && z >= hi {
		return above
	}
	return inside
}

// linePlace classifies a value against a single isoline value. Values
// on the line count as below; see LineTriangle for why.
func (g *gradient) linePlace(z, v float64) place {
	if !g.miss(v) && z <= v {
		return below
	}
	return above
}

// isSaddle reports whether some isoline value would intersect all four
// cell edges, making the contour topology inside the cell ambiguous.
// The test must not depend on the contour limits so that every
// threshold makes the same splitting decision and adjacent isobands
// stay boundary-consistent.
func isSaddle(z1, z2, z3, z4 float64) bool {
	lo := min(z1, z2)
	hi := max(z1, z2)
	lo = max(lo, min(z2, z3))
	hi = min(hi, max(z2, z3))
	if lo >= hi {
		return false
	}
	lo = max(lo, min(z3, z4))
	hi = min(hi, max(z3, z4))
	if lo >= hi {
		return false
	}
	lo = max(lo, min(z4, z1))
	hi = min(hi, max(z4, z1))
	return hi > lo
}

func edgeFrom(p, q vec.Vec2) Edge {
	return Edge{X1: p.X, Y1: p.Y, X2: q.X, Y2: q.Y}
}

// ringBuf accumulates the vertices of one cell-local polygon or line
// segment before it is flushed into a FlipSet.
type ringBuf struct {
	pts []vec.Vec2
}

// push appends a vertex unless it repeats the previous one.
func (r *ringBuf) push(p vec.Vec2) {
	n := len(r.pts)
	if n == 0 || r.pts[n-1] != p {
		r.pts = append(r.pts, p)
	}
}

// flushPolygon emits the accumulated vertices as a closed ring.
// Always produces clockwise areas, assuming the cell corners arrive
// clockwise; this keeps the polygons OGC-valid and lets the builder
// classify shells and holes by winding alone.
func (r *ringBuf) flushPolygon(fs *FlipSet) {
	if n := len(r.pts); n > 2 {
		for i := 0; i < n-1; i++ {
			fs.EFlip(edgeFrom(r.pts[i], r.pts[i+1]))
		}
		fs.EFlip(edgeFrom(r.pts[n-1], r.pts[0]))
	}
	r.pts = r.pts[:0]
}

// flushLine emits the accumulated pair of crossings as one segment.
// The case analysis guarantees exactly two points here.
func (r *ringBuf) flushLine(fs *FlipSet) {
	if len(r.pts) == 2 {
		fs.EFlip(edgeFrom(r.pts[0], r.pts[1]))
	}
	r.pts = r.pts[:0]
}

// bandEdge walks one cell edge in fill mode, appending corner vertices
// for inside endpoints and interpolated crossings at lo or hi.
func (g *gradient) bandEdge(buf *ringBuf, a Corner, ca place, b Corner, cb place, lo, hi float64) {
	switch ca {
	case below:
		switch cb {
		case below:
			// below-below, no crossing
		case inside:
			buf.push(g.crossing(a, b, lo))
			buf.push(b.P)
		case above:
			buf.push(g.crossing(a, b, lo))
			buf.push(g.crossing(a, b, hi))
		}
	case inside:
		switch cb {
		case below:
			buf.push(a.P)
			buf.push(g.crossing(a, b, lo))
		case inside:
			buf.push(a.P)
			buf.push(b.P)
		case above:
			buf.push(a.P)
			buf.push(g.crossing(a, b, hi))
		}
	case above:
		switch cb {
		case below:
			buf.push(g.crossing(a, b, hi))
			buf.push(g.crossing(a, b, lo))
		case inside:
			buf.push(g.crossing(a, b, hi))
			buf.push(b.P)
		case above:
			// above-above, no crossing
		}
	}
}

// The canonical triangle handlers below expect their corners permuted
// into the order their name states. All of them emit clockwise rings,
// assuming clockwise input.

// triBBI: below, below, inside.
func (g *gradient) triBBI(a, b, c Corner, lo, hi float64, fs *FlipSet) {
	p1 := g.crossing(a, c, lo)
	p2 := g.crossing(b, c, lo)
	fs.EFlip(edgeFrom(p1, p2))
	fs.EFlip(edgeFrom(p2, c.P))
	fs.EFlip(edgeFrom(c.P, p1))
}

// triBBA: below, below, above.
func (g *gradient) triBBA(a, b, c Corner, lo, hi float64, fs *FlipSet) {
	p1 := g.crossing(a, c, lo)
	p2 := g.crossing(a, c, hi)
	p3 := g.crossing(b, c, hi)
	p4 := g.crossing(b, c, lo)
	fs.EFlip(edgeFrom(p1, p4))
	fs.EFlip(edgeFrom(p4, p3))
	fs.EFlip(edgeFrom(p3, p2))
	fs.EFlip(edgeFrom(p2, p1))
}

// triBII: below, inside, inside.
func (g *gradient) triBII(a, b, c Corner, lo, hi float64, fs *FlipSet) {
	p1 := g.crossing(a, b, lo)
	p2 := g.crossing(a, c, lo)
	fs.EFlip(edgeFrom(p1, b.P))
	fs.EFlip(edgeFrom(b.P, c.P))
	fs.EFlip(edgeFrom(c.P, p2))
	fs.EFlip(edgeFrom(p2, p1))
}

// triBIA: below, inside, above.
func (g *gradient) triBIA(a, b, c Corner, lo, hi float64, fs *FlipSet) {
	p1 := g.crossing(a, b, lo)
	p2 := g.crossing(b, c, hi)
	p3 := g.crossing(a, c, hi)
	p4 := g.crossing(a, c, lo)
	fs.EFlip(edgeFrom(p1, b.P))
	fs.EFlip(edgeFrom(b.P, p2))
	fs.EFlip(edgeFrom(p2, p3))
	fs.EFlip(edgeFrom(p3, p4))
	fs.EFlip(edgeFrom(p4, p1))
}

// triBAI: below, above, inside.
func (g *gradient) triBAI(a, b, c Corner, lo, hi float64, fs *FlipSet) {
	p1 := g.crossing(a, b, lo)
	p2 := g.crossing(a, b, hi)
	p3 := g.crossing(b, c, hi)
	p4 := g.crossing(a, c, lo)
	fs.EFlip(edgeFrom(p1, p2))
	fs.EFlip(edgeFrom(p2, p3))
	fs.EFlip(edgeFrom(p3, c.P))
	fs.EFlip(edgeFrom(c.P, p4))
	fs.EFlip(edgeFrom(p4, p1))
}

// triBAA: below, above, above.
func (g *gradient) triBAA(a, b, c Corner, lo, hi float64, fs *FlipSet) {
	p1 := g.crossing(a, b, lo)
	p2 := g.crossing(a, b, hi)
	p3 := g.crossing(a, c, hi)
	p4 := g.crossing(a, c, lo)
	fs.EFlip(edgeFrom(p1, p2))
	fs.EFlip(edgeFrom(p2, p3))
	fs.EFlip(edgeFrom(p3, p4))
	fs.EFlip(edgeFrom(p4, p1))
}

// triIIA: inside, inside, above.
func (g *gradient) triIIA(a, b, c Corner, lo, hi float64, fs *FlipSet) {
	p1 := g.crossing(a, c, hi)
	p2 := g.crossing(b, c, hi)
	fs.EFlip(edgeFrom(a.P, b.P))
	fs.EFlip(edgeFrom(b.P, p2))
	fs.EFlip(edgeFrom(p2, p1))
	fs.EFlip(edgeFrom(p1, a.P))
}

// triIAA: inside, above, above.
func (g *gradient) triIAA(a, b, c Corner, lo, hi float64, fs *FlipSet) {
	p1 := g.crossing(a, b, hi)
	p2 := g.crossing(a, c, hi)
	fs.EFlip(edgeFrom(a.P, p1))
	fs.EFlip(edgeFrom(p1, p2))
	fs.EFlip(edgeFrom(p2, a.P))
}

// fillTriangle dispatches the 27 classification combinations onto the
// canonical handlers by permuting the corners.
func (g *gradient) fillTriangle(a Corner, ca place, b Corner, cb place, c Corner, cc place, lo, hi float64, fs *FlipSet) {
	switch ca {
	case below:
		switch cb {
		case below:
			switch cc {
			case below:
				// BBB, nothing
			case inside:
				g.triBBI(a, b, c, lo, hi, fs)
			case above:
				g.triBBA(a, b, c, lo, hi, fs)
			}
		case inside:
			switch cc {
			case below:
				g.triBBI(c, a, b, lo, hi, fs) // BIB
			case inside:
				g.triBII(a, b, c, lo, hi, fs)
			case above:
				g.triBIA(a, b, c, lo, hi, fs)
			}
		case above:
			switch cc {
			case below:
				g.triBBA(c, a, b, lo, hi, fs) // BAB
			case inside:
				g.triBAI(a, b, c, lo, hi, fs)
			case above:
				g.triBAA(a, b, c, lo, hi, fs)
			}
		}
	case inside:
		switch cb {
		case below:
			switch cc {
			case below:
				g.triBBI(b, c, a, lo, hi, fs) // IBB
			case inside:
				g.triBII(b, c, a, lo, hi, fs) // IBI
			case above:
				g.triBAI(b, c, a, lo, hi, fs) // IBA
			}
		case inside:
			switch cc {
			case below:
				g.triBII(c, a, b, lo, hi, fs) // IIB
			case inside:
				// III, the whole triangle is inside
				fs.EFlip(edgeFrom(a.P, b.P))
				fs.EFlip(edgeFrom(b.P, c.P))
				fs.EFlip(edgeFrom(c.P, a.P))
			case above:
				g.triIIA(a, b, c, lo, hi, fs)
			}
		case above:
			switch cc {
			case below:
				g.triBIA(c, a, b, lo, hi, fs) // IAB
			case inside:
				g.triIIA(c, a, b, lo, hi, fs) // IAI
			case above:
				g.triIAA(a, b, c, lo, hi, fs)
			}
		}
	case above:
		switch cb {
		case below:
			switch cc {
			case below:
				g.triBBA(b, c, a, lo, hi, fs) // ABB
			case inside:
				g.triBIA(b, c, a, lo, hi, fs) // ABI
			case above:
				g.triBAA(b, c, a, lo, hi, fs) // ABA
			}
		case inside:
			switch cc {
			case below:
				g.triBAI(c, a, b, lo, hi, fs) // AIB
			case inside:
				g.triIIA(b, c, a, lo, hi, fs) // AII
			case above:
				g.triIAA(b, c, a, lo, hi, fs) // AIA
			}
		case above:
			switch cc {
			case below:
				g.triBAA(c, a, b, lo, hi, fs) // AAB
			case inside:
				g.triIAA(c, a, b, lo, hi, fs) // AAI
			case above:
				// AAA, nothing
			}
		}
	}
}

// FillTriangle implements the Interpolation interface.
func (g *gradient) FillTriangle(c1, c2, c3 Corner, lo, hi float64, fs *FlipSet) {
	if g.miss(c1.Z) || g.miss(c2.Z) || g.miss(c3.Z) {
		return
	}
	p1 := g.fillPlace(c1.Z, lo, hi)
	p2 := g.fillPlace(c2.Z, lo, hi)
	p3 := g.fillPlace(c3.Z, lo, hi)
	g.fillTriangle(c1, p1, c2, p2, c3, p3, lo, hi, fs)
}

// FillRectangle implements the Interpolation interface. If exactly one
// corner value is missing the remaining triangle is contoured; with
// two or more missing the cell is skipped.
func (g *gradient) FillRectangle(c1, c2, c3, c4 Corner, gx, gy int, lo, hi float64, fs *FlipSet, fg *FlipGrid) {
	switch {
	case g.miss(c1.Z):
		g.FillTriangle(c2, c3, c4, lo, hi, fs)
	case g.miss(c2.Z):
		g.FillTriangle(c1, c3, c4, lo, hi, fs)
	case g.miss(c3.Z):
		g.FillTriangle(c1, c2, c4, lo, hi, fs)
	case g.miss(c4.Z):
		g.FillTriangle(c1, c2, c3, lo, hi, fs)
	default:
		p1 := g.fillPlace(c1.Z, lo, hi)
		p2 := g.fillPlace(c2.Z, lo, hi)
		p3 := g.fillPlace(c3.Z, lo, hi)
		p4 := g.fillPlace(c4.Z, lo, hi)

		// Uniform cells are the common case and worth the fast path:
		// below or above there is nothing to do, inside covers the
		// whole cell with its four sides.
		if p1 == p2 && p2 == p3 && p3 == p4 {
			if p1 == inside {
				fg.FlipTop(gx, gy)
				fg.FlipRight(gx, gy)
				fg.FlipBottom(gx, gy)
				fg.FlipLeft(gx, gy)
			}
			return
		}

		if !isSaddle(c1.Z, c2.Z, c3.Z, c4.Z) {
			var buf ringBuf
			g.bandEdge(&buf, c1, p1, c2, p2, lo, hi)
			g.bandEdge(&buf, c2, p2, c3, p3, lo, hi)
			g.bandEdge(&buf, c3, p3, c4, p4, lo, hi)
			g.bandEdge(&buf, c4, p4, c1, p1, lo, hi)
			buf.flushPolygon(fs)
			return
		}

		c0 := g.saddleCentre(c1, c2, c3, c4)
		g.FillTriangle(c1, c2, c0, lo, hi, fs)
		g.FillTriangle(c2, c3, c0, lo, hi, fs)
		g.FillTriangle(c3, c4, c0, lo, hi, fs)
		g.FillTriangle(c4, c1, c0, lo, hi, fs)
	}
}

func (g *gradient) saddleCentre(c1, c2, c3, c4 Corner) Corner {
	return Corner{
		P: vec.Vec2{
			X: (c1.P.X + c2.P.X + c3.P.X + c4.P.X) / 4,
			Y: (c1.P.Y + c2.P.Y + c3.P.Y + c4.P.Y) / 4,
		},
		Z: g.centre(c1.Z, c2.Z, c3.Z, c4.Z),
	}
}

// lineEdge appends the crossing point of one cell edge with the
// isoline, if the edge has exactly one below endpoint.
func (g *gradient) lineEdge(buf *ringBuf, a Corner, ca place, b Corner, cb place, v float64) {
	if (ca == below) == (cb == below) {
		return
	}
	buf.pts = append(buf.pts, g.crossing(a, b, v))
}

// LineTriangle implements the Interpolation interface.
//
// A triangle with no below corner contributes nothing. In areas of
// constant value there is no sensible definition of where the contour
// line runs, so the definition is loosened to an infimum-style one;
// this also prevents double lines on flat plateaus. The segment is
// oriented so that the above region lies on a fixed side, matching the
// clockwise convention of fill mode.
func (g *gradient) LineTriangle(c1, c2, c3 Corner, v float64, fs *FlipSet) {
	if g.miss(c1.Z) || g.miss(c2.Z) || g.miss(c3.Z) {
		return
	}
	p1 := g.linePlace(c1.Z, v)
	p2 := g.linePlace(c2.Z, v)
	p3 := g.linePlace(c3.Z, v)

	if p1 == p2 && p2 == p3 {
		return
	}
	if p1 != below && p2 != below && p3 != below {
		return
	}

	var buf ringBuf
	g.lineEdge(&buf, c1, p1, c2, p2, v)
	g.lineEdge(&buf, c2, p2, c3, p3, v)
	final := p3
	if len(buf.pts) != 2 {
		g.lineEdge(&buf, c3, p3, c1, p1, v)
		final = p1
	}
	if len(buf.pts) != 2 {
		return
	}
	if final == below {
		fs.EFlip(edgeFrom(buf.pts[0], buf.pts[1]))
	} else {
		fs.EFlip(edgeFrom(buf.pts[1], buf.pts[0]))
	}
}

// LineRectangle implements the Interpolation interface. The sixteen
// corner classifications produce 0, 2 or 4 crossings; the ambiguous
// double-crossing cases use the centre value to decide which pairing
// is connected.
func (g *gradient) LineRectangle(c1, c2, c3, c4 Corner, v float64, fs *FlipSet) {
	switch {
	case g.miss(c1.Z):
		g.LineTriangle(c2, c3, c4, v, fs)
		return
	case g.miss(c2.Z):
		g.LineTriangle(c1, c3, c4, v, fs)
		return
	case g.miss(c3.Z):
		g.LineTriangle(c1, c2, c4, v, fs)
		return
	case g.miss(c4.Z):
		g.LineTriangle(c1, c2, c3, v, fs)
		return
	}

	p1 := g.linePlace(c1.Z, v)
	p2 := g.linePlace(c2.Z, v)
	p3 := g.linePlace(c3.Z, v)
	p4 := g.linePlace(c4.Z, v)

	if p1 == p2 && p2 == p3 && p3 == p4 {
		return
	}

	// The saddle decision must not depend on the contour value, so
	// that every threshold splits the same cells and isolines match
	// isobands.
	if isSaddle(c1.Z, c2.Z, c3.Z, c4.Z) {
		c0 := g.saddleCentre(c1, c2, c3, c4)
		g.LineTriangle(c1, c2, c0, v, fs)
		g.LineTriangle(c2, c3, c0, v, fs)
		g.LineTriangle(c3, c4, c0, v, fs)
		g.LineTriangle(c4, c1, c0, v, fs)
		return
	}

	var buf ringBuf
	push := func(a Corner, ca place, b Corner, cb place) {
		g.lineEdge(&buf, a, ca, b, cb, v)
	}

	if p1 == below {
		if p2 == below {
			if p3 == below {
				if p4 != below { // BBBA
					push(c4, p4, c1, p1)
					push(c3, p3, c4, p4)
				}
			} else {
				if p4 == below { // BBAB
					push(c3, p3, c4, p4)
					push(c2, p2, c3, p3)
				} else { // BBAA
					push(c4, p4, c1, p1)
					push(c2, p2, c3, p3)
				}
			}
		} else {
			if p3 == below {
				if p4 == below { // BABB
					push(c2, p2, c3, p3)
					push(c1, p1, c2, p2)
				} else { // BABA
					c0 := g.linePlace(g.centre(c1.Z, c2.Z, c3.Z, c4.Z), v)
					if c0 == p1 { // below
						push(c2, p2, c3, p3)
						push(c1, p1, c2, p2)
						buf.flushLine(fs)
						push(c4, p4, c1, p1)
						push(c3, p3, c4, p4)
					} else {
						push(c4, p4, c1, p1)
						push(c1, p1, c2, p2)
						buf.flushLine(fs)
						push(c2, p2, c3, p3)
						push(c3, p3, c4, p4)
					}
				}
			} else {
				if p4 == below { // BAAB
					push(c3, p3, c4, p4)
					push(c1, p1, c2, p2)
				} else { // BAAA
					push(c4, p4, c1, p1)
					push(c1, p1, c2, p2)
				}
			}
		}
	} else if p2 == below {
		if p3 == below {
			if p4 == below { // ABBB
				push(c1, p1, c2, p2)
				push(c4, p4, c1, p1)
			} else { // ABBA
				push(c1, p1, c2, p2)
				push(c3, p3, c4, p4)
			}
		} else {
			if p4 == below { // ABAB
				c0 := g.linePlace(g.centre(c1.Z, c2.Z, c3.Z, c4.Z), v)
				if c0 == p1 { // above
					push(c1, p1, c2, p2)
					push(c2, p2, c3, p3)
					buf.flushLine(fs)
					push(c3, p3, c4, p4)
					push(c4, p4, c1, p1)
				} else {
					push(c1, p1, c2, p2)
					push(c4, p4, c1, p1)
					buf.flushLine(fs)
					push(c3, p3, c4, p4)
					push(c2, p2, c3, p3)
				}
			} else { // ABAA
				push(c1, p1, c2, p2)
				push(c2, p2, c3, p3)
			}
		}
	} else {
		if p3 == below {
			if p4 == below { // AABB
				push(c2, p2, c3, p3)
				push(c4, p4, c1, p1)
			} else { // AABA
				push(c2, p2, c3, p3)
				push(c3, p3, c4, p4)
			}
		} else {
			if p4 == below { // AAAB
				push(c3, p3, c4, p4)
				push(c4, p4, c1, p1)
			}
			// AAAA handled by the uniform check above
		}
	}

	if len(buf.pts) > 0 {
		buf.flushLine(fs)
	}
}
