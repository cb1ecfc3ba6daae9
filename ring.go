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
	"strings"

	"seehuhn.de/go/geom/vec"
)

// Ring is a connected polyline of distinct points. A closed ring has
// equal first and last vertices, and its winding then tells whether it
// is an exterior shell (clockwise) or a hole (counter-clockwise).
//
// Rings must not be shared between goroutines; the cached area is
// updated lazily.
type Ring struct {
	pts    []vec.Vec2
	area   float64
	areaOK bool
}

// Len returns the number of vertices.
func (r *Ring) Len() int { return len(r.pts) }

// Empty reports whether the ring has no vertices.
func (r *Ring) Empty() bool { return len(r.pts) == 0 }

// Points returns the vertex list. The slice is owned by the ring.
func (r *Ring) Points() []vec.Vec2 { return r.pts }

// Closed reports whether the first and last vertices coincide.
func (r *Ring) Closed() bool {
	if len(r.pts) == 0 {
		return false
	}
	return r.pts[0] == r.pts[len(r.pts)-1]
}

// SignedArea returns the shoelace area of the ring. Clockwise rings
// (in a y-up coordinate system) have positive area.
func (r *Ring) SignedArea() float64 {
	if r.areaOK {
		return r.area
	}
	if len(r.pts) < 2 {
		return 0
	}
	area := 0.0
	for i := 1; i < len(r.pts); i++ {
		prev := r.pts[i-1]
		next := r.pts[i]
		area += (next.X - prev.X) * (prev.Y + next.Y)
	}
	r.area = area / 2
	r.areaOK = true
	return r.area
}

// IsClockwise reports the winding of the ring. Zero-area rings count
// as clockwise; treating them as holes leads to trouble.
func (r *Ring) IsClockwise() bool { return r.SignedArea() >= 0 }

// extendEnd appends the destination of e if the ring currently ends at
// its source.
func (r *Ring) extendEnd(e Edge) bool {
	if len(r.pts) == 0 || r.pts[len(r.pts)-1] != e.Start() {
		return false
	}
	r.pts = append(r.pts, e.End())
	r.areaOK = false
	return true
}

// extendStart prepends the other ring if its last vertex matches this
// ring's first. The other ring is emptied on success.
func (r *Ring) extendStart(o *Ring) bool {
	if len(r.pts) == 0 || len(o.pts) == 0 {
		return false
	}
	if r.pts[0] != o.pts[len(o.pts)-1] {
		return false
	}
	merged := make([]vec.Vec2, 0, len(o.pts)+len(r.pts)-1)
	merged = append(merged, o.pts...)
	merged = append(merged, r.pts[1:]...)
	r.pts = merged
	o.pts = nil
	r.areaOK = false
	return true
}

// removeSelfTouch cuts off the closed sub-ring between the last vertex
// and its previous occurrence, leaving the remainder in place. The
// search excludes the first vertex: reaching it again means the ring
// closed normally.
func (r *Ring) removeSelfTouch() (Ring, bool) {
	last := r.pts[len(r.pts)-1]
	for i := len(r.pts) - 2; i > 0; i-- {
		if r.pts[i] == last {
			cut := Ring{pts: append([]vec.Vec2(nil), r.pts[i:]...)}
			r.pts = r.pts[:i+1]
			r.areaOK = false
			return cut, true
		}
	}
	return Ring{}, false
}

// endAngle returns the direction of the last segment in degrees.
func (r *Ring) endAngle() float64 {
	n := len(r.pts)
	p1 := r.pts[n-2]
	p2 := r.pts[n-1]
	return math.Atan2(p2.Y-p1.Y, p2.X-p1.X) * (180 / math.Pi)
}

// String formats the vertex list, mostly for diagnostics.
func (r *Ring) String() string {
	var sb strings.Builder
	for i, p := range r.pts {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%g %g", p.X, p.Y)
	}
	return sb.String()
}
