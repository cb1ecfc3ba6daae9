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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// GeometrySink receives the finished contour geometry. Fill requests
// deliver one Polygon call per shell, holes included; line requests
// deliver one LineString call per polyline. The vertex slices are
// owned by the caller only for the duration of the call.
//
// Shells arrive closed and clockwise, holes closed and counter-
// clockwise, so several Polygon calls together form a valid
// multipolygon.
type GeometrySink interface {
	Polygon(shell []vec.Vec2, holes [][]vec.Vec2)
	LineString(points []vec.Vec2)
}

// PathSink is the minimal move/line/close surface for consumers that
// build paths instead of structured geometry.
type PathSink interface {
	MoveTo(p vec.Vec2)
	LineTo(p vec.Vec2)
	Close()
}

// SinkPath adapts a PathSink to the GeometrySink interface. Closed
// rings become subpaths terminated by Close; linestrings stay open.
type SinkPath struct {
	Sink PathSink
}

// Polygon implements the GeometrySink interface.
func (s SinkPath) Polygon(shell []vec.Vec2, holes [][]vec.Vec2) {
	s.ring(shell)
	for _, hole := range holes {
		s.ring(hole)
	}
}

func (s SinkPath) ring(pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}
	s.Sink.MoveTo(pts[0])
	// The last vertex repeats the first and is implied by Close.
	for _, p := range pts[1 : len(pts)-1] {
		s.Sink.LineTo(p)
	}
	s.Sink.Close()
}

// LineString implements the GeometrySink interface.
func (s SinkPath) LineString(pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}
	s.Sink.MoveTo(pts[0])
	for _, p := range pts[1:] {
		s.Sink.LineTo(p)
	}
}

// PathWriter collects contour geometry into a path.Data. The optional
// CTM transforms each vertex from world space into the target space;
// the zero value and matrix.Identity both mean no transform.
//
// Shells and holes have opposite windings, so the resulting path fills
// correctly under the nonzero winding rule.
type PathWriter struct {
	Path *path.Data
	CTM  matrix.Matrix
}

// NewPathWriter returns a PathWriter accumulating into a fresh
// path.Data.
func NewPathWriter() *PathWriter {
	return &PathWriter{Path: &path.Data{}}
}

func (w *PathWriter) transform(p vec.Vec2) vec.Vec2 {
	if w.CTM == (matrix.Matrix{}) || w.CTM == matrix.Identity {
		return p
	}
	return vec.Vec2{
		X: w.CTM[0]*p.X + w.CTM[2]*p.Y + w.CTM[4],
		Y: w.CTM[1]*p.X + w.CTM[3]*p.Y + w.CTM[5],
	}
}

// Polygon implements the GeometrySink interface.
func (w *PathWriter) Polygon(shell []vec.Vec2, holes [][]vec.Vec2) {
	w.ring(shell)
	for _, hole := range holes {
		w.ring(hole)
	}
}

func (w *PathWriter) ring(pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}
	w.Path.MoveTo(w.transform(pts[0]))
	for _, p := range pts[1 : len(pts)-1] {
		w.Path.LineTo(w.transform(p))
	}
	w.Path.Close()
}

// LineString implements the GeometrySink interface.
func (w *PathWriter) LineString(pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}
	w.Path.MoveTo(w.transform(pts[0]))
	for _, p := range pts[1:] {
		w.Path.LineTo(w.transform(p))
	}
}

// Polygon is one shell with its holes, as collected by a Collector.
type Polygon struct {
	Shell []vec.Vec2
	Holes [][]vec.Vec2
}

// Collector stores the delivered geometry for inspection. It is the
// sink used by the tests.
type Collector struct {
	Polygons []Polygon
	Lines    [][]vec.Vec2
}

// Polygon implements the GeometrySink interface.
func (c *Collector) Polygon(shell []vec.Vec2, holes [][]vec.Vec2) {
	shellCopy := append([]vec.Vec2(nil), shell...)
	var holesCopy [][]vec.Vec2
	for _, hole := range holes {
		holesCopy = append(holesCopy, append([]vec.Vec2(nil), hole...))
	}
	c.Polygons = append(c.Polygons, Polygon{Shell: shellCopy, Holes: holesCopy})
}

// LineString implements the GeometrySink interface.
func (c *Collector) LineString(points []vec.Vec2) {
	c.Lines = append(c.Lines, append([]vec.Vec2(nil), points...))
}
