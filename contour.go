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

// Package contour extracts isolines and isobands from scalar fields
// sampled on structured quadrilateral grids.
//
// Given a grid of values z(i,j) with world coordinates (x(i,j),
// y(i,j)), a Contourer produces either isolines (curves z = v) or
// isobands (fill polygons for lo <= z < hi) as planar geometry:
// simple linestrings for lines, and simple polygons with holes for
// fills. Every cell emits directed edges whose duplicates cancel in a
// FlipSet, and the surviving boundary is assembled into rings by the
// Builder.
package contour

import "seehuhn.de/go/geom/rect"

// Contourer is the top-level façade. The caller supplies the grid and
// optionally tunes the strategy fields before issuing requests. A
// Contourer holds no state between requests; distinct instances may be
// used concurrently.
type Contourer struct {
	// Grid supplies values and world coordinates.
	Grid Grid

	// Interpolation is the per-cell strategy. Nil selects linear
	// interpolation with the Missing predicate below.
	Interpolation Interpolation

	// Missing classifies field values as missing data.
	Missing Missing

	// CoordMissing classifies coordinates as missing; cells with any
	// missing corner coordinate are skipped.
	CoordMissing Missing

	// WorldWrap marks grids whose last column is geographically
	// adjacent to the first. The grid must then answer coordinate and
	// value queries for i == Width().
	WorldWrap bool

	// Diagnostics receives warnings about recoverable degeneracies.
	// Nil means silent.
	Diagnostics func(msg string)
}

// NewContourer returns a Contourer for the grid with linear
// interpolation and no missing values.
func NewContourer(g Grid) *Contourer {
	return &Contourer{
		Grid:         g,
		Missing:      NotMissing,
		CoordMissing: NotMissing,
	}
}

func (c *Contourer) interpolation() Interpolation {
	if c.Interpolation != nil {
		return c.Interpolation
	}
	return NewLinear(c.Missing)
}

func (c *Contourer) coordMissing() Missing {
	if c.CoordMissing != nil {
		return c.CoordMissing
	}
	return NotMissing
}

// cross returns the z component of (b-a) x (c-b).
func cross(ax, ay, bx, by, cx, cy float64) float64 {
	return (bx-ax)*(cy-by) - (by-ay)*(cx-bx)
}

// cell loads the four corners of cell (i, j) in clockwise order and
// applies the per-cell guards: the optional validity predicate,
// missing coordinates, and the convex-clockwise sanity check which
// weeds out cells degenerated by the projection, for example at the
// poles.
func (c *Contourer) cell(i, j int) (c1, c2, c3, c4 Corner, ok bool) {
	if v, isV := c.Grid.(CellValidator); isV && !v.Valid(i, j) {
		return c1, c2, c3, c4, false
	}

	g := c.Grid
	c1 = Corner{P: vec2(g.X(i, j), g.Y(i, j)), Z: g.Z(i, j)}
	c2 = Corner{P: vec2(g.X(i, j+1), g.Y(i, j+1)), Z: g.Z(i, j+1)}
	c3 = Corner{P: vec2(g.X(i+1, j+1), g.Y(i+1, j+1)), Z: g.Z(i+1, j+1)}
	c4 = Corner{P: vec2(g.X(i+1, j), g.Y(i+1, j)), Z: g.Z(i+1, j)}

	miss := c.coordMissing()
	for _, p := range [4]Corner{c1, c2, c3, c4} {
		if miss(p.P.X) || miss(p.P.Y) {
			return c1, c2, c3, c4, false
		}
	}

	k1 := cross(c1.P.X, c1.P.Y, c2.P.X, c2.P.Y, c3.P.X, c3.P.Y)
	k2 := cross(c2.P.X, c2.P.Y, c3.P.X, c3.P.Y, c4.P.X, c4.P.Y)
	k3 := cross(c3.P.X, c3.P.Y, c4.P.X, c4.P.Y, c1.P.X, c1.P.Y)
	k4 := cross(c4.P.X, c4.P.Y, c1.P.X, c1.P.Y, c2.P.X, c2.P.Y)
	if k1 > 0 || k2 > 0 || k3 > 0 || k4 > 0 {
		return c1, c2, c3, c4, false
	}
	// All four products vanish when the corners are collinear, for
	// example when the projection collapses the cell to a line.
	if k1 == 0 && k2 == 0 && k3 == 0 && k4 == 0 {
		return c1, c2, c3, c4, false
	}

	return c1, c2, c3, c4, true
}

// Fill calculates the polygons surrounding the value range
// lo <= z < hi and delivers them to the sink. A missing limit means
// unbounded on that side.
func (c *Contourer) Fill(sink GeometrySink, lo, hi float64) error {
	fg, err := NewFlipGrid(c.Grid.Width(), c.Grid.Height(), c.WorldWrap)
	if err != nil {
		return err
	}
	fs := NewFlipSet()
	ip := c.interpolation()

	width := c.Grid.Width()
	if c.WorldWrap {
		width++
	}
	for j := 0; j < c.Grid.Height()-1; j++ {
		for i := 0; i < width-1; i++ {
			if c1, c2, c3, c4, ok := c.cell(i, j); ok {
				ip.FillRectangle(c1, c2, c3, c4, i, j, lo, hi, fs, fg)
			}
		}
	}

	return c.finishFill(fg, fs, sink)
}

// FillHinted is Fill restricted to the cells suggested by the value
// hints. The hints must have been built over the same grid.
func (c *Contourer) FillHinted(sink GeometrySink, lo, hi float64, hints *ValueHints) error {
	fg, err := NewFlipGrid(c.Grid.Width(), c.Grid.Height(), c.WorldWrap)
	if err != nil {
		return err
	}
	fs := NewFlipSet()
	ip := c.interpolation()

	for _, r := range hints.RectanglesRange(lo, hi) {
		c.fillRect(ip, r.CellRect, lo, hi, fs, fg)
	}
	c.fillWrapColumn(ip, lo, hi, fs, fg)

	return c.finishFill(fg, fs, sink)
}

// FillRegion is FillHinted additionally restricted to cells whose
// coordinate bounding box overlaps the query box.
func (c *Contourer) FillRegion(sink GeometrySink, lo, hi float64, hints *ValueHints, coords *CoordHints, box rect.Rect) error {
	fg, err := NewFlipGrid(c.Grid.Width(), c.Grid.Height(), c.WorldWrap)
	if err != nil {
		return err
	}
	fs := NewFlipSet()
	ip := c.interpolation()

	valueRects := hints.RectanglesRange(lo, hi)
	coordRects := coords.Rectangles(box)
	for _, vr := range valueRects {
		for _, cr := range coordRects {
			if isect, ok := intersectCells(vr.CellRect, cr.CellRect); ok {
				c.fillRect(ip, isect, lo, hi, fs, fg)
			}
		}
	}
	c.fillWrapColumn(ip, lo, hi, fs, fg)

	return c.finishFill(fg, fs, sink)
}

func (c *Contourer) fillRect(ip Interpolation, r CellRect, lo, hi float64, fs *FlipSet, fg *FlipGrid) {
	for j := r.Y1; j < r.Y2; j++ {
		for i := r.X1; i < r.X2; i++ {
			if c1, c2, c3, c4, ok := c.cell(i, j); ok {
				ip.FillRectangle(c1, c2, c3, c4, i, j, lo, hi, fs, fg)
			}
		}
	}
}

// fillWrapColumn processes the wrap cell column i = width-1, which no
// hint rectangle covers.
func (c *Contourer) fillWrapColumn(ip Interpolation, lo, hi float64, fs *FlipSet, fg *FlipGrid) {
	if !c.WorldWrap {
		return
	}
	i := c.Grid.Width() - 1
	for j := 0; j < c.Grid.Height()-1; j++ {
		if c1, c2, c3, c4, ok := c.cell(i, j); ok {
			ip.FillRectangle(c1, c2, c3, c4, i, j, lo, hi, fs, fg)
		}
	}
}

func (c *Contourer) finishFill(fg *FlipGrid, fs *FlipSet, sink GeometrySink) error {
	fg.Copy(c.Grid, fs)
	b := &Builder{Diagnostics: c.Diagnostics}
	return b.Fill(fs.Finalize(), sink)
}

// Line calculates the isoline for the given value and delivers the
// resulting linestrings to the sink.
func (c *Contourer) Line(sink GeometrySink, v float64) error {
	fs := NewFlipSet()
	ip := c.interpolation()

	width := c.Grid.Width()
	if c.WorldWrap {
		width++
	}
	for j := 0; j < c.Grid.Height()-1; j++ {
		for i := 0; i < width-1; i++ {
			if c1, c2, c3, c4, ok := c.cell(i, j); ok {
				ip.LineRectangle(c1, c2, c3, c4, v, fs)
			}
		}
	}

	b := &Builder{Diagnostics: c.Diagnostics}
	return b.Line(fs.Finalize(), sink)
}

// LineHinted is Line restricted to the cells suggested by the value
// hints.
func (c *Contourer) LineHinted(sink GeometrySink, v float64, hints *ValueHints) error {
	fs := NewFlipSet()
	ip := c.interpolation()

	for _, r := range hints.Rectangles(v) {
		c.lineRect(ip, r.CellRect, v, fs)
	}
	c.lineWrapColumn(ip, v, fs)

	b := &Builder{Diagnostics: c.Diagnostics}
	return b.Line(fs.Finalize(), sink)
}

// LineRegion is LineHinted additionally restricted to cells whose
// coordinate bounding box overlaps the query box.
func (c *Contourer) LineRegion(sink GeometrySink, v float64, hints *ValueHints, coords *CoordHints, box rect.Rect) error {
	fs := NewFlipSet()
	ip := c.interpolation()

	valueRects := hints.Rectangles(v)
	coordRects := coords.Rectangles(box)
	for _, vr := range valueRects {
		for _, cr := range coordRects {
			if isect, ok := intersectCells(vr.CellRect, cr.CellRect); ok {
				c.lineRect(ip, isect, v, fs)
			}
		}
	}
	c.lineWrapColumn(ip, v, fs)

	b := &Builder{Diagnostics: c.Diagnostics}
	return b.Line(fs.Finalize(), sink)
}

func (c *Contourer) lineRect(ip Interpolation, r CellRect, v float64, fs *FlipSet) {
	for j := r.Y1; j < r.Y2; j++ {
		for i := r.X1; i < r.X2; i++ {
			if c1, c2, c3, c4, ok := c.cell(i, j); ok {
				ip.LineRectangle(c1, c2, c3, c4, v, fs)
			}
		}
	}
}

func (c *Contourer) lineWrapColumn(ip Interpolation, v float64, fs *FlipSet) {
	if !c.WorldWrap {
		return
	}
	i := c.Grid.Width() - 1
	for j := 0; j < c.Grid.Height()-1; j++ {
		if c1, c2, c3, c4, ok := c.cell(i, j); ok {
			ip.LineRectangle(c1, c2, c3, c4, v, fs)
		}
	}
}

// intersectCells returns the overlap of two corner-index rectangles.
// The result covers at least one cell when ok is true.
func intersectCells(a, b CellRect) (CellRect, bool) {
	r := CellRect{
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2),
		Y2: min(a.Y2, b.Y2),
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return CellRect{}, false
	}
	return r, true
}
