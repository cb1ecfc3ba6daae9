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

import "math"

// Grid is the read-only view of a scalar field on a structured
// quadrilateral grid. Indices run 0 <= i < Width(), 0 <= j < Height(),
// and increasing j implies increasing Y. The cell with lower-left
// corner (i, j) has corners (i,j), (i,j+1), (i+1,j+1), (i+1,j), in
// clockwise order.
//
// World-wrap grids must additionally answer queries for the wrap
// column i == Width(), typically with X(0,j) shifted by 360 degrees.
type Grid interface {
	Width() int
	Height() int
	Z(i, j int) float64
	X(i, j int) float64
	Y(i, j int) float64
}

// CellValidator is implemented by grids that can mark individual cells
// as topologically unusable. Cells with Valid(i, j) == false are
// skipped during contouring.
type CellValidator interface {
	Valid(i, j int) bool
}

// Missing reports whether a value represents missing data. Separate
// predicates may be used for field values and for coordinates.
type Missing func(v float64) bool

// NotMissing treats every value as valid.
func NotMissing(float64) bool { return false }

// NaNMissing treats NaN as missing.
func NaNMissing(v float64) bool { return math.IsNaN(v) }

// InfMissing treats NaN and infinities as missing.
func InfMissing(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// SentinelMissing treats one specific value as missing. Weather
// services traditionally use magic numbers such as 32700.
func SentinelMissing(sentinel float64) Missing {
	return func(v float64) bool { return v == sentinel }
}

// Field is a dense row-major value grid with unit-spaced index
// coordinates, X(i,j) = i and Y(i,j) = j. It is the concrete Grid
// used by the smoother, the tests and the reference tools.
type Field struct {
	W, H   int
	Values []float64
}

// NewField allocates a zero-filled w by h field.
func NewField(w, h int) *Field {
	return &Field{W: w, H: h, Values: make([]float64, w*h)}
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	values := make([]float64, len(f.Values))
	copy(values, f.Values)
	return &Field{W: f.W, H: f.H, Values: values}
}

// Width returns the number of corner columns.
func (f *Field) Width() int { return f.W }

// Height returns the number of corner rows.
func (f *Field) Height() int { return f.H }

// Z returns the value at (i, j).
func (f *Field) Z(i, j int) float64 { return f.Values[j*f.W+i] }

// SetZ stores a value at (i, j).
func (f *Field) SetZ(i, j int, v float64) { f.Values[j*f.W+i] = v }

// X returns the x coordinate of corner (i, j).
func (f *Field) X(i, j int) float64 { return float64(i) }

// Y returns the y coordinate of corner (i, j).
func (f *Field) Y(i, j int) float64 { return float64(j) }
