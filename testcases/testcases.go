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

// Package testcases defines the grids and contour requests shared by
// the unit tests and the reference-image commands.
package testcases

import (
	"math"

	"seehuhn.de/go/contour"
)

// TestCase is one grid together with a contour request.
type TestCase struct {
	Name  string // lowercase a-z and _ only
	Field *contour.Field
	Op    Operation
}

// Operation is the contour operation to apply to the field.
type Operation interface {
	isOperation()
}

// Band requests the isoband Lo <= z < Hi.
type Band struct {
	Lo, Hi float64
}

func (Band) isOperation() {}

// Isoline requests the curve z = V.
type Isoline struct {
	V float64
}

func (Isoline) isOperation() {}

// All lists the test cases by category.
var All = map[string][]TestCase{
	"band": {
		{Name: "pulse_wedge", Field: pulse(), Op: Band{Lo: 0.25, Hi: 0.75}},
		{Name: "saddle_pair", Field: saddle(), Op: Band{Lo: 0, Hi: 0.5}},
		{Name: "paraboloid_disk", Field: paraboloid(20, 20), Op: Band{Lo: 0, Hi: 25}},
		{Name: "paraboloid_annulus", Field: paraboloid(20, 20), Op: Band{Lo: 10, Hi: 50}},
		{Name: "ripple_rings", Field: ripple(40, 40), Op: Band{Lo: 0.2, Hi: 0.8}},
		{Name: "plateau_edge", Field: plateau(16, 16), Op: Band{Lo: 0.5, Hi: 1.5}},
	},
	"isoline": {
		{Name: "pulse_line", Field: pulse(), Op: Isoline{V: 0.5}},
		{Name: "paraboloid_circle", Field: paraboloid(20, 20), Op: Isoline{V: 25}},
		{Name: "ripple_contours", Field: ripple(40, 40), Op: Isoline{V: 0.5}},
	},
}

// pulse has a single raised corner.
func pulse() *contour.Field {
	f := contour.NewField(2, 2)
	f.SetZ(1, 1, 1)
	return f
}

// saddle has alternating high corners.
func saddle() *contour.Field {
	f := contour.NewField(2, 2)
	f.SetZ(0, 0, 1)
	f.SetZ(1, 1, 1)
	return f
}

// paraboloid has z = (i-w/2)^2 + (j-h/2)^2.
func paraboloid(w, h int) *contour.Field {
	f := contour.NewField(w, h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			di := float64(i - w/2)
			dj := float64(j - h/2)
			f.SetZ(i, j, di*di+dj*dj)
		}
	}
	return f
}

// ripple has concentric sine waves around the centre.
func ripple(w, h int) *contour.Field {
	f := contour.NewField(w, h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			di := float64(i - w/2)
			dj := float64(j - h/2)
			r := math.Sqrt(di*di + dj*dj)
			f.SetZ(i, j, 0.5+0.5*math.Sin(r/2))
		}
	}
	return f
}

// plateau has a flat raised region with a one-cell ramp around it.
func plateau(w, h int) *contour.Field {
	f := contour.NewField(w, h)
	for j := h / 4; j < 3*h/4; j++ {
		for i := w / 4; i < 3*w/4; i++ {
			f.SetZ(i, j, 1)
		}
	}
	return f
}

// Contour runs the test case and collects the result.
func Contour(tc TestCase) (*contour.Collector, error) {
	c := contour.NewContourer(tc.Field)
	var sink contour.Collector
	var err error
	switch op := tc.Op.(type) {
	case Band:
		err = c.Fill(&sink, op.Lo, op.Hi)
	case Isoline:
		err = c.Line(&sink, op.V)
	}
	if err != nil {
		return nil, err
	}
	return &sink, nil
}
