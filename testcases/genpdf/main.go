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

// Command genpdf renders the contour test cases into PDF files for
// visual inspection of the generated geometry.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/contour/testcases"
)

const refDir = "testdata/reference"

// scale enlarges the grid coordinates so that small test grids are
// visible on the page.
const scale = 16.0

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	result, err := testcases.Contour(tc)
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: float64(tc.Field.W-1) * scale,
		URy: float64(tc.Field.H-1) * scale,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// White background, black geometry.
	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	emit := func(pts []vec.Vec2, closed bool) {
		if len(pts) < 2 {
			return
		}
		page.MoveTo(pts[0].X*scale, pts[0].Y*scale)
		for _, p := range pts[1:] {
			page.LineTo(p.X*scale, p.Y*scale)
		}
		if closed {
			page.ClosePath()
		}
	}

	page.SetFillColor(color.DeviceGray(0.6))
	for _, poly := range result.Polygons {
		emit(poly.Shell, true)
		for _, hole := range poly.Holes {
			emit(hole, true)
		}
	}
	if len(result.Polygons) > 0 {
		// Shells and holes have opposite windings; the nonzero rule
		// leaves the holes unpainted.
		page.Fill()
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.75)
	for _, line := range result.Lines {
		emit(line, false)
	}
	if len(result.Lines) > 0 {
		page.Stroke()
	}

	return page.Close()
}
