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

// Command genpng rasterises the filled contour test cases into
// grayscale PNG images.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour/testcases"
)

const refDir = "testdata/reference"

// scale enlarges the grid coordinates so that small test grids are
// visible in the image.
const scale = 16.0

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pngPath := filepath.Join(refDir, name+".png")
			if err := generatePNG(tc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePNG(tc testcases.TestCase, pngPath string) (err error) {
	result, err := testcases.Contour(tc)
	if err != nil {
		return err
	}

	w := int(float64(tc.Field.W-1) * scale)
	h := int(float64(tc.Field.H-1) * scale)
	ras := vector.NewRasterizer(w, h)

	// The image origin is top-left while the grid is y-up.
	flipY := func(y float64) float32 {
		return float32(float64(h) - y*scale)
	}

	emitRing := func(pts []vec.Vec2) {
		if len(pts) < 2 {
			return
		}
		ras.MoveTo(float32(pts[0].X*scale), flipY(pts[0].Y))
		for _, p := range pts[1:] {
			ras.LineTo(float32(p.X*scale), flipY(p.Y))
		}
		ras.ClosePath()
	}

	// Shells and holes have opposite windings; the rasteriser's
	// winding accumulation leaves the holes blank.
	for _, poly := range result.Polygons {
		emitRing(poly.Shell)
		for _, hole := range poly.Holes {
			emitRing(hole)
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	gray := image.NewGray(dst.Bounds())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gray.SetGray(x, y, color.Gray{Y: dst.AlphaAt(x, y).A})
		}
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	err = png.Encode(f, gray)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
