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
	"reflect"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// pulseField is a 2x2 grid with a single raised corner at (1,1).
func pulseField() *Field {
	f := NewField(2, 2)
	f.SetZ(1, 1, 1)
	return f
}

// paraboloidField has z = (i-w/2)^2 + (j-h/2)^2.
func paraboloidField(w, h int) *Field {
	f := NewField(w, h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			di := float64(i - w/2)
			dj := float64(j - h/2)
			f.SetZ(i, j, di*di+dj*dj)
		}
	}
	return f
}

func TestLineSingleCellPulse(t *testing.T) {
	c := NewContourer(pulseField())
	var sink Collector
	if err := c.Line(&sink, 0.5); err != nil {
		t.Fatal(err)
	}
	if len(sink.Lines) != 1 {
		t.Fatalf("got %d linestrings, want 1", len(sink.Lines))
	}
	want := []vec.Vec2{vec2(1, 0.5), vec2(0.5, 1)}
	got := sink.Lines[0]
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFillSingleCellBand(t *testing.T) {
	c := NewContourer(pulseField())
	var sink Collector
	if err := c.Fill(&sink, 0.25, 0.75); err != nil {
		t.Fatal(err)
	}
	if len(sink.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(sink.Polygons))
	}
	p := sink.Polygons[0]
	if len(p.Holes) != 0 {
		t.Errorf("got %d holes, want 0", len(p.Holes))
	}
	want := []vec.Vec2{
		vec2(0.25, 1), vec2(0.75, 1), vec2(1, 0.75), vec2(1, 0.25), vec2(0.25, 1),
	}
	if !reflect.DeepEqual(p.Shell, want) {
		t.Errorf("got %v, want %v", p.Shell, want)
	}
	shell := ringOf(p.Shell...)
	if !shell.IsClockwise() {
		t.Error("shell must be clockwise")
	}
}

func TestFillSaddle(t *testing.T) {
	// Alternating corners force a saddle; the cell is split through
	// the centre value 0.5, so the band below it yields two polygons
	// around the low corners, which meet only at the cell centre.
	f := NewField(2, 2)
	f.SetZ(0, 0, 1)
	f.SetZ(1, 1, 1)

	c := NewContourer(f)
	var sink Collector
	if err := c.Fill(&sink, 0, 0.5); err != nil {
		t.Fatal(err)
	}
	if len(sink.Polygons) != 2 {
		t.Fatalf("got %d polygons, want 2", len(sink.Polygons))
	}
	for i, p := range sink.Polygons {
		shell := ringOf(p.Shell...)
		if !shell.Closed() || !shell.IsClockwise() {
			t.Errorf("polygon %d: shell not closed clockwise", i)
		}
		if len(p.Holes) != 0 {
			t.Errorf("polygon %d: got %d holes, want 0", i, len(p.Holes))
		}
	}
}

func TestFillSaddleBoundaryConsistency(t *testing.T) {
	// Two bands sharing the limit 0.5 must tile the saddle cell
	// exactly: the shared boundary is emitted once per band, in
	// opposite directions, and cancels when the two edge sets are
	// combined. The remainder is then the outline of the whole cell.
	f := NewField(2, 2)
	f.SetZ(0, 0, 1)
	f.SetZ(1, 1, 1)
	c := NewContourer(f)

	collect := func(lo, hi float64) *FlipSet {
		fs := NewFlipSet()
		fg, err := NewFlipGrid(2, 2, false)
		if err != nil {
			t.Fatal(err)
		}
		ip := c.interpolation()
		c1, c2, c3, c4, ok := c.cell(0, 0)
		if !ok {
			t.Fatal("cell rejected")
		}
		ip.FillRectangle(c1, c2, c3, c4, 0, 0, lo, hi, fs, fg)
		fg.Copy(f, fs)
		return fs
	}

	areaOf := func(fs *FlipSet) float64 {
		var sink Collector
		b := &Builder{}
		if err := b.Fill(fs.Finalize(), &sink); err != nil {
			t.Fatal(err)
		}
		total := 0.0
		for _, p := range sink.Polygons {
			total += ringOf(p.Shell...).SignedArea()
			for _, h := range p.Holes {
				total += ringOf(h...).SignedArea()
			}
		}
		return total
	}

	lowerArea := areaOf(collect(0, 0.5))
	upperArea := areaOf(collect(0.5, 1.5))
	if math.Abs(lowerArea+upperArea-1) > 1e-12 {
		t.Errorf("bands cover area %g, want 1", lowerArea+upperArea)
	}

	joint := collect(0, 0.5)
	for _, e := range collect(0.5, 1.5).Finalize() {
		joint.Flip(e)
	}
	if got := areaOf(joint); math.Abs(got-1) > 1e-12 {
		t.Errorf("combined bands cover area %g, want 1", got)
	}
}

func TestFillParaboloidDisk(t *testing.T) {
	c := NewContourer(paraboloidField(20, 20))
	var sink Collector
	if err := c.Fill(&sink, 0, 25); err != nil {
		t.Fatal(err)
	}
	if len(sink.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(sink.Polygons))
	}
	p := sink.Polygons[0]
	if len(p.Holes) != 0 {
		t.Errorf("disk should have no holes, got %d", len(p.Holes))
	}
	shell := ringOf(p.Shell...)
	if !shell.Closed() || !shell.IsClockwise() {
		t.Error("shell must be closed and clockwise")
	}
	// The disk of radius 5 has area near 25*pi.
	if a := shell.SignedArea(); a < 70 || a > 85 {
		t.Errorf("disk area = %g, expected around %g", a, 25*math.Pi)
	}
}

func TestFillParaboloidAnnulus(t *testing.T) {
	c := NewContourer(paraboloidField(20, 20))
	var sink Collector
	if err := c.Fill(&sink, 10, 50); err != nil {
		t.Fatal(err)
	}
	if len(sink.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(sink.Polygons))
	}
	p := sink.Polygons[0]
	if len(p.Holes) != 1 {
		t.Fatalf("annulus should have 1 hole, got %d", len(p.Holes))
	}
	shell := ringOf(p.Shell...)
	hole := ringOf(p.Holes[0]...)
	if !shell.Closed() || !shell.IsClockwise() {
		t.Error("shell must be closed and clockwise")
	}
	if !hole.Closed() || hole.IsClockwise() {
		t.Error("hole must be closed and counter-clockwise")
	}
	if -hole.SignedArea() >= shell.SignedArea() {
		t.Error("hole is larger than its shell")
	}
}

func TestFillWinding(t *testing.T) {
	// Every shell has nonnegative signed area, every hole negative.
	c := NewContourer(paraboloidField(30, 30))
	for _, band := range [][2]float64{{0, 10}, {10, 50}, {50, 120}, {3, 7}} {
		var sink Collector
		if err := c.Fill(&sink, band[0], band[1]); err != nil {
			t.Fatal(err)
		}
		for _, p := range sink.Polygons {
			if ringOf(p.Shell...).SignedArea() < 0 {
				t.Errorf("band %v: negative shell area", band)
			}
			for _, h := range p.Holes {
				if ringOf(h...).SignedArea() >= 0 {
					t.Errorf("band %v: nonnegative hole area", band)
				}
			}
		}
	}
}

func TestLineClosedLoop(t *testing.T) {
	// The isoline of a paraboloid is a closed loop. At every interior
	// vertex the in-degree matches the out-degree, so the assembled
	// polyline closes.
	c := NewContourer(paraboloidField(20, 20))
	var sink Collector
	if err := c.Line(&sink, 25); err != nil {
		t.Fatal(err)
	}
	if len(sink.Lines) != 1 {
		t.Fatalf("got %d linestrings, want 1", len(sink.Lines))
	}
	pts := sink.Lines[0]
	if pts[0] != pts[len(pts)-1] {
		t.Error("isoline of a closed ridge must close")
	}
}

func TestFillDeterminism(t *testing.T) {
	c := NewContourer(paraboloidField(25, 25))
	var a, b Collector
	if err := c.Fill(&a, 10, 50); err != nil {
		t.Fatal(err)
	}
	if err := c.Fill(&b, 10, 50); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two identical requests produced different output")
	}
}

func TestFillInteriorCancellation(t *testing.T) {
	// The edge list delivered to the builder never contains an edge
	// together with its reverse.
	f := paraboloidField(20, 20)
	c := NewContourer(f)

	fs := NewFlipSet()
	fg, err := NewFlipGrid(f.W, f.H, false)
	if err != nil {
		t.Fatal(err)
	}
	ip := c.interpolation()
	for j := 0; j < f.H-1; j++ {
		for i := 0; i < f.W-1; i++ {
			c1, c2, c3, c4, ok := c.cell(i, j)
			if !ok {
				t.Fatalf("cell (%d,%d) rejected", i, j)
			}
			ip.FillRectangle(c1, c2, c3, c4, i, j, 10, 50, fs, fg)
		}
	}
	fg.Copy(f, fs)

	edges := fs.Finalize()
	n := fs.Len()
	for _, e := range edges {
		fs.Flip(e.Reversed())
		if fs.Len() != n-1 {
			t.Fatalf("edge %v present together with its reverse", e)
		}
		n--
	}
}

func TestFillHintedMatchesFull(t *testing.T) {
	f := paraboloidField(30, 30)
	c := NewContourer(f)
	hints, err := NewValueHints(f, nil, 10)
	if err != nil {
		t.Fatal(err)
	}

	var full, hinted Collector
	if err := c.Fill(&full, 10, 50); err != nil {
		t.Fatal(err)
	}
	if err := c.FillHinted(&hinted, 10, 50, hints); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(full, hinted) {
		t.Error("hinted fill differs from full fill")
	}
}

func TestLineHintedMatchesFull(t *testing.T) {
	f := paraboloidField(30, 30)
	c := NewContourer(f)
	hints, err := NewValueHints(f, nil, 10)
	if err != nil {
		t.Fatal(err)
	}

	var full, hinted Collector
	if err := c.Line(&full, 25); err != nil {
		t.Fatal(err)
	}
	if err := c.LineHinted(&hinted, 25, hints); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(full, hinted) {
		t.Error("hinted line differs from full line")
	}
}

func TestFillMissingCorner(t *testing.T) {
	// One missing corner reduces the cell to a triangle; the request
	// still succeeds and produces clockwise geometry.
	f := paraboloidField(10, 10)
	f.SetZ(0, 0, math.NaN())

	c := NewContourer(f)
	c.Missing = NaNMissing
	var sink Collector
	if err := c.Fill(&sink, 0, 30); err != nil {
		t.Fatal(err)
	}
	for _, p := range sink.Polygons {
		if !ringOf(p.Shell...).IsClockwise() {
			t.Error("shell must be clockwise")
		}
	}
}

func TestFillInvalidCells(t *testing.T) {
	f := pulseField()
	c := NewContourer(allInvalid{f})
	var sink Collector
	if err := c.Fill(&sink, 0.25, 0.75); err != nil {
		t.Fatal(err)
	}
	if len(sink.Polygons) != 0 {
		t.Errorf("invalid cells produced %d polygons", len(sink.Polygons))
	}
}

// allInvalid marks every cell unusable.
type allInvalid struct {
	*Field
}

func (allInvalid) Valid(i, j int) bool { return false }

func TestFillDegenerateCoordinates(t *testing.T) {
	// A cell collapsed to a line fails the convexity check and is
	// skipped without disturbing the rest of the request.
	c := NewContourer(collapsedGrid{pulseField()})
	var sink Collector
	if err := c.Fill(&sink, 0.25, 0.75); err != nil {
		t.Fatal(err)
	}
	if len(sink.Polygons) != 0 {
		t.Errorf("degenerate cell produced %d polygons", len(sink.Polygons))
	}
}

// collapsedGrid projects every corner onto the x axis.
type collapsedGrid struct {
	*Field
}

func (g collapsedGrid) Y(i, j int) float64 { return 0 }

func TestFillWorldWrap(t *testing.T) {
	// A band touching both sides of the seam: columns 0 and 3 carry
	// high values, and the wrap cell between columns 3 and 4 (= 0)
	// lies entirely inside the band.
	f := NewField(4, 3)
	for j := 0; j < 3; j++ {
		f.SetZ(0, j, 1)
		f.SetZ(3, j, 1)
	}

	c := NewContourer(wrapField{f})
	c.Missing = NaNMissing
	c.WorldWrap = true
	var sink Collector
	if err := c.Fill(&sink, 0.5, math.NaN()); err != nil {
		t.Fatal(err)
	}
	if len(sink.Polygons) != 2 {
		t.Fatalf("got %d polygons, want 2", len(sink.Polygons))
	}

	// One polygon covers the wrap cell out to the continued
	// coordinate x = 4.
	maxX := 0.0
	for _, p := range sink.Polygons {
		for _, v := range p.Shell {
			maxX = max(maxX, v.X)
		}
	}
	if maxX != 4 {
		t.Errorf("wrap column not contoured: max x = %g, want 4", maxX)
	}
}

func TestFillUnboundedBand(t *testing.T) {
	// lo = -inf (missing) selects everything below hi.
	c := NewContourer(paraboloidField(10, 10))
	c.Missing = NaNMissing
	var sink Collector
	if err := c.Fill(&sink, math.NaN(), 10); err != nil {
		t.Fatal(err)
	}
	if len(sink.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(sink.Polygons))
	}
}

func TestLineAtPlateauMaximum(t *testing.T) {
	// z <= v counts as below, so an isoline at the field maximum has
	// no above corners anywhere and produces nothing. This prevents
	// double lines on flat plateaus.
	f := NewField(2, 2)
	f.SetZ(1, 1, 4)

	for _, ip := range []Interpolation{NewLinear(nil), NewLogLinear(nil)} {
		c := NewContourer(f)
		c.Interpolation = ip
		var sink Collector
		if err := c.Line(&sink, 4); err != nil {
			t.Fatal(err)
		}
		if len(sink.Lines) != 0 {
			t.Errorf("isoline at the maximum should be empty, got %d lines", len(sink.Lines))
		}
	}
}

func TestLogLinearCrossing(t *testing.T) {
	// log1p(3) = log 4, log1p(1) = log 2: the isoline v = 1 crosses
	// the edges exactly halfway between the z = 0 and z = 3 corners.
	f := NewField(2, 2)
	f.SetZ(1, 1, 3)

	c := NewContourer(f)
	c.Interpolation = NewLogLinear(nil)
	var sink Collector
	if err := c.Line(&sink, 1); err != nil {
		t.Fatal(err)
	}
	if len(sink.Lines) != 1 {
		t.Fatalf("got %d linestrings, want 1", len(sink.Lines))
	}
	want := []vec.Vec2{vec2(1, 0.5), vec2(0.5, 1)}
	if !reflect.DeepEqual(sink.Lines[0], want) {
		t.Errorf("got %v, want %v", sink.Lines[0], want)
	}
}

func TestNearestFill(t *testing.T) {
	// Nearest-neighbour assigns the quarter cell around the high
	// corner to the band.
	c := NewContourer(pulseField())
	c.Interpolation = NewNearest(nil)
	var sink Collector
	if err := c.Fill(&sink, 0.5, 1.5); err != nil {
		t.Fatal(err)
	}
	if len(sink.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(sink.Polygons))
	}
	shell := ringOf(sink.Polygons[0].Shell...)
	if a := shell.SignedArea(); a != 0.25 {
		t.Errorf("quadrant area = %g, want 0.25", a)
	}
}

func TestDiscreteFillCutsCorner(t *testing.T) {
	// With exactly two distinct values, one in a single corner, the
	// discrete strategy cuts the corner with a straight diagonal:
	// a triangle of half the quadrant area.
	c := NewContourer(pulseField())
	c.Interpolation = NewDiscrete(nil)
	var sink Collector
	if err := c.Fill(&sink, 0.5, 1.5); err != nil {
		t.Fatal(err)
	}
	if len(sink.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(sink.Polygons))
	}
	shell := ringOf(sink.Polygons[0].Shell...)
	if a := shell.SignedArea(); a != 0.125 {
		t.Errorf("cut corner area = %g, want 0.125", a)
	}
}

func BenchmarkFillAnnulus(b *testing.B) {
	c := NewContourer(paraboloidField(100, 100))
	var sink Collector
	b.ResetTimer()
	for b.Loop() {
		sink.Polygons = sink.Polygons[:0]
		if err := c.Fill(&sink, 100, 900); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFillHinted(b *testing.B) {
	f := paraboloidField(100, 100)
	c := NewContourer(f)
	hints, err := NewValueHints(f, nil, 10)
	if err != nil {
		b.Fatal(err)
	}
	var sink Collector
	b.ResetTimer()
	for b.Loop() {
		sink.Polygons = sink.Polygons[:0]
		if err := c.FillHinted(&sink, 100, 900, hints); err != nil {
			b.Fatal(err)
		}
	}
}
