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
	"errors"
	"testing"
)

func flipAllSides(g *FlipGrid, i, j int) {
	g.FlipLeft(i, j)
	g.FlipRight(i, j)
	g.FlipTop(i, j)
	g.FlipBottom(i, j)
}

func TestFlipGridSingleCell(t *testing.T) {
	grid := NewField(10, 10)
	fg, err := NewFlipGrid(10, 10, false)
	if err != nil {
		t.Fatal(err)
	}
	flipAllSides(fg, 0, 0)

	fs := NewFlipSet()
	fg.Copy(grid, fs)

	got := fs.Finalize()
	want := []Edge{
		{0, 0, 0, 1},
		{0, 1, 1, 1},
		{1, 0, 0, 0},
		{1, 1, 1, 0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d edges, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("edge %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFlipGridAdjacentCells(t *testing.T) {
	// The side shared by the two cells must cancel, leaving the six
	// edges of the outer rectangle.
	grid := NewField(10, 10)
	fg, err := NewFlipGrid(10, 10, false)
	if err != nil {
		t.Fatal(err)
	}
	flipAllSides(fg, 0, 0)
	flipAllSides(fg, 1, 0)

	fs := NewFlipSet()
	fg.Copy(grid, fs)

	got := fs.Finalize()
	want := []Edge{
		{0, 0, 0, 1},
		{0, 1, 1, 1},
		{1, 0, 0, 0},
		{1, 1, 2, 1},
		{2, 0, 1, 0},
		{2, 1, 2, 0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d edges, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("edge %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFlipGridRoundTrip(t *testing.T) {
	// Flipping each side an even number of times reduces it to
	// absent; odd counts produce exactly one edge per side.
	grid := NewField(5, 5)
	fg, err := NewFlipGrid(5, 5, false)
	if err != nil {
		t.Fatal(err)
	}

	for n := 0; n < 4; n++ {
		fg.FlipTop(1, 1)
	}
	for n := 0; n < 3; n++ {
		fg.FlipLeft(2, 2)
	}
	if fg.Len() != 1 {
		t.Fatalf("Len = %d, want 1", fg.Len())
	}

	fs := NewFlipSet()
	fg.Copy(grid, fs)
	got := fs.Finalize()
	if len(got) != 1 {
		t.Fatalf("got %d edges, want 1", len(got))
	}
	if got[0] != (Edge{2, 2, 2, 3}) {
		t.Errorf("got %v, want left side of cell (2,2)", got[0])
	}
}

func TestFlipGridEmptyFastPath(t *testing.T) {
	grid := NewField(4, 4)
	fg, err := NewFlipGrid(4, 4, false)
	if err != nil {
		t.Fatal(err)
	}
	fg.FlipTop(0, 0)
	fg.FlipTop(0, 0)

	fs := NewFlipSet()
	fg.Copy(grid, fs)
	if fs.Len() != 0 {
		t.Errorf("cancelled grid produced %d edges", fs.Len())
	}
}

// wrapField is a world-wrap grid: column i == W maps back to column 0
// with the x coordinate continued past the seam.
type wrapField struct {
	*Field
}

func (w wrapField) Z(i, j int) float64 { return w.Field.Z(i%w.W, j) }

func (w wrapField) X(i, j int) float64 { return float64(i) }

func TestFlipGridWorldWrap(t *testing.T) {
	// The wrap cell column stores its sides separately: the seam
	// meridian appears once for cell W-1 and once for cell 0, and the
	// two must not cancel.
	grid := wrapField{NewField(4, 3)}
	fg, err := NewFlipGrid(4, 3, true)
	if err != nil {
		t.Fatal(err)
	}
	fg.FlipLeft(0, 0)  // meridian at x = 0
	fg.FlipRight(3, 0) // the same meridian, reached from the wrap cell

	fs := NewFlipSet()
	fg.Copy(grid, fs)
	got := fs.Finalize()
	if len(got) != 2 {
		t.Fatalf("seam sides cancelled: got %d edges, want 2", len(got))
	}
	want := []Edge{
		{0, 0, 0, 1}, // left of cell (0,0)
		{4, 1, 4, 0}, // right of wrap cell (3,0), at the continued x
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("edge %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFlipGridTooSmall(t *testing.T) {
	if _, err := NewFlipGrid(1, 5, false); !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("width 1: got %v, want ErrGridTooSmall", err)
	}
	if _, err := NewFlipGrid(5, 1, false); !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("height 1: got %v, want ErrGridTooSmall", err)
	}
}
