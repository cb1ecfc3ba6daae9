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
	"testing"
)

func TestMirrorGridInterior(t *testing.T) {
	f := NewField(3, 3)
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			f.SetZ(i, j, float64(10*i+j))
		}
	}
	m := NewMirrorGrid(f)
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			if m.At(i, j) != f.Z(i, j) {
				t.Errorf("At(%d,%d) = %g, want %g", i, j, m.At(i, j), f.Z(i, j))
			}
		}
	}
}

func TestMirrorGridEdges(t *testing.T) {
	f := NewField(3, 3)
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			f.SetZ(i, j, float64(10*i+j*j))
		}
	}
	m := NewMirrorGrid(f)

	// f(-i) = 2 f(0) - f(i) in each axis.
	if got, want := m.At(-1, 1), 2*f.Z(0, 1)-f.Z(1, 1); got != want {
		t.Errorf("At(-1,1) = %g, want %g", got, want)
	}
	if got, want := m.At(3, 1), 2*f.Z(2, 1)-f.Z(1, 1); got != want {
		t.Errorf("At(3,1) = %g, want %g", got, want)
	}
	if got, want := m.At(1, -2), 2*f.Z(1, 0)-f.Z(1, 2); got != want {
		t.Errorf("At(1,-2) = %g, want %g", got, want)
	}
	if got, want := m.At(1, 4), 2*f.Z(1, 2)-f.Z(1, 0); got != want {
		t.Errorf("At(1,4) = %g, want %g", got, want)
	}

	// Corners reflect in both axes.
	want := 2*(2*f.Z(0, 0)-f.Z(0, 1)) - (2*f.Z(1, 0) - f.Z(1, 1))
	if got := m.At(-1, -1); got != want {
		t.Errorf("At(-1,-1) = %g, want %g", got, want)
	}
}

func TestMirrorGridPreservesTrend(t *testing.T) {
	// A linear field continues linearly across the border.
	f := NewField(4, 4)
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			f.SetZ(i, j, float64(2*i+3*j))
		}
	}
	m := NewMirrorGrid(f)
	for j := -2; j < 6; j++ {
		for i := -2; i < 6; i++ {
			want := float64(2*i + 3*j)
			if got := m.At(i, j); got != want {
				t.Errorf("At(%d,%d) = %g, want %g", i, j, got, want)
			}
		}
	}
}

func TestSavitzkyGolayConstant(t *testing.T) {
	f := NewField(8, 8)
	for i := range f.Values {
		f.Values[i] = 5
	}
	out := SavitzkyGolay2D(f, 2, 2)
	for j := 0; j < 8; j++ {
		for i := 0; i < 8; i++ {
			if math.Abs(out.Z(i, j)-5) > 1e-9 {
				t.Fatalf("Z(%d,%d) = %g, want 5", i, j, out.Z(i, j))
			}
		}
	}
}

func TestSavitzkyGolayLinear(t *testing.T) {
	// The filter reproduces polynomials up to its degree exactly, and
	// the mirror boundary continues linear trends, so a ramp passes
	// through unchanged everywhere.
	f := NewField(10, 6)
	for j := 0; j < 6; j++ {
		for i := 0; i < 10; i++ {
			f.SetZ(i, j, float64(3*i-2*j))
		}
	}
	out := SavitzkyGolay2D(f, 2, 2)
	for j := 0; j < 6; j++ {
		for i := 0; i < 10; i++ {
			if math.Abs(out.Z(i, j)-f.Z(i, j)) > 1e-9 {
				t.Fatalf("Z(%d,%d) = %g, want %g", i, j, out.Z(i, j), f.Z(i, j))
			}
		}
	}
}

func TestSavitzkyGolayQuadraticInterior(t *testing.T) {
	f := NewField(12, 12)
	for j := 0; j < 12; j++ {
		for i := 0; i < 12; i++ {
			f.SetZ(i, j, float64(i*i+j))
		}
	}
	out := SavitzkyGolay2D(f, 2, 2)
	for j := 2; j < 10; j++ {
		for i := 2; i < 10; i++ {
			if math.Abs(out.Z(i, j)-f.Z(i, j)) > 1e-8 {
				t.Fatalf("Z(%d,%d) = %g, want %g", i, j, out.Z(i, j), f.Z(i, j))
			}
		}
	}
}

func TestSavitzkyGolaySmooths(t *testing.T) {
	// A single spike is spread out by the filter.
	f := NewField(9, 9)
	f.SetZ(4, 4, 100)
	out := SavitzkyGolay2D(f, 2, 2)
	if out.Z(4, 4) >= 100 {
		t.Errorf("spike not attenuated: %g", out.Z(4, 4))
	}
	if out.Z(3, 4) == 0 {
		t.Error("neighbour not affected")
	}
}

func TestSavitzkyGolayNaN(t *testing.T) {
	f := NewField(9, 9)
	for j := 0; j < 9; j++ {
		for i := 0; i < 9; i++ {
			f.SetZ(i, j, float64(i+j))
		}
	}
	f.SetZ(4, 4, math.NaN())

	out := SavitzkyGolay2D(f, 1, 1)
	if !math.IsNaN(out.Z(4, 4)) {
		t.Error("cell with NaN window should keep its value")
	}
	// Cells out of reach of the NaN are smoothed normally.
	if math.IsNaN(out.Z(0, 0)) {
		t.Error("far cell corrupted by NaN")
	}
}

func TestSavitzkyGolayNoOp(t *testing.T) {
	f := NewField(5, 5)
	f.SetZ(2, 2, 7)

	out := SavitzkyGolay2D(f, 0, 3)
	if out.Z(2, 2) != 7 {
		t.Error("length 0 must return the input unchanged")
	}
	out = SavitzkyGolay2D(f, 3, 0)
	if out.Z(2, 2) != 7 {
		t.Error("degree 0 must return the input unchanged")
	}
	// 3x3 window cannot support a degree-5 fit.
	out = SavitzkyGolay2D(f, 1, 5)
	if out.Z(2, 2) != 7 {
		t.Error("infeasible fit must return the input unchanged")
	}
}
