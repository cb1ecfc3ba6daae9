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

// MirrorGrid extends a field beyond its borders with mirror boundary
// conditions which preserve the trend in the data. In one dimension,
//
//	f(-i) = 2*f(0) - f(i)
//	f(w-1+i) = 2*f(w-1) - f(w-1-i)
//
// and the 2D case applies the formula first for i, then for j.
// The mirroring does not extend beyond one grid width.
type MirrorGrid struct {
	f *Field
}

// NewMirrorGrid wraps a field in mirror boundary conditions.
func NewMirrorGrid(f *Field) *MirrorGrid {
	return &MirrorGrid{f: f}
}

// Width returns the width of the underlying field.
func (m *MirrorGrid) Width() int { return m.f.W }

// Height returns the height of the underlying field.
func (m *MirrorGrid) Height() int { return m.f.H }

// At returns the (possibly reflected) value at (i, j). Valid index
// ranges are -W < i < 2W-1 and -H < j < 2H-1.
func (m *MirrorGrid) At(i, j int) float64 {
	f := m.f
	w, h := f.W, f.H

	column := func(i, j int) float64 {
		// reflection in j only
		switch {
		case j < 0:
			return 2*f.Z(i, 0) - f.Z(i, -j)
		case j >= h:
			return 2*f.Z(i, h-1) - f.Z(i, 2*h-j-2)
		default:
			return f.Z(i, j)
		}
	}

	switch {
	case i < 0:
		return 2*column(0, j) - column(-i, j)
	case i >= w:
		return 2*column(w-1, j) - column(2*w-i-2, j)
	default:
		return column(i, j)
	}
}

// SavitzkyGolay2D smooths a field with a two-dimensional
// Savitzky-Golay filter of the given window half-length (1..6) and
// polynomial degree (1..5), using mirror boundary conditions at the
// borders. Cells whose window sum is NaN keep their original value.
// Length or degree zero returns an unmodified copy; combinations with
// more polynomial terms than window samples do too.
func SavitzkyGolay2D(f *Field, length, degree int) *Field {
	if length <= 0 || degree <= 0 {
		return f.Clone()
	}
	length = min(length, 6)
	degree = min(degree, 5)

	weights, ok := sgWeights(length, degree)
	if !ok {
		return f.Clone()
	}

	out := f.Clone()
	mirror := NewMirrorGrid(f)
	n := 2*length + 1

	for j := 0; j < f.H; j++ {
		for i := 0; i < f.W; i++ {
			sum := 0.0
			k := 0
			for dj := 0; dj < n; dj++ {
				for di := 0; di < n; di++ {
					sum += weights[k] * mirror.At(i+di-length, j+dj-length)
					k++
				}
			}
			if !math.IsNaN(sum) {
				out.SetZ(i, j, sum)
			}
		}
	}
	return out
}

// sgWeights computes the convolution weights reproducing the value of
// the least-squares polynomial fit at the window centre. With design
// matrix A over the monomials x^p y^q (p+q <= degree), the weights are
// w = A (AᵀA)⁻¹ e₀, where e₀ selects the constant term.
func sgWeights(length, degree int) ([]float64, bool) {
	var terms [][2]int
	for total := 0; total <= degree; total++ {
		for p := total; p >= 0; p-- {
			terms = append(terms, [2]int{p, total - p})
		}
	}

	n := 2*length + 1
	samples := n * n
	if len(terms) > samples {
		return nil, false
	}

	a := make([][]float64, samples)
	row := 0
	for y := -length; y <= length; y++ {
		for x := -length; x <= length; x++ {
			r := make([]float64, len(terms))
			for t, pq := range terms {
				r[t] = powInt(float64(x), pq[0]) * powInt(float64(y), pq[1])
			}
			a[row] = r
			row++
		}
	}

	// Normal matrix AᵀA.
	t := len(terms)
	ata := make([][]float64, t)
	for i := range ata {
		ata[i] = make([]float64, t)
		for j := range ata[i] {
			sum := 0.0
			for k := 0; k < samples; k++ {
				sum += a[k][i] * a[k][j]
			}
			ata[i][j] = sum
		}
	}

	u, ok := solveUnit(ata)
	if !ok {
		return nil, false
	}

	w := make([]float64, samples)
	for k := 0; k < samples; k++ {
		sum := 0.0
		for i := 0; i < t; i++ {
			sum += a[k][i] * u[i]
		}
		w[k] = sum
	}
	return w, true
}

// solveUnit solves m x = e₀ by Gaussian elimination with partial
// pivoting. The matrix is modified in place.
func solveUnit(m [][]float64) ([]float64, bool) {
	t := len(m)
	x := make([]float64, t)
	x[0] = 1

	for col := 0; col < t; col++ {
		pivot := col
		for r := col + 1; r < t; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if m[pivot][col] == 0 {
			return nil, false
		}
		m[col], m[pivot] = m[pivot], m[col]
		x[col], x[pivot] = x[pivot], x[col]

		inv := 1 / m[col][col]
		for r := col + 1; r < t; r++ {
			factor := m[r][col] * inv
			if factor == 0 {
				continue
			}
			for cc := col; cc < t; cc++ {
				m[r][cc] -= factor * m[col][cc]
			}
			x[r] -= factor * x[col]
		}
	}

	for col := t - 1; col >= 0; col-- {
		sum := x[col]
		for cc := col + 1; cc < t; cc++ {
			sum -= m[col][cc] * x[cc]
		}
		x[col] = sum / m[col][col]
	}
	return x, true
}

func powInt(base float64, exp int) float64 {
	result := 1.0
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}
