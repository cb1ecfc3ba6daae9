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

import "errors"

var (
	// ErrEmptyGrid is returned when hints are built over a grid with
	// zero width or height.
	ErrEmptyGrid = errors.New("cannot contour an empty grid")

	// ErrGridTooSmall is returned when a FlipGrid is constructed for a
	// grid with fewer than two corner columns or rows.
	ErrGridTooSmall = errors.New("grid must be at least 2x2")

	// ErrInvalidExtension indicates that ring assembly attempted to
	// extend a polyline whose endpoint does not match. This is an
	// internal consistency failure, not a data error.
	ErrInvalidExtension = errors.New("polyline extension mismatch")
)
