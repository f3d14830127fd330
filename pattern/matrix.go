// seehuhn.de/go/pdfsurface - a PDF backend for vector graphics surfaces
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package pattern

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Apply applies the transformation M to the point v.
//
// A vector (x, y, 1) is transformed by M = [a b c d e f] into
//
//	(x y 1) * M = (a*x+c*y+e, b*x+d*y+f, 1)
func Apply(M matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: v.X*M[0] + v.Y*M[2] + M[4],
		Y: v.X*M[1] + v.Y*M[3] + M[5],
	}
}

// Invert computes the inverse of the transformation matrix M.
func Invert(M matrix.Matrix) (matrix.Matrix, error) {
	det := M[0]*M[3] - M[1]*M[2]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return matrix.Matrix{}, ErrSingularMatrix
	}
	invDet := 1 / det
	return matrix.Matrix{
		M[3] * invDet, -M[1] * invDet,
		-M[2] * invDet, M[0] * invDet,
		(M[2]*M[5] - M[3]*M[4]) * invDet,
		(M[1]*M[4] - M[0]*M[5]) * invDet,
	}, nil
}

// ScaleFactor returns the factor by which M scales areas, in one
// dimension.  This is used to transform radii.
func ScaleFactor(M matrix.Matrix) float64 {
	return math.Sqrt(math.Abs(M[0]*M[3] - M[1]*M[2]))
}

// ErrSingularMatrix is returned when a pattern matrix cannot be inverted.
var ErrSingularMatrix = errors.New("singular pattern matrix")
