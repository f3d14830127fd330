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

// Package pattern describes the paint used by drawing operations.
//
// A paint is either a solid color, a surface (an image or another
// drawing surface, repeated to fill the plane), or a linear or radial
// gradient.  Every non-solid pattern carries a matrix which maps user
// space to pattern space.
package pattern

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Pattern is one of [*Solid], [*Surface], [*Linear] or [*Radial].
type Pattern interface {
	isPattern()
}

// Color is a non-premultiplied RGBA color.
// All components are in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// Opaque returns an opaque color.
func Opaque(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Solid paints with a constant color.
type Solid struct {
	Color Color
}

// NewSolid returns a solid pattern.
func NewSolid(r, g, b, a float64) *Solid {
	return &Solid{Color: Color{R: r, G: g, B: b, A: a}}
}

func (*Solid) isPattern() {}

// Source is something which can be used as the source of a surface
// pattern.  This is either an [*Image] or a drawing surface.
type Source interface {
	Size() (width, height float64)
}

// Surface paints with the contents of a source.  The source is repeated
// to fill the plane.
type Surface struct {
	Source Source

	// Matrix maps user space to the coordinate system of the source.
	Matrix matrix.Matrix
}

// NewSurface returns a surface pattern with the identity matrix.
func NewSurface(src Source) *Surface {
	return &Surface{Source: src, Matrix: matrix.Identity}
}

func (*Surface) isPattern() {}

// Stop is a color stop of a gradient.
type Stop struct {
	Offset float64
	Color  Color
}

// Linear is an axial gradient between two points.
type Linear struct {
	P0, P1 vec.Vec2
	Stops  []Stop

	// Matrix maps user space to pattern space.
	Matrix matrix.Matrix
}

// NewLinear returns a linear gradient with the identity matrix.
func NewLinear(x0, y0, x1, y1 float64, stops ...Stop) *Linear {
	return &Linear{
		P0:     vec.Vec2{X: x0, Y: y0},
		P1:     vec.Vec2{X: x1, Y: y1},
		Stops:  stops,
		Matrix: matrix.Identity,
	}
}

func (*Linear) isPattern() {}

// Radial is a gradient between two circles.
type Radial struct {
	C0, C1 vec.Vec2
	R0, R1 float64
	Stops  []Stop

	// Matrix maps user space to pattern space.
	Matrix matrix.Matrix
}

// NewRadial returns a radial gradient with the identity matrix.
func NewRadial(cx0, cy0, r0, cx1, cy1, r1 float64, stops ...Stop) *Radial {
	return &Radial{
		C0:     vec.Vec2{X: cx0, Y: cy0},
		R0:     r0,
		C1:     vec.Vec2{X: cx1, Y: cy1},
		R1:     r1,
		Stops:  stops,
		Matrix: matrix.Identity,
	}
}

func (*Radial) isPattern() {}
