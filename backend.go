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

package pdfsurface

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfsurface/font/truetype"
	"seehuhn.de/go/pdfsurface/pattern"
)

// Backend is the set of drawing operations supported by a surface.
// All coordinates are in user space, with the origin in the top left
// corner and the y axis pointing down.
type Backend interface {
	pattern.Source

	// Extents returns the drawing area of the surface.
	Extents() rect.Rect

	// CreateSimilar creates a new surface which writes to the same
	// document.  The new surface can be painted into other surfaces of
	// the document using a surface pattern.
	CreateSimilar(width, height float64) (*Surface, error)

	FillRectangles(c pattern.Color, rects []rect.Rect) error
	FillPath(p pattern.Pattern, outline path.Path, rule FillRule) error
	CompositeTrapezoids(p pattern.Pattern, traps []Trapezoid) error
	Composite(src *pattern.Surface, mask pattern.Pattern) error
	ShowGlyphs(font *ScaledFont, p pattern.Pattern, glyphs []Glyph) error

	IntersectClipPath(outline path.Path, rule FillRule) error
	ResetClip() error

	CopyPage() error
	ShowPage() error
	Finish() error
}

var _ Backend = (*Surface)(nil)

// FillRule determines which points are inside a path.
type FillRule int

// These are the supported fill rules.
const (
	FillNonZero FillRule = iota
	FillEvenOdd
)

// Line is a straight line through two points.
type Line struct {
	P1, P2 vec.Vec2
}

// XAt returns the x coordinate of the point on the line with the given
// y coordinate.  For horizontal lines, P1.X is returned.
func (l Line) XAt(y float64) float64 {
	dy := l.P2.Y - l.P1.Y
	if dy == 0 {
		return l.P1.X
	}
	return l.P1.X + (y-l.P1.Y)*(l.P2.X-l.P1.X)/dy
}

// Trapezoid is the region between two lines, bounded by two horizontal
// lines at y = Top and y = Bottom.
type Trapezoid struct {
	Top, Bottom float64
	Left, Right Line
}

// ScaledFont is a font face at a given size and orientation.
type ScaledFont struct {
	Face *truetype.Face

	// Matrix maps glyph space, where one unit is the em size, to user
	// space.  Only the linear part is used.
	Matrix matrix.Matrix
}

// NewScaledFont returns a font of the given size, in user space units.
func NewScaledFont(face *truetype.Face, size float64) *ScaledFont {
	return &ScaledFont{
		Face:   face,
		Matrix: matrix.Scale(size, size),
	}
}

// Glyph is a glyph placed at a position in user space.
type Glyph struct {
	ID   glyph.ID
	X, Y float64
}
