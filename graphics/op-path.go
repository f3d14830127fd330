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

package graphics

import "fmt"

// This file implements the "Path construction operators", the
// "Path-painting operators" and the "Clipping path operators".

// MoveTo starts a new path at the given coordinates.
//
// This implements the PDF graphics operator "m".
func (w *Writer) MoveTo(x, y float64) {
	if !w.isValid("MoveTo", objPage|objPath) {
		return
	}
	w.currentObject = objPath
	w.hasCurrentPoint = true

	_, w.Err = fmt.Fprintln(w.Content, coord(x), coord(y), "m")
}

// LineTo appends a straight line segment to the current path.
// If the path has no current point, LineTo starts a new subpath instead.
//
// This implements the PDF graphics operator "l".
func (w *Writer) LineTo(x, y float64) {
	if !w.hasCurrentPoint || w.currentObject != objPath {
		w.MoveTo(x, y)
		return
	}
	if !w.isValid("LineTo", objPath) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, coord(x), coord(y), "l")
}

// CurveTo appends a cubic Bezier curve to the current path.
//
// This implements the PDF graphics operator "c".
func (w *Writer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !w.isValid("CurveTo", objPath) {
		return
	}
	if !w.hasCurrentPoint {
		w.Err = fmt.Errorf("CurveTo: no current point")
		return
	}

	_, w.Err = fmt.Fprintln(w.Content,
		coord(x1), coord(y1), coord(x2), coord(y2), coord(x3), coord(y3), "c")
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (w *Writer) ClosePath() {
	if !w.isValid("ClosePath", objPath) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, "h")
}

// Rectangle appends a rectangle to the current path as a closed subpath.
//
// This implements the PDF graphics operator "re".
func (w *Writer) Rectangle(x, y, width, height float64) {
	if !w.isValid("Rectangle", objPage|objPath) {
		return
	}
	w.currentObject = objPath
	w.hasCurrentPoint = true

	_, w.Err = fmt.Fprintln(w.Content, coord(x), coord(y), coord(width), coord(height), "re")
}

// Fill fills the current path, using the nonzero winding number rule.
// Any subpaths that are open are implicitly closed before being filled.
//
// This implements the PDF graphics operator "f".
func (w *Writer) Fill() {
	w.paint("Fill", "f")
}

// FillEvenOdd fills the current path, using the even-odd rule.  Any
// subpaths that are open are implicitly closed before being filled.
//
// This implements the PDF graphics operator "f*".
func (w *Writer) FillEvenOdd() {
	w.paint("FillEvenOdd", "f*")
}

// EndPath ends the path without filling and stroking it.
// This is used after the clipping operators.
//
// This implements the PDF graphics operator "n".
func (w *Writer) EndPath() {
	w.paint("EndPath", "n")
}

func (w *Writer) paint(cmd, op string) {
	if !w.isValid(cmd, objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage
	w.hasCurrentPoint = false

	_, w.Err = fmt.Fprintln(w.Content, op)
}

// ClipNonZero sets the current clipping path using the nonzero winding number
// rule.
//
// This implements the PDF graphics operator "W".
func (w *Writer) ClipNonZero() {
	if !w.isValid("ClipNonZero", objPath) {
		return
	}
	w.currentObject = objClippingPath

	_, w.Err = fmt.Fprintln(w.Content, "W")
}

// ClipEvenOdd sets the current clipping path using the even-odd rule.
//
// This implements the PDF graphics operator "W*".
func (w *Writer) ClipEvenOdd() {
	if !w.isValid("ClipEvenOdd", objPath) {
		return
	}
	w.currentObject = objClippingPath

	_, w.Err = fmt.Fprintln(w.Content, "W*")
}
