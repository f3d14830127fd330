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

// Package graphics writes PDF content stream operators.
//
// The [Writer] keeps track of which kind of graphics object is under
// construction (a path, a text object, ...) and rejects operators which
// are not allowed in the current state.  The first error is stored in
// [Writer.Err]; once set, all later operators are ignored.
package graphics

import (
	"fmt"
	"io"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfsurface/internal/float"
	"seehuhn.de/go/pdfsurface/pdf"
)

// Writer writes a PDF content stream.
type Writer struct {
	Content io.Writer
	Err     error

	currentObject objectType
	nesting       []pairType

	hasCurrentPoint bool
}

type pairType byte

const (
	pairTypeQ  pairType = iota + 1 // q ... Q
	pairTypeBT                     // BT ... ET
)

// NewWriter allocates a new Writer object.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		Content:       out,
		currentObject: objPage,
	}
}

// Nesting returns the number of open q ... Q and BT ... ET pairs.
func (w *Writer) Nesting() int {
	return len(w.nesting)
}

// isValid returns true, if the current graphics object is one of the given
// types and if w.Err is nil.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) writeName(name pdf.Name) {
	if w.Err != nil {
		return
	}
	w.Err = name.PDF(w.Content)
}

func coord(x float64) string {
	return float.Format(x, 3)
}

func coeff(x float64) string {
	return float.Format(x, 6)
}

func matrixArgs(m matrix.Matrix) []any {
	return []any{
		coeff(m[0]), coeff(m[1]),
		coeff(m[2]), coeff(m[3]),
		coord(m[4]), coord(m[5]),
	}
}

type objectType int

const (
	objPage objectType = 1 << iota
	objPath
	objText
	objClippingPath
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	case objClippingPath:
		return "clipping path"
	default:
		return fmt.Sprintf("objectType(%d)", s)
	}
}
