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

import "errors"

var (
	// ErrFinished is returned when drawing to a surface after
	// [Surface.Finish] has been called.
	ErrFinished = errors.New("surface is finished")

	// ErrStreamNotOpen is returned when content is written to a surface
	// whose content stream has been closed.
	ErrStreamNotOpen = errors.New("content stream of surface is not open")

	// ErrUnsupported is returned for operations which cannot be
	// expressed in PDF by this package.
	ErrUnsupported = errors.New("operation not supported for PDF surfaces")

	// ErrUnsupportedPattern is returned for patterns which cannot be
	// converted to PDF.  Currently this is the case for gradients with
	// a number of color stops other than two.
	ErrUnsupportedPattern = errors.New("unsupported pattern")
)
