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

import (
	"fmt"

	"seehuhn.de/go/pdfsurface/internal/float"
	"seehuhn.de/go/pdfsurface/pdf"
)

// SetFillColorRGB sets the fill color in the DeviceRGB color space.
// The components must be in the range [0, 1].
//
// This implements the PDF graphics operator "rg".
func (w *Writer) SetFillColorRGB(r, g, b float64) {
	if !w.isValid("SetFillColorRGB", objPage|objText) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content,
		float.Format(clamp(r), 3), float.Format(clamp(g), 3), float.Format(clamp(b), 3), "rg")
}

// SetFillPattern selects a pattern resource as the fill color.
//
// This implements the PDF graphics operators "cs" and "scn".
func (w *Writer) SetFillPattern(name pdf.Name) {
	if !w.isValid("SetFillPattern", objPage|objText) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, "/Pattern cs")
	w.writeName(name)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "", "scn")
}

func clamp(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
