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

// Package pdfsurface implements a drawing surface which writes PDF files.
//
// A [Surface] receives drawing operations (filled paths, trapezoids,
// rectangles, images, gradients and text) and converts them into PDF
// content streams.  The output is written strictly sequentially, so
// that PDF files can be written to pipes and other non-seekable
// destinations.  Text is shown using TrueType fonts, which are embedded
// as subsets containing only the glyphs used.
//
// Several surfaces can share one PDF document: surfaces created by
// [Surface.CreateSimilar] write to the same file as their parent, and
// can be painted into other surfaces of the document as surface
// patterns.  The document is completed when the surface which created
// it is finished, or when the last surface referring to it is destroyed.
//
// Surfaces are not safe for concurrent use.
package pdfsurface
