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

// Package pdf implements the low-level parts of writing PDF files:
// the object model, a forward-only object writer, and the
// cross-reference table.
//
// Files are written in a single pass.  Object numbers are allocated
// densely, starting at 1, and the byte offset of each object is recorded
// when the object is written.  Streams get their /Length from a separate
// object which is written after the stream data.
//
// The package follows the PDF 1.4 file format, as described in section
// 3.4 of the PDF Reference, third edition.
package pdf
