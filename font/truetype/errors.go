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

package truetype

import "errors"

// MalformedFontError indicates that a font table could not be used.
type MalformedFontError struct {
	Table string
	Err   error
}

func (err *MalformedFontError) Error() string {
	return "malformed " + err.Table + " table: " + err.Err.Error()
}

func (err *MalformedFontError) Unwrap() error {
	return err.Err
}

var (
	// ErrNoGlyf is returned when a font without TrueType outlines is used.
	ErrNoGlyf = errors.New("font has no glyf outlines")

	// ErrTooManyGlyphs is returned when more glyphs are used from one
	// font than can be addressed with one-byte character codes.
	ErrTooManyGlyphs = errors.New("too many glyphs in font subset")

	// ErrNoMemory is returned when the subset font grows beyond the
	// size which can be described by 32-bit table offsets.
	ErrNoMemory = errors.New("subset font too large")

	errOutOfRange = errors.New("offset out of range")
	errTooShort   = errors.New("table too short")
	errMissing    = errors.New("table missing")
)
