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

// flags used in composite glyph descriptions
const (
	argsAreWords       = 0x0001
	weHaveAScale       = 0x0008
	moreComponents     = 0x0020
	weHaveAnXAndYScale = 0x0040
	weHaveATwoByTwo    = 0x0080
)

// forEachComponent calls fn for every component of a composite glyph.
// The argument pos is the position of the component's glyph index
// inside data.  For simple glyphs and empty glyphs, fn is not called.
func forEachComponent(data []byte, fn func(pos int, gid uint16)) error {
	if len(data) < 10 {
		if len(data) == 0 {
			return nil
		}
		return errTooShort
	}
	numberOfContours := int16(be16(data, 0))
	if numberOfContours >= 0 {
		return nil
	}

	pos := 10
	for {
		if pos+4 > len(data) {
			return errTooShort
		}
		flags := be16(data, pos)
		fn(pos+2, be16(data, pos+2))
		pos += 4

		if flags&argsAreWords != 0 {
			pos += 4
		} else {
			pos += 2
		}
		switch {
		case flags&weHaveAScale != 0:
			pos += 2
		case flags&weHaveAnXAndYScale != 0:
			pos += 4
		case flags&weHaveATwoByTwo != 0:
			pos += 8
		}

		if flags&moreComponents == 0 {
			break
		}
	}
	if pos > len(data) {
		return errTooShort
	}
	return nil
}
