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

// Package truetype implements subsetting of TrueType fonts.
//
// A [Font] collects the glyphs used from a [Face].  Glyphs are numbered
// in order of first use, starting at 1; glyph 0 is always the fallback
// glyph of the face.  [Font.Generate] then builds a standalone SFNT file
// which contains only these glyphs, renumbered compactly.
package truetype

import (
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfsurface/internal/array"
)

// MaxGlyphs is the maximum number of glyphs (including the fallback glyph)
// which can be used from a single font.  Text is shown using one-byte
// character codes, which address the glyphs directly.
const MaxGlyphs = 256

// Font is a subset of a TrueType face.
type Font struct {
	face *Face

	glyphs []subsetGlyph
	index  map[glyph.ID]int

	widths     []uint16
	out        array.Bytes
	locaFormat int16
	glyfEnd    uint32

	checksumIndex int

	err error
}

type subsetGlyph struct {
	orig   glyph.ID
	offset uint32 // position inside the rebuilt glyf table
}

// NewFont starts a new subset of the given face.
// The face must have TrueType glyph outlines.
func NewFont(face *Face) (*Font, error) {
	if !face.IsGlyf() {
		return nil, ErrNoGlyf
	}
	f := &Font{
		face:   face,
		glyphs: []subsetGlyph{{orig: 0}},
		index:  map[glyph.ID]int{0: 0},
	}
	return f, nil
}

// Face returns the face this font is a subset of.
func (f *Font) Face() *Face {
	return f.face
}

// UseGlyph marks a glyph of the face as used and returns its index in
// the subset.  The first use of a glyph assigns the next free index;
// later uses return the same index.
func (f *Font) UseGlyph(gid glyph.ID) (int, error) {
	if idx, ok := f.index[gid]; ok {
		return idx, nil
	}
	if len(f.glyphs) >= MaxGlyphs {
		return 0, ErrTooManyGlyphs
	}
	return f.addGlyph(gid), nil
}

func (f *Font) addGlyph(gid glyph.ID) int {
	idx := len(f.glyphs)
	f.glyphs = append(f.glyphs, subsetGlyph{orig: gid})
	f.index[gid] = idx
	return idx
}

// NumGlyphs returns the number of glyphs in the subset, including the
// fallback glyph.
func (f *Font) NumGlyphs() int {
	return len(f.glyphs)
}

// Glyphs returns the original glyph IDs of the subset, in subset order.
func (f *Font) Glyphs() []glyph.ID {
	res := make([]glyph.ID, len(f.glyphs))
	for i, g := range f.glyphs {
		res[i] = g.orig
	}
	return res
}

// Widths returns the advance widths of the subset glyphs in font design
// units, indexed by subset glyph index.  The widths are only available
// after [Font.Generate] has been called.
func (f *Font) Widths() []uint16 {
	return f.widths
}

// Err returns the error which stopped the generation of the font subset,
// if any.
func (f *Font) Err() error {
	return f.err
}

func (f *Font) fail(table string, err error) {
	if f.err != nil {
		return
	}
	if err == ErrNoMemory {
		f.err = err
		return
	}
	f.err = &MalformedFontError{Table: table, Err: err}
}
