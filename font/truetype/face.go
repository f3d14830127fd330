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

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/image/font"
	xsfnt "golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/header"
)

// Face is a font face, loaded from an SFNT font file.
//
// The face gives access to the font metrics and to the raw bytes of the
// font tables.  Faces are compared by identity: two Face values loaded
// from the same data are different faces.
type Face struct {
	// Font holds the decoded font metrics.
	Font *sfnt.Font

	data   []byte
	toc    *header.Info
	lookup *xsfnt.Font
	buf    xsfnt.Buffer
}

// NewFace decodes the font data.
func NewFace(data []byte) (*Face, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}
	toc, err := header.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading font header: %w", err)
	}
	lookup, err := xsfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}

	return &Face{
		Font:   info,
		data:   data,
		toc:    toc,
		lookup: lookup,
	}, nil
}

// ReadFace reads a font file from disk.
func ReadFace(fileName string) (*Face, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return NewFace(data)
}

// HasTable reports whether the font contains the given table.
func (f *Face) HasTable(tag string) bool {
	_, ok := f.toc.Toc[tag]
	return ok
}

// Table returns the raw bytes of a font table.
// If the table is not present, nil is returned.
func (f *Face) Table(tag string) ([]byte, error) {
	if !f.HasTable(tag) {
		return nil, nil
	}
	data, err := f.toc.ReadTableBytes(bytes.NewReader(f.data), tag)
	if err != nil {
		return nil, &MalformedFontError{Table: tag, Err: err}
	}
	return data, nil
}

// IsGlyf reports whether the face has TrueType glyph outlines.
func (f *Face) IsGlyf() bool {
	return f.HasTable("glyf") && f.HasTable("loca")
}

// GlyphIndex returns the glyph used to display the rune r.
// If the font has no glyph for r, 0 is returned.
func (f *Face) GlyphIndex(r rune) (glyph.ID, error) {
	gid, err := f.lookup.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, err
	}
	return glyph.ID(gid), nil
}

// GlyphAdvance returns the advance width of a glyph in font design units.
func (f *Face) GlyphAdvance(gid glyph.ID) (float64, error) {
	ppem := fixed.Int26_6(f.Font.UnitsPerEm) << 6
	adv, err := f.lookup.GlyphAdvance(&f.buf, xsfnt.GlyphIndex(gid), ppem, font.HintingNone)
	if err != nil {
		return 0, err
	}
	return float64(adv) / 64, nil
}

// Metrics contains the font-wide metrics needed for a PDF font descriptor.
// All lengths are in PDF glyph space units (1/1000 of the font size).
type Metrics struct {
	FamilyName     string
	PostScriptName string

	BBox        [4]float64 // llx, lly, urx, ury
	Ascent      float64
	Descent     float64
	CapHeight   float64
	ItalicAngle float64

	IsFixedPitch bool
	IsSerif      bool
	IsScript     bool
	IsItalic     bool
}

// Metrics returns the font-wide metrics.
func (f *Face) Metrics() *Metrics {
	info := f.Font
	q := 1000 / float64(info.UnitsPerEm)
	bbox := info.FontBBoxPDF()

	return &Metrics{
		FamilyName:     info.FamilyName,
		PostScriptName: info.PostScriptName(),
		BBox:           [4]float64{bbox.LLx, bbox.LLy, bbox.URx, bbox.URy},
		Ascent:         float64(info.Ascent) * q,
		Descent:        float64(info.Descent) * q,
		CapHeight:      float64(info.CapHeight) * q,
		ItalicAngle:    info.ItalicAngle,
		IsFixedPitch:   info.IsFixedPitch(),
		IsSerif:        info.IsSerif,
		IsScript:       info.IsScript,
		IsItalic:       info.IsItalic,
	}
}

// UnitsPerEm returns the number of font design units per em.
func (f *Face) UnitsPerEm() uint16 {
	return f.Font.UnitsPerEm
}
