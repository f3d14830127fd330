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

import (
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/pdfsurface/font/truetype"
	"seehuhn.de/go/pdfsurface/pdf"
)

// writeFonts embeds the font subsets used in the document.
//
// If a subset cannot be generated, the font is not embedded and the
// reserved object number is written as a null object.
func (d *document) writeFonts() error {
	for _, f := range d.fonts {
		data, err := f.sub.Generate()
		if err != nil {
			d.log.WithError(err).WithField("font", f.face.Metrics().PostScriptName).
				Warn("font subset not embedded")
			err = d.out.WriteIndirect(f.ref, nil)
			if err != nil {
				return err
			}
			continue
		}

		err = d.writeFont(f, data)
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *document) writeFont(f *pdfFont, data []byte) error {
	out := d.out
	m := f.face.Metrics()

	compressed, err := pdf.Compress(data)
	if err != nil {
		return err
	}
	fontFileDict := pdf.Dict{
		"Filter":  pdf.Name("FlateDecode"),
		"Length1": pdf.Integer(len(data)),
	}
	fontFileRef, err := out.WriteStream(fontFileDict, compressed)
	if err != nil {
		return err
	}

	fontName := pdf.Name(f.sub.Tag() + "+" + baseFontName(m))

	fd := pdf.Dict{
		"Type":     pdf.Name("FontDescriptor"),
		"FontName": fontName,
		"Flags":    pdf.Integer(makeFlags(m)),
		"FontBBox": pdf.Rectangle(
			math.Round(m.BBox[0]), math.Round(m.BBox[1]),
			math.Round(m.BBox[2]), math.Round(m.BBox[3])),
		"ItalicAngle": pdf.Number(math.Round(m.ItalicAngle*10) / 10),
		"Ascent":      pdf.Number(math.Round(m.Ascent)),
		"Descent":     pdf.Number(math.Round(m.Descent)),
		"CapHeight":   pdf.Number(math.Round(m.CapHeight)),
		"StemV":       pdf.Integer(80),
		"FontFile2":   fontFileRef,
	}
	fdRef, err := out.Write(fd)
	if err != nil {
		return err
	}

	q := 1000 / float64(f.face.UnitsPerEm())
	ww := f.sub.Widths()
	if len(ww) > truetype.MaxGlyphs {
		// glyphs added as components of composite glyphs are not shown
		// directly, and cannot be addressed by one-byte codes
		ww = ww[:truetype.MaxGlyphs]
	}
	widths := make(pdf.Array, len(ww))
	for i, w := range ww {
		widths[i] = pdf.Integer(math.Round(float64(w) * q))
	}

	fontDict := pdf.Dict{
		"Type":           pdf.Name("Font"),
		"Subtype":        pdf.Name("TrueType"),
		"BaseFont":       fontName,
		"FirstChar":      pdf.Integer(0),
		"LastChar":       pdf.Integer(len(ww) - 1),
		"Widths":         widths,
		"FontDescriptor": fdRef,
	}
	err = out.WriteIndirect(f.ref, fontDict)
	if err != nil {
		return err
	}

	d.log.WithFields(logrus.Fields{
		"font":   fontName,
		"glyphs": f.sub.NumGlyphs(),
		"size":   len(data),
	}).Debug("font subset embedded")
	return nil
}

// baseFontName returns the PostScript name of a font, for use in the
// /BaseFont and /FontName entries.
func baseFontName(m *truetype.Metrics) string {
	if m.PostScriptName != "" {
		return m.PostScriptName
	}
	name := strings.ReplaceAll(m.FamilyName, " ", "")
	if name == "" {
		name = "Font"
	}
	return name
}

// PDF font descriptor flags, see section 9.8.2 of PDF 32000-1:2008.
const (
	flagFixedPitch = 1 << 0
	flagSerif      = 1 << 1
	flagSymbolic   = 1 << 2
	flagScript     = 1 << 3
	flagItalic     = 1 << 6
)

// makeFlags returns the font descriptor flags for an embedded subset.
// Subsets use their own encoding, so the font is always marked as
// symbolic.
func makeFlags(m *truetype.Metrics) int {
	flags := flagSymbolic
	if m.IsFixedPitch {
		flags |= flagFixedPitch
	}
	if m.IsSerif {
		flags |= flagSerif
	}
	if m.IsScript {
		flags |= flagScript
	}
	if m.IsItalic {
		flags |= flagItalic
	}
	return flags
}
