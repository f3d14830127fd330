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
	"time"

	"github.com/sirupsen/logrus"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfsurface/font/truetype"
	"seehuhn.de/go/pdfsurface/internal/array"
	"seehuhn.de/go/pdfsurface/pattern"
	"seehuhn.de/go/pdfsurface/pdf"
)

// document is the PDF file shared by all surfaces created from the same
// output.
type document struct {
	out *pdf.Writer
	opt *Options
	log logrus.FieldLogger

	width, height float64
	dpiX, dpiY    float64
	created       time.Time

	pagesRef pdf.Reference
	pages    array.Array[pdf.Reference]

	fonts  []*pdfFont
	alphas []float64

	images  map[*pattern.Image]pdf.Reference
	tilings map[tilingKey]pdf.Reference

	// owner is the surface which created the document.  Finishing this
	// surface completes the document.
	owner    *Surface
	refCount int

	finished bool
	err      error
}

// fontSubsetter collects the glyphs used from a font and builds the
// embedded font file.
type fontSubsetter interface {
	UseGlyph(gid glyph.ID) (int, error)
	NumGlyphs() int
	Generate() ([]byte, error)
	Widths() []uint16
	Tag() string
}

var _ fontSubsetter = (*truetype.Font)(nil)

// pdfFont is a font used in the document.  The object number of the font
// dictionary is reserved when the font is first used; the dictionary is
// written when the document is finished.
type pdfFont struct {
	ref  pdf.Reference
	face *truetype.Face
	sub  fontSubsetter
}

// tilingKey identifies an image tiling pattern.  The pattern matrix
// depends on the height of the surface which uses the pattern.
type tilingKey struct {
	img    *pattern.Image
	matrix matrix.Matrix
	height float64
}

func newDocument(sink *pdf.Sink, width, height float64, opt *Options) (*document, error) {
	opt = mergeOptions(opt)

	out, err := pdf.NewWriter(sink)
	if err != nil {
		return nil, err
	}

	doc := &document{
		out:      out,
		opt:      opt,
		log:      opt.Logger,
		width:    width,
		height:   height,
		dpiX:     opt.DPI,
		dpiY:     opt.DPI,
		created:  time.Now(),
		images:   make(map[*pattern.Image]pdf.Reference),
		tilings:  make(map[tilingKey]pdf.Reference),
		refCount: 1,
	}
	doc.pagesRef = out.Alloc()
	return doc, nil
}

func (d *document) reference() {
	d.refCount++
}

// destroy drops one reference to the document.  When the last reference
// is gone, the document is finished.
func (d *document) destroy() error {
	d.refCount--
	if d.refCount > 0 {
		return nil
	}
	return d.finish()
}

// getFont returns the font for the given face, creating it on first use.
func (d *document) getFont(face *truetype.Face) (*pdfFont, error) {
	for _, f := range d.fonts {
		if f.face == face {
			return f, nil
		}
	}

	sub, err := truetype.NewFont(face)
	if err != nil {
		return nil, err
	}
	f := &pdfFont{
		ref:  d.out.Alloc(),
		face: face,
		sub:  sub,
	}
	d.fonts = append(d.fonts, f)
	return f, nil
}

// addAlpha returns the index of the given opacity value in the alpha
// table, adding the value if needed.
func (d *document) addAlpha(alpha float64) int {
	for i, other := range d.alphas {
		if other == alpha {
			return i
		}
	}
	d.alphas = append(d.alphas, alpha)
	return len(d.alphas) - 1
}

// addPage writes a page object for the content streams of s.
func (d *document) addPage(s *Surface) error {
	if d.finished {
		return ErrFinished
	}

	err := s.ensureStream()
	if err != nil {
		return err
	}
	err = d.out.CloseStream()
	if err != nil {
		return err
	}
	if s.content.Err != nil {
		return s.content.Err
	}
	s.clips = nil

	contents := make(pdf.Array, len(s.streams))
	for i, ref := range s.streams {
		contents[i] = ref
	}
	page := pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Parent":    d.pagesRef,
		"Contents":  contents,
		"Resources": s.res.Dict(d.alphas),
	}
	ref, err := d.out.Write(page)
	if err != nil {
		return err
	}
	d.pages.Append(ref)
	return nil
}

// finish writes the remaining objects and the cross-reference table.
// Only the first call has an effect; later calls return the same result.
func (d *document) finish() error {
	if d.finished {
		return d.err
	}
	d.finished = true
	d.err = d.writeTrailer()
	if d.err == nil {
		d.log.WithFields(logrus.Fields{
			"pages":   d.pages.Len(),
			"objects": d.out.NumObjects(),
		}).Debug("PDF document finished")
	}
	return d.err
}

func (d *document) writeTrailer() error {
	out := d.out

	err := out.CloseStream()
	if err != nil {
		return err
	}

	kids := make(pdf.Array, 0, d.pages.Len())
	for _, ref := range d.pages.All() {
		kids = append(kids, ref)
	}
	pages := pdf.Dict{
		"Type":     pdf.Name("Pages"),
		"Kids":     kids,
		"Count":    pdf.Integer(d.pages.Len()),
		"MediaBox": pdf.Rectangle(0, 0, d.width, d.height),
	}
	err = out.WriteIndirect(d.pagesRef, pages)
	if err != nil {
		return err
	}

	err = d.writeFonts()
	if err != nil {
		return err
	}

	catalog := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": d.pagesRef,
	}
	if d.opt.Metadata {
		ref, err := d.writeMetadata()
		if err != nil {
			return err
		}
		catalog["Metadata"] = ref
	}

	infoRef, err := out.Write(d.infoDict())
	if err != nil {
		return err
	}
	catalogRef, err := out.Write(catalog)
	if err != nil {
		return err
	}

	return out.Close(catalogRef, infoRef)
}

func (d *document) infoDict() pdf.Dict {
	info := pdf.Dict{
		"Producer":     pdf.TextString(Producer),
		"Creator":      pdf.TextString(d.opt.Creator),
		"CreationDate": pdf.Date(d.created),
	}
	if d.opt.Title != "" {
		info["Title"] = pdf.TextString(d.opt.Title)
	}
	if d.opt.Author != "" {
		info["Author"] = pdf.TextString(d.opt.Author)
	}
	if d.opt.Subject != "" {
		info["Subject"] = pdf.TextString(d.opt.Subject)
	}
	return info
}
