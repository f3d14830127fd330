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
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfsurface/graphics"
	"seehuhn.de/go/pdfsurface/pattern"
	"seehuhn.de/go/pdfsurface/pdf"
)

// Surface is a drawing target which writes PDF content streams.
//
// The first surface of a document is created by [Create], [NewForWriter]
// or [NewForFunc]; further surfaces writing to the same document are
// created with [Surface.CreateSimilar].  Finishing the first surface
// completes the PDF file.
type Surface struct {
	doc           *document
	width, height float64

	// streams lists the content streams of the current page.
	streams []pdf.Reference
	current *pdf.Stream
	content *graphics.Writer
	res     resources

	// clips lists the clipping paths set since the last ResetClip.
	// They are replayed at the start of every content stream.
	clips []clipPath

	// clipOpen is set while the "q" for the clipping path is open in
	// the current stream.
	clipOpen bool

	// alpha is the opacity selected in the open content stream.  Every
	// stream starts and ends with opacity 1.  clipAlpha is the value
	// which is restored when the clipping path is removed.
	alpha, clipAlpha float64

	refCount int
	finished bool
}

// Create starts a new PDF file with the given page size in PDF points.
func Create(fileName string, width, height float64, opt *Options) (*Surface, error) {
	sink, err := pdf.CreateSink(fileName)
	if err != nil {
		return nil, err
	}
	return newForSink(sink, width, height, opt)
}

// NewForWriter returns a surface which writes a PDF file to w.
// The writer is not closed when the document is complete.
func NewForWriter(w io.Writer, width, height float64, opt *Options) (*Surface, error) {
	return newForSink(pdf.NewSink(w), width, height, opt)
}

// NewForFunc returns a surface which passes the bytes of the PDF file to
// the given function, in order.
func NewForFunc(write func([]byte) error, width, height float64, opt *Options) (*Surface, error) {
	return newForSink(pdf.NewFuncSink(write), width, height, opt)
}

func newForSink(sink *pdf.Sink, width, height float64, opt *Options) (*Surface, error) {
	doc, err := newDocument(sink, width, height, opt)
	if err != nil {
		sink.Close()
		return nil, err
	}

	s := newSurface(doc, width, height)
	doc.owner = s

	// The surface now holds its own reference.
	doc.destroy()

	return s, nil
}

func newSurface(doc *document, width, height float64) *Surface {
	doc.reference()
	s := &Surface{
		doc:      doc,
		width:    width,
		height:   height,
		refCount: 1,
	}
	s.content = graphics.NewWriter(contentWriter{s})
	return s
}

// Size returns the size of the surface in PDF points.
// This allows to use the surface as the source of a surface pattern.
func (s *Surface) Size() (width, height float64) {
	return s.width, s.height
}

// Extents returns the drawing area of the surface.
func (s *Surface) Extents() rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: s.width, URy: s.height}
}

// SetDPI sets the resolution used for raster fallback images.
// The value is shared by all surfaces of a document.
func (s *Surface) SetDPI(x, y float64) {
	s.doc.dpiX = x
	s.doc.dpiY = y
}

// DPI returns the resolution used for raster fallback images.
func (s *Surface) DPI() (x, y float64) {
	return s.doc.dpiX, s.doc.dpiY
}

// CreateSimilar returns a new surface which writes to the same document.
func (s *Surface) CreateSimilar(width, height float64) (*Surface, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return newSurface(s.doc, width, height), nil
}

// Reference increases the reference count of s.
func (s *Surface) Reference() *Surface {
	s.refCount++
	return s
}

// Destroy decreases the reference count of s.  When the count drops to
// zero, the surface is finished.
func (s *Surface) Destroy() error {
	s.refCount--
	if s.refCount > 0 {
		return nil
	}
	return s.Finish()
}

// Finish closes the content stream of the surface and releases the
// surface's reference to the document.  If s is the surface which
// created the document, the PDF file is completed.
//
// Only the first call has an effect.  Later drawing operations return
// [ErrFinished].
func (s *Surface) Finish() error {
	if s.finished {
		return nil
	}
	s.finished = true

	doc := s.doc
	var err error
	if s.isCurrent() {
		err = doc.out.CloseStream()
	}
	if doc.owner == s {
		err2 := doc.finish()
		if err == nil {
			err = err2
		}
	}
	err2 := doc.destroy()
	if err == nil {
		err = err2
	}
	return err
}

// ShowPage emits the content of the surface as a new page and starts an
// empty page.
func (s *Surface) ShowPage() error {
	if err := s.check(); err != nil {
		return err
	}
	err := s.doc.addPage(s)
	if err != nil {
		return err
	}

	s.streams = nil
	s.current = nil
	s.res.reset()
	s.content = graphics.NewWriter(contentWriter{s})
	return nil
}

// CopyPage emits the content of the surface as a new page.  The content
// is kept and later drawing is added on top of it.
func (s *Surface) CopyPage() error {
	if err := s.check(); err != nil {
		return err
	}
	return s.doc.addPage(s)
}

func (s *Surface) check() error {
	if s.finished || s.doc.finished {
		return ErrFinished
	}
	return nil
}

func (s *Surface) isCurrent() bool {
	return s.current != nil && s.doc.out.CurrentStream() == s.current
}

// ensureStream makes sure that the document's open stream is a content
// stream of s, starting a new one if needed.  Every stream begins with the
// transformation which flips the y axis, followed by the current clipping
// path.  When the stream is closed, the original coordinate system is
// restored, so that all streams of a surface share one form space.
func (s *Surface) ensureStream() error {
	if err := s.check(); err != nil {
		return err
	}
	if s.isCurrent() {
		return s.content.Err
	}

	dict := pdf.Dict{
		"Type":    pdf.Name("XObject"),
		"Subtype": pdf.Name("Form"),
		"BBox":    pdf.Rectangle(0, 0, s.width, s.height),
	}
	stm, err := s.doc.out.OpenStream(dict)
	if err != nil {
		return err
	}
	stm.OnClose = s.endStream
	s.current = stm
	s.streams = append(s.streams, stm.Ref)
	s.alpha = 1

	w := s.content
	w.Transform(flip(s.height))
	if len(s.clips) > 0 {
		s.pushClip()
		for _, c := range s.clips {
			s.writeClip(c)
		}
	}
	return w.Err
}

// endStream is called just before the content stream of s is closed.
func (s *Surface) endStream() error {
	w := s.content
	if w.Err != nil {
		// already reported by the failed operation
		s.clipOpen = false
		return nil
	}
	s.popClip()
	if s.alpha != 1 {
		s.setAlpha(1)
	}
	// flip is its own inverse
	w.Transform(flip(s.height))
	return w.Err
}

func (s *Surface) setAlpha(alpha float64) {
	idx := s.doc.addAlpha(alpha)
	s.res.addAlpha(idx)
	s.content.SetExtGState(alphaName(idx))
	s.alpha = alpha
}

func (s *Surface) pushClip() {
	s.content.PushGraphicsState()
	s.clipOpen = true
	s.clipAlpha = s.alpha
}

func (s *Surface) popClip() {
	if !s.clipOpen {
		return
	}
	s.content.PopGraphicsState()
	s.clipOpen = false
	s.alpha = s.clipAlpha
}

// flip maps user space, with the y axis pointing down, to PDF space for a
// surface of the given height.  The matrix is its own inverse.
func flip(height float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, -1, 0, height}
}

// contentWriter writes to the open content stream of a surface.
type contentWriter struct {
	s *Surface
}

func (w contentWriter) Write(p []byte) (int, error) {
	if !w.s.isCurrent() {
		return 0, ErrStreamNotOpen
	}
	return w.s.doc.out.Content().Write(p)
}

var _ pattern.Source = (*Surface)(nil)
