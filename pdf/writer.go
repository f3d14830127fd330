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

package pdf

import (
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/pdfsurface/internal/array"
)

// Writer writes a PDF file, one object at a time.
//
// All output is appended to a [Sink]; the writer never seeks backwards.
// Values which are only known after the fact (stream lengths, object
// offsets) are written later as separate objects, or collected in the
// cross-reference table which is written by [Writer.Close].
type Writer struct {
	w *Sink

	// offsets[i] is the file offset of object i+1.  Allocated objects
	// hold a provisional offset until they are written.
	offsets array.Array[int64]

	current *Stream
	closed  bool
}

// NewWriter prepares a PDF file for writing.
// The PDF header is written immediately.
func NewWriter(w *Sink) (*Writer, error) {
	pdf := &Writer{
		w: w,
	}

	_, err := fmt.Fprintf(pdf.w, "%%PDF-1.4\n%%\x80\x80\x80\x80\n")
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// Alloc reserves the next object number.  The current output position is
// recorded provisionally; the offset is updated when the object is
// written.
func (pdf *Writer) Alloc() Reference {
	idx := pdf.offsets.Append(pdf.w.Pos())
	return Reference(idx + 1)
}

// NumObjects returns the number of objects allocated so far.
func (pdf *Writer) NumObjects() int {
	return pdf.offsets.Len()
}

// Pos returns the current output position.
func (pdf *Writer) Pos() int64 {
	return pdf.w.Pos()
}

// Offset returns the recorded offset of an object.
func (pdf *Writer) Offset(ref Reference) int64 {
	return pdf.offsets.At(int(ref) - 1)
}

func (pdf *Writer) update(ref Reference) error {
	if ref == 0 || int(ref) > pdf.offsets.Len() {
		return fmt.Errorf("invalid object number %d", ref)
	}
	pdf.offsets.Set(int(ref)-1, pdf.w.Pos())
	return nil
}

// WriteIndirect writes obj as the indirect object ref.
// A nil object is written as the null object.
//
// If a stream is open, it is closed first.
func (pdf *Writer) WriteIndirect(ref Reference, obj Object) error {
	if pdf.closed {
		return ErrWriterClosed
	}
	err := pdf.CloseStream()
	if err != nil {
		return err
	}

	err = pdf.update(ref)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(pdf.w, "%d 0 obj\n", uint32(ref))
	if err != nil {
		return err
	}
	if obj == nil {
		_, err = pdf.w.Write([]byte("null"))
	} else {
		err = obj.PDF(pdf.w)
	}
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("\nendobj\n"))
	return err
}

// Write allocates a new object number and writes obj.
func (pdf *Writer) Write(obj Object) (Reference, error) {
	ref := pdf.Alloc()
	err := pdf.WriteIndirect(ref, obj)
	if err != nil {
		return 0, err
	}
	return ref, nil
}

// Stream is a PDF stream whose data is currently being written.
type Stream struct {
	Ref Reference

	// OnClose, if set, is called by [Writer.CloseStream] while the stream
	// is still open.  It can append final data to the stream.
	OnClose func() error

	length Reference
	start  int64
}

// OpenStream starts a new stream object with the given dictionary.
// Any open stream is closed first.  The /Length entry of the dictionary
// is set to a reference to an object which is written by
// [Writer.CloseStream].
//
// The stream data is written using the writer returned by
// [Writer.Content].
func (pdf *Writer) OpenStream(dict Dict) (*Stream, error) {
	if pdf.closed {
		return nil, ErrWriterClosed
	}
	err := pdf.CloseStream()
	if err != nil {
		return nil, err
	}

	stm := &Stream{}
	stm.Ref = pdf.Alloc()
	stm.length = pdf.Alloc()

	header := Dict{}
	for key, val := range dict {
		header[key] = val
	}
	header["Length"] = stm.length

	err = pdf.update(stm.Ref)
	if err != nil {
		return nil, err
	}
	_, err = fmt.Fprintf(pdf.w, "%d 0 obj\n", uint32(stm.Ref))
	if err != nil {
		return nil, err
	}
	err = header.PDF(pdf.w)
	if err != nil {
		return nil, err
	}
	_, err = pdf.w.Write([]byte("\nstream\n"))
	if err != nil {
		return nil, err
	}
	stm.start = pdf.w.Pos()

	pdf.current = stm
	return stm, nil
}

// CurrentStream returns the open stream, or nil if no stream is open.
func (pdf *Writer) CurrentStream() *Stream {
	return pdf.current
}

// Content returns the writer for the data of the open stream.
func (pdf *Writer) Content() *Sink {
	return pdf.w
}

// CloseStream closes the open stream.  The stream length is written as a
// separate object, after the end of the stream.
// If no stream is open, CloseStream does nothing.
func (pdf *Writer) CloseStream() error {
	stm := pdf.current
	if stm == nil {
		return nil
	}
	if onClose := stm.OnClose; onClose != nil {
		stm.OnClose = nil
		err := onClose()
		if err != nil {
			pdf.current = nil
			return err
		}
	}
	pdf.current = nil

	length := pdf.w.Pos() - stm.start
	_, err := pdf.w.Write([]byte("\nendstream\nendobj\n"))
	if err != nil {
		return err
	}

	err = pdf.update(stm.length)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(pdf.w, "%d 0 obj\n%d\nendobj\n", uint32(stm.length), length)
	return err
}

// WriteStream writes a complete stream object whose data is known in
// advance.  The length is stored directly in the stream dictionary.
func (pdf *Writer) WriteStream(dict Dict, data []byte) (Reference, error) {
	header := Dict{}
	for key, val := range dict {
		header[key] = val
	}
	header["Length"] = Integer(len(data))

	ref := pdf.Alloc()
	err := pdf.WriteIndirect(ref, streamObject{header, data})
	if err != nil {
		return 0, err
	}
	return ref, nil
}

type streamObject struct {
	dict Dict
	data []byte
}

func (x streamObject) PDF(w io.Writer) error {
	err := x.dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nstream\n")
	if err != nil {
		return err
	}
	_, err = w.Write(x.data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nendstream")
	return err
}

// Close writes the cross-reference table and the file trailer, and
// closes the sink.
func (pdf *Writer) Close(catalog, info Reference) error {
	if pdf.closed {
		return nil
	}
	err := pdf.CloseStream()
	if err != nil {
		return err
	}
	if catalog == 0 {
		return errors.New("missing /Catalog")
	}
	pdf.closed = true

	trailer := Dict{
		"Size": Integer(pdf.offsets.Len() + 1),
		"Root": catalog,
	}
	if info != 0 {
		trailer["Info"] = info
	}

	xRefPos := pdf.w.Pos()
	err = pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	return pdf.w.Close()
}

func (pdf *Writer) writeXRefTable(trailer Dict) error {
	n := pdf.offsets.Len()
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", n+1)
	if err != nil {
		return err
	}
	// Each entry is exactly 20 bytes long, including the end-of-line marker.
	_, err = pdf.w.Write([]byte("0000000000 65535 f\r\n"))
	if err != nil {
		return err
	}
	for _, pos := range pdf.offsets.All() {
		_, err = fmt.Fprintf(pdf.w, "%010d 00000 n\r\n", pos)
		if err != nil {
			return err
		}
	}

	_, err = pdf.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	return trailer.PDF(pdf.w)
}

// ErrWriterClosed is returned when objects are written after the
// cross-reference table.
var ErrWriterClosed = errors.New("PDF writer is closed")
