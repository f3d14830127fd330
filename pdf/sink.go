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
	"io"
	"os"
)

// Sink is an append-only output stream which keeps track of the number of
// bytes written so far.
//
// The first write error is recorded.  All later writes are discarded and
// return the same error.  The error can be queried using [Sink.Err].
type Sink struct {
	w      io.Writer
	closer io.Closer
	pos    int64
	err    error
}

// NewSink returns a sink which writes to w.
// The writer w is not closed by [Sink.Close].
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// CreateSink creates the named file and returns a sink writing to it.
func CreateSink(name string) (*Sink, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return &Sink{w: fd, closer: fd}, nil
}

// NewFuncSink returns a sink which passes all data to the function write.
func NewFuncSink(write func(p []byte) error) *Sink {
	return &Sink{w: funcWriter(write)}
}

type funcWriter func(p []byte) error

func (f funcWriter) Write(p []byte) (int, error) {
	err := f(p)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

// Write implements the [io.Writer] interface.
func (s *Sink) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.pos += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	s.err = err
	return n, err
}

// Pos returns the number of bytes written so far.
func (s *Sink) Pos() int64 {
	return s.pos
}

// Err returns the first error which occurred while writing.
func (s *Sink) Err() error {
	return s.err
}

// Close closes the underlying file, if the sink was created by [CreateSink].
// Later writes fail with [ErrClosed].
func (s *Sink) Close() error {
	if errors.Is(s.err, ErrClosed) {
		return nil
	}
	err := s.err
	if s.closer != nil {
		cerr := s.closer.Close()
		if err == nil {
			err = cerr
		}
	}
	s.err = ErrClosed
	return err
}

// ErrClosed is returned when writing to a closed sink.
var ErrClosed = errors.New("write to closed sink")
