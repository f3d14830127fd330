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

package graphics

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
)

func TestPathOperators(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	w.SetFillColorRGB(1, 0, 0)
	w.Rectangle(0, 0, 100, 50.5)
	w.Fill()
	w.LineTo(1, 2) // no current point
	w.LineTo(3, 4)
	w.CurveTo(5, 6, 7, 8, 9, 10)
	w.ClosePath()
	w.FillEvenOdd()
	if w.Err != nil {
		t.Fatal(w.Err)
	}

	want := "1 0 0 rg\n" +
		"0 0 100 50.5 re\n" +
		"f\n" +
		"1 2 m\n" +
		"3 4 l\n" +
		"5 6 7 8 9 10 c\n" +
		"h\n" +
		"f*\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Error(d)
	}
}

func TestClipAndState(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	w.Transform(matrix.Matrix{1, 0, 0, -1, 0, 842})
	w.PushGraphicsState()
	w.MoveTo(0, 0)
	w.LineTo(10, 0)
	w.LineTo(10, 10)
	w.ClosePath()
	w.ClipEvenOdd()
	w.EndPath()
	w.SetExtGState("a0")
	w.SetFillPattern("res12")
	w.DrawXObject("res7")
	if w.Nesting() != 1 {
		t.Errorf("Nesting() = %d, want 1", w.Nesting())
	}
	w.PopGraphicsState()
	if w.Err != nil {
		t.Fatal(w.Err)
	}

	want := "1 0 0 -1 0 842 cm\n" +
		"q\n" +
		"0 0 m\n10 0 l\n10 10 l\nh\n" +
		"W*\nn\n" +
		"/a0 gs\n" +
		"/Pattern cs\n/res12 scn\n" +
		"/res7 Do\n" +
		"Q\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Error(d)
	}
}

func TestText(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	w.TextStart()
	w.TextSetFont("res5", 1)
	w.TextSetMatrix(matrix.Matrix{12, 0, 0, -12, 72.25, 100})
	w.TextShowCode(1)
	w.TextShowCode(8)
	w.TextEnd()
	if w.Err != nil {
		t.Fatal(w.Err)
	}

	want := "BT\n/res5 1 Tf\n12 0 0 -12 72.25 100 Tm\n(\\001) Tj\n(\\010) Tj\nET\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Error(d)
	}
}

func TestInvalidState(t *testing.T) {
	cases := []struct {
		name string
		ops  func(w *Writer)
	}{
		{"curve without point", func(w *Writer) { w.CurveTo(1, 2, 3, 4, 5, 6) }},
		{"fill without path", func(w *Writer) { w.Fill() }},
		{"unbalanced Q", func(w *Writer) { w.PopGraphicsState() }},
		{"ET without BT", func(w *Writer) { w.TextEnd() }},
		{"Tj outside text", func(w *Writer) { w.TextShowCode(1) }},
		{"q inside path", func(w *Writer) { w.MoveTo(0, 0); w.PushGraphicsState() }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w := NewWriter(buf)
			c.ops(w)
			if w.Err == nil {
				t.Error("expected an error")
			}

			// once an error occurred, nothing more is written
			n := buf.Len()
			w.Rectangle(0, 0, 1, 1)
			if buf.Len() != n {
				t.Error("output after error")
			}
		})
	}
}
