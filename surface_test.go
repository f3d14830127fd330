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
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfsurface/pattern"
	"seehuhn.de/go/pdfsurface/pdf"
)

func TestSolidRectangle(t *testing.T) {
	s, buf := newTestSurface(t, 200, 100)

	red := pattern.Opaque(1, 0, 0)
	err := s.FillRectangles(red, []rect.Rect{{LLx: 10, LLy: 10, URx: 110, URy: 60}})
	if err != nil {
		t.Fatal(err)
	}
	content := s.streams[0]
	err = s.ShowPage()
	if err != nil {
		t.Fatal(err)
	}
	err = s.Finish()
	if err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	if !bytes.HasPrefix(data, []byte("%PDF-1.4\n")) {
		t.Error("missing PDF header")
	}

	pages := getObject(t, data, s.doc.pagesRef)
	for _, want := range []string{"/Type /Pages", "/Count 1", "/MediaBox [0 0 200 100]"} {
		if !strings.Contains(pages, want) {
			t.Errorf("Pages object %q does not contain %q", pages, want)
		}
	}

	got := streamData(t, data, content)
	want := "1 0 0 -1 0 100 cm\n1 0 0 rg\n10 10 100 50 re\nf\n1 0 0 -1 0 100 cm\n"
	if got != want {
		t.Errorf("content stream:\n%q\nwant\n%q", got, want)
	}

	pageRef := s.doc.pages.At(0)
	page := getObject(t, data, pageRef)
	wantContents := fmt.Sprintf("/Contents [%d 0 R]", content)
	if !strings.Contains(page, wantContents) {
		t.Errorf("page %q does not contain %q", page, wantContents)
	}
	if !strings.Contains(page, "/Resources <<\n>>") {
		t.Errorf("page %q: expected empty resources", page)
	}
}

func TestXRefOffsets(t *testing.T) {
	s, buf := newTestSurface(t, 100, 100)
	_ = s.FillPath(pattern.NewSolid(0, 0, 1, 0.5), rectPath(0, 0, 50, 50), FillNonZero)
	_ = s.ShowPage()
	_ = s.FillRectangles(pattern.Opaque(0, 1, 0), []rect.Rect{{URx: 1, URy: 1}})
	_ = s.ShowPage()
	err := s.Finish()
	if err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	offsets := parseXRef(t, data)
	if len(offsets) != s.doc.out.NumObjects() {
		t.Fatalf("xref has %d entries, want %d", len(offsets), s.doc.out.NumObjects())
	}
	for i, pos := range offsets {
		header := fmt.Sprintf("%d 0 obj\n", i+1)
		if !bytes.HasPrefix(data[pos:], []byte(header)) {
			t.Errorf("object %d: offset %d does not point to header", i+1, pos)
		}
	}
}

func TestStreamLengths(t *testing.T) {
	s, buf := newTestSurface(t, 100, 100)
	sub, err := s.CreateSimilar(10, 10)
	if err != nil {
		t.Fatal(err)
	}

	// Alternate between the surfaces, so that both use several streams.
	for i := range 3 {
		c := pattern.Opaque(float64(i)/3, 0, 0)
		_ = s.FillRectangles(c, []rect.Rect{{URx: 5, URy: 5}})
		_ = sub.FillRectangles(c, []rect.Rect{{URx: 2, URy: 2}})
	}
	_ = s.Composite(pattern.NewSurface(sub), nil)
	_ = s.ShowPage()
	_ = sub.Destroy()
	err = s.Finish()
	if err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	re := regexp.MustCompile(`(?s)(\d+) 0 obj\n<<[^<>]*?/Length (\d+) 0 R[^<>]*?>>\nstream\n`)
	matches := re.FindAllSubmatchIndex(data, -1)
	if len(matches) < 7 {
		t.Fatalf("found only %d streams", len(matches))
	}
	for _, m := range matches {
		start := m[1]
		end := bytes.Index(data[start:], []byte("\nendstream\n"))
		lengthRef, _ := strconv.Atoi(string(data[m[4]:m[5]]))
		lengthObj := getObject(t, data, pdf.Reference(lengthRef))
		if lengthObj != strconv.Itoa(end) {
			t.Errorf("stream %s: length object %q, actual length %d",
				data[m[2]:m[3]], lengthObj, end)
		}
	}
}

func TestFinishIdempotent(t *testing.T) {
	s, buf := newTestSurface(t, 100, 100)
	_ = s.FillRectangles(pattern.Opaque(0, 0, 0), []rect.Rect{{URx: 1, URy: 1}})
	_ = s.ShowPage()

	err := s.Finish()
	if err != nil {
		t.Fatal(err)
	}
	first := bytes.Clone(buf.Bytes())

	err = s.Finish()
	if err != nil {
		t.Fatal(err)
	}
	err = s.Destroy()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, buf.Bytes()) {
		t.Error("output changed after second Finish")
	}
	if !bytes.HasSuffix(first, []byte("%%EOF\n")) {
		t.Error("missing end-of-file marker")
	}

	err = s.FillRectangles(pattern.Opaque(0, 0, 0), nil)
	if !errors.Is(err, ErrFinished) {
		t.Errorf("drawing after Finish: got %v", err)
	}
	_, err = s.CreateSimilar(10, 10)
	if !errors.Is(err, ErrFinished) {
		t.Errorf("CreateSimilar after Finish: got %v", err)
	}
}

func TestReferenceCount(t *testing.T) {
	s, buf := newTestSurface(t, 100, 100)
	s.Reference()

	err := s.Destroy()
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(buf.Bytes(), []byte("%%EOF")) {
		t.Fatal("document finished while referenced")
	}

	err = s.Destroy()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte("%%EOF\n")) {
		t.Error("document not finished after last Destroy")
	}
}

func TestSimilarOutlivesOwner(t *testing.T) {
	s, buf := newTestSurface(t, 100, 100)
	sub, err := s.CreateSimilar(20, 20)
	if err != nil {
		t.Fatal(err)
	}

	err = s.Finish()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte("%%EOF\n")) {
		t.Fatal("owner did not complete the document")
	}
	n := buf.Len()

	err = sub.FillRectangles(pattern.Opaque(0, 0, 0), nil)
	if !errors.Is(err, ErrFinished) {
		t.Errorf("drawing on similar surface: got %v", err)
	}
	err = sub.Destroy()
	if err != nil {
		t.Error(err)
	}
	if buf.Len() != n {
		t.Error("output written after document was finished")
	}
	if s.doc.refCount != 0 {
		t.Errorf("document reference count %d", s.doc.refCount)
	}
}

func TestStreamNotOpen(t *testing.T) {
	s, _ := newTestSurface(t, 100, 100)
	defer s.Finish()

	_, err := contentWriter{s}.Write([]byte("0 0 m\n"))
	if !errors.Is(err, ErrStreamNotOpen) {
		t.Errorf("write without stream: got %v", err)
	}

	err = s.ensureStream()
	if err != nil {
		t.Fatal(err)
	}
	_, err = contentWriter{s}.Write([]byte("0 0 m\n"))
	if err != nil {
		t.Errorf("write with open stream: %v", err)
	}

	// another surface takes over the document's stream
	sub, err := s.CreateSimilar(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Destroy()
	err = sub.ensureStream()
	if err != nil {
		t.Fatal(err)
	}
	_, err = contentWriter{s}.Write([]byte("0 0 m\n"))
	if !errors.Is(err, ErrStreamNotOpen) {
		t.Errorf("write to stream of other surface: got %v", err)
	}
}

func TestCopyPage(t *testing.T) {
	s, buf := newTestSurface(t, 100, 100)
	_ = s.FillRectangles(pattern.Opaque(1, 0, 0), []rect.Rect{{URx: 10, URy: 10}})
	first := s.streams[0]

	err := s.CopyPage()
	if err != nil {
		t.Fatal(err)
	}
	_ = s.FillRectangles(pattern.Opaque(0, 1, 0), []rect.Rect{{URx: 20, URy: 20}})
	if len(s.streams) != 2 || s.streams[0] != first {
		t.Fatalf("streams after CopyPage: %v", s.streams)
	}
	second := s.streams[1]
	err = s.ShowPage()
	if err != nil {
		t.Fatal(err)
	}
	err = s.Finish()
	if err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	if s.doc.pages.Len() != 2 {
		t.Fatalf("got %d pages, want 2", s.doc.pages.Len())
	}
	page2 := getObject(t, data, s.doc.pages.At(1))
	want := fmt.Sprintf("/Contents [%d 0 R %d 0 R]", first, second)
	if !strings.Contains(page2, want) {
		t.Errorf("second page %q does not contain %q", page2, want)
	}

	// every stream flips the coordinate system and restores it at the end
	wantSecond := "1 0 0 -1 0 100 cm\n0 1 0 rg\n0 0 20 20 re\nf\n1 0 0 -1 0 100 cm\n"
	if got := streamData(t, data, second); got != wantSecond {
		t.Errorf("second stream:\n%q\nwant\n%q", got, wantSecond)
	}
}

func TestDPI(t *testing.T) {
	s, _ := newTestSurface(t, 100, 100)
	defer s.Finish()

	if x, y := s.DPI(); x != 300 || y != 300 {
		t.Errorf("default DPI = %g, %g", x, y)
	}
	s.SetDPI(72, 150)
	sub, err := s.CreateSimilar(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Destroy()
	if x, y := sub.DPI(); x != 72 || y != 150 {
		t.Errorf("DPI of similar surface = %g, %g", x, y)
	}

	ext := sub.Extents()
	if ext != (rect.Rect{URx: 10, URy: 10}) {
		t.Errorf("Extents() = %v", ext)
	}
}

func TestInfoDict(t *testing.T) {
	buf := &bytes.Buffer{}
	opt := quietOptions()
	opt.Title = "Grüße"
	opt.Author = "A. Author"
	s, err := NewForWriter(buf, 100, 100, opt)
	if err != nil {
		t.Fatal(err)
	}
	err = s.Finish()
	if err != nil {
		t.Fatal(err)
	}

	data := buf.String()
	for _, want := range []string{
		"/Producer (seehuhn.de/go/pdfsurface)",
		"/Creator (seehuhn.de/go/pdfsurface)",
		"/Author (A. Author)",
		"/Title <feff",
		"/Info ",
		"/Root ",
		"/Count 0",
	} {
		if !strings.Contains(data, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestMetadata(t *testing.T) {
	buf := &bytes.Buffer{}
	opt := quietOptions()
	opt.Title = "Metadata Test"
	opt.Metadata = true
	s, err := NewForWriter(buf, 100, 100, opt)
	if err != nil {
		t.Fatal(err)
	}
	err = s.Finish()
	if err != nil {
		t.Fatal(err)
	}

	m := regexp.MustCompile(`/Metadata (\d+) 0 R`).FindSubmatch(buf.Bytes())
	if m == nil {
		t.Fatal("catalog has no /Metadata entry")
	}
	ref, _ := strconv.Atoi(string(m[1]))
	obj := getObject(t, buf.Bytes(), pdf.Reference(ref))
	for _, want := range []string{"/Type /Metadata", "/Subtype /XML", "Metadata Test"} {
		if !strings.Contains(obj, want) {
			t.Errorf("metadata stream does not contain %q", want)
		}
	}
	if strings.Contains(obj, "/Filter") {
		t.Error("metadata stream is compressed")
	}
}

func TestFuncSink(t *testing.T) {
	var chunks int
	var out bytes.Buffer
	s, err := NewForFunc(func(p []byte) error {
		chunks++
		out.Write(p)
		return nil
	}, 50, 50, quietOptions())
	if err != nil {
		t.Fatal(err)
	}
	_ = s.FillRectangles(pattern.Opaque(0, 0, 0), []rect.Rect{{URx: 1, URy: 1}})
	_ = s.ShowPage()
	err = s.Destroy()
	if err != nil {
		t.Fatal(err)
	}
	if chunks == 0 || !bytes.HasSuffix(out.Bytes(), []byte("%%EOF\n")) {
		t.Error("incomplete output")
	}
}

func TestFuncSinkError(t *testing.T) {
	errTest := errors.New("test error")
	n := 0
	s, err := NewForFunc(func(p []byte) error {
		n++
		if n > 3 {
			return errTest
		}
		return nil
	}, 50, 50, quietOptions())
	if err != nil {
		t.Fatal(err)
	}
	for range 10 {
		_ = s.FillRectangles(pattern.Opaque(0, 0, 0), []rect.Rect{{URx: 1, URy: 1}})
		_ = s.ShowPage()
	}
	err = s.Finish()
	if !errors.Is(err, errTest) {
		t.Errorf("Finish: got %v, want %v", err, errTest)
	}
}
