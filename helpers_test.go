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
	"fmt"
	"io"
	"regexp"
	"strconv"
	"testing"

	"github.com/sirupsen/logrus"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfsurface/pdf"
)

func quietOptions() *Options {
	log := logrus.New()
	log.Out = io.Discard
	return &Options{Logger: log}
}

func newTestSurface(t *testing.T, width, height float64) (*Surface, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	s, err := NewForWriter(buf, width, height, quietOptions())
	if err != nil {
		t.Fatal(err)
	}
	return s, buf
}

// parseXRef reads the cross-reference table of a complete file and
// returns the offsets of objects 1, 2, ...
func parseXRef(t *testing.T, data []byte) []int64 {
	t.Helper()

	m := regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`).FindSubmatch(data)
	if m == nil {
		t.Fatal("missing startxref")
	}
	xrefPos, _ := strconv.Atoi(string(m[1]))
	if !bytes.HasPrefix(data[xrefPos:], []byte("xref\n0 ")) {
		t.Fatal("startxref does not point to xref table")
	}
	body := data[xrefPos+len("xref\n0 "):]
	eol := bytes.IndexByte(body, '\n')
	n, err := strconv.Atoi(string(body[:eol]))
	if err != nil {
		t.Fatal(err)
	}
	body = body[eol+1:]

	var res []int64
	for i := 1; i < n; i++ {
		line := string(body[20*i : 20*(i+1)])
		pos, err := strconv.ParseInt(line[:10], 10, 64)
		if err != nil {
			t.Fatal(err)
		}
		res = append(res, pos)
	}
	return res
}

// getObject returns the text of an indirect object, between the "obj"
// and "endobj" keywords.
func getObject(t *testing.T, data []byte, ref pdf.Reference) string {
	t.Helper()

	offsets := parseXRef(t, data)
	idx := int(ref) - 1
	if idx < 0 || idx >= len(offsets) {
		t.Fatalf("object %d not found", ref)
	}
	body := data[offsets[idx]:]
	header := fmt.Sprintf("%d 0 obj\n", ref)
	if !bytes.HasPrefix(body, []byte(header)) {
		t.Fatalf("object %d: wrong header", ref)
	}
	body = body[len(header):]
	end := bytes.Index(body, []byte("\nendobj\n"))
	if end < 0 {
		t.Fatalf("object %d: missing endobj", ref)
	}
	return string(body[:end])
}

// streamData returns the data of a stream object.
func streamData(t *testing.T, data []byte, ref pdf.Reference) string {
	t.Helper()

	obj := getObject(t, data, ref)
	start := bytes.Index([]byte(obj), []byte("\nstream\n"))
	end := bytes.LastIndex([]byte(obj), []byte("\nendstream"))
	if start < 0 || end < start {
		t.Fatalf("object %d is not a stream", ref)
	}
	return obj[start+len("\nstream\n") : end]
}

func rectPath(x0, y0, x1, y1 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: x0, Y: y0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y1}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x0, Y: y1}}) &&
			yield(path.CmdClose, nil)
	}
}
