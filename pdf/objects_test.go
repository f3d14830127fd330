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
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Integer(-12), "-12"},
		{Real(1), "1."},
		{Real(0.25), "0.25"},
		{Number(842), "842"},
		{Number(0.5), "0.5"},
		{Name("Type"), "/Type"},
		{Name("A B"), "/A#20B"},
		{Name("x/y#"), "/x#2fy#23"},
		{String("hello"), "(hello)"},
		{String("a(b)c"), "(a(b)c)"},
		{String("a)b"), `(a\)b)`},
		{String(`back\slash`), `(back\\slash)`},
		{String{0, 1, 2, 3}, "<00010203>"},
		{Reference(7), "7 0 R"},
		{Array{Integer(1), nil, Name("N")}, "[1 null /N]"},
		{Dict{"B": Integer(2), "A": Integer(1), "C": nil}, "<<\n/A 1\n/B 2\n>>"},
		{Rectangle(0, 0, 595.5, 842), "[0 0 595.5 842]"},
	}
	for _, c := range cases {
		got := Format(c.in)
		if got != c.out {
			t.Errorf("Format(%#v) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestTextString(t *testing.T) {
	if d := cmp.Diff(String("plain text"), TextString("plain text")); d != "" {
		t.Error(d)
	}

	got := TextString("Größe")
	want := String{0xFE, 0xFF, 0, 'G', 0, 'r', 0, 0xF6, 0, 0xDF, 0, 'e'}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	d := Date(time.Date(2025, 6, 1, 12, 30, 0, 0, loc))
	if string(d) != "D:20250601123000+02'00" {
		t.Errorf("wrong date %q", d)
	}
}
