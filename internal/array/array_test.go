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

package array

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArray(t *testing.T) {
	var a Array[int]
	if idx := a.Append(1, 2, 3); idx != 0 {
		t.Errorf("first index: got %d, want 0", idx)
	}
	if idx := a.Append(4); idx != 3 {
		t.Errorf("second index: got %d, want 3", idx)
	}
	a.Set(1, 20)
	if a.At(1) != 20 {
		t.Errorf("At(1) = %d, want 20", a.At(1))
	}

	a.Truncate(2)
	if d := cmp.Diff([]int{1, 20}, a.All()); d != "" {
		t.Error(d)
	}
	a.Truncate(5)
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}

func TestBytes(t *testing.T) {
	var b Bytes
	b.AppendUint16(0x0102)
	pos := b.Grow(4)
	b.AppendUint32(0x03040506)
	b.PutUint32(pos, 0xA0B0C0D0)
	b.Append(7)
	n := b.Align()

	want := []byte{1, 2, 0xA0, 0xB0, 0xC0, 0xD0, 3, 4, 5, 6, 7, 0}
	if d := cmp.Diff(want, b.Data()); d != "" {
		t.Error(d)
	}
	if n != 12 {
		t.Errorf("Align() = %d, want 12", n)
	}

	b.PutUint16(0, 0xFFFE)
	if b.Data()[0] != 0xFF || b.Data()[1] != 0xFE {
		t.Errorf("PutUint16 failed: % x", b.Data()[:2])
	}
}
