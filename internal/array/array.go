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

// Package array implements a growable, indexed buffer.
//
// [Array] is used for typed element tables (object offsets, pages,
// resource lists).  [Bytes] specialises the buffer for big-endian binary
// assembly, where values are appended and later patched in place.
package array

import "encoding/binary"

// Array is a growable sequence of elements, addressed by index.
// The zero value is an empty array ready to use.
type Array[T any] struct {
	elems []T
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.elems)
}

// Append adds elements at the end and returns the index of the first
// new element.
func (a *Array[T]) Append(v ...T) int {
	idx := len(a.elems)
	a.elems = append(a.elems, v...)
	return idx
}

// At returns the element at index i.
func (a *Array[T]) At(i int) T {
	return a.elems[i]
}

// Set replaces the element at index i.
func (a *Array[T]) Set(i int, v T) {
	a.elems[i] = v
}

// Truncate shortens the array to n elements.  The storage is kept for
// reuse.
func (a *Array[T]) Truncate(n int) {
	if n < len(a.elems) {
		clear(a.elems[n:])
		a.elems = a.elems[:n]
	}
}

// All returns the elements as a slice.  The slice aliases the array
// storage and is only valid until the next call to Append.
func (a *Array[T]) All() []T {
	return a.elems
}

// Bytes is a byte buffer for assembling binary data.
// All multi-byte values are written in big-endian order.
type Bytes struct {
	Array[byte]
}

// Data returns the assembled bytes.
func (b *Bytes) Data() []byte {
	return b.elems
}

// Grow appends n zero bytes and returns the index of the first one.
func (b *Bytes) Grow(n int) int {
	idx := len(b.elems)
	b.elems = append(b.elems, make([]byte, n)...)
	return idx
}

// AppendUint16 appends a big-endian 16-bit value.
func (b *Bytes) AppendUint16(v uint16) {
	b.elems = binary.BigEndian.AppendUint16(b.elems, v)
}

// AppendUint32 appends a big-endian 32-bit value.
func (b *Bytes) AppendUint32(v uint32) {
	b.elems = binary.BigEndian.AppendUint32(b.elems, v)
}

// PutUint16 overwrites two bytes at position i.
func (b *Bytes) PutUint16(i int, v uint16) {
	binary.BigEndian.PutUint16(b.elems[i:], v)
}

// PutUint32 overwrites four bytes at position i.
func (b *Bytes) PutUint32(i int, v uint32) {
	binary.BigEndian.PutUint32(b.elems[i:], v)
}

// Align pads the buffer with zero bytes to a multiple of four and returns
// the new length.
func (b *Bytes) Align() int {
	for len(b.elems)%4 != 0 {
		b.elems = append(b.elems, 0)
	}
	return len(b.elems)
}
