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

package truetype

import "encoding/binary"

// checksum computes the SFNT table checksum of data.  If the length of
// data is not a multiple of four, the data is padded with zero bytes.
func checksum(data []byte) uint32 {
	var sum uint32
	n := len(data) &^ 3
	for pos := 0; pos < n; pos += 4 {
		sum += binary.BigEndian.Uint32(data[pos : pos+4])
	}
	if n < len(data) {
		var buf [4]byte
		copy(buf[:], data[n:])
		sum += binary.BigEndian.Uint32(buf[:])
	}
	return sum
}

func align4(n int) int {
	return (n + 3) &^ 3
}

func be16(data []byte, pos int) uint16 {
	return binary.BigEndian.Uint16(data[pos : pos+2])
}

func be32(data []byte, pos int) uint32 {
	return binary.BigEndian.Uint32(data[pos : pos+4])
}
