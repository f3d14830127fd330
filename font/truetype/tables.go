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

import (
	"math"

	"seehuhn.de/go/sfnt/glyph"
)

// copyTable returns a table writer which copies a table of the original
// font unchanged.  Missing tables are written with length zero.
func copyTable(tag string) func(f *Font, src *sourceTables) {
	return func(f *Font, src *sourceTables) {
		f.out.Append(src.extra[tag]...)
	}
}

// writeCmap writes a Macintosh format 6 subtable which maps each one-byte
// code to the glyph with the same index.
func (f *Font) writeCmap(src *sourceTables) {
	n := min(len(f.glyphs), MaxGlyphs)
	entryCount := n - 1

	f.out.AppendUint16(0)  // version
	f.out.AppendUint16(1)  // numTables
	f.out.AppendUint16(1)  // platformID
	f.out.AppendUint16(0)  // encodingID
	f.out.AppendUint32(12) // subtable offset

	f.out.AppendUint16(6) // format
	f.out.AppendUint16(uint16(10 + 2*entryCount))
	f.out.AppendUint16(0) // language
	f.out.AppendUint16(1) // firstCode
	f.out.AppendUint16(uint16(entryCount))
	for i := 1; i < n; i++ {
		f.out.AppendUint16(uint16(i))
	}
}

func (f *Font) writeGlyf(src *sourceTables) {
	start := f.out.Len()
	for i := range f.glyphs {
		pos := f.out.Align()
		f.glyphs[i].offset = uint32(pos - start)

		data, err := src.glyphData(int(f.glyphs[i].orig))
		if err != nil {
			f.fail("glyf", err)
			return
		}
		f.out.Append(data...)

		err = forEachComponent(data, func(cpos int, gid uint16) {
			f.out.PutUint16(pos+cpos, uint16(f.index[glyph.ID(gid)]))
		})
		if err != nil {
			f.fail("glyf", err)
			return
		}
	}
	end := f.out.Align() - start
	if uint64(end) > math.MaxUint32 {
		f.fail("glyf", ErrNoMemory)
		return
	}
	f.glyfEnd = uint32(end)

	f.locaFormat = 0
	if f.glyfEnd/2 > math.MaxUint16 {
		f.locaFormat = 1
	}
}

func (f *Font) writeHead(src *sourceTables) {
	start := f.out.Append(src.head...)
	f.checksumIndex = start + 8
	f.out.PutUint32(f.checksumIndex, 0)
	f.out.PutUint16(start+50, uint16(f.locaFormat))
}

func (f *Font) writeHhea(src *sourceTables) {
	start := f.out.Append(src.hhea...)
	f.out.PutUint16(start+34, uint16(len(f.glyphs)))
}

// writeHmtx writes one long horizontal metric for every glyph of the
// subset and records the advance widths.
func (f *Font) writeHmtx(src *sourceTables) {
	numH := src.numHMetrics
	f.widths = make([]uint16, len(f.glyphs))
	for i, g := range f.glyphs {
		gid := int(g.orig)
		var advance, lsb uint16
		if gid < numH {
			advance = be16(src.hmtx, 4*gid)
			lsb = be16(src.hmtx, 4*gid+2)
		} else {
			pos := 4*numH + 2*(gid-numH)
			if pos+2 > len(src.hmtx) {
				f.fail("hmtx", errOutOfRange)
				return
			}
			advance = be16(src.hmtx, 4*(numH-1))
			lsb = be16(src.hmtx, pos)
		}
		f.out.AppendUint16(advance)
		f.out.AppendUint16(lsb)
		f.widths[i] = advance
	}
}

func (f *Font) writeLoca(src *sourceTables) {
	if f.locaFormat == 0 {
		for _, g := range f.glyphs {
			f.out.AppendUint16(uint16(g.offset / 2))
		}
		f.out.AppendUint16(uint16(f.glyfEnd / 2))
	} else {
		for _, g := range f.glyphs {
			f.out.AppendUint32(g.offset)
		}
		f.out.AppendUint32(f.glyfEnd)
	}
}

func (f *Font) writeMaxp(src *sourceTables) {
	start := f.out.Append(src.maxp...)
	f.out.PutUint16(start+4, uint16(len(f.glyphs)))
}
