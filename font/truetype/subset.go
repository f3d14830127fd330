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
	"math/bits"
	"slices"

	"seehuhn.de/go/sfnt/glyph"
)

// tableOrder lists the tables of the subset font, in the order in which
// they are written.  The directory must be sorted by tag.
var tableOrder = []struct {
	tag   string
	write func(f *Font, src *sourceTables)
}{
	{"cmap", (*Font).writeCmap},
	{"cvt ", copyTable("cvt ")},
	{"fpgm", copyTable("fpgm")},
	{"glyf", (*Font).writeGlyf},
	{"head", (*Font).writeHead},
	{"hhea", (*Font).writeHhea},
	{"hmtx", (*Font).writeHmtx},
	{"loca", (*Font).writeLoca},
	{"maxp", (*Font).writeMaxp},
	{"name", copyTable("name")},
	{"prep", copyTable("prep")},
}

// Generate builds the subset font and returns the SFNT file.
//
// Before the tables are written, the components of composite glyphs are
// added to the subset; the indices of glyphs added by [Font.UseGlyph]
// are not changed by this.
//
// If a problem is found, the error is recorded on the font and all
// later calls return the same error.
func (f *Font) Generate() ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.out.Len() > 0 {
		return f.out.Data(), nil
	}

	src, err := f.loadTables()
	if err != nil {
		f.err = err
		return nil, err
	}

	f.addComponents(src)
	if f.err != nil {
		return nil, f.err
	}

	numTables := len(tableOrder)

	// offset subtable
	entrySelector := bits.Len(uint(numTables)) - 1
	searchRange := 1 << (entrySelector + 4)
	f.out.AppendUint32(0x00010000)
	f.out.AppendUint16(uint16(numTables))
	f.out.AppendUint16(uint16(searchRange))
	f.out.AppendUint16(uint16(entrySelector))
	f.out.AppendUint16(uint16(16*numTables - searchRange))

	// table directory, filled in below
	dirStart := f.out.Grow(16 * numTables)

	type extent struct{ start, end int }
	extents := make([]extent, numTables)
	for i, table := range tableOrder {
		start := f.out.Align()
		table.write(f, src)
		end := f.out.Len()
		if f.err != nil {
			break
		}
		if uint64(end) > math.MaxUint32 {
			f.err = ErrNoMemory
			break
		}
		extents[i] = extent{start, end}
	}
	if f.err != nil {
		f.out.Truncate(0)
		return nil, f.err
	}
	f.out.Align()

	data := f.out.Data()
	for i, table := range tableOrder {
		start, end := extents[i].start, extents[i].end
		pos := dirStart + 16*i
		f.out.PutUint32(pos, tagToUint32(table.tag))
		f.out.PutUint32(pos+4, checksum(data[start:align4(end)]))
		f.out.PutUint32(pos+8, uint32(start))
		f.out.PutUint32(pos+12, uint32(end-start))
	}

	f.out.PutUint32(f.checksumIndex, 0xB1B0AFBA-checksum(data))

	return f.out.Data(), nil
}

// sourceTables holds the tables of the original font.
type sourceTables struct {
	head, hhea, maxp []byte
	loca, glyf, hmtx []byte
	extra            map[string][]byte

	locaFormat  int16
	numGlyphs   int
	numHMetrics int
}

func (f *Font) loadTables() (*sourceTables, error) {
	src := &sourceTables{
		extra: make(map[string][]byte),
	}

	required := []struct {
		tag  string
		data *[]byte
		min  int
	}{
		{"head", &src.head, 54},
		{"hhea", &src.hhea, 36},
		{"maxp", &src.maxp, 6},
		{"loca", &src.loca, 0},
		{"glyf", &src.glyf, 0},
		{"hmtx", &src.hmtx, 4},
	}
	for _, table := range required {
		data, err := f.face.Table(table.tag)
		if err != nil {
			return nil, err
		}
		if data == nil {
			return nil, &MalformedFontError{Table: table.tag, Err: errMissing}
		}
		if len(data) < table.min {
			return nil, &MalformedFontError{Table: table.tag, Err: errTooShort}
		}
		*table.data = data
	}
	for _, tag := range []string{"cvt ", "fpgm", "name", "prep"} {
		data, err := f.face.Table(tag)
		if err != nil {
			return nil, err
		}
		src.extra[tag] = data
	}

	src.locaFormat = int16(be16(src.head, 50))
	src.numGlyphs = int(be16(src.maxp, 4))
	src.numHMetrics = int(be16(src.hhea, 34))
	if src.numHMetrics == 0 || 4*src.numHMetrics > len(src.hmtx) {
		return nil, &MalformedFontError{Table: "hhea", Err: errOutOfRange}
	}

	return src, nil
}

// glyphData returns the glyf table data for a glyph of the original font.
func (src *sourceTables) glyphData(gid int) ([]byte, error) {
	if gid >= src.numGlyphs {
		return nil, errOutOfRange
	}

	var start, end int
	if src.locaFormat == 0 {
		if 2*gid+4 > len(src.loca) {
			return nil, errOutOfRange
		}
		start = 2 * int(be16(src.loca, 2*gid))
		end = 2 * int(be16(src.loca, 2*gid+2))
	} else {
		if 4*gid+8 > len(src.loca) {
			return nil, errOutOfRange
		}
		start = int(be32(src.loca, 4*gid))
		end = int(be32(src.loca, 4*gid+4))
	}
	if start > end || end > len(src.glyf) {
		return nil, errOutOfRange
	}
	return src.glyf[start:end], nil
}

// addComponents adds the components of all composite glyphs in the subset.
// Components are appended at the end, so the loop also visits the
// components of newly added glyphs.
func (f *Font) addComponents(src *sourceTables) {
	for i := 0; i < len(f.glyphs); i++ {
		data, err := src.glyphData(int(f.glyphs[i].orig))
		if err != nil {
			f.fail("glyf", err)
			return
		}
		err = forEachComponent(data, func(_ int, gid uint16) {
			if _, seen := f.index[glyph.ID(gid)]; !seen {
				f.addGlyph(glyph.ID(gid))
			}
		})
		if err != nil {
			f.fail("glyf", err)
			return
		}
	}
}

// Tag returns a subset tag for the font, for use in PDF font names.
// The tag consists of six upper case letters and depends only on the
// glyphs in the subset.
func (f *Font) Tag() string {
	gg := f.Glyphs()
	slices.Sort(gg)

	// mix all the information into a single uint32
	X := uint32(f.face.Font.NumGlyphs())
	for _, g := range gg {
		// 11 is the largest integer smaller than `1<<32 / subsetModulus` which
		// is relatively prime to 26.
		X = (X*11 + uint32(g)) % subsetModulus
	}

	// convert to a string of six capital letters
	var buf [6]byte
	for i := range buf {
		buf[i] = 'A' + byte(X%26)
		X /= 26
	}
	return string(buf[:])
}

const subsetModulus = 26 * 26 * 26 * 26 * 26 * 26

func tagToUint32(tag string) uint32 {
	return uint32(tag[0])<<24 | uint32(tag[1])<<16 | uint32(tag[2])<<8 | uint32(tag[3])
}
