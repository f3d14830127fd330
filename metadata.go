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

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfsurface/pdf"
)

// xmpPDF is the XMP namespace for PDF metadata.
type xmpPDF struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Producer xmp.AgentName
}

// writeMetadata writes an XMP metadata stream describing the document.
// The stream is not compressed, so that the metadata can be found by
// tools which do not understand PDF.
func (d *document) writeMetadata() (pdf.Reference, error) {
	dc := &xmp.DublinCore{}
	if d.opt.Title != "" {
		dc.Title.Set(language.MustParse("x-default"), d.opt.Title)
	}
	if d.opt.Author != "" {
		dc.Creator.Append(xmp.NewProperName(d.opt.Author))
	}
	if d.opt.Subject != "" {
		dc.Description.Set(language.MustParse("x-default"), d.opt.Subject)
	}

	basic := &xmp.Basic{
		CreateDate: xmp.NewDate(d.created),
		ModifyDate: xmp.NewDate(d.created),
	}
	pdfInfo := &xmpPDF{
		Producer: xmp.NewAgentName(Producer),
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfInfo)

	buf := &bytes.Buffer{}
	err := packet.Write(buf, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return 0, err
	}

	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	return d.out.WriteStream(dict, buf.Bytes())
}
