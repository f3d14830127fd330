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
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfsurface/graphics"
	"seehuhn.de/go/pdfsurface/internal/float"
	"seehuhn.de/go/pdfsurface/pattern"
	"seehuhn.de/go/pdfsurface/pdf"
)

// emitPattern selects p as the fill color of the surface.
//
// Objects needed by the pattern are written before the content stream of
// s is (re-)opened, since writing an indirect object closes the open
// stream.
func (s *Surface) emitPattern(p pattern.Pattern) error {
	if err := s.check(); err != nil {
		return err
	}

	switch p := p.(type) {
	case *pattern.Solid:
		return s.emitSolid(p.Color)
	case *pattern.Surface:
		return s.emitSurfacePattern(p)
	case *pattern.Linear:
		return s.emitLinear(p)
	case *pattern.Radial:
		return s.emitRadial(p)
	default:
		return ErrUnsupportedPattern
	}
}

func (s *Surface) emitSolid(c pattern.Color) error {
	err := s.ensureStream()
	if err != nil {
		return err
	}
	s.content.SetFillColorRGB(c.R, c.G, c.B)
	s.setAlpha(c.A)
	return s.content.Err
}

// usePattern selects a pattern resource as the fill color, at full opacity.
func (s *Surface) usePattern(ref pdf.Reference) error {
	s.res.addPattern(ref)

	err := s.ensureStream()
	if err != nil {
		return err
	}
	s.content.SetFillPattern(resName(ref))
	s.setAlpha(1)
	return s.content.Err
}

func (s *Surface) emitSurfacePattern(p *pattern.Surface) error {
	var ref pdf.Reference
	var err error
	switch src := p.Source.(type) {
	case *pattern.Image:
		ref, err = s.doc.imageTiling(src, p.Matrix, s.height)
	case *Surface:
		ref, err = s.surfaceTiling(src, p.Matrix)
	default:
		return ErrUnsupportedPattern
	}
	if err != nil {
		return err
	}
	return s.usePattern(ref)
}

// imageTiling returns a tiling pattern which repeats img.  The pattern
// is used by surfaces of the given height.
func (d *document) imageTiling(img *pattern.Image, m matrix.Matrix, height float64) (pdf.Reference, error) {
	key := tilingKey{img: img, matrix: m, height: height}
	if ref, ok := d.tilings[key]; ok {
		return ref, nil
	}

	i2u, err := pattern.Invert(m)
	if err != nil {
		return 0, err
	}
	imgRef, err := d.writeImage(img)
	if err != nil {
		return 0, err
	}

	w, h := img.Size()
	dict := pdf.Dict{
		"Type":        pdf.Name("Pattern"),
		"PatternType": pdf.Integer(1),
		"PaintType":   pdf.Integer(1),
		"TilingType":  pdf.Integer(1),
		"BBox":        pdf.Rectangle(0, 0, w, h),
		"XStep":       pdf.Number(w),
		"YStep":       pdf.Number(h),
		"Matrix":      matrixArray(i2u.Mul(flip(height))),
		"Resources": pdf.Dict{
			"XObject": refDict([]pdf.Reference{imgRef}),
		},
	}
	stm, err := d.out.OpenStream(dict)
	if err != nil {
		return 0, err
	}
	cell := graphics.NewWriter(d.out.Content())
	cell.PushGraphicsState()
	cell.Transform(imageMatrix(w, h))
	cell.DrawXObject(resName(imgRef))
	cell.PopGraphicsState()
	if cell.Err != nil {
		return 0, cell.Err
	}
	err = d.out.CloseStream()
	if err != nil {
		return 0, err
	}

	d.tilings[key] = stm.Ref
	return stm.Ref, nil
}

// surfaceTiling returns a tiling pattern which repeats the content of
// another surface of the same document.  Since the source may still
// change, these patterns are not cached.
func (s *Surface) surfaceTiling(src *Surface, m matrix.Matrix) (pdf.Reference, error) {
	if src.doc != s.doc || src == s {
		return 0, ErrUnsupportedPattern
	}
	i2u, err := pattern.Invert(m)
	if err != nil {
		return 0, err
	}

	out := s.doc.out
	if src.isCurrent() {
		// completes the stream and its resources
		err = out.CloseStream()
		if err != nil {
			return 0, err
		}
	}

	// Pattern space is the form space of the source, with the y axis
	// pointing up.
	res := src.res.Dict(s.doc.alphas)
	xobj, _ := res["XObject"].(pdf.Dict)
	if xobj == nil {
		xobj = pdf.Dict{}
	}
	for _, ref := range src.streams {
		xobj[resName(ref)] = ref
	}
	if len(xobj) > 0 {
		res["XObject"] = xobj
	}

	w, h := src.width, src.height
	dict := pdf.Dict{
		"Type":        pdf.Name("Pattern"),
		"PatternType": pdf.Integer(1),
		"PaintType":   pdf.Integer(1),
		"TilingType":  pdf.Integer(1),
		"BBox":        pdf.Rectangle(0, 0, w, h),
		"XStep":       pdf.Number(w),
		"YStep":       pdf.Number(h),
		"Matrix":      matrixArray(flip(h).Mul(i2u).Mul(flip(s.height))),
		"Resources":   res,
	}
	stm, err := out.OpenStream(dict)
	if err != nil {
		return 0, err
	}
	cell := graphics.NewWriter(out.Content())
	for _, ref := range src.streams {
		cell.DrawXObject(resName(ref))
	}
	if cell.Err != nil {
		return 0, cell.Err
	}
	err = out.CloseStream()
	if err != nil {
		return 0, err
	}
	return stm.Ref, nil
}

// writeImage embeds an image as an Image XObject.  Every image is written
// only once per document.  Images with transparent pixels get a soft
// mask.
func (d *document) writeImage(img *pattern.Image) (pdf.Reference, error) {
	if ref, ok := d.images[img]; ok {
		return ref, nil
	}

	dict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(img.Width),
		"Height":           pdf.Integer(img.Height),
		"BitsPerComponent": pdf.Integer(8),
		"Filter":           pdf.Name("FlateDecode"),
	}

	if alpha := img.Alpha(); alpha != nil {
		data, err := pdf.Compress(alpha)
		if err != nil {
			return 0, err
		}
		maskDict := pdf.Dict{}
		for key, val := range dict {
			maskDict[key] = val
		}
		maskDict["ColorSpace"] = pdf.Name("DeviceGray")
		smask, err := d.out.WriteStream(maskDict, data)
		if err != nil {
			return 0, err
		}
		dict["SMask"] = smask
	}

	data, err := pdf.Compress(img.RGB())
	if err != nil {
		return 0, err
	}
	dict["ColorSpace"] = pdf.Name("DeviceRGB")
	ref, err := d.out.WriteStream(dict, data)
	if err != nil {
		return 0, err
	}

	d.images[img] = ref
	return ref, nil
}

// imageMatrix maps the unit square of an Image XObject to image space,
// where the y axis points down.
func imageMatrix(w, h float64) matrix.Matrix {
	return matrix.Matrix{w, 0, 0, -h, 0, h}
}

func (s *Surface) emitLinear(p *pattern.Linear) error {
	if len(p.Stops) != 2 {
		return ErrUnsupportedPattern
	}
	p2u, err := pattern.Invert(p.Matrix)
	if err != nil {
		return err
	}
	fn, err := s.doc.writeStops(p.Stops)
	if err != nil {
		return err
	}

	p0 := pattern.Apply(p2u, p.P0)
	p1 := pattern.Apply(p2u, p.P1)
	shading := pdf.Dict{
		"ShadingType": pdf.Integer(2),
		"ColorSpace":  pdf.Name("DeviceRGB"),
		"Coords":      numbers(p0.X, p0.Y, p1.X, p1.Y),
		"Function":    fn,
		"Extend":      pdf.Array{pdf.Bool(true), pdf.Bool(true)},
	}
	ref, err := s.writeShadingPattern(shading)
	if err != nil {
		return err
	}
	return s.usePattern(ref)
}

func (s *Surface) emitRadial(p *pattern.Radial) error {
	if len(p.Stops) != 2 {
		return ErrUnsupportedPattern
	}
	p2u, err := pattern.Invert(p.Matrix)
	if err != nil {
		return err
	}
	fn, err := s.doc.writeStops(p.Stops)
	if err != nil {
		return err
	}

	c0 := pattern.Apply(p2u, p.C0)
	c1 := pattern.Apply(p2u, p.C1)
	scale := pattern.ScaleFactor(p2u)
	shading := pdf.Dict{
		"ShadingType": pdf.Integer(3),
		"ColorSpace":  pdf.Name("DeviceRGB"),
		"Coords":      numbers(c0.X, c0.Y, p.R0*scale, c1.X, c1.Y, p.R1*scale),
		"Function":    fn,
		"Extend":      pdf.Array{pdf.Bool(true), pdf.Bool(true)},
	}
	ref, err := s.writeShadingPattern(shading)
	if err != nil {
		return err
	}
	return s.usePattern(ref)
}

// writeShadingPattern writes a shading pattern for the given shading
// dictionary.  The shading coordinates are in user space of s.
func (s *Surface) writeShadingPattern(shading pdf.Dict) (pdf.Reference, error) {
	dict := pdf.Dict{
		"Type":        pdf.Name("Pattern"),
		"PatternType": pdf.Integer(2),
		"Matrix":      matrixArray(flip(s.height)),
		"Shading":     shading,
	}
	return s.doc.out.Write(dict)
}

// writeStops writes a sampled function which interpolates between the
// colors of two gradient stops.
func (d *document) writeStops(stops []pattern.Stop) (pdf.Reference, error) {
	c0, c1 := stops[0].Color, stops[1].Color
	data := []byte{
		to255(c0.R), to255(c0.G), to255(c0.B),
		to255(c1.R), to255(c1.G), to255(c1.B),
	}
	dict := pdf.Dict{
		"FunctionType":  pdf.Integer(0),
		"Domain":        numbers(0, 1),
		"Size":          pdf.Array{pdf.Integer(2)},
		"BitsPerSample": pdf.Integer(8),
		"Range":         numbers(0, 1, 0, 1, 0, 1),
	}
	return d.out.WriteStream(dict, data)
}

func to255(x float64) byte {
	return byte(math.Round(math.Max(0, math.Min(1, x)) * 255))
}

func numbers(xx ...float64) pdf.Array {
	res := make(pdf.Array, len(xx))
	for i, x := range xx {
		res[i] = pdf.Number(float.Round(x, 6))
	}
	return res
}

func matrixArray(m matrix.Matrix) pdf.Array {
	return numbers(m[:]...)
}
