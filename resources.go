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
	"strconv"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/pdfsurface/pdf"
)

// resources lists the resources used by the content streams of a
// surface.  Every resource is listed at most once.
type resources struct {
	alphas   []int // indices into the document's alpha table
	fonts    []pdf.Reference
	patterns []pdf.Reference
	xobjects []pdf.Reference
}

func addUnique[T comparable](list []T, v T) []T {
	if slices.Index(list, v) >= 0 {
		return list
	}
	return append(list, v)
}

func (r *resources) addAlpha(idx int) {
	r.alphas = addUnique(r.alphas, idx)
}

func (r *resources) addFont(ref pdf.Reference) {
	r.fonts = addUnique(r.fonts, ref)
}

func (r *resources) addPattern(ref pdf.Reference) {
	r.patterns = addUnique(r.patterns, ref)
}

func (r *resources) addXObject(ref pdf.Reference) {
	r.xobjects = addUnique(r.xobjects, ref)
}

// merge adds all resources of other to r.  This is used when the
// content streams of one surface are painted into another surface.
func (r *resources) merge(other *resources) {
	for _, idx := range other.alphas {
		r.addAlpha(idx)
	}
	for _, ref := range other.fonts {
		r.addFont(ref)
	}
	for _, ref := range other.patterns {
		r.addPattern(ref)
	}
	for _, ref := range other.xobjects {
		r.addXObject(ref)
	}
}

func (r *resources) reset() {
	*r = resources{}
}

// Dict returns the resource dictionary.  Empty categories are omitted.
// The values of the alpha ExtGState entries are taken from alphaValues.
func (r *resources) Dict(alphaValues []float64) pdf.Dict {
	res := pdf.Dict{}
	if len(r.fonts) > 0 {
		res["Font"] = refDict(r.fonts)
	}
	if len(r.alphas) > 0 {
		gs := pdf.Dict{}
		for _, idx := range r.alphas {
			gs[alphaName(idx)] = pdf.Dict{
				"ca": pdf.Number(alphaValues[idx]),
			}
		}
		res["ExtGState"] = gs
	}
	if len(r.patterns) > 0 {
		res["Pattern"] = refDict(r.patterns)
	}
	if len(r.xobjects) > 0 {
		res["XObject"] = refDict(r.xobjects)
	}
	return res
}

func refDict(refs []pdf.Reference) pdf.Dict {
	res := make(pdf.Dict, len(refs))
	for _, ref := range refs {
		res[resName(ref)] = ref
	}
	return res
}

// resName returns the name under which an indirect object is listed in
// resource dictionaries.
func resName(ref pdf.Reference) pdf.Name {
	return pdf.Name("res" + strconv.FormatUint(uint64(ref), 10))
}

func alphaName(idx int) pdf.Name {
	return pdf.Name("a" + strconv.Itoa(idx))
}
