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

import "github.com/sirupsen/logrus"

// Producer is the value of the /Producer entry in the document
// information dictionary.
const Producer = "seehuhn.de/go/pdfsurface"

// Options allows to customize the generated PDF document.
// Fields left at their zero value are replaced by default values.
type Options struct {
	// DPI is the resolution used for fallback images.  The default is 300.
	DPI float64

	// Title, Author and Subject are stored in the document information
	// dictionary, if set.
	Title   string
	Author  string
	Subject string

	// Creator names the application which created the document.
	Creator string

	// Metadata enables an XMP metadata stream in addition to the
	// document information dictionary.
	Metadata bool

	// Logger receives diagnostic messages.  The default is the standard
	// logrus logger.
	Logger logrus.FieldLogger
}

const defaultDPI = 300

// mergeOptions returns a copy of opt with all unset fields replaced by
// their default values.  opt may be nil.
func mergeOptions(opt *Options) *Options {
	res := &Options{}
	if opt != nil {
		*res = *opt
	}
	if res.DPI <= 0 {
		res.DPI = defaultDPI
	}
	if res.Creator == "" {
		res.Creator = Producer
	}
	if res.Logger == nil {
		res.Logger = logrus.StandardLogger()
	}
	return res
}
