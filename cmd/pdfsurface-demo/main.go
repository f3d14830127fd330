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

// Pdfsurface-demo writes a one-page PDF file which shows the drawing
// operations of the pdfsurface package.
package main

import (
	"flag"
	"image"
	_ "image/png"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/term"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfsurface"
	"seehuhn.de/go/pdfsurface/font/truetype"
	"seehuhn.de/go/pdfsurface/pattern"
)

func main() {
	out := flag.String("o", "demo.pdf", "output file, or \"-\" for stdout")
	imgFile := flag.String("image", "", "PNG image to include")
	title := flag.String("title", "pdfsurface demo", "document title")
	verbose := flag.Bool("v", false, "show debug messages")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	opt := &pdfsurface.Options{
		Title:    *title,
		Creator:  "pdfsurface-demo",
		Metadata: true,
	}

	var s *pdfsurface.Surface
	var err error
	const width, height = 595, 842 // A4
	if *out == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			logrus.Fatal("not writing binary PDF data to a terminal")
		}
		s, err = pdfsurface.NewForWriter(os.Stdout, width, height, opt)
	} else {
		s, err = pdfsurface.Create(*out, width, height, opt)
	}
	if err != nil {
		logrus.Fatal(err)
	}

	var img *pattern.Image
	if *imgFile != "" {
		img, err = loadImage(*imgFile)
	} else {
		img = makeImage(64, 64)
	}
	if err != nil {
		logrus.Fatal(err)
	}

	err = draw(s, img)
	if err != nil {
		logrus.Fatal(err)
	}
	err = s.ShowPage()
	if err != nil {
		logrus.Fatal(err)
	}
	err = s.Destroy()
	if err != nil {
		logrus.Fatal(err)
	}
}

func draw(page pdfsurface.Backend, img *pattern.Image) error {
	err := page.FillRectangles(pattern.Opaque(0.95, 0.95, 0.9), []rect.Rect{page.Extents()})
	if err != nil {
		return err
	}

	// gradients
	band := pattern.NewLinear(50, 0, 545, 0,
		pattern.Stop{Offset: 0, Color: pattern.Opaque(0.1, 0.3, 0.8)},
		pattern.Stop{Offset: 1, Color: pattern.Opaque(0.9, 0.2, 0.1)})
	err = page.FillPath(band, box(50, 50, 545, 150), pdfsurface.FillNonZero)
	if err != nil {
		return err
	}
	glow := pattern.NewRadial(150, 300, 10, 150, 300, 100,
		pattern.Stop{Offset: 0, Color: pattern.Opaque(1, 1, 0.6)},
		pattern.Stop{Offset: 1, Color: pattern.Opaque(0.8, 0.4, 0)})
	err = page.FillPath(glow, circle(150, 300, 100), pdfsurface.FillNonZero)
	if err != nil {
		return err
	}

	// a tiled nested surface, clipped to a circle
	tile, err := page.CreateSimilar(20, 20)
	if err != nil {
		return err
	}
	defer tile.Destroy()
	err = tile.FillRectangles(pattern.Opaque(0.2, 0.6, 0.3), []rect.Rect{
		{LLx: 0, LLy: 0, URx: 10, URy: 10},
		{LLx: 10, LLy: 10, URx: 20, URy: 20},
	})
	if err != nil {
		return err
	}
	err = page.IntersectClipPath(circle(420, 300, 100), pdfsurface.FillNonZero)
	if err != nil {
		return err
	}
	err = page.FillPath(pattern.NewSurface(tile), box(300, 180, 545, 420), pdfsurface.FillNonZero)
	if err != nil {
		return err
	}
	err = page.ResetClip()
	if err != nil {
		return err
	}

	// an image, painted once and as a pattern
	w, h := img.Size()
	scale := 150 / math.Max(w, h)
	placed := pattern.NewSurface(img)
	placed.Matrix = matrix.Translate(-50, -450).Mul(matrix.Scale(1/scale, 1/scale))
	err = page.Composite(placed, nil)
	if err != nil {
		return err
	}
	err = page.FillPath(pattern.NewSurface(img), box(300, 450, 545, 600), pdfsurface.FillEvenOdd)
	if err != nil {
		return err
	}

	// a translucent star
	err = page.CompositeTrapezoids(pattern.NewSolid(0.5, 0, 0.5, 0.4), []pdfsurface.Trapezoid{
		{
			Top: 620, Bottom: 700,
			Left:  pdfsurface.Line{P1: vec.Vec2{X: 100, Y: 620}, P2: vec.Vec2{X: 60, Y: 700}},
			Right: pdfsurface.Line{P1: vec.Vec2{X: 100, Y: 620}, P2: vec.Vec2{X: 140, Y: 700}},
		},
	})
	if err != nil {
		return err
	}

	return showText(page, 200, 680, 24, "Hello, World!")
}

func showText(page pdfsurface.Backend, x, y, size float64, text string) error {
	face, err := truetype.NewFace(goregular.TTF)
	if err != nil {
		return err
	}
	q := size / float64(face.UnitsPerEm())

	var glyphs []pdfsurface.Glyph
	for _, r := range text {
		gid, err := face.GlyphIndex(r)
		if err != nil {
			return err
		}
		glyphs = append(glyphs, pdfsurface.Glyph{ID: gid, X: x, Y: y})
		adv, err := face.GlyphAdvance(gid)
		if err != nil {
			return err
		}
		x += adv * q
	}

	font := pdfsurface.NewScaledFont(face, size)
	return page.ShowGlyphs(font, pattern.NewSolid(0, 0, 0, 1), glyphs)
}

func box(x0, y0, x1, y1 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: x0, Y: y0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y1}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x0, Y: y1}}) &&
			yield(path.CmdClose, nil)
	}
}

// circle approximates a circle using four cubic Bézier segments.
func circle(cx, cy, r float64) path.Path {
	const k = 0.5522847498
	d := k * r
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: cx + r, Y: cy}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: cx + r, Y: cy + d}, {X: cx + d, Y: cy + r}, {X: cx, Y: cy + r}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: cx - d, Y: cy + r}, {X: cx - r, Y: cy + d}, {X: cx - r, Y: cy}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: cx - r, Y: cy - d}, {X: cx - d, Y: cy - r}, {X: cx, Y: cy - r}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: cx + d, Y: cy - r}, {X: cx + r, Y: cy - d}, {X: cx + r, Y: cy}}) &&
			yield(path.CmdClose, nil)
	}
}

func loadImage(fileName string) (*pattern.Image, error) {
	fd, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return decodeImage(fd)
}

func decodeImage(r io.Reader) (*pattern.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return pattern.FromImage(src), nil
}

// makeImage returns a color wheel with a transparent background.
func makeImage(width, height int) *pattern.Image {
	img := pattern.NewImage(width, height)
	cx, cy := float64(width)/2, float64(height)/2
	for y := range height {
		for x := range width {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if math.Hypot(dx, dy) > math.Min(cx, cy) {
				continue
			}
			angle := math.Atan2(dy, dx)
			r := byte(127.5 + 127.5*math.Cos(angle))
			g := byte(127.5 + 127.5*math.Cos(angle-2*math.Pi/3))
			b := byte(127.5 + 127.5*math.Cos(angle+2*math.Pi/3))
			img.Set(x, y, 0xFF000000|uint32(r)<<16|uint32(g)<<8|uint32(b))
		}
	}
	return img
}
