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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfsurface/pattern"
)

// FillRectangles fills axis-aligned rectangles with an opaque color.
// The alpha component of the color is ignored.
func (s *Surface) FillRectangles(c pattern.Color, rects []rect.Rect) error {
	err := s.ensureStream()
	if err != nil {
		return err
	}

	w := s.content
	w.SetFillColorRGB(c.R, c.G, c.B)
	if s.alpha != 1 {
		s.setAlpha(1)
	}
	for _, r := range rects {
		w.Rectangle(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
		w.Fill()
	}
	return w.Err
}

// FillPath fills the region enclosed by a path.
func (s *Surface) FillPath(p pattern.Pattern, outline path.Path, rule FillRule) error {
	err := s.emitPattern(p)
	if err != nil {
		return err
	}

	if !s.writePath(outline) {
		return s.content.Err
	}
	s.fill(rule)
	return s.content.Err
}

// CompositeTrapezoids fills a list of trapezoids.
func (s *Surface) CompositeTrapezoids(p pattern.Pattern, traps []Trapezoid) error {
	err := s.emitPattern(p)
	if err != nil {
		return err
	}
	if len(traps) == 0 {
		return nil
	}

	w := s.content
	for _, t := range traps {
		w.MoveTo(t.Left.XAt(t.Top), t.Top)
		w.LineTo(t.Left.XAt(t.Bottom), t.Bottom)
		w.LineTo(t.Right.XAt(t.Bottom), t.Bottom)
		w.LineTo(t.Right.XAt(t.Top), t.Top)
		w.ClosePath()
	}
	w.Fill()
	return w.Err
}

// Composite paints the source of a surface pattern, once, at the position
// given by the pattern matrix.  Masks are not supported.
func (s *Surface) Composite(src *pattern.Surface, mask pattern.Pattern) error {
	if err := s.check(); err != nil {
		return err
	}
	if mask != nil {
		return ErrUnsupported
	}

	switch source := src.Source.(type) {
	case *pattern.Image:
		return s.compositeImage(source, src.Matrix)
	case *Surface:
		return s.compositeSurface(source, src.Matrix)
	default:
		return ErrUnsupportedPattern
	}
}

func (s *Surface) compositeImage(img *pattern.Image, m matrix.Matrix) error {
	i2u, err := pattern.Invert(m)
	if err != nil {
		return err
	}
	ref, err := s.doc.writeImage(img)
	if err != nil {
		return err
	}
	s.res.addXObject(ref)

	err = s.ensureStream()
	if err != nil {
		return err
	}
	w := s.content
	if s.alpha != 1 {
		s.setAlpha(1)
	}
	w.PushGraphicsState()
	w.Transform(imageMatrix(img.Size()).Mul(i2u))
	w.DrawXObject(resName(ref))
	w.PopGraphicsState()
	return w.Err
}

// compositeSurface paints the content streams of another surface of the
// same document.  The resources of the source are added to the resources
// of s.
func (s *Surface) compositeSurface(src *Surface, m matrix.Matrix) error {
	if src.doc != s.doc || src == s {
		return ErrUnsupportedPattern
	}
	i2u, err := pattern.Invert(m)
	if err != nil {
		return err
	}

	err = s.ensureStream()
	if err != nil {
		return err
	}
	w := s.content
	if s.alpha != 1 {
		s.setAlpha(1)
	}
	// All streams of the source use the same form space, with the
	// y axis pointing up.
	cm := flip(src.height).Mul(i2u)
	for _, ref := range src.streams {
		w.PushGraphicsState()
		w.Transform(cm)
		w.DrawXObject(resName(ref))
		w.PopGraphicsState()
		s.res.addXObject(ref)
	}
	s.res.merge(&src.res)
	return w.Err
}

// ShowGlyphs draws glyphs of a TrueType font.  Each glyph is placed at its
// own position using a separate text matrix.
func (s *Surface) ShowGlyphs(font *ScaledFont, p pattern.Pattern, glyphs []Glyph) error {
	if err := s.check(); err != nil {
		return err
	}
	f, err := s.doc.getFont(font.Face)
	if err != nil {
		return err
	}

	codes := make([]byte, len(glyphs))
	for i, g := range glyphs {
		idx, err := f.sub.UseGlyph(g.ID)
		if err != nil {
			return err
		}
		codes[i] = byte(idx)
	}

	err = s.emitPattern(p)
	if err != nil {
		return err
	}
	if len(glyphs) == 0 {
		return nil
	}

	M := font.Matrix
	w := s.content
	w.TextStart()
	w.TextSetFont(resName(f.ref), 1)
	for i, g := range glyphs {
		w.TextSetMatrix(matrix.Matrix{M[0], M[1], -M[2], -M[3], g.X, g.Y})
		w.TextShowCode(codes[i])
	}
	w.TextEnd()
	s.res.addFont(f.ref)
	return w.Err
}

// IntersectClipPath restricts drawing to the inside of the given path.
// The clipping path stays in effect until [Surface.ResetClip] is called
// or the page is completed.
func (s *Surface) IntersectClipPath(outline path.Path, rule FillRule) error {
	err := s.ensureStream()
	if err != nil {
		return err
	}

	if !s.clipOpen {
		s.pushClip()
	}
	c := clipPath{outline: outline, rule: rule}
	s.writeClip(c)
	s.clips = append(s.clips, c)
	return s.content.Err
}

// ResetClip removes the clipping path.
func (s *Surface) ResetClip() error {
	if err := s.check(); err != nil {
		return err
	}
	s.clips = nil
	if !s.isCurrent() {
		return nil
	}
	s.popClip()
	return s.content.Err
}

type clipPath struct {
	outline path.Path
	rule    FillRule
}

func (s *Surface) writeClip(c clipPath) {
	w := s.content
	if !s.writePath(c.outline) {
		// clip to the empty set
		w.Rectangle(0, 0, 0, 0)
	}
	if c.rule == FillEvenOdd {
		w.ClipEvenOdd()
	} else {
		w.ClipNonZero()
	}
	w.EndPath()
}

func (s *Surface) fill(rule FillRule) {
	if rule == FillEvenOdd {
		s.content.FillEvenOdd()
	} else {
		s.content.Fill()
	}
}

// writePath appends the segments of a path to the content stream.
// Quadratic segments are converted to cubic Bézier curves.  A segment
// without a current point starts a new subpath at its first point, and a
// close without a current point is ignored.  The return value reports
// whether any segments were written.
func (s *Surface) writePath(outline path.Path) bool {
	w := s.content
	if outline == nil {
		return false
	}

	var x0, y0, sx, sy float64
	started := false
	moveTo := func(x, y float64) {
		x0, y0 = x, y
		sx, sy = x, y
		w.MoveTo(x, y)
		started = true
	}
	for cmd, pts := range outline {
		switch cmd {
		case path.CmdMoveTo:
			moveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			if !started {
				moveTo(pts[0].X, pts[0].Y)
				continue
			}
			x0, y0 = pts[0].X, pts[0].Y
			w.LineTo(x0, y0)
		case path.CmdQuadTo:
			if !started {
				moveTo(pts[0].X, pts[0].Y)
			}
			cx, cy := pts[0].X, pts[0].Y
			x3, y3 := pts[1].X, pts[1].Y
			w.CurveTo(
				x0+2*(cx-x0)/3, y0+2*(cy-y0)/3,
				x3+2*(cx-x3)/3, y3+2*(cy-y3)/3,
				x3, y3)
			x0, y0 = x3, y3
		case path.CmdCubeTo:
			if !started {
				moveTo(pts[0].X, pts[0].Y)
			}
			w.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			x0, y0 = pts[2].X, pts[2].Y
		case path.CmdClose:
			if !started {
				continue
			}
			w.ClosePath()
			x0, y0 = sx, sy
		}
	}
	return started
}
