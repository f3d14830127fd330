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

package pattern

import (
	"image"

	"golang.org/x/image/draw"
)

// Image is a raster image in memory.
//
// Each pixel is stored as a packed 32-bit value 0xAARRGGBB.  Colors are
// not premultiplied by alpha.  The pixel at (x, y) is Pix[y*Stride+x],
// where y = 0 is the top row.
type Image struct {
	Width, Height int
	Stride        int
	Pix           []uint32
}

// NewImage allocates a transparent image of the given size.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Stride: width,
		Pix:    make([]uint32, width*height),
	}
}

// FromImage converts a Go image into an [Image].
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Rect, src, b.Min, draw.Src)
	}

	img := NewImage(b.Dx(), b.Dy())
	for y := 0; y < img.Height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < img.Width; x++ {
			p := row[4*x : 4*x+4]
			img.Pix[y*img.Stride+x] = uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
		}
	}
	return img
}

// Size implements the [Source] interface.
func (img *Image) Size() (width, height float64) {
	return float64(img.Width), float64(img.Height)
}

// At returns the packed pixel value at (x, y).
func (img *Image) At(x, y int) uint32 {
	return img.Pix[y*img.Stride+x]
}

// Set sets the packed pixel value at (x, y).
func (img *Image) Set(x, y int, argb uint32) {
	img.Pix[y*img.Stride+x] = argb
}

// RGB returns the color channels of the image, three bytes per pixel, in
// the sample order of the DeviceRGB color space.
func (img *Image) RGB() []byte {
	res := make([]byte, 0, 3*img.Width*img.Height)
	for y := 0; y < img.Height; y++ {
		for _, p := range img.Pix[y*img.Stride : y*img.Stride+img.Width] {
			res = append(res, byte(p>>16), byte(p>>8), byte(p))
		}
	}
	return res
}

// Alpha returns the alpha channel of the image, one byte per pixel.
// If the image is fully opaque, nil is returned.
func (img *Image) Alpha() []byte {
	opaque := true
	res := make([]byte, 0, img.Width*img.Height)
	for y := 0; y < img.Height; y++ {
		for _, p := range img.Pix[y*img.Stride : y*img.Stride+img.Width] {
			a := byte(p >> 24)
			if a != 0xFF {
				opaque = false
			}
			res = append(res, a)
		}
	}
	if opaque {
		return nil
	}
	return res
}
