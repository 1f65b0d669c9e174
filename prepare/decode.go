// seehuhn.de/go/stringart - string art path generation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Package prepare turns images into darkness fields for the string art
// engine.
//
// Darkness is derived from the CIE L*a*b* lightness of each pixel.
// Transparent pixels and pixels outside the pin circle get no darkness.
// The darkest pixels are clipped so that a few black spots do not dominate
// the contrast, and the result can be histogram-equalised.
package prepare

import (
	"errors"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrEmptyImage is returned for images without pixels.
var ErrEmptyImage = errors.New("prepare: image has no pixels")

// Decode reads an image in any of the registered formats.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", errors.Join(errors.New("could not decode image"), err)
	}
	if img.Bounds().Empty() {
		return nil, "", ErrEmptyImage
	}
	return img, format, nil
}

// Open reads an image file.
func Open(fname string) (image.Image, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, errors.Join(errors.New("could not open image file"), err)
	}
	defer f.Close()

	img, _, err := Decode(f)
	return img, err
}

// Resize scales img to the given width, keeping the aspect ratio.
// A width of zero, or the image's own width, returns the image in an
// NRGBA copy.  The result always has its origin at (0, 0).
func Resize(img image.Image, width int) *image.NRGBA {
	b := img.Bounds()
	if width <= 0 || width == b.Dx() {
		dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}

	height := max(1, (b.Dy()*width+b.Dx()/2)/b.Dx())
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
