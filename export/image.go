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

package export

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"seehuhn.de/go/stringart"
)

// StringImage renders a string raster as black thread on white.  If dark is
// not nil, the remaining darkness is appended to the right of the strings,
// for debugging.
func StringImage[T stringart.Sample](strings, dark *stringart.Field[T]) *image.Gray {
	w, h := strings.Width, strings.Height
	total := w
	if dark != nil {
		total += dark.Width
		h = max(h, dark.Height)
	}

	img := image.NewGray(image.Rect(0, 0, total, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	for y := range strings.Height {
		for x := range w {
			if strings.Pix[y*w+x] > 0 {
				img.Pix[y*img.Stride+x] = 0
			}
		}
	}
	if dark == nil {
		return img
	}

	for y := range dark.Height {
		row := img.Pix[y*img.Stride+w:]
		for x := range dark.Width {
			v := float64(dark.Pix[y*dark.Width+x]) / stringart.ScoreResolution
			row[x] = uint8(math.Round(255 * (1 - max(0, min(1, v)))))
		}
	}
	return img
}

// PreviewOptions controls the appearance of Preview.
type PreviewOptions struct {
	Scale   float64 // output pixels per field pixel
	Thread  float64 // thread width in field pixels
	Opacity float64 // opacity of a single thread, in (0, 1]
}

// DefaultPreview returns options for a fine, slightly transparent thread.
func DefaultPreview() PreviewOptions {
	return PreviewOptions{Scale: 2, Thread: 0.5, Opacity: 0.6}
}

// Preview renders the path with anti-aliased threads.  Overlapping threads
// darken each other, much like real thread does.
func Preview(width, height int, pins []image.Point, path []int, opt PreviewOptions) *image.Gray {
	if opt.Scale <= 0 {
		opt.Scale = 1
	}
	w := int(math.Ceil(float64(width) * opt.Scale))
	h := int(math.Ceil(float64(height) * opt.Scale))
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for i := range dst.Pix {
		dst.Pix[i] = 255
	}

	a := uint8(math.Round(255 * max(0, min(1, opt.Opacity))))
	src := image.NewUniform(color.NRGBA{A: a})
	half := max(opt.Thread*opt.Scale, 0.1) / 2

	var r vector.Rasterizer
	for i := 1; i < len(path); i++ {
		p0 := centre(pins[path[i-1]], opt.Scale)
		p1 := centre(pins[path[i]], opt.Scale)
		dx, dy := p1[0]-p0[0], p1[1]-p0[1]
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half

		quad := [4][2]float64{
			{p0[0] + nx, p0[1] + ny},
			{p1[0] + nx, p1[1] + ny},
			{p1[0] - nx, p1[1] - ny},
			{p0[0] - nx, p0[1] - ny},
		}
		bbox := image.Rectangle{}
		for _, q := range quad {
			bbox = bbox.Union(image.Rect(int(math.Floor(q[0])), int(math.Floor(q[1])),
				int(math.Floor(q[0]))+1, int(math.Floor(q[1]))+1))
		}
		bbox = bbox.Intersect(dst.Rect)
		if bbox.Empty() {
			continue
		}

		r.Reset(bbox.Dx(), bbox.Dy())
		ox, oy := float64(bbox.Min.X), float64(bbox.Min.Y)
		r.MoveTo(float32(quad[0][0]-ox), float32(quad[0][1]-oy))
		for _, q := range quad[1:] {
			r.LineTo(float32(q[0]-ox), float32(q[1]-oy))
		}
		r.ClosePath()
		r.Draw(dst, bbox, src, image.Point{})
	}
	return dst
}

// centre returns the centre of a pin pixel in output coordinates.
func centre(p image.Point, scale float64) [2]float64 {
	return [2]float64{(float64(p.X) + 0.5) * scale, (float64(p.Y) + 0.5) * scale}
}

// SavePNG writes img to a PNG file.
func SavePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return errors.Join(errors.New("could not create output file"), err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
