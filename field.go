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

package stringart

import "image"

// ScoreResolution is the value of a fully dark pixel, and the value written
// into the string raster for every pixel covered by a chord.
// Darkness values are expected to lie in [0, ScoreResolution].
const ScoreResolution = 1000

// Sample is the numeric type of a raster pixel.
// Integer types truncate when a pixel is darkened.
type Sample interface {
	~int16 | ~uint16 | ~int32 | ~int64 | ~int | ~float32 | ~float64
}

// Field is a scalar raster with one sample per pixel, stored in row-major
// order.  Pixel (x, y) is at Pix[y*Width+x].
//
// Access outside the raster panics.  Callers guarantee containment; the
// engine checks its pin layout once at construction time.
type Field[T Sample] struct {
	Width, Height int
	Pix           []T
}

// NewField allocates a zero-valued raster.
func NewField[T Sample](width, height int) *Field[T] {
	return &Field[T]{
		Width:  width,
		Height: height,
		Pix:    make([]T, width*height),
	}
}

// At returns the sample at p.
func (f *Field[T]) At(p image.Point) T {
	return f.Pix[f.offset(p)]
}

// Set stores v at p.
func (f *Field[T]) Set(p image.Point, v T) {
	f.Pix[f.offset(p)] = v
}

// value returns the sample at p as a float64.
func (f *Field[T]) value(p image.Point) float64 {
	return float64(f.Pix[f.offset(p)])
}

func (f *Field[T]) offset(p image.Point) int {
	if uint(p.X) >= uint(f.Width) || uint(p.Y) >= uint(f.Height) {
		panic("stringart: pixel outside field")
	}
	return p.Y*f.Width + p.X
}

// In reports whether p lies inside the raster.
func (f *Field[T]) In(p image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < f.Width && p.Y < f.Height
}

// Bounds returns the pixel rectangle of the raster.
func (f *Field[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// Fill sets every sample to v.
func (f *Field[T]) Fill(v T) {
	for i := range f.Pix {
		f.Pix[i] = v
	}
}

// Clone returns a deep copy of f.
func (f *Field[T]) Clone() *Field[T] {
	return &Field[T]{
		Width:  f.Width,
		Height: f.Height,
		Pix:    append([]T(nil), f.Pix...),
	}
}
