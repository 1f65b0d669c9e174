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

package prepare

import (
	"image"
	"image/color"
	"math"
	"slices"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"

	"seehuhn.de/go/stringart"
)

// Options controls how darkness is derived from an image.
type Options struct {
	// Width is the width of the darkness field.  Zero keeps the image
	// width.
	Width int

	// Radius restricts the darkness to a centred circle, as a fraction of
	// half the shorter image side.  Zero disables the mask.
	Radius float64

	// Saturation is the fraction of the darkest pixels which are clipped to
	// full darkness.
	Saturation float64

	// Equalize spreads the darkness values evenly over the full range.
	Equalize bool

	// Invert swaps dark and light, for white thread on a dark board.
	Invert bool
}

// DefaultOptions returns the settings used by the command line tool.
func DefaultOptions() Options {
	return Options{
		Radius:     0.95,
		Saturation: 0.1,
	}
}

// Darkness derives a darkness field with values in
// [0, stringart.ScoreResolution] from img.
func Darkness[T stringart.Sample](img image.Image, opt Options) *stringart.Field[T] {
	src := Resize(img, opt.Width)
	w, h := src.Rect.Dx(), src.Rect.Dy()

	d := make([]float64, w*h)
	inside := circleMask(w, h, opt.Radius)
	for y := range h {
		for x := range w {
			i := y*w + x
			if !inside(x, y) {
				continue
			}
			d[i] = pixelDarkness(src.NRGBAAt(x, y), opt.Invert)
		}
	}

	saturate(d, opt.Saturation)
	if opt.Equalize {
		equalize(d)
	}

	f := stringart.NewField[T](w, h)
	for i, v := range d {
		f.Pix[i] = T(math.Round(v * stringart.ScoreResolution))
	}
	return f
}

// pixelDarkness returns 1 - L* for an opaque pixel.  Partially transparent
// pixels are blended over white.
func pixelDarkness(c color.Color, invert bool) float64 {
	col, ok := colorful.MakeColor(c)
	if !ok {
		return 0
	}
	l, _, _ := col.Lab()
	v := 1 - l
	if invert {
		v = l
	}
	_, _, _, a := c.RGBA()
	return max(0, min(1, v)) * float64(a) / 0xffff
}

// circleMask returns a predicate for the pixels whose centre lies within
// the pin circle.
func circleMask(w, h int, radius float64) func(x, y int) bool {
	if radius <= 0 {
		return func(int, int) bool { return true }
	}
	cx, cy := float64(w)/2, float64(h)/2
	r := radius * float64(min(w, h)) / 2
	return func(x, y int) bool {
		return math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) <= r
	}
}

// saturate clips the darkest fraction of the non-zero values to the
// corresponding quantile and rescales all values so that the quantile maps
// to 1.
func saturate(d []float64, fraction float64) {
	sorted := nonZeroSorted(d)
	if len(sorted) == 0 {
		return
	}
	fraction = max(0, min(1, fraction))
	q := stat.Quantile(1-fraction, stat.Empirical, sorted, nil)
	if q <= 0 {
		return
	}
	for i, v := range d {
		d[i] = min(v, q) / q
	}
}

// equalize replaces each non-zero value by its rank among the non-zero
// values, so that the darkness histogram becomes flat.
func equalize(d []float64) {
	sorted := nonZeroSorted(d)
	n := float64(len(sorted))
	if n == 0 {
		return
	}
	for i, v := range d {
		if v <= 0 {
			continue
		}
		// number of values <= v
		k := sort.SearchFloat64s(sorted, math.Nextafter(v, math.Inf(1)))
		d[i] = float64(k) / n
	}
}

func nonZeroSorted(d []float64) []float64 {
	var out []float64
	for _, v := range d {
		if v > 0 {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}
