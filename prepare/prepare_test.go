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
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"seehuhn.de/go/stringart"
)

func TestDarknessHalves(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := range 20 {
		for x := range 20 {
			c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			if x < 10 {
				c = color.NRGBA{A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	f := Darkness[float64](img, Options{})
	if f.Width != 20 || f.Height != 20 {
		t.Fatalf("size %dx%d, want 20x20", f.Width, f.Height)
	}
	if v := f.At(image.Pt(3, 5)); v != stringart.ScoreResolution {
		t.Errorf("black pixel: got %g, want %d", v, stringart.ScoreResolution)
	}
	if v := f.At(image.Pt(15, 5)); v != 0 {
		t.Errorf("white pixel: got %g, want 0", v)
	}
}

func TestDarknessMask(t *testing.T) {
	img := image.NewUniform(color.Black)
	src := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := range 40 {
		for x := range 40 {
			src.Set(x, y, img.C)
		}
	}

	f := Darkness[int16](src, Options{Radius: 0.5})
	if v := f.At(image.Pt(0, 0)); v != 0 {
		t.Errorf("corner: got %d, want 0", v)
	}
	if v := f.At(image.Pt(20, 20)); v != stringart.ScoreResolution {
		t.Errorf("centre: got %d, want %d", v, stringart.ScoreResolution)
	}
	if v := f.At(image.Pt(20, 2)); v != 0 {
		t.Errorf("outside circle: got %d, want 0", v)
	}
}

func TestDarknessTransparent(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(1, 1, color.NRGBA{A: 255})
	f := Darkness[float64](src, Options{})
	for y := range 4 {
		for x := range 4 {
			v := f.At(image.Pt(x, y))
			want := 0.0
			if x == 1 && y == 1 {
				want = stringart.ScoreResolution
			}
			if v != want {
				t.Errorf("(%d,%d): got %g, want %g", x, y, v, want)
			}
		}
	}
}

func TestDarknessInvert(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	f := Darkness[float64](src, Options{Invert: true})
	if f.Pix[0] != 0 || f.Pix[1] != stringart.ScoreResolution {
		t.Errorf("got %v", f.Pix)
	}
}

func TestSaturate(t *testing.T) {
	d := []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
	saturate(d, 0.2)

	if d[0] != 0 {
		t.Errorf("zero changed to %g", d[0])
	}
	if d[10] != 1 || d[9] != 1 {
		t.Errorf("darkest values not clipped: %v", d[9:])
	}
	for i := 1; i < len(d); i++ {
		if d[i] < d[i-1] {
			t.Fatalf("order not preserved: %v", d)
		}
	}
	if d[4] <= 0.4 || d[4] >= 1 {
		t.Errorf("mid value not rescaled: %g", d[4])
	}
}

func TestEqualize(t *testing.T) {
	d := []float64{0, 0.01, 0.02, 0.03, 0.5}
	equalize(d)

	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range d {
		if math.Abs(d[i]-want[i]) > 1e-12 {
			t.Errorf("d[%d] = %g, want %g", i, d[i], want[i])
		}
	}
}

func TestResize(t *testing.T) {
	src := image.NewGray(image.Rect(5, 5, 105, 55))
	dst := Resize(src, 40)
	if got := dst.Bounds(); got != image.Rect(0, 0, 40, 20) {
		t.Errorf("bounds %v, want 40x20", got)
	}

	same := Resize(src, 0)
	if got := same.Bounds(); got != image.Rect(0, 0, 100, 50) {
		t.Errorf("bounds %v, want 100x50", got)
	}
}

func TestDecode(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 2))
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, src); err != nil {
		t.Fatal(err)
	}

	img, format, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" {
		t.Errorf("format %q, want png", format)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("bounds %v", img.Bounds())
	}

	if _, _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("garbage decoded without error")
	}
}
