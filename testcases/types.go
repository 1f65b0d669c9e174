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

// Package testcases provides synthetic darkness fields for testing and
// benchmarking the string art engine.
package testcases

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single string art run.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // field width in pixels
	Height int    // field height in pixels

	// Shape is the dark region of the image, filled with the non-zero
	// winding rule.  It is used if Tone is nil.
	Shape path.Path

	// Tone, if set, gives the darkness in [0, 1] at a pixel centre.
	Tone func(x, y float64) float64

	Pins       int // number of pins
	Separation int // minimum pin separation
	Steps      int // path length
}

// Coverage returns the darkness of every pixel, in [0, 1] and in row-major
// order.
func (tc TestCase) Coverage() []float64 {
	w, h := tc.Width, tc.Height
	out := make([]float64, w*h)

	if tc.Tone != nil {
		for y := range h {
			for x := range w {
				out[y*w+x] = clamp(tc.Tone(float64(x)+0.5, float64(y)+0.5))
			}
		}
		return out
	}

	if tc.Shape == nil {
		return out
	}
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r := vector.NewRasterizer(w, h)
	fill(r, tc.Shape)
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	for i, a := range dst.Pix {
		out[i] = float64(a) / 255
	}
	return out
}

// fill feeds a path into a vector rasteriser.
func fill(r *vector.Rasterizer, p path.Path) {
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(f32(pts[0]))
			open = true
		case path.CmdLineTo:
			r.LineTo(f32(pts[0]))
		case path.CmdQuadTo:
			bx, by := f32(pts[0])
			cx, cy := f32(pts[1])
			r.QuadTo(bx, by, cx, cy)
		case path.CmdCubeTo:
			bx, by := f32(pts[0])
			cx, cy := f32(pts[1])
			dx, dy := f32(pts[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		case path.CmdClose:
			r.ClosePath()
			open = false
		}
	}
	if open {
		r.ClosePath()
	}
}

func f32(v vec.Vec2) (float32, float32) {
	return float32(v.X), float32(v.Y)
}

func clamp(v float64) float64 {
	return max(0, min(1, v))
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
