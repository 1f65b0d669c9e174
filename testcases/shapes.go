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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var shapeCases = []TestCase{
	{
		Name:       "disc",
		Shape:      disc(32, 32, 14, false),
		Width:      64,
		Height:     64,
		Pins:       24,
		Separation: 3,
		Steps:      30,
	},
	{
		Name:       "ring",
		Shape:      ring(32, 32, 24, 14),
		Width:      64,
		Height:     64,
		Pins:       24,
		Separation: 3,
		Steps:      30,
	},
	{
		Name:       "triangle",
		Shape:      triangle(64, 64),
		Width:      64,
		Height:     64,
		Pins:       24,
		Separation: 3,
		Steps:      30,
	},
	{
		Name:       "star",
		Shape:      star(64, 64, 5),
		Width:      64,
		Height:     64,
		Pins:       32,
		Separation: 4,
		Steps:      40,
	},
	{
		Name:       "rectangle",
		Shape:      box(64, 64, 0.28, 0.28, 0.72, 0.72),
		Width:      64,
		Height:     64,
		Pins:       24,
		Separation: 3,
		Steps:      30,
	},
	{
		Name:       "wide_bar",
		Shape:      box(128, 128, 0.06, 0.4, 0.94, 0.6),
		Width:      128,
		Height:     128,
		Pins:       48,
		Separation: 6,
		Steps:      60,
	},
}

// polygon builds a closed polygon through the given vertices.
func polygon(vs ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, v := range vs {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{v}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// triangle is an isosceles triangle with its apex at the top, inset by
// a fifth of the field on the sides.
func triangle(w, h float64) path.Path {
	return polygon(pt(0.2*w, 0.75*h), pt(0.5*w, 0.2*h), pt(0.8*w, 0.75*h))
}

// star is a star with the given number of points, centred in the field.
// The tips reach 0.4 of the shorter side from the centre, the notches
// 0.4 of that.
func star(w, h float64, points int) path.Path {
	r := 0.4 * min(w, h)
	vs := make([]vec.Vec2, 2*points)
	for i := range vs {
		rr := r
		if i%2 == 1 {
			rr = 0.4 * r
		}
		angle := float64(i)*math.Pi/float64(points) - math.Pi/2
		vs[i] = pt(w/2+rr*math.Cos(angle), h/2+rr*math.Sin(angle))
	}
	return polygon(vs...)
}

// box is an axis-aligned rectangle given in fractions of the field size.
func box(w, h float64, x0, y0, x1, y1 float64) path.Path {
	return polygon(pt(x0*w, y0*h), pt(x1*w, y0*h), pt(x1*w, y1*h), pt(x0*w, y1*h))
}

// ring builds an annulus: the outer circle runs counter-clockwise and the
// inner one clockwise, so that the hole is left empty under the non-zero
// rule.
func ring(cx, cy, outer, inner float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !addCircle(yield, cx, cy, outer, false) {
			return
		}
		addCircle(yield, cx, cy, inner, true)
	}
}

func disc(cx, cy, r float64, clockwise bool) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		addCircle(yield, cx, cy, r, clockwise)
	}
}

// addCircle emits a circle made of four cubic Bézier arcs.
func addCircle(yield func(path.Command, []vec.Vec2) bool, cx, cy, r float64, clockwise bool) bool {
	// control point distance for a quarter circle
	const k = 0.5522847498
	kr := k * r

	sign := 1.0
	if clockwise {
		sign = -1
	}

	var buf [3]vec.Vec2
	buf[0] = pt(cx, cy-r)
	if !yield(path.CmdMoveTo, buf[:1]) {
		return false
	}
	// unit directions of the four quadrant end points, in drawing order
	ends := [4]vec.Vec2{{X: sign, Y: 0}, {X: 0, Y: 1}, {X: -sign, Y: 0}, {X: 0, Y: -1}}
	prev := vec.Vec2{X: 0, Y: -1}
	for _, e := range ends {
		start := pt(cx+r*prev.X, cy+r*prev.Y)
		end := pt(cx+r*e.X, cy+r*e.Y)
		buf[0] = start.Add(e.Mul(kr))
		buf[1] = end.Add(prev.Mul(kr))
		buf[2] = end
		if !yield(path.CmdCubeTo, buf[:3]) {
			return false
		}
		prev = e
	}
	return yield(path.CmdClose, nil)
}
