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

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

// bandReach bounds the distance of a sample from the drawn chord at which
// the sample can still see a changed pixel: up to two pixels to the side,
// plus half a pixel diagonal for each of the two pixels involved.
const bandReach = 2 + math.Sqrt2

// Overlap is the part of a chord A whose score can change when a second
// chord B is drawn.  It embeds a copy of A, shrunk to a band around the
// intersection of the two chords, so that the cursor operations of Line
// walk only the band.
type Overlap struct {
	Line

	center vec.Vec2
	width  float64
	angle  float64
	b0, b1 vec.Vec2
}

// Intersect computes the overlap band of the chord a, running from pin a0 to
// pin a1, with the chord from b0 to b1.  The line a may already be trimmed;
// the band never extends beyond it.
//
// The band is centred on the intersection of the two infinite lines.  For
// parallel chords the midpoint of a is used instead.  The band width is
// 2·bandReach/sin θ, where θ is the angle between the chords, plus buffer
// on either side.  It is clamped to the stretch of a that can come within
// bandReach of the second chord.
func Intersect(a Line, a0, a1, b0, b1 image.Point, buffer float64) Overlap {
	p, q := toVec(a0), toVec(b0)
	r := toVec(a1).Sub(p)
	s := toVec(b1).Sub(q)

	lr, ls := r.Length(), s.Length()
	det := cross(r, s)

	var center vec.Vec2
	if det == 0 {
		center = p.Add(r.Mul(0.5))
	} else {
		t := cross(q.Sub(p), s) / det
		center = p.Add(r.Mul(t))
	}

	var sin float64
	if lr > 0 && ls > 0 {
		sin = math.Abs(det) / (lr * ls)
	}
	angle := math.Asin(min(sin, 1))

	width := 2 * min(lr, ls+bandReach)
	if sin > 0 {
		width = min(width, 2*bandReach/sin)
	}
	width += 2 * buffer

	ov := Overlap{
		Line:   a,
		center: center,
		width:  width,
		angle:  angle,
		b0:     q,
		b1:     q.Add(s),
	}

	dir := ov.Line.Dir()
	if math.Abs(dir.X) >= math.Abs(dir.Y) {
		h := math.Abs(dir.X) * width / 2
		ov.ShrinkAroundX(center.X-h, center.X+h)
	} else {
		h := math.Abs(dir.Y) * width / 2
		ov.ShrinkAroundY(center.Y-h, center.Y+h)
	}
	return ov
}

// Center returns the intersection point of the two chords.
func (o *Overlap) Center() vec.Vec2 {
	return o.center
}

// Width returns the band width, measured along the first chord.
func (o *Overlap) Width() float64 {
	return o.width
}

// Angle returns the angle between the chords, in [0, π/2].
func (o *Overlap) Angle() float64 {
	return o.angle
}

// Within reports whether the pixel under the cursor, or one of its two side
// neighbours, has its centre within distance 1 of the second chord.
func (o *Overlap) Within() bool {
	for _, p := range [3]image.Point{o.Point(), o.Left(), o.Right()} {
		c := vec.Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
		if segmentDist(c, o.b0, o.b1) <= 1 {
			return true
		}
	}
	return false
}

// segmentDist returns the distance of p from the segment from a to b.
func segmentDist(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := max(0, min(1, p.Sub(a).Dot(d)/l2))
	return p.Sub(a.Add(d.Mul(t))).Length()
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
