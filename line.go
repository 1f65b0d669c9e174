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

// Line walks the pixels of a chord at unit steps.
//
// The endpoints are put in a canonical order (by x, then by y), so that
// NewLine(a, b) and NewLine(b, a) visit the same pixels.  Sample positions
// are origin + i*step for integer i in [lo, hi].  Positions are always
// recomputed from the origin and the integer index, so moving the ends of the
// line back and forth never accumulates rounding errors.
//
// A Line is a small value; copies are independent.
type Line struct {
	origin vec.Vec2 // canonical first endpoint
	step   vec.Vec2 // unit vector from the first to the second endpoint
	length float64  // distance between the endpoints
	lo, hi int      // inclusive range of sample indices
	i      int      // cursor
}

// NewLine returns the line between two pixel coordinates, with the cursor
// on the first sample.
func NewLine(a, b image.Point) Line {
	if b.X < a.X || b.X == a.X && b.Y < a.Y {
		a, b = b, a
	}
	pa := toVec(a)
	d := toVec(b).Sub(pa)
	length := d.Length()

	var step vec.Vec2
	if length > 0 {
		step = d.Mul(1 / length)
	}
	return Line{
		origin: pa,
		step:   step,
		length: length,
		hi:     int(length),
	}
}

// Len returns the number of samples on the line.
func (l *Line) Len() int {
	return l.hi - l.lo + 1
}

// Index returns the position of the cursor, counted from the first sample.
func (l *Line) Index() int {
	return l.i - l.lo
}

// Length returns the geometric distance between the two endpoints the line
// was created from.
func (l *Line) Length() float64 {
	return l.length
}

// Dir returns the unit direction of the line.
func (l *Line) Dir() vec.Vec2 {
	return l.step
}

// Start returns the position of the first sample.
func (l *Line) Start() vec.Vec2 {
	return l.sample(l.lo)
}

// End returns the position of the last sample.
func (l *Line) End() vec.Vec2 {
	return l.sample(l.hi)
}

// Reset moves the cursor to the first sample.
func (l *Line) Reset() {
	l.i = l.lo
}

// Step advances the cursor by one sample.  At the last sample it returns
// false and leaves the cursor in place.
func (l *Line) Step() bool {
	if l.i >= l.hi {
		return false
	}
	l.i++
	return true
}

// StepBack moves the cursor back by one sample.  At the first sample it
// returns false and leaves the cursor in place.
func (l *Line) StepBack() bool {
	if l.i <= l.lo {
		return false
	}
	l.i--
	return true
}

// Move moves the cursor by n samples (backwards for negative n).
// If the target lies outside the line, the cursor is not moved and Move
// returns false.
func (l *Line) Move(n int) bool {
	j := l.i + n
	if j < l.lo || j > l.hi {
		return false
	}
	l.i = j
	return true
}

// Pos returns the exact position of the cursor.
func (l *Line) Pos() vec.Vec2 {
	return l.sample(l.i)
}

// Point returns the pixel under the cursor.
func (l *Line) Point() image.Point {
	return toPoint(l.sample(l.i))
}

// At returns the pixel of sample k, counted from the first sample.
// The cursor is not moved.  Indices outside [0, Len()) address the
// continuation of the line beyond its ends.
func (l *Line) At(k int) image.Point {
	return toPoint(l.sample(l.lo + k))
}

// Left returns the pixel one unit to the left of the cursor, looking along
// the line in image coordinates.
func (l *Line) Left() image.Point {
	return l.side(vec.Vec2{X: l.step.Y, Y: -l.step.X})
}

// Right returns the pixel one unit to the right of the cursor.
func (l *Line) Right() image.Point {
	return l.side(vec.Vec2{X: -l.step.Y, Y: l.step.X})
}

// side offsets the cursor position by n.  For diagonal lines a unit step
// can stay inside the current pixel; the offset is doubled in this case.
func (l *Line) side(n vec.Vec2) image.Point {
	p := l.sample(l.i)
	here := toPoint(p)
	q := toPoint(p.Add(n))
	if q == here {
		q = toPoint(p.Add(n.Mul(2)))
	}
	return q
}

// Trim removes k samples from both ends of the line.
func (l *Line) Trim(k int) {
	l.Shrink(k, k)
}

// Shrink removes head samples from the start and tail samples from the end
// of the line, and resets the cursor.  If fewer than one sample would
// remain, the line collapses to its middle sample.
func (l *Line) Shrink(head, tail int) {
	lo, hi := l.lo+head, l.hi-tail
	if lo > hi {
		lo = (lo + hi) / 2
		hi = lo
	}
	l.lo, l.hi = lo, hi
	l.Reset()
}

// Grow extends the line by head samples before the start and tail samples
// after the end, and resets the cursor.  Growing undoes a Shrink by the same
// counts exactly.
func (l *Line) Grow(head, tail int) {
	l.lo -= head
	l.hi += tail
	l.Reset()
}

// ShrinkAroundX shrinks the line to the smallest whole-step range whose
// x coordinates cover [minX, maxX].  The result never extends beyond the
// current ends.  If the range misses the line, the line collapses to the
// sample nearest to the range and false is returned.
func (l *Line) ShrinkAroundX(minX, maxX float64) bool {
	return l.shrinkAround(l.origin.X, l.step.X, minX, maxX)
}

// ShrinkAroundY is like ShrinkAroundX, for y coordinates.
func (l *Line) ShrinkAroundY(minY, maxY float64) bool {
	return l.shrinkAround(l.origin.Y, l.step.Y, minY, maxY)
}

func (l *Line) shrinkAround(o, s, minV, maxV float64) bool {
	defer l.Reset()

	if s == 0 {
		return o >= minV && o <= maxV
	}

	t0 := (minV - o) / s
	t1 := (maxV - o) / s
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	lo := max(int(math.Floor(t0)), l.lo)
	hi := min(int(math.Ceil(t1)), l.hi)
	if lo > hi {
		k := int(math.Round((t0 + t1) / 2))
		k = max(l.lo, min(l.hi, k))
		l.lo, l.hi = k, k
		return false
	}
	l.lo, l.hi = lo, hi
	return true
}

func (l *Line) sample(i int) vec.Vec2 {
	return l.origin.Add(l.step.Mul(float64(i)))
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func toPoint(v vec.Vec2) image.Point {
	return image.Point{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}
