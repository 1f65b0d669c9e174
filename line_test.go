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
	"slices"
	"testing"
)

func points(l Line) []image.Point {
	var out []image.Point
	l.Reset()
	for ok := true; ok; ok = l.Step() {
		out = append(out, l.Point())
	}
	return out
}

func TestLineOrderIndependent(t *testing.T) {
	pairs := [][2]image.Point{
		{{61, 32}, {3, 32}},
		{{5, 7}, {50, 41}},
		{{10, 60}, {10, 4}},
		{{3, 50}, {58, 9}},
		{{20, 20}, {21, 57}},
	}
	for _, p := range pairs {
		l1 := NewLine(p[0], p[1])
		l2 := NewLine(p[1], p[0])
		if !slices.Equal(points(l1), points(l2)) {
			t.Errorf("%v: sample sequences differ", p)
		}
	}
}

func TestLineSamples(t *testing.T) {
	l := NewLine(image.Pt(61, 32), image.Pt(3, 32))
	if l.Len() != 59 {
		t.Fatalf("got %d samples, want 59", l.Len())
	}
	pts := points(l)
	if pts[0] != image.Pt(3, 32) || pts[58] != image.Pt(61, 32) {
		t.Errorf("ends %v, %v", pts[0], pts[58])
	}
	if l.At(10) != image.Pt(13, 32) {
		t.Errorf("At(10) = %v", l.At(10))
	}
	if l.At(-1) != image.Pt(2, 32) {
		t.Errorf("At(-1) = %v", l.At(-1))
	}
}

func TestLineCursor(t *testing.T) {
	l := NewLine(image.Pt(0, 0), image.Pt(4, 0))
	if l.StepBack() {
		t.Error("StepBack succeeded at the start")
	}
	if !l.Move(4) || l.Index() != 4 {
		t.Fatalf("Move(4): index %d", l.Index())
	}
	if l.Step() {
		t.Error("Step succeeded at the end")
	}
	if l.Move(1) || l.Index() != 4 {
		t.Error("Move beyond the end succeeded")
	}
	if !l.StepBack() || l.Point() != image.Pt(3, 0) {
		t.Errorf("StepBack: %v", l.Point())
	}
	if !l.Move(-3) || l.Point() != image.Pt(0, 0) {
		t.Errorf("Move(-3): %v", l.Point())
	}
}

func TestLineShrinkGrow(t *testing.T) {
	l := NewLine(image.Pt(3, 5), image.Pt(57, 41))
	start, end, n := l.Start(), l.End(), l.Len()

	l.Shrink(7, 4)
	if l.Len() != n-11 {
		t.Errorf("shrunk length %d, want %d", l.Len(), n-11)
	}
	l.Grow(7, 4)
	if l.Start() != start || l.End() != end {
		t.Errorf("ends moved: %v-%v, want %v-%v", l.Start(), l.End(), start, end)
	}

	for range 100 {
		l.Shrink(1, 2)
		l.Grow(1, 2)
	}
	if l.Start() != start || l.End() != end {
		t.Errorf("ends drifted: %v-%v, want %v-%v", l.Start(), l.End(), start, end)
	}
}

func TestLineTrimCollapse(t *testing.T) {
	l := NewLine(image.Pt(10, 10), image.Pt(14, 10))
	l.Trim(3)
	if l.Len() != 1 {
		t.Fatalf("got %d samples, want 1", l.Len())
	}
	if l.Point() != image.Pt(12, 10) {
		t.Errorf("collapsed to %v, want (12,10)", l.Point())
	}
}

func TestLineSides(t *testing.T) {
	h := NewLine(image.Pt(3, 32), image.Pt(61, 32))
	h.Move(5)
	if h.Left() != image.Pt(8, 31) || h.Right() != image.Pt(8, 33) {
		t.Errorf("horizontal: left %v, right %v", h.Left(), h.Right())
	}

	// the unit normal to the left stays inside pixel (3,3) here
	d := NewLine(image.Pt(2, 2), image.Pt(4, 5))
	d.Move(2)
	if d.Point() != image.Pt(3, 3) {
		t.Fatalf("sample 2 at %v", d.Point())
	}
	if d.Left() != image.Pt(4, 2) {
		t.Errorf("left %v, want (4,2)", d.Left())
	}
	if d.Right() != image.Pt(2, 4) {
		t.Errorf("right %v, want (2,4)", d.Right())
	}
}

func TestShrinkAround(t *testing.T) {
	l := NewLine(image.Pt(61, 32), image.Pt(3, 32))
	l.Trim(3)

	a := l
	if !a.ShrinkAroundX(28.5, 35.5) {
		t.Fatal("bound reported outside")
	}
	if a.Len() != 9 || a.Start().X != 28 || a.End().X != 36 {
		t.Errorf("got %d samples from %g to %g", a.Len(), a.Start().X, a.End().X)
	}

	b := l
	if !b.ShrinkAroundX(0, 100) {
		t.Error("covering bound reported outside")
	}
	if b.Len() != l.Len() {
		t.Errorf("covering bound changed the line: %d samples", b.Len())
	}

	c := l
	if c.ShrinkAroundX(100, 110) {
		t.Error("distant bound reported inside")
	}
	if c.Len() != 1 || c.Point() != image.Pt(58, 32) {
		t.Errorf("collapsed to %d samples at %v", c.Len(), c.Point())
	}

	v := NewLine(image.Pt(32, 3), image.Pt(32, 61))
	if !v.ShrinkAroundY(10.5, 12.5) {
		t.Fatal("bound reported outside")
	}
	if v.Start().Y != 10 || v.End().Y != 13 {
		t.Errorf("y range %g to %g", v.Start().Y, v.End().Y)
	}
}
