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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestIntersectPerpendicular(t *testing.T) {
	a0, a1 := image.Pt(61, 32), image.Pt(3, 32)
	b0, b1 := image.Pt(32, 61), image.Pt(32, 3)

	a := NewLine(a0, a1)
	a.Trim(3)
	ov := Intersect(a, a0, a1, b0, b1, 3)

	if c := ov.Center(); c != (vec.Vec2{X: 32, Y: 32}) {
		t.Errorf("centre %v, want (32,32)", c)
	}
	if want := 2*bandReach + 6; math.Abs(ov.Width()-want) > 1e-12 {
		t.Errorf("width %g, want %g", ov.Width(), want)
	}
	if math.Abs(ov.Angle()-math.Pi/2) > 1e-12 {
		t.Errorf("angle %g, want π/2", ov.Angle())
	}
	if ov.Len() != 15 || ov.Start().X != 25 || ov.End().X != 39 {
		t.Errorf("band has %d samples from x=%g to x=%g", ov.Len(), ov.Start().X, ov.End().X)
	}

	var within []int
	ov.Reset()
	for ok := true; ok; ok = ov.Step() {
		if ov.Within() {
			within = append(within, ov.Point().X)
		}
	}
	if len(within) != 2 || within[0] != 31 || within[1] != 32 {
		t.Errorf("samples within the second chord: %v", within)
	}
}

func TestIntersectParallel(t *testing.T) {
	a0, a1 := image.Pt(10, 10), image.Pt(50, 10)
	b0, b1 := image.Pt(10, 20), image.Pt(50, 20)

	ov := Intersect(NewLine(a0, a1), a0, a1, b0, b1, 3)
	if c := ov.Center(); c != (vec.Vec2{X: 30, Y: 10}) {
		t.Errorf("centre %v, want midpoint (30,10)", c)
	}
	if ov.Width() != 86 {
		t.Errorf("width %g, want 86", ov.Width())
	}
	if ov.Angle() != 0 {
		t.Errorf("angle %g, want 0", ov.Angle())
	}

	ov.Reset()
	for ok := true; ok; ok = ov.Step() {
		if ov.Within() {
			t.Fatalf("sample %v within a chord 10 pixels away", ov.Point())
		}
	}
}

func TestIntersectShortChord(t *testing.T) {
	// the second chord is short and shallow, so its length limits the band
	a0, a1 := image.Pt(61, 32), image.Pt(3, 32)
	b0, b1 := image.Pt(30, 30), image.Pt(40, 32)

	ov := Intersect(NewLine(a0, a1), a0, a1, b0, b1, 3)
	want := 2*(math.Hypot(10, 2)+bandReach) + 6
	if math.Abs(ov.Width()-want) > 1e-9 {
		t.Errorf("width %g, want %g", ov.Width(), want)
	}
	if c := ov.Center(); math.Abs(c.X-40) > 1e-9 || math.Abs(c.Y-32) > 1e-9 {
		t.Errorf("centre %v, want (40,32)", c)
	}
}

// TestIntersectCoversChanges checks that every sample of the first chord
// which sees a pixel of the second chord lies inside the band, for a range
// of crossing angles down to very shallow ones.
func TestIntersectCoversChanges(t *testing.T) {
	a0, a1 := image.Pt(4, 100), image.Pt(196, 100)
	for _, dy := range []int{90, 40, 12, 6, 3, 1} {
		b0, b1 := image.Pt(4, 100-dy), image.Pt(196, 100+dy)

		drawn := map[image.Point]bool{}
		b := NewLine(b0, b1)
		for ok := true; ok; ok = b.Step() {
			drawn[b.Point()] = true
		}

		a := NewLine(a0, a1)
		a.Trim(3)
		ov := Intersect(a, a0, a1, b0, b1, 0)
		lo, hi := ov.Start().X, ov.End().X

		for ok := true; ok; ok = a.Step() {
			if !drawn[a.Point()] && !drawn[a.Left()] && !drawn[a.Right()] {
				continue
			}
			if x := a.Pos().X; x < lo || x > hi {
				t.Errorf("dy=%d: sample at x=%g sees the chord but the band is %g..%g",
					dy, x, lo, hi)
			}
		}
	}
}

func TestIntersectSteep(t *testing.T) {
	// a is dominated by its y extent, so the band is cut in y
	a0, a1 := image.Pt(30, 3), image.Pt(34, 61)
	b0, b1 := image.Pt(3, 30), image.Pt(61, 30)

	ov := Intersect(NewLine(a0, a1), a0, a1, b0, b1, 2)
	c := ov.Center()
	if math.Abs(c.Y-30) > 1e-9 {
		t.Errorf("centre %v not on the second chord", c)
	}
	h := math.Abs(ov.Dir().Y) * ov.Width() / 2
	if ov.Start().Y > c.Y-h+1e-9 || ov.End().Y < c.Y+h-1e-9 {
		t.Errorf("band y %g..%g does not cover %g±%g", ov.Start().Y, ov.End().Y, c.Y, h)
	}
	if ov.End().Y-ov.Start().Y > 2*h+2 {
		t.Errorf("band y %g..%g wider than needed", ov.Start().Y, ov.End().Y)
	}
}

func TestSegmentDist(t *testing.T) {
	a, b := vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}
	cases := []struct {
		p    vec.Vec2
		want float64
	}{
		{vec.Vec2{X: 5, Y: 3}, 3},
		{vec.Vec2{X: -4, Y: 3}, 5},
		{vec.Vec2{X: 13, Y: -4}, 5},
	}
	for _, c := range cases {
		if got := segmentDist(c.p, a, b); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%v: got %g, want %g", c.p, got, c.want)
		}
	}
	if got := segmentDist(vec.Vec2{X: 3, Y: 4}, a, a); got != 5 {
		t.Errorf("degenerate segment: got %g, want 5", got)
	}
}
