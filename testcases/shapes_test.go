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
	"testing"
)

func coverage(w, h int, tc TestCase) []float64 {
	tc.Width, tc.Height = w, h
	return tc.Coverage()
}

func TestBoxScales(t *testing.T) {
	for _, size := range []int{32, 64, 128} {
		s := float64(size)
		cov := coverage(size, size, TestCase{Shape: box(s, s, 0.25, 0.25, 0.75, 0.75)})

		var area float64
		for _, c := range cov {
			area += c
		}
		if want := s * s / 4; math.Abs(area-want) > 1e-6*want+1 {
			t.Errorf("size %d: area %g, want %g", size, area, want)
		}
		if c := cov[(size/2)*size+size/2]; c != 1 {
			t.Errorf("size %d: centre coverage %g", size, c)
		}
		if cov[0] != 0 {
			t.Errorf("size %d: corner coverage %g", size, cov[0])
		}
	}
}

func TestStarSymmetric(t *testing.T) {
	const size = 64
	cov := coverage(size, size, TestCase{Shape: star(size, size, 4)})

	// four points, so the shape is symmetric under reflection in x
	for y := range size {
		for x := range size {
			a, b := cov[y*size+x], cov[y*size+size-1-x]
			if math.Abs(a-b) > 2.0/255 {
				t.Fatalf("coverage at (%d,%d) is %g, mirrored %g", x, y, a, b)
			}
		}
	}
	if cov[(size/2)*size+size/2] != 1 {
		t.Error("centre of the star is not covered")
	}
}

func TestTriangle(t *testing.T) {
	const w, h = 96, 64
	cov := coverage(w, h, TestCase{Shape: triangle(w, h)})

	inside := (h*6/10)*w + w/2
	if cov[inside] != 1 {
		t.Errorf("coverage %g below the apex", cov[inside])
	}
	for _, i := range []int{0, w - 1, (h-1)*w + w/2, (h/4)*w + w/5} {
		if cov[i] != 0 {
			t.Errorf("pixel %d outside the triangle has coverage %g", i, cov[i])
		}
	}
}

func TestCaseNames(t *testing.T) {
	seen := map[string]bool{}
	for category, cases := range All {
		for _, tc := range cases {
			name := category + "_" + tc.Name
			if seen[name] {
				t.Errorf("duplicate test case %q", name)
			}
			seen[name] = true
			if tc.Shape == nil && tc.Tone == nil {
				t.Errorf("%s: neither shape nor tone", name)
			}
		}
	}
}
