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
)

// pinMargin is the minimum distance in pixels between a pin and the image
// border.  Side neighbours of a sample may lie up to two pixels away from
// the chord, and the similarity metric reads a 3×3 square around each
// sample.
const pinMargin = 2

// CirclePins places n pins evenly on a circle centred in a width×height
// image.  The circle radius is radius times half the shorter image side.
// Pin 0 lies to the right of the centre; indices increase clockwise in
// image coordinates (y pointing down).
func CirclePins(width, height int, radius float64, n int) []image.Point {
	cx := float64(width) / 2
	cy := float64(height) / 2
	r := radius * float64(min(width, height)) / 2

	pins := make([]image.Point, n)
	for i := range pins {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pins[i] = image.Point{
			X: int(math.Round(cx + r*math.Cos(angle))),
			Y: int(math.Round(cy + r*math.Sin(angle))),
		}
	}
	return pins
}

// pinsInside reports whether all pins keep pinMargin pixels of distance
// from the border of a width×height image.
func pinsInside(pins []image.Point, width, height int) bool {
	for _, p := range pins {
		if p.X < pinMargin || p.Y < pinMargin ||
			p.X > width-1-pinMargin || p.Y > height-1-pinMargin {
			return false
		}
	}
	return true
}
