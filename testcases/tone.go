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

import "math"

var toneCases = []TestCase{
	{
		Name:       "uniform",
		Tone:       func(x, y float64) float64 { return 0.8 },
		Width:      64,
		Height:     64,
		Pins:       12,
		Separation: 1,
		Steps:      5,
	},
	{
		Name:       "white",
		Tone:       func(x, y float64) float64 { return 0 },
		Width:      64,
		Height:     64,
		Pins:       12,
		Separation: 1,
		Steps:      5,
	},
	{
		Name:       "ramp",
		Tone:       func(x, y float64) float64 { return x / 96 },
		Width:      96,
		Height:     96,
		Pins:       36,
		Separation: 4,
		Steps:      50,
	},
	{
		Name:       "radial",
		Tone:       radial(48, 48, 40),
		Width:      96,
		Height:     96,
		Pins:       36,
		Separation: 4,
		Steps:      50,
	},
	{
		Name:       "stripes",
		Tone:       stripes(16),
		Width:      96,
		Height:     96,
		Pins:       36,
		Separation: 4,
		Steps:      50,
	},
}

// radial is darkest at (cx, cy) and fades to white at distance r.
func radial(cx, cy, r float64) func(x, y float64) float64 {
	return func(x, y float64) float64 {
		return 1 - math.Hypot(x-cx, y-cy)/r
	}
}

// stripes alternates dark and white diagonal stripes of the given period.
func stripes(period float64) func(x, y float64) float64 {
	return func(x, y float64) float64 {
		if math.Mod(x+y, period) < period/2 {
			return 1
		}
		return 0
	}
}
