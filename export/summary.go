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

package export

import (
	"fmt"
	"image"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"seehuhn.de/go/stringart"
)

// Summary describes a finished path.
type Summary struct {
	Chords     int     // number of chords drawn
	PinsUsed   int     // number of distinct pins visited
	Length     float64 // total thread length, in field pixels
	MeanChord  float64 // mean chord length
	StdDev     float64 // standard deviation of the chord lengths
	Remaining  float64 // mean darkness left, as a fraction of full darkness
	MedianLeft float64 // median of the non-zero remaining darkness
	Uncovered  float64 // fraction of dark pixels not covered by any chord
}

// Summarize computes statistics of a path and the engine state it left.
func Summarize[T stringart.Sample](pins []image.Point, p []int, strings, dark *stringart.Field[T]) Summary {
	var s Summary
	if len(p) > 1 {
		lengths := make([]float64, len(p)-1)
		for i := 1; i < len(p); i++ {
			a, b := pins[p[i-1]], pins[p[i]]
			lengths[i-1] = math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
			s.Length += lengths[i-1]
		}
		s.Chords = len(lengths)
		s.MeanChord, s.StdDev = stat.MeanStdDev(lengths, nil)
		if len(lengths) < 2 {
			s.StdDev = 0
		}
	}

	seen := make(map[int]bool)
	for _, pin := range p {
		seen[pin] = true
	}
	s.PinsUsed = len(seen)

	if dark != nil && len(dark.Pix) > 0 {
		var sum float64
		var left []float64
		var uncovered int
		for i, v := range dark.Pix {
			f := float64(v) / stringart.ScoreResolution
			sum += f
			if f > 0 {
				left = append(left, f)
				if strings != nil && strings.Pix[i] == 0 {
					uncovered++
				}
			}
		}
		s.Remaining = sum / float64(len(dark.Pix))
		if len(left) > 0 {
			slices.Sort(left)
			s.MedianLeft = stat.Quantile(0.5, stat.Empirical, left, nil)
			s.Uncovered = float64(uncovered) / float64(len(left))
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d chords, %d pins, thread %.0fpx (chord %.1f±%.1f), darkness left %.1f%%",
		s.Chords, s.PinsUsed, s.Length, s.MeanChord, s.StdDev, 100*s.Remaining)
}
