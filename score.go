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
	"fmt"
	"image"
	"math"
)

// Metric selects how connections are scored.
type Metric int

const (
	// Darkening scores a chord by the average remaining darkness of its
	// pixels and their side neighbours.
	Darkening Metric = iota

	// Similarity scores a chord by how much drawing it would move the local
	// string density towards the darkness, in 3×3 squares along the chord.
	// The darkness field is not modified while drawing.
	Similarity

	// RMS is like Darkening, but takes the root mean square of the pixel
	// values.
	RMS
)

func (m Metric) String() string {
	switch m {
	case Darkening:
		return "darkening"
	case Similarity:
		return "similarity"
	case RMS:
		return "rms"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// epsilon is the darkness below which a pixel counts as exhausted.
const epsilon = 0.01

// rasters is one state of the two fields a score depends on.
type rasters[T Sample] struct {
	dark    *Field[T]
	strings *Field[T]
}

// scorer computes connection scores under one metric.
//
// Every score is an average: a total over the samples of a chord, divided by
// the effective length of the chord.  For RMS the total is a sum of squares
// and the score is the root of the average.
type scorer[T Sample] struct {
	metric Metric
	weight float64 // neighbour weight
}

// full scores the line from scratch.
func (s scorer[T]) full(l Line, r rasters[T]) (score, length float64) {
	var total float64
	if s.metric == Similarity {
		for k := range l.Len() {
			v, ok := s.square(&l, k, r)
			if ok {
				total += v
				length++
			}
		}
	} else {
		l.Reset()
		for ok := true; ok; ok = l.Step() {
			v, w := s.sample(&l, r.dark)
			total += v
			length += w
		}
	}
	return s.finish(total, length), length
}

// delta returns the change of the total of the chord whose band is ov,
// going from the state before to the state after.
func (s scorer[T]) delta(ov *Overlap, before, after rasters[T]) float64 {
	var d float64
	ov.Reset()
	if s.metric == Similarity {
		for ok := true; ok; ok = ov.Step() {
			k := ov.Index()
			old, ok1 := s.square(&ov.Line, k, before)
			cur, ok2 := s.square(&ov.Line, k, after)
			if ok1 {
				d -= old
			}
			if ok2 {
				d += cur
			}
		}
		return d
	}

	for ok := true; ok; ok = ov.Step() {
		if !ov.Within() {
			continue
		}
		old, _ := s.sample(&ov.Line, before.dark)
		cur, _ := s.sample(&ov.Line, after.dark)
		d += cur - old
	}
	return d
}

// total converts a score back into the total it was computed from.
func (s scorer[T]) total(score, length float64) float64 {
	if s.metric == RMS {
		return score * score * length
	}
	return score * length
}

func (s scorer[T]) finish(total, length float64) float64 {
	if length <= 0 {
		return 0
	}
	avg := total / length
	if s.metric == RMS {
		return math.Sqrt(max(avg, 0))
	}
	return avg
}

// sample returns the contribution of the pixel under the cursor and its
// side neighbours, together with the weight they add to the effective
// length.  Pixels at or below epsilon do not contribute.
func (s scorer[T]) sample(l *Line, dark *Field[T]) (value, weight float64) {
	add := func(p image.Point, w float64) {
		v := dark.value(p)
		if v <= epsilon {
			return
		}
		if s.metric == RMS {
			v *= v
		}
		value += w * v
		weight += w
	}
	add(l.Point(), 1)
	if s.weight > 0 {
		add(l.Left(), s.weight)
		add(l.Right(), s.weight)
	}
	return value, weight
}

// square scores the 3×3 square around sample k of l.  The window of the
// chord is formed by samples k-1, k and k+1.  Only squares whose centre
// pixel is dark are counted.
func (s scorer[T]) square(l *Line, k int, r rasters[T]) (float64, bool) {
	c := l.At(k)
	if r.dark.value(c) <= 0 {
		return 0, false
	}
	window := [3]image.Point{l.At(k - 1), c, l.At(k + 1)}

	var area, img, line, added float64
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			p := image.Point{X: c.X + dx, Y: c.Y + dy}
			v := r.dark.value(p)
			if v <= 0 {
				continue
			}
			area++
			img += v
			if r.strings.value(p) > 0 {
				line += ScoreResolution
			} else if p == window[0] || p == window[1] || p == window[2] {
				added += ScoreResolution
			}
		}
	}

	target := img / area
	existing := line / area
	potential := (line + added) / area

	exDiff := target - existing
	potDiff := target - potential
	similarity := 1 - potDiff/ScoreResolution

	var gain float64
	if exDiff > 0 {
		gain = exDiff - math.Abs(potDiff)
	} else {
		gain = potDiff - exDiff
	}
	return gain * similarity, true
}
