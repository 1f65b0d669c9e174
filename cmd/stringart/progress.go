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

package main

import (
	"log"
	"time"

	"seehuhn.de/go/stringart"
)

// progress logs the state of a run every few steps.
type progress struct {
	total int
	every int
	start time.Time

	search, update time.Duration
}

func newProgress(total, every int) *progress {
	return &progress{total: total, every: every, start: time.Now()}
}

func (p *progress) StepComputed(step, pin int, score float64, t stringart.Timings) {
	p.search += t.Search
	p.update += t.Update
	if step%p.every != 0 && step != p.total-1 {
		return
	}

	elapsed := time.Since(p.start)
	rate := float64(step) / elapsed.Seconds()
	var eta time.Duration
	if rate > 0 {
		eta = time.Duration(float64(p.total-1-step) / rate * float64(time.Second))
	}
	log.Printf("step %d/%d: pin %d, score %.1f, %.1f steps/s, search %v, update %v, ETA %v",
		step, p.total-1, pin, score, rate,
		(p.search / time.Duration(step)).Round(time.Microsecond),
		(p.update / time.Duration(step)).Round(time.Microsecond),
		eta.Round(time.Second))
}
