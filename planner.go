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

import "slices"

// seed chooses the first pin of a path.  Both ends of the best connection
// are evaluated with the full lookahead, and the end with the better
// continuation is used.
func (e *Engine[T]) seed() int {
	best := -1
	var bestScore float64
	for id := range e.reg.All() {
		if s := e.reg.ScoreOf(id); s > bestScore {
			best, bestScore = id, s
		}
	}
	if best < 0 {
		for p := range e.reg.Pins() {
			if len(e.reg.Neighbours(p)) > 0 {
				return p
			}
		}
		panic("stringart: no active connections")
	}

	a, b := e.reg.Pair(best)
	_, sa := e.search(a, e.cfg.Depth, []int{a})
	_, sb := e.search(b, e.cfg.Depth, []int{b})
	if sa > sb {
		return a
	}
	return b
}

// next chooses the pin following p.
func (e *Engine[T]) next(p int) int {
	q, _ := e.search(p, e.cfg.Depth, []int{p})
	if q < 0 {
		q = e.nearest(p)
	}
	return q
}

// search returns the neighbour q of the last pin of prefix which maximises
// the score of the connection to q plus the best continuation from q with
// depth-1 further steps, together with that total.  Pins already in prefix
// are not revisited and only connections with a positive score are
// followed.  If there is no such neighbour, search returns -1.
//
// The prefix is never modified, so that search is a pure function of the
// current scores.
func (e *Engine[T]) search(p, depth int, prefix []int) (int, float64) {
	best := -1
	var bestTotal float64
	for _, id := range e.reg.Neighbours(p) {
		score := e.reg.ScoreOf(id)
		if score <= 0 {
			continue
		}
		q := e.reg.Other(id, p)
		if slices.Contains(prefix, q) {
			continue
		}
		total := score
		if depth > 1 {
			_, cont := e.search(q, depth-1, append(slices.Clip(prefix), q))
			total += cont
		}
		if best < 0 || total > bestTotal {
			best, bestTotal = q, total
		}
	}
	return best, bestTotal
}

// nearest returns the connected pin which follows p most closely in
// circular index order.
func (e *Engine[T]) nearest(p int) int {
	n := e.reg.Pins()
	best, bestDist := -1, n
	for _, id := range e.reg.Neighbours(p) {
		q := e.reg.Other(id, p)
		if d := (q - p + n) % n; d < bestDist {
			best, bestDist = q, d
		}
	}
	if best < 0 {
		panic("stringart: pin without connections")
	}
	return best
}
