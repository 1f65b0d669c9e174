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
	"iter"
	"slices"
)

// Registry holds every admissible pin pair together with its score and
// effective length.
//
// Connections are identified by an id in [0, Len()).  The score of a
// connection lives in a single cell indexed by its id, so that looking it
// up as (a, b) or as (b, a) always observes the same value.  Culled
// connections keep their id and pair but are no longer reachable by
// lookup or through Neighbours.
type Registry struct {
	n      int
	ids    []int32 // n*n, -1 where no active connection exists
	pairs  [][2]int
	score  []float64
	length []float64
	active []bool

	// neighbours[p] lists the ids of the active connections at pin p,
	// ordered by the other pin.
	neighbours [][]int

	activeCount int
}

// ConnectionCount returns the number of pin pairs of n pins whose circular
// index distance is at least sep.
func ConnectionCount(n, sep int) int {
	if n < 2 || sep < 1 || 2*sep > n {
		return 0
	}
	return (n*n - 2*n*sep + n) / 2
}

// NewRegistry enumerates all pairs (a, b) with a < b among n pins whose
// circular index distance is at least sep.
func NewRegistry(n, sep int) (*Registry, error) {
	count := ConnectionCount(n, sep)
	if count == 0 {
		return nil, fmt.Errorf("%w: %d pins, separation %d", ErrSeparation, n, sep)
	}

	r := &Registry{
		n:           n,
		ids:         make([]int32, n*n),
		pairs:       make([][2]int, 0, count),
		score:       make([]float64, count),
		length:      make([]float64, count),
		active:      make([]bool, count),
		neighbours:  make([][]int, n),
		activeCount: count,
	}
	for i := range r.ids {
		r.ids[i] = -1
	}
	for a := range n {
		for b := a + sep; b < min(n, n+a-sep+1); b++ {
			id := len(r.pairs)
			r.pairs = append(r.pairs, [2]int{a, b})
			r.active[id] = true
			r.ids[a*n+b] = int32(id)
			r.ids[b*n+a] = int32(id)
			r.neighbours[a] = append(r.neighbours[a], id)
			r.neighbours[b] = append(r.neighbours[b], id)
		}
	}
	return r, nil
}

// Pins returns the number of pins.
func (r *Registry) Pins() int {
	return r.n
}

// Len returns the number of connections, including culled ones.
func (r *Registry) Len() int {
	return len(r.pairs)
}

// ActiveCount returns the number of connections which have not been culled.
func (r *Registry) ActiveCount() int {
	return r.activeCount
}

// Lookup returns the id of the active connection between pins a and b.
// The order of a and b does not matter.
func (r *Registry) Lookup(a, b int) (int, bool) {
	if a < 0 || b < 0 || a >= r.n || b >= r.n {
		return -1, false
	}
	id := r.ids[a*r.n+b]
	return int(id), id >= 0
}

// Score returns the score of the active connection between a and b.
func (r *Registry) Score(a, b int) (float64, bool) {
	id, ok := r.Lookup(a, b)
	if !ok {
		return 0, false
	}
	return r.score[id], true
}

// ScoreOf returns the score of connection id.
func (r *Registry) ScoreOf(id int) float64 {
	return r.score[id]
}

// SetScore sets the score of connection id.
// Different ids may be updated concurrently.
func (r *Registry) SetScore(id int, score float64) {
	r.score[id] = score
}

// Length returns the effective length of connection id.
func (r *Registry) Length(id int) float64 {
	return r.length[id]
}

// SetLength sets the effective length of connection id.
func (r *Registry) SetLength(id int, length float64) {
	r.length[id] = length
}

// Pair returns the pins of connection id, with a < b.
func (r *Registry) Pair(id int) (a, b int) {
	p := r.pairs[id]
	return p[0], p[1]
}

// Other returns the pin at the far end of connection id, seen from pin p.
func (r *Registry) Other(id, p int) int {
	a, b := r.Pair(id)
	if a == p {
		return b
	}
	return a
}

// Active reports whether connection id has not been culled.
func (r *Registry) Active(id int) bool {
	return r.active[id]
}

// Neighbours returns the ids of the active connections at pin p, ordered by
// the other pin.  The slice is owned by the registry and must not be
// modified.  It is invalidated by the next call to Cull.
func (r *Registry) Neighbours(p int) []int {
	return r.neighbours[p]
}

// All iterates over the active connections and their pins.
func (r *Registry) All() iter.Seq2[int, [2]int] {
	return func(yield func(int, [2]int) bool) {
		for id, pair := range r.pairs {
			if !r.active[id] {
				continue
			}
			if !yield(id, pair) {
				return
			}
		}
	}
}

// Cull deactivates connection id.  The connection can no longer be found
// from either of its pins.  Culling an inactive connection has no effect.
func (r *Registry) Cull(id int) {
	if !r.active[id] {
		return
	}
	a, b := r.Pair(id)
	r.ids[a*r.n+b] = -1
	r.ids[b*r.n+a] = -1
	r.neighbours[a] = removeID(r.neighbours[a], id)
	r.neighbours[b] = removeID(r.neighbours[b], id)
	r.active[id] = false
	r.score[id] = 0
	r.length[id] = 0
	r.activeCount--
}

func removeID(ids []int, id int) []int {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return ids
}

// Crosses reports whether the chord of connection id crosses the chord
// between pins p and q.  This is the case when exactly one of its pins lies
// strictly between p and q.  Connections sharing a pin with (p, q) do not
// cross it.
func (r *Registry) Crosses(id, p, q int) bool {
	a, b := r.Pair(id)
	lo, hi := min(p, q), max(p, q)
	return a < lo && b > lo && b < hi ||
		a > lo && a < hi && b > hi
}
