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
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
)

// Config holds the parameters of an Engine.
type Config struct {
	// Pins is the number of pins on the circle.
	Pins int

	// Radius is the radius of the pin circle, as a fraction of half the
	// shorter image side.
	Radius float64

	// MinSeparation is the smallest circular index distance between the
	// two pins of a connection.
	MinSeparation int

	Metric Metric

	// Retention is the factor by which the darkness of a pixel is
	// multiplied when a chord is drawn over it.
	Retention float64

	// Depth is the number of steps considered when choosing the next pin.
	// A depth of 1 is a greedy choice.
	Depth int

	// NeighbourWeight is the weight of the two side neighbours of each
	// sample, relative to the sample itself.
	NeighbourWeight float64

	// Clearance is the number of samples at each end of a chord which are
	// ignored when scoring and darkening, to keep the crowded area around
	// the pins out of the scores.
	Clearance int

	// BandBuffer widens the overlap band of two chords.
	BandBuffer float64

	// CullFloor removes connections whose initial score is below this
	// value.  Zero disables culling.
	CullFloor float64

	// Workers limits the number of goroutines used for rescoring.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int

	// Observer, if set, is informed about every step.
	Observer Observer
}

// DefaultConfig returns the default parameters.
func DefaultConfig() Config {
	return Config{
		Pins:            250,
		Radius:          0.95,
		MinSeparation:   10,
		Metric:          Darkening,
		Retention:       0,
		Depth:           2,
		NeighbourWeight: 0.5,
		Clearance:       3,
		BandBuffer:      3,
	}
}

func (c *Config) check() error {
	switch {
	case ConnectionCount(c.Pins, c.MinSeparation) == 0:
		return fmt.Errorf("%w: %d pins, separation %d", ErrSeparation, c.Pins, c.MinSeparation)
	case !(c.Radius > 0 && c.Radius <= 1):
		return fmt.Errorf("%w: %g", ErrRadius, c.Radius)
	case !(c.Retention >= 0 && c.Retention <= 1):
		return fmt.Errorf("%w: %g", ErrRetention, c.Retention)
	case c.Depth < 1:
		return fmt.Errorf("%w: %d", ErrDepth, c.Depth)
	case c.Metric < Darkening || c.Metric > RMS:
		return fmt.Errorf("%w: %d", ErrMetric, int(c.Metric))
	case !(c.NeighbourWeight >= 0):
		return fmt.Errorf("%w: %g", ErrWeight, c.NeighbourWeight)
	case c.Clearance < 0 || !(c.BandBuffer >= 0):
		return fmt.Errorf("%w: clearance %d, buffer %g", ErrClearance, c.Clearance, c.BandBuffer)
	}
	return nil
}

// Timings records how long the parts of a step took.
type Timings struct {
	Search time.Duration // choosing the next pin
	Update time.Duration // drawing and rescoring
}

// Observer is informed about the progress of Generate.  StepComputed is
// called synchronously after each step, with the index of the step in the
// current path, the pin chosen and the score of the chord drawn.
// Observers must not modify the engine.
type Observer interface {
	StepComputed(step, pin int, score float64, t Timings)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(step, pin int, score float64, t Timings)

// StepComputed calls f.
func (f ObserverFunc) StepComputed(step, pin int, score float64, t Timings) {
	f(step, pin, score, t)
}

type nopObserver struct{}

func (nopObserver) StepComputed(int, int, float64, Timings) {}

// Engine generates string art paths for a darkness field.
//
// The engine owns the darkness field passed to New and modifies it while
// generating.  An Engine must not be used concurrently.
type Engine[T Sample] struct {
	cfg     Config
	pins    []image.Point
	reg     *Registry
	score   scorer[T]
	workers int

	cur  rasters[T] // live state
	prev rasters[T] // state before the chord being drawn

	touched []image.Point
	used    []bool // connections which have been drawn
	last    int    // last pin of the previous path, or -1
}

// New creates an engine for the given darkness field and computes the
// initial scores of all connections.
func New[T Sample](darkness *Field[T], cfg Config) (*Engine[T], error) {
	if darkness == nil || darkness.Width <= 0 || darkness.Height <= 0 ||
		len(darkness.Pix) != darkness.Width*darkness.Height {
		return nil, ErrEmptyField
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}

	pins := CirclePins(darkness.Width, darkness.Height, cfg.Radius, cfg.Pins)
	if !pinsInside(pins, darkness.Width, darkness.Height) {
		return nil, fmt.Errorf("%w: %dx%d image, radius %g",
			ErrPinBounds, darkness.Width, darkness.Height, cfg.Radius)
	}
	reg, err := NewRegistry(cfg.Pins, cfg.MinSeparation)
	if err != nil {
		return nil, err
	}

	if cfg.Observer == nil {
		cfg.Observer = nopObserver{}
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	strings := NewField[T](darkness.Width, darkness.Height)
	e := &Engine[T]{
		cfg:     cfg,
		pins:    pins,
		reg:     reg,
		score:   scorer[T]{metric: cfg.Metric, weight: cfg.NeighbourWeight},
		workers: workers,
		cur:     rasters[T]{dark: darkness, strings: strings},
		prev:    rasters[T]{dark: darkness.Clone(), strings: strings.Clone()},
		used:    make([]bool, reg.Len()),
		last:    -1,
	}

	e.sweep(func(id int) {
		a, b := reg.Pair(id)
		score, length := e.score.full(e.line(a, b), e.cur)
		reg.SetScore(id, score)
		reg.SetLength(id, length)
	})
	if cfg.CullFloor > 0 {
		e.cull()
	}
	return e, nil
}

// cull removes the connections scoring below the cull floor.  A connection
// is kept if removing it would leave one of its pins without connections.
func (e *Engine[T]) cull() {
	var low []int
	for id := range e.reg.All() {
		if e.reg.ScoreOf(id) < e.cfg.CullFloor {
			low = append(low, id)
		}
	}
	for _, id := range low {
		a, b := e.reg.Pair(id)
		if len(e.reg.Neighbours(a)) > 1 && len(e.reg.Neighbours(b)) > 1 {
			e.reg.Cull(id)
		}
	}
}

// Generate extends the thread by steps-1 chords and returns the pins
// visited, including the starting pin.  The first call chooses a starting
// pin; later calls continue from the last pin of the previous path.
func (e *Engine[T]) Generate(steps int) ([]int, error) {
	if steps < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrSteps, steps)
	}

	p := e.last
	if p < 0 {
		p = e.seed()
	}
	path := make([]int, 1, steps)
	path[0] = p

	for step := 1; step < steps; step++ {
		t0 := time.Now()
		q := e.next(p)
		t1 := time.Now()
		score := e.apply(p, q)
		t2 := time.Now()

		path = append(path, q)
		e.cfg.Observer.StepComputed(step, q, score, Timings{
			Search: t1.Sub(t0),
			Update: t2.Sub(t1),
		})
		p = q
	}
	e.last = p
	return path, nil
}

// apply draws the chord between p and q, rescores all connections crossing
// it and returns the score the chord had.
func (e *Engine[T]) apply(p, q int) float64 {
	id, ok := e.reg.Lookup(p, q)
	if !ok {
		panic("stringart: drawing an unknown connection")
	}
	score := e.reg.ScoreOf(id)

	e.draw(p, q)
	e.sweep(func(c int) {
		if c == id || e.used[c] || !e.reg.Active(c) || !e.reg.Crosses(c, p, q) {
			return
		}
		e.rescore(c, p, q)
	})
	e.reg.SetScore(id, 0)
	e.used[id] = true

	for _, pt := range e.touched {
		e.prev.dark.Set(pt, e.cur.dark.At(pt))
		e.prev.strings.Set(pt, e.cur.strings.At(pt))
	}
	return score
}

// draw marks the full chord in the string raster and darkens the trimmed
// chord.  The pixels modified are recorded in e.touched.
func (e *Engine[T]) draw(p, q int) {
	e.touched = e.touched[:0]

	l := NewLine(e.pins[p], e.pins[q])
	for ok := true; ok; ok = l.Step() {
		pt := l.Point()
		e.cur.strings.Set(pt, ScoreResolution)
		e.touched = append(e.touched, pt)
	}

	if e.cfg.Metric == Similarity {
		return
	}
	l = e.line(p, q)
	prev := image.Point{X: -1, Y: -1}
	for ok := true; ok; ok = l.Step() {
		pt := l.Point()
		if pt == prev {
			continue
		}
		prev = pt
		e.cur.dark.Set(pt, T(float64(e.cur.dark.At(pt))*e.cfg.Retention))
	}
}

// rescore updates the score of connection id after the chord from p to q
// has been drawn.  Only the overlap band of the two chords is visited.
func (e *Engine[T]) rescore(id, p, q int) {
	length := e.reg.Length(id)
	if length <= 0 {
		return
	}
	a, b := e.reg.Pair(id)
	ov := Intersect(e.line(a, b), e.pins[a], e.pins[b], e.pins[p], e.pins[q], e.cfg.BandBuffer)

	c := toPoint(ov.Center())
	if e.prev.dark.In(c) && e.prev.dark.value(c) <= 0 {
		return
	}

	total := e.score.total(e.reg.ScoreOf(id), length)
	total += e.score.delta(&ov, e.prev, e.cur)
	e.reg.SetScore(id, e.score.finish(total, length))
}

// sweep calls fn for every connection id, spread over the worker
// goroutines.  Calls for different ids may run concurrently.
func (e *Engine[T]) sweep(fn func(id int)) {
	n := e.reg.Len()
	chunk := (n + e.workers - 1) / e.workers

	var g errgroup.Group
	g.SetLimit(e.workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			for id := lo; id < hi; id++ {
				fn(id)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// line returns the scoring line of the chord between pins a and b.
func (e *Engine[T]) line(a, b int) Line {
	l := NewLine(e.pins[a], e.pins[b])
	l.Trim(e.cfg.Clearance)
	return l
}

// Pins returns the pin coordinates.
func (e *Engine[T]) Pins() []image.Point {
	return slices.Clone(e.pins)
}

// Darkness returns the live darkness field.
func (e *Engine[T]) Darkness() *Field[T] {
	return e.cur.dark
}

// Strings returns the live string raster.  Pixels covered by a chord have
// the value ScoreResolution, all others are zero.
func (e *Engine[T]) Strings() *Field[T] {
	return e.cur.strings
}

// Registry gives read access to the connections and their scores.
func (e *Engine[T]) Registry() *Registry {
	return e.reg
}

// Config returns the configuration of the engine.
func (e *Engine[T]) Config() Config {
	return e.cfg
}
