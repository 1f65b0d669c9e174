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
	"image"
	"io"
	"time"

	"github.com/JoshPattman/jcode"
)

// JCodeOptions describes the winding machine a path is sent to.
type JCodeOptions struct {
	Diameter float64       // diameter of the pin circle, in machine units
	Speed    float64       // toolhead speed, in units per second
	Dwell    time.Duration // pause at each pin, to wrap the thread
}

// DefaultJCode returns options for a 400 unit board.
func DefaultJCode() JCodeOptions {
	return JCodeOptions{Diameter: 400, Speed: 50, Dwell: 250 * time.Millisecond}
}

// JCode converts a path into machine instructions.  The toolhead visits the
// pins in order; the pen is lowered at the first pin and raised after the
// last.  Machine coordinates are centred on the pin circle, with y
// pointing up.
func JCode(width, height int, pins []image.Point, p []int, opt JCodeOptions) []jcode.Instruction {
	if len(p) == 0 {
		return nil
	}
	scale := opt.Diameter / pinSpan(pins)
	cx, cy := float64(width)/2, float64(height)/2

	code := []jcode.Instruction{jcode.Speed{Speed: opt.Speed}}
	for i, pin := range p {
		q := pins[pin]
		code = append(code, jcode.Waypoint{
			XPos: (float64(q.X) + 0.5 - cx) * scale,
			YPos: (cy - float64(q.Y) - 0.5) * scale,
		})
		if i == 0 {
			code = append(code, jcode.Pen{Mode: jcode.PenDown})
		}
		if opt.Dwell > 0 {
			code = append(code, jcode.Delay{Duration: opt.Dwell})
		}
	}
	return append(code, jcode.Pen{Mode: jcode.PenUp})
}

// WriteJCode encodes the machine instructions for a path.
func WriteJCode(w io.Writer, width, height int, pins []image.Point, p []int, opt JCodeOptions) error {
	return jcode.NewEncoder(w).Write(JCode(width, height, pins, p, opt)...)
}

// pinSpan returns the larger of the horizontal and vertical extent of the
// pins, or 1 for a degenerate layout.
func pinSpan(pins []image.Point) float64 {
	if len(pins) == 0 {
		return 1
	}
	r := image.Rectangle{Min: pins[0], Max: pins[0]}
	for _, q := range pins[1:] {
		r.Min.X = min(r.Min.X, q.X)
		r.Min.Y = min(r.Min.Y, q.Y)
		r.Max.X = max(r.Max.X, q.X)
		r.Max.Y = max(r.Max.Y, q.Y)
	}
	span := float64(max(r.Dx(), r.Dy()))
	if span == 0 {
		return 1
	}
	return span
}
