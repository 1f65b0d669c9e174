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
	"bufio"
	"fmt"
	"image"
	"io"

	svg "github.com/ajstarks/svgo"
)

// SVGOptions controls the SVG output.
type SVGOptions struct {
	Thread  float64 // stroke width, in field pixels
	Opacity float64 // stroke opacity
	Pins    bool    // mark the pins
	Title   string
}

// WriteSVG writes the thread as an SVG polyline over a white background.
func WriteSVG(w io.Writer, width, height int, pins []image.Point, p []int, opt SVGOptions) error {
	// svgo discards write errors; the buffered writer keeps the first one
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(width, height)
	if opt.Title != "" {
		canvas.Title(opt.Title)
	}
	canvas.Rect(0, 0, width, height, "fill:white")

	if opt.Pins {
		for _, q := range pins {
			canvas.Circle(q.X, q.Y, 1, "fill:gray")
		}
	}

	if len(p) > 1 {
		xs := make([]int, len(p))
		ys := make([]int, len(p))
		for i, pin := range p {
			xs[i], ys[i] = pins[pin].X, pins[pin].Y
		}
		style := fmt.Sprintf("fill:none;stroke:black;stroke-width:%g;stroke-opacity:%g;stroke-linejoin:round",
			opt.Thread, opt.Opacity)
		canvas.Polyline(xs, ys, style)
	}
	canvas.End()
	return bw.Flush()
}
