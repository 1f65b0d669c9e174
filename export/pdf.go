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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// PDFOptions controls the vector output.
type PDFOptions struct {
	Thread    float64 // line width, in field pixels
	Gray      float64 // thread colour, 0 is black
	PinMarker float64 // side length of the pin markers, 0 for none
}

// DefaultPDF returns options for thin black thread with small pin markers.
func DefaultPDF() PDFOptions {
	return PDFOptions{Thread: 0.25, PinMarker: 1}
}

// Chords returns the thread of a path as a single polyline, in field
// coordinates through the pin centres.
func Chords(pins []image.Point, p []int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for i, pin := range p {
			q := pins[pin]
			buf[0] = vec.Vec2{X: float64(q.X) + 0.5, Y: float64(q.Y) + 0.5}
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, buf[:]) {
				return
			}
		}
	}
}

// WritePDF writes a single page PDF file showing the thread.  One unit of
// the field is one PDF point.
func WritePDF(fname string, width, height int, pins []image.Point, p []int, opt PDFOptions) error {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; fields use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	if opt.PinMarker > 0 {
		page.SetFillColor(color.DeviceGray(0.5))
		s := opt.PinMarker
		for _, q := range pins {
			page.Rectangle(float64(q.X)+0.5-s/2, float64(q.Y)+0.5-s/2, s, s)
		}
		page.Fill()
	}

	if len(p) > 1 {
		page.SetStrokeColor(color.DeviceGray(opt.Gray))
		page.SetLineWidth(opt.Thread)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		for cmd, pts := range Chords(pins, p) {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			}
		}
		page.Stroke()
	}

	return page.Close()
}
