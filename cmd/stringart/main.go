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

// Command stringart converts an image into a string art path.
//
// The path is written as a CSV file with one pin index per line, together
// with a rendering of the string raster, an anti-aliased preview and vector
// versions of the thread.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	"seehuhn.de/go/stringart"
	"seehuhn.de/go/stringart/export"
	"seehuhn.de/go/stringart/prepare"
)

type options struct {
	output  string
	steps   int
	cfg     stringart.Config
	prep    prepare.Options
	debug   bool
	jcode   bool
	report  int
	preview export.PreviewOptions
	machine export.JCodeOptions
}

func main() {
	def := stringart.DefaultConfig()
	prep := prepare.DefaultOptions()
	preview := export.DefaultPreview()
	machine := export.DefaultJCode()

	input := flag.String("input", "", "Input image path")
	output := flag.String("output", "result", "Output directory")
	width := flag.Int("width", 500, "Width of the darkness field in pixels, 0 keeps the image width")
	steps := flag.Int("steps", 4000, "Number of pins in the path")
	pins := flag.Int("pins", def.Pins, "Number of pins")
	radius := flag.Float64("radius", def.Radius, "Radius of the pin circle, as a fraction of the image")
	separation := flag.Int("separation", def.MinSeparation, "Minimum index distance between connected pins")
	metric := flag.Int("metric", int(def.Metric), "Scoring metric: 0 darkening, 1 similarity, 2 rms")
	retention := flag.Float64("retention", def.Retention, "Darkness kept by a pixel when a thread covers it")
	depth := flag.Int("depth", def.Depth, "Lookahead depth")
	weight := flag.Float64("weight", def.NeighbourWeight, "Weight of the pixels beside a thread")
	clearance := flag.Int("clearance", def.Clearance, "Samples ignored at each end of a chord")
	cull := flag.Float64("cull", def.CullFloor, "Remove connections with a lower initial score")
	workers := flag.Int("workers", 0, "Number of rescoring goroutines, 0 for all CPUs")
	saturation := flag.Float64("saturation", prep.Saturation, "Fraction of the darkest pixels clipped to black")
	equalize := flag.Bool("equalize", false, "Equalise the darkness histogram")
	invert := flag.Bool("invert", false, "Invert the image, for light thread on a dark board")
	sample := flag.String("type", "float32", "Sample type: float32, float64, int16 or int32")
	debug := flag.Bool("debug", false, "Append the remaining darkness to the string image")
	report := flag.Int("report", 100, "Report progress every n steps, 0 to disable")
	thread := flag.Float64("thread", preview.Thread, "Thread width for the preview, in field pixels")
	opacity := flag.Float64("opacity", preview.Opacity, "Opacity of a single thread in the preview")
	scale := flag.Float64("scale", preview.Scale, "Scale factor of the preview")
	jcode := flag.Bool("jcode", false, "Also write a JCode program for a winding machine")
	diameter := flag.Float64("diameter", machine.Diameter, "Diameter of the pin circle on the machine")
	speed := flag.Float64("speed", machine.Speed, "Toolhead speed in units/s")
	dwell := flag.Duration("dwell", machine.Dwell, "Pause at each pin")
	flag.Parse()

	if *input == "" {
		failf("Please specify an input image")
	}

	cfg := def
	cfg.Pins = *pins
	cfg.Radius = *radius
	cfg.MinSeparation = *separation
	cfg.Metric = stringart.Metric(*metric)
	cfg.Retention = *retention
	cfg.Depth = *depth
	cfg.NeighbourWeight = *weight
	cfg.Clearance = *clearance
	cfg.CullFloor = *cull
	cfg.Workers = *workers

	prep.Width = *width
	prep.Radius = *radius
	prep.Saturation = *saturation
	prep.Equalize = *equalize
	prep.Invert = *invert

	opt := &options{
		output:  *output,
		steps:   *steps,
		cfg:     cfg,
		prep:    prep,
		debug:   *debug,
		jcode:   *jcode,
		report:  *report,
		preview: export.PreviewOptions{Scale: *scale, Thread: *thread, Opacity: *opacity},
		machine: export.JCodeOptions{Diameter: *diameter, Speed: *speed, Dwell: *dwell},
	}

	img, err := prepare.Open(*input)
	if err != nil {
		failf("could not load input image: %v", err)
	}
	err = os.MkdirAll(*output, os.ModePerm)
	if err != nil {
		failf("could not create output directory: %v", err)
	}

	switch *sample {
	case "float32":
		err = run[float32](img, opt)
	case "float64":
		err = run[float64](img, opt)
	case "int16":
		err = run[int16](img, opt)
	case "int32":
		err = run[int32](img, opt)
	default:
		failf("unknown sample type %q", *sample)
	}
	if err != nil {
		failf("%v", err)
	}
}

func run[T stringart.Sample](img image.Image, opt *options) error {
	dark := prepare.Darkness[T](img, opt.prep)
	w, h := dark.Width, dark.Height
	log.Printf("darkness field %dx%d", w, h)

	cfg := opt.cfg
	if opt.report > 0 {
		cfg.Observer = newProgress(opt.steps, opt.report)
	}

	start := time.Now()
	e, err := stringart.New(dark, cfg)
	if err != nil {
		return err
	}
	log.Printf("scored %d connections in %v", e.Registry().ActiveCount(),
		time.Since(start).Round(time.Millisecond))

	path, err := e.Generate(opt.steps)
	if err != nil {
		return err
	}
	pins := e.Pins()
	log.Printf("%s", export.Summarize(pins, path, e.Strings(), e.Darkness()))

	out := func(name string) string { return filepath.Join(opt.output, name) }

	f, err := os.Create(out("path.csv"))
	if err != nil {
		return errors.Join(errors.New("could not create output file"), err)
	}
	err = export.WriteCSV(f, path)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	var debug *stringart.Field[T]
	if opt.debug {
		debug = e.Darkness()
	}
	if err := export.SavePNG(out("strings.png"), export.StringImage(e.Strings(), debug)); err != nil {
		return err
	}
	if err := export.SavePNG(out("preview.png"), export.Preview(w, h, pins, path, opt.preview)); err != nil {
		return err
	}

	pdfOpt := export.DefaultPDF()
	pdfOpt.Thread = opt.preview.Thread
	if err := export.WritePDF(out("path.pdf"), w, h, pins, path, pdfOpt); err != nil {
		return err
	}

	f, err = os.Create(out("path.svg"))
	if err != nil {
		return errors.Join(errors.New("could not create output file"), err)
	}
	err = export.WriteSVG(f, w, h, pins, path, export.SVGOptions{
		Thread:  opt.preview.Thread,
		Opacity: opt.preview.Opacity,
		Pins:    true,
		Title:   filepath.Base(opt.output),
	})
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return errors.Join(errors.New("could not write SVG"), err)
	}

	if opt.jcode {
		f, err = os.Create(out("path.jcode"))
		if err != nil {
			return errors.Join(errors.New("could not create output file"), err)
		}
		err = export.WriteJCode(f, w, h, pins, path, opt.machine)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}

	fmt.Println("Exported", opt.output)
	return nil
}

func failf(f string, args ...any) {
	fmt.Printf(f+"\n", args...)
	os.Exit(1)
}
