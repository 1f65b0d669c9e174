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

// Command genref regenerates the reference outputs for the string art tests.
// For every test case it writes the path as CSV, the string raster as PNG
// and a vector rendering of the thread as PDF.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/stringart"
	"seehuhn.de/go/stringart/export"
	"seehuhn.de/go/stringart/testcases"
)

const refDir = "testdata/reference"

func main() {
	// Create output directory
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	// Process all test cases
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, filepath.Join(refDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, base string) error {
	dark := stringart.NewField[float64](tc.Width, tc.Height)
	for i, c := range tc.Coverage() {
		dark.Pix[i] = c * stringart.ScoreResolution
	}

	cfg := stringart.DefaultConfig()
	cfg.Pins = tc.Pins
	cfg.MinSeparation = tc.Separation
	cfg.Radius = 0.9
	cfg.Workers = 1
	e, err := stringart.New(dark, cfg)
	if err != nil {
		return err
	}
	path, err := e.Generate(tc.Steps)
	if err != nil {
		return err
	}

	f, err := os.Create(base + ".csv")
	if err != nil {
		return err
	}
	if err := export.WriteCSV(f, path); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	err = export.SavePNG(base+".png", export.StringImage(e.Strings(), nil))
	if err != nil {
		return err
	}

	return export.WritePDF(base+".pdf", tc.Width, tc.Height, e.Pins(), path, export.DefaultPDF())
}
