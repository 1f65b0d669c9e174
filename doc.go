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

// Package stringart computes string art: a sequence of pins on a circle such
// that straight threads drawn from pin to pin approximate the darkness of an
// image.
//
// The engine scores every admissible pair of pins against a darkness field.
// It then repeatedly picks the next pin with a bounded lookahead, draws the
// chord, and rescores only the connections crossing it.  Rescoring walks
// the narrow band where two chords overlap, so a step costs time
// proportional to the number of crossing chords rather than to the image
// size.
//
// Darkness values range from 0 (nothing left to draw) to ScoreResolution.
// The image decoding and output formats are found in the subpackages
// prepare and export.
package stringart

//go:generate go run ./testcases/genref
