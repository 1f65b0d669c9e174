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

import "errors"

// Configuration errors returned by New and Generate.  They are wrapped with
// details; test for them with errors.Is.
var (
	// ErrSteps is returned by Generate when fewer than two steps are
	// requested.
	ErrSteps = errors.New("stringart: at least two steps are required")

	// ErrSeparation means that the pin count and minimum separation do not
	// admit any connection.
	ErrSeparation = errors.New("stringart: pin count too small for the minimum separation")

	ErrRadius    = errors.New("stringart: pin radius must be in (0, 1]")
	ErrRetention = errors.New("stringart: retention must be in [0, 1]")
	ErrDepth     = errors.New("stringart: lookahead depth must be at least 1")
	ErrMetric    = errors.New("stringart: unknown metric")
	ErrWeight    = errors.New("stringart: neighbour weight must not be negative")
	ErrClearance = errors.New("stringart: clearance and band buffer must not be negative")

	// ErrEmptyField is returned for a missing darkness field, or one whose
	// pixel slice does not match its dimensions.
	ErrEmptyField = errors.New("stringart: empty or malformed darkness field")

	// ErrPinBounds means that a pin lies too close to the image border.
	ErrPinBounds = errors.New("stringart: pins too close to the image border")
)
