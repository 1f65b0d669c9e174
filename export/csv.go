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

// Package export writes string art paths and rasters in various formats.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the pin indices of a path, one per line.
func WriteCSV(w io.Writer, path []int) error {
	cw := csv.NewWriter(w)
	rec := make([]string, 1)
	for _, p := range path {
		rec[0] = strconv.Itoa(p)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a path written by WriteCSV.
func ReadCSV(r io.Reader) ([]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Join(errors.New("could not read path"), err)
	}
	path := make([]int, len(recs))
	for i, rec := range recs {
		p, err := strconv.Atoi(rec[0])
		if err != nil || p < 0 {
			return nil, fmt.Errorf("line %d: invalid pin %q", i+1, rec[0])
		}
		path[i] = p
	}
	return path, nil
}
