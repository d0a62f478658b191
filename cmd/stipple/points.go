// seehuhn.de/go/stipple - blue-noise stippling with Wang tiles
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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/stipple"
)

// jsonPointSet is the file format for point sets, used both for the output
// and for the -source option.
type jsonPointSet struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Points [][2]int `json:"points"`
}

func loadPoints(fileName string) (*stipple.PointSet, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var in jsonPointSet
	if err := json.NewDecoder(f).Decode(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	if in.Width < 0 || in.Height < 0 {
		return nil, fmt.Errorf("%s: invalid canvas size %dx%d", fileName, in.Width, in.Height)
	}

	ps := stipple.NewPointSet(in.Width, in.Height)
	for _, p := range in.Points {
		ps.Append(stipple.Point{X: p[0], Y: p[1]})
	}
	return ps, nil
}

func writePoints(w io.Writer, ps *stipple.PointSet) error {
	out := jsonPointSet{
		Width:  ps.Width(),
		Height: ps.Height(),
		Points: make([][2]int, ps.Len()),
	}
	for i, p := range ps.Points() {
		out.Points[i] = [2]int{p.X, p.Y}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
