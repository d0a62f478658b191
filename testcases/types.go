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

// Package testcases provides a catalogue of stippling scenarios, used by the
// tests and by the commands which export reference data.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stipple"
	"seehuhn.de/go/stipple/wangtiles"
)

// TestCase defines a single stippling run.
type TestCase struct {
	Name   string             // lowercase a-z, 0-9 and _ only
	Width  int                // canvas width in pixels
	Height int                // canvas height in pixels
	Source Source             // the density signal
	Bias   float64            // tone scale bias in [0, 1]
	Start  int                // start tile index
	Tiles  *wangtiles.TileSet // tile set to use
}

// Source is the density signal of a test case.
type Source interface {
	isSource()
}

// Constant is a density which is the same everywhere.
type Constant struct {
	Density float64
}

func (Constant) isSource() {}

// Points is a density field obtained by binarizing a point set.
// The canvas size of the point set must match the test case.
type Points struct {
	Set *stipple.PointSet
}

func (Points) isSource() {}

// Density returns the density source described by tc.Source.
func (tc TestCase) Density() stipple.DensitySource {
	switch src := tc.Source.(type) {
	case Constant:
		return stipple.Scalar(src.Density)
	case Points:
		return src.Set.Density()
	default:
		panic("unknown density source")
	}
}

// Run stipples the test case, using the given number of workers.
func (tc TestCase) Run(workers int) (*stipple.PointSet, error) {
	res := stipple.NewPointSet(tc.Width, tc.Height)
	r := stipple.NewRefiner(tc.Tiles, tc.Density(), stipple.TonalRange(tc.Bias))
	r.Workers = workers
	err := r.Refine(res, stipple.Rect{Width: tc.Width, Height: tc.Height}, tc.Start)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
