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

// Package stipple converts a density signal into a set of pixel positions
// ("stipple points") whose local frequency follows the density.
//
// Points are taken from the precomputed sample patterns of a Wang tile set.
// A rectangle is first covered by a single tile; where more detail is
// needed, the rectangle is split into a grid of matching child tiles and
// the process repeats, up to a fixed depth.  Because the tiling is
// aperiodic, the resulting point set has blue-noise characteristics
// without visible repetition.
package stipple

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"errors"
	"math"
)

var (
	// ErrNoTiles is returned when the tile set is empty.
	ErrNoTiles = errors.New("tile set has no tiles")

	// ErrTileIndex is returned for tile indices outside the tile set.
	ErrTileIndex = errors.New("tile index out of range")

	// ErrSubdivision is returned when a subdivision table does not have
	// the announced shape.
	ErrSubdivision = errors.New("malformed subdivision")

	// ErrToneScale is returned for non-positive tone scales.
	ErrToneScale = errors.New("tone scale must be positive")
)

// TonalRange maps a tone scale bias from the range [0, 1] to the tone scale
// used by the [Refiner]:
//
//	⌊10^⌊6·bias⌋⌋ + 10000
//
// Larger values make the stippler subdivide deeper and accept more samples.
func TonalRange(bias float64) int {
	return int(math.Floor(math.Pow(10, math.Floor(bias*6)))) + 10000
}

// Stipple covers a width×height canvas with points of constant density.
//
// The start tile is reduced modulo the number of tiles; choosing it at
// random is the only source of variation between runs.
func Stipple(density, bias float64, width, height, start int, tiles TileProvider) (*PointSet, error) {
	res := NewPointSet(width, height)
	r := NewRefiner(tiles, Scalar(density), TonalRange(bias))
	err := r.Refine(res, Rect{Width: width, Height: height}, start)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// StippleFromField stipples the canvas of src, using the binarized points
// of src as the density signal.
func StippleFromField(src *PointSet, bias float64, start int, tiles TileProvider) (*PointSet, error) {
	res := NewPointSet(src.Width(), src.Height())
	r := NewRefiner(tiles, src.Density(), TonalRange(bias))
	err := r.Refine(res, Rect{Width: src.Width(), Height: src.Height()}, start)
	if err != nil {
		return nil, err
	}
	return res, nil
}
