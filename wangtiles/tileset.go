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

// Package wangtiles holds precomputed Wang tile sets in memory.
//
// A tile set consists of tiles with ranked sample positions in the unit
// square, together with a subdivision table which says how each tile is
// replaced by a grid of smaller tiles.  This package does not generate tile
// sets; it loads, validates and serves them.
package wangtiles

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// ErrMalformed is wrapped by all errors reporting an inconsistent tile set.
var ErrMalformed = errors.New("malformed tile set")

// Tile is a single Wang tile.
type Tile struct {
	// Samples are the sample positions in [0,1)×[0,1), in order of
	// decreasing priority.
	Samples []vec.Vec2

	// Children is the subdivision of the tile: Children[i][j] is the index
	// of the tile in column i and row j.  The grid must be square.
	Children [][]int
}

// TileSet is an in-memory Wang tile set.
// A TileSet is safe for concurrent reads.
type TileSet struct {
	Tiles []Tile
}

// New returns a tile set consisting of the given tiles, after checking
// that the tiles are consistent.
func New(tiles []Tile) (*TileSet, error) {
	ts := &TileSet{Tiles: tiles}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return ts, nil
}

// SelfSimilar returns a tile set with a single tile, which subdivides into
// a splits×splits grid of copies of itself.
func SelfSimilar(samples []vec.Vec2, splits int) (*TileSet, error) {
	children := make([][]int, splits)
	for i := range children {
		children[i] = make([]int, splits)
	}
	return New([]Tile{{Samples: samples, Children: children}})
}

// NumTiles returns the number of tiles in the set.
func (ts *TileSet) NumTiles() int {
	return len(ts.Tiles)
}

// Samples returns the sample positions of a tile.
func (ts *TileSet) Samples(tile int) ([]vec.Vec2, error) {
	if tile < 0 || tile >= len(ts.Tiles) {
		return nil, fmt.Errorf("%w: no tile %d", ErrMalformed, tile)
	}
	return ts.Tiles[tile].Samples, nil
}

// Subdivisions returns the child tiles of a tile, indexed by column and row,
// together with the number of children along each axis.
func (ts *TileSet) Subdivisions(tile int) ([][]int, int, error) {
	if tile < 0 || tile >= len(ts.Tiles) {
		return nil, 0, fmt.Errorf("%w: no tile %d", ErrMalformed, tile)
	}
	children := ts.Tiles[tile].Children
	if len(children) == 0 {
		return nil, 0, fmt.Errorf("%w: tile %d has no subdivision", ErrMalformed, tile)
	}
	return children, len(children), nil
}

// Validate checks that all sample positions lie in the unit square and that
// every subdivision is a non-empty square grid of valid tile indices.
func (ts *TileSet) Validate() error {
	n := len(ts.Tiles)
	if n == 0 {
		return fmt.Errorf("%w: no tiles", ErrMalformed)
	}
	for k, tile := range ts.Tiles {
		for i, s := range tile.Samples {
			if !(s.X >= 0 && s.X < 1 && s.Y >= 0 && s.Y < 1) {
				return fmt.Errorf("%w: tile %d: sample %d at %v outside the unit square",
					ErrMalformed, k, i, s)
			}
		}

		splits := len(tile.Children)
		if splits == 0 {
			return fmt.Errorf("%w: tile %d has no subdivision", ErrMalformed, k)
		}
		for i, col := range tile.Children {
			if len(col) != splits {
				return fmt.Errorf("%w: tile %d: subdivision column %d has %d entries, want %d",
					ErrMalformed, k, i, len(col), splits)
			}
			for j, child := range col {
				if child < 0 || child >= n {
					return fmt.Errorf("%w: tile %d: child (%d,%d) refers to tile %d",
						ErrMalformed, k, i, j, child)
				}
			}
		}
	}
	return nil
}
