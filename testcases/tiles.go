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

package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stipple/wangtiles"
)

// Diagonal is a single tile with four samples on the main diagonal, which
// subdivides into 2×2 copies of itself.
var Diagonal = mustTiles(wangtiles.SelfSimilar([]vec.Vec2{
	pt(0.1, 0.1),
	pt(0.3, 0.3),
	pt(0.6, 0.6),
	pt(0.9, 0.9),
}, 2))

// Checker has two tiles with eight samples each.  Each tile subdivides into
// a 2×2 checkerboard of both tiles.
var Checker = mustTiles(wangtiles.New([]wangtiles.Tile{
	{
		Samples: []vec.Vec2{
			pt(0.52, 0.47), pt(0.13, 0.21), pt(0.81, 0.86), pt(0.27, 0.74),
			pt(0.88, 0.12), pt(0.35, 0.02), pt(0.06, 0.93), pt(0.69, 0.31),
		},
		Children: [][]int{{0, 1}, {1, 0}},
	},
	{
		Samples: []vec.Vec2{
			pt(0.44, 0.58), pt(0.91, 0.33), pt(0.18, 0.84), pt(0.62, 0.09),
			pt(0.05, 0.38), pt(0.77, 0.71), pt(0.31, 0.16), pt(0.55, 0.96),
		},
		Children: [][]int{{1, 0}, {0, 1}},
	},
}))

// Jitter is a single tile with nine samples, one per cell of a 3×3 grid,
// which subdivides into 3×3 copies of itself.
var Jitter = mustTiles(wangtiles.SelfSimilar([]vec.Vec2{
	pt(0.49, 0.52), pt(0.12, 0.08), pt(0.85, 0.90),
	pt(0.20, 0.79), pt(0.81, 0.18), pt(0.55, 0.23),
	pt(0.47, 0.88), pt(0.09, 0.44), pt(0.92, 0.61),
}, 3))

func mustTiles(ts *wangtiles.TileSet, err error) *wangtiles.TileSet {
	if err != nil {
		panic(err)
	}
	return ts
}
