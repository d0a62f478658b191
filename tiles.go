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

package stipple

import "seehuhn.de/go/geom/vec"

// TileProvider gives access to a set of Wang tiles with precomputed
// sample positions.
//
// The stippler treats the tile set as read-only; a TileProvider used with
// a parallel [Refiner] must be safe for concurrent reads.
type TileProvider interface {
	// NumTiles returns the number of tiles.  Valid tile indices are
	// 0, ..., NumTiles()-1.
	NumTiles() int

	// Samples returns the sample positions of a tile, normalized to the
	// unit square [0,1)×[0,1).  The order encodes priority: samples with
	// lower index are emitted first.
	Samples(tile int) ([]vec.Vec2, error)

	// Subdivisions returns the tiles which replace the given tile when
	// it is split into splits×splits parts.  children[i][j] is the tile
	// for column i and row j.  The provider guarantees that neighbouring
	// children have matching edges.
	Subdivisions(tile int) (children [][]int, splits int, err error)
}
