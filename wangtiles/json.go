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

package wangtiles

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/geom/vec"
)

type jsonTileSet struct {
	Tiles []jsonTile `json:"tiles"`
}

type jsonTile struct {
	Samples     [][]float64 `json:"samples"`
	Subdivision [][]int     `json:"subdivision"`
}

// Read decodes a JSON tile set and validates it.
func Read(r io.Reader) (*TileSet, error) {
	var in jsonTileSet
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, err
	}

	tiles := make([]Tile, len(in.Tiles))
	for k, jt := range in.Tiles {
		samples := make([]vec.Vec2, len(jt.Samples))
		for i, pt := range jt.Samples {
			if len(pt) != 2 {
				return nil, fmt.Errorf("%w: tile %d: sample %d has %d coordinates",
					ErrMalformed, k, i, len(pt))
			}
			samples[i] = vec.Vec2{X: pt[0], Y: pt[1]}
		}
		tiles[k] = Tile{Samples: samples, Children: jt.Subdivision}
	}
	return New(tiles)
}

// Load reads a JSON tile set from a file.
func Load(fileName string) (*TileSet, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ts, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return ts, nil
}

// Write encodes the tile set as JSON.
func (ts *TileSet) Write(w io.Writer) error {
	out := jsonTileSet{Tiles: make([]jsonTile, len(ts.Tiles))}
	for k, tile := range ts.Tiles {
		samples := make([][]float64, len(tile.Samples))
		for i, s := range tile.Samples {
			samples[i] = []float64{s.X, s.Y}
		}
		out.Tiles[k] = jsonTile{Samples: samples, Subdivision: tile.Children}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
