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

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMinSize is the size below which rectangles are not subdivided.
	DefaultMinSize = 8

	// DefaultMaxDepth is the maximal recursion depth.
	DefaultMaxDepth = 5
)

const (
	sampleRadius = 1   // radius of the density probe around each sample, in pixels
	radiusBase   = 1.0 // the emission factor is scaled by radiusBase^-2

	emissionScale = 0.1
	capacityScale = 100 // emissionScale^-2
	splitMargin   = 16
)

// Node describes one tile placement visited by a [Refiner].
type Node struct {
	Rect  Rect // the area covered by the tile
	Tile  int  // the tile index
	Depth int  // 0 for the root

	Emitted    int  // number of points emitted for this placement
	Subdivided bool // whether child placements follow

	// RequiredDensity is the total density of the source inside Rect.
	RequiredDensity float64

	// TileAvgDensity is the number of tile samples per pixel, capped at 1.
	TileAvgDensity float64
}

// Refiner places tile samples over a rectangle and recursively subdivides
// the rectangle where the requested density exceeds what the current tile
// resolution can represent.
//
// The output of a Refiner only depends on its inputs; there is no internal
// randomness.
type Refiner struct {
	// Tiles is the Wang tile set to take sample positions from.
	Tiles TileProvider

	// Density is the density signal to approximate.
	Density DensitySource

	// ToneScale controls how aggressively density differences translate
	// into point density.  Must be positive.  See [TonalRange].
	ToneScale int

	// MinSize is the size (in pixels) at or below which a rectangle is
	// never subdivided.
	MinSize int

	// MaxDepth is the recursion depth at which subdivision stops.
	MaxDepth int

	// Workers limits the number of goroutines used to refine the children
	// of the root.  Values below 2 select sequential refinement.  The
	// output is the same in both cases.
	Workers int

	// Trace, if not nil, is called once for every visited tile placement,
	// before the placement's children are visited.  If Workers > 1, Trace
	// may be called concurrently.
	Trace func(Node)
}

// NewRefiner returns a Refiner with the default size and depth limits.
func NewRefiner(tiles TileProvider, density DensitySource, toneScale int) *Refiner {
	return &Refiner{
		Tiles:     tiles,
		Density:   density,
		ToneScale: toneScale,
		MinSize:   DefaultMinSize,
		MaxDepth:  DefaultMaxDepth,
	}
}

// Refine stipples the rectangle area and appends the resulting points to dst.
//
// The root placement uses tile start mod NumTiles().  If an error occurs,
// dst is left unchanged.
func (r *Refiner) Refine(dst *PointSet, area Rect, start int) error {
	n := r.Tiles.NumTiles()
	if n <= 0 {
		return ErrNoTiles
	}
	if start < 0 {
		return fmt.Errorf("start tile %d: %w", start, ErrTileIndex)
	}
	if r.ToneScale <= 0 {
		return fmt.Errorf("%w: %d", ErrToneScale, r.ToneScale)
	}

	points, err := r.refine(nil, area, start%n, 0)
	if err != nil {
		return err
	}
	dst.Append(points...)
	return nil
}

// refine covers area with the given tile, appends the accepted samples to
// buf, and recurses into the subdivision of the tile if needed.
func (r *Refiner) refine(buf []Point, area Rect, tile, depth int) ([]Point, error) {
	if area.Empty() {
		return buf, nil
	}
	if n := r.Tiles.NumTiles(); tile < 0 || tile >= n {
		return buf, fmt.Errorf("tile %d of %d: %w", tile, n, ErrTileIndex)
	}

	samples, err := r.Tiles.Samples(tile)
	if err != nil {
		return buf, err
	}
	capacity := float64(len(samples))

	node := Node{
		Rect:            area,
		Tile:            tile,
		Depth:           depth,
		RequiredDensity: r.Density.AreaDensity(area),
		TileAvgDensity:  min(1, capacity/float64(area.Area())),
	}

	factor := r.emissionFactor(depth)
	for i, s := range samples {
		p := Point{
			X: area.Left() + int(float64(area.Width)*s.X),
			Y: area.Top() + int(float64(area.Height)*s.Y),
		}
		disk := r.Density.DiskDensity(p, sampleRadius)
		diskAvg := disk / (sampleRadius * sampleRadius * math.Pi)
		if diskAvg < float64(i)*factor {
			continue
		}
		buf = append(buf, p)
		node.Emitted++
	}

	if area.Width <= r.MinSize || area.Height <= r.MinSize || depth >= r.MaxDepth ||
		!r.needsSplit(depth, capacity) {
		r.trace(node)
		return buf, nil
	}

	children, splits, err := r.Tiles.Subdivisions(tile)
	if err != nil {
		return buf, err
	}
	if err := checkSubdivision(children, splits); err != nil {
		return buf, fmt.Errorf("tile %d: %w", tile, err)
	}

	node.Subdivided = true
	r.trace(node)

	if depth == 0 && r.Workers > 1 {
		return r.refineParallel(buf, area, children, splits, depth)
	}

	splitRect(area, splits, func(i, j int, cell Rect) bool {
		buf, err = r.refine(buf, cell, children[i][j], depth+1)
		return err == nil
	})
	return buf, err
}

// refineParallel refines the children of one placement concurrently.  Every
// child writes into its own buffer; the buffers are concatenated in the order
// sequential refinement would have produced.
func (r *Refiner) refineParallel(buf []Point, area Rect, children [][]int, splits, depth int) ([]Point, error) {
	parts := make([][]Point, splits*splits)

	var g errgroup.Group
	g.SetLimit(r.Workers)
	splitRect(area, splits, func(i, j int, cell Rect) bool {
		k := j*splits + i
		tile := children[i][j]
		g.Go(func() error {
			part, err := r.refine(nil, cell, tile, depth+1)
			parts[k] = part
			return err
		})
		return true
	})
	if err := g.Wait(); err != nil {
		return buf, err
	}

	for _, part := range parts {
		buf = append(buf, part...)
	}
	return buf, nil
}

// emissionFactor returns the per-rank acceptance threshold at the given
// depth: sample i is emitted if the local average density is at least
// i times this value.
func (r *Refiner) emissionFactor(depth int) float64 {
	return emissionScale / math.Pow(radiusBase, -2) *
		math.Pow(4, 2*float64(depth)) / float64(r.ToneScale)
}

// needsSplit reports whether a tile with the given number of samples is too
// coarse at this depth.
func (r *Refiner) needsSplit(depth int, capacity float64) bool {
	required := capacityScale / math.Pow(4, 2*float64(depth)) * float64(r.ToneScale)
	return required-capacity > splitMargin*capacity
}

func (r *Refiner) trace(node Node) {
	if r.Trace != nil {
		r.Trace(node)
	}
}

// checkSubdivision makes sure that children can be indexed as an
// splits×splits grid.  Tile indices are checked when the children are
// visited.
func checkSubdivision(children [][]int, splits int) error {
	if splits <= 0 {
		return fmt.Errorf("%w: %d splits", ErrSubdivision, splits)
	}
	if len(children) < splits {
		return fmt.Errorf("%w: %d columns, need %d", ErrSubdivision, len(children), splits)
	}
	for i := range splits {
		if len(children[i]) < splits {
			return fmt.Errorf("%w: column %d has %d rows, need %d",
				ErrSubdivision, i, len(children[i]), splits)
		}
	}
	return nil
}
