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
	"slices"

	"seehuhn.de/go/geom/rect"
)

// PointSet is an ordered list of points on a width×height canvas.
//
// Points can only be appended.  No deduplication takes place: if two tile
// placements select the same pixel, the pixel occurs twice.
type PointSet struct {
	width, height int
	points        []Point
}

// NewPointSet returns an empty point set for a canvas of the given size.
func NewPointSet(width, height int) *PointSet {
	return &PointSet{width: width, height: height}
}

// Width returns the canvas width in pixels.
func (ps *PointSet) Width() int { return ps.width }

// Height returns the canvas height in pixels.
func (ps *PointSet) Height() int { return ps.height }

// Len returns the number of points, including duplicates.
func (ps *PointSet) Len() int { return len(ps.points) }

// Points returns the points in the order they were appended.
// The returned slice must not be modified.
func (ps *PointSet) Points() []Point { return ps.points }

// Append adds points to the end of the set.
func (ps *PointSet) Append(p ...Point) {
	ps.points = append(ps.points, p...)
}

// Contains reports whether (x, y) is in the set.
// This is a linear scan.
func (ps *PointSet) Contains(x, y int) bool {
	return slices.Contains(ps.points, Point{X: x, Y: y})
}

// Clone returns an independent copy of ps.
func (ps *PointSet) Clone() *PointSet {
	return &PointSet{
		width:  ps.width,
		height: ps.height,
		points: slices.Clone(ps.points),
	}
}

// Bounds returns the canvas as a rectangle in device coordinates.
func (ps *PointSet) Bounds() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(ps.width),
		URy: float64(ps.height),
	}
}

// Density binarizes the point set into a density field of the same size.
// Cells containing at least one point have value 1, all other cells
// have value 0.  Points outside the canvas are ignored.
func (ps *PointSet) Density() *Field {
	f := NewField(ps.width, ps.height)
	for _, p := range ps.points {
		if p.X < 0 || p.Y < 0 || p.X >= ps.width || p.Y >= ps.height {
			continue
		}
		f.Set(p.X, p.Y, 1)
	}
	return f
}
