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

import "sync"

// DensitySource answers aggregate density queries for the refinement engine.
// Implementations must be safe for concurrent reads.
type DensitySource interface {
	// AreaDensity returns the total density inside r.
	AreaDensity(r Rect) float64

	// DiskDensity returns the total density within the given radius
	// around center.
	DiskDensity(center Point, radius int) float64
}

// Scalar is a density source which returns the same value for every query,
// independent of the shape queried.  With a Scalar source, subdivision
// decisions depend on the recursion depth only.
type Scalar float64

// AreaDensity implements the [DensitySource] interface.
func (s Scalar) AreaDensity(Rect) float64 { return float64(s) }

// DiskDensity implements the [DensitySource] interface.
func (s Scalar) DiskDensity(Point, int) float64 { return float64(s) }

// Field is a density source backed by a grid of per-pixel values.
//
// Queries are clipped to the grid, so that rectangles and disks which
// extend beyond the grid only see the cells inside.  Set must not be
// called concurrently with queries.
type Field struct {
	width, height int
	values        []float64 // row-major

	mu    sync.Mutex
	dirty bool
	sum   []float64 // summed-area table, (width+1)×(height+1)
}

// NewField returns a width×height field with all values zero.
// Negative sizes are treated as zero.
func NewField(width, height int) *Field {
	width = max(width, 0)
	height = max(height, 0)
	return &Field{
		width:  width,
		height: height,
		values: make([]float64, width*height),
		dirty:  true,
	}
}

// Width returns the number of columns of the field.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows of the field.
func (f *Field) Height() int { return f.height }

// At returns the value at (x, y), or 0 if the position is outside the field.
func (f *Field) At(x, y int) float64 {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	return f.values[y*f.width+x]
}

// Set changes the value at (x, y).  Positions outside the field are ignored.
func (f *Field) Set(x, y int, v float64) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.values[y*f.width+x] = v
	f.mu.Lock()
	f.dirty = true
	f.mu.Unlock()
}

// AreaDensity implements the [DensitySource] interface.
// It returns the sum of all values inside r.
func (f *Field) AreaDensity(r Rect) float64 {
	x0 := max(r.Left(), 0)
	y0 := max(r.Top(), 0)
	x1 := min(r.Right(), f.width)
	y1 := min(r.Bottom(), f.height)
	if x0 >= x1 || y0 >= y1 {
		return 0
	}

	sum := f.table()
	stride := f.width + 1
	return sum[y1*stride+x1] - sum[y0*stride+x1] - sum[y1*stride+x0] + sum[y0*stride+x0]
}

// DiskDensity implements the [DensitySource] interface.
//
// The scan window covers rows center.Y-radius up to, but excluding,
// center.Y+radius (and the same for columns).  Inside this window, all cells
// with squared distance at most radius² from center contribute.
func (f *Field) DiskDensity(center Point, radius int) float64 {
	if radius < 0 {
		return 0
	}
	r2 := radius * radius

	var sum float64
	y0 := max(0, center.Y-radius)
	y1 := min(f.height, center.Y+radius)
	x0 := max(0, center.X-radius)
	x1 := min(f.width, center.X+radius)
	for y := y0; y < y1; y++ {
		dy := y - center.Y
		row := f.values[y*f.width : (y+1)*f.width]
		for x := x0; x < x1; x++ {
			dx := x - center.X
			if dx*dx+dy*dy > r2 {
				continue
			}
			sum += row[x]
		}
	}
	return sum
}

// table returns the summed-area table, rebuilding it if values have changed.
func (f *Field) table() []float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.dirty {
		return f.sum
	}

	stride := f.width + 1
	if len(f.sum) != stride*(f.height+1) {
		f.sum = make([]float64, stride*(f.height+1))
	}
	for y := range f.height {
		var rowSum float64
		for x := range f.width {
			rowSum += f.values[y*f.width+x]
			f.sum[(y+1)*stride+x+1] = f.sum[y*stride+x+1] + rowSum
		}
	}
	f.dirty = false
	return f.sum
}
