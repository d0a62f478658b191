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

import "fmt"

// Point is a pixel position. Points produced by the stippler have
// non-negative coordinates.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned pixel rectangle. The pixels covered are
// X <= x < X+Width and Y <= y < Y+Height.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of pixels covered by r.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// splitRect partitions r into an n×n grid and calls yield for each cell,
// row by row.  Column i is passed as the first index, row j as the second.
// All cells have size ⌊width/n⌋×⌊height/n⌋, except that the last column and
// the last row are stretched to reach the right and bottom edge of r.
func splitRect(r Rect, n int, yield func(i, j int, cell Rect) bool) {
	if n <= 0 {
		return
	}
	cw := r.Width / n
	ch := r.Height / n
	for j := range n {
		for i := range n {
			cell := Rect{
				X:      r.X + i*cw,
				Y:      r.Y + j*ch,
				Width:  cw,
				Height: ch,
			}
			if i == n-1 {
				cell.Width = r.Right() - cell.X
			}
			if j == n-1 {
				cell.Height = r.Bottom() - cell.Y
			}
			if !yield(i, j, cell) {
				return
			}
		}
	}
}
