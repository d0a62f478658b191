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

import "seehuhn.de/go/stipple"

// disc returns a point set with every pixel inside a centred disc set.
func disc(w, h, r int) *stipple.PointSet {
	ps := stipple.NewPointSet(w, h)
	cx, cy := w/2, h/2
	for y := range h {
		for x := range w {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				ps.Append(stipple.Point{X: x, Y: y})
			}
		}
	}
	return ps
}

// line returns a point set with a three pixel wide line from the top left
// to the bottom right corner.
func line(w, h int) *stipple.PointSet {
	ps := stipple.NewPointSet(w, h)
	for x := range w {
		y := x * h / w
		for dy := -1; dy <= 1; dy++ {
			if y+dy >= 0 && y+dy < h {
				ps.Append(stipple.Point{X: x, Y: y + dy})
			}
		}
	}
	return ps
}

// stripes returns a point set with vertical stripes of the given width,
// starting with a filled stripe at the left edge.
func stripes(w, h, width int) *stipple.PointSet {
	ps := stipple.NewPointSet(w, h)
	for y := range h {
		for x := range w {
			if (x/width)%2 == 0 {
				ps.Append(stipple.Point{X: x, Y: y})
			}
		}
	}
	return ps
}
