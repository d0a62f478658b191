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

// Package preview draws stipple point sets as images, for inspection.
//
// Every point is drawn as a filled black disc, centred on the pixel it
// refers to, on a white background.
package preview

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stipple"
)

// DefaultRadius is the disc radius, in pixels, used by the commands.
const DefaultRadius = 0.7

// Disc returns a closed path approximating a circle, using four cubic
// Bézier segments.  The circle is traversed counter-clockwise, starting at
// the top.
func Disc(center vec.Vec2, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		// Magic number for circular arc approximation with cubic Bézier
		const k = 0.5522847498
		kr := k * r
		cx, cy := center.X, center.Y

		var buf [3]vec.Vec2
		buf[0] = vec.Vec2{X: cx, Y: cy - r}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - kr}, vec.Vec2{X: cx + r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + r, Y: cy + kr}, vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + kr}, vec.Vec2{X: cx - r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - r, Y: cy - kr}, vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// pixelCentre returns the centre of the pixel addressed by p.
func pixelCentre(p stipple.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}
