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

package preview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/stipple"
)

// Image draws the point set into a new grayscale image of the canvas size.
func Image(ps *stipple.PointSet, radius float64) *image.Gray {
	w, h := ps.Width(), ps.Height()
	dst := image.NewGray(image.Rect(0, 0, max(w, 0), max(h, 0)))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	if w <= 0 || h <= 0 || ps.Len() == 0 {
		return dst
	}

	r := vector.NewRasterizer(w, h)
	for _, p := range ps.Points() {
		addPath(r, Disc(pixelCentre(p), radius))
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{})
	return dst
}

// WritePNG draws the point set and encodes the result as PNG.
func WritePNG(w io.Writer, ps *stipple.PointSet, radius float64) error {
	return png.Encode(w, Image(ps, radius))
}

// addPath feeds a path into a vector.Rasterizer.
func addPath(r *vector.Rasterizer, p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			r.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdQuadTo:
			r.QuadTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y))
		case path.CmdCubeTo:
			r.CubeTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case path.CmdClose:
			r.ClosePath()
		}
	}
}
