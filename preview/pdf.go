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
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/stipple"
)

// WritePDF writes a single-page PDF file showing the point set.
// One pixel corresponds to one PDF point.
func WritePDF(w io.Writer, ps *stipple.PointSet, radius float64) error {
	b := ps.Bounds()
	paper := &pdf.Rectangle{
		LLx: b.LLx,
		LLy: b.LLy,
		URx: b.URx,
		URy: b.URy,
	}

	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; point sets use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, b.URy})

	page.SetFillColor(color.DeviceGray(0))
	if ps.Len() > 0 {
		for _, p := range ps.Points() {
			drawPath(page, Disc(pixelCentre(p), radius))
		}
		page.Fill()
	}

	return page.Close()
}

func drawPath(page *document.Page, p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
