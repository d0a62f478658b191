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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/rect"
)

func TestPointSet(t *testing.T) {
	ps := NewPointSet(20, 10)
	ps.Append(Point{1, 2}, Point{3, 4})
	ps.Append(Point{1, 2})

	if ps.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ps.Len())
	}
	if !ps.Contains(3, 4) {
		t.Error("Contains(3, 4) = false")
	}
	if ps.Contains(4, 3) {
		t.Error("Contains(4, 3) = true")
	}

	want := []Point{{1, 2}, {3, 4}, {1, 2}}
	if diff := cmp.Diff(want, ps.Points()); diff != "" {
		t.Errorf("unexpected points (-want +got):\n%s", diff)
	}

	wantBounds := rect.Rect{URx: 20, URy: 10}
	if ps.Bounds() != wantBounds {
		t.Errorf("Bounds() = %v, want %v", ps.Bounds(), wantBounds)
	}
}

func TestPointSetClone(t *testing.T) {
	ps := NewPointSet(5, 5)
	ps.Append(Point{1, 1})

	c := ps.Clone()
	c.Append(Point{2, 2})

	if ps.Len() != 1 || c.Len() != 2 {
		t.Errorf("got lengths %d and %d, want 1 and 2", ps.Len(), c.Len())
	}
	if c.Width() != 5 || c.Height() != 5 {
		t.Errorf("clone is %dx%d, want 5x5", c.Width(), c.Height())
	}
}

func TestPointSetDensity(t *testing.T) {
	ps := NewPointSet(4, 3)
	ps.Append(Point{0, 0}, Point{3, 2}, Point{3, 2}, Point{1, 1})
	ps.Append(Point{4, 0}, Point{-1, 1}, Point{0, 3}) // outside the canvas

	f := ps.Density()
	if f.Width() != 4 || f.Height() != 3 {
		t.Fatalf("field is %dx%d, want 4x3", f.Width(), f.Height())
	}

	var got [3][4]float64
	for y := range 3 {
		for x := range 4 {
			got[y][x] = f.At(x, y)
		}
	}
	want := [3][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected field (-want +got):\n%s", diff)
	}
	if total := f.AreaDensity(Rect{Width: 4, Height: 3}); total != 3 {
		t.Errorf("total density %g, want 3", total)
	}
}
