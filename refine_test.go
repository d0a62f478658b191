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
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"
)

func TestSplitRect(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for _, r := range []Rect{
			{0, 0, n, n},
			{3, 5, 17, 9},
			{10, 0, 100, 37},
			{7, 7, 64, 64},
			{0, 0, 255, 256},
		} {
			if r.Width < n || r.Height < n {
				continue
			}
			t.Run(fmt.Sprintf("%d_%s", n, r), func(t *testing.T) {
				// count how often every pixel of the surrounding area is covered
				cover := make([]int, r.Right()*r.Bottom())
				area := 0
				cells := 0
				splitRect(r, n, func(i, j int, cell Rect) bool {
					cells++
					area += cell.Area()
					for y := cell.Top(); y < cell.Bottom(); y++ {
						for x := cell.Left(); x < cell.Right(); x++ {
							cover[y*r.Right()+x]++
						}
					}
					return true
				})

				if cells != n*n {
					t.Errorf("got %d cells, want %d", cells, n*n)
				}
				if area != r.Area() {
					t.Errorf("cells cover %d pixels, want %d", area, r.Area())
				}
				for y := range r.Bottom() {
					for x := range r.Right() {
						inside := x >= r.Left() && y >= r.Top()
						want := 0
						if inside {
							want = 1
						}
						if got := cover[y*r.Right()+x]; got != want {
							t.Fatalf("pixel (%d,%d) covered %d times, want %d", x, y, got, want)
						}
					}
				}
			})
		}
	}
}

func TestSplitRectOrder(t *testing.T) {
	var got []Rect
	splitRect(Rect{0, 0, 10, 7}, 2, func(i, j int, cell Rect) bool {
		got = append(got, cell)
		return true
	})
	want := []Rect{
		{0, 0, 5, 3}, {5, 0, 5, 3},
		{0, 3, 5, 4}, {5, 3, 5, 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected cells (-want +got):\n%s", diff)
	}
}

func TestDepthBound(t *testing.T) {
	r := NewRefiner(diagonalTiles(), Scalar(1), TonalRange(1))
	perDepth := make(map[int]int)
	r.Trace = func(n Node) {
		perDepth[n.Depth]++
		if n.Depth == r.MaxDepth && n.Subdivided {
			t.Errorf("placement %v at maximal depth is subdivided", n.Rect)
		}
	}
	ps := NewPointSet(256, 256)
	if err := r.Refine(ps, Rect{Width: 256, Height: 256}, 0); err != nil {
		t.Fatal(err)
	}

	want := map[int]int{0: 1, 1: 4, 2: 16, 3: 64, 4: 256, 5: 1024}
	if diff := cmp.Diff(want, perDepth); diff != "" {
		t.Errorf("placements per depth (-want +got):\n%s", diff)
	}
	if ps.Len() != 4*1365 {
		t.Errorf("got %d points, want %d", ps.Len(), 4*1365)
	}
}

func TestMinSize(t *testing.T) {
	tiles := &stubTiles{
		samples:  [][]vec.Vec2{{{X: 0.5, Y: 0.5}}},
		children: [][][]int{{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}},
	}
	for _, area := range []Rect{{0, 0, 300, 9}, {0, 0, 9, 300}, {0, 0, 100, 37}, {0, 0, 8, 8}} {
		r := NewRefiner(tiles, Scalar(1), TonalRange(1))
		r.Trace = func(n Node) {
			small := n.Rect.Width <= r.MinSize || n.Rect.Height <= r.MinSize
			if small && n.Subdivided {
				t.Errorf("%v: placement %v is subdivided", area, n.Rect)
			}
		}
		if err := r.Refine(NewPointSet(area.Width, area.Height), area, 0); err != nil {
			t.Fatal(err)
		}
	}
}

func TestNodeDensities(t *testing.T) {
	src := NewPointSet(64, 64)
	for i := range 64 {
		src.Append(Point{i, i})
	}
	r := NewRefiner(diagonalTiles(), src.Density(), TonalRange(0.5))
	var root Node
	r.Trace = func(n Node) {
		if n.Depth == 0 {
			root = n
		}
	}
	if err := r.Refine(NewPointSet(64, 64), Rect{Width: 64, Height: 64}, 0); err != nil {
		t.Fatal(err)
	}

	want := Node{
		Rect:            Rect{Width: 64, Height: 64},
		Emitted:         4,
		Subdivided:      true,
		RequiredDensity: 64,
		TileAvgDensity:  4.0 / (64 * 64),
	}
	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("root placement (-want +got):\n%s", diff)
	}
}

func TestDeterminism(t *testing.T) {
	tiles := &stubTiles{
		samples: [][]vec.Vec2{
			{{X: 0.52, Y: 0.47}, {X: 0.13, Y: 0.21}, {X: 0.81, Y: 0.86}, {X: 0.27, Y: 0.74}},
			{{X: 0.44, Y: 0.58}, {X: 0.91, Y: 0.33}, {X: 0.18, Y: 0.84}, {X: 0.62, Y: 0.09}},
		},
		children: [][][]int{
			{{0, 1}, {1, 0}},
			{{1, 0}, {0, 1}},
		},
	}
	a, err := Stipple(0.7, 0.8, 200, 150, 5, tiles)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Stipple(0.7, 0.8, 200, 150, 5, tiles)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Points(), b.Points()); diff != "" {
		t.Errorf("runs differ (-first +second):\n%s", diff)
	}
}

func TestParallel(t *testing.T) {
	for _, workers := range []int{2, 3, 8} {
		t.Run(fmt.Sprint(workers), func(t *testing.T) {
			seq := NewPointSet(256, 256)
			r := NewRefiner(diagonalTiles(), Scalar(1), TonalRange(1))
			if err := r.Refine(seq, Rect{Width: 256, Height: 256}, 0); err != nil {
				t.Fatal(err)
			}

			par := NewPointSet(256, 256)
			var mu sync.Mutex
			nodes := 0
			r.Workers = workers
			r.Trace = func(Node) {
				mu.Lock()
				nodes++
				mu.Unlock()
			}
			if err := r.Refine(par, Rect{Width: 256, Height: 256}, 0); err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(seq.Points(), par.Points()); diff != "" {
				t.Errorf("parallel output differs (-seq +par):\n%s", diff)
			}
			if nodes != 1365 {
				t.Errorf("traced %d placements, want 1365", nodes)
			}
		})
	}
}

func TestParallelError(t *testing.T) {
	tiles := &stubTiles{
		samples:  [][]vec.Vec2{{{X: 0.5, Y: 0.5}}},
		children: [][][]int{{{0, 0}, {0, 7}}},
	}
	ps := NewPointSet(64, 64)
	r := NewRefiner(tiles, Scalar(1), TonalRange(1))
	r.Workers = 4
	err := r.Refine(ps, Rect{Width: 64, Height: 64}, 0)
	if !errors.Is(err, ErrTileIndex) {
		t.Errorf("got error %v, want %v", err, ErrTileIndex)
	}
	if ps.Len() != 0 {
		t.Errorf("failed refinement left %d points", ps.Len())
	}
}

func TestMalformedSubdivision(t *testing.T) {
	cases := []struct {
		name     string
		children [][]int
		want     error
	}{
		{"empty", [][]int{}, ErrSubdivision},
		{"short_column", [][]int{{0, 0}, {0}}, ErrSubdivision},
		{"bad_index", [][]int{{0, 0}, {0, 1}}, ErrTileIndex},
		{"negative_index", [][]int{{0, -1}, {0, 0}}, ErrTileIndex},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tiles := &stubTiles{
				samples:  [][]vec.Vec2{{{X: 0.5, Y: 0.5}}},
				children: [][][]int{c.children},
			}
			r := NewRefiner(tiles, Scalar(1), TonalRange(0.5))
			err := r.Refine(NewPointSet(64, 64), Rect{Width: 64, Height: 64}, 0)
			if !errors.Is(err, c.want) {
				t.Errorf("got error %v, want %v", err, c.want)
			}
		})
	}
}

func TestToneScale(t *testing.T) {
	r := NewRefiner(diagonalTiles(), Scalar(1), 0)
	err := r.Refine(NewPointSet(64, 64), Rect{Width: 64, Height: 64}, 0)
	if !errors.Is(err, ErrToneScale) {
		t.Errorf("got error %v, want %v", err, ErrToneScale)
	}
}

func TestRefineOffset(t *testing.T) {
	// refining a sub-rectangle gives the same pattern, shifted
	ref := NewPointSet(64, 64)
	r := NewRefiner(diagonalTiles(), Scalar(1), TonalRange(0.5))
	if err := r.Refine(ref, Rect{Width: 32, Height: 32}, 0); err != nil {
		t.Fatal(err)
	}
	shifted := NewPointSet(64, 64)
	if err := r.Refine(shifted, Rect{X: 32, Y: 16, Width: 32, Height: 32}, 0); err != nil {
		t.Fatal(err)
	}

	if ref.Len() != shifted.Len() {
		t.Fatalf("got %d and %d points", ref.Len(), shifted.Len())
	}
	for i, p := range ref.Points() {
		q := shifted.Points()[i]
		if q.X != p.X+32 || q.Y != p.Y+16 {
			t.Errorf("point %d: %v is not %v shifted by (32,16)", i, q, p)
		}
	}
}

func BenchmarkRefine(b *testing.B) {
	tiles := diagonalTiles()
	src := NewPointSet(512, 512)
	for y := range 512 {
		for x := range 256 {
			src.Append(Point{x, y})
		}
	}
	field := src.Density()

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			r := NewRefiner(tiles, field, TonalRange(1))
			r.Workers = workers
			b.ReportAllocs()
			for b.Loop() {
				ps := NewPointSet(512, 512)
				if err := r.Refine(ps, Rect{Width: 512, Height: 512}, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
