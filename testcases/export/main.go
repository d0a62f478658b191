// Command export writes the test cases, together with the stipple points
// they produce, to JSON.  It also writes the tile sets used by the test
// cases, so that they can be passed to the stipple command.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/stipple"
	"seehuhn.de/go/stipple/testcases"
	"seehuhn.de/go/stipple/wangtiles"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata/tiles", 0755); err != nil {
		panic(err)
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}

	tileSets := map[string]*wangtiles.TileSet{
		"diagonal": testcases.Diagonal,
		"checker":  testcases.Checker,
		"jitter":   testcases.Jitter,
	}
	for name, ts := range tileSets {
		if err := writeTiles(filepath.Join("testdata", "tiles", name+".json"), ts); err != nil {
			panic(err)
		}
	}
}

type jsonTestCase struct {
	Name       string   `json:"name"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Source     string   `json:"source"`
	Density    float64  `json:"density,omitempty"`
	Bias       float64  `json:"bias"`
	TonalRange int      `json:"tonal_range"`
	Start      int      `json:"start"`
	NumPoints  int      `json:"num_points"`
	Points     [][2]int `json:"points"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		Bias:       tc.Bias,
		TonalRange: stipple.TonalRange(tc.Bias),
		Start:      tc.Start,
	}

	switch src := tc.Source.(type) {
	case testcases.Constant:
		jtc.Source = "constant"
		jtc.Density = src.Density
	case testcases.Points:
		jtc.Source = "points"
	}

	ps, err := tc.Run(1)
	if err != nil {
		return jtc, err
	}
	jtc.NumPoints = ps.Len()
	jtc.Points = make([][2]int, ps.Len())
	for i, p := range ps.Points() {
		jtc.Points[i] = [2]int{p.X, p.Y}
	}
	return jtc, nil
}

func writeTiles(fileName string, ts *wangtiles.TileSet) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = ts.Write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
