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

// Command genpdf stipples all test cases and writes the results as PDF and
// PNG files, for visual inspection.
package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/stipple"
	"seehuhn.de/go/stipple/preview"
	"seehuhn.de/go/stipple/testcases"
)

const refDir = "testdata/reference"

func main() {
	// Create output directory
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	// Process all test cases
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if tc.Width <= 0 || tc.Height <= 0 {
				continue
			}

			ps, err := tc.Run(1)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := writeFile(pdfPath, ps, preview.WritePDF); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pngPath := filepath.Join(refDir, name+".png")
			if err := writeFile(pngPath, ps, preview.WritePNG); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writeFile(fileName string, ps *stipple.PointSet, write func(io.Writer, *stipple.PointSet, float64) error) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = write(f, ps, preview.DefaultRadius)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
