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

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference file names.
var All = map[string][]TestCase{
	"constant": constantCases,
	"field":    fieldCases,
	"edge":     edgeCases,
}

var constantCases = []TestCase{
	{
		Name:   "diagonal_256",
		Width:  256,
		Height: 256,
		Source: Constant{Density: 1},
		Bias:   0.5,
		Tiles:  Diagonal,
	},
	{
		Name:   "zero_density",
		Width:  256,
		Height: 256,
		Source: Constant{Density: 0},
		Bias:   0.5,
		Tiles:  Diagonal,
	},
	{
		Name:   "checker_full_range",
		Width:  256,
		Height: 192,
		Source: Constant{Density: 1},
		Bias:   1,
		Start:  1,
		Tiles:  Checker,
	},
	{
		Name:   "checker_low_bias",
		Width:  200,
		Height: 200,
		Source: Constant{Density: 0.5},
		Bias:   0,
		Start:  7,
		Tiles:  Checker,
	},
	{
		Name:   "jitter",
		Width:  243,
		Height: 243,
		Source: Constant{Density: 1},
		Bias:   0.7,
		Tiles:  Jitter,
	},
}

var fieldCases = []TestCase{
	{
		Name:   "disc",
		Width:  128,
		Height: 128,
		Source: Points{Set: disc(128, 128, 40)},
		Bias:   0.5,
		Tiles:  Checker,
	},
	{
		Name:   "diagonal_line",
		Width:  160,
		Height: 120,
		Source: Points{Set: line(160, 120)},
		Bias:   0.8,
		Start:  3,
		Tiles:  Jitter,
	},
	{
		Name:   "stripes",
		Width:  256,
		Height: 64,
		Source: Points{Set: stripes(256, 64, 16)},
		Bias:   1,
		Tiles:  Diagonal,
	},
}

var edgeCases = []TestCase{
	{
		Name:   "min_size",
		Width:  8,
		Height: 8,
		Source: Constant{Density: 1},
		Bias:   1,
		Tiles:  Checker,
	},
	{
		Name:   "thin",
		Width:  300,
		Height: 9,
		Source: Constant{Density: 1},
		Bias:   1,
		Tiles:  Jitter,
	},
	{
		Name:   "uneven",
		Width:  101,
		Height: 37,
		Source: Constant{Density: 1},
		Bias:   1,
		Start:  1,
		Tiles:  Checker,
	},
	{
		Name:   "empty",
		Width:  0,
		Height: 50,
		Source: Constant{Density: 1},
		Bias:   0.5,
		Tiles:  Diagonal,
	},
}
