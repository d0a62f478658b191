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

// Command stipple fills a canvas with blue-noise stipple points, using a
// Wang tile set stored in JSON format.
//
// The density is either a constant (-density) or taken from an existing
// point set (-source).  The output format is chosen by the extension of the
// output file: .png and .pdf give a picture, everything else gives the
// point list as JSON.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/stipple"
	"seehuhn.de/go/stipple/preview"
	"seehuhn.de/go/stipple/wangtiles"
)

var (
	tilesArg   = flag.String("tiles", "", "tile set `file` (JSON)")
	sourceArg  = flag.String("source", "", "point set `file` (JSON) to use as density field")
	outArg     = flag.String("o", "", "output `file` (.png, .pdf or .json; default: JSON to stdout)")
	widthArg   = flag.Int("w", 512, "canvas width in pixels")
	heightArg  = flag.Int("h", 512, "canvas height in pixels")
	densityArg = flag.Float64("density", 1, "constant density")
	biasArg    = flag.Float64("bias", 0.5, "tone scale bias in [0, 1]")
	startArg   = flag.Int("start", 0, "start tile index")
	workersArg = flag.Int("workers", 1, "number of goroutines")
	radiusArg  = flag.Float64("r", preview.DefaultRadius, "dot radius for .png and .pdf output")
)

func main() {
	flag.CommandLine.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s -tiles <tiles.json> [options]\n",
			filepath.Base(os.Args[0]))
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *tilesArg == "" || flag.NArg() > 0 {
		flag.CommandLine.Usage()
		os.Exit(1)
	}

	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	tiles, err := wangtiles.Load(*tilesArg)
	if err != nil {
		return err
	}

	var density stipple.DensitySource
	width, height := *widthArg, *heightArg
	if *sourceArg != "" {
		src, err := loadPoints(*sourceArg)
		if err != nil {
			return err
		}
		density = src.Density()
		width, height = src.Width(), src.Height()
	} else {
		density = stipple.Scalar(*densityArg)
	}

	res := stipple.NewPointSet(width, height)
	r := stipple.NewRefiner(tiles, density, stipple.TonalRange(*biasArg))
	r.Workers = *workersArg
	err = r.Refine(res, stipple.Rect{Width: width, Height: height}, *startArg)
	if err != nil {
		return err
	}

	if *outArg == "" {
		return writePoints(os.Stdout, res)
	}

	var write func(io.Writer, *stipple.PointSet) error
	switch strings.ToLower(filepath.Ext(*outArg)) {
	case ".png":
		write = func(w io.Writer, ps *stipple.PointSet) error {
			return preview.WritePNG(w, ps, *radiusArg)
		}
	case ".pdf":
		write = func(w io.Writer, ps *stipple.PointSet) error {
			return preview.WritePDF(w, ps, *radiusArg)
		}
	default:
		write = writePoints
	}

	f, err := os.Create(*outArg)
	if err != nil {
		return err
	}
	err = write(f, res)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
