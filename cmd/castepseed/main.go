/*
 * main.go, part of gocastep.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * gocastep is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

// Command castepseed reads a .cell file and writes the .cell and .param
// seed files for a CASTEP calculation on the same structure.
//
//	castepseed -task geomopt -pots /opt/castep/pots [-edft] [-config gen.toml] [-strict] input.cell
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/cell"
	"github.com/rmera/gocastep/kplot"
	"github.com/rmera/gocastep/seedfile"
)

func fatal(args ...interface{}) {
	fmt.Fprintln(os.Stderr, strings.TrimSpace(fmt.Sprint(args...)))
	os.Exit(1)
}

// outputSeed returns the seed to write to. With no seed given, the files
// go to a directory named after the input, so the input is never replaced.
// A seed that would write over the input is an error.
func outputSeed(H *seedfile.Handle, in, seed string) (string, error) {
	if seed == "" {
		name := filepath.Base(castep.SeedName(in))
		seed = filepath.Join(filepath.Dir(in), name, name)
	}
	if H.Overwrites(seed, in) {
		return "", fmt.Errorf("output seed %s would overwrite the input %s, choose another one with -o", seed, in)
	}
	return seed, nil
}

func main() {
	task := flag.String("task", "geomopt", "task: singlepoint, bandstructure or geomopt")
	pots := flag.String("pots", "", "directory with the pseudopotential files")
	edft := flag.Bool("edft", false, "use ensemble DFT instead of density mixing")
	precision := flag.String("precision", "fine", "cutoff precision: coarse, medium, fine or ultrafine")
	kpoints := flag.String("kpoints", "coarse", "k-point quality: coarse, medium or fine")
	config := flag.String("config", "", "TOML file with a [seedfile] table, the flags given override it")
	strict := flag.Bool("strict", false, "fail on unknown keywords instead of skipping them")
	seed := flag.String("o", "", "output seed name, by default <name>/<name> for an input <name>.cell")
	compress := flag.String("z", "", "extension to compress the output with, .gz or .zst")
	plotname := flag.String("plot", "", "if given, plot the band structure path to this file, .png is added")
	flag.Parse()
	if flag.NArg() != 1 {
		fatal("exactly one input .cell file expected")
	}
	in := flag.Arg(0)

	H := seedfile.NewHandle()
	opts := &castep.Options{Filename: in, Logger: log.New(os.Stderr, "castepseed: ", 0)}
	if *config != "" {
		cfg, err := seedfile.ReadConfig(*config)
		if err != nil {
			fatal(err)
		}
		if err := cfg.Apply(H); err != nil {
			fatal(err)
		}
		opts.Strict = cfg.Options(in).Strict
	}
	var err error
	flag.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "task":
			var t seedfile.Task
			if t, err = seedfile.ParseTask(*task); err == nil {
				H.SetTask(t)
			}
		case "precision":
			var p seedfile.Precision
			if p, err = seedfile.ParsePrecision(*precision); err == nil {
				H.SetPrecision(p)
			}
		case "kpoints":
			var k seedfile.KpointQuality
			if k, err = seedfile.ParseKpointQuality(*kpoints); err == nil {
				H.SetKpointQuality(k)
			}
		case "pots":
			H.SetPotentialsDir(*pots)
		case "edft":
			H.SetEDFT(*edft)
		case "strict":
			opts.Strict = *strict
		case "z":
			H.SetCompression(*compress)
		}
	})
	if err != nil {
		fatal(err)
	}

	doc, events, err := cell.ReadFile(in, opts)
	if err != nil {
		fatal(err)
	}
	if len(events) > 0 {
		log.Printf("%d unknown keywords skipped in %s", len(events), in)
	}
	out, err := outputSeed(H, in, *seed)
	if err != nil {
		fatal(err)
	}
	if err := H.BuildInput(doc, out); err != nil {
		fatal(err)
	}
	if *plotname != "" {
		if err := kplot.PathPlot(doc, nil, filepath.Base(out), *plotname); err != nil {
			fatal(err)
		}
	}
}
