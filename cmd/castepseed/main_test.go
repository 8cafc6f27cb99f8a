/*
 * main_test.go, part of gocastep.
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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/gocastep/seedfile"
)

func TestOutputSeed(Te *testing.T) {
	dir := Te.TempDir()
	in := filepath.Join(dir, "SiC.cell")
	if err := os.WriteFile(in, []byte("# input\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	H := seedfile.NewHandle()
	seed, err := outputSeed(H, in, "")
	if err != nil {
		Te.Fatal(err)
	}
	if want := filepath.Join(dir, "SiC", "SiC"); seed != want {
		Te.Errorf("default seed %s, want %s", seed, want)
	}
	//the input, given directly or through another path.
	for _, s := range []string{filepath.Join(dir, "SiC"), filepath.Join(dir, "sub", "..", "SiC")} {
		if _, err := outputSeed(H, in, s); err == nil {
			Te.Errorf("seed %s replaces the input and was accepted", s)
		}
	}
	H.SetCompression(".gz")
	if _, err := outputSeed(H, in, filepath.Join(dir, "SiC")); err != nil {
		Te.Errorf("a compressed output does not replace the input: %v", err)
	}
}
