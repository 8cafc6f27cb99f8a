/*
 * kplot_test.go, part of gocastep.
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

package kplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/cell"
	"github.com/rmera/gocastep/units"
)

const cube = `%BLOCK LATTICE_CART
1.0 0.0 0.0
0.0 1.0 0.0
0.0 0.0 1.0
%ENDBLOCK LATTICE_CART
%BLOCK POSITIONS_FRAC
Si 0.0 0.0 0.0
%ENDBLOCK POSITIONS_FRAC
%BLOCK BS_KPOINT_PATH
0.0 0.0 0.0
0.5 0.0 0.0
0.5 0.5 0.0
%ENDBLOCK BS_KPOINT_PATH
`

func cubeDoc(Te *testing.T) *cell.Document {
	D, _, err := cell.Parse(cube, nil)
	if err != nil {
		Te.Fatal(err)
	}
	return D
}

func TestPathDistances(Te *testing.T) {
	D := cubeDoc(Te)
	path, err := Path(D)
	if err != nil {
		Te.Fatal(err)
	}
	d, err := PathDistances(D.Lattice, path)
	if err != nil {
		Te.Fatal(err)
	}
	for i, want := range []float64{0, math.Pi, 2 * math.Pi} {
		if math.Abs(d[i]-want) > 1e-9 {
			Te.Errorf("distance %d: %v, want %v", i, d[i], want)
		}
	}
	n, err := PathSamples(D.Lattice, path, units.Q[units.InvLength](0.1))
	if err != nil {
		Te.Fatal(err)
	}
	if len(n) != 2 || n[0] != 5 || n[1] != 5 {
		Te.Errorf("samples %v, want [5 5]", n)
	}
	n, err = PathSamples(D.Lattice, path, units.Q[units.InvLength](0))
	if err != nil || n[0] != 1 || n[1] != 1 {
		Te.Errorf("samples without spacing %v, want [1 1]", n)
	}
	flat := cell.LatticeCart{A: [3]float64{1, 0, 0}, B: [3]float64{0, 1, 0}, C: [3]float64{1, 1, 0}}
	if _, err := PathDistances(flat, path); err == nil {
		Te.Error("no error for a flat cell")
	}
	if _, err := PathSamples(flat, path, units.Q[units.InvLength](0.1)); err == nil {
		Te.Error("no error sampling in a flat cell")
	}
}

func TestPathPlot(Te *testing.T) {
	D := cubeDoc(Te)
	name := filepath.Join(Te.TempDir(), "path")
	if err := PathPlot(D, []string{"G", "X", "M"}, "Cubic path", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Error(err)
	}
	err := PathPlot(D, []string{"G"}, "Cubic path", name)
	if cat, _ := castep.CategoryOf(err); cat != castep.WrongRowLength {
		Te.Errorf("got %v for too few labels", err)
	}
	D.RemoveEntry(cell.KindBSKpoints)
	err = PathPlot(D, nil, "none", name)
	if cat, _ := castep.CategoryOf(err); cat != castep.MissingBlock {
		Te.Errorf("got %v, want a missing block", err)
	}
}

func TestSegmentColor(Te *testing.T) {
	first, last := segmentColor(0, 3), segmentColor(2, 3)
	if first == last {
		Te.Error("first and last segments have the same color")
	}
	if r, g, b := hsv2RGB(0, 0, 1); r != 255 || g != 255 || b != 255 {
		Te.Errorf("white is %d %d %d", r, g, b)
	}
}
