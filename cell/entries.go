/*
 * entries.go, part of gocastep.
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

package cell

import (
	"fmt"

	castep "github.com/rmera/gocastep"
)

// EntryKind identifies what an entry sets. Alternatives of each other
// share a kind.
type EntryKind int

const (
	KindKpoints EntryKind = iota
	KindBSKpoints
	KindMPOffset
	KindFixAllCell
	KindFixAllIons
	KindFixCOM
	KindFixVol
	KindIonicConstraints
	KindCellConstraints
	KindEField
	KindPressure
	KindSpeciesMass
	KindSpeciesPot
	KindSpeciesLCAO
	KindHubbardU
	KindHubbardAlpha
	KindSymmetryOps
	KindSymmetryGenerate
	KindQuantizationAxis
)

var kindNames = [...]string{
	KindKpoints:          "Kpoints",
	KindBSKpoints:        "BSKpoints",
	KindMPOffset:         "MPOffset",
	KindFixAllCell:       "FixAllCell",
	KindFixAllIons:       "FixAllIons",
	KindFixCOM:           "FixCOM",
	KindFixVol:           "FixVol",
	KindIonicConstraints: "IonicConstraints",
	KindCellConstraints:  "CellConstraints",
	KindEField:           "EField",
	KindPressure:         "Pressure",
	KindSpeciesMass:      "SpeciesMass",
	KindSpeciesPot:       "SpeciesPot",
	KindSpeciesLCAO:      "SpeciesLCAO",
	KindHubbardU:         "HubbardU",
	KindHubbardAlpha:     "HubbardAlpha",
	KindSymmetryOps:      "SymmetryOps",
	KindSymmetryGenerate: "SymmetryGenerate",
	KindQuantizationAxis: "QuantizationAxis",
}

func (K EntryKind) String() string {
	if K < 0 || int(K) >= len(kindNames) {
		return fmt.Sprintf("EntryKind(%d)", int(K))
	}
	return kindNames[K]
}

// Entry is anything in a cell file other than the lattice and the positions.
type Entry interface {
	castep.Emitter
	Kind() EntryKind
}

// Fix flags.

type FixAllCell bool
type FixAllIons bool
type FixCOM bool
type FixVol bool

func (FixAllCell) Kind() EntryKind { return KindFixAllCell }
func (FixAllIons) Kind() EntryKind { return KindFixAllIons }
func (FixCOM) Kind() EntryKind     { return KindFixCOM }
func (FixVol) Kind() EntryKind     { return KindFixVol }

func (F FixAllCell) Emit() string { return fieldText("FIX_ALL_CELL", castep.Logical(bool(F))) }
func (F FixAllIons) Emit() string { return fieldText("FIX_ALL_IONS", castep.Logical(bool(F))) }
func (F FixCOM) Emit() string     { return fieldText("FIX_COM", castep.Logical(bool(F))) }
func (F FixVol) Emit() string     { return fieldText("FIX_VOL", castep.Logical(bool(F))) }

// SymmetryGenerate asks CASTEP to find the symmetry operations itself.
type SymmetryGenerate struct{}

func (SymmetryGenerate) Kind() EntryKind { return KindSymmetryGenerate }
func (SymmetryGenerate) Emit() string    { return "SYMMETRY_GENERATE\n" }

// QuantizationAxis is the spin quantization axis, in fractional coordinates
// of the reciprocal lattice.
type QuantizationAxis [3]float64

func (QuantizationAxis) Kind() EntryKind { return KindQuantizationAxis }
func (Q QuantizationAxis) Emit() string {
	return fieldText("QUANTIZATION_AXIS", castep.Short(Q[0])+" "+castep.Short(Q[1])+" "+castep.Short(Q[2]))
}
