/*
 * fields.go, part of gocastep.
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
	"strings"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/grammar"
	"github.com/rmera/gocastep/units"
)

//External fields and symmetry.

// EField is an EXTERNAL_EFIELD block. A nil Unit means eV/ang/e.
type EField struct {
	Unit  *units.EField
	Field [3]float64
}

func (EField) Kind() EntryKind { return KindEField }
func (E EField) Emit() string {
	return blockText("EXTERNAL_EFIELD", unitLine(E.Unit),
		castep.Fixed(E.Field[0], 16, 10)+castep.Fixed(E.Field[1], 16, 10)+castep.Fixed(E.Field[2], 16, 10))
}

func parseEField(b *grammar.Block) (Entry, error) {
	u, rows, err := unitRow(b.Rows, units.ParseEField)
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseEField")
	}
	if len(rows) != 1 {
		return nil, castep.NewError(castep.WrongRowLength, b.Pos, "EXTERNAL_EFIELD needs 1 row, %d given", len(rows))
	}
	v, err := row3(rows[0])
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseEField")
	}
	return EField{Unit: u, Field: v}, nil
}

// Pressure is an EXTERNAL_PRESSURE block, the upper triangle of the
// stress tensor. A nil Unit means GPa.
type Pressure struct {
	Unit                   *units.Pressure
	XX, XY, XZ, YY, YZ, ZZ float64
}

func (Pressure) Kind() EntryKind { return KindPressure }
func (P Pressure) Emit() string {
	pad := strings.Repeat(" ", 16)
	return blockText("EXTERNAL_PRESSURE", unitLine(P.Unit),
		castep.Fixed(P.XX, 16, 10)+castep.Fixed(P.XY, 16, 10)+castep.Fixed(P.XZ, 16, 10),
		pad+castep.Fixed(P.YY, 16, 10)+castep.Fixed(P.YZ, 16, 10),
		pad+pad+castep.Fixed(P.ZZ, 16, 10))
}

func parsePressure(b *grammar.Block) (Entry, error) {
	u, rows, err := unitRow(b.Rows, units.ParsePressure)
	if err != nil {
		return nil, castep.ErrDecorate(err, "parsePressure")
	}
	if len(rows) != 3 {
		return nil, castep.NewError(castep.WrongRowLength, b.Pos, "EXTERNAL_PRESSURE needs 3 rows, %d given", len(rows))
	}
	var v []float64
	for i, r := range rows {
		if err := r.Exactly(3 - i); err != nil {
			return nil, castep.ErrDecorate(err, "parsePressure")
		}
		x, err := r.Reals(0, 3-i)
		if err != nil {
			return nil, castep.ErrDecorate(err, "parsePressure")
		}
		v = append(v, x...)
	}
	return Pressure{Unit: u, XX: v[0], XY: v[1], XZ: v[2], YY: v[3], YZ: v[4], ZZ: v[5]}, nil
}

// SymmetryOp is a rotation, given as 3 rows, plus a translation.
type SymmetryOp struct {
	Rotation    [3][3]float64
	Translation [3]float64
}

// SymmetryOps is a SYMMETRY_OPS block.
type SymmetryOps []SymmetryOp

func (SymmetryOps) Kind() EntryKind { return KindSymmetryOps }
func (S SymmetryOps) Emit() string {
	row := func(v [3]float64) string {
		return castep.Fixed(v[0], 24, 18) + castep.Fixed(v[1], 24, 18) + castep.Fixed(v[2], 24, 18)
	}
	lines := make([]string, 0, 4*len(S))
	for _, op := range S {
		lines = append(lines, row(op.Rotation[0]), row(op.Rotation[1]), row(op.Rotation[2]), row(op.Translation))
	}
	return blockText("SYMMETRY_OPS", lines...)
}

func parseSymmetryOps(b *grammar.Block) (Entry, error) {
	if len(b.Rows)%4 != 0 {
		return nil, castep.NewError(castep.WrongRowLength, b.Pos, "SYMMETRY_OPS needs groups of 4 rows, %d given", len(b.Rows))
	}
	ret := make(SymmetryOps, 0, len(b.Rows)/4)
	for i := 0; i < len(b.Rows); i += 4 {
		var op SymmetryOp
		for j := 0; j < 4; j++ {
			v, err := row3(b.Rows[i+j])
			if err != nil {
				return nil, castep.ErrDecorate(err, "parseSymmetryOps")
			}
			if j < 3 {
				op.Rotation[j] = v
			} else {
				op.Translation = v
			}
		}
		ret = append(ret, op)
	}
	return ret, nil
}

func parseQuantizationAxis(f *grammar.Field) (Entry, error) {
	v, err := field3(f)
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseQuantizationAxis")
	}
	return QuantizationAxis(v), nil
}

func parseSymmetryGenerate(f *grammar.Field) (Entry, error) {
	if err := f.Flag(); err != nil {
		return nil, castep.ErrDecorate(err, "parseSymmetryGenerate")
	}
	return SymmetryGenerate{}, nil
}

func parseFlag(f *grammar.Field, mk func(bool) Entry) (Entry, error) {
	//A lone FIX_ALL_CELL means true.
	if len(f.Values) == 0 {
		return mk(true), nil
	}
	b, err := f.Bool()
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseFlag")
	}
	return mk(b), nil
}
