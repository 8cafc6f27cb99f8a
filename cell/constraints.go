/*
 * constraints.go, part of gocastep.
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
	"strconv"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/grammar"
)

// IonicConstraint is one row of IONIC_CONSTRAINTS: constraint number ID
// applies the coefficients Coef to the Index-th atom of Element.
type IonicConstraint struct {
	ID      int
	Element castep.Element
	Index   int
	Coef    [3]float64
}

func (C IonicConstraint) row() string {
	return castep.Right(strconv.Itoa(C.ID), 6) + castep.Right(C.Element.Symbol(), 3) + " " + strconv.Itoa(C.Index) + " " +
		castep.Fixed(C.Coef[0], 20, 16) + castep.Fixed(C.Coef[1], 20, 16) + castep.Fixed(C.Coef[2], 20, 16)
}

// IonicConstraints is an IONIC_CONSTRAINTS block. It can be empty.
type IonicConstraints []IonicConstraint

func (IonicConstraints) Kind() EntryKind { return KindIonicConstraints }
func (I IonicConstraints) Emit() string {
	rows := make([]string, len(I))
	for i, c := range I {
		rows[i] = c.row()
	}
	return blockText("IONIC_CONSTRAINTS", rows...)
}

func parseIonicConstraints(b *grammar.Block) (Entry, error) {
	ret := make(IonicConstraints, 0, len(b.Rows))
	for _, r := range b.Rows {
		if err := r.Exactly(6); err != nil {
			return nil, castep.ErrDecorate(err, "parseIonicConstraints")
		}
		id, err := grammar.PosInt(r.Tokens[0])
		if err != nil {
			return nil, castep.ErrDecorate(err, "parseIonicConstraints")
		}
		e, err := grammar.Element(r.Tokens[1])
		if err != nil {
			return nil, castep.ErrDecorate(err, "parseIonicConstraints")
		}
		idx, err := grammar.PosInt(r.Tokens[2])
		if err != nil {
			return nil, castep.ErrDecorate(err, "parseIonicConstraints")
		}
		c, err := r.Reals(3, 3)
		if err != nil {
			return nil, castep.ErrDecorate(err, "parseIonicConstraints")
		}
		ret = append(ret, IonicConstraint{ID: int(id), Element: e, Index: int(idx), Coef: [3]float64{c[0], c[1], c[2]}})
	}
	return ret, nil
}

// CellConstraints is a CELL_CONSTRAINTS block. The first three numbers
// tie the lattice lengths, the last three the angles. Equal numbers mean
// equal values, 0 means fixed.
type CellConstraints struct {
	Lengths [3]int
	Angles  [3]int
}

// DefaultCellConstraints lets the lengths vary independently and fixes
// the angles.
func DefaultCellConstraints() CellConstraints {
	return CellConstraints{Lengths: [3]int{1, 2, 3}}
}

func (CellConstraints) Kind() EntryKind { return KindCellConstraints }
func (C CellConstraints) Emit() string {
	row := func(v [3]int) string {
		return castep.Right(strconv.Itoa(v[0]), 6) + castep.Right(strconv.Itoa(v[1]), 6) + castep.Right(strconv.Itoa(v[2]), 6)
	}
	return blockText("CELL_CONSTRAINTS", row(C.Lengths), row(C.Angles))
}

func parseCellConstraints(b *grammar.Block) (Entry, error) {
	if len(b.Rows) != 2 {
		return nil, castep.NewError(castep.WrongRowLength, b.Pos, "CELL_CONSTRAINTS needs 2 rows, %d given", len(b.Rows))
	}
	var C CellConstraints
	for i, dst := range []*[3]int{&C.Lengths, &C.Angles} {
		r := b.Rows[i]
		if err := r.Exactly(3); err != nil {
			return nil, castep.ErrDecorate(err, "parseCellConstraints")
		}
		v, err := r.Ints(0, 3)
		if err != nil {
			return nil, castep.ErrDecorate(err, "parseCellConstraints")
		}
		for j, n := range v {
			if n < 0 {
				return nil, castep.NewError(castep.OutOfRange, r.Tokens[j].Pos, "negative cell constraint %d", n)
			}
			dst[j] = int(n)
		}
	}
	return C, nil
}
