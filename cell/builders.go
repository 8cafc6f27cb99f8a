/*
 * builders.go, part of gocastep.
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
	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/units"
)

// HubbardBuilder builds HUBBARD_U and HUBBARD_ALPHA tables row by row.
// The first error (a repeated site or a row without orbitals) is kept and
// returned by the Build methods.
type HubbardBuilder struct {
	t   HubbardTable
	cur *HubbardRow
	err error
}

func NewHubbardBuilder() *HubbardBuilder { return new(HubbardBuilder) }

func (B *HubbardBuilder) Unit(u units.Energy) *HubbardBuilder {
	B.t.Unit = &u
	return B
}

func (B *HubbardBuilder) flush() {
	if B.cur == nil {
		return
	}
	if err := B.t.Add(*B.cur); err != nil && B.err == nil {
		B.err = err
	}
	B.cur = nil
}

// Element starts a row for all the atoms of e.
func (B *HubbardBuilder) Element(e castep.Element) *HubbardBuilder {
	B.flush()
	B.cur = &HubbardRow{Element: e}
	return B
}

// Atom starts a row for the atom-th atom of e.
func (B *HubbardBuilder) Atom(e castep.Element, atom int) *HubbardBuilder {
	B.flush()
	B.cur = &HubbardRow{Element: e, Atom: &atom}
	return B
}

// Orbital adds a value to the current row. It does nothing if no row was started.
func (B *HubbardBuilder) Orbital(o Orbital, v float64) *HubbardBuilder {
	if B.cur != nil {
		B.cur.Orbitals = append(B.cur.Orbitals, OrbitalValue{Orbital: o, Value: v})
	}
	return B
}

func (B *HubbardBuilder) table() (HubbardTable, error) {
	B.flush()
	t := B.t
	t.Rows = append([]HubbardRow(nil), B.t.Rows...)
	return t, B.err
}

func (B *HubbardBuilder) BuildU() (*HubbardU, error) {
	t, err := B.table()
	if err != nil {
		return nil, err
	}
	return &HubbardU{t}, nil
}

func (B *HubbardBuilder) BuildAlpha() (*HubbardAlpha, error) {
	t, err := B.table()
	if err != nil {
		return nil, err
	}
	return &HubbardAlpha{t}, nil
}

// ConstraintsBuilder builds an IONIC_CONSTRAINTS block, numbering the
// constraints from 1.
type ConstraintsBuilder struct {
	c IonicConstraints
}

func NewConstraintsBuilder() *ConstraintsBuilder { return new(ConstraintsBuilder) }

// Fix adds three constraints that fix the index-th atom of e in place.
func (B *ConstraintsBuilder) Fix(e castep.Element, index int) *ConstraintsBuilder {
	for _, c := range [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		B.Constraint(e, index, c)
	}
	return B
}

// Constraint adds a constraint with the next free number.
func (B *ConstraintsBuilder) Constraint(e castep.Element, index int, coef [3]float64) *ConstraintsBuilder {
	B.c = append(B.c, IonicConstraint{ID: len(B.c) + 1, Element: e, Index: index, Coef: coef})
	return B
}

func (B *ConstraintsBuilder) Build() IonicConstraints {
	return append(IonicConstraints{}, B.c...)
}
