/*
 * basis.go, part of gocastep.
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

package param

import (
	"github.com/rmera/gocastep/units"
)

// BasisSet is the plane-wave basis and the FFT grids.
type BasisSet struct {
	BasisPrecision     *BasisPrecision
	CutOffEnergy       *units.Quantity[units.Energy]
	FineGmax           *units.Quantity[units.InvLength]
	FineGridScale      *float64
	GridScale          *float64
	FiniteBasisCorr    *FiniteBasisCorr
	FiniteBasisNPoints *uint64
	FiniteBasisSpacing *units.Quantity[units.Energy]
	BasisDeDloge       *units.Quantity[units.Energy]
	FixedNPW           *bool
}

func basisSlot[T any](f func(*BasisSet) *T) func(*Document) *T {
	return func(D *Document) *T { return f(&D.BasisSet) }
}

var basisKeywords = []keyword{
	enumKw("BASIS_PRECISION", "basis precision", basisSlot(func(B *BasisSet) **BasisPrecision { return &B.BasisPrecision }), basisPrecisionNames, nil),
	quantityKw("CUT_OFF_ENERGY", basisSlot(func(B *BasisSet) **units.Quantity[units.Energy] { return &B.CutOffEnergy }), units.ParseEnergy, fixed(20, 15)),
	quantityKw("FINE_GMAX", basisSlot(func(B *BasisSet) **units.Quantity[units.InvLength] { return &B.FineGmax }), units.ParseInvLength, fixed(20, 15)),
	realKw("FINE_GRID_SCALE", basisSlot(func(B *BasisSet) **float64 { return &B.FineGridScale }), fixed(20, 15)),
	realKw("GRID_SCALE", basisSlot(func(B *BasisSet) **float64 { return &B.GridScale }), fixed(20, 15)),
	enumKw("FINITE_BASIS_CORR", "finite basis correction", basisSlot(func(B *BasisSet) **FiniteBasisCorr { return &B.FiniteBasisCorr }), finiteBasisCorrNames, finiteBasisCorrAliases),
	posIntKw("FINITE_BASIS_NPOINTS", basisSlot(func(B *BasisSet) **uint64 { return &B.FiniteBasisNPoints })),
	quantityKw("FINITE_BASIS_SPACING", basisSlot(func(B *BasisSet) **units.Quantity[units.Energy] { return &B.FiniteBasisSpacing }), units.ParseEnergy, fixed(20, 15)),
	quantityKw("BASIS_DE_DLOGE", basisSlot(func(B *BasisSet) **units.Quantity[units.Energy] { return &B.BasisDeDloge }), units.ParseEnergy, fixed(20, 15)),
	boolKw("FIXED_NPW", basisSlot(func(B *BasisSet) **bool { return &B.FixedNPW })),
}

type BasisSetBuilder struct {
	s BasisSet
}

func NewBasisSet() *BasisSetBuilder { return new(BasisSetBuilder) }

func (B *BasisSetBuilder) BasisPrecision(p BasisPrecision) *BasisSetBuilder {
	B.s.BasisPrecision = &p
	return B
}

// CutOffEnergy takes the value in eV. Use CutOffEnergyQ for other units.
func (B *BasisSetBuilder) CutOffEnergy(ev float64) *BasisSetBuilder {
	return B.CutOffEnergyQ(units.Q[units.Energy](ev))
}

func (B *BasisSetBuilder) CutOffEnergyQ(q units.Quantity[units.Energy]) *BasisSetBuilder {
	B.s.CutOffEnergy = &q
	return B
}

func (B *BasisSetBuilder) FineGmax(q units.Quantity[units.InvLength]) *BasisSetBuilder {
	B.s.FineGmax = &q
	return B
}

func (B *BasisSetBuilder) FineGridScale(s float64) *BasisSetBuilder { B.s.FineGridScale = &s; return B }
func (B *BasisSetBuilder) GridScale(s float64) *BasisSetBuilder     { B.s.GridScale = &s; return B }

func (B *BasisSetBuilder) FiniteBasisCorr(c FiniteBasisCorr) *BasisSetBuilder {
	B.s.FiniteBasisCorr = &c
	return B
}

func (B *BasisSetBuilder) FiniteBasisNPoints(n uint64) *BasisSetBuilder {
	B.s.FiniteBasisNPoints = &n
	return B
}

func (B *BasisSetBuilder) FiniteBasisSpacing(q units.Quantity[units.Energy]) *BasisSetBuilder {
	B.s.FiniteBasisSpacing = &q
	return B
}

func (B *BasisSetBuilder) BasisDeDloge(q units.Quantity[units.Energy]) *BasisSetBuilder {
	B.s.BasisDeDloge = &q
	return B
}

func (B *BasisSetBuilder) FixedNPW(b bool) *BasisSetBuilder { B.s.FixedNPW = &b; return B }

func (B *BasisSetBuilder) Build() BasisSet { return B.s }
