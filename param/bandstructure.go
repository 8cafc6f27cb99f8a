/*
 * bandstructure.go, part of gocastep.
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

// BandStructure are the settings of a band structure task.
type BandStructure struct {
	EigenvalueTol    *units.Quantity[units.Energy]
	MaxCGSteps       *uint64
	MaxIter          *uint64
	NBands           *uint64
	BandExtras       BandExtras
	ReEstKScrn       *bool
	XCFunctional     *XCFunctional
	WriteEigenvalues *bool
}

func bsSlot[T any](f func(*BandStructure) *T) func(*Document) *T {
	return func(D *Document) *T { return f(&D.BandStructure) }
}

var bandStructureKeywords = []keyword{
	quantityKw("BS_EIGENVALUE_TOL", bsSlot(func(B *BandStructure) **units.Quantity[units.Energy] { return &B.EigenvalueTol }), units.ParseEnergy, sci(22, 15)),
	posIntKw("BS_MAX_CG_STEPS", bsSlot(func(B *BandStructure) **uint64 { return &B.MaxCGSteps })),
	posIntKw("BS_MAX_ITER", bsSlot(func(B *BandStructure) **uint64 { return &B.MaxIter })),
	posIntKw("BS_NBANDS", bsSlot(func(B *BandStructure) **uint64 { return &B.NBands })),
	bandExtrasKw("BS_", bsSlot(func(B *BandStructure) *BandExtras { return &B.BandExtras })),
	boolKw("BS_RE_EST_K_SCRN", bsSlot(func(B *BandStructure) **bool { return &B.ReEstKScrn })),
	enumKw("BS_XC_FUNCTIONAL", "functional", bsSlot(func(B *BandStructure) **XCFunctional { return &B.XCFunctional }), xcFunctionalNames, nil),
	boolKw("BS_WRITE_EIGENVALUES", bsSlot(func(B *BandStructure) **bool { return &B.WriteEigenvalues })),
}

type BandStructureBuilder struct {
	s BandStructure
}

func NewBandStructure() *BandStructureBuilder { return new(BandStructureBuilder) }

// EigenvalueTol is given in eV, use EigenvalueTolQ for other units.
func (B *BandStructureBuilder) EigenvalueTol(ev float64) *BandStructureBuilder {
	return B.EigenvalueTolQ(units.Q[units.Energy](ev))
}

func (B *BandStructureBuilder) EigenvalueTolQ(q units.Quantity[units.Energy]) *BandStructureBuilder {
	B.s.EigenvalueTol = &q
	return B
}

func (B *BandStructureBuilder) MaxCGSteps(n uint64) *BandStructureBuilder { B.s.MaxCGSteps = &n; return B }
func (B *BandStructureBuilder) MaxIter(n uint64) *BandStructureBuilder    { B.s.MaxIter = &n; return B }
func (B *BandStructureBuilder) NBands(n uint64) *BandStructureBuilder     { B.s.NBands = &n; return B }

func (B *BandStructureBuilder) NextraBands(n uint64) *BandStructureBuilder {
	B.s.BandExtras = NextraBands(n)
	return B
}

func (B *BandStructureBuilder) PercExtraBands(p float64) *BandStructureBuilder {
	B.s.BandExtras = PercExtraBands(p)
	return B
}

func (B *BandStructureBuilder) ReEstKScrn(b bool) *BandStructureBuilder { B.s.ReEstKScrn = &b; return B }

func (B *BandStructureBuilder) XCFunctional(x XCFunctional) *BandStructureBuilder {
	B.s.XCFunctional = &x
	return B
}

func (B *BandStructureBuilder) WriteEigenvalues(b bool) *BandStructureBuilder {
	B.s.WriteEigenvalues = &b
	return B
}

func (B *BandStructureBuilder) Build() BandStructure { return B.s }
