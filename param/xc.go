/*
 * xc.go, part of gocastep.
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

// NonLocalXC are the NLXC_* keywords, used with hybrid functionals.
type NonLocalXC struct {
	PageExPot           *int64
	PPDIntegral         *bool
	PPDSizeX            *uint64
	PPDSizeY            *uint64
	PPDSizeZ            *uint64
	ImposeTRS           *bool
	ExchangeReflectKpts *bool
	ReEstKScrn          *bool
	ExchangeScreening   *units.Quantity[units.InvLength]
	ExchangeFraction    *float64
	CalcFullExPot       *bool
	DivergenceCorr      *bool
}

// ExchangeCorrelation is the functional and the pseudopotential treatment.
type ExchangeCorrelation struct {
	XCFunctional          *XCFunctional
	SpinPolarized         *bool
	NLXC                  NonLocalXC
	RelativisticTreatment *RelativisticTreatment
	PspotNonlocalType     *PspotSpace
	PspotBetaPhiType      *PspotSpace
}

func xcSlot[T any](f func(*ExchangeCorrelation) *T) func(*Document) *T {
	return func(D *Document) *T { return f(&D.XC) }
}

func nlxcSlot[T any](f func(*NonLocalXC) *T) func(*Document) *T {
	return func(D *Document) *T { return f(&D.XC.NLXC) }
}

var xcKeywords = []keyword{
	enumKw("XC_FUNCTIONAL", "functional", xcSlot(func(X *ExchangeCorrelation) **XCFunctional { return &X.XCFunctional }), xcFunctionalNames, nil),
	boolKw("SPIN_POLARIZED", xcSlot(func(X *ExchangeCorrelation) **bool { return &X.SpinPolarized })),
	intKw("NLXC_PAGE_EX_POT", nlxcSlot(func(N *NonLocalXC) **int64 { return &N.PageExPot })),
	boolKw("NLXC_PPD_INTEGRAL", nlxcSlot(func(N *NonLocalXC) **bool { return &N.PPDIntegral })),
	posIntKw("NLXC_PPD_SIZE_X", nlxcSlot(func(N *NonLocalXC) **uint64 { return &N.PPDSizeX })),
	posIntKw("NLXC_PPD_SIZE_Y", nlxcSlot(func(N *NonLocalXC) **uint64 { return &N.PPDSizeY })),
	posIntKw("NLXC_PPD_SIZE_Z", nlxcSlot(func(N *NonLocalXC) **uint64 { return &N.PPDSizeZ })),
	boolKw("NLXC_IMPOSE_TRS", nlxcSlot(func(N *NonLocalXC) **bool { return &N.ImposeTRS })),
	boolKw("NLXC_EXCHANGE_REFLECT_KPTS", nlxcSlot(func(N *NonLocalXC) **bool { return &N.ExchangeReflectKpts })),
	boolKw("NLXC_RE_EST_K_SCRN", nlxcSlot(func(N *NonLocalXC) **bool { return &N.ReEstKScrn })),
	quantityKw("NLXC_EXCHANGE_SCREENING", nlxcSlot(func(N *NonLocalXC) **units.Quantity[units.InvLength] { return &N.ExchangeScreening }), units.ParseInvLength, fixed(20, 15)),
	realKw("NLXC_EXCHANGE_FRACTION", nlxcSlot(func(N *NonLocalXC) **float64 { return &N.ExchangeFraction }), fixed(20, 15)),
	boolKw("NLXC_CALC_FULL_EX_POT", nlxcSlot(func(N *NonLocalXC) **bool { return &N.CalcFullExPot })),
	boolKw("NLXC_DIVERGENCE_CORR", nlxcSlot(func(N *NonLocalXC) **bool { return &N.DivergenceCorr })),
	enumKw("RELATIVISTIC_TREATMENT", "relativistic treatment", xcSlot(func(X *ExchangeCorrelation) **RelativisticTreatment { return &X.RelativisticTreatment }), relativisticNames, nil),
	enumKw("PSPOT_NONLOCAL_TYPE", "pseudopotential space", xcSlot(func(X *ExchangeCorrelation) **PspotSpace { return &X.PspotNonlocalType }), pspotSpaceNames, nil),
	enumKw("PSPOT_BETA_PHI_TYPE", "pseudopotential space", xcSlot(func(X *ExchangeCorrelation) **PspotSpace { return &X.PspotBetaPhiType }), pspotSpaceNames, nil),
}

type XCBuilder struct {
	s ExchangeCorrelation
}

func NewXC() *XCBuilder { return new(XCBuilder) }

func (B *XCBuilder) XCFunctional(x XCFunctional) *XCBuilder { B.s.XCFunctional = &x; return B }
func (B *XCBuilder) SpinPolarized(b bool) *XCBuilder        { B.s.SpinPolarized = &b; return B }

// NLXC replaces all the non-local exchange settings at once.
func (B *XCBuilder) NLXC(n NonLocalXC) *XCBuilder { B.s.NLXC = n; return B }

func (B *XCBuilder) ExchangeFraction(f float64) *XCBuilder {
	B.s.NLXC.ExchangeFraction = &f
	return B
}

func (B *XCBuilder) ExchangeScreening(q units.Quantity[units.InvLength]) *XCBuilder {
	B.s.NLXC.ExchangeScreening = &q
	return B
}

func (B *XCBuilder) RelativisticTreatment(r RelativisticTreatment) *XCBuilder {
	B.s.RelativisticTreatment = &r
	return B
}

func (B *XCBuilder) PspotNonlocalType(p PspotSpace) *XCBuilder { B.s.PspotNonlocalType = &p; return B }
func (B *XCBuilder) PspotBetaPhiType(p PspotSpace) *XCBuilder  { B.s.PspotBetaPhiType = &p; return B }

func (B *XCBuilder) Build() ExchangeCorrelation { return B.s }
