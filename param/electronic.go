/*
 * electronic.go, part of gocastep.
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
	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/units"
)

// Electronic describes the electrons and bands of the system.
type Electronic struct {
	Charge     *float64
	NElectrons *float64
	NUp        *float64
	NDown      *float64
	Spin       *float64
	NBands     *uint64
	BandExtras BandExtras
}

func electronicSlot[T any](f func(*Electronic) *T) func(*Document) *T {
	return func(D *Document) *T { return f(&D.Electronic) }
}

var electronicKeywords = []keyword{
	realKw("CHARGE", electronicSlot(func(E *Electronic) **float64 { return &E.Charge }), castep.Short),
	realKw("NELECTRONS", electronicSlot(func(E *Electronic) **float64 { return &E.NElectrons }), castep.Short),
	realKw("NUP", electronicSlot(func(E *Electronic) **float64 { return &E.NUp }), castep.Short),
	realKw("NDOWN", electronicSlot(func(E *Electronic) **float64 { return &E.NDown }), castep.Short),
	realKw("SPIN", electronicSlot(func(E *Electronic) **float64 { return &E.Spin }), castep.Short),
	posIntKw("NBANDS", electronicSlot(func(E *Electronic) **uint64 { return &E.NBands })),
	bandExtrasKw("", electronicSlot(func(E *Electronic) *BandExtras { return &E.BandExtras })),
}

type ElectronicBuilder struct {
	s Electronic
}

func NewElectronic() *ElectronicBuilder { return new(ElectronicBuilder) }

func (B *ElectronicBuilder) Charge(c float64) *ElectronicBuilder     { B.s.Charge = &c; return B }
func (B *ElectronicBuilder) NElectrons(n float64) *ElectronicBuilder { B.s.NElectrons = &n; return B }
func (B *ElectronicBuilder) NUp(n float64) *ElectronicBuilder        { B.s.NUp = &n; return B }
func (B *ElectronicBuilder) NDown(n float64) *ElectronicBuilder      { B.s.NDown = &n; return B }
func (B *ElectronicBuilder) Spin(s float64) *ElectronicBuilder       { B.s.Spin = &s; return B }
func (B *ElectronicBuilder) NBands(n uint64) *ElectronicBuilder      { B.s.NBands = &n; return B }

// NextraBands replaces any percentage of extra bands.
func (B *ElectronicBuilder) NextraBands(n uint64) *ElectronicBuilder {
	B.s.BandExtras = NextraBands(n)
	return B
}

// PercExtraBands replaces any count of extra bands.
func (B *ElectronicBuilder) PercExtraBands(p float64) *ElectronicBuilder {
	B.s.BandExtras = PercExtraBands(p)
	return B
}

func (B *ElectronicBuilder) Build() Electronic { return B.s }

// ElectronicMinimization controls the SCF cycle. The density mixing keys
// and NUM_OCC_CYCLES (ensemble DFT) are written right after METALS_METHOD
// whatever the method is.
type ElectronicMinimization struct {
	ElecEnergyTol      *units.Quantity[units.Energy]
	ElecEigenvalueTol  *units.Quantity[units.Energy]
	ElecConvergenceWin *uint64
	FixOccupancy       *bool
	MaxSCFCycles       *uint64
	SmearingWidth      *units.Quantity[units.Energy]
	SpinFix            *int64
	NumDumpCycles      *int64
	MetalsMethod       *MetalsMethod
	//Density mixing.
	MixingScheme     *MixingScheme
	MixChargeAmp     *float64
	MixSpinAmp       *float64
	MixChargeGmax    *units.Quantity[units.InvLength]
	MixSpinGmax      *units.Quantity[units.InvLength]
	MixMetricQ       *units.Quantity[units.InvLength]
	MixHistoryLength *uint64
	//Ensemble DFT.
	NumOccCycles *uint64
}

func elecMinSlot[T any](f func(*ElectronicMinimization) *T) func(*Document) *T {
	return func(D *Document) *T { return f(&D.ElecMin) }
}

var elecMinKeywords = []keyword{
	quantityKw("ELEC_ENERGY_TOL", elecMinSlot(func(E *ElectronicMinimization) **units.Quantity[units.Energy] { return &E.ElecEnergyTol }), units.ParseEnergy, sci(22, 15)),
	quantityKw("ELEC_EIGENVALUE_TOL", elecMinSlot(func(E *ElectronicMinimization) **units.Quantity[units.Energy] { return &E.ElecEigenvalueTol }), units.ParseEnergy, sci(22, 15)),
	posIntKw("ELEC_CONVERGENCE_WIN", elecMinSlot(func(E *ElectronicMinimization) **uint64 { return &E.ElecConvergenceWin })),
	boolKw("FIX_OCCUPANCY", elecMinSlot(func(E *ElectronicMinimization) **bool { return &E.FixOccupancy })),
	posIntKw("MAX_SCF_CYCLES", elecMinSlot(func(E *ElectronicMinimization) **uint64 { return &E.MaxSCFCycles })),
	quantityKw("SMEARING_WIDTH", elecMinSlot(func(E *ElectronicMinimization) **units.Quantity[units.Energy] { return &E.SmearingWidth }), units.ParseEnergy, fixed(24, 15)),
	intKw("SPIN_FIX", elecMinSlot(func(E *ElectronicMinimization) **int64 { return &E.SpinFix })),
	intKw("NUM_DUMP_CYCLES", elecMinSlot(func(E *ElectronicMinimization) **int64 { return &E.NumDumpCycles })),
	enumKw("METALS_METHOD", "metals method", elecMinSlot(func(E *ElectronicMinimization) **MetalsMethod { return &E.MetalsMethod }), metalsMethodNames, nil),
	enumKw("MIXING_SCHEME", "mixing scheme", elecMinSlot(func(E *ElectronicMinimization) **MixingScheme { return &E.MixingScheme }), mixingSchemeNames, nil),
	realKw("MIX_CHARGE_AMP", elecMinSlot(func(E *ElectronicMinimization) **float64 { return &E.MixChargeAmp }), fixed(26, 15)),
	realKw("MIX_SPIN_AMP", elecMinSlot(func(E *ElectronicMinimization) **float64 { return &E.MixSpinAmp }), fixed(26, 15)),
	quantityKw("MIX_CHARGE_GMAX", elecMinSlot(func(E *ElectronicMinimization) **units.Quantity[units.InvLength] { return &E.MixChargeGmax }), units.ParseInvLength, fixed(26, 15)),
	quantityKw("MIX_SPIN_GMAX", elecMinSlot(func(E *ElectronicMinimization) **units.Quantity[units.InvLength] { return &E.MixSpinGmax }), units.ParseInvLength, fixed(26, 15)),
	quantityKw("MIX_METRIC_Q", elecMinSlot(func(E *ElectronicMinimization) **units.Quantity[units.InvLength] { return &E.MixMetricQ }), units.ParseInvLength, fixed(20, 15)),
	posIntKw("MIX_HISTORY_LENGTH", elecMinSlot(func(E *ElectronicMinimization) **uint64 { return &E.MixHistoryLength })),
	posIntKw("NUM_OCC_CYCLES", elecMinSlot(func(E *ElectronicMinimization) **uint64 { return &E.NumOccCycles })),
}

type ElecMinBuilder struct {
	s ElectronicMinimization
}

func NewElecMin() *ElecMinBuilder { return new(ElecMinBuilder) }

func (B *ElecMinBuilder) ElecEnergyTol(q units.Quantity[units.Energy]) *ElecMinBuilder {
	B.s.ElecEnergyTol = &q
	return B
}

func (B *ElecMinBuilder) ElecEigenvalueTol(q units.Quantity[units.Energy]) *ElecMinBuilder {
	B.s.ElecEigenvalueTol = &q
	return B
}

func (B *ElecMinBuilder) ElecConvergenceWin(n uint64) *ElecMinBuilder {
	B.s.ElecConvergenceWin = &n
	return B
}

func (B *ElecMinBuilder) FixOccupancy(b bool) *ElecMinBuilder   { B.s.FixOccupancy = &b; return B }
func (B *ElecMinBuilder) MaxSCFCycles(n uint64) *ElecMinBuilder { B.s.MaxSCFCycles = &n; return B }

func (B *ElecMinBuilder) SmearingWidth(q units.Quantity[units.Energy]) *ElecMinBuilder {
	B.s.SmearingWidth = &q
	return B
}

func (B *ElecMinBuilder) SpinFix(n int64) *ElecMinBuilder       { B.s.SpinFix = &n; return B }
func (B *ElecMinBuilder) NumDumpCycles(n int64) *ElecMinBuilder { B.s.NumDumpCycles = &n; return B }

func (B *ElecMinBuilder) MetalsMethod(m MetalsMethod) *ElecMinBuilder {
	B.s.MetalsMethod = &m
	return B
}

// DensityMixing sets METALS_METHOD to dm together with the scheme and
// the charge and spin amplitudes.
func (B *ElecMinBuilder) DensityMixing(scheme MixingScheme, chargeAmp, spinAmp float64) *ElecMinBuilder {
	m := MetalsDM
	B.s.MetalsMethod = &m
	B.s.MixingScheme = &scheme
	B.s.MixChargeAmp = &chargeAmp
	B.s.MixSpinAmp = &spinAmp
	return B
}

// EDFT sets METALS_METHOD to edft with the given number of occupancy
// cycles per SCF step.
func (B *ElecMinBuilder) EDFT(occCycles uint64) *ElecMinBuilder {
	m := MetalsEDFT
	B.s.MetalsMethod = &m
	B.s.NumOccCycles = &occCycles
	return B
}

func (B *ElecMinBuilder) MixingScheme(m MixingScheme) *ElecMinBuilder { B.s.MixingScheme = &m; return B }
func (B *ElecMinBuilder) MixChargeAmp(a float64) *ElecMinBuilder     { B.s.MixChargeAmp = &a; return B }
func (B *ElecMinBuilder) MixSpinAmp(a float64) *ElecMinBuilder       { B.s.MixSpinAmp = &a; return B }

func (B *ElecMinBuilder) MixChargeGmax(q units.Quantity[units.InvLength]) *ElecMinBuilder {
	B.s.MixChargeGmax = &q
	return B
}

func (B *ElecMinBuilder) MixSpinGmax(q units.Quantity[units.InvLength]) *ElecMinBuilder {
	B.s.MixSpinGmax = &q
	return B
}

func (B *ElecMinBuilder) MixMetricQ(q units.Quantity[units.InvLength]) *ElecMinBuilder {
	B.s.MixMetricQ = &q
	return B
}

func (B *ElecMinBuilder) MixHistoryLength(n uint64) *ElecMinBuilder { B.s.MixHistoryLength = &n; return B }
func (B *ElecMinBuilder) NumOccCycles(n uint64) *ElecMinBuilder     { B.s.NumOccCycles = &n; return B }

func (B *ElecMinBuilder) Build() ElectronicMinimization { return B.s }
