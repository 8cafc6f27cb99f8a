/*
 * geomopt.go, part of gocastep.
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

// GeometryOpt holds the convergence criteria and the method of a geometry
// optimization.
type GeometryOpt struct {
	EnergyTol      *units.Quantity[units.Energy]
	ForceTol       *units.Quantity[units.Force]
	StressTol      *units.Quantity[units.Pressure]
	DispTol        *units.Quantity[units.Length]
	MaxIter        *uint64
	Method         *GeomMethod
	Preconditioner *GeomPreconditioner
	SpinFix        *int64
	ConvergenceWin *uint64
	FrequencyEst   *units.Quantity[units.Frequency]
	ModulusEst     *units.Quantity[units.Pressure]
}

func geomSlot[T any](f func(*GeometryOpt) *T) func(*Document) *T {
	return func(D *Document) *T { return f(&D.GeometryOpt) }
}

var geomKeywords = []keyword{
	quantityKw("GEOM_ENERGY_TOL", geomSlot(func(G *GeometryOpt) **units.Quantity[units.Energy] { return &G.EnergyTol }), units.ParseEnergy, sci(22, 15)),
	quantityKw("GEOM_FORCE_TOL", geomSlot(func(G *GeometryOpt) **units.Quantity[units.Force] { return &G.ForceTol }), units.ParseForce, fixed(24, 15)),
	quantityKw("GEOM_STRESS_TOL", geomSlot(func(G *GeometryOpt) **units.Quantity[units.Pressure] { return &G.StressTol }), units.ParsePressure, fixed(24, 15)),
	quantityKw("GEOM_DISP_TOL", geomSlot(func(G *GeometryOpt) **units.Quantity[units.Length] { return &G.DispTol }), units.ParseLength, fixed(24, 15)),
	posIntKw("GEOM_MAX_ITER", geomSlot(func(G *GeometryOpt) **uint64 { return &G.MaxIter })),
	enumKw("GEOM_METHOD", "geometry method", geomSlot(func(G *GeometryOpt) **GeomMethod { return &G.Method }), geomMethodNames, geomMethodAliases),
	enumKw("GEOM_PRECONDITIONER", "preconditioner", geomSlot(func(G *GeometryOpt) **GeomPreconditioner { return &G.Preconditioner }), geomPreconditionerNames, nil),
	intKw("GEOM_SPIN_FIX", geomSlot(func(G *GeometryOpt) **int64 { return &G.SpinFix })),
	posIntKw("GEOM_CONVERGENCE_WIN", geomSlot(func(G *GeometryOpt) **uint64 { return &G.ConvergenceWin })),
	quantityKw("GEOM_FREQUENCY_EST", geomSlot(func(G *GeometryOpt) **units.Quantity[units.Frequency] { return &G.FrequencyEst }), units.ParseFrequency, fixed(24, 15)),
	quantityKw("GEOM_MODULUS_EST", geomSlot(func(G *GeometryOpt) **units.Quantity[units.Pressure] { return &G.ModulusEst }), units.ParsePressure, fixed(24, 15)),
}

type GeometryOptBuilder struct {
	s GeometryOpt
}

func NewGeometryOpt() *GeometryOptBuilder { return new(GeometryOptBuilder) }

func (B *GeometryOptBuilder) EnergyTol(q units.Quantity[units.Energy]) *GeometryOptBuilder {
	B.s.EnergyTol = &q
	return B
}

func (B *GeometryOptBuilder) ForceTol(q units.Quantity[units.Force]) *GeometryOptBuilder {
	B.s.ForceTol = &q
	return B
}

func (B *GeometryOptBuilder) StressTol(q units.Quantity[units.Pressure]) *GeometryOptBuilder {
	B.s.StressTol = &q
	return B
}

func (B *GeometryOptBuilder) DispTol(q units.Quantity[units.Length]) *GeometryOptBuilder {
	B.s.DispTol = &q
	return B
}

func (B *GeometryOptBuilder) MaxIter(n uint64) *GeometryOptBuilder       { B.s.MaxIter = &n; return B }
func (B *GeometryOptBuilder) Method(m GeomMethod) *GeometryOptBuilder    { B.s.Method = &m; return B }
func (B *GeometryOptBuilder) SpinFix(n int64) *GeometryOptBuilder        { B.s.SpinFix = &n; return B }
func (B *GeometryOptBuilder) ConvergenceWin(n uint64) *GeometryOptBuilder { B.s.ConvergenceWin = &n; return B }

func (B *GeometryOptBuilder) Preconditioner(p GeomPreconditioner) *GeometryOptBuilder {
	B.s.Preconditioner = &p
	return B
}

func (B *GeometryOptBuilder) FrequencyEst(q units.Quantity[units.Frequency]) *GeometryOptBuilder {
	B.s.FrequencyEst = &q
	return B
}

func (B *GeometryOptBuilder) ModulusEst(q units.Quantity[units.Pressure]) *GeometryOptBuilder {
	B.s.ModulusEst = &q
	return B
}

func (B *GeometryOptBuilder) Build() GeometryOpt { return B.s }
