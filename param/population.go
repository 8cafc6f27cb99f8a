/*
 * population.go, part of gocastep.
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

// Population controls the Mulliken population analysis.
type Population struct {
	Calculate            *bool
	BondCutoff           *units.Quantity[units.Length]
	PDOSCalculateWeights *bool
	Write                *PopnWrite
}

func popnSlot[T any](f func(*Population) *T) func(*Document) *T {
	return func(D *Document) *T { return f(&D.Population) }
}

var populationKeywords = []keyword{
	boolKw("POPN_CALCULATE", popnSlot(func(P *Population) **bool { return &P.Calculate })),
	quantityKw("POPN_BOND_CUTOFF", popnSlot(func(P *Population) **units.Quantity[units.Length] { return &P.BondCutoff }), units.ParseLength, fixed(24, 15)),
	boolKw("PDOS_CALCULATE_WEIGHTS", popnSlot(func(P *Population) **bool { return &P.PDOSCalculateWeights })),
	enumKw("POPN_WRITE", "population output level", popnSlot(func(P *Population) **PopnWrite { return &P.Write }), popnWriteNames, nil),
}

type PopulationBuilder struct {
	s Population
}

func NewPopulation() *PopulationBuilder { return new(PopulationBuilder) }

func (B *PopulationBuilder) Calculate(b bool) *PopulationBuilder { B.s.Calculate = &b; return B }

func (B *PopulationBuilder) BondCutoff(q units.Quantity[units.Length]) *PopulationBuilder {
	B.s.BondCutoff = &q
	return B
}

func (B *PopulationBuilder) PDOSCalculateWeights(b bool) *PopulationBuilder {
	B.s.PDOSCalculateWeights = &b
	return B
}

func (B *PopulationBuilder) Write(w PopnWrite) *PopulationBuilder { B.s.Write = &w; return B }

func (B *PopulationBuilder) Build() Population { return B.s }

// Units sets the units CASTEP uses in its output files. CHARGE_UNIT is
// kept in General.
type Units struct {
	Energy        *units.Energy
	Length        *units.Length
	Force         *units.Force
	ForceConstant *units.ForceConstant
	Frequency     *units.Frequency
	InvLength     *units.InvLength
	Mass          *units.Mass
	Pressure      *units.Pressure
	Time          *units.Time
	Velocity      *units.Velocity
	Volume        *units.Volume
}

func unitsSlot[T any](f func(*Units) *T) func(*Document) *T {
	return func(D *Document) *T { return f(&D.Units) }
}

var unitsKeywords = []keyword{
	unitKw("ENERGY_UNIT", unitsSlot(func(U *Units) **units.Energy { return &U.Energy }), units.ParseEnergy),
	unitKw("LENGTH_UNIT", unitsSlot(func(U *Units) **units.Length { return &U.Length }), units.ParseLength),
	unitKw("FORCE_UNIT", unitsSlot(func(U *Units) **units.Force { return &U.Force }), units.ParseForce),
	unitKw("FORCE_CONSTANT_UNIT", unitsSlot(func(U *Units) **units.ForceConstant { return &U.ForceConstant }), units.ParseForceConstant),
	unitKw("FREQUENCY_UNIT", unitsSlot(func(U *Units) **units.Frequency { return &U.Frequency }), units.ParseFrequency),
	unitKw("INV_LENGTH_UNIT", unitsSlot(func(U *Units) **units.InvLength { return &U.InvLength }), units.ParseInvLength),
	unitKw("MASS_UNIT", unitsSlot(func(U *Units) **units.Mass { return &U.Mass }), units.ParseMass),
	unitKw("PRESSURE_UNIT", unitsSlot(func(U *Units) **units.Pressure { return &U.Pressure }), units.ParsePressure),
	unitKw("TIME_UNIT", unitsSlot(func(U *Units) **units.Time { return &U.Time }), units.ParseTime),
	unitKw("VELOCITY_UNIT", unitsSlot(func(U *Units) **units.Velocity { return &U.Velocity }), units.ParseVelocity),
	unitKw("VOLUME_UNIT", unitsSlot(func(U *Units) **units.Volume { return &U.Volume }), units.ParseVolume),
}
