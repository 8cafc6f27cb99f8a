/*
 * kinds.go, part of gocastep.
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

package units

//Bohr radius in Angstrom (CODATA 2018)
const BohrRadius = 0.529177210903

// Length units. Default: ang.
type Length int

const (
	Angstrom Length = iota
	Bohr
	A0
	Meter
	Centimeter
	Nanometer
)

var lengthTable = table{
	name:    "Length",
	tokens:  []string{"ang", "bohr", "a0", "m", "cm", "nm"},
	aliases: map[string]int{"angstrom": 0},
}

func (U Length) String() string  { return lengthTable.token(int(U)) }
func (U Length) IsDefault() bool { return U == Angstrom }
func ParseLength(s string) (Length, bool) {
	i, ok := lengthTable.lookup(s)
	return Length(i), ok
}

// Angstroms returns how many Angstrom there are in one U.
func (U Length) Angstroms() float64 {
	switch U {
	case Bohr, A0:
		return BohrRadius
	case Meter:
		return 1e10
	case Centimeter:
		return 1e8
	case Nanometer:
		return 10
	default:
		return 1
	}
}

// InvLength units. Default: 1/ang.
type InvLength int

const (
	InvAngstrom InvLength = iota
	InvBohr
	InvMeter
	InvNanometer
)

var invLengthTable = table{
	name:   "InvLength",
	tokens: []string{"1/ang", "1/bohr", "1/m", "1/nm"},
}

func (U InvLength) String() string  { return invLengthTable.token(int(U)) }
func (U InvLength) IsDefault() bool { return U == InvAngstrom }
func ParseInvLength(s string) (InvLength, bool) {
	i, ok := invLengthTable.lookup(s)
	return InvLength(i), ok
}

// PerAngstrom returns the value of one U in 1/ang.
func (U InvLength) PerAngstrom() float64 {
	switch U {
	case InvBohr:
		return 1 / BohrRadius
	case InvMeter:
		return 1e-10
	case InvNanometer:
		return 0.1
	default:
		return 1
	}
}

// Energy units. Default: eV.
type Energy int

const (
	ElectronVolt Energy = iota
	Hartree
	MilliHartree
	MilliElectronVolt
	Rydberg
	MilliRydberg
	KJPerMol
	KcalPerMol
	Joule
	Erg
	Hertz
	MegaHertz
	GigaHertz
	TeraHertz
	Wavenumber
	Kelvin
)

var energyTable = table{
	name: "Energy",
	tokens: []string{"eV", "ha", "mha", "meV", "ry", "mry", "kj/mol", "kcal/mol",
		"j", "erg", "hz", "mhz", "ghz", "thz", "cm-1", "k"},
	aliases: map[string]int{"hartree": 1, "rydberg": 4},
}

func (U Energy) String() string  { return energyTable.token(int(U)) }
func (U Energy) IsDefault() bool { return U == ElectronVolt }
func ParseEnergy(s string) (Energy, bool) {
	i, ok := energyTable.lookup(s)
	return Energy(i), ok
}

// Frequency units. Default: cm-1. The tokens are those of Energy.
type Frequency int

const (
	FreqWavenumber Frequency = iota
	FreqHartree
	FreqMilliHartree
	FreqElectronVolt
	FreqMilliElectronVolt
	FreqRydberg
	FreqMilliRydberg
	FreqKJPerMol
	FreqKcalPerMol
	FreqJoule
	FreqErg
	FreqHertz
	FreqMegaHertz
	FreqGigaHertz
	FreqTeraHertz
	FreqKelvin
)

var frequencyTable = table{
	name: "Frequency",
	tokens: []string{"cm-1", "ha", "mha", "ev", "mev", "ry", "mry", "kj/mol", "kcal/mol",
		"j", "erg", "hz", "mhz", "ghz", "thz", "k"},
}

func (U Frequency) String() string  { return frequencyTable.token(int(U)) }
func (U Frequency) IsDefault() bool { return U == FreqWavenumber }
func ParseFrequency(s string) (Frequency, bool) {
	i, ok := frequencyTable.lookup(s)
	return Frequency(i), ok
}

// Force units. Default: ev/ang.
type Force int

const (
	EvPerAng Force = iota
	HartreePerBohr
	Newton
)

var forceTable = table{
	name:    "Force",
	tokens:  []string{"ev/ang", "hartree/bohr", "n"},
	aliases: map[string]int{"ha/bohr": 1},
}

func (U Force) String() string  { return forceTable.token(int(U)) }
func (U Force) IsDefault() bool { return U == EvPerAng }
func ParseForce(s string) (Force, bool) {
	i, ok := forceTable.lookup(s)
	return Force(i), ok
}

// ForceConstant units. Default: ev/ang**2.
type ForceConstant int

const (
	EvPerAng2 ForceConstant = iota
	HartreePerBohr2
	NewtonPerMeter
	DynePerCm
)

var forceConstantTable = table{
	name:   "ForceConstant",
	tokens: []string{"ev/ang**2", "hartree/bohr**2", "n/m", "dyne/cm"},
}

func (U ForceConstant) String() string  { return forceConstantTable.token(int(U)) }
func (U ForceConstant) IsDefault() bool { return U == EvPerAng2 }
func ParseForceConstant(s string) (ForceConstant, bool) {
	i, ok := forceConstantTable.lookup(s)
	return ForceConstant(i), ok
}

// Mass units. Default: amu.
type Mass int

const (
	AtomicMassUnit Mass = iota
	ElectronMass
	Kilogram
	Gram
)

var massTable = table{
	name:   "Mass",
	tokens: []string{"amu", "me", "kg", "g"},
}

func (U Mass) String() string  { return massTable.token(int(U)) }
func (U Mass) IsDefault() bool { return U == AtomicMassUnit }
func ParseMass(s string) (Mass, bool) {
	i, ok := massTable.lookup(s)
	return Mass(i), ok
}

// Pressure units. Default: GPa.
type Pressure int

const (
	GigaPascal Pressure = iota
	HartreePerBohr3
	EvPerAng3
	Pascal
	MegaPascal
	Atmosphere
	Bar
	MegaBar
)

var pressureTable = table{
	name:   "Pressure",
	tokens: []string{"gpa", "hartree/bohr**3", "ev/ang**3", "pa", "mpa", "atm", "bar", "mbar"},
}

func (U Pressure) String() string  { return pressureTable.token(int(U)) }
func (U Pressure) IsDefault() bool { return U == GigaPascal }
func ParsePressure(s string) (Pressure, bool) {
	i, ok := pressureTable.lookup(s)
	return Pressure(i), ok
}

// Time units. Default: ps.
type Time int

const (
	Picosecond Time = iota
	AtomicTime
	Second
	Millisecond
	Microsecond
	Nanosecond
	Femtosecond
)

var timeTable = table{
	name:   "Time",
	tokens: []string{"ps", "aut", "s", "ms", "mus", "ns", "fs"},
}

func (U Time) String() string  { return timeTable.token(int(U)) }
func (U Time) IsDefault() bool { return U == Picosecond }
func ParseTime(s string) (Time, bool) {
	i, ok := timeTable.lookup(s)
	return Time(i), ok
}

// Velocity units. Default: ang/ps.
type Velocity int

const (
	AngPerPs Velocity = iota
	AtomicVelocity
	AngPerFs
	BohrPerPs
	BohrPerFs
	MeterPerSecond
)

var velocityTable = table{
	name:   "Velocity",
	tokens: []string{"ang/ps", "auv", "ang/fs", "bohr/ps", "bohr/fs", "m/s"},
}

func (U Velocity) String() string  { return velocityTable.token(int(U)) }
func (U Velocity) IsDefault() bool { return U == AngPerPs }
func ParseVelocity(s string) (Velocity, bool) {
	i, ok := velocityTable.lookup(s)
	return Velocity(i), ok
}

// Volume units. Default: ang**3.
type Volume int

const (
	Ang3 Volume = iota
	Bohr3
	Meter3
	Cm3
	Nm3
)

var volumeTable = table{
	name:   "Volume",
	tokens: []string{"ang**3", "bohr**3", "m**3", "cm**3", "nm**3"},
}

func (U Volume) String() string  { return volumeTable.token(int(U)) }
func (U Volume) IsDefault() bool { return U == Ang3 }
func ParseVolume(s string) (Volume, bool) {
	i, ok := volumeTable.lookup(s)
	return Volume(i), ok
}

// Charge units. Default: e.
type Charge int

const (
	ElementaryCharge Charge = iota
	Coulomb
)

var chargeTable = table{
	name:   "Charge",
	tokens: []string{"e", "c"},
}

func (U Charge) String() string  { return chargeTable.token(int(U)) }
func (U Charge) IsDefault() bool { return U == ElementaryCharge }
func ParseCharge(s string) (Charge, bool) {
	i, ok := chargeTable.lookup(s)
	return Charge(i), ok
}

// EField units, force per charge. Default: ev/ang/e.
type EField int

const (
	EvPerAngPerE EField = iota
	HartreePerBohrPerE
	NewtonPerCoulomb
)

var efieldTable = table{
	name:   "EField",
	tokens: []string{"ev/ang/e", "hartree/bohr/e", "n/c"},
}

func (U EField) String() string  { return efieldTable.token(int(U)) }
func (U EField) IsDefault() bool { return U == EvPerAngPerE }
func ParseEField(s string) (EField, bool) {
	i, ok := efieldTable.lookup(s)
	return EField(i), ok
}
