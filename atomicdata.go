/*
 * atomicdata.go, part of gocastep.
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

package castep

import (
	"strings"
)

// Element is a chemical element, identified by its atomic number.
// The zero value is not a valid element.
type Element int

// PeriodicEntry is the data the library needs for each element.
type PeriodicEntry struct {
	Symbol    string
	Number    int
	Mass      float64 //amu
	Spin      int     //unpaired electrons in the ground state atom
	Potential string  //default pseudopotential file name
	LCAO      int     //number of angular momentum channels for the LCAO basis
}

// The per-element data. Masses are standard atomic weights (the most stable
// isotope for the radioactive ones). LCAO is 1 for s-block elements, 2 for
// p-block, 3 for d-block and 4 for f-block.
var elementData = []struct {
	symbol string
	mass   float64
	spin   int
	lcao   int
}{
	{"H", 1.008, 1, 1}, {"He", 4.0026, 0, 1}, {"Li", 6.94, 1, 1}, {"Be", 9.0122, 0, 1},
	{"B", 10.81, 1, 2}, {"C", 12.011, 2, 2}, {"N", 14.007, 3, 2}, {"O", 15.999, 2, 2},
	{"F", 18.998, 1, 2}, {"Ne", 20.180, 0, 2}, {"Na", 22.990, 1, 1}, {"Mg", 24.305, 0, 1},
	{"Al", 26.982, 1, 2}, {"Si", 28.085, 2, 2}, {"P", 30.974, 3, 2}, {"S", 32.06, 2, 2},
	{"Cl", 35.45, 1, 2}, {"Ar", 39.948, 0, 2}, {"K", 39.098, 1, 1}, {"Ca", 40.078, 0, 1},
	{"Sc", 44.956, 1, 3}, {"Ti", 47.867, 2, 3}, {"V", 50.942, 3, 3}, {"Cr", 51.996, 6, 3},
	{"Mn", 54.938, 5, 3}, {"Fe", 55.845, 4, 3}, {"Co", 58.933, 3, 3}, {"Ni", 58.693, 2, 3},
	{"Cu", 63.546, 1, 3}, {"Zn", 65.38, 0, 3}, {"Ga", 69.723, 1, 2}, {"Ge", 72.630, 2, 2},
	{"As", 74.922, 3, 2}, {"Se", 78.971, 2, 2}, {"Br", 79.904, 1, 2}, {"Kr", 83.798, 0, 2},
	{"Rb", 85.468, 1, 1}, {"Sr", 87.62, 0, 1}, {"Y", 88.906, 1, 3}, {"Zr", 91.224, 2, 3},
	{"Nb", 92.906, 5, 3}, {"Mo", 95.95, 6, 3}, {"Tc", 98.0, 5, 3}, {"Ru", 101.07, 4, 3},
	{"Rh", 102.91, 3, 3}, {"Pd", 106.42, 0, 3}, {"Ag", 107.87, 1, 3}, {"Cd", 112.41, 0, 3},
	{"In", 114.82, 1, 2}, {"Sn", 118.71, 2, 2}, {"Sb", 121.76, 3, 2}, {"Te", 127.60, 2, 2},
	{"I", 126.90, 1, 2}, {"Xe", 131.29, 0, 2}, {"Cs", 132.91, 1, 1}, {"Ba", 137.33, 0, 1},
	{"La", 138.91, 1, 3}, {"Ce", 140.12, 2, 4}, {"Pr", 140.91, 3, 4}, {"Nd", 144.24, 4, 4},
	{"Pm", 145.0, 5, 4}, {"Sm", 150.36, 6, 4}, {"Eu", 151.96, 7, 4}, {"Gd", 157.25, 8, 4},
	{"Tb", 158.93, 5, 4}, {"Dy", 162.50, 4, 4}, {"Ho", 164.93, 3, 4}, {"Er", 167.26, 2, 4},
	{"Tm", 168.93, 1, 4}, {"Yb", 173.05, 0, 4}, {"Lu", 174.97, 1, 3}, {"Hf", 178.49, 2, 3},
	{"Ta", 180.95, 3, 3}, {"W", 183.84, 4, 3}, {"Re", 186.21, 5, 3}, {"Os", 190.23, 4, 3},
	{"Ir", 192.22, 3, 3}, {"Pt", 195.08, 2, 3}, {"Au", 196.97, 1, 3}, {"Hg", 200.59, 0, 3},
	{"Tl", 204.38, 1, 2}, {"Pb", 207.2, 2, 2}, {"Bi", 208.98, 3, 2}, {"Po", 209.0, 2, 2},
	{"At", 210.0, 1, 2}, {"Rn", 222.0, 0, 2}, {"Fr", 223.0, 1, 1}, {"Ra", 226.0, 0, 1},
	{"Ac", 227.0, 1, 3}, {"Th", 232.04, 2, 4}, {"Pa", 231.04, 3, 4}, {"U", 238.03, 4, 4},
	{"Np", 237.0, 5, 4}, {"Pu", 244.0, 6, 4}, {"Am", 243.0, 7, 4}, {"Cm", 247.0, 8, 4},
	{"Bk", 247.0, 5, 4}, {"Cf", 251.0, 4, 4}, {"Es", 252.0, 3, 4}, {"Fm", 257.0, 2, 4},
	{"Md", 258.0, 1, 4}, {"No", 259.0, 0, 4}, {"Lr", 262.0, 1, 3},
}

// symbolElement maps lower-case symbols to elements.
var symbolElement = map[string]Element{}

func init() {
	for i, v := range elementData {
		symbolElement[strings.ToLower(v.symbol)] = Element(i + 1)
	}
}

// NumElements is the number of elements known to the library.
func NumElements() int {
	return len(elementData)
}

// ParseElement returns the element with the given symbol. Case is ignored.
func ParseElement(symbol string) (Element, bool) {
	e, ok := symbolElement[strings.ToLower(symbol)]
	return e, ok
}

// ElementFromNumber returns the element with atomic number z.
func ElementFromNumber(z int) (Element, bool) {
	if z < 1 || z > len(elementData) {
		return 0, false
	}
	return Element(z), true
}

// Valid returns true if E is a known element.
func (E Element) Valid() bool {
	return E >= 1 && int(E) <= len(elementData)
}

// Symbol returns the canonical symbol of the element, or "X" for an invalid one.
func (E Element) Symbol() string {
	if !E.Valid() {
		return "X"
	}
	return elementData[E-1].symbol
}

func (E Element) String() string {
	return E.Symbol()
}

// Entry returns the periodic table data for the element. It panics
// if the element is not valid.
func (E Element) Entry() PeriodicEntry {
	if !E.Valid() {
		panic("castep: Entry called on an invalid element")
	}
	d := elementData[E-1]
	return PeriodicEntry{
		Symbol:    d.symbol,
		Number:    int(E),
		Mass:      d.mass,
		Spin:      d.spin,
		Potential: d.symbol + "_00.usp",
		LCAO:      d.lcao,
	}
}

// Mass returns the default mass of the element, in amu.
func (E Element) Mass() float64 { return E.Entry().Mass }

// Spin returns the default spin of the element.
func (E Element) Spin() int { return E.Entry().Spin }
