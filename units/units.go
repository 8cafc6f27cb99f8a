/*
 * units.go, part of gocastep.
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

//Package units contains the unit enumerations accepted by CASTEP and
//a value-with-optional-unit type.
//
//Every unit type is an int-based enumeration whose zero value is the
//CASTEP default for that kind of quantity. Parsing ignores case, emission
//always uses the canonical token.
package units

import (
	"fmt"
	"strings"
)

// Unit is the constraint satisfied by all the unit enumerations.
type Unit interface {
	comparable
	String() string
	IsDefault() bool
}

// table holds the canonical tokens of one unit kind, indexed by value,
// plus extra spellings accepted on parse.
type table struct {
	name    string
	tokens  []string
	aliases map[string]int
}

func (t table) token(i int) string {
	if i < 0 || i >= len(t.tokens) {
		return fmt.Sprintf("%s(%d)", t.name, i)
	}
	return t.tokens[i]
}

func (t table) lookup(s string) (int, bool) {
	l := strings.ToLower(s)
	for i, v := range t.tokens {
		if strings.ToLower(v) == l {
			return i, true
		}
	}
	if i, ok := t.aliases[l]; ok {
		return i, true
	}
	return 0, false
}

// Quantity is a real value with an optional unit. A nil Unit means the
// unit was not written and the default for U applies.
type Quantity[U Unit] struct {
	Value float64
	Unit  *U
}

// Q returns a quantity without an explicit unit.
func Q[U Unit](v float64) Quantity[U] {
	return Quantity[U]{Value: v}
}

// With returns a quantity with an explicit unit.
func With[U Unit](v float64, u U) Quantity[U] {
	return Quantity[U]{Value: v, Unit: &u}
}

// Clone returns a copy of V that does not share its unit with V.
func (V Quantity[U]) Clone() Quantity[U] {
	if V.Unit != nil {
		u := *V.Unit
		V.Unit = &u
	}
	return V
}

// Resolved returns the unit of the quantity, or the default one if
// none was given.
func (V Quantity[U]) Resolved() U {
	if V.Unit != nil {
		return *V.Unit
	}
	var u U
	return u
}

// Equal compares values and resolved units, so an absent unit equals
// an explicit default one.
func (V Quantity[U]) Equal(o Quantity[U]) bool {
	return V.Value == o.Value && V.Resolved() == o.Resolved()
}

// Suffix returns the unit text to write after the value: empty if the unit
// is absent or the default, unless always is true, in which case the resolved
// unit is always returned. The returned string starts with a space when
// not empty.
func (V Quantity[U]) Suffix(always bool) string {
	u := V.Resolved()
	if always || (V.Unit != nil && !u.IsDefault()) {
		return " " + u.String()
	}
	return ""
}
