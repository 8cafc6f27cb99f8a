/*
 * blocks.go, part of gocastep.
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
	"strings"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/grammar"
	"github.com/rmera/gocastep/units"
)

//Shared pieces of the block readers and writers.

// blockText wraps the given lines in %BLOCK name / %ENDBLOCK name,
// followed by a blank line. Empty lines are skipped.
func blockText(name string, lines ...string) string {
	var b strings.Builder
	b.WriteString("%BLOCK " + name + "\n")
	for _, l := range lines {
		if l == "" {
			continue
		}
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString("%ENDBLOCK " + name + "\n\n")
	return b.String()
}

func fieldText(name, value string) string {
	return name + " : " + value + "\n"
}

func resolved[U units.Unit](u *U) U {
	if u == nil {
		var d U
		return d
	}
	return *u
}

// unitLine is the optional unit line of a block: empty when the unit
// is absent or the default one.
func unitLine[U units.Unit](u *U) string {
	if u == nil || (*u).IsDefault() {
		return ""
	}
	return (*u).String()
}

// unitRow consumes the first row of a block body if it holds a single
// token that parses as a unit. A lone chemical symbol is left alone, as
// a (short) data row. Any other lone token is an unrecognized unit.
func unitRow[U units.Unit](rows []grammar.Row, parse func(string) (U, bool)) (*U, []grammar.Row, error) {
	if len(rows) == 0 || rows[0].Len() != 1 {
		return nil, rows, nil
	}
	t := rows[0].Tokens[0]
	if u, ok := parse(t.Text); ok {
		return &u, rows[1:], nil
	}
	if _, ok := castep.ParseElement(t.Text); ok {
		return nil, rows, nil
	}
	_, err := grammar.Unit(t, parse)
	return nil, nil, err
}

// row3 reads a row of exactly 3 reals.
func row3(r grammar.Row) ([3]float64, error) {
	var ret [3]float64
	if err := r.Exactly(3); err != nil {
		return ret, err
	}
	v, err := r.Reals(0, 3)
	if err != nil {
		return ret, err
	}
	copy(ret[:], v)
	return ret, nil
}

// field3 reads a field with exactly 3 reals.
func field3(f *grammar.Field) ([3]float64, error) {
	var ret [3]float64
	v, err := f.Reals(3)
	if err != nil {
		return ret, err
	}
	copy(ret[:], v)
	return ret, nil
}

// elementAt parses the element symbol in the given column of r.
func elementAt(r grammar.Row, i int) (castep.Element, error) {
	if r.Len() <= i {
		return 0, castep.NewError(castep.WrongRowLength, r.Pos, "row has %d values, at least %d needed", r.Len(), i+1)
	}
	return grammar.Element(r.Tokens[i])
}
