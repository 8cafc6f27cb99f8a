/*
 * hubbard.go, part of gocastep.
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
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/grammar"
	"github.com/rmera/gocastep/units"
)

// Orbital is an angular momentum channel.
type Orbital int

const (
	OrbitalS Orbital = iota
	OrbitalP
	OrbitalD
	OrbitalF
)

var orbitalNames = []string{"s", "p", "d", "f"}

func (O Orbital) String() string {
	if O < 0 || int(O) >= len(orbitalNames) {
		return "?"
	}
	return orbitalNames[O]
}

// ParseOrbital returns the orbital for the letter s, ignoring case.
func ParseOrbital(s string) (Orbital, bool) {
	i := slices.Index(orbitalNames, strings.ToLower(s))
	return Orbital(i), i >= 0
}

// OrbitalValue is an "orbital: value" pair.
type OrbitalValue struct {
	Orbital Orbital
	Value   float64
}

// HubbardRow sets the values for the orbitals of an element or, if
// Atom is not nil, of only one atom of that element.
type HubbardRow struct {
	Element  castep.Element
	Atom     *int
	Orbitals []OrbitalValue
}

func (H HubbardRow) sameSite(o HubbardRow) bool {
	if H.Element != o.Element || (H.Atom == nil) != (o.Atom == nil) {
		return false
	}
	return H.Atom == nil || *H.Atom == *o.Atom
}

func (H HubbardRow) text() string {
	s := castep.Right(H.Element.Symbol(), 4)
	if H.Atom != nil {
		s += " " + strconv.Itoa(*H.Atom)
	}
	for _, o := range H.Orbitals {
		s += " " + o.Orbital.String() + ": " + castep.Fixed(o.Value, 20, 15)
	}
	return s
}

// HubbardTable is the content of the HUBBARD_U and HUBBARD_ALPHA blocks.
// A nil Unit means eV.
type HubbardTable struct {
	Unit *units.Energy
	Rows []HubbardRow
}

// Add appends a row. It fails with DuplicateElement if there is already
// a row for the same element and atom, and with MissingValue if the row
// has no orbitals.
func (H *HubbardTable) Add(r HubbardRow) error {
	return H.add(r, castep.Position{})
}

func (H *HubbardTable) add(r HubbardRow, pos castep.Position) error {
	if len(r.Orbitals) == 0 {
		return castep.NewError(castep.MissingValue, pos, "no orbital given for %s", r.Element)
	}
	if slices.ContainsFunc(H.Rows, r.sameSite) {
		return castep.NewError(castep.DuplicateElement, pos, "element %s appears twice", r.Element)
	}
	H.Rows = append(H.Rows, r)
	return nil
}

func (H *HubbardTable) emit(name string) string {
	lines := []string{unitLine(H.Unit)}
	for _, r := range H.Rows {
		lines = append(lines, r.text())
	}
	return blockText(name, lines...)
}

// HubbardU is a HUBBARD_U block.
type HubbardU struct {
	HubbardTable
}

// HubbardAlpha is a HUBBARD_ALPHA block.
type HubbardAlpha struct {
	HubbardTable
}

func (*HubbardU) Kind() EntryKind     { return KindHubbardU }
func (*HubbardAlpha) Kind() EntryKind { return KindHubbardAlpha }
func (H *HubbardU) Emit() string      { return H.emit("HUBBARD_U") }
func (H *HubbardAlpha) Emit() string  { return H.emit("HUBBARD_ALPHA") }

// parseHubbardRow reads "El [atom] orb: value [orb: value ...]".
func parseHubbardRow(r grammar.Row) (HubbardRow, error) {
	var H HubbardRow
	var err error
	if H.Element, err = elementAt(r, 0); err != nil {
		return H, err
	}
	toks := r.Tokens[1:]
	if len(toks) > 0 && toks[0].Kind == grammar.Word {
		if n, err := grammar.Int(toks[0]); err == nil {
			a := int(n)
			H.Atom = &a
			toks = toks[1:]
		}
	}
	for len(toks) > 0 {
		if len(toks) < 3 || toks[1].Kind != grammar.Sep {
			return H, castep.NewError(castep.MissingValue, toks[0].Pos, "expected orbital: value, found %q", toks[0].Text)
		}
		o, ok := ParseOrbital(toks[0].Text)
		if !ok {
			return H, castep.NewError(castep.UnknownOrbital, toks[0].Pos, "%q is not one of s, p, d or f", toks[0].Text)
		}
		v, err := grammar.Real(toks[2])
		if err != nil {
			return H, err
		}
		H.Orbitals = append(H.Orbitals, OrbitalValue{Orbital: o, Value: v})
		toks = toks[3:]
	}
	if len(H.Orbitals) == 0 {
		return H, castep.NewError(castep.MissingValue, r.Pos, "no orbital given for %s", H.Element)
	}
	return H, nil
}

func parseHubbardTable(b *grammar.Block) (HubbardTable, error) {
	var H HubbardTable
	u, rows, err := unitRow(b.Rows, units.ParseEnergy)
	if err != nil {
		return H, err
	}
	H.Unit = u
	for _, r := range rows {
		row, err := parseHubbardRow(r)
		if err != nil {
			return H, err
		}
		if err := H.add(row, r.Pos); err != nil {
			return H, err
		}
	}
	return H, nil
}

func parseHubbardU(b *grammar.Block) (Entry, error) {
	H, err := parseHubbardTable(b)
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseHubbardU")
	}
	return &HubbardU{H}, nil
}

func parseHubbardAlpha(b *grammar.Block) (Entry, error) {
	H, err := parseHubbardTable(b)
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseHubbardAlpha")
	}
	return &HubbardAlpha{H}, nil
}
