/*
 * positions.go, part of gocastep.
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

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/grammar"
	"github.com/rmera/gocastep/units"
)

// Mixture tags an atom as part of a virtual crystal mixture.
type Mixture struct {
	ID     int
	Weight float64
}

// Atom is one row of a positions block.
type Atom struct {
	Element castep.Element
	Coord   [3]float64
	Spin    *float64
	Mixture *Mixture
}

// IonicPositions is a POSITIONS_FRAC or, if Absolute is true, a
// POSITIONS_ABS block. Unit is only meaningful for absolute positions,
// nil means Angstrom. A unit line in a FRAC block is kept and written
// back, but it does not change the coordinates.
type IonicPositions struct {
	Absolute bool
	Unit     *units.Length
	Atoms    []Atom
}

func (P IonicPositions) name() string {
	if P.Absolute {
		return "POSITIONS_ABS"
	}
	return "POSITIONS_FRAC"
}

// SpinPolarised is true if any atom carries a spin.
func (P IonicPositions) SpinPolarised() bool {
	for _, a := range P.Atoms {
		if a.Spin != nil {
			return true
		}
	}
	return false
}

// Elements returns the element of each atom, in order.
func (P IonicPositions) Elements() []castep.Element {
	ret := make([]castep.Element, len(P.Atoms))
	for i, a := range P.Atoms {
		ret[i] = a.Element
	}
	return ret
}

func (A Atom) row() string {
	s := castep.Right(A.Element.Symbol(), 3) +
		castep.Fixed(A.Coord[0], 20, 16) +
		castep.Fixed(A.Coord[1], 20, 16) +
		castep.Fixed(A.Coord[2], 20, 16)
	if A.Spin != nil {
		s += " SPIN=" + castep.Fixed(*A.Spin, 14, 10)
	}
	if A.Mixture != nil {
		s += " MIXTURE:(" + castep.Right(strconv.Itoa(A.Mixture.ID), 5) + castep.Fixed(A.Mixture.Weight, 10, 6) + ")"
	}
	return s
}

func (P IonicPositions) Emit() string {
	lines := make([]string, 0, len(P.Atoms)+1)
	lines = append(lines, unitLine(P.Unit))
	for _, a := range P.Atoms {
		lines = append(lines, a.row())
	}
	return blockText(P.name(), lines...)
}

func parsePositions(b *grammar.Block, absolute bool) (IonicPositions, error) {
	P := IonicPositions{Absolute: absolute}
	u, rows, err := unitRow(b.Rows, units.ParseLength)
	if err != nil {
		return P, castep.ErrDecorate(err, "parsePositions")
	}
	P.Unit = u
	P.Atoms = make([]Atom, 0, len(rows))
	for _, r := range rows {
		a, err := parseAtom(r)
		if err != nil {
			return P, castep.ErrDecorate(err, "parsePositions")
		}
		P.Atoms = append(P.Atoms, a)
	}
	return P, nil
}

// parseAtom reads "El x y z [SPIN=s] [MIXTURE:(id weight)]". The
// attributes can come in any order, the separators are optional.
func parseAtom(r grammar.Row) (Atom, error) {
	var A Atom
	var err error
	if A.Element, err = elementAt(r, 0); err != nil {
		return A, err
	}
	c, err := r.Reals(1, 3)
	if err != nil {
		return A, err
	}
	copy(A.Coord[:], c)
	toks := r.Tokens[4:]
	for len(toks) > 0 {
		name := strings.ToUpper(toks[0].Text)
		toks = toks[1:]
		if len(toks) > 0 && toks[0].Kind == grammar.Sep {
			toks = toks[1:]
		}
		switch name {
		case "SPIN":
			if len(toks) == 0 {
				return A, castep.NewError(castep.MissingValue, r.Pos, "SPIN without a value")
			}
			s, err := grammar.Real(toks[0])
			if err != nil {
				return A, err
			}
			A.Spin = &s
			toks = toks[1:]
		case "MIXTURE":
			var m *Mixture
			m, toks, err = parseMixture(r, toks)
			if err != nil {
				return A, err
			}
			A.Mixture = m
		default:
			return A, castep.NewError(castep.ExtraTokens, r.Pos, "unexpected %q in positions row", name)
		}
	}
	return A, nil
}

// parseMixture reads the id and weight of a mixture, with or without
// parentheses around them, and returns the remaining tokens.
func parseMixture(r grammar.Row, toks []grammar.Token) (*Mixture, []grammar.Token, error) {
	var vals []grammar.Token
	for len(toks) > 0 && len(vals) < 2 {
		t := toks[0]
		toks = toks[1:]
		t.Text = strings.Trim(t.Text, "()")
		if t.Text != "" {
			vals = append(vals, t)
		}
	}
	if len(toks) > 0 && toks[0].Text == ")" {
		toks = toks[1:]
	}
	if len(vals) < 2 {
		return nil, nil, castep.NewError(castep.MissingValue, r.Pos, "MIXTURE needs an id and a weight")
	}
	id, err := grammar.Int(vals[0])
	if err != nil {
		return nil, nil, err
	}
	w, err := grammar.Real(vals[1])
	if err != nil {
		return nil, nil, err
	}
	return &Mixture{ID: int(id), Weight: w}, toks, nil
}

// PositionsBuilder builds an IonicPositions block atom by atom.
type PositionsBuilder struct {
	p IonicPositions
}

// NewPositionsBuilder returns a builder for fractional positions, or for
// absolute ones if absolute is true.
func NewPositionsBuilder(absolute bool) *PositionsBuilder {
	return &PositionsBuilder{p: IonicPositions{Absolute: absolute}}
}

func (B *PositionsBuilder) Unit(u units.Length) *PositionsBuilder {
	B.p.Unit = &u
	return B
}

// Atom adds an atom.
func (B *PositionsBuilder) Atom(e castep.Element, x, y, z float64) *PositionsBuilder {
	B.p.Atoms = append(B.p.Atoms, Atom{Element: e, Coord: [3]float64{x, y, z}})
	return B
}

// Spin sets the spin of the last atom added. It does nothing if there are no atoms.
func (B *PositionsBuilder) Spin(s float64) *PositionsBuilder {
	if n := len(B.p.Atoms); n > 0 {
		B.p.Atoms[n-1].Spin = &s
	}
	return B
}

// Mixture tags the last atom added. It does nothing if there are no atoms.
func (B *PositionsBuilder) Mixture(id int, weight float64) *PositionsBuilder {
	if n := len(B.p.Atoms); n > 0 {
		B.p.Atoms[n-1].Mixture = &Mixture{ID: id, Weight: weight}
	}
	return B
}

// Build returns the block. The builder can be used again.
func (B *PositionsBuilder) Build() IonicPositions {
	P := B.p
	P.Atoms = append([]Atom(nil), B.p.Atoms...)
	return P
}
