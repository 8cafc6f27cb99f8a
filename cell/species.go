/*
 * species.go, part of gocastep.
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

	"golang.org/x/exp/slices"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/grammar"
	"github.com/rmera/gocastep/units"
)

// ElementRow is one row of an ElementTable.
type ElementRow[T any] struct {
	Element castep.Element
	Value   T
}

// ElementTable is an ordered map from element to T. Each element can
// appear only once, and rows keep their insertion order.
type ElementTable[T any] struct {
	rows []ElementRow[T]
}

func (E *ElementTable[T]) index(e castep.Element) int {
	return slices.IndexFunc(E.rows, func(r ElementRow[T]) bool { return r.Element == e })
}

// Add appends a row. It fails with DuplicateElement if e is already in the table.
func (E *ElementTable[T]) Add(e castep.Element, v T) error {
	return E.add(e, v, castep.Position{})
}

func (E *ElementTable[T]) add(e castep.Element, v T, pos castep.Position) error {
	if E.index(e) >= 0 {
		return castep.NewError(castep.DuplicateElement, pos, "element %s appears twice", e)
	}
	E.rows = append(E.rows, ElementRow[T]{Element: e, Value: v})
	return nil
}

// Set replaces the value for e, or appends it if e is not in the table.
func (E *ElementTable[T]) Set(e castep.Element, v T) {
	if i := E.index(e); i >= 0 {
		E.rows[i].Value = v
		return
	}
	E.rows = append(E.rows, ElementRow[T]{Element: e, Value: v})
}

// Get returns the value for e, and whether it was present.
func (E *ElementTable[T]) Get(e castep.Element) (T, bool) {
	if i := E.index(e); i >= 0 {
		return E.rows[i].Value, true
	}
	var zero T
	return zero, false
}

// Delete removes e from the table, and reports whether it was there.
func (E *ElementTable[T]) Delete(e castep.Element) bool {
	i := E.index(e)
	if i < 0 {
		return false
	}
	E.rows = slices.Delete(E.rows, i, i+1)
	return true
}

func (E *ElementTable[T]) Len() int { return len(E.rows) }

// Rows returns a copy of the rows, in order.
func (E *ElementTable[T]) Rows() []ElementRow[T] {
	return slices.Clone(E.rows)
}

// Elements returns the elements in the table, in order.
func (E *ElementTable[T]) Elements() []castep.Element {
	ret := make([]castep.Element, len(E.rows))
	for i, r := range E.rows {
		ret[i] = r.Element
	}
	return ret
}

// SpeciesMass is a SPECIES_MASS block. A nil Unit means amu.
type SpeciesMass struct {
	Unit *units.Mass
	ElementTable[float64]
}

// SpeciesPot is a SPECIES_POT block, the pseudopotential of each element:
// a file name (which may contain spaces) or an on-the-fly generation string.
type SpeciesPot struct {
	ElementTable[string]
}

// SpeciesLCAO is a SPECIES_LCAO_STATES block.
type SpeciesLCAO struct {
	ElementTable[int]
}

func (*SpeciesMass) Kind() EntryKind { return KindSpeciesMass }
func (*SpeciesPot) Kind() EntryKind  { return KindSpeciesPot }
func (*SpeciesLCAO) Kind() EntryKind { return KindSpeciesLCAO }

func (S *SpeciesMass) Emit() string {
	lines := []string{unitLine(S.Unit)}
	for _, r := range S.rows {
		lines = append(lines, castep.Right(r.Element.Symbol(), 8)+castep.Fixed(r.Value, 17, 10))
	}
	return blockText("SPECIES_MASS", lines...)
}

func (S *SpeciesPot) Emit() string {
	lines := make([]string, 0, len(S.rows))
	for _, r := range S.rows {
		lines = append(lines, castep.Right(r.Element.Symbol(), 8)+"  "+r.Value)
	}
	return blockText("SPECIES_POT", lines...)
}

func (S *SpeciesLCAO) Emit() string {
	lines := make([]string, 0, len(S.rows))
	for _, r := range S.rows {
		lines = append(lines, castep.Right(r.Element.Symbol(), 8)+castep.Right(strconv.Itoa(r.Value), 9))
	}
	return blockText("SPECIES_LCAO_STATES", lines...)
}

// NewSpeciesMass returns the default masses of the distinct elements in list.
func NewSpeciesMass(list []castep.Element) *SpeciesMass {
	S := new(SpeciesMass)
	for _, e := range castep.DistinctElements(list) {
		S.Set(e, e.Mass())
	}
	return S
}

// NewSpeciesPot returns the default pseudopotential files of the distinct
// elements in list.
func NewSpeciesPot(list []castep.Element) *SpeciesPot {
	S := new(SpeciesPot)
	for _, e := range castep.DistinctElements(list) {
		S.Set(e, e.Entry().Potential)
	}
	return S
}

// NewSpeciesLCAO returns the default number of LCAO states of the distinct
// elements in list.
func NewSpeciesLCAO(list []castep.Element) *SpeciesLCAO {
	S := new(SpeciesLCAO)
	for _, e := range castep.DistinctElements(list) {
		S.Set(e, e.Entry().LCAO)
	}
	return S
}

// speciesRows reads "El value" rows into t, with read parsing the value token.
func speciesRows[T any](rows []grammar.Row, t *ElementTable[T], read func(grammar.Token) (T, error)) error {
	for _, r := range rows {
		if err := r.Exactly(2); err != nil {
			return err
		}
		e, err := grammar.Element(r.Tokens[0])
		if err != nil {
			return err
		}
		v, err := read(r.Tokens[1])
		if err != nil {
			return err
		}
		if err := t.add(e, v, r.Pos); err != nil {
			return err
		}
	}
	return nil
}

func parseSpeciesMass(b *grammar.Block) (Entry, error) {
	S := new(SpeciesMass)
	u, rows, err := unitRow(b.Rows, units.ParseMass)
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseSpeciesMass")
	}
	S.Unit = u
	if err := speciesRows(rows, &S.ElementTable, grammar.Real); err != nil {
		return nil, castep.ErrDecorate(err, "parseSpeciesMass")
	}
	return S, nil
}

// parseSpeciesPot takes everything after the element as the
// pseudopotential, so file names with spaces and on-the-fly
// generation strings are kept whole.
func parseSpeciesPot(b *grammar.Block) (Entry, error) {
	S := new(SpeciesPot)
	for _, r := range b.Rows {
		if r.Len() < 2 {
			err := castep.NewError(castep.WrongRowLength, r.Pos, "row has %d values, at least 2 expected", r.Len())
			return nil, castep.ErrDecorate(err, "parseSpeciesPot")
		}
		e, err := grammar.Element(r.Tokens[0])
		if err != nil {
			return nil, castep.ErrDecorate(err, "parseSpeciesPot")
		}
		if err := S.add(e, r.Rest(1), r.Pos); err != nil {
			return nil, castep.ErrDecorate(err, "parseSpeciesPot")
		}
	}
	return S, nil
}

func parseSpeciesLCAO(b *grammar.Block) (Entry, error) {
	S := new(SpeciesLCAO)
	count := func(t grammar.Token) (int, error) {
		n, err := grammar.PosInt(t)
		return int(n), err
	}
	if err := speciesRows(b.Rows, &S.ElementTable, count); err != nil {
		return nil, castep.ErrDecorate(err, "parseSpeciesLCAO")
	}
	return S, nil
}
