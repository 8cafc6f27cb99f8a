/*
 * grammar_test.go, part of gocastep.
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

package grammar

import (
	"testing"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/units"
)

const sample = `# a comment line
TASK : SinglePoint
  cut_off_energy 300 eV   ! trailing comment
SPIN=2
STOP

%block Lattice_Cart
  bohr
  1.0 0.0 0.0
  0.0 1.0 0.0
  0.0 0.0 1.0
%EndBlock LATTICE_CART
`

func TestParseString(Te *testing.T) {
	F, err := ParseString("test.param", sample)
	if err != nil {
		Te.Fatal(err)
	}
	if len(F.Items) != 5 {
		Te.Fatalf("%d items, want 5", len(F.Items))
	}
	names := []string{"TASK", "CUT_OFF_ENERGY", "SPIN", "STOP"}
	for i, n := range names {
		f := F.Items[i].Field
		if f == nil || f.Name() != n {
			Te.Errorf("item %d is not the field %s", i, n)
		}
	}
	cut := F.Items[1].Field
	if p := cut.Pos; p.Line != 3 || p.Column != 3 || p.Filename != "test.param" {
		Te.Errorf("CUT_OFF_ENERGY at %v", p)
	}
	v, u, err := cut.RealUnit()
	if err != nil || v != 300 || u == nil || u.Text != "eV" {
		Te.Errorf("RealUnit gave %v %v %v", v, u, err)
	}
	if s, err := F.Items[2].Field.Int(); err != nil || s != 2 {
		Te.Errorf("SPIN=2 gave %v %v", s, err)
	}
	if err := F.Items[3].Field.Flag(); err != nil {
		Te.Error(err)
	}
	b := F.Items[4].Block
	if b == nil || b.Name() != "LATTICE_CART" || len(b.Rows) != 4 {
		Te.Fatalf("bad block %+v", b)
	}
	if b.Pos.Line != 7 || b.End.Line != 12 {
		Te.Errorf("block from line %d to %d", b.Pos.Line, b.End.Line)
	}
	x, err := b.Rows[1].Reals(0, 3)
	if err != nil || x[0] != 1 {
		Te.Errorf("row gave %v %v", x, err)
	}
	if err := b.Rows[0].Exactly(1); err != nil {
		Te.Error(err)
	}
	if _, err := b.Rows[1].Reals(1, 3); err == nil {
		Te.Error("no error reading past the end of a row")
	}
	if l, err := Unit(b.Rows[0].Tokens[0], units.ParseLength); err != nil || l != units.Bohr {
		Te.Errorf("unit gave %v %v", l, err)
	}
}

func TestCRLF(Te *testing.T) {
	F, err := ParseString("", "TASK : SinglePoint\r\nSTOP\r\n")
	if err != nil {
		Te.Fatal(err)
	}
	if len(F.Items) != 2 || F.Items[0].Field.Values[0].Text != "SinglePoint" {
		Te.Errorf("bad items %+v", F.Items)
	}
}

func TestSyntaxErrors(Te *testing.T) {
	cases := []struct {
		text string
		cat  castep.Category
	}{
		{"%BLOCK A\n1 2 3\n", castep.UnterminatedBlock},
		{"%BLOCK A\n%BLOCK B\n%ENDBLOCK B\n%ENDBLOCK A\n", castep.NestedBlock},
		{"%BLOCK A\n%ENDBLOCK B\n", castep.BlockMismatch},
		{"%ENDBLOCK A\n", castep.BlockMismatch},
		{"%BLOCK\n%ENDBLOCK\n", castep.MissingValue},
		{"%BLOCK A B\n%ENDBLOCK A\n", castep.ExtraTokens},
		{"TASK :\n", castep.MissingValue},
		{": 3\n", castep.InvalidToken},
		{"TASK %BLOCK\n", castep.InvalidToken},
	}
	for _, c := range cases {
		_, err := ParseString("bad", c.text)
		if err == nil {
			Te.Errorf("no error for %q", c.text)
			continue
		}
		if cat, ok := castep.CategoryOf(err); !ok || cat != c.cat {
			Te.Errorf("%q: got %v, want %v", c.text, err, c.cat)
		}
	}
}

func word(s string) Token { return Token{Kind: Word, Text: s} }

func TestValues(Te *testing.T) {
	for s, want := range map[string]float64{"1": 1, "-2.5": -2.5, ".5": 0.5, "3.": 3, "1e-5": 1e-5, "+2.0E3": 2000, "1.0d0": 1, "2.5D-3": 2.5e-3} {
		v, err := Real(word(s))
		if err != nil || v != want {
			Te.Errorf("Real(%q) = %v, %v", s, v, err)
		}
	}
	for _, s := range []string{"1.0x0", "abc", "1e", "1d", "--1", "0x10"} {
		if _, err := Real(word(s)); err == nil {
			Te.Errorf("Real(%q) did not fail", s)
		}
	}
	if _, err := PosInt(word("-3")); err == nil {
		Te.Error("negative PosInt accepted")
	} else if cat, _ := castep.CategoryOf(err); cat != castep.OutOfRange {
		Te.Errorf("negative PosInt gave %v", err)
	}
	if _, err := Int(word("2.0")); err == nil {
		Te.Error("2.0 accepted as an integer")
	}
	for s, want := range map[string]bool{"T": true, "true": true, "FALSE": false, "f": false} {
		b, err := Bool(word(s))
		if err != nil || b != want {
			Te.Errorf("Bool(%q) = %v, %v", s, b, err)
		}
	}
	if _, err := Bool(word("yes")); err == nil {
		Te.Error("yes accepted as a logical")
	}
	names := []string{"Pulay", "Linear"}
	if i, err := Enum("scheme", word("LINEAR"), names, nil); err != nil || i != 1 {
		Te.Errorf("Enum gave %v %v", i, err)
	}
	if i, err := Enum("scheme", word("lin"), names, map[string]int{"lin": 1}); err != nil || i != 1 {
		Te.Errorf("Enum alias gave %v %v", i, err)
	}
	if _, err := Enum("scheme", word("Broyden"), names, nil); err == nil {
		Te.Error("unknown enum accepted")
	}
	if e, err := Element(word("fe")); err != nil || e.Symbol() != "Fe" {
		Te.Errorf("Element gave %v %v", e, err)
	}
	if _, err := Unit(word("furlong"), units.ParseLength); err == nil {
		Te.Error("unknown unit accepted")
	}
}

func TestFieldShapes(Te *testing.T) {
	F, err := ParseString("", "A 1 2 3\nB\nC x y\n")
	if err != nil {
		Te.Fatal(err)
	}
	a, b, c := F.Items[0].Field, F.Items[1].Field, F.Items[2].Field
	if v, err := a.Reals(3); err != nil || v[2] != 3 {
		Te.Errorf("Reals gave %v %v", v, err)
	}
	if _, err := a.Reals(2); err == nil {
		Te.Error("extra value accepted")
	} else if cat, _ := castep.CategoryOf(err); cat != castep.ExtraTokens {
		Te.Errorf("extra value gave %v", err)
	}
	if _, err := b.Real(); err == nil {
		Te.Error("missing value accepted")
	} else if cat, _ := castep.CategoryOf(err); cat != castep.MissingValue {
		Te.Errorf("missing value gave %v", err)
	}
	if s, err := c.Text(); err != nil || s != "x y" {
		Te.Errorf("Text gave %q %v", s, err)
	}
	if err := a.Flag(); err == nil {
		Te.Error("a field with values accepted as a flag")
	}
}

func TestRowRest(Te *testing.T) {
	text := "%BLOCK SPECIES_POT\nC 2|1.2|12|14|16|20:21(qc=6)\nSi  my pots/Si  00.usp\nO\n%ENDBLOCK SPECIES_POT\n"
	F, err := ParseString("pot.cell", text)
	if err != nil {
		Te.Fatal(err)
	}
	rows := F.Items[0].Block.Rows
	for i, want := range []string{"2|1.2|12|14|16|20:21(qc=6)", "my pots/Si  00.usp", ""} {
		if got := rows[i].Rest(1); got != want {
			Te.Errorf("row %d: got %q want %q", i, got, want)
		}
	}
	if got := rows[0].Rest(0); got != "C 2|1.2|12|14|16|20:21(qc=6)" {
		Te.Errorf("whole row: got %q", got)
	}
}
