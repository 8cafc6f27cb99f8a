/*
 * cell_test.go, part of gocastep.
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
	"math"
	"path/filepath"
	"strings"
	"testing"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/units"
)

const fracPositions = "%BLOCK POSITIONS_FRAC\n C 0.1 0.2 0.3\n V 0.4 0.5 0.6 SPIN= 2.0\n%ENDBLOCK POSITIONS_FRAC\n"

const cartLattice = `%BLOCK LATTICE_CART
Bohr
10.182880152352300 0.000000000000000 0.000000000000000
0.000000000000000 5.969867637928440 0.000000000000000
0.000000000000000 0.000000000000000 4.750940602435010
%ENDBLOCK LATTICE_CART
`

func elem(Te *testing.T, s string) castep.Element {
	e, ok := castep.ParseElement(s)
	if !ok {
		Te.Fatalf("no element %s", s)
	}
	return e
}

func mustParse(Te *testing.T, text string) *Document {
	D, _, err := Parse(text, nil)
	if err != nil {
		Te.Fatal(err)
	}
	return D
}

func wantCategory(Te *testing.T, err error, cat castep.Category) {
	Te.Helper()
	if err == nil {
		Te.Errorf("expected a %s error, got none", cat)
		return
	}
	if c, ok := castep.CategoryOf(err); !ok || c != cat {
		Te.Errorf("expected a %s error, got %v", cat, err)
	}
}

func TestLatticeCart(Te *testing.T) {
	D := mustParse(Te, cartLattice+fracPositions)
	L, ok := D.Lattice.(LatticeCart)
	if !ok {
		Te.Fatalf("expected a LatticeCart, got %T", D.Lattice)
	}
	if L.Unit == nil || *L.Unit != units.Bohr {
		Te.Errorf("expected bohr, got %v", L.Unit)
	}
	want := [3][3]float64{{10.18288015235230, 0, 0}, {0, 5.96986763792844, 0}, {0, 0, 4.75094060243501}}
	for i, v := range [][3]float64{L.A, L.B, L.C} {
		if v != want[i] {
			Te.Errorf("vector %d: got %v want %v", i, v, want[i])
		}
	}
	out := L.Emit()
	if !strings.HasPrefix(out, "%BLOCK LATTICE_CART\nbohr\n  10.182880152352300    0.000000000000000    0.000000000000000\n") {
		Te.Errorf("unexpected emission:\n%s", out)
	}
	D2 := mustParse(Te, D.Emit())
	if !D.Equal(D2) {
		Te.Errorf("round trip changed the document:\n%s\n%s", D.Emit(), D2.Emit())
	}
	vol := Volume(L)
	b := units.BohrRadius
	wvol := 10.18288015235230 * 5.96986763792844 * 4.75094060243501 * b * b * b
	if math.Abs(vol-wvol) > 1e-9 {
		Te.Errorf("volume: got %f want %f", vol, wvol)
	}
}

func TestPositions(Te *testing.T) {
	D := mustParse(Te, cartLattice+fracPositions)
	P := D.Positions
	if len(P.Atoms) != 2 || P.Absolute {
		Te.Fatalf("expected 2 fractional atoms, got %+v", P)
	}
	if !P.SpinPolarised() {
		Te.Errorf("the block should be spin polarised")
	}
	if P.Atoms[0].Spin != nil || P.Atoms[1].Spin == nil || *P.Atoms[1].Spin != 2.0 {
		Te.Errorf("wrong spins: %v %v", P.Atoms[0].Spin, P.Atoms[1].Spin)
	}
	if P.Unit != nil {
		Te.Errorf("the unit should be absent, got %v", *P.Unit)
	}
	if P.Atoms[1].Element != elem(Te, "V") || P.Atoms[1].Coord != [3]float64{0.4, 0.5, 0.6} {
		Te.Errorf("wrong second atom %+v", P.Atoms[1])
	}
	if !strings.Contains(P.Emit(), " SPIN=  2.0000000000\n") {
		Te.Errorf("spin not written as expected:\n%s", P.Emit())
	}
	abs := "%BLOCK POSITIONS_ABS\nbohr\nFe 1 2 3 MIXTURE:(2 0.25) SPIN=-1\n%ENDBLOCK POSITIONS_ABS\n"
	D = mustParse(Te, cartLattice+abs)
	a := D.Positions.Atoms[0]
	if !D.Positions.Absolute || D.Positions.Unit == nil || *D.Positions.Unit != units.Bohr {
		Te.Errorf("expected absolute positions in bohr, got %+v", D.Positions)
	}
	if a.Mixture == nil || a.Mixture.ID != 2 || a.Mixture.Weight != 0.25 || a.Spin == nil || *a.Spin != -1 {
		Te.Errorf("wrong attributes %+v", a)
	}
	if !D.Equal(mustParse(Te, D.Emit())) {
		Te.Errorf("round trip changed the document:\n%s", D.Emit())
	}
	_, _, err := Parse(cartLattice+"%BLOCK POSITIONS_FRAC\nC 0 0 0 CHARGE=1\n%ENDBLOCK POSITIONS_FRAC\n", nil)
	wantCategory(Te, err, castep.ExtraTokens)
	_, _, err = Parse(cartLattice+"%BLOCK POSITIONS_FRAC\nXx 0 0 0\n%ENDBLOCK POSITIONS_FRAC\n", nil)
	wantCategory(Te, err, castep.UnknownElement)
}

func TestFixture(Te *testing.T) {
	D, ev, err := ReadFile(filepath.Join("testdata", "tio2.cell"), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(ev) != 0 {
		Te.Errorf("unexpected events %v", ev)
	}
	kinds := []EntryKind{KindKpoints, KindMPOffset, KindFixAllCell, KindFixCOM, KindSpeciesPot,
		KindCellConstraints, KindPressure, KindHubbardU, KindSymmetryGenerate}
	if len(D.Entries) != len(kinds) {
		Te.Fatalf("expected %d entries, got %d", len(kinds), len(D.Entries))
	}
	for i, k := range kinds {
		if D.Entries[i].Kind() != k {
			Te.Errorf("entry %d: got %s want %s", i, D.Entries[i].Kind(), k)
		}
	}
	e, _ := D.Entry(KindKpoints)
	if g, ok := e.(MPGrid); !ok || g != (MPGrid{4, 4, 6}) {
		Te.Errorf("wrong MP grid %v", e)
	}
	e, _ = D.Entry(KindCellConstraints)
	if c := e.(CellConstraints); c.Lengths != [3]int{1, 1, 3} || c.Angles != [3]int{} {
		Te.Errorf("wrong cell constraints %+v", c)
	}
	e, _ = D.Entry(KindHubbardU)
	h := e.(*HubbardU)
	if len(h.Rows) != 2 || h.Rows[1].Atom == nil || *h.Rows[1].Atom != 2 || h.Rows[1].Orbitals[0] != (OrbitalValue{OrbitalP, 1}) {
		Te.Errorf("wrong hubbard table %+v", h.Rows)
	}
	mix := D.Positions.Atoms[3].Mixture
	if mix == nil || *mix != (Mixture{ID: 1, Weight: 0.5}) {
		Te.Errorf("wrong mixture %v", mix)
	}
	D2 := mustParse(Te, D.Emit())
	if !D.Equal(D2) {
		Te.Errorf("round trip changed the document:\n%s\n%s", D.Emit(), D2.Emit())
	}
	name := filepath.Join(Te.TempDir(), "tio2.cell.gz")
	if err := D.WriteFile(name); err != nil {
		Te.Fatal(err)
	}
	D3, _, err := ReadFile(name, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !D.Equal(D3) {
		Te.Errorf("the compressed copy differs")
	}
}

func TestLaterWins(Te *testing.T) {
	text := cartLattice + fracPositions + "FIX_COM : true\nKPOINT_MP_GRID 2 2 2\n%BLOCK KPOINTS_LIST\n0 0 0 0.5\n0.5 0.5 0.5 0.5\n%ENDBLOCK KPOINTS_LIST\nkpoint_mp_spacing 0.03 1/bohr\n"
	D := mustParse(Te, text)
	if len(D.Entries) != 2 {
		Te.Fatalf("expected 2 entries, got %d", len(D.Entries))
	}
	s, ok := D.Entries[1].(MPSpacing)
	if !ok || s.Value != 0.03 || s.Unit == nil || *s.Unit != units.InvBohr {
		Te.Errorf("expected the spacing to win, got %v", D.Entries[1])
	}
	D = mustParse(Te, text+"FIX_COM false\n")
	if D.Entries[0] != FixCOM(false) {
		Te.Errorf("the second FIX_COM should win, got %v", D.Entries[0])
	}
	D = mustParse(Te, cartLattice+fracPositions+"%BLOCK KPOINT_LIST\n0 0 0 0.25\n0.5 0 0 0.25\n%ENDBLOCK KPOINT_LIST\n")
	l := D.Entries[0].(KpointList)
	if len(l.Points()) != 2 || l.WeightSum() != 0.5 {
		Te.Errorf("wrong k-point list %+v", l)
	}
	if !strings.HasPrefix(l.Emit(), "%BLOCK KPOINT_LIST\n") {
		Te.Errorf("synonym not written with the main name:\n%s", l.Emit())
	}
}

func TestSpeciesTables(Te *testing.T) {
	_, _, err := Parse(cartLattice+fracPositions+"%BLOCK SPECIES_MASS\nC 12.0\nV 50.9\nc 13.0\n%ENDBLOCK SPECIES_MASS\n", nil)
	wantCategory(Te, err, castep.DuplicateElement)
	D := mustParse(Te, cartLattice+fracPositions+"%BLOCK SPECIES_MASS\nme\nC 12.0\n%ENDBLOCK SPECIES_MASS\n%BLOCK SPECIES_LCAO_STATES\nC 2\nV 3\n%ENDBLOCK SPECIES_LCAO_STATES\n")
	e, _ := D.Entry(KindSpeciesMass)
	m := e.(*SpeciesMass)
	if v, ok := m.Get(elem(Te, "C")); !ok || v != 12 || m.Unit == nil || *m.Unit != units.ElectronMass {
		Te.Errorf("wrong species mass %+v", m)
	}
	e, _ = D.Entry(KindSpeciesLCAO)
	if l := e.(*SpeciesLCAO); l.Len() != 2 || l.Elements()[1] != elem(Te, "V") {
		Te.Errorf("wrong LCAO table %+v", l.Rows())
	}
	if !D.Equal(mustParse(Te, D.Emit())) {
		Te.Errorf("round trip changed the document:\n%s", D.Emit())
	}
	var t ElementTable[int]
	if err := t.Add(elem(Te, "O"), 1); err != nil {
		Te.Error(err)
	}
	wantCategory(Te, t.Add(elem(Te, "O"), 2), castep.DuplicateElement)
	t.Set(elem(Te, "O"), 3)
	if v, _ := t.Get(elem(Te, "O")); v != 3 || t.Len() != 1 {
		Te.Errorf("Set did not replace the value")
	}
	if !t.Delete(elem(Te, "O")) || t.Len() != 0 {
		Te.Errorf("Delete did not remove the row")
	}
}

func TestHubbard(Te *testing.T) {
	h := func(body string) string {
		return cartLattice + fracPositions + "%BLOCK HUBBARD_ALPHA\n" + body + "%ENDBLOCK HUBBARD_ALPHA\n"
	}
	D := mustParse(Te, h("V d:2.5 f: 1\nV 1 d: 3.0\n"))
	e, _ := D.Entry(KindHubbardAlpha)
	a := e.(*HubbardAlpha)
	if len(a.Rows) != 2 || len(a.Rows[0].Orbitals) != 2 || a.Rows[0].Orbitals[1] != (OrbitalValue{OrbitalF, 1}) {
		Te.Errorf("wrong table %+v", a.Rows)
	}
	if !D.Equal(mustParse(Te, D.Emit())) {
		Te.Errorf("round trip changed the document:\n%s", D.Emit())
	}
	_, _, err := Parse(h("V g: 1.0\n"), nil)
	wantCategory(Te, err, castep.UnknownOrbital)
	_, _, err = Parse(h("V d: 1.0\nV d: 2.0\n"), nil)
	wantCategory(Te, err, castep.DuplicateElement)
	_, _, err = Parse(h("V\n"), nil)
	wantCategory(Te, err, castep.MissingValue)
	_, _, err = Parse(h("furlong\nV d: 1\n"), nil)
	wantCategory(Te, err, castep.UnrecognizedUnit)
	_, _, err = Parse(h("V 1\n"), nil)
	wantCategory(Te, err, castep.MissingValue)
	u, err := NewHubbardBuilder().Element(elem(Te, "Ni")).Orbital(OrbitalD, 6).Atom(elem(Te, "Ni"), 2).Orbital(OrbitalD, 5).BuildU()
	if err != nil || len(u.Rows) != 2 {
		Te.Errorf("builder failed: %v %+v", err, u)
	}
	_, err = NewHubbardBuilder().Element(elem(Te, "Ni")).Orbital(OrbitalD, 6).Element(elem(Te, "Ni")).Orbital(OrbitalD, 5).BuildU()
	wantCategory(Te, err, castep.DuplicateElement)
}

func TestUnknownAndStrict(Te *testing.T) {
	text := cartLattice + "%BLOCK FROBNICATE\n1 2 3\n%ENDBLOCK FROBNICATE\nBANANA : 3\n" + fracPositions + "FIX_VOL : T\n"
	D, ev, err := Parse(text, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(ev) != 2 || !ev[0].Block || ev[0].Keyword != "FROBNICATE" || ev[1].Block || ev[1].Keyword != "BANANA" {
		Te.Errorf("wrong events %v", ev)
	}
	if len(D.Positions.Atoms) != 2 || len(D.Entries) != 1 || D.Entries[0] != FixVol(true) {
		Te.Errorf("unknown items corrupted the parse: %+v", D)
	}
	_, _, err = Parse(text, &castep.Options{Strict: true})
	wantCategory(Te, err, castep.UnknownKeyword)
}

func TestCaseAndComments(Te *testing.T) {
	plain := cartLattice + fracPositions + "FIX_ALL_IONS : true\n"
	odd := "# header\n" + strings.ToLower(cartLattice) + "\n! comment\n\n" + fracPositions + "fix_all_ions : TRUE # yes\n"
	if !mustParse(Te, plain).Equal(mustParse(Te, odd)) {
		Te.Errorf("case or comments changed the parse")
	}
}

func TestErrors(Te *testing.T) {
	cases := []struct {
		text string
		cat  castep.Category
	}{
		{fracPositions, castep.MissingBlock},
		{cartLattice, castep.MissingBlock},
		{cartLattice + fracPositions + "KPOINT_MP_GRID 0 1 1\n", castep.OutOfRange},
		{cartLattice + fracPositions + "KPOINT_MP_GRID 1 1\n", castep.MissingValue},
		{cartLattice + fracPositions + "KPOINT_MP_SPACING 0.1 1/furlong\n", castep.UnrecognizedUnit},
		{cartLattice + fracPositions + "FIX_COM : maybe\n", castep.MalformedLogical},
		{cartLattice + fracPositions + "%BLOCK SYMMETRY_OPS\n1 0 0\n0 1 0\n0 0 1\n%ENDBLOCK SYMMETRY_OPS\n", castep.WrongRowLength},
		{"%BLOCK LATTICE_ABC\n1 1 1\n90 90 180\n%ENDBLOCK LATTICE_ABC\n" + fracPositions, castep.OutOfRange},
		{"%BLOCK LATTICE_ABC\n10 10 10\n10 10 170\n%ENDBLOCK LATTICE_ABC\n" + fracPositions, castep.OutOfRange},
		{"%BLOCK LATTICE_ABC\n10 10 10\n30 30 90\n%ENDBLOCK LATTICE_ABC\n" + fracPositions, castep.OutOfRange},
		{"%BLOCK LATTICE_ABC\n10 10 10\n60 60 120\n%ENDBLOCK LATTICE_ABC\n" + fracPositions, castep.OutOfRange},
		{"%BLOCK LATTICE_ABC\n10 0 10\n90 90 90\n%ENDBLOCK LATTICE_ABC\n" + fracPositions, castep.OutOfRange},
		{"%BLOCK LATTICE_CART\n1 0 0\n0 1 0\n1 1 0\n%ENDBLOCK LATTICE_CART\n" + fracPositions, castep.OutOfRange},
		{"%BLOCK LATTICE_CART\nfurlong\n1 0 0\n0 1 0\n0 0 1\n%ENDBLOCK LATTICE_CART\n" + fracPositions, castep.UnrecognizedUnit},
		{"%BLOCK LATTICE_CART\n1 0 0\n0 1 0\n%ENDBLOCK LATTICE_CART\n" + fracPositions, castep.WrongRowLength},
		{"%BLOCK LATTICE_CART\n1 0 0\n0 1 0\n0 0 1\n%ENDBLOCK LATTICE_ABC\n" + fracPositions, castep.BlockMismatch},
	}
	for i, c := range cases {
		_, _, err := Parse(c.text, nil)
		if err == nil {
			Te.Errorf("case %d: expected an error", i)
			continue
		}
		wantCategory(Te, err, c.cat)
	}
}

func TestLatticeGeometry(Te *testing.T) {
	cubic := LatticeCart{A: [3]float64{4, 0, 0}, B: [3]float64{0, 4, 0}, C: [3]float64{0, 0, 4}}
	if g, err := MPGridFromSpacing(cubic, units.Q[units.InvLength](0.05)); err != nil || g != (MPGrid{5, 5, 5}) {
		Te.Errorf("wrong grid %v (%v)", g, err)
	}
	if g, err := MPGridFromSpacing(cubic, units.Q[units.InvLength](1)); err != nil || g != (MPGrid{1, 1, 1}) {
		Te.Errorf("wrong coarse grid %v (%v)", g, err)
	}
	R, err := Reciprocal(cubic)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(R.At(0, 0)-math.Pi/2) > 1e-12 {
		Te.Errorf("wrong reciprocal vector %v", R.Vec(0))
	}
	flat := LatticeABC{A: 10, B: 10, C: 10, Alpha: 10, Beta: 10, Gamma: 170}
	if _, err := MPGridFromSpacing(flat, units.Q[units.InvLength](0.05)); err == nil {
		Te.Errorf("expected an error for a cell with no volume")
	} else {
		wantCategory(Te, err, castep.OutOfRange)
	}
	if _, err := Reciprocal(flat); err == nil {
		Te.Errorf("expected an error for the reciprocal of a flat cell")
	}
	hex := LatticeABC{A: 3, B: 3, C: 5, Alpha: 90, Beta: 90, Gamma: 120}
	if v, w := Volume(hex), 45*math.Sqrt(3)/2; math.Abs(v-w) > 1e-9 {
		Te.Errorf("hexagonal volume: got %f want %f", v, w)
	}
	back := hex.Cart().ABC()
	if math.Abs(back.C-5) > 1e-12 || math.Abs(float64(back.Gamma)-120) > 1e-9 {
		Te.Errorf("abc to cart and back gave %+v", back)
	}
	D := mustParse(Te, hex.Emit()+fracPositions)
	if D.Lattice.(LatticeABC).Gamma != 120 {
		Te.Errorf("wrong parsed gamma %v", D.Lattice)
	}
}

func TestBuilderRoundTrip(Te *testing.T) {
	ti, o := elem(Te, "Ti"), elem(Te, "O")
	pos := NewPositionsBuilder(true).Unit(units.Bohr).
		Atom(ti, 0, 0, 0).Spin(1).
		Atom(o, 1.5, 1.5, 0).Mixture(1, 0.75).
		Atom(o, -1.5, -1.5, 0).
		Build()
	elements := pos.Elements()
	hub, err := NewHubbardBuilder().Unit(units.Hartree).Element(ti).Orbital(OrbitalD, 0.1).BuildU()
	if err != nil {
		Te.Fatal(err)
	}
	D, err := NewBuilder().
		Lattice(LatticeABC{Unit: &[]units.Length{units.Bohr}[0], A: 8.6, B: 8.6, C: 5.5, Alpha: 90, Beta: 90, Gamma: 90}).
		Positions(pos).
		Entry(MPGrid{2, 2, 3}).
		Entry(NewBSKpointList(Kpoint{[3]float64{0, 0, 0}, 1})).
		Entry(BSKpointPath{{0, 0, 0}, {0.5, 0, 0}, {0.5, 0.5, 0}}).
		Entry(MPOffset{0.25, 0.25, 0.25}).
		Entry(FixAllCell(true)).
		Entry(FixAllIons(false)).
		Entry(FixVol(true)).
		Entry(NewConstraintsBuilder().Fix(ti, 1).Build()).
		Entry(DefaultCellConstraints()).
		Entry(EField{Field: [3]float64{0, 0, 0.1}}).
		Entry(Pressure{XX: 1, YY: 2, ZZ: 3, XY: 0.5}).
		Entry(NewSpeciesMass(elements)).
		Entry(NewSpeciesPot(elements)).
		Entry(NewSpeciesLCAO(elements)).
		Entry(hub).
		Entry(SymmetryOps{{Rotation: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}}).
		Entry(QuantizationAxis{0, 0, 1}).
		EntryIfAbsent(MPGrid{9, 9, 9}).
		Build()
	if err != nil {
		Te.Fatal(err)
	}
	if len(D.Entries) != 16 {
		Te.Errorf("expected 16 entries, got %d", len(D.Entries))
	}
	if e, _ := D.Entry(KindKpoints); e != (MPGrid{2, 2, 3}) {
		Te.Errorf("EntryIfAbsent replaced an entry: %v", e)
	}
	if e, _ := D.Entry(KindSpeciesPot); !strings.Contains(e.Emit(), "      Ti  Ti_00.usp\n") {
		Te.Errorf("wrong species pot:\n%s", e.Emit())
	}
	D2, ev, err := Parse(D.Emit(), &castep.Options{Strict: true})
	if err != nil {
		Te.Fatalf("%v\n%s", err, D.Emit())
	}
	if len(ev) != 0 || !D.Equal(D2) {
		Te.Errorf("round trip changed the document:\n%s\n%s", D.Emit(), D2.Emit())
	}
	if !D.MoveEntry(KindQuantizationAxis, 0) || D.Entries[0].Kind() != KindQuantizationAxis {
		Te.Errorf("MoveEntry did not move the entry")
	}
	if !D.RemoveEntry(KindFixVol) || D.RemoveEntry(KindFixVol) || len(D.Entries) != 15 {
		Te.Errorf("RemoveEntry failed")
	}
	if _, err := NewBuilder().Positions(pos).Build(); err == nil {
		Te.Errorf("a document without lattice should not build")
	}
}

func TestSpeciesPot(Te *testing.T) {
	cases := []struct {
		row  string
		want string
	}{
		{"C  C_00.usp", "C_00.usp"},
		{"C 2|1.2|12|14|16|20:21(qc=6)", "2|1.2|12|14|16|20:21(qc=6)"},
		{"C /opt/my pots/C_00.usp", "/opt/my pots/C_00.usp"},
		{"C 2|1.4|10|12|13|20:21(qc=5)[] ", "2|1.4|10|12|13|20:21(qc=5)[]"},
	}
	for _, c := range cases {
		D := mustParse(Te, cartLattice+fracPositions+"%BLOCK SPECIES_POT\n"+c.row+"\n%ENDBLOCK SPECIES_POT\n")
		e, _ := D.Entry(KindSpeciesPot)
		pot, ok := e.(*SpeciesPot).Get(elem(Te, "C"))
		if !ok || pot != c.want {
			Te.Errorf("%q: got %q want %q", c.row, pot, c.want)
			continue
		}
		again := mustParse(Te, D.Emit())
		e, _ = again.Entry(KindSpeciesPot)
		if pot, _ = e.(*SpeciesPot).Get(elem(Te, "C")); pot != c.want {
			Te.Errorf("%q changed to %q after a round trip", c.want, pot)
		}
	}
	_, _, err := Parse(cartLattice+fracPositions+"%BLOCK SPECIES_POT\nC\n%ENDBLOCK SPECIES_POT\n", nil)
	wantCategory(Te, err, castep.WrongRowLength)
	_, _, err = Parse(cartLattice+fracPositions+"%BLOCK SPECIES_POT\nC a.usp\nC b.usp\n%ENDBLOCK SPECIES_POT\n", nil)
	wantCategory(Te, err, castep.DuplicateElement)
}

func TestFracPositionsUnit(Te *testing.T) {
	cases := []struct {
		unit string
		want *units.Length
	}{
		{"bohr\n", &[]units.Length{units.Bohr}[0]},
		{"ang\n", &[]units.Length{units.Angstrom}[0]},
		{"", nil},
	}
	for _, c := range cases {
		text := cartLattice + "%BLOCK POSITIONS_FRAC\n" + c.unit + " C 0.1 0.2 0.3\n%ENDBLOCK POSITIONS_FRAC\n"
		D := mustParse(Te, text)
		u := D.Positions.Unit
		if (u == nil) != (c.want == nil) || (u != nil && *u != *c.want) {
			Te.Errorf("%q: wrong unit %v", c.unit, u)
		}
		if !D.Equal(mustParse(Te, D.Emit())) {
			Te.Errorf("%q: round trip changed the document:\n%s", c.unit, D.Emit())
		}
	}
	D := mustParse(Te, cartLattice+"%BLOCK POSITIONS_FRAC\nbohr\n C 0.1 0.2 0.3\n%ENDBLOCK POSITIONS_FRAC\n")
	if !strings.Contains(D.Emit(), "%BLOCK POSITIONS_FRAC\nbohr\n") {
		Te.Errorf("unit line lost:\n%s", D.Emit())
	}
	if D.Positions.Atoms[0].Coord != [3]float64{0.1, 0.2, 0.3} {
		Te.Errorf("the unit changed fractional coordinates: %v", D.Positions.Atoms[0].Coord)
	}
}

func TestHubbardBuilderRoundTrip(Te *testing.T) {
	fe := elem(Te, "Fe")
	cases := []struct {
		name string
		b    *HubbardBuilder
		ok   bool
	}{
		{"no orbitals", NewHubbardBuilder().Element(fe), false},
		{"atom without orbitals", NewHubbardBuilder().Element(fe).Orbital(OrbitalD, 4).Atom(fe, 1), false},
		{"one row", NewHubbardBuilder().Element(fe).Orbital(OrbitalD, 4), true},
		{"atom and unit", NewHubbardBuilder().Unit(units.Hartree).Atom(fe, 2).Orbital(OrbitalD, 0.1).Orbital(OrbitalF, 0.2), true},
	}
	for _, c := range cases {
		u, err := c.b.BuildU()
		if !c.ok {
			wantCategory(Te, err, castep.MissingValue)
			continue
		}
		if err != nil {
			Te.Errorf("%s: %v", c.name, err)
			continue
		}
		D := mustParse(Te, cartLattice+fracPositions+u.Emit())
		e, ok := D.Entry(KindHubbardU)
		if !ok || e.Emit() != u.Emit() {
			Te.Errorf("%s: round trip gave\n%v", c.name, D.Emit())
		}
	}
	var t HubbardTable
	err := t.Add(HubbardRow{Element: fe})
	wantCategory(Te, err, castep.MissingValue)
}

func TestClone(Te *testing.T) {
	text := cartLattice + fracPositions +
		"%BLOCK SPECIES_POT\nC C_00.usp\n%ENDBLOCK SPECIES_POT\n" +
		"%BLOCK HUBBARD_U\nV 1 d: 2.0\n%ENDBLOCK HUBBARD_U\n" +
		"%BLOCK IONIC_CONSTRAINTS\n1 C 1 1 0 0\n%ENDBLOCK IONIC_CONSTRAINTS\n" +
		"KPOINT_MP_SPACING 0.05 1/bohr\n"
	D := mustParse(Te, text)
	before := D.Emit()
	C := D.Clone()
	if !C.Equal(D) {
		Te.Fatalf("the clone differs:\n%s", C.Emit())
	}
	*C.Lattice.(LatticeCart).Unit = units.Angstrom
	*C.Positions.Atoms[1].Spin = -1
	C.Positions.Atoms[0].Coord[0] = 0.9
	e, _ := C.Entry(KindSpeciesPot)
	e.(*SpeciesPot).Set(elem(Te, "C"), "other.usp")
	e, _ = C.Entry(KindHubbardU)
	h := e.(*HubbardU)
	*h.Rows[0].Atom = 7
	h.Rows[0].Orbitals[0].Value = 9
	e, _ = C.Entry(KindIonicConstraints)
	e.(IonicConstraints)[0].Coef[0] = 5
	e, _ = C.Entry(KindKpoints)
	*e.(MPSpacing).Unit = units.InvAngstrom
	if D.Emit() != before {
		Te.Errorf("changing the clone changed the original:\n%s", D.Emit())
	}
	B := NewBuilder().Lattice(D.Lattice).Positions(D.Positions).Entry(CloneEntry(e))
	built, err := B.Build()
	if err != nil {
		Te.Fatal(err)
	}
	*built.Positions.Atoms[1].Spin = 3
	if again, _ := B.Build(); *again.Positions.Atoms[1].Spin != 2 {
		Te.Errorf("a built document shares its atoms with the builder")
	}
}
