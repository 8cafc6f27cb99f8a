/*
 * param_test.go, part of gocastep.
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
	"os"
	"path/filepath"
	"strings"
	"testing"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/units"
)

func TestBandExtrasLaterWins(Te *testing.T) {
	D, _, err := Parse("NEXTRA_BANDS : 10\nPERC_EXTRA_BANDS : 72\n", nil)
	if err != nil {
		Te.Fatal(err)
	}
	p, ok := D.Electronic.BandExtras.(PercExtraBands)
	if !ok || p != 72 {
		Te.Errorf("expected PercExtraBands(72), got %#v", D.Electronic.BandExtras)
	}
	D, _, err = Parse("perc_extra_bands = 72\nnextra_bands 10\n", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if n, ok := D.Electronic.BandExtras.(NextraBands); !ok || n != 10 {
		Te.Errorf("expected NextraBands(10), got %#v", D.Electronic.BandExtras)
	}
	out := D.Emit()
	if strings.Contains(out, "PERC_EXTRA_BANDS") || !strings.Contains(out, "NEXTRA_BANDS : 10\n") {
		Te.Errorf("only the winning variant must be written:\n%s", out)
	}
}

func TestAlternativesLaterWins(Te *testing.T) {
	in := `CONTINUATION : default
REUSE : old.check
BACKUP_INTERVAL : 3600
NUM_BACKUP_ITER : 5
WRITE_CHECKPOINT : ALL
WRITE_CHECKPOINT : SUCCESS=MINIMAL
`
	D, _, err := Parse(in, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if r, ok := D.General.ContinueReuse.(Reuse); !ok || r.File != "old.check" {
		Te.Errorf("expected Reuse{old.check}, got %#v", D.General.ContinueReuse)
	}
	if b, ok := D.General.Backup.(BackupIter); !ok || b != 5 {
		Te.Errorf("expected BackupIter(5), got %#v", D.General.Backup)
	}
	w, ok := D.General.WriteCheckpoint.(CheckpointOption)
	if !ok || w.Event != OnSuccess || w.Level != CheckpointMinimal {
		Te.Errorf("expected SUCCESS=Minimal, got %#v", D.General.WriteCheckpoint)
	}
	out := D.Emit()
	for _, want := range []string{"REUSE : old.check\n", "NUM_BACKUP_ITER : 5\n", "WRITE_CHECKPOINT : SUCCESS=Minimal\n"} {
		if !strings.Contains(out, want) {
			Te.Errorf("missing %q in\n%s", want, out)
		}
	}
	if strings.Contains(out, "CONTINUATION") || strings.Contains(out, "BACKUP_INTERVAL") {
		Te.Errorf("losing variants written:\n%s", out)
	}
}

func TestEnergyUnit(Te *testing.T) {
	D, _, err := Parse("BS_EIGENVALUE_TOL : 1.0e-5 Ha\n", nil)
	if err != nil {
		Te.Fatal(err)
	}
	q := D.BandStructure.EigenvalueTol
	if q == nil || q.Value != 1.0e-5 || q.Unit == nil || *q.Unit != units.Hartree {
		Te.Fatalf("wrong tolerance %+v", q)
	}
	want := "BS_EIGENVALUE_TOL :   1.000000000000000e-5 ha\n"
	if out := D.Emit(); out != want {
		Te.Errorf("got %q, want %q", out, want)
	}
}

func TestUnknownKeyword(Te *testing.T) {
	D, ev, err := Parse("FROBNICATION : banana\nTASK : SinglePoint\n", &castep.Options{Filename: "x.param"})
	if err != nil {
		Te.Fatal(err)
	}
	if len(ev) != 1 || ev[0].Keyword != "FROBNICATION" || ev[0].Block || ev[0].Pos.Line != 1 {
		Te.Errorf("wrong events %v", ev)
	}
	if D.General.Task == nil || *D.General.Task != TaskSinglePoint {
		Te.Errorf("TASK not set: %v", D.General.Task)
	}
	_, _, err = Parse("FROBNICATION : banana\nTASK : SinglePoint\n", &castep.Options{Strict: true})
	if c, ok := castep.CategoryOf(err); !ok || c != castep.UnknownKeyword {
		Te.Errorf("strict parse should fail with UnknownKeyword, got %v", err)
	}
}

func TestUnknownKeywordNeighbours(Te *testing.T) {
	plain := "TASK : GeometryOptimization\nCUT_OFF_ENERGY : 500\n"
	noisy := "TASK : GeometryOptimization\nWHATEVER 1 2 3\n%BLOCK foo\n1 2\n%ENDBLOCK foo\nCUT_OFF_ENERGY : 500\n"
	a, _, err := Parse(plain, nil)
	if err != nil {
		Te.Fatal(err)
	}
	b, ev, err := Parse(noisy, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(ev) != 2 || !ev[1].Block {
		Te.Errorf("wrong events %v", ev)
	}
	if !a.Equal(b) {
		Te.Errorf("unknown items changed the parse:\n%s\n%s", a, b)
	}
}

func TestCaseAndComments(Te *testing.T) {
	base := "TASK : BandStructure\nXC_FUNCTIONAL : PBE\nCUT_OFF_ENERGY : 1.5 ha\nSPIN_POLARIZED : true\n"
	variants := []string{
		"task : bandstructure\nxc_functional : pbe\ncut_off_energy : 1.5 HA\nspin_polarized : TRUE\n",
		"# comment\n\nTask: BANDSTRUCTURE ! trailing\n\n\n! another\nXc_Functional=Pbe\nCut_Off_Energy 1.5 Ha\n   \nSPIN_POLARIZED t\n",
	}
	want, _, err := Parse(base, nil)
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range variants {
		got, _, err := Parse(v, nil)
		if err != nil {
			Te.Errorf("variant %d: %v", i, err)
			continue
		}
		if !got.Equal(want) {
			Te.Errorf("variant %d parses differently:\n%s\nvs\n%s", i, got, want)
		}
	}
}

func TestErrors(Te *testing.T) {
	cases := []struct {
		in  string
		cat castep.Category
	}{
		{"TASK : Frobnicate\n", castep.UnknownEnumVariant},
		{"CUT_OFF_ENERGY : 3x0\n", castep.MalformedNumber},
		{"CUT_OFF_ENERGY : 300 parsecs\n", castep.UnrecognizedUnit},
		{"CUT_OFF_ENERGY : 300 eV eV\n", castep.ExtraTokens},
		{"PRINT_CLOCK : maybe\n", castep.MalformedLogical},
		{"NBANDS : -3\n", castep.OutOfRange},
		{"IPRINT : 7\n", castep.OutOfRange},
		{"TASK :\n", castep.MissingValue},
		{"STOP now\n", castep.ExtraTokens},
		{"%BLOCK a\n%ENDBLOCK b\n", castep.BlockMismatch},
	}
	for _, c := range cases {
		_, _, err := Parse(c.in, nil)
		cat, ok := castep.CategoryOf(err)
		if !ok || cat != c.cat {
			Te.Errorf("%q: expected %v, got %v", c.in, c.cat, err)
		}
	}
}

func TestStop(Te *testing.T) {
	D, _, err := Parse("STOP\nTASK : SinglePoint\nSTOP\n", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !D.General.Stop {
		Te.Error("STOP not set")
	}
	want := "TASK : SinglePoint\n\nSTOP\n"
	if out := D.Emit(); out != want {
		Te.Errorf("got %q, want %q", out, want)
	}
}

func ptr[T any](v T) *T { return &v }

func fullDocument() *Document {
	return NewBuilder().
		General(NewGeneral().Task(TaskGeometryOptimization).Comment("test run").
			Continuation("").NumBackupIter(4).OptStrategy(OptSpeed).
			WriteCheckpointOn(OnFailure, CheckpointAll).CalculateStress(true).
			ChargeUnit(units.ElementaryCharge).IPrint(2).DataDistribution(DistKpoint).
			Stop(true).Build()).
		BandStructure(NewBandStructure().EigenvalueTolQ(units.With(1e-6, units.Hartree)).
			MaxIter(60).PercExtraBands(20).XCFunctional(HSE06).Build()).
		BasisSet(NewBasisSet().CutOffEnergy(440).GridScale(2).FineGridScale(3).
			FiniteBasisCorr(AutomaticCorrection).FixedNPW(false).Build()).
		ElecMin(NewElecMin().ElecEnergyTol(units.Q[units.Energy](1e-7)).MaxSCFCycles(100).
			DensityMixing(Pulay, 0.5, 2).MixChargeGmax(units.With(1.5, units.InvBohr)).
			MixHistoryLength(20).SmearingWidth(units.Q[units.Energy](0.1)).Build()).
		Electronic(NewElectronic().Spin(5).NextraBands(8).Charge(-1).Build()).
		GeometryOpt(NewGeometryOpt().EnergyTol(units.Q[units.Energy](2e-5)).
			ForceTol(units.Q[units.Force](0.05)).StressTol(units.With(0.1, units.GigaPascal)).
			DispTol(units.With(0.002, units.Bohr)).MaxIter(200).Method(LBFGS).Build()).
		XC(NewXC().XCFunctional(PBE).SpinPolarized(true).ExchangeFraction(0.25).
			RelativisticTreatment(Zora).Build()).
		Population(NewPopulation().Calculate(true).BondCutoff(units.Q[units.Length](3)).
			Write(PopnEnhanced).Build()).
		Units(Units{Energy: ptr(units.Hartree)}).
		Build()
}

func TestRoundTrip(Te *testing.T) {
	D := fullDocument()
	text := D.Emit()
	E, ev, err := Parse(text, nil)
	if err != nil {
		Te.Fatalf("%v\n%s", err, text)
	}
	if len(ev) != 0 {
		Te.Errorf("emitted text has unknown keywords: %v", ev)
	}
	if !D.Equal(E) {
		Te.Errorf("round trip changed the document:\n%s\nvs\n%s", text, E.Emit())
	}
	if !strings.HasSuffix(text, "\n\nSTOP\n") {
		Te.Errorf("STOP must be the last line:\n%s", text)
	}
	//The unit for an explicit default unit is not written.
	if strings.Contains(text, "STRESS_TOL :") && strings.Contains(text, "gpa") {
		Te.Errorf("default unit written:\n%s", text)
	}
	if !strings.Contains(text, "CUT_OFF_ENERGY :  440.000000000000000\n") {
		Te.Errorf("wrong cutoff line in\n%s", text)
	}
}

func TestSectionOrder(Te *testing.T) {
	text := fullDocument().Emit()
	order := []string{"TASK", "\nBS_EIGENVALUE_TOL", "\nCUT_OFF_ENERGY", "\nELEC_ENERGY_TOL", "\nMETALS_METHOD",
		"\nMIXING_SCHEME", "\nSPIN :", "\nGEOM_ENERGY_TOL", "\nXC_FUNCTIONAL", "\nPOPN_CALCULATE", "\nENERGY_UNIT", "\nSTOP"}
	last := -1
	for _, k := range order {
		i := strings.Index(text, k)
		if i < 0 || i < last {
			Te.Errorf("%s out of order in\n%s", k, text)
		}
		last = i
	}
}

func TestMergeOverride(Te *testing.T) {
	a, _, err := Parse("TASK : SinglePoint\nCUT_OFF_ENERGY : 300\n", nil)
	if err != nil {
		Te.Fatal(err)
	}
	b, _, err := Parse("TASK : BandStructure\nNEXTRA_BANDS : 4\nSTOP\n", nil)
	if err != nil {
		Te.Fatal(err)
	}
	m := *a
	m.Merge(b)
	if *m.General.Task != TaskSinglePoint || m.Electronic.BandExtras != NextraBands(4) || !m.General.Stop {
		Te.Errorf("bad merge:\n%s", m.Emit())
	}
	o := *a
	o.Override(b)
	if *o.General.Task != TaskBandStructure || o.BasisSet.CutOffEnergy.Value != 300 {
		Te.Errorf("bad override:\n%s", o.Emit())
	}
	//The copies are not shared.
	*b.General.Task = TaskPhonon
	if *o.General.Task != TaskBandStructure {
		Te.Error("override shares storage with its source")
	}
	if !o.Has("perc_extra_bands") || o.Has("NUM_BACKUP_ITER") {
		Te.Error("Has is wrong")
	}
}

func TestFile(Te *testing.T) {
	dir := Te.TempDir()
	D := fullDocument()
	for _, name := range []string{"seed.param", "seed.param.gz", "seed.param.zst"} {
		path := filepath.Join(dir, name)
		if err := D.WriteFile(path); err != nil {
			Te.Fatal(err)
		}
		E, _, err := ReadFile(path, nil)
		if err != nil {
			Te.Fatal(err)
		}
		if !D.Equal(E) {
			Te.Errorf("%s: file round trip failed", name)
		}
	}
	_, _, err := ReadFile(filepath.Join(dir, "missing.param"), nil)
	if c, ok := castep.CategoryOf(err); !ok || c != castep.Io {
		Te.Errorf("expected an Io error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "seed.param")); err != nil {
		Te.Error(err)
	}
}

func TestKeywordsUnique(Te *testing.T) {
	seen := map[string]bool{}
	for _, k := range Keywords() {
		if seen[k] {
			Te.Errorf("%s listed twice", k)
		}
		seen[k] = true
	}
	if !seen["STOP"] || !seen["NLXC_EXCHANGE_FRACTION"] || !seen["VOLUME_UNIT"] {
		Te.Error("missing keywords")
	}
}

func TestClone(Te *testing.T) {
	D := fullDocument()
	before := D.Emit()
	C := D.Clone()
	if !C.Equal(D) {
		Te.Fatalf("the clone differs:\n%s", C.Emit())
	}
	*C.General.Task = TaskBandStructure
	*C.General.Comment = "changed"
	if C.BasisSet.CutOffEnergy != nil {
		C.BasisSet.CutOffEnergy.Value = 1
		if C.BasisSet.CutOffEnergy.Unit != nil {
			*C.BasisSet.CutOffEnergy.Unit = units.MilliHartree
		}
	}
	if D.Emit() != before {
		Te.Errorf("changing the clone changed the original:\n%s", D.Emit())
	}

	cutoff := units.With(300, units.Hartree)
	B := NewBuilder().BasisSet(NewBasisSet().CutOffEnergyQ(cutoff).Build())
	built := B.Build()
	*built.BasisSet.CutOffEnergy.Unit = units.MilliHartree
	built.BasisSet.CutOffEnergy.Value = 5
	if again := B.Build(); again.BasisSet.CutOffEnergy.Value != 300 || *again.BasisSet.CutOffEnergy.Unit != units.Hartree {
		Te.Errorf("a built document shares its values with the builder:\n%s", again.Emit())
	}

	o := new(Document)
	o.Override(built)
	*o.BasisSet.CutOffEnergy.Unit = units.Hartree
	if *built.BasisSet.CutOffEnergy.Unit != units.MilliHartree {
		Te.Errorf("Override shares units with its source")
	}
}
