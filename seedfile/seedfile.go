/*
 * seedfile.go, part of gocastep.
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

package seedfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/cell"
	"github.com/rmera/gocastep/param"
	"github.com/rmera/gocastep/units"
)

// Task is the kind of calculation the seed files are written for.
type Task int

const (
	SinglePoint Task = iota
	BandStructure
	GeomOpt
)

var taskNames = []string{"singlepoint", "bandstructure", "geomopt"}

func (T Task) String() string {
	if T < 0 || int(T) >= len(taskNames) {
		return fmt.Sprintf("Task(%d)", int(T))
	}
	return taskNames[T]
}

// ParseTask returns the task named s. The CASTEP names are also
// accepted, and case is ignored.
func ParseTask(s string) (Task, error) {
	for i, n := range taskNames {
		if strings.EqualFold(s, n) {
			return Task(i), nil
		}
	}
	if t, ok := param.ParseTask(s); ok {
		switch t {
		case param.TaskSinglePoint:
			return SinglePoint, nil
		case param.TaskBandStructure:
			return BandStructure, nil
		case param.TaskGeometryOptimization:
			return GeomOpt, nil
		}
	}
	return SinglePoint, castep.NewError(castep.UnknownEnumVariant, castep.Position{}, "unsupported task %q", s)
}

func (T Task) castep() param.Task {
	switch T {
	case BandStructure:
		return param.TaskBandStructure
	case GeomOpt:
		return param.TaskGeometryOptimization
	}
	return param.TaskSinglePoint
}

// KpointQuality is a preset for the Monkhorst-Pack spacing.
type KpointQuality int

const (
	KpointsCoarse KpointQuality = iota
	KpointsMedium
	KpointsFine
)

var kpointQualityNames = []string{"coarse", "medium", "fine"}

func (K KpointQuality) String() string {
	if K < 0 || int(K) >= len(kpointQualityNames) {
		return fmt.Sprintf("KpointQuality(%d)", int(K))
	}
	return kpointQualityNames[K]
}

// Spacing returns the k-point spacing of the preset, in 1/ang.
func (K KpointQuality) Spacing() float64 {
	switch K {
	case KpointsMedium:
		return 0.05
	case KpointsFine:
		return 0.04
	}
	return 0.07
}

func ParseKpointQuality(s string) (KpointQuality, error) {
	for i, n := range kpointQualityNames {
		if strings.EqualFold(s, n) {
			return KpointQuality(i), nil
		}
	}
	return KpointsCoarse, castep.NewError(castep.UnknownEnumVariant, castep.Position{}, "unknown k-point quality %q", s)
}

// Spacing of the band structure path, in 1/ang.
const pathSpacing = 0.07

// Default percentage of extra bands.
const percExtraBands = 72

const comment = "CASTEP calculation from Materials Studio"

//Note that the defaults are not considered part of the API, so they can change.
type Handle struct {
	name      string
	potsdir   string
	task      Task
	precision Precision
	edft      bool
	kquality  KpointQuality
	compress  string
}

func NewHandle() *Handle {
	run := new(Handle)
	run.SetDefaults()
	return run
}

/*SetDefaults sets a geometry optimization with density mixing, fine
cutoff energies and coarse k-point sampling. The pseudopotentials are
looked for in $CASTEP_PSPOT_DIR, or in the current directory if that
variable is not defined.*/
func (H *Handle) SetDefaults() {
	H.name = "castep"
	H.potsdir = os.Getenv("CASTEP_PSPOT_DIR")
	if H.potsdir == "" {
		H.potsdir = "."
	}
	H.task = GeomOpt
	H.precision = Fine
	H.edft = false
	H.kquality = KpointsCoarse
	H.compress = ""
}

// SetName sets the seed name used by BuildInput when none is given.
func (H *Handle) SetName(name string) {
	H.name = name
}

func (H *Handle) SetPotentialsDir(dir string) {
	H.potsdir = dir
}

func (H *Handle) SetTask(t Task) {
	H.task = t
}

func (H *Handle) SetPrecision(p Precision) {
	H.precision = p
}

// SetEDFT selects ensemble DFT instead of density mixing.
func (H *Handle) SetEDFT(b bool) {
	H.edft = b
}

func (H *Handle) SetKpointQuality(k KpointQuality) {
	H.kquality = k
}

// SetCompression sets an extension, ".gz" or ".zst", added to the
// names of the written files. An empty string writes plain text.
func (H *Handle) SetCompression(ext string) {
	H.compress = ext
}

func (H *Handle) Task() Task { return H.task }

// BuildCell returns a deep copy of c with the entries needed for the task.
// Entries already present in c are kept as they are. c is not modified.
func (H *Handle) BuildCell(c *cell.Document) *cell.Document {
	D := c.Clone()
	elements := c.Elements()
	D.EnsureEntry(cell.MPSpacing(units.Q[units.InvLength](H.kquality.Spacing())))
	if H.task == BandStructure {
		D.EnsureEntry(cell.BSKpointPathSpacing(units.Q[units.InvLength](pathSpacing)))
	}
	D.EnsureEntry(cell.FixAllCell(true))
	D.EnsureEntry(cell.FixCOM(false))
	D.EnsureEntry(cell.IonicConstraints{})
	D.EnsureEntry(cell.EField{})
	D.EnsureEntry(cell.Pressure{})
	D.EnsureEntry(cell.NewSpeciesMass(elements))
	D.EnsureEntry(cell.NewSpeciesPot(elements))
	D.EnsureEntry(cell.NewSpeciesLCAO(elements))
	return D
}

// potentials returns the pseudopotential file of each element in c.
// A SPECIES_POT block in c takes precedence over the default names.
func potentials(c *cell.Document) []string {
	var table *cell.SpeciesPot
	if e, ok := c.Entry(cell.KindSpeciesPot); ok {
		table, _ = e.(*cell.SpeciesPot)
	}
	var ret []string
	for _, e := range castep.DistinctElements(c.Elements()) {
		if table != nil {
			if f, ok := table.Get(e); ok {
				ret = append(ret, f)
				continue
			}
			fmt.Fprintf(os.Stderr, "seedfile: no %s in SPECIES_POT, will use the default %s\n", e, e.Entry().Potential)
		}
		ret = append(ret, e.Entry().Potential)
	}
	return ret
}

// Cutoff returns the cutoff energy, in eV, for the elements in c.
func (H *Handle) Cutoff(c *cell.Document) (float64, error) {
	return cutoffFromFiles(potentials(c), H.potsdir, H.precision)
}

// BuildParam returns the parameters for the task and the elements in c.
// It fails if the cutoff energy can't be read from the pseudopotentials.
func (H *Handle) BuildParam(c *cell.Document) (*param.Document, error) {
	cutoff, err := H.Cutoff(c)
	if err != nil {
		return nil, castep.ErrDecorate(err, "BuildParam")
	}
	general := param.NewGeneral().
		Task(H.task.castep()).
		Comment(comment)
	if H.task == BandStructure {
		general.Continuation("")
	}
	general.OptStrategy(param.OptSpeed).
		PageWvfns(0).
		CalculateElf(false).
		CalculateStress(false).
		CalculateHirshfeld(H.task != BandStructure).
		CalculateDensdiff(false)

	elecmin := param.NewElecMin().
		ElecEnergyTol(units.Q[units.Energy](1e-5)).
		FixOccupancy(false).
		MaxSCFCycles(6000).
		SmearingWidth(units.Q[units.Energy](0.1)).
		SpinFix(6)
	if H.edft {
		elecmin.EDFT(6)
	} else {
		elecmin.DensityMixing(param.Pulay, 0.5, 2.0).
			MixChargeGmax(units.Q[units.InvLength](1.5)).
			MixSpinGmax(units.Q[units.InvLength](1.5)).
			MixHistoryLength(20)
	}

	electronic := param.NewElectronic().PercExtraBands(percExtraBands)
	if spin := castep.TotalSpin(c.Elements()); spin > 0 {
		electronic.Spin(float64(spin))
	}

	B := param.NewBuilder().
		General(general.Build()).
		BasisSet(param.NewBasisSet().
			CutOffEnergy(cutoff).
			GridScale(1.5).
			FineGridScale(1.5).
			FiniteBasisCorr(param.NoCorrection).
			FixedNPW(false).
			Build()).
		ElecMin(elecmin.Build()).
		Electronic(electronic.Build()).
		XC(param.NewXC().XCFunctional(param.PBE).SpinPolarized(true).Build())
	if H.task != SinglePoint {
		B.GeometryOpt(param.NewGeometryOpt().
			EnergyTol(units.Q[units.Energy](5e-5)).
			ForceTol(units.Q[units.Force](0.1)).
			StressTol(units.Q[units.Pressure](0.2)).
			DispTol(units.Q[units.Length](0.005)).
			MaxIter(6000).
			Method(param.BFGS).
			Build())
	}
	popn := param.NewPopulation().
		PDOSCalculateWeights(true).
		BondCutoff(units.Q[units.Length](3)).
		Calculate(H.task != BandStructure)
	if H.task == BandStructure {
		B.BandStructure(param.NewBandStructure().
			NextraBands(percExtraBands).
			XCFunctional(param.PBE).
			EigenvalueTol(1e-5).
			WriteEigenvalues(true).
			Build())
	}
	return B.Population(popn.Build()).Build(), nil
}

// Files returns the names of the .cell and .param files BuildInput
// writes for seed, or for the name of the handle if seed is empty.
func (H *Handle) Files(seed string) (cellname, paramname string) {
	if seed == "" {
		seed = H.name
	}
	return seed + ".cell" + H.compress, seed + ".param" + H.compress
}

// Overwrites reports whether BuildInput, given seed, would write over
// the file input.
func (H *Handle) Overwrites(seed, input string) bool {
	cellname, paramname := H.Files(seed)
	for _, out := range []string{cellname, paramname} {
		a, err1 := filepath.Abs(out)
		b, err2 := filepath.Abs(input)
		if err1 == nil && err2 == nil && a == b {
			return true
		}
		si, err1 := os.Stat(out)
		so, err2 := os.Stat(input)
		if err1 == nil && err2 == nil && os.SameFile(si, so) {
			return true
		}
	}
	return false
}

// BuildInput writes <seed>.cell and <seed>.param for the structure in c.
// If seed is empty, the name of the handle is used.
func (H *Handle) BuildInput(c *cell.Document, seed string) error {
	if c == nil {
		err := castep.NewError(castep.MissingBlock, castep.Position{}, "no cell document given")
		return castep.ErrDecorate(err, "BuildInput")
	}
	cellname, paramname := H.Files(seed)
	p, err := H.BuildParam(c)
	if err != nil {
		return castep.ErrDecorate(err, "BuildInput")
	}
	if dir := filepath.Dir(cellname); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return castep.IOError(err, dir, "create")
		}
	}
	if err := H.BuildCell(c).WriteFile(cellname); err != nil {
		return castep.ErrDecorate(err, "BuildInput")
	}
	if err := p.WriteFile(paramname); err != nil {
		return castep.ErrDecorate(err, "BuildInput")
	}
	return nil
}
