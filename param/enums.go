/*
 * enums.go, part of gocastep.
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
	"fmt"
	"strings"
)

//Each enumeration has a slice with its canonical tokens, indexed by value,
//and optionally a map with other accepted spellings (lower case).

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("?%d", i)
	}
	return names[i]
}

func enumLookup(names []string, aliases map[string]int, s string) (int, bool) {
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return i, true
		}
	}
	i, ok := aliases[strings.ToLower(s)]
	return i, ok
}

// Task is the kind of calculation CASTEP performs.
type Task int

const (
	TaskSinglePoint Task = iota
	TaskBandStructure
	TaskGeometryOptimization
	TaskMolecularDynamics
	TaskOptics
	TaskPhonon
	TaskEfield
	TaskPhononEfield
	TaskTransitionStateSearch
	TaskMagRes
	TaskElnes
	TaskElectronicSpectroscopy
	TaskAutosolvation
)

var taskNames = []string{"SinglePoint", "BandStructure", "GeometryOptimization", "MolecularDynamics",
	"Optics", "Phonon", "Efield", "Phonon+Efield", "TransitionStateSearch", "MagRes", "Elnes",
	"ElectronicSpectroscopy", "Autosolvation"}

var taskAliases = map[string]int{
	"energy":               0,
	"geometryoptimisation": 2,
	"geomopt":              2,
	"phononefield":         7,
	"tss":                  8,
}

func (T Task) String() string { return enumName(taskNames, int(T)) }

// ParseTask returns the task named s. Case is ignored.
func ParseTask(s string) (Task, bool) {
	i, ok := enumLookup(taskNames, taskAliases, s)
	return Task(i), ok
}

// OptStrategy trades memory for speed.
type OptStrategy int

const (
	OptDefault OptStrategy = iota
	OptSpeed
	OptMemory
)

var optStrategyNames = []string{"Default", "Speed", "Memory"}

func (O OptStrategy) String() string { return enumName(optStrategyNames, int(O)) }

// DataDistribution is the parallelization strategy.
type DataDistribution int

const (
	DistDefault DataDistribution = iota
	DistKpoint
	DistGvector
	DistMixed
)

var dataDistributionNames = []string{"Default", "Kpoint", "Gvector", "Mixed"}

func (D DataDistribution) String() string { return enumName(dataDistributionNames, int(D)) }

// IPrint is the verbosity of the output file, 0 to 3.
type IPrint int

func (I IPrint) String() string { return fmt.Sprintf("%d", int(I)) }

// CheckpointLevel says what goes to the checkpoint file.
type CheckpointLevel int

const (
	CheckpointNone CheckpointLevel = iota
	CheckpointMinimal
	CheckpointBoth
	CheckpointAll
	CheckpointFull
)

var checkpointLevelNames = []string{"None", "Minimal", "Both", "All", "Full"}

func (C CheckpointLevel) String() string { return enumName(checkpointLevelNames, int(C)) }

// CheckpointEvent is the moment a checkpoint option applies to.
type CheckpointEvent int

const (
	OnSuccess CheckpointEvent = iota
	OnFailure
	OnBackup
)

var checkpointEventNames = []string{"SUCCESS", "FAILURE", "BACKUP"}

func (C CheckpointEvent) String() string { return enumName(checkpointEventNames, int(C)) }

// BasisPrecision is the named quality of the plane-wave cutoff.
type BasisPrecision int

const (
	Coarse BasisPrecision = iota
	Medium
	Fine
	Precise
	Extreme
)

var basisPrecisionNames = []string{"Coarse", "Medium", "Fine", "Precise", "Extreme"}

func (B BasisPrecision) String() string { return enumName(basisPrecisionNames, int(B)) }

// FiniteBasisCorr is the finite basis set correction mode.
type FiniteBasisCorr int

const (
	NoCorrection FiniteBasisCorr = iota
	ManualCorrection
	AutomaticCorrection
)

var finiteBasisCorrNames = []string{"0", "1", "2"}

var finiteBasisCorrAliases = map[string]int{"none": 0, "manual": 1, "automatic": 2}

func (F FiniteBasisCorr) String() string { return enumName(finiteBasisCorrNames, int(F)) }

// XCFunctional is an exchange-correlation functional. The same set is used
// for BS_XC_FUNCTIONAL.
type XCFunctional int

const (
	LDA XCFunctional = iota
	PW91
	PBE
	RPBE
	WC
	PBESOL
	HF
	HFLDA
	SHF
	SHFLDA
	SX
	SXLDA
	PBE0
	B3LYP
	HSE03
	HSE06
	RSCAN
)

var xcFunctionalNames = []string{"LDA", "PW91", "PBE", "RPBE", "WC", "PBESOL", "HF", "HF-LDA",
	"SHF", "SHF-LDA", "sX", "sX-LDA", "PBE0", "B3LYP", "HSE03", "HSE06", "RSCAN"}

func (X XCFunctional) String() string { return enumName(xcFunctionalNames, int(X)) }

// RelativisticTreatment of the pseudopotential generation.
type RelativisticTreatment int

const (
	KoellingHarmon RelativisticTreatment = iota
	Schroedinger
	Zora
	Dirac
)

var relativisticNames = []string{"koelling-harmon", "schroedinger", "zora", "dirac"}

func (R RelativisticTreatment) String() string { return enumName(relativisticNames, int(R)) }

// PspotSpace is where a pseudopotential term is evaluated.
type PspotSpace int

const (
	Reciprocal PspotSpace = iota
	RealSpace
)

var pspotSpaceNames = []string{"reciprocal", "real"}

func (P PspotSpace) String() string { return enumName(pspotSpaceNames, int(P)) }

// MetalsMethod is the electronic minimizer.
type MetalsMethod int

const (
	MetalsDM MetalsMethod = iota
	MetalsEDFT
	MetalsNone
)

var metalsMethodNames = []string{"dm", "edft", "none"}

func (M MetalsMethod) String() string { return enumName(metalsMethodNames, int(M)) }

// MixingScheme for density mixing.
type MixingScheme int

const (
	Pulay MixingScheme = iota
	Linear
	Kerker
	Broyden
)

var mixingSchemeNames = []string{"Pulay", "Linear", "Kerker", "Broyden"}

func (M MixingScheme) String() string { return enumName(mixingSchemeNames, int(M)) }

// GeomMethod is the geometry optimizer.
type GeomMethod int

const (
	BFGS GeomMethod = iota
	LBFGS
	Delocalized
	DampedMD
	TPSD
)

var geomMethodNames = []string{"BFGS", "LBFGS", "Delocalized", "DampedMD", "TPSD"}

var geomMethodAliases = map[string]int{"delocalised": 2}

func (G GeomMethod) String() string { return enumName(geomMethodNames, int(G)) }

// GeomPreconditioner for the LBFGS optimizer.
type GeomPreconditioner int

const (
	PrecondID GeomPreconditioner = iota
	PrecondEXP
	PrecondFF
)

var geomPreconditionerNames = []string{"ID", "EXP", "FF"}

func (G GeomPreconditioner) String() string { return enumName(geomPreconditionerNames, int(G)) }

// PopnWrite is the verbosity of the population analysis.
type PopnWrite int

const (
	PopnNone PopnWrite = iota
	PopnMinimal
	PopnSummary
	PopnEnhanced
	PopnVerbose
)

var popnWriteNames = []string{"None", "Minimal", "Summary", "Enhanced", "Verbose"}

func (P PopnWrite) String() string { return enumName(popnWriteNames, int(P)) }
