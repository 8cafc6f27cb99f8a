/*
 * general.go, part of gocastep.
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
	"strings"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/grammar"
	"github.com/rmera/gocastep/units"
)

// General holds the keywords that control the run as a whole.
// A nil field is not written.
type General struct {
	Task                    *Task
	Comment                 *string
	Checkpoint              *string
	ContinueReuse           ContinueReuse
	Backup                  BackupCadence
	OptStrategy             *OptStrategy
	PageWvfns               *int64
	PrintClock              *bool
	PrintMemoryUsage        *bool
	RandSeed                *int64
	RunTime                 *int64
	WriteCheckpoint         WriteCheckpoint
	WriteOrbitals           *bool
	WriteFormattedElf       *bool
	WriteFormattedDensity   *bool
	WriteFormattedPotential *bool
	CalculateStress         *bool
	CalculateDensdiff       *bool
	CalculateElf            *bool
	CalculateHirshfeld      *bool
	ChargeUnit              *units.Charge
	IPrint                  *IPrint
	DataDistribution        *DataDistribution
	//Stop asks CASTEP to stop at the next checkpoint. It is always
	//written at the very end of the file.
	Stop bool
}

func readContinueReuse(F *grammar.Field) (ContinueReuse, error) {
	t, err := F.Single()
	if err != nil {
		return nil, err
	}
	file := t.Text
	if strings.EqualFold(file, "default") {
		file = ""
	}
	if F.Name() == "REUSE" {
		return Reuse{File: file}, nil
	}
	return Continuation{File: file}, nil
}

func showContinueReuse(c ContinueReuse) (string, string) {
	if _, ok := c.(Reuse); ok {
		return "REUSE", c.Value()
	}
	return "CONTINUATION", c.Value()
}

func readBackup(F *grammar.Field) (BackupCadence, error) {
	if F.Name() == "NUM_BACKUP_ITER" {
		v, err := F.PosInt()
		return BackupIter(v), err
	}
	v, err := F.Int()
	return BackupInterval(v), err
}

func showBackup(b BackupCadence) (string, string) {
	switch v := b.(type) {
	case BackupIter:
		return "NUM_BACKUP_ITER", showPosInt(uint64(v))
	case BackupInterval:
		return "BACKUP_INTERVAL", showInt(int64(v))
	}
	return "", ""
}

// readWriteCheckpoint accepts a level alone or EVENT=LEVEL.
func readWriteCheckpoint(F *grammar.Field) (WriteCheckpoint, error) {
	switch len(F.Values) {
	case 0:
		return nil, castep.NewError(castep.MissingValue, F.Pos, "no value given for %s", F.Key)
	case 1:
		l, err := grammar.Enum("checkpoint level", F.Values[0], checkpointLevelNames, nil)
		return CheckpointLevel(l), err
	case 3:
		if F.Values[1].Kind != grammar.Sep {
			return nil, castep.NewError(castep.ExtraTokens, F.Values[1].Pos, "unexpected %q in %s", F.Values[1].Text, F.Key)
		}
		e, err := grammar.Enum("checkpoint event", F.Values[0], checkpointEventNames, nil)
		if err != nil {
			return nil, err
		}
		l, err := grammar.Enum("checkpoint level", F.Values[2], checkpointLevelNames, nil)
		if err != nil {
			return nil, err
		}
		return CheckpointOption{Event: CheckpointEvent(e), Level: CheckpointLevel(l)}, nil
	}
	return nil, castep.NewError(castep.ExtraTokens, F.Values[1].Pos, "unexpected %q in %s", F.Values[1].Text, F.Key)
}

func readIPrint(F *grammar.Field) (IPrint, error) {
	v, err := readRange(F, 0, 3)
	return IPrint(v), err
}

var stopKeyword = keyword{
	names: []string{"STOP"},
	parse: func(D *Document, F *grammar.Field) error {
		if err := F.Flag(); err != nil {
			return err
		}
		D.General.Stop = true
		return nil
	},
	set: func(D *Document) bool { return D.General.Stop },
	take: func(dst, src *Document) {
		if src.General.Stop {
			dst.General.Stop = true
		}
	},
}

func generalSlot[T any](f func(*General) *T) func(*Document) *T {
	return func(D *Document) *T { return f(&D.General) }
}

var generalKeywords = []keyword{
	enumKw("TASK", "task", generalSlot(func(G *General) **Task { return &G.Task }), taskNames, taskAliases),
	textKw("COMMENT", generalSlot(func(G *General) **string { return &G.Comment })),
	textKw("CHECKPOINT", generalSlot(func(G *General) **string { return &G.Checkpoint })),
	alternative([]string{"CONTINUATION", "REUSE"}, generalSlot(func(G *General) *ContinueReuse { return &G.ContinueReuse }), readContinueReuse, showContinueReuse),
	alternative([]string{"NUM_BACKUP_ITER", "BACKUP_INTERVAL"}, generalSlot(func(G *General) *BackupCadence { return &G.Backup }), readBackup, showBackup),
	enumKw("OPT_STRATEGY", "optimization strategy", generalSlot(func(G *General) **OptStrategy { return &G.OptStrategy }), optStrategyNames, nil),
	intKw("PAGE_WVFNS", generalSlot(func(G *General) **int64 { return &G.PageWvfns })),
	boolKw("PRINT_CLOCK", generalSlot(func(G *General) **bool { return &G.PrintClock })),
	boolKw("PRINT_MEMORY_USAGE", generalSlot(func(G *General) **bool { return &G.PrintMemoryUsage })),
	intKw("RAND_SEED", generalSlot(func(G *General) **int64 { return &G.RandSeed })),
	intKw("RUN_TIME", generalSlot(func(G *General) **int64 { return &G.RunTime })),
	alternative([]string{"WRITE_CHECKPOINT"}, generalSlot(func(G *General) *WriteCheckpoint { return &G.WriteCheckpoint }), readWriteCheckpoint,
		func(w WriteCheckpoint) (string, string) { return "WRITE_CHECKPOINT", w.String() }),
	boolKw("WRITE_ORBITALS", generalSlot(func(G *General) **bool { return &G.WriteOrbitals })),
	boolKw("WRITE_FORMATTED_ELF", generalSlot(func(G *General) **bool { return &G.WriteFormattedElf })),
	boolKw("WRITE_FORMATTED_DENSITY", generalSlot(func(G *General) **bool { return &G.WriteFormattedDensity })),
	boolKw("WRITE_FORMATTED_POTENTIAL", generalSlot(func(G *General) **bool { return &G.WriteFormattedPotential })),
	boolKw("CALCULATE_STRESS", generalSlot(func(G *General) **bool { return &G.CalculateStress })),
	boolKw("CALCULATE_DENSDIFF", generalSlot(func(G *General) **bool { return &G.CalculateDensdiff })),
	boolKw("CALCULATE_ELF", generalSlot(func(G *General) **bool { return &G.CalculateElf })),
	boolKw("CALCULATE_HIRSHFELD", generalSlot(func(G *General) **bool { return &G.CalculateHirshfeld })),
	unitKw("CHARGE_UNIT", generalSlot(func(G *General) **units.Charge { return &G.ChargeUnit }), units.ParseCharge),
	scalar("IPRINT", generalSlot(func(G *General) **IPrint { return &G.IPrint }), readIPrint, IPrint.String),
	enumKw("DATA_DISTRIBUTION", "data distribution", generalSlot(func(G *General) **DataDistribution { return &G.DataDistribution }), dataDistributionNames, nil),
	stopKeyword,
}

// GeneralBuilder builds a General section. The zero value is usable.
type GeneralBuilder struct {
	s General
}

func NewGeneral() *GeneralBuilder { return new(GeneralBuilder) }

func (B *GeneralBuilder) Task(t Task) *GeneralBuilder        { B.s.Task = &t; return B }
func (B *GeneralBuilder) Comment(c string) *GeneralBuilder   { B.s.Comment = &c; return B }
func (B *GeneralBuilder) Checkpoint(f string) *GeneralBuilder { B.s.Checkpoint = &f; return B }

// Continuation continues from file, or from the default checkpoint if
// file is empty. It replaces any Reuse.
func (B *GeneralBuilder) Continuation(file string) *GeneralBuilder {
	B.s.ContinueReuse = Continuation{File: file}
	return B
}

// Reuse replaces any Continuation.
func (B *GeneralBuilder) Reuse(file string) *GeneralBuilder {
	B.s.ContinueReuse = Reuse{File: file}
	return B
}

func (B *GeneralBuilder) NumBackupIter(n uint64) *GeneralBuilder {
	B.s.Backup = BackupIter(n)
	return B
}

// BackupInterval is in seconds.
func (B *GeneralBuilder) BackupInterval(s int64) *GeneralBuilder {
	B.s.Backup = BackupInterval(s)
	return B
}

func (B *GeneralBuilder) OptStrategy(o OptStrategy) *GeneralBuilder { B.s.OptStrategy = &o; return B }
func (B *GeneralBuilder) PageWvfns(n int64) *GeneralBuilder         { B.s.PageWvfns = &n; return B }
func (B *GeneralBuilder) PrintClock(b bool) *GeneralBuilder         { B.s.PrintClock = &b; return B }
func (B *GeneralBuilder) PrintMemoryUsage(b bool) *GeneralBuilder   { B.s.PrintMemoryUsage = &b; return B }
func (B *GeneralBuilder) RandSeed(n int64) *GeneralBuilder          { B.s.RandSeed = &n; return B }
func (B *GeneralBuilder) RunTime(n int64) *GeneralBuilder           { B.s.RunTime = &n; return B }

func (B *GeneralBuilder) WriteCheckpoint(l CheckpointLevel) *GeneralBuilder {
	B.s.WriteCheckpoint = l
	return B
}

func (B *GeneralBuilder) WriteCheckpointOn(e CheckpointEvent, l CheckpointLevel) *GeneralBuilder {
	B.s.WriteCheckpoint = CheckpointOption{Event: e, Level: l}
	return B
}

func (B *GeneralBuilder) WriteOrbitals(b bool) *GeneralBuilder      { B.s.WriteOrbitals = &b; return B }
func (B *GeneralBuilder) WriteFormattedElf(b bool) *GeneralBuilder  { B.s.WriteFormattedElf = &b; return B }
func (B *GeneralBuilder) WriteFormattedDensity(b bool) *GeneralBuilder {
	B.s.WriteFormattedDensity = &b
	return B
}
func (B *GeneralBuilder) WriteFormattedPotential(b bool) *GeneralBuilder {
	B.s.WriteFormattedPotential = &b
	return B
}
func (B *GeneralBuilder) CalculateStress(b bool) *GeneralBuilder    { B.s.CalculateStress = &b; return B }
func (B *GeneralBuilder) CalculateDensdiff(b bool) *GeneralBuilder  { B.s.CalculateDensdiff = &b; return B }
func (B *GeneralBuilder) CalculateElf(b bool) *GeneralBuilder       { B.s.CalculateElf = &b; return B }
func (B *GeneralBuilder) CalculateHirshfeld(b bool) *GeneralBuilder { B.s.CalculateHirshfeld = &b; return B }
func (B *GeneralBuilder) ChargeUnit(u units.Charge) *GeneralBuilder { B.s.ChargeUnit = &u; return B }

// IPrint values outside 0-3 are clamped.
func (B *GeneralBuilder) IPrint(n int) *GeneralBuilder {
	p := IPrint(min(max(n, 0), 3))
	B.s.IPrint = &p
	return B
}

func (B *GeneralBuilder) DataDistribution(d DataDistribution) *GeneralBuilder {
	B.s.DataDistribution = &d
	return B
}

func (B *GeneralBuilder) Stop(b bool) *GeneralBuilder { B.s.Stop = b; return B }

func (B *GeneralBuilder) Build() General { return B.s }
