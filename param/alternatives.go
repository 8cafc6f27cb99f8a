/*
 * alternatives.go, part of gocastep.
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

//Some settings can be given by either of two or more keywords. Each one
//is an interface implemented by one type per keyword. The document holds a
//single slot of the interface type; when several of the keywords appear in
//a file, the last one read is the one kept.

// BandExtras is the number of bands added to the occupied ones, either
// as a count (NextraBands) or as a percentage (PercExtraBands).
type BandExtras interface {
	bandExtras()
}

type NextraBands uint64

type PercExtraBands float64

func (NextraBands) bandExtras()    {}
func (PercExtraBands) bandExtras() {}

// BackupCadence is how often backup restart files are written, either every
// BackupIter iterations or every BackupInterval seconds.
type BackupCadence interface {
	backupCadence()
}

type BackupIter uint64

// BackupInterval is in seconds. Values <= 0 disable backups.
type BackupInterval int64

func (BackupIter) backupCadence()     {}
func (BackupInterval) backupCadence() {}

// ContinueReuse is either a Continuation or a Reuse of a previous run.
type ContinueReuse interface {
	continueReuse()
	Value() string
}

// Continuation continues a run from File, or from the default checkpoint
// if File is empty.
type Continuation struct {
	File string
}

// Reuse takes as much data as possible from File, or from the default
// checkpoint if File is empty.
type Reuse struct {
	File string
}

func (Continuation) continueReuse() {}
func (Reuse) continueReuse()        {}

func (C Continuation) Value() string { return checkpointFile(C.File) }
func (R Reuse) Value() string        { return checkpointFile(R.File) }

func checkpointFile(f string) string {
	if f == "" {
		return "default"
	}
	return f
}

// WriteCheckpoint is either a plain CheckpointLevel or a CheckpointOption
// that applies to one event.
type WriteCheckpoint interface {
	writeCheckpoint()
	String() string
}

// CheckpointOption is a level for a given event, SUCCESS=ALL, for instance.
type CheckpointOption struct {
	Event CheckpointEvent
	Level CheckpointLevel
}

func (CheckpointLevel) writeCheckpoint()  {}
func (CheckpointOption) writeCheckpoint() {}

func (C CheckpointOption) String() string {
	return C.Event.String() + "=" + C.Level.String()
}
