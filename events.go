/*
 * events.go, part of gocastep.
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

package castep

import (
	"fmt"
	"log"
)

// Options control a parse.
type Options struct {
	//Name of the file being parsed, used only in positions and messages.
	Filename string
	//If true, unknown keywords and blocks are errors instead of events.
	Strict bool
	//If not nil, each recoverable event is logged here.
	Logger *log.Logger
}

// Event is a recoverable incident found while parsing. The only kind so far
// is an unknown keyword or block, which is skipped.
type Event struct {
	Keyword string
	Block   bool
	Pos     Position
}

func (E Event) String() string {
	what := "keyword"
	if E.Block {
		what = "block"
	}
	return fmt.Sprintf("%s: unknown %s %s skipped", E.Pos, what, E.Keyword)
}

// Recorder accumulates the events of one parse and applies the
// strictness policy.
type Recorder struct {
	opts   Options
	events []Event
}

// NewRecorder returns a Recorder for the given options. opts can be nil.
func NewRecorder(opts *Options) *Recorder {
	R := new(Recorder)
	if opts != nil {
		R.opts = *opts
	}
	return R
}

// Filename returns the file name set in the options.
func (R *Recorder) Filename() string { return R.opts.Filename }

// Unknown deals with an unknown keyword or block. In strict mode it returns
// an UnknownKeyword error, otherwise the event is recorded and nil is returned.
func (R *Recorder) Unknown(keyword string, block bool, pos Position) error {
	if R.opts.Strict {
		what := "keyword"
		if block {
			what = "block"
		}
		return NewError(UnknownKeyword, pos, "unknown %s %s", what, keyword)
	}
	e := Event{Keyword: keyword, Block: block, Pos: pos}
	R.events = append(R.events, e)
	if R.opts.Logger != nil {
		R.opts.Logger.Print(e.String())
	}
	return nil
}

// Events returns the events recorded so far.
func (R *Recorder) Events() []Event {
	return R.events
}
