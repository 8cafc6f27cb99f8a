/*
 * errors.go, part of gocastep.
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

	"github.com/pkg/errors"
)

// Position locates a token in an input file. Offset is a 0-based
// byte offset, Line and Column start at 1.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (P Position) String() string {
	name := P.Filename
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d", name, P.Line, P.Column)
}

// Kind groups error categories by how they are handled.
type Kind int

const (
	Syntactic Kind = iota
	Semantic
	Recoverable
	IO
)

// Category is the specific reason for a parse or I/O failure.
type Category int

const (
	MalformedNumber Category = iota
	MalformedLogical
	MissingValue
	ExtraTokens
	UnterminatedBlock
	BlockMismatch
	NestedBlock
	InvalidToken
	UnknownEnumVariant
	UnrecognizedUnit
	DuplicateElement
	UnknownElement
	OutOfRange
	UnknownOrbital
	MissingBlock
	WrongRowLength
	UnknownKeyword
	Io
)

var categoryNames = [...]string{
	MalformedNumber:    "MalformedNumber",
	MalformedLogical:   "MalformedLogical",
	MissingValue:       "MissingValue",
	ExtraTokens:        "ExtraTokens",
	UnterminatedBlock:  "UnterminatedBlock",
	BlockMismatch:      "BlockMismatch",
	NestedBlock:        "NestedBlock",
	InvalidToken:       "InvalidToken",
	UnknownEnumVariant: "UnknownEnumVariant",
	UnrecognizedUnit:   "UnrecognizedUnit",
	DuplicateElement:   "DuplicateElement",
	UnknownElement:     "UnknownElement",
	OutOfRange:         "OutOfRange",
	UnknownOrbital:     "UnknownOrbital",
	MissingBlock:       "MissingBlock",
	WrongRowLength:     "WrongRowLength",
	UnknownKeyword:     "UnknownKeyword",
	Io:                 "Io",
}

func (C Category) String() string {
	if C < 0 || int(C) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(C))
	}
	return categoryNames[C]
}

// Kind returns the group the category belongs to.
func (C Category) Kind() Kind {
	switch {
	case C <= InvalidToken:
		return Syntactic
	case C == UnknownKeyword:
		return Recoverable
	case C == Io:
		return IO
	default:
		return Semantic
	}
}

// Error is the error type returned by all the parsers in gocastep. It fulfills
// Decorator and LocatedError.
type Error struct {
	message  string
	category Category
	pos      Position
	deco     []string
	critical bool
	cause    error
}

// NewError returns a critical error of category cat located at pos.
func NewError(cat Category, pos Position, format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...), category: cat, pos: pos, critical: true}
}

// IOError wraps an error from the file system. The original error is
// kept as the cause, so errors.Cause and errors.Is see it untouched.
func IOError(err error, filename, action string) *Error {
	return &Error{
		message:  fmt.Sprintf("can't %s file", action),
		category: Io,
		pos:      Position{Filename: filename},
		critical: true,
		cause:    errors.Wrapf(err, "%s %s", action, filename),
	}
}

func (E *Error) Error() string {
	var s string
	if E.pos.Line > 0 {
		s = fmt.Sprintf("%s: %s: %s (byte %d)", E.pos, E.category, E.message, E.pos.Offset)
	} else if E.pos.Filename != "" {
		s = fmt.Sprintf("%s: %s: %s", E.pos.Filename, E.category, E.message)
	} else {
		s = fmt.Sprintf("%s: %s", E.category, E.message)
	}
	if E.cause != nil {
		s = s + ": " + E.cause.Error()
	}
	return s
}

// Decorate adds new information to the error
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Category returns the reason for the error.
func (E *Error) Category() Category { return E.category }

// Position returns the location of the offending token. For I/O errors
// only the Filename is set.
func (E *Error) Position() Position { return E.pos }

// FileName returns the file to which the error was associated, or an empty string.
func (E *Error) FileName() string { return E.pos.Filename }

// Critical returns true if the error is critical, false otherwise
func (E *Error) Critical() bool { return E.critical }

// Cause returns the original error behind an I/O error, nil otherwise.
func (E *Error) Cause() error {
	if E.cause == nil {
		return nil
	}
	return errors.Cause(E.cause)
}

func (E *Error) Unwrap() error { return E.cause }

// WithFilename sets the file name of the error if it was not set already,
// and returns the error.
func (E *Error) WithFilename(name string) *Error {
	if E.pos.Filename == "" {
		E.pos.Filename = name
	}
	return E
}

// ErrDecorate is a helper function that adds caller to the decoration of
// err, if err is a Decorator. err is returned in any case.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var d Decorator
	if errors.As(err, &d) {
		d.Decorate(caller)
	}
	return err
}

// CategoryOf returns the category of err and true, if err is, or wraps,
// a LocatedError.
func CategoryOf(err error) (Category, bool) {
	var l LocatedError
	if errors.As(err, &l) {
		return l.Category(), true
	}
	return 0, false
}
