/*
 * values.go, part of gocastep.
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
	"regexp"
	"strconv"
	"strings"

	castep "github.com/rmera/gocastep"
)

var (
	realRe   = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eEdD][+-]?\d+)?$`)
	intRe    = regexp.MustCompile(`^[+-]?\d+$`)
	posIntRe = regexp.MustCompile(`^\+?\d+$`)
)

// Real parses a real number: optional sign, integer and/or fractional
// part, optional exponent. The exponent can be written with e or, as in
// Fortran, with d.
func Real(t Token) (float64, error) {
	if t.Kind != Word || !realRe.MatchString(t.Text) {
		return 0, castep.NewError(castep.MalformedNumber, t.Pos, "%q is not a real number", t.Text)
	}
	v, err := strconv.ParseFloat(strings.NewReplacer("d", "e", "D", "e").Replace(t.Text), 64)
	if err != nil {
		return 0, castep.NewError(castep.MalformedNumber, t.Pos, "%q is not a real number", t.Text)
	}
	return v, nil
}

// Int parses a signed integer.
func Int(t Token) (int64, error) {
	if t.Kind != Word || !intRe.MatchString(t.Text) {
		return 0, castep.NewError(castep.MalformedNumber, t.Pos, "%q is not an integer", t.Text)
	}
	v, err := strconv.ParseInt(t.Text, 10, 64)
	if err != nil {
		return 0, castep.NewError(castep.OutOfRange, t.Pos, "integer %s out of range", t.Text)
	}
	return v, nil
}

// PosInt parses a non-negative integer.
func PosInt(t Token) (uint64, error) {
	if t.Kind != Word || !posIntRe.MatchString(t.Text) {
		if intRe.MatchString(t.Text) {
			return 0, castep.NewError(castep.OutOfRange, t.Pos, "%s is negative", t.Text)
		}
		return 0, castep.NewError(castep.MalformedNumber, t.Pos, "%q is not a positive integer", t.Text)
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(t.Text, "+"), 10, 64)
	if err != nil {
		return 0, castep.NewError(castep.OutOfRange, t.Pos, "integer %s out of range", t.Text)
	}
	return v, nil
}

// Bool parses a logical: true, false, t or f in any case.
func Bool(t Token) (bool, error) {
	switch strings.ToLower(t.Text) {
	case "true", "t":
		return true, nil
	case "false", "f":
		return false, nil
	}
	return false, castep.NewError(castep.MalformedLogical, t.Pos, "%q is not a logical value", t.Text)
}

// Enum matches t, ignoring case, against names and, if given, the extra
// spellings in aliases. It returns the index of the match.
func Enum(kind string, t Token, names []string, aliases map[string]int) (int, error) {
	for i, n := range names {
		if strings.EqualFold(n, t.Text) {
			return i, nil
		}
	}
	if i, ok := aliases[strings.ToLower(t.Text)]; ok {
		return i, nil
	}
	return 0, castep.NewError(castep.UnknownEnumVariant, t.Pos, "%q is not a valid %s", t.Text, kind)
}

// Unit parses a unit token with parse, which is one of the Parse functions
// of the units package.
func Unit[U any](t Token, parse func(string) (U, bool)) (U, error) {
	u, ok := parse(t.Text)
	if !ok {
		return u, castep.NewError(castep.UnrecognizedUnit, t.Pos, "unrecognized unit %q", t.Text)
	}
	return u, nil
}

// Element parses a chemical symbol.
func Element(t Token) (castep.Element, error) {
	e, ok := castep.ParseElement(t.Text)
	if !ok {
		return 0, castep.NewError(castep.UnknownElement, t.Pos, "%q is not a chemical element", t.Text)
	}
	return e, nil
}

//Field helpers. All of them fail with MissingValue if there is no value
//and with ExtraTokens if there are more tokens than the shape allows.

func (F *Field) missing() error {
	return castep.NewError(castep.MissingValue, F.Pos, "no value given for %s", F.Key)
}

func (F *Field) extra(i int) error {
	return castep.NewError(castep.ExtraTokens, F.Values[i].Pos, "unexpected %q after the value of %s", F.Values[i].Text, F.Key)
}

// Single returns the only value token of the field.
func (F *Field) Single() (Token, error) {
	if len(F.Values) == 0 {
		return Token{}, F.missing()
	}
	if len(F.Values) > 1 {
		return Token{}, F.extra(1)
	}
	return F.Values[0], nil
}

// Flag checks that the field carries no value.
func (F *Field) Flag() error {
	if len(F.Values) > 0 {
		return F.extra(0)
	}
	return nil
}

func (F *Field) Real() (float64, error) {
	t, err := F.Single()
	if err != nil {
		return 0, err
	}
	return Real(t)
}

func (F *Field) Int() (int64, error) {
	t, err := F.Single()
	if err != nil {
		return 0, err
	}
	return Int(t)
}

func (F *Field) PosInt() (uint64, error) {
	t, err := F.Single()
	if err != nil {
		return 0, err
	}
	return PosInt(t)
}

func (F *Field) Bool() (bool, error) {
	t, err := F.Single()
	if err != nil {
		return false, err
	}
	return Bool(t)
}

// Text returns all the value tokens joined by single spaces. Separators
// inside the value are kept.
func (F *Field) Text() (string, error) {
	if len(F.Values) == 0 {
		return "", F.missing()
	}
	s := make([]string, len(F.Values))
	for i, v := range F.Values {
		s[i] = v.Text
	}
	return strings.Join(s, " "), nil
}

// Reals parses exactly n reals.
func (F *Field) Reals(n int) ([]float64, error) {
	if len(F.Values) < n {
		return nil, castep.NewError(castep.MissingValue, F.Pos, "%s needs %d values, %d given", F.Key, n, len(F.Values))
	}
	if len(F.Values) > n {
		return nil, F.extra(n)
	}
	ret := make([]float64, n)
	for i := range ret {
		v, err := Real(F.Values[i])
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

// Ints parses exactly n integers.
func (F *Field) Ints(n int) ([]int64, error) {
	if len(F.Values) < n {
		return nil, castep.NewError(castep.MissingValue, F.Pos, "%s needs %d values, %d given", F.Key, n, len(F.Values))
	}
	if len(F.Values) > n {
		return nil, F.extra(n)
	}
	ret := make([]int64, n)
	for i := range ret {
		v, err := Int(F.Values[i])
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

// RealUnit parses one real followed by an optional unit token. The unit
// token is returned unparsed, nil if absent.
func (F *Field) RealUnit() (float64, *Token, error) {
	if len(F.Values) == 0 {
		return 0, nil, F.missing()
	}
	if len(F.Values) > 2 {
		return 0, nil, F.extra(2)
	}
	v, err := Real(F.Values[0])
	if err != nil {
		return 0, nil, err
	}
	if len(F.Values) == 2 {
		u := F.Values[1]
		return v, &u, nil
	}
	return v, nil, nil
}

//Row helpers.

// Len returns the number of tokens in the row.
func (R Row) Len() int { return len(R.Tokens) }

// Reals parses the n tokens starting at from as reals.
func (R Row) Reals(from, n int) ([]float64, error) {
	if R.Len() < from+n {
		return nil, castep.NewError(castep.WrongRowLength, R.Pos, "row has %d values, at least %d needed", R.Len(), from+n)
	}
	ret := make([]float64, n)
	for i := range ret {
		v, err := Real(R.Tokens[from+i])
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

// Ints parses the n tokens starting at from as integers.
func (R Row) Ints(from, n int) ([]int64, error) {
	if R.Len() < from+n {
		return nil, castep.NewError(castep.WrongRowLength, R.Pos, "row has %d values, at least %d needed", R.Len(), from+n)
	}
	ret := make([]int64, n)
	for i := range ret {
		v, err := Int(R.Tokens[from+i])
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

// Exactly fails with WrongRowLength unless the row has n tokens.
func (R Row) Exactly(n int) error {
	if R.Len() != n {
		return castep.NewError(castep.WrongRowLength, R.Pos, "row has %d values, %d expected", R.Len(), n)
	}
	return nil
}

// Rest returns the text of the row from token from to the end of the
// line. Tokens that touch in the source (such as "20:21(qc=6)") are
// joined as they were, and each gap becomes as many spaces as it was wide.
// It returns "" if from is past the end of the row.
func (R Row) Rest(from int) string {
	if from >= R.Len() {
		return ""
	}
	var b strings.Builder
	prev := R.Tokens[from]
	b.WriteString(prev.Text)
	for _, t := range R.Tokens[from+1:] {
		if gap := t.Pos.Offset - (prev.Pos.Offset + len(prev.Text)); gap > 0 {
			b.WriteString(strings.Repeat(" ", gap))
		}
		b.WriteString(t.Text)
		prev = t
	}
	return b.String()
}
