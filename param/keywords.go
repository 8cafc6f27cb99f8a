/*
 * keywords.go, part of gocastep.
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
	"strconv"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/grammar"
	"github.com/rmera/gocastep/units"
)

// keyword binds one or more keyword names to a slot of the document.
// All the names of an alternative group share a single keyword value,
// so a later occurrence of any of them replaces the slot.
type keyword struct {
	names []string
	parse func(D *Document, F *grammar.Field) error
	emit  func(D *Document) []string
	set   func(D *Document) bool
	take  func(dst, src *Document)
}

func line(name, value string) string {
	return name + " : " + value
}

// scalar is a keyword whose slot is a pointer, nil when absent.
func scalar[T any](name string, slot func(*Document) **T, read func(*grammar.Field) (T, error), show func(T) string) keyword {
	return keyword{
		names: []string{name},
		parse: func(D *Document, F *grammar.Field) error {
			v, err := read(F)
			if err != nil {
				return err
			}
			*slot(D) = &v
			return nil
		},
		emit: func(D *Document) []string {
			p := *slot(D)
			if p == nil {
				return nil
			}
			return []string{line(name, show(*p))}
		},
		set: func(D *Document) bool { return *slot(D) != nil },
		take: func(dst, src *Document) {
			if p := *slot(src); p != nil {
				v := *p
				if c, ok := any(v).(interface{ Clone() T }); ok {
					v = c.Clone()
				}
				*slot(dst) = &v
			}
		},
	}
}

// alternative is a group of keywords sharing an interface-typed slot.
// variant returns the keyword name and value text for the value held.
func alternative[T any](names []string, slot func(*Document) *T, read func(*grammar.Field) (T, error), variant func(T) (string, string)) keyword {
	return keyword{
		names: names,
		parse: func(D *Document, F *grammar.Field) error {
			v, err := read(F)
			if err != nil {
				return err
			}
			*slot(D) = v
			return nil
		},
		emit: func(D *Document) []string {
			v := *slot(D)
			if any(v) == nil {
				return nil
			}
			return []string{line(variant(v))}
		},
		set: func(D *Document) bool { return any(*slot(D)) != nil },
		take: func(dst, src *Document) {
			if v := *slot(src); any(v) != nil {
				*slot(dst) = v
			}
		},
	}
}

//Readers. Each one turns the value tokens of a field into a typed value.

func readReal(F *grammar.Field) (float64, error)  { return F.Real() }
func readInt(F *grammar.Field) (int64, error)     { return F.Int() }
func readPosInt(F *grammar.Field) (uint64, error) { return F.PosInt() }
func readBool(F *grammar.Field) (bool, error)     { return F.Bool() }
func readText(F *grammar.Field) (string, error)   { return F.Text() }

func readEnum[E ~int](kind string, names []string, aliases map[string]int) func(*grammar.Field) (E, error) {
	return func(F *grammar.Field) (E, error) {
		t, err := F.Single()
		if err != nil {
			return 0, err
		}
		i, err := grammar.Enum(kind, t, names, aliases)
		return E(i), err
	}
}

func readUnit[U any](parse func(string) (U, bool)) func(*grammar.Field) (U, error) {
	return func(F *grammar.Field) (U, error) {
		t, err := F.Single()
		if err != nil {
			var u U
			return u, err
		}
		return grammar.Unit(t, parse)
	}
}

func readQuantity[U units.Unit](parse func(string) (U, bool)) func(*grammar.Field) (units.Quantity[U], error) {
	return func(F *grammar.Field) (units.Quantity[U], error) {
		v, ut, err := F.RealUnit()
		if err != nil {
			return units.Quantity[U]{}, err
		}
		q := units.Q[U](v)
		if ut != nil {
			u, err := grammar.Unit(*ut, parse)
			if err != nil {
				return q, err
			}
			q.Unit = &u
		}
		return q, nil
	}
}

func readRange(F *grammar.Field, min, max int64) (int64, error) {
	v, err := F.Int()
	if err != nil {
		return 0, err
	}
	if v < min || v > max {
		return 0, castep.NewError(castep.OutOfRange, F.Values[0].Pos, "%s must be between %d and %d, not %d", F.Key, min, max, v)
	}
	return v, nil
}

//Writers.

func showInt(v int64) string     { return strconv.FormatInt(v, 10) }
func showPosInt(v uint64) string { return strconv.FormatUint(v, 10) }
func showText(v string) string   { return v }

func fixed(width, prec int) func(float64) string {
	return func(v float64) string { return castep.Fixed(v, width, prec) }
}

func sci(width, prec int) func(float64) string {
	return func(v float64) string { return castep.Sci(v, width, prec) }
}

func showQuantity[U units.Unit](num func(float64) string) func(units.Quantity[U]) string {
	return func(q units.Quantity[U]) string { return num(q.Value) + q.Suffix(false) }
}

func showUnit[U units.Unit](u U) string { return u.String() }

//Building blocks for the tables of the sections.

func realKw(name string, slot func(*Document) **float64, show func(float64) string) keyword {
	return scalar(name, slot, readReal, show)
}

func intKw(name string, slot func(*Document) **int64) keyword {
	return scalar(name, slot, readInt, showInt)
}

func posIntKw(name string, slot func(*Document) **uint64) keyword {
	return scalar(name, slot, readPosInt, showPosInt)
}

func boolKw(name string, slot func(*Document) **bool) keyword {
	return scalar(name, slot, readBool, castep.Logical)
}

func textKw(name string, slot func(*Document) **string) keyword {
	return scalar(name, slot, readText, showText)
}

func quantityKw[U units.Unit](name string, slot func(*Document) **units.Quantity[U], parse func(string) (U, bool), num func(float64) string) keyword {
	return scalar(name, slot, readQuantity(parse), showQuantity[U](num))
}

func unitKw[U units.Unit](name string, slot func(*Document) **U, parse func(string) (U, bool)) keyword {
	return scalar(name, slot, readUnit(parse), showUnit[U])
}

func enumKw[E interface {
	~int
	String() string
}](name, kind string, slot func(*Document) **E, names []string, aliases map[string]int) keyword {
	return scalar(name, slot, readEnum[E](kind, names, aliases), func(e E) string { return e.String() })
}

// bandExtrasKw handles the NEXTRA_BANDS/PERC_EXTRA_BANDS pair. prefix is
// prepended to both names ("BS_" for the band structure section).
func bandExtrasKw(prefix string, slot func(*Document) *BandExtras) keyword {
	count, perc := prefix+"NEXTRA_BANDS", prefix+"PERC_EXTRA_BANDS"
	read := func(F *grammar.Field) (BandExtras, error) {
		if F.Name() == count {
			v, err := F.PosInt()
			return NextraBands(v), err
		}
		v, err := F.Real()
		return PercExtraBands(v), err
	}
	variant := func(b BandExtras) (string, string) {
		switch v := b.(type) {
		case NextraBands:
			return count, showPosInt(uint64(v))
		case PercExtraBands:
			return perc, castep.Short(float64(v))
		}
		return "", ""
	}
	return alternative([]string{count, perc}, slot, read, variant)
}
