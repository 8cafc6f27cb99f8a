/*
 * cutoff.go, part of gocastep.
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
	"bufio"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	castep "github.com/rmera/gocastep"
)

// Precision selects which cutoff hint of a pseudopotential file is used.
type Precision int

const (
	Coarse Precision = iota
	Medium
	Fine
	Ultrafine
)

var precisionNames = []string{"COARSE", "MEDIUM", "FINE", "ULTRAFINE"}

func (P Precision) String() string {
	if P < 0 || int(P) >= len(precisionNames) {
		return fmt.Sprintf("Precision(%d)", int(P))
	}
	return precisionNames[P]
}

// ParsePrecision returns the precision named s. Case is ignored.
func ParsePrecision(s string) (Precision, error) {
	for i, n := range precisionNames {
		if strings.EqualFold(s, n) {
			return Precision(i), nil
		}
	}
	return Coarse, castep.NewError(castep.UnknownEnumVariant, castep.Position{}, "unknown precision %q", s)
}

// keyword is the word searched for in the pseudopotential file.
// Ultrafine has no line of its own, it scales the fine one.
func (P Precision) keyword() string {
	if P == Ultrafine {
		return "FINE"
	}
	return P.String()
}

func (P Precision) factor() float64 {
	if P == Ultrafine {
		return 1.1
	}
	return 1.0
}

// roundUp10 rounds v up to the next multiple of 10. Values that are
// already a multiple, up to floating point noise, are kept.
func roundUp10(v float64) float64 {
	return 10 * math.Ceil(v/10-1e-9)
}

// PotentialCutoff returns the cutoff energy, in eV, suggested by the
// pseudopotential file name for the precision p. The first line with
// the precision keyword as a word is used, and the first integer on that
// line is taken. The file can be compressed.
func PotentialCutoff(name string, p Precision) (float64, error) {
	text, err := castep.ReadFile(name)
	if err != nil {
		return 0, castep.ErrDecorate(err, "PotentialCutoff")
	}
	key := p.keyword()
	s := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for s.Scan() {
		line++
		fields := strings.Fields(s.Text())
		found := false
		for _, f := range fields {
			if strings.EqualFold(f, key) {
				found = true
				break
			}
		}
		if !found {
			continue
		}
		for _, f := range fields {
			if n, err := strconv.Atoi(f); err == nil {
				return roundUp10(float64(n) * p.factor()), nil
			}
		}
		return 0, castep.NewError(castep.MissingValue, castep.Position{Filename: name, Line: line}, "no cutoff energy on the %s line", key)
	}
	return 0, castep.NewError(castep.MissingValue, castep.Position{Filename: name}, "no %s cutoff hint", key)
}

// CutoffEnergy returns the largest cutoff energy suggested by the
// pseudopotential files of the given elements, which are looked for in
// the directory dir under their default names. It fails if any file
// is missing or has no hint.
func CutoffEnergy(elements []castep.Element, dir string, p Precision) (float64, error) {
	files := make([]string, 0, len(elements))
	for _, e := range castep.DistinctElements(elements) {
		files = append(files, e.Entry().Potential)
	}
	return cutoffFromFiles(files, dir, p)
}

func cutoffFromFiles(files []string, dir string, p Precision) (float64, error) {
	if len(files) == 0 {
		return 0, castep.NewError(castep.MissingValue, castep.Position{}, "no elements to get a cutoff energy from")
	}
	ret := 0.0
	for _, f := range files {
		c, err := PotentialCutoff(filepath.Join(dir, f), p)
		if err != nil {
			return 0, castep.ErrDecorate(err, "CutoffEnergy")
		}
		ret = max(ret, c)
	}
	return ret, nil
}
