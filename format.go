/*
 * format.go, part of gocastep.
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
	"strconv"
	"strings"
)

//The fixed formats used by CASTEP input files. Every emitter in
//the library goes through these, so the column layout is decided here.

// Fixed returns v with prec decimals, right-aligned in width columns.
func Fixed(v float64, width, prec int) string {
	return fmt.Sprintf("%*.*f", width, prec, v)
}

// Sci returns v in scientific notation with prec decimals in the mantissa,
// right-aligned in width columns. The exponent carries neither a '+' sign
// nor leading zeros: 1e-5 with prec 3 is "1.000e-5", 2.5e10 is "2.500e10".
func Sci(v float64, width, prec int) string {
	s := strconv.FormatFloat(v, 'e', prec, 64)
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		if exp, err := strconv.Atoi(s[i+1:]); err == nil {
			s = s[:i+1] + strconv.Itoa(exp)
		}
	}
	return fmt.Sprintf("%*s", width, s)
}

// Short returns the shortest decimal text that parses back to v.
func Short(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Logical returns the CASTEP text for a logical value.
func Logical(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Right returns s right-aligned in width columns.
func Right(s string, width int) string {
	return fmt.Sprintf("%*s", width, s)
}
