/*
 * handy.go, part of gocastep.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package castep

import (
	"math"

	"golang.org/x/exp/slices"
)

func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

// DistinctElements returns the elements in list, without repetitions, in
// order of first appearance.
func DistinctElements(list []Element) []Element {
	ret := make([]Element, 0, len(list))
	for _, e := range list {
		if !slices.Contains(ret, e) {
			ret = append(ret, e)
		}
	}
	return ret
}

// TotalSpin returns the sum of the default spins of the distinct elements in list.
func TotalSpin(list []Element) int {
	var spin int
	for _, e := range DistinctElements(list) {
		spin += e.Spin()
	}
	return spin
}
