/*
 * lattice.go, part of gocastep.
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
 * gocastep is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package v3

import (
	"fmt"
	"math"
)

const appzero float64 = 1e-12

//FromABC returns the lattice vectors for the lengths a, b, c and the angles
//alpha, beta, gamma (in degrees). a lies along x and b in the xy plane.
func FromABC(a, b, c, alpha, beta, gamma float64) *Matrix {
	ca, cb, cg := cosd(alpha), cosd(beta), cosd(gamma)
	sg := sind(gamma)
	cy := (ca - cb*cg) / sg
	cz := math.Sqrt(math.Max(0, 1-cb*cb-cy*cy))
	return FromRows(
		[3]float64{a, 0, 0},
		[3]float64{b * cg, b * sg, 0},
		[3]float64{c * cb, c * cy, c * cz},
	)
}

//cosd and sind clean up the rounding noise around the right angle.
func cosd(deg float64) float64 {
	r := math.Cos(deg * math.Pi / 180)
	if math.Abs(r) < appzero {
		return 0
	}
	return r
}

func sind(deg float64) float64 {
	r := math.Sin(deg * math.Pi / 180)
	if math.Abs(r) < appzero {
		return 0
	}
	return r
}

//ABC returns the lengths of the three first vectors of L and the angles
//between them, in degrees: alpha between b and c, beta between a and c,
//gamma between a and b.
func ABC(L *Matrix) (lengths, angles [3]float64) {
	for i := 0; i < 3; i++ {
		lengths[i] = L.VecNorm(i)
	}
	angle := func(i, j int) float64 {
		cos := L.Dot(i, j) / (lengths[i] * lengths[j])
		return math.Acos(math.Max(-1, math.Min(1, cos))) * 180 / math.Pi
	}
	angles = [3]float64{angle(1, 2), angle(0, 2), angle(0, 1)}
	return lengths, angles
}

//Volume returns the (positive) volume of the cell spanned by the
//three vectors of L.
func Volume(L *Matrix) float64 {
	return math.Abs(L.Det())
}

//Reciprocal returns the reciprocal basis of L, b_i = (a_j x a_k)/V, without the
//2*pi factor, so b_i . a_j is the Kronecker delta. It fails if the vectors
//of L are coplanar.
func Reciprocal(L *Matrix) (*Matrix, error) {
	V := L.Det()
	if math.Abs(V) < appzero {
		return nil, Error{fmt.Sprintf("lattice vectors are coplanar (volume %g)", V), []string{"Reciprocal"}, true}
	}
	R := Zeros(3)
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		R.VecView(i).Cross(L.VecView(j), L.VecView(k))
	}
	R.Dense.Scale(1/V, R.Dense)
	return R, nil
}
