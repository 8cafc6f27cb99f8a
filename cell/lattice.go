/*
 * lattice.go, part of gocastep.
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

package cell

import (
	"math"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/grammar"
	"github.com/rmera/gocastep/units"
	"github.com/rmera/gocastep/v3"
)

// LatticeParam is the unit cell, given either as vectors (LATTICE_CART)
// or as lengths and angles (LATTICE_ABC).
type LatticeParam interface {
	castep.Emitter
	//Vectors returns the lattice vectors a, b and c, one per row, in Angstrom.
	Vectors() *v3.Matrix
	//LengthUnit returns the unit in which the lattice is written.
	LengthUnit() units.Length
}

// LatticeCart is a LATTICE_CART block. A nil Unit means Angstrom.
type LatticeCart struct {
	Unit    *units.Length
	A, B, C [3]float64
}

// LatticeABC is a LATTICE_ABC block. A nil Unit means Angstrom.
type LatticeABC struct {
	Unit               *units.Length
	A, B, C            float64
	Alpha, Beta, Gamma units.Degrees
}

func (L LatticeCart) LengthUnit() units.Length { return resolved(L.Unit) }
func (L LatticeABC) LengthUnit() units.Length  { return resolved(L.Unit) }

func (L LatticeCart) Vectors() *v3.Matrix {
	M := v3.FromRows(L.A, L.B, L.C)
	M.Dense.Scale(L.LengthUnit().Angstroms(), M.Dense)
	return M
}

func (L LatticeABC) Vectors() *v3.Matrix {
	f := L.LengthUnit().Angstroms()
	return v3.FromABC(L.A*f, L.B*f, L.C*f, float64(L.Alpha), float64(L.Beta), float64(L.Gamma))
}

// Cart returns the same lattice as a LATTICE_CART, in the same unit.
func (L LatticeABC) Cart() LatticeCart {
	M := v3.FromABC(L.A, L.B, L.C, float64(L.Alpha), float64(L.Beta), float64(L.Gamma))
	return LatticeCart{Unit: L.Unit, A: M.Vec(0), B: M.Vec(1), C: M.Vec(2)}
}

// ABC returns the same lattice as a LATTICE_ABC, in the same unit.
func (L LatticeCart) ABC() LatticeABC {
	lengths, angles := v3.ABC(v3.FromRows(L.A, L.B, L.C))
	return LatticeABC{
		Unit:  L.Unit,
		A:     lengths[0],
		B:     lengths[1],
		C:     lengths[2],
		Alpha: units.Degrees(angles[0]),
		Beta:  units.Degrees(angles[1]),
		Gamma: units.Degrees(angles[2]),
	}
}

func (L LatticeCart) Emit() string {
	return blockText("LATTICE_CART", unitLine(L.Unit), vecRow(L.A), vecRow(L.B), vecRow(L.C))
}

func (L LatticeABC) Emit() string {
	return blockText("LATTICE_ABC", unitLine(L.Unit),
		vecRow([3]float64{L.A, L.B, L.C}),
		vecRow([3]float64{float64(L.Alpha), float64(L.Beta), float64(L.Gamma)}))
}

func vecRow(v [3]float64) string {
	return castep.Fixed(v[0], 20, 15) + " " + castep.Fixed(v[1], 20, 15) + " " + castep.Fixed(v[2], 20, 15)
}

// Volume returns the volume of the cell in cubic Angstrom.
func Volume(L LatticeParam) float64 {
	return v3.Volume(L.Vectors())
}

// Reciprocal returns the reciprocal lattice vectors, including the 2*pi
// factor, in 1/Angstrom. It fails with OutOfRange if the cell has no volume.
func Reciprocal(L LatticeParam) (*v3.Matrix, error) {
	R, err := reciprocal(L)
	if err != nil {
		return nil, castep.ErrDecorate(err, "Reciprocal")
	}
	R.Dense.Scale(2*math.Pi, R.Dense)
	return R, nil
}

func reciprocal(L LatticeParam) (*v3.Matrix, error) {
	R, err := v3.Reciprocal(L.Vectors())
	if err != nil {
		return nil, castep.NewError(castep.OutOfRange, castep.Position{}, "%s", err.Error())
	}
	return R, nil
}

// MPGridFromSpacing returns the Monkhorst-Pack grid that samples the
// reciprocal cell of L with points at most spacing apart. As in CASTEP,
// the spacing is measured without the 2*pi factor. Each
// dimension gets at least one point. A non-positive spacing gives 1 1 1.
func MPGridFromSpacing(L LatticeParam, spacing units.Quantity[units.InvLength]) (MPGrid, error) {
	s := spacing.Value * spacing.Resolved().PerAngstrom()
	grid := MPGrid{1, 1, 1}
	if s <= 0 {
		return grid, nil
	}
	R, err := reciprocal(L)
	if err != nil {
		return grid, castep.ErrDecorate(err, "MPGridFromSpacing")
	}
	for i := range grid {
		//the epsilon keeps an exact multiple from adding one more point.
		n := int(math.Ceil(R.VecNorm(i)/s - 1e-9))
		grid[i] = max(1, n)
	}
	return grid, nil
}

// checkVolume fails with OutOfRange if the three vectors of L are
// (nearly) coplanar, as happens with angles that can't close a cell.
func checkVolume(L LatticeParam, pos castep.Position) error {
	M := L.Vectors()
	scale := M.VecNorm(0) * M.VecNorm(1) * M.VecNorm(2)
	if v := Volume(L); scale == 0 || v <= 1e-6*scale {
		return castep.NewError(castep.OutOfRange, pos, "the lattice vectors span no volume")
	}
	return nil
}

func parseLatticeCart(b *grammar.Block) (LatticeParam, error) {
	u, rows, err := unitRow(b.Rows, units.ParseLength)
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseLatticeCart")
	}
	if len(rows) != 3 {
		return nil, castep.NewError(castep.WrongRowLength, b.Pos, "LATTICE_CART needs 3 vectors, %d given", len(rows))
	}
	L := LatticeCart{Unit: u}
	for i, v := range []*[3]float64{&L.A, &L.B, &L.C} {
		if *v, err = row3(rows[i]); err != nil {
			return nil, castep.ErrDecorate(err, "parseLatticeCart")
		}
	}
	if err := checkVolume(L, b.Pos); err != nil {
		return nil, castep.ErrDecorate(err, "parseLatticeCart")
	}
	return L, nil
}

func parseLatticeABC(b *grammar.Block) (LatticeParam, error) {
	u, rows, err := unitRow(b.Rows, units.ParseLength)
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseLatticeABC")
	}
	if len(rows) != 2 {
		return nil, castep.NewError(castep.WrongRowLength, b.Pos, "LATTICE_ABC needs 2 rows, %d given", len(rows))
	}
	lengths, err := row3(rows[0])
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseLatticeABC")
	}
	angles, err := row3(rows[1])
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseLatticeABC")
	}
	for _, l := range lengths {
		if l <= 0 {
			return nil, castep.NewError(castep.OutOfRange, rows[0].Pos, "lattice length %g is not positive", l)
		}
	}
	for _, a := range angles {
		if a <= 0 || a >= 180 {
			return nil, castep.NewError(castep.OutOfRange, rows[1].Pos, "lattice angle %g out of range", a)
		}
	}
	L := LatticeABC{
		Unit:  u,
		A:     lengths[0],
		B:     lengths[1],
		C:     lengths[2],
		Alpha: units.Degrees(angles[0]),
		Beta:  units.Degrees(angles[1]),
		Gamma: units.Degrees(angles[2]),
	}
	//each angle must be smaller than the sum of the other two, and the
	//three together below 360, or the metric is not positive definite.
	if err := checkVolume(L, rows[1].Pos); err != nil {
		return nil, castep.ErrDecorate(err, "parseLatticeABC")
	}
	return L, nil
}
