/*
 * kpoints.go, part of gocastep.
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
	"fmt"

	"gonum.org/v1/gonum/floats"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/grammar"
	"github.com/rmera/gocastep/units"
)

// Kpoint is a point in fractional reciprocal coordinates and its weight.
type Kpoint struct {
	Coord  [3]float64
	Weight float64
}

func (K Kpoint) row() string {
	return castep.Fixed(K.Coord[0], 20, 16) + castep.Fixed(K.Coord[1], 20, 16) +
		castep.Fixed(K.Coord[2], 20, 16) + castep.Fixed(K.Weight, 20, 16)
}

type kpoints []Kpoint

// WeightSum returns the sum of the weights. CASTEP normalizes them, so
// it is not required to be 1.
func (K kpoints) WeightSum() float64 {
	w := make([]float64, len(K))
	for i, k := range K {
		w[i] = k.Weight
	}
	return floats.Sum(w)
}

func (K kpoints) rows() []string {
	ret := make([]string, len(K))
	for i, k := range K {
		ret[i] = k.row()
	}
	return ret
}

func parseKpoints(b *grammar.Block) (kpoints, error) {
	ret := make(kpoints, 0, len(b.Rows))
	for _, r := range b.Rows {
		if err := r.Exactly(4); err != nil {
			return nil, err
		}
		v, err := r.Reals(0, 4)
		if err != nil {
			return nil, err
		}
		ret = append(ret, Kpoint{Coord: [3]float64{v[0], v[1], v[2]}, Weight: v[3]})
	}
	return ret, nil
}

// KpointList is a KPOINT_LIST block.
type KpointList struct {
	kpoints
}

func NewKpointList(points ...Kpoint) KpointList { return KpointList{kpoints(points)} }

// Points returns the k-points of the list.
func (K KpointList) Points() []Kpoint { return K.kpoints }

func (KpointList) Kind() EntryKind { return KindKpoints }
func (K KpointList) Emit() string  { return blockText("KPOINT_LIST", K.rows()...) }

// MPGrid is a Monkhorst-Pack grid, KPOINT_MP_GRID.
type MPGrid [3]int

func (MPGrid) Kind() EntryKind { return KindKpoints }
func (M MPGrid) Emit() string {
	return fieldText("KPOINT_MP_GRID", fmt.Sprintf("%d %d %d", M[0], M[1], M[2]))
}

// MPSpacing is KPOINT_MP_SPACING.
type MPSpacing units.Quantity[units.InvLength]

func (MPSpacing) Kind() EntryKind { return KindKpoints }
func (M MPSpacing) Emit() string {
	q := units.Quantity[units.InvLength](M)
	return fieldText("KPOINT_MP_SPACING", castep.Short(q.Value)+q.Suffix(false))
}

// MPOffset is KPOINT_MP_OFFSET.
type MPOffset [3]float64

func (MPOffset) Kind() EntryKind { return KindMPOffset }
func (M MPOffset) Emit() string {
	return fieldText("KPOINT_MP_OFFSET", castep.Fixed(M[0], 20, 16)+castep.Fixed(M[1], 20, 16)+castep.Fixed(M[2], 20, 16))
}

// BSKpointList is a BS_KPOINT_LIST block, the k-points of a
// band structure calculation.
type BSKpointList struct {
	kpoints
}

func NewBSKpointList(points ...Kpoint) BSKpointList { return BSKpointList{kpoints(points)} }

func (K BSKpointList) Points() []Kpoint { return K.kpoints }

func (BSKpointList) Kind() EntryKind { return KindBSKpoints }
func (K BSKpointList) Emit() string  { return blockText("BS_KPOINT_LIST", K.rows()...) }

// BSKpointPath is a BS_KPOINT_PATH block, the vertices of a path
// in fractional reciprocal coordinates.
type BSKpointPath [][3]float64

func (BSKpointPath) Kind() EntryKind { return KindBSKpoints }
func (K BSKpointPath) Emit() string {
	rows := make([]string, len(K))
	for i, p := range K {
		rows[i] = castep.Fixed(p[0], 20, 16) + castep.Fixed(p[1], 20, 16) + castep.Fixed(p[2], 20, 16)
	}
	return blockText("BS_KPOINT_PATH", rows...)
}

// BSKpointPathSpacing is BS_KPOINT_PATH_SPACING.
type BSKpointPathSpacing units.Quantity[units.InvLength]

func (BSKpointPathSpacing) Kind() EntryKind { return KindBSKpoints }
func (K BSKpointPathSpacing) Emit() string {
	q := units.Quantity[units.InvLength](K)
	return fieldText("BS_KPOINT_PATH_SPACING", castep.Short(q.Value)+q.Suffix(false))
}

func parseKpointList(b *grammar.Block) (Entry, error) {
	k, err := parseKpoints(b)
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseKpointList")
	}
	return KpointList{k}, nil
}

func parseBSKpointList(b *grammar.Block) (Entry, error) {
	k, err := parseKpoints(b)
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseBSKpointList")
	}
	return BSKpointList{k}, nil
}

func parseBSKpointPath(b *grammar.Block) (Entry, error) {
	ret := make(BSKpointPath, 0, len(b.Rows))
	for _, r := range b.Rows {
		v, err := row3(r)
		if err != nil {
			return nil, castep.ErrDecorate(err, "parseBSKpointPath")
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func parseMPGrid(f *grammar.Field) (Entry, error) {
	v, err := f.Ints(3)
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseMPGrid")
	}
	var M MPGrid
	for i, n := range v {
		if n < 1 {
			return nil, castep.NewError(castep.OutOfRange, f.Values[i].Pos, "KPOINT_MP_GRID values must be positive, got %d", n)
		}
		M[i] = int(n)
	}
	return M, nil
}

func parseSpacing(f *grammar.Field) (units.Quantity[units.InvLength], error) {
	v, ut, err := f.RealUnit()
	if err != nil {
		return units.Quantity[units.InvLength]{}, err
	}
	q := units.Q[units.InvLength](v)
	if ut != nil {
		u, err := grammar.Unit(*ut, units.ParseInvLength)
		if err != nil {
			return q, err
		}
		q.Unit = &u
	}
	return q, nil
}

func parseMPSpacing(f *grammar.Field) (Entry, error) {
	q, err := parseSpacing(f)
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseMPSpacing")
	}
	return MPSpacing(q), nil
}

func parseBSPathSpacing(f *grammar.Field) (Entry, error) {
	q, err := parseSpacing(f)
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseBSPathSpacing")
	}
	return BSKpointPathSpacing(q), nil
}

func parseMPOffset(f *grammar.Field) (Entry, error) {
	v, err := field3(f)
	if err != nil {
		return nil, castep.ErrDecorate(err, "parseMPOffset")
	}
	return MPOffset(v), nil
}
