/*
 * clone.go, part of gocastep.
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
	"golang.org/x/exp/slices"
)

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns a deep copy of D. Nothing in the copy is shared with D.
func (D *Document) Clone() *Document {
	ret := &Document{
		Lattice:      cloneLattice(D.Lattice),
		Positions:    D.Positions.Clone(),
		hasPositions: D.hasPositions,
	}
	if D.Entries != nil {
		ret.Entries = make([]Entry, len(D.Entries))
		for i, e := range D.Entries {
			ret.Entries[i] = CloneEntry(e)
		}
	}
	return ret
}

func cloneLattice(L LatticeParam) LatticeParam {
	switch l := L.(type) {
	case LatticeCart:
		l.Unit = clonePtr(l.Unit)
		return l
	case LatticeABC:
		l.Unit = clonePtr(l.Unit)
		return l
	}
	return L
}

// Clone returns a deep copy of P.
func (P IonicPositions) Clone() IonicPositions {
	P.Unit = clonePtr(P.Unit)
	P.Atoms = slices.Clone(P.Atoms)
	for i := range P.Atoms {
		P.Atoms[i].Spin = clonePtr(P.Atoms[i].Spin)
		P.Atoms[i].Mixture = clonePtr(P.Atoms[i].Mixture)
	}
	return P
}

func (H HubbardTable) clone() HubbardTable {
	H.Unit = clonePtr(H.Unit)
	H.Rows = slices.Clone(H.Rows)
	for i := range H.Rows {
		H.Rows[i].Atom = clonePtr(H.Rows[i].Atom)
		H.Rows[i].Orbitals = slices.Clone(H.Rows[i].Orbitals)
	}
	return H
}

func (E ElementTable[T]) clone() ElementTable[T] {
	E.rows = slices.Clone(E.rows)
	return E
}

// CloneEntry returns a deep copy of e. Entries that hold no slices or
// pointers are returned as they are.
func CloneEntry(e Entry) Entry {
	switch v := e.(type) {
	case EField:
		v.Unit = clonePtr(v.Unit)
		return v
	case Pressure:
		v.Unit = clonePtr(v.Unit)
		return v
	case MPSpacing:
		v.Unit = clonePtr(v.Unit)
		return v
	case BSKpointPathSpacing:
		v.Unit = clonePtr(v.Unit)
		return v
	case KpointList:
		return KpointList{slices.Clone(v.kpoints)}
	case BSKpointList:
		return BSKpointList{slices.Clone(v.kpoints)}
	case BSKpointPath:
		return slices.Clone(v)
	case IonicConstraints:
		return slices.Clone(v)
	case SymmetryOps:
		return slices.Clone(v)
	case *SpeciesMass:
		return &SpeciesMass{Unit: clonePtr(v.Unit), ElementTable: v.ElementTable.clone()}
	case *SpeciesPot:
		return &SpeciesPot{v.ElementTable.clone()}
	case *SpeciesLCAO:
		return &SpeciesLCAO{v.ElementTable.clone()}
	case *HubbardU:
		return &HubbardU{v.HubbardTable.clone()}
	case *HubbardAlpha:
		return &HubbardAlpha{v.HubbardTable.clone()}
	}
	return e
}
