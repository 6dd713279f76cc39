/*
 * bonds.go, part of ncad.
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
 */

package ncad

import (
	"fmt"
	"math"
	"sort"

	"github.com/rmera/ncad/atomid"
	"github.com/rmera/ncad/geo"
)

//atoms closer than this (A) are never bonded. From DOI:10.1186/1758-2946-3-33
const tooclose = 0.63

//fractional coordinates beyond this are surely an error.
const maxFract = 1e6

// CellAtom is an atom of a unit cell.
type CellAtom struct {
	Label     string
	Element   string
	Fract     geo.Vector3D //fractional coordinates
	Occupancy float64
	ID        atomid.CellAtomID
}

// CellBond joins Atom1 in the reference cell with Atom2 in the cell image
// displaced by the shift stored in ID.
type CellBond struct {
	Atom1 atomid.CellAtomID
	Atom2 atomid.CellAtomID
	ID    atomid.CellBondID
	Dist  float64
}

// Reverse returns the same bond seen from Atom2.
func (b CellBond) Reverse() CellBond {
	return CellBond{Atom1: b.Atom2, Atom2: b.Atom1, ID: b.ID.Reverse(), Dist: b.Dist}
}

func (b CellBond) String() string {
	return fmt.Sprintf("%v-%v %v %.3f", b.Atom1, b.Atom2, b.ID, b.Dist)
}

type cellBondKey struct {
	a1, a2 atomid.CellAtomID
	shift  [3]int8
}

// key is the same for a bond and its reverse. The batch is not part of it.
func (b CellBond) key() cellBondKey {
	x, y, z := b.ID.Shift()
	k := cellBondKey{b.Atom1, b.Atom2, [3]int8{x, y, z}}
	r := cellBondKey{b.Atom2, b.Atom1, [3]int8{-x, -y, -z}}
	if r.a1 < k.a1 || (r.a1 == k.a1 && lessShift(r.shift, k.shift)) {
		return r
	}
	return k
}

func lessShift(a, b [3]int8) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// CellBondSet keeps each periodic bond once: the bond i-j towards the image s
// is the bond j-i towards the image -s. The zero value is ready to use.
type CellBondSet struct {
	seen  map[cellBondKey]struct{}
	bonds []CellBond
}

// Add adds b, and returns false if the bond, or its reverse, was already there.
func (s *CellBondSet) Add(b CellBond) bool {
	if s.seen == nil {
		s.seen = make(map[cellBondKey]struct{})
	}
	k := b.key()
	if _, ok := s.seen[k]; ok {
		return false
	}
	s.seen[k] = struct{}{}
	s.bonds = append(s.bonds, b)
	return true
}

// Has is true if b, or its reverse, is in the set.
func (s *CellBondSet) Has(b CellBond) bool {
	_, ok := s.seen[b.key()]
	return ok
}

func (s *CellBondSet) Len() int { return len(s.bonds) }

// Bonds returns the bonds in the order they were added.
func (s *CellBondSet) Bonds() []CellBond {
	ret := make([]CellBond, len(s.bonds))
	copy(ret, s.bonds)
	return ret
}

// AssignCellBonds finds the bonds of the atoms in a periodic cell, with a simple
// distance criterium, similar to that described in DOI:10.1186/1758-2946-3-33.
// Two atoms are bonded if they are farther than 0.63 A and closer than the sum
// of their covalent radii plus tol.Bond(). Fractional coordinates outside [0,1)
// are accepted: the search is done on the positions wrapped into the reference
// cell, over as many neighbour cells as the longest possible bond can reach, and
// the shift stored in each CellBondID goes from the first atom, where it was given,
// to the image of the second one. The bonds are returned once each, tagged with
// batch, sorted by length. Unless tol.PruneBonds is false, atoms that can't have
// more than a certain number of bonds (like H) keep only their shortest ones.
// The IDs of the atoms must be all different.
func AssignCellBonds(cell UnitCell, atoms []CellAtom, batch uint32, tol *Tolerance) ([]CellBond, error) {
	tol = orDefault(tol)
	if err := cell.Validate(); err != nil {
		return nil, errDecorate(err, "AssignCellBonds")
	}
	toxyz := cell.FractToXYZ(tol)
	rec, err := cell.Reciprocal(tol)
	if err != nil {
		return nil, errDecorate(err, "AssignCellBonds")
	}
	radii := make([]float64, len(atoms))
	wrapped := make([]geo.Vector3D, len(atoms))
	cells := make([][3]int, len(atoms))
	ids := make(map[atomid.CellAtomID]int, len(atoms))
	var maxrad float64
	for i, at := range atoms {
		r, err := CovalentRadius(at.Element)
		if err != nil {
			return nil, newCError(ErrUnknownElement, fmt.Sprintf("Couldn't find the covalent radii for %s %d", at.Element, i), "AssignCellBonds")
		}
		radii[i] = r
		maxrad = math.Max(maxrad, r)
		if prev, ok := ids[at.ID]; ok {
			return nil, newCError(nil, fmt.Sprintf("atoms %d and %d share the ID %v", prev, i, at.ID), "AssignCellBonds")
		}
		ids[at.ID] = i
		for k := 0; k < 3; k++ {
			f := at.Fract.Coord(k)
			if math.IsNaN(f) || math.Abs(f) > maxFract {
				return nil, newCError(nil, fmt.Sprintf("atom %d has an unusable fractional coordinate %v", i, f), "AssignCellBonds")
			}
			fl := math.Floor(f)
			cells[i][k] = int(fl)
			wrapped[i].SetCoord(k, f-fl)
		}
	}
	//Planes of constant fractional coordinate k are 1/|rec row k| apart, so no
	//bond can reach more than n[k] cells away along k.
	maxcut := 2*maxrad + tol.Bond()
	var n [3]int
	for k := range n {
		n[k] = int(math.Ceil(maxcut * rec.Row(k).Len()))
		if n[k] < 1 {
			n[k] = 1
		}
	}
	type found struct {
		bond   CellBond
		i1, i2 int
	}
	var set CellBondSet
	var bonds []found
	for i := range atoms {
		for j := range atoms {
			cut := radii[i] + radii[j] + tol.Bond()
			for a := -n[0]; a <= n[0]; a++ {
				for b := -n[1]; b <= n[1]; b++ {
					for c := -n[2]; c <= n[2]; c++ {
						if i == j && a == 0 && b == 0 && c == 0 {
							continue
						}
						img := geo.NewVector3D(float64(a), float64(b), float64(c))
						d := toxyz.MulVec(wrapped[j].Add(img).Sub(wrapped[i])).Len()
						if d <= tooclose || d >= cut {
							continue
						}
						//back from the wrapped positions to the given ones.
						shift := [3]int{a + cells[i][0] - cells[j][0], b + cells[i][1] - cells[j][1], c + cells[i][2] - cells[j][2]}
						for _, s := range shift {
							if s < math.MinInt8 || s > math.MaxInt8 {
								return nil, newCError(nil, fmt.Sprintf("the bond between atoms %d and %d crosses %d cells", i, j, s), "AssignCellBonds")
							}
						}
						bond := CellBond{Atom1: atoms[i].ID, Atom2: atoms[j].ID, ID: atomid.NewCellBondID(batch, int8(shift[0]), int8(shift[1]), int8(shift[2])), Dist: d}
						if set.Add(bond) {
							bonds = append(bonds, found{bond, i, j})
						}
					}
				}
			}
		}
	}
	sort.SliceStable(bonds, func(i, j int) bool { return bonds[i].bond.Dist < bonds[j].bond.Dist })
	if !tol.PruneBonds() {
		ret := make([]CellBond, len(bonds))
		for i, f := range bonds {
			ret[i] = f.bond
		}
		return ret, nil
	}
	//Bonds are kept shortest first, until an atom has as many as it can have.
	count := make([]int, len(atoms))
	full := func(i int) bool {
		max := MaxBonds(atoms[i].Element)
		return max > 0 && count[i] >= max
	}
	ret := make([]CellBond, 0, len(bonds))
	for _, f := range bonds {
		if full(f.i1) || full(f.i2) {
			continue
		}
		count[f.i1]++
		count[f.i2]++
		ret = append(ret, f.bond)
	}
	return ret, nil
}
