/*
 * pairs.go, part of ncad.
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

package atomid

// BondAtomPair is a bond given by the raw IDs of its atoms.
// The order of the atoms doesn't matter.
type BondAtomPair struct {
	ID1, ID2 uint64
}

// Equal is true if both pairs join the same two atoms, in any order.
func (p BondAtomPair) Equal(o BondAtomPair) bool {
	return (p.ID1 == o.ID1 && p.ID2 == o.ID2) || (p.ID1 == o.ID2 && p.ID2 == o.ID1)
}

// Canonical returns the pair with the smaller ID first. Equal pairs have
// identical canonical forms, so they can be used as map keys.
func (p BondAtomPair) Canonical() BondAtomPair {
	if p.ID2 < p.ID1 {
		p.ID1, p.ID2 = p.ID2, p.ID1
	}
	return p
}

// BondAtomIDPair is a bond given by the AtomIDs of its atoms.
type BondAtomIDPair struct {
	ID1, ID2 AtomID
}

// Equal is true for the same bond in either atom order.
func (p BondAtomIDPair) Equal(o BondAtomIDPair) bool {
	return IsEqualAtomPairs(p.ID1, p.ID2, o.ID1, o.ID2)
}

// Canonical puts the smaller ID first, for use as a map key.
func (p BondAtomIDPair) Canonical() BondAtomIDPair {
	if p.ID2 < p.ID1 {
		p.ID1, p.ID2 = p.ID2, p.ID1
	}
	return p
}

// Raw returns the pair as raw IDs.
func (p BondAtomIDPair) Raw() BondAtomPair {
	return BondAtomPair{uint64(p.ID1), uint64(p.ID2)}
}

// IsEqualAtomPairs is true if the bond a1-a2 is the bond b1-b2.
func IsEqualAtomPairs(a1, a2, b1, b2 AtomID) bool {
	return (a1 == b1 && a2 == b2) || (a1 == b2 && a2 == b1)
}

// IsEqualCellAtomPairs is IsEqualAtomPairs for atom indexes inside a cell.
func IsEqualCellAtomPairs(a1, a2, b1, b2 uint32) bool {
	return (a1 == b1 && a2 == b2) || (a1 == b2 && a2 == b1)
}

// PairSet is a set of bonds. Adding a bond that is already there, in
// either order, does nothing. The zero value is ready to use.
// A PairSet is not safe for concurrent use.
type PairSet struct {
	seen  map[BondAtomIDPair]struct{}
	pairs []BondAtomIDPair
}

// Add adds the bond and returns true if it was not in the set.
func (s *PairSet) Add(p BondAtomIDPair) bool {
	if s.seen == nil {
		s.seen = make(map[BondAtomIDPair]struct{})
	}
	k := p.Canonical()
	if _, ok := s.seen[k]; ok {
		return false
	}
	s.seen[k] = struct{}{}
	s.pairs = append(s.pairs, p)
	return true
}

// Has is true if the bond, in either order, is in the set.
func (s *PairSet) Has(p BondAtomIDPair) bool {
	_, ok := s.seen[p.Canonical()]
	return ok
}

func (s *PairSet) Len() int { return len(s.pairs) }

// Pairs returns the bonds in the order they were first added,
// with the atom order of that first addition.
func (s *PairSet) Pairs() []BondAtomIDPair {
	ret := make([]BondAtomIDPair, len(s.pairs))
	copy(ret, s.pairs)
	return ret
}
