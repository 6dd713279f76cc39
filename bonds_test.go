/*
 * bonds_test.go, part of ncad.
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
	"errors"
	"math"
	"testing"

	"github.com/rmera/ncad/atomid"
	"github.com/rmera/ncad/geo"
)

func cellAtoms(elements []string, fracts ...geo.Vector3D) []CellAtom {
	atoms := make([]CellAtom, len(fracts))
	for i, f := range fracts {
		atoms[i] = CellAtom{Label: elements[i], Element: elements[i], Fract: f, Occupancy: 1, ID: atomid.NewCellAtomID(0, uint32(i))}
	}
	return atoms
}

func TestSelfImageBonds(Te *testing.T) {
	cell, _ := NewUnitCell(2.2, 2.2, 2.2, 90, 90, 90)
	atoms := cellAtoms([]string{"Si"}, geo.Zero)
	bonds, err := AssignCellBonds(cell, atoms, 1, nil)
	if err != nil {
		Te.Fatal(err)
	}
	//6 neighbour images, but i->+x and i->-x are the same bond.
	if len(bonds) != 3 {
		Te.Fatalf("expected 3 bonds, got %d: %v", len(bonds), bonds)
	}
	for _, b := range bonds {
		if math.Abs(b.Dist-2.2) > 1e-9 || b.ID.Batch() != 1 || b.ID.IsZeroShift() {
			Te.Errorf("wrong bond %v", b)
		}
	}
}

func TestBondOrderIndependence(Te *testing.T) {
	cell, _ := NewUnitCell(3, 3, 3, 90, 90, 90)
	corner, center := geo.Zero, geo.NewVector3D(0.5, 0.5, 0.5)
	atoms := cellAtoms([]string{"Si", "Si"}, corner, center)
	reversed := []CellAtom{atoms[1], atoms[0]}
	b1, err := AssignCellBonds(cell, atoms, 0, nil)
	if err != nil {
		Te.Fatal(err)
	}
	b2, err := AssignCellBonds(cell, reversed, 0, nil)
	if err != nil {
		Te.Fatal(err)
	}
	//the center atom is bonded to the 8 corners
	if len(b1) != 8 || len(b2) != 8 {
		Te.Fatalf("expected 8 bonds, got %d and %d", len(b1), len(b2))
	}
	var set CellBondSet
	for _, b := range b1 {
		set.Add(b)
	}
	for _, b := range b2 {
		if !set.Has(b) {
			Te.Errorf("bond %v is missing when the atoms are read in the other order", b)
		}
		if set.Add(b.Reverse()) {
			Te.Errorf("the reverse of %v should already be in the set", b)
		}
	}
	if set.Len() != 8 {
		Te.Errorf("expected 8 unique bonds, got %d", set.Len())
	}
}

func TestCellBondSet(Te *testing.T) {
	a, b := atomid.NewCellAtomID(0, 1), atomid.NewCellAtomID(0, 2)
	bond := CellBond{Atom1: a, Atom2: b, ID: atomid.NewCellBondID(3, 1, 0, -1)}
	var s CellBondSet
	if !s.Add(bond) {
		Te.Error("the first bond should be added")
	}
	same := CellBond{Atom1: b, Atom2: a, ID: atomid.NewCellBondID(7, -1, 0, 1)}
	if s.Add(same) {
		Te.Error("(j,i,-s) is the bond (i,j,s), whatever the batch")
	}
	other := CellBond{Atom1: b, Atom2: a, ID: atomid.NewCellBondID(3, 1, 0, -1)}
	if !s.Add(other) {
		Te.Error("(j,i,s) is a different bond")
	}
	self := CellBond{Atom1: a, Atom2: a, ID: atomid.NewCellBondID(0, 0, 1, 0)}
	s.Add(self)
	if s.Add(self.Reverse()) {
		Te.Error("a bond between an atom and its own image is found from both images")
	}
	if s.Len() != 3 || len(s.Bonds()) != 3 {
		Te.Errorf("expected 3 bonds, got %d", s.Len())
	}
}

func TestMaxBonds(Te *testing.T) {
	cell, _ := NewUnitCell(10, 10, 10, 90, 90, 90)
	atoms := cellAtoms([]string{"H", "C", "C"}, geo.Zero, geo.NewVector3D(0.1, 0, 0), geo.NewVector3D(0, 0.11, 0))
	bonds, err := AssignCellBonds(cell, atoms, 0, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(bonds) != 2 {
		Te.Fatalf("H can only keep one bond, expected 2 bonds, got %v", bonds)
	}
	if math.Abs(bonds[0].Dist-1) > 1e-9 {
		Te.Errorf("H should keep its shortest bond, got %v", bonds[0])
	}
	for _, b := range bonds {
		if sameBond(b, atoms[0].ID, atoms[2].ID) {
			Te.Errorf("the longer H-C bond should be gone: %v", b)
		}
	}
}

func sameBond(b CellBond, a1, a2 atomid.CellAtomID) bool {
	return atomid.IsEqualCellAtomPairs(b.Atom1.Atom(), b.Atom2.Atom(), a1.Atom(), a2.Atom())
}

func TestBondErrors(Te *testing.T) {
	cell, _ := NewUnitCell(5, 5, 5, 90, 90, 90)
	atoms := cellAtoms([]string{"C", "Xx"}, geo.Zero, geo.NewVector3D(0.2, 0, 0))
	if _, err := AssignCellBonds(cell, atoms, 0, nil); !errors.Is(err, ErrUnknownElement) {
		Te.Errorf("expected ErrUnknownElement, got %v", err)
	}
	atoms = cellAtoms([]string{"C", "C"}, geo.Zero, geo.NewVector3D(0.2, 0, 0))
	atoms[1].ID = atoms[0].ID
	if _, err := AssignCellBonds(cell, atoms, 0, nil); err == nil {
		Te.Error("repeated IDs should be an error")
	}
	if _, err := AssignCellBonds(UnitCell{A: 1}, atoms, 0, nil); !errors.Is(err, ErrInvalidCell) {
		Te.Errorf("expected ErrInvalidCell, got %v", err)
	}
}

func TestStats(Te *testing.T) {
	bonds := []CellBond{{Dist: 1}, {Dist: 2}, {Dist: 3}}
	mean, std := BondLengthStats(bonds)
	if mean != 2 || math.Abs(std-1) > 1e-12 {
		Te.Errorf("expected 2 and 1, got %v %v", mean, std)
	}
	if mean, _ = BondLengthStats(nil); !math.IsNaN(mean) {
		Te.Error("no bonds have no mean")
	}
	nacl, _ := NewUnitCell(5.64, 5.64, 5.64, 90, 90, 90)
	var atoms []CellAtom
	for i := 0; i < 4; i++ {
		atoms = append(atoms, CellAtom{Element: "Na", Occupancy: 1}, CellAtom{Element: "Cl", Occupancy: 1})
	}
	d, err := Density(nacl, atoms)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(d-2.16) > 0.01 {
		Te.Errorf("NaCl density should be about 2.16, got %v", d)
	}
	if r, _ := CovalentRadius("SI1"); r != 1.11 {
		Te.Errorf("Si radius should be 1.11, got %v", r)
	}
}

func TestOutOfCellCoordinates(Te *testing.T) {
	cell, _ := NewUnitCell(10, 10, 10, 90, 90, 90)
	toxyz := cell.FractToXYZ(nil)
	for _, x := range []float64{0.95, 1.95, -0.05, -3.05} {
		atoms := cellAtoms([]string{"C", "C"}, geo.NewVector3D(x, 0.5, 0.5), geo.NewVector3D(0.1, 0.5, 0.5))
		bonds, err := AssignCellBonds(cell, atoms, 0, nil)
		if err != nil {
			Te.Fatal(err)
		}
		if len(bonds) != 1 {
			Te.Fatalf("x=%v: expected 1 bond, got %v", x, bonds)
		}
		b := bonds[0]
		if math.Abs(b.Dist-1.5) > 1e-9 {
			Te.Errorf("x=%v: wrong bond length %v", x, b.Dist)
		}
		//the stored shift must lead to the real image of the second atom.
		byID := map[atomid.CellAtomID]geo.Vector3D{atoms[0].ID: atoms[0].Fract, atoms[1].ID: atoms[1].Fract}
		sa, sb, sc := b.ID.Shift()
		shift := geo.NewVector3D(float64(sa), float64(sb), float64(sc))
		d := toxyz.MulVec(byID[b.Atom2].Add(shift).Sub(byID[b.Atom1])).Len()
		if math.Abs(d-b.Dist) > 1e-9 {
			Te.Errorf("x=%v: the shift %v gives a distance of %v, not %v", x, shift, d, b.Dist)
		}
	}
	atoms := cellAtoms([]string{"C", "C"}, geo.NewVector3D(1.95, 0.5, 0.5), geo.NewVector3D(0.1, 0.5, 0.5))
	bonds, _ := AssignCellBonds(cell, atoms, 0, nil)
	if x, _, _ := bonds[0].ID.Shift(); bonds[0].Atom1 != atoms[0].ID || x != 2 {
		Te.Errorf("expected the shift 2 from the first atom, got %v", bonds[0])
	}
	atoms[0].Fract.X = math.NaN()
	if _, err := AssignCellBonds(cell, atoms, 0, nil); err == nil {
		Te.Error("a NaN coordinate should be an error")
	}
}

func TestBondsLongerThanTheCell(Te *testing.T) {
	cell, _ := NewUnitCell(1.2, 1.2, 1.2, 90, 90, 90)
	atoms := cellAtoms([]string{"Si"}, geo.Zero)
	bonds, err := AssignCellBonds(cell, atoms, 0, nil)
	if err != nil {
		Te.Fatal(err)
	}
	//images at 1, sqrt(2), sqrt(3) and 2 cells: (6+12+8+6)/2
	if len(bonds) != 16 {
		Te.Fatalf("expected 16 bonds, got %d", len(bonds))
	}
	last := bonds[len(bonds)-1]
	if x, y, z := last.ID.Shift(); math.Abs(last.Dist-2.4) > 1e-9 || x*x+y*y+z*z != 4 {
		Te.Errorf("the longest bond should go 2 cells away, got %v", last)
	}
}

func TestPruneBonds(Te *testing.T) {
	mgo, _ := NewUnitCell(4.21, 4.21, 4.21, 90, 90, 90)
	atoms := cellAtoms([]string{"Mg", "Mg", "Mg", "Mg", "O", "O", "O", "O"},
		geo.Zero, geo.NewVector3D(0, 0.5, 0.5), geo.NewVector3D(0.5, 0, 0.5), geo.NewVector3D(0.5, 0.5, 0),
		geo.NewVector3D(0.5, 0, 0), geo.NewVector3D(0, 0.5, 0), geo.NewVector3D(0, 0, 0.5), geo.NewVector3D(0.5, 0.5, 0.5))
	tol := DefaultTolerance()
	tol.Bond(0.1)
	if !tol.PruneBonds() {
		Te.Error("pruning should be on by default")
	}
	pruned, err := AssignCellBonds(mgo, atoms, 0, tol)
	if err != nil {
		Te.Fatal(err)
	}
	if len(pruned) == 0 || len(pruned) > 8 {
		Te.Errorf("with pruning each O keeps at most 2 bonds, got %d bonds", len(pruned))
	}
	tol.PruneBonds(false)
	bonds, err := AssignCellBonds(mgo, atoms, 0, tol)
	if err != nil {
		Te.Fatal(err)
	}
	if len(bonds) != 24 {
		Te.Fatalf("rock salt MgO has 24 bonds per cell, got %d", len(bonds))
	}
	count := make(map[atomid.CellAtomID]int)
	for _, b := range bonds {
		count[b.Atom1]++
		count[b.Atom2]++
	}
	for _, at := range atoms {
		if count[at.ID] != 6 {
			Te.Errorf("%s %v has %d bonds, expected 6", at.Element, at.ID, count[at.ID])
		}
	}
}

func TestErrorDecoration(Te *testing.T) {
	_, err := NewUnitCell(-1, 1, 1, 90, 90, 90)
	e, ok := err.(Error)
	if !ok {
		Te.Fatalf("expected an Error, got %T", err)
	}
	if d := e.Decorate(""); len(d) != 2 || d[0] != "Validate" || d[1] != "NewUnitCell" {
		Te.Errorf("wrong decoration %v", d)
	}
	_, err = AssignCellBonds(UnitCell{A: 1}, nil, 0, nil)
	if d := err.(Error).Decorate(""); len(d) != 2 || d[1] != "AssignCellBonds" {
		Te.Errorf("wrong decoration %v", d)
	}
}
