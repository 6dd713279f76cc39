/*
 * tolerance.go, part of ncad.
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

import "github.com/rmera/ncad/geo"

// DefaultBondTolerance is added to the sum of covalent radii when
// looking for bonds. From DOI:10.1186/1758-2946-3-33
const DefaultBondTolerance = 0.45

// Tolerance contains the tolerances used by the functions of the package.
// Set it once, and then share it. A nil *Tolerance gives the defaults.
type Tolerance struct {
	vector   float64
	operator float64
	round    float64
	bond     float64
	noprune  bool
}

// DefaultTolerance returns the geo package defaults, and DefaultBondTolerance.
func DefaultTolerance() *Tolerance {
	t := new(Tolerance)
	t.vector = geo.DefaultEps
	t.operator = geo.DefaultOperatorEps
	t.round = geo.DefaultRoundEps
	t.bond = DefaultBondTolerance
	return t
}

func orDefault(t *Tolerance) *Tolerance {
	if t == nil {
		return DefaultTolerance()
	}
	return t
}

//Returns the tolerance for comparing vectors, lengths and angles,
//and sets it to a new value, if a non-negative one is given.
func (t *Tolerance) Vector(eps ...float64) float64 {
	if len(eps) > 0 && eps[0] >= 0 {
		t.vector = eps[0]
	}
	return t.vector
}

//Returns the tolerance for determinants,
//and sets it to a new value, if a non-negative one is given.
func (t *Tolerance) Operator(eps ...float64) float64 {
	if len(eps) > 0 && eps[0] >= 0 {
		t.operator = eps[0]
	}
	return t.operator
}

//Returns the distance to an integer under which values are rounded,
//and sets it to a new value, if a non-negative one is given.
func (t *Tolerance) Round(eps ...float64) float64 {
	if len(eps) > 0 && eps[0] >= 0 {
		t.round = eps[0]
	}
	return t.round
}

//Returns the length, in A, added to the sum of covalent radii
//to decide whether 2 atoms are bonded. It sets it to a new value, if a non-negative one
//is given.
func (t *Tolerance) Bond(tol ...float64) float64 {
	if len(tol) > 0 && tol[0] >= 0 {
		t.bond = tol[0]
	}
	return t.bond
}

//Returns whether AssignCellBonds limits the bonds of atoms with a maximum number
//of them (H, C, O, halogens), and sets it if a value is given. The limits are
//molecular, in ionic crystals like rock-salt MgO the O has 6 bonds, so pruning
//should be disabled there. It is enabled by default.
func (t *Tolerance) PruneBonds(prune ...bool) bool {
	if len(prune) > 0 {
		t.noprune = !prune[0]
	}
	return !t.noprune
}
