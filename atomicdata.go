/*
 * atomicdata.go, part of ncad.
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
	"strings"
)

//A map for assigning mass to elements.
var symbolMass = map[string]float64{
	"H":  1.008,
	"Li": 6.94,
	"B":  10.81,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Al": 26.98,
	"Cl": 35.45,
	"Na": 22.99,
	"Ti": 47.87,
	"Cu": 63.55,
	"Zn": 65.38,
	"Ga": 69.72,
	"Ge": 72.63,
	"As": 74.92,
	"Co": 58.93,
	"Ni": 58.69,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"Ag": 107.87,
	"Au": 196.97,
	"Pt": 195.08,
	"I":  126.90,
}

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"Li": 1.28,
	"B":  0.84,
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Al": 1.21,
	"Cl": 1.02,
	"Na": 1.66,
	"Ti": 1.60,
	"Cu": 1.32,
	"Zn": 1.22,
	"Ga": 1.22,
	"Ge": 1.20,
	"As": 1.19,
	"Co": 1.5,  // hs
	"Fe": 1.52, //hs
	"Mn": 1.61, //hs
	"Ni": 1.24,
	"Cr": 1.39,
	"Si": 1.11,
	"Be": 0.96,
	"F":  0.57,
	"Br": 1.2,
	"Ag": 1.45,
	"Au": 1.36,
	"Pt": 1.36,
	"I":  1.39,
}

//A map for checking that atoms don't
//have too many bonds. Elements not in the map
//are not checked. The values are for covalent molecules and
//networks (SiO2); in ionic crystals they are too low, see
//Tolerance.PruneBonds.
var symbolMaxBonds = map[string]int{
	"H":  1,
	"C":  4,
	"O":  2,
	"F":  1,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}

// normalizeSymbol turns "SI", "si" or "Si1" into "Si".
func normalizeSymbol(symbol string) string {
	s := strings.TrimSpace(symbol)
	s = strings.TrimRightFunc(s, func(r rune) bool { return r >= '0' && r <= '9' || r == '+' || r == '-' })
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// CovalentRadius returns the covalent radius of the element, in A.
func CovalentRadius(symbol string) (float64, error) {
	r, ok := symbolCovrad[normalizeSymbol(symbol)]
	if !ok {
		return 0, newCError(ErrUnknownElement, fmt.Sprintf("no covalent radius for %q", symbol), "CovalentRadius")
	}
	return r, nil
}

// Mass returns the atomic mass of the element, in g/mol.
func Mass(symbol string) (float64, error) {
	m, ok := symbolMass[normalizeSymbol(symbol)]
	if !ok {
		return 0, newCError(ErrUnknownElement, fmt.Sprintf("no mass for %q", symbol), "Mass")
	}
	return m, nil
}

// MaxBonds returns the largest number of bonds the element can form,
// or 0 if there is no limit.
func MaxBonds(symbol string) int {
	return symbolMaxBonds[normalizeSymbol(symbol)]
}
