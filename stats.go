/*
 * stats.go, part of ncad.
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

	"gonum.org/v1/gonum/stat"
)

// BondLengthStats returns the mean and the standard deviation of the bond lengths.
// Both are NaN for no bonds, and the deviation is NaN for only one.
func BondLengthStats(bonds []CellBond) (mean, std float64) {
	if len(bonds) == 0 {
		return math.NaN(), math.NaN()
	}
	d := make([]float64, len(bonds))
	for i, b := range bonds {
		d[i] = b.Dist
	}
	return stat.MeanStdDev(d, nil)
}

//amu/A^3 to g/cm^3
const amuA3ToGcm3 = 1.66053907

// Density returns the density of the cell contents, in g/cm^3. Each atom counts
// with its occupancy.
func Density(cell UnitCell, atoms []CellAtom) (float64, error) {
	v := cell.Volume()
	if v <= 0 {
		return 0, newCError(ErrInvalidCell, fmt.Sprintf("cell %v has no volume", cell), "Density")
	}
	var mass float64
	for _, at := range atoms {
		m, err := Mass(at.Element)
		if err != nil {
			return 0, errDecorate(err, "Density")
		}
		mass += m * at.Occupancy
	}
	return mass * amuA3ToGcm3 / v, nil
}
