/*
 * doc.go, part of ncad.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*
Package ncad builds crystal descriptions on top of the geo and atomid kernels.

	**ncad Capabilities**

    Converts unit cell parameters (a, b, c, alpha, beta, gamma) into a basis,
	and coordinates between fractional and cartesian systems.

    Builds reciprocal bases, the planes of a Miller index family, their
	interplanar spacing, and the rotation that brings a plane normal onto
	a given direction.

    Finds the bonds in a periodic cell from covalent radii, scanning the
	neighbouring cell images. Every bond is reported once, no matter from
	which end or image it is found.

    Computes densities and bond length statistics.

Subpackages:

    geo: vectors, operators, planes, lines, Miller indexes and boxes.
    atomid: packed 64 bit identifiers for atoms, cell atoms and bonds.
    celldata: reads and writes the .cd cell data format, also compressed.
    bondgraph: bond graphs, fragments and component assignment.

Tolerances are never global: they travel in a *Tolerance, which can be nil
to use the defaults.
*/
package ncad
