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

/*
Package atomid implements the packed 64-bit identifiers used to key atoms,
cell atoms and periodic bonds.

An AtomID addresses an atom by component, cell (column, row and plane) and
atom index, all packed in one uint64 with the layout, from the least
significant bit:

	Atom       0-9   (10 bits)
	Col        10-21 (12 bits)
	Reserve    22-31 (10 bits, unused)
	Row        32-42 (11 bits)
	Plane      43-53 (11 bits)
	Component  54-63 (10 bits)

The layout is bit-compatible with identifiers persisted by older tools, so it
must not change. The all-ones value of a field marks it as unknown, and
component 0x3FE marks a manually assigned component.

CellAtomID and CellBondID are the equivalent keys for atoms in one periodic
cell and for bonds between cell images. Two identifiers are the same iff their
raw values are equal. Bond pairs, on the other hand, are unordered.
*/
package atomid
