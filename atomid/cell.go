/*
 * cell.go, part of ncad.
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

import "fmt"

// CellAtomID addresses an atom in a periodic cell: Position, the index of
// the lattice position, in the low 32 bits and Atom in the high 32 bits.
type CellAtomID uint64

// NewCellAtomID packs position and atom.
func NewCellAtomID(position, atom uint32) CellAtomID {
	return CellAtomID(uint64(atom)<<32 | uint64(position))
}

func (id CellAtomID) Position() uint32 { return uint32(id) }
func (id CellAtomID) Atom() uint32     { return uint32(id >> 32) }

func (id CellAtomID) String() string {
	return fmt.Sprintf("%d/%d", id.Position(), id.Atom())
}

// CellBondID identifies a bond built in a given batch, towards the cell image
// shifted by (A, B, C) lattice vectors. Batch uses the low 32 bits, the signed
// shifts bytes 4, 5 and 6. The top byte is always zero.
type CellBondID uint64

// NewCellBondID packs the batch and the three shifts.
func NewCellBondID(batch uint32, shiftA, shiftB, shiftC int8) CellBondID {
	return CellBondID(uint64(batch) |
		uint64(uint8(shiftA))<<32 |
		uint64(uint8(shiftB))<<40 |
		uint64(uint8(shiftC))<<48)
}

func (id CellBondID) Batch() uint32 { return uint32(id) }
func (id CellBondID) ShiftA() int8  { return int8(uint8(id >> 32)) }
func (id CellBondID) ShiftB() int8  { return int8(uint8(id >> 40)) }
func (id CellBondID) ShiftC() int8  { return int8(uint8(id >> 48)) }

// Shift returns the three cell shifts.
func (id CellBondID) Shift() (a, b, c int8) {
	return id.ShiftA(), id.ShiftB(), id.ShiftC()
}

// Reverse returns the ID of the same bond seen from the other atom,
// that is, with the shifts negated.
func (id CellBondID) Reverse() CellBondID {
	a, b, c := id.Shift()
	return NewCellBondID(id.Batch(), -a, -b, -c)
}

// IsZeroShift is true for bonds inside one cell.
func (id CellBondID) IsZeroShift() bool { return id>>32 == 0 }

func (id CellBondID) String() string {
	a, b, c := id.Shift()
	return fmt.Sprintf("%d[%d %d %d]", id.Batch(), a, b, c)
}
