/*
 * miller.go, part of ncad.
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

package geo

// MillerIndex is the (h k l) index of a family of crystal planes.
// The zero value is the empty index, one that was never assigned,
// which is not the same as the assigned index (0 0 0).
type MillerIndex struct {
	H, K, L int
	set     bool
}

// NewMillerIndex returns the assigned index (h k l).
func NewMillerIndex(h, k, l int) MillerIndex {
	return MillerIndex{H: h, K: k, L: l, set: true}
}

// Set assigns the index.
func (m *MillerIndex) Set(h, k, l int) {
	*m = NewMillerIndex(h, k, l)
}

// Clear makes the index empty again.
func (m *MillerIndex) Clear() { *m = MillerIndex{} }

// IsEmpty is true if no index has been assigned.
func (m MillerIndex) IsEmpty() bool { return !m.set }

// IsZero is true for the assigned index (0 0 0), never for the empty one.
func (m MillerIndex) IsZero() bool {
	return m.set && m.H == 0 && m.K == 0 && m.L == 0
}

// IsZeroZero is true for an assigned index with h=k=0, whatever l is.
func (m MillerIndex) IsZeroZero() bool {
	return m.set && m.H == 0 && m.K == 0
}

// Equal compares h, k and l. An empty index is only equal to another empty one.
func (m MillerIndex) Equal(o MillerIndex) bool {
	if m.set != o.set {
		return false
	}
	return !m.set || (m.H == o.H && m.K == o.K && m.L == o.L)
}

// Vector returns (h, k, l) as floats.
func (m MillerIndex) Vector() Vector3D {
	return Vector3D{float64(m.H), float64(m.K), float64(m.L)}
}
