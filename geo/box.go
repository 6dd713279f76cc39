/*
 * box.go, part of ncad.
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

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3DBox accumulates the axis-aligned box surrounding a set of vectors.
// The zero value is an empty box, with no vectors added yet. An empty box
// is different from a box with a single point, which is trivial but not empty.
type Vector3DBox struct {
	cornerMin Vector3D
	cornerMax Vector3D
	notFirst  bool
}

// NewVector3DBox returns the box enclosing the given vectors.
func NewVector3DBox(vectors ...Vector3D) Vector3DBox {
	var b Vector3DBox
	for _, v := range vectors {
		b.AddVector(v)
	}
	return b
}

// Clear empties the box.
func (b *Vector3DBox) Clear() {
	*b = Vector3DBox{}
}

// AddVector grows the box, if needed, to contain v.
func (b *Vector3DBox) AddVector(v Vector3D) {
	if !b.notFirst {
		b.cornerMin = v
		b.cornerMax = v
		b.notFirst = true
		return
	}
	b.cornerMin = Vector3D{min(b.cornerMin.X, v.X), min(b.cornerMin.Y, v.Y), min(b.cornerMin.Z, v.Z)}
	b.cornerMax = Vector3D{max(b.cornerMax.X, v.X), max(b.cornerMax.Y, v.Y), max(b.cornerMax.Z, v.Z)}
}

// AddXYZ is AddVector for the point (x, y, z).
func (b *Vector3DBox) AddXYZ(x, y, z float64) { b.AddVector(Vector3D{x, y, z}) }

// Shift translates the box by v.
func (b *Vector3DBox) Shift(v Vector3D) {
	b.cornerMin = b.cornerMin.Add(v)
	b.cornerMax = b.cornerMax.Add(v)
}

// ShiftXYZ translates the box by (x, y, z).
func (b *Vector3DBox) ShiftXYZ(x, y, z float64) { b.Shift(Vector3D{x, y, z}) }

// CornerMin returns the corner with the smallest coordinates.
func (b Vector3DBox) CornerMin() Vector3D { return b.cornerMin }

// CornerMax returns the corner with the largest coordinates.
func (b Vector3DBox) CornerMax() Vector3D { return b.cornerMax }

// CornerDiff returns the diagonal of the box, from CornerMin to CornerMax.
func (b Vector3DBox) CornerDiff() Vector3D { return b.cornerMax.Sub(b.cornerMin) }

// Center returns the middle point of the box.
func (b Vector3DBox) Center() Vector3D { return b.cornerMax.Add(b.cornerMin).Div(2) }

// IsEmpty returns true if no vector has been added since creation or the last Clear.
func (b Vector3DBox) IsEmpty() bool { return !b.notFirst }

// IsTrivial returns true if the box has collapsed to a point, within eps.
func (b Vector3DBox) IsTrivial(eps float64) bool {
	return b.cornerMin.IsEqual(b.cornerMax, eps)
}

// IsContainPoint checks pos against the closed box, component by component.
// Unlike the rest of the package, the comparison is exact and no tolerance
// is applied: a point 1e-12 outside the border is outside. Use Grow first
// if a margin is needed. An empty box contains nothing.
func (b Vector3DBox) IsContainPoint(pos Vector3D) bool {
	if b.IsEmpty() {
		return false
	}
	return pos.X >= b.cornerMin.X && pos.X <= b.cornerMax.X &&
		pos.Y >= b.cornerMin.Y && pos.Y <= b.cornerMax.Y &&
		pos.Z >= b.cornerMin.Z && pos.Z <= b.cornerMax.Z
}

// IsContainXYZ is IsContainPoint for the point (x, y, z).
func (b Vector3DBox) IsContainXYZ(x, y, z float64) bool {
	return b.IsContainPoint(Vector3D{x, y, z})
}

// Grow moves every face of a non-empty box outwards by margin.
func (b *Vector3DBox) Grow(margin float64) {
	if b.IsEmpty() {
		return
	}
	m := Vector3D{margin, margin, margin}
	b.cornerMin = b.cornerMin.Sub(m)
	b.cornerMax = b.cornerMax.Add(m)
}

// Scale multiplies both corners by s. A negative s swaps them so the box
// stays well formed.
func (b *Vector3DBox) Scale(s float64) {
	if b.IsEmpty() {
		return
	}
	c1, c2 := b.cornerMin.Scale(s), b.cornerMax.Scale(s)
	b.notFirst = false
	b.AddVector(c1)
	b.AddVector(c2)
}

// Div divides both corners by s.
func (b *Vector3DBox) Div(s float64) {
	b.Scale(1 / s)
}

// TryRound snaps the corners to integers when they are closer than eps.
func (b *Vector3DBox) TryRound(eps float64) {
	b.cornerMin = b.cornerMin.TryRound(eps)
	b.cornerMax = b.cornerMax.TryRound(eps)
}

// Corners returns the 8 corners of the box.
func (b Vector3DBox) Corners() [8]Vector3D {
	var c [8]Vector3D
	lo, hi := b.cornerMin, b.cornerMax
	for i := 0; i < 8; i++ {
		v := lo
		if i&1 != 0 {
			v.X = hi.X
		}
		if i&2 != 0 {
			v.Y = hi.Y
		}
		if i&4 != 0 {
			v.Z = hi.Z
		}
		c[i] = v
	}
	return c
}

// R3Box returns the box as a gonum r3.Box.
func (b Vector3DBox) R3Box() r3.Box {
	return r3.Box{Min: b.cornerMin.R3(), Max: b.cornerMax.R3()}
}

// String returns a readable representation of the box.
func (b Vector3DBox) String() string {
	if b.IsEmpty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%s - %s]", b.cornerMin, b.cornerMax)
}
