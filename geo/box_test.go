/*
 * box_test.go, part of ncad.
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
	"math"
	"testing"
)

func TestBoxLifecycle(Te *testing.T) {
	var b Vector3DBox
	if !b.IsEmpty() {
		Te.Error("the zero box is empty")
	}
	if b.IsContainPoint(Zero) {
		Te.Error("an empty box contains nothing, not even the origin")
	}
	b.AddXYZ(1, 2, 3)
	if b.IsEmpty() || !b.IsTrivial(-1) {
		Te.Errorf("a single point box is trivial but not empty: %v", b)
	}
	if !b.IsContainXYZ(1, 2, 3) {
		Te.Error("the box contains its only point")
	}
	b.AddVector(NewVector3D(-1, 4, 0))
	if b.CornerMin() != NewVector3D(-1, 2, 0) || b.CornerMax() != NewVector3D(1, 4, 3) {
		Te.Errorf("wrong corners %v", b)
	}
	if c := b.Center(); c != NewVector3D(0, 3, 1.5) {
		Te.Errorf("wrong center %v", c)
	}
	b.ShiftXYZ(1, 0, 0)
	if b.CornerMin().X != 0 || b.CornerMax().X != 2 {
		Te.Errorf("shift failed %v", b)
	}
	b.Clear()
	if !b.IsEmpty() {
		Te.Error("Clear should empty the box")
	}
}

func TestBoxContainmentIsExact(Te *testing.T) {
	b := NewVector3DBox(Zero, NewVector3D(1, 1, 1))
	if !b.IsContainPoint(NewVector3D(1, 1, 1)) || !b.IsContainPoint(Zero) {
		Te.Error("the borders belong to the box")
	}
	out := NewVector3D(1+1e-12, 0.5, 0.5)
	if b.IsContainPoint(out) {
		Te.Error("a point just outside the border is outside, there is no tolerance")
	}
	if !out.IsEqual(NewVector3D(1, 0.5, 0.5), -1) {
		Te.Error("while the same point is equal to the border point under the default eps")
	}
	b.Grow(1e-9)
	if !b.IsContainPoint(out) {
		Te.Error("a grown box should contain the point")
	}
}

func TestBoxScale(Te *testing.T) {
	b := NewVector3DBox(NewVector3D(1, 2, 3), NewVector3D(2, 3, 4))
	b.Scale(-2)
	if b.CornerMin() != NewVector3D(-4, -6, -8) || b.CornerMax() != NewVector3D(-2, -4, -6) {
		Te.Errorf("negative scaling should keep the corners ordered, got %v", b)
	}
	b.Div(-2)
	if b.CornerMin() != NewVector3D(1, 2, 3) {
		Te.Errorf("dividing should undo the scaling, got %v", b)
	}
	corners := b.Corners()
	seen := NewVector3DBox(corners[:]...)
	if seen != b {
		Te.Errorf("the corners should span the box: %v", corners)
	}
	r := b.R3Box()
	if r.Max.X-r.Min.X != 1 || math.Abs(r.Max.Z-4) > 1e-12 {
		Te.Errorf("r3 box differs: %v", r)
	}
}
