/*
 * handy.go, part of ncad.
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
	"strings"

	"gonum.org/v1/gonum/floats"
)

// IsInsideBlockXYZ returns true if pos is in the axis-aligned block between
// from and to, borders included. from and to can be any two opposite corners.
func IsInsideBlockXYZ(pos, from, to Vector3D) bool {
	in := func(p, a, b float64) bool {
		if a > b {
			a, b = b, a
		}
		return p >= a && p <= b
	}
	return in(pos.X, from.X, to.X) && in(pos.Y, from.Y, to.Y) && in(pos.Z, from.Z, to.Z)
}

func projections(vectors []Vector3D, dir Vector3D) []float64 {
	p := make([]float64, len(vectors))
	for i, v := range vectors {
		p[i] = ProjectionLen(v, dir)
	}
	return p
}

// MinInDirection returns the smallest signed projection on dir of the given
// vectors. Panics if vectors is empty.
func MinInDirection(vectors []Vector3D, dir Vector3D) float64 {
	return floats.Min(projections(vectors, dir))
}

// MaxInDirection returns the largest signed projection on dir of the given
// vectors. Panics if vectors is empty.
func MaxInDirection(vectors []Vector3D, dir Vector3D) float64 {
	return floats.Max(projections(vectors, dir))
}

// IsInsideHexagon tells whether the XY projection of point lies in the
// regular hexagon of the given side centered at the origin, with two of its
// vertices on the X axis. Borders count as inside.
func IsInsideHexagon(side float64, point Vector3D) bool {
	x := math.Abs(point.X)
	y := math.Abs(point.Y)
	h := side * math.Sqrt(3) / 2
	if y > h {
		return false
	}
	return math.Sqrt(3)*x+y <= math.Sqrt(3)*side
}

// AxisVector returns the unit vector for an axis name: "X", "Y" or "Z",
// case insensitive, optionally preceded by a sign.
func AxisVector(axis string) (Vector3D, error) {
	s := strings.ToUpper(strings.TrimSpace(axis))
	sign := 1.0
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	var v Vector3D
	switch s {
	case "X":
		v = Vector3D{1, 0, 0}
	case "Y":
		v = Vector3D{0, 1, 0}
	case "Z":
		v = Vector3D{0, 0, 1}
	default:
		return Zero, newError(ErrParse, "unknown axis "+axis, "AxisVector")
	}
	return v.Scale(sign), nil
}
