/*
 * round.go, part of ncad.
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

import "math"

// Default tolerances. A negative eps given to any function of the package
// is replaced by the matching value here.
const (
	DefaultEps         = 1e-6  //coordinates, lengths and angles
	DefaultOperatorEps = 1e-9  //determinants
	DefaultRoundEps    = 1e-10 //clean-up of numerical noise
)

// PI2 is a full turn in radians.
const PI2 = 2 * math.Pi

func vecEps(eps float64) float64 {
	if eps < 0 {
		return DefaultEps
	}
	return eps
}

func opEps(eps float64) float64 {
	if eps < 0 {
		return DefaultOperatorEps
	}
	return eps
}

func roundEps(eps float64) float64 {
	if eps < 0 {
		return DefaultRoundEps
	}
	return eps
}

// ToRad converts degrees to radians.
func ToRad(alpha float64) float64 { return alpha * math.Pi / 180 }

// ToGrad converts radians to degrees.
func ToGrad(alpha float64) float64 { return alpha * 180 / math.Pi }

// AtanXY2PI returns the angle of the point (x,y) with the X axis, in [0, 2Pi).
// Unlike math.Atan2 the result is never negative.
func AtanXY2PI(y, x float64) float64 {
	a := math.Atan2(y, x)
	if a < 0 {
		a += PI2
	}
	if a >= PI2 {
		a = 0
	}
	return a
}

// TryRoundValue returns the nearest integer to val if it is closer than eps,
// val otherwise.
func TryRoundValue(val, eps float64) float64 {
	eps = roundEps(eps)
	r := math.Round(val)
	if math.Abs(val-r) < eps {
		return r
	}
	return val
}

// ToInt rounds to the nearest integer, halves away from zero.
func ToInt(val float64) int { return int(math.Round(val)) }

// ToIntUp returns the ceiling of val.
func ToIntUp(val float64) int { return int(math.Ceil(val)) }

// ToIntDown returns the floor of val.
func ToIntDown(val float64) int { return int(math.Floor(val)) }

// Sign returns -1, 0 or 1. Values closer to zero than eps are 0.
func Sign(val, eps float64) float64 {
	eps = vecEps(eps)
	switch {
	case math.Abs(val) < eps:
		return 0
	case val < 0:
		return -1
	}
	return 1
}

func isZero(val, eps float64) bool {
	return math.Abs(val) < eps
}
