/*
 * random.go, part of ncad.
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
	"math/rand/v2"
)

// RandomGenerator is a source of uniformly distributed numbers in [0,1).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomGenerator interface {
	Float64() float64
}

type processGenerator struct{}

// The top-level math/rand/v2 functions are safe for concurrent use.
func (processGenerator) Float64() float64 { return rand.Float64() }

// maxRandomTries bounds the rejection loop. A sane generator accepts about
// half of the samples, so this is only reached by a broken one.
const maxRandomTries = 1000

// RandomVectorNormalized returns a direction uniformly distributed on the unit
// sphere. Points are drawn in the [-1,1] cube and rejected when they fall
// outside the unit ball (or too close to its center). gen can be nil, in
// which case the process-wide generator is used.
func RandomVectorNormalized(gen RandomGenerator) (Vector3D, error) {
	if gen == nil {
		gen = processGenerator{}
	}
	for i := 0; i < maxRandomTries; i++ {
		v := Vector3D{2*gen.Float64() - 1, 2*gen.Float64() - 1, 2*gen.Float64() - 1}
		l2 := v.Len2()
		if l2 > 1 || l2 < DefaultEps {
			continue
		}
		return v.Normalize(), nil
	}
	return Zero, newError(ErrRandomExhausted, "", "RandomVectorNormalized")
}
