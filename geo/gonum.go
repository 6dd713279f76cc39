/*
 * gonum.go, part of ncad.
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

	"gonum.org/v1/gonum/mat"
)

// Dense returns a new 3x3 gonum matrix with the elements of op.
func (op Operator3D) Dense() *mat.Dense {
	d := make([]float64, 9)
	copy(d, op.V[:])
	return mat.NewDense(3, 3, d)
}

// OperatorFromDense builds an operator from a 3x3 matrix. It panics
// with ErrIndexOutOfRange for any other shape.
func OperatorFromDense(m mat.Matrix) Operator3D {
	var op Operator3D
	r, c := m.Dims()
	if r != 3 || c != 3 {
		panic(ErrIndexOutOfRange)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			op.V[3*i+j] = m.At(i, j)
		}
	}
	return op
}

func (op Operator3D) gonumInverse() (Operator3D, error) {
	inv := mat.NewDense(3, 3, nil)
	var ierr error
	err := maybe(func() { ierr = inv.Inverse(op.Dense()) }, "Invert")
	if err == nil && ierr != nil {
		//an ill-conditioned but finite inverse is still returned.
		if c, ok := ierr.(mat.Condition); !ok || math.IsInf(float64(c), 1) {
			err = newError(ErrSingular, ierr.Error(), "Invert")
		}
	}
	if err != nil {
		return Operator3D{}, err
	}
	return OperatorFromDense(inv), nil
}
