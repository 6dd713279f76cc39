/*
 * clifford.go, part of ncad.
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

package geo

import (
	"math"

	"github.com/skelterjohn/go.matrix"
)

// paravector is a Clifford (Pauli) algebra element with a real and an
// imaginary scalar, and a real and an imaginary 3D part, stored as 1x3 rows.
type paravector struct {
	Real  float64
	Imag  float64
	Vreal *matrix.DenseMatrix
	Vimag *matrix.DenseMatrix
}

func makeParavector() *paravector {
	R := new(paravector)
	R.Vreal = matrix.Zeros(1, 3)
	R.Vimag = matrix.Zeros(1, 3)
	return R
}

func paravectorFromVector(v Vector3D) *paravector {
	R := makeParavector()
	R.Vreal = matrix.MakeDenseMatrix([]float64{v.X, v.Y, v.Z}, 1, 3)
	return R
}

func (P *paravector) vector() Vector3D {
	return Vector3D{P.Vreal.Get(0, 0), P.Vreal.Get(0, 1), P.Vreal.Get(0, 2)}
}

// reverse of the paravector, imaginary parts change sign.
func (P *paravector) reverse() *paravector {
	R := new(paravector)
	R.Real = P.Real
	R.Imag = -1 * P.Imag
	R.Vreal = P.Vreal.Copy()
	R.Vimag = P.Vimag.Copy()
	R.Vimag.Scale(-1)
	return R
}

// cliProduct is the Clifford product of 2 paravectors. The imaginary vector part
// of the result is left at zero, which is enough for rotating real 3D vectors.
func cliProduct(A, B *paravector) *paravector {
	R := makeParavector()
	ar, ai := A.Vreal, A.Vimag
	br, bi := B.Vreal, B.Vimag
	R.Real = A.Real*B.Real - A.Imag*B.Imag
	R.Imag = A.Real*B.Imag + A.Imag*B.Real
	for i := 0; i < 3; i++ {
		R.Real += ar.Get(0, i)*br.Get(0, i) - ai.Get(0, i)*bi.Get(0, i)
		R.Imag += ar.Get(0, i)*bi.Get(0, i) + ai.Get(0, i)*br.Get(0, i)
	}
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		R.Vreal.Set(0, i, A.Real*br.Get(0, i)+B.Real*ar.Get(0, i)-A.Imag*bi.Get(0, i)-B.Imag*ai.Get(0, i)+
			ai.Get(0, k)*br.Get(0, j)-ai.Get(0, j)*br.Get(0, k)+ar.Get(0, k)*bi.Get(0, j)-ar.Get(0, j)*bi.Get(0, k))
	}
	return R
}

// cliRotation rotates the paravector A by angle radians around axis, which must be normalized.
func cliRotation(A *paravector, axis Vector3D, angle float64) *paravector {
	R := makeParavector()
	s, c := math.Sincos(angle / 2.0)
	R.Real = c
	for i := 0; i < 3; i++ {
		R.Vimag.Set(0, i, s*axis.Coord(i))
	}
	tmp := cliProduct(R.reverse(), A)
	return cliProduct(tmp, R)
}

func normalizedAxis(axis Vector3D, caller string) (Vector3D, error) {
	if axis.IsZero(DefaultEps) {
		return Zero, newError(ErrDegenerate, "zero rotation axis", caller)
	}
	return axis.Normalize(), nil
}

// CliRotate uses Clifford algebra to rotate v by angle radians around axis,
// counterclockwise when looking from the tip of the axis.
// axis doesn't need to be normalized, but it can't be a zero vector.
func CliRotate(v, axis Vector3D, angle float64) (Vector3D, error) {
	ax, err := normalizedAxis(axis, "CliRotate")
	if err != nil {
		return Zero, err
	}
	return cliRotation(paravectorFromVector(v), ax, angle).vector(), nil
}

// RotationOperator returns the operator that performs the same rotation as CliRotate.
// Its columns are the rotated coordinate axes.
func RotationOperator(axis Vector3D, angle float64) (Operator3D, error) {
	var op Operator3D
	ax, err := normalizedAxis(axis, "RotationOperator")
	if err != nil {
		return op, err
	}
	for i := 0; i < 3; i++ {
		var e Vector3D
		e.SetCoord(i, 1)
		op.SetCol(i, cliRotation(paravectorFromVector(e), ax, angle).vector())
	}
	op.TryRound(DefaultRoundEps)
	return op, nil
}
