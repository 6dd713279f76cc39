/*
 * operator.go, part of ncad.
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
)

// Operator3D is a linear operator in 3D, stored as a row-major 3x3 matrix:
// A(row, col) is V[3*row+col]. Operators are used for rotations and for
// changes between fractional and cartesian coordinates. When an operator
// represents a crystal basis, its rows are the basis vectors.
//
// The zero value is the empty operator (all zeros), which is what failed
// operations, such as inverting a singular matrix, return.
type Operator3D struct {
	V [9]float64
}

// Identity returns the identity operator.
func Identity() Operator3D {
	return Operator3D{V: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// NewOperator3D builds an operator from its three rows.
func NewOperator3D(row0, row1, row2 Vector3D) Operator3D {
	var op Operator3D
	op.SetRow(0, row0)
	op.SetRow(1, row1)
	op.SetRow(2, row2)
	return op
}

// Reset sets the receiver to the identity.
func (op *Operator3D) Reset() { *op = Identity() }

func checkIndex(i int) {
	if i < 0 || i > 2 {
		panic(ErrIndexOutOfRange)
	}
}

// A returns the element in the given row and column.
func (op Operator3D) A(row, col int) float64 {
	checkIndex(row)
	checkIndex(col)
	return op.V[3*row+col]
}

// SetA sets the element in row, col. It panics for indexes out of 0-2.
func (op *Operator3D) SetA(row, col int, val float64) {
	checkIndex(row)
	checkIndex(col)
	op.V[3*row+col] = val
}

// Row returns the given row as a vector.
func (op Operator3D) Row(row int) Vector3D {
	checkIndex(row)
	return Vector3D{op.V[3*row], op.V[3*row+1], op.V[3*row+2]}
}

// SetRow replaces the given row with v.
func (op *Operator3D) SetRow(row int, v Vector3D) {
	checkIndex(row)
	op.V[3*row], op.V[3*row+1], op.V[3*row+2] = v.X, v.Y, v.Z
}

// Col returns the given column as a vector.
func (op Operator3D) Col(col int) Vector3D {
	checkIndex(col)
	return Vector3D{op.V[col], op.V[3+col], op.V[6+col]}
}

// SetCol replaces the given column with v.
func (op *Operator3D) SetCol(col int, v Vector3D) {
	checkIndex(col)
	op.V[col], op.V[3+col], op.V[6+col] = v.X, v.Y, v.Z
}

// BasisVector returns the ith basis vector, the ith row.
func (op Operator3D) BasisVector(i int) Vector3D { return op.Row(i) }

// SetBasisVector sets the ith basis vector, the ith row.
func (op *Operator3D) SetBasisVector(i int, v Vector3D) { op.SetRow(i, v) }

// IsEmpty returns true for the all-zero operator.
func (op Operator3D) IsEmpty() bool {
	return op.V == [9]float64{}
}

// IsEqual compares element by element with tolerance eps.
func (op Operator3D) IsEqual(o Operator3D, eps float64) bool {
	eps = vecEps(eps)
	for i, v := range op.V {
		if math.Abs(v-o.V[i]) >= eps {
			return false
		}
	}
	return true
}

// Determinant of the operator.
func (op Operator3D) Determinant() float64 {
	a := &op.V
	return a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}

// Volume is the absolute value of the determinant, which for a basis
// operator is the volume of the cell it spans.
func (op Operator3D) Volume() float64 { return math.Abs(op.Determinant()) }

// Transpose returns the transposed operator.
func (op Operator3D) Transpose() Operator3D {
	a := op.V
	return Operator3D{V: [9]float64{a[0], a[3], a[6], a[1], a[4], a[7], a[2], a[5], a[8]}}
}

// MulVec applies the operator to v.
func (op Operator3D) MulVec(v Vector3D) Vector3D {
	a := &op.V
	return Vector3D{
		a[0]*v.X + a[1]*v.Y + a[2]*v.Z,
		a[3]*v.X + a[4]*v.Y + a[5]*v.Z,
		a[6]*v.X + a[7]*v.Y + a[8]*v.Z,
	}
}

// Mul returns the product op*o, which applies o first and then op.
func (op Operator3D) Mul(o Operator3D) Operator3D {
	var r Operator3D
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += op.V[3*i+k] * o.V[3*k+j]
			}
			r.V[3*i+j] = s
		}
	}
	return r
}

// Scale returns the operator with every element multiplied by s.
func (op Operator3D) Scale(s float64) Operator3D {
	for i := range op.V {
		op.V[i] *= s
	}
	return op
}

// Div returns the operator with every element divided by s.
func (op Operator3D) Div(s float64) Operator3D {
	for i := range op.V {
		op.V[i] /= s
	}
	return op
}

// MulIn sets op to op*o and returns it.
func (op *Operator3D) MulIn(o Operator3D) *Operator3D {
	*op = op.Mul(o)
	return op
}

// ScaleIn multiplies op by s in place and returns it.
func (op *Operator3D) ScaleIn(s float64) *Operator3D {
	*op = op.Scale(s)
	return op
}

// DivIn divides op by s in place and returns it.
func (op *Operator3D) DivIn(s float64) *Operator3D {
	*op = op.Div(s)
	return op
}

// TryRound snaps, in place, the elements closer than eps to an integer.
func (op *Operator3D) TryRound(eps float64) {
	eps = roundEps(eps)
	for i, v := range op.V {
		op.V[i] = TryRoundValue(v, eps)
	}
}

// Invert returns the inverse operator. If the determinant is closer to zero
// than eps, the empty operator and an error wrapping ErrSingular are returned.
func (op Operator3D) Invert(eps float64) (Operator3D, error) {
	eps = opEps(eps)
	det := op.Determinant()
	if math.Abs(det) < eps {
		return Operator3D{}, newError(ErrSingular, "determinant is zero", "Invert")
	}
	return op.gonumInverse()
}

// EnvelopeBox returns the axis-aligned box, in the coordinate system op
// transforms into, that contains the given box. All 8 corners are transformed,
// since under a rotation any of them can end up on the border.
func EnvelopeBox(box Vector3DBox, op Operator3D) Vector3DBox {
	var r Vector3DBox
	if box.IsEmpty() {
		return r
	}
	for _, c := range box.Corners() {
		r.AddVector(op.MulVec(c))
	}
	return r
}

// ReciprocalBasis returns the reciprocal of a basis given with the vectors
// a, b, c as rows. The rows of the result are a*=(b x c)/V, b*=(c x a)/V,
// c*=(a x b)/V, where V=a.(b x c), so that a.a*=1 and a.b*=0.
// A flat basis gives an error wrapping ErrSingular.
func ReciprocalBasis(basis Operator3D, eps float64) (Operator3D, error) {
	a, b, c := basis.Row(0), basis.Row(1), basis.Row(2)
	v := basis.Determinant()
	if math.Abs(v) < opEps(eps) {
		return Operator3D{}, newError(ErrSingular, "basis has no volume", "ReciprocalBasis")
	}
	return NewOperator3D(b.Cross(c).Div(v), c.Cross(a).Div(v), a.Cross(b).Div(v)), nil
}

// BasisVectorsOrthogonalToCoordinatePlanesNorm returns, as rows, the unit
// vectors normal to the planes (b,c), (c,a) and (a,b) of the given basis.
// Each one points to the same side of its plane as the remaining basis vector.
func BasisVectorsOrthogonalToCoordinatePlanesNorm(basis Operator3D, eps float64) (Operator3D, error) {
	rec, err := ReciprocalBasis(basis, eps)
	if err != nil {
		return rec, newError(ErrSingular, "basis has no volume", "BasisVectorsOrthogonalToCoordinatePlanesNorm")
	}
	for i := 0; i < 3; i++ {
		rec.SetRow(i, rec.Row(i).Normalize())
	}
	return rec, nil
}

// RotationAroundX returns the operator that rotates by angle radians
// around the X axis, counterclockwise looking from +X.
func RotationAroundX(angle float64) Operator3D {
	s, c := math.Sincos(angle)
	return Operator3D{V: [9]float64{1, 0, 0, 0, c, -s, 0, s, c}}
}

// RotationAroundY is RotationAroundX for the Y axis.
func RotationAroundY(angle float64) Operator3D {
	s, c := math.Sincos(angle)
	return Operator3D{V: [9]float64{c, 0, s, 0, 1, 0, -s, 0, c}}
}

// RotationAroundZ is RotationAroundX for the Z axis.
func RotationAroundZ(angle float64) Operator3D {
	s, c := math.Sincos(angle)
	return Operator3D{V: [9]float64{c, -s, 0, s, c, 0, 0, 0, 1}}
}
