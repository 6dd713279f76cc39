/*
 * vector.go, part of ncad.
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

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3D is a point or a direction in 3D space.
type Vector3D struct {
	X, Y, Z float64
}

// Zero is the null vector.
var Zero = Vector3D{}

// NewVector3D returns the vector (x,y,z).
func NewVector3D(x, y, z float64) Vector3D {
	return Vector3D{x, y, z}
}

// Set sets all three coordinates and returns the receiver.
func (v *Vector3D) Set(x, y, z float64) *Vector3D {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Coord returns the ith coordinate (0 for X, 1 for Y, 2 for Z).
func (v Vector3D) Coord(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(ErrIndexOutOfRange)
}

// SetCoord sets the ith coordinate to val.
func (v *Vector3D) SetCoord(i int, val float64) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	default:
		panic(ErrIndexOutOfRange)
	}
}

// Add returns v+w.
func (v Vector3D) Add(w Vector3D) Vector3D { return Vector3D{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v-w.
func (v Vector3D) Sub(w Vector3D) Vector3D { return Vector3D{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v multiplied by s.
func (v Vector3D) Scale(s float64) Vector3D { return Vector3D{v.X * s, v.Y * s, v.Z * s} }

// Div divides every coordinate by s. Dividing by zero gives infinities or
// NaNs, as float division does.
func (v Vector3D) Div(s float64) Vector3D { return Vector3D{v.X / s, v.Y / s, v.Z / s} }

// Neg returns -v.
func (v Vector3D) Neg() Vector3D { return Vector3D{-v.X, -v.Y, -v.Z} }

// The In variants modify the receiver and return it, so they can be chained.

// AddIn adds w to v.
func (v *Vector3D) AddIn(w Vector3D) *Vector3D {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
	return v
}

// SubIn subtracts w from v.
func (v *Vector3D) SubIn(w Vector3D) *Vector3D {
	v.X -= w.X
	v.Y -= w.Y
	v.Z -= w.Z
	return v
}

// ScaleIn multiplies v by s.
func (v *Vector3D) ScaleIn(s float64) *Vector3D {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// DivIn divides v by s.
func (v *Vector3D) DivIn(s float64) *Vector3D {
	v.X /= s
	v.Y /= s
	v.Z /= s
	return v
}

// IsEqual returns true if every coordinate of v and w differ by less than eps.
// This is the equality used all over ncad, exact float comparison never is.
func (v Vector3D) IsEqual(w Vector3D, eps float64) bool {
	eps = vecEps(eps)
	return math.Abs(v.X-w.X) < eps && math.Abs(v.Y-w.Y) < eps && math.Abs(v.Z-w.Z) < eps
}

// Equal is IsEqual with DefaultEps.
func (v Vector3D) Equal(w Vector3D) bool { return v.IsEqual(w, DefaultEps) }

// IsZero returns true if all the coordinates are closer to zero than eps.
func (v Vector3D) IsZero(eps float64) bool {
	return v.IsEqual(Zero, eps)
}

// TryRound snaps each coordinate that is closer than eps to an integer.
func (v Vector3D) TryRound(eps float64) Vector3D {
	return Vector3D{TryRoundValue(v.X, eps), TryRoundValue(v.Y, eps), TryRoundValue(v.Z, eps)}
}

// RoundToInt rounds each coordinate to the nearest integer.
func (v Vector3D) RoundToInt() Vector3D {
	return Vector3D{math.Round(v.X), math.Round(v.Y), math.Round(v.Z)}
}

// RoundToIntUp rounds each coordinate up.
func (v Vector3D) RoundToIntUp() Vector3D {
	return Vector3D{math.Ceil(v.X), math.Ceil(v.Y), math.Ceil(v.Z)}
}

// RoundToIntDown rounds each coordinate down.
func (v Vector3D) RoundToIntDown() Vector3D {
	return Vector3D{math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z)}
}

// Len returns the euclidean norm of v.
func (v Vector3D) Len() float64 { return math.Sqrt(v.Len2()) }

// Len2 returns the square of the norm, use it when comparing lengths.
func (v Vector3D) Len2() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Normalize returns v divided by its length. v must not be a zero vector,
// check with IsZero first. The result for a zero vector is NaN.
func (v Vector3D) Normalize() Vector3D { return v.Div(v.Len()) }

// Dot is the scalar product.
func (v Vector3D) Dot(w Vector3D) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross is the vector product v x w.
func (v Vector3D) Cross(w Vector3D) Vector3D {
	return Vector3D{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// R3 returns v as a gonum r3 vector.
func (v Vector3D) R3() r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

// FromR3 converts a gonum r3 vector.
func FromR3(r r3.Vec) Vector3D { return Vector3D{r.X, r.Y, r.Z} }

// Angle returns the angle between va and vb in radians, in [0, Pi].
// Floating point noise that would take the cosine out of [-1,1] is clamped.
// The angle with a zero vector is NaN.
func Angle(va, vb Vector3D) float64 {
	cos := va.Dot(vb) / (va.Len() * vb.Len())
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// IsColinear returns true if the cross product of va and vb is shorter than eps.
func IsColinear(va, vb Vector3D, eps float64) bool {
	return va.Cross(vb).Len() < vecEps(eps)
}

//Projections on an axis. The axis doesn't need to be normalized,
//but it can't be a zero vector.

// Projection returns the component of v along axis.
func Projection(v, axis Vector3D) Vector3D {
	return axis.Scale(v.Dot(axis) / axis.Len2())
}

// ProjectionLen is the signed length of the projection of v on axis.
func ProjectionLen(v, axis Vector3D) float64 {
	return v.Dot(axis) / axis.Len()
}

// ProjectionValueSign returns -1, 0 or 1 depending on whether the projection
// of v points against axis, vanishes (within eps) or points along it.
func ProjectionValueSign(v, axis Vector3D, eps float64) float64 {
	return Sign(ProjectionLen(v, axis), eps)
}

// ProjectionValueNormalized is the projection of v on axis as a fraction
// of the length of axis. It is 1 when the projection equals axis.
func ProjectionValueNormalized(v, axis Vector3D) float64 {
	return v.Dot(axis) / axis.Len2()
}

// Orthogonal returns the component of v perpendicular to axis.
func Orthogonal(v, axis Vector3D) Vector3D {
	return v.Sub(Projection(v, axis))
}

// ToPolarCoord returns the cylindrical coordinates of v, as (R, Fi, z)
// with Fi in [0, 2Pi).
func ToPolarCoord(v Vector3D) Vector3D {
	return Vector3D{math.Hypot(v.X, v.Y), AtanXY2PI(v.Y, v.X), v.Z}
}

// FromPolarCoord is the inverse of ToPolarCoord.
func FromPolarCoord(v Vector3D) Vector3D {
	return Vector3D{v.X * math.Cos(v.Y), v.X * math.Sin(v.Y), v.Z}
}

// ToSphericalCoord returns (R, Tetta, Fi), where Tetta is the angle with
// the Z axis and Fi the azimuth in [0, 2Pi). The zero vector gives zeros.
func ToSphericalCoord(v Vector3D) Vector3D {
	r := v.Len()
	if r == 0 {
		return Zero
	}
	cos := v.Z / r
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return Vector3D{r, math.Acos(cos), AtanXY2PI(v.Y, v.X)}
}

// FromSphericalCoord is the inverse of ToSphericalCoord.
func FromSphericalCoord(v Vector3D) Vector3D {
	r, tetta, fi := v.X, v.Y, v.Z
	sin := math.Sin(tetta)
	return Vector3D{r * sin * math.Cos(fi), r * sin * math.Sin(fi), r * math.Cos(tetta)}
}
