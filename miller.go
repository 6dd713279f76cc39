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

package ncad

import (
	"math"

	"github.com/rmera/ncad/geo"
)

// MillerNormal returns h a* + k b* + l c*, the reciprocal lattice vector normal
// to the planes of the index. Its length is the inverse of the interplanar spacing.
// Empty and (0 0 0) indexes give an error.
func (u UnitCell) MillerNormal(m geo.MillerIndex, tol *Tolerance) (geo.Vector3D, error) {
	if m.IsEmpty() || m.IsZero() {
		return geo.Zero, newCError(ErrMiller, "index "+m.String()+" has no planes", "MillerNormal")
	}
	rec, err := u.Reciprocal(tol)
	if err != nil {
		return geo.Zero, errDecorate(err, "MillerNormal")
	}
	//rows are a*, b* and c*
	return rec.Transpose().MulVec(m.Vector()), nil
}

// MillerPlane returns the plane of the index that goes through point.
func (u UnitCell) MillerPlane(m geo.MillerIndex, point geo.Vector3D, tol *Tolerance) (geo.Plane, error) {
	n, err := u.MillerNormal(m, tol)
	if err != nil {
		return geo.Plane{}, errDecorate(err, "MillerPlane")
	}
	return geo.NewPlane(n, point), nil
}

// InterplanarSpacing returns the distance between consecutive planes of the index, in A.
func (u UnitCell) InterplanarSpacing(m geo.MillerIndex, tol *Tolerance) (float64, error) {
	n, err := u.MillerNormal(m, tol)
	if err != nil {
		return 0, errDecorate(err, "InterplanarSpacing")
	}
	return 1 / n.Len(), nil
}

// OrientMiller returns the rotation that takes the normal of the planes of m onto
// the direction target, for instance to lay a crystal surface on the XY plane.
func (u UnitCell) OrientMiller(m geo.MillerIndex, target geo.Vector3D, tol *Tolerance) (geo.Operator3D, error) {
	tol = orDefault(tol)
	if target.IsZero(tol.Vector()) {
		return geo.Operator3D{}, newCError(geo.ErrDegenerate, "zero target direction", "OrientMiller")
	}
	n, err := u.MillerNormal(m, tol)
	if err != nil {
		return geo.Operator3D{}, errDecorate(err, "OrientMiller")
	}
	op, err := rotationOnto(n.Normalize(), target.Normalize(), tol.Vector())
	if err != nil {
		return op, errDecorate(err, "OrientMiller")
	}
	return op, nil
}

// rotationOnto returns the rotation taking the unit vector from onto the unit vector to.
func rotationOnto(from, to geo.Vector3D, eps float64) (geo.Operator3D, error) {
	axis := from.Cross(to)
	if axis.IsZero(eps) {
		if from.Dot(to) > 0 {
			return geo.Identity(), nil
		}
		//antiparallel, any perpendicular axis will do.
		axis = geo.Orthogonal(geo.NewVector3D(1, 0, 0), from)
		if axis.IsZero(eps) {
			axis = geo.Orthogonal(geo.NewVector3D(0, 1, 0), from)
		}
		return geo.RotationOperator(axis, math.Pi)
	}
	return geo.RotationOperator(axis, geo.Angle(from, to))
}
