/*
 * unitcell.go, part of ncad.
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
	"fmt"
	"math"

	"github.com/rmera/ncad/geo"
)

// UnitCell contains the cell lengths, in A, and angles, in degrees.
// Alpha is the angle between b and c, Beta between a and c and Gamma
// between a and b.
type UnitCell struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

// NewUnitCell returns a validated cell.
func NewUnitCell(a, b, c, alpha, beta, gamma float64) (UnitCell, error) {
	u := UnitCell{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma}
	if err := u.Validate(); err != nil {
		return UnitCell{}, errDecorate(err, "NewUnitCell")
	}
	return u, nil
}

// Validate checks that the lengths are positive, the angles are
// in (0, 180) and that together they span a volume.
func (u UnitCell) Validate() error {
	if u.A <= 0 || u.B <= 0 || u.C <= 0 {
		return newCError(ErrInvalidCell, fmt.Sprintf("lengths must be positive: %v %v %v", u.A, u.B, u.C), "Validate")
	}
	for _, ang := range []float64{u.Alpha, u.Beta, u.Gamma} {
		if ang <= 0 || ang >= 180 {
			return newCError(ErrInvalidCell, fmt.Sprintf("angle %v out of (0,180)", ang), "Validate")
		}
	}
	if u.metric() <= 0 {
		return newCError(ErrInvalidCell, fmt.Sprintf("angles %v %v %v span no volume", u.Alpha, u.Beta, u.Gamma), "Validate")
	}
	return nil
}

// metric is 1 - cos2(alpha) - cos2(beta) - cos2(gamma) + 2cos(alpha)cos(beta)cos(gamma),
// the square of the volume of the cell with unit lengths.
func (u UnitCell) metric() float64 {
	ca := math.Cos(geo.ToRad(u.Alpha))
	cb := math.Cos(geo.ToRad(u.Beta))
	cg := math.Cos(geo.ToRad(u.Gamma))
	return 1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg
}

// Volume of the cell in A^3.
func (u UnitCell) Volume() float64 {
	m := u.metric()
	if m <= 0 {
		return 0
	}
	return u.A * u.B * u.C * math.Sqrt(m)
}

// Basis returns the cell vectors as the rows of an operator, with a along X and b in
// the XY plane:
//
//	a = (a, 0, 0)
//	b = (b cos(gamma), b sin(gamma), 0)
//	c = (c cos(beta), c (cos(alpha)-cos(beta)cos(gamma))/sin(gamma), c sqrt(metric)/sin(gamma))
//
// Values within tol.Round() of an integer are rounded, so a cubic cell gives an exactly
// diagonal basis.
func (u UnitCell) Basis(tol *Tolerance) geo.Operator3D {
	tol = orDefault(tol)
	alpha, beta, gamma := geo.ToRad(u.Alpha), geo.ToRad(u.Beta), geo.ToRad(u.Gamma)
	sg, cg := math.Sincos(gamma)
	ca, cb := math.Cos(alpha), math.Cos(beta)
	m := math.Max(u.metric(), 0)
	basis := geo.NewOperator3D(
		geo.NewVector3D(u.A, 0, 0),
		geo.NewVector3D(u.B*cg, u.B*sg, 0),
		geo.NewVector3D(u.C*cb, u.C*(ca-cb*cg)/sg, u.C*math.Sqrt(m)/sg),
	)
	basis.TryRound(tol.Round())
	return basis
}

// FractToXYZ returns the operator that takes fractional coordinates into cartesian
// ones. Its columns are the cell vectors.
func (u UnitCell) FractToXYZ(tol *Tolerance) geo.Operator3D {
	return u.Basis(tol).Transpose()
}

// XYZToFract is the inverse of FractToXYZ. It only fails for cells
// that don't validate.
func (u UnitCell) XYZToFract(tol *Tolerance) (geo.Operator3D, error) {
	tol = orDefault(tol)
	op, err := u.FractToXYZ(tol).Invert(tol.Operator())
	if err != nil {
		return op, errDecorate(err, "XYZToFract")
	}
	op.TryRound(tol.Round())
	return op, nil
}

// ToCartesian converts fractional coordinates into cartesian ones.
func (u UnitCell) ToCartesian(fract geo.Vector3D, tol *Tolerance) geo.Vector3D {
	return u.FractToXYZ(tol).MulVec(fract)
}

// ToFractional converts cartesian coordinates into fractional ones.
func (u UnitCell) ToFractional(xyz geo.Vector3D, tol *Tolerance) (geo.Vector3D, error) {
	op, err := u.XYZToFract(tol)
	if err != nil {
		return geo.Zero, errDecorate(err, "ToFractional")
	}
	return op.MulVec(xyz), nil
}

// Reciprocal returns the reciprocal basis, a*, b* and c* as rows,
// without the 2Pi factor.
func (u UnitCell) Reciprocal(tol *Tolerance) (geo.Operator3D, error) {
	tol = orDefault(tol)
	rec, err := geo.ReciprocalBasis(u.Basis(tol), tol.Operator())
	if err != nil {
		return rec, errDecorate(err, "Reciprocal")
	}
	return rec, nil
}

// Envelope returns the cartesian box that contains the cell.
func (u UnitCell) Envelope(tol *Tolerance) geo.Vector3DBox {
	return geo.EnvelopeBox(geo.NewVector3DBox(geo.Zero, geo.NewVector3D(1, 1, 1)), u.FractToXYZ(tol))
}

func (u UnitCell) String() string {
	return fmt.Sprintf("a=%g b=%g c=%g alpha=%g beta=%g gamma=%g", u.A, u.B, u.C, u.Alpha, u.Beta, u.Gamma)
}
