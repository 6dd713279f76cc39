/*
 * plane.go, part of ncad.
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

// Plane is given by a unit normal and a point on it. D is the product
// of the normal and the point, so Normal.Dot(P)==D for every P on the plane.
// A plane with a zero normal is degenerate: it is the result of building
// a plane from colinear points, and every distance to it is 0.
type Plane struct {
	normal Vector3D
	point  Vector3D
	d      float64
}

// NewPlane returns the plane through point with the given normal. The normal
// is normalized. A zero normal is kept as is, and gives a degenerate plane.
func NewPlane(normal, point Vector3D) Plane {
	p := Plane{point: point}
	p.SetNormal(normal)
	return p
}

// NewPlaneFromPoints returns the plane through the 3 points, with the normal
// (p2-p1)x(p3-p1). For colinear points the plane is degenerate, with a zero
// normal and D=0, and an error wrapping ErrColinear is also returned.
func NewPlaneFromPoints(p1, p2, p3 Vector3D, eps float64) (Plane, error) {
	n := p2.Sub(p1).Cross(p3.Sub(p1))
	if n.IsZero(eps) {
		return Plane{point: p1}, newError(ErrColinear, "", "NewPlaneFromPoints")
	}
	return NewPlane(n, p1), nil
}

// Normal returns the unit normal of the plane, or zero for a degenerate plane.
func (p Plane) Normal() Vector3D { return p.normal }

// Point returns the point that defines the plane.
func (p Plane) Point() Vector3D { return p.point }

// D returns the product of the normal and the point.
func (p Plane) D() float64 { return p.d }

// SetNormal normalizes n and uses it as the new normal, D is updated.
func (p *Plane) SetNormal(n Vector3D) {
	if n == Zero {
		p.normal = Zero
		p.d = 0
		return
	}
	p.normal = n.Normalize()
	p.d = p.normal.Dot(p.point)
}

// SetPoint moves the plane so it passes through point.
func (p *Plane) SetPoint(point Vector3D) {
	p.point = point
	p.d = p.normal.Dot(point)
}

// ShiftPoint translates the plane by shift.
func (p *Plane) ShiftPoint(shift Vector3D) { p.SetPoint(p.point.Add(shift)) }

// IsDegenerate returns true if the plane has no normal.
func (p Plane) IsDegenerate() bool { return p.normal == Zero }

// Distance returns the signed distance from pos to the plane, positive on the side the normal
// points to.
func (p Plane) Distance(pos Vector3D) float64 {
	return p.normal.Dot(pos) - p.d
}

// RoundToInt rounds the point of the plane to integer coordinates.
func (p *Plane) RoundToInt() { p.SetPoint(p.point.RoundToInt()) }

// Line is a unit direction, the axial, and a point on the line.
type Line struct {
	axial Vector3D
	point Vector3D
}

// NewLine returns the line through point along axial, which is normalized.
// A zero axial gives an error wrapping ErrDegenerate.
func NewLine(axial, point Vector3D) (Line, error) {
	if axial == Zero {
		return Line{point: point}, newError(ErrDegenerate, "zero axial", "NewLine")
	}
	return Line{axial: axial.Normalize(), point: point}, nil
}

// Axial returns the unit direction of the line.
func (l Line) Axial() Vector3D { return l.axial }

// Point returns the point that defines the line.
func (l Line) Point() Vector3D { return l.point }

// AxialProjection returns the point of the line closest to from.
func (l Line) AxialProjection(from Vector3D) Vector3D {
	return l.point.Add(l.axial.Scale(from.Sub(l.point).Dot(l.axial)))
}

// TraversalProjection returns the vector from the line to from, perpendicular to the line.
func (l Line) TraversalProjection(from Vector3D) Vector3D {
	return from.Sub(l.AxialProjection(from))
}

// Distance from pos to the line.
func (l Line) Distance(pos Vector3D) float64 {
	return l.TraversalProjection(pos).Len()
}

// AngleToTraversal returns the angle, in [0, 2Pi), between zeroDirTraversal and the
// traversal projection of pos, measured counterclockwise looking from the tip of the axial.
// zeroDirTraversal must be perpendicular to the line. A point on the line has angle 0.
func (l Line) AngleToTraversal(pos, zeroDirTraversal Vector3D) float64 {
	t := l.TraversalProjection(pos)
	x := zeroDirTraversal.Normalize()
	y := l.axial.Cross(x)
	return AtanXY2PI(t.Dot(y), t.Dot(x))
}

// AngleTo is like AngleToTraversal but zeroDir can have any orientation not
// parallel to the line, only its component perpendicular to the line is used.
func (l Line) AngleTo(pos, zeroDir Vector3D) float64 {
	return l.AngleToTraversal(pos, Orthogonal(zeroDir, l.axial))
}

// IsColinearToLine returns true if v is parallel to the line.
func (l Line) IsColinearToLine(v Vector3D, eps float64) bool {
	return IsColinear(l.axial, v, eps)
}

// RoundToInt rounds the point of the line to integer coordinates.
func (l *Line) RoundToInt() { l.point = l.point.RoundToInt() }

// CrossectionPointPlaneLine returns the point where line crosses plane. If the line
// is parallel to the plane (|n.axial|<eps) it returns the zero vector and an
// error wrapping ErrParallel.
func CrossectionPointPlaneLine(plane Plane, line Line, eps float64) (Vector3D, error) {
	den := plane.normal.Dot(line.axial)
	if math.Abs(den) < vecEps(eps) {
		return Zero, newError(ErrParallel, "", "CrossectionPointPlaneLine")
	}
	t := (plane.d - plane.normal.Dot(line.point)) / den
	return line.point.Add(line.axial.Scale(t)), nil
}
