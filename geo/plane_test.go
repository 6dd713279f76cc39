/*
 * plane_test.go, part of ncad.
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
	"errors"
	"math"
	"testing"
)

func TestPlane(Te *testing.T) {
	p, err := NewPlaneFromPoints(Zero, NewVector3D(1, 0, 0), NewVector3D(0, 1, 0), -1)
	if err != nil {
		Te.Fatal(err)
	}
	if p.Normal() != NewVector3D(0, 0, 1) {
		Te.Errorf("normal should be (0,0,1), got %v", p.Normal())
	}
	if d := p.Distance(NewVector3D(5, -3, 2)); d != 2 {
		Te.Errorf("distance should be 2, got %v", d)
	}
	if d := p.Distance(NewVector3D(0, 0, -1)); d != -1 {
		Te.Errorf("distance should be -1, got %v", d)
	}
	p.ShiftPoint(NewVector3D(0, 0, 1))
	if p.D() != 1 || p.Distance(NewVector3D(0, 0, 1)) != 0 {
		Te.Errorf("shifted plane is wrong, D=%v", p.D())
	}
	q := NewPlane(NewVector3D(0, 3, 4), NewVector3D(1, 1, 1))
	if math.Abs(q.Normal().Len()-1) > 1e-12 {
		Te.Errorf("the normal must be normalized, got %v", q.Normal())
	}
	if math.Abs(q.Distance(q.Point())) > 1e-12 {
		Te.Error("the point is on the plane")
	}
	q.SetPoint(NewVector3D(0.4, 1.6, 2.2))
	q.RoundToInt()
	if q.Point() != NewVector3D(0, 2, 2) || math.Abs(q.D()-2.8) > 1e-12 {
		Te.Errorf("rounded plane is wrong: %v %v", q.Point(), q.D())
	}
}

func TestColinearPlane(Te *testing.T) {
	p, err := NewPlaneFromPoints(Zero, NewVector3D(1, 1, 1), NewVector3D(2, 2, 2), -1)
	if !errors.Is(err, ErrColinear) {
		Te.Errorf("expected ErrColinear, got %v", err)
	}
	if !p.IsDegenerate() || p.D() != 0 {
		Te.Errorf("a colinear plane is degenerate with D=0, got %v %v", p.Normal(), p.D())
	}
	if p.Distance(NewVector3D(3, -7, 1)) != 0 {
		Te.Error("every distance to a degenerate plane is 0")
	}
}

func TestLine(Te *testing.T) {
	l, err := NewLine(NewVector3D(0, 0, 2), NewVector3D(1, 1, 5))
	if err != nil {
		Te.Fatal(err)
	}
	if l.Axial() != NewVector3D(0, 0, 1) {
		Te.Errorf("axial should be normalized, got %v", l.Axial())
	}
	if d := l.Distance(NewVector3D(4, 5, -3)); math.Abs(d-5) > 1e-12 {
		Te.Errorf("distance should be 5, got %v", d)
	}
	if p := l.AxialProjection(NewVector3D(4, 5, -3)); !p.IsEqual(NewVector3D(1, 1, -3), -1) {
		Te.Errorf("axial projection is wrong: %v", p)
	}
	if t := l.TraversalProjection(NewVector3D(4, 5, -3)); !t.IsEqual(NewVector3D(3, 4, 0), -1) {
		Te.Errorf("traversal projection is wrong: %v", t)
	}
	if !l.IsColinearToLine(NewVector3D(0, 0, -3), -1) || l.IsColinearToLine(NewVector3D(0, 1, 0), -1) {
		Te.Error("colinearity to the line is wrong")
	}
	if _, err = NewLine(Zero, Zero); !errors.Is(err, ErrDegenerate) {
		Te.Errorf("a line needs a direction, got %v", err)
	}
}

func TestLineAngles(Te *testing.T) {
	l, _ := NewLine(NewVector3D(0, 0, 1), Zero)
	x := NewVector3D(1, 0, 0)
	cases := []struct {
		pos  Vector3D
		want float64
	}{
		{NewVector3D(2, 0, 3), 0},
		{NewVector3D(0, 1, 7), math.Pi / 2},
		{NewVector3D(-1, 0, 0), math.Pi},
		{NewVector3D(0, -1, -2), 1.5 * math.Pi},
	}
	for _, c := range cases {
		if a := l.AngleToTraversal(c.pos, x); math.Abs(a-c.want) > 1e-12 {
			Te.Errorf("traversal angle of %v should be %v, got %v", c.pos, c.want, a)
		}
		//only the perpendicular part of the zero direction counts
		if a := l.AngleTo(c.pos, NewVector3D(2, 0, 5)); math.Abs(a-c.want) > 1e-12 {
			Te.Errorf("angle of %v should be %v, got %v", c.pos, c.want, a)
		}
	}
	down, _ := NewLine(NewVector3D(0, 0, -1), Zero)
	if a := down.AngleToTraversal(NewVector3D(0, 1, 0), x); math.Abs(a-1.5*math.Pi) > 1e-12 {
		Te.Errorf("angles are measured around the axial, got %v", a)
	}
}

func TestCrossection(Te *testing.T) {
	p := NewPlane(NewVector3D(0, 0, 1), Zero)
	l, _ := NewLine(NewVector3D(0, 0, 1), NewVector3D(1, 1, 5))
	c, err := CrossectionPointPlaneLine(p, l, -1)
	if err != nil {
		Te.Fatal(err)
	}
	if !c.IsEqual(NewVector3D(1, 1, 0), -1) {
		Te.Errorf("crossection should be (1,1,0), got %v", c)
	}
	l, _ = NewLine(NewVector3D(1, 1, 1), NewVector3D(0, 0, 3))
	c, _ = CrossectionPointPlaneLine(p, l, -1)
	if !c.IsEqual(NewVector3D(-3, -3, 0), -1) {
		Te.Errorf("crossection should be (-3,-3,0), got %v", c)
	}
	parallel, _ := NewLine(NewVector3D(1, 0, 0), NewVector3D(0, 0, 3))
	if _, err = CrossectionPointPlaneLine(p, parallel, -1); !errors.Is(err, ErrParallel) {
		Te.Errorf("expected ErrParallel, got %v", err)
	}
}
