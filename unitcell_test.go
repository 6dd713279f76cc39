/*
 * unitcell_test.go, part of ncad.
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
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/rmera/ncad/geo"
)

func TestCubicCell(Te *testing.T) {
	cell, err := NewUnitCell(5, 5, 5, 90, 90, 90)
	if err != nil {
		Te.Fatal(err)
	}
	basis := cell.Basis(nil)
	if basis != geo.Identity().Scale(5) {
		Te.Errorf("a cubic cell should have 5*I as basis, got %v", basis)
	}
	if v := cell.Volume(); math.Abs(v-125) > 1e-9 {
		Te.Errorf("volume should be 125, got %v", v)
	}
	if v := basis.Volume(); math.Abs(v-125) > 1e-9 {
		Te.Errorf("basis volume should be 125, got %v", v)
	}
	rec, err := cell.Reciprocal(nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !rec.IsEqual(geo.Identity().Scale(0.2), 1e-12) {
		Te.Errorf("reciprocal should be I/5, got %v", rec)
	}
	env := cell.Envelope(nil)
	if env.CornerMax() != geo.NewVector3D(5, 5, 5) || env.CornerMin() != geo.Zero {
		Te.Errorf("wrong envelope %v", env)
	}
}

func TestHexagonalCell(Te *testing.T) {
	cell, err := NewUnitCell(3, 3, 5, 90, 90, 120)
	if err != nil {
		Te.Fatal(err)
	}
	tol := DefaultTolerance()
	basis := cell.Basis(tol)
	if b := basis.BasisVector(1); !b.IsEqual(geo.NewVector3D(-1.5, 1.5*math.Sqrt(3), 0), 1e-9) {
		Te.Errorf("wrong b vector %v", b)
	}
	want := 9 * 5 * math.Sqrt(3) / 2
	if v := cell.Volume(); math.Abs(v-want) > 1e-9 || math.Abs(basis.Volume()-want) > 1e-9 {
		Te.Errorf("volume should be %v, got %v and %v", want, v, basis.Volume())
	}
	for _, f := range []geo.Vector3D{{0.1, 0.2, 0.3}, {1, 1, 1}, {-0.5, 0.25, 0.75}} {
		xyz := cell.ToCartesian(f, tol)
		back, err := cell.ToFractional(xyz, tol)
		if err != nil {
			Te.Fatal(err)
		}
		if !back.IsEqual(f, 1e-9) {
			Te.Errorf("fractional round trip of %v gave %v", f, back)
		}
	}
	if xyz := cell.ToCartesian(geo.NewVector3D(0, 0, 1), tol); !xyz.IsEqual(geo.NewVector3D(0, 0, 5), 1e-9) {
		Te.Errorf("(0,0,1) should be the c vector, got %v", xyz)
	}
	fmt.Println(cell, "\n", basis)
}

func TestTriclinicBasis(Te *testing.T) {
	cell, err := NewUnitCell(4, 5, 6, 70, 80, 100)
	if err != nil {
		Te.Fatal(err)
	}
	b := cell.Basis(nil)
	lengths := []float64{4, 5, 6}
	for i, l := range lengths {
		if math.Abs(b.Row(i).Len()-l) > 1e-9 {
			Te.Errorf("basis vector %d should be %v long, got %v", i, l, b.Row(i).Len())
		}
	}
	angles := [][3]int{{1, 2, 70}, {0, 2, 80}, {0, 1, 100}}
	for _, a := range angles {
		if got := geo.ToGrad(geo.Angle(b.Row(a[0]), b.Row(a[1]))); math.Abs(got-float64(a[2])) > 1e-9 {
			Te.Errorf("angle between %d and %d should be %d, got %v", a[0], a[1], a[2], got)
		}
	}
	if math.Abs(b.Determinant()-cell.Volume()) > 1e-9 {
		Te.Errorf("the basis is not right handed or has the wrong volume: %v %v", b.Determinant(), cell.Volume())
	}
}

func TestInvalidCells(Te *testing.T) {
	bad := [][6]float64{
		{0, 1, 1, 90, 90, 90},
		{1, -1, 1, 90, 90, 90},
		{1, 1, 1, 180, 90, 90},
		{1, 1, 1, 90, 0, 90},
		{1, 1, 1, 130, 130, 130},
	}
	for _, p := range bad {
		if _, err := NewUnitCell(p[0], p[1], p[2], p[3], p[4], p[5]); !errors.Is(err, ErrInvalidCell) {
			Te.Errorf("%v should be invalid, got %v", p, err)
		}
	}
}

func TestTolerance(Te *testing.T) {
	tol := DefaultTolerance()
	if tol.Vector() != geo.DefaultEps || tol.Operator() != geo.DefaultOperatorEps || tol.Round() != geo.DefaultRoundEps {
		Te.Error("the defaults should be those of geo")
	}
	if tol.Bond(0.3) != 0.3 || tol.Bond() != 0.3 {
		Te.Error("Bond should set the value")
	}
	if tol.Bond(-1) != 0.3 {
		Te.Error("a negative value should not be set")
	}
	if orDefault(nil).Bond() != DefaultBondTolerance {
		Te.Error("a nil tolerance gives the defaults")
	}
}

func TestMiller(Te *testing.T) {
	cell, _ := NewUnitCell(5, 5, 5, 90, 90, 90)
	cases := []struct {
		m    geo.MillerIndex
		want float64
	}{
		{geo.NewMillerIndex(1, 0, 0), 5},
		{geo.NewMillerIndex(1, 1, 0), 5 / math.Sqrt2},
		{geo.NewMillerIndex(1, 1, 1), 5 / math.Sqrt(3)},
		{geo.NewMillerIndex(0, 0, -2), 2.5},
	}
	for _, c := range cases {
		d, err := cell.InterplanarSpacing(c.m, nil)
		if err != nil {
			Te.Fatal(err)
		}
		if math.Abs(d-c.want) > 1e-9 {
			Te.Errorf("spacing of %v should be %v, got %v", c.m, c.want, d)
		}
	}
	for _, m := range []geo.MillerIndex{{}, geo.NewMillerIndex(0, 0, 0)} {
		if _, err := cell.MillerNormal(m, nil); !errors.Is(err, ErrMiller) {
			Te.Errorf("%v has no normal, got %v", m, err)
		}
	}
	p, err := cell.MillerPlane(geo.NewMillerIndex(0, 0, 1), geo.NewVector3D(0, 0, 2.5), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if d := p.Distance(geo.NewVector3D(1, 1, 5)); math.Abs(d-2.5) > 1e-9 {
		Te.Errorf("distance to the (0 0 1) plane should be 2.5, got %v", d)
	}
	hex, _ := NewUnitCell(3, 3, 5, 90, 90, 120)
	n, _ := hex.MillerNormal(geo.NewMillerIndex(1, 0, 0), nil)
	if math.Abs(n.Dot(hex.Basis(nil).Row(1))) > 1e-9 || math.Abs(n.Dot(hex.Basis(nil).Row(2))) > 1e-9 {
		Te.Errorf("the (1 0 0) normal must be perpendicular to b and c, got %v", n)
	}
}

func TestOrientMiller(Te *testing.T) {
	cell, _ := NewUnitCell(4, 5, 6, 70, 80, 100)
	z := geo.NewVector3D(0, 0, 1)
	for _, m := range []geo.MillerIndex{geo.NewMillerIndex(1, 1, 1), geo.NewMillerIndex(2, -1, 0), geo.NewMillerIndex(0, 0, 1)} {
		op, err := cell.OrientMiller(m, z, nil)
		if err != nil {
			Te.Fatal(err)
		}
		n, _ := cell.MillerNormal(m, nil)
		if r := op.MulVec(n.Normalize()); !r.IsEqual(z, 1e-9) {
			Te.Errorf("%v normal should end up along Z, got %v", m, r)
		}
	}
	cubic, _ := NewUnitCell(5, 5, 5, 90, 90, 90)
	op, err := cubic.OrientMiller(geo.NewMillerIndex(0, 0, -1), z, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if r := op.MulVec(geo.NewVector3D(0, 0, -1)); !r.IsEqual(z, 1e-9) {
		Te.Errorf("an antiparallel normal should be flipped, got %v", r)
	}
	op, _ = cubic.OrientMiller(geo.NewMillerIndex(0, 0, 3), z, nil)
	if op != geo.Identity() {
		Te.Errorf("a normal along the target needs no rotation, got %v", op)
	}
}
