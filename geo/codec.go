/*
 * codec.go, part of ncad.
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
	"fmt"
	"strconv"
	"strings"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// fields splits s into number tokens. Commas and semicolons count as blanks
// and one pair of surrounding () or [] is removed.
func fields(s string) []string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		f, l := s[0], s[len(s)-1]
		if (f == '(' && l == ')') || (f == '[' && l == ']') {
			s = s[1 : len(s)-1]
		}
	}
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func parseFloats(s string, n int, caller string) ([]float64, error) {
	tok := fields(s)
	if len(tok) != n {
		return nil, newError(ErrParse, fmt.Sprintf("expected %d numbers, got %d in %q", n, len(tok), s), caller)
	}
	ret := make([]float64, n)
	for i, t := range tok {
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, newError(ErrParse, fmt.Sprintf("bad number %q", t), caller)
		}
		ret[i] = f
	}
	return ret, nil
}

// String returns "x y z" with the shortest representation that
// reads back to the same floats.
func (v Vector3D) String() string {
	return formatFloat(v.X) + " " + formatFloat(v.Y) + " " + formatFloat(v.Z)
}

// AsString is the same as v.String()
func AsString(v Vector3D) string { return v.String() }

// ParseVector3D reads 3 numbers, separated by blanks or commas and optionally
// enclosed in () or [].
func ParseVector3D(s string) (Vector3D, error) {
	f, err := parseFloats(s, 3, "ParseVector3D")
	if err != nil {
		return Zero, err
	}
	return Vector3D{f[0], f[1], f[2]}, nil
}

// String gives the 9 elements, rows separated by "; ".
func (op Operator3D) String() string {
	rows := make([]string, 3)
	for i := range rows {
		rows[i] = op.Row(i).String()
	}
	return strings.Join(rows, "; ")
}

// ParseOperator3D reads 9 numbers in row-major order. Rows can
// be separated with ';'.
func ParseOperator3D(s string) (Operator3D, error) {
	var op Operator3D
	f, err := parseFloats(s, 9, "ParseOperator3D")
	if err != nil {
		return op, err
	}
	copy(op.V[:], f)
	return op, nil
}

// String returns "(h k l)", or "()" for the empty index.
func (m MillerIndex) String() string {
	if m.IsEmpty() {
		return "()"
	}
	return fmt.Sprintf("(%d %d %d)", m.H, m.K, m.L)
}

// ParseMillerIndex reads three integers. The empty string, and "()",
// give the empty index.
func ParseMillerIndex(s string) (MillerIndex, error) {
	tok := fields(s)
	if len(tok) == 0 {
		return MillerIndex{}, nil
	}
	if len(tok) != 3 {
		return MillerIndex{}, newError(ErrParse, fmt.Sprintf("expected 3 integers in %q", s), "ParseMillerIndex")
	}
	var hkl [3]int
	for i, t := range tok {
		n, err := strconv.Atoi(t)
		if err != nil {
			return MillerIndex{}, newError(ErrParse, fmt.Sprintf("bad index %q", t), "ParseMillerIndex")
		}
		hkl[i] = n
	}
	return NewMillerIndex(hkl[0], hkl[1], hkl[2]), nil
}
