/*
 * doc.go, part of ncad.
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

/*
Package geo implements the small linear algebra kernel used to describe
crystals and nano-structures: 3D vectors, 3x3 operators (rotations and
fractional/cartesian basis changes), planes, lines, Miller indexes and
axis-aligned bounding boxes.

All the types are plain values. Nothing in the package keeps mutable global
state: every comparison that needs a tolerance takes it as an eps argument.
A negative eps selects the corresponding package default (DefaultEps for
vectors, DefaultOperatorEps for operators, DefaultRoundEps for rounding), so
v.IsEqual(w, -1) is the "loose" equality used everywhere in ncad.

Degenerate inputs (singular operators, colinear points, a line parallel to
a plane) and malformed text are reported as errors that wrap the sentinel
values ErrSingular, ErrColinear, ErrParallel, ErrParse and friends.
Normalizing a zero vector is a precondition violation and is not checked.
*/
package geo
