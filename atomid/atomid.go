/*
 * atomid.go, part of ncad.
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

package atomid

import (
	"fmt"
	"strconv"
	"strings"
)

// field is the position of a bit field in an identifier.
type field struct {
	name  string
	shift uint
	width uint
}

func (f field) mask() uint64 { return 1<<f.width - 1 }

func (f field) get(id uint64) uint32 { return uint32(id >> f.shift & f.mask()) }

func (f field) set(id uint64, val uint32) (uint64, error) {
	if uint64(val) > f.mask() {
		return id, newError(ErrOverflow, fmt.Sprintf("%s=%d, max %d", f.name, val, f.mask()), "set")
	}
	return id&^(f.mask()<<f.shift) | uint64(val)<<f.shift, nil
}

// The AtomID layout. Encoding and decoding both use these.
var (
	fieldAtom      = field{"Atom", 0, 10}
	fieldCol       = field{"Col", 10, 12}
	fieldReserve   = field{"Reserve", 22, 10}
	fieldRow       = field{"Row", 32, 11}
	fieldPlane     = field{"Plane", 43, 11}
	fieldComponent = field{"Component", 54, 10}
)

// Sentinel field values.
const (
	UnknownComponent = 0x3FF
	ManualComponent  = 0x3FE
	UnknownAtom      = 0x3FF
	UnknownCol       = 0xFFF
	UnknownRow       = 0x7FF
	UnknownPlane     = 0x7FF
)

// AtomID is the packed identifier of an atom.
type AtomID uint64

// Indexes is the unpacked view of an AtomID.
type Indexes struct {
	Atom      uint32
	Col       uint32
	Reserve   uint32
	Row       uint32
	Plane     uint32
	Component uint32
}

// Encode packs the indexes. It fails with ErrOverflow if
// any of them is too large for its field.
func (ix Indexes) Encode() (AtomID, error) {
	var id uint64
	var err error
	set := func(f field, v uint32) {
		if err == nil {
			id, err = f.set(id, v)
		}
	}
	set(fieldAtom, ix.Atom)
	set(fieldCol, ix.Col)
	set(fieldReserve, ix.Reserve)
	set(fieldRow, ix.Row)
	set(fieldPlane, ix.Plane)
	set(fieldComponent, ix.Component)
	if err != nil {
		e := err.(Error)
		e.Decorate("Encode")
		return 0, e
	}
	return AtomID(id), nil
}

// New returns the AtomID with the given fields.
func New(component, col, row, plane, atom uint32) (AtomID, error) {
	return Indexes{Atom: atom, Col: col, Row: row, Plane: plane, Component: component}.Encode()
}

// MustNew is like New but panics if a value doesn't fit.
func MustNew(component, col, row, plane, atom uint32) AtomID {
	id, err := New(component, col, row, plane, atom)
	if err != nil {
		panic(ErrMustOverflow)
	}
	return id
}

// Indexes unpacks the ID.
func (id AtomID) Indexes() Indexes {
	u := uint64(id)
	return Indexes{
		Atom:      fieldAtom.get(u),
		Col:       fieldCol.get(u),
		Reserve:   fieldReserve.get(u),
		Row:       fieldRow.get(u),
		Plane:     fieldPlane.get(u),
		Component: fieldComponent.get(u),
	}
}

// The getters return one field each.
func (id AtomID) Atom() uint32      { return fieldAtom.get(uint64(id)) }
func (id AtomID) Col() uint32       { return fieldCol.get(uint64(id)) }
func (id AtomID) Row() uint32       { return fieldRow.get(uint64(id)) }
func (id AtomID) Plane() uint32     { return fieldPlane.get(uint64(id)) }
func (id AtomID) Component() uint32 { return fieldComponent.get(uint64(id)) }
func (id AtomID) Reserve() uint32   { return fieldReserve.get(uint64(id)) }

func (id AtomID) with(f field, val uint32, caller string) (AtomID, error) {
	u, err := f.set(uint64(id), val)
	if err != nil {
		e := err.(Error)
		e.Decorate(caller)
		return id, e
	}
	return AtomID(u), nil
}

// WithAtom returns a copy of the ID with the atom field replaced.
// On overflow the ID is returned unchanged, with an error.
func (id AtomID) WithAtom(atom uint32) (AtomID, error) { return id.with(fieldAtom, atom, "WithAtom") }

// WithCol is WithAtom for the column.
func (id AtomID) WithCol(col uint32) (AtomID, error) { return id.with(fieldCol, col, "WithCol") }

// WithRow is WithAtom for the row.
func (id AtomID) WithRow(row uint32) (AtomID, error) { return id.with(fieldRow, row, "WithRow") }

// WithPlane is WithAtom for the plane.
func (id AtomID) WithPlane(plane uint32) (AtomID, error) {
	return id.with(fieldPlane, plane, "WithPlane")
}

// WithComponent is WithAtom for the component.
func (id AtomID) WithComponent(component uint32) (AtomID, error) {
	return id.with(fieldComponent, component, "WithComponent")
}

// WithCell replaces the three cell fields at once.
func (id AtomID) WithCell(col, row, plane uint32) (AtomID, error) {
	ix := id.Indexes()
	ix.Col, ix.Row, ix.Plane = col, row, plane
	return ix.Encode()
}

// IsUnknownComponent is true if the component is UnknownComponent.
func (id AtomID) IsUnknownComponent() bool { return id.Component() == UnknownComponent }

// IsManualComponent is true if the component was set by hand.
func (id AtomID) IsManualComponent() bool { return id.Component() == ManualComponent }

// IsUnknownCell is true only if column, row and plane are all unknown.
func (id AtomID) IsUnknownCell() bool {
	return id.Col() == UnknownCol && id.Row() == UnknownRow && id.Plane() == UnknownPlane
}

// IsUnknownAtom is true if the atom field is UnknownAtom.
func (id AtomID) IsUnknownAtom() bool { return id.Atom() == UnknownAtom }

// The setters below write the sentinel into its field and leave
// the other fields alone.

// SetUnknownComponent marks the component as unknown.
func (id *AtomID) SetUnknownComponent() {
	*id |= AtomID(fieldComponent.mask() << fieldComponent.shift)
}

// SetManualComponent replaces the component with ManualComponent. It is an
// assignment, OR-ing 0x3FE into the field could give UnknownComponent.
func (id *AtomID) SetManualComponent() {
	*id, _ = id.WithComponent(ManualComponent)
}

// SetUnknownCell marks column, row and plane as unknown.
func (id *AtomID) SetUnknownCell() {
	*id |= AtomID(fieldCol.mask()<<fieldCol.shift | fieldRow.mask()<<fieldRow.shift | fieldPlane.mask()<<fieldPlane.shift)
}

// SetUnknownAtom marks the atom as unknown.
func (id *AtomID) SetUnknownAtom() {
	*id |= AtomID(fieldAtom.mask() << fieldAtom.shift)
}

func fieldString(val, unknown uint32) string {
	if val == unknown {
		return "?"
	}
	return strconv.FormatUint(uint64(val), 10)
}

// String returns a readable form, like "5:(1,2,3):7" for component 5,
// cell col=1, row=2, plane=3 and atom 7. Unknown fields print as "?"
// and the manual component as "M".
func (id AtomID) String() string {
	comp := fieldString(id.Component(), UnknownComponent)
	if id.IsManualComponent() {
		comp = "M"
	}
	cell := "?"
	if !id.IsUnknownCell() {
		cell = fmt.Sprintf("(%d,%d,%d)", id.Col(), id.Row(), id.Plane())
	}
	return fmt.Sprintf("%s:%s:%s", comp, cell, fieldString(id.Atom(), UnknownAtom))
}

// MarshalText writes the raw value in decimal, so AtomIDs can be used as
// JSON object keys.
func (id AtomID) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(id), 10), nil
}

func (id *AtomID) UnmarshalText(text []byte) error {
	v, err := ParseAtomID(string(text))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// ParseAtomID reads a raw value, decimal or with a 0x prefix.
func ParseAtomID(s string) (AtomID, error) {
	u, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, newError(ErrParse, fmt.Sprintf("%q", s), "ParseAtomID")
	}
	return AtomID(u), nil
}
