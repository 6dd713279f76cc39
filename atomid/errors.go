/*
 * errors.go, part of ncad.
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
	"errors"
	"fmt"
)

var (
	// ErrOverflow means a value doesn't fit in its field.
	ErrOverflow = errors.New("value does not fit in field")
	// ErrParse means the text is not an identifier.
	ErrParse = errors.New("malformed identifier")
)

// Error is the error type of the package.
type Error struct {
	message string
	kind    error
	deco    *[]string //shared by all the copies of the error
}

func newError(kind error, msg, caller string) Error {
	return Error{message: msg, kind: kind, deco: &[]string{caller}}
}

func (err Error) Error() string {
	return fmt.Sprintf("ncad/atomid: %s: %s", err.kind, err.message)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if err.deco == nil {
		return nil
	}
	if dec != "" {
		*err.deco = append(*err.deco, dec)
	}
	return *err.deco
}

func (err Error) Unwrap() error { return err.kind }

// PanicMsg is the message of the panics raised by the Must functions.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const ErrMustOverflow = PanicMsg("ncad/atomid: value does not fit in field")
