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

package bondgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrComponents means the fragments don't fit in the usable range
	// of the Component field.
	ErrComponents = errors.New("not enough component indexes")
	// ErrCollision means that two atoms would end up with the same identifier.
	ErrCollision = errors.New("identifier collision")
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
	return fmt.Sprintf("ncad/bondgraph: %s: %s", err.kind, err.message)
}

// Decorate adds dec to the callers of the error, and returns them.
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
