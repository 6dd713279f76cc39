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

package geo

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel conditions. The errors returned by the package wrap one of these.
var (
	ErrDegenerate      = errors.New("degenerate geometry")
	ErrSingular        = errors.New("singular operator")
	ErrColinear        = errors.New("colinear points")
	ErrParallel        = errors.New("line parallel to plane")
	ErrParse           = errors.New("malformed input")
	ErrRandomExhausted = errors.New("random generator did not produce a usable direction")
)

// Error is the error type of the package. It keeps the sentinel condition,
// a message and the list of functions it went through.
type Error struct {
	message string
	kind    error
	deco    *[]string //shared by all the copies of the error
}

func newError(kind error, msg string, caller string) Error {
	return Error{message: msg, kind: kind, deco: &[]string{caller}}
}

// Error returns a string with an error message.
func (err Error) Error() string {
	if err.message == "" {
		return "ncad/geo: " + err.kind.Error()
	}
	return fmt.Sprintf("ncad/geo: %s: %s", err.kind, err.message)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice. An empty dec just returns the current slice.
func (err Error) Decorate(dec string) []string {
	if err.deco == nil {
		return nil
	}
	if dec != "" {
		*err.deco = append(*err.deco, dec)
	}
	return *err.deco
}

// Unwrap gives the sentinel condition.
func (err Error) Unwrap() error { return err.kind }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrIndexOutOfRange = PanicMsg("ncad/geo: index out of range")
	ErrGonum           = PanicMsg("ncad/geo: error in gonum function")
)

// maybe runs fn and turns a gonum panic into an error. Any other panic
// is re-raised.
func maybe(fn func(), caller string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case mat.Error:
				err = newError(ErrDegenerate, fmt.Sprintf("%s: %s", ErrGonum, e.Error()), caller)
			default:
				panic(r)
			}
		}
	}()
	fn()
	return nil
}
