/*
 * interfaces.go, part of ncad.
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
)

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //If passed an empty string, it should just return the current value, not add the empty string to the slice.
}

// Sentinel conditions for the errors of this package.
var (
	ErrInvalidCell    = errors.New("invalid unit cell")
	ErrUnknownElement = errors.New("unknown element")
	ErrMiller         = errors.New("unusable Miller index")
)

// CError is the error type of the ncad package.
type CError struct {
	msg      string
	kind     error
	deco     *[]string //shared by all the copies of the error
	critical bool
}

func newCError(kind error, msg, caller string) CError {
	return CError{msg: msg, kind: kind, deco: &[]string{caller}, critical: true}
}

func (err CError) Error() string {
	if err.kind == nil {
		return "ncad: " + err.msg
	}
	return fmt.Sprintf("ncad: %s: %s", err.kind, err.msg)
}

// Decorate adds dec to the list of callers of the error, and returns the list.
func (err CError) Decorate(dec string) []string {
	if err.deco == nil {
		return nil
	}
	if dec != "" {
		*err.deco = append(*err.deco, dec)
	}
	return *err.deco
}

// Critical is false only for errors that leave the result usable.
func (err CError) Critical() bool { return err.critical }

func (err CError) Unwrap() error { return err.kind }

// errDecorate decorates err with the caller's name if err implements Error,
// and wraps it in a CError otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
		return e
	}
	return CError{msg: err.Error(), kind: err, deco: &[]string{caller}, critical: true}
}
