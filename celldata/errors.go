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

package celldata

import (
	"errors"
	"fmt"
)

// ErrFormat is wrapped by all the errors caused by malformed .cd files.
var ErrFormat = errors.New("malformed cell data")

// Error is the error type of the package. It fulfills ncad.Error.
type Error struct {
	message  string
	filename string    //the file that has problems, or empty string if none.
	deco     *[]string //shared by all the copies of the error
	critical bool
	kind     error
}

func newError(msg, filename, caller string, kind error) Error {
	return Error{message: msg, filename: filename, deco: &[]string{caller}, critical: true, kind: kind}
}

func (err Error) Error() string {
	return fmt.Sprintf("cd file %s error: %s", err.filename, err.message)
}

// Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	if E.deco == nil {
		return nil
	}
	if deco != "" {
		*E.deco = append(*E.deco, deco)
	}
	return *E.deco
}

// FileName returns the file to which the error was associated
func (err Error) FileName() string { return err.filename }

// Format returns the format of the file (always "cd") associated to the error
func (err Error) Format() string { return "cd" }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

func (err Error) Unwrap() error { return err.kind }
