/*
 * celldata.go, part of ncad.
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

/*
Package celldata reads and writes the .cd cell data format.

A .cd file is line oriented:

	name
	celldata
	comment
	symmetry group, Hermann-Mauguin symbol
	(free line)
	alpha
	beta
	gamma
	a
	b
	c
	number of atoms
	Label Element x y z occupancy      (one line per atom, fractional coordinates)
	number of bonds
	Label1 Label2 ID1 ID2              (one line per bond, 0-based atom indexes)

Files whose name ends in .zst are zstd-compressed, files ending in .gz are
gzip-compressed, and anything else is plain text.
*/
package celldata

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rmera/ncad"
	"github.com/rmera/ncad/atomid"
	"github.com/rmera/ncad/geo"
)

// Bond is a bond line of a .cd file. ID1 and ID2 are indexes in the atom list.
type Bond struct {
	Label1, Label2 string
	ID1, ID2       int
}

// CellData is the content of a .cd file.
type CellData struct {
	Name     string
	Comment  string
	Symmetry string
	Cell     ncad.UnitCell
	Atoms    []ncad.CellAtom
	Bonds    []Bond
}

// AtomID returns the ID given to the ith atom of the file.
func AtomID(i int) atomid.CellAtomID {
	return atomid.NewCellAtomID(0, uint32(i))
}

// AssignBonds finds the bonds of the cell with ncad.AssignCellBonds and
// replaces Bonds with them. Bonds between the same two atoms through
// different cell images give a single line.
func (cd *CellData) AssignBonds(batch uint32, tol *ncad.Tolerance) ([]ncad.CellBond, error) {
	bonds, err := ncad.AssignCellBonds(cd.Cell, cd.Atoms, batch, tol)
	if err != nil {
		return nil, errDecorate(err, "AssignBonds")
	}
	index := make(map[atomid.CellAtomID]int, len(cd.Atoms))
	for i, at := range cd.Atoms {
		index[at.ID] = i
	}
	seen := make(map[atomid.BondAtomPair]bool)
	cd.Bonds = cd.Bonds[:0]
	for _, b := range bonds {
		k := atomid.BondAtomPair{ID1: uint64(b.Atom1), ID2: uint64(b.Atom2)}.Canonical()
		if b.Atom1 == b.Atom2 || seen[k] {
			continue
		}
		seen[k] = true
		i, j := index[b.Atom1], index[b.Atom2]
		cd.Bonds = append(cd.Bonds, Bond{cd.Atoms[i].Label, cd.Atoms[j].Label, i, j})
	}
	return bonds, nil
}

type zstdReadCloser struct {
	*zstd.Decoder
}

// Close releases the decoder. *zstd.Decoder's own Close returns nothing.
func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func compression(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".zst"):
		return "zstd"
	case strings.HasSuffix(n, ".gz"):
		return "gzip"
	}
	return ""
}

// ReadFile reads the .cd file name, decompressing it if needed.
func ReadFile(name string) (*CellData, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newError(err.Error(), name, "ReadFile", err)
	}
	defer f.Close()
	var r io.ReadCloser
	switch compression(name) {
	case "zstd":
		d, err := zstd.NewReader(f)
		if err != nil {
			return nil, newError("Can't start zstd decoder "+err.Error(), name, "ReadFile", err)
		}
		r = zstdReadCloser{d}
	case "gzip":
		r, err = gzip.NewReader(f)
		if err != nil {
			return nil, newError("Can't start gzip decoder "+err.Error(), name, "ReadFile", err)
		}
	default:
		r = f
	}
	defer r.Close()
	cd, err := read(r, name)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	return cd, nil
}

// Read reads cell data in .cd format from r.
func Read(r io.Reader) (*CellData, error) {
	cd, err := read(r, "")
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return cd, nil
}

// lineReader gives the lines of a file, keeping count of them for error messages.
type lineReader struct {
	s        *bufio.Scanner
	n        int
	filename string
}

func (l *lineReader) next(what string) (string, error) {
	if !l.s.Scan() {
		err := l.s.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return "", newError(fmt.Sprintf("line %d: reading %s: %s", l.n+1, what, err), l.filename, "next", ErrFormat)
	}
	l.n++
	return strings.TrimSpace(l.s.Text()), nil
}

func (l *lineReader) float(what string) (float64, error) {
	str, err := l.next(what)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, newError(fmt.Sprintf("line %d: bad %s %q", l.n, what, str), l.filename, "float", ErrFormat)
	}
	return f, nil
}

func (l *lineReader) count(what string) (int, error) {
	str, err := l.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(str)
	if err != nil || n < 0 {
		return 0, newError(fmt.Sprintf("line %d: bad %s %q", l.n, what, str), l.filename, "count", ErrFormat)
	}
	return n, nil
}

func read(r io.Reader, filename string) (*CellData, error) {
	l := &lineReader{s: bufio.NewScanner(r), filename: filename}
	cd := new(CellData)
	var err error
	header := make([]string, 5)
	for i := range header {
		if header[i], err = l.next("header"); err != nil {
			return nil, err
		}
	}
	cd.Name, cd.Comment, cd.Symmetry = header[0], header[2], header[3]
	var p [6]float64
	for i, what := range []string{"alpha", "beta", "gamma", "a", "b", "c"} {
		if p[i], err = l.float(what); err != nil {
			return nil, err
		}
	}
	cd.Cell, err = ncad.NewUnitCell(p[3], p[4], p[5], p[0], p[1], p[2])
	if err != nil {
		return nil, newError(err.Error(), filename, "read", err)
	}
	natoms, err := l.count("number of atoms")
	if err != nil {
		return nil, err
	}
	cd.Atoms = make([]ncad.CellAtom, 0, natoms)
	labels := make(map[string]int, natoms)
	for i := 0; i < natoms; i++ {
		str, err := l.next("atom")
		if err != nil {
			return nil, err
		}
		at, err := parseAtom(str)
		if err != nil {
			return nil, newError(fmt.Sprintf("line %d: %s", l.n, err), filename, "read", ErrFormat)
		}
		if _, ok := labels[at.Label]; ok {
			log.Printf("Repeated atom label %s in %s", at.Label, filename)
		} else {
			labels[at.Label] = i
		}
		at.ID = AtomID(i)
		cd.Atoms = append(cd.Atoms, at)
	}
	nbonds, err := l.count("number of bonds")
	if err != nil {
		return nil, err
	}
	seen := make(map[atomid.BondAtomPair]bool, nbonds)
	for i := 0; i < nbonds; i++ {
		str, err := l.next("bond")
		if err != nil {
			return nil, err
		}
		b, err := parseBond(str, natoms)
		if err != nil {
			return nil, newError(fmt.Sprintf("line %d: %s", l.n, err), filename, "read", ErrFormat)
		}
		if cd.Atoms[b.ID1].Label != b.Label1 || cd.Atoms[b.ID2].Label != b.Label2 {
			log.Printf("Bond labels %s-%s don't match atoms %d and %d in %s, the indexes will be used", b.Label1, b.Label2, b.ID1, b.ID2, filename)
		}
		k := atomid.BondAtomPair{ID1: uint64(AtomID(b.ID1)), ID2: uint64(AtomID(b.ID2))}.Canonical()
		if b.ID1 == b.ID2 || seen[k] {
			log.Printf("Dropping repeated or self bond %d-%d in %s", b.ID1, b.ID2, filename)
			continue
		}
		seen[k] = true
		cd.Bonds = append(cd.Bonds, b)
	}
	return cd, nil
}

func parseAtom(str string) (ncad.CellAtom, error) {
	var at ncad.CellAtom
	fields := strings.Fields(str)
	if len(fields) < 6 {
		return at, fmt.Errorf("atom line %q needs 6 fields", str)
	}
	var v [4]float64
	for i := range v {
		f, err := strconv.ParseFloat(fields[i+2], 64)
		if err != nil {
			return at, fmt.Errorf("bad number %q in atom line", fields[i+2])
		}
		v[i] = f
	}
	at.Label = fields[0]
	at.Element = fields[1]
	at.Fract = geo.NewVector3D(v[0], v[1], v[2])
	at.Occupancy = v[3]
	return at, nil
}

func parseBond(str string, natoms int) (Bond, error) {
	var b Bond
	fields := strings.Fields(str)
	if len(fields) < 4 {
		return b, fmt.Errorf("bond line %q needs 4 fields", str)
	}
	b.Label1, b.Label2 = fields[0], fields[1]
	var err error
	if b.ID1, err = strconv.Atoi(fields[2]); err != nil {
		return b, fmt.Errorf("bad atom index %q", fields[2])
	}
	if b.ID2, err = strconv.Atoi(fields[3]); err != nil {
		return b, fmt.Errorf("bad atom index %q", fields[3])
	}
	if b.ID1 < 0 || b.ID1 >= natoms || b.ID2 < 0 || b.ID2 >= natoms {
		return b, fmt.Errorf("atom index out of range in %q", str)
	}
	return b, nil
}

// WriteFile writes cd to the file name, compressed according to the extension.
func WriteFile(name string, cd *CellData) error {
	f, err := os.Create(name)
	if err != nil {
		return newError(err.Error(), name, "WriteFile", err)
	}
	var w io.WriteCloser
	switch compression(name) {
	case "zstd":
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case "gzip":
		w, err = gzip.NewWriterLevel(f, gzip.BestCompression)
	default:
		w = nopWriteCloser{f}
	}
	if err != nil {
		f.Close()
		return newError("Can't start compressor "+err.Error(), name, "WriteFile", err)
	}
	if err = write(w, cd, name); err != nil {
		w.Close()
		f.Close()
		return errDecorate(err, "WriteFile")
	}
	if err = w.Close(); err != nil {
		f.Close()
		return newError(err.Error(), name, "WriteFile", err)
	}
	if err = f.Close(); err != nil {
		return newError(err.Error(), name, "WriteFile", err)
	}
	return nil
}

// Write writes cd in .cd format to w.
func Write(w io.Writer, cd *CellData) error {
	if err := write(w, cd, ""); err != nil {
		return errDecorate(err, "Write")
	}
	return nil
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func write(w io.Writer, cd *CellData, filename string) error {
	bw := bufio.NewWriter(w)
	u := cd.Cell
	fmt.Fprintf(bw, "%s\ncelldata\n%s\n%s\n\n", oneLine(cd.Name), oneLine(cd.Comment), oneLine(cd.Symmetry))
	for _, v := range []float64{u.Alpha, u.Beta, u.Gamma, u.A, u.B, u.C} {
		fmt.Fprintln(bw, ftoa(v))
	}
	fmt.Fprintln(bw, len(cd.Atoms))
	for _, at := range cd.Atoms {
		if strings.ContainsAny(at.Label, " \t\n") || at.Label == "" || strings.ContainsAny(at.Element, " \t\n") || at.Element == "" {
			return newError(fmt.Sprintf("atom label %q and element %q must be single words", at.Label, at.Element), filename, "write", ErrFormat)
		}
		fmt.Fprintf(bw, "%s %s %s %s %s %s\n", at.Label, at.Element, ftoa(at.Fract.X), ftoa(at.Fract.Y), ftoa(at.Fract.Z), ftoa(at.Occupancy))
	}
	fmt.Fprintln(bw, len(cd.Bonds))
	for _, b := range cd.Bonds {
		fmt.Fprintf(bw, "%s %s %d %d\n", b.Label1, b.Label2, b.ID1, b.ID2)
	}
	if err := bw.Flush(); err != nil {
		return newError(err.Error(), filename, "write", err)
	}
	return nil
}

// errDecorate is a helper function that asserts that the error is
// implements ncad.Error and decorates the error with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	if e, ok := err.(ncad.Error); ok {
		e.Decorate(caller)
		return e
	}
	return err
}
