/*
 * pdb.go, part of molecule-renumber.
 *
 * Copyright 2025 IndigoCarmine
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

// Package pdb reads and writes PDB ATOM and CONECT records with fixed-column
// fidelity, and keeps everything else in a file as verbatim text so that a
// loaded document dumps back byte for byte.
package pdb

import (
	"fmt"
	"strconv"
	"strings"
)

// AtomRecord is one ATOM line. Serial is the only identifier the engine keys
// on; it is assumed unique within a document by convention, and never
// validated. Behavior under duplicate serials is undefined.
type AtomRecord struct {
	Serial     int
	Name       string
	AltLoc     string
	ResName    string
	ChainID    string
	ResSeq     int
	ICode      string
	X, Y, Z    float64
	Occupancy  float64
	TempFactor float64
	Element    string
	Charge     string
}

// Copy returns a copy of the record. The edit flow is copy, mutate the copy,
// then Document.ReplaceAtom.
func (A *AtomRecord) Copy() *AtomRecord {
	if A == nil {
		panic("Attempted to copy a nil atom record")
	}
	na := *A
	return &na
}

// ConectRecord is one CONECT line: bonds from the anchor Serial to up to 4
// other atoms. Longer neighbor lists are split across several records that
// share the anchor.
type ConectRecord struct {
	Serial int
	Bonded []int
}

// Copy returns a copy of the record, with its own bonded slice.
func (C *ConectRecord) Copy() *ConectRecord {
	if C == nil {
		panic("Attempted to copy a nil conect record")
	}
	nc := &ConectRecord{Serial: C.Serial}
	nc.Bonded = append(nc.Bonded, C.Bonded...)
	return nc
}

// field returns the whitespace-trimmed substring [start:end) of line, with
// the range clamped to the line. Reading past the end of a short line yields
// an empty field, not a panic; whether that is an error depends on the field.
func field(line string, start, end int) string {
	if start >= len(line) || start < 0 {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[start:end])
}

// ParseAtomLine parses one ATOM line at the column offsets of the PDB format.
// Numeric fields come from the trimmed column ranges; occupancy and
// tempFactor default to 0 when blank. A conversion failure means the line
// does not follow the contract, and the caller should keep it as raw text.
func ParseAtomLine(line string) (*AtomRecord, error) {
	at := new(AtomRecord)
	errs := make([]error, 6)
	at.Serial, errs[0] = strconv.Atoi(field(line, 6, 11))
	at.Name = field(line, 12, 16)
	at.AltLoc = field(line, 16, 17)
	at.ResName = field(line, 17, 20)
	at.ChainID = field(line, 21, 22)
	at.ResSeq, errs[1] = strconv.Atoi(field(line, 22, 26))
	at.ICode = field(line, 26, 27)
	at.X, errs[2] = strconv.ParseFloat(field(line, 30, 38), 64)
	at.Y, errs[3] = strconv.ParseFloat(field(line, 38, 46), 64)
	at.Z, errs[4] = strconv.ParseFloat(field(line, 46, 54), 64)
	if occ := field(line, 54, 60); occ != "" {
		at.Occupancy, errs[5] = strconv.ParseFloat(occ, 64)
	}
	if bf := field(line, 60, 66); bf != "" {
		var err error
		at.TempFactor, err = strconv.ParseFloat(bf, 64)
		errs = append(errs, err)
	}
	at.Element = field(line, 76, 78)
	at.Charge = field(line, 78, 80)
	for _, err := range errs {
		if err != nil {
			return nil, Error{message: fmt.Sprintf("%s: %v", WrongFormat, err), deco: []string{"ParseAtomLine"}}
		}
	}
	return at, nil
}

// Line formats the record back into an 80-column ATOM line. The widths and
// justifications mirror the parse offsets exactly; a well-formed input line
// reproduces byte for byte.
func (A *AtomRecord) Line() string {
	return fmt.Sprintf("ATOM  %5d %-4s%1s%3s %1s%4d%1s   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s%2s",
		A.Serial, A.Name, A.AltLoc, A.ResName, A.ChainID, A.ResSeq, A.ICode,
		A.X, A.Y, A.Z, A.Occupancy, A.TempFactor, A.Element, A.Charge)
}

// conectFields are the four fixed 5-wide bonded-atom columns of a CONECT
// line, after the anchor serial.
var conectFields = [4][2]int{{11, 16}, {16, 21}, {21, 26}, {26, 31}}

// ParseConectLine parses one CONECT line. Bonded columns that trim to empty
// are skipped; a non-numeric anchor or bonded field is a parse error.
func ParseConectLine(line string) (*ConectRecord, error) {
	serial, err := strconv.Atoi(field(line, 6, 11))
	if err != nil {
		return nil, Error{message: fmt.Sprintf("%s: %v", WrongFormat, err), deco: []string{"ParseConectLine"}}
	}
	con := &ConectRecord{Serial: serial}
	for _, w := range conectFields {
		val := field(line, w[0], w[1])
		if val == "" {
			continue
		}
		b, err := strconv.Atoi(val)
		if err != nil {
			return nil, Error{message: fmt.Sprintf("%s: %v", WrongFormat, err), deco: []string{"ParseConectLine"}}
		}
		con.Bonded = append(con.Bonded, b)
	}
	return con, nil
}

// Line formats the record back into a CONECT line. The bonded block is
// left-justified and padded to 20 characters no matter how many of the four
// slots are used.
func (C *ConectRecord) Line() string {
	var b strings.Builder
	for _, s := range C.Bonded {
		fmt.Fprintf(&b, "%5d", s)
	}
	return fmt.Sprintf("CONECT%5d%-20s", C.Serial, b.String())
}
