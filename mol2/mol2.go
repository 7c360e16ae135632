/*
 * mol2.go, part of molecule-renumber.
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

// Package mol2 reads and writes Tripos Mol2 files. ATOM and BOND lines are
// free format (whitespace separated) on input and re-serialized with fixed
// widths on output; unlike the pdb package, a malformed atom or bond line is
// a load error, not a raw-text fallback.
package mol2

import (
	"fmt"
	"strconv"
	"strings"
)

// AtomRecord is one line of an @<TRIPOS>ATOM section.
type AtomRecord struct {
	AtomID    int
	AtomName  string
	X, Y, Z   float64
	AtomType  string //Tripos type, e.g. "C.ar"
	SubstID   int
	SubstName string
	Charge    float64
	StatusBit string
}

// Copy returns a copy of the record.
func (A *AtomRecord) Copy() *AtomRecord {
	if A == nil {
		panic("Attempted to copy a nil atom record")
	}
	na := *A
	return &na
}

// BondRecord is one line of an @<TRIPOS>BOND section: an undirected bond
// stated from Origin to Target.
type BondRecord struct {
	BondID    int
	Origin    int
	Target    int
	Type      string //e.g. "1", "2", "ar", "am"
	StatusBit string
}

// ParseAtomLine tokenizes one ATOM line: id, name, x, y, z, type, subst_id,
// subst_name, charge, and an optional status bit. Fewer than nine tokens, or
// a failed numeric conversion, is an error.
func ParseAtomLine(line string) (*AtomRecord, error) {
	parts := strings.Fields(line)
	if len(parts) < 9 {
		return nil, Error{message: fmt.Sprintf("%s: atom line has %d of 9 fields", WrongFormat, len(parts)), deco: []string{"ParseAtomLine"}}
	}
	at := new(AtomRecord)
	errs := make([]error, 6)
	at.AtomID, errs[0] = strconv.Atoi(parts[0])
	at.AtomName = parts[1]
	at.X, errs[1] = strconv.ParseFloat(parts[2], 64)
	at.Y, errs[2] = strconv.ParseFloat(parts[3], 64)
	at.Z, errs[3] = strconv.ParseFloat(parts[4], 64)
	at.AtomType = parts[5]
	at.SubstID, errs[4] = strconv.Atoi(parts[6])
	at.SubstName = parts[7]
	at.Charge, errs[5] = strconv.ParseFloat(parts[8], 64)
	if len(parts) > 9 {
		at.StatusBit = parts[9]
	}
	for _, err := range errs {
		if err != nil {
			return nil, Error{message: fmt.Sprintf("%s: %v", WrongFormat, err), deco: []string{"ParseAtomLine"}}
		}
	}
	return at, nil
}

// Line formats the record with the presentation widths of this tool: id
// right in 7, name left in 8, coordinates right in 10 with 4 decimals, type
// left in 5, subst id right in 6, subst name left in 4, charge right in 10
// with 4 decimals. The status bit is carried in the record but not
// re-emitted.
func (A *AtomRecord) Line() string {
	return fmt.Sprintf("%7d %-8s%10.4f%10.4f%10.4f %-5s%6d     %-4s%10.4f",
		A.AtomID, A.AtomName, A.X, A.Y, A.Z, A.AtomType, A.SubstID, A.SubstName, A.Charge)
}

// ParseBondLine tokenizes one BOND line: id, origin atom id, target atom id,
// bond type, and an optional status bit.
func ParseBondLine(line string) (*BondRecord, error) {
	parts := strings.Fields(line)
	if len(parts) < 4 {
		return nil, Error{message: fmt.Sprintf("%s: bond line has %d of 4 fields", WrongFormat, len(parts)), deco: []string{"ParseBondLine"}}
	}
	b := new(BondRecord)
	errs := make([]error, 3)
	b.BondID, errs[0] = strconv.Atoi(parts[0])
	b.Origin, errs[1] = strconv.Atoi(parts[1])
	b.Target, errs[2] = strconv.Atoi(parts[2])
	b.Type = parts[3]
	if len(parts) > 4 {
		b.StatusBit = parts[4]
	}
	for _, err := range errs {
		if err != nil {
			return nil, Error{message: fmt.Sprintf("%s: %v", WrongFormat, err), deco: []string{"ParseBondLine"}}
		}
	}
	return b, nil
}

// Line formats the record with every field right-justified in 6 columns.
// The status bit is not re-emitted.
func (B *BondRecord) Line() string {
	return fmt.Sprintf("%6d%6d%6d%6s", B.BondID, B.Origin, B.Target, B.Type)
}
