/*
 * document.go, part of molecule-renumber.
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

package mol2

import (
	"fmt"
	"strings"

	"github.com/IndigoCarmine/molecule-renumber/bondgraph"
)

type entryKind int

const (
	sectionEntry  entryKind = iota //an @<TRIPOS> header
	moleculeEntry                  //a metadata line inside @<TRIPOS>MOLECULE
	atomEntry
	bondEntry
	blankEntry
	otherEntry //a line in a section this engine does not model
)

type entry struct {
	kind entryKind
	atom *AtomRecord
	bond *BondRecord
	raw  string
}

// Document is an ordered sequence of tagged Mol2 entries, mirroring the
// preserve-everything design of pdb.Document: section headers, MOLECULE
// metadata, blank lines and unmodeled sections all survive a load/dump
// round trip in place.
type Document struct {
	entries  []entry
	atoms    []*AtomRecord
	bonds    []*BondRecord
	molecule []string
}

const sectionPrefix = "@<TRIPOS>"

// Load resets the document and parses text section by section. ATOM and BOND
// lines that fail to parse abort the load with an error; this codec is
// stricter than the PDB one on purpose, there is no raw-text fallback for
// them.
func (D *Document) Load(text string) error {
	D.entries = D.entries[:0]
	D.atoms = D.atoms[:0]
	D.bonds = D.bonds[:0]
	D.molecule = D.molecule[:0]
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	section := ""
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			D.entries = append(D.entries, entry{kind: blankEntry, raw: line})
			continue
		}
		if strings.HasPrefix(line, sectionPrefix) {
			section = strings.TrimSpace(line)[len(sectionPrefix):]
			D.entries = append(D.entries, entry{kind: sectionEntry, raw: line})
			continue
		}
		switch section {
		case "MOLECULE":
			D.molecule = append(D.molecule, line)
			D.entries = append(D.entries, entry{kind: moleculeEntry, raw: line})
		case "ATOM":
			at, err := ParseAtomLine(line)
			if err != nil {
				return errDecorate(err, fmt.Sprintf("Load: line %d", i+1))
			}
			D.atoms = append(D.atoms, at)
			D.entries = append(D.entries, entry{kind: atomEntry, atom: at})
		case "BOND":
			b, err := ParseBondLine(line)
			if err != nil {
				return errDecorate(err, fmt.Sprintf("Load: line %d", i+1))
			}
			D.bonds = append(D.bonds, b)
			D.entries = append(D.entries, entry{kind: bondEntry, bond: b})
		default:
			D.entries = append(D.entries, entry{kind: otherEntry, raw: line})
		}
	}
	return nil
}

// Dump renders the document back to text in entry order, with a single final
// line terminator.
func (D *Document) Dump() string {
	lines := make([]string, 0, len(D.entries))
	for _, e := range D.entries {
		switch e.kind {
		case atomEntry:
			lines = append(lines, e.atom.Line())
		case bondEntry:
			lines = append(lines, e.bond.Line())
		default:
			lines = append(lines, e.raw)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// Atoms returns the ATOM records in document order.
func (D *Document) Atoms() []*AtomRecord {
	return D.atoms
}

// Bonds returns the BOND records in document order.
func (D *Document) Bonds() []*BondRecord {
	return D.bonds
}

// MoleculeRecord returns the metadata lines of the @<TRIPOS>MOLECULE
// section, verbatim.
func (D *Document) MoleculeRecord() []string {
	return D.molecule
}

// Graph builds the undirected bond graph from the document's BOND records.
// Each record contributes both directions. Rebuilt on every call, like
// pdb.Document.Graph.
func (D *Document) Graph() *bondgraph.Graph {
	g := bondgraph.New()
	for _, b := range D.bonds {
		g.AddBond(b.Origin, b.Target)
	}
	return g
}
