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

package pdb

import (
	"fmt"
	"strings"
)

type entryKind int

const (
	rawEntry entryKind = iota
	atomEntry
	conectEntry
)

// entry is one line of the document: a typed atom, a typed conect, or the
// verbatim text of any line the engine does not model.
type entry struct {
	kind   entryKind
	atom   *AtomRecord
	conect *ConectRecord
	raw    string
}

// Document is an ordered sequence of entries mirroring the line order of a
// PDB file. Lines the engine cannot type, malformed ATOM/CONECT lines
// included, are kept verbatim, so Dump reproduces an unmodified file byte for
// byte. Records are addressed by pointer identity, not by field values: two
// records with equal fields are still distinct entries.
type Document struct {
	entries []entry
}

// Load resets the document and classifies each line of text. ATOM and CONECT
// lines that parse become typed records; ATOM and CONECT lines that do not
// parse are kept as raw text rather than reported, so Load never fails on a
// bad line.
func (D *Document) Load(text string) {
	D.entries = D.entries[:0]
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1] //the final line terminator is restored by Dump
	}
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		switch {
		case strings.HasPrefix(line, "ATOM"):
			at, err := ParseAtomLine(line)
			if err != nil {
				D.entries = append(D.entries, entry{kind: rawEntry, raw: line})
				continue
			}
			D.entries = append(D.entries, entry{kind: atomEntry, atom: at})
		case strings.HasPrefix(line, "CONECT"):
			con, err := ParseConectLine(line)
			if err != nil {
				D.entries = append(D.entries, entry{kind: rawEntry, raw: line})
				continue
			}
			D.entries = append(D.entries, entry{kind: conectEntry, conect: con})
		default:
			D.entries = append(D.entries, entry{kind: rawEntry, raw: line})
		}
	}
}

// Dump renders the document back to text, one line per entry in document
// order, with a single final line terminator.
func (D *Document) Dump() string {
	lines := make([]string, 0, len(D.entries))
	for _, e := range D.entries {
		switch e.kind {
		case atomEntry:
			lines = append(lines, e.atom.Line())
		case conectEntry:
			lines = append(lines, e.conect.Line())
		default:
			lines = append(lines, e.raw)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// Len returns the number of entries in the document, raw lines included.
func (D *Document) Len() int {
	return len(D.entries)
}

// Atoms returns the typed ATOM records in document order. The slice is
// rebuilt on each call; the records are the document's own, so mutating them
// mutates the document.
func (D *Document) Atoms() []*AtomRecord {
	ret := make([]*AtomRecord, 0, len(D.entries))
	for _, e := range D.entries {
		if e.kind == atomEntry {
			ret = append(ret, e.atom)
		}
	}
	return ret
}

// Conects returns the typed CONECT records in document order.
func (D *Document) Conects() []*ConectRecord {
	ret := make([]*ConectRecord, 0, len(D.entries))
	for _, e := range D.entries {
		if e.kind == conectEntry {
			ret = append(ret, e.conect)
		}
	}
	return ret
}

// AppendAtom appends an ATOM record at the end of the document.
func (D *Document) AppendAtom(at *AtomRecord) {
	D.entries = append(D.entries, entry{kind: atomEntry, atom: at})
}

// AppendConect appends a CONECT record at the end of the document.
func (D *Document) AppendConect(con *ConectRecord) {
	D.entries = append(D.entries, entry{kind: conectEntry, conect: con})
}

// AppendRaw appends a verbatim text line at the end of the document.
func (D *Document) AppendRaw(line string) {
	D.entries = append(D.entries, entry{kind: rawEntry, raw: line})
}

// RemoveConects removes every CONECT entry from the document and returns the
// removed records in document order. This is the only destructive operation;
// callers that rebuild connectivity (as the editor front end does) strip the
// old records with it before appending new ones.
func (D *Document) RemoveConects() []*ConectRecord {
	removed := make([]*ConectRecord, 0)
	kept := D.entries[:0]
	for _, e := range D.entries {
		if e.kind == conectEntry {
			removed = append(removed, e.conect)
			continue
		}
		kept = append(kept, e)
	}
	D.entries = kept
	return removed
}

// ReplaceAtom substitutes newAt for oldAt at the same document position.
// oldAt is located by pointer identity, so it must be a record previously
// obtained from this document (via Atoms, ConnectedHydrogens, etc), not a
// value-equal copy. If oldAt is not a current entry an error is returned and
// the document is unchanged.
func (D *Document) ReplaceAtom(oldAt, newAt *AtomRecord) error {
	for i, e := range D.entries {
		if e.kind == atomEntry && e.atom == oldAt {
			D.entries[i].atom = newAt
			return nil
		}
	}
	return Error{message: fmt.Sprintf("%s (serial %d)", AtomNotFound, oldAt.Serial), deco: []string{"ReplaceAtom"}}
}
