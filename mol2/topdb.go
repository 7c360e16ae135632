/*
 * topdb.go, part of molecule-renumber.
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
	"sort"
	"strings"

	"github.com/IndigoCarmine/molecule-renumber/pdb"
)

// maxConectBonded is the hard cap of the PDB CONECT record: four bonded
// atoms per line.
const maxConectBonded = 4

// pdbElement derives a PDB element symbol from a Tripos atom type: the part
// before the first ".", truncated to two characters, upper-cased ("C.ar"
// becomes "C").
func pdbElement(atomType string) string {
	element, _, _ := strings.Cut(atomType, ".")
	if len(element) > 2 {
		element = element[:2]
	}
	return strings.ToUpper(element)
}

// ToPDB converts the document into a PDB document: one ATOM record per Mol2
// atom followed by the CONECT records for every bonded atom.
//
// Atom mapping: serial=atom id, name=atom name, resName=first 3 characters
// of the substructure name, chainID="A" (Mol2 has no chains), resSeq=subst
// id, coordinates copied, occupancy 1.0, tempFactor 0.0, element derived
// from the Tripos type. The charge is left empty: Mol2 carries a float
// charge with no 2-character PDB string encoding.
//
// Bond mapping: bonds are folded into an undirected adjacency map, then each
// atom with neighbors emits CONECT records anchored on its serial, at most
// four sorted neighbor serials each, in ascending anchor order.
func (D *Document) ToPDB() *pdb.Document {
	out := new(pdb.Document)
	for _, at := range D.atoms {
		resName := at.SubstName
		if len(resName) > 3 {
			resName = resName[:3]
		}
		out.AppendAtom(&pdb.AtomRecord{
			Serial:    at.AtomID,
			Name:      at.AtomName,
			ResName:   resName,
			ChainID:   "A",
			ResSeq:    at.SubstID,
			X:         at.X,
			Y:         at.Y,
			Z:         at.Z,
			Occupancy: 1.0,
			Element:   pdbElement(at.AtomType),
		})
	}
	connections := make(map[int][]int)
	for _, b := range D.bonds {
		connections[b.Origin] = append(connections[b.Origin], b.Target)
		connections[b.Target] = append(connections[b.Target], b.Origin)
	}
	serials := make([]int, 0, len(connections))
	for s := range connections {
		serials = append(serials, s)
	}
	sort.Ints(serials)
	for _, s := range serials {
		bonded := connections[s]
		sort.Ints(bonded)
		for i := 0; i < len(bonded); i += maxConectBonded {
			end := i + maxConectBonded
			if end > len(bonded) {
				end = len(bonded)
			}
			chunk := make([]int, end-i)
			copy(chunk, bonded[i:end])
			out.AppendConect(&pdb.ConectRecord{Serial: s, Bonded: chunk})
		}
	}
	return out
}
