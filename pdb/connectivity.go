/*
 * connectivity.go, part of molecule-renumber.
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
	"strings"

	"github.com/IndigoCarmine/molecule-renumber/bondgraph"
)

// Graph builds the undirected bond graph from the document's current CONECT
// entries. Each (anchor, bonded) pair contributes both directions, so the
// graph comes out the same whether the source file stated a bond from one
// endpoint, the other, or both. The graph is rebuilt on every call instead of
// cached; queries always see the current entries.
func (D *Document) Graph() *bondgraph.Graph {
	g := bondgraph.New()
	for _, con := range D.Conects() {
		g.AddBonds(con.Serial, con.Bonded...)
	}
	return g
}

// ConnectedHydrogens returns the hydrogen atoms bonded to at, in document
// order. An atom counts as a hydrogen when its name contains "H". That is
// the historical heuristic of this tool, kept as is: it can match names like
// "OH1" that are not hydrogens. It is not an element-field check.
// An atom with no CONECT entries yields an empty result.
func (D *Document) ConnectedHydrogens(at *AtomRecord) []*AtomRecord {
	neighbors := D.Graph().NeighborSet(at.Serial)
	ret := make([]*AtomRecord, 0)
	for _, a := range D.Atoms() {
		if neighbors[a.Serial] && strings.Contains(a.Name, "H") {
			ret = append(ret, a)
		}
	}
	return ret
}

// AtomsBetween returns every atom lying on some simple path between a and b,
// a and b included. Callers must not depend on the order of the result. If a
// and b have the same serial the result is just a, with no traversal. The
// underlying enumeration visits all simple paths, so rings contribute the
// atoms of both ways around; see bondgraph.Graph.PathUnion for the
// exponential worst case.
func (D *Document) AtomsBetween(a, b *AtomRecord) []*AtomRecord {
	if a.Serial == b.Serial {
		return []*AtomRecord{a}
	}
	serials := D.Graph().PathUnion(a.Serial, b.Serial)
	onpath := make(map[int]bool, len(serials))
	for _, s := range serials {
		onpath[s] = true
	}
	ret := make([]*AtomRecord, 0, len(serials))
	for _, at := range D.Atoms() {
		if onpath[at.Serial] {
			ret = append(ret, at)
		}
	}
	return ret
}
