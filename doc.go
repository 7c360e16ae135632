/*
 * doc.go, part of molecule-renumber.
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

/*Package molfile is the root of the molecule-renumber engine. It holds the
error interface shared by the format packages.

	**Capabilities**

    Reads/writes PDB ATOM and CONECT records with byte-faithful,
	fixed-column formatting. Lines the engine does not model, or
	cannot parse, survive load/dump verbatim.

    Reads/writes Tripos Mol2 MOLECULE/ATOM/BOND sections, and converts
	a Mol2 document into a PDB document (atom remapping plus
	bond-to-CONECT chunking).

    Derives an undirected bond graph from CONECT or BOND records and
	answers connectivity queries: hydrogens bonded to an atom, and the
	union of atoms lying on any simple path between two atoms.

The format-specific work lives in the pdb and mol2 subpackages; the graph
machinery in bondgraph. See cmd/molfile for a small command-line driver.
*/
package molfile
