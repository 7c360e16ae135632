// Package bondgraph turns connectivity records (PDB CONECT, Mol2 BOND) into
// an undirected graph keyed by atom serial, and answers path queries on it.
package bondgraph

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is an undirected bond graph. Nodes are atom serials. Source records
// state each bond from one endpoint, from the other, or from both; AddBond
// always inserts both directions, so the graph is the union closure of
// whatever the file happened to contain.
type Graph struct {
	g *simple.UndirectedGraph
}

func New() *Graph {
	return &Graph{g: simple.NewUndirectedGraph()}
}

// AddBond inserts the undirected edge a-b. Self-pairs are ignored: a CONECT
// record listing its own anchor declares no bond.
func (G *Graph) AddBond(a, b int) {
	if a == b {
		return
	}
	G.g.SetEdge(simple.Edge{F: simple.Node(int64(a)), T: simple.Node(int64(b))})
}

// AddBonds inserts one edge from anchor to each of bonded. This is the shape
// of a CONECT record.
func (G *Graph) AddBonds(anchor int, bonded ...int) {
	for _, b := range bonded {
		G.AddBond(anchor, b)
	}
}

// Has reports whether serial appears in at least one bond.
func (G *Graph) Has(serial int) bool {
	return G.g.Node(int64(serial)) != nil
}

// Neighbors returns the serials bonded to serial, in ascending order. A
// serial with no bonds yields an empty slice, which is not an error.
func (G *Graph) Neighbors(serial int) []int {
	nodes := graph.NodesOf(G.g.From(int64(serial)))
	ret := make([]int, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, int(n.ID()))
	}
	sort.Ints(ret)
	return ret
}

// NeighborSet returns the serials bonded to serial as a set.
func (G *Graph) NeighborSet(serial int) map[int]bool {
	set := make(map[int]bool)
	it := G.g.From(int64(serial))
	for it.Next() {
		set[int(it.Node().ID())] = true
	}
	return set
}

// PathUnion returns the set of serials lying on any simple path between a and
// b, as a sorted slice. It enumerates every simple path by depth-first search
// with a path-local visited set, so on reaching b it keeps backtracking to
// collect the other branches (a ring contributes both ways around). The
// enumeration is exponential in the worst case; it is meant for
// molecule-sized graphs, not for dense networks.
// If a equals b the result is just {a}. If no path exists the result is
// empty.
func (G *Graph) PathUnion(a, b int) []int {
	if a == b {
		return []int{a}
	}
	union := make(map[int64]bool)
	target := int64(b)
	inpath := map[int64]bool{int64(a): true}
	path := []int64{int64(a)}
	var walk func(cur int64)
	walk = func(cur int64) {
		if cur == target {
			for _, s := range path {
				union[s] = true
			}
			return
		}
		it := G.g.From(cur)
		for it.Next() {
			n := it.Node().ID()
			if inpath[n] {
				continue
			}
			inpath[n] = true
			path = append(path, n)
			walk(n)
			path = path[:len(path)-1]
			delete(inpath, n)
		}
	}
	walk(int64(a))
	ret := make([]int, 0, len(union))
	for s := range union {
		ret = append(ret, int(s))
	}
	sort.Ints(ret)
	return ret
}

// Undirected exposes the underlying gonum graph, for callers that want to
// run their own graph algorithms over the bonds.
func (G *Graph) Undirected() *simple.UndirectedGraph {
	return G.g
}
