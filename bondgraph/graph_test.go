package bondgraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNeighborsAreUndirected(Te *testing.T) {
	g := New()
	g.AddBond(1, 2)
	//one direction inserted, both must be visible
	if got := g.Neighbors(1); !cmp.Equal(got, []int{2}) {
		Te.Errorf("Neighbors(1) = %v, want [2]", got)
	}
	if got := g.Neighbors(2); !cmp.Equal(got, []int{1}) {
		Te.Errorf("Neighbors(2) = %v, want [1]", got)
	}
	//restating the bond from the other endpoint changes nothing
	g.AddBond(2, 1)
	if got := g.Neighbors(1); !cmp.Equal(got, []int{2}) {
		Te.Errorf("Neighbors(1) after restating = %v, want [2]", got)
	}
}

func TestNeighborsOfUnknownSerial(Te *testing.T) {
	g := New()
	g.AddBond(1, 2)
	if got := g.Neighbors(99); len(got) != 0 {
		Te.Errorf("Neighbors(99) = %v, want empty", got)
	}
	if g.Has(99) {
		Te.Error("Has(99) = true for an absent serial")
	}
}

func TestSelfBondIgnored(Te *testing.T) {
	g := New()
	g.AddBonds(1, 1, 2)
	if got := g.Neighbors(1); !cmp.Equal(got, []int{2}) {
		Te.Errorf("Neighbors(1) = %v, want [2]", got)
	}
}

func TestPathUnionSelf(Te *testing.T) {
	g := New()
	if got := g.PathUnion(7, 7); !cmp.Equal(got, []int{7}) {
		Te.Errorf("PathUnion(7,7) = %v, want [7]", got)
	}
}

func TestPathUnionChain(Te *testing.T) {
	g := New()
	g.AddBond(1, 2)
	g.AddBond(2, 3)
	want := []int{1, 2, 3}
	if got := g.PathUnion(1, 3); !cmp.Equal(got, want) {
		Te.Errorf("PathUnion(1,3) = %v, want %v", got, want)
	}
	if got := g.PathUnion(3, 1); !cmp.Equal(got, want) {
		Te.Errorf("PathUnion(3,1) = %v, want %v", got, want)
	}
}

func TestPathUnionRing(Te *testing.T) {
	//triangle 1-2-3-1: both the direct edge and the detour through 3 are
	//simple paths from 1 to 2, so 3 belongs to the union.
	g := New()
	g.AddBonds(1, 2, 3)
	g.AddBond(2, 3)
	want := []int{1, 2, 3}
	if got := g.PathUnion(1, 2); !cmp.Equal(got, want) {
		Te.Errorf("PathUnion(1,2) = %v, want %v", got, want)
	}
}

func TestPathUnionExcludesDeadEnds(Te *testing.T) {
	//4 hangs off 2 but lies on no simple 1..3 path
	g := New()
	g.AddBond(1, 2)
	g.AddBond(2, 3)
	g.AddBond(2, 4)
	want := []int{1, 2, 3}
	if got := g.PathUnion(1, 3); !cmp.Equal(got, want) {
		Te.Errorf("PathUnion(1,3) = %v, want %v", got, want)
	}
}

func TestPathUnionDisconnected(Te *testing.T) {
	g := New()
	g.AddBond(1, 2)
	g.AddBond(3, 4)
	if got := g.PathUnion(1, 4); len(got) != 0 {
		Te.Errorf("PathUnion(1,4) = %v, want empty", got)
	}
}

func TestUndirectedExposesGonumGraph(Te *testing.T) {
	g := New()
	g.AddBond(1, 2)
	if !g.Undirected().HasEdgeBetween(2, 1) {
		Te.Error("underlying gonum graph misses the 1-2 edge")
	}
}
