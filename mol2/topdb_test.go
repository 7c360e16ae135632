package mol2

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPDBElement(Te *testing.T) {
	for atomType, want := range map[string]string{
		"C.ar": "C",
		"N.4":  "N",
		"Cl":   "CL",
		"Sulf": "SU", //truncated to the 2-character PDB element field
		"H":    "H",
	} {
		if got := pdbElement(atomType); got != want {
			Te.Errorf("pdbElement(%q) = %q, want %q", atomType, got, want)
		}
	}
}

func TestToPDBAtomMapping(Te *testing.T) {
	doc := loadSample(Te)
	out := doc.ToPDB()
	atoms := out.Atoms()
	if len(atoms) != 3 {
		Te.Fatalf("converted %d atoms, want 3", len(atoms))
	}
	at := atoms[0]
	if at.Serial != 1 || at.Name != "C1" || at.ResName != "LIG" || at.ChainID != "A" ||
		at.ResSeq != 1 || at.Element != "C" || at.Charge != "" {
		Te.Errorf("converted atom = %+v", at)
	}
	if at.Occupancy != 1.0 || at.TempFactor != 0.0 {
		Te.Errorf("occupancy/tempFactor = %v/%v, want 1/0", at.Occupancy, at.TempFactor)
	}
}

func TestToPDBResNameTruncated(Te *testing.T) {
	doc := new(Document)
	text := strings.Join([]string{
		"@<TRIPOS>ATOM",
		"1 C1 0.0 0.0 0.0 C.3 7 LIGAND 0.0",
	}, "\n") + "\n"
	if err := doc.Load(text); err != nil {
		Te.Fatal(err)
	}
	at := doc.ToPDB().Atoms()[0]
	if at.ResName != "LIG" || at.ResSeq != 7 {
		Te.Errorf("resName/resSeq = %q/%d, want LIG/7", at.ResName, at.ResSeq)
	}
}

func TestToPDBConects(Te *testing.T) {
	doc := loadSample(Te)
	cons := doc.ToPDB().Conects()
	//sample bonds: 1-2 and 2-3
	want := []struct {
		serial int
		bonded []int
	}{
		{1, []int{2}},
		{2, []int{1, 3}},
		{3, []int{2}},
	}
	if len(cons) != len(want) {
		Te.Fatalf("got %d conect records, want %d", len(cons), len(want))
	}
	for i, w := range want {
		if cons[i].Serial != w.serial || !cmp.Equal(cons[i].Bonded, w.bonded) {
			Te.Errorf("conect %d = %+v, want %+v", i, cons[i], w)
		}
	}
}

func TestToPDBBondChunking(Te *testing.T) {
	//an atom with 5 bonds must emit 2 CONECT records, 4 neighbors then 1
	lines := []string{"@<TRIPOS>ATOM"}
	for i := 1; i <= 6; i++ {
		lines = append(lines, fmt.Sprintf("%d X%d 0.0 0.0 0.0 C.3 1 LIG 0.0", i, i))
	}
	lines = append(lines, "@<TRIPOS>BOND")
	for i := 2; i <= 6; i++ {
		lines = append(lines, fmt.Sprintf("%d 1 %d 1", i-1, i))
	}
	doc := new(Document)
	if err := doc.Load(strings.Join(lines, "\n") + "\n"); err != nil {
		Te.Fatal(err)
	}
	var chunks [][]int
	for _, con := range doc.ToPDB().Conects() {
		if con.Serial == 1 {
			chunks = append(chunks, con.Bonded)
		}
	}
	want := [][]int{{2, 3, 4, 5}, {6}}
	if diff := cmp.Diff(want, chunks); diff != "" {
		Te.Errorf("atom 1 chunks mismatch (-want +got):\n%s", diff)
	}
}

func TestToPDBDumpParses(Te *testing.T) {
	//the converted document must itself round-trip through the PDB codec
	doc := loadSample(Te)
	out := doc.ToPDB()
	text := out.Dump()
	back := out
	back.Load(text)
	if diff := cmp.Diff(text, back.Dump()); diff != "" {
		Te.Errorf("converted PDB does not round-trip (-want +got):\n%s", diff)
	}
	if len(back.Atoms()) != 3 {
		Te.Errorf("reloaded %d atoms, want 3", len(back.Atoms()))
	}
}
