package pdb

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

//a small but representative file: header junk, atoms, a malformed ATOM line,
//connectivity and a trailer, all of it expected to survive load/dump.
var sampleText = strings.Join([]string{
	"REMARK     WRITTEN BY HAND FOR TESTS",
	"ATOM      1 C1   ALA A   1       0.000   0.000   0.000  1.00  0.00           C  ",
	"ATOM      2 H1   ALA A   1       1.000   0.000   0.000  1.00  0.00           H  ",
	"ATOM      3 O1   ALA A   1       2.000   0.000   0.000  1.00  0.00           O  ",
	"ATOM   garbage line that does not parse",
	"TER",
	"CONECT    1    2               ",
	"CONECT    2    3               ",
	"END",
}, "\n") + "\n"

func loadSample(Te *testing.T) *Document {
	doc := new(Document)
	doc.Load(sampleText)
	if len(doc.Atoms()) != 3 {
		Te.Fatalf("sample loaded %d atoms, want 3", len(doc.Atoms()))
	}
	return doc
}

func TestRoundTrip(Te *testing.T) {
	doc := loadSample(Te)
	if diff := cmp.Diff(sampleText, doc.Dump()); diff != "" {
		Te.Errorf("dump(load(text)) != text (-want +got):\n%s", diff)
	}
}

func TestLoadResets(Te *testing.T) {
	doc := loadSample(Te)
	doc.Load("END\n")
	if doc.Len() != 1 || len(doc.Atoms()) != 0 {
		Te.Errorf("Load did not reset: %d entries, %d atoms", doc.Len(), len(doc.Atoms()))
	}
}

func TestMalformedLineKeptVerbatim(Te *testing.T) {
	doc := loadSample(Te)
	if !strings.Contains(doc.Dump(), "ATOM   garbage line that does not parse") {
		Te.Error("malformed ATOM line was dropped or reformatted")
	}
}

func TestConects(Te *testing.T) {
	doc := loadSample(Te)
	cons := doc.Conects()
	if len(cons) != 2 {
		Te.Fatalf("got %d conect records, want 2", len(cons))
	}
	if cons[0].Serial != 1 || !cmp.Equal(cons[0].Bonded, []int{2}) {
		Te.Errorf("first conect = %+v", cons[0])
	}
}

func TestReplaceAtom(Te *testing.T) {
	doc := loadSample(Te)
	old := doc.Atoms()[1]
	edited := old.Copy()
	edited.ResName = "GLY"
	if err := doc.ReplaceAtom(old, edited); err != nil {
		Te.Fatal(err)
	}
	atoms := doc.Atoms()
	if atoms[1] != edited {
		Te.Error("replacement did not land at the old position")
	}
	if !strings.Contains(doc.Dump(), "H1   GLY") {
		Te.Error("dump does not show the edited residue name")
	}
}

func TestReplaceAtomIdentityNotValue(Te *testing.T) {
	doc := loadSample(Te)
	//a value-equal copy is not the same entry
	impostor := doc.Atoms()[0].Copy()
	if err := doc.ReplaceAtom(impostor, impostor.Copy()); err == nil {
		Te.Error("ReplaceAtom accepted a value-equal copy; identity must be required")
	}
}

func TestReplaceAtomGone(Te *testing.T) {
	doc := loadSample(Te)
	old := doc.Atoms()[0]
	if err := doc.ReplaceAtom(old, old.Copy()); err != nil {
		Te.Fatal(err)
	}
	//old was already replaced, a second replacement must fail loudly
	if err := doc.ReplaceAtom(old, old.Copy()); err == nil {
		Te.Error("ReplaceAtom of a removed record did not fail")
	}
}

func TestRemoveConects(Te *testing.T) {
	doc := loadSample(Te)
	removed := doc.RemoveConects()
	if len(removed) != 2 {
		Te.Fatalf("removed %d conects, want 2", len(removed))
	}
	if len(doc.Conects()) != 0 {
		Te.Error("document still has conect entries")
	}
	if strings.Contains(doc.Dump(), "CONECT") {
		Te.Error("dump still contains CONECT lines")
	}
	if len(doc.Atoms()) != 3 {
		Te.Error("RemoveConects touched non-conect entries")
	}
}

func TestReadWriteFileCompressed(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"sample.pdb", "sample.pdb.gz", "sample.pdb.zst"} {
		path := filepath.Join(dir, name)
		doc := loadSample(Te)
		if err := WriteFile(path, doc); err != nil {
			Te.Fatal(err)
		}
		back, err := ReadFile(path)
		if err != nil {
			Te.Fatal(err)
		}
		if diff := cmp.Diff(sampleText, back.Dump()); diff != "" {
			Te.Errorf("%s: file round trip mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestReadFileMissing(Te *testing.T) {
	_, err := ReadFile(filepath.Join(Te.TempDir(), "nope.pdb"))
	if err == nil {
		Te.Fatal("ReadFile of a missing file did not fail")
	}
	ferr, ok := err.(Error)
	if !ok {
		Te.Fatalf("error has type %T, want pdb.Error", err)
	}
	if ferr.Format() != "pdb" || ferr.FileName() == "" {
		Te.Errorf("error %v: format %q, file %q", ferr, ferr.Format(), ferr.FileName())
	}
}
