// Command molfile is a small driver for the molecule-renumber engine: it
// round-trip-checks PDB and Mol2 files and converts Mol2 to PDB.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/IndigoCarmine/molecule-renumber/mol2"
	"github.com/IndigoCarmine/molecule-renumber/pdb"
)

type config struct {
	check  bool
	toPDB  bool
	output string
	input  string
}

func main() {
	os.Exit(run(parseFlags()))
}

func parseFlags() config {
	var cfg config

	fs := flag.NewFlagSet("molfile", flag.ContinueOnError)
	fs.BoolVar(&cfg.check, "check", false, "Load the input, dump it back and diff against the original")
	fs.BoolVar(&cfg.toPDB, "topdb", false, "Convert a Mol2 input to PDB")
	fs.StringVar(&cfg.output, "o", "", "Output file for -topdb (default: input with .pdb extension)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: molfile [-check|-topdb] [-o out.pdb] <file.pdb|file.mol2>[.gz|.zst]\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	cfg.input = fs.Arg(0)
	return cfg
}

func run(cfg config) int {
	switch {
	case cfg.check:
		return runCheck(cfg)
	case cfg.toPDB:
		return runToPDB(cfg)
	default:
		fmt.Fprintln(os.Stderr, "molfile: one of -check or -topdb is required")
		return 2
	}
}

// baseFormat returns the format extension of name, looking under a trailing
// compression extension: "A.mol2.gz" has format ".mol2".
func baseFormat(name string) string {
	ext := filepath.Ext(name)
	if ext == ".gz" || ext == ".zst" {
		ext = filepath.Ext(strings.TrimSuffix(name, ext))
	}
	return ext
}

// readText reads a whole file, decompressing .gz and .zst.
func readText(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	var r io.Reader = f
	switch filepath.Ext(name) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return "", err
		}
		defer gz.Close()
		r = gz
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return "", err
		}
		defer zr.Close()
		r = zr
	}
	text, err := io.ReadAll(r)
	return string(text), err
}

func runCheck(cfg config) int {
	text, err := readText(cfg.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "molfile: %v\n", err)
		return 1
	}
	var dumped string
	switch baseFormat(cfg.input) {
	case ".mol2":
		doc := new(mol2.Document)
		if err := doc.Load(text); err != nil {
			fmt.Fprintf(os.Stderr, "molfile: %v\n", err)
			return 1
		}
		dumped = doc.Dump()
	default:
		doc := new(pdb.Document)
		doc.Load(text)
		dumped = doc.Dump()
	}
	if diffs := printDiff(os.Stdout, text, dumped); diffs > 0 {
		fmt.Printf("RESULT: MISMATCH (%d lines differ)\n", diffs)
		return 1
	}
	fmt.Println("RESULT: MATCH")
	return 0
}

// printDiff writes a line-by-line diff of original and dumped to w and
// returns the number of differing lines.
func printDiff(w io.Writer, original, dumped string) int {
	olines := strings.Split(original, "\n")
	dlines := strings.Split(dumped, "\n")
	n := len(olines)
	if len(dlines) > n {
		n = len(dlines)
	}
	diffs := 0
	for i := 0; i < n; i++ {
		var o, d string
		if i < len(olines) {
			o = olines[i]
		}
		if i < len(dlines) {
			d = dlines[i]
		}
		if o == d {
			continue
		}
		diffs++
		fmt.Fprintf(w, "line %d:\n-%s\n+%s\n", i+1, o, d)
	}
	return diffs
}

func runToPDB(cfg config) int {
	if baseFormat(cfg.input) != ".mol2" {
		fmt.Fprintln(os.Stderr, "molfile: -topdb needs a .mol2 input")
		return 2
	}
	doc, err := mol2.ReadFile(cfg.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "molfile: %v\n", err)
		return 1
	}
	out := cfg.output
	if out == "" {
		base := cfg.input
		if ext := filepath.Ext(base); ext == ".gz" || ext == ".zst" {
			base = strings.TrimSuffix(base, ext)
		}
		out = strings.TrimSuffix(base, filepath.Ext(base)) + ".pdb"
	}
	if err := pdb.WriteFile(out, doc.ToPDB()); err != nil {
		fmt.Fprintf(os.Stderr, "molfile: %v\n", err)
		return 1
	}
	fmt.Printf("Converted PDB saved to %s\n", out)
	return 0
}
