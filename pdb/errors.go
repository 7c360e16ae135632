package pdb

import (
	"fmt"

	molfile "github.com/IndigoCarmine/molecule-renumber"
)

// Error is the error type of the pdb package. It fulfills molfile.Error and
// molfile.FileError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("pdb error: %s", err.message)
	}
	return fmt.Sprintf("pdb file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, E.deco is
	//a slice, hence a pointer itself, so appending works.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

var _ molfile.FileError = Error{}

// FileName returns the file associated to the error, if any.
func (err Error) FileName() string { return err.filename }

// Format returns the format of the file associated to the error.
func (err Error) Format() string { return "pdb" }

const (
	AtomNotFound  = "Old atom record not found in document"
	UnableToOpen  = "Unable to open file"
	UnableToWrite = "Unable to write file"
	WrongFormat   = "Wrong format in PDB line"
)
