/*
 * io.go, part of molecule-renumber.
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
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ReadFile loads a PDB document from a file. Files ending in .gz or .zst are
// decompressed transparently. The whole file is read at once; documents are
// in-memory objects.
func ReadFile(name string) (*Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{message: fmt.Sprintf("%s: %v", UnableToOpen, err), filename: name, deco: []string{"ReadFile"}}
	}
	defer f.Close()
	var r io.Reader = f
	switch filepath.Ext(name) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, Error{message: fmt.Sprintf("%s: %v", UnableToOpen, err), filename: name, deco: []string{"ReadFile"}}
		}
		defer gz.Close()
		r = gz
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, Error{message: fmt.Sprintf("%s: %v", UnableToOpen, err), filename: name, deco: []string{"ReadFile"}}
		}
		defer zr.Close()
		r = zr
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, Error{message: fmt.Sprintf("%s: %v", UnableToOpen, err), filename: name, deco: []string{"ReadFile"}}
	}
	doc := new(Document)
	doc.Load(string(text))
	return doc, nil
}

// WriteFile dumps the document to a file, compressing when the name ends in
// .gz or .zst.
func WriteFile(name string, D *Document) error {
	f, err := os.Create(name)
	if err != nil {
		return Error{message: fmt.Sprintf("%s: %v", UnableToWrite, err), filename: name, deco: []string{"WriteFile"}}
	}
	defer f.Close()
	var w io.WriteCloser = f
	compressed := true
	switch filepath.Ext(name) {
	case ".gz":
		w = gzip.NewWriter(f)
	case ".zst":
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return Error{message: fmt.Sprintf("%s: %v", UnableToWrite, err), filename: name, deco: []string{"WriteFile"}}
		}
		w = zw
	default:
		compressed = false
	}
	if _, err := io.WriteString(w, D.Dump()); err != nil {
		return Error{message: fmt.Sprintf("%s: %v", UnableToWrite, err), filename: name, deco: []string{"WriteFile"}}
	}
	if compressed {
		//flushes the compressor; the file itself is closed by the defer.
		if err := w.Close(); err != nil {
			return Error{message: fmt.Sprintf("%s: %v", UnableToWrite, err), filename: name, deco: []string{"WriteFile"}}
		}
	}
	return nil
}
