/*
 * interfaces.go, part of molecule-renumber.
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

package molfile

// Error is the interface implemented by the errors of every package in this
// module. Decorate adds information to the error as it is passed up, without
// changing its type or wrapping it; each call returns the current decoration
// slice. Passed an empty string, it must return the slice unchanged.
// The decoration slice should hold the names of the functions in the calling
// stack, each optionally followed by extra information in the format
// "FunctionName: extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// FileError is the interface for errors tied to a particular molecular file.
type FileError interface {
	Error
	FileName() string
	Format() string
}
