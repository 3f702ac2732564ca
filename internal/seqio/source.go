// Package seqio loads sequences from FASTA files for compression.
//
// A Source is either a single file or an ordered pair of files. It is resolved once,
// when the paths come off the command line, and passed around as a value after that.
package seqio

import (
	"path/filepath"
	"strings"
)

// Source is one FASTA file or two FASTA files whose sequences are concatenated
// end-to-end, first then second.
type Source struct {
	first  string
	second string
}

// Single is a Source of one FASTA file.
func Single(path string) Source {
	return Source{first: path}
}

// Pair is a Source of two FASTA files, read in order.
func Pair(first, second string) Source {
	return Source{first: first, second: second}
}

// IsPair returns whether the source is made of two files.
func (s Source) IsPair() bool {
	return s.second != ""
}

// Paths returns the file paths in the order their sequences are concatenated.
func (s Source) Paths() []string {
	if s.IsPair() {
		return []string{s.first, s.second}
	}
	return []string{s.first}
}

// Swap returns the pair in the other order. A single source is returned as is.
func (s Source) Swap() Source {
	if !s.IsPair() {
		return s
	}
	return Pair(s.second, s.first)
}

// Name is the base file name used for persisted byproducts. For a pair it's
// the stem of the first file followed by the full name of the second:
// "a.fa" + "b.fa" -> "ab.fa".
func (s Source) Name() string {
	if !s.IsPair() {
		return filepath.Base(s.first)
	}
	firstName := filepath.Base(s.first)
	stem := strings.TrimSuffix(firstName, filepath.Ext(firstName))
	return stem + filepath.Base(s.second)
}

// String is for logging, ex: "a.fa" or "(a.fa, b.fa)"
func (s Source) String() string {
	if s.IsPair() {
		return "(" + s.first + ", " + s.second + ")"
	}
	return s.first
}
