// Package compress measures how small a sequence gets under one of several
// general-purpose compressors, and can save the compressed bytes to disk.
package compress

import (
	"fmt"
	"strings"
)

// Algorithm is the name of a compressor.
type Algorithm string

const (
	// LZMA is the xz container around LZMA2
	LZMA Algorithm = "lzma"

	// Gzip is DEFLATE with a gzip header and trailer
	Gzip Algorithm = "gzip"

	// Bzip2 is the Burrows-Wheeler based bzip2 format
	Bzip2 Algorithm = "bzip2"

	// Zlib is DEFLATE with a zlib header and trailer
	Zlib Algorithm = "zlib"

	// LZ4 is the LZ4 frame format
	LZ4 Algorithm = "lz4"
)

// extensions are the file extensions of persisted compressed sequences
var extensions = map[Algorithm]string{
	LZMA:  ".lzma",
	Gzip:  ".gz",
	Bzip2: ".bz2",
	Zlib:  ".ZLIB",
	LZ4:   ".lz4",
}

// UnsupportedAlgorithmError is returned for an algorithm name that isn't one of Algorithms().
type UnsupportedAlgorithmError struct {
	Name string
}

func (e *UnsupportedAlgorithmError) Error() string {
	names := make([]string, 0, len(extensions))
	for _, a := range Algorithms() {
		names = append(names, string(a))
	}
	return fmt.Sprintf("unsupported compression algorithm %q, expected one of: %s", e.Name, strings.Join(names, ", "))
}

// Algorithms returns every supported algorithm in a fixed order.
func Algorithms() []Algorithm {
	return []Algorithm{LZMA, Gzip, Bzip2, Zlib, LZ4}
}

// ParseAlgorithm returns the algorithm with the passed name. Names are case insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := extensions[a]; !ok {
		return "", &UnsupportedAlgorithmError{Name: name}
	}
	return a, nil
}

// Extension returns the file extension for the algorithm's output, ex: ".gz".
func (a Algorithm) Extension() string {
	return extensions[a]
}
