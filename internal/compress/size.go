package compress

import (
	"fmt"
	"strings"

	"github.com/SweetiePi/bioncd-hackseq/internal/seqio"
)

// Measure is the convention for turning a compressed buffer into a size.
// NCD values are only comparable between runs that used the same Measure.
type Measure string

const (
	// Stream is the number of bytes in the compressed stream
	Stream Measure = "stream"

	// PyObject is the stream length plus the fixed header of a 64-bit CPython
	// bytes object, as reported by sys.getsizeof. Only that per-object overhead
	// is emulated: the compressors run with this package's library defaults, so
	// stream lengths can still differ from other tools' for the same input.
	PyObject Measure = "pyobject"
)

// pyBytesOverhead is sys.getsizeof(b"") on 64-bit CPython
const pyBytesOverhead = 33

// ParseMeasure returns the Measure with the passed name.
func ParseMeasure(name string) (Measure, error) {
	switch m := Measure(strings.ToLower(strings.TrimSpace(name))); m {
	case Stream, PyObject:
		return m, nil
	case "":
		return Stream, nil
	default:
		return "", fmt.Errorf("unknown size measure %q, expected %q or %q", name, Stream, PyObject)
	}
}

// Size returns the size of a compressed buffer under the measure.
func (m Measure) Size(compressed []byte) int {
	if m == PyObject {
		return len(compressed) + pyBytesOverhead
	}
	return len(compressed)
}

// Result is the compressed size of one source under one algorithm.
type Result struct {
	// Source is the file, or pair of files, that was compressed
	Source seqio.Source `json:"-"`

	// Name is the Source's name, for reports
	Name string `json:"name"`

	// Algorithm used to compress the source
	Algorithm Algorithm `json:"algorithm"`

	// Size of the compressed sequence in bytes
	Size int `json:"size"`

	// Path the compressed bytes were saved to, if they were
	Path string `json:"path,omitempty"`
}

// CompressedSize compresses data with the algorithm and returns its size under
// the measure, along with the compressed bytes.
func CompressedSize(data []byte, alg Algorithm, m Measure) (int, []byte, error) {
	c, err := New(alg)
	if err != nil {
		return 0, nil, err
	}

	compressed, err := c.Compress(data)
	if err != nil {
		return 0, nil, err
	}

	return m.Size(compressed), compressed, nil
}
