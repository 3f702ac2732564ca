package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/SweetiePi/bioncd-hackseq/internal/ncd"
)

// Report is the JSON output of a corpus run.
type Report struct {
	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to compute the matrix
	Execution float64 `json:"execution"`

	// Algorithm is the compressor used
	Algorithm string `json:"algorithm"`

	// Measure is the compressed size convention
	Measure string `json:"measure"`

	// ReverseComplement is whether sequences were reverse complemented
	ReverseComplement bool `json:"reverseComplement"`

	// BWT is whether sequences were Burrows-Wheeler transformed
	BWT bool `json:"bwt"`

	// Files are the FASTA files, in the matrix's row order
	Files []string `json:"files"`

	// Matrix of distances between the files
	Matrix [][]float32 `json:"matrix"`

	// Comparisons with the compressed sizes behind each distance
	Comparisons []*ncd.Comparison `json:"comparisons"`
}

// writer writes a matrix in one output format
type writer func(w io.Writer, m *Matrix, opts ncd.Options, elapsed time.Duration) error

// writers holds each output format by name
var writers = map[string]writer{
	"tsv":    writeTSV,
	"matrix": writeMatrix,
	"json":   writeJSON,
}

// Formats returns the names of the output formats.
func Formats() []string {
	formats := make([]string, 0, len(writers))
	for f := range writers {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// Write writes the matrix to w in the named format.
func Write(w io.Writer, format string, m *Matrix, opts ncd.Options, elapsed time.Duration) error {
	write, ok := writers[strings.ToLower(format)]
	if !ok {
		return fmt.Errorf("unknown output format %q, expected one of: %s", format, strings.Join(Formats(), ", "))
	}
	return write(w, m, opts, elapsed)
}

// FormatFromPath guesses an output format from a file's extension. It
// defaults to "tsv".
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".mat", ".matrix":
		return "matrix"
	default:
		return "tsv"
	}
}

// writeTSV writes one line per compared pair: x, y, and their distance
func writeTSV(w io.Writer, m *Matrix, _ ncd.Options, _ time.Duration) error {
	if _, err := fmt.Fprintf(w, "x\ty\tncd\n"); err != nil {
		return err
	}
	for _, c := range m.Comparisons {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%0.6f\n", c.X.Name, c.Y.Name, c.NCD); err != nil {
			return err
		}
	}
	return nil
}

// writeMatrix writes the square distance matrix with a header of file names
func writeMatrix(w io.Writer, m *Matrix, _ ncd.Options, _ time.Duration) error {
	names := make([]string, len(m.Paths))
	for i, p := range m.Paths {
		names[i] = filepath.Base(p)
	}

	if _, err := fmt.Fprintf(w, "\t%s\n", strings.Join(names, "\t")); err != nil {
		return err
	}
	for i, row := range m.Distances.Mat {
		cells := make([]string, len(row))
		for j, d := range row {
			cells[j] = fmt.Sprintf("%0.6f", d)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", names[i], strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON writes a Report
func writeJSON(w io.Writer, m *Matrix, opts ncd.Options, elapsed time.Duration) error {
	// same format as log.Println
	t := time.Now()
	report := Report{
		Time: fmt.Sprintf(
			"%d/%02d/%02d %02d:%02d:%02d",
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		),
		Execution:         elapsed.Seconds(),
		Algorithm:         string(opts.Algorithm),
		Measure:           string(opts.Measure),
		ReverseComplement: opts.ReverseComplement,
		BWT:               opts.BWT,
		Files:             m.Paths,
		Matrix:            m.Distances.Mat,
		Comparisons:       m.Comparisons,
	}

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize the output data: %w", err)
	}
	_, err = w.Write(append(output, '\n'))
	return err
}
