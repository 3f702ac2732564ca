package compress

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Compressor compresses a whole buffer at once. Every implementation uses its
// library's default settings so sizes are comparable across runs.
type Compressor interface {
	// Compress returns the compressed form of data
	Compress(data []byte) ([]byte, error)

	// Extension is the file extension of the compressed output, with a dot
	Extension() string
}

// writerFunc wraps an io.Writer with a compressing io.WriteCloser
type writerFunc func(w io.Writer) (io.WriteCloser, error)

// streamCompressor is a Compressor over a streaming compression library
type streamCompressor struct {
	alg       Algorithm
	newWriter writerFunc
}

// compressors holds a constructor for the writer of each algorithm
var compressors = map[Algorithm]writerFunc{
	LZMA: func(w io.Writer) (io.WriteCloser, error) {
		return xz.NewWriter(w)
	},
	Gzip: func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriter(w), nil
	},
	Bzip2: func(w io.Writer) (io.WriteCloser, error) {
		return bzip2.NewWriter(w, nil)
	},
	Zlib: func(w io.Writer) (io.WriteCloser, error) {
		return zlib.NewWriter(w), nil
	},
	LZ4: func(w io.Writer) (io.WriteCloser, error) {
		return lz4.NewWriter(w), nil
	},
}

// New returns the Compressor for an algorithm.
func New(alg Algorithm) (Compressor, error) {
	newWriter, ok := compressors[alg]
	if !ok {
		return nil, &UnsupportedAlgorithmError{Name: string(alg)}
	}
	return &streamCompressor{alg: alg, newWriter: newWriter}, nil
}

// Compress writes data through the algorithm's writer into memory.
func (c *streamCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := c.newWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s writer: %w", c.alg, err)
	}
	if _, err = w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to %s compress: %w", c.alg, err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish %s stream: %w", c.alg, err)
	}

	return buf.Bytes(), nil
}

// Extension returns the extension for the compressor's algorithm
func (c *streamCompressor) Extension() string {
	return c.alg.Extension()
}
