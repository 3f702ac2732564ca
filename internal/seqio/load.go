package seqio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/edsrzf/mmap-go"
)

// gzipMagic is the first two bytes of every gzip stream
var gzipMagic = []byte{0x1f, 0x8b}

// EmptySequenceError is returned when a FASTA file yields no sequence letters.
type EmptySequenceError struct {
	Path string
}

func (e *EmptySequenceError) Error() string {
	return fmt.Sprintf(
		"no sequence extracted. Ensure that file %s contains a proper FASTA definition line (i.e. a line that starts with '>sequence_name')",
		e.Path,
	)
}

// Load reads every record of each file in the source and returns their
// sequences concatenated. Each file must contribute at least one letter.
func Load(src Source) ([]byte, error) {
	var seq []byte
	for _, path := range src.Paths() {
		fileSeq, err := ReadFASTA(path)
		if err != nil {
			return nil, err
		}
		seq = append(seq, fileSeq...)
	}
	return seq, nil
}

// ReadFASTA returns the letters of all the records in a FASTA file, concatenated
// in file order. The file can be gzipped.
func ReadFASTA(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FASTA file %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat FASTA file %s: %w", path, err)
	}
	if info.Size() == 0 {
		return nil, &EmptySequenceError{Path: path} // can't map an empty file
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to map FASTA file %s: %w", path, err)
	}
	defer m.Unmap()

	var r io.Reader = bytes.NewReader(m)
	if bytes.HasPrefix(m, gzipMagic) {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress FASTA file %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	seq, err := parseFASTA(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FASTA file %s: %w", path, err)
	}
	if len(seq) == 0 {
		return nil, &EmptySequenceError{Path: path}
	}
	return seq, nil
}

// parseFASTA concatenates the letters of every record read from r. The
// result is copied out of the reader's buffers since the mapping behind r
// is released once the file is read.
//
// Input without a '>' definition line has no records, and so no letters.
func parseFASTA(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	if hasHeader, err := startsWithHeader(br); err != nil || !hasHeader {
		return nil, err
	}
	reader := fasta.NewReader(br, linear.NewSeq("", nil, alphabet.DNA))

	var seq []byte
	for {
		s, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		record, ok := s.(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("unexpected sequence type %T", s)
		}
		seq = append(seq, alphabet.LettersToBytes(record.Seq)...)
	}
	return seq, nil
}

// startsWithHeader reports whether the first non-blank byte of br is '>'.
// Leading whitespace is consumed, the '>' is left in br.
func startsWithHeader(br *bufio.Reader) (bool, error) {
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}

		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '>':
			return true, br.UnreadByte()
		default:
			return false, nil
		}
	}
}
