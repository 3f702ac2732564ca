package compress

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SweetiePi/bioncd-hackseq/internal/seqio"
)

// StorageWriteError is returned when compressed bytes can't be saved.
type StorageWriteError struct {
	Path string
	Err  error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("failed to write compressed sequence to %s: %v", e.Path, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// Filename is the name compressed bytes of src are saved under, ex: "ab.fa.gz"
func Filename(src seqio.Source, alg Algorithm) string {
	return src.Name() + alg.Extension()
}

// Persist writes compressed bytes of src to dir and returns the file's path.
// It isn't retried on failure, the bytes are cheap to compute again.
func Persist(compressed []byte, alg Algorithm, src seqio.Source, dir string) (out string, err error) {
	if dir, err = filepath.Abs(dir); err != nil {
		return "", &StorageWriteError{Path: dir, Err: err}
	}
	out = filepath.Join(dir, Filename(src, alg))

	f, err := os.Create(out)
	if err != nil {
		return "", &StorageWriteError{Path: out, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &StorageWriteError{Path: out, Err: closeErr}
		}
	}()

	if _, err = f.Write(compressed); err != nil {
		return "", &StorageWriteError{Path: out, Err: err}
	}
	return out, nil
}
