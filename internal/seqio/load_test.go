package seqio

import (
	"compress/gzip"
	"errors"
	"os"
	"path"
	"path/filepath"
	"testing"
)

var (
	aFASTA     = path.Join("..", "..", "test", "input", "a.fa")
	bFASTA     = path.Join("..", "..", "test", "input", "b.fa")
	emptyFASTA = path.Join("..", "..", "test", "input", "empty.fa")
)

func Test_ReadFASTA(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			"multiple records are concatenated",
			aFASTA,
			"ACGTACGTTAGCATGCATGGGCCCAATT",
		},
		{
			"single record",
			bFASTA,
			"TTGACCATGCAGGTACCATGACGTTAGCAATCG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFASTA(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFASTA() = %s, want %s", got, tt.want)
			}
		})
	}
}

func Test_ReadFASTA_empty(t *testing.T) {
	dir := t.TempDir()
	emptyFile := filepath.Join(dir, "zero.fa")
	if err := os.WriteFile(emptyFile, nil, 0644); err != nil {
		t.Fatal(err)
	}
	blankFile := filepath.Join(dir, "blank.fa")
	if err := os.WriteFile(blankFile, []byte("\n  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	noHeaderFile := filepath.Join(dir, "noheader.fa")
	if err := os.WriteFile(noHeaderFile, []byte("ACGTACGT\n"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{emptyFASTA, emptyFile, blankFile, noHeaderFile} {
		_, err := ReadFASTA(p)

		var emptyErr *EmptySequenceError
		if !errors.As(err, &emptyErr) {
			t.Fatalf("ReadFASTA(%s) error = %v, want EmptySequenceError", p, err)
		}
		if emptyErr.Path != p {
			t.Errorf("EmptySequenceError.Path = %s, want %s", emptyErr.Path, p)
		}
	}
}

func Test_ReadFASTA_missing(t *testing.T) {
	if _, err := ReadFASTA(filepath.Join(t.TempDir(), "missing.fa")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFASTA() error = %v, want os.ErrNotExist", err)
	}
}

func Test_ReadFASTA_gzip(t *testing.T) {
	gzPath := filepath.Join(t.TempDir(), "b.fa.gz")
	f, err := os.Create(gzPath)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(">zipped\nACGT\nTTAA\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFASTA(gzPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "ACGTTTAA" {
		t.Errorf("ReadFASTA() = %s, want ACGTTTAA", got)
	}
}

func Test_ReadFASTA_leadingBlankLines(t *testing.T) {
	p := filepath.Join(t.TempDir(), "padded.fa")
	if err := os.WriteFile(p, []byte("\n\n>padded\nACGT\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFASTA(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "ACGT" {
		t.Errorf("ReadFASTA() = %s, want ACGT", got)
	}
}

func Test_Load(t *testing.T) {
	a, err := ReadFASTA(aFASTA)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ReadFASTA(bFASTA)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		src  Source
		want string
	}{
		{"single", Single(aFASTA), string(a)},
		{"pair", Pair(aFASTA, bFASTA), string(a) + string(b)},
		{"swapped pair", Pair(aFASTA, bFASTA).Swap(), string(b) + string(a)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("Load() = %s, want %s", got, tt.want)
			}
		})
	}

	// an empty half fails the whole pair
	var emptyErr *EmptySequenceError
	if _, err := Load(Pair(aFASTA, emptyFASTA)); !errors.As(err, &emptyErr) {
		t.Errorf("Load() error = %v, want EmptySequenceError", err)
	}
}
