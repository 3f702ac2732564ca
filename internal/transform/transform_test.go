package transform

import (
	"bytes"
	"errors"
	"math/rand"
	"sort"
	"testing"
)

func Test_RevComp(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"simple", "ATGCATGCTGAC", "GTCAGCATGCAT"},
		{"lower case kept", "acgtN", "Nacgt"},
		{"ambiguity codes", "RYKMBVDHSWN", "NWSDHBVKMRY"},
		{"rna", "ACGU", "ACGT"},
		{"gap", "AC-GT", "AC-GT"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RevComp([]byte(tt.seq))
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("RevComp() = %s, want %s", got, tt.want)
			}
		})
	}
}

func Test_RevComp_unsupported(t *testing.T) {
	_, err := RevComp([]byte("ACGTXACGT"))

	var symErr *UnsupportedSymbolError
	if !errors.As(err, &symErr) {
		t.Fatalf("RevComp() error = %v, want UnsupportedSymbolError", err)
	}
	if symErr.Symbol != 'X' || symErr.Pos != 4 {
		t.Errorf("UnsupportedSymbolError = %+v, want X at 4", symErr)
	}
}

// reverse complementing twice returns the original sequence
func Test_RevComp_involution(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		seq := randomSeq(r, "ACGT", r.Intn(200))

		once, err := RevComp(seq)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := RevComp(once)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(twice, seq) {
			t.Errorf("RevComp(RevComp(%s)) = %s", seq, twice)
		}
	}
}

func Test_BWT(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"banana", "banana", "nnbaaa"},
		{"single", "A", "A"},
		{"empty", "", ""},
		{"periodic", "ACACAC", "CCCAAA"},
		{"homopolymer", "TTTT", "TTTT"},
		{"dna", "GATTACA", "TCGAATA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BWT([]byte(tt.in)); string(got) != tt.want {
				t.Errorf("BWT(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

// BWT output has the same length and letters as its input, and matches
// sorting every rotation outright
func Test_BWT_rotations(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		alphabet := "ACGT"
		if i%3 == 0 {
			alphabet = "AC" // lots of repeats and periodic strings
		}
		s := randomSeq(r, alphabet, 1+r.Intn(64))

		got := BWT(s)
		if len(got) != len(s) {
			t.Fatalf("len(BWT(%s)) = %d, want %d", s, len(got), len(s))
		}
		if !bytes.Equal(sortedBytes(got), sortedBytes(s)) {
			t.Errorf("BWT(%s) = %s is not a permutation of its input", s, got)
		}
		if want := naiveBWT(s); !bytes.Equal(got, want) {
			t.Errorf("BWT(%s) = %s, want %s", s, got, want)
		}
	}
}

func Test_Transform(t *testing.T) {
	seq := []byte("GATTACA")

	tests := []struct {
		name    string
		revComp bool
		bwt     bool
		want    string
	}{
		{"none", false, false, "GATTACA"},
		{"reverse complement", true, false, "TGTAATC"},
		{"bwt", false, true, "TCGAATA"},
		{"reverse complement then bwt", true, true, string(BWT([]byte("TGTAATC")))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transform(seq, tt.revComp, tt.bwt)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("Transform() = %s, want %s", got, tt.want)
			}
		})
	}

	if string(seq) != "GATTACA" {
		t.Errorf("Transform() modified its input: %s", seq)
	}

	if _, err := Transform([]byte("ACGT*"), true, true); err == nil {
		t.Error("Transform() expected an error for an unsupported symbol")
	}
}

func randomSeq(r *rand.Rand, alphabet string, n int) []byte {
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = alphabet[r.Intn(len(alphabet))]
	}
	return seq
}

func sortedBytes(b []byte) []byte {
	c := append([]byte(nil), b...)
	sort.Slice(c, func(i, j int) bool { return c[i] < c[j] })
	return c
}

func naiveBWT(s []byte) []byte {
	rotations := make([]string, len(s))
	for i := range s {
		rotations[i] = string(s[i:]) + string(s[:i])
	}
	sort.Strings(rotations)

	out := make([]byte, len(s))
	for i, rot := range rotations {
		out[i] = rot[len(rot)-1]
	}
	return out
}
