// Package transform rewrites a sequence into the bytes that get compressed.
//
// There are two optional transforms: the reverse complement of the sequence and
// the Burrows-Wheeler Transform of it. When both are requested the reverse
// complement is taken first and the BWT is applied to its result.
package transform

import "fmt"

// UnsupportedSymbolError is returned by RevComp when a byte has no complement.
type UnsupportedSymbolError struct {
	// Symbol is the offending byte
	Symbol byte

	// Pos is its index in the input sequence
	Pos int
}

func (e *UnsupportedSymbolError) Error() string {
	return fmt.Sprintf("unsupported symbol %q at position %d, can't reverse complement", e.Symbol, e.Pos)
}

// revCompMap maps each nucleotide (IUPAC codes included) to its pairing base.
// Zero means the byte isn't in the alphabet.
var revCompMap [256]byte

func init() {
	pairs := []struct{ a, b byte }{
		{'A', 'T'},
		{'C', 'G'},
		{'R', 'Y'}, // A/G <-> C/T
		{'K', 'M'}, // G/T <-> A/C
		{'B', 'V'}, // not A <-> not T
		{'D', 'H'}, // not C <-> not G
		{'S', 'S'},
		{'W', 'W'},
		{'N', 'N'},
	}
	for _, p := range pairs {
		revCompMap[p.a], revCompMap[p.b] = p.b, p.a
		revCompMap[p.a+'a'-'A'], revCompMap[p.b+'a'-'A'] = p.b+'a'-'A', p.a+'a'-'A'
	}

	// RNA: U pairs with A, but A maps back to T
	revCompMap['U'], revCompMap['u'] = 'A', 'a'
	revCompMap['-'] = '-'
}

// Transform applies the requested transforms to seq and returns the result as
// a new slice. seq is never modified.
func Transform(seq []byte, revComp, bwt bool) ([]byte, error) {
	out := append([]byte(nil), seq...)

	if revComp {
		var err error
		if out, err = RevComp(out); err != nil {
			return nil, err
		}
	}

	if bwt {
		out = BWT(out)
	}

	return out, nil
}

// RevComp returns the reverse complement of a nucleotide sequence. Case is kept.
func RevComp(seq []byte) ([]byte, error) {
	out := make([]byte, len(seq))
	for i, c := range seq {
		comp := revCompMap[c]
		if comp == 0 {
			return nil, &UnsupportedSymbolError{Symbol: c, Pos: i}
		}
		out[len(seq)-1-i] = comp
	}
	return out, nil
}
