package kmer

// Bases lists the DNA alphabet in the canonical enumeration order used by
// neighbor generation. The order is a contract: downstream algorithms rely on
// deterministic neighbor ordering for reproducible traversal.
const Bases = "ACGT"

// NumBases is the alphabet size.
const NumBases = 4

// Direction selects which end of a window a shift or substitution applies to.
type Direction uint8

const (
	// Sense slides the window forward: drop the first base, append at the end.
	Sense Direction = iota

	// Antisense slides the window backward: drop the last base, prepend at
	// the front.
	Antisense
)

// String returns "sense" or "antisense".
func (d Direction) String() string {
	if d == Sense {
		return "sense"
	}
	return "antisense"
}

// complement maps each base to its Watson-Crick partner.
var complement = [256]byte{
	'A': 'T',
	'C': 'G',
	'G': 'C',
	'T': 'A',
}

// Complement returns the Watson-Crick partner of b (A<->T, C<->G).
// The result is the zero byte for any symbol outside the alphabet.
func Complement(b byte) byte {
	return complement[b]
}

// IsBase reports whether b is one of A, C, G, T.
func IsBase(b byte) bool {
	return complement[b] != 0
}

// BaseCode returns the index of b within Bases (A=0, C=1, G=2, T=3)
// and whether b is a valid base.
func BaseCode(b byte) (int, bool) {
	switch b {
	case 'A':
		return 0, true
	case 'C':
		return 1, true
	case 'G':
		return 2, true
	case 'T':
		return 3, true
	default:
		return 0, false
	}
}
