package kmer

import "fmt"

// Kmer is a fixed-length DNA window over {A,C,G,T}. The zero value is the
// empty window, used as the null-vertex sentinel by the graph adapter.
//
// A Kmer wraps a byte slice: plain assignment shares the backing sequence.
// Use Clone before mutating a window that another holder may still read.
type Kmer struct {
	cfg *Config
	seq []byte
}

// New validates seq against cfg and returns a window holding a private copy
// of it. Returns ErrNilConfig, ErrLengthMismatch or ErrBadBase.
func New(cfg *Config, seq string) (Kmer, error) {
	if cfg == nil {
		return Kmer{}, ErrNilConfig
	}
	if len(seq) != cfg.k {
		return Kmer{}, fmt.Errorf("%w: sequence %q, k=%d", ErrLengthMismatch, seq, cfg.k)
	}
	for i := 0; i < len(seq); i++ {
		if !IsBase(seq[i]) {
			return Kmer{}, fmt.Errorf("%w: sequence %q", ErrBadBase, seq)
		}
	}
	return Kmer{cfg: cfg, seq: []byte(seq)}, nil
}

// Config returns the session configuration this window was built from,
// or nil for the empty window.
func (k Kmer) Config() *Config { return k.cfg }

// Len returns the window length; 0 for the empty window.
func (k Kmer) Len() int { return len(k.seq) }

// Empty reports whether this is the zero-value (null sentinel) window.
func (k Kmer) Empty() bool { return k.seq == nil }

// Base returns the base at position i.
func (k Kmer) Base(i int) byte { return k.seq[i] }

// Bytes exposes the backing sequence. Callers must not retain it across
// mutations; it is handed to hash-state updates that need the current
// window contents.
func (k Kmer) Bytes() []byte { return k.seq }

// Clone returns a window with a private copy of the sequence.
func (k Kmer) Clone() Kmer {
	if k.seq == nil {
		return Kmer{}
	}
	seq := make([]byte, len(k.seq))
	copy(seq, k.seq)
	return Kmer{cfg: k.cfg, seq: seq}
}

// Shift slides the window one base: for Sense the first base is dropped and
// placeholder appended at the end; for Antisense the last base is dropped
// and placeholder prepended at the front. The mutation is in place, O(k),
// with no reallocation.
func (k *Kmer) Shift(dir Direction, placeholder byte) {
	if dir == Sense {
		copy(k.seq, k.seq[1:])
		k.seq[len(k.seq)-1] = placeholder
		return
	}
	copy(k.seq[1:], k.seq)
	k.seq[0] = placeholder
}

// SetBase overwrites the base at position i, leaving all others untouched.
func (k *Kmer) SetBase(i int, b byte) { k.seq[i] = b }

// ReverseComplement returns a fresh window with mirrored order and
// complemented bases (A<->T, C<->G). The receiver is not modified.
func (k Kmer) ReverseComplement() Kmer {
	if k.seq == nil {
		return Kmer{}
	}
	n := len(k.seq)
	seq := make([]byte, n)
	for i := 0; i < n; i++ {
		seq[i] = Complement(k.seq[n-1-i])
	}
	return Kmer{cfg: k.cfg, seq: seq}
}

// Equal reports mask-aware equality: the windows agree at every significant
// position. Don't-care positions are ignored. Two empty windows are equal;
// windows of different length never are.
func (k Kmer) Equal(o Kmer) bool {
	if len(k.seq) != len(o.seq) {
		return false
	}
	for i := 0; i < len(k.seq); i++ {
		if k.cfg != nil && !k.cfg.Significant(i) {
			continue
		}
		if k.seq[i] != o.seq[i] {
			return false
		}
	}
	return true
}

// String returns the raw window sequence.
func (k Kmer) String() string { return string(k.seq) }

// MaskedString renders the window with don't-care positions as '_'. It is
// stable across mask-equivalent windows, which makes it usable as a
// visited-set key during traversal.
func (k Kmer) MaskedString() string {
	if k.cfg == nil || !k.cfg.Masked() {
		return string(k.seq)
	}
	out := make([]byte, len(k.seq))
	for i := 0; i < len(k.seq); i++ {
		if k.cfg.Significant(i) {
			out[i] = k.seq[i]
		} else {
			out[i] = '_'
		}
	}
	return string(out)
}
