package rollhash

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/mr-c/abyss/kmer"
)

// MaxHashes caps the number of hash values a state may produce. It lets
// callers keep oracle-query scratch buffers on the stack.
const MaxHashes = 16

// Sentinel errors for hash-state construction.
var (
	// ErrNilConfig indicates a nil session configuration.
	ErrNilConfig = errors.New("rollhash: nil config")

	// ErrWindowLength indicates a window whose length differs from k.
	ErrWindowLength = errors.New("rollhash: window length must equal k")

	// ErrNumHashes indicates a hash count outside [1, MaxHashes].
	ErrNumHashes = errors.New("rollhash: numHashes out of range")
)

// RollingHash is the incremental multi-hash state for one DNA window.
// The zero value is the empty state, paired with the empty window sentinel.
//
// RollingHash is a small value type; plain assignment copies the whole state.
type RollingHash struct {
	cfg       *kmer.Config
	numHashes int
	fwd       uint64 // ntHash of the window, significant positions only
	rc        uint64 // ntHash of the reverse complement
}

// New fully initializes a state from window, in O(k). Thereafter the state
// is updated only incrementally. Returns ErrNilConfig, ErrWindowLength or
// ErrNumHashes.
func New(cfg *kmer.Config, window []byte, numHashes int) (RollingHash, error) {
	if cfg == nil {
		return RollingHash{}, ErrNilConfig
	}
	if len(window) != cfg.K() {
		return RollingHash{}, fmt.Errorf("%w: window %q, k=%d", ErrWindowLength, window, cfg.K())
	}
	if numHashes < 1 || numHashes > MaxHashes {
		return RollingHash{}, fmt.Errorf("%w: got %d", ErrNumHashes, numHashes)
	}
	h := RollingHash{cfg: cfg, numHashes: numHashes}
	h.Reset(window)
	return h, nil
}

// NumHashes returns the number of values Hashes produces.
func (h RollingHash) NumHashes() int { return h.numHashes }

// Empty reports whether this is the zero-value (null sentinel) state.
func (h RollingHash) Empty() bool { return h.cfg == nil }

// Reset recomputes both strand hashes from scratch over window.
func (h *RollingHash) Reset(window []byte) {
	h.reset(func(i int) byte { return window[i] })
}

// reset recomputes both strand hashes from a virtual window, so rolls can
// rehash a shifted window without materializing it.
func (h *RollingHash) reset(at func(i int) byte) {
	k := h.cfg.K()
	var fwd, rc uint64
	for i := 0; i < k; i++ {
		if !h.cfg.Significant(i) {
			continue
		}
		fwd ^= bits.RotateLeft64(seedTab[at(i)], k-1-i)
		// position i of the window lands at position k-1-i of the reverse
		// complement, complemented
		rc ^= bits.RotateLeft64(seedTab[kmer.Complement(at(k-1-i))], k-1-i)
	}
	h.fwd, h.rc = fwd, rc
}

// RollRight slides the window one base forward: window[0] leaves, in enters
// at the end. window holds the pre-roll contents. O(1) without a spaced
// seed, O(k) with one.
func (h *RollingHash) RollRight(window []byte, in byte) {
	if h.cfg.Masked() {
		n := len(window) - 1
		h.reset(func(i int) byte {
			if i < n {
				return window[i+1]
			}
			return in
		})
		return
	}
	k := h.cfg.K()
	out := window[0]
	h.fwd = bits.RotateLeft64(h.fwd, 1) ^
		bits.RotateLeft64(seedTab[out], k) ^
		seedTab[in]
	h.rc = bits.RotateLeft64(h.rc, -1) ^
		bits.RotateLeft64(seedTab[kmer.Complement(out)], -1) ^
		bits.RotateLeft64(seedTab[kmer.Complement(in)], k-1)
}

// RollLeft slides the window one base backward: in enters at the front,
// window[k-1] leaves. window holds the pre-roll contents. O(1) without a
// spaced seed, O(k) with one.
func (h *RollingHash) RollLeft(in byte, window []byte) {
	if h.cfg.Masked() {
		h.reset(func(i int) byte {
			if i == 0 {
				return in
			}
			return window[i-1]
		})
		return
	}
	k := h.cfg.K()
	out := window[k-1]
	h.fwd = bits.RotateLeft64(h.fwd, -1) ^
		bits.RotateLeft64(seedTab[out], -1) ^
		bits.RotateLeft64(seedTab[in], k-1)
	h.rc = bits.RotateLeft64(h.rc, 1) ^
		bits.RotateLeft64(seedTab[kmer.Complement(out)], k) ^
		seedTab[kmer.Complement(in)]
}

// SetBase substitutes the base at pos and writes it into window, keeping the
// state and the window contents in lockstep. O(1), spaced seed or not:
// a substitution at a don't-care position leaves the hash values unchanged.
func (h *RollingHash) SetBase(window []byte, pos int, base byte) {
	old := window[pos]
	window[pos] = base
	if old == base {
		return
	}
	k := h.cfg.K()
	if h.cfg.Significant(pos) {
		h.fwd ^= bits.RotateLeft64(seedTab[old]^seedTab[base], k-1-pos)
	}
	// the substituted position sits at k-1-pos on the reverse complement
	if h.cfg.Significant(k - 1 - pos) {
		h.rc ^= bits.RotateLeft64(
			seedTab[kmer.Complement(old)]^seedTab[kmer.Complement(base)], pos)
	}
}

// Seed returns the canonical (strand-neutral) hash value, min of the two
// strand hashes. It is cheap and suited to fast-path inequality rejection.
func (h RollingHash) Seed() uint64 {
	if h.rc < h.fwd {
		return h.rc
	}
	return h.fwd
}

// Hashes fills dst[:NumHashes()] with the full hash set for oracle queries:
// the canonical seed followed by NTM-extended values.
func (h RollingHash) Hashes(dst []uint64) {
	if h.numHashes == 0 {
		return // empty sentinel state
	}
	seed := h.Seed()
	dst[0] = seed
	kSeed := uint64(h.cfg.K()) * multiSeed
	for i := 1; i < h.numHashes; i++ {
		t := seed * (uint64(i) ^ kSeed)
		t ^= t >> multiShift
		dst[i] = t
	}
}

// HashSet returns a freshly allocated hash set. Hot paths should prefer
// Hashes with a reused buffer.
func (h RollingHash) HashSet() []uint64 {
	dst := make([]uint64, h.numHashes)
	h.Hashes(dst)
	return dst
}

// Equal reports whether two states hold identical strand hashes. Both
// states must come from the same session configuration.
func (h RollingHash) Equal(o RollingHash) bool {
	return h.fwd == o.fwd && h.rc == o.rc
}
