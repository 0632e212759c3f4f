package bloom

import (
	"errors"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// ErrZeroSize indicates a filter size of zero bits.
var ErrZeroSize = errors.New("bloom: filter size must be positive")

// Filter is a Bloom filter addressed by externally computed hash values.
type Filter struct {
	bits    *bitset.BitSet
	numBits uint64
}

// New creates an empty filter of numBits bits. Returns ErrZeroSize.
func New(numBits uint) (*Filter, error) {
	if numBits == 0 {
		return nil, fmt.Errorf("%w: got 0", ErrZeroSize)
	}
	return &Filter{
		bits:    bitset.New(numBits),
		numBits: uint64(numBits),
	}, nil
}

// Insert marks every hash value in hashes as present. Not safe to call
// concurrently with any other method.
func (f *Filter) Insert(hashes []uint64) {
	for _, h := range hashes {
		f.bits.Set(uint(h % f.numBits))
	}
}

// Contains reports whether every hash value in hashes is present. There are
// no false negatives for inserted hash sets; false positives occur at the
// rate reported by FalsePositiveRate. Safe for concurrent readers.
func (f *Filter) Contains(hashes []uint64) bool {
	for _, h := range hashes {
		if !f.bits.Test(uint(h % f.numBits)) {
			return false
		}
	}
	return true
}

// NumBits returns the filter size in bits.
func (f *Filter) NumBits() uint { return uint(f.numBits) }

// Occupancy returns the fraction of bits set, in [0,1].
func (f *Filter) Occupancy() float64 {
	return float64(f.bits.Count()) / float64(f.numBits)
}

// FalsePositiveRate estimates the probability that a never-inserted hash set
// of numHashes values is reported present, given the current occupancy.
func (f *Filter) FalsePositiveRate(numHashes int) float64 {
	return math.Pow(f.Occupancy(), float64(numHashes))
}
