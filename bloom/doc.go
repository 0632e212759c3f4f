// Package bloom provides the approximate-membership filter queried by the
// de Bruijn graph adapter.
//
// The filter performs no hashing of its own: Insert and Contains take hash
// sets computed externally (see rollhash), so membership is defined entirely
// by the hash function that populated the filter. Answers are one-sided:
// a hash set that was inserted is always reported present; a hash set that
// was not may still be reported present, at a rate governed by the filter
// size and the number of hash values per query.
//
// The read path (Contains, NumBits, Occupancy, FalsePositiveRate) is safe
// for any number of concurrent readers as long as no Insert runs
// concurrently. Populate first, then traverse.
package bloom
