// Package kmer provides the fixed-length DNA window type used as a de Bruijn
// graph vertex, together with the immutable session configuration (window
// length k and an optional spaced-seed mask) that every window in a traversal
// session shares.
//
// A Kmer supports the in-place mutations needed to synthesize graph
// neighbors without reallocation:
//
//   - Shift: slide the window by one base in either direction
//   - SetBase: overwrite a single position
//   - ReverseComplement: mirrored order, complemented bases
//
// Equality is mask-aware: two windows compare equal when they agree at every
// significant mask position; don't-care positions are ignored.
//
// All windows compared against each other must be built from the same Config.
// Mixing configurations is a session-setup bug, not a runtime condition, and
// is not recovered from.
package kmer
