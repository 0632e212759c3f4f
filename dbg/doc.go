// Package dbg synthesizes a de Bruijn graph over DNA k-mers from a
// populated approximate-membership filter.
//
// The graph stores no vertices and no edges. A vertex is a k-mer paired
// with its incrementally maintained multi-hash state (rollhash); an edge
// exists exactly when the target k-mer's hash set is reported present by
// the filter (bloom). All topology is derived lazily: neighbor enumeration
// clones the origin vertex, rolls the window once, then substitutes each of
// the four bases at the exposed position in A,C,G,T order, querying the
// filter per candidate. Enumerating all neighbors of a vertex therefore
// costs one roll, four substitutions and four filter queries, independent
// of k.
//
// Because the filter is probabilistic, an enumerated edge may be a false
// positive: the filter admits no false negatives, but a candidate k-mer
// that was never inserted can still be reported present. Callers inherit
// this one-sided error as a graph-correctness caveat; it is a property of
// the representation, not a failure the adapter detects.
//
// Graph holds a non-owning reference to the filter and only ever reads it.
// Concurrent traversals over one populated filter are safe as long as
// nothing inserts concurrently. Iterators and vertices are exclusively
// owned by their call stack; the adapter itself takes no locks.
package dbg
