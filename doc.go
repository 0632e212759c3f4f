// Package abyss provides a memory-efficient, probabilistic de Bruijn graph
// over DNA sequences, the traversal substrate for genome assembly.
//
// The graph is never materialized: a vertex is a k-mer paired with an
// incrementally maintained multi-hash signature, and an edge exists exactly
// when the target k-mer's signature is present in a Bloom filter populated
// before traversal. Neighbor enumeration, degrees, and edge iteration are
// all synthesized lazily from membership queries, in O(numHashes) per
// traversal step.
//
// Subpackages:
//
//	kmer/     — fixed-length DNA windows, spaced-seed masks, session config
//	rollhash/ — strand-neutral rolling multi-hash state (ntHash family)
//	bloom/    — the approximate-membership filter queried during traversal
//	dbg/      — the graph adapter: vertices, edges, lazy iterators, degrees
//	bfs/      — breadth-first search over the implicit graph
//
// Because membership is probabilistic, the graph inherits the filter's
// one-sided error: no inserted k-mer is ever missing, but an enumerated
// edge may be a false positive at a rate set by the filter configuration.
package abyss
