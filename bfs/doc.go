// Package bfs provides breadth-first search over the implicit de Bruijn
// graph of package dbg, returning unweighted distances, parent links and
// visit order.
//
// The graph has no stored vertex set: neighbors are synthesized per step
// from membership-filter queries, and the reachable component can be as
// large as the inserted k-mer set (or larger, through false positives).
// BFS therefore supports a visited-vertex cap in addition to the usual
// depth limit, hooks and neighbor filtering.
//
// Vertices are identified by their masked window string (kmer.MaskedString),
// so windows that are equivalent under the session's spaced seed are
// visited once.
package bfs
