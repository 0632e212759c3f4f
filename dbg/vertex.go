package dbg

import (
	"github.com/mr-c/abyss/kmer"
	"github.com/mr-c/abyss/rollhash"
)

// Vertex is a de Bruijn graph vertex: a k-mer window paired with its
// multi-hash state. The two members are never allowed to drift apart;
// every window mutation goes through a method that updates both.
//
// The zero value is the null-vertex sentinel. A Vertex copy made by plain
// assignment shares the window's backing array with the original; use Clone
// before mutating.
type Vertex struct {
	kmer kmer.Kmer
	hash rollhash.RollingHash
}

// NewVertex builds a vertex for seq under cfg, computing the initial hash
// state from scratch. Errors come from kmer.New and rollhash.New.
func NewVertex(cfg *kmer.Config, seq string, numHashes int) (Vertex, error) {
	km, err := kmer.New(cfg, seq)
	if err != nil {
		return Vertex{}, err
	}
	h, err := rollhash.New(cfg, km.Bytes(), numHashes)
	if err != nil {
		return Vertex{}, err
	}
	return Vertex{kmer: km, hash: h}, nil
}

// Kmer returns the vertex's window.
func (v Vertex) Kmer() kmer.Kmer { return v.kmer }

// Hash returns the vertex's multi-hash state.
func (v Vertex) Hash() rollhash.RollingHash { return v.hash }

// Seed returns the canonical hash seed, cheap enough for map keys and
// fast-path inequality.
func (v Vertex) Seed() uint64 { return v.hash.Seed() }

// Empty reports whether this is the null-vertex sentinel.
func (v Vertex) Empty() bool { return v.kmer.Empty() }

// Clone returns a vertex with a private copy of the window. Neighbor
// generation always clones first, then mutates the clone.
func (v Vertex) Clone() Vertex {
	return Vertex{kmer: v.kmer.Clone(), hash: v.hash}
}

// Shift slides the window one base in dir, filling the exposed position
// with placeholder. The hash state rolls once; the window then shifts.
func (v *Vertex) Shift(dir kmer.Direction, placeholder byte) {
	if dir == kmer.Sense {
		v.hash.RollRight(v.kmer.Bytes(), placeholder)
	} else {
		v.hash.RollLeft(placeholder, v.kmer.Bytes())
	}
	v.kmer.Shift(dir, placeholder)
}

// SetLastBase overwrites the boundary base on the leading side of dir:
// the final position for Sense, position 0 for Antisense. One incremental
// hash update, and the window is rewritten in the same step.
func (v *Vertex) SetLastBase(dir kmer.Direction, base byte) {
	pos := 0
	if dir == kmer.Sense {
		pos = v.kmer.Len() - 1
	}
	v.hash.SetBase(v.kmer.Bytes(), pos, base)
}

// Equal reports vertex equality in two stages: the cheap hash-state
// comparison first, then the mask-aware window comparison. The second stage
// is required because hash equality alone is necessary but not sufficient
// once collisions and spaced seeds are considered.
func (v Vertex) Equal(o Vertex) bool {
	if !v.hash.Equal(o.hash) {
		return false
	}
	return v.kmer.Equal(o.kmer)
}

// String returns the window sequence.
func (v Vertex) String() string { return v.kmer.String() }

// Edge is an ordered pair of vertices. Edges exist only transiently, as the
// result of an edge-iterator dereference; nothing stores them.
type Edge struct {
	from Vertex
	to   Vertex
}

// Source returns the edge's origin vertex.
func (e Edge) Source() Vertex { return e.from }

// Target returns the edge's destination vertex.
func (e Edge) Target() Vertex { return e.to }

// String renders the edge as "AAAAA->AAAAC".
func (e Edge) String() string { return e.from.String() + "->" + e.to.String() }
