package dbg

import (
	"errors"
	"fmt"

	"github.com/mr-c/abyss/bloom"
	"github.com/mr-c/abyss/kmer"
	"github.com/mr-c/abyss/rollhash"
)

// Sentinel errors for graph construction.
var (
	// ErrNilFilter indicates a nil membership filter.
	ErrNilFilter = errors.New("dbg: nil filter")

	// ErrNilConfig indicates a nil session configuration.
	ErrNilConfig = errors.New("dbg: nil config")

	// ErrNumHashes indicates a hash count outside [1, rollhash.MaxHashes].
	ErrNumHashes = errors.New("dbg: numHashes out of range")
)

// NoProperty is the empty vertex/edge payload: the graph carries no
// auxiliary data beyond vertex identity.
type NoProperty struct{}

// Graph adapts a populated membership filter to the directed-graph
// capability set. It holds a non-owning reference to the filter and issues
// only read queries against it; construction and population of the filter
// happen elsewhere, before any traversal.
type Graph struct {
	filter    *bloom.Filter
	cfg       *kmer.Config
	numHashes int
}

// New wraps filter as a de Bruijn graph over windows configured by cfg,
// querying numHashes hash values per vertex. numHashes must match the count
// used to populate the filter. Returns ErrNilFilter, ErrNilConfig or
// ErrNumHashes.
func New(filter *bloom.Filter, cfg *kmer.Config, numHashes int) (*Graph, error) {
	if filter == nil {
		return nil, ErrNilFilter
	}
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if numHashes < 1 || numHashes > rollhash.MaxHashes {
		return nil, fmt.Errorf("%w: got %d", ErrNumHashes, numHashes)
	}
	return &Graph{filter: filter, cfg: cfg, numHashes: numHashes}, nil
}

// Config returns the session configuration the graph operates under.
func (g *Graph) Config() *kmer.Config { return g.cfg }

// NumHashes returns the number of hash values per membership query.
func (g *Graph) NumHashes() int { return g.numHashes }

// NewVertex builds a vertex for seq under the graph's configuration.
func (g *Graph) NewVertex(seq string) (Vertex, error) {
	return NewVertex(g.cfg, seq, g.numHashes)
}

// HasVertex reports whether v's hash set is present in the filter. The
// null vertex is never present. Subject to the filter's one-sided error:
// a true result may be a false positive, a false result never is wrong
// for an inserted k-mer.
func (g *Graph) HasVertex(v Vertex) bool {
	if v.Empty() {
		return false
	}
	var buf [rollhash.MaxHashes]uint64
	hs := buf[:v.hash.NumHashes()]
	v.hash.Hashes(hs)
	return g.filter.Contains(hs)
}

// OutDegree counts the out-neighbors of u (0 to 4) by exhausting the
// adjacency sequence. There is no shortcut: the filter's answer is the only
// source of truth.
func (g *Graph) OutDegree(u Vertex) int {
	n := 0
	for it := g.AdjacentVertices(u); it.Next(); {
		n++
	}
	return n
}

// InDegree counts the in-neighbors of u (0 to 4) by exhausting the in-edge
// sequence.
func (g *Graph) InDegree(u Vertex) int {
	n := 0
	for it := g.InEdges(u); it.Next(); {
		n++
	}
	return n
}

// NullVertex returns the designated "absent" marker: an empty window with
// an empty hash state. It never satisfies HasVertex and is never yielded by
// any enumeration.
func (g *Graph) NullVertex() Vertex { return Vertex{} }

// VertexName returns the canonical masked window identifying u.
func (g *Graph) VertexName(u Vertex) kmer.Kmer { return u.Kmer() }

// VertexComplement returns the vertex for the reverse complement of u,
// with a freshly computed hash state. Reverse complementation is not a
// local window edit, so this is the one operation that cannot be done
// incrementally.
func (g *Graph) VertexComplement(u Vertex) Vertex {
	if u.Empty() {
		return Vertex{}
	}
	rc := u.Kmer().ReverseComplement()
	h, err := rollhash.New(g.cfg, rc.Bytes(), g.numHashes)
	if err != nil {
		// u was built under this graph's configuration, so its reverse
		// complement always rehashes cleanly
		panic(err)
	}
	return Vertex{kmer: rc, hash: h}
}

// Removed always reports false: the adapter has no deletion concept.
// Absence is modeled upstream by never inserting into the filter.
func (g *Graph) Removed(Vertex) bool { return false }

// VertexBundle returns the (empty) vertex payload.
func (g *Graph) VertexBundle(Vertex) NoProperty { return NoProperty{} }

// EdgeBundle returns the (empty) edge payload.
func (g *Graph) EdgeBundle(Edge) NoProperty { return NoProperty{} }
