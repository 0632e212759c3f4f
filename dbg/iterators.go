package dbg

import "github.com/mr-c/abyss/kmer"

// cursor is the shared enumeration state behind the three iterator kinds:
// a mutable clone of the origin vertex, pre-shifted one base in dir, and
// the alphabet index of the next candidate to test. Each step performs one
// incremental substitution and one filter query.
type cursor struct {
	g   *Graph
	w   Vertex // working clone, shifted once on construction
	dir kmer.Direction
	i   int // next alphabet index; kmer.NumBases when exhausted
}

func newCursor(g *Graph, u Vertex, dir kmer.Direction) cursor {
	c := cursor{g: g, dir: dir, i: kmer.NumBases}
	if u.Empty() {
		return c // null vertex has no neighbors
	}
	c.w = u.Clone()
	c.w.Shift(dir, 'A')
	c.i = 0
	return c
}

// next advances to the next candidate the filter reports present.
func (c *cursor) next() bool {
	for c.i < kmer.NumBases {
		b := kmer.Bases[c.i]
		c.i++
		c.w.SetLastBase(c.dir, b)
		if c.g.HasVertex(c.w) {
			return true
		}
	}
	return false
}

// AdjacencyIterator enumerates the out-neighbors of a vertex lazily, in
// A,C,G,T order, yielding at most four vertices. Construct a fresh iterator
// to restart; nothing is cached.
type AdjacencyIterator struct {
	cur cursor
}

// AdjacentVertices returns a new iterator over the out-neighbors of u.
func (g *Graph) AdjacentVertices(u Vertex) *AdjacencyIterator {
	return &AdjacencyIterator{cur: newCursor(g, u, kmer.Sense)}
}

// Next advances to the next present neighbor, reporting false when the
// alphabet is exhausted.
func (it *AdjacencyIterator) Next() bool { return it.cur.next() }

// Vertex returns the current neighbor. The returned vertex borrows the
// iterator's working window and is invalidated by the next call to Next;
// Clone it to retain it.
func (it *AdjacencyIterator) Vertex() Vertex { return it.cur.w }

// OutEdgeIterator enumerates the out-edges (u, w) of a vertex lazily, in
// A,C,G,T order of the target's final base.
type OutEdgeIterator struct {
	u   Vertex
	cur cursor
}

// OutEdges returns a new iterator over the out-edges of u.
func (g *Graph) OutEdges(u Vertex) *OutEdgeIterator {
	return &OutEdgeIterator{u: u.Clone(), cur: newCursor(g, u, kmer.Sense)}
}

// Next advances to the next present out-edge.
func (it *OutEdgeIterator) Next() bool { return it.cur.next() }

// Edge returns the current edge, directed u -> w. The target borrows the
// iterator's working window; Clone it to retain it past the next Next.
func (it *OutEdgeIterator) Edge() Edge { return Edge{from: it.u, to: it.cur.w} }

// InEdgeIterator enumerates the in-edges (w, u) of a vertex lazily.
// Predecessors are discovered by shifting backward and testing which
// windows, extended forward, would reach u; candidates are enumerated in
// A,C,G,T order of the substituted leading base.
type InEdgeIterator struct {
	u   Vertex
	cur cursor
}

// InEdges returns a new iterator over the in-edges of u.
func (g *Graph) InEdges(u Vertex) *InEdgeIterator {
	return &InEdgeIterator{u: u.Clone(), cur: newCursor(g, u, kmer.Antisense)}
}

// Next advances to the next present in-edge.
func (it *InEdgeIterator) Next() bool { return it.cur.next() }

// Edge returns the current edge, directed w -> u. The source borrows the
// iterator's working window; Clone it to retain it past the next Next.
func (it *InEdgeIterator) Edge() Edge { return Edge{from: it.cur.w, to: it.u} }
