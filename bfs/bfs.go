package bfs

import (
	"fmt"

	"github.com/mr-c/abyss/dbg"
)

// queueItem pairs a vertex with its BFS depth and its parent's ID.
type queueItem struct {
	v      dbg.Vertex
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *dbg.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Returns ErrGraphNil or
// ErrStartVertexNotFound for invalid input, ErrOptionViolation for bad
// options, or any user-supplied hook error. Neighbor order is
// deterministic: successors before predecessors, each in A,C,G,T order.
func BFS(g *dbg.Graph, start dbg.Vertex, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex against the filter
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(map[string]bool),
		res: &Result{
			Order:  []string{},
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start.Clone(), 0, "")
	// Main loop
	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(v dbg.Vertex, d int, parent string) {
	id := v.Kmer().MaskedString()
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{v: v, id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors synthesizes the neighbors of item.v from the filter,
// applies filtering and limits, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	// successors, in A,C,G,T order
	for it := w.graph.AdjacentVertices(item.v); it.Next(); {
		if err := w.consider(item, it.Vertex()); err != nil {
			return err
		}
	}
	if w.opts.ForwardOnly {
		return nil
	}
	// predecessors, in A,C,G,T order of the substituted leading base
	for it := w.graph.InEdges(item.v); it.Next(); {
		if err := w.consider(item, it.Edge().Source()); err != nil {
			return err
		}
	}
	return nil
}

// consider applies the filter callback and limits to one candidate
// neighbor, cloning and enqueueing it if it has not been seen. nbr borrows
// an iterator window; it is cloned before the queue retains it.
func (w *walker) consider(item queueItem, nbr dbg.Vertex) error {
	// cancellation check inside neighbor iteration
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	id := nbr.Kmer().MaskedString()
	if !w.opts.FilterNeighbor(item.id, id) {
		return nil
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	if w.visited[id] {
		return nil
	}
	if w.opts.MaxVertices > 0 && len(w.visited) >= w.opts.MaxVertices {
		return nil
	}
	w.enqueue(nbr.Clone(), nextDepth, item.id)
	return nil
}
