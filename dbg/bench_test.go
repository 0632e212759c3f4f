package dbg_test

import (
	"testing"

	"github.com/mr-c/abyss/bloom"
	"github.com/mr-c/abyss/dbg"
	"github.com/mr-c/abyss/kmer"
	"github.com/mr-c/abyss/rollhash"
)

// benchGraph populates a filter with every window of a synthetic sequence.
func benchGraph(b *testing.B, k, numHashes int) (*dbg.Graph, dbg.Vertex) {
	b.Helper()
	cfg, err := kmer.NewConfig(k)
	if err != nil {
		b.Fatal(err)
	}
	filter, err := bloom.New(1 << 20)
	if err != nil {
		b.Fatal(err)
	}

	// deterministic pseudo-random DNA
	seq := make([]byte, 4096)
	state := uint64(0x9e3779b97f4a7c15)
	for i := range seq {
		state = state*6364136223846793005 + 1442695040888963407
		seq[i] = kmer.Bases[state>>62]
	}
	h, err := rollhash.New(cfg, seq[:k], numHashes)
	if err != nil {
		b.Fatal(err)
	}
	filter.Insert(h.HashSet())
	for i := k; i < len(seq); i++ {
		h.RollRight(seq[i-k:i], seq[i])
		filter.Insert(h.HashSet())
	}

	g, err := dbg.New(filter, cfg, numHashes)
	if err != nil {
		b.Fatal(err)
	}
	u, err := g.NewVertex(string(seq[:k]))
	if err != nil {
		b.Fatal(err)
	}
	return g, u
}

// BenchmarkAdjacentVertices measures one full neighbor enumeration:
// one roll, four substitutions, four filter queries.
func BenchmarkAdjacentVertices(b *testing.B) {
	g, u := benchGraph(b, 31, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for it := g.AdjacentVertices(u); it.Next(); {
		}
	}
}

// BenchmarkOutDegree measures the exhaust-and-count degree query.
func BenchmarkOutDegree(b *testing.B) {
	g, u := benchGraph(b, 31, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.OutDegree(u)
	}
}
