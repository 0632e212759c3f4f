package bfs_test

import (
	"fmt"

	"github.com/mr-c/abyss/bfs"
	"github.com/mr-c/abyss/bloom"
	"github.com/mr-c/abyss/dbg"
	"github.com/mr-c/abyss/kmer"
	"github.com/mr-c/abyss/rollhash"
)

// ExampleBFS extends a unitig forward from a seed k-mer.
func ExampleBFS() {
	cfg, _ := kmer.NewConfig(5)
	filter, _ := bloom.New(100000)
	for _, seq := range []string{"CGACT", "GACTC", "ACTCT"} {
		h, _ := rollhash.New(cfg, []byte(seq), 2)
		filter.Insert(h.HashSet())
	}
	g, _ := dbg.New(filter, cfg, 2)
	start, _ := g.NewVertex("CGACT")

	res, _ := bfs.BFS(g, start, bfs.WithForwardOnly())
	path, _ := res.PathTo("ACTCT")
	fmt.Println(path)

	// Output:
	// [CGACT GACTC ACTCT]
}
