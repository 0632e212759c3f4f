package dbg_test

import (
	"fmt"

	"github.com/mr-c/abyss/bloom"
	"github.com/mr-c/abyss/dbg"
	"github.com/mr-c/abyss/kmer"
	"github.com/mr-c/abyss/rollhash"
)

// Example populates a filter with five 5-mers and enumerates the edges
// around the branching k-mer GACTC.
func Example() {
	cfg, _ := kmer.NewConfig(5)
	filter, _ := bloom.New(100000)
	const numHashes = 2
	for _, seq := range []string{"CGACT", "TGACT", "GACTC", "ACTCT", "ACTCG"} {
		h, _ := rollhash.New(cfg, []byte(seq), numHashes)
		filter.Insert(h.HashSet())
	}

	g, _ := dbg.New(filter, cfg, numHashes)
	u, _ := g.NewVertex("GACTC")

	for it := g.OutEdges(u); it.Next(); {
		fmt.Println(it.Edge())
	}
	for it := g.InEdges(u); it.Next(); {
		fmt.Println(it.Edge())
	}
	fmt.Println("out:", g.OutDegree(u), "in:", g.InDegree(u))

	// Output:
	// GACTC->ACTCG
	// GACTC->ACTCT
	// CGACT->GACTC
	// TGACT->GACTC
	// out: 2 in: 2
}
