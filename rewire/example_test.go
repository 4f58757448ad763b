package rewire_test

import (
	"fmt"

	"github.com/katalvlaran/rewire/builder"
	"github.com/katalvlaran/rewire/core"
	"github.com/katalvlaran/rewire/rewire"
)

// ExampleRewire shuffles a directed cycle while preserving every vertex's
// in- and out-degree.
func ExampleRewire() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		nil,
		builder.Cycle(6),
	)
	if err != nil {
		fmt.Println(err)

		return
	}

	failed, err := rewire.Rewire(g, rewire.Random, nil,
		rewire.WithIterations(100),
		rewire.WithSeed(42),
		rewire.WithPersist(),
	)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("failed:", failed)
	fmt.Println("degrees preserved:", g.InDegree("0") == 1 && g.OutDegree("0") == 1)
	// Output:
	// edges: 6
	// failed: 0
	// degrees preserved: true
}

// ExampleRewireBlocks drives edges toward intra-block pairs under a
// property-map block assignment.
func ExampleRewireBlocks() {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"a1", "b1"}, {"b2", "a2"}, {"a3", "a1"}, {"b3", "b2"}} {
		if _, err := g.AddEdge(e[0], e[1], 0); err != nil {
			fmt.Println(err)

			return
		}
	}
	blocks := rewire.NewPropertyBlocks(map[string]string{
		"a1": "a", "a2": "a", "a3": "a",
		"b1": "b", "b2": "b", "b3": "b",
	})
	assortative := func(bs, bt string) float64 {
		if bs == bt {
			return 1
		}

		return 0
	}

	_, err := rewire.RewireBlocks[string](g, rewire.Alias, blocks, assortative,
		rewire.WithIterations(200),
		rewire.WithSeed(7),
	)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// edges: 4
}
