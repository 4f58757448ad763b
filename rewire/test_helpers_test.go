package rewire_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rewire/core"
)

// edgePairs renders the current edge set as a sorted "from->to" list, the
// canonical form used by equality assertions. Undirected edges are
// normalized so orientation does not matter.
func edgePairs(g *core.Graph) []string {
	out := make([]string, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		from, to := e.From, e.To
		if !g.Directed() && to < from {
			from, to = to, from
		}
		out = append(out, fmt.Sprintf("%s->%s", from, to))
	}
	sort.Strings(out)

	return out
}

// degreeTable captures (in, out) per vertex for invariance assertions.
func degreeTable(g *core.Graph) map[string][2]int {
	out := make(map[string][2]int, g.VertexCount())
	for _, v := range g.Vertices() {
		out[v] = [2]int{g.InDegree(v), g.OutDegree(v)}
	}

	return out
}

// requireSimple asserts the graph has no self-loops and no parallel edges.
func requireSimple(t *testing.T, g *core.Graph) {
	t.Helper()
	seen := make(map[string]struct{})
	for _, e := range g.Edges() {
		require.NotEqual(t, e.From, e.To, "unexpected self-loop at %s", e.ID)
		from, to := e.From, e.To
		if !g.Directed() && to < from {
			from, to = to, from
		}
		key := from + "\x00" + to
		_, dup := seen[key]
		require.False(t, dup, "unexpected parallel edge %s->%s", from, to)
		seen[key] = struct{}{}
	}
}

// directedCycle builds the directed cycle 0→1→…→(n-1)→0.
func directedCycle(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n; i++ {
		_, err := g.AddEdge(fmt.Sprintf("%d", i), fmt.Sprintf("%d", (i+1)%n), 0)
		require.NoError(t, err)
	}

	return g
}
