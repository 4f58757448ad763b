package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rewire/core"
)

// GraphSuite exercises construction, mutation and query behavior of the
// core multigraph under its various mode flags.
type GraphSuite struct {
	suite.Suite
}

func (s *GraphSuite) TestDefaultsAndFlags() {
	g := core.NewGraph()
	require.False(s.T(), g.Directed())
	require.False(s.T(), g.Weighted())
	require.False(s.T(), g.Looped())
	require.False(s.T(), g.Multigraph())

	g = core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	require.True(s.T(), g.Directed())
	require.True(s.T(), g.Weighted())
	require.True(s.T(), g.Looped())
	require.True(s.T(), g.Multigraph())
}

func (s *GraphSuite) TestAddEdgeAutoAddsVertices() {
	g := core.NewGraph(core.WithDirected(true))
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), eid)
	require.True(s.T(), g.HasVertex("A"))
	require.True(s.T(), g.HasVertex("B"))
	require.True(s.T(), g.HasEdge("A", "B"))
	require.False(s.T(), g.HasEdge("B", "A"))
	require.Equal(s.T(), 1, g.EdgeCount())
	require.Equal(s.T(), 2, g.VertexCount())
}

func (s *GraphSuite) TestUndirectedMirrorsAdjacency() {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(s.T(), err)
	require.True(s.T(), g.HasEdge("A", "B"))
	require.True(s.T(), g.HasEdge("B", "A"))
	require.Equal(s.T(), 1, g.EdgeCount())
}

func (s *GraphSuite) TestValidation() {
	g := core.NewGraph()
	_, err := g.AddEdge("", "B", 0)
	require.ErrorIs(s.T(), err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "B", 3)
	require.ErrorIs(s.T(), err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "A", 0)
	require.ErrorIs(s.T(), err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(s.T(), err)
	_, err = g.AddEdge("A", "B", 0)
	require.ErrorIs(s.T(), err, core.ErrMultiEdgeNotAllowed)
	// The mirror counts as the same connection.
	_, err = g.AddEdge("B", "A", 0)
	require.ErrorIs(s.T(), err, core.ErrMultiEdgeNotAllowed)

	require.ErrorIs(s.T(), g.RemoveEdge("missing"), core.ErrEdgeNotFound)
	_, err = g.EdgeByID("missing")
	require.ErrorIs(s.T(), err, core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestLoopsAndMultiWhenEnabled() {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops(), core.WithMultiEdges())
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(s.T(), err)
	_, err = g.AddEdge("A", "B", 0)
	require.NoError(s.T(), err)
	_, err = g.AddEdge("A", "B", 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, g.EdgeCount())
}

func (s *GraphSuite) TestDirectedDegrees() {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "C", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "C", 0)

	require.Equal(s.T(), 0, g.InDegree("A"))
	require.Equal(s.T(), 2, g.OutDegree("A"))
	require.Equal(s.T(), 1, g.InDegree("B"))
	require.Equal(s.T(), 1, g.OutDegree("B"))
	require.Equal(s.T(), 3, g.InDegree("C"))
	require.Equal(s.T(), 1, g.OutDegree("C"))
	require.Equal(s.T(), 0, g.InDegree("unknown"))
}

func (s *GraphSuite) TestUndirectedDegrees() {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "C", 0)

	// Undirected: InDegree == OutDegree == degree; a self-loop counts 2.
	require.Equal(s.T(), 1, g.InDegree("A"))
	require.Equal(s.T(), 1, g.OutDegree("A"))
	require.Equal(s.T(), 2, g.InDegree("B"))
	require.Equal(s.T(), 2, g.OutDegree("B"))
	require.Equal(s.T(), 3, g.InDegree("C"))
	require.Equal(s.T(), 3, g.OutDegree("C"))
}

func (s *GraphSuite) TestRemoveEdgeRestoresState() {
	g := core.NewGraph(core.WithDirected(true))
	eid, _ := g.AddEdge("A", "B", 0)
	require.NoError(s.T(), g.RemoveEdge(eid))
	require.False(s.T(), g.HasEdge("A", "B"))
	require.Equal(s.T(), 0, g.EdgeCount())
	require.Equal(s.T(), 0, g.OutDegree("A"))
	require.Equal(s.T(), 0, g.InDegree("B"))
	// Vertices survive edge removal.
	require.True(s.T(), g.HasVertex("A"))
}

func (s *GraphSuite) TestParallelRemovalKeepsSibling() {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	e1, _ := g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "B", 0)
	require.NoError(s.T(), g.RemoveEdge(e1))
	require.True(s.T(), g.HasEdge("A", "B"), "second parallel edge must survive")
	require.Equal(s.T(), 1, g.InDegree("B"))
}

func (s *GraphSuite) TestEdgesSortedAndCopied() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	edges := g.Edges()
	require.Len(s.T(), edges, 2)
	require.True(s.T(), edges[0].ID < edges[1].ID)

	// Mutating the returned slice must not affect the graph.
	edges[0].To = "Z"
	fresh := g.Edges()
	require.NotEqual(s.T(), "Z", fresh[0].To)
}

func (s *GraphSuite) TestVerticesSorted() {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(s.T(), g.AddVertex(id))
	}
	require.Equal(s.T(), []string{"A", "B", "C"}, g.Vertices())
}

func (s *GraphSuite) TestCloneIsIndependent() {
	g := core.NewGraph(core.WithDirected(true))
	eid, _ := g.AddEdge("A", "B", 0)
	clone := g.Clone()

	require.NoError(s.T(), g.RemoveEdge(eid))
	require.True(s.T(), clone.HasEdge("A", "B"))
	require.Equal(s.T(), 1, clone.EdgeCount())
	require.Equal(s.T(), 1, clone.InDegree("B"))

	// Edges added to the clone must not appear in the original.
	_, err := clone.AddEdge("B", "A", 0)
	require.NoError(s.T(), err)
	require.False(s.T(), g.HasEdge("B", "A"))
}

func (s *GraphSuite) TestStats() {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "B", 0)

	st := g.Stats()
	require.True(s.T(), st.Directed)
	require.True(s.T(), st.AllowsLoops)
	require.False(s.T(), st.AllowsMulti)
	require.Equal(s.T(), 2, st.VertexCount)
	require.Equal(s.T(), 2, st.EdgeCount)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
