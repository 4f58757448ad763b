package rewire

// correlatedStrategy swaps targets only between edges whose targets share a
// block, preserving the joint endpoint-block distribution on top of the
// degree sequence. For undirected graphs each edge is indexed twice, once
// per orientation, so either endpoint can act as the "target".
type correlatedStrategy[B comparable] struct {
	st     *rewireState
	blocks BlockAssigner[B]

	// byTarget[b] lists every edge orientation whose target has block b.
	// swapTarget exchanges target blocks between the two slots involved, so
	// the buckets stay valid for the whole run without updates.
	byTarget map[B][]edgeRef
}

func newCorrelated[B comparable](st *rewireState, blocks BlockAssigner[B]) *correlatedStrategy[B] {
	c := &correlatedStrategy[B]{
		st:       st,
		blocks:   blocks,
		byTarget: make(map[B][]edgeRef),
	}
	directed := st.g.Directed()
	for ei := range st.edges {
		b := blocks.BlockOf(st.edges[ei].to, st.g)
		c.byTarget[b] = append(c.byTarget[b], edgeRef{idx: ei})
		if !directed {
			b = blocks.BlockOf(st.edges[ei].from, st.g)
			c.byTarget[b] = append(c.byTarget[b], edgeRef{idx: ei, flipped: true})
		}
	}

	return c
}

func (c *correlatedStrategy[B]) propose(ei int, selfLoops, parallelEdges bool) (bool, error) {
	return proposePair(c.st, c, ei, selfLoops, parallelEdges)
}

// targetEdge samples uniformly from the bucket of the visited edge's
// current target block. The bucket is never empty: it contains at least
// the visited edge itself.
func (c *correlatedStrategy[B]) targetEdge(ei int) edgeRef {
	b := c.blocks.BlockOf(c.st.edges[ei].to, c.st.g)
	list := c.byTarget[b]

	return list[c.st.rnd.Intn(len(list))]
}

// updateEdge is a no-op: target blocks permute between the swapped slots,
// so bucket membership is invariant.
func (c *correlatedStrategy[B]) updateEdge(int, bool) {}
