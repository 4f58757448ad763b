package rewire

// randomStrategy swaps targets of uniformly drawn edge pairs, producing a
// uniform sample of the configuration model restricted by the loop and
// parallel-edge constraints. Every vertex keeps its exact in- and
// out-degree.
type randomStrategy struct {
	st *rewireState
}

func newRandom(st *rewireState) *randomStrategy {
	return &randomStrategy{st: st}
}

func (r *randomStrategy) propose(ei int, selfLoops, parallelEdges bool) (bool, error) {
	return proposePair(r.st, r, ei, selfLoops, parallelEdges)
}

// targetEdge samples a partner slot uniformly; for undirected graphs a fair
// coin additionally selects the orientation.
func (r *randomStrategy) targetEdge(int) edgeRef {
	te := edgeRef{idx: r.st.rnd.Intn(len(r.st.edges))}
	if !r.st.g.Directed() {
		te.flipped = r.st.rnd.Intn(2) == 1
	}

	return te
}

// updateEdge is a no-op: the strategy keeps no indices.
func (r *randomStrategy) updateEdge(int, bool) {}
