package rewire

// erdosStrategy rewires toward a fully random graph: each visited edge is
// replaced by an edge between two uniformly drawn vertices. Degrees are not
// preserved; |E| is.
type erdosStrategy struct {
	st       *rewireState
	vertices []string
}

// newErdos snapshots the vertex set once; vertex identities are stable for
// the duration of the run.
func newErdos(st *rewireState) *erdosStrategy {
	return &erdosStrategy{st: st, vertices: st.g.Vertices()}
}

func (e *erdosStrategy) propose(ei int, selfLoops, parallelEdges bool) (bool, error) {
	// Try randomly drawn pairs of vertices; only the self-loop constraint
	// resamples, the parallel constraint rejects.
	var s, t string
	for {
		s = e.vertices[e.st.rnd.Intn(len(e.vertices))]
		t = e.vertices[e.st.rnd.Intn(len(e.vertices))]
		if s == t && !selfLoops {
			continue
		}

		break
	}

	if !parallelEdges && e.st.g.HasEdge(s, t) {
		return false, nil
	}

	rec := e.st.edges[ei]
	if err := e.st.g.RemoveEdge(rec.id); err != nil {
		return false, err
	}
	id, err := e.st.g.AddEdge(s, t, rec.weight)
	if err != nil {
		return false, err
	}
	e.st.edges[ei] = edgeRec{id: id, from: s, to: t, weight: rec.weight}

	return true, nil
}
