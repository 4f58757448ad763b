package rewire

// proposer is the capability every strategy exposes to the driver: attempt
// one rewiring move for edge slot ei under the run's constraints. A false
// result is a rejected proposal; errors are graph-library failures and
// abort the run.
type proposer interface {
	propose(ei int, selfLoops, parallelEdges bool) (bool, error)
}

// pairTargeter is implemented by strategies built on the edge-pair
// framework: they only choose the partner edge and maintain their own
// indices around the swap.
type pairTargeter interface {
	// targetEdge picks the partner for slot ei. Returning a ref to ei
	// itself signals rejection.
	targetEdge(ei int) edgeRef

	// updateEdge is invoked for both affected slots immediately before
	// (inserting=false) and after (inserting=true) a swap, so block-indexed
	// buckets can observe both states.
	updateEdge(ei int, inserting bool)
}

// proposePair is the common edge-pair move: pick a partner, run the
// self-loop and parallel-edge admission checks, then bracket swapTarget
// with the strategy's remove/insert hooks.
func proposePair(s *rewireState, t pairTargeter, ei int, selfLoops, parallelEdges bool) (bool, error) {
	te := t.targetEdge(ei)

	if !selfLoops {
		// After the swap e becomes (src(e), dst(te)) and te's slot gains
		// dst set to tgt(e); either coincidence makes a loop.
		if s.edges[ei].from == s.refTarget(te) || s.edges[ei].to == s.refSource(te) {
			return false, nil
		}
	}

	if !parallelEdges && te.idx != ei {
		if s.parallelConflict(ei, te) {
			return false, nil
		}
	}

	if ei == te.idx {
		// Self-pair proposals count as rejections.
		return false, nil
	}

	t.updateEdge(ei, false)
	t.updateEdge(te.idx, false)
	if err := s.swapTarget(ei, te); err != nil {
		return false, err
	}
	t.updateEdge(ei, true)
	t.updateEdge(te.idx, true)

	return true, nil
}
