// Package rewire: edge-slot table, oriented edge references and the
// target-swap primitive shared by all degree-preserving strategies.
package rewire

import (
	"math/rand"

	"github.com/katalvlaran/rewire/core"
)

// edgeRec is the current descriptor of one edge slot. The slot index is the
// stable handle for the whole run; the underlying core edge (and its ID) is
// replaced on every swap, so descriptors must never be cached across moves.
// Weight travels with the slot, mirroring edge-index-addressed properties.
type edgeRec struct {
	id     string
	from   string
	to     string
	weight int64
}

// edgeRef references an edge slot under an orientation. flipped is
// meaningful only for undirected graphs, where it interprets the edge with
// its endpoints exchanged so one edge can appear under both orientations in
// endpoint-indexed buckets.
type edgeRef struct {
	idx     int
	flipped bool
}

// rewireState is the per-run state shared by the driver and all strategies:
// the graph, the slot table and the random source.
type rewireState struct {
	g     *core.Graph
	edges []edgeRec
	rnd   *rand.Rand
}

// refSource returns the source vertex of e under its orientation.
func (s *rewireState) refSource(e edgeRef) string {
	if e.flipped {
		return s.edges[e.idx].to
	}

	return s.edges[e.idx].from
}

// refTarget returns the target vertex of e under its orientation.
func (s *rewireState) refTarget(e edgeRef) string {
	if e.flipped {
		return s.edges[e.idx].from
	}

	return s.edges[e.idx].to
}

// parallelConflict reports whether swapping the target of slot ei with the
// target of te would introduce a parallel edge:
//
//	(s)    -e--> (t)          (s)    -e--> (nt)
//	(te_s) -te-> (nt)   =>    (te_s) -te-> (t)
//
// i.e. whether (s, nt) or (te_s, t) is already adjacent in the current
// graph state.
func (s *rewireState) parallelConflict(ei int, te edgeRef) bool {
	src := s.edges[ei].from  // current source
	tgt := s.edges[ei].to    // current target
	nt := s.refTarget(te)    // new target
	teS := s.refSource(te)   // target edge source

	if s.g.HasEdge(src, nt) {
		return true // e would clash with an existing edge
	}
	if s.g.HasEdge(teS, tgt) {
		return true // te would clash with an existing edge
	}

	return false
}

// swapTarget exchanges the target of slot ei with the target of te (under
// te's orientation), replacing both underlying core edges and refreshing
// the slot table. Each endpoint's in- and out-degree is invariant because
// exactly the targets are exchanged. No-op when both refs name the same
// slot. Graph mutation errors propagate unchanged.
func (s *rewireState) swapTarget(ei int, te edgeRef) error {
	if ei == te.idx {
		return nil
	}

	a := s.edges[ei]
	b := s.edges[te.idx]
	srcE, tgtE := a.from, a.to
	srcTe := s.refSource(te)
	tgtTe := s.refTarget(te)

	if err := s.g.RemoveEdge(a.id); err != nil {
		return err
	}
	if err := s.g.RemoveEdge(b.id); err != nil {
		return err
	}

	idA, err := s.g.AddEdge(srcE, tgtTe, a.weight)
	if err != nil {
		return err
	}
	s.edges[ei] = edgeRec{id: idA, from: srcE, to: tgtTe, weight: a.weight}

	// The partner slot keeps its stored orientation: unflipped gets
	// (te_s, t); flipped (undirected only) gets (t, te_s).
	var idB string
	if !te.flipped {
		idB, err = s.g.AddEdge(srcTe, tgtE, b.weight)
		if err != nil {
			return err
		}
		s.edges[te.idx] = edgeRec{id: idB, from: srcTe, to: tgtE, weight: b.weight}
	} else {
		idB, err = s.g.AddEdge(tgtE, srcTe, b.weight)
		if err != nil {
			return err
		}
		s.edges[te.idx] = edgeRec{id: idB, from: tgtE, to: srcTe, weight: b.weight}
	}

	return nil
}
