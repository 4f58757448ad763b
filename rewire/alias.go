package rewire

import (
	"github.com/katalvlaran/rewire/sampler"
)

// aliasStrategy samples a degree-corrected stochastic blockmodel: the
// partner's target block is drawn in O(1) from a per-source-block alias
// sampler, the partner edge uniformly from incrementally maintained
// per-block edge buckets, and the move passes the same Metropolis–Hastings
// correction as the rejection variant. The non-uniform proposal kernel is
// symmetric under this block construction, so pf/pi remains the whole
// acceptance ratio.
type aliasStrategy[B comparable] struct {
	st     *rewireState
	blocks BlockAssigner[B]

	// samplers[bs] draws a target block with weight p(bs, ·); probs caches
	// the sanitized pair probabilities for acceptance evaluation.
	samplers map[B]*sampler.Alias[B]
	probs    map[blockPair[B]]float64

	// inEdges[b] lists slots whose current target has block b; inPos[i] is
	// slot i's position in its bucket, enabling O(1) swap-and-pop removal.
	// outEdges/outPos mirror the structure over sources (undirected only).
	inEdges map[B][]int
	inPos   []int

	outEdges map[B][]int
	outPos   []int
}

func newAliasSBM[B comparable](st *rewireState, blocks BlockAssigner[B],
	prob CorrProb[B],
) (*aliasStrategy[B], error) {
	a := &aliasStrategy[B]{
		st:       st,
		blocks:   blocks,
		samplers: make(map[B]*sampler.Alias[B]),
		probs:    make(map[blockPair[B]]float64),
		inEdges:  make(map[B][]int),
		inPos:    make([]int, len(st.edges)),
	}
	directed := st.g.Directed()
	if !directed {
		a.outEdges = make(map[B][]int)
		a.outPos = make([]int, len(st.edges))
	}

	// One alias sampler per source block over the full block set, plus the
	// pair-probability cache. Zero weights are coerced to the smallest
	// positive float64, so every sampler build has positive total mass.
	set := blockSet[B](st, blocks)
	weights := make([]float64, len(set))
	for _, bs := range set {
		for i, bt := range set {
			p := sanitizeProb(prob(bs, bt), true)
			weights[i] = p
			a.probs[blockPair[B]{s: bs, t: bt}] = p
		}
		smp, err := sampler.New(set, weights)
		if err != nil {
			return nil, err
		}
		a.samplers[bs] = smp
	}

	for ei := range st.edges {
		a.bucketInsert(ei)
	}

	return a, nil
}

func (a *aliasStrategy[B]) blockOf(id string) B {
	return a.blocks.BlockOf(id, a.st.g)
}

// getProb serves acceptance lookups from the cache; pairs involving blocks
// that never occur in the edge set are treated as probability 0, which
// sanitizes to the smallest positive float64. The correlation-probability
// function is not consulted for them.
func (a *aliasStrategy[B]) getProb(bs, bt B) float64 {
	if v, ok := a.probs[blockPair[B]{s: bs, t: bt}]; ok {
		return v
	}

	return sanitizeProb(0, true)
}

func (a *aliasStrategy[B]) propose(ei int, selfLoops, parallelEdges bool) (bool, error) {
	return proposePair(a.st, a, ei, selfLoops, parallelEdges)
}

// targetEdge draws a target block from the visited edge's source-block
// sampler, picks a partner edge from that block's buckets, and filters the
// pair through M–H acceptance.
func (a *aliasStrategy[B]) targetEdge(ei int) edgeRef {
	bs := a.blockOf(a.st.edges[ei].from)
	bt := a.blockOf(a.st.edges[ei].to)

	smp, ok := a.samplers[bs]
	if !ok {
		// Source block unseen at construction; cannot happen for
		// degree-preserving runs, reject defensively otherwise.
		return edgeRef{idx: ei}
	}
	nt := smp.Sample(a.st.rnd)

	var ep edgeRef
	if a.st.g.Directed() {
		ies := a.inEdges[nt]
		if len(ies) == 0 {
			return edgeRef{idx: ei} // no edge currently targets nt
		}
		ep = edgeRef{idx: ies[a.st.rnd.Intn(len(ies))]}
	} else {
		ies := a.inEdges[nt]
		oes := a.outEdges[nt]
		total := len(ies) + len(oes)
		if total == 0 {
			return edgeRef{idx: ei}
		}
		// Choose the orientation in proportion to bucket occupancy, so the
		// draw is uniform over all orientations incident to nt.
		if a.st.rnd.Float64() < float64(len(ies))/float64(total) {
			ep = edgeRef{idx: ies[a.st.rnd.Intn(len(ies))]}
		} else {
			ep = edgeRef{idx: oes[a.st.rnd.Intn(len(oes))], flipped: true}
		}
	}

	epS := a.blockOf(a.st.refSource(ep))
	epT := a.blockOf(a.st.refTarget(ep))

	return acceptSwap(a.st, ei, ep, bs, bt, epS, epT, a.getProb)
}

// updateEdge keeps the block buckets exactly consistent with the edge set:
// the remove hook swap-and-pops both bucket memberships of the slot, the
// insert hook re-appends them from the slot's post-swap endpoints. Exact
// maintenance holds for every swap orientation, including the flipped
// undirected case where a slot's stored source changes.
func (a *aliasStrategy[B]) updateEdge(ei int, inserting bool) {
	if inserting {
		a.bucketInsert(ei)
	} else {
		a.bucketRemove(ei)
	}
}

// bucketInsert appends slot ei to the in-bucket of its target block and,
// for undirected graphs, to the out-bucket of its source block.
func (a *aliasStrategy[B]) bucketInsert(ei int) {
	d := a.blockOf(a.st.edges[ei].to)
	a.inEdges[d] = append(a.inEdges[d], ei)
	a.inPos[ei] = len(a.inEdges[d]) - 1

	if a.outEdges != nil {
		d = a.blockOf(a.st.edges[ei].from)
		a.outEdges[d] = append(a.outEdges[d], ei)
		a.outPos[ei] = len(a.outEdges[d]) - 1
	}
}

// bucketRemove swap-and-pops slot ei from its current buckets in O(1).
func (a *aliasStrategy[B]) bucketRemove(ei int) {
	d := a.blockOf(a.st.edges[ei].to)
	list := a.inEdges[d]
	j := a.inPos[ei]
	last := list[len(list)-1]
	a.inPos[last] = j
	list[j] = last
	a.inEdges[d] = list[:len(list)-1]

	if a.outEdges != nil {
		d = a.blockOf(a.st.edges[ei].from)
		list = a.outEdges[d]
		j = a.outPos[ei]
		last = list[len(list)-1]
		a.outPos[last] = j
		list[j] = last
		a.outEdges[d] = list[:len(list)-1]
	}
}
