package rewire

// probabilisticStrategy samples a general stochastic blockmodel by
// rejection: the partner edge is proposed uniformly (as in Random) and the
// swap is admitted through a Metropolis–Hastings acceptance test against
// the block-pair probability function, converging to the distribution
// ∝ ∏_e p(block(src_e), block(dst_e)).
type probabilisticStrategy[B comparable] struct {
	st     *rewireState
	blocks BlockAssigner[B]
	prob   CorrProb[B]

	// probs is the optional precomputed table over every ordered pair of
	// blocks present in the initial edge set; nil means compute on demand.
	probs map[blockPair[B]]float64
}

func newProbabilistic[B comparable](st *rewireState, blocks BlockAssigner[B],
	prob CorrProb[B], cache bool,
) *probabilisticStrategy[B] {
	p := &probabilisticStrategy[B]{st: st, blocks: blocks, prob: prob}
	if !cache {
		return p
	}

	// Enumerate the distinct blocks of the current edge endpoints in
	// first-seen order, then materialize every ordered pair.
	set := blockSet[B](st, blocks)
	p.probs = make(map[blockPair[B]]float64, len(set)*len(set))
	for _, bs := range set {
		for _, bt := range set {
			p.probs[blockPair[B]{s: bs, t: bt}] = sanitizeProb(p.prob(bs, bt), true)
		}
	}

	return p
}

// blockSet returns the distinct blocks appearing on the endpoints of the
// current edge set, in deterministic first-seen order.
func blockSet[B comparable](st *rewireState, blocks BlockAssigner[B]) []B {
	seen := make(map[B]struct{})
	var out []B
	add := func(b B) {
		if _, ok := seen[b]; ok {
			return
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	for ei := range st.edges {
		add(blocks.BlockOf(st.edges[ei].from, st.g))
		add(blocks.BlockOf(st.edges[ei].to, st.g))
	}

	return out
}

// getProb returns the sanitized block-pair probability, from the cache when
// one was built.
func (p *probabilisticStrategy[B]) getProb(bs, bt B) float64 {
	if p.probs != nil {
		if v, ok := p.probs[blockPair[B]{s: bs, t: bt}]; ok {
			return v
		}
	}

	return sanitizeProb(p.prob(bs, bt), true)
}

func (p *probabilisticStrategy[B]) blockOf(id string) B {
	return p.blocks.BlockOf(id, p.st.g)
}

func (p *probabilisticStrategy[B]) propose(ei int, selfLoops, parallelEdges bool) (bool, error) {
	return proposePair(p.st, p, ei, selfLoops, parallelEdges)
}

// targetEdge proposes a uniform partner (with a fair orientation coin for
// undirected graphs) and filters it through M–H acceptance.
func (p *probabilisticStrategy[B]) targetEdge(ei int) edgeRef {
	bs := p.blockOf(p.st.edges[ei].from)
	bt := p.blockOf(p.st.edges[ei].to)

	ep := edgeRef{idx: p.st.rnd.Intn(len(p.st.edges))}
	if !p.st.g.Directed() {
		// For undirected graphs a random orientation must be selected.
		ep.flipped = p.st.rnd.Intn(2) == 1
	}

	epS := p.blockOf(p.st.refSource(ep))
	epT := p.blockOf(p.st.refTarget(ep))

	return acceptSwap(p.st, ei, ep, bs, bt, epS, epT, p.getProb)
}

// updateEdge is a no-op: the strategy keeps no per-edge indices.
func (p *probabilisticStrategy[B]) updateEdge(int, bool) {}
