package rewire

import (
	"github.com/katalvlaran/rewire/sampler"
)

// tradBlockStrategy samples a traditional stochastic blockmodel: each
// visited edge is replaced by an edge whose endpoint blocks are drawn from
// a block-pair alias sampler and whose endpoints are drawn uniformly within
// those blocks. Degrees are not preserved. Unlike the degree-preserving
// blockmodel chains, exact zero probabilities stay zero: an excluded block
// pair is simply never proposed.
type tradBlockStrategy[B comparable] struct {
	st *rewireState

	// byBlock partitions all vertices (not just edge endpoints) by block.
	byBlock map[B][]string

	pairs *sampler.Alias[blockPair[B]]
}

func newTradBlock[B comparable](st *rewireState, blocks BlockAssigner[B],
	prob CorrProb[B],
) (*tradBlockStrategy[B], error) {
	t := &tradBlockStrategy[B]{
		st:      st,
		byBlock: make(map[B][]string),
	}

	// Partition vertices by block in deterministic (sorted-vertex) order.
	var order []B
	for _, v := range st.g.Vertices() {
		b := blocks.BlockOf(v, st.g)
		if _, ok := t.byBlock[b]; !ok {
			order = append(order, b)
		}
		t.byBlock[b] = append(t.byBlock[b], v)
	}

	items := make([]blockPair[B], 0, len(order)*len(order))
	weights := make([]float64, 0, len(order)*len(order))
	for _, bs := range order {
		for _, bt := range order {
			items = append(items, blockPair[B]{s: bs, t: bt})
			weights = append(weights, sanitizeProb(prob(bs, bt), false))
		}
	}
	pairs, err := sampler.New(items, weights)
	if err != nil {
		return nil, err
	}
	t.pairs = pairs

	return t, nil
}

func (t *tradBlockStrategy[B]) propose(ei int, selfLoops, parallelEdges bool) (bool, error) {
	pair := t.pairs.Sample(t.st.rnd)

	svs := t.byBlock[pair.s]
	tvs := t.byBlock[pair.t]
	s := svs[t.st.rnd.Intn(len(svs))]
	tgt := tvs[t.st.rnd.Intn(len(tvs))]

	if !selfLoops && s == tgt {
		return false, nil
	}
	if !parallelEdges && t.st.g.HasEdge(s, tgt) {
		return false, nil
	}

	rec := t.st.edges[ei]
	if err := t.st.g.RemoveEdge(rec.id); err != nil {
		return false, err
	}
	id, err := t.st.g.AddEdge(s, tgt, rec.weight)
	if err != nil {
		return false, err
	}
	t.st.edges[ei] = edgeRec{id: id, from: s, to: tgt, weight: rec.weight}

	return true, nil
}
