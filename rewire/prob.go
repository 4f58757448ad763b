package rewire

import "math"

// blockPair is the map key for cached block-pair probabilities.
type blockPair[B comparable] struct {
	s, t B
}

// sanitizeProb coerces NaN, ±Inf and negative probabilities to 0. When
// coerceZero is set, an exact 0 is then raised to the smallest positive
// float64: the Probabilistic and Alias chains must keep every block pair
// reachable or persistence mode can stall on a zero-probability target.
// TradBlock passes coerceZero=false and keeps exact zeros.
func sanitizeProb(p float64, coerceZero bool) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		p = 0
	}
	if coerceZero && p == 0 {
		p = math.SmallestNonzeroFloat64
	}

	return p
}

// acceptSwap runs the Metropolis–Hastings acceptance step for a proposed
// target swap between the visited edge (blocks bs→bt) and the candidate ep
// (blocks epS→epT), under the block-pair probability lookup getProb.
// It returns ep on acceptance and a self-pair (rejection) otherwise.
//
// pi is the probability mass of the current pair of edges, pf of the pair
// after the swap; the proposal kernel is symmetric, so pf/pi is the whole
// correction.
func acceptSwap[B comparable](st *rewireState, ei int, ep edgeRef,
	bs, bt, epS, epT B, getProb func(s, t B) float64,
) edgeRef {
	pi := getProb(bs, bt) * getProb(epS, epT)
	pf := getProb(bs, epT) * getProb(epS, bt)

	if pf >= pi {
		return ep
	}
	// Products of two sanitized minima can underflow to exactly 0.
	if pf == 0 {
		return edgeRef{idx: ei} // reject
	}

	a := math.Exp(math.Log(pf) - math.Log(pi))
	if st.rnd.Float64() > a {
		return edgeRef{idx: ei} // reject
	}

	return ep
}
