package sampler

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors returned by New.
var (
	// ErrNoItems indicates that an empty item slice was provided.
	ErrNoItems = errors.New("sampler: no items")

	// ErrLengthMismatch indicates items and weights differ in length.
	ErrLengthMismatch = errors.New("sampler: items/weights length mismatch")

	// ErrBadWeight indicates a NaN, infinite or negative weight.
	ErrBadWeight = errors.New("sampler: weight must be finite and non-negative")

	// ErrZeroTotal indicates that every weight is zero, leaving nothing to
	// sample from.
	ErrZeroTotal = errors.New("sampler: total weight is zero")
)

// Alias samples from a fixed discrete distribution over items of type T in
// O(1) per draw using the alias method.
type Alias[T any] struct {
	items []T
	prob  []float64 // acceptance threshold per column
	alias []int     // fallback item per column
}

// New builds alias tables for the given items and weights.
// Weights are used as-is (no sanitization beyond validation); callers that
// need NaN/negative coercion perform it before construction.
// Complexity: O(len(items)) time and space.
func New[T any](items []T, weights []float64) (*Alias[T], error) {
	n := len(items)
	if n == 0 {
		return nil, ErrNoItems
	}
	if len(weights) != n {
		return nil, ErrLengthMismatch
	}
	for _, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, ErrBadWeight
		}
	}
	total := floats.Sum(weights)
	if total == 0 {
		return nil, ErrZeroTotal
	}

	a := &Alias[T]{
		items: make([]T, n),
		prob:  make([]float64, n),
		alias: make([]int, n),
	}
	copy(a.items, items)

	// Scale weights so the mean column height is 1, then split columns into
	// under-full ("small") and over-full ("large") worklists. Index order is
	// preserved to keep construction deterministic.
	scaled := make([]float64, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / total
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	// Pair each under-full column with an over-full donor.
	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]

		a.prob[s] = scaled[s]
		a.alias[s] = l

		scaled[l] -= 1 - scaled[s]
		if scaled[l] < 1 {
			large = large[:len(large)-1]
			small = append(small, l)
		}
	}
	// Leftovers are full columns up to rounding error.
	for _, l := range large {
		a.prob[l] = 1
		a.alias[l] = l
	}
	for _, s := range small {
		a.prob[s] = 1
		a.alias[s] = s
	}

	return a, nil
}

// Len returns the number of items in the distribution.
func (a *Alias[T]) Len() int { return len(a.items) }

// Sample draws one item with probability proportional to its weight.
// Complexity: O(1).
func (a *Alias[T]) Sample(r *rand.Rand) T {
	i := r.Intn(len(a.items))
	if r.Float64() < a.prob[i] {
		return a.items[i]
	}

	return a.items[a.alias[i]]
}
