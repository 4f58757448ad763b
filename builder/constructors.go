// SPDX-License-Identifier: MIT

// Topology constructors: Path, Cycle, Complete, RandomSparse.
//
// All constructors add vertices via cfg.idFn in ascending index order and
// emit edges in a stable, documented order, so graphs are identical for
// identical inputs and seeds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rewire/core"
)

const (
	minPathVertices     = 2
	minCycleVertices    = 3
	minCompleteVertices = 2
	minSparseVertices   = 1
	probMin             = 0.0
	probMax             = 1.0
)

// Path builds a simple path P_n: edges (0,1), (1,2), ..., (n-2, n-1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("Path(%d): %w", n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(i+1), 0); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}

// Cycle builds a simple cycle C_n: the path edges plus (n-1, 0).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("Cycle(%d): %w", n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n), 0); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}

// Complete builds the complete graph K_n: every unordered pair {i,j} for
// undirected graphs, every ordered pair (i,j), i≠j, for directed ones.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("Complete(%d): %w", n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			jStart := i + 1
			if g.Directed() {
				jStart = 0
			}
			for j := jStart; j < n; j++ {
				if i == j {
					continue
				}
				if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(j), 0); err != nil {
					return fmt.Errorf("Complete: %w", err)
				}
			}
		}

		return nil
	}
}

// RandomSparse samples an Erdős–Rényi-like graph over n vertices: each
// admissible edge is included independently with probability p. Undirected
// graphs iterate unordered pairs {i,j}, i<j; directed graphs iterate
// ordered pairs (i,j) and allow self-loops iff g.Looped(). The trial order
// is fixed (i ascending, then j), so outcomes are deterministic for a fixed
// seed.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minSparseVertices {
			return fmt.Errorf("RandomSparse(%d): %w", n, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("RandomSparse(p=%g): %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			jStart := i + 1
			if g.Directed() {
				jStart = 0
			}
			for j := jStart; j < n; j++ {
				if i == j && !g.Looped() {
					continue
				}
				if cfg.rng.Float64() < p {
					if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(j), 0); err != nil {
						return fmt.Errorf("RandomSparse: %w", err)
					}
				}
			}
		}

		return nil
	}
}
