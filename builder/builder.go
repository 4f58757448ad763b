// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/rewire/core"
)

// Sentinel errors for the builder package. Callers branch with errors.Is;
// implementations attach context with %w wrapping.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without a random
	// source; set WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or a broken construction invariant.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index → ID (deterministic).
	idFn func(int) string
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// decimalID is the default ID scheme: "0", "1", "2", ...
func decimalID(i int) string { return strconv.Itoa(i) }

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on
// nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a deterministic *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// newBuilderConfig resolves options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: decimalID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors, honor the core graph mode flags and never panic at runtime.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped with "BuildGraph: %w" and
// returned immediately.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts vertices 0..n-1 via cfg.idFn in ascending order.
func addVertices(g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.idFn(i)); err != nil {
			return err
		}
	}

	return nil
}
