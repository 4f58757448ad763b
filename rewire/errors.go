package rewire

import "errors"

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Rewire.
	ErrNilGraph = errors.New("rewire: graph is nil")

	// ErrNilBlocks indicates that a nil BlockAssigner was passed to RewireBlocks.
	ErrNilBlocks = errors.New("rewire: block assigner is nil")

	// ErrNilRand indicates that no random source was supplied; use WithRand
	// or WithSeed.
	ErrNilRand = errors.New("rewire: random source is required")

	// ErrNilCorrProb indicates that a blockmodel strategy (Probabilistic,
	// Alias, TradBlock) was selected without a correlation-probability
	// function.
	ErrNilCorrProb = errors.New("rewire: correlation probability function is required")

	// ErrUnknownStrategy indicates a Strategy value outside the declared set.
	ErrUnknownStrategy = errors.New("rewire: unknown strategy")
)
