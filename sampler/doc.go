// Package sampler provides an alias-method sampler for fixed discrete
// distributions: O(k) preprocessing, O(1) per draw.
//
// Overview:
//
//   - New builds Walker/Vose alias tables from parallel slices of items and
//     non-negative weights. Weights need not be normalized.
//   - Sample draws an item with probability proportional to its weight using
//     exactly one uniform index and one uniform real from the supplied
//     *rand.Rand.
//   - Construction is deterministic for identical input order: the small /
//     large worklists are filled in index order, so two samplers built from
//     the same slices behave identically under the same random stream.
//
// The alias table is immutable after construction; a single Alias value may
// be shared by concurrent readers as long as each goroutine uses its own
// *rand.Rand.
//
// Errors (sentinel, match with errors.Is):
//
//	ErrNoItems        – the item slice is empty.
//	ErrLengthMismatch – items and weights differ in length.
//	ErrBadWeight      – a weight is NaN, ±Inf or negative.
//	ErrZeroTotal      – all weights are zero.
package sampler
