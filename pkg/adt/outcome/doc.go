// Package outcome contains the success-or-failure wrapper Outcome[T, E]
// and the synchronous combinators that compose fallible steps without
// implicit control-flow interruption. The first failure in a chain
// short-circuits every later step and is returned unchanged.
//
// Highlights:
// - Success/Failure: construct an Outcome
// - TryFrom/Try: translate Go's (value, error) idiom at the boundary
// - Map/Chain: success-biased transform and bind
// - MapFailure/BiMap/BiChain: failure-side and symmetric counterparts
// - Validate/AndValidate/ValidateAll: validation producing failures,
//   with optional error accumulation
// - Tee/TeeFailure: side-effect helpers
// - Fold: reduce to a concrete value via success/failure handlers
// - FromOptional/ToOptional/ToEither/FromEither: cross-type conversions
package outcome
