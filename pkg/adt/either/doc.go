// Package either provides Either[L, R], a disjoint union of two
// independently-typed values with no success/failure bias. Map and Chain
// act on the Second side by convention; BiMap and BiChain treat both
// sides equally.
//
// Highlights:
// - First/Second: construct an Either on one side
// - Map/Chain: right-biased transform and bind, First passes through
// - BiMap/BiChain: symmetric counterparts over both sides
// - GetOrDefault: Second payload or default (lossy toward First)
// - Swap/Fold: flip the sides or reduce to a concrete value
package either
