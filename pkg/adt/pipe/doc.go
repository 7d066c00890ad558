// Package pipe provides a minimal fluent Pipe[T] for synchronous
// composition of Outcome[T, error] values. A linear sequence of Then and
// ThenTry calls reproduces early-return-on-failure propagation: the first
// failure short-circuits all later steps and is returned unchanged.
//
// Key operations:
// - Start/From: begin a pipe from an outcome or a value
// - Then/ThenTry: compose outcome-returning or error-returning functions
// - Map: transform the successful value
// - Validate: turn invalid values into failures
// - Ensure: run side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Type-changing steps are package-level functions (Then, ThenTry, Map,
// Finally) since Go methods cannot introduce type parameters.
package pipe
