// Package option provides Optional[T], a container for a value that may
// legitimately be absent. Absence carries no diagnostic information; use
// outcome when the reason for a failure matters.
//
// Highlights:
// - Present/Empty: construct an Optional
// - FromOk/FromPtr: lift Go's comma-ok and nil-pointer idioms
// - GetOrDefault/OrElse/Filter: extraction and refinement
// - Map/Chain: transform or bind without unwrapping, Empty short-circuits
// - Fold: reduce to a concrete value via handlers
package option
