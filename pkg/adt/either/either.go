package either

import (
	"fmt"
)

// Either holds exactly one value of two independent types. Neither side is
// an error side; transformation direction is right-biased (Second) by
// convention only.
type Either[L, R any] struct {
	first   L
	second  R
	isFirst bool
}

func First[L, R any](l L) Either[L, R] {
	return Either[L, R]{
		first:   l,
		isFirst: true,
	}
}

func Second[L, R any](r R) Either[L, R] {
	return Either[L, R]{
		second: r,
	}
}

func (e Either[L, R]) IsFirst() bool {
	return e.isFirst
}

func (e Either[L, R]) IsSecond() bool {
	return !e.isFirst
}

// First returns the first-side payload, or the zero value of L when the
// second side is active.
func (e Either[L, R]) First() L {
	return e.first
}

// Second returns the second-side payload, or the zero value of R when the
// first side is active.
func (e Either[L, R]) Second() R {
	return e.second
}

// GetOrDefault returns the Second payload or def. A First payload is
// discarded; the operation is lossy toward the first side.
func (e Either[L, R]) GetOrDefault(def R) R {
	if e.isFirst {
		return def
	}
	return e.second
}

func (e Either[L, R]) Swap() Either[R, L] {
	if e.isFirst {
		return Second[R, L](e.first)
	}
	return First[R, L](e.second)
}

func (e Either[L, R]) String() string {
	if e.isFirst {
		return fmt.Sprintf("First(%v)", e.first)
	}
	return fmt.Sprintf("Second(%v)", e.second)
}

// Map applies f to a Second payload; First passes through with its payload
// untouched and f is never invoked.
func Map[L, R, A any](e Either[L, R], f func(R) A) Either[L, A] {
	if e.isFirst {
		return First[L, A](e.first)
	}
	return Second[L, A](f(e.second))
}

// Chain binds f over a Second payload and returns its result directly;
// First passes through unchanged.
func Chain[L, R, A any](e Either[L, R], f func(R) Either[L, A]) Either[L, A] {
	if e.isFirst {
		return First[L, A](e.first)
	}
	return f(e.second)
}

// BiMap transforms whichever side is active: f over Second, g over First.
// The active side stays active.
func BiMap[L, R, A, B any](e Either[L, R], f func(R) A, g func(L) B) Either[B, A] {
	if e.isFirst {
		return First[B, A](g(e.first))
	}
	return Second[B, A](f(e.second))
}

// BiChain binds whichever of f/g matches the active side and returns its
// result directly.
func BiChain[L, R, A, B any](e Either[L, R], f func(R) Either[B, A], g func(L) Either[B, A]) Either[B, A] {
	if e.isFirst {
		return g(e.first)
	}
	return f(e.second)
}

// Fold collapses the Either into a single value via the matching handler.
func Fold[L, R, U any](e Either[L, R], onFirst func(L) U, onSecond func(R) U) U {
	if e.isFirst {
		return onFirst(e.first)
	}
	return onSecond(e.second)
}
