package pipe

import (
	"github.com/ib-77/adt3/pkg/adt/outcome"
)

// Pipe wraps an Outcome[T, error] to enable fluent chaining
type Pipe[T any] struct {
	res outcome.Outcome[T, error]
}

// Start creates a new pipe from an existing outcome
func Start[T any](in outcome.Outcome[T, error]) Pipe[T] {
	return Pipe[T]{res: in}
}

// From creates a new pipe from a successful value
func From[T any](v T) Pipe[T] {
	return Start(outcome.Success[T, error](v))
}

// Result returns the underlying outcome
func (p Pipe[T]) Result() outcome.Outcome[T, error] {
	return p.res
}

// Then composes functions that already return an outcome
func (p Pipe[T]) Then(onSuccess func(t T) outcome.Outcome[T, error]) Pipe[T] {
	if p.res.IsFailure() {
		return p
	}
	return Pipe[T]{res: onSuccess(p.res.Value())}
}

// ThenTry composes functions that return (T, error)
func (p Pipe[T]) ThenTry(try func(t T) (T, error)) Pipe[T] {
	return Pipe[T]{res: outcome.Try(p.res, try)}
}

// Map transforms the successful value to a new value
func (p Pipe[T]) Map(onSuccess func(t T) T) Pipe[T] {
	return Pipe[T]{res: outcome.Map(p.res, onSuccess)}
}

// Validate turns an invalid value into a failure, leaving valid values alone
func (p Pipe[T]) Validate(validate func(t T) (valid bool, errMsg string)) Pipe[T] {
	return Pipe[T]{res: outcome.AndValidate(p.res, validate)}
}

// Ensure triggers side effects for success/failure without changing the result
func (p Pipe[T]) Ensure(onSuccess func(t T), onFailure func(err error)) Pipe[T] {
	if p.res.IsFailure() {
		if onFailure != nil {
			onFailure(p.res.Err())
		}
		return p
	}

	if onSuccess != nil {
		onSuccess(p.res.Value())
	}
	return p
}

// Finally collapses the pipe to a final value, delegating to outcome.Fold
func (p Pipe[T]) Finally(onSuccess func(t T) T, onFailure func(err error) T) T {
	return outcome.Fold(p.res, onSuccess, onFailure)
}

// Then switches the pipe to a new payload type via a function returning an outcome
func Then[T, U any](p Pipe[T], onSuccess func(t T) outcome.Outcome[U, error]) Pipe[U] {
	return Pipe[U]{res: outcome.Chain(p.res, onSuccess)}
}

// ThenTry switches the pipe to a new payload type via a function returning (U, error)
func ThenTry[T, U any](p Pipe[T], try func(t T) (U, error)) Pipe[U] {
	return Pipe[U]{res: outcome.Try(p.res, try)}
}

// Map switches the pipe to a new payload type via a pure transformation
func Map[T, U any](p Pipe[T], onSuccess func(t T) U) Pipe[U] {
	return Pipe[U]{res: outcome.Map(p.res, onSuccess)}
}

// Finally collapses the pipe into a final value of a new type
func Finally[T, U any](p Pipe[T], onSuccess func(t T) U, onFailure func(err error) U) U {
	return outcome.Fold(p.res, onSuccess, onFailure)
}
