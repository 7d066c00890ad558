package outcome

import (
	"github.com/ib-77/adt3/pkg/adt/either"
	"github.com/ib-77/adt3/pkg/adt/option"
)

// FromOptional promotes an Optional to an Outcome, recording failure as the
// reason for absence.
func FromOptional[T, E any](o option.Optional[T], failure E) Outcome[T, E] {
	if v, ok := o.Get(); ok {
		return Success[T, E](v)
	}
	return Failure[T, E](failure)
}

// ToOptional discards the failure descriptor, keeping only presence.
func ToOptional[T, E any](in Outcome[T, E]) option.Optional[T] {
	if in.isSuccess {
		return option.Present(in.value)
	}
	return option.Empty[T]()
}

// ToEither maps success to the Second side and failure to the First side.
func ToEither[T, E any](in Outcome[T, E]) either.Either[E, T] {
	if in.isSuccess {
		return either.Second[E, T](in.value)
	}
	return either.First[E, T](in.failure)
}

// FromEither reads an error-on-the-First-side Either back into an Outcome.
func FromEither[T, E any](e either.Either[E, T]) Outcome[T, E] {
	if e.IsSecond() {
		return Success[T, E](e.Second())
	}
	return Failure[T, E](e.First())
}
