package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/adt3/pkg/adt"
)

// Outcome holds either a success value of type T or a failure descriptor of
// caller-chosen type E. Every outcome is stamped with an id and creation
// time at construction; propagating combinators keep the stamp, constructing
// ones mint a fresh one.
type Outcome[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   E
	isSuccess bool
}

var _ adt.Fallible[int, error] = Outcome[int, error]{}
var _ adt.Traceable = Outcome[int, error]{}

func Success[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](e E) Outcome[T, E] {
	return Outcome[T, E]{
		failure:   e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom carries an existing failure into a new payload type, keeping
// the original id and creation time.
func FailureFrom[In, Out, E any](from Outcome[In, E]) Outcome[Out, E] {
	return Outcome[Out, E]{
		failure:   from.failure,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// TryFrom wraps Go's (value, error) return idiom at the fallible boundary.
func TryFrom[T any](v T, err error) Outcome[T, error] {
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](v)
}

func (o Outcome[T, E]) Value() T {
	return o.value
}

func (o Outcome[T, E]) Err() E {
	return o.failure
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T, E]) IsFailure() bool {
	return !o.isSuccess
}

func (o Outcome[T, E]) Get() (T, bool) {
	return o.value, o.isSuccess
}

func (o Outcome[T, E]) GetOrDefault(def T) T {
	if o.isSuccess {
		return o.value
	}
	return def
}

func (o Outcome[T, E]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T, E]) Id() uuid.UUID {
	return o.id
}

func (o Outcome[T, E]) String() string {
	if o.isSuccess {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return fmt.Sprintf("Failure(%v)", o.failure)
}
