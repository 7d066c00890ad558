package option

import (
	"fmt"
)

// Optional holds zero or one value of type T. The zero value is Empty.
type Optional[T any] struct {
	value   T
	present bool
}

func Present[T any](v T) Optional[T] {
	return Optional[T]{
		value:   v,
		present: true,
	}
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// FromOk builds an Optional from Go's comma-ok idiom (map lookups, type assertions).
func FromOk[T any](v T, ok bool) Optional[T] {
	if !ok {
		return Empty[T]()
	}
	return Present(v)
}

// FromPtr builds an Optional from a pointer, treating nil as Empty.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Empty[T]()
	}
	return Present(*p)
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) GetOrDefault(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// GetOrElseFunc is like GetOrDefault but evaluates the default lazily.
func (o Optional[T]) GetOrElseFunc(f func() T) T {
	if o.present {
		return o.value
	}
	return f()
}

func (o Optional[T]) OrElse(other Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return other
}

func (o Optional[T]) OrElseFunc(f func() Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return f()
}

// Filter keeps the value when predicate holds, otherwise becomes Empty.
func (o Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return Empty[T]()
}

// ToPtr returns a pointer to a copy of the value, or nil when Empty.
func (o Optional[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// Map transforms the value in place type-wise; see the package-level Map
// for transformations that change the payload type.
func (o Optional[T]) Map(f func(T) T) Optional[T] {
	if !o.present {
		return o
	}
	return Present(f(o.value))
}

// Chain binds a same-type step; see the package-level Chain for
// steps that change the payload type.
func (o Optional[T]) Chain(f func(T) Optional[T]) Optional[T] {
	if !o.present {
		return o
	}
	return f(o.value)
}

func (o Optional[T]) String() string {
	if o.present {
		return fmt.Sprintf("Present(%v)", o.value)
	}
	return "Empty"
}

// Map applies f to a present value; Empty passes through and f is never invoked.
func Map[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if v, ok := o.Get(); ok {
		return Present(f(v))
	}
	return Empty[U]()
}

// Chain binds a step that may itself yield Empty; the first Empty short-circuits.
func Chain[T, U any](o Optional[T], f func(T) Optional[U]) Optional[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return Empty[U]()
}

// Fold collapses the Optional into a single value via the matching handler.
func Fold[T, U any](o Optional[T], onEmpty func() U, onPresent func(T) U) U {
	if v, ok := o.Get(); ok {
		return onPresent(v)
	}
	return onEmpty()
}
