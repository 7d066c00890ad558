package adt

import (
	"time"

	"github.com/google/uuid"
)

type ValueProvider[T any] interface {
	// Value returns the successful payload value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Fallible defines an interface for types that carry a value or a failure descriptor
type Fallible[T, E any] interface {
	ValueProvider[T]
	// Err returns the failure descriptor if the operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// Traceable identifies a value stamped at construction time
type Traceable interface {
	Id() uuid.UUID
}
