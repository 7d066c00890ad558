package outcome

// Map applies onSuccess to a success value; a failure passes through with
// its descriptor and stamp untouched and onSuccess is never invoked.
func Map[T, E, U any](in Outcome[T, E], onSuccess func(T) U) Outcome[U, E] {
	if in.isSuccess {
		return Success[U, E](onSuccess(in.value))
	}
	return FailureFrom[T, U](in)
}

// Chain binds onSuccess and returns its result directly; the first failure
// short-circuits every later step.
func Chain[T, E, U any](in Outcome[T, E], onSuccess func(T) Outcome[U, E]) Outcome[U, E] {
	if in.isSuccess {
		return onSuccess(in.value)
	}
	return FailureFrom[T, U](in)
}

// MapFailure transforms the failure descriptor; a success passes through
// with its value and stamp untouched.
func MapFailure[T, E, F any](in Outcome[T, E], onFailure func(E) F) Outcome[T, F] {
	if in.isSuccess {
		return Outcome[T, F]{
			value:     in.value,
			isSuccess: true,
			createdAt: in.createdAt,
			id:        in.id,
		}
	}
	return Failure[T, F](onFailure(in.failure))
}

// BiMap transforms whichever side is active: onSuccess over a success value,
// onFailure over a failure descriptor. The active side stays active.
func BiMap[T, E, A, B any](in Outcome[T, E], onSuccess func(T) A, onFailure func(E) B) Outcome[A, B] {
	if in.isSuccess {
		return Success[A, B](onSuccess(in.value))
	}
	return Failure[A, B](onFailure(in.failure))
}

// BiChain binds whichever handler matches the active side and returns its
// result directly.
func BiChain[T, E, A, B any](in Outcome[T, E], onSuccess func(T) Outcome[A, B], onFailure func(E) Outcome[A, B]) Outcome[A, B] {
	if in.isSuccess {
		return onSuccess(in.value)
	}
	return onFailure(in.failure)
}

// Try lifts a function returning (Out, error) into the chain; the error is
// captured as a failure instead of escaping.
func Try[In, Out any](in Outcome[In, error], onTryExecute func(r In) (Out, error)) Outcome[Out, error] {
	if in.isSuccess {
		out, err := onTryExecute(in.value)
		if err != nil {
			return Failure[Out, error](err)
		}
		return Success[Out, error](out)
	}
	return FailureFrom[In, Out](in)
}

// Tee triggers a side effect on success without changing the outcome.
func Tee[T, E any](in Outcome[T, E], onSuccess func(r T)) Outcome[T, E] {
	if in.isSuccess {
		onSuccess(in.value)
	}
	return in
}

// TeeFailure triggers a side effect on failure without changing the outcome.
func TeeFailure[T, E any](in Outcome[T, E], onFailure func(e E)) Outcome[T, E] {
	if !in.isSuccess {
		onFailure(in.failure)
	}
	return in
}

// Fold collapses the outcome into a concrete value via the matching handler.
func Fold[T, E, U any](in Outcome[T, E], onSuccess func(r T) U, onFailure func(e E) U) U {
	if in.isSuccess {
		return onSuccess(in.value)
	}
	return onFailure(in.failure)
}
