package outcome

import (
	"errors"

	"github.com/ib-77/adt3/pkg/adt"
)

func Validate[T any](input T,
	validate func(in T) (isValid bool, errMsg string)) Outcome[T, error] {
	return AndValidate(Success[T, error](input), validate)
}

func AndValidate[T any](input Outcome[T, error],
	validate func(in T) (valid bool, errMsg string)) Outcome[T, error] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(input.Value()); isValid {
			return input
		} else {
			return Failure[T, error](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	input Outcome[T, error],
	breakOnError bool, // exit on first error
	validators ...func(in Outcome[T, error]) Outcome[T, error]) Outcome[T, error] {

	if len(validators) == 0 {
		return input
	}

	var err error
	concat := func(current Outcome[T, error]) Outcome[T, error] {

		if current.IsFailure() {
			e := adt.GetErrors(err)
			e = append(e, current.Err())
			err = errors.Join(e...)
		}

		if adt.IsNil(err) {
			return current
		}

		return Failure[T, error](err)
	}

	finalResult := concat(validators[0](input))

	if finalResult.IsSuccess() || !breakOnError {
		for _, v := range validators[1:] {

			nextRes := concat(v(finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}

// FailOnError converts a non-nil error produced by maybeErr into a failure,
// leaving the success value otherwise untouched.
func FailOnError[T any](input Outcome[T, error],
	maybeErr func(in T) error) Outcome[T, error] {
	if input.IsSuccess() {
		err := maybeErr(input.Value())
		if err != nil {
			return Failure[T, error](err)
		}
		return input
	}
	return input
}
