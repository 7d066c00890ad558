package pipe

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ib-77/adt3/pkg/adt/outcome"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	p := Start(outcome.Success[int, error](5))

	out := p.Result()
	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestFrom(t *testing.T) {
	t.Parallel()
	p := From(7)
	out := p.Result()
	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	p := Start(outcome.Failure[int, error](err))

	called := false
	p = p.Then(func(v int) outcome.Outcome[int, error] {
		called = true
		return outcome.Success[int, error](v + 1)
	})

	out := p.Result()
	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial result is failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	p := From(3).
		Then(func(v int) outcome.Outcome[int, error] { return outcome.Success[int, error](v * 2) })

	out := p.Result()
	if !out.IsSuccess() || out.Value() != 6 {
		t.Fatalf("expected success with 6, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestThenTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	p := From(10).
		ThenTry(func(v int) (int, error) {
			return 0, errors.New("try-error")
		})

	out := p.Result()
	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestThenTry_Success(t *testing.T) {
	t.Parallel()
	p := From(4).
		ThenTry(func(v int) (int, error) { return v * v, nil })

	out := p.Result()
	if !out.IsSuccess() || out.Value() != 16 {
		t.Fatalf("expected success with 16, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	p := From(5).Map(func(v int) int { return v + 1 })

	out := p.Result()
	if !out.IsSuccess() || out.Value() != 6 {
		t.Fatalf("expected success with 6, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	p := From(5).Validate(func(v int) (bool, string) {
		if v < 10 {
			return false, "too small"
		}
		return true, ""
	})

	out := p.Result()
	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "too small" {
		t.Fatalf("expected failure 'too small', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	var seen int
	From(5).Ensure(func(v int) { seen = v }, nil)
	if seen != 5 {
		t.Fatalf("expected success hook to observe 5, got %d", seen)
	}

	var observed error
	Start(outcome.Failure[int, error](errors.New("boom"))).
		Ensure(func(v int) { t.Fatalf("success hook fired on failure") },
			func(err error) { observed = err })
	if observed == nil || observed.Error() != "boom" {
		t.Fatalf("expected failure hook to observe 'boom', got: %v", observed)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	got := From(2).
		Map(func(v int) int { return v * 10 }).
		Finally(
			func(v int) int { return v },
			func(err error) int { return -1 })
	if got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}

	got = Start(outcome.Failure[int, error](errors.New("x"))).
		Finally(
			func(v int) int { return v },
			func(err error) int { return -1 })
	if got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

func TestTypeChangingSteps(t *testing.T) {
	t.Parallel()

	got := Finally(
		Map(
			ThenTry(From("abc"),
				func(s string) (int, error) { return len(s), nil }),
			func(n int) string { return fmt.Sprintf("len:%d", n) }),
		func(s string) string { return s },
		func(err error) string { return "err" })

	if got != "len:3" {
		t.Fatalf("expected 'len:3', got %q", got)
	}
}

func TestTypeChangingThen_ShortCircuit(t *testing.T) {
	t.Parallel()

	called := false
	p := Then(Start(outcome.Failure[string, error](errors.New("nope"))),
		func(s string) outcome.Outcome[int, error] {
			called = true
			return outcome.Success[int, error](len(s))
		})

	out := p.Result()
	if out.IsSuccess() || out.Err().Error() != "nope" || called {
		t.Fatalf("expected 'nope' failure without invoking step, got: %v called=%v", out, called)
	}
}
