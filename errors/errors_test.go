package errors

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrNotFound,
			b:      ErrNotFound,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrNotFound,
			b:      ErrModel,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      Wrap(ErrAmount, "too big"),
			wantIs: false,
		},
		"not equal to stdlib error": {
			a:      ErrNotFound,
			b:      fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"not equal to a wrapped stdlib error": {
			a:      ErrNotFound,
			b:      Wrap(fmt.Errorf("stdlib error"), "wrapped"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is any error nil": {
			a:      nil,
			b:      (*customError)(nil),
			wantIs: true,
		},
		"nil is not a non-nil error": {
			a:      nil,
			b:      ErrNotFound,
			wantIs: false,
		},
		"multierror with the same error": {
			a:      ErrNotFound,
			b:      Append(ErrNotFound, ErrState),
			wantIs: true,
		},
		"multierror with a wrapped instance": {
			a:      ErrNotFound,
			b:      Append(Wrap(ErrNotFound, "gone"), ErrState),
			wantIs: true,
		},
		"multierror without the error": {
			a:      ErrNotFound,
			b:      Append(ErrState, ErrAmount),
			wantIs: false,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result: %v", got)
			}
		})
	}
}

type customError struct{}

func (customError) Error() string {
	return "custom error"
}

func TestWrapEmpty(t *testing.T) {
	if err := Wrap(nil, "wrapping <nil>"); err != nil {
		t.Fatal(err)
	}
}

func TestWrappedIs(t *testing.T) {
	err := Wrap(ErrDuplicate, "cannot delete")
	if !ErrDuplicate.Is(err) {
		t.Fatal("expected ErrDuplicate")
	}

	err = Wrap(err, "outer")
	if !ErrDuplicate.Is(err) {
		t.Fatal("expected ErrDuplicate")
	}

	err = errors.Wrap(err, "externally wrapped")
	if !ErrDuplicate.Is(err) {
		t.Fatal("expected ErrDuplicate")
	}
}

func TestABCICode(t *testing.T) {
	cases := map[string]struct {
		err  error
		want uint32
	}{
		"nil is a success": {
			err:  nil,
			want: 0,
		},
		"registered error code": {
			err:  ErrNotFound,
			want: 3,
		},
		"wrapping preserves the code": {
			err:  Wrap(ErrNotFound, "gone"),
			want: 3,
		},
		"stdlib error is internal": {
			err:  fmt.Errorf("stdlib"),
			want: 1,
		},
		"multierror uses the first code": {
			err:  Append(ErrState, ErrNotFound),
			want: 10,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := ABCICode(tc.err); got != tc.want {
				t.Fatalf("want %d code, got %d", tc.want, got)
			}
		})
	}
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("combining nils must result in nil: %+v", err)
	}

	err := Append(nil, ErrNotFound, nil, ErrState)
	if err == nil {
		t.Fatal("nil result")
	}
	if !ErrNotFound.Is(err) || !ErrState.Is(err) {
		t.Fatalf("combined error does not match members: %+v", err)
	}
	if ErrAmount.Is(err) {
		t.Fatalf("combined error must not match a stranger: %+v", err)
	}

	// Appending to a combined error must flatten the result.
	err = Append(err, ErrAmount)
	m, ok := err.(*multiError)
	if !ok {
		t.Fatalf("expected a flat combined error, got %T", err)
	}
	if len(*m) != 3 {
		t.Fatalf("expected 3 combined errors, got %d", len(*m))
	}
}

func TestRecover(t *testing.T) {
	fail := func() (err error) {
		defer Recover(&err)
		panic("blew up")
	}
	err := fail()
	if !ErrPanic.Is(err) {
		t.Fatalf("expected ErrPanic, got %+v", err)
	}
}

func TestWrapAttachesStackTraceOnce(t *testing.T) {
	err := Wrap(ErrNotFound, "inner")
	inner := stackTrace(err)
	if inner == nil {
		t.Fatal("wrapping must attach a stack trace")
	}
	err = Wrap(err, "outer")
	if outer := stackTrace(err); fmt.Sprint(outer) != fmt.Sprint(inner) {
		t.Fatal("wrapping again must not attach another stack trace")
	}
}
