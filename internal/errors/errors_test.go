package errors

import (
	stderrors "errors"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeConflict, http.StatusBadRequest},
		{CodeInvalidCredentials, http.StatusUnauthorized},
		{CodeUnauthenticated, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeInternal, http.StatusInternalServerError},
		{Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := NotFound("book not found")
	if !Is(err, ErrNotFound) {
		t.Error("NotFound should match ErrNotFound")
	}
	if Is(err, ErrConflict) {
		t.Error("NotFound should not match ErrConflict")
	}
}

func TestWithCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := ErrInternal.WithCause(cause)
	if !stderrors.Is(err, cause) {
		t.Error("WithCause should preserve the cause chain")
	}
	if err.Code != CodeInternal {
		t.Errorf("got code %s, want %s", err.Code, CodeInternal)
	}
	if err.HTTPStatus() != http.StatusInternalServerError {
		t.Errorf("got %d, want 500", err.HTTPStatus())
	}
}
