package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	cases := []struct {
		err  *AppError
		code int
	}{
		{NewValidationError("bad input"), 422},
		{NewReferenceError("Item"), 404},
		{NewStorageError(errors.New("disk full")), 500},
		{NewConflictError("still referenced"), 409},
		{ErrInvalidPIN, 401},
	}
	for _, tc := range cases {
		if tc.err.Code != tc.code {
			t.Fatalf("%q has code %d, want %d", tc.err.Message, tc.err.Code, tc.code)
		}
	}
}

func TestReferenceErrorMessage(t *testing.T) {
	err := NewReferenceError("Credit customer")
	if err.Message != "Credit customer not found" {
		t.Fatalf("message = %q", err.Message)
	}
}

func TestStorageErrorKeepsCause(t *testing.T) {
	cause := errors.New("database is locked")
	err := NewStorageError(cause)

	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable through errors.Is")
	}
}

func TestGetAppErrorThroughWrapping(t *testing.T) {
	inner := NewReferenceError("Bill")
	wrapped := fmt.Errorf("handling request: %w", inner)

	got := GetAppError(wrapped)
	if got.Code != 404 {
		t.Fatalf("wrapped error resolved to code %d, want 404", got.Code)
	}
}

func TestGetAppErrorPlainError(t *testing.T) {
	got := GetAppError(errors.New("boom"))
	if got.Code != 500 {
		t.Fatalf("plain error resolved to code %d, want 500", got.Code)
	}
	if got.Message != "boom" {
		t.Fatalf("message = %q", got.Message)
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(NewValidationError("x")) {
		t.Fatal("AppError not recognized")
	}
	if IsAppError(errors.New("x")) {
		t.Fatal("plain error recognized as AppError")
	}
}
