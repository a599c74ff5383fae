package errors

import (
	"fmt"
	"testing"
)

func TestGroveError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeStatusParse, "bad line")
	if err.Code != ErrCodeStatusParse {
		t.Errorf("expected code %s, got %s", ErrCodeStatusParse, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeCommandFailed, "command failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeCommandFailed) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeStatusParse) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("line", "A").WithDetail("lineNumber", 2)
	if detailed.Details["line"] != "A" {
		t.Error("WithDetail should add details")
	}
}

func TestIsThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("reading status: %w", StatusParse("A", "too short"))

	if !Is(err, ErrCodeStatusParse) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
	if GetCode(err) != ErrCodeStatusParse {
		t.Errorf("expected code %s, got %s", ErrCodeStatusParse, GetCode(err))
	}
	if GetCode(fmt.Errorf("plain")) != "" {
		t.Error("GetCode should be empty for plain errors")
	}
	if Is(nil, ErrCodeStatusParse) {
		t.Error("Is should be false for nil")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := StatusParse("A", "line shorter than 3 characters")
	if err.Code != ErrCodeStatusParse {
		t.Errorf("expected code %s, got %s", ErrCodeStatusParse, err.Code)
	}
	if err.Details["line"] != "A" {
		t.Error("StatusParse should include line detail")
	}

	err = TypeMismatch("feat", "docs")
	if err.Code != ErrCodeTypeMismatch {
		t.Errorf("expected code %s, got %s", ErrCodeTypeMismatch, err.Code)
	}
	if err.Details["category"] != "docs" {
		t.Error("TypeMismatch should include category detail")
	}

	err = NotARepository("/tmp/x")
	if err.Details["dir"] != "/tmp/x" {
		t.Error("NotARepository should include dir detail")
	}
}
