package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAlreadyExistsCarriesField(t *testing.T) {
	err := AlreadyExists("login", errors.New("duplicate key"))
	if !IsCode(err, CodeAlreadyExists) {
		t.Fatalf("expected already_exists code, got %v", err)
	}
	if got := ConflictField(err); got != "login" {
		t.Fatalf("expected field login, got %q", got)
	}
}

func TestConflictFieldThroughWrapping(t *testing.T) {
	inner := AlreadyExists("email", nil)
	wrapped := fmt.Errorf("insert: %w", inner)
	if got := ConflictField(wrapped); got != "email" {
		t.Fatalf("expected field email, got %q", got)
	}
}

func TestConflictFieldOnOtherCodes(t *testing.T) {
	if got := ConflictField(New(CodeInternal, "boom")); got != "" {
		t.Fatalf("expected empty field, got %q", got)
	}
	if got := ConflictField(errors.New("plain")); got != "" {
		t.Fatalf("expected empty field, got %q", got)
	}
}

func TestWrapUnwraps(t *testing.T) {
	base := errors.New("base")
	err := Wrap(base, CodeInternal, "context")
	if !errors.Is(err, base) {
		t.Fatal("expected wrapped error to unwrap to base")
	}
	if IsCode(err, CodeNotFound) {
		t.Fatal("unexpected code match")
	}
}
