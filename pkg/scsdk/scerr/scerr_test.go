package scerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewNil(t *testing.T) {
	if New(CodeUnknown, nil) != nil {
		t.Fatal("expected nil for a nil cause")
	}
}

func TestIsCodeThroughWrapping(t *testing.T) {
	base := New(CodeNotFound, errors.New("Machine with ID 99 not found"))
	wrapped := fmt.Errorf("get machine: %w", base)

	if !IsCode(wrapped, CodeNotFound) {
		t.Error("expected not_found through fmt wrapping")
	}
	if IsCode(wrapped, CodeUnauthorized) {
		t.Error("unexpected unauthorized match")
	}
	if IsCode(errors.New("plain"), CodeUnknown) {
		t.Error("plain errors carry no code")
	}
}

func TestErrorMessage(t *testing.T) {
	err := New(CodeUnauthorized, errors.New("session expired"))
	if err.Error() != "unauthorized: session expired" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
