package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"quire/app/apperr"
)

func TestStorageErrorUnwrap(t *testing.T) {
	err := apperr.Storage("fetch note", apperr.ErrNotFound)
	wrapped := fmt.Errorf("open: %w", err)

	if !errors.Is(wrapped, apperr.ErrNotFound) {
		t.Errorf("Expected ErrNotFound in chain, got %v", wrapped)
	}

	var se *apperr.StorageError
	if !errors.As(wrapped, &se) {
		t.Fatalf("Expected StorageError, got %T", wrapped)
	}

	if se.Op != "fetch note" {
		t.Errorf("Expected op fetch note, got %s", se.Op)
	}

	if apperr.Storage("noop", nil) != nil {
		t.Error("Expected nil error to stay nil")
	}
}

func TestIsPromptError(t *testing.T) {
	err := fmt.Errorf("rename: %w", &apperr.PromptError{Arg: "", Message: "empty"})

	if !apperr.IsPromptError(err) {
		t.Error("Expected prompt error")
	}

	if apperr.IsPromptError(apperr.ErrNotFound) {
		t.Error("Expected ErrNotFound not to be a prompt error")
	}
}
