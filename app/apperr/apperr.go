// Package apperr holds the error values shared between the notebook
// engine, its storage and the terminal front end.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrRootDirectory = errors.New("root directory can't be changed")
	ErrInvalidMove   = errors.New("directory can't be moved into itself")
	ErrEmptyName     = errors.New("name can't be empty")
)

// StorageError is returned by every failed database operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err into a StorageError. A nil err stays nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// UnimplementedError is returned for events a state doesn't handle
// and that can't be passed back as inedible.
type UnimplementedError struct {
	State string
	Event string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s can't handle %s", e.State, e.Event)
}

// PromptError is an input error of a dialog prompt,
// e.g. an empty name when renaming.
type PromptError struct {
	Arg     any
	Message string
}

func IsPromptError(err error) bool {
	var pe *PromptError
	return errors.As(err, &pe)
}

func (e *PromptError) Error() string {
	return fmt.Sprintf("%v - %s", e.Arg, e.Message)
}
