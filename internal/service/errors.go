package service

import (
	"errors"
	"fmt"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrURLRequired  = errors.New("url is required")
	ErrExamNotFound = errors.New("exam not found")
	ErrNoFiles      = errors.New("no files selected")
)

// ValidationError rejects input before any network call is made. It is
// reported immediately and never retried.
type ValidationError struct {
	FileName string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.FileName == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.FileName, e.Reason)
}
