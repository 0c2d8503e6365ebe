package store

import (
	"errors"
	"fmt"
	"strings"
)

// PersistenceError reports that every candidate destination rejected a
// write. The mutation is not durably applied when this is returned.
type PersistenceError struct {
	Attempts []AttemptError
}

// AttemptError records one failed candidate.
type AttemptError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	if len(e.Attempts) == 0 {
		return "no write destinations configured"
	}
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Path, a.Err))
	}
	return "all write destinations failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the per-candidate errors for errors.Is/As chains.
func (e *PersistenceError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}

// AsPersistenceError attempts to unwrap an error into a PersistenceError.
func AsPersistenceError(err error) (*PersistenceError, bool) {
	var perr *PersistenceError
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}
