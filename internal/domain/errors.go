package domain

import (
	"errors"
	"fmt"
)

// Common domain errors, translated to HTTP-facing errors in the usecases.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrJobNotOpen           = errors.New("job is not open for applications")
	ErrDuplicateApplication = errors.New("application already exists for this job and candidate")
)

// InvalidTransitionError reports a rejected application status change.
// It carries both states so callers can render a precise message.
type InvalidTransitionError struct {
	From ApplicationStatus
	To   ApplicationStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}
