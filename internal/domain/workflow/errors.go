package workflow

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownStatus      = errors.New("unknown status")
	ErrPhaseSkipped       = errors.New("phase skipped")
	ErrPrerequisiteNotMet = errors.New("prerequisite not met")
	ErrMissingField       = errors.New("missing field")
)

// TransitionError is a caller-correctable rejection from the guard.
// errors.Is(err, ErrPhaseSkipped) and friends match on Kind.
type TransitionError struct {
	Kind    error
	Field   string
	Message string
}

func (e *TransitionError) Error() string { return e.Kind.Error() + ": " + e.Message }

func (e *TransitionError) Unwrap() error { return e.Kind }

// Code is the machine-readable kind sent to clients.
func (e *TransitionError) Code() string {
	switch e.Kind {
	case ErrUnknownStatus:
		return "UnknownStatus"
	case ErrPhaseSkipped:
		return "PhaseSkipped"
	case ErrPrerequisiteNotMet:
		return "PrerequisiteNotMet"
	case ErrMissingField:
		return "MissingField"
	}
	return "TransitionRejected"
}

// UnknownStatus is the rejection for a status id that does not resolve.
func UnknownStatus(field string, id uint) error {
	return reject(ErrUnknownStatus, field, fmt.Sprintf("status %d does not exist", id))
}

func reject(kind error, field, msg string) error {
	return &TransitionError{Kind: kind, Field: field, Message: msg}
}
