package ssd1325

import (
	"github.com/pkg/errors"
)

// ErrWriteFailed is returned when a sequence could not be sent to the display
// in full.
//
// It is the only kind of error returned by Dev. Use errors.Is to test for it,
// the returned error may wrap the transport or control channel failure.
var ErrWriteFailed = errors.New("ssd1325: write failed: unable to send complete sequence to display")

type writeError struct {
	cause error
}

func writeFailed(cause error) error {
	if cause == nil {
		return ErrWriteFailed
	}
	if errors.Is(cause, ErrWriteFailed) {
		return cause
	}
	return &writeError{cause: cause}
}

func (e *writeError) Error() string {
	return ErrWriteFailed.Error() + ": " + e.cause.Error()
}

func (e *writeError) Is(target error) bool {
	return target == ErrWriteFailed
}

func (e *writeError) Unwrap() error {
	return e.cause
}

// Cause implements the github.com/pkg/errors causer interface.
func (e *writeError) Cause() error {
	return e.cause
}
