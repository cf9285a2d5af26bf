// Package analysis holds the pieces shared by the extractors, scorers and
// the fusion engine: the two public error kinds, score clamping and media
// decoding. Everything in this tree is a pure function of its inputs; no
// package here performs I/O or keeps state across calls.
package analysis

import (
	"errors"
	"fmt"
)

// MissingInputError reports that the caller supplied no usable input for an
// operation that requires one. It is expected and recoverable.
type MissingInputError struct {
	Op     string // operation that was attempted, e.g. "scoreText"
	Reason string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s: missing input: %s", e.Op, e.Reason)
}

// NewMissingInput returns a MissingInputError for the given operation.
func NewMissingInput(op, reason string) error {
	return &MissingInputError{Op: op, Reason: reason}
}

// IsMissingInput reports whether err is a MissingInputError.
func IsMissingInput(err error) bool {
	var m *MissingInputError
	return errors.As(err, &m)
}

// InvalidEncodingError reports that a supplied buffer or string could not be
// decoded as the expected encoding. Well-formed callers should never trigger
// it, but it must surface as a result rather than a panic.
type InvalidEncodingError struct {
	Input  string // which input failed, e.g. "audio"
	Reason string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("%s: invalid encoding: %s", e.Input, e.Reason)
}

// IsInvalidEncoding reports whether err is an InvalidEncodingError.
func IsInvalidEncoding(err error) bool {
	var m *InvalidEncodingError
	return errors.As(err, &m)
}
