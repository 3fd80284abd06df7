// Package errors provides sentinel errors and error types for the position model.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates an algebraic square label outside a1-h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMove indicates move text that could not be parsed.
	ErrInvalidMove = errors.New("invalid move text")

	// ErrIllegalMove indicates a move that is not legal in the position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrMissingKing indicates a position without a king for the colour being checked.
	ErrMissingKing = errors.New("missing king")

	// ErrEmptySquare indicates a move whose source square holds no piece.
	ErrEmptySquare = errors.New("no piece on source square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMismatch indicates a disagreement with the reference move generator.
	ErrMismatch = errors.New("reference mismatch")
)

// FieldError reports a failure to parse one field of a position description.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type FieldError struct {
	Err   error  // The underlying error
	Field string // Name of the offending field (e.g. "castling")
	Index int    // 1-based field index in the description (0 if unknown)
	Value string // The text that failed to parse
}

// Error returns a formatted error message including all available context.
func (e *FieldError) Error() string {
	var parts []string

	if e.Field != "" {
		if e.Index > 0 {
			parts = append(parts, fmt.Sprintf("field %d (%s)", e.Index, e.Field))
		} else {
			parts = append(parts, e.Field)
		}
	}

	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}

	context := strings.Join(parts, " ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "field error"
	}
	return context
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// PositionError wraps an engine invariant violation with the position and
// move that triggered it.
type PositionError struct {
	Err  error  // The underlying error
	FEN  string // Position the operation ran on (if known)
	Move string // Move being applied (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %s", e.Move))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Is reports whether err matches target. It re-exports the standard
// library function so callers importing this package need not alias it.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
