// Package errors provides sentinel errors and error types for the move engine.
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

	// ErrIllegalMove indicates a move that matches no legal move.
	ErrIllegalMove = errors.New("illegal move")

	// ErrAmbiguousMove indicates a move text that matches several legal moves.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrParseFailure indicates move text that is not SAN or LAN.
	ErrParseFailure = errors.New("parse failure")

	// ErrNoKing indicates a position without a king for one side.
	ErrNoKing = errors.New("missing king")

	// ErrInvalidDepth indicates a negative search depth.
	ErrInvalidDepth = errors.New("invalid depth")
)

// ParseError describes a token that could not be decoded. It is reported
// per token so that one bad move does not abort a whole move list.
type ParseError struct {
	Err      error  // The underlying error
	Token    string // The offending token
	Index    int    // 0-based token position in the move list
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("token %d", e.Index))
	if e.Token != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Token))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// MoveError wraps a move resolution failure with the position it was
// attempted in.
type MoveError struct {
	Err      error  // The underlying error
	FEN      string // Position the move was resolved against
	MoveText string // The move text that failed
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}
	context := strings.Join(parts, " in ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
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
