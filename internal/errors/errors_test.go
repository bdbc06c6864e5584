package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove},
		{"ErrAmbiguousMove", ErrAmbiguousMove},
		{"ErrParseFailure", ErrParseFailure},
		{"ErrNoKing", ErrNoKing},
		{"ErrInvalidDepth", ErrInvalidDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("loading position: %w", tt.sentinel)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", tt.sentinel)
			}
		})
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		contains []string
	}{
		{
			name: "full context",
			err: &ParseError{
				Err:      ErrParseFailure,
				Token:    "Zz9",
				Index:    7,
				Expected: "move",
				Got:      "Zz9",
			},
			contains: []string{"token 7", "Zz9", "expected move", "parse failure"},
		},
		{
			name:     "minimal context",
			err:      &ParseError{Err: ErrParseFailure},
			contains: []string{"token 0", "parse failure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestParseError_As verifies that errors.As works with ParseError
func TestParseError_As(t *testing.T) {
	wrapped := fmt.Errorf("decoding movetext: %w", &ParseError{Err: ErrParseFailure, Token: "e9", Index: 2})

	var parseErr *ParseError
	if !errors.As(wrapped, &parseErr) {
		t.Fatal("errors.As() could not extract ParseError")
	}
	if parseErr.Index != 2 || parseErr.Token != "e9" {
		t.Errorf("extracted ParseError = %+v, want index 2 token e9", parseErr)
	}
	if !errors.Is(wrapped, ErrParseFailure) {
		t.Error("errors.Is(wrapped, ErrParseFailure) = false, want true")
	}
}

// TestMoveError verifies MoveError formatting and unwrapping
func TestMoveError(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrAmbiguousMove,
		FEN:      "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
		MoveText: "Rd1",
	}

	msg := moveErr.Error()
	for _, s := range []string{"Rd1", "4k3/8", "ambiguous move"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
		}
	}

	if !errors.Is(moveErr, ErrAmbiguousMove) {
		t.Error("errors.Is(moveErr, ErrAmbiguousMove) = false, want true")
	}
	if errors.Is(moveErr, ErrIllegalMove) {
		t.Error("errors.Is(moveErr, ErrIllegalMove) = true, want false")
	}

	bare := &MoveError{Err: ErrIllegalMove}
	if got := bare.Error(); got != "illegal move" {
		t.Errorf("bare MoveError.Error() = %q, want %q", got, "illegal move")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidFEN, "rank %d has %d files", 3, 9)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "rank 3 has 9 files") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
