package notation

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// Token is one decoded entry of a move list.
type Token struct {
	// Index is the token's position among the whitespace-separated fields.
	Index int
	Text  string
	Move  chess.ParsedMove

	// Err is a *errors.ParseError when Text is not a move.
	Err error
}

// Decoder splits move lists into parsed tokens. A Decoder is safe for
// concurrent use.
type Decoder struct {
	log zerolog.Logger
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithLogger sets the logger that receives skipped and rejected tokens.
func WithLogger(log zerolog.Logger) DecoderOption {
	return func(d *Decoder) {
		d.log = log
	}
}

// NewDecoder creates a Decoder. Without options it logs nothing.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// isResult returns true if s is a game termination marker.
func isResult(s string) bool {
	switch s {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

// isMoveNumber returns true if s is a bare "12." or "12...".
func isMoveNumber(s string) bool {
	return s != "" && stripMoveNumber(s) == "" && strings.HasSuffix(s, ".")
}

// Decode parses every move in movetext. Move numbers and game results are
// skipped. A token that is not a move is returned with Err set; decoding
// carries on with the next token.
func (d *Decoder) Decode(movetext string) []Token {
	fields := strings.Fields(movetext)
	tokens := make([]Token, 0, len(fields))

	for i, field := range fields {
		if isMoveNumber(field) || isResult(field) {
			d.log.Debug().Int("index", i).Str("token", field).Msg("skipping non-move token")
			continue
		}

		tok := Token{Index: i, Text: field}
		pm, ok := ExtractMove(field)
		if ok {
			tok.Move = pm
		} else {
			tok.Err = &errors.ParseError{
				Err:      errors.ErrParseFailure,
				Token:    field,
				Index:    i,
				Expected: "SAN or LAN move",
			}
			d.log.Warn().Err(tok.Err).Int("index", i).Str("token", field).Msg("unrecognised move token")
		}
		tokens = append(tokens, tok)
	}

	d.log.Debug().Int("fields", len(fields)).Int("tokens", len(tokens)).Msg("decoded move text")
	return tokens
}

// Moves returns the parsed moves of the tokens without errors.
func Moves(tokens []Token) []chess.ParsedMove {
	out := make([]chess.ParsedMove, 0, len(tokens))
	for _, t := range tokens {
		if t.Err == nil {
			out = append(out, t.Move)
		}
	}
	return out
}
