package engine

import (
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/chess"
)

// SAN castling text.
const (
	CastleKingside  = "O-O"
	CastleQueenside = "O-O-O"
)

type sanConfig struct {
	promotion bool
}

// SANOption configures ToSAN.
type SANOption func(*sanConfig)

// WithPromotion controls whether the "=Q" promotion suffix is written.
// It is written by default.
func WithPromotion(add bool) SANOption {
	return func(c *sanConfig) {
		c.promotion = add
	}
}

// ToSAN renders m in Standard Algebraic Notation. candidates are the
// sibling moves used for disambiguation; when nil, the legal moves of
// the same piece type are generated.
func (p *Position) ToSAN(m chess.Move, candidates []chess.Move, opts ...SANOption) string {
	cfg := sanConfig{promotion: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if candidates == nil {
		candidates = p.GenerateMoves(ForPiece(m.Piece))
	}

	var sb strings.Builder
	switch m.Kind {
	case chess.KingsideCastle:
		sb.WriteString(CastleKingside)
	case chess.QueensideCastle:
		sb.WriteString(CastleQueenside)
	case chess.Normal, chess.Capture, chess.BigPawn, chess.EnPassant:
		if m.Piece != chess.Pawn {
			sb.WriteByte(m.Piece.SANLetter())
			sb.WriteString(disambiguator(m, candidates))
		}
		if m.IsCapture() {
			if m.Piece == chess.Pawn {
				sb.WriteByte(m.From.FileLetter())
			}
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() && cfg.promotion {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.SANLetter())
		}
	}

	next := p.Apply(m)
	if next.InCheck() {
		if next.HasLegalMoves() {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}
	return sb.String()
}

// disambiguator returns the shortest origin hint (file, rank, or square)
// that separates m from every sibling of the same piece type moving to
// the same square.
func disambiguator(m chess.Move, candidates []chess.Move) string {
	var ambiguities, sameRank, sameFile int
	for _, c := range candidates {
		if c.Piece != m.Piece || c.Colour != m.Colour || c.From == m.From || c.To != m.To {
			continue
		}
		ambiguities++
		if c.From.Rank() == m.From.Rank() {
			sameRank++
		}
		if c.From.File() == m.From.File() {
			sameFile++
		}
	}

	switch {
	case ambiguities == 0:
		return ""
	case sameRank > 0 && sameFile > 0:
		return m.From.String()
	case sameFile > 0:
		return string(m.From.RankDigit())
	default:
		return string(m.From.FileLetter())
	}
}
