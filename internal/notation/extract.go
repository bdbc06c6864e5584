// Package notation reads move text: single SAN and LAN tokens, whole
// move lists, and the resolution of parsed tokens against a position.
package notation

import (
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/engine"
)

// isCapture returns true if c separates origin and destination.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// isGlyph returns true if c is part of an annotation like "!?".
func isGlyph(c byte) bool {
	return c == '!' || c == '?'
}

// isSquareAt returns true if s holds a square starting at i.
func isSquareAt(s string, i int) bool {
	return i >= 0 && i+1 < len(s) && chess.IsFile(s[i]) && chess.IsRank(s[i+1])
}

// pieceLetter returns the piece named by an upper-case SAN letter.
func pieceLetter(c byte) chess.PieceType {
	switch c {
	case 'N':
		return chess.Knight
	case 'B':
		return chess.Bishop
	case 'R':
		return chess.Rook
	case 'Q':
		return chess.Queen
	case 'K':
		return chess.King
	}
	return chess.NoPieceType
}

// promotionPiece returns the promotion piece for a letter in either case.
func promotionPiece(c byte) (chess.PieceType, bool) {
	pt, ok := chess.ParsePieceType(c)
	if !ok {
		return chess.NoPieceType, false
	}
	for _, p := range chess.PromotionPieces {
		if p == pt {
			return pt, true
		}
	}
	return chess.NoPieceType, false
}

// stripMoveNumber removes a leading "12." or "12..." prefix.
func stripMoveNumber(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) || s[i] != '.' {
		return s
	}
	for i < len(s) && s[i] == '.' {
		i++
	}
	return s[i:]
}

// stripAnnotations removes trailing "!" and "?" glyphs and splits off the
// check marker.
func stripAnnotations(s string) (body, check string) {
	end := len(s)
	for end > 0 && isGlyph(s[end-1]) {
		end--
	}
	if end > 0 && isCheck(s[end-1]) {
		check = s[end-1 : end]
		end--
		for end > 0 && isGlyph(s[end-1]) {
			end--
		}
	}
	return s[:end], check
}

// ExtractMove decodes one move token without a board. It accepts an
// optional move number prefix, castling, long algebraic ("e2e4", "b2-b4",
// "b7b8N") and SAN. Annotation glyphs are dropped; a check marker is kept
// in both SAN and Check. ok is false when the text is not a move.
func ExtractMove(token string) (pm chess.ParsedMove, ok bool) {
	text := stripMoveNumber(strings.TrimSpace(token))
	body, check := stripAnnotations(text)
	if body == "" {
		return chess.ParsedMove{}, false
	}

	if kind, isCastle := parseCastling(body); isCastle {
		san := engine.CastleKingside
		if kind == chess.QueensideCastle {
			san = engine.CastleQueenside
		}
		return chess.ParsedMove{SAN: san + check, Check: check}, true
	}

	if pm, ok = parseLAN(body); !ok {
		pm, ok = parseSAN(body)
	}
	if !ok {
		return chess.ParsedMove{}, false
	}
	pm.SAN = body + check
	pm.Check = check
	return pm, true
}

// parseCastling recognises O-O and O-O-O, written with letters or zeros.
func parseCastling(body string) (chess.MoveKind, bool) {
	n := 0
	for i := 0; i < len(body); i++ {
		switch {
		case isCastlingChar(body[i]) && i%2 == 0:
			n++
		case body[i] == '-' && i%2 == 1:
		default:
			return chess.Normal, false
		}
	}
	switch {
	case n == 2 && len(body) == 3:
		return chess.KingsideCastle, true
	case n == 3 && len(body) == 5:
		return chess.QueensideCastle, true
	}
	return chess.Normal, false
}

// parseLAN recognises <square>[-]<square>[=][promotion].
func parseLAN(body string) (chess.ParsedMove, bool) {
	if !isSquareAt(body, 0) {
		return chess.ParsedMove{}, false
	}
	pos := 2
	if pos < len(body) && body[pos] == '-' {
		pos++
	}
	if !isSquareAt(body, pos) {
		return chess.ParsedMove{}, false
	}
	pm := chess.ParsedMove{From: body[:2], To: body[pos : pos+2]}
	pos += 2

	if pos < len(body) && body[pos] == '=' {
		pos++
	}
	if pos < len(body) {
		promo, ok := promotionPiece(body[pos])
		if !ok {
			return chess.ParsedMove{}, false
		}
		pm.Promotion = promo
		pos++
	}
	if pos != len(body) {
		return chess.ParsedMove{}, false
	}
	return pm, true
}

// parseSAN recognises [piece][disambiguator][x]<square>[=promotion].
// For a pawn capture such as "exd5" the origin file is the disambiguator.
// An explicit "P" is accepted and leaves Piece unset, as for any pawn move.
func parseSAN(body string) (chess.ParsedMove, bool) {
	var pm chess.ParsedMove
	rest := body

	pm.Piece = pieceLetter(rest[0])
	if pm.Piece != chess.NoPieceType || rest[0] == 'P' {
		rest = rest[1:]
	}

	// Promotion: "e8=Q", "e8=q", or "e8Q" for pawns.
	n := len(rest)
	switch {
	case n >= 2 && rest[n-2] == '=':
		promo, ok := promotionPiece(rest[n-1])
		if !ok {
			return chess.ParsedMove{}, false
		}
		pm.Promotion = promo
		rest = rest[:n-2]
	case n >= 3 && chess.IsRank(rest[n-2]) && pieceLetter(rest[n-1]) != chess.NoPieceType:
		promo, ok := promotionPiece(rest[n-1])
		if !ok {
			return chess.ParsedMove{}, false
		}
		pm.Promotion = promo
		rest = rest[:n-1]
	}
	if pm.Promotion != chess.NoPieceType && pm.Piece != chess.NoPieceType {
		return chess.ParsedMove{}, false
	}

	n = len(rest)
	if !isSquareAt(rest, n-2) {
		return chess.ParsedMove{}, false
	}
	pm.To = rest[n-2:]
	hint := rest[:n-2]
	if k := len(hint); k > 0 && isCapture(hint[k-1]) {
		hint = hint[:k-1]
	}

	switch {
	case hint == "":
	case len(hint) == 1 && chess.IsFile(hint[0]):
	case len(hint) == 1 && chess.IsRank(hint[0]) && pm.Piece != chess.NoPieceType:
	case len(hint) == 2 && isSquareAt(hint, 0) && pm.Piece != chess.NoPieceType:
	default:
		return chess.ParsedMove{}, false
	}
	pm.Disambiguator = hint
	return pm, true
}
