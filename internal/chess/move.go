package chess

import "strings"

// MoveKind categorizes a generated move. Promotion is carried separately
// in Move.Promotion because a promotion can also be a capture.
type MoveKind int

const (
	Normal MoveKind = iota
	Capture
	BigPawn // pawn advancing two squares
	EnPassant
	KingsideCastle
	QueensideCastle
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case Capture:
		return "Capture"
	case BigPawn:
		return "BigPawn"
	case EnPassant:
		return "EnPassant"
	case KingsideCastle:
		return "KingsideCastle"
	case QueensideCastle:
		return "QueensideCastle"
	}
	return "Unknown"
}

// Move is a board move as produced by the generator.
type Move struct {
	From   Square
	To     Square
	Colour Colour

	// Piece is the type of the moving piece.
	Piece PieceType

	// Captured is the type of the captured piece (NoPieceType if none).
	Captured PieceType

	// Promotion is the piece promoted to (NoPieceType if not a promotion).
	Promotion PieceType

	Kind MoveKind
}

// IsCapture returns true if the move removes an enemy piece.
func (m Move) IsCapture() bool {
	switch m.Kind {
	case Capture, EnPassant:
		return true
	case Normal, BigPawn, KingsideCastle, QueensideCastle:
		return false
	}
	return false
}

// IsPromotion returns true if the move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Kind {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// Flags returns the move's categories as letters: n (normal), c (capture),
// b (big pawn), e (en passant), p (promotion), k and q (castling). A
// promotion adds p to its kind, so a quiet promotion is "np".
func (m Move) Flags() string {
	var sb strings.Builder
	switch m.Kind {
	case Normal:
		sb.WriteByte('n')
	case Capture:
		sb.WriteByte('c')
	case BigPawn:
		sb.WriteByte('b')
	case EnPassant:
		sb.WriteByte('e')
	case KingsideCastle:
		sb.WriteByte('k')
	case QueensideCastle:
		sb.WriteByte('q')
	}
	if m.IsPromotion() {
		sb.WriteByte('p')
	}
	return sb.String()
}

// LAN returns the move in long algebraic notation, e.g. "e7e8q".
func (m Move) LAN() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte(m.Promotion.Letter())
	}
	return sb.String()
}

// MoveDetail is a Move resolved for display: squares as text and
// pieces as letters.
type MoveDetail struct {
	Colour    Colour
	From      string
	To        string
	Piece     PieceType
	Captured  PieceType
	Promotion PieceType
	Flags     string
	LAN       string
}

// ParsedMove is the board-free decoding of a single SAN or LAN token.
// Text fields are empty and piece fields are NoPieceType when absent.
type ParsedMove struct {
	// SAN is the token without move number and annotation glyphs.
	SAN string

	// Piece is the moving piece when a non-pawn letter was given.
	Piece PieceType

	// From and To are algebraic squares.
	From string
	To   string

	// Disambiguator is a file letter, rank digit or full square.
	Disambiguator string

	Promotion PieceType

	// Check is "+" or "#".
	Check string
}

// IsCastle reports whether the token was castling notation.
func (pm ParsedMove) IsCastle() bool {
	_, ok := pm.CastleKind()
	return ok
}

// CastleKind returns the castling kind named by the token, if any.
func (pm ParsedMove) CastleKind() (MoveKind, bool) {
	if pm.To != "" || pm.From != "" {
		return Normal, false
	}
	body := strings.TrimRight(pm.SAN, "+#")
	body = strings.ReplaceAll(body, "0", "O")
	switch body {
	case "O-O":
		return KingsideCastle, true
	case "O-O-O":
		return QueensideCastle, true
	}
	return Normal, false
}
