// Package chess provides core chess types and coordinate operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// NumColours is the number of colours; Colour values index arrays of this size.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns the FEN letter for the colour ('w' or 'b').
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// IsColour reports whether s is a canonical colour letter.
func IsColour(s string) bool {
	return s == "w" || s == "b"
}

// ParseColour converts a colour letter to a Colour.
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "w":
		return White, true
	case "b":
		return Black, true
	}
	return White, false
}

// PieceType represents a chess piece type regardless of colour.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the lower case letter of a piece type, or 0 for NoPieceType.
func (p PieceType) Letter() byte {
	letters := []byte{0, 'p', 'n', 'b', 'r', 'q', 'k'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return 0
}

// SANLetter returns the upper case letter used in SAN and white FEN pieces.
func (p PieceType) SANLetter() byte {
	if l := p.Letter(); l != 0 {
		return l - 'a' + 'A'
	}
	return 0
}

// PromotionPieces lists the piece types a pawn may promote to, in generation order.
var PromotionPieces = [...]PieceType{Knight, Bishop, Rook, Queen}

// ParsePieceType converts a piece letter in either case to a PieceType.
func ParsePieceType(c byte) (PieceType, bool) {
	switch c {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	}
	return NoPieceType, false
}

// IsPieceSymbol reports whether s is exactly one lower case piece letter.
func IsPieceSymbol(s string) bool {
	if len(s) != 1 {
		return false
	}
	switch s[0] {
	case 'p', 'n', 'b', 'r', 'q', 'k':
		return true
	}
	return false
}

// NormalizePieceSymbol lower-cases s and returns it if it is a piece symbol.
func NormalizePieceSymbol(s string) (string, bool) {
	if len(s) != 1 {
		return "", false
	}
	lower := string(toLower(s[0]))
	if !IsPieceSymbol(lower) {
		return "", false
	}
	return lower, true
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(pt PieceType) Piece {
	return Piece{Type: pt, Colour: White}
}

// B creates a black piece.
func B(pt PieceType) Piece {
	return Piece{Type: pt, Colour: Black}
}

// IsEmpty reports whether the piece represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Symbol returns the FEN symbol: upper case for white, lower case for black.
func (p Piece) Symbol() byte {
	if p.IsEmpty() {
		return 0
	}
	if p.Colour == White {
		return p.Type.SANLetter()
	}
	return p.Type.Letter()
}

// PieceFromSymbol converts a FEN symbol to a coloured piece.
func PieceFromSymbol(c byte) (Piece, bool) {
	pt, ok := ParsePieceType(c)
	if !ok {
		return NoPiece, false
	}
	if c >= 'a' && c <= 'z' {
		return B(pt), true
	}
	return W(pt), true
}

// CastlingRights is a per-colour set of castling permissions.
type CastlingRights uint8

const (
	KingSide CastlingRights = 1 << iota
	QueenSide
)

// Has reports whether all the given rights are held.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
