package bitboard

import "github.com/lgbarn/chessmoves-go/internal/chess"

// NoEnPassant marks an absent en-passant square in State.
const NoEnPassant = -1

// Castling nibble bits.
const (
	WhiteKingSide  uint8 = 1 << 3
	WhiteQueenSide uint8 = 1 << 2
	BlackKingSide  uint8 = 1 << 1
	BlackQueenSide uint8 = 1 << 0
)

// State is the compact encoding of a full position.
type State struct {
	Board    Board
	Turn     chess.Colour
	Castling uint8

	// EnPassant is the compact index of the en-passant target, or NoEnPassant.
	EnPassant  int
	HalfMoves  int
	MoveNumber int
}

// PackCastling packs per-colour rights into the castling nibble.
func PackCastling(rights [chess.NumColours]chess.CastlingRights) uint8 {
	var n uint8
	if rights[chess.White].Has(chess.KingSide) {
		n |= WhiteKingSide
	}
	if rights[chess.White].Has(chess.QueenSide) {
		n |= WhiteQueenSide
	}
	if rights[chess.Black].Has(chess.KingSide) {
		n |= BlackKingSide
	}
	if rights[chess.Black].Has(chess.QueenSide) {
		n |= BlackQueenSide
	}
	return n
}

// UnpackCastling is the inverse of PackCastling.
func UnpackCastling(n uint8) [chess.NumColours]chess.CastlingRights {
	var rights [chess.NumColours]chess.CastlingRights
	if n&WhiteKingSide != 0 {
		rights[chess.White] |= chess.KingSide
	}
	if n&WhiteQueenSide != 0 {
		rights[chess.White] |= chess.QueenSide
	}
	if n&BlackKingSide != 0 {
		rights[chess.Black] |= chess.KingSide
	}
	if n&BlackQueenSide != 0 {
		rights[chess.Black] |= chess.QueenSide
	}
	return rights
}

// EnPassantIndex converts an en-passant square to its compact form.
func EnPassantIndex(sq chess.Square) int {
	if i := SquareToBit(sq); i >= 0 {
		return i
	}
	return NoEnPassant
}
