// Package bitboard converts between the padded board and a compact
// per-colour, per-piece-type bit representation.
package bitboard

import (
	"math/bits"

	"github.com/lgbarn/chessmoves-go/internal/chess"
)

// Bitboard is a set of squares addressed by compact index 0-63
// (a8 = 0, h8 = 7, ..., h1 = 63).
type Bitboard uint64

// Set returns b with bit i set.
func (b Bitboard) Set(i int) Bitboard {
	return b | 1<<uint(i)
}

// Has reports whether bit i is set.
func (b Bitboard) Has(i int) bool {
	return b&(1<<uint(i)) != 0
}

// Count returns the number of set bits.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Indices returns the set bit indices in ascending order.
func (b Bitboard) Indices() []int {
	out := make([]int, 0, b.Count())
	for b != 0 {
		i := bits.TrailingZeros64(uint64(b))
		out = append(out, i)
		b &= b - 1
	}
	return out
}

// BitToSquare converts a compact index to a padded square.
func BitToSquare(i int) chess.Square {
	if i < 0 || i > 63 {
		return chess.NoSquare
	}
	return chess.Square((i & 7) + 16*(i>>3))
}

// SquareToBit converts a padded square to a compact index, or -1 if the
// square is off the board.
func SquareToBit(sq chess.Square) int {
	if !sq.Valid() {
		return -1
	}
	return sq.File() + 8*sq.Rank()
}

// Masks holds one bitboard per piece type for a single colour.
type Masks struct {
	Pawn   Bitboard
	Knight Bitboard
	Bishop Bitboard
	Rook   Bitboard
	Queen  Bitboard
	King   Bitboard
}

func (m *Masks) mask(pt chess.PieceType) *Bitboard {
	switch pt {
	case chess.Pawn:
		return &m.Pawn
	case chess.Knight:
		return &m.Knight
	case chess.Bishop:
		return &m.Bishop
	case chess.Rook:
		return &m.Rook
	case chess.Queen:
		return &m.Queen
	case chess.King:
		return &m.King
	}
	return nil
}

// Of returns the mask for a piece type.
func (m Masks) Of(pt chess.PieceType) Bitboard {
	if p := m.mask(pt); p != nil {
		return *p
	}
	return 0
}

// Occupancy returns every square holding a piece of this colour.
func (m Masks) Occupancy() Bitboard {
	return m.Pawn | m.Knight | m.Bishop | m.Rook | m.Queen | m.King
}

// Board is the twelve-mask form of a position's pieces.
type Board struct {
	White Masks
	Black Masks
}

// Side returns the masks for a colour.
func (b *Board) Side(c chess.Colour) *Masks {
	if c == chess.White {
		return &b.White
	}
	return &b.Black
}

// Occupancy returns every occupied square.
func (b Board) Occupancy() Bitboard {
	return b.White.Occupancy() | b.Black.Occupancy()
}

// FromBoard scans a padded board into bit masks.
func FromBoard(board *chess.Board) Board {
	var out Board
	board.Squares(func(sq chess.Square, p chess.Piece) {
		if p.IsEmpty() {
			return
		}
		if m := out.Side(p.Colour).mask(p.Type); m != nil {
			*m = m.Set(SquareToBit(sq))
		}
	})
	return out
}

var pieceTypes = [...]chess.PieceType{
	chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King,
}

// ToBoard writes every masked piece into a fresh padded board.
func (b Board) ToBoard() chess.Board {
	var out chess.Board
	for _, c := range [...]chess.Colour{chess.White, chess.Black} {
		side := b.Side(c)
		for _, pt := range pieceTypes {
			for _, i := range side.Of(pt).Indices() {
				out.Set(BitToSquare(i), chess.Piece{Type: pt, Colour: c})
			}
		}
	}
	return out
}

// KingSquare returns the padded square of a colour's king, or NoSquare
// if the king mask is empty.
func (b Board) KingSquare(c chess.Colour) chess.Square {
	kings := b.Side(c).King
	if kings == 0 {
		return chess.NoSquare
	}
	return BitToSquare(bits.TrailingZeros64(uint64(kings)))
}
