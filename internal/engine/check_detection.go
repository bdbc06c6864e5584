package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// Attacked returns true if any piece of colour by attacks sq.
//
// The test runs pseudo-legal generation for by on a copy of the position
// in which sq holds a piece of the other colour, so pawn diagonals count
// even when sq is empty. Castling is never generated here: it cannot
// capture, and generating it would itself ask which squares are attacked.
func (p *Position) Attacked(by chess.Colour, sq chess.Square) bool {
	if !sq.Valid() {
		return false
	}
	probe := *p
	if target := probe.Board[sq]; target.IsEmpty() || target.Colour == by {
		probe.Board[sq] = chess.Piece{Type: chess.Pawn, Colour: by.Opposite()}
	}
	cfg := genConfig{
		pseudo:     true,
		from:       chess.NoSquare,
		to:         sq,
		toSet:      true,
		noCastling: true,
	}
	return len(probe.pseudoLegal(by, &cfg)) > 0
}

// IsInCheck returns true if the given colour's king is attacked.
// A colour without a king is never in check.
func (p *Position) IsInCheck(colour chess.Colour) bool {
	return p.Attacked(colour.Opposite(), p.Kings[colour])
}

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() bool {
	return p.IsInCheck(p.Turn)
}
