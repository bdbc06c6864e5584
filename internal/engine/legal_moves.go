package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

type genConfig struct {
	pseudo     bool
	piece      chess.PieceType
	from       chess.Square
	fromSet    bool
	to         chess.Square
	toSet      bool
	noCastling bool
}

// GenOption configures GenerateMoves.
type GenOption func(*genConfig)

// PseudoLegal includes moves that leave the mover's king in check.
// Without it, GenerateMoves returns legal moves only.
func PseudoLegal() GenOption {
	return func(c *genConfig) {
		c.pseudo = true
	}
}

// ForPiece restricts generation to one piece type.
func ForPiece(pt chess.PieceType) GenOption {
	return func(c *genConfig) {
		c.piece = pt
	}
}

// From restricts generation to moves starting on sq.
func From(sq chess.Square) GenOption {
	return func(c *genConfig) {
		c.from = sq
		c.fromSet = true
	}
}

// FromAlgebraic is From for a square name. An invalid name matches nothing.
func FromAlgebraic(s string) GenOption {
	sq, _ := chess.ParseSquare(s)
	return From(sq)
}

// To restricts generation to moves ending on sq.
func To(sq chess.Square) GenOption {
	return func(c *genConfig) {
		c.to = sq
		c.toSet = true
	}
}

// ToAlgebraic is To for a square name. An invalid name matches nothing.
func ToAlgebraic(s string) GenOption {
	sq, _ := chess.ParseSquare(s)
	return To(sq)
}

// GenerateMoves returns the moves available to the side to move.
// Filters that match nothing produce an empty result.
func (p *Position) GenerateMoves(opts ...GenOption) []chess.Move {
	cfg := genConfig{from: chess.NoSquare, to: chess.NoSquare}
	for _, opt := range opts {
		opt(&cfg)
	}

	us := p.Turn
	moves := p.pseudoLegal(us, &cfg)
	if cfg.pseudo {
		return moves
	}

	legal := moves[:0]
	for _, m := range moves {
		if p.isLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal plays m on a copy and reports whether the mover's king is safe.
func (p *Position) isLegal(m chess.Move) bool {
	next := *p
	next.makeMove(m)
	return !next.Attacked(m.Colour.Opposite(), next.Kings[m.Colour])
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	cfg := genConfig{from: chess.NoSquare, to: chess.NoSquare}
	for _, m := range p.pseudoLegal(p.Turn, &cfg) {
		if p.isLegal(m) {
			return true
		}
	}
	return false
}
