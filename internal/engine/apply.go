package engine

import (
	"github.com/lgbarn/chessmoves-go/internal/chess"
)

// Apply returns the position after m. The receiver is not modified.
// m must be a move generated for the side to move.
func (p *Position) Apply(m chess.Move) *Position {
	next := p.Clone()
	next.makeMove(m)
	return next
}

// makeMove plays m in place.
func (p *Position) makeMove(m chess.Move) {
	us := p.Turn
	them := us.Opposite()
	piece := p.Board[m.From]

	p.Board[m.To] = piece
	p.Board[m.From] = chess.NoPiece

	switch m.Kind {
	case chess.EnPassant:
		if us == chess.White {
			p.Board[m.To+16] = chess.NoPiece
		} else {
			p.Board[m.To-16] = chess.NoPiece
		}
	case chess.KingsideCastle:
		p.Board[m.To-1] = p.Board[m.To+1]
		p.Board[m.To+1] = chess.NoPiece
	case chess.QueensideCastle:
		p.Board[m.To+1] = p.Board[m.To-2]
		p.Board[m.To-2] = chess.NoPiece
	case chess.Normal, chess.Capture, chess.BigPawn:
	}

	if m.IsPromotion() {
		p.Board[m.To] = chess.Piece{Type: m.Promotion, Colour: us}
	}

	if piece.Type == chess.King {
		p.Kings[us] = m.To
		p.Castling[us] = 0
	}

	// Rights are revoked when a rook leaves or is captured on its corner.
	p.Castling[us] &^= rookCastlingRight(us, m.From)
	p.Castling[them] &^= rookCastlingRight(them, m.To)

	p.EPSquare = chess.NoSquare
	if m.Kind == chess.BigPawn {
		if us == chess.White {
			p.EPSquare = m.To + 16
		} else {
			p.EPSquare = m.To - 16
		}
	}

	if piece.Type == chess.Pawn || m.IsCapture() {
		p.HalfMoves = 0
	} else {
		p.HalfMoves++
	}

	if us == chess.Black {
		p.MoveNumber++
	}
	p.Turn = them
}
