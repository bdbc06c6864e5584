package engine

import (
	"github.com/lgbarn/chessmoves-go/internal/bitboard"
	"github.com/lgbarn/chessmoves-go/internal/chess"
)

// Position holds everything needed to generate and name moves.
// A Position must not be modified while another goroutine reads it;
// Clone it before branching.
type Position struct {
	Board chess.Board

	// Kings tracks each king's square for fast check detection.
	Kings [chess.NumColours]chess.Square

	// Turn is the side to move.
	Turn chess.Colour

	Castling [chess.NumColours]chess.CastlingRights

	// EPSquare is the en-passant target square, or chess.NoSquare.
	EPSquare chess.Square

	// HalfMoves counts plies since the last capture or pawn move.
	HalfMoves int

	MoveNumber int
}

// NewPosition returns an empty board with white to move.
func NewPosition() *Position {
	return &Position{
		Kings:      [chess.NumColours]chess.Square{chess.NoSquare, chess.NoSquare},
		Turn:       chess.White,
		EPSquare:   chess.NoSquare,
		MoveNumber: 1,
	}
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() *Position {
	p := NewPosition()
	p.Board.SetupInitialPosition()
	p.Kings[chess.White] = chess.E1
	p.Kings[chess.Black] = chess.E8
	p.Castling[chess.White] = chess.KingSide | chess.QueenSide
	p.Castling[chess.Black] = chess.KingSide | chess.QueenSide
	return p
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// ToMove projects a generated move into its display form.
func (p *Position) ToMove(m chess.Move) chess.MoveDetail {
	return chess.MoveDetail{
		Colour:    m.Colour,
		From:      m.From.String(),
		To:        m.To.String(),
		Piece:     m.Piece,
		Captured:  m.Captured,
		Promotion: m.Promotion,
		Flags:     m.Flags(),
		LAN:       m.LAN(),
	}
}

// ToBitState encodes the position in its compact form.
func (p *Position) ToBitState() bitboard.State {
	return bitboard.State{
		Board:      bitboard.FromBoard(&p.Board),
		Turn:       p.Turn,
		Castling:   bitboard.PackCastling(p.Castling),
		EnPassant:  bitboard.EnPassantIndex(p.EPSquare),
		HalfMoves:  p.HalfMoves,
		MoveNumber: p.MoveNumber,
	}
}

// FromBitState decodes a compact position. A colour without a king in
// the masks gets chess.NoSquare as its king square.
func FromBitState(s bitboard.State) *Position {
	return &Position{
		Board: s.Board.ToBoard(),
		Kings: [chess.NumColours]chess.Square{
			chess.White: s.Board.KingSquare(chess.White),
			chess.Black: s.Board.KingSquare(chess.Black),
		},
		Turn:       s.Turn,
		Castling:   bitboard.UnpackCastling(s.Castling),
		EPSquare:   bitboard.BitToSquare(s.EnPassant),
		HalfMoves:  s.HalfMoves,
		MoveNumber: s.MoveNumber,
	}
}
