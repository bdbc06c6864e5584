package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

var kingHome = [chess.NumColours]chess.Square{chess.White: chess.E1, chess.Black: chess.E8}

// castlingMoves appends the castling moves available to us. Each needs the
// right still held, the rook on its corner, an empty path, and a king that
// is not in check and does not cross or land on an attacked square.
func (p *Position) castlingMoves(moves []chess.Move, us chess.Colour) []chess.Move {
	king := p.Kings[us]
	rights := p.Castling[us]
	if king != kingHome[us] || rights == 0 {
		return moves
	}
	them := us.Opposite()
	rook := chess.Piece{Type: chess.Rook, Colour: us}

	if rights.Has(chess.KingSide) &&
		p.Board[king+1].IsEmpty() &&
		p.Board[king+2].IsEmpty() &&
		p.Board[king+3] == rook &&
		!p.Attacked(them, king) &&
		!p.Attacked(them, king+1) &&
		!p.Attacked(them, king+2) {
		moves = append(moves, chess.Move{
			From: king, To: king + 2, Colour: us, Piece: chess.King, Kind: chess.KingsideCastle,
		})
	}

	if rights.Has(chess.QueenSide) &&
		p.Board[king-1].IsEmpty() &&
		p.Board[king-2].IsEmpty() &&
		p.Board[king-3].IsEmpty() &&
		p.Board[king-4] == rook &&
		!p.Attacked(them, king) &&
		!p.Attacked(them, king-1) &&
		!p.Attacked(them, king-2) {
		moves = append(moves, chess.Move{
			From: king, To: king - 2, Colour: us, Piece: chess.King, Kind: chess.QueensideCastle,
		})
	}

	return moves
}

// rookCastlingRight returns the right tied to a rook's home corner.
func rookCastlingRight(colour chess.Colour, sq chess.Square) chess.CastlingRights {
	switch {
	case colour == chess.White && sq == chess.H1, colour == chess.Black && sq == chess.H8:
		return chess.KingSide
	case colour == chess.White && sq == chess.A1, colour == chess.Black && sq == chess.A8:
		return chess.QueenSide
	}
	return 0
}
