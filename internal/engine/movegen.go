package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// Pawn offsets on the padded board: push, double push, two captures.
var pawnOffsets = [chess.NumColours][4]chess.Square{
	chess.White: {-16, -32, -17, -15},
	chess.Black: {16, 32, 17, 15},
}

var pieceOffsets = map[chess.PieceType][]chess.Square{
	chess.Knight: {-18, -33, -31, -14, 18, 33, 31, 14},
	chess.Bishop: {-17, -15, 17, 15},
	chess.Rook:   {-16, 1, 16, -1},
	chess.Queen:  {-17, -16, -15, 1, 17, 16, 15, -1},
	chess.King:   {-17, -16, -15, 1, 17, 16, 15, -1},
}

// Zero-based ranks (0 is rank 8) that drive pawn rules.
var (
	pawnHomeRank  = [chess.NumColours]int{chess.White: 6, chess.Black: 1}
	promotionRank = [chess.NumColours]int{chess.White: 0, chess.Black: 7}
	epTargetRank  = [chess.NumColours]int{chess.White: 2, chess.Black: 5}
)

// pseudoLegal appends every move for colour us that obeys piece movement
// rules, without checking whether it leaves us in check. Moves come out
// in ascending origin square order.
func (p *Position) pseudoLegal(us chess.Colour, cfg *genConfig) []chess.Move {
	first, last := chess.A8, chess.H1
	if cfg.fromSet {
		if !cfg.from.Valid() {
			return nil
		}
		first, last = cfg.from, cfg.from
	}

	var moves []chess.Move
	for from := first; from <= last; from++ {
		if from&0x88 != 0 {
			from += 7
			continue
		}
		piece := p.Board[from]
		if piece.IsEmpty() || piece.Colour != us {
			continue
		}
		if cfg.piece != chess.NoPieceType && piece.Type != cfg.piece {
			continue
		}

		switch piece.Type {
		case chess.Pawn:
			moves = p.pawnMoves(moves, from, us)
		case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
			moves = p.pieceMoves(moves, from, piece.Type, us)
		case chess.King:
			moves = p.pieceMoves(moves, from, piece.Type, us)
			if !cfg.noCastling && from == p.Kings[us] {
				moves = p.castlingMoves(moves, us)
			}
		}
	}

	if cfg.toSet {
		moves = filterTo(moves, cfg.to)
	}
	return moves
}

// pawnMoves appends pushes, captures and en passant for the pawn on from.
func (p *Position) pawnMoves(moves []chess.Move, from chess.Square, us chess.Colour) []chess.Move {
	offsets := pawnOffsets[us]

	to := from + offsets[0]
	if to.Valid() && p.Board[to].IsEmpty() {
		moves = addPawnMove(moves, us, from, to, chess.Normal, chess.NoPieceType)

		to = from + offsets[1]
		if from.Rank() == pawnHomeRank[us] && p.Board[to].IsEmpty() {
			moves = append(moves, chess.Move{
				From: from, To: to, Colour: us, Piece: chess.Pawn, Kind: chess.BigPawn,
			})
		}
	}

	for _, offset := range offsets[2:] {
		to := from + offset
		if !to.Valid() {
			continue
		}
		target := p.Board[to]
		switch {
		case !target.IsEmpty() && target.Colour != us:
			moves = addPawnMove(moves, us, from, to, chess.Capture, target.Type)
		case target.IsEmpty() && to == p.EPSquare && to.Rank() == epTargetRank[us]:
			moves = append(moves, chess.Move{
				From: from, To: to, Colour: us, Piece: chess.Pawn,
				Captured: chess.Pawn, Kind: chess.EnPassant,
			})
		}
	}
	return moves
}

// addPawnMove appends a pawn move, expanding it into one move per
// promotion piece when it reaches the last rank.
func addPawnMove(moves []chess.Move, us chess.Colour, from, to chess.Square, kind chess.MoveKind, captured chess.PieceType) []chess.Move {
	m := chess.Move{From: from, To: to, Colour: us, Piece: chess.Pawn, Captured: captured, Kind: kind}
	if to.Rank() != promotionRank[us] {
		return append(moves, m)
	}
	for _, promo := range chess.PromotionPieces {
		m.Promotion = promo
		moves = append(moves, m)
	}
	return moves
}

// pieceMoves appends moves for knights, bishops, rooks, queens and kings.
func (p *Position) pieceMoves(moves []chess.Move, from chess.Square, pt chess.PieceType, us chess.Colour) []chess.Move {
	slides := pt != chess.Knight && pt != chess.King
	for _, offset := range pieceOffsets[pt] {
		to := from
		for {
			to += offset
			if !to.Valid() {
				break
			}
			target := p.Board[to]
			if target.IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: to, Colour: us, Piece: pt, Kind: chess.Normal})
			} else {
				if target.Colour != us {
					moves = append(moves, chess.Move{
						From: from, To: to, Colour: us, Piece: pt,
						Captured: target.Type, Kind: chess.Capture,
					})
				}
				break
			}
			if !slides {
				break
			}
		}
	}
	return moves
}

func filterTo(moves []chess.Move, to chess.Square) []chess.Move {
	out := moves[:0]
	for _, m := range moves {
		if m.To == to {
			out = append(out, m)
		}
	}
	return out
}
