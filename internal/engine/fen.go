// Package engine provides chess position state, move generation and
// move naming.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string. Missing trailing
// fields take their starting-position defaults.
func NewPositionFromFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	p := NewPosition()

	if err := parsePiecePositions(p, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(p, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(p, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(p, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(p, parts); err != nil {
		return nil, err
	}

	return p, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(p *Position, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for rank, row := range ranks {
		file := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromSymbol(c)
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			sq := chess.SquareAt(file, rank)
			p.Board.Set(sq, piece)
			if piece.Type == chess.King {
				if p.Kings[piece.Colour] != chess.NoSquare {
					return fmt.Errorf("two %s kings: %w", piece.Colour, errors.ErrInvalidFEN)
				}
				p.Kings[piece.Colour] = sq
			}
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-rank, file, errors.ErrInvalidFEN)
		}
	}

	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if p.Kings[c] == chess.NoSquare {
			return fmt.Errorf("%w: %w: %s", errors.ErrInvalidFEN, errors.ErrNoKing, c)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(p *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	colour, ok := chess.ParseColour(parts[1])
	if !ok {
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	p.Turn = colour
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(p *Position, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			p.Castling[chess.White] |= chess.KingSide
		case 'Q':
			p.Castling[chess.White] |= chess.QueenSide
		case 'k':
			p.Castling[chess.Black] |= chess.KingSide
		case 'q':
			p.Castling[chess.Black] |= chess.QueenSide
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(p *Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	p.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(p *Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		p.HalfMoves = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid move number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		p.MoveNumber = n
	}
	return nil
}

// FEN renders the position as a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &p.Board)
	sb.WriteByte(' ')
	sb.WriteByte(p.Turn.Letter())
	sb.WriteByte(' ')
	writeCastlingRights(&sb, p.Castling)
	sb.WriteByte(' ')
	sb.WriteString(p.EPSquare.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", p.HalfMoves, p.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.SquareAt(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights [chess.NumColours]chess.CastlingRights) {
	start := sb.Len()
	if rights[chess.White].Has(chess.KingSide) {
		sb.WriteByte('K')
	}
	if rights[chess.White].Has(chess.QueenSide) {
		sb.WriteByte('Q')
	}
	if rights[chess.Black].Has(chess.KingSide) {
		sb.WriteByte('k')
	}
	if rights[chess.Black].Has(chess.QueenSide) {
		sb.WriteByte('q')
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}
