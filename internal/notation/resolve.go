package notation

import (
	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/engine"
	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// Resolve finds the legal move in pos that pm names. It fails with
// errors.ErrIllegalMove when nothing matches and errors.ErrAmbiguousMove
// when the text fits more than one move.
func Resolve(pos *engine.Position, pm chess.ParsedMove) (chess.Move, error) {
	var matches []chess.Move

	switch kind, castle := pm.CastleKind(); {
	case castle:
		for _, m := range pos.GenerateMoves(engine.ForPiece(chess.King)) {
			if m.Kind == kind {
				matches = append(matches, m)
			}
		}
	case pm.From != "":
		for _, m := range pos.GenerateMoves(engine.FromAlgebraic(pm.From), engine.ToAlgebraic(pm.To)) {
			if m.Promotion == pm.Promotion {
				matches = append(matches, m)
			}
		}
	default:
		piece := pm.Piece
		if piece == chess.NoPieceType {
			piece = chess.Pawn
		}
		// SAN names castling only as O-O or O-O-O, never as "Kg1".
		for _, m := range pos.GenerateMoves(engine.ForPiece(piece), engine.ToAlgebraic(pm.To)) {
			if !m.IsCastle() && m.Promotion == pm.Promotion && matchesOrigin(m.From, pm.Disambiguator) {
				matches = append(matches, m)
			}
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, FEN: pos.FEN(), MoveText: pm.SAN}
	default:
		return chess.Move{}, &errors.MoveError{Err: errors.ErrAmbiguousMove, FEN: pos.FEN(), MoveText: pm.SAN}
	}
}

// matchesOrigin reports whether from agrees with a file, rank or square hint.
func matchesOrigin(from chess.Square, hint string) bool {
	switch len(hint) {
	case 0:
		return true
	case 1:
		if chess.IsFile(hint[0]) {
			return from.FileLetter() == hint[0]
		}
		return from.RankDigit() == hint[0]
	default:
		return from.String() == hint
	}
}

// ResolveAll plays the tokens from pos in order and returns the moves and
// the final position. It stops at the first token that fails to parse or
// resolve; the moves before it are returned with the error.
func ResolveAll(pos *engine.Position, tokens []Token) ([]chess.Move, *engine.Position, error) {
	moves := make([]chess.Move, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Err != nil {
			return moves, pos, tok.Err
		}
		m, err := Resolve(pos, tok.Move)
		if err != nil {
			return moves, pos, errors.Wrapf(err, "token %d", tok.Index)
		}
		moves = append(moves, m)
		pos = pos.Apply(m)
	}
	return moves, pos, nil
}
