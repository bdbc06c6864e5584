package notation

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/engine"
	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/testutil"
)

func mustPosition(t *testing.T, fen string) *engine.Position {
	t.Helper()
	p, err := engine.NewPositionFromFEN(fen)
	testutil.AssertNoError(t, err, "FEN %q", fen)
	return p
}

func mustExtract(t *testing.T, token string) chess.ParsedMove {
	t.Helper()
	pm, ok := ExtractMove(token)
	if !ok {
		t.Fatalf("ExtractMove(%q) failed", token)
	}
	return pm
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		token string
		want  string
	}{
		{"pawn push", engine.InitialFEN, "e4", "e2e4"},
		{"knight", engine.InitialFEN, "Nf3", "g1f3"},
		{"long algebraic", engine.InitialFEN, "g1-f3", "g1f3"},
		{"move number", engine.InitialFEN, "1.d4", "d2d4"},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "O-O", "e1g1"},
		{"queenside castle zeros", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "0-0-0", "e8c8"},
		{"castle as king move", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "e1c1"},
		{"file hint", "4k3/8/8/8/8/8/8/R4RK1 w - - 0 1", "Rad1", "a1d1"},
		{"rank hint", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "R5a3", "a5a3"},
		{"square hint", "8/8/8/7k/8/Q7/8/Q1Q4K w - - 0 1", "Qa1b2", "a1b2"},
		{"pawn capture", "4k3/8/8/2p1p3/3P4/8/8/4K3 w - - 0 1", "dxe5", "d4e5"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2", "exd6", "e5d6"},
		{"promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8=R+", "a7a8r"},
		{"lan promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8N", "a7a8n"},
		{"redundant hint", engine.InitialFEN, "Ngf3", "g1f3"},
		{"explicit pawn letter", engine.InitialFEN, "Pe4", "e2e4"},
		{"lan castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "e1g1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPosition(t, tt.fen)
			m, err := Resolve(p, mustExtract(t, tt.token))
			testutil.AssertNoError(t, err)
			if got := m.LAN(); got != tt.want {
				t.Errorf("Resolve(%q) = %s, want %s", tt.token, got, tt.want)
			}
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		token string
		want  error
	}{
		{"no such move", engine.InitialFEN, "e5", errors.ErrIllegalMove},
		{"blocked piece", engine.InitialFEN, "Qd3", errors.ErrIllegalMove},
		{"wrong hint", engine.InitialFEN, "Nbf3", errors.ErrIllegalMove},
		{"castling without right", "4k3/8/8/8/8/8/8/R3K2R w - - 0 1", "O-O", errors.ErrIllegalMove},
		{"missing promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8", errors.ErrIllegalMove},
		{"pinned knight", "4k3/8/8/b7/8/2N5/8/4K1N1 w - - 0 1", "Nce2", errors.ErrIllegalMove},
		{"two rooks", "4k3/8/8/8/8/8/8/R4RK1 w - - 0 1", "Rd1", errors.ErrAmbiguousMove},
		{"three queens file hint", "8/8/8/7k/8/Q7/8/Q1Q4K w - - 0 1", "Qab2", errors.ErrAmbiguousMove},
		{"castle as king letter", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "Kg1", errors.ErrIllegalMove},
		{"queenside as king letter", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "Kc8", errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPosition(t, tt.fen)
			_, err := Resolve(p, mustExtract(t, tt.token))
			testutil.AssertErrorIs(t, err, tt.want)

			var me *errors.MoveError
			if !stderrors.As(err, &me) {
				t.Fatalf("error is %T, want *errors.MoveError", err)
			}
			if me.FEN != p.FEN() {
				t.Errorf("MoveError.FEN = %q, want %q", me.FEN, p.FEN())
			}
		})
	}
}

// TestResolve_RoundTrip renders every legal move, decodes the text and
// resolves it back to the same move.
func TestResolve_RoundTrip(t *testing.T) {
	fens := []string{
		testutil.StartFEN,
		testutil.Kiwipete,
		testutil.Position3,
		testutil.Position4,
		testutil.Position5,
		"8/8/8/7k/8/Q7/8/Q1Q4K w - - 0 1",
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			p := mustPosition(t, fen)
			moves := p.GenerateMoves()
			for _, m := range moves {
				san := p.ToSAN(m, moves)
				got, err := Resolve(p, mustExtract(t, san))
				testutil.AssertNoError(t, err, "resolving %q", san)
				testutil.AssertEqual(t, got, m, "SAN %q", san)

				got, err = Resolve(p, mustExtract(t, m.LAN()))
				testutil.AssertNoError(t, err, "resolving %q", m.LAN())
				testutil.AssertEqual(t, got, m, "LAN %q", m.LAN())
			}
		})
	}
}

func TestResolveAll(t *testing.T) {
	tokens := NewDecoder().Decode("1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. O-O")
	moves, pos, err := ResolveAll(engine.NewInitialPosition(), tokens)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, testutil.LANs(moves), []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6", "e1g1"})
	if want := "r1bqkbnr/1ppp1ppp/p1n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 1 4"; pos.FEN() != want {
		t.Errorf("final FEN = %q, want %q", pos.FEN(), want)
	}

	t.Run("stops at illegal move", func(t *testing.T) {
		tokens := NewDecoder().Decode("1. e4 e5 2. Ke3")
		moves, pos, err := ResolveAll(engine.NewInitialPosition(), tokens)
		testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
		testutil.AssertEqual(t, testutil.LANs(moves), []string{"e2e4", "e7e5"})
		if pos.Turn != chess.White {
			t.Errorf("position turn = %v, want White", pos.Turn)
		}
	})

	t.Run("stops at unparseable token", func(t *testing.T) {
		tokens := NewDecoder().Decode("1. e4 Zz9 e5")
		moves, _, err := ResolveAll(engine.NewInitialPosition(), tokens)
		testutil.AssertErrorIs(t, err, errors.ErrParseFailure)
		testutil.AssertEqual(t, testutil.LANs(moves), []string{"e2e4"})
	})
}
