package notation

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/testutil"
)

func TestDecode(t *testing.T) {
	tokens := NewDecoder().Decode("1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 1-0")

	var texts []string
	for _, tok := range tokens {
		if tok.Err != nil {
			t.Errorf("token %d %q: unexpected error %v", tok.Index, tok.Text, tok.Err)
		}
		texts = append(texts, tok.Text)
	}
	testutil.AssertEqual(t, texts, []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"})

	if tokens[2].Index != 4 {
		t.Errorf("Nf3 index = %d, want 4", tokens[2].Index)
	}
	testutil.AssertEqual(t, tokens[2].Move, chess.ParsedMove{Piece: chess.Knight, SAN: "Nf3", To: "f3"})
}

func TestDecode_AttachedMoveNumbers(t *testing.T) {
	tokens := NewDecoder().Decode("1.d4 Nf6 2.c4 e6 3.Nc3 Bb4 *")
	got := make([]string, 0, len(tokens))
	for _, pm := range Moves(tokens) {
		got = append(got, pm.SAN)
	}
	testutil.AssertEqual(t, got, []string{"d4", "Nf6", "c4", "e6", "Nc3", "Bb4"})
}

func TestDecode_ReportsBadTokensPerToken(t *testing.T) {
	tokens := NewDecoder().Decode("e4 Zz9 Nf3 ??? d4 1/2-1/2")
	if len(tokens) != 5 {
		t.Fatalf("Decode() returned %d tokens, want 5", len(tokens))
	}

	var bad []int
	for _, tok := range tokens {
		if tok.Err == nil {
			continue
		}
		bad = append(bad, tok.Index)
		testutil.AssertErrorIs(t, tok.Err, errors.ErrParseFailure)

		var pe *errors.ParseError
		if !stderrors.As(tok.Err, &pe) {
			t.Fatalf("token %d error is %T, want *errors.ParseError", tok.Index, tok.Err)
		}
		if pe.Token != tok.Text || pe.Index != tok.Index {
			t.Errorf("ParseError = %+v, want token %q at %d", pe, tok.Text, tok.Index)
		}
	}
	testutil.AssertEqual(t, bad, []int{1, 3})
	testutil.AssertEqual(t, len(Moves(tokens)), 3)
}

func TestDecode_Empty(t *testing.T) {
	if got := NewDecoder().Decode("   \n\t "); len(got) != 0 {
		t.Errorf("Decode() = %v, want no tokens", got)
	}
}

func TestDecode_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.WarnLevel)
	NewDecoder(WithLogger(log)).Decode("1. e4 Xx5 e5")

	out := buf.String()
	if !strings.Contains(out, `"token":"Xx5"`) {
		t.Errorf("log output missing rejected token: %s", out)
	}
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("log output missing warn level: %s", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("want exactly one warning line, got: %s", out)
	}
}

func TestDecode_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	NewDecoder(WithLogger(log)).Decode("1. e4 1-0")

	out := buf.String()
	if !strings.Contains(out, `"token":"1."`) || !strings.Contains(out, `"token":"1-0"`) {
		t.Errorf("debug output missing skipped tokens: %s", out)
	}
}

func TestIsMoveNumber(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"1.", true},
		{"12...", true},
		{"12", false},
		{"1.e4", false},
		{"", false},
		{".", false},
	}
	for _, tt := range tests {
		if got := isMoveNumber(tt.s); got != tt.want {
			t.Errorf("isMoveNumber(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
