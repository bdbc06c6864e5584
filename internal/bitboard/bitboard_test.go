package bitboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessmoves-go/internal/chess"
)

func TestBitToSquareInverse(t *testing.T) {
	for i := 0; i < 64; i++ {
		sq := BitToSquare(i)
		if !sq.Valid() {
			t.Fatalf("BitToSquare(%d) = %#x; not on the board", i, int(sq))
		}
		if got := SquareToBit(sq); got != i {
			t.Errorf("SquareToBit(BitToSquare(%d)) = %d", i, got)
		}
	}
}

func TestCompactIndexLayout(t *testing.T) {
	tests := []struct {
		sq   chess.Square
		want int
	}{
		{chess.A8, 0},
		{chess.H8, 7},
		{chess.A7, 8},
		{chess.E4, 36},
		{chess.A1, 56},
		{chess.H1, 63},
	}
	for _, tt := range tests {
		if got := SquareToBit(tt.sq); got != tt.want {
			t.Errorf("SquareToBit(%v) = %d; want %d", tt.sq, got, tt.want)
		}
	}
	if got := SquareToBit(chess.Square(0x08)); got != -1 {
		t.Errorf("SquareToBit(0x08) = %d; want -1", got)
	}
	if got := BitToSquare(64); got != chess.NoSquare {
		t.Errorf("BitToSquare(64) = %v; want NoSquare", got)
	}
}

func TestFromBoardEmpty(t *testing.T) {
	var board chess.Board
	if diff := cmp.Diff(Board{}, FromBoard(&board)); diff != "" {
		t.Errorf("FromBoard(empty) mismatch (-want +got):\n%s", diff)
	}
}

func TestFromBoardInitial(t *testing.T) {
	var board chess.Board
	board.SetupInitialPosition()
	bb := FromBoard(&board)

	tests := []struct {
		name string
		got  Bitboard
		want Bitboard
	}{
		{"white pawns", bb.White.Pawn, 0x00ff000000000000},
		{"black pawns", bb.Black.Pawn, 0x000000000000ff00},
		{"white king", bb.White.King, 1 << 60},
		{"black king", bb.Black.King, 1 << 4},
		{"white rooks", bb.White.Rook, 1<<56 | 1<<63},
		{"black queen", bb.Black.Queen, 1 << 3},
		{"occupancy", bb.Occupancy(), 0xffff00000000ffff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %#016x; want %#016x", uint64(tt.got), uint64(tt.want))
			}
		})
	}

	if got := bb.KingSquare(chess.White); got != chess.E1 {
		t.Errorf("KingSquare(White) = %v; want e1", got)
	}
}

func TestBoardRoundTrip(t *testing.T) {
	boards := map[string]func(*chess.Board){
		"empty":   func(*chess.Board) {},
		"initial": func(b *chess.Board) { b.SetupInitialPosition() },
		"sparse": func(b *chess.Board) {
			b.Set(chess.E1, chess.W(chess.King))
			b.Set(chess.H8, chess.B(chess.King))
			b.Set(chess.D5, chess.W(chess.Queen))
			b.Set(chess.A2, chess.B(chess.Pawn))
			b.Set(chess.G7, chess.W(chess.Knight))
		},
	}
	for name, setup := range boards {
		t.Run(name, func(t *testing.T) {
			var board chess.Board
			setup(&board)
			got := FromBoard(&board).ToBoard()
			if diff := cmp.Diff(board, got); diff != "" {
				t.Errorf("ToBoard(FromBoard(b)) mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIndices(t *testing.T) {
	b := Bitboard(0).Set(63).Set(0).Set(17)
	if diff := cmp.Diff([]int{0, 17, 63}, b.Indices()); diff != "" {
		t.Errorf("Indices() mismatch (-want +got):\n%s", diff)
	}
	if !b.Has(17) || b.Has(18) {
		t.Error("Has() reports wrong membership")
	}
	if b.Count() != 3 {
		t.Errorf("Count() = %d; want 3", b.Count())
	}
}

func TestCastlingNibble(t *testing.T) {
	for n := uint8(0); n < 16; n++ {
		if got := PackCastling(UnpackCastling(n)); got != n {
			t.Errorf("PackCastling(UnpackCastling(%04b)) = %04b", n, got)
		}
	}
	rights := UnpackCastling(WhiteKingSide | BlackQueenSide)
	if rights[chess.White] != chess.KingSide || rights[chess.Black] != chess.QueenSide {
		t.Errorf("UnpackCastling = %v; want white K, black Q", rights)
	}
}
