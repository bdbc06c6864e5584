package chess

// Square is an index into the padded 0x88 board. Each rank is 16 cells wide,
// with files 8-15 acting as an off-board hedge, so an index is on the board
// exactly when sq&0x88 == 0. Rank 8 is index-rank 0.
type Square int

// NoSquare marks an absent square.
const NoSquare Square = -1

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// NumSquares is the length of the padded board array.
const NumSquares = 128

// Named squares.
const (
	A8 Square = 0x00 + iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const (
	A7 Square = 0x10 + iota
	B7
	C7
	D7
	E7
	F7
	G7
	H7
)

const (
	A6 Square = 0x20 + iota
	B6
	C6
	D6
	E6
	F6
	G6
	H6
)

const (
	A5 Square = 0x30 + iota
	B5
	C5
	D5
	E5
	F5
	G5
	H5
)

const (
	A4 Square = 0x40 + iota
	B4
	C4
	D4
	E4
	F4
	G4
	H4
)

const (
	A3 Square = 0x50 + iota
	B3
	C3
	D3
	E3
	F3
	G3
	H3
)

const (
	A2 Square = 0x60 + iota
	B2
	C2
	D2
	E2
	F2
	G2
	H2
)

const (
	A1 Square = 0x70 + iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// Rank returns the zero-based rank of the square; 0 is rank 8.
func (sq Square) Rank() int {
	return int(sq) >> 4
}

// File returns the zero-based file of the square; 0 is the a-file.
func (sq Square) File() int {
	return int(sq) & 15
}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares && sq&0x88 == 0
}

// Algebraic returns the square in algebraic notation, e.g. "e4".
// Padding squares and out-of-range indices have no algebraic form.
func (sq Square) Algebraic() (string, bool) {
	if !sq.Valid() {
		return "", false
	}
	return string([]byte{sq.FileLetter(), sq.RankDigit()}), true
}

// FileLetter returns the file letter 'a'-'h'.
func (sq Square) FileLetter() byte {
	return byte('a' + sq.File())
}

// RankDigit returns the rank digit '1'-'8'.
func (sq Square) RankDigit() byte {
	return byte('8' - sq.Rank())
}

// String returns the algebraic form, or "-" if the square is not on the board.
func (sq Square) String() string {
	if s, ok := sq.Algebraic(); ok {
		return s
	}
	return "-"
}

// SquareAt builds a square from a zero-based file and rank (rank 0 is rank 8).
func SquareAt(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank<<4 | file)
}

// IsFile reports whether c is a file letter 'a'-'h'.
func IsFile(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// IsRank reports whether c is a rank digit '1'-'8'.
func IsRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// IsSquare reports whether s is a canonical square, e.g. "e4".
func IsSquare(s string) bool {
	return len(s) == 2 && IsFile(s[0]) && IsRank(s[1])
}

// NormalizeSquare lower-cases s and returns it if it names a square.
func NormalizeSquare(s string) (string, bool) {
	if len(s) != 2 {
		return "", false
	}
	n := string([]byte{toLower(s[0]), s[1]})
	if !IsSquare(n) {
		return "", false
	}
	return n, true
}

// ParseSquare converts a canonical square string to a Square.
func ParseSquare(s string) (Square, bool) {
	if !IsSquare(s) {
		return NoSquare, false
	}
	return SquareAt(int(s[0]-'a'), int('8'-s[1])), true
}
