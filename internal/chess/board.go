package chess

// Board is the padded 0x88 board. Only indices with Square.Valid() hold
// pieces; the hedge cells are always empty.
type Board [NumSquares]Piece

// Get returns the piece at sq, or NoPiece for off-board squares.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b[sq]
}

// Set places a piece on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b[sq] = p
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, NoPiece)
}

// Squares calls fn for each on-board square in ascending padded index order.
func (b *Board) Squares(fn func(sq Square, p Piece)) {
	for sq := A8; sq <= H1; sq++ {
		if sq&0x88 != 0 {
			sq += 7
			continue
		}
		fn(sq, b[sq])
	}
}

// FindKing returns the square of the given colour's king, or NoSquare.
func (b *Board) FindKing(c Colour) Square {
	king := Piece{Type: King, Colour: c}
	found := NoSquare
	b.Squares(func(sq Square, p Piece) {
		if found == NoSquare && p == king {
			found = sq
		}
	})
	return found
}

// SetupInitialPosition places the standard starting pieces on an empty board.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b[SquareAt(file, 0)] = B(backRank[file])
		b[SquareAt(file, 1)] = B(Pawn)
		b[SquareAt(file, 6)] = W(Pawn)
		b[SquareAt(file, 7)] = W(backRank[file])
	}
}
