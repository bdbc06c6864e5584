// Package hashing provides Zobrist position keys and a node-count table
// keyed by them.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chessmoves-go/internal/bitboard"
	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/engine"
)

// Fixed seeds keep keys stable across runs.
const (
	seedHi = 0x9E3779B97F4A7C15
	seedLo = 0xD1B54A32D192ED03
)

var (
	pieceKeys    [chess.NumColours][chess.King + 1][64]uint64
	sideKey      uint64
	castlingKeys [16]uint64
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewPCG(seedHi, seedLo))
	for c := range pieceKeys {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			for sq := range pieceKeys[c][pt] {
				pieceKeys[c][pt][sq] = r.Uint64()
			}
		}
	}
	sideKey = r.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = r.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = r.Uint64()
	}
}

// Hash returns the Zobrist key of the position: pieces, side to move,
// castling rights and en-passant file. The clocks are not part of it.
func Hash(p *engine.Position) uint64 {
	var h uint64
	p.Board.Squares(func(sq chess.Square, piece chess.Piece) {
		if piece.IsEmpty() {
			return
		}
		h ^= pieceKeys[piece.Colour][piece.Type][bitboard.SquareToBit(sq)]
	})
	if p.Turn == chess.Black {
		h ^= sideKey
	}
	h ^= castlingKeys[bitboard.PackCastling(p.Castling)]
	if p.EPSquare.Valid() {
		h ^= epFileKeys[p.EPSquare.File()]
	}
	return h
}

type entryKey struct {
	hash  uint64
	depth int
}

// NodeTable remembers subtree sizes by position key and depth.
type NodeTable struct {
	entries     map[entryKey]int
	maxCapacity int
	hits        int
}

// NewNodeTable creates a table. maxCapacity of 0 means unlimited.
func NewNodeTable(maxCapacity int) *NodeTable {
	return &NodeTable{
		entries:     make(map[entryKey]int),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for hash at depth.
func (t *NodeTable) Lookup(hash uint64, depth int) (int, bool) {
	n, ok := t.entries[entryKey{hash, depth}]
	if ok {
		t.hits++
	}
	return n, ok
}

// Store records a count. It is dropped once the table is full.
func (t *NodeTable) Store(hash uint64, depth, nodes int) {
	if t.IsFull() {
		return
	}
	t.entries[entryKey{hash, depth}] = nodes
}

// Len returns the number of stored entries.
func (t *NodeTable) Len() int {
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *NodeTable) Hits() int {
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *NodeTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Reset clears the table.
func (t *NodeTable) Reset() {
	t.entries = make(map[entryKey]int)
	t.hits = 0
}
