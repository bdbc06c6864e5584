// Package perft counts the leaf nodes of the legal move tree. Node counts
// for well-known positions are published, which makes perft the standard
// check of a move generator.
package perft

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/engine"
	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/hashing"
	"github.com/lgbarn/chessmoves-go/internal/worker"
)

// Entry is the subtree size below one root move.
type Entry struct {
	Move  chess.Move
	Nodes int
}

// Result is the outcome of Run.
type Result struct {
	Depth int
	Nodes int

	// Divide lists the root moves in generation order.
	Divide []Entry

	// CacheHits counts subtrees answered from the node table.
	CacheHits int
}

type config struct {
	workers   int
	cacheSize int
	cache     bool
	log       zerolog.Logger
}

// Option configures Run.
type Option func(*config)

// WithWorkers sets how many root moves are expanded at once.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// WithCache shares subtree counts between transpositions. maxEntries of 0
// means unlimited.
func WithCache(maxEntries int) Option {
	return func(c *config) {
		c.cache = true
		c.cacheSize = maxEntries
	}
}

// WithLogger sets the logger for progress output.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// Count returns the number of leaf nodes depth plies below pos.
func Count(pos *engine.Position, depth int) int {
	return count(context.Background(), pos, depth, nil)
}

// count returns 0 once ctx is done; interior nodes poll ctx so a cancelled
// Run unwinds without finishing its subtrees. Partial counts are never
// stored.
func count(ctx context.Context, p *engine.Position, depth int, table *hashing.ThreadSafeNodeTable) int {
	if depth <= 0 {
		return 1
	}
	if depth > 1 && ctx.Err() != nil {
		return 0
	}

	var key uint64
	if table != nil && depth > 1 {
		key = hashing.Hash(p)
		if n, ok := table.Lookup(key, depth); ok {
			return n
		}
	}

	moves := p.GenerateMoves()
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		nodes += count(ctx, p.Apply(m), depth-1, table)
	}
	if ctx.Err() != nil {
		return 0
	}

	if table != nil {
		table.Store(key, depth, nodes)
	}
	return nodes
}

// Run counts the move tree below pos, expanding root moves on a worker
// pool. It stops early and returns ctx's error when ctx is cancelled.
func Run(ctx context.Context, pos *engine.Position, depth int, opts ...Option) (Result, error) {
	cfg := config{workers: runtime.NumCPU(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if depth < 0 {
		return Result{}, fmt.Errorf("perft depth %d: %w", depth, errors.ErrInvalidDepth)
	}
	if depth == 0 {
		return Result{Nodes: 1}, nil
	}

	var table *hashing.ThreadSafeNodeTable
	if cfg.cache {
		table = hashing.NewThreadSafeNodeTable(cfg.cacheSize)
	}

	start := time.Now()
	moves := pos.GenerateMoves()

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		if err := ctx.Err(); err != nil {
			return worker.ProcessResult{Move: item.Move, Index: item.Index, Error: err}
		}
		nodes := count(ctx, item.Position, item.Depth, table)
		if err := ctx.Err(); err != nil {
			return worker.ProcessResult{Move: item.Move, Index: item.Index, Error: err}
		}
		return worker.ProcessResult{Move: item.Move, Index: item.Index, Nodes: nodes}
	}, worker.WithWorkers(cfg.workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()

	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()

	for i, m := range moves {
		if !pool.Submit(worker.WorkItem{Position: pos.Apply(m), Move: m, Depth: depth - 1, Index: i}) {
			break
		}
	}
	go pool.Close()

	res := Result{Depth: depth, Divide: make([]Entry, len(moves))}
	var firstErr error
	received := 0
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
			}
			continue
		}
		cfg.log.Debug().Str("move", r.Move.LAN()).Int("nodes", r.Nodes).Msg("root move counted")
		res.Divide[r.Index] = Entry{Move: r.Move, Nodes: r.Nodes}
		res.Nodes += r.Nodes
		received++
	}

	if firstErr == nil && received < len(moves) {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		cfg.log.Warn().Err(firstErr).Int("depth", depth).Msg("perft interrupted")
		return Result{}, errors.Wrapf(firstErr, "perft depth %d", depth)
	}

	if table != nil {
		res.CacheHits = table.Hits()
	}

	cfg.log.Info().
		Str("fen", pos.FEN()).
		Int("depth", depth).
		Int("nodes", res.Nodes).
		Int("cache_hits", res.CacheHits).
		Dur("elapsed", time.Since(start)).
		Msg("perft complete")
	return res, nil
}
