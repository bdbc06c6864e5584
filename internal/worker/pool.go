// Package worker expands root moves on a fixed set of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/engine"
)

// WorkItem is one root move and the subtree depth left below it.
type WorkItem struct {
	// Position is the position after Move. Workers only read it.
	Position *engine.Position
	Move     chess.Move
	Depth    int
	Index    int // generation order of Move at the root
}

// ProcessResult is the subtree count for one WorkItem.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes int
	Error error
}

// ProcessFunc counts the subtree of one item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items. Results arrive in
// completion order; Index restores generation order.
type Pool struct {
	numWorkers int
	bufferSize int
	process    ProcessFunc

	items   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup
	halted  atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the goroutine count. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result queues.
// Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool returns a stopped pool with one worker and queues of 64 unless
// options say otherwise.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{numWorkers: 1, bufferSize: 64, process: process}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for range p.numWorkers {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.items {
		// Once halted, queued items are discarded unprocessed.
		if p.halted.Load() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues item and reports whether it was accepted. A halted pool
// refuses new items. Submit blocks while the queue is full.
func (p *Pool) Submit(item WorkItem) bool {
	if p.halted.Load() {
		return false
	}
	p.items <- item
	return true
}

// Stop halts the pool: items not yet started produce no result.
// Items already being processed still report.
func (p *Pool) Stop() {
	p.halted.Store(true)
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results is closed after Close once every worker has returned.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}
