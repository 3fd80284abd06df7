// Package worker provides a worker pool for analysing positions in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"
)

// WorkItem is one input position.
type WorkItem struct {
	FEN    string
	Source string // where the FEN came from, e.g. "games.fen:12"
	Index  int    // Original index for ordering
}

// ProcessResult is the outcome of analysing a WorkItem.
type ProcessResult struct {
	Index        int
	Source       string
	Report       interface{} // Opaque analysis payload; typed by consumer
	ShouldOutput bool        // Whether the report passed the filters
	Duplicate    bool        // Whether the position was seen before
	Error        error
}

// ProcessFunc analyses a single work item. ctx is cancelled when the pool
// is stopped.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel position analysis.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
	ctx         context.Context
	cancel      context.CancelFunc
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Cancelling ctx has the same effect
// as Stop.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(p.ctx, item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items and cancels the
// context passed to running ones. Queued items are drained unprocessed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
	if p.cancel != nil {
		p.cancel()
	}
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	if atomic.LoadInt32(&p.stopFlag) != 0 {
		return true
	}
	return p.ctx != nil && p.ctx.Err() != nil
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
	if p.cancel != nil {
		p.cancel()
	}
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Ordered reads results until the channel closes and hands them to emit in
// Index order, starting at index 0. Results are emitted as soon as every
// earlier index has been seen. Indices must be distinct; a gap holds back
// everything after it until the channel closes, when the remainder is
// flushed in order.
func Ordered(results <-chan ProcessResult, emit func(ProcessResult)) {
	pending := make(map[int]ProcessResult)
	next := 0
	for r := range results {
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			emit(ready)
			next++
		}
	}

	for len(pending) > 0 {
		if ready, ok := pending[next]; ok {
			delete(pending, next)
			emit(ready)
		}
		next++
	}
}
