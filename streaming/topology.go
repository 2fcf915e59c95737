// Package streaming fans a set of event streams out across shards, each
// running its own TransactionProcessor over storage shared with every
// other shard, and reports a per-shard and aggregate result once every
// stream has drained.
package streaming

import (
	"context"
	"sync"

	"github.com/ledgerflow/txnengine/domain"
	"github.com/ledgerflow/txnengine/engine"
	"github.com/ledgerflow/txnengine/storage"
)

// Envelope is one item off an EventSource: either a successfully parsed
// Event, or an error describing why a row could not be turned into one.
type Envelope struct {
	Event domain.Event
	Err   error
}

// EventSource produces a finite, lazily-read sequence of Envelopes on the
// returned channel, which it closes once exhausted.
type EventSource interface {
	Events() <-chan Envelope
}

// assignmentKind selects how ShardAssignment distributes stream indices
// across shards.
type assignmentKind int

const (
	roundRobinKind assignmentKind = iota
	sequentialKind
	customKind
)

// ShardAssignment decides which shard a given stream index is routed to.
type ShardAssignment struct {
	kind assignmentKind
	fn   func(streamIndex int) int
}

// RoundRobinAssignment routes stream i to shard i%numShards.
func RoundRobinAssignment() ShardAssignment {
	return ShardAssignment{kind: roundRobinKind}
}

// SequentialAssignment splits streams into numShards contiguous chunks of
// roughly equal size, so stream i lands in shard i/chunkSize.
func SequentialAssignment() ShardAssignment {
	return ShardAssignment{kind: sequentialKind}
}

// CustomAssignment routes stream i to shard fn(i)%numShards.
func CustomAssignment(fn func(streamIndex int) int) ShardAssignment {
	return ShardAssignment{kind: customKind, fn: fn}
}

// Combinator selects how the streams routed to one shard are interleaved
// into a single sequence for that shard's processor.
type Combinator int

const (
	// Merge concurrently fans in every stream assigned to a shard; the
	// relative order between different source streams is not preserved.
	Merge Combinator = iota
	// Chain processes the streams assigned to a shard one at a time, in
	// the order they were added, preserving order within and across
	// streams on that shard.
	Chain
)

// ShardResult reports the outcome of processing one shard.
type ShardResult struct {
	ShardID          int
	StreamsProcessed int
	Success          bool
}

// ProcessorResults aggregates every shard's outcome.
type ProcessorResults struct {
	ShardResults []ShardResult
	TotalStreams int
}

// AllSucceeded reports whether every shard ran to completion without its
// error policy aborting it.
func (r ProcessorResults) AllSucceeded() bool {
	for _, sr := range r.ShardResults {
		if !sr.Success {
			return false
		}
	}
	return true
}

// TotalShards returns the number of shards a Process call actually ran.
func (r ProcessorResults) TotalShards() int {
	return len(r.ShardResults)
}

// Topology is a fluent builder for a sharded stream-processing run. The
// zero value is not usable; build one with New.
type Topology struct {
	accounts   *storage.AccountStore
	log        *storage.TransactionLog
	policy     ErrorPolicy
	shards     int
	assignment ShardAssignment
	combinator Combinator
	sources    []EventSource
	metrics    *Metrics
}

// New builds a single-shard, round-robin, merging Topology over the given
// storage and error policy. Chain further configuration with the With*
// methods before calling Process.
func New(accounts *storage.AccountStore, log *storage.TransactionLog, policy ErrorPolicy) *Topology {
	return &Topology{
		accounts:   accounts,
		log:        log,
		policy:     policy,
		shards:     1,
		assignment: RoundRobinAssignment(),
		combinator: Merge,
	}
}

// WithShards sets the number of shards to run. Values below 1 are clamped
// to 1.
func (t *Topology) WithShards(n int) *Topology {
	if n < 1 {
		n = 1
	}
	t.shards = n
	return t
}

// WithShardAssignment overrides how streams are routed to shards.
func (t *Topology) WithShardAssignment(a ShardAssignment) *Topology {
	t.assignment = a
	return t
}

// WithStreamCombinator overrides how a shard's assigned streams are
// interleaved.
func (t *Topology) WithStreamCombinator(c Combinator) *Topology {
	t.combinator = c
	return t
}

// WithMetrics attaches optional counters, shared by every shard.
func (t *Topology) WithMetrics(m *Metrics) *Topology {
	t.metrics = m
	return t
}

// AddStream appends an EventSource to be processed.
func (t *Topology) AddStream(src EventSource) *Topology {
	t.sources = append(t.sources, src)
	return t
}

// Process runs every added stream, sharded and combined per the current
// configuration, and returns once all shards have finished. A shard whose
// error policy aborts stops there, leaving the rest of its streams unread.
func (t *Topology) Process(ctx context.Context) ProcessorResults {
	numStreams := len(t.sources)
	if numStreams == 0 {
		return ProcessorResults{}
	}

	shardStreams := t.assignShards(numStreams)

	results := make([]ShardResult, t.shards)
	var wg sync.WaitGroup
	for shardID, srcs := range shardStreams {
		wg.Add(1)
		go func(shardID int, srcs []EventSource) {
			defer wg.Done()
			results[shardID] = t.runShard(ctx, shardID, srcs)
		}(shardID, srcs)
	}
	wg.Wait()

	return ProcessorResults{ShardResults: results, TotalStreams: numStreams}
}

func (t *Topology) assignShards(numStreams int) [][]EventSource {
	shardStreams := make([][]EventSource, t.shards)
	chunkSize := (numStreams + t.shards - 1) / t.shards
	for i, src := range t.sources {
		var shardIdx int
		switch t.assignment.kind {
		case sequentialKind:
			if chunkSize == 0 {
				shardIdx = 0
			} else {
				shardIdx = i / chunkSize
				if shardIdx >= t.shards {
					shardIdx = t.shards - 1
				}
			}
		case customKind:
			shardIdx = t.assignment.fn(i) % t.shards
		default:
			shardIdx = i % t.shards
		}
		shardStreams[shardIdx] = append(shardStreams[shardIdx], src)
	}
	return shardStreams
}

func (t *Topology) runShard(ctx context.Context, shardID int, srcs []EventSource) ShardResult {
	if len(srcs) == 0 {
		return ShardResult{ShardID: shardID, StreamsProcessed: 0, Success: true}
	}

	shardCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var combined <-chan Envelope
	switch t.combinator {
	case Chain:
		combined = chainSources(shardCtx, srcs)
	default:
		combined = mergeSources(shardCtx, srcs)
	}

	proc := engine.New(t.accounts, t.log)
	success := t.drain(shardID, combined, proc)
	return ShardResult{ShardID: shardID, StreamsProcessed: len(srcs), Success: success}
}

func (t *Topology) drain(shardID int, combined <-chan Envelope, proc *engine.TransactionProcessor) bool {
	for env := range combined {
		if env.Err != nil {
			if t.metrics != nil {
				t.metrics.IOErrors.Inc()
			}
			if !t.policy.OnIOError(env.Err) {
				return false
			}
			continue
		}
		if err := proc.Process(env.Event); err != nil {
			if t.metrics != nil {
				t.metrics.EngineErrors.Inc()
			}
			if !t.policy.OnEngineError(err) {
				return false
			}
			continue
		}
		if t.metrics != nil {
			t.metrics.EventsProcessed.Inc()
		}
	}
	return true
}

// mergeSources concurrently fans in every source's channel. Order between
// different sources is not preserved; order within a single source is.
func mergeSources(ctx context.Context, srcs []EventSource) <-chan Envelope {
	out := make(chan Envelope)
	var wg sync.WaitGroup
	wg.Add(len(srcs))
	for _, s := range srcs {
		go func(s EventSource) {
			defer wg.Done()
			for env := range s.Events() {
				select {
				case out <- env:
				case <-ctx.Done():
					return
				}
			}
		}(s)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// chainSources processes each source fully, in order, before moving to the
// next, preserving order across the whole combined sequence.
func chainSources(ctx context.Context, srcs []EventSource) <-chan Envelope {
	out := make(chan Envelope)
	go func() {
		defer close(out)
		for _, s := range srcs {
			for env := range s.Events() {
				select {
				case out <- env:
				case <-ctx.Done():
					return
				}
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
	return out
}
