package streaming

import "github.com/ledgerflow/txnengine/domain"

// SliceSource is an EventSource backed by an in-memory slice, primarily
// useful for tests and for composing small in-process pipelines without a
// CSV file on disk.
type SliceSource []Envelope

// Events returns a channel that yields every envelope in order, then
// closes.
func (s SliceSource) Events() <-chan Envelope {
	out := make(chan Envelope, len(s))
	for _, env := range s {
		out <- env
	}
	close(out)
	return out
}

// FromEvents builds a SliceSource from plain events, none of which carry an
// ingestion error.
func FromEvents(events ...domain.Event) SliceSource {
	envs := make(SliceSource, len(events))
	for i, ev := range events {
		envs[i] = Envelope{Event: ev}
	}
	return envs
}
