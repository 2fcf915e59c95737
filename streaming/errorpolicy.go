package streaming

import "log"

// ErrorPolicy decides whether a shard should keep going or abort after a
// failure. Returning true means continue to the next event; false means
// stop processing this shard's stream immediately.
type ErrorPolicy interface {
	OnIOError(err error) bool
	OnEngineError(err error) bool
}

// SkipErrors logs every failure and always continues.
type SkipErrors struct{}

func (SkipErrors) OnIOError(err error) bool {
	log.Printf("streaming: skipping io error: %v", err)
	return true
}

func (SkipErrors) OnEngineError(err error) bool {
	log.Printf("streaming: skipping engine error: %v", err)
	return true
}

// AbortOnError logs the first failure and stops the shard there.
type AbortOnError struct{}

func (AbortOnError) OnIOError(err error) bool {
	log.Printf("streaming: aborting shard on io error: %v", err)
	return false
}

func (AbortOnError) OnEngineError(err error) bool {
	log.Printf("streaming: aborting shard on engine error: %v", err)
	return false
}

// SilentSkip behaves like SkipErrors but never logs anything.
type SilentSkip struct{}

func (SilentSkip) OnIOError(error) bool     { return true }
func (SilentSkip) OnEngineError(error) bool { return true }

// PolicyFunc adapts two plain functions into an ErrorPolicy, for callers
// that want custom per-error-class behavior without declaring a type. A
// nil function defaults to "continue".
type PolicyFunc struct {
	IOError     func(error) bool
	EngineError func(error) bool
}

func (f PolicyFunc) OnIOError(err error) bool {
	if f.IOError == nil {
		return true
	}
	return f.IOError(err)
}

func (f PolicyFunc) OnEngineError(err error) bool {
	if f.EngineError == nil {
		return true
	}
	return f.EngineError(err)
}
