package scanlog

import (
	"context"
	"sync"
)

// Stream is an unbounded FIFO queue of scan log entries. Publishing never
// blocks: a slow or absent consumer does not stall the producer. The producer
// closes the stream when the scan finishes.
type Stream struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []Entry
	closed  bool
}

// NewStream constructs an open stream ready for publishing.
func NewStream() *Stream {
	s := &Stream{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Publish appends an entry. Publishing to a closed stream is a no-op.
func (s *Stream) Publish(entry Entry) {
	if s == nil {
		return
	}
	s.mu.Lock()
	if !s.closed {
		s.pending = append(s.pending, entry)
		s.cond.Broadcast()
	}
	s.mu.Unlock()
}

// Close marks the stream complete. Pending entries remain readable; Next
// reports ok=false once they are drained.
func (s *Stream) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()
}

// Next blocks until an entry is available, the stream is closed and drained,
// or the context ends. ok is false when no further entries will arrive.
func (s *Stream) Next(ctx context.Context) (Entry, bool, error) {
	if s == nil {
		return Entry{}, false, nil
	}

	cancelWait := make(chan struct{})
	if ctx != nil && ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				s.cond.Broadcast()
			case <-cancelWait:
			}
		}()
	}
	defer close(cancelWait)

	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if len(s.pending) > 0 {
			entry := s.pending[0]
			s.pending = s.pending[1:]
			return entry, true, nil
		}
		if s.closed {
			return Entry{}, false, nil
		}
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return Entry{}, false, err
			}
		}
		s.cond.Wait()
	}
}

// Drain returns all currently buffered entries without blocking.
func (s *Stream) Drain() []Entry {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = nil
	return out
}
