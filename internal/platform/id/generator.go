package id

import "sync/atomic"

// Generator hands out integer identifiers that are never reused.
type Generator interface {
	NextID() int64
}

// Sequence is a monotonic Generator. Unlike deriving ids from a collection
// size, it keeps counting after deletions.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a Sequence whose first NextID is start+1.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

func (s *Sequence) NextID() int64 {
	return s.last.Add(1)
}
