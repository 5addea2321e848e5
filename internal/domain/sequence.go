package domain

import "sync/atomic"

// Sequence hands out monotonically increasing ids. Each owner (a service or a
// repository) keeps its own sequence; start is usually the highest id
// recovered at load time.
type Sequence struct {
	last atomic.Int64
}

func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

func (s *Sequence) Current() int64 {
	return s.last.Load()
}
