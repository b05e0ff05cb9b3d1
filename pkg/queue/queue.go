// Package queue provides the FIFO front-end over the bounded sequence
// base: Add enqueues at the tail, Peek and Pop work on the head.
package queue

import (
	"github.com/i5heu/GoBoundedSeq/internal/seq"
	"github.com/i5heu/GoBoundedSeq/pkg/boundseq"
)

// Queue is a first-in-first-out bounded container. It keeps no state of
// its own; every operation is a policy wrapper over boundseq.Sequence.
type Queue[T comparable] struct {
	s *boundseq.Sequence[T]
}

// Compile-time checks that the shared and workload surfaces stay complete.
var (
	_ seq.ContainerValidationInterface[int] = (*Queue[int])(nil)
	_ seq.WorkloadInterface[int]            = (*Queue[int])(nil)
)

// New returns an empty unbounded queue that allows duplicates.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{s: boundseq.New[T]()}
}

// Add enqueues an element at the tail of the queue.
func (q *Queue[T]) Add(v T) bool {
	return q.s.Insert(q.s.Len(), v)
}

// Peek returns the head element without removing it. It fails on an
// empty queue.
func (q *Queue[T]) Peek() (T, bool) {
	return q.s.Get(0)
}

// Pop removes the head element. It fails on an empty queue.
func (q *Queue[T]) Pop() bool {
	return q.s.Remove(0)
}

// Len returns the number of stored elements.
func (q *Queue[T]) Len() int { return q.s.Len() }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.s.IsEmpty() }

// IsFull reports whether the queue has reached its size limit.
func (q *Queue[T]) IsFull() bool { return q.s.IsFull() }

// MaxSize returns the size limit, 0 meaning unbounded.
func (q *Queue[T]) MaxSize() int { return q.s.MaxSize() }

// SetMaxSize sets the size limit; shrinking evicts from the tail, the
// most recently enqueued elements first.
func (q *Queue[T]) SetMaxSize(n int) { q.s.SetMaxSize(n) }

// AllowDuplicates returns whether equal elements may coexist.
func (q *Queue[T]) AllowDuplicates() bool { return q.s.AllowDuplicates() }

// SetAllowDuplicates toggles the duplicate policy; switching to false
// silently purges later duplicates.
func (q *Queue[T]) SetAllowDuplicates(allow bool) { q.s.SetAllowDuplicates(allow) }

// Contains reports whether any element equals v.
func (q *Queue[T]) Contains(v T) bool { return q.s.Contains(v) }

// Get returns the element at the given index (0 is the head), false
// when out of bounds.
func (q *Queue[T]) Get(index int) (T, bool) { return q.s.Get(index) }

// Values returns a head-to-tail snapshot of the elements.
func (q *Queue[T]) Values() []T { return q.s.Values() }

// Clear removes all elements.
func (q *Queue[T]) Clear() bool { return q.s.Clear() }

// OnChange registers the post-mutation callback, nil to disable.
func (q *Queue[T]) OnChange(fn func()) { q.s.OnChange(fn) }

// Extend enqueues all elements of other in order; all-or-nothing on
// capacity and duplicate admission.
func (q *Queue[T]) Extend(other *boundseq.Sequence[T]) bool { return q.s.Extend(other) }

// Copy replaces the contents with the elements of other in order.
func (q *Queue[T]) Copy(other *boundseq.Sequence[T]) bool { return q.s.Copy(other) }

// Seq returns the underlying sequence, usable as the source argument of
// Extend and Copy on another container.
func (q *Queue[T]) Seq() *boundseq.Sequence[T] { return q.s }
