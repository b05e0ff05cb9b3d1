// Package stack provides the LIFO front-end over the bounded sequence
// base: Add pushes at the tail, Peek and Pop work on the tail.
package stack

import (
	"github.com/i5heu/GoBoundedSeq/internal/seq"
	"github.com/i5heu/GoBoundedSeq/pkg/boundseq"
)

// Stack is a last-in-first-out bounded container. It keeps no state of
// its own; every operation is a policy wrapper over boundseq.Sequence.
type Stack[T comparable] struct {
	s *boundseq.Sequence[T]
}

// Compile-time checks that the shared and workload surfaces stay complete.
var (
	_ seq.ContainerValidationInterface[int] = (*Stack[int])(nil)
	_ seq.WorkloadInterface[int]            = (*Stack[int])(nil)
)

// New returns an empty unbounded stack that allows duplicates.
func New[T comparable]() *Stack[T] {
	return &Stack[T]{s: boundseq.New[T]()}
}

// Add pushes an element onto the top of the stack.
func (st *Stack[T]) Add(v T) bool {
	return st.s.Insert(st.s.Len(), v)
}

// Peek returns the top element without removing it. It fails on an
// empty stack; the bounds check on index Len()-1 rejects the call, an
// empty stack never yields a wrapped or stale value.
func (st *Stack[T]) Peek() (T, bool) {
	return st.s.Get(st.s.Len() - 1)
}

// Pop removes the top element. It fails on an empty stack.
func (st *Stack[T]) Pop() bool {
	return st.s.Remove(st.s.Len() - 1)
}

// Len returns the number of stored elements.
func (st *Stack[T]) Len() int { return st.s.Len() }

// IsEmpty reports whether the stack holds no elements.
func (st *Stack[T]) IsEmpty() bool { return st.s.IsEmpty() }

// IsFull reports whether the stack has reached its size limit.
func (st *Stack[T]) IsFull() bool { return st.s.IsFull() }

// MaxSize returns the size limit, 0 meaning unbounded.
func (st *Stack[T]) MaxSize() int { return st.s.MaxSize() }

// SetMaxSize sets the size limit; shrinking evicts from the top down.
func (st *Stack[T]) SetMaxSize(n int) { st.s.SetMaxSize(n) }

// AllowDuplicates returns whether equal elements may coexist.
func (st *Stack[T]) AllowDuplicates() bool { return st.s.AllowDuplicates() }

// SetAllowDuplicates toggles the duplicate policy; switching to false
// silently purges later duplicates.
func (st *Stack[T]) SetAllowDuplicates(allow bool) { st.s.SetAllowDuplicates(allow) }

// Contains reports whether any element equals v.
func (st *Stack[T]) Contains(v T) bool { return st.s.Contains(v) }

// Get returns the element at the given index (0 is the bottom), false
// when out of bounds.
func (st *Stack[T]) Get(index int) (T, bool) { return st.s.Get(index) }

// Values returns a bottom-to-top snapshot of the elements.
func (st *Stack[T]) Values() []T { return st.s.Values() }

// Clear removes all elements.
func (st *Stack[T]) Clear() bool { return st.s.Clear() }

// OnChange registers the post-mutation callback, nil to disable.
func (st *Stack[T]) OnChange(fn func()) { st.s.OnChange(fn) }

// Extend pushes all elements of other in order; all-or-nothing on
// capacity and duplicate admission.
func (st *Stack[T]) Extend(other *boundseq.Sequence[T]) bool { return st.s.Extend(other) }

// Copy replaces the contents with the elements of other in order.
func (st *Stack[T]) Copy(other *boundseq.Sequence[T]) bool { return st.s.Copy(other) }

// Seq returns the underlying sequence, usable as the source argument of
// Extend and Copy on another container.
func (st *Stack[T]) Seq() *boundseq.Sequence[T] { return st.s }
