// Package list provides the index-addressable front-end over the bounded
// sequence base, plus in-place reverse and stable sort.
package list

import (
	"cmp"

	"github.com/i5heu/GoBoundedSeq/internal/seq"
	"github.com/i5heu/GoBoundedSeq/pkg/boundseq"
)

// List is an index-addressable bounded sequence. It keeps no state of
// its own; every operation is a policy wrapper over boundseq.Sequence.
type List[T comparable] struct {
	s *boundseq.Sequence[T]
}

// Compile-time check that the shared surface stays complete.
var _ seq.ContainerValidationInterface[int] = (*List[int])(nil)

// New returns an empty unbounded list that allows duplicates.
func New[T comparable]() *List[T] {
	return &List[T]{s: boundseq.New[T]()}
}

// Append adds an element at the end of the list.
func (l *List[T]) Append(v T) bool {
	return l.s.Insert(l.s.Len(), v)
}

// Insert places an element at the given index, shifting later elements
// right. Index Len() appends.
func (l *List[T]) Insert(index int, v T) bool {
	return l.s.Insert(index, v)
}

// Remove deletes the element at the given index, shifting later
// elements left.
func (l *List[T]) Remove(index int) bool {
	return l.s.Remove(index)
}

// Set replaces the element at the given index.
func (l *List[T]) Set(index int, v T) bool {
	return l.s.Set(index, v)
}

// Reverse reverses the element order in place, firing the on-change
// callback once. Lists shorter than two elements are a successful no-op.
func (l *List[T]) Reverse() bool {
	return l.s.Reverse()
}

// SortFunc stably sorts the list ascending according to less, firing
// the on-change callback once. Lists shorter than two elements are a
// successful no-op. For element types with a natural order use Sort.
func (l *List[T]) SortFunc(less func(a, b T) bool) bool {
	return l.s.SortFunc(less)
}

// Sort stably sorts a list of naturally ordered elements ascending.
// It is a package-level function rather than a method so that List can
// hold any comparable type while sorting stays restricted to ordered
// ones.
func Sort[T cmp.Ordered](l *List[T]) bool {
	return l.s.SortFunc(func(a, b T) bool { return a < b })
}

// Len returns the number of stored elements.
func (l *List[T]) Len() int { return l.s.Len() }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.s.IsEmpty() }

// IsFull reports whether the list has reached its size limit.
func (l *List[T]) IsFull() bool { return l.s.IsFull() }

// MaxSize returns the size limit, 0 meaning unbounded.
func (l *List[T]) MaxSize() int { return l.s.MaxSize() }

// SetMaxSize sets the size limit; shrinking evicts from the tail.
func (l *List[T]) SetMaxSize(n int) { l.s.SetMaxSize(n) }

// AllowDuplicates returns whether equal elements may coexist.
func (l *List[T]) AllowDuplicates() bool { return l.s.AllowDuplicates() }

// SetAllowDuplicates toggles the duplicate policy; switching to false
// silently purges later duplicates.
func (l *List[T]) SetAllowDuplicates(allow bool) { l.s.SetAllowDuplicates(allow) }

// Contains reports whether any element equals v.
func (l *List[T]) Contains(v T) bool { return l.s.Contains(v) }

// Get returns the element at the given index, false when out of bounds.
func (l *List[T]) Get(index int) (T, bool) { return l.s.Get(index) }

// Values returns an ordered snapshot of the elements.
func (l *List[T]) Values() []T { return l.s.Values() }

// Clear removes all elements.
func (l *List[T]) Clear() bool { return l.s.Clear() }

// OnChange registers the post-mutation callback, nil to disable.
func (l *List[T]) OnChange(fn func()) { l.s.OnChange(fn) }

// Extend appends all elements of other in order; all-or-nothing on
// capacity and duplicate admission.
func (l *List[T]) Extend(other *boundseq.Sequence[T]) bool { return l.s.Extend(other) }

// Copy replaces the contents with the elements of other in order.
func (l *List[T]) Copy(other *boundseq.Sequence[T]) bool { return l.s.Copy(other) }

// Seq returns the underlying sequence, usable as the source argument of
// Extend and Copy on another container.
func (l *List[T]) Seq() *boundseq.Sequence[T] { return l.s }
