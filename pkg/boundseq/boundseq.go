// Package boundseq implements the shared base for the bounded sequence
// containers: ordered element storage with an optional size limit, a
// configurable duplicate policy and an on-change notification hook.
// The list, stack and queue packages are thin policy wrappers over it.
package boundseq

// Sequence is an ordered, index-addressable container with an optional
// maximum size and duplicate rejection. All fallible operations report
// success as a bool; there is no panic-based control flow on the
// contract surface.
//
// A Sequence is not safe for concurrent use. The on-change callback runs
// synchronously on the mutating call stack and must not mutate the
// sequence it observes.
type Sequence[T comparable] struct {
	elements        []T
	maxSize         int
	allowDuplicates bool
	onChange        func()
}

// New returns an empty unbounded sequence that allows duplicates and has
// no on-change callback.
func New[T comparable]() *Sequence[T] {
	return &Sequence[T]{
		allowDuplicates: true,
	}
}

// OnChange sets the callback invoked after every successful mutation
// (insert, remove, set, clear, sort, reverse and capacity evictions).
// Passing nil disables the callback. Failed operations, read-only
// queries and the duplicate purge never trigger it.
//
// The sequence holds the callback until it is replaced or cleared; the
// caller keeps whatever state it closes over alive for that long.
func (s *Sequence[T]) OnChange(fn func()) {
	s.onChange = fn
}

func (s *Sequence[T]) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Len returns the number of stored elements.
func (s *Sequence[T]) Len() int {
	return len(s.elements)
}

// IsEmpty reports whether the sequence holds no elements.
func (s *Sequence[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

// IsFull reports whether the sequence has reached its maximum size.
// An unbounded sequence (MaxSize 0) is never full.
func (s *Sequence[T]) IsFull() bool {
	if s.maxSize == 0 {
		return false
	}
	return len(s.elements) == s.maxSize
}

// MaxSize returns the current size limit, 0 meaning unbounded.
func (s *Sequence[T]) MaxSize() int {
	return s.maxSize
}

// SetMaxSize sets the size limit. 0 (or any negative value) lifts the
// limit. Shrinking below the current length evicts elements from the
// tail one at a time until the sequence complies; every eviction is a
// regular removal and triggers the on-change callback individually.
func (s *Sequence[T]) SetMaxSize(n int) {
	if n < 0 {
		n = 0
	}
	s.maxSize = n

	if s.maxSize == 0 {
		return
	}
	for len(s.elements) > s.maxSize {
		s.Remove(len(s.elements) - 1)
	}
}

// AllowDuplicates returns whether equal elements may coexist.
func (s *Sequence[T]) AllowDuplicates() bool {
	return s.allowDuplicates
}

// SetAllowDuplicates toggles the duplicate policy. Switching to false
// immediately purges later duplicates, keeping the first occurrence of
// each value and preserving the order of survivors. The purge is
// silent: it does NOT trigger the on-change callback, unlike every
// other mutation. Callers relying on change notifications must account
// for this asymmetry.
func (s *Sequence[T]) SetAllowDuplicates(allow bool) {
	s.allowDuplicates = allow

	if !s.allowDuplicates {
		s.removeDuplicates()
	}
}

// Contains reports whether any stored element equals v.
func (s *Sequence[T]) Contains(v T) bool {
	for i := range s.elements {
		if s.elements[i] == v {
			return true
		}
	}
	return false
}

// Get returns the element at index. The second result is false and the
// first is the zero value when index is out of bounds.
func (s *Sequence[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(s.elements) {
		var zero T
		return zero, false
	}
	return s.elements[index], true
}

// Values returns a copy of the stored elements in order.
func (s *Sequence[T]) Values() []T {
	out := make([]T, len(s.elements))
	copy(out, s.elements)
	return out
}

// Set replaces the element at index. It fails on an out-of-bounds index
// and, as a post-check, when the stored value does not compare equal to
// the input afterwards (guards a non-reflexive ==, e.g. a struct
// carrying a NaN field). Triggers the on-change callback on success.
func (s *Sequence[T]) Set(index int, v T) bool {
	if index < 0 || index >= len(s.elements) {
		return false
	}

	s.elements[index] = v

	if s.elements[index] != v {
		return false
	}

	s.notify()
	return true
}

// Insert places v at index, shifting later elements right. index ==
// Len() appends. It fails when the sequence is full, when v would
// violate the no-duplicates policy, when index is out of [0, Len()], or
// when the structural post-check (length grew by exactly one) fails.
// Triggers the on-change callback on success.
func (s *Sequence[T]) Insert(index int, v T) bool {
	if s.IsFull() {
		return false
	}
	if !s.allowDuplicates && s.Contains(v) {
		return false
	}
	if index < 0 || index > len(s.elements) {
		return false
	}

	sizeBefore := len(s.elements)

	s.elements = append(s.elements, v)
	copy(s.elements[index+1:], s.elements[index:])
	s.elements[index] = v

	if len(s.elements) != sizeBefore+1 {
		return false
	}

	s.notify()
	return true
}

// Remove deletes the element at index, shifting later elements left.
// It fails on an out-of-bounds index or when the structural post-check
// (length shrank by exactly one) fails. Triggers the on-change callback
// on success.
func (s *Sequence[T]) Remove(index int) bool {
	if index < 0 || index >= len(s.elements) {
		return false
	}

	sizeBefore := len(s.elements)

	copy(s.elements[index:], s.elements[index+1:])
	var zero T
	s.elements[len(s.elements)-1] = zero
	s.elements = s.elements[:len(s.elements)-1]

	if len(s.elements) != sizeBefore-1 {
		return false
	}

	s.notify()
	return true
}

// Clear removes all elements. Clearing an already-empty sequence is a
// successful no-op that does not trigger the on-change callback; a
// clear that removed elements triggers it once.
func (s *Sequence[T]) Clear() bool {
	sizeBefore := len(s.elements)

	s.elements = nil

	if !s.IsEmpty() {
		return false
	}
	if sizeBefore == 0 {
		return true
	}

	s.notify()
	return true
}

// removeDuplicates keeps the first occurrence of each value and drops
// all later equal elements, preserving the order of survivors. The
// inner scan re-checks the same position after a removal because a
// later element shifted into it.
func (s *Sequence[T]) removeDuplicates() {
	if len(s.elements) < 2 {
		return
	}

	for a := 0; a < len(s.elements)-1; a++ {
		elemA := s.elements[a]
		b := a + 1
		for b < len(s.elements) {
			if s.elements[b] != elemA {
				b++
				continue
			}
			copy(s.elements[b:], s.elements[b+1:])
			var zero T
			s.elements[len(s.elements)-1] = zero
			s.elements = s.elements[:len(s.elements)-1]
		}
	}
}

// admitBatch reports whether all of vals can be appended to s without
// violating the duplicate policy, assuming s currently holds base
// pre-existing elements (base == nil means the sequence will be empty
// when the appends happen, as in Copy).
func (s *Sequence[T]) admitBatch(base []T, vals []T) bool {
	if s.allowDuplicates {
		return true
	}
	seen := make(map[T]struct{}, len(base)+len(vals))
	for _, v := range base {
		seen[v] = struct{}{}
	}
	for _, v := range vals {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// Extend appends all elements of other, in order, to the tail of s.
// Admission is all-or-nothing: the call fails without touching s when
// the combined size would exceed the size limit, or when the
// no-duplicates policy would reject any batch element (already present
// in s, or repeated within other). After admission each element goes
// through Insert; an insert failure at that point is an internal error
// and aborts with false.
func (s *Sequence[T]) Extend(other *Sequence[T]) bool {
	if s.maxSize > 0 && len(s.elements)+other.Len() > s.maxSize {
		return false
	}
	if !s.admitBatch(s.elements, other.elements) {
		return false
	}

	for i := 0; i < other.Len(); i++ {
		v, ok := other.Get(i)
		if !ok {
			return false
		}
		if !s.Insert(s.Len(), v) {
			return false
		}
	}
	return true
}

// Copy replaces the contents of s with the elements of other, in order.
// The call fails without touching s when other's size exceeds the size
// limit of s, or when the no-duplicates policy would reject the batch
// (other containing internal duplicates). On admission s is cleared
// first, then every element of other is appended through Insert.
func (s *Sequence[T]) Copy(other *Sequence[T]) bool {
	if s.maxSize > 0 && other.Len() > s.maxSize {
		return false
	}
	if !s.admitBatch(nil, other.elements) {
		return false
	}

	s.Clear()

	for i := 0; i < other.Len(); i++ {
		v, ok := other.Get(i)
		if !ok {
			return false
		}
		if !s.Insert(s.Len(), v) {
			return false
		}
	}
	return true
}

// Reverse reverses the element order. Sequences shorter than two
// elements are left untouched and the call succeeds without notifying.
// Otherwise the storage is rebuilt back-to-front wholesale and the
// on-change callback fires exactly once.
func (s *Sequence[T]) Reverse() bool {
	if len(s.elements) < 2 {
		return true
	}

	reversed := make([]T, 0, len(s.elements))
	for i := len(s.elements); i > 0; i-- {
		reversed = append(reversed, s.elements[i-1])
	}
	s.elements = reversed

	s.notify()
	return true
}

// SortFunc sorts the elements ascending according to less using an
// iterative bottom-up merge sort. The sort is stable: elements that
// compare equal keep their relative order. Sequences shorter than two
// elements are left untouched and the call succeeds without notifying;
// otherwise the on-change callback fires exactly once at the end, even
// when no element actually moved.
func (s *Sequence[T]) SortFunc(less func(a, b T) bool) bool {
	size := len(s.elements)
	if size < 2 {
		return true
	}

	buffer := make([]T, 0, size)

	for width := 1; width < size; width *= 2 {
		for left := 0; left < size; left += 2 * width {
			mid := min(left+width, size)
			right := min(left+2*width, size)
			i := left
			j := mid

			buffer = buffer[:0]

			for i < mid && j < right {
				// left head wins ties to keep the merge stable
				if !less(s.elements[j], s.elements[i]) {
					buffer = append(buffer, s.elements[i])
					i++
				} else {
					buffer = append(buffer, s.elements[j])
					j++
				}
			}
			for i < mid {
				buffer = append(buffer, s.elements[i])
				i++
			}
			for j < right {
				buffer = append(buffer, s.elements[j])
				j++
			}

			copy(s.elements[left:], buffer)
		}
	}

	s.notify()
	return true
}
