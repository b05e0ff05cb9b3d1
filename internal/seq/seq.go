package seq

// ContainerValidationInterface is a *type constraint* that pins the shared
// surface every front-end (list, stack, queue) must forward from the base
// sequence. We never store a front-end in a runtime interface—
// we only use ContainerValidationInterface at compile time to ensure matching signatures.
type ContainerValidationInterface[T comparable] interface {
	// Len returns the number of stored elements.
	Len() int

	// IsEmpty reports whether the container holds no elements.
	IsEmpty() bool

	// IsFull reports whether the container has reached its size limit.
	IsFull() bool

	// MaxSize and SetMaxSize expose the size limit, 0 meaning unbounded.
	MaxSize() int
	SetMaxSize(int)

	// AllowDuplicates and SetAllowDuplicates expose the duplicate policy.
	AllowDuplicates() bool
	SetAllowDuplicates(bool)

	// Contains reports whether any element equals the argument.
	Contains(T) bool

	// Get returns the element at the given index, false when out of bounds.
	Get(int) (T, bool)

	// Values returns an ordered snapshot of the elements.
	Values() []T

	// Clear removes all elements.
	Clear() bool

	// OnChange registers the post-mutation callback, nil to disable.
	OnChange(func())
}

// WorkloadInterface is the Add/Peek/Pop/Len subset the benchmark driver
// exercises. Stack and Queue satisfy it directly; List is adapted in the
// bench command (Append under the Add name).
type WorkloadInterface[T comparable] interface {
	// Add inserts an element at the container's insertion end.
	Add(T) bool

	// Peek returns the element at the container's removal end without
	// removing it, false when the container is empty.
	Peek() (T, bool)

	// Pop removes the element at the container's removal end, false when
	// the container is empty.
	Pop() bool

	// Len returns the number of stored elements.
	Len() int
}
