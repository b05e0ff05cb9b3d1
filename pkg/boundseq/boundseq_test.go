package boundseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendN(t *testing.T, s *Sequence[int], vals ...int) {
	t.Helper()
	for _, v := range vals {
		require.True(t, s.Insert(s.Len(), v))
	}
}

func TestNewSequenceDefaults(t *testing.T) {
	s := New[int]()
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())
	assert.False(t, s.IsFull())
	assert.Equal(t, 0, s.MaxSize())
	assert.True(t, s.AllowDuplicates())
}

func TestInsertKeepsInsertionOrder(t *testing.T) {
	s := New[int]()
	vals := []int{7, 3, 9, 3, 1}
	appendN(t, s, vals...)

	require.Equal(t, len(vals), s.Len())
	for i, want := range vals {
		got, ok := s.Get(i)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestInsertAtIndexShiftsRight(t *testing.T) {
	s := New[int]()
	appendN(t, s, 1, 2, 4)

	require.True(t, s.Insert(2, 3))
	assert.Equal(t, []int{1, 2, 3, 4}, s.Values())

	require.True(t, s.Insert(0, 0))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, s.Values())
}

func TestInsertRejectsInvalidIndex(t *testing.T) {
	s := New[int]()
	appendN(t, s, 1, 2)

	assert.False(t, s.Insert(-1, 9))
	assert.False(t, s.Insert(3, 9))
	assert.Equal(t, []int{1, 2}, s.Values())
}

func TestInsertRejectsWhenFull(t *testing.T) {
	s := New[int]()
	s.SetMaxSize(3)
	appendN(t, s, 1, 2, 3)

	require.True(t, s.IsFull())
	assert.False(t, s.Insert(s.Len(), 4))
	assert.False(t, s.Insert(0, 4))
	assert.Equal(t, 3, s.Len())
}

func TestInsertRejectsDuplicateUnderPolicy(t *testing.T) {
	s := New[int]()
	s.SetAllowDuplicates(false)
	appendN(t, s, 1, 2, 3)

	assert.False(t, s.Insert(s.Len(), 2))
	assert.Equal(t, []int{1, 2, 3}, s.Values())

	// The same value is accepted again once it is gone.
	require.True(t, s.Remove(1))
	assert.True(t, s.Insert(s.Len(), 2))
}

func TestSetReplacesInPlace(t *testing.T) {
	s := New[int]()
	appendN(t, s, 1, 2, 3)

	require.True(t, s.Set(1, 20))
	assert.Equal(t, []int{1, 20, 3}, s.Values())
	assert.Equal(t, 3, s.Len())

	assert.False(t, s.Set(-1, 9))
	assert.False(t, s.Set(3, 9))
	assert.Equal(t, []int{1, 20, 3}, s.Values())
}

func TestRemoveShiftsLeft(t *testing.T) {
	s := New[int]()
	appendN(t, s, 1, 2, 3, 4)

	require.True(t, s.Remove(1))
	assert.Equal(t, []int{1, 3, 4}, s.Values())

	require.True(t, s.Remove(0))
	assert.Equal(t, []int{3, 4}, s.Values())

	assert.False(t, s.Remove(2))
	assert.False(t, s.Remove(-1))
	assert.Equal(t, []int{3, 4}, s.Values())
}

func TestGetOutOfBounds(t *testing.T) {
	s := New[int]()
	appendN(t, s, 5)

	v, ok := s.Get(1)
	assert.False(t, ok)
	assert.Zero(t, v)

	v, ok = s.Get(-1)
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestContains(t *testing.T) {
	s := New[string]()
	require.True(t, s.Insert(0, "a"))
	require.True(t, s.Insert(1, "b"))

	assert.True(t, s.Contains("a"))
	assert.True(t, s.Contains("b"))
	assert.False(t, s.Contains("c"))
}

func TestClear(t *testing.T) {
	s := New[int]()
	appendN(t, s, 1, 2, 3)

	require.True(t, s.Clear())
	assert.True(t, s.IsEmpty())

	// Clearing an empty sequence is still a success.
	assert.True(t, s.Clear())
}

func TestSetMaxSizeEvictsFromTail(t *testing.T) {
	s := New[int]()
	appendN(t, s, 1, 2, 3, 4)

	s.SetMaxSize(2)
	assert.Equal(t, []int{1, 2}, s.Values())
	assert.Equal(t, 2, s.MaxSize())
	assert.True(t, s.IsFull())

	// Lifting the bound makes room again.
	s.SetMaxSize(0)
	assert.False(t, s.IsFull())
	assert.True(t, s.Insert(s.Len(), 3))
}

func TestSetAllowDuplicatesPurgesKeepingFirst(t *testing.T) {
	s := New[int]()
	appendN(t, s, 1, 2, 1, 3, 2)

	s.SetAllowDuplicates(false)
	assert.Equal(t, []int{1, 2, 3}, s.Values())
	assert.False(t, s.AllowDuplicates())
}

func TestDuplicatePurgeHandlesRuns(t *testing.T) {
	s := New[int]()
	appendN(t, s, 4, 4, 4, 4)

	s.SetAllowDuplicates(false)
	assert.Equal(t, []int{4}, s.Values())
}

func TestReverse(t *testing.T) {
	s := New[int]()
	appendN(t, s, 1, 2, 3)

	require.True(t, s.Reverse())
	assert.Equal(t, []int{3, 2, 1}, s.Values())

	// Reverse is its own inverse.
	require.True(t, s.Reverse())
	assert.Equal(t, []int{1, 2, 3}, s.Values())
}

func TestReverseShortSequenceIsNoop(t *testing.T) {
	s := New[int]()
	assert.True(t, s.Reverse())

	appendN(t, s, 42)
	assert.True(t, s.Reverse())
	assert.Equal(t, []int{42}, s.Values())
}

func TestSortFunc(t *testing.T) {
	s := New[int]()
	appendN(t, s, 5, 3, 3, 1, 4)

	less := func(a, b int) bool { return a < b }
	require.True(t, s.SortFunc(less))
	assert.Equal(t, []int{1, 3, 3, 4, 5}, s.Values())

	// Sorting a sorted sequence changes nothing.
	require.True(t, s.SortFunc(less))
	assert.Equal(t, []int{1, 3, 3, 4, 5}, s.Values())
}

func TestSortFuncIsStable(t *testing.T) {
	type entry struct {
		key     int
		payload string
	}
	s := New[entry]()
	in := []entry{
		{2, "first-2"},
		{1, "first-1"},
		{2, "second-2"},
		{1, "second-1"},
		{2, "third-2"},
	}
	for _, e := range in {
		require.True(t, s.Insert(s.Len(), e))
	}

	require.True(t, s.SortFunc(func(a, b entry) bool { return a.key < b.key }))

	want := []entry{
		{1, "first-1"},
		{1, "second-1"},
		{2, "first-2"},
		{2, "second-2"},
		{2, "third-2"},
	}
	assert.Equal(t, want, s.Values())
}

func TestSortFuncLargerThanOneRunWidth(t *testing.T) {
	s := New[int]()
	// 9 elements forces several width-doubling passes including a
	// trailing run shorter than the width.
	appendN(t, s, 9, 7, 5, 3, 1, 8, 6, 4, 2)

	require.True(t, s.SortFunc(func(a, b int) bool { return a < b }))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, s.Values())
}

func TestExtend(t *testing.T) {
	dst := New[int]()
	appendN(t, dst, 1, 2)

	src := New[int]()
	appendN(t, src, 3, 4)

	require.True(t, dst.Extend(src))
	assert.Equal(t, []int{1, 2, 3, 4}, dst.Values())
	// The source is untouched.
	assert.Equal(t, []int{3, 4}, src.Values())
}

func TestExtendRejectsOverCapacityAtomically(t *testing.T) {
	dst := New[int]()
	dst.SetMaxSize(3)
	appendN(t, dst, 1, 2)

	src := New[int]()
	appendN(t, src, 3, 4)

	assert.False(t, dst.Extend(src))
	assert.Equal(t, []int{1, 2}, dst.Values())
}

func TestExtendRejectsDuplicateBatchAtomically(t *testing.T) {
	dst := New[int]()
	dst.SetAllowDuplicates(false)
	appendN(t, dst, 1, 2)

	// Conflict with an element already held.
	src := New[int]()
	appendN(t, src, 3, 2)
	assert.False(t, dst.Extend(src))
	assert.Equal(t, []int{1, 2}, dst.Values())

	// Conflict within the batch itself.
	src2 := New[int]()
	appendN(t, src2, 5, 5)
	assert.False(t, dst.Extend(src2))
	assert.Equal(t, []int{1, 2}, dst.Values())

	// A clean batch goes through.
	src3 := New[int]()
	appendN(t, src3, 3, 4)
	require.True(t, dst.Extend(src3))
	assert.Equal(t, []int{1, 2, 3, 4}, dst.Values())
}

func TestCopy(t *testing.T) {
	dst := New[int]()
	appendN(t, dst, 9, 9, 9)

	src := New[int]()
	appendN(t, src, 1, 2, 3)

	require.True(t, dst.Copy(src))
	assert.Equal(t, src.Values(), dst.Values())
}

func TestCopyRejectsOverCapacityWithoutMutating(t *testing.T) {
	dst := New[int]()
	dst.SetMaxSize(2)
	appendN(t, dst, 8, 9)

	src := New[int]()
	appendN(t, src, 1, 2, 3)

	assert.False(t, dst.Copy(src))
	assert.Equal(t, []int{8, 9}, dst.Values())
}

func TestCopyRejectsInternallyDuplicatedBatch(t *testing.T) {
	dst := New[int]()
	dst.SetAllowDuplicates(false)
	appendN(t, dst, 8, 9)

	src := New[int]()
	appendN(t, src, 1, 1)

	assert.False(t, dst.Copy(src))
	assert.Equal(t, []int{8, 9}, dst.Values())
}

func TestOnChangeFiresAfterSuccessfulMutations(t *testing.T) {
	s := New[int]()
	calls := 0
	s.OnChange(func() { calls++ })

	require.True(t, s.Insert(0, 1)) // +1
	require.True(t, s.Insert(1, 2)) // +1
	require.True(t, s.Set(0, 10))   // +1
	require.True(t, s.Remove(0))    // +1
	require.True(t, s.Clear())      // +1 (was non-empty)
	assert.Equal(t, 5, calls)

	// Clearing an empty sequence succeeds silently.
	require.True(t, s.Clear())
	assert.Equal(t, 5, calls)
}

func TestOnChangeSilentOnFailuresAndReads(t *testing.T) {
	s := New[int]()
	s.SetMaxSize(1)
	calls := 0
	s.OnChange(func() { calls++ })

	require.True(t, s.Insert(0, 1))
	require.Equal(t, 1, calls)

	s.Insert(0, 2)  // full, fails
	s.Remove(5)     // out of bounds, fails
	s.Set(9, 1)     // out of bounds, fails
	s.Get(0)        // read
	s.Contains(1)   // read
	s.Len()         // read
	assert.Equal(t, 1, calls)
}

func TestOnChangeFiresPerEviction(t *testing.T) {
	s := New[int]()
	appendN(t, s, 1, 2, 3, 4)
	calls := 0
	s.OnChange(func() { calls++ })

	s.SetMaxSize(2)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []int{1, 2}, s.Values())
}

func TestDuplicatePurgeIsSilent(t *testing.T) {
	s := New[int]()
	appendN(t, s, 1, 2, 1, 3, 2)
	calls := 0
	s.OnChange(func() { calls++ })

	s.SetAllowDuplicates(false)
	assert.Equal(t, []int{1, 2, 3}, s.Values())
	assert.Equal(t, 0, calls)
}

func TestReverseAndSortNotifyOnce(t *testing.T) {
	s := New[int]()
	appendN(t, s, 3, 1, 2)
	calls := 0
	s.OnChange(func() { calls++ })

	require.True(t, s.Reverse())
	assert.Equal(t, 1, calls)

	require.True(t, s.SortFunc(func(a, b int) bool { return a < b }))
	assert.Equal(t, 2, calls)

	// A sort that moves nothing still notifies once.
	require.True(t, s.SortFunc(func(a, b int) bool { return a < b }))
	assert.Equal(t, 3, calls)
}

func TestOnChangeNilDisables(t *testing.T) {
	s := New[int]()
	calls := 0
	s.OnChange(func() { calls++ })
	require.True(t, s.Insert(0, 1))
	require.Equal(t, 1, calls)

	s.OnChange(nil)
	require.True(t, s.Insert(0, 2))
	assert.Equal(t, 1, calls)
}
