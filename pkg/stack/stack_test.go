package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLIFOOrder(t *testing.T) {
	st := New[int]()
	for _, v := range []int{1, 2, 3} {
		require.True(t, st.Add(v))
	}

	for _, want := range []int{3, 2, 1} {
		got, ok := st.Peek()
		require.True(t, ok)
		assert.Equal(t, want, got)
		require.True(t, st.Pop())
	}
	assert.True(t, st.IsEmpty())
}

func TestPeekDoesNotRemove(t *testing.T) {
	st := New[string]()
	require.True(t, st.Add("bottom"))
	require.True(t, st.Add("top"))

	for i := 0; i < 3; i++ {
		v, ok := st.Peek()
		require.True(t, ok)
		assert.Equal(t, "top", v)
	}
	assert.Equal(t, 2, st.Len())
}

func TestEmptyStackPeekAndPopFail(t *testing.T) {
	st := New[int]()
	calls := 0
	st.OnChange(func() { calls++ })

	v, ok := st.Peek()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.False(t, st.Pop())
	// Failed operations never reach the callback.
	assert.Equal(t, 0, calls)
}

func TestBoundedStack(t *testing.T) {
	st := New[int]()
	st.SetMaxSize(2)
	require.True(t, st.Add(1))
	require.True(t, st.Add(2))
	assert.False(t, st.Add(3))

	require.True(t, st.Pop())
	assert.True(t, st.Add(3))
}

func TestStackDuplicatePolicy(t *testing.T) {
	st := New[int]()
	st.SetAllowDuplicates(false)
	require.True(t, st.Add(7))
	assert.False(t, st.Add(7))
	assert.Equal(t, 1, st.Len())
}

func TestStackOnChange(t *testing.T) {
	st := New[int]()
	calls := 0
	st.OnChange(func() { calls++ })

	require.True(t, st.Add(1))
	st.Peek() // read, silent
	require.True(t, st.Pop())
	assert.Equal(t, 2, calls)
}

func TestStackGetIndexesFromBottom(t *testing.T) {
	st := New[int]()
	require.True(t, st.Add(10))
	require.True(t, st.Add(20))

	v, ok := st.Get(0)
	require.True(t, ok)
	assert.Equal(t, 10, v)
	v, ok = st.Get(1)
	require.True(t, ok)
	assert.Equal(t, 20, v)
}
