package testbench

import (
	"testing"
	"time"

	"github.com/i5heu/GoBoundedSeq/pkg/queue"
	"github.com/i5heu/GoBoundedSeq/pkg/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTimedTestDrainsContainer(t *testing.T) {
	q := queue.New[int]()
	q.SetMaxSize(64)

	accepted, _, elapsed := RunTimedTest[int](
		q,
		Config{AddsPerCycle: 2, PopsPerCycle: 1},
		50*time.Millisecond,
		func(i int) int { return i },
	)

	require.Greater(t, accepted, int64(0))
	assert.Equal(t, 0, q.Len(), "driver must drain the container before returning")
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
}

func TestRunTimedTestCountsRejections(t *testing.T) {
	st := stack.New[int]()
	st.SetMaxSize(4)

	// Add-only workload against a tiny bound: rejections must show up.
	accepted, rejected, _ := RunTimedTest[int](
		st,
		Config{AddsPerCycle: 4, PopsPerCycle: 0},
		20*time.Millisecond,
		func(i int) int { return i },
	)

	assert.Greater(t, rejected, int64(0))
	// The bound held 4 elements which the drain then popped.
	require.GreaterOrEqual(t, accepted, int64(4))
}

func TestRunTimedTestDefaultsDegenerateConfig(t *testing.T) {
	q := queue.New[int]()

	accepted, rejected, _ := RunTimedTest[int](
		q,
		Config{AddsPerCycle: 0, PopsPerCycle: -3},
		10*time.Millisecond,
		func(i int) int { return i },
	)

	assert.Greater(t, accepted, int64(0))
	assert.Zero(t, rejected)
	assert.Equal(t, 0, q.Len())
}
