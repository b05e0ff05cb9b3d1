package testbench

import (
	"context"
	"time"

	"github.com/i5heu/GoBoundedSeq/internal/seq"
)

// Config describes the shape of one workload cycle: how many adds and
// how many pops the driver issues per iteration. The containers are
// single-threaded by contract, so the driver runs one goroutine and the
// knobs are about operation mix, not concurrency.
type Config struct {
	AddsPerCycle int
	PopsPerCycle int
}

// RunTimedTest drives a steady add/peek/pop workload against the
// container for the given duration and measures how many mutations are
// actually accepted in that window. A bounded container rejects adds
// while full; those are counted separately. Once the timer expires the
// driver drains the container, popping until empty.
// Returns the accepted mutation count, the rejected add count, and the
// actual elapsed time.
func RunTimedTest[T comparable, C seq.WorkloadInterface[T]](
	c C,
	cfg Config,
	testDuration time.Duration,
	valueGenerator func(int) T,
) (acceptedCount int64, rejectedCount int64, elapsed time.Duration) {

	adds := cfg.AddsPerCycle
	if adds < 1 {
		adds = 1
	}
	pops := cfg.PopsPerCycle
	if pops < 0 {
		pops = 0
	}

	// Create a context that will cancel after testDuration.
	ctx, cancel := context.WithTimeout(context.Background(), testDuration)
	defer cancel()

	var accepted int64
	var rejected int64

	start := time.Now()

	valIndex := 0
	for ctx.Err() == nil {
		for i := 0; i < adds; i++ {
			v := valueGenerator(valIndex)
			valIndex++
			if c.Add(v) {
				accepted++
			} else {
				rejected++
			}
		}
		// A peek between the add and pop phases keeps the read path warm
		// without counting towards the mutation totals.
		c.Peek()
		for i := 0; i < pops; i++ {
			if c.Pop() {
				accepted++
			}
		}
	}

	// Drain whatever the workload left behind.
	for c.Pop() {
		accepted++
	}

	elapsed = time.Since(start)
	return accepted, rejected, elapsed
}
