package boundarybench

import (
	"fmt"
	"io"
	"time"
)

// SumFunc is any traversal under measurement: a provider's NativeSum or the
// generic ManagedSum.
type SumFunc func(Node) int64

// warmupCalls is the fixed number of discarded invocations before timing
// starts. It amortizes one-time costs on the access path (branch predictor
// and cache warming, wrapper allocation paths reaching steady state) so the
// timed phase sees steady-state behavior only.
const warmupCalls = 1000

// benchSink keeps traversal results observable so the compiler cannot
// eliminate the loops being measured.
var benchSink int64

// Bench measures the steady-state cost of one fn(head) call.
//
// It runs warmupCalls discarded invocations, then times exactly iterations
// sequential invocations with a monotonic clock and returns elapsed/iterations
// in nanoseconds. One sample per configuration, single-threaded, no retries:
// this is a relative-comparison tool, not a statistics engine.
//
// Preconditions are checked before any invocation: iterations must be
// positive and fn non-nil, otherwise ErrInvalidArgument.
//
// Side effect: writes one formatted result line to w.
func Bench(w io.Writer, label string, fn SumFunc, head Node, iterations int) (float64, error) {
	if iterations <= 0 {
		return 0, fmt.Errorf("iterations must be positive, got %d: %w", iterations, ErrInvalidArgument)
	}
	if fn == nil {
		return 0, fmt.Errorf("fn must not be nil: %w", ErrInvalidArgument)
	}

	var sink int64
	for i := 0; i < warmupCalls; i++ {
		sink += fn(head)
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		sink += fn(head)
	}
	elapsed := time.Since(start)
	benchSink = sink

	nsPerCall := float64(elapsed.Nanoseconds()) / float64(iterations)
	fmt.Fprintf(w, "%-40s  %8.0f ns/traversal\n", label, nsPerCall)
	return nsPerCall, nil
}
