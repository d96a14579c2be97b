// Package boundarybench measures the cost of crossing a language boundary
// while walking a linked list.
//
// # Overview
//
// Three node representations hold the same list of values 0..N-1:
//
//   - Go structs on the Go heap (native-owned, the baseline)
//   - C structs on the C heap behind cgo (foreign-wrapped)
//   - dict-backed dynamic objects (managed-object)
//
// Two traversal drivers sum each list:
//
//   - each representation's own native loop (direct field access)
//   - one generic loop over the shared Node interface (dynamic dispatch)
//
// The 3×2 matrix quantifies per-node overhead of generic attribute access
// and of reading memory owned by a foreign allocator, relative to an all-Go
// pointer walk.
//
// # Quick Start
//
//	cfg := boundarybench.DefaultConfig()
//	if err := boundarybench.NewRunner(cfg).Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// The report goes to cfg.Out as plain text: environment lines, a
// correctness confirmation, six timings, ratios against the Go-native
// baseline, and a falsification check on the expected overhead direction.
//
// # Measurement protocol
//
// Each timing takes exactly 1000 discarded warmup calls, then one timed run
// of the configured iteration count on a monotonic clock. One sample per
// configuration, single-threaded, no statistics: the output is meant for
// relative comparison between the six cells, not for rigorous estimation.
// Correctness of every (driver, representation) pair is verified against
// the closed form N*(N-1)/2 before any timing runs; a mismatch aborts the
// whole report.
package boundarybench
