package boundarybench

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// TestBench_InvocationCount verifies the runner calls fn exactly
// warmup + iterations times, with a counting stub in place of a traversal.
func TestBench_InvocationCount(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	fn := func(Node) int64 {
		calls++
		return 0
	}

	for _, iterations := range []int{1, 7, 250} {
		calls = 0
		if _, err := Bench(&buf, "counting stub", fn, nil, iterations); err != nil {
			t.Fatalf("Bench(%d) failed: %v", iterations, err)
		}
		want := warmupCalls + iterations
		if calls != want {
			t.Errorf("iterations=%d: fn called %d times, want %d", iterations, calls, want)
		}
	}
}

// TestBench_InvalidArguments verifies preconditions are rejected before any
// invocation happens.
func TestBench_InvalidArguments(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	fn := func(Node) int64 {
		calls++
		return 0
	}

	for _, iterations := range []int{0, -3} {
		_, err := Bench(&buf, "bad iterations", fn, nil, iterations)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("iterations=%d: err = %v, want ErrInvalidArgument", iterations, err)
		}
	}
	if calls != 0 {
		t.Errorf("fn called %d times despite invalid iterations", calls)
	}

	_, err := Bench(&buf, "nil fn", nil, nil, 10)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil fn: err = %v, want ErrInvalidArgument", err)
	}

	if buf.Len() != 0 {
		t.Errorf("output written despite precondition failures: %q", buf.String())
	}
}

// TestBench_ResultLine checks the formatted output and that the returned
// measurement is sane for a real traversal.
func TestBench_ResultLine(t *testing.T) {
	p := NewNativeProvider()
	head, err := BuildList(p, 100)
	if err != nil {
		t.Fatalf("BuildList failed: %v", err)
	}

	var buf bytes.Buffer
	ns, err := Bench(&buf, "Go loop, Go nodes", p.NativeSum, head, 100)
	if err != nil {
		t.Fatalf("Bench failed: %v", err)
	}
	if ns < 0 {
		t.Errorf("negative measurement: %f", ns)
	}

	line := buf.String()
	if !strings.HasPrefix(line, "Go loop, Go nodes") {
		t.Errorf("line does not start with label: %q", line)
	}
	if !strings.HasSuffix(strings.TrimRight(line, "\n"), "ns/traversal") {
		t.Errorf("line does not end with unit: %q", line)
	}

	t.Logf("measured %.0f ns/traversal over 100 nodes", ns)
}
