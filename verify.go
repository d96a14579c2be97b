package boundarybench

import "fmt"

// ExpectedSum is the closed form for a list of length n built by BuildList:
// 0 + 1 + ... + (n-1) = n*(n-1)/2.
func ExpectedSum(n int) int64 {
	return int64(n) * int64(n-1) / 2
}

// VerifyProvider cross-checks one provider's chain against the closed form,
// through both its native sum and the generic interface traversal. Any
// mismatch is a defect in the provider, never a recoverable condition: the
// returned error names the diverging function and the delta, and the caller
// must abort before reporting any timing.
func VerifyProvider(p Provider, head Node, n int) error {
	want := ExpectedSum(n)

	if got := p.NativeSum(head); got != want {
		return fmt.Errorf("%s NativeSum diverged: got %d, want %d (off by %d)",
			p.Name(), got, want, got-want)
	}
	if got := ManagedSum(head); got != want {
		return fmt.Errorf("ManagedSum over %s nodes diverged: got %d, want %d (off by %d)",
			p.Name(), got, want, got-want)
	}
	return nil
}
