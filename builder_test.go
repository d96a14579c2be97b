package boundarybench

import (
	"errors"
	"testing"
)

// TestBuildList_Shape walks each built list head to tail and checks it holds
// exactly n nodes with values 0..n-1 in ascending order.
func TestBuildList_Shape(t *testing.T) {
	for _, p := range allProviders() {
		t.Run(p.Name(), func(t *testing.T) {
			for _, n := range []int{1, 2, 5, 64} {
				head, err := BuildList(p, n)
				if err != nil {
					t.Fatalf("BuildList(%d) failed: %v", n, err)
				}

				count := 0
				for cur := head; cur != nil; cur = cur.Next() {
					if got := cur.Value(); got != int64(count) {
						t.Errorf("n=%d: node %d has value %d", n, count, got)
					}
					count++
					if count > n {
						t.Fatalf("n=%d: walked past %d nodes, list too long or cyclic", n, n)
					}
				}
				if count != n {
					t.Errorf("n=%d: walked %d nodes", n, count)
				}

				p.Release(head)
			}
		})
	}
}

// TestBuildList_InvalidLength verifies non-positive lengths fail before any
// allocation.
func TestBuildList_InvalidLength(t *testing.T) {
	p := NewNativeProvider()

	for _, n := range []int{0, -5} {
		head, err := BuildList(p, n)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("BuildList(%d): err = %v, want ErrInvalidArgument", n, err)
		}
		if head != nil {
			t.Errorf("BuildList(%d): got a node alongside the error", n)
		}
	}
}

// TestBuildList_FiveNodes is the small end-to-end scenario: n=5 must sum to
// 10 on every provider through both drivers.
func TestBuildList_FiveNodes(t *testing.T) {
	for _, p := range allProviders() {
		head, err := BuildList(p, 5)
		if err != nil {
			t.Fatalf("%s: BuildList failed: %v", p.Name(), err)
		}

		if got := p.NativeSum(head); got != 10 {
			t.Errorf("%s: NativeSum = %d, want 10", p.Name(), got)
		}
		if got := ManagedSum(head); got != 10 {
			t.Errorf("%s: ManagedSum = %d, want 10", p.Name(), got)
		}

		p.Release(head)
	}
}

func TestExpectedSum(t *testing.T) {
	cases := []struct {
		n    int
		want int64
	}{
		{1, 0},
		{2, 1},
		{5, 10},
		{1000, 499500},
	}
	for _, tc := range cases {
		if got := ExpectedSum(tc.n); got != tc.want {
			t.Errorf("ExpectedSum(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}
