package boundarybench

import "fmt"

// BuildList constructs a singly linked list of n nodes with values 0..n-1
// head to tail. It builds back to front: the node for n-1 first with no
// successor, then each predecessor linking to the chain built so far.
// Pure construction: no timing, no I/O.
func BuildList(p Provider, n int) (Node, error) {
	if n <= 0 {
		return nil, fmt.Errorf("list length must be positive, got %d: %w", n, ErrInvalidArgument)
	}

	head, err := p.New(int64(n-1), nil)
	if err != nil {
		return nil, fmt.Errorf("building %s node %d: %w", p.Name(), n-1, err)
	}
	for i := n - 2; i >= 0; i-- {
		head, err = p.New(int64(i), head)
		if err != nil {
			return nil, fmt.Errorf("building %s node %d: %w", p.Name(), i, err)
		}
	}
	return head, nil
}
