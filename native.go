package boundarybench

import "fmt"

// goNode is the native-owned representation: an ordinary Go struct on the Go
// heap. This is the baseline every other representation is measured against.
type goNode struct {
	value int64
	next  *goNode
}

func (n *goNode) Value() int64 { return n.value }

func (n *goNode) Next() Node {
	if n.next == nil {
		return nil
	}
	return n.next
}

// NativeProvider builds plain Go linked lists. Its native sum is a raw
// pointer walk with direct field access, no interface in sight.
type NativeProvider struct{}

func NewNativeProvider() *NativeProvider { return &NativeProvider{} }

func (*NativeProvider) Name() string { return "Go" }

func (*NativeProvider) New(value int64, next Node) (Node, error) {
	var np *goNode
	if next != nil {
		gn, ok := next.(*goNode)
		if !ok {
			return nil, fmt.Errorf("next is %T, not a Go node: %w", next, ErrInvalidArgument)
		}
		np = gn
	}
	return &goNode{value: value, next: np}, nil
}

func (p *NativeProvider) NativeSum(head Node) int64 {
	if head == nil {
		return 0
	}
	gn, ok := head.(*goNode)
	if !ok {
		panic(wrongVariant(p, head))
	}
	var total int64
	for cur := gn; cur != nil; cur = cur.next {
		total += cur.value
	}
	return total
}

// Release is a no-op: the chain is ordinary Go memory, the collector
// reclaims it once unreferenced.
func (*NativeProvider) Release(Node) {}
