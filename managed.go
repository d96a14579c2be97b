package boundarybench

import "fmt"

// dynNode is the managed-object representation: a dict-backed object in the
// spirit of a dynamic language's object model. Field reads are map lookups
// plus type assertions. That is also its own native access path: the
// dynamic representation has no faster one to fall back to.
type dynNode map[string]any

func (n dynNode) Value() int64 { return n["value"].(int64) }

func (n dynNode) Next() Node {
	next := n["next"]
	if next == nil {
		return nil
	}
	return next.(dynNode)
}

// ManagedProvider builds dict-backed linked lists.
type ManagedProvider struct{}

func NewManagedProvider() *ManagedProvider { return &ManagedProvider{} }

func (*ManagedProvider) Name() string { return "Dyn" }

func (*ManagedProvider) New(value int64, next Node) (Node, error) {
	node := dynNode{"value": value, "next": nil}
	if next != nil {
		dn, ok := next.(dynNode)
		if !ok {
			return nil, fmt.Errorf("next is %T, not a dyn node: %w", next, ErrInvalidArgument)
		}
		node["next"] = dn
	}
	return node, nil
}

func (p *ManagedProvider) NativeSum(head Node) int64 {
	if head == nil {
		return 0
	}
	dn, ok := head.(dynNode)
	if !ok {
		panic(wrongVariant(p, head))
	}
	var total int64
	for cur := dn; cur != nil; {
		total += cur["value"].(int64)
		next := cur["next"]
		if next == nil {
			break
		}
		cur = next.(dynNode)
	}
	return total
}

// Release is a no-op: dict objects are ordinary Go memory.
func (*ManagedProvider) Release(Node) {}
