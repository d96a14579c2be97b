package boundarybench

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for precondition violations: non-positive
// list lengths or iteration counts, nil bench functions, or a node handed
// to a provider that did not create it.
var ErrInvalidArgument = errors.New("invalid argument")

// Node is the shared read capability over all three list representations.
// The managed traversal loop sees nothing else; every provider pays its own
// cost behind these two calls.
//
// Next returns nil for the last node of a chain. Implementations must return
// an untyped nil, never a typed nil wrapped in the interface.
type Node interface {
	Value() int64
	Next() Node
}

// Provider constructs nodes of one representation and sums a chain using
// that representation's own field access, with no interface dispatch.
type Provider interface {
	// Name identifies the representation in reports and error messages.
	Name() string

	// New allocates a node. next must be nil or a node this provider
	// created; a foreign node is ErrInvalidArgument. The pointed-to node
	// is never mutated.
	New(value int64, next Node) (Node, error)

	// NativeSum iteratively sums the chain starting at head using the
	// provider's direct access path. A nil head sums to 0. Passing a node
	// from a different provider is a programming error and panics.
	NativeSum(head Node) int64

	// Release frees the whole chain starting at head. Required for
	// representations whose memory the Go runtime does not own; a no-op
	// for the rest. head must be the head node: releasing a mid-chain
	// node leaks its predecessors.
	Release(head Node)
}

// wrongVariant builds the panic message for a node handed to the wrong
// provider's native access path.
func wrongVariant(p Provider, node Node) string {
	return fmt.Sprintf("boundarybench: %s provider given foreign node %T", p.Name(), node)
}
