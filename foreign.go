package boundarybench

/*
#include <stdlib.h>

typedef struct cnode {
	long value;
	struct cnode *next;
} cnode;

static cnode *cnode_new(long value, cnode *next) {
	cnode *n = malloc(sizeof(cnode));
	if (n == NULL) {
		abort();
	}
	n->value = value;
	n->next = next;
	return n;
}

static long cnode_value(cnode *n) {
	return n->value;
}

static cnode *cnode_next(cnode *n) {
	return n->next;
}

static long cnode_sum(cnode *head) {
	long total = 0;
	for (cnode *cur = head; cur != NULL; cur = cur->next) {
		total += cur->value;
	}
	return total;
}

static void cnode_free_chain(cnode *head) {
	cnode *cur = head;
	while (cur != NULL) {
		cnode *next = cur->next;
		free(cur);
		cur = next;
	}
}
*/
import "C"

import "fmt"

// cgoNode wraps a handle into C-allocated memory. Every interface read
// crosses the cgo boundary, and advancing allocates a fresh wrapper for the
// next handle. That per-node cost is exactly what the cross benchmarks
// measure.
type cgoNode struct {
	ptr *C.cnode
}

func (n *cgoNode) Value() int64 { return int64(C.cnode_value(n.ptr)) }

func (n *cgoNode) Next() Node {
	p := C.cnode_next(n.ptr)
	if p == nil {
		return nil
	}
	return &cgoNode{ptr: p}
}

// ForeignProvider builds chains on the C heap. Its native sum enters C once
// and traverses there with direct struct access, so the only boundary cost
// on that path is the single call in.
//
// Chains are malloc'd and must be released explicitly; the Go collector
// never sees them.
type ForeignProvider struct{}

func NewForeignProvider() *ForeignProvider { return &ForeignProvider{} }

func (*ForeignProvider) Name() string { return "C" }

func (*ForeignProvider) New(value int64, next Node) (Node, error) {
	var np *C.cnode
	if next != nil {
		cn, ok := next.(*cgoNode)
		if !ok {
			return nil, fmt.Errorf("next is %T, not a C node: %w", next, ErrInvalidArgument)
		}
		np = cn.ptr
	}
	return &cgoNode{ptr: C.cnode_new(C.long(value), np)}, nil
}

func (p *ForeignProvider) NativeSum(head Node) int64 {
	if head == nil {
		return 0
	}
	cn, ok := head.(*cgoNode)
	if !ok {
		panic(wrongVariant(p, head))
	}
	return int64(C.cnode_sum(cn.ptr))
}

// Release frees the C chain iteratively from head and clears the head
// handle, so releasing the same head twice is a no-op. Wrappers previously
// obtained via Next still dangle after release and must not be read.
func (p *ForeignProvider) Release(head Node) {
	if head == nil {
		return
	}
	cn, ok := head.(*cgoNode)
	if !ok {
		panic(wrongVariant(p, head))
	}
	C.cnode_free_chain(cn.ptr)
	cn.ptr = nil
}
