package boundarybench

// ManagedSum walks any chain through the Node interface alone. This is the
// one deliberately generic traversal: a nil-checked loop over dynamic
// dispatch, identical regardless of which provider built the list, so each
// representation pays its full per-read boundary cost here.
func ManagedSum(head Node) int64 {
	var total int64
	for cur := head; cur != nil; cur = cur.Next() {
		total += cur.Value()
	}
	return total
}
