package sfxtree

// NodeCountMax returns the maximum number of non-root nodes in a suffix tree
// over n symbols. Every internal node branches at least twice and there is at
// most one leaf per suffix, so the count is <= 2n-1.
func NodeCountMax(n int) int {
	if n <= 0 {
		return 0
	}
	return 2*n - 1
}

// arenaCap returns the arena capacity to preallocate for n symbols,
// including the root record.
func arenaCap(n int) int {
	return NodeCountMax(n) + 1
}
