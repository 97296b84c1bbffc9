package sfxtree

import "slices"

// Search reports whether pattern occurs as a contiguous run of the indexed
// data. The empty pattern is always present.
//
// Unlike the internal tracer, Search does not assume the path exists: the
// first symbol selects the edge and the remainder of the edge is compared up
// to the shorter of the edge and the unmatched pattern.
func (t *Tree[S]) Search(pattern []S) bool {
	x := RootRef
	for k := 0; k < len(pattern); {
		c, ok := t.child(x, pattern[k])
		if !ok {
			return false
		}
		label := t.Label(c)
		n := min(len(label), len(pattern)-k)
		if !slices.Equal(label[:n], pattern[k:k+n]) {
			return false
		}
		k += n
		x = c
	}
	return true
}

// SearchString reports whether s occurs in a byte tree.
func SearchString(t *Tree[byte], s string) bool {
	return t.Search([]byte(s))
}
