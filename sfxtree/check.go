package sfxtree

import (
	"fmt"
	"slices"
)

// Check verifies the structural invariants of a finished tree:
//
//   - every non-root node has a non-empty label
//   - each child is keyed by the first symbol of its label and points back
//     at its parent
//   - the node count is within NodeCountMax
//   - every memoized suffix link spells the node's path minus its first
//     symbol
func (t *Tree[S]) Check() error {
	if n := t.NodeCount(); n > NodeCountMax(len(t.data)) {
		return fmt.Errorf("%w: nodes=%d, symbols=%d", ErrNodeCountExceeded, n, len(t.data))
	}

	for i := range t.nodes {
		x := Ref(i)
		if x != RootRef && t.edgeLen(x) <= 0 {
			return fmt.Errorf("%w: node=%d", ErrEmptyLabel, x)
		}
		for sym, c := range t.nodes[x].children {
			if t.nodes[c].parent != x {
				return fmt.Errorf("%w: node=%d, child=%d", ErrParentMismatch, x, c)
			}
			if first := t.data[t.nodes[c].label.Start]; first != sym {
				return fmt.Errorf("%w: node=%d, child=%d", ErrSiblingConflict, x, c)
			}
		}
	}

	// Paths are only meaningful once the structure above holds.
	for i := range t.nodes {
		x := Ref(i)
		link := t.nodes[x].link
		if link == NoRef {
			continue
		}
		if got, want := t.Path(link), t.Path(x)[1:]; !slices.Equal(got, want) {
			return fmt.Errorf("%w: node=%d, link=%d", ErrSuffixLinkMismatch, x, link)
		}
	}
	return nil
}
