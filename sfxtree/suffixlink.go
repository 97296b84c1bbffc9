package sfxtree

import "fmt"

// suffixLink returns the point spelling the same string as p without its
// first symbol.
//
// The link is derived from the parent: if the parent is the root the label
// is traced from the root with its first symbol dropped, otherwise it is
// traced from the parent's own suffix link. Links of explicit nodes are
// memoized once they resolve to an explicit node; a link to an implicit point
// could be invalidated by a later split and is recomputed instead.
func (t *Tree[S]) suffixLink(p point) point {
	x := p.node
	if x == RootRef {
		panic(fmt.Errorf("%w: suffix link of the root", ErrInvariant))
	}

	end := p.pos
	if p.isExplicit() {
		if l := t.nodes[x].link; l != NoRef {
			return explicit(l)
		}
		end = t.edgeEnd(x)
	}

	start := t.nodes[x].label.Start
	parent := t.nodes[x].parent

	var link point
	if parent == RootRef {
		link = t.trace(explicit(RootRef), start+1, end)
	} else {
		link = t.trace(t.suffixLink(explicit(parent)), start, end)
	}

	if p.isExplicit() && link.isExplicit() {
		t.nodes[x].link = link.node
	}
	return link
}
