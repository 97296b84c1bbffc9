package sfxtree

import "fmt"

// point is a location in the tree. For an explicit node pos is explicitPos.
// Otherwise the location is implicit: it lies on the edge leading into node,
// and pos is the data position of the next symbol along that edge, strictly
// between the edge's start and end.
type point struct {
	node Ref
	pos  int
}

func explicit(x Ref) point { return point{node: x, pos: explicitPos} }

func (p point) isExplicit() bool { return p.pos == explicitPos }

func (p point) isRoot() bool { return p.node == RootRef && p.isExplicit() }

// trace walks data[start:end] from p and returns the point reached.
//
// The path MUST exist. Whole edges are skipped by length alone and only the
// first symbol of each edge is used to select it.
func (t *Tree[S]) trace(p point, start, end int) point {
	x := p.node
	if !p.isExplicit() {
		rest := t.edgeEnd(x) - p.pos
		if end-start < rest {
			return point{node: x, pos: p.pos + end - start}
		}
		start += rest
	}
	for start < end {
		c, ok := t.child(x, t.data[start])
		if !ok {
			panic(fmt.Errorf("%w: node=%d, pos=%d", ErrTraceMissing, x, start))
		}
		n := t.edgeLen(c)
		if end-start < n {
			return point{node: c, pos: t.nodes[c].label.Start + end - start}
		}
		start += n
		x = c
	}
	return explicit(x)
}

func (t *Tree[S]) pointString(p point) string {
	if p.isExplicit() {
		return fmt.Sprintf("node(%d)", p.node)
	}
	return fmt.Sprintf("node(%d)@%d", p.node, p.pos)
}
