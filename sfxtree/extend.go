package sfxtree

import "fmt"

// extension is the outcome of adding one symbol at a point.
type extension struct {
	rule Rule
	// next is the point reached by the added symbol. It becomes the active
	// point when the phase ends.
	next point
	// site is where the next extension's suffix link is taken from. After a
	// split it is the new internal node.
	site point
}

// addEdge extends the tree so that the suffix ending at data[i] is
// represented, starting from p.
func (t *Tree[S]) addEdge(p point, i int) extension {
	if p.isExplicit() {
		return t.addEdgeExplicit(p.node, i)
	}
	return t.addEdgeImplicit(p, i)
}

func (t *Tree[S]) addEdgeExplicit(x Ref, i int) extension {
	p := explicit(x)
	if _, ok := t.child(x, t.data[i]); ok {
		return extension{rule: RuleAlreadyPresent, next: t.trace(p, i, i+1), site: p}
	}
	if len(t.nodes[x].children) > 0 || x == RootRef {
		t.setChild(x, t.newNode(x, EdgeLabel{Start: i, End: OpenEnd}))
		return extension{rule: RuleNewBranch, next: t.trace(p, i, i+1), site: p}
	}
	// A leaf's open end already covers i.
	return extension{rule: RuleLeafExtended, next: p, site: p}
}

func (t *Tree[S]) addEdgeImplicit(p point, i int) extension {
	x := p.node
	if t.data[p.pos] == t.data[i] {
		rule := RuleLeafExtended
		if len(t.nodes[x].children) > 0 || p.pos < i {
			rule = RuleAlreadyPresent
		}
		return extension{rule: rule, next: t.trace(p, i, i+1), site: p}
	}

	mid := t.split(p)
	t.setChild(mid, t.newNode(mid, EdgeLabel{Start: i, End: OpenEnd}))
	site := explicit(mid)
	return extension{rule: RuleNewBranch, next: t.trace(site, i, i+1), site: site}
}

// split makes the implicit point p explicit. The new internal node takes the
// place of p.node under its parent and p.node becomes its only child, with
// its label now starting at p.pos. The new node's suffix link is left unset.
func (t *Tree[S]) split(p point) Ref {
	x := p.node
	l := t.nodes[x].label
	if p.pos <= l.Start || p.pos >= l.Resolve(t.leafEnd) {
		panic(fmt.Errorf("%w: split outside edge at %s", ErrInvariant, t.pointString(p)))
	}

	parent := t.nodes[x].parent
	mid := t.newNode(parent, EdgeLabel{Start: l.Start, End: p.pos})
	t.setChild(parent, mid)

	t.nodes[x].label.Start = p.pos
	t.setChild(mid, x)
	return mid
}
