package sfxtree

import (
	"cmp"
	"maps"
	"slices"
)

type node[S cmp.Ordered] struct {
	label    EdgeLabel
	parent   Ref
	children map[S]Ref
	link     Ref
}

// Tree is a suffix tree over an immutable sequence of symbols.
//
// A Tree is read-only once Build returns and may be searched concurrently.
type Tree[S cmp.Ordered] struct {
	data []S

	// leafEnd is the resolved end of every OpenEnd label.
	leafEnd int

	nodes  []node[S]
	leaves int
}

func newTree[S cmp.Ordered](data []S) *Tree[S] {
	t := &Tree[S]{
		data:    data,
		leafEnd: len(data),
		nodes:   make([]node[S], 0, arenaCap(len(data))),
	}
	t.nodes = append(t.nodes, node[S]{
		label:  EdgeLabel{Start: 0, End: 0},
		parent: NoRef,
		link:   NoRef,
	})
	return t
}

func (t *Tree[S]) newNode(parent Ref, label EdgeLabel) Ref {
	ref := Ref(len(t.nodes))
	t.nodes = append(t.nodes, node[S]{
		label:  label,
		parent: parent,
		link:   NoRef,
	})
	if label.IsOpen() {
		t.leaves++
	}
	return ref
}

// setChild attaches child under parent, keyed by the first symbol of the
// child's label.
func (t *Tree[S]) setChild(parent, child Ref) {
	p := &t.nodes[parent]
	if p.children == nil {
		p.children = make(map[S]Ref, 2)
	}
	p.children[t.data[t.nodes[child].label.Start]] = child
	t.nodes[child].parent = parent
}

func (t *Tree[S]) child(x Ref, sym S) (Ref, bool) {
	c, ok := t.nodes[x].children[sym]
	return c, ok
}

func (t *Tree[S]) edgeEnd(x Ref) int {
	return t.nodes[x].label.Resolve(t.leafEnd)
}

func (t *Tree[S]) edgeLen(x Ref) int {
	return t.nodes[x].label.Len(t.leafEnd)
}

// Root returns the root reference.
func (t *Tree[S]) Root() Ref { return RootRef }

// Len returns the number of indexed symbols.
func (t *Tree[S]) Len() int { return len(t.data) }

// NodeCount returns the number of explicit nodes, excluding the root.
func (t *Tree[S]) NodeCount() int { return len(t.nodes) - 1 }

// LeafCount returns the number of leaves.
func (t *Tree[S]) LeafCount() int { return t.leaves }

// Parent returns the parent of x, or NoRef for the root.
func (t *Tree[S]) Parent(x Ref) Ref { return t.nodes[x].parent }

// IsLeaf reports whether x is a leaf.
func (t *Tree[S]) IsLeaf(x Ref) bool { return t.nodes[x].label.IsOpen() }

// EdgeLabel returns the stored label of the edge leading into x.
func (t *Tree[S]) EdgeLabel(x Ref) EdgeLabel { return t.nodes[x].label }

// Label returns the symbols spelled by the edge leading into x. The result is
// a view of the indexed data and must not be modified.
func (t *Tree[S]) Label(x Ref) []S {
	l := t.nodes[x].label
	end := l.Resolve(t.leafEnd)
	return t.data[l.Start:end:end]
}

// Path returns a copy of the symbols spelled from the root to x.
func (t *Tree[S]) Path(x Ref) []S {
	var depth int
	for r := x; r != RootRef; r = t.nodes[r].parent {
		depth += t.edgeLen(r)
	}
	out := make([]S, depth)
	for r := x; r != RootRef; r = t.nodes[r].parent {
		l := t.Label(r)
		depth -= len(l)
		copy(out[depth:], l)
	}
	return out
}

// Children returns the children of x ordered by first symbol.
func (t *Tree[S]) Children(x Ref) []Ref {
	kids := t.nodes[x].children
	if len(kids) == 0 {
		return nil
	}
	out := make([]Ref, 0, len(kids))
	for _, sym := range slices.Sorted(maps.Keys(kids)) {
		out = append(out, kids[sym])
	}
	return out
}

// SuffixLink returns the memoized suffix link of x, or NoRef if none has been
// resolved to an explicit node.
func (t *Tree[S]) SuffixLink(x Ref) Ref { return t.nodes[x].link }

// Walk visits every explicit node depth first, parents before children and
// siblings in symbol order. Returning false from fn skips the subtree of x.
func (t *Tree[S]) Walk(fn func(x Ref) bool) {
	stack := []Ref{RootRef}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(x) {
			continue
		}
		kids := t.Children(x)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
}
