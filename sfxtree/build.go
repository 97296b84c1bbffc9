package sfxtree

import (
	"cmp"
	"slices"
)

// Build constructs the suffix tree of data. data is copied; an empty input
// yields a tree holding only the root.
func Build[S cmp.Ordered](data []S, opts ...Option) *Tree[S] {
	return build(slices.Clone(data), opts...)
}

// BuildString constructs the suffix tree over the bytes of s.
func BuildString(s string, opts ...Option) *Tree[byte] {
	return build([]byte(s), opts...)
}

// build takes ownership of data.
func build[S cmp.Ordered](data []S, opts ...Option) *Tree[S] {
	o := BuildOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	t := newTree(data)

	var extensions int

	// The active point carries over between phases. Each phase starts where
	// the previous one found its symbol already present.
	active := explicit(RootRef)
	for i := range t.data {
		for {
			ext := t.addEdge(active, i)
			extensions++
			if o.Extension != nil {
				o.Extension(i, ext.rule)
			}
			if ext.rule == RuleAlreadyPresent || active.isRoot() {
				active = ext.next
				break
			}
			active = t.suffixLink(ext.site)
		}
	}

	if o.Log != nil {
		o.Log.Debugf(
			"sfxtree: built symbols=%d, nodes=%d, leaves=%d, extensions=%d",
			len(t.data), t.NodeCount(), t.leaves, extensions)
	}
	return t
}
