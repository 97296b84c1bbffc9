package sfxtree

import "cmp"

// ExportEdge is a diagnostic snapshot of one edge and everything below it.
type ExportEdge[S cmp.Ordered] struct {
	Label    []S
	Children []ExportEdge[S]
}

// Export returns the edges leaving the root, recursively, ordered by first
// symbol. Labels are copies. The shape is for inspection only.
func (t *Tree[S]) Export() []ExportEdge[S] {
	return t.exportChildren(RootRef)
}

func (t *Tree[S]) exportChildren(x Ref) []ExportEdge[S] {
	kids := t.Children(x)
	if len(kids) == 0 {
		return nil
	}
	out := make([]ExportEdge[S], 0, len(kids))
	for _, c := range kids {
		out = append(out, ExportEdge[S]{
			Label:    append([]S(nil), t.Label(c)...),
			Children: t.exportChildren(c),
		})
	}
	return out
}

// LabelMap renders the tree as nested maps keyed by edge label, starting at
// the root's children. Leaves map to an empty map.
func LabelMap[S cmp.Ordered](t *Tree[S], label func([]S) string) map[string]any {
	var render func(x Ref) map[string]any
	render = func(x Ref) map[string]any {
		m := map[string]any{}
		for _, c := range t.Children(x) {
			m[label(t.Label(c))] = render(c)
		}
		return m
	}
	return render(RootRef)
}

// StringLabelMap is LabelMap for byte trees with labels rendered as strings.
func StringLabelMap(t *Tree[byte]) map[string]any {
	return LabelMap(t, func(l []byte) string { return string(l) })
}
