package sfxtree

// EdgeLabel is the [Start, End) range of the indexed data spelled by the edge
// leading into a node. End is OpenEnd for leaf edges.
type EdgeLabel struct {
	Start int
	End   int
}

// IsOpen reports whether the label belongs to a leaf edge.
func (l EdgeLabel) IsOpen() bool { return l.End == OpenEnd }

// Resolve returns the concrete end of the label given the shared leaf end.
func (l EdgeLabel) Resolve(leafEnd int) int {
	if l.End == OpenEnd {
		return leafEnd
	}
	return l.End
}

// Len returns the label length given the shared leaf end.
func (l EdgeLabel) Len(leafEnd int) int {
	return l.Resolve(leafEnd) - l.Start
}
