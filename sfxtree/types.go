package sfxtree

import "errors"

// Ref is a node arena index.
type Ref uint32

// NoRef marks an absent node reference.
const NoRef = ^Ref(0)

// RootRef is always the first record in the arena.
const RootRef Ref = 0

// OpenEnd marks the end of a leaf edge. It resolves to the end of the indexed
// data.
const OpenEnd = -1

// explicitPos is the point position used for explicit nodes.
const explicitPos = -1

// Rule identifies which Ukkonen extension rule applied.
type Rule uint8

const (
	// RuleLeafExtended: the point was the end of a leaf, which the open end
	// already covers.
	RuleLeafExtended Rule = 1
	// RuleNewBranch: a new leaf was attached, splitting an edge if needed.
	RuleNewBranch Rule = 2
	// RuleAlreadyPresent: the symbol already follows the point.
	RuleAlreadyPresent Rule = 3
)

func (r Rule) String() string {
	switch r {
	case RuleLeafExtended:
		return "leaf-extended"
	case RuleNewBranch:
		return "new-branch"
	case RuleAlreadyPresent:
		return "already-present"
	}
	return "unknown"
}

var (
	ErrTraceMissing = errors.New("sfxtree: traced path not present")
	ErrInvariant    = errors.New("sfxtree: internal invariant violated")

	ErrEmptyLabel         = errors.New("sfxtree: non-root node has an empty edge label")
	ErrSiblingConflict    = errors.New("sfxtree: sibling edges share a first symbol")
	ErrParentMismatch     = errors.New("sfxtree: parent reference does not match child edge")
	ErrNodeCountExceeded  = errors.New("sfxtree: node count exceeds 2n-1")
	ErrSuffixLinkMismatch = errors.New("sfxtree: suffix link does not drop exactly the first symbol")
)
