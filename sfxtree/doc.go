package sfxtree

/*

# Suffix tree index (Ukkonen, linear time)

This package builds a suffix tree over a fixed input sequence using Ukkonen's
online construction and answers exact substring membership queries against it.

Conventions used throughout the package:

- nodes live in a single arena and are addressed by `Ref`, with `NoRef` for
  an absent node
- edge labels are `[Start, End)` ranges into the indexed data, never copies
- the tree is generic over `cmp.Ordered` symbols and is read-only once `Build`
  returns
- the tracer and extender assume the structure they walk is well formed and
  panic when it is not; `Search` makes no such assumption

## Nodes and points

An explicit node is a record in the arena: the root, every branch point and
every leaf. An implicit node is a position partway along an edge. It is never
stored, it is described by a `point` naming the node the edge leads into and
the data position of the next symbol along that edge.

	root
	 |
	 | "ssi"        point{node: n, pos: 3} sits between the two 's'
	 v
	 n

## Open leaf edges

A leaf edge ends at `OpenEnd`. The end is resolved from shared tree state
instead of being rewritten on every phase, so extending all the leaves by one
symbol (rule 1) costs nothing.

## Construction

Each phase adds one symbol. Within a phase the active point is extended with
`addEdge`, which reports one of:

	RuleLeafExtended   (1) the point is the end of a leaf, nothing to do
	RuleNewBranch      (2) a new leaf was added, possibly splitting an edge
	RuleAlreadyPresent (3) the symbol is already there, the phase ends

After rules 1 and 2 the next (shorter) suffix is reached through the suffix
link of the extension site. Suffix links are computed lazily from the parent's
link and memoized once they resolve to an explicit node.

## Core invariants

1. every node except the root has a non-empty incoming edge label
2. no two children of a node start with the same symbol
3. a memoized suffix link never changes
4. every open leaf end resolves to the same shared end position (see "Open
   leaf edges")
5. a tree over n > 0 symbols has at most 2n-1 non-root nodes

`Tree.Check` verifies 1, 2, 3 and 5 for a finished tree. 4 holds by
construction, since a leaf label stores `OpenEnd` rather than a position.

*/
