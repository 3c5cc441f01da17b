package ordtree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Check validates structural tree invariants:
//
//   - search-tree order: every left descendant compares less, every right
//     descendant greater, than its ancestor element,
//   - no duplicates (implied by strict order),
//   - the size counter equals the number of reachable nodes,
//   - no node is reachable twice (acyclicity).
//
// This checker is intentionally strict and meant for tests; a violation
// indicates a tree algorithm bug, not an input error.
func (t *Tree[E]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if t.size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidTree, t.size)
	}
	visited := 0
	if err := checkNode(t.root, nil, nil, t.size, &visited); err != nil {
		return err
	}
	if visited != t.size {
		return fmt.Errorf("%w: size %d does not match %d reachable nodes",
			ErrInvalidTree, t.size, visited)
	}
	return nil
}

// checkNode walks the subtree rooted at n, counting nodes into visited and
// carrying exclusive value bounds down the recursion. The visit counter is
// capped against the size counter so a cyclic graph fails fast instead of
// recursing forever.
func checkNode[E constraints.Ordered](n *node[E], lower, upper *E, size int, visited *int) error {
	if n == nil {
		return nil
	}
	*visited++
	if *visited > size {
		return fmt.Errorf("%w: more than %d reachable nodes (cycle or stale size)",
			ErrInvalidTree, size)
	}
	if lower != nil && n.value <= *lower {
		return fmt.Errorf("%w: element %v in right subtree of %v",
			ErrInvalidTree, n.value, *lower)
	}
	if upper != nil && n.value >= *upper {
		return fmt.Errorf("%w: element %v in left subtree of %v",
			ErrInvalidTree, n.value, *upper)
	}
	if err := checkNode(n.left, lower, &n.value, size, visited); err != nil {
		return err
	}
	return checkNode(n.right, &n.value, upper, size, visited)
}
