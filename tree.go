package ordtree

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Tree is an unbalanced binary search tree with no repeated elements.
//
// E is the element type; elements are ordered by the `<` relation of the
// type. The zero value is not usable, create trees with New, From or
// FromSeq.
//
// The tree never rebalances on its own. Mutations cost O(h) where h is the
// current height, so after many sorted insertions or deletions callers
// should invoke Balance to restore h = O(log n).
type Tree[E constraints.Ordered] struct {
	root *node[E]
	size int
}

// node is exclusively owned by its parent (or by the tree, for the root).
// There are no parent links; mutation paths track the owning child slot
// instead.
type node[E constraints.Ordered] struct {
	value       E
	left, right *node[E]
}

// New creates an empty tree.
func New[E constraints.Ordered]() *Tree[E] {
	return &Tree[E]{}
}

// From builds a tree from a slice of elements via repeated insertion,
// silently skipping duplicates. A nil slice is rejected with ErrNilSource;
// an empty (but non-nil) slice yields an empty tree.
func From[E constraints.Ordered](elements []E) (*Tree[E], error) {
	if elements == nil {
		return nil, ErrNilSource
	}
	t := New[E]()
	for _, e := range elements {
		t.Add(e)
	}
	T().Debugf("ordtree.From: %d of %d elements inserted", t.size, len(elements))
	return t, nil
}

// FromSeq builds a tree from a finite element sequence via repeated
// insertion, silently skipping duplicates. A nil sequence is rejected with
// ErrNilSource.
func FromSeq[E constraints.Ordered](elements iter.Seq[E]) (*Tree[E], error) {
	if elements == nil {
		return nil, ErrNilSource
	}
	t := New[E]()
	for e := range elements {
		t.Add(e)
	}
	return t, nil
}

// Size returns the number of elements in the tree. O(1).
func (t *Tree[E]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[E]) IsEmpty() bool {
	return t.size == 0
}

// Clear removes all elements, releasing the whole node graph.
func (t *Tree[E]) Clear() {
	t.root = nil
	t.size = 0
}

// Contains reports whether the tree holds an element equal to e. O(h).
func (t *Tree[E]) Contains(e E) bool {
	for cur := t.root; cur != nil; {
		if e < cur.value {
			cur = cur.left
		} else if e > cur.value {
			cur = cur.right
		} else {
			return true
		}
	}
	return false
}

// Min returns the least element, or (zero, false) for an empty tree. O(h).
func (t *Tree[E]) Min() (E, bool) {
	if t.root == nil {
		var zero E
		return zero, false
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}
	return cur.value, true
}

// Max returns the greatest element, or (zero, false) for an empty tree. O(h).
func (t *Tree[E]) Max() (E, bool) {
	if t.root == nil {
		var zero E
		return zero, false
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}
	return cur.value, true
}

// Height returns the length of the longest root-to-leaf path, counted in
// nodes; an empty tree has height 0. Recursive.
func (t *Tree[E]) Height() int {
	return subtreeHeight(t.root)
}

func subtreeHeight[E constraints.Ordered](n *node[E]) int {
	if n == nil {
		return 0
	}
	return 1 + max(subtreeHeight(n.left), subtreeHeight(n.right))
}

// Add inserts e into the tree. It returns false, leaving the tree
// unchanged, if an equal element is already present. O(h).
func (t *Tree[E]) Add(e E) bool {
	slot := &t.root
	for cur := *slot; cur != nil; cur = *slot {
		if e < cur.value {
			slot = &cur.left
		} else if e > cur.value {
			slot = &cur.right
		} else {
			return false
		}
	}
	*slot = &node[E]{value: e}
	t.size++
	return true
}

// Remove deletes the element equal to e from the tree. It returns false,
// leaving the tree unchanged, if no such element exists. O(h).
//
// A node with two children is not unlinked itself: its payload is
// overwritten with the in-order predecessor (the rightmost element of its
// left subtree) and the predecessor's node is spliced out instead. The
// promotion side is part of the API contract, as it fixes the exact shape
// of the remaining tree.
func (t *Tree[E]) Remove(e E) bool {
	slot := &t.root
	cur := *slot
	for cur != nil {
		if e < cur.value {
			slot = &cur.left
		} else if e > cur.value {
			slot = &cur.right
		} else {
			break
		}
		cur = *slot
	}
	if cur == nil {
		return false
	}
	if cur.left == nil {
		// Zero children or a single right child: splice the node out.
		*slot = cur.right
	} else {
		pslot := &cur.left
		pred := *pslot
		for pred.right != nil {
			pslot = &pred.right
			pred = *pslot
		}
		cur.value = pred.value
		*pslot = pred.left
	}
	t.size--
	return true
}

// Balance rebuilds the tree to the minimum height possible for its element
// count, ceil(log2(size+1)). Trees of size <= 2 are already height-optimal
// and are left untouched. The old node graph is discarded in full.
func (t *Tree[E]) Balance() {
	if t.size <= 2 {
		return
	}
	sorted := t.InOrder()
	assert(len(sorted) == t.size, "ordtree.Balance: in-order length disagrees with size")
	t.root = buildBalanced(sorted)
	T().Debugf("ordtree.Balance: rebuilt %d nodes to height %d", t.size, t.Height())
}

// buildBalanced rebuilds a height-minimal subtree from a sorted,
// duplicate-free slice. The root index is biased toward the lower half on
// even-length ranges; this determines the exact shape of the result and
// must not change.
func buildBalanced[E constraints.Ordered](sorted []E) *node[E] {
	if len(sorted) == 0 {
		return nil
	}
	mid := (len(sorted) - 1) / 2
	return &node[E]{
		value: sorted[mid],
		left:  buildBalanced(sorted[:mid]),
		right: buildBalanced(sorted[mid+1:]),
	}
}
