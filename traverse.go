package ordtree

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Every traversal below visits all n elements in O(n). The slice-returning
// forms produce a fresh snapshot: mutating the tree afterwards does not
// affect a previously returned slice. The Range* iterator forms walk the
// live structure instead; the tree must not be mutated while one of them
// is being consumed.
//
// The recursive walks use call-stack depth proportional to the tree
// height, which for a pathologically unbalanced tree is O(n).

// InOrder returns all elements in ascending order.
func (t *Tree[E]) InOrder() []E {
	out := make([]E, 0, t.size)
	forEachInOrder(t.root, func(e E) bool {
		out = append(out, e)
		return true
	})
	return out
}

// PreOrder returns all elements in node-left-right order.
func (t *Tree[E]) PreOrder() []E {
	out := make([]E, 0, t.size)
	forEachPreOrder(t.root, func(e E) bool {
		out = append(out, e)
		return true
	})
	return out
}

// PostOrder returns all elements in left-right-node order.
func (t *Tree[E]) PostOrder() []E {
	out := make([]E, 0, t.size)
	forEachPostOrder(t.root, func(e E) bool {
		out = append(out, e)
		return true
	})
	return out
}

// BreadthFirst returns all elements level by level from the root,
// left-to-right within a level.
func (t *Tree[E]) BreadthFirst() []E {
	out := make([]E, 0, t.size)
	for _, row := range t.Levels() {
		out = append(out, row...)
	}
	return out
}

// Levels returns the breadth-first traversal split into level rows, the
// first row holding just the root element. An empty tree yields nil.
func (t *Tree[E]) Levels() [][]E {
	if t.root == nil {
		return nil
	}
	var out [][]E
	level := []*node[E]{t.root}
	for len(level) > 0 {
		row := make([]E, 0, len(level))
		next := make([]*node[E], 0, 2*len(level))
		for _, n := range level {
			row = append(row, n.value)
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		out = append(out, row)
		level = next
	}
	return out
}

// ForEach visits all elements in ascending order.
//
// Iteration stops early if the callback returns false.
func (t *Tree[E]) ForEach(fn func(e E) bool) {
	if t == nil || fn == nil {
		return
	}
	forEachInOrder(t.root, fn)
}

// RangeInOrder returns an iterator over all elements in ascending order.
func (t *Tree[E]) RangeInOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		forEachInOrder(t.root, yield)
	}
}

// RangePreOrder returns an iterator over all elements in pre-order.
func (t *Tree[E]) RangePreOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		forEachPreOrder(t.root, yield)
	}
}

// RangePostOrder returns an iterator over all elements in post-order.
func (t *Tree[E]) RangePostOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		forEachPostOrder(t.root, yield)
	}
}

// RangeBreadthFirst returns an iterator over all elements in breadth-first
// order.
func (t *Tree[E]) RangeBreadthFirst() iter.Seq[E] {
	return func(yield func(E) bool) {
		if t.root == nil {
			return
		}
		level := []*node[E]{t.root}
		for len(level) > 0 {
			next := make([]*node[E], 0, 2*len(level))
			for _, n := range level {
				if !yield(n.value) {
					return
				}
				if n.left != nil {
					next = append(next, n.left)
				}
				if n.right != nil {
					next = append(next, n.right)
				}
			}
			level = next
		}
	}
}

func forEachInOrder[E constraints.Ordered](n *node[E], fn func(E) bool) bool {
	if n == nil {
		return true
	}
	if !forEachInOrder(n.left, fn) {
		return false
	}
	if !fn(n.value) {
		return false
	}
	return forEachInOrder(n.right, fn)
}

func forEachPreOrder[E constraints.Ordered](n *node[E], fn func(E) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n.value) {
		return false
	}
	if !forEachPreOrder(n.left, fn) {
		return false
	}
	return forEachPreOrder(n.right, fn)
}

func forEachPostOrder[E constraints.Ordered](n *node[E], fn func(E) bool) bool {
	if n == nil {
		return true
	}
	if !forEachPostOrder(n.left, fn) {
		return false
	}
	if !forEachPostOrder(n.right, fn) {
		return false
	}
	return fn(n.value)
}
