package ordtree

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// StringInOrder renders the elements in ascending order as
// "[e1, e2, ..., en]". An empty tree renders as "[]".
func (t *Tree[E]) StringInOrder() string {
	return renderElements(t.InOrder())
}

// StringPreOrder renders the pre-order traversal as "[e1, e2, ..., en]".
func (t *Tree[E]) StringPreOrder() string {
	return renderElements(t.PreOrder())
}

// StringPostOrder renders the post-order traversal as "[e1, e2, ..., en]".
func (t *Tree[E]) StringPostOrder() string {
	return renderElements(t.PostOrder())
}

// StringBreadthFirst renders the breadth-first traversal as
// "[e1, e2, ..., en]".
func (t *Tree[E]) StringBreadthFirst() string {
	return renderElements(t.BreadthFirst())
}

// String returns the in-order rendering of the tree.
func (t *Tree[E]) String() string {
	return t.StringInOrder()
}

func renderElements[E constraints.Ordered](elements []E) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte(']')
	return sb.String()
}
