package ordtree

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[E constraints.Ordered](t *Tree[E], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	nextID := 1
	var walk func(n *node[E], depth int) int
	walk = func(n *node[E], depth int) int {
		id := nextID
		nextID++
		label := fmt.Sprintf("%v\\n@%d", n.value, depth)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(n))
		if n.left != nil {
			childID := walk(n.left, depth+1)
			edgelist += fmt.Sprintf("%d -> %d [label=L];\n", id, childID)
		}
		if n.right != nil {
			childID := walk(n.right, depth+1)
			edgelist += fmt.Sprintf("%d -> %d [label=R];\n", id, childID)
		}
		return id
	}
	if t != nil && t.root != nil {
		walk(t.root, 0)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles[E constraints.Ordered](n *node[E]) string {
	if n.left == nil && n.right == nil {
		return "shape=box,style=filled,fillcolor=lightgrey"
	}
	return "shape=ellipse"
}
