/*
Package ordtree implements a generic binary search tree over totally
ordered elements.

The tree stores elements hierarchically for efficient searching. Search
efficiency depends on the tree height, which in turn depends on the order
in which elements were inserted: adding elements in sorted order degrades
the tree to a linked list. This implementation is deliberately not
self-balancing; every mutation leaves the shape wherever the insertion
history put it.

Optimal height can be restored on demand by calling Balance, which rebuilds
the tree from its sorted contents. This is recommended after long runs of
insertions (especially of pre-sorted elements) and/or deletions.

A tree cannot contain duplicate elements, as determined by the order
relation of the element type. Insertion and removal report their outcome
as a boolean rather than an error: a duplicate insert and a not-found
remove are expected, data-dependent results.

Trees are not safe for concurrent use. Callers needing concurrent access
must serialize all operations externally, since any operation may touch
arbitrary parts of the node graph.
*/
package ordtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
