package ordtree

import "errors"

var (
	// ErrNilSource signals an absent element source passed to a bulk constructor.
	ErrNilSource = errors.New("ordtree: nil element source")
	// ErrInvalidTree signals a violated structural invariant.
	ErrInvalidTree = errors.New("ordtree: invalid tree structure")
)
