package walker

import (
	"errors"

	"github.com/grovekit/grove/arena"
)

var (
	// ErrStop aborts a walk early without reporting an error to the caller.
	ErrStop = errors.New("walker: stop")

	// SkipChildren, returned by a visitor, prunes the current node's
	// subtree and continues with its next sibling.
	SkipChildren = errors.New("walker: skip children")
)

// Visitor is called for every node in document order. ref resolves in the
// arena passed to Walk (or one of its graft sources); n is the resolved
// node.
type Visitor func(ref arena.NodeRef, n *arena.Node) error

// Walk traverses the subtree rooted at ref depth-first, visiting parents
// before children and children in document order.
func Walk(a *arena.Arena, ref arena.NodeRef, visit Visitor) error {
	err := walk(a, ref, visit)
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

func walk(a *arena.Arena, ref arena.NodeRef, visit Visitor) error {
	n, err := a.Node(ref)
	if err != nil {
		return err
	}
	switch err := visit(ref, n); {
	case errors.Is(err, SkipChildren):
		return nil
	case err != nil:
		return err
	}
	if n.Kind() != arena.KindElement && n.Kind() != arena.KindFragment {
		return nil
	}
	kids := n.Children()
	for i := 0; i < kids.Len(); i++ {
		child, err := a.NodeAt(kids, i)
		if err != nil {
			return err
		}
		if err := walk(a, child, visit); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the first node in document order for which pred is true.
// ok is false when no node matches.
func Find(a *arena.Arena, root arena.NodeRef, pred func(*arena.Node) bool) (ref arena.NodeRef, ok bool, err error) {
	err = Walk(a, root, func(r arena.NodeRef, n *arena.Node) error {
		if pred(n) {
			ref, ok = r, true
			return ErrStop
		}
		return nil
	})
	return ref, ok, err
}

// Count returns the number of nodes in the subtree, fragments included.
func Count(a *arena.Arena, root arena.NodeRef) (int, error) {
	total := 0
	err := Walk(a, root, func(arena.NodeRef, *arena.Node) error {
		total++
		return nil
	})
	return total, err
}
