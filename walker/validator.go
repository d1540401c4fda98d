package walker

import (
	"fmt"

	"github.com/grovekit/grove/arena"
)

// ValidateTree checks the structural invariants of the subtree at root:
// every handle resolves, and within one arena a node's children always
// occupy lower slots than the node itself. The second property is what
// makes cycles impossible; a violation means handles were forged or an
// arena was misused across a reset.
func ValidateTree(a *arena.Arena, root arena.NodeRef) error {
	return validateNode(a, root)
}

func validateNode(a *arena.Arena, ref arena.NodeRef) error {
	n, err := a.Node(ref)
	if err != nil {
		return err
	}
	if n.Kind() != arena.KindElement && n.Kind() != arena.KindFragment {
		return nil
	}
	kids := n.Children()
	for i := 0; i < kids.Len(); i++ {
		child, err := a.NodeAt(kids, i)
		if err != nil {
			return fmt.Errorf("child #%d of %v: %w", i, ref, err)
		}
		if child.Region() == ref.Region() && child.Index() >= ref.Index() {
			return fmt.Errorf("child #%d of %v: slot %d not below parent slot %d",
				i, ref, child.Index(), ref.Index())
		}
		if err := validateNode(a, child); err != nil {
			return err
		}
	}
	return nil
}
