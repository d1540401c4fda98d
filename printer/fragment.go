package printer

import (
	"github.com/grovekit/grove/arena"
)

// Preserialize renders the element at root to HTML once and returns the
// bytes bundled with the element's schema entry. Allocating the result via
// [arena.Arena.Preserialized] yields a node that serializes byte-for-byte
// like the original subtree without revisiting it.
//
// Only element roots can be preserialized; text and fragment roots lack the
// single schema entry later validation needs.
func Preserialize(a *arena.Arena, root arena.NodeRef) (*arena.Serialized, error) {
	n, err := a.Node(root)
	if err != nil {
		return nil, err
	}
	if n.Kind() != arena.KindElement {
		return nil, ErrNotElement
	}
	buf, err := appendHTML(nil, a, root)
	if err != nil {
		return nil, err
	}
	return arena.NewSerialized(n.Meta(), buf), nil
}
