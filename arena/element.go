package arena

import (
	"fmt"

	"github.com/grovekit/grove/meta"
)

// Element validates and allocates an element node. Attributes are checked
// against m's attribute set (plus globals where admitted) and every child
// against m's content model before anything reaches the node store, so a
// failed call leaves no element behind. Fragment children are validated by
// what they splice in; pre-serialized children by their recorded root tag.
func (a *Arena) Element(m *meta.Element, attrs []Attr, children ...NodeRef) (NodeRef, error) {
	as, err := a.MakeAttrs(attrs...)
	if err != nil {
		return NodeRef{}, err
	}
	ks, err := a.MakeNodes(children...)
	if err != nil {
		return NodeRef{}, err
	}
	return a.ElementFrom(m, as, ks)
}

// ElementFrom is Element over already-stored attribute and child slices,
// for callers assembling children incrementally through a List.
func (a *Arena) ElementFrom(m *meta.Element, attrs AttrSlice, children NodeSlice) (NodeRef, error) {
	if a.db != nil {
		if err := a.validateAttrs(m, attrs); err != nil {
			return NodeRef{}, err
		}
		if err := a.validateChildren(m, children); err != nil {
			return NodeRef{}, err
		}
	}
	if traceEnabled() {
		attrs = a.traceAttrs(m, attrs)
	}
	return a.allocNode(Node{kind: KindElement, meta: m, attrs: attrs, kids: children})
}

func (a *Arena) validateAttrs(m *meta.Element, attrs AttrSlice) error {
	for i := 0; i < attrs.Len(); i++ {
		ref, err := a.AttrAt(attrs, i)
		if err != nil {
			return err
		}
		at, err := a.Attr(ref)
		if err != nil {
			return err
		}
		if err := m.ValidateAttribute(a.db, at.Name); err != nil {
			return fmt.Errorf("attribute #%d: %w", i, err)
		}
	}
	return nil
}

func (a *Arena) validateChildren(m *meta.Element, children NodeSlice) error {
	for i := 0; i < children.Len(); i++ {
		ref, err := a.NodeAt(children, i)
		if err != nil {
			return err
		}
		if err := a.validateChild(m, ref); err != nil {
			return fmt.Errorf("child #%d: %w", i, err)
		}
	}
	return nil
}

func (a *Arena) validateChild(m *meta.Element, ref NodeRef) error {
	n, err := a.Node(ref)
	if err != nil {
		return err
	}
	switch n.kind {
	case KindElement:
		return m.ValidateChild(n.meta)
	case KindText:
		return m.ValidateText(n.text)
	case KindPre:
		return m.ValidateChild(n.pre.meta)
	case KindFragment:
		// A fragment splices its contents into the parent, so each spliced
		// node is validated as a direct child.
		return a.validateChildren(m, n.kids)
	default:
		return fmt.Errorf("%w: node kind %v", ErrInvalidHandle, n.kind)
	}
}

// Preserialized allocates a node holding already-rendered HTML. During
// serialization the stored bytes are emitted verbatim, which is the caching
// mechanism for subtrees rendered once and reused often.
func (a *Arena) Preserialized(s *Serialized) (NodeRef, error) {
	return a.allocNode(Node{kind: KindPre, pre: s})
}

// Fragment allocates a grouping node whose children are spliced in place
// wherever the fragment appears.
func (a *Arena) Fragment(children ...NodeRef) (NodeRef, error) {
	ks, err := a.MakeNodes(children...)
	if err != nil {
		return NodeRef{}, err
	}
	return a.FragmentFrom(ks)
}

// FragmentFrom is Fragment over an already-stored child slice.
func (a *Arena) FragmentFrom(children NodeSlice) (NodeRef, error) {
	return a.allocNode(Node{kind: KindFragment, kids: children})
}
