package arena

import "github.com/grovekit/grove/meta"

// Kind discriminates the node variants.
type Kind uint8

const (
	// KindElement is a tagged element with attributes and children.
	KindElement Kind = iota + 1

	// KindText is an unstructured text run, escaped on serialization.
	KindText

	// KindPre is a pre-serialized byte blob emitted verbatim.
	KindPre

	// KindFragment is an ordered group of handles spliced in place where a
	// single handle is expected. An empty fragment is the empty node.
	KindFragment
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindPre:
		return "pre"
	case KindFragment:
		return "fragment"
	default:
		return "invalid"
	}
}

// Attr is one attribute name/value pair. Values are stored as written;
// escaping happens at serialization time.
type Attr struct {
	Name  string
	Value string
}

// Node is one slot in an arena: an element, a text run, a pre-serialized
// blob, or a fragment. Nodes are immutable once allocated; all accessors
// are read-only views.
type Node struct {
	kind  Kind
	meta  *meta.Element // element
	attrs AttrSlice     // element
	kids  NodeSlice     // element, fragment
	text  string        // text
	pre   *Serialized   // pre
}

// Kind returns the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// Meta returns the schema entry for an element node, or nil for other kinds.
func (n *Node) Meta() *meta.Element { return n.meta }

// Attrs returns an element node's attribute handles in insertion order.
func (n *Node) Attrs() AttrSlice { return n.attrs }

// Children returns the ordered child handles of an element or fragment node.
func (n *Node) Children() NodeSlice { return n.kids }

// Text returns the content of a text node.
func (n *Node) Text() string { return n.text }

// Pre returns the cached rendering of a pre-serialized node, or nil for
// other kinds.
func (n *Node) Pre() *Serialized { return n.pre }

// Serialized is a cached byte rendering of a single element subtree,
// produced by the serializer. It records the subtree's root tag metadata so
// that schema validation still applies when the blob is used as a child.
// A Serialized value is immutable and may be inserted into any arena.
type Serialized struct {
	meta *meta.Element
	html []byte
}

// NewSerialized wraps already-rendered HTML bytes for re-insertion. The
// bytes are copied; m must be the schema entry of the rendered root element.
func NewSerialized(m *meta.Element, html []byte) *Serialized {
	b := make([]byte, len(html))
	copy(b, html)
	return &Serialized{meta: m, html: b}
}

// Meta returns the schema entry of the rendered root element.
func (s *Serialized) Meta() *meta.Element { return s.meta }

// Bytes returns the rendered HTML. Callers must not modify it.
func (s *Serialized) Bytes() []byte { return s.html }
