package arena

import "fmt"

// Text allocates a text node. Content is stored as written and escaped at
// serialization time.
func (a *Arena) Text(s string) (NodeRef, error) {
	return a.allocNode(Node{kind: KindText, text: s})
}

// Textf allocates a text node from a format string.
func (a *Arena) Textf(format string, args ...any) (NodeRef, error) {
	return a.Text(fmt.Sprintf(format, args...))
}

// OptText allocates a text node, or the empty node when s is empty. Useful
// for optional content that should vanish entirely rather than leave an
// empty text run.
func (a *Arena) OptText(s string) (NodeRef, error) {
	if s == "" {
		return a.Empty()
	}
	return a.Text(s)
}

// Empty allocates the empty node: a fragment with no children, serializing
// to nothing.
func (a *Arena) Empty() (NodeRef, error) {
	return a.FragmentFrom(NodeSlice{region: a.region})
}

// NbSp allocates a text node holding a single non-breaking space.
func (a *Arena) NbSp() (NodeRef, error) {
	return a.Text(" ")
}
