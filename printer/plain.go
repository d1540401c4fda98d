package printer

import (
	"fmt"

	"github.com/grovekit/grove/arena"
)

// Plain renders the subtree at root as tag-stripped text: element wrappers
// and attributes vanish, text nodes concatenate unescaped. Pre-serialized
// nodes yield ErrPreserialized since their structure would need re-parsing.
func Plain(a *arena.Arena, root arena.NodeRef) (string, error) {
	buf, err := appendPlain(nil, a, root)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func appendPlain(dst []byte, a *arena.Arena, ref arena.NodeRef) ([]byte, error) {
	n, err := a.Node(ref)
	if err != nil {
		return dst, err
	}
	switch n.Kind() {
	case arena.KindText:
		return append(dst, n.Text()...), nil
	case arena.KindPre:
		return dst, ErrPreserialized
	case arena.KindElement, arena.KindFragment:
		kids := n.Children()
		for i := 0; i < kids.Len(); i++ {
			child, err := a.NodeAt(kids, i)
			if err != nil {
				return dst, err
			}
			if dst, err = appendPlain(dst, a, child); err != nil {
				return dst, err
			}
		}
		return dst, nil
	default:
		return dst, fmt.Errorf("%w: node kind %v", arena.ErrInvalidHandle, n.Kind())
	}
}
