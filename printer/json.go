package printer

import (
	"encoding/json"

	"github.com/grovekit/grove/arena"
)

// jsonNode represents one tree node in the JSON debug dump.
type jsonNode struct {
	Kind       string     `json:"kind"`
	Tag        string     `json:"tag,omitempty"`
	Attributes []jsonAttr `json:"attributes,omitempty"`
	Text       string     `json:"text,omitempty"`
	HTML       string     `json:"html,omitempty"`
	Children   []jsonNode `json:"children,omitempty"`
}

type jsonAttr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// JSON renders the subtree at root as an indented JSON document describing
// its structure. Meant for debugging and golden tests, not as a wire
// format.
func JSON(a *arena.Arena, root arena.NodeRef) (string, error) {
	buf, err := appendJSON(nil, a, root, "  ")
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func appendJSON(dst []byte, a *arena.Arena, root arena.NodeRef, indent string) ([]byte, error) {
	jn, err := buildJSONNode(a, root)
	if err != nil {
		return dst, err
	}
	data, err := json.MarshalIndent(jn, "", indent)
	if err != nil {
		return dst, err
	}
	dst = append(dst, data...)
	return append(dst, '\n'), nil
}

func buildJSONNode(a *arena.Arena, ref arena.NodeRef) (jsonNode, error) {
	n, err := a.Node(ref)
	if err != nil {
		return jsonNode{}, err
	}
	jn := jsonNode{Kind: n.Kind().String()}
	switch n.Kind() {
	case arena.KindText:
		jn.Text = n.Text()
		return jn, nil
	case arena.KindPre:
		if m := n.Pre().Meta(); m != nil {
			jn.Tag = m.Tag
		}
		jn.HTML = string(n.Pre().Bytes())
		return jn, nil
	}
	if n.Kind() == arena.KindElement {
		jn.Tag = n.Meta().Tag
		attrs := n.Attrs()
		for i := 0; i < attrs.Len(); i++ {
			aref, err := a.AttrAt(attrs, i)
			if err != nil {
				return jsonNode{}, err
			}
			at, err := a.Attr(aref)
			if err != nil {
				return jsonNode{}, err
			}
			jn.Attributes = append(jn.Attributes, jsonAttr{Name: at.Name, Value: at.Value})
		}
	}
	kids := n.Children()
	for i := 0; i < kids.Len(); i++ {
		child, err := a.NodeAt(kids, i)
		if err != nil {
			return jsonNode{}, err
		}
		cn, err := buildJSONNode(a, child)
		if err != nil {
			return jsonNode{}, err
		}
		jn.Children = append(jn.Children, cn)
	}
	return jn, nil
}
