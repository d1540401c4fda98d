package meta

import (
	"fmt"
	"strings"

	"golang.org/x/net/html/atom"
)

// AttrRecord is the external shape of one attribute entry.
type AttrRecord struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Kind        string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Values      []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// Record is the external shape of one element entry, as stored in the
// embedded dataset and accepted by LoadJSON/LoadYAML.
//
// Children entries may be:
//
//   - a concrete tag name ("li")
//   - "#text" to permit text content
//   - "$<category>" to permit every tag carrying that content category
//   - "!<tag>" to remove a tag contributed by a category expansion
type Record struct {
	Tag            string       `json:"tag" yaml:"tag"`
	StructName     string       `json:"struct,omitempty" yaml:"struct,omitempty"`
	HasGlobalAttrs bool         `json:"global_attributes" yaml:"global_attributes"`
	HasClosingTag  bool         `json:"closing_tag" yaml:"closing_tag"`
	Categories     []string     `json:"categories,omitempty" yaml:"categories,omitempty"`
	Attributes     []AttrRecord `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Children       []string     `json:"children,omitempty" yaml:"children,omitempty"`
}

// RecordFile is the top-level structure of a schema record file.
type RecordFile struct {
	// GlobalAttributes lists the attribute names admitted by every element
	// whose record sets global_attributes.
	GlobalAttributes []string `json:"global_attributes" yaml:"global_attributes"`

	Elements []Record `json:"elements" yaml:"elements"`
}

func parseAttrKind(s string) (AttrKind, error) {
	switch s {
	case "", "string":
		return KindString, nil
	case "bool":
		return KindBool, nil
	case "integer":
		return KindInteger, nil
	case "float":
		return KindFloat, nil
	case "identifier":
		return KindIdentifier, nil
	case "enum":
		return KindEnum, nil
	default:
		return 0, fmt.Errorf("%w: unknown attribute kind %q", ErrBadRecord, s)
	}
}

// FromRecords builds an immutable DB from a record file. Category references
// in child lists are expanded against the file's own element set, then
// exclusions are applied, so the resulting permitted sets are concrete.
func FromRecords(file *RecordFile) (*DB, error) {
	globals := make(map[string]struct{}, len(file.GlobalAttributes))
	for _, name := range file.GlobalAttributes {
		globals[name] = struct{}{}
	}

	// First pass: create entries and index tags by category, so that
	// "$category" references can be expanded in the second pass.
	elements := make(map[string]*Element, len(file.Elements))
	byCategory := make(map[Category][]string)
	for i := range file.Elements {
		rec := &file.Elements[i]
		if rec.Tag == "" {
			return nil, fmt.Errorf("%w: element #%d has no tag", ErrBadRecord, i)
		}
		if _, dup := elements[rec.Tag]; dup {
			return nil, fmt.Errorf("%w: duplicate tag %q", ErrBadRecord, rec.Tag)
		}

		attrs := make(map[string]Attribute, len(rec.Attributes))
		for _, ar := range rec.Attributes {
			if ar.Name == "" {
				return nil, fmt.Errorf("%w: tag %q has an unnamed attribute",
					ErrBadRecord, rec.Tag)
			}
			kind, err := parseAttrKind(ar.Kind)
			if err != nil {
				return nil, fmt.Errorf("tag %q attribute %q: %w", rec.Tag, ar.Name, err)
			}
			attrs[ar.Name] = Attribute{
				Description: ar.Description,
				Kind:        kind,
				Values:      ar.Values,
			}
		}

		cats := make([]Category, 0, len(rec.Categories))
		for _, cs := range rec.Categories {
			c, err := ParseCategory(cs)
			if err != nil {
				return nil, fmt.Errorf("tag %q: %w", rec.Tag, err)
			}
			cats = append(cats, c)
			byCategory[c] = append(byCategory[c], rec.Tag)
		}

		elements[rec.Tag] = &Element{
			Tag:                 rec.Tag,
			Atom:                atom.Lookup([]byte(rec.Tag)),
			StructName:          rec.StructName,
			HasGlobalAttributes: rec.HasGlobalAttrs,
			HasClosingTag:       rec.HasClosingTag,
			Attributes:          attrs,
			Categories:          cats,
		}
	}

	// Second pass: resolve child lists.
	for i := range file.Elements {
		rec := &file.Elements[i]
		e := elements[rec.Tag]
		children := make(map[string]struct{})
		var excluded []string
		for _, child := range rec.Children {
			switch {
			case child == "#text":
				e.AllowsText = true
			case strings.HasPrefix(child, "$"):
				c, err := ParseCategory(child[1:])
				if err != nil {
					return nil, fmt.Errorf("tag %q children: %w", rec.Tag, err)
				}
				for _, tag := range byCategory[c] {
					children[tag] = struct{}{}
				}
			case strings.HasPrefix(child, "!"):
				excluded = append(excluded, child[1:])
			default:
				if _, ok := elements[child]; !ok {
					return nil, fmt.Errorf("%w: tag %q permits unknown child %q",
						ErrBadRecord, rec.Tag, child)
				}
				children[child] = struct{}{}
			}
		}
		for _, tag := range excluded {
			delete(children, tag)
		}
		e.Children = children
	}

	return &DB{globals: globals, elements: elements}, nil
}
