package meta

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html/atom"
)

// AttrKind classifies the value space of an attribute.
type AttrKind uint8

const (
	// KindString accepts any text value.
	KindString AttrKind = iota

	// KindBool is a boolean (presence) attribute.
	KindBool

	// KindInteger accepts integer values.
	KindInteger

	// KindFloat accepts floating-point values.
	KindFloat

	// KindIdentifier references an identifier elsewhere in the document
	// (for example a form or datalist id).
	KindIdentifier

	// KindEnum accepts one of a fixed set of keyword values.
	KindEnum
)

// String returns the record-file spelling of the kind.
func (k AttrKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindIdentifier:
		return "identifier"
	case KindEnum:
		return "enum"
	default:
		return fmt.Sprintf("AttrKind(%d)", uint8(k))
	}
}

// Attribute is the metadata for one tag-specific attribute. The attribute
// name is the key under which it is stored in Element.Attributes.
type Attribute struct {
	// Description is a short human-readable summary, carried through from
	// the source records for tooling.
	Description string

	// Kind classifies the attribute's value space. Values are not validated
	// against it at construction time; it exists for tooling and future use.
	Kind AttrKind

	// Values lists the permitted keywords when Kind is KindEnum.
	Values []string
}

// Category is an HTML content category. Elements carry zero or more
// categories; a parent's permitted-children set is typically expressed in
// terms of categories and expanded at load time.
type Category uint8

const (
	CategoryMetadata Category = iota
	CategoryFlow
	CategorySectioning
	CategoryHeading
	CategoryPhrasing
	CategoryEmbedded
	CategoryInteractive
	CategoryPalpable
	CategoryScriptSupporting
	CategoryTransparent
)

var categoryNames = map[Category]string{
	CategoryMetadata:         "metadata",
	CategoryFlow:             "flow",
	CategorySectioning:       "sectioning",
	CategoryHeading:          "heading",
	CategoryPhrasing:         "phrasing",
	CategoryEmbedded:         "embedded",
	CategoryInteractive:      "interactive",
	CategoryPalpable:         "palpable",
	CategoryScriptSupporting: "script-supporting",
	CategoryTransparent:      "transparent",
}

// String returns the record-file spelling of the category.
func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// ParseCategory converts a record-file category name to a Category.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown content category %q", ErrBadRecord, s)
}

// Element is the immutable metadata entry for one tag.
type Element struct {
	// Tag is the lowercase tag name, e.g. "a".
	Tag string

	// Atom is the interned x/net/html atom for Tag, or zero when the tag is
	// not in the standard atom table. Useful for fast tag comparisons.
	Atom atom.Atom

	// StructName is the identifier-style name from the source records,
	// e.g. "Anchor" for "a". Used by tooling only.
	StructName string

	// HasGlobalAttributes reports whether the element additionally admits
	// the database's global attribute set.
	HasGlobalAttributes bool

	// HasClosingTag reports whether serialization must emit </Tag>.
	// Void elements such as <br> and <img> have it false.
	HasClosingTag bool

	// Attributes maps tag-specific attribute names to their metadata.
	Attributes map[string]Attribute

	// AllowsText reports whether text content is permitted.
	AllowsText bool

	// Children is the permitted child tag set, fully expanded.
	Children map[string]struct{}

	// Categories are the content categories this element belongs to.
	Categories []Category
}

// HasCategory reports whether the element carries the given content category.
func (e *Element) HasCategory(c Category) bool {
	for _, have := range e.Categories {
		if have == c {
			return true
		}
	}
	return false
}

// DB is the schema database: global attribute names plus per-tag entries.
// Construct it once at startup (Builtin, LoadJSON, LoadYAML or FromRecords)
// and share it freely; it is never mutated afterwards.
type DB struct {
	globals  map[string]struct{}
	elements map[string]*Element
}

// Lookup returns the metadata entry for tag.
func (db *DB) Lookup(tag string) (*Element, error) {
	if e, ok := db.elements[tag]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
}

// Tags returns all registered tag names in sorted order.
func (db *DB) Tags() []string {
	tags := make([]string, 0, len(db.elements))
	for tag := range db.elements {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// IsGlobalAttribute reports whether name is in the global attribute set.
// Names prefixed "data-" or "aria-" are always global.
func (db *DB) IsGlobalAttribute(name string) bool {
	if _, ok := db.globals[name]; ok {
		return true
	}
	return strings.HasPrefix(name, "data-") || strings.HasPrefix(name, "aria-")
}

// GlobalAttributes returns the global attribute names in sorted order.
func (db *DB) GlobalAttributes() []string {
	names := make([]string, 0, len(db.globals))
	for name := range db.globals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateAttribute checks that e admits an attribute called name.
// The returned error wraps ErrDisallowedAttribute and names the valid
// alternatives, so that a failed page build points at the mistake.
func (e *Element) ValidateAttribute(db *DB, name string) error {
	if _, ok := e.Attributes[name]; ok {
		return nil
	}
	if e.HasGlobalAttributes && db.IsGlobalAttribute(name) {
		return nil
	}
	return fmt.Errorf("%w: %q on <%s> (valid: %s)",
		ErrDisallowedAttribute, name, e.Tag, e.validAttributeNames(db))
}

// ValidateChild checks that e permits child elements with child's tag.
func (e *Element) ValidateChild(child *Element) error {
	if _, ok := e.Children[child.Tag]; ok {
		return nil
	}
	textNote := ", no text"
	if e.AllowsText {
		textNote = " and text"
	}
	return fmt.Errorf("%w: <%s> under <%s> (valid: %s%s)",
		ErrDisallowedChild, child.Tag, e.Tag, e.validChildNames(), textNote)
}

// ValidateText checks that e permits text content. All-whitespace text is
// always accepted so indentation and separator whitespace never fail.
func (e *Element) ValidateText(s string) error {
	if e.AllowsText || allWhitespace(s) {
		return nil
	}
	return fmt.Errorf("%w: under <%s> (valid: %s)",
		ErrDisallowedText, e.Tag, e.validChildNames())
}

func (e *Element) validAttributeNames(db *DB) string {
	names := make([]string, 0, len(e.Attributes))
	for name := range e.Attributes {
		names = append(names, name)
	}
	if e.HasGlobalAttributes {
		names = append(names, db.GlobalAttributes()...)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func (e *Element) validChildNames() string {
	if len(e.Children) == 0 {
		return "none"
	}
	names := make([]string, 0, len(e.Children))
	for name := range e.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func allWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\f':
		default:
			return false
		}
	}
	return true
}
