// Package meta provides the immutable HTML schema database used to validate
// document trees at construction time.
//
// # Overview
//
// The database maps tag names to per-element metadata: the attributes an
// element accepts, the children it permits, whether text content is allowed,
// and whether the element requires a closing tag when serialized. The arena
// package consults it on every element allocation, so a tree that violates
// the schema can never be built.
//
// # Key Types
//
//   - DB: The database itself. Immutable once constructed, safe for
//     unsynchronized use from any number of goroutines.
//   - Element: Per-tag metadata entry.
//   - Attribute: Metadata for a single tag-specific attribute.
//   - Record: The external, serializable shape of one element entry.
//
// # Loading
//
// A DB is built once at process start and never mutated. Three sources are
// supported:
//
//	db := meta.Builtin()                // embedded dataset
//	db, err := meta.LoadJSON(r)         // JSON record stream
//	db, err := meta.LoadYAML(r)         // YAML record stream
//
// Record child lists may name concrete tags, the sentinel "#text" (text
// content allowed), "$<category>" (all tags carrying that content category),
// and "!<tag>" (remove a tag contributed by a category expansion). Expansion
// happens at load time; validation afterwards is a set lookup.
//
// # Validation Semantics
//
// ValidateAttribute accepts an attribute if it is tag-specific or if the
// element admits global attributes and the name is in the global set.
// ValidateChild accepts a child element if its tag is in the parent's
// permitted set. ValidateText accepts text content if the element allows it;
// all-whitespace text is always accepted so that formatting whitespace never
// fails validation.
//
// Uniqueness constraints (for example at most one <title> per <head>) are
// deliberately not checked; checking them would require scanning siblings on
// every allocation.
//
// # Thread Safety
//
// DB and Element are read-only after construction and require no locking.
package meta
