//go:build property

package meta

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genTag draws a tag name from the built-in schema.
func genTag(db *DB) gopter.Gen {
	tags := db.Tags()
	items := make([]interface{}, len(tags))
	for i, tag := range tags {
		items[i] = tag
	}
	return gen.OneConstOf(items...)
}

// TestSchemaValidationProperties validates attribute and child permission
// properties over the whole built-in schema.
func TestSchemaValidationProperties(t *testing.T) {
	db := Builtin()

	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	// Property: an attribute passes validation iff it is tag-specific or
	// admitted through the global set.
	properties.Property("attribute validation matches the schema sets", prop.ForAll(
		func(tag, attr string) bool {
			e, err := db.Lookup(tag)
			if err != nil {
				return false
			}
			_, specific := e.Attributes[attr]
			admitted := specific || (e.HasGlobalAttributes && db.IsGlobalAttribute(attr))
			return (e.ValidateAttribute(db, attr) == nil) == admitted
		},
		genTag(db),
		gen.OneGenOf(
			genTag(db), // tag names double as plausible non-attribute strings
			gen.OneConstOf("href", "class", "id", "src", "value", "data-x", "aria-x", "bogus"),
		),
	))

	// Property: child validation mirrors the expanded permitted set.
	properties.Property("child validation matches the expanded permitted sets", prop.ForAll(
		func(parentTag, childTag string) bool {
			parent, err := db.Lookup(parentTag)
			if err != nil {
				return false
			}
			child, err := db.Lookup(childTag)
			if err != nil {
				return false
			}
			_, permitted := parent.Children[childTag]
			return (parent.ValidateChild(child) == nil) == permitted
		},
		genTag(db),
		genTag(db),
	))

	// Property: whitespace never fails text validation, anywhere.
	properties.Property("whitespace text is accepted by every element", prop.ForAll(
		func(tag string, spaces []bool) bool {
			e, err := db.Lookup(tag)
			if err != nil {
				return false
			}
			ws := ""
			for _, tab := range spaces {
				if tab {
					ws += "\t"
				} else {
					ws += " \n"
				}
			}
			return e.ValidateText(ws) == nil
		},
		genTag(db),
		gen.SliceOf(gen.Bool()),
	))

	// Property: non-whitespace text passes iff the element allows text.
	properties.Property("text content requires AllowsText", prop.ForAll(
		func(tag string) bool {
			e, err := db.Lookup(tag)
			if err != nil {
				return false
			}
			return (e.ValidateText("content") == nil) == e.AllowsText
		},
		genTag(db),
	))

	properties.TestingRun(t)
}
