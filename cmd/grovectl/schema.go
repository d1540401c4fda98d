package main

import (
	"fmt"
	"sort"

	"github.com/grovekit/grove/meta"
	"github.com/spf13/cobra"
)

var schemaGlobals bool

func init() {
	cmd := newSchemaCmd()
	cmd.Flags().BoolVar(&schemaGlobals, "globals", false, "Include global attributes")
	rootCmd.AddCommand(cmd)
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <tag>",
		Short: "Show the built-in schema entry for a tag",
		Long: `The schema command prints everything the built-in schema records for one
element: its attributes, content categories, and permitted children.

Example:
  grovectl schema a
  grovectl schema img --json
  grovectl schema p --globals`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(args[0])
		},
	}
}

// schemaEntry is the JSON shape of one schema dump.
type schemaEntry struct {
	Tag              string   `json:"tag"`
	StructName       string   `json:"struct"`
	ClosingTag       bool     `json:"closing_tag"`
	GlobalAttributes bool     `json:"global_attributes"`
	AllowsText       bool     `json:"allows_text"`
	Categories       []string `json:"categories,omitempty"`
	Attributes       []string `json:"attributes,omitempty"`
	Children         []string `json:"children,omitempty"`
}

func runSchema(tag string) error {
	db := meta.Builtin()
	e, err := db.Lookup(tag)
	if err != nil {
		return err
	}

	entry := schemaEntry{
		Tag:              e.Tag,
		StructName:       e.StructName,
		ClosingTag:       e.HasClosingTag,
		GlobalAttributes: e.HasGlobalAttributes,
		AllowsText:       e.AllowsText,
	}
	for _, c := range e.Categories {
		entry.Categories = append(entry.Categories, c.String())
	}
	for name := range e.Attributes {
		entry.Attributes = append(entry.Attributes, name)
	}
	sort.Strings(entry.Attributes)
	if schemaGlobals && e.HasGlobalAttributes {
		entry.Attributes = append(entry.Attributes, db.GlobalAttributes()...)
	}
	for child := range e.Children {
		entry.Children = append(entry.Children, child)
	}
	sort.Strings(entry.Children)

	if jsonOut {
		return printJSON(entry)
	}

	printInfo("tag:        %s (%s)\n", entry.Tag, entry.StructName)
	printInfo("closing:    %v\n", entry.ClosingTag)
	printInfo("globals:    %v\n", entry.GlobalAttributes)
	printInfo("text:       %v\n", entry.AllowsText)
	printInfo("categories: %s\n", joinOrDash(entry.Categories))
	printInfo("attributes: %s\n", joinOrDash(entry.Attributes))
	printInfo("children:   %s\n", joinOrDash(entry.Children))
	return nil
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	out := items[0]
	for _, s := range items[1:] {
		out += fmt.Sprintf(", %s", s)
	}
	return out
}
