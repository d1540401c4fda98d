package main

import (
	"github.com/grovekit/grove/meta"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newTagsCmd())
}

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List all tags in the built-in schema",
		Long: `The tags command lists every element tag the built-in HTML schema knows.

Example:
  grovectl tags
  grovectl tags --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTags()
		},
	}
}

func runTags() error {
	tags := meta.Builtin().Tags()
	log.Debug("loaded built-in schema", "tags", len(tags))

	if jsonOut {
		return printJSON(tags)
	}
	for _, tag := range tags {
		printInfo("%s\n", tag)
	}
	return nil
}
