package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovekit/grove/meta"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <records.json|records.yaml>",
		Short: "Validate a schema record file",
		Long: `The check command loads a schema record file and reports whether it
resolves into a consistent database: attribute kinds parse, every content
category and child reference resolves, exclusions apply.

Example:
  grovectl check schema/html.json
  grovectl check custom.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0])
		},
	}
}

func runCheck(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open records: %w", err)
	}
	defer f.Close()

	var db *meta.DB
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		db, err = meta.LoadYAML(f)
	case ".json":
		db, err = meta.LoadJSON(f)
	default:
		return fmt.Errorf("unsupported record format %q (want .json or .yaml)", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	tags := db.Tags()
	log.Debug("record file resolved", "path", path, "tags", len(tags))

	if jsonOut {
		return printJSON(map[string]any{
			"path":     path,
			"ok":       true,
			"elements": len(tags),
			"globals":  len(db.GlobalAttributes()),
		})
	}
	printInfo("%s: ok (%d elements, %d global attributes)\n",
		path, len(tags), len(db.GlobalAttributes()))
	return nil
}
