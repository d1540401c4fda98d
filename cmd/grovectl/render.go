package main

import (
	"fmt"
	"os"

	"github.com/grovekit/grove/arena"
	"github.com/grovekit/grove/meta"
	"github.com/grovekit/grove/printer"
	"github.com/spf13/cobra"
)

var (
	renderFormat  string
	renderDoctype bool
	renderTrace   bool
)

func init() {
	cmd := newRenderCmd()
	cmd.Flags().StringVar(&renderFormat, "format", "html", "Output format (html, text, json)")
	cmd.Flags().BoolVar(&renderDoctype, "doctype", true, "Emit the HTML5 doctype")
	cmd.Flags().BoolVar(&renderTrace, "trace", false, "Attach construction sites as title attributes")
	rootCmd.AddCommand(cmd)
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document through the arena allocator",
		Long: `The render command builds a document in an arena and serializes it. With a
file argument the file's content becomes the page body, formatted through
the soft-pre formatter (tab expansion plus URL autolinking); without one a
small demo page is rendered.

Example:
  grovectl render
  grovectl render notes.txt --format text
  grovectl render --trace --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runRender(path)
		},
	}
}

func runRender(path string) error {
	arena.EnableTracing(renderTrace)
	defer arena.EnableTracing(false)

	a := arena.New(meta.Builtin(), 0)
	page, err := buildPage(a, path)
	if err != nil {
		return fmt.Errorf("build document: %w", err)
	}
	log.Debug("document built", "nodes", a.Len())

	opts := printer.DefaultOptions()
	opts.Format = printer.Format(renderFormat)
	opts.Doctype = renderDoctype
	return printer.New(os.Stdout, opts).Print(a, page)
}

// buildPage assembles the rendered document: the file's soft-pre formatted
// content when path is given, a fixed demo page otherwise.
func buildPage(a *arena.Arena, path string) (arena.NodeRef, error) {
	title := "grove demo"
	var body arena.NodeRef
	var err error

	if path != "" {
		content, rerr := os.ReadFile(path)
		if rerr != nil {
			return arena.NodeRef{}, rerr
		}
		title = path
		body, err = arena.DefaultSoftPre().Format(a, string(content))
	} else {
		body, err = demoBody(a)
	}
	if err != nil {
		return arena.NodeRef{}, err
	}

	titleText, err := a.Text(title)
	if err != nil {
		return arena.NodeRef{}, err
	}
	titleEl, err := a.Title(nil, titleText)
	if err != nil {
		return arena.NodeRef{}, err
	}
	head, err := a.Head(nil, titleEl)
	if err != nil {
		return arena.NodeRef{}, err
	}
	heading, err := a.Text(title)
	if err != nil {
		return arena.NodeRef{}, err
	}
	h1, err := a.H1(nil, heading)
	if err != nil {
		return arena.NodeRef{}, err
	}
	bodyEl, err := a.Body(nil, h1, body)
	if err != nil {
		return arena.NodeRef{}, err
	}
	return a.Html([]arena.Attr{{Name: "lang", Value: "en"}}, head, bodyEl)
}

func demoBody(a *arena.Arena) (arena.NodeRef, error) {
	intro, err := a.Text("Documents are built bottom-up in an arena and ")
	if err != nil {
		return arena.NodeRef{}, err
	}
	linkText, err := a.Text("schema-validated")
	if err != nil {
		return arena.NodeRef{}, err
	}
	link, err := a.A([]arena.Attr{{Name: "href", Value: "https://html.spec.whatwg.org/"}}, linkText)
	if err != nil {
		return arena.NodeRef{}, err
	}
	outro, err := a.Text(" at construction time.")
	if err != nil {
		return arena.NodeRef{}, err
	}
	p, err := a.P(nil, intro, link, outro)
	if err != nil {
		return arena.NodeRef{}, err
	}
	return a.Fragment(p)
}
