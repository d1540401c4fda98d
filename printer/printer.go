package printer

import (
	"fmt"
	"io"

	"github.com/grovekit/grove/arena"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatHTML outputs serialized HTML.
	FormatHTML Format = "html"

	// FormatText outputs tag-stripped plain text.
	FormatText Format = "text"

	// FormatJSON outputs a structural JSON dump.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies the output format (html, text, json).
	// Default: FormatHTML
	Format Format

	// Doctype prepends "<!DOCTYPE html>\n" to HTML output. Fragment
	// rendering and preserialization never emit it.
	// Default: false
	Doctype bool

	// Indent is the indentation string for JSON output.
	// Default: two spaces
	Indent string
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format: FormatHTML,
		Indent: "  ",
	}
}

// Printer renders document trees to a writer, reusing its output buffer
// across calls. Not safe for concurrent use.
type Printer struct {
	opts Options
	w    io.Writer
	buf  []byte
}

// New creates a new Printer writing to w.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(a, page)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{opts: opts, w: w}
}

// Print renders the subtree at root in the configured format.
func (p *Printer) Print(a *arena.Arena, root arena.NodeRef) error {
	var err error
	p.buf = p.buf[:0]
	switch p.opts.Format {
	case FormatText:
		p.buf, err = appendPlain(p.buf, a, root)
	case FormatJSON:
		p.buf, err = appendJSON(p.buf, a, root, p.opts.Indent)
	case FormatHTML, "":
		if p.opts.Doctype {
			p.buf = append(p.buf, "<!DOCTYPE html>\n"...)
		}
		p.buf, err = appendHTML(p.buf, a, root)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, p.opts.Format)
	}
	if err != nil {
		return err
	}
	if _, err := p.w.Write(p.buf); err != nil {
		return fmt.Errorf("printer: write: %w", err)
	}
	return nil
}

// HTML renders the subtree at root as an HTML string. With doctype set the
// output starts with the HTML5 doctype line.
func HTML(a *arena.Arena, root arena.NodeRef, doctype bool) (string, error) {
	var buf []byte
	if doctype {
		buf = append(buf, "<!DOCTYPE html>\n"...)
	}
	buf, err := appendHTML(buf, a, root)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// appendHTML serializes the subtree at ref onto dst.
func appendHTML(dst []byte, a *arena.Arena, ref arena.NodeRef) ([]byte, error) {
	n, err := a.Node(ref)
	if err != nil {
		return dst, err
	}
	switch n.Kind() {
	case arena.KindText:
		return appendEscaped(dst, n.Text()), nil

	case arena.KindPre:
		return append(dst, n.Pre().Bytes()...), nil

	case arena.KindFragment:
		kids := n.Children()
		for i := 0; i < kids.Len(); i++ {
			child, err := a.NodeAt(kids, i)
			if err != nil {
				return dst, err
			}
			if dst, err = appendHTML(dst, a, child); err != nil {
				return dst, err
			}
		}
		return dst, nil

	case arena.KindElement:
		m := n.Meta()
		dst = append(dst, '<')
		dst = append(dst, m.Tag...)
		attrs := n.Attrs()
		for i := 0; i < attrs.Len(); i++ {
			aref, err := a.AttrAt(attrs, i)
			if err != nil {
				return dst, err
			}
			at, err := a.Attr(aref)
			if err != nil {
				return dst, err
			}
			dst = append(dst, ' ')
			dst = append(dst, at.Name...)
			dst = append(dst, '=', '"')
			dst = appendEscaped(dst, at.Value)
			dst = append(dst, '"')
		}
		dst = append(dst, '>')
		kids := n.Children()
		for i := 0; i < kids.Len(); i++ {
			child, err := a.NodeAt(kids, i)
			if err != nil {
				return dst, err
			}
			if dst, err = appendHTML(dst, a, child); err != nil {
				return dst, err
			}
		}
		if m.HasClosingTag {
			dst = append(dst, '<', '/')
			dst = append(dst, m.Tag...)
			dst = append(dst, '>')
		}
		return dst, nil

	default:
		return dst, fmt.Errorf("%w: node kind %v", arena.ErrInvalidHandle, n.Kind())
	}
}

// appendEscaped appends s with &, <, >, " and ' replaced by entities. This
// set covers both text content and double-quoted attribute values.
func appendEscaped(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			dst = append(dst, "&amp;"...)
		case '<':
			dst = append(dst, "&lt;"...)
		case '>':
			dst = append(dst, "&gt;"...)
		case '"':
			dst = append(dst, "&quot;"...)
		case '\'':
			dst = append(dst, "&#39;"...)
		default:
			dst = append(dst, s[i])
		}
	}
	return dst
}
