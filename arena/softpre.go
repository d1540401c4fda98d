package arena

import (
	"strings"

	"github.com/grovekit/grove/meta"
)

// SoftPre formats plain text so that it reads like <pre> output while still
// allowing the browser to wrap long lines: each input line becomes inline
// content followed by <br>, tabs become runs of non-breaking spaces, and
// http(s) URLs can be turned into links.
type SoftPre struct {
	// TabWidth is the number of non-breaking spaces substituted for a tab.
	// Zero leaves tabs alone.
	TabWidth int

	// Autolink turns http:// and https:// URLs into anchors.
	Autolink bool

	// LineSeparator splits the input into lines.
	LineSeparator string
}

// DefaultSoftPre matches typical terminal output: 8-column tabs, linked
// URLs, newline-separated.
func DefaultSoftPre() SoftPre {
	return SoftPre{TabWidth: 8, Autolink: true, LineSeparator: "\n"}
}

// Format renders text into a <div class="soft_pre"> element.
func (sp SoftPre) Format(a *Arena, text string) (NodeRef, error) {
	sep := sp.LineSeparator
	if sep == "" {
		sep = "\n"
	}
	body := a.NewList()
	for _, line := range strings.Split(text, sep) {
		if sp.TabWidth > 0 {
			line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", sp.TabWidth))
		}
		if sp.Autolink {
			if err := autolink(a, line, body); err != nil {
				return NodeRef{}, err
			}
		} else {
			ref, err := a.Text(line)
			if err != nil {
				return NodeRef{}, err
			}
			if err := body.Push(ref); err != nil {
				return NodeRef{}, err
			}
		}
		br, err := a.Br(nil)
		if err != nil {
			return NodeRef{}, err
		}
		if err := body.Push(br); err != nil {
			return NodeRef{}, err
		}
	}
	attrs, err := a.MakeAttrs(Attr{Name: "class", Value: "soft_pre"})
	if err != nil {
		return NodeRef{}, err
	}
	return a.ElementFrom(meta.Div, attrs, body.Slice())
}

// autolink splits line around http(s) URLs, pushing text nodes and anchors.
func autolink(a *Arena, line string, out *List) error {
	for line != "" {
		start := urlStart(line)
		if start < 0 {
			ref, err := a.Text(line)
			if err != nil {
				return err
			}
			return out.Push(ref)
		}
		if start > 0 {
			ref, err := a.Text(line[:start])
			if err != nil {
				return err
			}
			if err := out.Push(ref); err != nil {
				return err
			}
			line = line[start:]
		}
		end := urlEnd(line)
		url := line[:end]
		line = line[end:]

		label, err := a.Text(url)
		if err != nil {
			return err
		}
		anchor, err := a.A([]Attr{{Name: "href", Value: url}}, label)
		if err != nil {
			return err
		}
		if err := out.Push(anchor); err != nil {
			return err
		}
	}
	return nil
}

// urlStart returns the index of the earliest http:// or https:// in s.
func urlStart(s string) int {
	plain := strings.Index(s, "http://")
	secure := strings.Index(s, "https://")
	switch {
	case plain < 0:
		return secure
	case secure < 0:
		return plain
	case secure < plain:
		return secure
	default:
		return plain
	}
}

// urlEnd finds the end of a URL at the start of s: up to whitespace or a
// markup delimiter, with trailing sentence punctuation stripped.
func urlEnd(s string) int {
	end := len(s)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '<', '>', '"':
			end = i
		}
		if end == i {
			break
		}
	}
	for end > 0 && strings.IndexByte(".,;:!?)", s[end-1]) >= 0 {
		end--
	}
	return end
}
